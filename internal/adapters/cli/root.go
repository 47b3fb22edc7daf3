package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devbush/cueline/internal/adapters/cli/tui"
	"github.com/devbush/cueline/internal/application"
	"github.com/devbush/cueline/internal/domain"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cueline [project.json]",
		Short: "Edit time-aligned transcripts on a timeline",
		Long: `cueline is a terminal transcript editor: segments, speakers and a
zoomable timeline with mouse-driven resizing, snapping, undo/redo,
search/replace and multi-format export.

Open a project file to edit it, or run without arguments to start
from the built-in sample session.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRoot,
	}

	rootCmd.AddCommand(NewImportCmd())
	rootCmd.AddCommand(NewExportCmd())

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	var project domain.Project
	var path string

	if len(args) == 1 {
		path = args[0]
		loaded, err := app.Projects.Load(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		project = *loaded
	} else {
		project = application.SampleProject()
	}

	app.Log.Info().
		Str("project", project.Meta.Title).
		Int("segments", len(project.Segments)).
		Int("speakers", len(project.Speakers)).
		Msg("editor session started")

	return tui.Run(tui.Options{
		Project:   project,
		Path:      path,
		Snap:      app.Config.DomainSnap(),
		Zoom:      app.Config.Editor.Zoom,
		Projects:  app.Projects,
		Clipboard: app.Clipboard,
		Log:       app.Log,
	})
}

// Execute runs the CLI
func Execute() {
	defer func() {
		if globalApp != nil {
			globalApp.Close()
		}
	}()
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
