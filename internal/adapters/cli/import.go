package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devbush/cueline/internal/application"
)

var (
	importOutputFlag string
	importTitleFlag  string
)

// NewImportCmd creates the import subcommand
func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <transcription.json>",
		Short: "Create a project from a transcription result",
		Long: `Reads a transcription result (an array of records with speakerId,
startTime, endTime and text fields), assigns segment ids, derives the
speaker roster, and writes a new project file.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().StringVarP(&importOutputFlag, "output", "o", "", "Project file to write (default: <input>.cueline.json)")
	cmd.Flags().StringVarP(&importTitleFlag, "title", "t", "", "Project title (default: input file name)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	records, err := application.ParseTranscription(data)
	if err != nil {
		return err
	}

	title := importTitleFlag
	if title == "" {
		title = titleFromPath(args[0])
	}

	project := application.BuildProject(title, records)

	out := importOutputFlag
	if out == "" {
		out = deriveOutputPath(args[0], ".cueline.json")
	}

	if err := app.Projects.Save(out, &project); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}

	app.Log.Info().
		Str("source", args[0]).
		Int("segments", len(project.Segments)).
		Int("speakers", len(project.Speakers)).
		Msg("transcription imported")

	fmt.Printf("Imported %d segments, %d speakers -> %s\n",
		len(project.Segments), len(project.Speakers), out)
	return nil
}
