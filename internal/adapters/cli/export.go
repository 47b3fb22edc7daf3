package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devbush/cueline/internal/domain"
)

var (
	exportFormatFlag string
	exportOutputFlag string
	exportCopyFlag   bool
)

// NewExportCmd creates the export subcommand
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <project.json>",
		Short: "Render a project as txt, srt, vtt, csv, json or html",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	cmd.Flags().StringVarP(&exportFormatFlag, "format", "f", domain.FormatText,
		"Output format: "+strings.Join(domain.ExportFormats, ", "))
	cmd.Flags().StringVarP(&exportOutputFlag, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&exportCopyFlag, "copy", false, "Copy the output to the clipboard")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	project, err := app.Projects.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}

	output, err := domain.Export(*project, exportFormatFlag)
	if err != nil {
		return err
	}

	app.Log.Info().
		Str("format", exportFormatFlag).
		Int("segments", len(project.Segments)).
		Msg("project exported")

	if exportCopyFlag {
		if err := app.Clipboard.WriteAll(output); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Println("Copied to clipboard")
	}

	if exportOutputFlag != "" {
		if err := os.WriteFile(exportOutputFlag, []byte(output), 0644); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", exportOutputFlag)
		return nil
	}

	if !exportCopyFlag {
		fmt.Println(output)
	}
	return nil
}
