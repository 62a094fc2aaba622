package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/oasys/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report <out.xlsx>",
	Short: "Export the attendance report to a spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		src, err := openSource(cmd.Context(), cfg, true)
		if err != nil {
			return err
		}
		defer src.Repo.Close()

		ctx := cmd.Context()
		courses, err := src.Repo.Courses(ctx)
		if err != nil {
			return fmt.Errorf("list courses: %w", err)
		}
		events, err := src.Repo.Events(ctx)
		if err != nil {
			return fmt.Errorf("list events: %w", err)
		}

		if err := report.Export(args[0], courses, events); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d courses, %d events)\n", args[0], len(courses), len(events))
		return nil
	},
}

// defaultReportDir is where the dashboard writes exports.
func defaultReportDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return dir, nil
}
