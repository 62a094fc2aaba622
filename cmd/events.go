package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/oasys/internal/attendance"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print upcoming events",
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

		events, err := src.Repo.Events(cmd.Context())
		if err != nil {
			return fmt.Errorf("list events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No upcoming events.")
			return nil
		}

		fmt.Fprintf(out, "%-10s  %-10s  %s\n", "Date", "Type", "Event")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, e := range attendance.SortByDate(events) {
			fmt.Fprintf(out, "%-10s  %-10s  %s\n", e.Date, e.Category.DisplayName(), e.Name)
		}
		return nil
	},
}
