package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/oasys/internal/attendance"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Print the course-wise attendance breakdown",
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

		courses, err := src.Repo.Courses(cmd.Context())
		if err != nil {
			return fmt.Errorf("list courses: %w", err)
		}
		if len(courses) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No courses found.")
			return nil
		}

		printSummary(cmd, attendance.Summarize(courses))
		return nil
	},
}

func printSummary(cmd *cobra.Command, s attendance.Summary) {
	out := cmd.OutOrStdout()

	// Header.
	fmt.Fprintf(out, "%-4s  %-28s  %8s  %5s  %7s  %8s  %s\n",
		"ID", "Course", "Attended", "Total", "Percent", "Missable", "Status")
	fmt.Fprintln(out, strings.Repeat("─", 90))

	for _, cs := range s.Courses {
		name := cs.Course.Name
		if len(name) > 28 {
			name = name[:25] + "..."
		}
		fmt.Fprintf(out, "%-4d  %-28s  %8d  %5d  %6d%%  %8d  %s\n",
			cs.Course.ID, name,
			cs.Course.AttendedClasses, cs.Course.TotalClasses,
			cs.Percent, cs.Missable, cs.Badge())
	}

	fmt.Fprintf(out, "\nOverall attendance: %d%% (%s)\n", s.Overall, s.Status())
	if n := len(s.Alerts()); n > 0 {
		fmt.Fprintf(out, "%d course(s) need attention\n", n)
	}
}
