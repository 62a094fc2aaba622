package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/oasys/internal/attendance"
	"github.com/abhisek/oasys/internal/store"
)

var attendCmd = &cobra.Command{
	Use:   "attend <course-id>",
	Short: "Record one held class for a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("course id must be a number, got %q", args[0])
		}
		absent, _ := cmd.Flags().GetBool("absent")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		src, err := openSource(cmd.Context(), cfg, true)
		if err != nil {
			return err
		}
		defer src.Repo.Close()

		if err := requireWritable(src); err != nil {
			return err
		}
		c, err := store.RecordAttendance(cmd.Context(), src.Repo, id, !absent)
		if err != nil {
			return fmt.Errorf("record attendance for course %d: %w", id, err)
		}

		cs := attendance.Stat(c)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d / %d classes (%d%%), %s\n",
			c.Name, c.AttendedClasses, c.TotalClasses, cs.Percent, cs.Badge())
		return nil
	},
}

func init() {
	attendCmd.Flags().Bool("absent", false, "Record the class as missed")
}
