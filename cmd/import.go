package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/oasys/internal/attendance"
	"github.com/abhisek/oasys/internal/dataset"
	"github.com/abhisek/oasys/internal/report"
	"github.com/abhisek/oasys/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json|file.xlsx>",
	Short: "Load courses and events into the configured store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		courses, events, err := readImportFile(args[0])
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		src, err := openSource(cmd.Context(), cfg, false)
		if err != nil {
			return err
		}
		defer src.Repo.Close()

		if err := requireWritable(src); err != nil {
			return err
		}
		if err := store.Import(cmd.Context(), src.Repo, courses, events); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d courses and %d events into %s\n", len(courses), len(events), src.Name)
		return nil
	},
}

func readImportFile(path string) ([]attendance.Course, []attendance.Event, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		ds, err := dataset.Load(path)
		if err != nil {
			return nil, nil, err
		}
		return ds.Courses, ds.Events, nil
	case ".xlsx":
		sheet, err := report.ImportFile(path)
		if err != nil {
			return nil, nil, err
		}
		return sheet.Courses, sheet.Events, nil
	default:
		return nil, nil, fmt.Errorf("unsupported file type %q: use .json or .xlsx", filepath.Ext(path))
	}
}
