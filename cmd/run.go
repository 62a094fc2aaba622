package cmd

import (
	"fmt"
	"io"
	"log"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/oasys/internal/app"
	"github.com/abhisek/oasys/internal/chat"
	"github.com/abhisek/oasys/internal/screens/dashboard"
)

// runApp opens the data source, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "oasys")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	src, err := openSource(cmd.Context(), cfg, true)
	if err != nil {
		return err
	}
	defer src.Repo.Close()
	log.Printf("data source: %s", src.Name)

	var sessOpts []chat.Option
	if cfg.Chat.Coalesce {
		sessOpts = append(sessOpts, chat.WithCoalescing())
	}

	reportDir, err := defaultReportDir()
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Dashboard: dashboard.Deps{
			Repo:       src.Repo,
			Session:    chat.NewSession(sessOpts...),
			ReplyDelay: cfg.Chat.ReplyDelay,
			Config:     *cfg,
			Source:     src.Name,
			ReportDir:  reportDir,
		},
		Dark: cfg.UI.DarkMode,
	})
}
