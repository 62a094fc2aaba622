package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/oasys/internal/config"
	"github.com/abhisek/oasys/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "oasys",
	Short: "Student attendance dashboard",
	Long: "OASYS tracks class attendance per course, flags courses at risk of\n" +
		"falling below 75%, and includes O-AI-sys, a holiday planning assistant.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/oasys/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file, or \"default\" for $XDG_DATA_HOME/oasys/oasys.db (overrides store.path)")
	rootCmd.PersistentFlags().String("redis", "", "Redis address host:port (overrides store.redis_addr)")
	rootCmd.PersistentFlags().String("data", "", "Path to a JSON data file (overrides data.file)")
	rootCmd.PersistentFlags().String("log", "", "Write logs to this file (overrides log.file)")

	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(attendCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and applies flag overrides, which take
// priority over both the file and OASYS_* environment variables.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.Store.Path = v
	}
	if v, _ := cmd.Flags().GetString("redis"); v != "" {
		cfg.Store.RedisAddr = v
	}
	if v, _ := cmd.Flags().GetString("data"); v != "" {
		cfg.Data.File = v
	}
	if v, _ := cmd.Flags().GetString("log"); v != "" {
		cfg.Log.File = v
	}

	if cfg.Store.Path == store.DefaultPathName {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		cfg.Store.Path = p
	}
	return cfg, nil
}
