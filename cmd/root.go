package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/api"
	"github.com/abhisek/prepdeck/internal/app"
	"github.com/abhisek/prepdeck/internal/logging"
	"github.com/abhisek/prepdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "prepdeck",
	Short: "Timed assessments and adaptive practice in your terminal",
	Long:  "Prepdeck is a terminal client for the assessment platform: take timed tests by code, run adaptive practice sessions, and review past results.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return launch(cmd, app.Options{})
	},
}

func Execute() error {
	// Optional; a missing .env is the normal case.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPDECK_DB env var)")
	rootCmd.PersistentFlags().String("api-url", "", "API base URL (overrides PREPDECK_API_URL env var)")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// launch opens the store and logger, builds the API client, and runs
// the TUI with the given screen selection.
func launch(cmd *cobra.Command, opts app.Options) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	logPath, err := logging.DefaultLogPath()
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	log, closeLog, err := logging.New(logPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	cfg := api.ConfigFromEnv()
	if u, _ := cmd.Flags().GetString("api-url"); u != "" {
		cfg.BaseURL = u
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts.Client = api.NewClient(cfg,
		api.WithLogger(log),
		api.WithEventRepo(st.EventRepo()),
	)
	opts.Store = st
	opts.Log = log

	return app.Run(opts)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PREPDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
