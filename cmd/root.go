package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/config"
	"github.com/abhisek/mathdrill/internal/store"
)

// cfg is loaded once before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "mathdrill",
	Short: "Arithmetic practice in the terminal",
	Long:  "MathDrill: practice addition, subtraction, multiplication and division with streak-based level-ups and a timed mastery mode.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine; the environment still applies.
		_ = godotenv.Load()

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if p, _ := cmd.Flags().GetString("log"); p != "" {
			loaded.LogPath = p
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHDRILL_DB env var)")
	rootCmd.PersistentFlags().String("log", "", "Write JSON logs to this file (overrides MATHDRILL_LOG env var)")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHDRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
