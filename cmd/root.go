package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/touchline/internal/config"
	"github.com/abhisek/touchline/internal/questionbank"
	"github.com/abhisek/touchline/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "touchline",
	Short: "Football knowledge assessments in your terminal",
	Long: "Touchline — a terminal quiz that grades football knowledge across four tiers,\n" +
		"awards badges, and suggests what to study next.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides TOUCHLINE_DB env var)")
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/touchline/config.yaml)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config (or the default
// path) and applies flag overrides on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.DB = db
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db or the config file
// (highest priority), then TOUCHLINE_DB, then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore loads the config and opens the database it points at.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// loadBank returns the configured question bank, or the built-in one.
func loadBank(cfg config.Config) (*questionbank.Bank, error) {
	if cfg.Quiz.BankFile == "" {
		return questionbank.Default(), nil
	}
	b, err := questionbank.LoadFile(cfg.Quiz.BankFile)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	return b, nil
}
