package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/touchline/internal/app"
	"github.com/abhisek/touchline/internal/coach"
	"github.com/abhisek/touchline/internal/llm"
	"github.com/abhisek/touchline/internal/logging"
	"github.com/abhisek/touchline/internal/session"
	"github.com/abhisek/touchline/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	logFile := cfg.Log.File
	if logFile == "" {
		logFile = filepath.Join(filepath.Dir(dbPath), "touchline.log")
	}
	logger, closer, err := logging.Setup(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   logFile,
	})
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closer.Close()

	bank, err := loadBank(cfg)
	if err != nil {
		return err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{Logger: logger}
	opts.Session = session.NewService(session.Deps{
		Events:    st.EventRepo(),
		Snapshots: st.SnapshotRepo(),
		Bank:      bank,
		Logger:    logger,
		Seed:      cfg.Quiz.Seed,
		Untimed:   !cfg.Quiz.Timed,
	})

	if llmCfg, ok := cfg.LLMProviderConfig(); ok {
		provider, err := llm.NewProvider(ctx, llmCfg, st.EventRepo(), logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Coaching will use the built-in study plans.")
		} else {
			opts.Advisor = coach.NewService(provider, coach.DefaultConfig(), logger)
		}
	}

	logger.Info("starting touchline", "db", dbPath, "questions", bank.Len(), "coach", opts.Advisor != nil)
	return app.Run(opts)
}
