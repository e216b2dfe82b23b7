package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cpe/internal/app"
	"github.com/abhisek/cpe/internal/logging"
	"github.com/abhisek/cpe/internal/quiz"
	"github.com/abhisek/cpe/internal/screens"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive quiz (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	if err := quiz.ValidateAll(); err != nil {
		return fmt.Errorf("quiz configuration: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile)

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	env := screens.Env{
		Profile:     openProfile(ctx, st, logger),
		Events:      st.EventRepo(),
		Logger:      logger,
		MinLoading:  cfg.MinLoading,
		AutoAdvance: cfg.AutoAdvance,
	}

	ev, err := newEvaluator(st, logger)
	if err != nil {
		logger.Warn("evaluation disabled", "error", err)
	} else {
		env.Evaluator = ev
	}

	logger.Info("starting", "db", cfg.DB, "endpoint", cfg.Evaluation().Endpoint())
	return app.Run(app.Options{Env: env})
}
