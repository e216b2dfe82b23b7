package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/abhisek/cpe/internal/evaluation"
	"github.com/abhisek/cpe/internal/logging"
	"github.com/abhisek/cpe/internal/profile"
	"github.com/abhisek/cpe/internal/store"
)

// openStore opens the configured database, creating its directory.
func openStore() (*store.Store, error) {
	if err := store.EnsureDir(cfg.DB); err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func newLogger(out io.Writer) *slog.Logger {
	return logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: out,
	})
}

func openProfile(ctx context.Context, st *store.Store, logger *slog.Logger) *profile.Store {
	return profile.Open(ctx, st.KVRepo(), logger)
}

// newEvaluator builds the HTTP client and wraps it so every request lands in
// the event log.
func newEvaluator(st *store.Store, logger *slog.Logger) (evaluation.Evaluator, error) {
	client, err := evaluation.NewClient(cfg.Evaluation(), evaluation.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("evaluation client: %w", err)
	}
	return evaluation.WithLogging(client, st.EventRepo(), logger, client.Endpoint()), nil
}
