// Package screens holds the dependencies shared by every TUI screen.
package screens

import (
	"log/slog"
	"time"

	"github.com/abhisek/cpe/internal/evaluation"
	"github.com/abhisek/cpe/internal/flow"
	"github.com/abhisek/cpe/internal/logging"
	"github.com/abhisek/cpe/internal/profile"
	"github.com/abhisek/cpe/internal/store"
)

// Env carries the services screens need. Evaluator and Events may be nil;
// screens that need them degrade to an explanatory message.
type Env struct {
	Profile   *profile.Store
	Evaluator evaluation.Evaluator
	Events    store.EventRepo
	Logger    *slog.Logger

	// MinLoading is the minimum time an evaluation stays in the loading
	// view. Zero shows the outcome as soon as it arrives.
	MinLoading time.Duration

	// AutoAdvance is the delay before a completed quiz step moves on.
	AutoAdvance time.Duration
}

// Log returns the configured logger or a discarding one.
func (e Env) Log() *slog.Logger {
	if e.Logger == nil {
		return logging.Discard()
	}
	return e.Logger
}

// AutoAdvanceDelay returns the configured delay or the default.
func (e Env) AutoAdvanceDelay() time.Duration {
	if e.AutoAdvance <= 0 {
		return flow.AutoAdvanceDelay
	}
	return e.AutoAdvance
}
