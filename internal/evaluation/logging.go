package evaluation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/abhisek/cpe/internal/store"
)

// LoggingEvaluator is a decorator that records every evaluation request
// in the event log.
type LoggingEvaluator struct {
	inner     Evaluator
	eventRepo store.EventRepo
	logger    *slog.Logger
	endpoint  string
}

// WithLogging wraps an Evaluator with event logging. A nil logger
// discards diagnostics.
func WithLogging(ev Evaluator, repo store.EventRepo, logger *slog.Logger, endpoint string) Evaluator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LoggingEvaluator{inner: ev, eventRepo: repo, logger: logger, endpoint: endpoint}
}

func (l *LoggingEvaluator) Evaluate(ctx context.Context, p Payload) (Result, error) {
	id := RequestIDFrom(ctx)
	if id == "" {
		id = uuid.NewString()
		ctx = WithRequestID(ctx, id)
	}
	log := l.logger.With("request_id", id, "background", string(p.Background))

	start := time.Now()
	log.Info("evaluation request started", "endpoint", l.endpoint)

	res, err := l.inner.Evaluate(ctx, p)

	data := store.EvaluationRequestEventData{
		RequestID:   id,
		Endpoint:    l.endpoint,
		Background:  string(p.Background),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		Cancelled:   errors.Is(err, ErrCancelled),
		RequestBody: marshalString(p),
	}

	var bad *ErrBadResponse
	if errors.As(err, &bad) {
		data.StatusCode = bad.StatusCode
		data.ResponseBody = bad.Body
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	} else {
		data.ResponseBody = marshalString(res)
	}

	switch {
	case err == nil:
		log.Info("evaluation request finished", "latency_ms", data.LatencyMs)
	case data.Cancelled:
		log.Info("evaluation request cancelled", "latency_ms", data.LatencyMs)
	default:
		log.Warn("evaluation request failed", "latency_ms", data.LatencyMs, "status", data.StatusCode, "error", err)
	}

	// The request outcome stands even if the event cannot be written.
	// The request ctx may already be cancelled, so the write gets its own.
	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if logErr := l.eventRepo.AppendEvaluationRequest(logCtx, data); logErr != nil {
		log.Warn("failed to log evaluation request event", "error", logErr)
	}

	return res, err
}

func marshalString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
