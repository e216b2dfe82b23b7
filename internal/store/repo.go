package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// EvaluationRequestEventData captures a single evaluation request.
type EvaluationRequestEventData struct {
	RequestID    string
	Endpoint     string
	Background   string
	LatencyMs    int64
	StatusCode   int
	Success      bool
	Cancelled    bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EvaluationRequestRecord is a stored evaluation request event.
type EvaluationRequestRecord struct {
	ID        int
	Timestamp time.Time
	EvaluationRequestEventData
}

// EventRepo provides append and query access to the evaluation request log.
type EventRepo interface {
	// AppendEvaluationRequest records an evaluation request.
	AppendEvaluationRequest(ctx context.Context, data EvaluationRequestEventData) error

	// QueryEvaluationRequests returns requests newest first.
	QueryEvaluationRequests(ctx context.Context, opts QueryOpts) ([]EvaluationRequestRecord, error)

	// GetEvaluationRequest returns a single request, or nil if not found.
	GetEvaluationRequest(ctx context.Context, id int) (*EvaluationRequestRecord, error)
}
