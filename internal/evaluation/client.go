package evaluation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/abhisek/cpe/internal/quiz"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 8 << 20

// Evaluator submits a payload and returns the opaque result.
type Evaluator interface {
	Evaluate(ctx context.Context, p Payload) (Result, error)
}

// EvaluateProfile builds the payload from the stored answers and submits it.
func EvaluateProfile(ctx context.Context, ev Evaluator, r quiz.Responses, g Goals, b quiz.Background) (Result, error) {
	p, err := BuildPayload(r, g, b)
	if err != nil {
		return nil, err
	}
	return ev.Evaluate(ctx, p)
}

// Client talks to the evaluation service over HTTP.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

var _ Evaluator = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient validates cfg and returns a Client.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Client{
		cfg:    cfg,
		http:   &http.Client{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.cfg.Endpoint()
}

// Evaluate POSTs p and returns the "profile_evaluation" object verbatim.
// Cancelling ctx yields ErrCancelled; every other failure is an
// *ErrBadResponse.
func (c *Client) Evaluate(ctx context.Context, p Payload) (Result, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	if err := ValidatePayload(body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.cfg.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := RequestIDFrom(ctx); id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if cancelled(ctx) {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
		}
		return nil, &ErrBadResponse{Err: fmt.Errorf("send evaluation request: %w", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if cancelled(ctx) {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
		}
		return nil, &ErrBadResponse{StatusCode: resp.StatusCode, Err: fmt.Errorf("read evaluation response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text := strings.TrimSpace(string(raw))
		detail := text
		if detail == "" {
			detail = "Unknown error"
		}
		return nil, &ErrBadResponse{
			StatusCode: resp.StatusCode,
			Body:       text,
			Err:        fmt.Errorf("evaluation request failed with status %d: %s", resp.StatusCode, detail),
		}
	}

	result, err := c.decode(raw)
	if err != nil {
		return nil, &ErrBadResponse{StatusCode: resp.StatusCode, Body: string(raw), Err: err}
	}

	// A late response after the caller left is dropped like a cancellation.
	if cancelled(ctx) {
		return nil, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
	}
	return result, nil
}

func (c *Client) decode(raw []byte) (Result, error) {
	if !json.Valid(raw) {
		return nil, errors.New("decode evaluation response: body is not JSON")
	}
	if err := validateEnvelope(raw); err != nil {
		c.logger.Debug("evaluation response rejected", "error", err)
		return nil, ErrMissingResult
	}

	var envelope struct {
		ProfileEvaluation Result `json:"profile_evaluation"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode evaluation response: %w", err)
	}
	if len(envelope.ProfileEvaluation) == 0 {
		return nil, ErrEmptyResult
	}
	return envelope.ProfileEvaluation, nil
}

func cancelled(ctx context.Context) bool {
	return errors.Is(ctx.Err(), context.Canceled)
}
