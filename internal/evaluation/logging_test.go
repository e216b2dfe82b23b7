package evaluation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cpe/internal/store"
)

type fakeEvaluator struct {
	result Result
	err    error
	gotID  string
}

func (f *fakeEvaluator) Evaluate(ctx context.Context, _ Payload) (Result, error) {
	f.gotID = RequestIDFrom(ctx)
	return f.result, f.err
}

type fakeEventRepo struct {
	mu        sync.Mutex
	events    []store.EvaluationRequestEventData
	appendErr error
}

func (r *fakeEventRepo) AppendEvaluationRequest(_ context.Context, data store.EvaluationRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return r.appendErr
	}
	r.events = append(r.events, data)
	return nil
}

func (r *fakeEventRepo) QueryEvaluationRequests(context.Context, store.QueryOpts) ([]store.EvaluationRequestRecord, error) {
	return nil, nil
}

func (r *fakeEventRepo) GetEvaluationRequest(context.Context, int) (*store.EvaluationRequestRecord, error) {
	return nil, nil
}

func TestWithLogging_Success(t *testing.T) {
	inner := &fakeEvaluator{result: Result{"profile_strength_score": 80}}
	repo := &fakeEventRepo{}
	ev := WithLogging(inner, repo, nil, "http://svc/api/evaluate")

	res, err := ev.Evaluate(context.Background(), testPayload(t))
	require.NoError(t, err)
	assert.Equal(t, inner.result, res)

	require.Len(t, repo.events, 1)
	e := repo.events[0]
	assert.True(t, e.Success)
	assert.False(t, e.Cancelled)
	assert.Equal(t, "tech", e.Background)
	assert.Equal(t, "http://svc/api/evaluate", e.Endpoint)
	assert.NotEmpty(t, e.RequestID)
	assert.Equal(t, e.RequestID, inner.gotID, "request id must reach the inner evaluator")
	assert.Contains(t, e.RequestBody, `"background":"tech"`)
	assert.Contains(t, e.ResponseBody, `"profile_strength_score":80`)
	assert.Empty(t, e.ErrorMessage)
}

func TestWithLogging_KeepsCallerRequestID(t *testing.T) {
	inner := &fakeEvaluator{result: Result{"x": 1}}
	repo := &fakeEventRepo{}
	ev := WithLogging(inner, repo, nil, "")

	_, err := ev.Evaluate(WithRequestID(context.Background(), "fixed"), testPayload(t))
	require.NoError(t, err)
	assert.Equal(t, "fixed", inner.gotID)
	assert.Equal(t, "fixed", repo.events[0].RequestID)
}

func TestWithLogging_BadResponse(t *testing.T) {
	inner := &fakeEvaluator{err: &ErrBadResponse{StatusCode: 503, Body: "down", Err: errors.New("evaluation request failed with status 503: down")}}
	repo := &fakeEventRepo{}
	ev := WithLogging(inner, repo, nil, "")

	_, err := ev.Evaluate(context.Background(), testPayload(t))
	require.Error(t, err)

	e := repo.events[0]
	assert.False(t, e.Success)
	assert.False(t, e.Cancelled)
	assert.Equal(t, 503, e.StatusCode)
	assert.Equal(t, "down", e.ResponseBody)
	assert.Contains(t, e.ErrorMessage, "status 503")
}

func TestWithLogging_Cancelled(t *testing.T) {
	inner := &fakeEvaluator{err: ErrCancelled}
	repo := &fakeEventRepo{}
	ev := WithLogging(inner, repo, nil, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ev.Evaluate(ctx, testPayload(t))
	assert.ErrorIs(t, err, ErrCancelled)

	require.Len(t, repo.events, 1, "cancelled requests are still recorded")
	assert.True(t, repo.events[0].Cancelled)
}

func TestWithLogging_AppendFailureDoesNotFailRequest(t *testing.T) {
	inner := &fakeEvaluator{result: Result{"x": 1}}
	repo := &fakeEventRepo{appendErr: errors.New("disk full")}
	ev := WithLogging(inner, repo, nil, "")

	res, err := ev.Evaluate(context.Background(), testPayload(t))
	require.NoError(t, err)
	assert.Equal(t, inner.result, res)
}
