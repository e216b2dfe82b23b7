package history

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cpe/internal/router"
	"github.com/abhisek/cpe/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	records []store.EvaluationRequestRecord
	err     error
	opts    store.QueryOpts
}

func (m *mockEventRepo) AppendEvaluationRequest(_ context.Context, _ store.EvaluationRequestEventData) error {
	return nil
}

func (m *mockEventRepo) QueryEvaluationRequests(_ context.Context, opts store.QueryOpts) ([]store.EvaluationRequestRecord, error) {
	m.opts = opts
	return m.records, m.err
}

func (m *mockEventRepo) GetEvaluationRequest(_ context.Context, _ int) (*store.EvaluationRequestRecord, error) {
	return nil, nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testRecords() []store.EvaluationRequestRecord {
	now := time.Now()
	return []store.EvaluationRequestRecord{
		{ID: 2, Timestamp: now, EvaluationRequestEventData: store.EvaluationRequestEventData{
			RequestID: "req-2", Background: "tech", Success: true, StatusCode: 200, LatencyMs: 420,
		}},
		{ID: 1, Timestamp: now.Add(-time.Hour), EvaluationRequestEventData: store.EvaluationRequestEventData{
			RequestID: "req-1", Background: "non-tech", StatusCode: 502, ErrorMessage: "bad gateway",
		}},
	}
}

func loaded(t *testing.T, repo *mockEventRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
	return s
}

func TestLoadsRecentRequests(t *testing.T) {
	repo := &mockEventRepo{records: testRecords()}
	s := loaded(t, repo)

	assert.True(t, s.loaded)
	assert.Equal(t, historyLimit, repo.opts.Limit)

	view := s.View(120, 30)
	assert.Contains(t, view, "✓ ok")
	assert.Contains(t, view, "HTTP 502")
}

func TestExpandShowsDetails(t *testing.T) {
	s := loaded(t, &mockEventRepo{records: testRecords()})

	s.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 1, s.selected)
	s.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 1, s.selected, "selection clamps at the last entry")

	s.Update(specialKey(tea.KeyEnter))
	assert.Contains(t, s.View(120, 30), "Error: bad gateway")
}

func TestEmptyAndError(t *testing.T) {
	s := loaded(t, &mockEventRepo{})
	assert.Contains(t, s.View(100, 20), "No evaluations yet")

	s = loaded(t, &mockEventRepo{err: errors.New("disk I/O error")})
	assert.Contains(t, s.View(100, 20), "disk I/O error")
}

func TestNilRepo(t *testing.T) {
	s := New(nil)
	s.Update(s.Init()())
	assert.Contains(t, s.View(100, 20), "No evaluations yet")
}

func TestEscPops(t *testing.T) {
	s := New(&mockEventRepo{})
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}
