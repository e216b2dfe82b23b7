package evaluation

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cpe/internal/quiz"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(Config{BaseURL: server.URL, Path: "/api/evaluate", Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c
}

func testPayload(t *testing.T) Payload {
	t.Helper()
	p, err := BuildPayload(quiz.Responses{"currentRole": "swe-product"}, Goals{TopicOfInterest: []string{"ai-ml"}}, quiz.BackgroundTech)
	require.NoError(t, err)
	return p
}

func TestClient_Evaluate_HappyPath(t *testing.T) {
	var got Payload
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/evaluate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-123", r.Header.Get("X-Request-Id"))

		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"profile_evaluation":{"profile_strength_score":72,"profile_strength_status":"Good"}}`))
	})

	ctx := WithRequestID(context.Background(), "req-123")
	res, err := c.Evaluate(ctx, testPayload(t))
	require.NoError(t, err)

	assert.Equal(t, "Good", res["profile_strength_status"])
	assert.EqualValues(t, 72, res["profile_strength_score"])
	assert.Equal(t, quiz.BackgroundTech, got.Background)
	assert.Equal(t, "Product Company", got.QuizResponses.CurrentCompany)
}

func TestClient_Evaluate_NonSuccessStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	})

	_, err := c.Evaluate(context.Background(), testPayload(t))
	require.Error(t, err)

	var bad *ErrBadResponse
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, http.StatusInternalServerError, bad.StatusCode)
	assert.Equal(t, "upstream exploded", bad.Body)
	assert.Equal(t, "evaluation request failed with status 500: upstream exploded", err.Error())
	assert.NotErrorIs(t, err, ErrCancelled)
}

func TestClient_Evaluate_NonSuccessEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Evaluate(context.Background(), testPayload(t))
	require.Error(t, err)
	assert.Equal(t, "evaluation request failed with status 502: Unknown error", err.Error())
}

func TestClient_Evaluate_BadBodies(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"missing envelope", `{"result":{}}`, ErrMissingResult},
		{"envelope not an object", `{"profile_evaluation":"nope"}`, ErrMissingResult},
		{"null envelope", `{"profile_evaluation":null}`, ErrMissingResult},
		{"empty result", `{"profile_evaluation":{}}`, ErrEmptyResult},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			_, err := c.Evaluate(context.Background(), testPayload(t))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var bad *ErrBadResponse
			assert.ErrorAs(t, err, &bad)
		})
	}

	t.Run("not JSON", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>oops</html>"))
		})
		_, err := c.Evaluate(context.Background(), testPayload(t))
		var bad *ErrBadResponse
		require.ErrorAs(t, err, &bad)
		assert.Equal(t, http.StatusOK, bad.StatusCode)
	})
}

func TestClient_Evaluate_Cancelled(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := c.Evaluate(ctx, testPayload(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCancelled)

	var bad *ErrBadResponse
	assert.False(t, errors.As(err, &bad), "cancellation must not look like a bad response")
}

func TestClient_Evaluate_TimeoutIsBadResponse(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(server.Close)
	defer close(release)

	c, err := NewClient(Config{BaseURL: server.URL, Path: "/api/evaluate", Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.Evaluate(context.Background(), testPayload(t))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCancelled)

	var bad *ErrBadResponse
	assert.ErrorAs(t, err, &bad)
}

func TestClient_Evaluate_InvalidPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent")
	})

	_, err := c.Evaluate(context.Background(), Payload{Background: "other"})
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestEvaluateProfile_MissingBackground(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent")
	})

	_, err := EvaluateProfile(context.Background(), c, quiz.Responses{}, Goals{}, quiz.BackgroundNone)
	assert.ErrorIs(t, err, ErrBackgroundRequired)
}

func TestConfig(t *testing.T) {
	def := DefaultConfig()
	require.NoError(t, def.Validate())
	assert.Equal(t, "http://localhost:8000/career-profile-tool/api/evaluate", def.Endpoint())

	trailing := Config{BaseURL: "https://example.com/base/", Path: "/api/evaluate", Timeout: time.Second}
	assert.Equal(t, "https://example.com/base/api/evaluate", trailing.Endpoint())

	tests := []struct {
		name string
		cfg  Config
	}{
		{"bad scheme", Config{BaseURL: "ftp://example.com", Path: "/x", Timeout: time.Second}},
		{"no host", Config{BaseURL: "http://", Path: "/x", Timeout: time.Second}},
		{"relative", Config{BaseURL: "example.com", Path: "/x", Timeout: time.Second}},
		{"zero timeout", Config{BaseURL: "http://example.com", Path: "/x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
			_, err := NewClient(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestErrBadResponse_Message(t *testing.T) {
	assert.Equal(t, "evaluation request failed with status 418", (&ErrBadResponse{StatusCode: 418}).Error())
	assert.Equal(t, "evaluation request failed", (&ErrBadResponse{}).Error())
}
