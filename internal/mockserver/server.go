// Package mockserver is a local stand-in for the evaluation service. It
// accepts the same request shape and answers with a canned evaluation, so the
// tool can be exercised without the real backend.
package mockserver

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	json "github.com/goccy/go-json"

	"github.com/abhisek/cpe/internal/evaluation"
)

// MountPath is the prefix every route is served under.
const MountPath = "/career-profile-tool/api"

const maxBodyBytes = 1 << 20

//go:embed sample.json
var sampleEvaluation []byte

// Options configures the server.
type Options struct {
	// Delay is added before every evaluation response.
	Delay time.Duration

	// AllowedOrigins for CORS. Defaults to the local web frontend.
	AllowedOrigins []string

	Logger *slog.Logger
}

type server struct {
	opts   Options
	logger *slog.Logger
}

// NewHandler returns the HTTP handler for the mock service.
func NewHandler(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"http://localhost:3000"}
	}
	s := &server{opts: opts, logger: opts.Logger.With("component", "mockserver")}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, s.requestLogger, middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Route(MountPath, func(r chi.Router) {
		r.Post("/evaluate", s.evaluate)
		r.Get("/health", health)
		r.Head("/health", health)
	})
	return r
}

// ListenAndServe serves the mock service on addr until ctx is cancelled.
// ready, if non-nil, receives the bound address once listening.
func ListenAndServe(ctx context.Context, addr string, opts Options, ready func(net.Addr)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           NewHandler(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if ready != nil {
		ready(ln.Addr())
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) evaluate(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"detail": "could not read request body"})
		return
	}
	if err := evaluation.ValidatePayload(raw); err != nil {
		s.logger.Info("rejected evaluation request", "request_id", middleware.GetReqID(r.Context()), "error", err)
		respondJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": err.Error()})
		return
	}

	var p evaluation.Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": err.Error()})
		return
	}

	if s.opts.Delay > 0 {
		select {
		case <-time.After(s.opts.Delay):
		case <-r.Context().Done():
			return
		}
	}

	result, err := personalise(p)
	if err != nil {
		s.logger.Error("build sample evaluation", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to generate evaluation. Check server logs for details."})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"profile_evaluation": result})
}

// personalise fills the sample with details from the request.
func personalise(p evaluation.Payload) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal(sampleEvaluation, &out); err != nil {
		return nil, err
	}
	q := p.QuizResponses

	if cp, ok := out["current_profile"].(map[string]any); ok {
		cp["key_stats"] = []map[string]string{
			{"label": "Background", "value": p.Background.DisplayName(), "icon": "user"},
			{"label": "Experience", "value": q.Experience + " years", "icon": "briefcase"},
			{"label": "Current Role", "value": firstNonEmpty(q.CurrentRoleLabel, q.CurrentRole), "icon": "identification-badge"},
			{"label": "Target Role", "value": firstNonEmpty(q.TargetRoleLabel, q.TargetRole), "icon": "target"},
		}
	}
	if eb, ok := out["experience_benchmark"].(map[string]any); ok {
		eb["your_experience_years"] = q.Experience
	}
	if len(p.Goals.TopicOfInterest) > 0 {
		if badges, ok := out["badges"].([]any); ok {
			out["badges"] = append(badges, fmt.Sprintf("Interested in %d topics", len(p.Goals.TopicOfInterest)))
		}
	}
	return out, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}
