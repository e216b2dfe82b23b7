// Package profile holds the user's quiz answers, goals and last evaluation,
// persisted as a single JSON document.
package profile

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"github.com/abhisek/cpe/internal/evaluation"
	"github.com/abhisek/cpe/internal/quiz"
)

// StorageKey is the key the state is persisted under.
const StorageKey = "scalerProfileState"

// storageTimeout bounds a single save or delete.
const storageTimeout = 5 * time.Second

// Storage is a durable key/value store.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// GoalsPatch updates goals. Nil fields are left unchanged.
type GoalsPatch struct {
	RequirementType []string
	TargetCompany   *string
	TopicOfInterest []string
}

// Store is the profile state container. Every mutation is persisted on a
// best-effort basis: storage failures are logged and never surface to the
// caller.
type Store struct {
	mu      sync.RWMutex
	state   State
	storage Storage
	logger  *slog.Logger
}

// Open rehydrates the state from storage. A missing or unreadable record
// yields the default state. A nil storage keeps the state in memory only.
func Open(ctx context.Context, storage Storage, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{
		state:   DefaultState(),
		storage: storage,
		logger:  logger.With("component", "profile"),
	}
	if storage == nil {
		return s
	}

	raw, ok, err := storage.Get(ctx, StorageKey)
	switch {
	case err != nil:
		s.logger.Warn("failed to load profile state", "error", err)
	case !ok:
		s.logger.Debug("no saved profile state")
	default:
		st := DefaultState()
		if err := json.Unmarshal(raw, &st); err != nil {
			s.logger.Warn("discarding unreadable profile state", "error", err)
			break
		}
		st.normalise()
		s.state = st
	}
	return s
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *Store) Background() quiz.Background {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Background
}

// Responses returns a copy of the recorded answers.
func (s *Store) Responses() quiz.Responses {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.state.QuizResponses)
}

func (s *Store) Goals() evaluation.Goals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone().Goals
}

// Results returns the last evaluation, or nil if there is none.
func (s *Store) Results() evaluation.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneResult(s.state.EvaluationResults)
}

// SetBackground records the selected track.
func (s *Store) SetBackground(b quiz.Background) {
	s.update(func(st *State) bool {
		st.Background = b
		return true
	})
}

// SetQuizResponse records an answer. Recording the value already held is a
// no-op and does not save.
func (s *Store) SetQuizResponse(questionID, value string) {
	s.update(func(st *State) bool {
		if cur, ok := st.QuizResponses[questionID]; ok && cur == value {
			return false
		}
		st.QuizResponses[questionID] = value
		return true
	})
}

// ClearQuizResponses drops every recorded answer.
func (s *Store) ClearQuizResponses() {
	s.update(func(st *State) bool {
		st.QuizResponses = quiz.Responses{}
		return true
	})
}

// SetGoals merges p into the current goals.
func (s *Store) SetGoals(p GoalsPatch) {
	s.update(func(st *State) bool {
		if p.RequirementType != nil {
			st.Goals.RequirementType = slices.Clone(p.RequirementType)
		}
		if p.TargetCompany != nil {
			st.Goals.TargetCompany = *p.TargetCompany
		}
		if p.TopicOfInterest != nil {
			st.Goals.TopicOfInterest = slices.Clone(p.TopicOfInterest)
		}
		return true
	})
}

// SetEvaluationResults stores the latest evaluation. Nil clears it.
func (s *Store) SetEvaluationResults(r evaluation.Result) {
	s.update(func(st *State) bool {
		st.EvaluationResults = cloneResult(r)
		return true
	})
}

// Reset restores the default state and removes the persisted record. The
// default state itself is not written back.
func (s *Store) Reset() {
	s.mu.Lock()
	s.state = DefaultState()
	s.mu.Unlock()

	if s.storage == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	if err := s.storage.Delete(ctx, StorageKey); err != nil {
		s.logger.Warn("failed to delete profile state", "error", err)
	}
}

// update applies fn under the lock and saves if fn reports a change.
func (s *Store) update(fn func(*State) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !fn(&s.state) || s.storage == nil {
		return
	}
	raw, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Warn("failed to encode profile state", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	if err := s.storage.Put(ctx, StorageKey, raw); err != nil {
		s.logger.Warn("failed to save profile state", "error", err)
	}
}
