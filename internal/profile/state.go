package profile

import (
	"maps"
	"slices"

	json "github.com/goccy/go-json"

	"github.com/abhisek/cpe/internal/evaluation"
	"github.com/abhisek/cpe/internal/quiz"
)

// State is everything the tool remembers about the user.
type State struct {
	Background        quiz.Background
	QuizResponses     quiz.Responses
	Goals             evaluation.Goals
	EvaluationResults evaluation.Result
}

// DefaultState returns the state of a first-time user.
func DefaultState() State {
	return State{
		QuizResponses: quiz.Responses{},
		Goals: evaluation.Goals{
			RequirementType: []string{},
			TopicOfInterest: []string{},
		},
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{
		Background:    s.Background,
		QuizResponses: maps.Clone(s.QuizResponses),
		Goals: evaluation.Goals{
			RequirementType: slices.Clone(s.Goals.RequirementType),
			TargetCompany:   s.Goals.TargetCompany,
			TopicOfInterest: slices.Clone(s.Goals.TopicOfInterest),
		},
		EvaluationResults: cloneResult(s.EvaluationResults),
	}
	out.normalise()
	return out
}

// normalise replaces nil collections with empty ones.
func (s *State) normalise() {
	if s.QuizResponses == nil {
		s.QuizResponses = quiz.Responses{}
	}
	if s.Goals.RequirementType == nil {
		s.Goals.RequirementType = []string{}
	}
	if s.Goals.TopicOfInterest == nil {
		s.Goals.TopicOfInterest = []string{}
	}
}

// persistedState is the stored JSON shape. A missing background is null.
type persistedState struct {
	Background        *quiz.Background  `json:"background"`
	QuizResponses     quiz.Responses    `json:"quizResponses"`
	Goals             evaluation.Goals  `json:"goals"`
	EvaluationResults evaluation.Result `json:"evaluationResults"`
}

func (s State) MarshalJSON() ([]byte, error) {
	p := persistedState{
		QuizResponses:     s.QuizResponses,
		Goals:             s.Goals,
		EvaluationResults: s.EvaluationResults,
	}
	if s.Background != quiz.BackgroundNone {
		b := s.Background
		p.Background = &b
	}
	return json.Marshal(p)
}

// UnmarshalJSON decodes onto the current value, so fields absent from data
// keep whatever s already held.
func (s *State) UnmarshalJSON(data []byte) error {
	p := persistedState{
		QuizResponses:     s.QuizResponses,
		Goals:             s.Goals,
		EvaluationResults: s.EvaluationResults,
	}
	if s.Background != quiz.BackgroundNone {
		b := s.Background
		p.Background = &b
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	s.Background = quiz.BackgroundNone
	if p.Background != nil && p.Background.Valid() {
		s.Background = *p.Background
	}
	s.QuizResponses = p.QuizResponses
	s.Goals = p.Goals
	s.EvaluationResults = p.EvaluationResults
	return nil
}

// cloneResult deep-copies the JSON-shaped result tree.
func cloneResult(r evaluation.Result) evaluation.Result {
	if r == nil {
		return nil
	}
	out := make(evaluation.Result, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case evaluation.Result:
		return cloneResult(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
