// Package quiz holds the static question bank for the two evaluation tracks.
//
// Everything here is configuration: tracks, screens, questions and options
// are declared once and never mutated. Conditional questions carry a small
// pure Predicate over the answers recorded so far; questions with dynamic
// options pick their option set from an earlier answer.
package quiz

// Background selects which question track is active.
type Background string

const (
	BackgroundNone    Background = ""
	BackgroundTech    Background = "tech"
	BackgroundNonTech Background = "non-tech"
)

// Valid reports whether b names one of the two tracks.
func (b Background) Valid() bool {
	return b == BackgroundTech || b == BackgroundNonTech
}

// DisplayName returns the human-readable track name.
func (b Background) DisplayName() string {
	switch b {
	case BackgroundTech:
		return "Tech Professional"
	case BackgroundNonTech:
		return "Non-Tech / Career Switcher"
	default:
		return "Not selected"
	}
}

// Responses maps question ids to the recorded answer values. Label
// companions are stored under "<questionID>Label".
type Responses map[string]string

// Answered reports whether an entry exists for id.
func (r Responses) Answered(id string) bool {
	_, ok := r[id]
	return ok
}

// Predicate decides whether a conditional question is shown.
type Predicate func(Responses) bool

// Option is one selectable answer.
type Option struct {
	Value string
	Label string
}

// Question is a single multiple-choice prompt.
type Question struct {
	ID         string
	Text       string
	HelperText string
	Options    []Option

	// Optional questions never block screen completion.
	Optional bool

	// Conditional questions are shown only when ShowIf returns true.
	Conditional bool
	ShowIf      Predicate

	// DynamicOptions questions take their options from OptionsByRole,
	// keyed by the answer to RoleQuestionID.
	DynamicOptions bool
	OptionsByRole  map[string][]Option
}

// Screen groups questions shown together.
type Screen struct {
	ID              string
	InitialChatText string
	Questions       []Question

	// ChatResponses maps question id → answer value → acknowledgment text.
	ChatResponses map[string]map[string]string
}

// Track is the ordered list of screens for one background.
type Track struct {
	Background Background
	Screens    []Screen
}

const (
	// RoleQuestionID is the answer dynamic-option questions are keyed by.
	RoleQuestionID = "currentRole"

	// FallbackRole is used when the recorded role has no option set.
	FallbackRole = "swe-product"

	// LabelSuffix is appended to a question id to store its option label.
	LabelSuffix = "Label"
)

// LabelFields lists the questions whose option label is recorded next to
// the value, for display by the evaluation service.
var LabelFields = map[string]bool{
	"currentRole":       true,
	"targetRole":        true,
	"targetCompany":     true,
	"currentBackground": true,
}

// LabelKey returns the response key holding the label for id.
func LabelKey(id string) string {
	return id + LabelSuffix
}

// TrackFor returns the track for b. Without a background the non-tech track
// is used, which only matters for counting steps before a choice is made.
func TrackFor(b Background) Track {
	if b == BackgroundTech {
		return techTrack
	}
	return nonTechTrack
}

// Tracks returns both tracks.
func Tracks() []Track {
	return []Track{techTrack, nonTechTrack}
}

// Visible reports whether q should be shown for the given answers.
func (q Question) Visible(r Responses) bool {
	if q.Conditional && q.ShowIf != nil {
		return q.ShowIf(r)
	}
	return true
}

// OptionsFor resolves the options shown for q. Dynamic questions fall back
// to FallbackRole's options for unknown roles and to nil when that is
// missing too; Validate reports the latter as a configuration defect.
func (q Question) OptionsFor(r Responses) []Option {
	if !q.DynamicOptions {
		return q.Options
	}
	if opts, ok := q.OptionsByRole[r[RoleQuestionID]]; ok {
		return opts
	}
	return q.OptionsByRole[FallbackRole]
}

// FindOption returns the option with the given value.
func (q Question) FindOption(r Responses, value string) (Option, bool) {
	for _, o := range q.OptionsFor(r) {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// ChatResponse returns the acknowledgment text for answering questionID
// with value, if the screen defines one.
func (s Screen) ChatResponse(questionID, value string) (string, bool) {
	byValue, ok := s.ChatResponses[questionID]
	if !ok {
		return "", false
	}
	text, ok := byValue[value]
	return text, ok
}

// VisibleQuestions returns the questions of s shown for r.
func (s Screen) VisibleQuestions(r Responses) []Question {
	out := make([]Question, 0, len(s.Questions))
	for _, q := range s.Questions {
		if q.Visible(r) {
			out = append(out, q)
		}
	}
	return out
}

// Complete reports whether every visible, non-optional question on s has
// an answer.
func (s Screen) Complete(r Responses) bool {
	for _, q := range s.Questions {
		if q.Optional || !q.Visible(r) {
			continue
		}
		if !r.Answered(q.ID) {
			return false
		}
	}
	return true
}
