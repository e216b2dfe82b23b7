package quiz

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig wraps every configuration defect reported by Validate.
var ErrInvalidConfig = errors.New("invalid quiz configuration")

// Validate checks a track for defects that would render an unusable
// screen: duplicate question ids, conditional questions without a
// predicate, and questions that resolve to no options. Dynamic questions
// are checked for the fallback role, which is what unknown roles get.
func Validate(t Track) error {
	if !t.Background.Valid() {
		return fmt.Errorf("%w: track has background %q", ErrInvalidConfig, t.Background)
	}
	if len(t.Screens) == 0 {
		return fmt.Errorf("%w: %s track has no screens", ErrInvalidConfig, t.Background)
	}

	var errs []error
	seenScreens := make(map[string]bool)
	for _, s := range t.Screens {
		if seenScreens[s.ID] {
			errs = append(errs, fmt.Errorf("%w: %s: duplicate screen %q", ErrInvalidConfig, t.Background, s.ID))
		}
		seenScreens[s.ID] = true

		if len(s.Questions) == 0 {
			errs = append(errs, fmt.Errorf("%w: %s/%s: no questions", ErrInvalidConfig, t.Background, s.ID))
		}

		seen := make(map[string]bool)
		for _, q := range s.Questions {
			where := fmt.Sprintf("%s/%s/%s", t.Background, s.ID, q.ID)
			if seen[q.ID] {
				errs = append(errs, fmt.Errorf("%w: %s: duplicate question id", ErrInvalidConfig, where))
			}
			seen[q.ID] = true

			if q.Conditional && q.ShowIf == nil {
				errs = append(errs, fmt.Errorf("%w: %s: conditional question without predicate", ErrInvalidConfig, where))
			}

			if q.DynamicOptions {
				if len(q.OptionsByRole[FallbackRole]) == 0 {
					errs = append(errs, fmt.Errorf("%w: %s: no options for fallback role %q", ErrInvalidConfig, where, FallbackRole))
				}
				continue
			}
			if len(q.Options) == 0 {
				errs = append(errs, fmt.Errorf("%w: %s: no options", ErrInvalidConfig, where))
			}
		}

		for qid := range s.ChatResponses {
			if !seen[qid] {
				errs = append(errs, fmt.Errorf("%w: %s/%s: chat responses for unknown question %q", ErrInvalidConfig, t.Background, s.ID, qid))
			}
		}
	}
	return errors.Join(errs...)
}

// ValidateAll validates both tracks.
func ValidateAll() error {
	var errs []error
	for _, t := range Tracks() {
		if err := Validate(t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
