package evaluation

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the caller abandons a request. It is an
// expected outcome: callers must neither show it nor store anything.
var ErrCancelled = errors.New("evaluation cancelled")

// ErrMissingResult indicates a response without a "profile_evaluation" object.
var ErrMissingResult = errors.New(`evaluation response missing "profile_evaluation" payload`)

// ErrEmptyResult indicates a "profile_evaluation" object with no keys.
var ErrEmptyResult = errors.New("evaluation service returned an empty response")

// ErrInvalidPayload indicates a request body that does not match the
// service's request schema. It points at a mapping defect, not user input.
var ErrInvalidPayload = errors.New("invalid evaluation payload")

// ErrBadResponse reports a failed evaluation: the request could not be sent,
// the service answered with a non-2xx status, or the body had the wrong
// shape. Its message is safe to show to the user.
type ErrBadResponse struct {
	// StatusCode is 0 when no response was received.
	StatusCode int
	Body       string
	Err        error
}

func (e *ErrBadResponse) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("evaluation request failed with status %d", e.StatusCode)
	}
	return "evaluation request failed"
}

func (e *ErrBadResponse) Unwrap() error { return e.Err }
