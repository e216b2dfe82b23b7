// Package flow drives the step-by-step quiz: which step is showing, whether
// the user may move on, and where navigation leads.
package flow

import (
	"fmt"

	"github.com/abhisek/cpe/internal/profile"
	"github.com/abhisek/cpe/internal/quiz"
)

// Transition is the outcome of a navigation request.
type Transition int

const (
	// Blocked means the current step is incomplete; nothing changed.
	Blocked Transition = iota
	// Moved means the step changed within the quiz.
	Moved
	// ToHome means the user backed out of the first step.
	ToHome
	// ToResults means the last step was completed.
	ToResults
)

func (t Transition) String() string {
	switch t {
	case Blocked:
		return "blocked"
	case Moved:
		return "moved"
	case ToHome:
		return "to-home"
	case ToResults:
		return "to-results"
	default:
		return fmt.Sprintf("transition(%d)", int(t))
	}
}

// Controller is the quiz state machine. Step 0 is the background choice and
// step k >= 1 shows screen k-1 of the selected track. Answers live in the
// profile store; the controller owns only the step and the chat text.
type Controller struct {
	store    *profile.Store
	step     int
	chatText string
}

// New returns a controller positioned at the background step.
func New(store *profile.Store) *Controller {
	return &Controller{store: store, chatText: quiz.IntroChatText}
}

// Step returns the current step index.
func (c *Controller) Step() int { return c.step }

// Screens returns the screens of the selected track. Before a background
// is chosen the non-tech track is used for counting.
func (c *Controller) Screens() []quiz.Screen {
	return quiz.TrackFor(c.store.Background()).Screens
}

// TotalSteps is the background step plus one step per screen.
func (c *Controller) TotalSteps() int {
	return 1 + len(c.Screens())
}

// CurrentScreen returns the screen shown at the current step. ok is false
// at the background step.
func (c *Controller) CurrentScreen() (quiz.Screen, bool) {
	if c.step == 0 {
		return quiz.Screen{}, false
	}
	return c.screenAt(c.step), true
}

func (c *Controller) screenAt(step int) quiz.Screen {
	screens := c.Screens()
	if step < 1 || step > len(screens) {
		panic(fmt.Sprintf("flow: step %d out of range [1, %d]", step, len(screens)))
	}
	return screens[step-1]
}

// CanProceed reports whether the current step is complete.
func (c *Controller) CanProceed() bool {
	if c.step == 0 {
		return c.store.Background() != quiz.BackgroundNone
	}
	return c.screenAt(c.step).Complete(c.store.Responses())
}

// Next moves forward, or reports ToResults from the last step.
func (c *Controller) Next() Transition {
	if !c.CanProceed() {
		return Blocked
	}
	if c.step < c.TotalSteps()-1 {
		c.enter(c.step + 1)
		return Moved
	}
	return ToResults
}

// Previous moves back. Leaving the first screen discards the background and
// every answer so the user starts over with a clean track.
func (c *Controller) Previous() Transition {
	switch c.step {
	case 0:
		return ToHome
	case 1:
		c.store.ClearQuizResponses()
		c.store.SetBackground(quiz.BackgroundNone)
		c.enter(0)
		return Moved
	default:
		c.enter(c.step - 1)
		return Moved
	}
}

// JumpTo moves to an earlier step without touching any answers. Jumps to the
// current or a later step are refused.
func (c *Controller) JumpTo(step int) bool {
	if step < 0 || step >= c.step {
		return false
	}
	c.enter(step)
	return true
}

// SelectBackground records the track. Switching to a different track drops
// the answers given for the old one. It always requests an auto-advance.
func (c *Controller) SelectBackground(b quiz.Background) bool {
	prev := c.store.Background()
	if prev != quiz.BackgroundNone && prev != b {
		c.store.ClearQuizResponses()
	}
	c.store.SetBackground(b)
	return true
}

// Answer records opt for questionID on the current screen. It returns true
// when this answer completed the screen and an auto-advance should be
// scheduled. Re-selecting the recorded value does nothing.
func (c *Controller) Answer(questionID string, opt quiz.Option) bool {
	screen, ok := c.CurrentScreen()
	if !ok {
		return false
	}
	if cur, ok := c.store.Responses()[questionID]; ok && cur == opt.Value {
		return false
	}

	before := c.CanProceed()
	visible := screen.VisibleQuestions(c.store.Responses())

	c.store.SetQuizResponse(questionID, opt.Value)
	if quiz.LabelFields[questionID] {
		c.store.SetQuizResponse(quiz.LabelKey(questionID), opt.Label)
	}

	if len(visible) > 1 && visible[len(visible)-1].ID != questionID {
		if text, ok := screen.ChatResponse(questionID, opt.Value); ok {
			c.chatText = text
		}
	}

	return !before && c.CanProceed()
}

// ChatText returns the assistant line shown next to the current step.
func (c *Controller) ChatText() string { return c.chatText }

// Progress returns the fraction of steps reached, in (0, 1].
func (c *Controller) Progress() float64 {
	return float64(c.step+1) / float64(c.TotalSteps())
}

// ShouldRedirect reports whether an evaluation already exists, in which case
// the quiz is skipped in favour of the results.
func (c *Controller) ShouldRedirect() bool {
	return c.store.Results() != nil
}

// VisibleQuestions returns the current screen's shown questions with their
// options resolved for the recorded role.
func (c *Controller) VisibleQuestions() []quiz.Question {
	screen, ok := c.CurrentScreen()
	if !ok {
		return nil
	}
	r := c.store.Responses()
	qs := screen.VisibleQuestions(r)
	for i := range qs {
		qs[i].Options = qs[i].OptionsFor(r)
		qs[i].DynamicOptions = false
	}
	return qs
}

// Answered returns the recorded value for questionID.
func (c *Controller) Answered(questionID string) (string, bool) {
	v, ok := c.store.Responses()[questionID]
	return v, ok
}

func (c *Controller) enter(step int) {
	c.step = step
	if step == 0 {
		c.chatText = quiz.IntroChatText
		return
	}
	c.chatText = c.screenAt(step).InitialChatText
}
