package results

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cpe/internal/evaluation"
	"github.com/abhisek/cpe/internal/quiz"
	"github.com/abhisek/cpe/internal/report"
	"github.com/abhisek/cpe/internal/router"
	"github.com/abhisek/cpe/internal/screen"
	"github.com/abhisek/cpe/internal/screens"
	"github.com/abhisek/cpe/internal/ui/components"
	"github.com/abhisek/cpe/internal/ui/layout"
	"github.com/abhisek/cpe/internal/ui/theme"
)

// LoadingStep is one status message of the loading view.
type LoadingStep struct {
	Text    string
	Subtext string
}

// LoadingSteps cycle while an evaluation is in flight.
var LoadingSteps = []LoadingStep{
	{"Evaluating your profile...", "Analyzing your skills and experience"},
	{"Making sure your profile is thoroughly checked...", "Cross-referencing with industry standards"},
	{"Bringing up relevant jobs...", "Finding opportunities that match your profile"},
	{"Predicting your career readiness score...", "Calculating your success likelihood"},
	{"Generating personalized insights...", "Almost there!"},
	{"Finalizing your report...", "Preparing your results"},
}

const (
	stepInterval     = 2500 * time.Millisecond
	progressInterval = 150 * time.Millisecond
	progressCap      = 95
)

var errNoEvaluator = errors.New("no evaluation service is configured")

type phase int

const (
	phaseLoading phase = iota
	phaseDone
	phaseFailed
)

type evaluatedMsg struct {
	attempt int
	result  evaluation.Result
	err     error
}

type progressTickMsg struct{ attempt int }

type stepTickMsg struct{ attempt int }

// ResultsScreen runs one evaluation at a time and shows its report.
type ResultsScreen struct {
	env     screens.Env
	phase   phase
	result  evaluation.Result
	err     error
	attempt int
	cancel  context.CancelFunc
	closed  bool

	progress int
	step     int
	spinner  spinner.Model
	offset   int
	height   int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.Closer = (*ResultsScreen)(nil)

// New creates a results screen.
func New(env screens.Env) *ResultsScreen {
	return &ResultsScreen{
		env:     env,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Init shows stored results, or starts an evaluation. Without a background
// or any answers there is nothing to evaluate and the user is sent home.
func (s *ResultsScreen) Init() tea.Cmd {
	if r := s.env.Profile.Results(); r != nil {
		s.phase = phaseDone
		s.result = r
		return nil
	}
	if s.env.Profile.Background() == quiz.BackgroundNone || len(s.env.Profile.Responses()) == 0 {
		return func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s.start()
}

func (s *ResultsScreen) start() tea.Cmd {
	req := s.begin()
	if req == nil {
		return nil
	}
	return tea.Batch(req, s.spinner.Tick, progressTick(s.attempt), stepTick(s.attempt))
}

// begin resets the loading state and returns the request command, or nil
// when no evaluator is available.
func (s *ResultsScreen) begin() tea.Cmd {
	s.stop()
	s.attempt++
	s.progress = 0
	s.step = 0
	s.offset = 0
	s.result = nil
	s.err = nil

	if s.env.Evaluator == nil {
		s.phase = phaseFailed
		s.err = errNoEvaluator
		return nil
	}
	s.phase = phaseLoading

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	var (
		attempt    = s.attempt
		ev         = s.env.Evaluator
		snap       = s.env.Profile.Snapshot()
		minLoading = s.env.MinLoading
		logger     = s.env.Log()
		started    = time.Now()
	)

	return func() tea.Msg {
		logger.Debug("evaluation started", "attempt", attempt, "background", snap.Background)
		res, err := evaluation.EvaluateProfile(ctx, ev, snap.QuizResponses, snap.Goals, snap.Background)
		if errors.Is(err, evaluation.ErrCancelled) {
			return evaluatedMsg{attempt: attempt, err: err}
		}
		if wait := minLoading - time.Since(started); wait > 0 {
			t := time.NewTimer(wait)
			defer t.Stop()
			select {
			case <-t.C:
			case <-ctx.Done():
				return evaluatedMsg{attempt: attempt, err: evaluation.ErrCancelled}
			}
		}
		return evaluatedMsg{attempt: attempt, result: res, err: err}
	}
}

func progressTick(attempt int) tea.Cmd {
	return tea.Tick(progressInterval, func(time.Time) tea.Msg {
		return progressTickMsg{attempt: attempt}
	})
}

func stepTick(attempt int) tea.Cmd {
	return tea.Tick(stepInterval, func(time.Time) tea.Msg {
		return stepTickMsg{attempt: attempt}
	})
}

// stop cancels the in-flight request, if any.
func (s *ResultsScreen) stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Close cancels the in-flight request. A response arriving later is dropped.
func (s *ResultsScreen) Close() {
	s.closed = true
	s.stop()
}

func (s *ResultsScreen) Title() string {
	return "Your Career Report"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseLoading:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	case phaseFailed:
		return []layout.KeyHint{
			{Key: "r", Description: "Try again"},
			{Key: "Esc", Description: "Home"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "e", Description: "Re-evaluate"},
			{Key: "Esc", Description: "Home"},
		}
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case evaluatedMsg:
		return s, s.handleEvaluated(msg)

	case progressTickMsg:
		if msg.attempt != s.attempt || s.phase != phaseLoading {
			return s, nil
		}
		if s.progress < progressCap {
			s.progress++
		}
		return s, progressTick(s.attempt)

	case stepTickMsg:
		if msg.attempt != s.attempt || s.phase != phaseLoading {
			return s, nil
		}
		s.step = (s.step + 1) % len(LoadingSteps)
		return s, stepTick(s.attempt)

	case spinner.TickMsg:
		if s.phase != phaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s, s.handleKey(msg.String())
	}
	return s, nil
}

func (s *ResultsScreen) handleEvaluated(msg evaluatedMsg) tea.Cmd {
	if s.closed || msg.attempt != s.attempt || s.phase != phaseLoading {
		return nil
	}
	if errors.Is(msg.err, evaluation.ErrCancelled) {
		return nil
	}
	s.stop()

	if msg.err != nil {
		s.env.Log().Warn("evaluation failed", "attempt", msg.attempt, "error", msg.err)
		s.phase = phaseFailed
		s.err = msg.err
		return nil
	}

	s.env.Profile.SetEvaluationResults(msg.result)
	s.phase = phaseDone
	s.result = msg.result
	s.progress = 100
	return nil
}

func (s *ResultsScreen) handleKey(key string) tea.Cmd {
	switch key {
	case "esc":
		return func() tea.Msg { return router.PopToRootMsg{} }
	}

	switch s.phase {
	case phaseFailed:
		if key == "r" {
			return s.start()
		}
	case phaseDone:
		page := s.height - 2
		if page < 1 {
			page = 1
		}
		switch key {
		case "up", "k":
			s.offset--
		case "down", "j":
			s.offset++
		case "pgup":
			s.offset -= page
		case "pgdown", "space":
			s.offset += page
		case "home", "g":
			s.offset = 0
		case "e":
			s.env.Profile.SetEvaluationResults(nil)
			return func() tea.Msg { return router.PopToRootMsg{} }
		}
		if s.offset < 0 {
			s.offset = 0
		}
	}
	return nil
}

func (s *ResultsScreen) View(width, height int) string {
	s.height = height
	cw := components.ContentWidth(width)

	switch s.phase {
	case phaseLoading:
		return s.viewLoading(width, height, cw)
	case phaseFailed:
		return s.viewFailed(width, height, cw)
	}

	content, offset := layout.Viewport(report.Render(s.result, cw), s.offset, height)
	s.offset = offset
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func (s *ResultsScreen) viewLoading(width, height, cw int) string {
	step := LoadingSteps[s.step]

	var b strings.Builder
	b.WriteString(s.spinner.View() + " " + theme.Heading.Render(step.Text))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(step.Subtext))
	b.WriteString("\n\n")
	b.WriteString(components.NewProgressBar("", float64(s.progress)/100, true, cw-6).View())

	card := components.Card(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *ResultsScreen) viewFailed(width, height, cw int) string {
	var b strings.Builder
	b.WriteString(theme.ErrorText.Render("We couldn't evaluate your profile"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(describe(s.err)))
	b.WriteString("\n\n")
	if errors.Is(s.err, errNoEvaluator) {
		b.WriteString(theme.Hint.Render("Set an endpoint with --endpoint or CPE_ENDPOINT."))
	} else {
		b.WriteString(theme.Hint.Render("Press r to try again."))
	}

	card := components.Card(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// describe turns an evaluation error into a sentence for the user.
func describe(err error) string {
	var bad *evaluation.ErrBadResponse
	switch {
	case err == nil:
		return ""
	case errors.As(err, &bad) && bad.StatusCode != 0:
		return fmt.Sprintf("The evaluation service answered with HTTP %d. Please try again in a moment.", bad.StatusCode)
	case errors.Is(err, evaluation.ErrMissingResult), errors.Is(err, evaluation.ErrEmptyResult):
		return "The evaluation service returned an incomplete report."
	case errors.Is(err, evaluation.ErrInvalidPayload), errors.Is(err, evaluation.ErrBackgroundRequired):
		return "Your answers could not be sent: " + err.Error()
	default:
		return err.Error()
	}
}
