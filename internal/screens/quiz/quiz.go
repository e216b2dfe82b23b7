package quiz

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cpe/internal/flow"
	quizcfg "github.com/abhisek/cpe/internal/quiz"
	"github.com/abhisek/cpe/internal/router"
	"github.com/abhisek/cpe/internal/screen"
	"github.com/abhisek/cpe/internal/screens"
	"github.com/abhisek/cpe/internal/screens/goals"
	"github.com/abhisek/cpe/internal/screens/results"
	"github.com/abhisek/cpe/internal/ui/components"
	"github.com/abhisek/cpe/internal/ui/layout"
	"github.com/abhisek/cpe/internal/ui/theme"
)

// autoAdvanceMsg fires after a completed step has been shown for a moment.
type autoAdvanceMsg struct {
	ticket flow.Ticket
}

// QuizScreen walks the user through the background choice and the
// screens of the chosen track.
type QuizScreen struct {
	env    screens.Env
	ctrl   *flow.Controller
	auto   *flow.AutoAdvance
	ticket flow.Ticket

	bgCursor int
	lists    []components.OptionList
	ids      []string
	focus    int
	notice   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Closer = (*QuizScreen)(nil)
var _ screen.Refresher = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a quiz screen at the background step.
func New(env screens.Env) *QuizScreen {
	s := &QuizScreen{
		env:  env,
		ctrl: flow.New(env.Profile),
		auto: &flow.AutoAdvance{},
	}
	s.rebuild("")
	return s
}

// Init redirects to the results when an evaluation already exists.
func (s *QuizScreen) Init() tea.Cmd {
	if s.ctrl.ShouldRedirect() {
		env := s.env
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(env)}
		}
	}
	return nil
}

// Close drops any pending auto-advance.
func (s *QuizScreen) Close() {
	s.auto.Cancel()
}

// Refresh re-reads the answers when the screen is uncovered.
func (s *QuizScreen) Refresh() tea.Cmd {
	s.rebuild(s.focusedID())
	return nil
}

func (s *QuizScreen) Title() string {
	return "Career Profile Quiz"
}

func (s *QuizScreen) Status() string {
	return fmt.Sprintf("Step %d of %d", s.ctrl.Step()+1, s.ctrl.TotalSteps())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.ctrl.Step() == 0 {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Choose"},
			{Key: "→", Description: "Next"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Tab", Description: "Next question"},
		{Key: "←→", Description: "Back/Next"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case autoAdvanceMsg:
		if s.auto.Fire(msg.ticket) {
			return s, s.next()
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			s.auto.Cancel()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "right", "l":
			s.auto.Cancel()
			return s, s.next()
		case "left", "h", "backspace":
			s.auto.Cancel()
			return s, s.previous()
		case "pgup":
			s.auto.Cancel()
			if s.ctrl.JumpTo(s.ctrl.Step() - 1) {
				s.notice = ""
				s.rebuild("")
			}
			return s, nil
		case "home":
			s.auto.Cancel()
			if s.ctrl.JumpTo(0) {
				s.notice = ""
				s.rebuild("")
			}
			return s, nil
		}

		if s.ctrl.Step() == 0 {
			return s, s.updateBackground(msg)
		}
		return s, s.updateQuestions(msg)
	}
	return s, nil
}

func (s *QuizScreen) updateBackground(msg tea.KeyMsg) tea.Cmd {
	choices := quizcfg.BackgroundChoices
	switch key := msg.String(); key {
	case "up", "k":
		if s.bgCursor > 0 {
			s.bgCursor--
		}
	case "down", "j":
		if s.bgCursor < len(choices)-1 {
			s.bgCursor++
		}
	case "enter", "space", " ":
		return s.chooseBackground(choices[s.bgCursor].Background)
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(choices) {
			s.bgCursor = int(key[0] - '1')
			return s.chooseBackground(choices[s.bgCursor].Background)
		}
	}
	return nil
}

func (s *QuizScreen) chooseBackground(b quizcfg.Background) tea.Cmd {
	s.notice = ""
	if s.ctrl.SelectBackground(b) {
		return s.scheduleAdvance()
	}
	return nil
}

func (s *QuizScreen) updateQuestions(msg tea.KeyMsg) tea.Cmd {
	if len(s.lists) == 0 {
		return nil
	}
	switch msg.String() {
	case "tab":
		s.setFocus((s.focus + 1) % len(s.lists))
		return nil
	case "shift+tab":
		s.setFocus((s.focus + len(s.lists) - 1) % len(s.lists))
		return nil
	}

	list, picked := s.lists[s.focus].Update(msg)
	s.lists[s.focus] = list
	if !picked {
		return nil
	}

	item, _ := list.Current()
	id := s.ids[s.focus]
	completed := s.ctrl.Answer(id, quizcfg.Option{Value: item.Value, Label: item.Label})
	s.notice = ""
	s.rebuild(id)
	s.focusNextUnanswered()

	if completed {
		return s.scheduleAdvance()
	}
	return nil
}

func (s *QuizScreen) scheduleAdvance() tea.Cmd {
	s.ticket = s.auto.Schedule()
	t := s.ticket
	return tea.Tick(s.env.AutoAdvanceDelay(), func(time.Time) tea.Msg {
		return autoAdvanceMsg{ticket: t}
	})
}

func (s *QuizScreen) next() tea.Cmd {
	switch s.ctrl.Next() {
	case flow.Blocked:
		if s.ctrl.Step() == 0 {
			s.notice = "Choose your background to continue."
		} else {
			s.notice = "Answer every question to continue."
		}
	case flow.Moved:
		s.notice = ""
		s.rebuild("")
	case flow.ToResults:
		s.notice = ""
		env := s.env
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: goals.New(env)}
		}
	}
	return nil
}

func (s *QuizScreen) previous() tea.Cmd {
	if s.ctrl.Previous() == flow.ToHome {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	s.notice = ""
	s.rebuild("")
	return nil
}

// rebuild recreates the option lists for the current step, keeping focus
// on focusID when it is still visible.
func (s *QuizScreen) rebuild(focusID string) {
	s.lists = nil
	s.ids = nil
	s.focus = 0

	if s.ctrl.Step() == 0 {
		s.bgCursor = 0
		current := s.env.Profile.Background()
		for i, c := range quizcfg.BackgroundChoices {
			if c.Background == current {
				s.bgCursor = i
			}
		}
		return
	}

	for _, q := range s.ctrl.VisibleQuestions() {
		items := make([]components.OptionItem, len(q.Options))
		for i, o := range q.Options {
			items[i] = components.OptionItem{Label: o.Label, Value: o.Value}
		}
		chosen, _ := s.ctrl.Answered(q.ID)
		s.lists = append(s.lists, components.NewOptionList(q.Text, q.HelperText, items, chosen))
		s.ids = append(s.ids, q.ID)
	}

	focus := -1
	for i, id := range s.ids {
		if focusID != "" && id == focusID {
			focus = i
		}
	}
	if focus < 0 {
		focus = 0
		for i, id := range s.ids {
			if _, ok := s.ctrl.Answered(id); !ok {
				focus = i
				break
			}
		}
	}
	s.setFocus(focus)
}

func (s *QuizScreen) focusNextUnanswered() {
	for i := s.focus + 1; i < len(s.ids); i++ {
		if _, ok := s.ctrl.Answered(s.ids[i]); !ok {
			s.setFocus(i)
			return
		}
	}
}

func (s *QuizScreen) setFocus(i int) {
	if i < 0 || i >= len(s.lists) {
		return
	}
	s.focus = i
	for j := range s.lists {
		s.lists[j].Focused = j == i
	}
}

func (s *QuizScreen) focusedID() string {
	if s.focus < 0 || s.focus >= len(s.ids) {
		return ""
	}
	return s.ids[s.focus]
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var top strings.Builder
	progress := components.NewProgressBar(
		fmt.Sprintf("Step %d/%d", s.ctrl.Step()+1, s.ctrl.TotalSteps()),
		s.ctrl.Progress(), false, cw)
	top.WriteString(progress.View())
	top.WriteString("\n")
	top.WriteString(components.StepDots(s.ctrl.Step(), s.ctrl.TotalSteps()))
	top.WriteString("\n\n")
	top.WriteString(components.ChatBubble(s.ctrl.ChatText(), cw))
	top.WriteString("\n\n")

	var body string
	focusLine := 0
	if s.ctrl.Step() == 0 {
		body = s.viewBackground(cw)
	} else {
		parts := make([]string, len(s.lists))
		line := 0
		for i, l := range s.lists {
			parts[i] = l.View()
			if i == s.focus {
				focusLine = line
			}
			line += lipgloss.Height(parts[i]) + 1
		}
		body = strings.Join(parts, "\n")
	}

	var bottom strings.Builder
	bottom.WriteString("\n")
	if s.notice != "" {
		bottom.WriteString(theme.ErrorText.Render(s.notice))
		bottom.WriteString("\n")
	}
	bottom.WriteString(s.viewNav())

	header := top.String()
	footer := bottom.String()
	avail := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if avail < 1 {
		avail = 1
	}
	offset := 0
	if lipgloss.Height(body) > avail {
		offset = focusLine - 1
	}
	visible, _ := layout.Viewport(body, offset, avail)

	content := header + visible + footer
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(content))
}

func (s *QuizScreen) viewBackground(cw int) string {
	current := s.env.Profile.Background()
	cards := make([]string, 0, len(quizcfg.BackgroundChoices))
	for i, c := range quizcfg.BackgroundChoices {
		title := fmt.Sprintf("%d. %s", i+1, c.Title)
		style := theme.Unselected
		border := theme.Border
		switch {
		case c.Background == current:
			title = "● " + title
			style = theme.Chosen
			border = theme.Success
		case i == s.bgCursor:
			title = "▸ " + title
			style = theme.Selected
			border = theme.Primary
		default:
			title = "  " + title
		}
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Width(cw-2).
			Padding(0, 1).
			Render(style.Render(title) + "\n" + theme.Hint.Render("   "+c.Description))
		cards = append(cards, card)
	}
	return strings.Join(cards, "\n")
}

func (s *QuizScreen) viewNav() string {
	back := theme.ButtonInactive.Render("← Back")
	label := "Next →"
	if s.ctrl.Step() == s.ctrl.TotalSteps()-1 {
		label = "Continue →"
	}
	next := components.NewButton(label, s.ctrl.CanProceed(), nil).View()
	return lipgloss.JoinHorizontal(lipgloss.Center, back, "  ", next)
}
