package goals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cpe/internal/profile"
	"github.com/abhisek/cpe/internal/quiz"
	"github.com/abhisek/cpe/internal/router"
	"github.com/abhisek/cpe/internal/screen"
	"github.com/abhisek/cpe/internal/screens"
	"github.com/abhisek/cpe/internal/screens/results"
	"github.com/abhisek/cpe/internal/ui/components"
	"github.com/abhisek/cpe/internal/ui/layout"
	"github.com/abhisek/cpe/internal/ui/theme"
)

// GoalsScreen collects the topics of interest sent with the evaluation.
type GoalsScreen struct {
	env    screens.Env
	list   components.Checklist
	notice string
}

var _ screen.Screen = (*GoalsScreen)(nil)
var _ screen.KeyHintProvider = (*GoalsScreen)(nil)

// New creates a goals screen preloaded with the stored topics.
func New(env screens.Env) *GoalsScreen {
	items := make([]components.OptionItem, len(quiz.Topics))
	for i, t := range quiz.Topics {
		label := t.Label
		if t.Examples != "" {
			label += "  " + theme.Hint.Render(t.Examples)
		}
		items[i] = components.OptionItem{Label: label, Value: t.Value}
	}
	return &GoalsScreen{
		env:  env,
		list: components.NewChecklist(items, env.Profile.Goals().TopicOfInterest),
	}
}

func (s *GoalsScreen) Init() tea.Cmd {
	return nil
}

func (s *GoalsScreen) Title() string {
	return "Your Interests"
}

func (s *GoalsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "See results"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *GoalsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter":
		if len(s.list.Checked) == 0 {
			s.notice = "Pick at least one topic to continue."
			return s, nil
		}
		env := s.env
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(env)}
		}
	}

	var toggled bool
	s.list, toggled = s.list.Update(msg)
	if toggled {
		s.notice = ""
		company := ""
		s.env.Profile.SetGoals(profile.GoalsPatch{
			RequirementType: []string{},
			TargetCompany:   &company,
			TopicOfInterest: s.list.Checked,
		})
	}
	return s, nil
}

func (s *GoalsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(components.ChatBubble("Which industries excite you the most? Pick as many as you like.", cw))
	b.WriteString("\n\n")
	b.WriteString(s.list.View())
	b.WriteString("\n")

	btn := components.NewButton("See my results", len(s.list.Checked) > 0, nil)
	b.WriteString(btn.View())
	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.ErrorText.Render(s.notice))
	}

	content, _ := layout.Viewport(b.String(), 0, height)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}
