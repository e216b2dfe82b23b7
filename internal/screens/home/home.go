package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cpe/internal/quiz"
	"github.com/abhisek/cpe/internal/router"
	"github.com/abhisek/cpe/internal/screen"
	"github.com/abhisek/cpe/internal/screens"
	"github.com/abhisek/cpe/internal/screens/history"
	quizscreen "github.com/abhisek/cpe/internal/screens/quiz"
	"github.com/abhisek/cpe/internal/screens/results"
	"github.com/abhisek/cpe/internal/ui/components"
	"github.com/abhisek/cpe/internal/ui/layout"
	"github.com/abhisek/cpe/internal/ui/theme"
)

const bannerFull = `╔═╗┌─┐┬─┐┌─┐┌─┐┬─┐  ╔═╗┬─┐┌─┐┌─┐┬┬  ┌─┐
║  ├─┤├┬┘├┤ ├┤ ├┬┘  ╠═╝├┬┘│ │├┤ ││  ├┤
╚═╝┴ ┴┴└─└─┘└─┘┴└─  ╩  ┴└─└─┘└  ┴┴─┘└─┘`

const bannerCompact = "C A R E E R   P R O F I L E"

// resetMsg asks the home screen to clear the stored profile.
type resetMsg struct{}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	env   screens.Env
	menu  components.Menu
	flash string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env screens.Env) *HomeScreen {
	h := &HomeScreen{env: env}
	h.buildMenu()
	return h
}

func (h *HomeScreen) buildMenu() {
	st := h.env.Profile.Snapshot()
	inProgress := st.Background != quiz.BackgroundNone || len(st.QuizResponses) > 0
	hasResults := st.EvaluationResults != nil

	startLabel := "Start evaluation"
	startHint := "About 3 minutes"
	if inProgress {
		startLabel = "Continue quiz"
		startHint = fmt.Sprintf("%d answers saved", answerCount(st.QuizResponses))
	}
	if hasResults {
		startHint = "Your report is ready"
	}

	env := h.env
	items := []components.MenuItem{
		{Label: startLabel, Hint: startHint, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(env)}
			}
		}},
		{Label: "View results", Disabled: !hasResults, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: results.New(env)}
			}
		}},
		{Label: "History", Disabled: env.Events == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(env.Events)}
			}
		}},
		{Label: "Reset profile", Disabled: !inProgress && !hasResults, Action: func() tea.Cmd {
			return func() tea.Msg { return resetMsg{} }
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	prev := h.menu.SelectedLabel()
	h.menu = components.NewMenu(items)
	for i, it := range items {
		if it.Label == prev && !it.Disabled {
			h.menu.Selected = i
		}
	}
}

// answerCount counts recorded answers, ignoring label companions.
func answerCount(r quiz.Responses) int {
	n := 0
	for k := range r {
		if strings.HasSuffix(k, quiz.LabelSuffix) && quiz.LabelFields[strings.TrimSuffix(k, quiz.LabelSuffix)] {
			continue
		}
		n++
	}
	return n
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Refresh rebuilds the menu after another screen changed the profile.
func (h *HomeScreen) Refresh() tea.Cmd {
	h.buildMenu()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case resetMsg:
		h.env.Profile.Reset()
		h.flash = "Profile cleared."
		h.buildMenu()
		return h, nil
	case tea.KeyMsg:
		h.flash = ""
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Status() string {
	return h.env.Profile.Background().DisplayName()
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactWidth(width) || layout.IsCompactHeight(height)
	cw := components.ContentWidth(width)

	var sections []string

	banner := bannerFull
	if compact {
		banner = bannerCompact
	}
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Title.Render(banner)))

	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Subtitle.Render("Find out where your career stands and what to do next.")))

	sections = append(sections, h.renderSummary(cw))
	sections = append(sections, components.Card(h.menu.View(), cw))

	if h.flash != "" {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).Align(lipgloss.Center).
			Render(lipgloss.NewStyle().Foreground(theme.Success).Render(h.flash)))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) renderSummary(cw int) string {
	st := h.env.Profile.Snapshot()

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	report := "not yet"
	if st.EvaluationResults != nil {
		report = "ready"
		if score, ok := st.EvaluationResults["profile_strength_score"].(float64); ok {
			report = fmt.Sprintf("score %d/100", int(score))
		}
	}

	line := fmt.Sprintf("%s %s   %s %s   %s %s",
		label.Render("Track"), value.Render(st.Background.DisplayName()),
		label.Render("Answers"), value.Render(fmt.Sprint(answerCount(st.QuizResponses))),
		label.Render("Report"), value.Render(report),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(line)
}
