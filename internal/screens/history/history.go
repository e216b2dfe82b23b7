package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cpe/internal/router"
	"github.com/abhisek/cpe/internal/screen"
	"github.com/abhisek/cpe/internal/store"
	"github.com/abhisek/cpe/internal/ui/layout"
	"github.com/abhisek/cpe/internal/ui/theme"
)

const historyLimit = 50

type historyLoadedMsg struct {
	Requests []store.EvaluationRequestRecord
	Err      error
}

// HistoryScreen lists past evaluation requests.
type HistoryScreen struct {
	eventRepo store.EventRepo
	requests  []store.EvaluationRequestRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{}
		}
		reqs, err := repo.QueryEvaluationRequests(context.Background(), store.QueryOpts{Limit: historyLimit})
		return historyLoadedMsg{Requests: reqs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.requests = msg.Requests
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.requests)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.requests) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No evaluations yet. Finish the quiz to get your first report!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, req := range s.requests {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-9s  %-8s  %6dms  %s",
			prefix,
			req.Timestamp.Local().Format("Jan 02, 2006 15:04"),
			req.Background,
			outcome(req),
			req.LatencyMs,
			statusText(req.StatusCode))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, d := range details(req) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("    "+d)))
				b.WriteString("\n")
			}
		}
	}

	content, _ := layout.Viewport(b.String(), 0, height)
	return content
}

func outcome(r store.EvaluationRequestRecord) string {
	switch {
	case r.Success:
		return "✓ ok"
	case r.Cancelled:
		return "– cancel"
	default:
		return "✗ failed"
	}
}

func statusText(code int) string {
	if code == 0 {
		return "-"
	}
	return fmt.Sprintf("HTTP %d", code)
}

func details(r store.EvaluationRequestRecord) []string {
	out := []string{"Request " + r.RequestID}
	if r.Endpoint != "" {
		out = append(out, "Endpoint "+r.Endpoint)
	}
	if r.ErrorMessage != "" {
		out = append(out, "Error: "+r.ErrorMessage)
	}
	return out
}
