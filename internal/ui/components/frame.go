package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cpe/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for cards so they
// visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw - 2).
		Render(content)
}

// ChatBubble renders the assistant's line above a quiz step.
func ChatBubble(text string, cw int) string {
	if text == "" {
		return ""
	}
	return theme.Chat.
		Width(cw - 2).
		Render("💬 " + text)
}

// StepDots renders one dot per step, filled up to and including current.
func StepDots(current, total int) string {
	if total <= 0 {
		return ""
	}
	parts := make([]string, total)
	for i := range total {
		switch {
		case i == current:
			parts[i] = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("●")
		case i < current:
			parts[i] = lipgloss.NewStyle().Foreground(theme.Secondary).Render("●")
		default:
			parts[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("○")
		}
	}
	return strings.Join(parts, " ")
}

// Center places content horizontally within width.
func Center(content string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}
