package report

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cpe/internal/evaluation"
	"github.com/abhisek/cpe/internal/ui/components"
	"github.com/abhisek/cpe/internal/ui/theme"
)

// Render draws the report as styled cards at the given content width.
func Render(r evaluation.Result, width int) string {
	sections := Build(r)
	if len(sections) == 0 {
		return theme.Hint.Render("The evaluation did not include any details to show.")
	}

	body := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 6)

	cards := make([]string, 0, len(sections))
	for _, s := range sections {
		var b strings.Builder
		b.WriteString(theme.Heading.Render(s.Title))
		b.WriteString("\n")
		if s.Score != nil {
			bar := components.NewProgressBar("", *s.Score/100, true, width-8)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.ScoreColor(*s.Score)).Render(bar.View()))
			b.WriteString("\n")
		}
		for _, line := range s.Lines {
			b.WriteString(body.Render(line))
			b.WriteString("\n")
		}
		cards = append(cards, components.Card(strings.TrimRight(b.String(), "\n"), width))
	}
	return strings.Join(cards, "\n")
}

// WriteText writes the report as plain text.
func WriteText(w io.Writer, r evaluation.Result) error {
	sections := Build(r)
	if len(sections) == 0 {
		_, err := fmt.Fprintln(w, "The evaluation did not include any details to show.")
		return err
	}
	sep := strings.Repeat("─", 60)
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", strings.ToUpper(s.Title), sep); err != nil {
			return err
		}
		for _, line := range s.Lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
