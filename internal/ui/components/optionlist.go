package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cpe/internal/ui/theme"
)

// OptionItem is one selectable answer.
type OptionItem struct {
	Label string
	Value string
}

// OptionList is a single-choice question. The chosen value stays marked
// and can be changed by picking another item.
type OptionList struct {
	Title   string
	Helper  string
	Items   []OptionItem
	Cursor  int
	Chosen  string
	Focused bool
}

// NewOptionList creates a list with the cursor on the chosen item, if any.
func NewOptionList(title, helper string, items []OptionItem, chosen string) OptionList {
	l := OptionList{
		Title:  title,
		Helper: helper,
		Items:  items,
		Chosen: chosen,
	}
	for i, it := range items {
		if it.Value == chosen {
			l.Cursor = i
			break
		}
	}
	return l
}

// Update handles navigation while focused. picked reports whether the user
// chose the item under the cursor (enter, space, or its number key).
func (l OptionList) Update(msg tea.Msg) (OptionList, bool) {
	if !l.Focused || len(l.Items) == 0 {
		return l, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if l.Cursor > 0 {
			l.Cursor--
		}
	case "down", "j":
		if l.Cursor < len(l.Items)-1 {
			l.Cursor++
		}
	case "enter", "space", " ":
		l.Chosen = l.Items[l.Cursor].Value
		return l, true
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(l.Items) {
				l.Cursor = idx
				l.Chosen = l.Items[idx].Value
				return l, true
			}
		}
	}
	return l, false
}

// Current returns the item under the cursor.
func (l OptionList) Current() (OptionItem, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return OptionItem{}, false
	}
	return l.Items[l.Cursor], true
}

// View renders the question and its options.
func (l OptionList) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if !l.Focused {
		titleStyle = titleStyle.Foreground(theme.TextDim)
	}
	b.WriteString(titleStyle.Render(l.Title))
	b.WriteString("\n")
	if l.Helper != "" {
		b.WriteString(theme.Hint.Render(l.Helper))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, it := range l.Items {
		prefix := "  "
		if l.Focused && i == l.Cursor {
			prefix = "▸ "
		}
		mark := "○"
		if it.Value == l.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %d. %s", prefix, mark, i+1, it.Label)

		switch {
		case it.Value == l.Chosen:
			b.WriteString(theme.Chosen.Render(line))
		case l.Focused && i == l.Cursor:
			b.WriteString(theme.Selected.Render(line))
		case !l.Focused:
			b.WriteString(theme.Hint.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
