package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cpe/internal/ui/theme"
)

// Checklist is a multi-select list. Checked preserves toggle order.
type Checklist struct {
	Items   []OptionItem
	Cursor  int
	Checked []string
}

// NewChecklist creates a checklist with the given values pre-checked.
func NewChecklist(items []OptionItem, checked []string) Checklist {
	return Checklist{
		Items:   items,
		Checked: append([]string(nil), checked...),
	}
}

// Update handles navigation. toggled reports whether a value changed state.
func (c Checklist) Update(msg tea.Msg) (Checklist, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Items) == 0 {
		return c, false
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "space", " ", "x":
		c.Toggle(c.Items[c.Cursor].Value)
		return c, true
	}
	return c, false
}

// Toggle flips value in or out of Checked.
func (c *Checklist) Toggle(value string) {
	for i, v := range c.Checked {
		if v == value {
			c.Checked = append(c.Checked[:i:i], c.Checked[i+1:]...)
			return
		}
	}
	c.Checked = append(c.Checked, value)
}

// IsChecked reports whether value is checked.
func (c Checklist) IsChecked(value string) bool {
	for _, v := range c.Checked {
		if v == value {
			return true
		}
	}
	return false
}

// View renders the checklist.
func (c Checklist) View() string {
	var b strings.Builder
	for i, it := range c.Items {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		box := "[ ]"
		if c.IsChecked(it.Value) {
			box = "[x]"
		}
		line := prefix + box + " " + it.Label
		switch {
		case c.IsChecked(it.Value):
			b.WriteString(theme.Chosen.Render(line))
		case i == c.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
