package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cpe/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer is implemented by screens that hold timers or in-flight work.
// The router calls Close when the screen leaves the stack.
type Closer interface {
	Close()
}

// Refresher is implemented by screens that show state other screens may
// have changed. The router calls Refresh when the screen is uncovered.
type Refresher interface {
	Refresh() tea.Cmd
}

// StatusProvider is an optional interface for a short status shown at the
// right of the header.
type StatusProvider interface {
	Status() string
}
