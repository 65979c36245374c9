package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/ui/layout"
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

// Closer is implemented by screens holding pending work (timers, open
// sessions) that must be released when they leave the stack.
type Closer interface {
	Close()
}

// BackNavigator lets a screen decide where Esc goes instead of a single pop.
type BackNavigator interface {
	Back() tea.Cmd
}

// HeaderStats is implemented by screens that show live numbers in the
// header bar.
type HeaderStats interface {
	HeaderStats() (level, streak int)
}
