package components

import (
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// Button is a styled, keyboard-triggered button. Key is the shortcut
// shown next to the label.
type Button struct {
	Label  string
	Key    string
	Active bool
}

// NewButton creates a new button.
func NewButton(label, key string, active bool) Button {
	return Button{
		Label:  label,
		Key:    key,
		Active: active,
	}
}

// View renders the button. Inactive buttons render dimmed.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label += " (" + b.Key + ")"
	}
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
