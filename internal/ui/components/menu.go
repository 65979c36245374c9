package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first item selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation. Number keys 1-9 jump to and
// activate the matching item.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "enter":
		return m, m.activate()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(m.Items) {
				m.Selected = idx
				return m, m.activate()
			}
		}
	}

	return m, nil
}

func (m Menu) activate() tea.Cmd {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return nil
	}
	item := m.Items[m.Selected]
	if item.Action == nil {
		return nil
	}
	return item.Action()
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case i == m.Selected:
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ " + item.Label))
		default:
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    " + item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
