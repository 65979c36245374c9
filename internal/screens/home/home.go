package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/difficulty"
	sessionscreen "github.com/abhisek/mathdrill/internal/screens/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// HomeScreen is the operation menu the app starts on.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the operation menu. deps are handed on to every quiz
// started from it.
func New(deps sessionscreen.Deps) *HomeScreen {
	var items []components.MenuItem
	for _, op := range problemgen.Operations() {
		items = append(items, components.MenuItem{
			Label: op.Symbol() + " Practice",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: difficulty.New(deps, op)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Math Practice"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Math Practice"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Pick an operation"))
	b.WriteString("\n\n")

	menu := theme.Card.Render(strings.TrimRight(h.menu.View(), "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}
