// Package difficulty is the level picker shown after an operation is
// chosen on the home menu.
package difficulty

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	sessionscreen "github.com/abhisek/mathdrill/internal/screens/session"
	sess "github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// Levels offered on the picker. Higher levels are reached by levelling up.
var menuLevels = []int{1, 2, 3}

// DifficultyScreen lets the learner pick a starting level or mastery mode.
type DifficultyScreen struct {
	op   problemgen.Operation
	menu components.Menu
}

var _ screen.Screen = (*DifficultyScreen)(nil)
var _ screen.KeyHintProvider = (*DifficultyScreen)(nil)

// New creates the picker for op.
func New(deps sessionscreen.Deps, op problemgen.Operation) *DifficultyScreen {
	start := func(settings sess.Settings) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sessionscreen.New(deps, settings)}
			}
		}
	}

	var items []components.MenuItem
	for _, level := range menuLevels {
		items = append(items, components.MenuItem{
			Label:  levelLabel(level),
			Action: start(sess.Settings{Operation: op, Level: level, Mode: sess.ModePractice}),
		})
	}
	items = append(items,
		components.MenuItem{
			Label:  "Mastery Mode",
			Action: start(sess.Settings{Operation: op, Mode: sess.ModeMastery}),
		},
		components.MenuItem{
			Label: "Back to Menu",
			Action: func() tea.Cmd {
				return func() tea.Msg { return router.PopScreenMsg{} }
			},
		},
	)

	return &DifficultyScreen{op: op, menu: components.NewMenu(items)}
}

func levelLabel(level int) string {
	return string(rune('0'+level)) + "-digit"
}

func (d *DifficultyScreen) Init() tea.Cmd {
	return nil
}

func (d *DifficultyScreen) Title() string {
	return d.op.Symbol() + " Practice"
}

func (d *DifficultyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DifficultyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DifficultyScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Choose Difficulty"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Mastery mode times you at 1-digit"))
	b.WriteString("\n\n")

	menu := theme.Card.Render(strings.TrimRight(d.menu.View(), "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}
