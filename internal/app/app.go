package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/difficulty"
	"github.com/abhisek/mathdrill/internal/screens/home"
	sessionscreen "github.com/abhisek/mathdrill/internal/screens/session"
	sess "github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Deps sessionscreen.Deps

	// StartOp opens the difficulty picker for this operation on launch.
	StartOp problemgen.Operation

	// StartLevel, or Mastery, additionally starts a quiz right away.
	// Both require StartOp.
	StartLevel int
	Mastery    bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	initCmds []tea.Cmd
	width    int
	height   int
}

// newAppModel creates the model with the home menu at the root and any
// screens requested by opts pushed on top.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		router: router.New(home.New(opts.Deps)),
	}
	if opts.StartOp == "" {
		return m
	}

	m.initCmds = append(m.initCmds, m.router.Push(difficulty.New(opts.Deps, opts.StartOp)))

	switch {
	case opts.Mastery:
		settings := sess.Settings{Operation: opts.StartOp, Level: opts.StartLevel, Mode: sess.ModeMastery}
		m.initCmds = append(m.initCmds, m.router.Push(sessionscreen.New(opts.Deps, settings)))
	case opts.StartLevel > 0:
		settings := sess.Settings{Operation: opts.StartOp, Level: opts.StartLevel, Mode: sess.ModePractice}
		m.initCmds = append(m.initCmds, m.router.Push(sessionscreen.New(opts.Deps, settings)))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.initCmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.PopToRoot()
			return m, tea.Quit
		case "esc":
			if nav, ok := m.router.Active().(screen.BackNavigator); ok {
				return m, nav.Back()
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var level, streak int
	if active != nil {
		title = active.Title()
		if hs, ok := active.(screen.HeaderStats); ok {
			level, streak = hs.HeaderStats()
		}
	}

	header := layout.RenderHeader(title, level, streak, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	final, err := p.Run()
	if fm, ok := final.(AppModel); ok {
		// Close a quiz that is still open so its end is recorded.
		fm.router.PopToRoot()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
