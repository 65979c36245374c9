package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// SummaryScreen displays the results of a finished quiz.
type SummaryScreen struct {
	summary *session.SessionSummary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.BackNavigator = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.SessionSummary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, s.Back()
		}
	}
	return s, nil
}

// Back returns to the operation menu.
func (s *SummaryScreen) Back() tea.Cmd {
	return func() tea.Msg { return router.PopToRootMsg{} }
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Quiz complete!"))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s · %s", sum.Settings.Operation, modeLabel(sum.Settings.Mode))))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.TextDim).Render(
		"Duration: " + session.FormatClock(sum.Duration)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Answered: %d        Correct: %d        Accuracy: %.0f%%",
		sum.TotalAnswered, sum.TotalCorrect, sum.Accuracy*100)
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	levelLine := fmt.Sprintf("Level: %d → %d        Level ups: %d        Best streak: %d",
		sum.StartLevel, sum.EndLevel, sum.LevelUps, sum.BestStreak)
	levelStyle := center.Foreground(theme.Text)
	if sum.LevelUps > 0 {
		levelStyle = levelStyle.Foreground(theme.Success)
	}
	b.WriteString(levelStyle.Render(levelLine))

	if sum.MasteryTime != nil {
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.Accent).Bold(true).Render(
			"⏱ " + session.FormatFinished(*sum.MasteryTime)))
	}

	return b.String()
}

func modeLabel(m session.Mode) string {
	if m == session.ModeMastery {
		return "Mastery"
	}
	return "Practice"
}
