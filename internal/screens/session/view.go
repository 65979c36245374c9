package session

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

var operationNames = map[string]string{
	"add":      "Addition",
	"subtract": "Subtraction",
	"multiply": "Multiplication",
	"divide":   "Division",
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}

	state := s.state
	var b strings.Builder

	// Info line.
	info := fmt.Sprintf("  %s · %d-digit", operationNames[string(state.Settings.Operation)], state.Level)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(info))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n\n")

	// Problem.
	b.WriteString(theme.Problem.Width(width).Render(state.Current.Text()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View()))
	b.WriteString("\n\n")

	// Feedback line.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(s.feedbackColor()).
		Render(s.message))
	b.WriteString("\n\n")

	if state.Mastery() {
		b.WriteString(s.renderStopwatch(width))
	} else {
		bar := components.NewProgressBar("Streak", state.Streak, state.Config().StreakToLevelUp, min(width-8, 50))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	}

	return b.String()
}

// feedbackColor returns the flash color for the current feedback line.
func (s *SessionScreen) feedbackColor() color.Color {
	var cueColor color.Color
	switch {
	case s.outcome == sess.OutcomeInvalid:
		return theme.Warning
	case s.levelUp:
		cueColor = theme.Accent
	case s.outcome == sess.OutcomeCorrect:
		cueColor = theme.Success
	default:
		cueColor = theme.Error
	}
	return s.flash.Color(cueColor, theme.Text)
}

// renderStopwatch renders the mastery timer and stop button.
func (s *SessionScreen) renderStopwatch(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if s.state.Stopped() {
		return center.Foreground(theme.Accent).Bold(true).Render("⏱ " + s.finished)
	}

	clock := center.Foreground(theme.Text).Render("⏱ " + sess.FormatClock(sess.Elapsed(s.state)))
	button := components.NewButton("Stop Mastery", "ctrl+s", true)
	return clock + "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, button.View())
}

// renderError renders an error message.
func renderError(width, height int, msg string) string {
	content := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("Something went wrong") +
		"\n\n" +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(msg) +
		"\n\n" +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Press any key to go back")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
