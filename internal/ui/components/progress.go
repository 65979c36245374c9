package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with a count label,
// e.g. the streak toward the next level.
type ProgressBar struct {
	Label   string
	Current int
	Total   int
	Width   int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, current, total, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Current: current,
		Total:   total,
		Width:   width,
	}
}

// Filled returns how many cells of a bar of the given width are filled.
func (p ProgressBar) Filled(barWidth int) int {
	if p.Total <= 0 {
		return 0
	}
	filled := barWidth * p.Current / p.Total
	return min(max(filled, 0), barWidth)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	count := fmt.Sprintf("  %d/%d", p.Current, p.Total)
	barWidth := max(p.Width-lipgloss.Width(result)-len(count), 4)

	filled := p.Filled(barWidth)

	result += lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled))
	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(count)

	return result
}
