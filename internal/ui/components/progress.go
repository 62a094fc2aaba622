package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/oasys/internal/ui/theme"
)

// ProgressBar displays a horizontal attendance bar.
type ProgressBar struct {
	Label       string
	Percent     int
	ShowPercent bool
	Width       int
	// Fill overrides the threshold-based fill color when set.
	Fill color.Color
}

// NewProgressBar creates a new progress bar for a 0-100 percentage.
func NewProgressBar(label string, percent int, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// Filled returns the number of filled cells for a bar of barWidth cells.
func Filled(percent, barWidth int) int {
	if percent <= 0 || barWidth <= 0 {
		return 0
	}
	if percent >= 100 {
		return barWidth
	}
	return barWidth * percent / 100
}

// View renders the progress bar.
func (b ProgressBar) View(p theme.Palette) string {
	var result string

	if b.Label != "" {
		result += lipgloss.NewStyle().Foreground(p.Text).Render(b.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if b.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := b.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := Filled(b.Percent, barWidth)
	empty := barWidth - filled

	fill := b.Fill
	if fill == nil {
		fill = p.Level(b.Percent)
	}

	result += lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(p.Border).Render(strings.Repeat("░", empty))

	if b.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(p.TextDim).
			Render(fmt.Sprintf("  %d%%", b.Percent))
	}

	return result
}
