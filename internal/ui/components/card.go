package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/oasys/internal/ui/theme"
)

// Card wraps content in a rounded panel with a bold title line. width is the
// outer width including the border.
func Card(p theme.Palette, title, content string, width int, focused bool) string {
	style := p.Card()
	if focused {
		style = p.FocusedCard()
	}
	if width > 2 {
		style = style.Width(width - 2)
	}
	body := content
	if title != "" {
		body = p.Title().Render(title) + "\n" + content
	}
	return style.Render(body)
}

// CardInnerWidth returns the usable text width inside a Card of the given
// outer width, leaving room for the border and horizontal padding.
func CardInnerWidth(width int) int {
	w := width - 6
	if w < 1 {
		return 1
	}
	return w
}

// Badge renders a short bracketed label such as "[Can miss 2 classes]".
func Badge(label string, c color.Color) string {
	return lipgloss.NewStyle().
		Foreground(c).
		Bold(true).
		Render("[" + label + "]")
}

// Dot renders a colored bullet.
func Dot(c color.Color) string {
	return lipgloss.NewStyle().Foreground(c).Render("●")
}

// CenterBlock centers a block horizontally and vertically in the given area.
func CenterBlock(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
