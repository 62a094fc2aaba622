package planner

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/oasys/internal/chat"
	"github.com/abhisek/oasys/internal/ui/theme"
)

func (s *Screen) View(width, height int, p theme.Palette) string {
	dw := dialogWidth(width)

	var b strings.Builder
	b.WriteString(p.Title().Render(DialogTitle))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(p.Border).Render(strings.Repeat("─", dw-4)))
	b.WriteString("\n")
	b.WriteString(s.log.View())
	b.WriteString("\n")

	if s.session.State() == chat.StateAwaiting {
		b.WriteString(s.spin.View() + " " + p.Hint().Render("O-AI-sys is typing..."))
	}
	b.WriteString("\n")

	input := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Width(dw - 4).
		Render(s.input.View())
	b.WriteString(input)

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		Width(dw).
		Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(dialog)
}

// renderLog renders messages as chat bubbles: the user's on the right in the
// primary color, the assistant's on the left.
func renderLog(p theme.Palette, messages []chat.Message, width int) string {
	if width < 10 {
		width = 10
	}
	bubbleMax := width * 3 / 4

	userBubble := lipgloss.NewStyle().
		Foreground(p.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)
	systemBubble := lipgloss.NewStyle().
		Foreground(p.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	blocks := make([]string, 0, len(messages))
	for _, m := range messages {
		style := systemBubble
		align := lipgloss.Left
		if m.FromUser() {
			style = userBubble
			align = lipgloss.Right
		}
		text := m.Content
		if w := lipgloss.Width(text) + 4; w > bubbleMax {
			style = style.Width(bubbleMax)
		}
		bubble := style.Render(text)
		blocks = append(blocks, lipgloss.PlaceHorizontal(width, align, bubble))
	}
	return strings.Join(blocks, "\n")
}
