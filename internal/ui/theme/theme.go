package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is a set of colors for one display mode.
type Palette struct {
	Dark bool

	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// Light palette, used by default.
var Light = Palette{
	Primary:   lipgloss.Color("#4F46E5"), // Indigo
	Secondary: lipgloss.Color("#0EA5E9"), // Sky
	Accent:    lipgloss.Color("#D97706"), // Amber
	Success:   lipgloss.Color("#16A34A"), // Green
	Warning:   lipgloss.Color("#CA8A04"), // Yellow
	Error:     lipgloss.Color("#DC2626"), // Red
	Text:      lipgloss.Color("#111827"),
	TextDim:   lipgloss.Color("#6B7280"),
	Bg:        lipgloss.Color("#F9FAFB"),
	BgCard:    lipgloss.Color("#FFFFFF"),
	Border:    lipgloss.Color("#D1D5DB"),
}

// Dark palette.
var Dark = Palette{
	Dark:      true,
	Primary:   lipgloss.Color("#818CF8"),
	Secondary: lipgloss.Color("#38BDF8"),
	Accent:    lipgloss.Color("#FBBF24"),
	Success:   lipgloss.Color("#4ADE80"),
	Warning:   lipgloss.Color("#FACC15"),
	Error:     lipgloss.Color("#F87171"),
	Text:      lipgloss.Color("#F3F4F6"),
	TextDim:   lipgloss.Color("#9CA3AF"),
	Bg:        lipgloss.Color("#111827"), // Gray 900
	BgCard:    lipgloss.Color("#1F2937"), // Gray 800
	Border:    lipgloss.Color("#374151"),
}

// For returns the palette for the given mode.
func For(dark bool) Palette {
	if dark {
		return Dark
	}
	return Light
}

// ToggleMsg asks the root model to switch between light and dark mode.
type ToggleMsg struct{}

// ChangedMsg is broadcast to screens after the display mode changes so that
// cached, pre-styled content can be re-rendered.
type ChangedMsg struct {
	Palette Palette
}

// ModeLabel returns the short label shown in the header.
func (p Palette) ModeLabel() string {
	if p.Dark {
		return "☾ Dark"
	}
	return "☀ Light"
}

// Typography

func (p Palette) Title() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)
}

func (p Palette) Body() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Text)
}

func (p Palette) Hint() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.TextDim).
		Italic(true)
}

// Card is a bordered panel used for dashboard sections.
func (p Palette) Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
}

// FocusedCard highlights the panel that currently receives keys.
func (p Palette) FocusedCard() lipgloss.Style {
	return p.Card().BorderForeground(p.Primary)
}

// States

func (p Palette) Selected() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
}

func (p Palette) Unselected() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Text)
}

// Level returns the color for an attendance percentage: success at or above
// 85, warning at or above the 75 threshold, error below.
func (p Palette) Level(percent int) color.Color {
	switch {
	case percent >= 85:
		return p.Success
	case percent >= 75:
		return p.Warning
	default:
		return p.Error
	}
}
