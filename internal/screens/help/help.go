package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/oasys/internal/screen"
	"github.com/abhisek/oasys/internal/ui/components"
	"github.com/abhisek/oasys/internal/ui/layout"
	"github.com/abhisek/oasys/internal/ui/theme"
)

// Bindings lists every key the application responds to, grouped by screen.
var Bindings = []struct {
	Section string
	Keys    []layout.KeyHint
}{
	{"Dashboard", []layout.KeyHint{
		{Key: "↑/↓ j/k", Description: "Move through the menu or scroll events"},
		{Key: "Enter", Description: "Open the selected menu item"},
		{Key: "Tab", Description: "Switch focus between menu and events"},
		{Key: "p", Description: "Plan holidays with O-AI-sys"},
		{Key: "r", Description: "Reload attendance data"},
	}},
	{"Planner", []layout.KeyHint{
		{Key: "Enter", Description: "Send message"},
		{Key: "↑/↓", Description: "Scroll the conversation"},
		{Key: "Esc", Description: "Close the planner"},
	}},
	{"Reports", []layout.KeyHint{
		{Key: "e", Description: "Export attendance to a spreadsheet"},
	}},
	{"Alerts, Reports, Settings, Help", []layout.KeyHint{
		{Key: "[ ]", Description: "Previous or next screen"},
	}},
	{"Everywhere", []layout.KeyHint{
		{Key: "t", Description: "Toggle dark mode"},
		{Key: "Esc", Description: "Go back"},
		{Key: "q", Description: "Quit (outside the planner)"},
		{Key: "Ctrl+C", Description: "Quit"},
	}},
}

// Screen lists key bindings.
type Screen struct{}

var _ screen.Screen = (*Screen)(nil)

// New creates the help screen.
func New() *Screen {
	return &Screen{}
}

func (h *Screen) Init() tea.Cmd {
	return nil
}

func (h *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return h, nil
}

func (h *Screen) View(width, height int, p theme.Palette) string {
	keyStyle := lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Width(12)

	var b strings.Builder
	for i, section := range Bindings {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(p.Title().Render(section.Section))
		b.WriteString("\n")
		for _, k := range section.Keys {
			b.WriteString("  " + keyStyle.Render(k.Key) + p.Body().Render(k.Description) + "\n")
		}
	}
	return components.CenterBlock(components.Card(p, "Keyboard Shortcuts", b.String(), 60, false), width, height)
}

func (h *Screen) Title() string {
	return "Help"
}
