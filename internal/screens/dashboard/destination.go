package dashboard

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/oasys/internal/router"
	"github.com/abhisek/oasys/internal/screen"
	"github.com/abhisek/oasys/internal/ui/layout"
)

// destinations are the sidebar entries that open a plain screen, in order.
// The planner is left out: it captures "[" and "]" as text.
var destinations = []string{MenuAlerts, MenuReports, MenuSettings, MenuHelp}

// destination wraps a sidebar screen so "[" and "]" swap it in place for
// the previous or next entry. Esc still returns to the dashboard.
type destination struct {
	screen.Screen
	d     *Screen
	index int
}

var _ screen.KeyHintProvider = (*destination)(nil)

func (w *destination) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "]":
			return w, w.d.switchTo(w.index + 1)
		case "[":
			return w, w.d.switchTo(w.index - 1)
		}
	}
	var cmd tea.Cmd
	w.Screen, cmd = w.Screen.Update(msg)
	return w, cmd
}

func (w *destination) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "[ ]", Description: "Switch"}}
	if khp, ok := w.Screen.(screen.KeyHintProvider); ok {
		return append(hints, khp.KeyHints()...)
	}
	return append(hints,
		layout.KeyHint{Key: "Esc", Description: "Back"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

// open builds the screen for destinations[i], wrapped for switching.
func (d *Screen) open(i int) screen.Screen {
	return &destination{Screen: d.build(destinations[i]), d: d, index: i}
}

// switchTo replaces the active sidebar screen with destinations[i],
// wrapping around at either end.
func (d *Screen) switchTo(i int) tea.Cmd {
	n := len(destinations)
	i = ((i % n) + n) % n
	next := d.open(i)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// push opens destinations[i] on top of the dashboard.
func (d *Screen) push(i int) tea.Cmd {
	next := d.open(i)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}
