package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/oasys/internal/router"
	"github.com/abhisek/oasys/internal/screen"
	"github.com/abhisek/oasys/internal/screens/dashboard"
	"github.com/abhisek/oasys/internal/ui/layout"
	"github.com/abhisek/oasys/internal/ui/theme"
)

// Options configure the application.
type Options struct {
	Dashboard dashboard.Deps
	// Dark starts the UI in dark mode.
	Dark bool
}

// AppModel is the root Bubble Tea model. It owns the display mode and hands
// the matching palette to every screen it renders.
type AppModel struct {
	router *router.Router
	dark   bool
	width  int
	height int
}

// newAppModel creates a new AppModel with the dashboard screen.
func newAppModel(opts Options) AppModel {
	deps := opts.Dashboard
	deps.Palette = theme.For(opts.Dark)
	return AppModel{
		router: router.New(dashboard.New(deps)),
		dark:   opts.Dark,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

// Palette returns the palette for the current display mode.
func (m AppModel) Palette() theme.Palette {
	return theme.For(m.dark)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Update(router.BroadcastMsg{Msg: msg})

	case theme.ToggleMsg:
		m.dark = !m.dark
		return m, router.Broadcast(theme.ChangedMsg{Palette: m.Palette()})

	case router.PushScreenMsg, router.ReplaceScreenMsg:
		cmd := m.router.Update(msg)
		// Size the new screen straight away.
		return m, tea.Batch(cmd, m.resizeCmd())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
		if !m.capturing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "t":
				return m, func() tea.Msg { return theme.ToggleMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.Capturing()
}

func (m AppModel) resizeCmd() tea.Cmd {
	if m.width == 0 || m.height == 0 {
		return nil
	}
	size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
	return func() tea.Msg { return size }
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size and display mode.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	p := m.Palette()

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(p, m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(p, title, m.width)

	var footerHints []layout.KeyHint
	if khp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = khp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "t", Description: "Theme"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(p, footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight, p)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
