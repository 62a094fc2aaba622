// Package dashboard implements the main attendance dashboard screen.
package dashboard

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/oasys/internal/attendance"
	"github.com/abhisek/oasys/internal/chat"
	"github.com/abhisek/oasys/internal/config"
	"github.com/abhisek/oasys/internal/responder"
	"github.com/abhisek/oasys/internal/router"
	"github.com/abhisek/oasys/internal/screen"
	"github.com/abhisek/oasys/internal/screens/alerts"
	"github.com/abhisek/oasys/internal/screens/help"
	"github.com/abhisek/oasys/internal/screens/planner"
	"github.com/abhisek/oasys/internal/screens/reports"
	"github.com/abhisek/oasys/internal/screens/settings"
	"github.com/abhisek/oasys/internal/store"
	"github.com/abhisek/oasys/internal/ui/components"
	"github.com/abhisek/oasys/internal/ui/layout"
	"github.com/abhisek/oasys/internal/ui/theme"
)

// Menu labels, in sidebar order.
const (
	MenuDashboard = "Dashboard"
	MenuPlanner   = "Plan Holidays"
	MenuAlerts    = "Alerts"
	MenuReports   = "Reports"
	MenuSettings  = "Settings"
	MenuHelp      = "Help"
)

type focusArea int

const (
	focusMenu focusArea = iota
	focusEvents
)

// eventRows is how many upcoming events are visible at once.
const eventRows = 4

// Deps are the collaborators the dashboard needs.
type Deps struct {
	Repo       store.Repo
	Session    *chat.Session
	ReplyDelay time.Duration
	Config     config.Config
	// Source describes the active data source for the settings screen.
	Source    string
	ReportDir string
	Palette   theme.Palette
}

// Screen is the dashboard. It owns the planner's chat session and resolves
// replies against the overall attendance at the moment they come due.
type Screen struct {
	deps Deps
	pal  theme.Palette

	menu  components.Menu
	focus focusArea

	courses     []attendance.Course
	events      []attendance.Event
	summary     attendance.Summary
	loaded      bool
	err         error
	eventOffset int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the dashboard.
func New(deps Deps) *Screen {
	if deps.Session == nil {
		deps.Session = chat.NewSession()
	}
	d := &Screen{
		deps: deps,
		pal:  deps.Palette,
	}
	d.menu = components.NewMenu([]components.MenuItem{
		{Label: MenuDashboard, Action: func() tea.Cmd { return nil }},
		{Label: MenuPlanner, Action: d.openPlanner},
		{Label: MenuAlerts, Action: func() tea.Cmd { return d.push(0) }},
		{Label: MenuReports, Action: func() tea.Cmd { return d.push(1) }},
		{Label: MenuSettings, Action: func() tea.Cmd { return d.push(2) }},
		{Label: MenuHelp, Action: func() tea.Cmd { return d.push(3) }},
	})
	return d
}

func (d *Screen) Init() tea.Cmd {
	return d.load()
}

func (d *Screen) Title() string {
	return "Dashboard"
}

// Session returns the planner chat session.
func (d *Screen) Session() *chat.Session {
	return d.deps.Session
}

// Summary returns the most recently loaded summary.
func (d *Screen) Summary() attendance.Summary {
	return d.summary
}

func (d *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Tab", Description: "Events"},
	}
	if d.focus == focusEvents {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Tab", Description: "Menu"},
		}
	}
	return append(hints,
		layout.KeyHint{Key: "p", Description: "Plan"},
		layout.KeyHint{Key: "t", Description: "Theme"},
		layout.KeyHint{Key: "r", Description: "Reload"},
		layout.KeyHint{Key: "q", Description: "Quit"},
	)
}

func (d *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dataLoadedMsg:
		d.loaded = true
		d.err = msg.Err
		if msg.Err == nil {
			d.courses = msg.Courses
			d.events = attendance.SortByDate(msg.Events)
			d.summary = attendance.Summarize(msg.Courses)
			d.clampEventOffset()
		}
		return d, nil

	case ReloadMsg:
		return d, d.load()

	case chat.ReplyDue:
		d.resolve(msg)
		return d, nil

	case theme.ChangedMsg:
		d.pal = msg.Palette
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}
	return d, nil
}

func (d *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		if d.focus == focusMenu {
			d.focus = focusEvents
		} else {
			d.focus = focusMenu
		}
		return d, nil
	case "p":
		return d, d.openPlanner()
	case "r":
		return d, d.load()
	}

	if d.focus == focusEvents {
		switch msg.String() {
		case "up", "k":
			d.eventOffset--
		case "down", "j":
			d.eventOffset++
		}
		d.clampEventOffset()
		return d, nil
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

// resolve answers a due reply using the overall attendance right now.
func (d *Screen) resolve(due chat.ReplyDue) {
	sess := d.deps.Session
	if due.SessionID != sess.ID() {
		return
	}
	reply := responder.Select(due.Pending.Input, d.summary.Overall)
	sess.Resolve(due.Pending, reply)
}

func (d *Screen) openPlanner() tea.Cmd {
	next := planner.New(d.deps.Session, d.deps.ReplyDelay, d.pal)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// build creates the screen behind a sidebar label from the current data.
func (d *Screen) build(label string) screen.Screen {
	switch label {
	case MenuAlerts:
		return alerts.New(d.summary)
	case MenuReports:
		return reports.New(d.courses, d.events, d.deps.ReportDir)
	case MenuSettings:
		return settings.New(d.deps.Config, d.deps.Source)
	default:
		return help.New()
	}
}

func (d *Screen) load() tea.Cmd {
	repo := d.deps.Repo
	return func() tea.Msg {
		if repo == nil {
			return dataLoadedMsg{Err: store.ErrNotFound}
		}
		ctx := context.Background()
		courses, err := repo.Courses(ctx)
		if err != nil {
			return dataLoadedMsg{Err: err}
		}
		events, err := repo.Events(ctx)
		if err != nil {
			return dataLoadedMsg{Err: err}
		}
		return dataLoadedMsg{Courses: courses, Events: events}
	}
}

func (d *Screen) clampEventOffset() {
	limit := len(d.events) - eventRows
	if limit < 0 {
		limit = 0
	}
	if d.eventOffset > limit {
		d.eventOffset = limit
	}
	if d.eventOffset < 0 {
		d.eventOffset = 0
	}
}
