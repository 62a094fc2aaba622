// Package planner implements the holiday planning chat dialog.
package planner

import (
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/oasys/internal/chat"
	"github.com/abhisek/oasys/internal/router"
	"github.com/abhisek/oasys/internal/screen"
	"github.com/abhisek/oasys/internal/ui/components"
	"github.com/abhisek/oasys/internal/ui/layout"
	"github.com/abhisek/oasys/internal/ui/theme"
)

const (
	DialogTitle = "Plan Your Holidays with O-AI-sys"
	Placeholder = "Type your message..."

	maxDialogWidth = 96
	// title + input box + typing line + dialog border and padding
	chromeHeight = 9
)

// Screen is the chat dialog. It renders and extends a session it does not
// own: replies are resolved by the screen that owns the session when the
// broadcast chat.ReplyDue arrives, and this screen re-renders afterwards.
type Screen struct {
	session *chat.Session
	delay   time.Duration

	input components.TextInput
	log   viewport.Model
	spin  spinner.Model
	pal   theme.Palette

	width, height int
	spinning      bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.InputCapturer = (*Screen)(nil)

// New creates the dialog for session. Replies come due after delay.
func New(session *chat.Session, delay time.Duration, p theme.Palette) *Screen {
	s := &Screen{
		session: session,
		delay:   delay,
		input:   components.NewTextInput(Placeholder, 500),
		log:     viewport.New(viewport.WithWidth(60), viewport.WithHeight(10)),
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		pal:     p,
	}
	s.spin.Style = lipgloss.NewStyle().Foreground(p.Primary)
	s.syncLog()
	return s
}

func (s *Screen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.input.Init()}
	// Reopened while a reply is still outstanding.
	if s.session.State() == chat.StateAwaiting {
		s.spinning = true
		cmds = append(cmds, s.spin.Tick)
	}
	return tea.Batch(cmds...)
}

func (s *Screen) Title() string {
	return "Plan Holidays"
}

func (s *Screen) Capturing() bool {
	return true
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Close"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.resize(msg.Width, layout.ContentHeight(msg.Height))
		return s, nil

	case theme.ChangedMsg:
		s.pal = msg.Palette
		s.spin.Style = lipgloss.NewStyle().Foreground(s.pal.Primary)
		s.syncLog()
		return s, nil

	case chat.ReplyDue:
		if msg.SessionID != s.session.ID() {
			return s, nil
		}
		s.syncLog()
		return s, nil

	case spinner.TickMsg:
		if s.session.State() != chat.StateAwaiting {
			s.spinning = false
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return s.submit()
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		s.log, cmd = s.log.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit sends the input as a user message and schedules the reply.
// Blank input is ignored and left in place.
func (s *Screen) submit() (screen.Screen, tea.Cmd) {
	if s.input.Blank() {
		return s, nil
	}
	p, ok := s.session.Send(s.input.Take())
	if !ok {
		return s, nil
	}
	s.syncLog()

	cmds := []tea.Cmd{replyAfter(s.delay, s.session.Due(p))}
	if !s.spinning {
		s.spinning = true
		cmds = append(cmds, s.spin.Tick)
	}
	return s, tea.Batch(cmds...)
}

// replyAfter delivers due to every screen once delay has elapsed, so the
// reply lands even if the dialog was closed in the meantime.
func replyAfter(delay time.Duration, due chat.ReplyDue) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return router.BroadcastMsg{Msg: due}
	})
}

func (s *Screen) resize(width, height int) {
	s.width, s.height = width, height

	w := dialogWidth(width) - 4
	h := height - chromeHeight
	if h < 3 {
		h = 3
	}
	s.log.SetWidth(w)
	s.log.SetHeight(h)
	s.input.SetWidth(w - 4)
	s.syncLog()
}

func (s *Screen) syncLog() {
	s.log.SetContent(renderLog(s.pal, s.session.Messages(), s.log.Width()))
	s.log.GotoBottom()
}

func dialogWidth(width int) int {
	w := width - 4
	if w > maxDialogWidth {
		w = maxDialogWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}
