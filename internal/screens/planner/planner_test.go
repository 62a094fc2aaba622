package planner

import (
	"strings"
	"testing"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/oasys/internal/chat"
	"github.com/abhisek/oasys/internal/responder"
	"github.com/abhisek/oasys/internal/router"
	"github.com/abhisek/oasys/internal/screen"
	"github.com/abhisek/oasys/internal/ui/theme"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestScreen() (*Screen, *chat.Session) {
	sess := chat.NewSession()
	s := New(sess, 0, theme.Light)
	s.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return s, sess
}

func TestTitleAndHints(t *testing.T) {
	s, _ := newTestScreen()
	if s.Title() != "Plan Holidays" {
		t.Errorf("Title() = %q, want %q", s.Title(), "Plan Holidays")
	}
	if !s.Capturing() {
		t.Error("dialog should capture printable keys")
	}
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}

func TestViewShowsDialog(t *testing.T) {
	s, _ := newTestScreen()
	// The focused input draws its cursor over the first placeholder rune.
	s.input.Model.Blur()

	view := ansi.Strip(s.View(100, 34, theme.Light))
	for _, want := range []string{DialogTitle, Placeholder, responder.Greeting[:20]} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestBlankSubmitIgnored(t *testing.T) {
	s, sess := newTestScreen()
	s.input.Model.SetValue("   ")

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))

	if cmd != nil {
		t.Error("blank submit should not schedule anything")
	}
	if sess.Len() != 1 {
		t.Errorf("session length = %d, want 1", sess.Len())
	}
	if sess.State() != chat.StateIdle {
		t.Errorf("state = %s, want idle", sess.State())
	}
	if s.input.Value() != "   " {
		t.Errorf("blank input should be left in place, got %q", s.input.Value())
	}
}

func TestSubmitSchedulesReply(t *testing.T) {
	s, sess := newTestScreen()
	s.input.Model.SetValue("plan a holiday")

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))

	if cmd == nil {
		t.Fatal("expected a reply to be scheduled")
	}
	if sess.Len() != 2 {
		t.Fatalf("session length = %d, want 2", sess.Len())
	}
	if last := sess.Last(); !last.FromUser() || last.Content != "plan a holiday" {
		t.Errorf("last message = %+v, want the user's input", last)
	}
	if sess.State() != chat.StateAwaiting {
		t.Errorf("state = %s, want awaiting-response", sess.State())
	}
	if s.input.Value() != "" {
		t.Errorf("input should be cleared, got %q", s.input.Value())
	}
	if !s.spinning {
		t.Error("spinner should run while awaiting")
	}
}

func TestReplyAfterBroadcastsDue(t *testing.T) {
	sess := chat.NewSession()
	p, ok := sess.Send("hello")
	if !ok {
		t.Fatal("Send rejected valid input")
	}

	msg := replyAfter(time.Millisecond, sess.Due(p))()
	b, ok := msg.(router.BroadcastMsg)
	if !ok {
		t.Fatalf("got %T, want router.BroadcastMsg", msg)
	}
	due, ok := b.Msg.(chat.ReplyDue)
	if !ok {
		t.Fatalf("broadcast carries %T, want chat.ReplyDue", b.Msg)
	}
	if due.SessionID != sess.ID() || due.Pending.Input != "hello" {
		t.Errorf("due = %+v", due)
	}
}

func TestReplyDueRefreshesLog(t *testing.T) {
	s, sess := newTestScreen()
	p, _ := sess.Send("what is my attendance")

	// The owning screen resolves before the dialog sees the broadcast.
	if _, ok := sess.Resolve(p, responder.Select(p.Input, 82)); !ok {
		t.Fatal("Resolve rejected an outstanding reply")
	}

	s.Update(sess.Due(p))
	if sess.State() != chat.StateIdle {
		t.Errorf("state = %s, want idle", sess.State())
	}
	if !strings.Contains(s.log.View(), "82%") {
		t.Error("log should show the attendance reply")
	}
}

func TestReplyDueOtherSessionIgnored(t *testing.T) {
	s, _ := newTestScreen()
	other := chat.NewSession()
	p, _ := other.Send("hi")
	if _, cmd := s.Update(other.Due(p)); cmd != nil {
		t.Error("reply for another session should be ignored")
	}
}

func TestSpinnerStopsWhenIdle(t *testing.T) {
	s, _ := newTestScreen()
	s.spinning = true
	if _, cmd := s.Update(spinner.TickMsg{}); cmd != nil {
		t.Error("spinner should not tick while idle")
	}
	if s.spinning {
		t.Error("spinning should be cleared")
	}
}

func TestInitResumesSpinnerWhileAwaiting(t *testing.T) {
	sess := chat.NewSession()
	sess.Send("hello")
	s := New(sess, time.Second, theme.Dark)
	if s.Init() == nil {
		t.Fatal("expected init commands")
	}
	if !s.spinning {
		t.Error("spinner should resume while a reply is outstanding")
	}
}

func TestUserMessagesRightAligned(t *testing.T) {
	sess := chat.NewSession()
	sess.Send("hi")
	out := renderLog(theme.Light, sess.Messages(), 60)

	var userLine string
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "hi") && !strings.Contains(l, "Hello") {
			userLine = l
		}
	}
	if userLine == "" {
		t.Fatal("user message not rendered")
	}
	if !strings.HasPrefix(userLine, "      ") {
		t.Errorf("user bubble should be pushed right: %q", userLine)
	}
}
