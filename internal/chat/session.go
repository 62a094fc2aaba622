// Package chat holds the holiday planner conversation state.
package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/oasys/internal/responder"
)

// State is the session's response state.
type State int

const (
	StateIdle     State = iota // No reply outstanding
	StateAwaiting              // At least one reply scheduled
)

func (s State) String() string {
	if s == StateAwaiting {
		return "awaiting-response"
	}
	return "idle"
}

// Pending is the token for a scheduled reply. It is handed back to Resolve
// when the reply delay elapses. ID is the ID of the user message it answers.
type Pending struct {
	ID    string
	Input string
}

// ReplyDue signals that the delay for a pending reply has elapsed.
type ReplyDue struct {
	SessionID string
	Pending   Pending
}

// Option configures a Session.
type Option func(*Session)

// WithCoalescing makes each Send supersede replies still outstanding from
// earlier sends. Superseded replies are dropped when they come due.
func WithCoalescing() Option {
	return func(s *Session) { s.coalesce = true }
}

// WithClock overrides the time source used to stamp messages.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithGreeting overrides the opening system message.
func WithGreeting(text string) Option {
	return func(s *Session) { s.greeting = text }
}

// Session is an append-only chat log with the set of replies still owed.
type Session struct {
	id          string
	messages    []Message
	outstanding map[string]struct{}
	coalesce    bool
	greeting    string
	now         func() time.Time
}

// NewSession creates a session seeded with the planner greeting.
func NewSession(opts ...Option) *Session {
	s := &Session{
		id:          uuid.New().String(),
		outstanding: make(map[string]struct{}),
		greeting:    responder.Greeting,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.append(Message{Role: RoleSystem, Content: s.greeting})
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns StateAwaiting while any reply is outstanding.
func (s *Session) State() State {
	if len(s.outstanding) > 0 {
		return StateAwaiting
	}
	return StateIdle
}

// Outstanding returns the number of scheduled replies not yet resolved.
func (s *Session) Outstanding() int {
	return len(s.outstanding)
}

// Len returns the number of messages in the log.
func (s *Session) Len() int {
	return len(s.messages)
}

// Messages returns a copy of the log in order.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Last returns the most recent message.
func (s *Session) Last() Message {
	return s.messages[len(s.messages)-1]
}

// Send appends a user message and returns the token for its reply.
// Blank input is rejected without touching the session.
func (s *Session) Send(input string) (Pending, bool) {
	if strings.TrimSpace(input) == "" {
		return Pending{}, false
	}

	msg := s.append(Message{Role: RoleUser, Content: input})

	if s.coalesce {
		clear(s.outstanding)
	}
	s.outstanding[msg.ID] = struct{}{}

	return Pending{ID: msg.ID, Input: input}, true
}

// Due wraps a pending token as a ReplyDue for this session.
func (s *Session) Due(p Pending) ReplyDue {
	return ReplyDue{SessionID: s.id, Pending: p}
}

// Resolve appends the reply for p as a system message. It reports false when
// p is not owed a reply: already resolved, from another session, or
// superseded by a later send on a coalescing session.
func (s *Session) Resolve(p Pending, reply responder.Reply) (Message, bool) {
	if _, ok := s.outstanding[p.ID]; !ok {
		return Message{}, false
	}
	delete(s.outstanding, p.ID)
	return s.append(Message{Role: RoleSystem, Content: reply.Text, Kind: reply.Kind}), true
}

func (s *Session) append(m Message) Message {
	m.ID = uuid.New().String()
	m.SentAt = s.now()
	s.messages = append(s.messages, m)
	return m
}
