package chat

import (
	"time"

	"github.com/abhisek/oasys/internal/responder"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser   Role = "user"
	RoleSystem Role = "system"
)

// Message is a single entry in the chat log.
type Message struct {
	ID      string
	Role    Role
	Content string
	// Kind is set on system replies produced by the responder.
	Kind   responder.Kind
	SentAt time.Time
}

// FromUser reports whether the message was typed by the user.
func (m Message) FromUser() bool {
	return m.Role == RoleUser
}
