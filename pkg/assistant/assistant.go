package assistant

import (
	"errors"
	"time"
)

var ErrValidation = errors.New("invalid message")

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of a user's conversation with the assistant.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
}
