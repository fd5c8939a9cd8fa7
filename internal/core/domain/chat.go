package domain

import "time"

// Role identifies the author of a chat message.
type Role string

// Message roles.
const (
	// RoleUser is a question typed by the user.
	RoleUser Role = "user"

	// RoleAssistant is an answer returned by the QA service.
	RoleAssistant Role = "assistant"
)

// IsValid returns true if the role is recognised.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAssistant:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// ChatMessage is one turn of the conversation. Messages are append-only
// and stored in strict chronological order.
type ChatMessage struct {
	// ID is the unique message identifier.
	ID string `json:"id"`

	// Role is the message author.
	Role Role `json:"role"`

	// Content is the question or answer text.
	Content string `json:"content"`

	// Timestamp is when the message was appended.
	Timestamp time.Time `json:"timestamp"`

	// Sources lists the document titles the service cited.
	// Present only on assistant messages.
	Sources []string `json:"sources,omitempty"`
}

// ChatState is the explicit state of the chat session. A tagged state
// replaces disjoint loading/error booleans so impossible combinations
// cannot be represented.
type ChatState string

// Chat session states.
const (
	// ChatStateIdle means no question is being processed.
	ChatStateIdle ChatState = "idle"

	// ChatStateSending means a question is in flight. No second send is
	// permitted until the session returns to idle.
	ChatStateSending ChatState = "sending"
)

// IsValid returns true if the state is recognised.
func (s ChatState) IsValid() bool {
	switch s {
	case ChatStateIdle, ChatStateSending:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s ChatState) String() string {
	return string(s)
}

// Answer is a successful response from the QA service.
type Answer struct {
	// Text is the answer body.
	Text string

	// Sources lists the document titles the answer drew from.
	// May be empty.
	Sources []string
}
