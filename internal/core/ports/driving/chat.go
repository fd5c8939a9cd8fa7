package driving

import (
	"context"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

// ChatService owns the ordered message history and orchestrates the
// request/response cycle with the QA service. Exactly one question may
// be in flight at a time; the history is persisted after every append.
type ChatService interface {
	// Send validates the question, API key, and selection, appends and
	// persists the user turn, performs one QA call, then appends and
	// persists the assistant turn. Validation failures abort before
	// anything is appended. A remote failure leaves the user turn in
	// history, appends no assistant turn, and returns the error.
	Send(ctx context.Context, question string) (*domain.ChatMessage, error)

	// History returns all messages in chronological order.
	History(ctx context.Context) []domain.ChatMessage

	// ClearHistory truncates the history to empty and persists the
	// empty array. Destructive: callers must gate it behind explicit
	// confirmation.
	ClearHistory(ctx context.Context) error

	// State returns the current session state.
	State() domain.ChatState
}
