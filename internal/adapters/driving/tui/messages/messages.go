// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewChat is the question/answer conversation view.
	ViewChat
	// ViewDocuments is the document library and selection view.
	ViewDocuments
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewChat:
		return "chat"
	case ViewDocuments:
		return "documents"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// AnswerReceived carries the outcome of one question to the chat view.
// On success Message is the assistant turn; on failure Err explains why.
type AnswerReceived struct {
	Message *domain.ChatMessage
	Err     error
}

// SelectionChanged signals the set of selected documents changed.
type SelectionChanged struct {
	Count int
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
