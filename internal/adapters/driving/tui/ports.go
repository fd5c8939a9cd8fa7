// Package tui provides an interactive terminal user interface for
// docchat. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Document manages the document library.
	Document driving.DocumentService

	// Selection tracks which documents are chosen for questioning.
	Selection driving.SelectionService

	// Chat owns the message history and the QA request cycle.
	Chat driving.ChatService

	// Settings manages the stored API key.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	if p.Selection == nil {
		return ErrMissingSelectionService
	}
	if p.Chat == nil {
		return ErrMissingChatService
	}
	return nil
}
