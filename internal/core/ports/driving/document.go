package driving

import (
	"context"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

// DocumentService owns the document corpus. Every successful mutation
// writes the entire document list through to durable storage before
// returning.
type DocumentService interface {
	// Add validates the trimmed title and content, assigns an ID and
	// creation time, appends the document, and persists the list.
	// Validation failures report every violated bound via errors.Join.
	Add(ctx context.Context, title, content string) (*domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all documents in insertion order.
	List(ctx context.Context) []domain.Document

	// IDs returns the IDs of all documents in insertion order.
	IDs(ctx context.Context) []string

	// Delete removes the document if present and persists. Deleting an
	// unknown ID is a no-op. Callers must prune the selection set.
	Delete(ctx context.Context, id string) error

	// Clear empties the corpus and persists. Destructive: callers must
	// gate it behind explicit confirmation and empty the selection set.
	Clear(ctx context.Context) error

	// Merge appends already-validated documents (e.g. from import) in
	// one operation with a single persistence write.
	Merge(ctx context.Context, docs []domain.Document) error
}
