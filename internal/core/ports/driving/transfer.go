package driving

import (
	"context"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

// ImportResult summarises an import. Malformed elements are dropped
// without per-element diagnostics; only the counts are reported.
type ImportResult struct {
	// Accepted holds the merged documents, with freshly assigned IDs.
	Accepted []domain.Document

	// Skipped is the number of array elements that failed validation.
	Skipped int
}

// TransferService serializes the corpus to a portable JSON array and
// validates and merges an externally supplied array back in.
type TransferService interface {
	// Export returns the pretty-printed JSON array of all documents and
	// the suggested artifact filename (documents-<ISO date>.json).
	Export(ctx context.Context) ([]byte, string, error)

	// Import parses raw JSON, filters elements against the document
	// invariants, assigns fresh IDs, and merges the survivors into the
	// store. Zero accepted elements is an error even for a non-empty
	// array. Already-stored documents are never affected by a failure.
	Import(ctx context.Context, raw []byte) (*ImportResult, error)
}
