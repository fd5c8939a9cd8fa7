package driving

import (
	"context"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

// IngestService validates an uploaded file and converts it into a
// draft (title, content) pair, independent of the document store. The
// caller may edit the draft before committing it via DocumentService.Add.
type IngestService interface {
	// Ingest runs the pipeline gates in order: byte size, media type or
	// extension allow-list, text extraction, extracted length, title
	// derivation. The first failing gate wins and no partial result is
	// returned.
	Ingest(ctx context.Context, file domain.RawFile) (*domain.DraftDocument, error)

	// Supported reports whether a file with the given media type and
	// name would pass the type gate.
	Supported(mediaType, name string) bool
}
