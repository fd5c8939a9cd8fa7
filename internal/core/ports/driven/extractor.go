package driven

import "context"

// Extractor converts raw file bytes of specific media types into plain
// text. Each extractor declares the media types and file extensions it
// handles; the ingestion pipeline unions these declarations into its
// allow-list.
type Extractor interface {
	// SupportedMediaTypes returns the media types this extractor handles.
	SupportedMediaTypes() []string

	// SupportedExtensions returns the file extensions this extractor
	// handles, lowercase with the leading dot (e.g. ".txt").
	SupportedExtensions() []string

	// Extract returns the plain text content of the file bytes.
	Extract(ctx context.Context, data []byte) (string, error)
}
