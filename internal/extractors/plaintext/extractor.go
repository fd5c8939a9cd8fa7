// Package plaintext extracts text from files that already are text.
package plaintext

import (
	"context"

	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text and text-adjacent formats. The bytes are
// decoded verbatim; markup is not stripped.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMediaTypes returns the media types this extractor handles.
func (e *Extractor) SupportedMediaTypes() []string {
	return []string{
		"text/plain",
		"text/markdown",
		"application/json",
		"text/csv",
		"text/html",
		"text/xml",
	}
}

// SupportedExtensions returns the file extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".txt", ".md", ".json", ".csv", ".html", ".xml", ".log"}
}

// Extract decodes the bytes as text verbatim.
func (e *Extractor) Extract(_ context.Context, data []byte) (string, error) {
	return string(data), nil
}
