// Package pdf extracts text from PDF files.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF documents. Text is extracted from every page in
// order; pages are joined with a newline and the text runs within a
// page are joined with single spaces.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMediaTypes returns the media types this extractor handles.
func (e *Extractor) SupportedMediaTypes() []string {
	return []string{"application/pdf"}
}

// SupportedExtensions returns the file extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".pdf"}
}

// Extract returns the text of all pages. Extraction always runs to the
// last page; length policy is enforced by the caller afterwards.
func (e *Extractor) Extract(_ context.Context, data []byte) (text string, err error) {
	// The parser panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("parsing pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for num := 1; num <= reader.NumPage(); num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		pageText, err := extractPage(page)
		if err != nil {
			return "", fmt.Errorf("extracting page %d: %w", num, err)
		}
		pages = append(pages, pageText)
	}

	return strings.Join(pages, "\n"), nil
}

// extractPage joins the page's text runs with single spaces, in reading
// order.
func extractPage(page pdf.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return "", err
	}

	var runs []string
	for _, row := range rows {
		for _, text := range row.Content {
			if s := strings.TrimSpace(text.S); s != "" {
				runs = append(runs, s)
			}
		}
	}
	return strings.Join(runs, " "), nil
}
