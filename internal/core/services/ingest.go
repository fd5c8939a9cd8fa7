package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driving"
	"github.com/docchat-labs/docchat-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService converts uploaded files into draft documents. The
// allow-list of media types and extensions is the union of what the
// registered extractors declare.
type IngestService struct {
	extractors  []driven.Extractor
	byMediaType map[string]driven.Extractor
	byExtension map[string]driven.Extractor
}

// NewIngestService creates an ingest service over the given extractors.
// Earlier extractors win when two declare the same media type or
// extension.
func NewIngestService(extractors ...driven.Extractor) *IngestService {
	s := &IngestService{
		extractors:  extractors,
		byMediaType: make(map[string]driven.Extractor),
		byExtension: make(map[string]driven.Extractor),
	}
	for _, e := range extractors {
		for _, mt := range e.SupportedMediaTypes() {
			if _, ok := s.byMediaType[mt]; !ok {
				s.byMediaType[mt] = e
			}
		}
		for _, ext := range e.SupportedExtensions() {
			if _, ok := s.byExtension[ext]; !ok {
				s.byExtension[ext] = e
			}
		}
	}
	return s
}

// Ingest runs the pipeline gates in order; the first failure wins.
func (s *IngestService) Ingest(ctx context.Context, file domain.RawFile) (*domain.DraftDocument, error) {
	// Gate 1: byte size, ceiling inclusive.
	if len(file.Data) > domain.MaxFileSize {
		return nil, domain.ErrFileTooLarge
	}

	// Gate 2: media type OR extension must match (union, not intersection).
	extractor := s.lookup(file.MediaType, file.Name)
	if extractor == nil {
		return nil, domain.ErrUnsupportedFileType
	}

	// Gate 3: extraction. Runs to completion before any length check.
	content, err := extractor.Extract(ctx, file.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrReadFailure, err)
	}

	// Gate 4: extracted length.
	if utf8.RuneCountInString(content) > domain.MaxContentLength {
		return nil, domain.ErrContentTooLong
	}

	title := deriveTitle(file.Name)
	logger.Debug("Ingested %q: %d bytes -> %d chars", file.Name, len(file.Data), utf8.RuneCountInString(content))

	return &domain.DraftDocument{Title: title, Content: content}, nil
}

// Supported reports whether the type gate would pass.
func (s *IngestService) Supported(mediaType, name string) bool {
	return s.lookup(mediaType, name) != nil
}

// lookup resolves an extractor by media type first, then extension.
func (s *IngestService) lookup(mediaType, name string) driven.Extractor {
	// Strip media type parameters such as "; charset=utf-8".
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	if e, ok := s.byMediaType[mediaType]; ok {
		return e
	}
	ext := strings.ToLower(filepath.Ext(name))
	if e, ok := s.byExtension[ext]; ok {
		return e
	}
	return nil
}

// deriveTitle strips the final extension from the filename and
// truncates to the title bound. Derived titles are truncated, not
// rejected; the caller re-validates at add time anyway.
func deriveTitle(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	runes := []rune(base)
	if len(runes) > domain.MaxTitleLength {
		runes = runes[:domain.MaxTitleLength]
	}
	return string(runes)
}
