package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driving"
	"github.com/docchat-labs/docchat-cli/internal/logger"
)

// Ensure TransferService implements the interface.
var _ driving.TransferService = (*TransferService)(nil)

// TransferService exports the corpus as a portable JSON array and
// imports externally supplied arrays back in.
type TransferService struct {
	documents driving.DocumentService
	clock     driven.Clock
	idgen     driven.IDGenerator
}

// NewTransferService creates a transfer service.
func NewTransferService(
	documents driving.DocumentService,
	clock driven.Clock,
	idgen driven.IDGenerator,
) *TransferService {
	return &TransferService{
		documents: documents,
		clock:     clock,
		idgen:     idgen,
	}
}

// importRecord mirrors the portable document shape. Decoding enforces
// the primitive types: a non-string field fails the element, while
// unknown extra fields are ignored.
type importRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// Export returns the pretty-printed document array and the dated
// artifact filename.
func (s *TransferService) Export(ctx context.Context) ([]byte, string, error) {
	docs := s.documents.List(ctx)
	if docs == nil {
		docs = []domain.Document{}
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("encoding documents: %w", err)
	}

	name := fmt.Sprintf("documents-%s.json", s.clock.Now().Format("2006-01-02"))
	return data, name, nil
}

// Import parses, filters, and merges a document array. Elements with
// wrong field types, unparseable timestamps, or violated length bounds
// are dropped; survivors get fresh IDs so imported documents can never
// collide with existing or sibling-imported ones.
func (s *TransferService) Import(ctx context.Context, raw []byte) (*driving.ImportResult, error) {
	var top any
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrParseFailure, err)
	}
	if _, ok := top.([]any); !ok {
		return nil, domain.ErrNotAnArray
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrParseFailure, err)
	}

	accepted := make([]domain.Document, 0, len(elements))
	skipped := 0
	for _, element := range elements {
		doc, ok := s.decodeRecord(element)
		if !ok {
			skipped++
			continue
		}
		accepted = append(accepted, *doc)
	}

	if len(accepted) == 0 {
		return nil, domain.ErrNoValidDocuments
	}

	if err := s.documents.Merge(ctx, accepted); err != nil {
		return nil, err
	}

	logger.Info("Imported %d documents (%d skipped)", len(accepted), skipped)
	return &driving.ImportResult{Accepted: accepted, Skipped: skipped}, nil
}

// decodeRecord validates one array element and converts it into a
// store-ready document with a fresh ID.
func (s *TransferService) decodeRecord(element json.RawMessage) (*domain.Document, bool) {
	var rec importRecord
	if err := json.Unmarshal(element, &rec); err != nil {
		return nil, false
	}
	if rec.ID == "" {
		return nil, false
	}

	createdAt, err := time.Parse(time.RFC3339, rec.CreatedAt)
	if err != nil {
		return nil, false
	}

	if domain.ValidateDraft(rec.Title, rec.Content) != nil {
		return nil, false
	}

	return &domain.Document{
		ID:        s.idgen.NewID(),
		Title:     strings.TrimSpace(rec.Title),
		Content:   strings.TrimSpace(rec.Content),
		CreatedAt: createdAt,
	}, true
}
