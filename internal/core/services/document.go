package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driving"
	"github.com/docchat-labs/docchat-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService owns the in-memory document list and mirrors every
// mutation to the key-value store as one whole-list write.
type DocumentService struct {
	mu    sync.Mutex
	docs  []domain.Document
	store driven.KeyValueStore
	clock driven.Clock
	idgen driven.IDGenerator
}

// NewDocumentService creates a document service and loads the persisted
// list from storage. An absent key yields an empty corpus.
func NewDocumentService(
	ctx context.Context,
	store driven.KeyValueStore,
	clock driven.Clock,
	idgen driven.IDGenerator,
) (*DocumentService, error) {
	s := &DocumentService{
		store: store,
		clock: clock,
		idgen: idgen,
	}

	raw, ok, err := store.Get(ctx, driven.KeyDocuments)
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &s.docs); err != nil {
			return nil, fmt.Errorf("decoding stored documents: %w", err)
		}
	}

	logger.Debug("Document store loaded: %d documents", len(s.docs))
	return s, nil
}

// Add validates, appends, and persists a new document.
func (s *DocumentService) Add(ctx context.Context, title, content string) (*domain.Document, error) {
	if err := domain.ValidateDraft(title, content); err != nil {
		return nil, err
	}

	doc := domain.Document{
		ID:        s.idgen.NewID(),
		Title:     strings.TrimSpace(title),
		Content:   strings.TrimSpace(content),
		CreatedAt: s.clock.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = append(s.docs, doc)
	if err := s.persist(ctx); err != nil {
		// Roll back the in-memory append so memory and storage agree.
		s.docs = s.docs[:len(s.docs)-1]
		return nil, err
	}

	logger.Debug("Document added: %s (%q)", doc.ID, doc.Title)
	return &doc, nil
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.docs {
		if s.docs[i].ID == id {
			doc := s.docs[i]
			return &doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns a copy of all documents in insertion order.
func (s *DocumentService) List(_ context.Context) []domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// IDs returns all document IDs in insertion order.
func (s *DocumentService) IDs(_ context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, len(s.docs))
	for i := range s.docs {
		ids[i] = s.docs[i].ID
	}
	return ids
}

// Delete removes the document if present and persists. Idempotent.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			logger.Debug("Document deleted: %s", id)
			return s.persist(ctx)
		}
	}

	// Unknown ID: no mutation, no write.
	return nil
}

// Clear empties the corpus and persists the empty list.
func (s *DocumentService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = nil
	logger.Debug("Document store cleared")
	return s.persist(ctx)
}

// Merge appends pre-validated documents with a single persistence write.
func (s *DocumentService) Merge(ctx context.Context, docs []domain.Document) error {
	if len(docs) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := len(s.docs)
	s.docs = append(s.docs, docs...)
	if err := s.persist(ctx); err != nil {
		s.docs = s.docs[:prev]
		return err
	}

	logger.Debug("Merged %d documents", len(docs))
	return nil
}

// persist writes the whole document list to storage. Callers hold s.mu.
func (s *DocumentService) persist(ctx context.Context) error {
	// An empty corpus still serializes as [], never null.
	docs := s.docs
	if docs == nil {
		docs = []domain.Document{}
	}

	data, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("encoding documents: %w", err)
	}
	if err := s.store.Set(ctx, driven.KeyDocuments, string(data)); err != nil {
		return fmt.Errorf("persisting documents: %w", err)
	}
	return nil
}
