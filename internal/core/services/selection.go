package services

import (
	"sync"

	"github.com/docchat-labs/docchat-cli/internal/core/ports/driving"
)

// Ensure SelectionService implements the interface.
var _ driving.SelectionService = (*SelectionService)(nil)

// SelectionService tracks the document IDs chosen for querying.
// Pure set operations, no persistence: selection is scoped to the
// current session.
type SelectionService struct {
	mu  sync.Mutex
	ids []string
}

// NewSelectionService creates an empty selection.
func NewSelectionService() *SelectionService {
	return &SelectionService{}
}

// Toggle adds the ID if absent, removes it if present.
func (s *SelectionService) Toggle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
	s.ids = append(s.ids, id)
}

// SelectAll replaces the selection with the given IDs.
func (s *SelectionService) SelectAll(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
}

// DeselectAll empties the selection.
func (s *SelectionService) DeselectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
}

// Prune drops selected IDs that are not in the known set. Called after
// document deletes and clears so the selection never references a
// nonexistent ID.
func (s *SelectionService) Prune(known []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keep := make(map[string]struct{}, len(known))
	for _, id := range known {
		keep[id] = struct{}{}
	}

	pruned := s.ids[:0]
	for _, id := range s.ids {
		if _, ok := keep[id]; ok {
			pruned = append(pruned, id)
		}
	}
	s.ids = pruned
}

// IsSelected reports whether the ID is currently selected.
func (s *SelectionService) IsSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Selected returns the selected IDs in selection order.
func (s *SelectionService) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Count returns the number of selected IDs.
func (s *SelectionService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}
