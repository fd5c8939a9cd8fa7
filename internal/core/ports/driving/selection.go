package driving

// SelectionService tracks which document IDs are chosen for querying.
// Selection is ephemeral: scoped to the current session, never
// persisted. Callers must prune it when documents are deleted so it
// never references a nonexistent ID.
type SelectionService interface {
	// Toggle adds the ID if absent, removes it if present.
	Toggle(id string)

	// SelectAll replaces the selection with the given IDs.
	SelectAll(ids []string)

	// DeselectAll empties the selection.
	DeselectAll()

	// Prune drops selected IDs that are not in the known set.
	Prune(known []string)

	// IsSelected reports whether the ID is currently selected.
	IsSelected(id string) bool

	// Selected returns the selected IDs in selection order.
	Selected() []string

	// Count returns the number of selected IDs.
	Count() int
}
