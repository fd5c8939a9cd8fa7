package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docchat-labs/docchat-cli/internal/adapters/driven/storage/memory"
	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

func newTransferFixture(t *testing.T) (*TransferService, *DocumentService) {
	t.Helper()
	docs := newDocumentService(t, memory.NewKeyValueStore())
	// A separate generator namespace for imported IDs keeps the test
	// assertions readable; uniqueness is what matters.
	transfer := NewTransferService(docs, newFakeClock(), &seqIDGenerator{n: 100})
	return transfer, docs
}

func TestExport_PrettyPrintedArrayAndDatedFilename(t *testing.T) {
	transfer, docs := newTransferFixture(t)
	ctx := context.Background()

	_, err := docs.Add(ctx, "My Notes", "Some content")
	require.NoError(t, err)

	data, name, err := transfer.Export(ctx)
	require.NoError(t, err)

	assert.Equal(t, "documents-2024-01-01.json", name)
	assert.True(t, strings.HasPrefix(string(data), "[\n"), "expected a pretty-printed array")

	var exported []domain.Document
	require.NoError(t, json.Unmarshal(data, &exported))
	require.Len(t, exported, 1)
	assert.Equal(t, "My Notes", exported[0].Title)
}

func TestExport_EmptyStore(t *testing.T) {
	transfer, _ := newTransferFixture(t)

	data, _, err := transfer.Export(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestImport_AssignsFreshIDs(t *testing.T) {
	transfer, docs := newTransferFixture(t)
	ctx := context.Background()

	raw := `[{"id":"1","title":"A","content":"B","createdAt":"2024-01-01T00:00:00Z"}]`
	result, err := transfer.Import(ctx, []byte(raw))
	require.NoError(t, err)

	require.Len(t, result.Accepted, 1)
	assert.Zero(t, result.Skipped)

	imported := result.Accepted[0]
	assert.NotEqual(t, "1", imported.ID, "imported IDs must be freshly generated")
	assert.Equal(t, "A", imported.Title)
	assert.Equal(t, "B", imported.Content)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), imported.CreatedAt)

	stored := docs.List(ctx)
	require.Len(t, stored, 1)
	assert.Equal(t, imported, stored[0])
}

func TestImport_NotJSON(t *testing.T) {
	transfer, _ := newTransferFixture(t)

	_, err := transfer.Import(context.Background(), []byte("definitely not json"))
	assert.ErrorIs(t, err, domain.ErrParseFailure)
}

func TestImport_NotAnArray(t *testing.T) {
	transfer, _ := newTransferFixture(t)

	for _, raw := range []string{`{"id":"1"}`, `"hello"`, `42`, `null`} {
		_, err := transfer.Import(context.Background(), []byte(raw))
		assert.ErrorIs(t, err, domain.ErrNotAnArray, "payload: %s", raw)
	}
}

func TestImport_FiltersMalformedElements(t *testing.T) {
	transfer, docs := newTransferFixture(t)
	ctx := context.Background()

	longTitle := strings.Repeat("t", domain.MaxTitleLength+1)
	raw := `[
		{"id":"1","title":"Good","content":"Body","createdAt":"2024-01-01T00:00:00Z"},
		{"id":2,"title":"Bad id type","content":"Body","createdAt":"2024-01-01T00:00:00Z"},
		{"id":"3","title":"","content":"Body","createdAt":"2024-01-01T00:00:00Z"},
		{"id":"4","title":"` + longTitle + `","content":"Body","createdAt":"2024-01-01T00:00:00Z"},
		{"id":"5","title":"No timestamp","content":"Body"},
		{"id":"6","title":"Bad timestamp","content":"Body","createdAt":"yesterday"},
		{"id":"7","title":"Also good","content":"Body","createdAt":"2024-02-02T12:00:00Z","extra":"ignored"}
	]`

	result, err := transfer.Import(ctx, []byte(raw))
	require.NoError(t, err)

	assert.Len(t, result.Accepted, 2)
	assert.Equal(t, 5, result.Skipped)
	assert.Len(t, docs.List(ctx), 2)
}

func TestImport_AllInvalid(t *testing.T) {
	transfer, docs := newTransferFixture(t)
	ctx := context.Background()

	raw := `[{"id":1,"title":2,"content":3,"createdAt":4}, {"title":"no id"}]`
	_, err := transfer.Import(ctx, []byte(raw))
	assert.ErrorIs(t, err, domain.ErrNoValidDocuments)

	// A failed import never touches stored documents.
	assert.Empty(t, docs.List(ctx))
}

func TestImport_EmptyArray(t *testing.T) {
	transfer, _ := newTransferFixture(t)

	_, err := transfer.Import(context.Background(), []byte("[]"))
	assert.ErrorIs(t, err, domain.ErrNoValidDocuments)
}

func TestImport_SiblingIDsAreUnique(t *testing.T) {
	transfer, _ := newTransferFixture(t)

	// Two elements carrying the same incoming ID still come out distinct.
	raw := `[
		{"id":"dup","title":"One","content":"Body","createdAt":"2024-01-01T00:00:00Z"},
		{"id":"dup","title":"Two","content":"Body","createdAt":"2024-01-01T00:00:00Z"}
	]`
	result, err := transfer.Import(context.Background(), []byte(raw))
	require.NoError(t, err)
	require.Len(t, result.Accepted, 2)
	assert.NotEqual(t, result.Accepted[0].ID, result.Accepted[1].ID)
}

func TestImport_ExportRoundTrip(t *testing.T) {
	transfer, docs := newTransferFixture(t)
	ctx := context.Background()

	_, err := docs.Add(ctx, "Round", "Trip")
	require.NoError(t, err)

	data, _, err := transfer.Export(ctx)
	require.NoError(t, err)

	result, err := transfer.Import(ctx, data)
	require.NoError(t, err)
	require.Len(t, result.Accepted, 1)

	assert.Equal(t, "Round", result.Accepted[0].Title)
	assert.Equal(t, "Trip", result.Accepted[0].Content)
	assert.Len(t, docs.List(ctx), 2)
}
