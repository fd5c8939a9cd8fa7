package cli

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/docchat-labs/docchat-cli/internal/adapters/driven/storage/memory"
	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/core/services"
	"github.com/docchat-labs/docchat-cli/internal/extractors/plaintext"
)

// fixedClock pins time for deterministic output.
type fixedClock struct{}

func (fixedClock) Now() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}

// seqIDGenerator hands out doc-1, doc-2, ...
type seqIDGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("doc-%d", g.n)
}

// stubQueryClient returns a canned answer without any network traffic.
type stubQueryClient struct {
	answer domain.Answer
	err    error
	calls  int
}

func (c *stubQueryClient) Ask(_ context.Context, _ string, _ []domain.Document, _ string) (*domain.Answer, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return &c.answer, nil
}

// testDocID is the ID of the document seeded by setupTestServices.
var testDocID string

// setupTestServices wires the command tree to in-memory services with
// one seeded document and a stored API key. The returned cleanup
// restores the previous wiring.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	ctx := context.Background()
	store := memory.NewKeyValueStore()
	clock := fixedClock{}
	idgen := &seqIDGenerator{}

	docs, err := services.NewDocumentService(ctx, store, clock, idgen)
	require.NoError(t, err)

	seeded, err := docs.Add(ctx, "Seed Document", "This is the content of the seed document.")
	require.NoError(t, err)
	testDocID = seeded.ID

	selection := services.NewSelectionService()
	settings := services.NewSettingsService(store)
	require.NoError(t, settings.SetAPIKey(ctx, "sk-test-key-12345"))

	query := &stubQueryClient{
		answer: domain.Answer{
			Text:    "It is about seeds.",
			Sources: []string{"Seed Document"},
		},
	}

	chat, err := services.NewChatService(ctx, store, query, docs, selection, settings, clock, idgen)
	require.NoError(t, err)

	oldDocument := documentService
	oldIngest := ingestService
	oldTransfer := transferService
	oldSelection := selectionService
	oldChat := chatService
	oldSettings := settingsService
	oldPrewired := servicesPrewired
	oldExtensions := watchExtensions

	documentService = docs
	ingestService = services.NewIngestService(plaintext.New())
	transferService = services.NewTransferService(docs, clock, idgen)
	selectionService = selection
	chatService = chat
	settingsService = settings
	servicesPrewired = true
	watchExtensions = plaintext.New().SupportedExtensions()

	return func() {
		documentService = oldDocument
		ingestService = oldIngest
		transferService = oldTransfer
		selectionService = oldSelection
		chatService = oldChat
		settingsService = oldSettings
		servicesPrewired = oldPrewired
		watchExtensions = oldExtensions
	}
}
