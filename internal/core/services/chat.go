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

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// apiKeyPrefix is the required prefix of a well-formed API key.
const apiKeyPrefix = "sk-"

// ChatService owns the chat history and runs the question/answer cycle:
// validate, append and persist the user turn, one QA call, append and
// persist the assistant turn. The explicit idle/sending state makes a
// second in-flight question impossible.
type ChatService struct {
	mu      sync.Mutex
	state   domain.ChatState
	history []domain.ChatMessage

	store     driven.KeyValueStore
	query     driven.QueryClient
	documents driving.DocumentService
	selection driving.SelectionService
	settings  driving.SettingsService
	clock     driven.Clock
	idgen     driven.IDGenerator
}

// NewChatService creates a chat service and loads the persisted history.
func NewChatService(
	ctx context.Context,
	store driven.KeyValueStore,
	query driven.QueryClient,
	documents driving.DocumentService,
	selection driving.SelectionService,
	settings driving.SettingsService,
	clock driven.Clock,
	idgen driven.IDGenerator,
) (*ChatService, error) {
	s := &ChatService{
		state:     domain.ChatStateIdle,
		store:     store,
		query:     query,
		documents: documents,
		selection: selection,
		settings:  settings,
		clock:     clock,
		idgen:     idgen,
	}

	raw, ok, err := store.Get(ctx, driven.KeyChatHistory)
	if err != nil {
		return nil, fmt.Errorf("loading chat history: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &s.history); err != nil {
			return nil, fmt.Errorf("decoding stored chat history: %w", err)
		}
	}

	logger.Debug("Chat history loaded: %d messages", len(s.history))
	return s, nil
}

// Send submits one question about the selected documents.
func (s *ChatService) Send(ctx context.Context, question string) (*domain.ChatMessage, error) {
	question = strings.TrimSpace(question)

	s.mu.Lock()
	if s.state != domain.ChatStateIdle {
		s.mu.Unlock()
		return nil, domain.ErrSendInFlight
	}

	// Validation gates. All abort before any message is appended and
	// before any network call.
	apiKey, docs, err := s.validate(ctx, question)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	// The user turn is appended and persisted optimistically, before
	// the call resolves. It stays in history even if the call fails.
	userMsg := domain.ChatMessage{
		ID:        s.idgen.NewID(),
		Role:      domain.RoleUser,
		Content:   question,
		Timestamp: s.clock.Now(),
	}
	s.history = append(s.history, userMsg)
	if err := s.persist(ctx); err != nil {
		s.history = s.history[:len(s.history)-1]
		s.mu.Unlock()
		return nil, err
	}

	s.state = domain.ChatStateSending
	s.mu.Unlock()

	logger.Section("QA Request")
	logger.Debug("Question: %q, documents: %d", question, len(docs))

	answer, err := s.query.Ask(ctx, apiKey, docs, question)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.ChatStateIdle

	if err != nil {
		// No assistant turn and no rollback of the user turn.
		logger.Warn("QA request failed: %v", err)
		return nil, err
	}

	assistantMsg := domain.ChatMessage{
		ID:        s.idgen.NewID(),
		Role:      domain.RoleAssistant,
		Content:   answer.Text,
		Timestamp: s.clock.Now(),
		Sources:   answer.Sources,
	}
	s.history = append(s.history, assistantMsg)
	if err := s.persist(ctx); err != nil {
		s.history = s.history[:len(s.history)-1]
		return nil, err
	}

	return &assistantMsg, nil
}

// validate runs the pre-send gates and resolves the selected documents.
// Callers hold s.mu.
func (s *ChatService) validate(ctx context.Context, question string) (string, []domain.Document, error) {
	if question == "" {
		return "", nil, domain.ErrEmptyQuestion
	}

	apiKey, err := s.settings.APIKey(ctx)
	if err != nil {
		return "", nil, err
	}
	if !strings.HasPrefix(apiKey, apiKeyPrefix) {
		return "", nil, domain.ErrInvalidAPIKeyFormat
	}

	var docs []domain.Document
	for _, id := range s.selection.Selected() {
		doc, err := s.documents.Get(ctx, id)
		if err != nil {
			// The selection is pruned on delete/clear, so a missing ID
			// only happens on an out-of-band storage edit. Skip it.
			continue
		}
		docs = append(docs, *doc)
	}
	if len(docs) == 0 {
		return "", nil, domain.ErrNoDocumentsSelected
	}

	return apiKey, docs, nil
}

// History returns a copy of all messages in chronological order.
func (s *ChatService) History(_ context.Context) []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}

// ClearHistory truncates the history and persists the empty array.
func (s *ChatService) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = nil
	logger.Debug("Chat history cleared")
	return s.persist(ctx)
}

// State returns the current session state.
func (s *ChatService) State() domain.ChatState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// persist writes the whole history to storage. An empty history is
// stored as [], keeping the key present. Callers hold s.mu.
func (s *ChatService) persist(ctx context.Context) error {
	history := s.history
	if history == nil {
		history = []domain.ChatMessage{}
	}

	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encoding chat history: %w", err)
	}
	if err := s.store.Set(ctx, driven.KeyChatHistory, string(data)); err != nil {
		return fmt.Errorf("persisting chat history: %w", err)
	}
	return nil
}
