package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages the stored API key.
type SettingsService struct {
	store driven.KeyValueStore
}

// NewSettingsService creates a settings service.
func NewSettingsService(store driven.KeyValueStore) *SettingsService {
	return &SettingsService{store: store}
}

// SetAPIKey stores the key. An empty key removes the entry: the key is
// absent when unset, never stored as an empty string.
func (s *SettingsService) SetAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return s.ClearAPIKey(ctx)
	}
	if err := s.store.Set(ctx, driven.KeyAPIKey, key); err != nil {
		return fmt.Errorf("persisting API key: %w", err)
	}
	return nil
}

// APIKey returns the stored key, or "" when absent.
func (s *SettingsService) APIKey(ctx context.Context) (string, error) {
	key, _, err := s.store.Get(ctx, driven.KeyAPIKey)
	if err != nil {
		return "", fmt.Errorf("reading API key: %w", err)
	}
	return key, nil
}

// ClearAPIKey removes the stored key.
func (s *SettingsService) ClearAPIKey(ctx context.Context) error {
	if err := s.store.Delete(ctx, driven.KeyAPIKey); err != nil {
		return fmt.Errorf("removing API key: %w", err)
	}
	return nil
}
