package driving

import "context"

// SettingsService manages the stored API key.
type SettingsService interface {
	// SetAPIKey stores the key. An empty (or whitespace-only) key
	// removes the storage entry instead of writing an empty string.
	SetAPIKey(ctx context.Context, key string) error

	// APIKey returns the stored key, or "" when absent.
	APIKey(ctx context.Context) (string, error)

	// ClearAPIKey removes the stored key.
	ClearAPIKey(ctx context.Context) error
}
