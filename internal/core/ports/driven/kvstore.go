package driven

import "context"

// Storage keys. Each key is read independently at startup and written
// independently on every corresponding mutation (write-through).
const (
	// KeyDocuments holds the JSON array of stored documents.
	KeyDocuments = "documents"

	// KeyAPIKey holds the raw API key string. The key is removed, not
	// stored as an empty string, when the user clears it.
	KeyAPIKey = "apiKey"

	// KeyChatHistory holds the JSON array of chat messages.
	KeyChatHistory = "chatHistory"
)

// KeyValueStore is string-keyed durable local storage. There is no
// schema enforcement and no transactions; the last write wins.
type KeyValueStore interface {
	// Get returns the value for key. The second return is false when
	// the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
