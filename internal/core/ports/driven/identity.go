package driven

import "time"

// Clock supplies the current time. Injected so tests can pin timestamps
// and so createdAt values do not depend on call sites reading the wall
// clock directly.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// IDGenerator produces unique identifiers for documents and chat
// messages. Uniqueness must not depend on wall-clock resolution.
type IDGenerator interface {
	// NewID returns a new unique identifier.
	NewID() string
}
