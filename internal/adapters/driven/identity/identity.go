// Package identity provides the production clock and ID generator.
package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
)

// Ensure the adapters implement the interfaces.
var (
	_ driven.Clock       = (*SystemClock)(nil)
	_ driven.IDGenerator = (*UUIDGenerator)(nil)
)

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// NewSystemClock creates a system clock.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current UTC time.
func (c *SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator produces random (v4) UUIDs. Collision safety comes from
// randomness, not wall-clock resolution.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a UUID generator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new UUID string.
func (g *UUIDGenerator) NewID() string {
	return uuid.New().String()
}
