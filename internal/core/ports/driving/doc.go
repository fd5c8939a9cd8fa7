// Package driving defines the inbound ports: the service interfaces
// the CLI and TUI adapters call into. Implementations live in
// internal/core/services.
package driving
