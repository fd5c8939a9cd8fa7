// Package driven defines the outbound ports: interfaces the core
// depends on and adapters implement (storage, QA transport, file text
// extraction, identity). Core services speak only to these interfaces.
package driven
