// Package domain contains the core business entities and rules for
// docchat: documents, chat messages, and the validation invariants
// they must satisfy. It has no dependencies on adapters or transport.
package domain
