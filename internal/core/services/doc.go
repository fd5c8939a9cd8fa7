// Package services implements the driving ports on top of the driven
// ports. Services hold the in-memory state, enforce the domain
// invariants, and write every mutation through to durable storage
// before returning.
package services
