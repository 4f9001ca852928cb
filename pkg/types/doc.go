// Package types defines the core types and interfaces used throughout nvup.
// This includes the FS filesystem abstraction, the Confirmer prompt
// interface, and the Result type stages report their outcome with.
package types
