// Package store persists equation definitions so a directory can be rebuilt.
//
// Only definitions are stored: infix text for simple equations and the
// referent IDs plus operator for composites. Parsed forms are re-derived on
// load.
package store

import (
	"errors"
)

// Store persists equation records.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores a record, overwriting any record with the same ID.
	Save(rec *Record) error

	// Load retrieves a record.
	// Returns ErrNotFound if the record doesn't exist.
	Load(id uint64) (*Record, error)

	// List returns all records ordered by ID.
	// Returns empty slice (not error) if the store is empty.
	List() ([]*Record, error)

	// Delete removes a record.
	// Returns nil if the record doesn't exist.
	Delete(id uint64) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates a record doesn't exist.
	ErrNotFound = errors.New("equation record not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("equation store closed")

	// ErrVersionMismatch indicates a record was written by an incompatible version.
	ErrVersionMismatch = errors.New("equation record version mismatch")
)
