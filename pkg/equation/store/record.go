package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// Version is the current record format version.
// Increment when making breaking changes to Record.
const Version = 1

// Record kinds.
const (
	KindSimple    = "simple"
	KindComposite = "composite"
)

// Record is the persisted definition of one equation.
type Record struct {
	Version int       `json:"version"`
	ID      uint64    `json:"id"`
	Kind    string    `json:"kind"`
	Updated time.Time `json:"updated"`

	// Simple equations.
	Expression string `json:"expression,omitempty"`

	// Composite equations.
	Left     uint64 `json:"left,omitempty"`
	Right    uint64 `json:"right,omitempty"`
	Operator string `json:"operator,omitempty"`
}

// NewSimple creates a record for a simple equation.
func NewSimple(id uint64, expression string) *Record {
	return &Record{
		Version:    Version,
		ID:         id,
		Kind:       KindSimple,
		Updated:    time.Now().UTC(),
		Expression: expression,
	}
}

// NewComposite creates a record for a composite equation.
func NewComposite(id, left, right uint64, op string) *Record {
	return &Record{
		Version:  Version,
		ID:       id,
		Kind:     KindComposite,
		Updated:  time.Now().UTC(),
		Left:     left,
		Right:    right,
		Operator: op,
	}
}

// Marshal serializes a record to JSON.
func (r *Record) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Unmarshal deserializes a record from JSON and checks its version.
func Unmarshal(data []byte) (*Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	if r.Version != Version {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, r.Version, Version)
	}
	return &r, nil
}

// clone returns a copy so stores never share records with callers.
func (r *Record) clone() *Record {
	c := *r
	return &c
}
