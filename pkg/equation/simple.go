package equation

import (
	"sync"

	"github.com/randalmurphal/equation/pkg/equation/expr"
)

// Simple is an equation defined by one infix expression.
//
// The parsed form is swapped as a single value on edit, so a concurrent
// Evaluate sees either the old expression or the new one, never a mix.
type Simple struct {
	id ID

	mu     sync.RWMutex
	parsed *expr.Expression
}

// NewSimple parses text and returns a Simple with the given ID.
//
// Returns ErrMissingID for a zero ID, ErrEmptyExpression for blank text,
// and a *SyntaxError (wrapping ErrInvalidExpression) for malformed text.
func NewSimple(id ID, text string) (*Simple, error) {
	if id == 0 {
		return nil, ErrMissingID
	}
	parsed, err := expr.Parse(text)
	if err != nil {
		return nil, err
	}
	return &Simple{id: id, parsed: parsed}, nil
}

// ID returns the equation's identity.
func (s *Simple) ID() ID {
	return s.id
}

// Kind returns KindSimple.
func (s *Simple) Kind() Kind {
	return KindSimple
}

// SetExpression re-parses the equation from text.
// On error the previous expression is kept unchanged.
func (s *Simple) SetExpression(text string) error {
	parsed, err := expr.Parse(text)
	if err != nil {
		return err
	}
	s.swap(parsed)
	return nil
}

// Expression returns the current infix text.
func (s *Simple) Expression() string {
	return s.snapshot().Infix()
}

// Postfix returns the current postfix token sequence.
func (s *Simple) Postfix() []string {
	return s.snapshot().Postfix()
}

// Variables returns the variables the current expression references,
// in order of appearance, duplicates included.
func (s *Simple) Variables() []string {
	return s.snapshot().Variables()
}

// Evaluate computes the current expression against b.
// Fails with an *UndefinedVariableError if a referenced variable is unbound.
func (s *Simple) Evaluate(b Bindings) (float64, error) {
	return s.snapshot().Evaluate(b)
}

func (s *Simple) evaluate(b Bindings, _ int) (float64, error) {
	return s.Evaluate(b)
}

func (s *Simple) snapshot() *expr.Expression {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

func (s *Simple) swap(parsed *expr.Expression) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parsed = parsed
}
