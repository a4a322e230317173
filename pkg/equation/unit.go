package equation

import (
	"github.com/randalmurphal/equation/pkg/equation/expr"
	"github.com/randalmurphal/equation/pkg/equation/registry"
)

// ID identifies an equation within a Directory. Zero means "no ID".
type ID = registry.ID

// Bindings maps single-character variable names to values.
type Bindings = expr.Bindings

// Kind distinguishes the two Unit variants.
type Kind string

// Unit kinds.
const (
	KindSimple    Kind = "simple"
	KindComposite Kind = "composite"
)

// DefaultMaxDepth bounds how deeply composites may nest during evaluation.
const DefaultMaxDepth = 1000

// Unit is an evaluable equation: either a *Simple or a *Composite.
//
// The interface is sealed; evaluate carries the current composition depth
// so nested composites can enforce a limit.
type Unit interface {
	// ID returns the equation's identity.
	ID() ID

	// Kind reports which variant the unit is.
	Kind() Kind

	// Evaluate computes the unit's value for b.
	Evaluate(b Bindings) (float64, error)

	evaluate(b Bindings, depth int) (float64, error)
}

// Resolver looks up units by identity. Composites hold a Resolver instead
// of their referents so edits to a referent are always visible.
type Resolver interface {
	// Lookup returns the unit for id, or a *NotFoundError.
	Lookup(id ID) (Unit, error)
}

// Compile-time interface checks.
var (
	_ Unit = (*Simple)(nil)
	_ Unit = (*Composite)(nil)
)
