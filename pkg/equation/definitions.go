package equation

import (
	"context"
	"errors"
	"fmt"

	"github.com/randalmurphal/equation/pkg/equation/config"
)

// ErrInvalidDefinition indicates a malformed entry in a definitions file.
var ErrInvalidDefinition = errors.New("invalid definition")

// Definitions records the named equations loaded into a directory and the
// solves requested alongside them.
type Definitions struct {
	// Names maps each equation name to its directory ID.
	Names map[string]ID
	// Order lists names in definition order.
	Order []string
	// Solves lists requested evaluations in file order.
	Solves []SolveRequest
}

// SolveRequest asks for one equation to be evaluated.
type SolveRequest struct {
	Equation string
	ID       ID
	Vars     Bindings
}

// SolveResult is the outcome of one SolveRequest.
type SolveResult struct {
	SolveRequest
	Value float64
	Err   error
}

// LoadDefinitions creates every equation listed under "equations" in cfg and
// collects the "solve" requests.
//
// Each equation entry has a name plus either "expr" (a simple equation) or
// "merge: [left, right]" with "op" (a composite of two earlier names).
// Loading stops at the first bad entry; equations created before it remain
// in the directory.
func LoadDefinitions(ctx context.Context, d *Directory, cfg config.Config) (*Definitions, error) {
	defs := &Definitions{Names: make(map[string]ID)}

	for i, entry := range cfg.List("equations") {
		name := entry.String("name", "")
		if err := defs.define(ctx, d, name, entry); err != nil {
			return defs, fmt.Errorf("equations[%d] %q: %w", i, name, err)
		}
	}

	for i, entry := range cfg.List("solve") {
		req, err := defs.request(entry)
		if err != nil {
			return defs, fmt.Errorf("solve[%d]: %w", i, err)
		}
		defs.Solves = append(defs.Solves, req)
	}

	return defs, nil
}

func (defs *Definitions) define(ctx context.Context, d *Directory, name string, entry config.Config) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDefinition)
	}
	if _, exists := defs.Names[name]; exists {
		return fmt.Errorf("%w: duplicate name", ErrInvalidDefinition)
	}

	var (
		id  ID
		err error
	)
	switch {
	case entry.Has("expr") && entry.Has("merge"):
		return fmt.Errorf("%w: expr and merge are mutually exclusive", ErrInvalidDefinition)
	case entry.Has("expr"):
		id, err = d.Create(ctx, entry.String("expr", ""))
	case entry.Has("merge"):
		refs := entry.StringSlice("merge", nil)
		if len(refs) != 2 {
			return fmt.Errorf("%w: merge needs exactly two names", ErrInvalidDefinition)
		}
		left, lok := defs.Names[refs[0]]
		right, rok := defs.Names[refs[1]]
		if !lok || !rok {
			return fmt.Errorf("%w: merge references an undefined name in %v", ErrInvalidDefinition, refs)
		}
		id, err = d.Merge(ctx, left, right, entry.String("op", ""))
	default:
		return fmt.Errorf("%w: expr or merge is required", ErrInvalidDefinition)
	}
	if err != nil {
		return err
	}

	defs.Names[name] = id
	defs.Order = append(defs.Order, name)
	return nil
}

func (defs *Definitions) request(entry config.Config) (SolveRequest, error) {
	name := entry.String("equation", "")
	id, ok := defs.Names[name]
	if !ok {
		return SolveRequest{}, fmt.Errorf("%w: unknown equation %q", ErrInvalidDefinition, name)
	}
	vars, err := entry.Floats("vars")
	if err != nil {
		return SolveRequest{}, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return SolveRequest{Equation: name, ID: id, Vars: vars}, nil
}

// SolveAll evaluates every request against d. Failed solves are reported
// in their result rather than stopping the run.
func (defs *Definitions) SolveAll(ctx context.Context, d *Directory) []SolveResult {
	results := make([]SolveResult, 0, len(defs.Solves))
	for _, req := range defs.Solves {
		v, err := d.Solve(ctx, req.ID, req.Vars)
		results = append(results, SolveResult{SolveRequest: req, Value: v, Err: err})
	}
	return results
}
