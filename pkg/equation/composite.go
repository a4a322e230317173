package equation

import (
	"fmt"

	"github.com/randalmurphal/equation/pkg/equation/operator"
)

// Composite combines two existing equations with a binary operator.
//
// Referents are held by ID and resolved on every evaluation, so edits to a
// Simple referent are reflected immediately. A referent deleted after the
// composite was built makes evaluation fail with a *NotFoundError.
type Composite struct {
	id          ID
	left, right ID
	op          operator.Operator
	resolver    Resolver
	maxDepth    int
}

// NewComposite builds a composite "left op right" that resolves its
// referents through r.
//
// Errors, in order of checking:
//   - ErrMissingID: id is zero
//   - ErrMissingOperand: a referent ID is zero or r cannot resolve it
//   - ErrInvalidOperator: symbol is not in the operator table
//   - ErrCycle: a referent is id itself or reaches id through other composites
func NewComposite(id, left, right ID, symbol string, r Resolver) (*Composite, error) {
	if id == 0 {
		return nil, ErrMissingID
	}
	if r == nil {
		return nil, fmt.Errorf("%w: no resolver", ErrMissingOperand)
	}
	for _, ref := range [2]ID{left, right} {
		if ref == 0 {
			return nil, fmt.Errorf("%w: zero id", ErrMissingOperand)
		}
		if ref == id {
			continue
		}
		if _, err := r.Lookup(ref); err != nil {
			return nil, fmt.Errorf("%w: equation %d", ErrMissingOperand, ref)
		}
	}
	op, ok := operator.Lookup(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOperator, symbol)
	}
	if reaches(r, id, left) || reaches(r, id, right) {
		return nil, fmt.Errorf("%w: equation %d", ErrCycle, id)
	}
	return newComposite(id, left, right, op, r), nil
}

// newComposite skips validation. Callers guarantee the operator is valid.
func newComposite(id, left, right ID, op operator.Operator, r Resolver) *Composite {
	return &Composite{
		id:       id,
		left:     left,
		right:    right,
		op:       op,
		resolver: r,
		maxDepth: DefaultMaxDepth,
	}
}

// reaches reports whether target is start or is reachable from start by
// following composite referents.
func reaches(r Resolver, target, start ID) bool {
	visited := make(map[ID]bool)
	stack := []ID{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == target {
			return true
		}
		if visited[id] {
			continue
		}
		visited[id] = true

		u, err := r.Lookup(id)
		if err != nil {
			continue
		}
		if c, ok := u.(*Composite); ok {
			stack = append(stack, c.left, c.right)
		}
	}
	return false
}

// ID returns the equation's identity.
func (c *Composite) ID() ID {
	return c.id
}

// Kind returns KindComposite.
func (c *Composite) Kind() Kind {
	return KindComposite
}

// Left returns the ID of the left referent.
func (c *Composite) Left() ID {
	return c.left
}

// Right returns the ID of the right referent.
func (c *Composite) Right() ID {
	return c.right
}

// Operator returns the combining operator's symbol.
func (c *Composite) Operator() string {
	return c.op.Symbol
}

// Evaluate evaluates both referents against the same bindings and combines
// the results. Referent errors are returned unchanged.
func (c *Composite) Evaluate(b Bindings) (float64, error) {
	return c.evaluate(b, 0)
}

func (c *Composite) evaluate(b Bindings, depth int) (float64, error) {
	if depth >= c.maxDepth {
		return 0, &MaxDepthError{Max: c.maxDepth, ID: c.id}
	}
	l, err := c.operand(c.left, b, depth)
	if err != nil {
		return 0, err
	}
	r, err := c.operand(c.right, b, depth)
	if err != nil {
		return 0, err
	}
	return c.op.Apply(l, r), nil
}

func (c *Composite) operand(id ID, b Bindings, depth int) (float64, error) {
	u, err := c.resolver.Lookup(id)
	if err != nil {
		return 0, err
	}
	return u.evaluate(b, depth+1)
}
