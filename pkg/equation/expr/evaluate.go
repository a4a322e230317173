package expr

import (
	"fmt"
	"sort"

	"github.com/randalmurphal/equation/pkg/equation/operator"
)

// Bindings maps single-character variable names to their values.
type Bindings map[string]float64

// Evaluate computes the expression against b.
//
// Every referenced variable must be bound; the first missing one, in order
// of appearance, is reported as an *UndefinedVariableError. Evaluate does
// not modify the expression and may be called concurrently.
func (e *Expression) Evaluate(b Bindings) (float64, error) {
	if name, ok := firstUnbound(e.variables, b); !ok {
		return 0, &UndefinedVariableError{Name: name}
	}

	stack := make([]float64, 0, len(e.variables))
	for _, tok := range e.postfix {
		op, isOp := operator.Lookup(tok)
		if !isOp {
			stack = append(stack, b[tok])
			continue
		}
		// Parse guarantees two operands per operator.
		if len(stack) < 2 {
			panic(fmt.Sprintf("expr: malformed postfix %q: %s needs two operands", e.String(), tok))
		}
		right := stack[len(stack)-1]
		left := stack[len(stack)-2]
		stack = append(stack[:len(stack)-2], op.Apply(left, right))
	}

	if len(stack) != 1 {
		panic(fmt.Sprintf("expr: malformed postfix %q: %d values left on stack", e.String(), len(stack)))
	}
	return stack[0], nil
}

// Eval parses text and evaluates it against b.
func Eval(text string, b Bindings) (float64, error) {
	e, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return e.Evaluate(b)
}

// firstUnbound returns the first name in names missing from b.
// ok is true when every name is bound.
func firstUnbound(names []string, b Bindings) (string, bool) {
	for _, name := range names {
		if _, bound := b[name]; !bound {
			return name, false
		}
	}
	return "", true
}

// Unique returns names sorted with duplicates removed.
func Unique(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
