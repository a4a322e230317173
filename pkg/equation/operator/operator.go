// Package operator defines the fixed set of binary operators understood by
// equations, together with their precedence and arithmetic.
package operator

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidOperator indicates a symbol outside the operator table.
var ErrInvalidOperator = errors.New("invalid operator")

// Operator describes one binary operator.
//
// Precedence is inverted from the usual convention: the smaller the value,
// the tighter the operator binds. "^" is 0, "*" and "/" are 1, "+" and "-"
// are 2.
type Operator struct {
	Symbol     string
	Precedence int
	// Apply computes left <op> right.
	Apply func(left, right float64) float64
}

// Symbols of the supported operators.
const (
	Pow = "^"
	Mul = "*"
	Div = "/"
	Add = "+"
	Sub = "-"
)

// table is never mutated after init.
var table = map[string]Operator{
	Pow: {Symbol: Pow, Precedence: 0, Apply: pow},
	Mul: {Symbol: Mul, Precedence: 1, Apply: mul},
	Div: {Symbol: Div, Precedence: 1, Apply: div},
	Add: {Symbol: Add, Precedence: 2, Apply: add},
	Sub: {Symbol: Sub, Precedence: 2, Apply: sub},
}

// order is the display order of Symbols.
var order = []string{Pow, Mul, Div, Add, Sub}

// pow raises left to the power of right.
func pow(left, right float64) float64 { return math.Pow(left, right) }

func mul(left, right float64) float64 { return left * right }

// div is plain IEEE-754 division. A zero divisor is not special-cased:
// x/0 is +Inf or -Inf depending on the sign of x, and 0/0 is NaN.
func div(left, right float64) float64 { return left / right }

func add(left, right float64) float64 { return left + right }

func sub(left, right float64) float64 { return left - right }

// Lookup returns the operator for symbol and whether it exists.
func Lookup(symbol string) (Operator, bool) {
	op, ok := table[symbol]
	return op, ok
}

// IsOperator reports whether token is one of the supported operator symbols.
func IsOperator(token string) bool {
	_, ok := table[token]
	return ok
}

// Precedence returns the precedence of symbol.
// Returns ErrInvalidOperator for unknown symbols.
func Precedence(symbol string) (int, error) {
	op, ok := table[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperator, symbol)
	}
	return op.Precedence, nil
}

// Apply computes left <symbol> right.
// Returns ErrInvalidOperator for unknown symbols.
func Apply(symbol string, left, right float64) (float64, error) {
	op, ok := table[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperator, symbol)
	}
	return op.Apply(left, right), nil
}

// Symbols returns the supported operator symbols, tightest binding first.
func Symbols() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}
