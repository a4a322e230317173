package expr

import (
	"errors"
	"fmt"
)

// Sentinel errors for parsing and evaluation.
var (
	// ErrEmptyExpression indicates the expression text is empty or blank.
	ErrEmptyExpression = errors.New("empty expression")

	// ErrInvalidExpression indicates malformed expression text.
	ErrInvalidExpression = errors.New("invalid expression")

	// ErrUndefinedVariable indicates a referenced variable has no binding.
	ErrUndefinedVariable = errors.New("undefined variable")
)

// SyntaxError describes where and why expression text failed to parse.
type SyntaxError struct {
	// Expr is the text that failed to parse.
	Expr string
	// Pos is the byte offset of the offending character, or len(Expr)
	// when the input ended early.
	Pos int
	// Char is the offending character. Unset at end of input.
	Char rune
	// Msg describes the problem.
	Msg string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Pos >= len(e.Expr) {
		return fmt.Sprintf("invalid expression %q: %s at end of input", e.Expr, e.Msg)
	}
	return fmt.Sprintf("invalid expression %q: %s %q at index %d", e.Expr, e.Msg, e.Char, e.Pos)
}

// Unwrap returns ErrInvalidExpression for errors.Is support.
func (e *SyntaxError) Unwrap() error {
	return ErrInvalidExpression
}

// UndefinedVariableError names the variable that had no binding.
type UndefinedVariableError struct {
	Name string
}

// Error implements the error interface.
func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %q", e.Name)
}

// Unwrap returns ErrUndefinedVariable for errors.Is support.
func (e *UndefinedVariableError) Unwrap() error {
	return ErrUndefinedVariable
}
