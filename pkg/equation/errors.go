package equation

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/equation/pkg/equation/expr"
	"github.com/randalmurphal/equation/pkg/equation/operator"
)

// Sentinel errors for building equations.
var (
	// ErrMissingID indicates an equation was constructed without an ID.
	ErrMissingID = errors.New("equation id is required")

	// ErrEmptyExpression indicates an empty or blank expression.
	ErrEmptyExpression = expr.ErrEmptyExpression

	// ErrInvalidExpression indicates malformed expression text.
	ErrInvalidExpression = expr.ErrInvalidExpression

	// ErrInvalidOperator indicates a symbol outside the operator table.
	ErrInvalidOperator = operator.ErrInvalidOperator

	// ErrMissingOperand indicates a composite referent is absent.
	ErrMissingOperand = errors.New("composite operand is missing")

	// ErrCycle indicates a composite would reference itself.
	ErrCycle = errors.New("composite would reference itself")
)

// Sentinel errors for directory lookups and evaluation.
var (
	// ErrNotFound indicates no equation exists for an ID.
	ErrNotFound = errors.New("equation not found")

	// ErrNotEditable indicates an edit was attempted on a composite.
	ErrNotEditable = errors.New("equation is not editable")

	// ErrUndefinedVariable indicates a referenced variable has no binding.
	ErrUndefinedVariable = expr.ErrUndefinedVariable

	// ErrMaxDepth indicates composite evaluation nested too deeply.
	ErrMaxDepth = errors.New("exceeded maximum composition depth")
)

// UndefinedVariableError names the variable that had no binding.
type UndefinedVariableError = expr.UndefinedVariableError

// SyntaxError describes where and why expression text failed to parse.
type SyntaxError = expr.SyntaxError

// NotFoundError reports the ID that could not be resolved.
type NotFoundError struct {
	ID ID
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("equation %d not found", e.ID)
}

// Unwrap returns ErrNotFound for errors.Is support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// MaxDepthError provides context when composite nesting exceeds the limit.
type MaxDepthError struct {
	// Max is the configured depth limit.
	Max int
	// ID is the composite that would have exceeded it.
	ID ID
}

// Error implements the error interface.
func (e *MaxDepthError) Error() string {
	return fmt.Sprintf("exceeded maximum composition depth (%d) at equation %d", e.Max, e.ID)
}

// Unwrap returns ErrMaxDepth for errors.Is support.
func (e *MaxDepthError) Unwrap() error {
	return ErrMaxDepth
}

// StoreError wraps errors from persisting equation definitions.
type StoreError struct {
	// ID is the equation being persisted.
	ID ID
	// Op is the operation that failed ("save", "delete", "list").
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s for equation %d: %v", e.Op, e.ID, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *StoreError) Unwrap() error {
	return e.Err
}
