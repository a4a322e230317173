package expr

import (
	"strings"
	"unicode"

	"github.com/randalmurphal/equation/pkg/equation/operator"
)

const openParen = "("

// Expression is a parsed infix expression.
// It is immutable once returned by Parse and safe for concurrent use.
type Expression struct {
	infix     string
	postfix   []string
	variables []string
}

// stackEntry is an operator or "(" waiting on the operator stack.
type stackEntry struct {
	sym string
	pos int
}

// Parse converts infix text into postfix form.
//
// Returns ErrEmptyExpression for blank text and a *SyntaxError for illegal
// characters, unbalanced parentheses, or a missing operand or operator.
func Parse(text string) (*Expression, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyExpression
	}

	var (
		output    []string
		variables []string
		stack     []stackEntry
	)

	syntaxErr := func(pos int, r rune, msg string) error {
		return &SyntaxError{Expr: text, Pos: pos, Char: r, Msg: msg}
	}

	// wantOperand tracks whether the next token must start an operand.
	// Binary-only grammar: operands and operators strictly alternate.
	wantOperand := true

	for i, r := range text {
		switch {
		case unicode.IsSpace(r):
			continue

		case isOperand(r):
			if !wantOperand {
				return nil, syntaxErr(i, r, "missing operator before")
			}
			tok := string(r)
			output = append(output, tok)
			variables = append(variables, tok)
			wantOperand = false

		case r == '(':
			if !wantOperand {
				return nil, syntaxErr(i, r, "missing operator before")
			}
			stack = append(stack, stackEntry{sym: openParen, pos: i})

		case r == ')':
			if wantOperand {
				return nil, syntaxErr(i, r, "missing operand before")
			}
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.sym == openParen {
					matched = true
					break
				}
				output = append(output, top.sym)
			}
			if !matched {
				return nil, syntaxErr(i, r, "unmatched")
			}

		default:
			op, ok := operator.Lookup(string(r))
			if !ok {
				return nil, syntaxErr(i, r, "illegal character")
			}
			if wantOperand {
				return nil, syntaxErr(i, r, "missing operand before")
			}
			// Pop while the incoming operator binds looser than the top.
			// Equal precedence stays on the stack, so same-precedence
			// chains group to the right.
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.sym == openParen {
					break
				}
				topOp, _ := operator.Lookup(top.sym)
				if op.Precedence <= topOp.Precedence {
					break
				}
				output = append(output, top.sym)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, stackEntry{sym: op.Symbol, pos: i})
			wantOperand = true
		}
	}

	if wantOperand {
		return nil, syntaxErr(len(text), 0, "missing operand")
	}

	// Check the top before popping so a stray "(" is never emitted.
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.sym == openParen {
			return nil, syntaxErr(top.pos, '(', "unmatched")
		}
		output = append(output, top.sym)
		stack = stack[:len(stack)-1]
	}

	return &Expression{
		infix:     text,
		postfix:   output,
		variables: variables,
	}, nil
}

// MustParse is like Parse but panics on error.
// Intended for tests and package-level expressions.
func MustParse(text string) *Expression {
	e, err := Parse(text)
	if err != nil {
		panic("expr: " + err.Error())
	}
	return e
}

// isOperand reports whether r is a single-character operand.
func isOperand(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// Infix returns the original expression text.
func (e *Expression) Infix() string {
	return e.infix
}

// Postfix returns a copy of the postfix token sequence.
func (e *Expression) Postfix() []string {
	out := make([]string, len(e.postfix))
	copy(out, e.postfix)
	return out
}

// Variables returns a copy of the referenced variables in order of
// appearance. Repeated references appear more than once.
func (e *Expression) Variables() []string {
	out := make([]string, len(e.variables))
	copy(out, e.variables)
	return out
}

// UniqueVariables returns the referenced variables sorted and deduplicated.
func (e *Expression) UniqueVariables() []string {
	return Unique(e.variables)
}

// String returns the postfix form with tokens separated by spaces.
func (e *Expression) String() string {
	return strings.Join(e.postfix, " ")
}
