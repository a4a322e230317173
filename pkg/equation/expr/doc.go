/*
Package expr parses infix arithmetic expressions into postfix form and
evaluates them against variable bindings.

# Overview

expr implements the expression engine behind equations. Parse converts
infix text into a postfix token sequence with an operator-precedence
(shunting-yard) pass and records every variable the text references.
Expression.Evaluate runs a single left-to-right stack pass over the postfix
tokens.

# Expression Syntax

	<expr>    := <operand>
	           | <expr> <op> <expr>
	           | '(' <expr> ')'
	<op>      := '^' | '*' | '/' | '+' | '-'
	<operand> := a single ASCII letter or digit

Whitespace is ignored. Every token is exactly one character, so "ab" is two
operands, not a name.

Digits are operands like letters: "2" is a variable called "2" and must be
present in the bindings. There are no numeric literals.

# Precedence

Operators bind in the order '^', then '*' and '/', then '+' and '-'.
Operators of equal precedence chain right-to-left, so "a/b*c" evaluates as
a/(b*c) and "x^y^z" as x^(y^z). Use parentheses to force another grouping.

# Examples

	e, err := expr.Parse("a / b + (a / b) * c")
	if err != nil {
	    return err
	}
	e.Postfix()   // [a b / a b / c * +]
	e.Variables() // [a b a b c]

	v, err := e.Evaluate(expr.Bindings{"a": 10, "b": 5, "c": 10}) // 22

One-shot evaluation:

	v, err := expr.Eval("x^y+z+c", expr.Bindings{"x": 10, "y": 2, "z": 3, "c": 4}) // 107

# Errors

Malformed text fails with a *SyntaxError that wraps ErrInvalidExpression and
carries the byte offset of the offending character. Evaluating without a
binding for a referenced variable fails with an *UndefinedVariableError that
wraps ErrUndefinedVariable.
*/
package expr
