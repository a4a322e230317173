/*
Package equation maintains a directory of named arithmetic equations that can
be edited, combined, and evaluated against variable bindings.

# Overview

An equation is either a Simple, defined by one infix expression such as
"a / b + (a / b) * c", or a Composite, which joins two existing equations
with a binary operator. Composites hold their referents by ID and resolve
them on every evaluation, so editing a Simple changes every Composite built
on it.

# Basic Usage

	ctx := context.Background()
	dir := equation.NewDirectory()

	ratio, _ := dir.Create(ctx, "a / b + (a / b) * c")
	power, _ := dir.Create(ctx, "x^y+z+c")
	total, _ := dir.Merge(ctx, ratio, power, "+")

	vars := equation.Bindings{"a": 10, "b": 5, "c": 10, "x": 10, "y": 2, "z": 3}
	v, err := dir.Solve(ctx, total, vars) // 22 + 113 = 135

	_ = dir.Edit(ctx, power, "x^y+z-c")
	v, err = dir.Solve(ctx, total, vars) // 22 + 93 = 115

# Expressions

Operands are single ASCII letters or digits, each naming a variable. Digits
are variables too: "2*a" needs a binding for "2". Operators, tightest first:

	^        exponentiation
	* /      multiplication, division
	+ -      addition, subtraction

Operators of equal precedence group to the right, so "a-b-c" is a-(b-c) and
"a/b*c" is a/(b*c). Use parentheses to force left grouping. Spaces are
ignored. Division by zero follows IEEE 754 and yields ±Inf or NaN.

# Errors

Failures are returned synchronously and leave the directory unchanged.
Use errors.Is with the sentinels in this package:

	_, err := dir.Create(ctx, "(a+b")
	errors.Is(err, equation.ErrInvalidExpression) // true

	var syn *equation.SyntaxError
	errors.As(err, &syn) // syn.Pos is the byte offset of the problem

	_, err = dir.Solve(ctx, ratio, equation.Bindings{"a": 1})
	var undef *equation.UndefinedVariableError
	errors.As(err, &undef) // undef.Name == "b"

Deleting an equation does not touch composites that reference it; they fail
with ErrNotFound when next evaluated.

# Persistence

WithStore writes every definition change through to a store.Store, and
Restore rebuilds a directory from one:

	st, _ := store.NewSQLiteStore("equations.db")
	defer st.Close()

	dir, err := equation.Restore(ctx, st)

# Observability

	dir := equation.NewDirectory(
	    equation.WithLogger(logger),
	    equation.WithMetrics(true),
	    equation.WithTracing(true),
	)

Each Solve gets a UUID solve ID attached to its span and log records.
*/
package equation
