package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/randalmurphal/equation/pkg/equation"
	"github.com/randalmurphal/equation/pkg/equation/config"
	"github.com/randalmurphal/equation/pkg/equation/expr"
	"github.com/randalmurphal/equation/pkg/equation/store"
)

// binding is one --var name=value flag.
type binding struct {
	name  string
	value float64
}

// UnmarshalText parses "name=value".
func (b *binding) UnmarshalText(text []byte) error {
	name, raw, ok := strings.Cut(string(text), "=")
	if !ok || name == "" {
		return fmt.Errorf("binding %q: want name=value", text)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("binding %q: %w", text, err)
	}
	b.name, b.value = strings.TrimSpace(name), v
	return nil
}

func toBindings(vars []binding) equation.Bindings {
	b := make(equation.Bindings, len(vars))
	for _, v := range vars {
		b[v.name] = v.value
	}
	return b
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// EvalArgs evaluates one expression.
type EvalArgs struct {
	Expr string    `arg:"--expr,required" help:"infix expression"`
	Vars []binding `arg:"--var,separate" help:"variable binding as name=value (repeatable)"`
}

// Run parses and evaluates the expression.
func (a *EvalArgs) Run(_ context.Context, e *env) error {
	v, err := expr.Eval(a.Expr, toBindings(a.Vars))
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, formatValue(v))
	return nil
}

// PostfixArgs prints the postfix form of an expression.
type PostfixArgs struct {
	Expr string `arg:"--expr,required" help:"infix expression"`
}

// Run parses the expression and prints its postfix form and variables.
func (a *PostfixArgs) Run(_ context.Context, e *env) error {
	parsed, err := expr.Parse(a.Expr)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "postfix:   %s\n", parsed)
	fmt.Fprintf(e.stdout, "variables: %s\n", strings.Join(parsed.UniqueVariables(), " "))
	return nil
}

// RunArgs loads a definitions file and solves its requests.
type RunArgs struct {
	File string `arg:"--file,required" help:"definitions file (.yaml, .yml, or .json)"`
	DB   string `arg:"--db" help:"SQLite database to persist into (overrides the file's store key)"`
}

// Run builds a directory from the definitions and prints every solve.
func (a *RunArgs) Run(ctx context.Context, e *env) error {
	cfg, err := config.FromFile(a.File)
	if err != nil {
		return err
	}

	opts, err := equation.OptionsFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", a.File, err)
	}
	opts = append([]equation.Option{equation.WithLogger(e.logger)}, opts...)

	dir, closeStore, err := openDirectory(ctx, a.dbPath(cfg), opts)
	if err != nil {
		return err
	}
	defer closeStore()

	defs, err := equation.LoadDefinitions(ctx, dir, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", a.File, err)
	}

	failed := 0
	for _, res := range defs.SolveAll(ctx, dir) {
		if res.Err != nil {
			failed++
			fmt.Fprintf(e.stdout, "%s: error: %v\n", res.Equation, res.Err)
			continue
		}
		fmt.Fprintf(e.stdout, "%s = %s\n", res.Equation, formatValue(res.Value))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d solves failed", failed, len(defs.Solves))
	}
	return nil
}

func (a *RunArgs) dbPath(cfg config.Config) string {
	if a.DB != "" {
		return a.DB
	}
	return cfg.String("store", "")
}

// openDirectory returns an in-memory directory, or one restored from and
// persisted to the SQLite database at path.
func openDirectory(ctx context.Context, path string, opts []equation.Option) (*equation.Directory, func(), error) {
	if path == "" {
		return equation.NewDirectory(opts...), func() {}, nil
	}
	st, err := store.NewSQLiteStore(path)
	if err != nil {
		return nil, nil, err
	}
	dir, err := equation.Restore(ctx, st, opts...)
	if err != nil {
		return nil, nil, errors.Join(err, st.Close())
	}
	return dir, func() { _ = st.Close() }, nil
}

// ListArgs lists persisted equations.
type ListArgs struct {
	DB string `arg:"--db,required" help:"SQLite database to read"`
}

// Run restores the database and prints one line per equation.
func (a *ListArgs) Run(ctx context.Context, e *env) error {
	dir, closeStore, err := openDirectory(ctx, a.DB, []equation.Option{equation.WithLogger(e.logger)})
	if err != nil {
		return err
	}
	defer closeStore()

	w := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tDEFINITION")
	for _, id := range dir.IDs() {
		u, err := dir.Lookup(id)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", id, u.Kind(), definition(u))
	}
	return w.Flush()
}

// definition renders a unit's own definition without expanding referents.
func definition(u equation.Unit) string {
	switch u := u.(type) {
	case *equation.Simple:
		return u.Expression()
	case *equation.Composite:
		return fmt.Sprintf("#%d %s #%d", u.Left(), u.Operator(), u.Right())
	}
	return ""
}
