package equation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/equation/pkg/equation/expr"
	"github.com/randalmurphal/equation/pkg/equation/observability"
	"github.com/randalmurphal/equation/pkg/equation/operator"
	"github.com/randalmurphal/equation/pkg/equation/registry"
	"github.com/randalmurphal/equation/pkg/equation/store"
)

// Directory owns a set of equations and hands out their IDs.
//
// IDs start at 1, increase monotonically, and are never reused, even after
// Delete. Mutations are serialized; Solve and the read accessors may run
// concurrently with them.
type Directory struct {
	cfg   directoryConfig
	units *registry.Registry[Unit]

	// writeMu orders mutations so the store sees them in the same order
	// as the registry.
	writeMu sync.Mutex
}

// NewDirectory creates an empty directory.
func NewDirectory(opts ...Option) *Directory {
	cfg := defaultDirectoryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Directory{
		cfg:   cfg,
		units: registry.New[Unit](),
	}
}

// Create parses text as a new Simple equation and returns its ID.
// No ID is consumed when parsing fails.
func (d *Directory) Create(ctx context.Context, text string) (id ID, err error) {
	ctx, span := d.cfg.spans.StartMutationSpan(ctx, "create")
	defer func() { d.cfg.spans.EndSpanWithError(span, err) }()

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	id, err = d.units.Add(func(id ID) (Unit, error) {
		s, err := NewSimple(id, text)
		d.cfg.metrics.RecordParse(ctx, err)
		if err != nil {
			return nil, err
		}
		return s, d.save(store.NewSimple(uint64(id), text))
	})
	if err != nil {
		observability.LogRejected(d.cfg.logger, "create", err)
		return 0, err
	}

	d.cfg.metrics.RecordUnits(ctx, 1)
	observability.LogCreate(d.cfg.logger, uint64(id), text)
	return id, nil
}

// Edit replaces the expression of the Simple equation id.
// On error the previous expression is kept. Composites are not editable.
func (d *Directory) Edit(ctx context.Context, id ID, text string) (err error) {
	ctx, span := d.cfg.spans.StartMutationSpan(ctx, "edit")
	defer func() { d.cfg.spans.EndSpanWithError(span, err) }()

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	defer func() {
		if err != nil {
			observability.LogRejected(d.cfg.logger, "edit", err)
		}
	}()

	u, err := d.Lookup(id)
	if err != nil {
		return err
	}
	s, ok := u.(*Simple)
	if !ok {
		return fmt.Errorf("%w: equation %d is %s", ErrNotEditable, id, u.Kind())
	}

	parsed, err := expr.Parse(text)
	d.cfg.metrics.RecordParse(ctx, err)
	if err != nil {
		return err
	}
	if err := d.save(store.NewSimple(uint64(id), text)); err != nil {
		return err
	}

	from := s.Expression()
	s.swap(parsed)
	observability.LogEdit(d.cfg.logger, uint64(id), from, text)
	return nil
}

// Merge creates a Composite "left op right" and returns its ID.
// Both referents must exist when Merge is called.
func (d *Directory) Merge(ctx context.Context, left, right ID, symbol string) (id ID, err error) {
	ctx, span := d.cfg.spans.StartMutationSpan(ctx, "merge")
	defer func() { d.cfg.spans.EndSpanWithError(span, err) }()

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	defer func() {
		if err != nil {
			observability.LogRejected(d.cfg.logger, "merge", err)
		}
	}()

	for _, ref := range [2]ID{left, right} {
		if ref == 0 || !d.units.Has(ref) {
			return 0, fmt.Errorf("%w: %w", ErrMissingOperand, &NotFoundError{ID: ref})
		}
	}
	op, ok := operator.Lookup(symbol)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperator, symbol)
	}

	// Referents already exist and the new ID is fresh, so no cycle is possible.
	id, err = d.units.Add(func(id ID) (Unit, error) {
		c := newComposite(id, left, right, op, d)
		c.maxDepth = d.cfg.maxDepth
		return c, d.save(store.NewComposite(uint64(id), uint64(left), uint64(right), op.Symbol))
	})
	if err != nil {
		return 0, err
	}

	d.cfg.metrics.RecordUnits(ctx, 1)
	observability.LogMerge(d.cfg.logger, uint64(id), uint64(left), uint64(right), op.Symbol)
	return id, nil
}

// Solve evaluates equation id against b.
//
// Each call gets a fresh solve ID that is attached to its span and logs.
func (d *Directory) Solve(ctx context.Context, id ID, b Bindings) (result float64, err error) {
	solveID := uuid.NewString()
	ctx, span := d.cfg.spans.StartSolveSpan(ctx, uint64(id), solveID)
	defer func() { d.cfg.spans.EndSpanWithError(span, err) }()

	logger := observability.EnrichLogger(d.cfg.logger, uint64(id), solveID)
	start := time.Now()
	elapsed := observability.TimedOperation()

	kind := "unknown"
	u, err := d.Lookup(id)
	if err == nil {
		kind = string(u.Kind())
		d.cfg.spans.AddSpanEvent(ctx, "resolved", attribute.String("equation.kind", kind))
		result, err = u.Evaluate(b)
	}

	d.cfg.metrics.RecordSolve(ctx, kind, time.Since(start), err)
	if err != nil {
		observability.LogSolveError(logger, uint64(id), err)
		return 0, err
	}
	observability.LogSolve(logger, uint64(id), result, elapsed())
	return result, nil
}

// Delete removes equation id. Composites that reference it fail with a
// *NotFoundError on their next evaluation.
func (d *Directory) Delete(ctx context.Context, id ID) (err error) {
	ctx, span := d.cfg.spans.StartMutationSpan(ctx, "delete")
	defer func() { d.cfg.spans.EndSpanWithError(span, err) }()

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	if !d.units.Has(id) {
		return &NotFoundError{ID: id}
	}
	if d.cfg.store != nil {
		if err := d.cfg.store.Delete(uint64(id)); err != nil && !errors.Is(err, store.ErrNotFound) {
			observability.LogStoreError(d.cfg.logger, uint64(id), "delete", err)
			return &StoreError{ID: id, Op: "delete", Err: err}
		}
	}
	d.units.Delete(id)

	d.cfg.metrics.RecordUnits(ctx, -1)
	observability.LogDelete(d.cfg.logger, uint64(id))
	return nil
}

// Get returns the unit for id, or a *NotFoundError.
func (d *Directory) Get(id ID) (Unit, error) {
	return d.Lookup(id)
}

// Lookup returns the unit for id, or a *NotFoundError.
func (d *Directory) Lookup(id ID) (Unit, error) {
	u, ok := d.units.Get(id)
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return u, nil
}

// IDs returns all live IDs in ascending order.
func (d *Directory) IDs() []ID {
	return d.units.IDs()
}

// Len returns the number of live equations.
func (d *Directory) Len() int {
	return d.units.Len()
}

// Variables returns the sorted, de-duplicated variables equation id needs,
// following composite referents.
func (d *Directory) Variables(id ID) ([]string, error) {
	var names []string
	err := d.walk(id, 0, func(s *Simple) {
		names = append(names, s.Variables()...)
	})
	if err != nil {
		return nil, err
	}
	return expr.Unique(names), nil
}

// Describe renders equation id as infix text, expanding composites into
// parenthesized sub-expressions.
func (d *Directory) Describe(id ID) (string, error) {
	var sb strings.Builder
	if err := d.describe(&sb, id, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (d *Directory) describe(sb *strings.Builder, id ID, depth int) error {
	if depth > d.cfg.maxDepth {
		return &MaxDepthError{Max: d.cfg.maxDepth, ID: id}
	}
	u, err := d.Lookup(id)
	if err != nil {
		return err
	}
	switch u := u.(type) {
	case *Simple:
		sb.WriteString(strings.TrimSpace(u.Expression()))
	case *Composite:
		sb.WriteByte('(')
		if err := d.describe(sb, u.left, depth+1); err != nil {
			return err
		}
		sb.WriteString(") " + u.op.Symbol + " (")
		if err := d.describe(sb, u.right, depth+1); err != nil {
			return err
		}
		sb.WriteByte(')')
	}
	return nil
}

// walk visits every Simple reachable from id.
func (d *Directory) walk(id ID, depth int, visit func(*Simple)) error {
	if depth > d.cfg.maxDepth {
		return &MaxDepthError{Max: d.cfg.maxDepth, ID: id}
	}
	u, err := d.Lookup(id)
	if err != nil {
		return err
	}
	switch u := u.(type) {
	case *Simple:
		visit(u)
	case *Composite:
		if err := d.walk(u.left, depth+1, visit); err != nil {
			return err
		}
		return d.walk(u.right, depth+1, visit)
	}
	return nil
}

// save writes rec through to the configured store, if any.
func (d *Directory) save(rec *store.Record) error {
	if d.cfg.store == nil {
		return nil
	}
	if err := d.cfg.store.Save(rec); err != nil {
		observability.LogStoreError(d.cfg.logger, rec.ID, "save", err)
		return &StoreError{ID: ID(rec.ID), Op: "save", Err: err}
	}
	return nil
}
