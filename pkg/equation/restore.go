package equation

import (
	"context"
	"errors"
	"fmt"

	"github.com/randalmurphal/equation/pkg/equation/observability"
	"github.com/randalmurphal/equation/pkg/equation/operator"
	"github.com/randalmurphal/equation/pkg/equation/store"
)

// Restore rebuilds a directory from the records in s and keeps s attached
// for write-through. ID allocation resumes after the highest stored ID.
//
// Records are replayed in ascending ID order. A composite may reference a
// record that was deleted, in which case it fails lazily on evaluation, but
// it may not reference itself or a later ID. Every invalid record is
// reported; if any is invalid, no directory is returned.
func Restore(ctx context.Context, s store.Store, opts ...Option) (*Directory, error) {
	if s == nil {
		return nil, errors.New("restore: store is required")
	}

	recs, err := s.List()
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}

	d := NewDirectory(append(opts, WithStore(s))...)

	var errs []error
	for _, rec := range recs {
		u, err := d.unitFromRecord(rec)
		if err == nil {
			err = d.units.Restore(ID(rec.ID), u)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", rec.ID, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	d.cfg.metrics.RecordUnits(ctx, int64(d.units.Len()))
	observability.LogRestore(d.cfg.logger, d.units.Len(), uint64(d.units.Last()))
	return d, nil
}

func (d *Directory) unitFromRecord(rec *store.Record) (Unit, error) {
	id := ID(rec.ID)
	switch rec.Kind {
	case store.KindSimple:
		return NewSimple(id, rec.Expression)
	case store.KindComposite:
		if id == 0 {
			return nil, ErrMissingID
		}
		left, right := ID(rec.Left), ID(rec.Right)
		if left == 0 || right == 0 {
			return nil, fmt.Errorf("%w: zero id", ErrMissingOperand)
		}
		if left >= id || right >= id {
			return nil, fmt.Errorf("%w: equation %d references a later equation", ErrCycle, id)
		}
		op, ok := operator.Lookup(rec.Operator)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOperator, rec.Operator)
		}
		c := newComposite(id, left, right, op, d)
		c.maxDepth = d.cfg.maxDepth
		return c, nil
	default:
		return nil, fmt.Errorf("unknown record kind %q", rec.Kind)
	}
}
