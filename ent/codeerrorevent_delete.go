// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/codeerrorevent"
	"github.com/abhisek/replayz/ent/predicate"
)

// CodeErrorEventDelete is the builder for deleting a CodeErrorEvent entity.
type CodeErrorEventDelete struct {
	config
	hooks    []Hook
	mutation *CodeErrorEventMutation
}

// Where appends a list predicates to the CodeErrorEventDelete builder.
func (_d *CodeErrorEventDelete) Where(ps ...predicate.CodeErrorEvent) *CodeErrorEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CodeErrorEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CodeErrorEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CodeErrorEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(codeerrorevent.Table, sqlgraph.NewFieldSpec(codeerrorevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CodeErrorEventDeleteOne is the builder for deleting a single CodeErrorEvent entity.
type CodeErrorEventDeleteOne struct {
	_d *CodeErrorEventDelete
}

// Where appends a list predicates to the CodeErrorEventDelete builder.
func (_d *CodeErrorEventDeleteOne) Where(ps ...predicate.CodeErrorEvent) *CodeErrorEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CodeErrorEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{codeerrorevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CodeErrorEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
