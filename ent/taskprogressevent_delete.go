// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/predicate"
	"github.com/abhisek/replayz/ent/taskprogressevent"
)

// TaskProgressEventDelete is the builder for deleting a TaskProgressEvent entity.
type TaskProgressEventDelete struct {
	config
	hooks    []Hook
	mutation *TaskProgressEventMutation
}

// Where appends a list predicates to the TaskProgressEventDelete builder.
func (_d *TaskProgressEventDelete) Where(ps ...predicate.TaskProgressEvent) *TaskProgressEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TaskProgressEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TaskProgressEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TaskProgressEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(taskprogressevent.Table, sqlgraph.NewFieldSpec(taskprogressevent.FieldID, field.TypeInt))
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

// TaskProgressEventDeleteOne is the builder for deleting a single TaskProgressEvent entity.
type TaskProgressEventDeleteOne struct {
	_d *TaskProgressEventDelete
}

// Where appends a list predicates to the TaskProgressEventDelete builder.
func (_d *TaskProgressEventDeleteOne) Where(ps ...predicate.TaskProgressEvent) *TaskProgressEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TaskProgressEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{taskprogressevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TaskProgressEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
