// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/codeerrorevent"
	"github.com/abhisek/replayz/ent/predicate"
)

// CodeErrorEventUpdate is the builder for updating CodeErrorEvent entities.
type CodeErrorEventUpdate struct {
	config
	hooks    []Hook
	mutation *CodeErrorEventMutation
}

// Where appends a list predicates to the CodeErrorEventUpdate builder.
func (_u *CodeErrorEventUpdate) Where(ps ...predicate.CodeErrorEvent) *CodeErrorEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskIndex sets the "task_index" field.
func (_u *CodeErrorEventUpdate) SetTaskIndex(v int) *CodeErrorEventUpdate {
	_u.mutation.ResetTaskIndex()
	_u.mutation.SetTaskIndex(v)
	return _u
}

// SetNillableTaskIndex sets the "task_index" field if the given value is not nil.
func (_u *CodeErrorEventUpdate) SetNillableTaskIndex(v *int) *CodeErrorEventUpdate {
	if v != nil {
		_u.SetTaskIndex(*v)
	}
	return _u
}

// AddTaskIndex adds value to the "task_index" field.
func (_u *CodeErrorEventUpdate) AddTaskIndex(v int) *CodeErrorEventUpdate {
	_u.mutation.AddTaskIndex(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CodeErrorEventUpdate) SetErrorMessage(v string) *CodeErrorEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CodeErrorEventUpdate) SetNillableErrorMessage(v *string) *CodeErrorEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the CodeErrorEventMutation object of the builder.
func (_u *CodeErrorEventUpdate) Mutation() *CodeErrorEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CodeErrorEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodeErrorEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CodeErrorEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodeErrorEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CodeErrorEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(codeerrorevent.Table, codeerrorevent.Columns, sqlgraph.NewFieldSpec(codeerrorevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskIndex(); ok {
		_spec.SetField(codeerrorevent.FieldTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskIndex(); ok {
		_spec.AddField(codeerrorevent.FieldTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(codeerrorevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codeerrorevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CodeErrorEventUpdateOne is the builder for updating a single CodeErrorEvent entity.
type CodeErrorEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CodeErrorEventMutation
}

// SetTaskIndex sets the "task_index" field.
func (_u *CodeErrorEventUpdateOne) SetTaskIndex(v int) *CodeErrorEventUpdateOne {
	_u.mutation.ResetTaskIndex()
	_u.mutation.SetTaskIndex(v)
	return _u
}

// SetNillableTaskIndex sets the "task_index" field if the given value is not nil.
func (_u *CodeErrorEventUpdateOne) SetNillableTaskIndex(v *int) *CodeErrorEventUpdateOne {
	if v != nil {
		_u.SetTaskIndex(*v)
	}
	return _u
}

// AddTaskIndex adds value to the "task_index" field.
func (_u *CodeErrorEventUpdateOne) AddTaskIndex(v int) *CodeErrorEventUpdateOne {
	_u.mutation.AddTaskIndex(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CodeErrorEventUpdateOne) SetErrorMessage(v string) *CodeErrorEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CodeErrorEventUpdateOne) SetNillableErrorMessage(v *string) *CodeErrorEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the CodeErrorEventMutation object of the builder.
func (_u *CodeErrorEventUpdateOne) Mutation() *CodeErrorEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CodeErrorEventUpdate builder.
func (_u *CodeErrorEventUpdateOne) Where(ps ...predicate.CodeErrorEvent) *CodeErrorEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CodeErrorEventUpdateOne) Select(field string, fields ...string) *CodeErrorEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CodeErrorEvent entity.
func (_u *CodeErrorEventUpdateOne) Save(ctx context.Context) (*CodeErrorEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodeErrorEventUpdateOne) SaveX(ctx context.Context) *CodeErrorEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CodeErrorEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodeErrorEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CodeErrorEventUpdateOne) sqlSave(ctx context.Context) (_node *CodeErrorEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(codeerrorevent.Table, codeerrorevent.Columns, sqlgraph.NewFieldSpec(codeerrorevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CodeErrorEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, codeerrorevent.FieldID)
		for _, f := range fields {
			if !codeerrorevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != codeerrorevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskIndex(); ok {
		_spec.SetField(codeerrorevent.FieldTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskIndex(); ok {
		_spec.AddField(codeerrorevent.FieldTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(codeerrorevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &CodeErrorEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codeerrorevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
