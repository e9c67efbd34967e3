// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/navevent"
	"github.com/abhisek/replayz/ent/predicate"
)

// NavEventUpdate is the builder for updating NavEvent entities.
type NavEventUpdate struct {
	config
	hooks    []Hook
	mutation *NavEventMutation
}

// Where appends a list predicates to the NavEventUpdate builder.
func (_u *NavEventUpdate) Where(ps ...predicate.NavEvent) *NavEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFromTaskIndex sets the "from_task_index" field.
func (_u *NavEventUpdate) SetFromTaskIndex(v int) *NavEventUpdate {
	_u.mutation.ResetFromTaskIndex()
	_u.mutation.SetFromTaskIndex(v)
	return _u
}

// SetNillableFromTaskIndex sets the "from_task_index" field if the given value is not nil.
func (_u *NavEventUpdate) SetNillableFromTaskIndex(v *int) *NavEventUpdate {
	if v != nil {
		_u.SetFromTaskIndex(*v)
	}
	return _u
}

// AddFromTaskIndex adds value to the "from_task_index" field.
func (_u *NavEventUpdate) AddFromTaskIndex(v int) *NavEventUpdate {
	_u.mutation.AddFromTaskIndex(v)
	return _u
}

// SetToTaskIndex sets the "to_task_index" field.
func (_u *NavEventUpdate) SetToTaskIndex(v int) *NavEventUpdate {
	_u.mutation.ResetToTaskIndex()
	_u.mutation.SetToTaskIndex(v)
	return _u
}

// SetNillableToTaskIndex sets the "to_task_index" field if the given value is not nil.
func (_u *NavEventUpdate) SetNillableToTaskIndex(v *int) *NavEventUpdate {
	if v != nil {
		_u.SetToTaskIndex(*v)
	}
	return _u
}

// AddToTaskIndex adds value to the "to_task_index" field.
func (_u *NavEventUpdate) AddToTaskIndex(v int) *NavEventUpdate {
	_u.mutation.AddToTaskIndex(v)
	return _u
}

// SetNavigationDirection sets the "navigation_direction" field.
func (_u *NavEventUpdate) SetNavigationDirection(v string) *NavEventUpdate {
	_u.mutation.SetNavigationDirection(v)
	return _u
}

// SetNillableNavigationDirection sets the "navigation_direction" field if the given value is not nil.
func (_u *NavEventUpdate) SetNillableNavigationDirection(v *string) *NavEventUpdate {
	if v != nil {
		_u.SetNavigationDirection(*v)
	}
	return _u
}

// ClearNavigationDirection clears the value of the "navigation_direction" field.
func (_u *NavEventUpdate) ClearNavigationDirection() *NavEventUpdate {
	_u.mutation.ClearNavigationDirection()
	return _u
}

// Mutation returns the NavEventMutation object of the builder.
func (_u *NavEventUpdate) Mutation() *NavEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NavEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NavEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NavEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NavEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NavEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(navevent.Table, navevent.Columns, sqlgraph.NewFieldSpec(navevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FromTaskIndex(); ok {
		_spec.SetField(navevent.FieldFromTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromTaskIndex(); ok {
		_spec.AddField(navevent.FieldFromTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToTaskIndex(); ok {
		_spec.SetField(navevent.FieldToTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToTaskIndex(); ok {
		_spec.AddField(navevent.FieldToTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NavigationDirection(); ok {
		_spec.SetField(navevent.FieldNavigationDirection, field.TypeString, value)
	}
	if _u.mutation.NavigationDirectionCleared() {
		_spec.ClearField(navevent.FieldNavigationDirection, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{navevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NavEventUpdateOne is the builder for updating a single NavEvent entity.
type NavEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NavEventMutation
}

// SetFromTaskIndex sets the "from_task_index" field.
func (_u *NavEventUpdateOne) SetFromTaskIndex(v int) *NavEventUpdateOne {
	_u.mutation.ResetFromTaskIndex()
	_u.mutation.SetFromTaskIndex(v)
	return _u
}

// SetNillableFromTaskIndex sets the "from_task_index" field if the given value is not nil.
func (_u *NavEventUpdateOne) SetNillableFromTaskIndex(v *int) *NavEventUpdateOne {
	if v != nil {
		_u.SetFromTaskIndex(*v)
	}
	return _u
}

// AddFromTaskIndex adds value to the "from_task_index" field.
func (_u *NavEventUpdateOne) AddFromTaskIndex(v int) *NavEventUpdateOne {
	_u.mutation.AddFromTaskIndex(v)
	return _u
}

// SetToTaskIndex sets the "to_task_index" field.
func (_u *NavEventUpdateOne) SetToTaskIndex(v int) *NavEventUpdateOne {
	_u.mutation.ResetToTaskIndex()
	_u.mutation.SetToTaskIndex(v)
	return _u
}

// SetNillableToTaskIndex sets the "to_task_index" field if the given value is not nil.
func (_u *NavEventUpdateOne) SetNillableToTaskIndex(v *int) *NavEventUpdateOne {
	if v != nil {
		_u.SetToTaskIndex(*v)
	}
	return _u
}

// AddToTaskIndex adds value to the "to_task_index" field.
func (_u *NavEventUpdateOne) AddToTaskIndex(v int) *NavEventUpdateOne {
	_u.mutation.AddToTaskIndex(v)
	return _u
}

// SetNavigationDirection sets the "navigation_direction" field.
func (_u *NavEventUpdateOne) SetNavigationDirection(v string) *NavEventUpdateOne {
	_u.mutation.SetNavigationDirection(v)
	return _u
}

// SetNillableNavigationDirection sets the "navigation_direction" field if the given value is not nil.
func (_u *NavEventUpdateOne) SetNillableNavigationDirection(v *string) *NavEventUpdateOne {
	if v != nil {
		_u.SetNavigationDirection(*v)
	}
	return _u
}

// ClearNavigationDirection clears the value of the "navigation_direction" field.
func (_u *NavEventUpdateOne) ClearNavigationDirection() *NavEventUpdateOne {
	_u.mutation.ClearNavigationDirection()
	return _u
}

// Mutation returns the NavEventMutation object of the builder.
func (_u *NavEventUpdateOne) Mutation() *NavEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the NavEventUpdate builder.
func (_u *NavEventUpdateOne) Where(ps ...predicate.NavEvent) *NavEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NavEventUpdateOne) Select(field string, fields ...string) *NavEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NavEvent entity.
func (_u *NavEventUpdateOne) Save(ctx context.Context) (*NavEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NavEventUpdateOne) SaveX(ctx context.Context) *NavEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NavEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NavEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NavEventUpdateOne) sqlSave(ctx context.Context) (_node *NavEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(navevent.Table, navevent.Columns, sqlgraph.NewFieldSpec(navevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NavEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, navevent.FieldID)
		for _, f := range fields {
			if !navevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != navevent.FieldID {
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
	if value, ok := _u.mutation.FromTaskIndex(); ok {
		_spec.SetField(navevent.FieldFromTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromTaskIndex(); ok {
		_spec.AddField(navevent.FieldFromTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToTaskIndex(); ok {
		_spec.SetField(navevent.FieldToTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToTaskIndex(); ok {
		_spec.AddField(navevent.FieldToTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NavigationDirection(); ok {
		_spec.SetField(navevent.FieldNavigationDirection, field.TypeString, value)
	}
	if _u.mutation.NavigationDirectionCleared() {
		_spec.ClearField(navevent.FieldNavigationDirection, field.TypeString)
	}
	_node = &NavEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{navevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
