// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/panelevent"
	"github.com/abhisek/replayz/ent/predicate"
)

// PanelEventUpdate is the builder for updating PanelEvent entities.
type PanelEventUpdate struct {
	config
	hooks    []Hook
	mutation *PanelEventMutation
}

// Where appends a list predicates to the PanelEventUpdate builder.
func (_u *PanelEventUpdate) Where(ps ...predicate.PanelEvent) *PanelEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrentTaskIndex sets the "current_task_index" field.
func (_u *PanelEventUpdate) SetCurrentTaskIndex(v int) *PanelEventUpdate {
	_u.mutation.ResetCurrentTaskIndex()
	_u.mutation.SetCurrentTaskIndex(v)
	return _u
}

// SetNillableCurrentTaskIndex sets the "current_task_index" field if the given value is not nil.
func (_u *PanelEventUpdate) SetNillableCurrentTaskIndex(v *int) *PanelEventUpdate {
	if v != nil {
		_u.SetCurrentTaskIndex(*v)
	}
	return _u
}

// AddCurrentTaskIndex adds value to the "current_task_index" field.
func (_u *PanelEventUpdate) AddCurrentTaskIndex(v int) *PanelEventUpdate {
	_u.mutation.AddCurrentTaskIndex(v)
	return _u
}

// SetInteractionType sets the "interaction_type" field.
func (_u *PanelEventUpdate) SetInteractionType(v string) *PanelEventUpdate {
	_u.mutation.SetInteractionType(v)
	return _u
}

// SetNillableInteractionType sets the "interaction_type" field if the given value is not nil.
func (_u *PanelEventUpdate) SetNillableInteractionType(v *string) *PanelEventUpdate {
	if v != nil {
		_u.SetInteractionType(*v)
	}
	return _u
}

// Mutation returns the PanelEventMutation object of the builder.
func (_u *PanelEventUpdate) Mutation() *PanelEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PanelEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PanelEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PanelEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PanelEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PanelEventUpdate) check() error {
	if v, ok := _u.mutation.InteractionType(); ok {
		if err := panelevent.InteractionTypeValidator(v); err != nil {
			return &ValidationError{Name: "interaction_type", err: fmt.Errorf(`ent: validator failed for field "PanelEvent.interaction_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PanelEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(panelevent.Table, panelevent.Columns, sqlgraph.NewFieldSpec(panelevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentTaskIndex(); ok {
		_spec.SetField(panelevent.FieldCurrentTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentTaskIndex(); ok {
		_spec.AddField(panelevent.FieldCurrentTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InteractionType(); ok {
		_spec.SetField(panelevent.FieldInteractionType, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{panelevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PanelEventUpdateOne is the builder for updating a single PanelEvent entity.
type PanelEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PanelEventMutation
}

// SetCurrentTaskIndex sets the "current_task_index" field.
func (_u *PanelEventUpdateOne) SetCurrentTaskIndex(v int) *PanelEventUpdateOne {
	_u.mutation.ResetCurrentTaskIndex()
	_u.mutation.SetCurrentTaskIndex(v)
	return _u
}

// SetNillableCurrentTaskIndex sets the "current_task_index" field if the given value is not nil.
func (_u *PanelEventUpdateOne) SetNillableCurrentTaskIndex(v *int) *PanelEventUpdateOne {
	if v != nil {
		_u.SetCurrentTaskIndex(*v)
	}
	return _u
}

// AddCurrentTaskIndex adds value to the "current_task_index" field.
func (_u *PanelEventUpdateOne) AddCurrentTaskIndex(v int) *PanelEventUpdateOne {
	_u.mutation.AddCurrentTaskIndex(v)
	return _u
}

// SetInteractionType sets the "interaction_type" field.
func (_u *PanelEventUpdateOne) SetInteractionType(v string) *PanelEventUpdateOne {
	_u.mutation.SetInteractionType(v)
	return _u
}

// SetNillableInteractionType sets the "interaction_type" field if the given value is not nil.
func (_u *PanelEventUpdateOne) SetNillableInteractionType(v *string) *PanelEventUpdateOne {
	if v != nil {
		_u.SetInteractionType(*v)
	}
	return _u
}

// Mutation returns the PanelEventMutation object of the builder.
func (_u *PanelEventUpdateOne) Mutation() *PanelEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PanelEventUpdate builder.
func (_u *PanelEventUpdateOne) Where(ps ...predicate.PanelEvent) *PanelEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PanelEventUpdateOne) Select(field string, fields ...string) *PanelEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PanelEvent entity.
func (_u *PanelEventUpdateOne) Save(ctx context.Context) (*PanelEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PanelEventUpdateOne) SaveX(ctx context.Context) *PanelEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PanelEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PanelEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PanelEventUpdateOne) check() error {
	if v, ok := _u.mutation.InteractionType(); ok {
		if err := panelevent.InteractionTypeValidator(v); err != nil {
			return &ValidationError{Name: "interaction_type", err: fmt.Errorf(`ent: validator failed for field "PanelEvent.interaction_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PanelEventUpdateOne) sqlSave(ctx context.Context) (_node *PanelEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(panelevent.Table, panelevent.Columns, sqlgraph.NewFieldSpec(panelevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PanelEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, panelevent.FieldID)
		for _, f := range fields {
			if !panelevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != panelevent.FieldID {
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
	if value, ok := _u.mutation.CurrentTaskIndex(); ok {
		_spec.SetField(panelevent.FieldCurrentTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentTaskIndex(); ok {
		_spec.AddField(panelevent.FieldCurrentTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InteractionType(); ok {
		_spec.SetField(panelevent.FieldInteractionType, field.TypeString, value)
	}
	_node = &PanelEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{panelevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
