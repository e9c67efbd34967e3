// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/predicate"
	"github.com/abhisek/replayz/ent/schema"
	"github.com/abhisek/replayz/ent/strokeevent"
)

// StrokeEventUpdate is the builder for updating StrokeEvent entities.
type StrokeEventUpdate struct {
	config
	hooks    []Hook
	mutation *StrokeEventMutation
}

// Where appends a list predicates to the StrokeEventUpdate builder.
func (_u *StrokeEventUpdate) Where(ps ...predicate.StrokeEvent) *StrokeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTask sets the "task" field.
func (_u *StrokeEventUpdate) SetTask(v string) *StrokeEventUpdate {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *StrokeEventUpdate) SetNillableTask(v *string) *StrokeEventUpdate {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// ClearTask clears the value of the "task" field.
func (_u *StrokeEventUpdate) ClearTask() *StrokeEventUpdate {
	_u.mutation.ClearTask()
	return _u
}

// SetZone sets the "zone" field.
func (_u *StrokeEventUpdate) SetZone(v string) *StrokeEventUpdate {
	_u.mutation.SetZone(v)
	return _u
}

// SetNillableZone sets the "zone" field if the given value is not nil.
func (_u *StrokeEventUpdate) SetNillableZone(v *string) *StrokeEventUpdate {
	if v != nil {
		_u.SetZone(*v)
	}
	return _u
}

// ClearZone clears the value of the "zone" field.
func (_u *StrokeEventUpdate) ClearZone() *StrokeEventUpdate {
	_u.mutation.ClearZone()
	return _u
}

// SetStrokeNumber sets the "stroke_number" field.
func (_u *StrokeEventUpdate) SetStrokeNumber(v int) *StrokeEventUpdate {
	_u.mutation.ResetStrokeNumber()
	_u.mutation.SetStrokeNumber(v)
	return _u
}

// SetNillableStrokeNumber sets the "stroke_number" field if the given value is not nil.
func (_u *StrokeEventUpdate) SetNillableStrokeNumber(v *int) *StrokeEventUpdate {
	if v != nil {
		_u.SetStrokeNumber(*v)
	}
	return _u
}

// AddStrokeNumber adds value to the "stroke_number" field.
func (_u *StrokeEventUpdate) AddStrokeNumber(v int) *StrokeEventUpdate {
	_u.mutation.AddStrokeNumber(v)
	return _u
}

// SetPoints sets the "points" field.
func (_u *StrokeEventUpdate) SetPoints(v []schema.StrokePoint) *StrokeEventUpdate {
	_u.mutation.SetPoints(v)
	return _u
}

// AppendPoints appends value to the "points" field.
func (_u *StrokeEventUpdate) AppendPoints(v []schema.StrokePoint) *StrokeEventUpdate {
	_u.mutation.AppendPoints(v)
	return _u
}

// ClearPoints clears the value of the "points" field.
func (_u *StrokeEventUpdate) ClearPoints() *StrokeEventUpdate {
	_u.mutation.ClearPoints()
	return _u
}

// Mutation returns the StrokeEventMutation object of the builder.
func (_u *StrokeEventUpdate) Mutation() *StrokeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StrokeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StrokeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StrokeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StrokeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StrokeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(strokeevent.Table, strokeevent.Columns, sqlgraph.NewFieldSpec(strokeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(strokeevent.FieldTask, field.TypeString, value)
	}
	if _u.mutation.TaskCleared() {
		_spec.ClearField(strokeevent.FieldTask, field.TypeString)
	}
	if value, ok := _u.mutation.Zone(); ok {
		_spec.SetField(strokeevent.FieldZone, field.TypeString, value)
	}
	if _u.mutation.ZoneCleared() {
		_spec.ClearField(strokeevent.FieldZone, field.TypeString)
	}
	if value, ok := _u.mutation.StrokeNumber(); ok {
		_spec.SetField(strokeevent.FieldStrokeNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrokeNumber(); ok {
		_spec.AddField(strokeevent.FieldStrokeNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(strokeevent.FieldPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, strokeevent.FieldPoints, value)
		})
	}
	if _u.mutation.PointsCleared() {
		_spec.ClearField(strokeevent.FieldPoints, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{strokeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StrokeEventUpdateOne is the builder for updating a single StrokeEvent entity.
type StrokeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StrokeEventMutation
}

// SetTask sets the "task" field.
func (_u *StrokeEventUpdateOne) SetTask(v string) *StrokeEventUpdateOne {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *StrokeEventUpdateOne) SetNillableTask(v *string) *StrokeEventUpdateOne {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// ClearTask clears the value of the "task" field.
func (_u *StrokeEventUpdateOne) ClearTask() *StrokeEventUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// SetZone sets the "zone" field.
func (_u *StrokeEventUpdateOne) SetZone(v string) *StrokeEventUpdateOne {
	_u.mutation.SetZone(v)
	return _u
}

// SetNillableZone sets the "zone" field if the given value is not nil.
func (_u *StrokeEventUpdateOne) SetNillableZone(v *string) *StrokeEventUpdateOne {
	if v != nil {
		_u.SetZone(*v)
	}
	return _u
}

// ClearZone clears the value of the "zone" field.
func (_u *StrokeEventUpdateOne) ClearZone() *StrokeEventUpdateOne {
	_u.mutation.ClearZone()
	return _u
}

// SetStrokeNumber sets the "stroke_number" field.
func (_u *StrokeEventUpdateOne) SetStrokeNumber(v int) *StrokeEventUpdateOne {
	_u.mutation.ResetStrokeNumber()
	_u.mutation.SetStrokeNumber(v)
	return _u
}

// SetNillableStrokeNumber sets the "stroke_number" field if the given value is not nil.
func (_u *StrokeEventUpdateOne) SetNillableStrokeNumber(v *int) *StrokeEventUpdateOne {
	if v != nil {
		_u.SetStrokeNumber(*v)
	}
	return _u
}

// AddStrokeNumber adds value to the "stroke_number" field.
func (_u *StrokeEventUpdateOne) AddStrokeNumber(v int) *StrokeEventUpdateOne {
	_u.mutation.AddStrokeNumber(v)
	return _u
}

// SetPoints sets the "points" field.
func (_u *StrokeEventUpdateOne) SetPoints(v []schema.StrokePoint) *StrokeEventUpdateOne {
	_u.mutation.SetPoints(v)
	return _u
}

// AppendPoints appends value to the "points" field.
func (_u *StrokeEventUpdateOne) AppendPoints(v []schema.StrokePoint) *StrokeEventUpdateOne {
	_u.mutation.AppendPoints(v)
	return _u
}

// ClearPoints clears the value of the "points" field.
func (_u *StrokeEventUpdateOne) ClearPoints() *StrokeEventUpdateOne {
	_u.mutation.ClearPoints()
	return _u
}

// Mutation returns the StrokeEventMutation object of the builder.
func (_u *StrokeEventUpdateOne) Mutation() *StrokeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StrokeEventUpdate builder.
func (_u *StrokeEventUpdateOne) Where(ps ...predicate.StrokeEvent) *StrokeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StrokeEventUpdateOne) Select(field string, fields ...string) *StrokeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StrokeEvent entity.
func (_u *StrokeEventUpdateOne) Save(ctx context.Context) (*StrokeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StrokeEventUpdateOne) SaveX(ctx context.Context) *StrokeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StrokeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StrokeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StrokeEventUpdateOne) sqlSave(ctx context.Context) (_node *StrokeEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(strokeevent.Table, strokeevent.Columns, sqlgraph.NewFieldSpec(strokeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StrokeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, strokeevent.FieldID)
		for _, f := range fields {
			if !strokeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != strokeevent.FieldID {
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
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(strokeevent.FieldTask, field.TypeString, value)
	}
	if _u.mutation.TaskCleared() {
		_spec.ClearField(strokeevent.FieldTask, field.TypeString)
	}
	if value, ok := _u.mutation.Zone(); ok {
		_spec.SetField(strokeevent.FieldZone, field.TypeString, value)
	}
	if _u.mutation.ZoneCleared() {
		_spec.ClearField(strokeevent.FieldZone, field.TypeString)
	}
	if value, ok := _u.mutation.StrokeNumber(); ok {
		_spec.SetField(strokeevent.FieldStrokeNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrokeNumber(); ok {
		_spec.AddField(strokeevent.FieldStrokeNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(strokeevent.FieldPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, strokeevent.FieldPoints, value)
		})
	}
	if _u.mutation.PointsCleared() {
		_spec.ClearField(strokeevent.FieldPoints, field.TypeJSON)
	}
	_node = &StrokeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{strokeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
