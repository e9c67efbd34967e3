// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/schema"
	"github.com/abhisek/replayz/ent/strokeevent"
)

// StrokeEventCreate is the builder for creating a StrokeEvent entity.
type StrokeEventCreate struct {
	config
	mutation *StrokeEventMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *StrokeEventCreate) SetSessionID(v string) *StrokeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *StrokeEventCreate) SetTimestamp(v string) *StrokeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetTask sets the "task" field.
func (_c *StrokeEventCreate) SetTask(v string) *StrokeEventCreate {
	_c.mutation.SetTask(v)
	return _c
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_c *StrokeEventCreate) SetNillableTask(v *string) *StrokeEventCreate {
	if v != nil {
		_c.SetTask(*v)
	}
	return _c
}

// SetZone sets the "zone" field.
func (_c *StrokeEventCreate) SetZone(v string) *StrokeEventCreate {
	_c.mutation.SetZone(v)
	return _c
}

// SetNillableZone sets the "zone" field if the given value is not nil.
func (_c *StrokeEventCreate) SetNillableZone(v *string) *StrokeEventCreate {
	if v != nil {
		_c.SetZone(*v)
	}
	return _c
}

// SetStrokeNumber sets the "stroke_number" field.
func (_c *StrokeEventCreate) SetStrokeNumber(v int) *StrokeEventCreate {
	_c.mutation.SetStrokeNumber(v)
	return _c
}

// SetNillableStrokeNumber sets the "stroke_number" field if the given value is not nil.
func (_c *StrokeEventCreate) SetNillableStrokeNumber(v *int) *StrokeEventCreate {
	if v != nil {
		_c.SetStrokeNumber(*v)
	}
	return _c
}

// SetPoints sets the "points" field.
func (_c *StrokeEventCreate) SetPoints(v []schema.StrokePoint) *StrokeEventCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// Mutation returns the StrokeEventMutation object of the builder.
func (_c *StrokeEventCreate) Mutation() *StrokeEventMutation {
	return _c.mutation
}

// Save creates the StrokeEvent in the database.
func (_c *StrokeEventCreate) Save(ctx context.Context) (*StrokeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StrokeEventCreate) SaveX(ctx context.Context) *StrokeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StrokeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StrokeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StrokeEventCreate) defaults() {
	if _, ok := _c.mutation.StrokeNumber(); !ok {
		v := strokeevent.DefaultStrokeNumber
		_c.mutation.SetStrokeNumber(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StrokeEventCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "StrokeEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := strokeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StrokeEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "StrokeEvent.timestamp"`)}
	}
	if v, ok := _c.mutation.Timestamp(); ok {
		if err := strokeevent.TimestampValidator(v); err != nil {
			return &ValidationError{Name: "timestamp", err: fmt.Errorf(`ent: validator failed for field "StrokeEvent.timestamp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StrokeNumber(); !ok {
		return &ValidationError{Name: "stroke_number", err: errors.New(`ent: missing required field "StrokeEvent.stroke_number"`)}
	}
	return nil
}

func (_c *StrokeEventCreate) sqlSave(ctx context.Context) (*StrokeEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StrokeEventCreate) createSpec() (*StrokeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StrokeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(strokeevent.Table, sqlgraph.NewFieldSpec(strokeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(strokeevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(strokeevent.FieldTimestamp, field.TypeString, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Task(); ok {
		_spec.SetField(strokeevent.FieldTask, field.TypeString, value)
		_node.Task = value
	}
	if value, ok := _c.mutation.Zone(); ok {
		_spec.SetField(strokeevent.FieldZone, field.TypeString, value)
		_node.Zone = value
	}
	if value, ok := _c.mutation.StrokeNumber(); ok {
		_spec.SetField(strokeevent.FieldStrokeNumber, field.TypeInt, value)
		_node.StrokeNumber = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(strokeevent.FieldPoints, field.TypeJSON, value)
		_node.Points = value
	}
	return _node, _spec
}

// StrokeEventCreateBulk is the builder for creating many StrokeEvent entities in bulk.
type StrokeEventCreateBulk struct {
	config
	err      error
	builders []*StrokeEventCreate
}

// Save creates the StrokeEvent entities in the database.
func (_c *StrokeEventCreateBulk) Save(ctx context.Context) ([]*StrokeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StrokeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StrokeEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StrokeEventCreateBulk) SaveX(ctx context.Context) []*StrokeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StrokeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StrokeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
