// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/panelevent"
)

// PanelEventCreate is the builder for creating a PanelEvent entity.
type PanelEventCreate struct {
	config
	mutation *PanelEventMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *PanelEventCreate) SetSessionID(v string) *PanelEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PanelEventCreate) SetTimestamp(v string) *PanelEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetCurrentTaskIndex sets the "current_task_index" field.
func (_c *PanelEventCreate) SetCurrentTaskIndex(v int) *PanelEventCreate {
	_c.mutation.SetCurrentTaskIndex(v)
	return _c
}

// SetNillableCurrentTaskIndex sets the "current_task_index" field if the given value is not nil.
func (_c *PanelEventCreate) SetNillableCurrentTaskIndex(v *int) *PanelEventCreate {
	if v != nil {
		_c.SetCurrentTaskIndex(*v)
	}
	return _c
}

// SetInteractionType sets the "interaction_type" field.
func (_c *PanelEventCreate) SetInteractionType(v string) *PanelEventCreate {
	_c.mutation.SetInteractionType(v)
	return _c
}

// Mutation returns the PanelEventMutation object of the builder.
func (_c *PanelEventCreate) Mutation() *PanelEventMutation {
	return _c.mutation
}

// Save creates the PanelEvent in the database.
func (_c *PanelEventCreate) Save(ctx context.Context) (*PanelEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PanelEventCreate) SaveX(ctx context.Context) *PanelEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PanelEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PanelEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PanelEventCreate) defaults() {
	if _, ok := _c.mutation.CurrentTaskIndex(); !ok {
		v := panelevent.DefaultCurrentTaskIndex
		_c.mutation.SetCurrentTaskIndex(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PanelEventCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PanelEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := panelevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PanelEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PanelEvent.timestamp"`)}
	}
	if v, ok := _c.mutation.Timestamp(); ok {
		if err := panelevent.TimestampValidator(v); err != nil {
			return &ValidationError{Name: "timestamp", err: fmt.Errorf(`ent: validator failed for field "PanelEvent.timestamp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentTaskIndex(); !ok {
		return &ValidationError{Name: "current_task_index", err: errors.New(`ent: missing required field "PanelEvent.current_task_index"`)}
	}
	if _, ok := _c.mutation.InteractionType(); !ok {
		return &ValidationError{Name: "interaction_type", err: errors.New(`ent: missing required field "PanelEvent.interaction_type"`)}
	}
	if v, ok := _c.mutation.InteractionType(); ok {
		if err := panelevent.InteractionTypeValidator(v); err != nil {
			return &ValidationError{Name: "interaction_type", err: fmt.Errorf(`ent: validator failed for field "PanelEvent.interaction_type": %w`, err)}
		}
	}
	return nil
}

func (_c *PanelEventCreate) sqlSave(ctx context.Context) (*PanelEvent, error) {
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

func (_c *PanelEventCreate) createSpec() (*PanelEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PanelEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(panelevent.Table, sqlgraph.NewFieldSpec(panelevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(panelevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(panelevent.FieldTimestamp, field.TypeString, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.CurrentTaskIndex(); ok {
		_spec.SetField(panelevent.FieldCurrentTaskIndex, field.TypeInt, value)
		_node.CurrentTaskIndex = value
	}
	if value, ok := _c.mutation.InteractionType(); ok {
		_spec.SetField(panelevent.FieldInteractionType, field.TypeString, value)
		_node.InteractionType = value
	}
	return _node, _spec
}

// PanelEventCreateBulk is the builder for creating many PanelEvent entities in bulk.
type PanelEventCreateBulk struct {
	config
	err      error
	builders []*PanelEventCreate
}

// Save creates the PanelEvent entities in the database.
func (_c *PanelEventCreateBulk) Save(ctx context.Context) ([]*PanelEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PanelEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PanelEventMutation)
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
func (_c *PanelEventCreateBulk) SaveX(ctx context.Context) []*PanelEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PanelEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PanelEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
