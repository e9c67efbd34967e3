// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/navevent"
)

// NavEventCreate is the builder for creating a NavEvent entity.
type NavEventCreate struct {
	config
	mutation *NavEventMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *NavEventCreate) SetSessionID(v string) *NavEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *NavEventCreate) SetTimestamp(v string) *NavEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetFromTaskIndex sets the "from_task_index" field.
func (_c *NavEventCreate) SetFromTaskIndex(v int) *NavEventCreate {
	_c.mutation.SetFromTaskIndex(v)
	return _c
}

// SetToTaskIndex sets the "to_task_index" field.
func (_c *NavEventCreate) SetToTaskIndex(v int) *NavEventCreate {
	_c.mutation.SetToTaskIndex(v)
	return _c
}

// SetNavigationDirection sets the "navigation_direction" field.
func (_c *NavEventCreate) SetNavigationDirection(v string) *NavEventCreate {
	_c.mutation.SetNavigationDirection(v)
	return _c
}

// SetNillableNavigationDirection sets the "navigation_direction" field if the given value is not nil.
func (_c *NavEventCreate) SetNillableNavigationDirection(v *string) *NavEventCreate {
	if v != nil {
		_c.SetNavigationDirection(*v)
	}
	return _c
}

// Mutation returns the NavEventMutation object of the builder.
func (_c *NavEventCreate) Mutation() *NavEventMutation {
	return _c.mutation
}

// Save creates the NavEvent in the database.
func (_c *NavEventCreate) Save(ctx context.Context) (*NavEvent, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NavEventCreate) SaveX(ctx context.Context) *NavEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NavEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NavEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NavEventCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "NavEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := navevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "NavEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "NavEvent.timestamp"`)}
	}
	if v, ok := _c.mutation.Timestamp(); ok {
		if err := navevent.TimestampValidator(v); err != nil {
			return &ValidationError{Name: "timestamp", err: fmt.Errorf(`ent: validator failed for field "NavEvent.timestamp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FromTaskIndex(); !ok {
		return &ValidationError{Name: "from_task_index", err: errors.New(`ent: missing required field "NavEvent.from_task_index"`)}
	}
	if _, ok := _c.mutation.ToTaskIndex(); !ok {
		return &ValidationError{Name: "to_task_index", err: errors.New(`ent: missing required field "NavEvent.to_task_index"`)}
	}
	return nil
}

func (_c *NavEventCreate) sqlSave(ctx context.Context) (*NavEvent, error) {
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

func (_c *NavEventCreate) createSpec() (*NavEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &NavEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(navevent.Table, sqlgraph.NewFieldSpec(navevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(navevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(navevent.FieldTimestamp, field.TypeString, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.FromTaskIndex(); ok {
		_spec.SetField(navevent.FieldFromTaskIndex, field.TypeInt, value)
		_node.FromTaskIndex = value
	}
	if value, ok := _c.mutation.ToTaskIndex(); ok {
		_spec.SetField(navevent.FieldToTaskIndex, field.TypeInt, value)
		_node.ToTaskIndex = value
	}
	if value, ok := _c.mutation.NavigationDirection(); ok {
		_spec.SetField(navevent.FieldNavigationDirection, field.TypeString, value)
		_node.NavigationDirection = value
	}
	return _node, _spec
}

// NavEventCreateBulk is the builder for creating many NavEvent entities in bulk.
type NavEventCreateBulk struct {
	config
	err      error
	builders []*NavEventCreate
}

// Save creates the NavEvent entities in the database.
func (_c *NavEventCreateBulk) Save(ctx context.Context) ([]*NavEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NavEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NavEventMutation)
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
func (_c *NavEventCreateBulk) SaveX(ctx context.Context) []*NavEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NavEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NavEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
