// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/codeerrorevent"
)

// CodeErrorEventCreate is the builder for creating a CodeErrorEvent entity.
type CodeErrorEventCreate struct {
	config
	mutation *CodeErrorEventMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *CodeErrorEventCreate) SetSessionID(v string) *CodeErrorEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CodeErrorEventCreate) SetTimestamp(v string) *CodeErrorEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetTaskIndex sets the "task_index" field.
func (_c *CodeErrorEventCreate) SetTaskIndex(v int) *CodeErrorEventCreate {
	_c.mutation.SetTaskIndex(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CodeErrorEventCreate) SetErrorMessage(v string) *CodeErrorEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// Mutation returns the CodeErrorEventMutation object of the builder.
func (_c *CodeErrorEventCreate) Mutation() *CodeErrorEventMutation {
	return _c.mutation
}

// Save creates the CodeErrorEvent in the database.
func (_c *CodeErrorEventCreate) Save(ctx context.Context) (*CodeErrorEvent, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CodeErrorEventCreate) SaveX(ctx context.Context) *CodeErrorEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodeErrorEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodeErrorEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CodeErrorEventCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "CodeErrorEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := codeerrorevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CodeErrorEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CodeErrorEvent.timestamp"`)}
	}
	if v, ok := _c.mutation.Timestamp(); ok {
		if err := codeerrorevent.TimestampValidator(v); err != nil {
			return &ValidationError{Name: "timestamp", err: fmt.Errorf(`ent: validator failed for field "CodeErrorEvent.timestamp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskIndex(); !ok {
		return &ValidationError{Name: "task_index", err: errors.New(`ent: missing required field "CodeErrorEvent.task_index"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "CodeErrorEvent.error_message"`)}
	}
	return nil
}

func (_c *CodeErrorEventCreate) sqlSave(ctx context.Context) (*CodeErrorEvent, error) {
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

func (_c *CodeErrorEventCreate) createSpec() (*CodeErrorEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CodeErrorEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(codeerrorevent.Table, sqlgraph.NewFieldSpec(codeerrorevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(codeerrorevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(codeerrorevent.FieldTimestamp, field.TypeString, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.TaskIndex(); ok {
		_spec.SetField(codeerrorevent.FieldTaskIndex, field.TypeInt, value)
		_node.TaskIndex = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(codeerrorevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// CodeErrorEventCreateBulk is the builder for creating many CodeErrorEvent entities in bulk.
type CodeErrorEventCreateBulk struct {
	config
	err      error
	builders []*CodeErrorEventCreate
}

// Save creates the CodeErrorEvent entities in the database.
func (_c *CodeErrorEventCreateBulk) Save(ctx context.Context) ([]*CodeErrorEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CodeErrorEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CodeErrorEventMutation)
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
func (_c *CodeErrorEventCreateBulk) SaveX(ctx context.Context) []*CodeErrorEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodeErrorEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodeErrorEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
