// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/codesnapshot"
)

// CodeSnapshotCreate is the builder for creating a CodeSnapshot entity.
type CodeSnapshotCreate struct {
	config
	mutation *CodeSnapshotMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *CodeSnapshotCreate) SetSessionID(v string) *CodeSnapshotCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CodeSnapshotCreate) SetTimestamp(v string) *CodeSnapshotCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetTaskIndex sets the "task_index" field.
func (_c *CodeSnapshotCreate) SetTaskIndex(v int) *CodeSnapshotCreate {
	_c.mutation.SetTaskIndex(v)
	return _c
}

// SetMethodID sets the "method_id" field.
func (_c *CodeSnapshotCreate) SetMethodID(v string) *CodeSnapshotCreate {
	_c.mutation.SetMethodID(v)
	return _c
}

// SetNillableMethodID sets the "method_id" field if the given value is not nil.
func (_c *CodeSnapshotCreate) SetNillableMethodID(v *string) *CodeSnapshotCreate {
	if v != nil {
		_c.SetMethodID(*v)
	}
	return _c
}

// SetCodeContent sets the "code_content" field.
func (_c *CodeSnapshotCreate) SetCodeContent(v string) *CodeSnapshotCreate {
	_c.mutation.SetCodeContent(v)
	return _c
}

// Mutation returns the CodeSnapshotMutation object of the builder.
func (_c *CodeSnapshotCreate) Mutation() *CodeSnapshotMutation {
	return _c.mutation
}

// Save creates the CodeSnapshot in the database.
func (_c *CodeSnapshotCreate) Save(ctx context.Context) (*CodeSnapshot, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CodeSnapshotCreate) SaveX(ctx context.Context) *CodeSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodeSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodeSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CodeSnapshotCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "CodeSnapshot.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := codesnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CodeSnapshot.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CodeSnapshot.timestamp"`)}
	}
	if v, ok := _c.mutation.Timestamp(); ok {
		if err := codesnapshot.TimestampValidator(v); err != nil {
			return &ValidationError{Name: "timestamp", err: fmt.Errorf(`ent: validator failed for field "CodeSnapshot.timestamp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskIndex(); !ok {
		return &ValidationError{Name: "task_index", err: errors.New(`ent: missing required field "CodeSnapshot.task_index"`)}
	}
	if _, ok := _c.mutation.CodeContent(); !ok {
		return &ValidationError{Name: "code_content", err: errors.New(`ent: missing required field "CodeSnapshot.code_content"`)}
	}
	return nil
}

func (_c *CodeSnapshotCreate) sqlSave(ctx context.Context) (*CodeSnapshot, error) {
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

func (_c *CodeSnapshotCreate) createSpec() (*CodeSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &CodeSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(codesnapshot.Table, sqlgraph.NewFieldSpec(codesnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(codesnapshot.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(codesnapshot.FieldTimestamp, field.TypeString, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.TaskIndex(); ok {
		_spec.SetField(codesnapshot.FieldTaskIndex, field.TypeInt, value)
		_node.TaskIndex = value
	}
	if value, ok := _c.mutation.MethodID(); ok {
		_spec.SetField(codesnapshot.FieldMethodID, field.TypeString, value)
		_node.MethodID = value
	}
	if value, ok := _c.mutation.CodeContent(); ok {
		_spec.SetField(codesnapshot.FieldCodeContent, field.TypeString, value)
		_node.CodeContent = value
	}
	return _node, _spec
}

// CodeSnapshotCreateBulk is the builder for creating many CodeSnapshot entities in bulk.
type CodeSnapshotCreateBulk struct {
	config
	err      error
	builders []*CodeSnapshotCreate
}

// Save creates the CodeSnapshot entities in the database.
func (_c *CodeSnapshotCreateBulk) Save(ctx context.Context) ([]*CodeSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CodeSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CodeSnapshotMutation)
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
func (_c *CodeSnapshotCreateBulk) SaveX(ctx context.Context) []*CodeSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodeSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodeSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
