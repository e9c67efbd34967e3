// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/userhighlight"
)

// UserHighlightCreate is the builder for creating a UserHighlight entity.
type UserHighlightCreate struct {
	config
	mutation *UserHighlightMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *UserHighlightCreate) SetSessionID(v string) *UserHighlightCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *UserHighlightCreate) SetTimestamp(v string) *UserHighlightCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetHighlightedText sets the "highlighted_text" field.
func (_c *UserHighlightCreate) SetHighlightedText(v string) *UserHighlightCreate {
	_c.mutation.SetHighlightedText(v)
	return _c
}

// Mutation returns the UserHighlightMutation object of the builder.
func (_c *UserHighlightCreate) Mutation() *UserHighlightMutation {
	return _c.mutation
}

// Save creates the UserHighlight in the database.
func (_c *UserHighlightCreate) Save(ctx context.Context) (*UserHighlight, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserHighlightCreate) SaveX(ctx context.Context) *UserHighlight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserHighlightCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserHighlightCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserHighlightCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "UserHighlight.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := userhighlight.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "UserHighlight.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "UserHighlight.timestamp"`)}
	}
	if v, ok := _c.mutation.Timestamp(); ok {
		if err := userhighlight.TimestampValidator(v); err != nil {
			return &ValidationError{Name: "timestamp", err: fmt.Errorf(`ent: validator failed for field "UserHighlight.timestamp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HighlightedText(); !ok {
		return &ValidationError{Name: "highlighted_text", err: errors.New(`ent: missing required field "UserHighlight.highlighted_text"`)}
	}
	return nil
}

func (_c *UserHighlightCreate) sqlSave(ctx context.Context) (*UserHighlight, error) {
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

func (_c *UserHighlightCreate) createSpec() (*UserHighlight, *sqlgraph.CreateSpec) {
	var (
		_node = &UserHighlight{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userhighlight.Table, sqlgraph.NewFieldSpec(userhighlight.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(userhighlight.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(userhighlight.FieldTimestamp, field.TypeString, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.HighlightedText(); ok {
		_spec.SetField(userhighlight.FieldHighlightedText, field.TypeString, value)
		_node.HighlightedText = value
	}
	return _node, _spec
}

// UserHighlightCreateBulk is the builder for creating many UserHighlight entities in bulk.
type UserHighlightCreateBulk struct {
	config
	err      error
	builders []*UserHighlightCreate
}

// Save creates the UserHighlight entities in the database.
func (_c *UserHighlightCreateBulk) Save(ctx context.Context) ([]*UserHighlight, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserHighlight, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserHighlightMutation)
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
func (_c *UserHighlightCreateBulk) SaveX(ctx context.Context) []*UserHighlight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserHighlightCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserHighlightCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
