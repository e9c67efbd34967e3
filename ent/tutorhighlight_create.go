// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/tutorhighlight"
)

// TutorHighlightCreate is the builder for creating a TutorHighlight entity.
type TutorHighlightCreate struct {
	config
	mutation *TutorHighlightMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *TutorHighlightCreate) SetSessionID(v string) *TutorHighlightCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TutorHighlightCreate) SetTimestamp(v string) *TutorHighlightCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetLineNumber sets the "line_number" field.
func (_c *TutorHighlightCreate) SetLineNumber(v int) *TutorHighlightCreate {
	_c.mutation.SetLineNumber(v)
	return _c
}

// Mutation returns the TutorHighlightMutation object of the builder.
func (_c *TutorHighlightCreate) Mutation() *TutorHighlightMutation {
	return _c.mutation
}

// Save creates the TutorHighlight in the database.
func (_c *TutorHighlightCreate) Save(ctx context.Context) (*TutorHighlight, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TutorHighlightCreate) SaveX(ctx context.Context) *TutorHighlight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorHighlightCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorHighlightCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TutorHighlightCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TutorHighlight.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := tutorhighlight.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TutorHighlight.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TutorHighlight.timestamp"`)}
	}
	if v, ok := _c.mutation.Timestamp(); ok {
		if err := tutorhighlight.TimestampValidator(v); err != nil {
			return &ValidationError{Name: "timestamp", err: fmt.Errorf(`ent: validator failed for field "TutorHighlight.timestamp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LineNumber(); !ok {
		return &ValidationError{Name: "line_number", err: errors.New(`ent: missing required field "TutorHighlight.line_number"`)}
	}
	return nil
}

func (_c *TutorHighlightCreate) sqlSave(ctx context.Context) (*TutorHighlight, error) {
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

func (_c *TutorHighlightCreate) createSpec() (*TutorHighlight, *sqlgraph.CreateSpec) {
	var (
		_node = &TutorHighlight{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tutorhighlight.Table, sqlgraph.NewFieldSpec(tutorhighlight.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(tutorhighlight.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(tutorhighlight.FieldTimestamp, field.TypeString, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LineNumber(); ok {
		_spec.SetField(tutorhighlight.FieldLineNumber, field.TypeInt, value)
		_node.LineNumber = value
	}
	return _node, _spec
}

// TutorHighlightCreateBulk is the builder for creating many TutorHighlight entities in bulk.
type TutorHighlightCreateBulk struct {
	config
	err      error
	builders []*TutorHighlightCreate
}

// Save creates the TutorHighlight entities in the database.
func (_c *TutorHighlightCreateBulk) Save(ctx context.Context) ([]*TutorHighlight, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TutorHighlight, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TutorHighlightMutation)
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
func (_c *TutorHighlightCreateBulk) SaveX(ctx context.Context) []*TutorHighlight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorHighlightCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorHighlightCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
