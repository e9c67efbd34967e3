// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/tutorconversation"
)

// TutorConversationCreate is the builder for creating a TutorConversation entity.
type TutorConversationCreate struct {
	config
	mutation *TutorConversationMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *TutorConversationCreate) SetSessionID(v string) *TutorConversationCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *TutorConversationCreate) SetConversationID(v string) *TutorConversationCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *TutorConversationCreate) SetStartTime(v string) *TutorConversationCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *TutorConversationCreate) SetEndTime(v string) *TutorConversationCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *TutorConversationCreate) SetNillableEndTime(v *string) *TutorConversationCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// Mutation returns the TutorConversationMutation object of the builder.
func (_c *TutorConversationCreate) Mutation() *TutorConversationMutation {
	return _c.mutation
}

// Save creates the TutorConversation in the database.
func (_c *TutorConversationCreate) Save(ctx context.Context) (*TutorConversation, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TutorConversationCreate) SaveX(ctx context.Context) *TutorConversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorConversationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorConversationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TutorConversationCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TutorConversation.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := tutorconversation.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TutorConversation.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "TutorConversation.conversation_id"`)}
	}
	if v, ok := _c.mutation.ConversationID(); ok {
		if err := tutorconversation.ConversationIDValidator(v); err != nil {
			return &ValidationError{Name: "conversation_id", err: fmt.Errorf(`ent: validator failed for field "TutorConversation.conversation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "TutorConversation.start_time"`)}
	}
	if v, ok := _c.mutation.StartTime(); ok {
		if err := tutorconversation.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`ent: validator failed for field "TutorConversation.start_time": %w`, err)}
		}
	}
	return nil
}

func (_c *TutorConversationCreate) sqlSave(ctx context.Context) (*TutorConversation, error) {
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

func (_c *TutorConversationCreate) createSpec() (*TutorConversation, *sqlgraph.CreateSpec) {
	var (
		_node = &TutorConversation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tutorconversation.Table, sqlgraph.NewFieldSpec(tutorconversation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(tutorconversation.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(tutorconversation.FieldConversationID, field.TypeString, value)
		_node.ConversationID = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(tutorconversation.FieldStartTime, field.TypeString, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(tutorconversation.FieldEndTime, field.TypeString, value)
		_node.EndTime = value
	}
	return _node, _spec
}

// TutorConversationCreateBulk is the builder for creating many TutorConversation entities in bulk.
type TutorConversationCreateBulk struct {
	config
	err      error
	builders []*TutorConversationCreate
}

// Save creates the TutorConversation entities in the database.
func (_c *TutorConversationCreateBulk) Save(ctx context.Context) ([]*TutorConversation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TutorConversation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TutorConversationMutation)
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
func (_c *TutorConversationCreateBulk) SaveX(ctx context.Context) []*TutorConversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorConversationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorConversationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
