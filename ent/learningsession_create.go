// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/learningsession"
)

// LearningSessionCreate is the builder for creating a LearningSession entity.
type LearningSessionCreate struct {
	config
	mutation *LearningSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *LearningSessionCreate) SetSessionID(v string) *LearningSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *LearningSessionCreate) SetLessonID(v string) *LearningSessionCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *LearningSessionCreate) SetStatus(v string) *LearningSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableStatus(v *string) *LearningSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *LearningSessionCreate) SetStartedAt(v string) *LearningSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *LearningSessionCreate) SetCompletedAt(v string) *LearningSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableCompletedAt(v *string) *LearningSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *LearningSessionCreate) SetDurationMs(v int64) *LearningSessionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableDurationMs(v *int64) *LearningSessionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// Mutation returns the LearningSessionMutation object of the builder.
func (_c *LearningSessionCreate) Mutation() *LearningSessionMutation {
	return _c.mutation
}

// Save creates the LearningSession in the database.
func (_c *LearningSessionCreate) Save(ctx context.Context) (*LearningSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningSessionCreate) SaveX(ctx context.Context) *LearningSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := learningsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := learningsession.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LearningSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := learningsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "LearningSession.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := learningsession.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LearningSession.status"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "LearningSession.started_at"`)}
	}
	if v, ok := _c.mutation.StartedAt(); ok {
		if err := learningsession.StartedAtValidator(v); err != nil {
			return &ValidationError{Name: "started_at", err: fmt.Errorf(`ent: validator failed for field "LearningSession.started_at": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "LearningSession.duration_ms"`)}
	}
	return nil
}

func (_c *LearningSessionCreate) sqlSave(ctx context.Context) (*LearningSession, error) {
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

func (_c *LearningSessionCreate) createSpec() (*LearningSession, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningsession.Table, sqlgraph.NewFieldSpec(learningsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(learningsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(learningsession.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(learningsession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(learningsession.FieldStartedAt, field.TypeString, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(learningsession.FieldCompletedAt, field.TypeString, value)
		_node.CompletedAt = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(learningsession.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	return _node, _spec
}

// LearningSessionCreateBulk is the builder for creating many LearningSession entities in bulk.
type LearningSessionCreateBulk struct {
	config
	err      error
	builders []*LearningSessionCreate
}

// Save creates the LearningSession entities in the database.
func (_c *LearningSessionCreateBulk) Save(ctx context.Context) ([]*LearningSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningSessionMutation)
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
func (_c *LearningSessionCreateBulk) SaveX(ctx context.Context) []*LearningSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
