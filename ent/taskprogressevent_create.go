// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/taskprogressevent"
)

// TaskProgressEventCreate is the builder for creating a TaskProgressEvent entity.
type TaskProgressEventCreate struct {
	config
	mutation *TaskProgressEventMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *TaskProgressEventCreate) SetSessionID(v string) *TaskProgressEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TaskProgressEventCreate) SetTimestamp(v string) *TaskProgressEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetTaskIndex sets the "task_index" field.
func (_c *TaskProgressEventCreate) SetTaskIndex(v int) *TaskProgressEventCreate {
	_c.mutation.SetTaskIndex(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *TaskProgressEventCreate) SetCompleted(v bool) *TaskProgressEventCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *TaskProgressEventCreate) SetNillableCompleted(v *bool) *TaskProgressEventCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *TaskProgressEventCreate) SetAttempts(v int) *TaskProgressEventCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *TaskProgressEventCreate) SetNillableAttempts(v *int) *TaskProgressEventCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetTestCasesPassed sets the "test_cases_passed" field.
func (_c *TaskProgressEventCreate) SetTestCasesPassed(v int) *TaskProgressEventCreate {
	_c.mutation.SetTestCasesPassed(v)
	return _c
}

// SetNillableTestCasesPassed sets the "test_cases_passed" field if the given value is not nil.
func (_c *TaskProgressEventCreate) SetNillableTestCasesPassed(v *int) *TaskProgressEventCreate {
	if v != nil {
		_c.SetTestCasesPassed(*v)
	}
	return _c
}

// SetTotalTestCases sets the "total_test_cases" field.
func (_c *TaskProgressEventCreate) SetTotalTestCases(v int) *TaskProgressEventCreate {
	_c.mutation.SetTotalTestCases(v)
	return _c
}

// SetNillableTotalTestCases sets the "total_test_cases" field if the given value is not nil.
func (_c *TaskProgressEventCreate) SetNillableTotalTestCases(v *int) *TaskProgressEventCreate {
	if v != nil {
		_c.SetTotalTestCases(*v)
	}
	return _c
}

// Mutation returns the TaskProgressEventMutation object of the builder.
func (_c *TaskProgressEventCreate) Mutation() *TaskProgressEventMutation {
	return _c.mutation
}

// Save creates the TaskProgressEvent in the database.
func (_c *TaskProgressEventCreate) Save(ctx context.Context) (*TaskProgressEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskProgressEventCreate) SaveX(ctx context.Context) *TaskProgressEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskProgressEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskProgressEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskProgressEventCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := taskprogressevent.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := taskprogressevent.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.TestCasesPassed(); !ok {
		v := taskprogressevent.DefaultTestCasesPassed
		_c.mutation.SetTestCasesPassed(v)
	}
	if _, ok := _c.mutation.TotalTestCases(); !ok {
		v := taskprogressevent.DefaultTotalTestCases
		_c.mutation.SetTotalTestCases(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskProgressEventCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TaskProgressEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := taskprogressevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TaskProgressEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TaskProgressEvent.timestamp"`)}
	}
	if v, ok := _c.mutation.Timestamp(); ok {
		if err := taskprogressevent.TimestampValidator(v); err != nil {
			return &ValidationError{Name: "timestamp", err: fmt.Errorf(`ent: validator failed for field "TaskProgressEvent.timestamp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskIndex(); !ok {
		return &ValidationError{Name: "task_index", err: errors.New(`ent: missing required field "TaskProgressEvent.task_index"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "TaskProgressEvent.completed"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "TaskProgressEvent.attempts"`)}
	}
	if _, ok := _c.mutation.TestCasesPassed(); !ok {
		return &ValidationError{Name: "test_cases_passed", err: errors.New(`ent: missing required field "TaskProgressEvent.test_cases_passed"`)}
	}
	if _, ok := _c.mutation.TotalTestCases(); !ok {
		return &ValidationError{Name: "total_test_cases", err: errors.New(`ent: missing required field "TaskProgressEvent.total_test_cases"`)}
	}
	return nil
}

func (_c *TaskProgressEventCreate) sqlSave(ctx context.Context) (*TaskProgressEvent, error) {
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

func (_c *TaskProgressEventCreate) createSpec() (*TaskProgressEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskProgressEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskprogressevent.Table, sqlgraph.NewFieldSpec(taskprogressevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(taskprogressevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(taskprogressevent.FieldTimestamp, field.TypeString, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.TaskIndex(); ok {
		_spec.SetField(taskprogressevent.FieldTaskIndex, field.TypeInt, value)
		_node.TaskIndex = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(taskprogressevent.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(taskprogressevent.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.TestCasesPassed(); ok {
		_spec.SetField(taskprogressevent.FieldTestCasesPassed, field.TypeInt, value)
		_node.TestCasesPassed = value
	}
	if value, ok := _c.mutation.TotalTestCases(); ok {
		_spec.SetField(taskprogressevent.FieldTotalTestCases, field.TypeInt, value)
		_node.TotalTestCases = value
	}
	return _node, _spec
}

// TaskProgressEventCreateBulk is the builder for creating many TaskProgressEvent entities in bulk.
type TaskProgressEventCreateBulk struct {
	config
	err      error
	builders []*TaskProgressEventCreate
}

// Save creates the TaskProgressEvent entities in the database.
func (_c *TaskProgressEventCreateBulk) Save(ctx context.Context) ([]*TaskProgressEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskProgressEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskProgressEventMutation)
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
func (_c *TaskProgressEventCreateBulk) SaveX(ctx context.Context) []*TaskProgressEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskProgressEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskProgressEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
