// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/testcaseresult"
)

// TestCaseResultCreate is the builder for creating a TestCaseResult entity.
type TestCaseResultCreate struct {
	config
	mutation *TestCaseResultMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *TestCaseResultCreate) SetSessionID(v string) *TestCaseResultCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TestCaseResultCreate) SetTimestamp(v string) *TestCaseResultCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetTaskIndex sets the "task_index" field.
func (_c *TestCaseResultCreate) SetTaskIndex(v int) *TestCaseResultCreate {
	_c.mutation.SetTaskIndex(v)
	return _c
}

// SetMethodID sets the "method_id" field.
func (_c *TestCaseResultCreate) SetMethodID(v string) *TestCaseResultCreate {
	_c.mutation.SetMethodID(v)
	return _c
}

// SetNillableMethodID sets the "method_id" field if the given value is not nil.
func (_c *TestCaseResultCreate) SetNillableMethodID(v *string) *TestCaseResultCreate {
	if v != nil {
		_c.SetMethodID(*v)
	}
	return _c
}

// SetTestCaseIndex sets the "test_case_index" field.
func (_c *TestCaseResultCreate) SetTestCaseIndex(v int) *TestCaseResultCreate {
	_c.mutation.SetTestCaseIndex(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *TestCaseResultCreate) SetPassed(v bool) *TestCaseResultCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TestCaseResultCreate) SetErrorMessage(v string) *TestCaseResultCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TestCaseResultCreate) SetNillableErrorMessage(v *string) *TestCaseResultCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the TestCaseResultMutation object of the builder.
func (_c *TestCaseResultCreate) Mutation() *TestCaseResultMutation {
	return _c.mutation
}

// Save creates the TestCaseResult in the database.
func (_c *TestCaseResultCreate) Save(ctx context.Context) (*TestCaseResult, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestCaseResultCreate) SaveX(ctx context.Context) *TestCaseResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestCaseResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestCaseResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestCaseResultCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TestCaseResult.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := testcaseresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TestCaseResult.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TestCaseResult.timestamp"`)}
	}
	if v, ok := _c.mutation.Timestamp(); ok {
		if err := testcaseresult.TimestampValidator(v); err != nil {
			return &ValidationError{Name: "timestamp", err: fmt.Errorf(`ent: validator failed for field "TestCaseResult.timestamp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskIndex(); !ok {
		return &ValidationError{Name: "task_index", err: errors.New(`ent: missing required field "TestCaseResult.task_index"`)}
	}
	if _, ok := _c.mutation.TestCaseIndex(); !ok {
		return &ValidationError{Name: "test_case_index", err: errors.New(`ent: missing required field "TestCaseResult.test_case_index"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "TestCaseResult.passed"`)}
	}
	return nil
}

func (_c *TestCaseResultCreate) sqlSave(ctx context.Context) (*TestCaseResult, error) {
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

func (_c *TestCaseResultCreate) createSpec() (*TestCaseResult, *sqlgraph.CreateSpec) {
	var (
		_node = &TestCaseResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testcaseresult.Table, sqlgraph.NewFieldSpec(testcaseresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(testcaseresult.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(testcaseresult.FieldTimestamp, field.TypeString, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.TaskIndex(); ok {
		_spec.SetField(testcaseresult.FieldTaskIndex, field.TypeInt, value)
		_node.TaskIndex = value
	}
	if value, ok := _c.mutation.MethodID(); ok {
		_spec.SetField(testcaseresult.FieldMethodID, field.TypeString, value)
		_node.MethodID = value
	}
	if value, ok := _c.mutation.TestCaseIndex(); ok {
		_spec.SetField(testcaseresult.FieldTestCaseIndex, field.TypeInt, value)
		_node.TestCaseIndex = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(testcaseresult.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(testcaseresult.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// TestCaseResultCreateBulk is the builder for creating many TestCaseResult entities in bulk.
type TestCaseResultCreateBulk struct {
	config
	err      error
	builders []*TestCaseResultCreate
}

// Save creates the TestCaseResult entities in the database.
func (_c *TestCaseResultCreateBulk) Save(ctx context.Context) ([]*TestCaseResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestCaseResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestCaseResultMutation)
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
func (_c *TestCaseResultCreateBulk) SaveX(ctx context.Context) []*TestCaseResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestCaseResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestCaseResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
