// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/predicate"
	"github.com/abhisek/replayz/ent/testcaseresult"
)

// TestCaseResultUpdate is the builder for updating TestCaseResult entities.
type TestCaseResultUpdate struct {
	config
	hooks    []Hook
	mutation *TestCaseResultMutation
}

// Where appends a list predicates to the TestCaseResultUpdate builder.
func (_u *TestCaseResultUpdate) Where(ps ...predicate.TestCaseResult) *TestCaseResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskIndex sets the "task_index" field.
func (_u *TestCaseResultUpdate) SetTaskIndex(v int) *TestCaseResultUpdate {
	_u.mutation.ResetTaskIndex()
	_u.mutation.SetTaskIndex(v)
	return _u
}

// SetNillableTaskIndex sets the "task_index" field if the given value is not nil.
func (_u *TestCaseResultUpdate) SetNillableTaskIndex(v *int) *TestCaseResultUpdate {
	if v != nil {
		_u.SetTaskIndex(*v)
	}
	return _u
}

// AddTaskIndex adds value to the "task_index" field.
func (_u *TestCaseResultUpdate) AddTaskIndex(v int) *TestCaseResultUpdate {
	_u.mutation.AddTaskIndex(v)
	return _u
}

// SetMethodID sets the "method_id" field.
func (_u *TestCaseResultUpdate) SetMethodID(v string) *TestCaseResultUpdate {
	_u.mutation.SetMethodID(v)
	return _u
}

// SetNillableMethodID sets the "method_id" field if the given value is not nil.
func (_u *TestCaseResultUpdate) SetNillableMethodID(v *string) *TestCaseResultUpdate {
	if v != nil {
		_u.SetMethodID(*v)
	}
	return _u
}

// ClearMethodID clears the value of the "method_id" field.
func (_u *TestCaseResultUpdate) ClearMethodID() *TestCaseResultUpdate {
	_u.mutation.ClearMethodID()
	return _u
}

// SetTestCaseIndex sets the "test_case_index" field.
func (_u *TestCaseResultUpdate) SetTestCaseIndex(v int) *TestCaseResultUpdate {
	_u.mutation.ResetTestCaseIndex()
	_u.mutation.SetTestCaseIndex(v)
	return _u
}

// SetNillableTestCaseIndex sets the "test_case_index" field if the given value is not nil.
func (_u *TestCaseResultUpdate) SetNillableTestCaseIndex(v *int) *TestCaseResultUpdate {
	if v != nil {
		_u.SetTestCaseIndex(*v)
	}
	return _u
}

// AddTestCaseIndex adds value to the "test_case_index" field.
func (_u *TestCaseResultUpdate) AddTestCaseIndex(v int) *TestCaseResultUpdate {
	_u.mutation.AddTestCaseIndex(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *TestCaseResultUpdate) SetPassed(v bool) *TestCaseResultUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *TestCaseResultUpdate) SetNillablePassed(v *bool) *TestCaseResultUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TestCaseResultUpdate) SetErrorMessage(v string) *TestCaseResultUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TestCaseResultUpdate) SetNillableErrorMessage(v *string) *TestCaseResultUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TestCaseResultUpdate) ClearErrorMessage() *TestCaseResultUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the TestCaseResultMutation object of the builder.
func (_u *TestCaseResultUpdate) Mutation() *TestCaseResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestCaseResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestCaseResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestCaseResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestCaseResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TestCaseResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(testcaseresult.Table, testcaseresult.Columns, sqlgraph.NewFieldSpec(testcaseresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskIndex(); ok {
		_spec.SetField(testcaseresult.FieldTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskIndex(); ok {
		_spec.AddField(testcaseresult.FieldTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MethodID(); ok {
		_spec.SetField(testcaseresult.FieldMethodID, field.TypeString, value)
	}
	if _u.mutation.MethodIDCleared() {
		_spec.ClearField(testcaseresult.FieldMethodID, field.TypeString)
	}
	if value, ok := _u.mutation.TestCaseIndex(); ok {
		_spec.SetField(testcaseresult.FieldTestCaseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTestCaseIndex(); ok {
		_spec.AddField(testcaseresult.FieldTestCaseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(testcaseresult.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(testcaseresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(testcaseresult.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testcaseresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestCaseResultUpdateOne is the builder for updating a single TestCaseResult entity.
type TestCaseResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestCaseResultMutation
}

// SetTaskIndex sets the "task_index" field.
func (_u *TestCaseResultUpdateOne) SetTaskIndex(v int) *TestCaseResultUpdateOne {
	_u.mutation.ResetTaskIndex()
	_u.mutation.SetTaskIndex(v)
	return _u
}

// SetNillableTaskIndex sets the "task_index" field if the given value is not nil.
func (_u *TestCaseResultUpdateOne) SetNillableTaskIndex(v *int) *TestCaseResultUpdateOne {
	if v != nil {
		_u.SetTaskIndex(*v)
	}
	return _u
}

// AddTaskIndex adds value to the "task_index" field.
func (_u *TestCaseResultUpdateOne) AddTaskIndex(v int) *TestCaseResultUpdateOne {
	_u.mutation.AddTaskIndex(v)
	return _u
}

// SetMethodID sets the "method_id" field.
func (_u *TestCaseResultUpdateOne) SetMethodID(v string) *TestCaseResultUpdateOne {
	_u.mutation.SetMethodID(v)
	return _u
}

// SetNillableMethodID sets the "method_id" field if the given value is not nil.
func (_u *TestCaseResultUpdateOne) SetNillableMethodID(v *string) *TestCaseResultUpdateOne {
	if v != nil {
		_u.SetMethodID(*v)
	}
	return _u
}

// ClearMethodID clears the value of the "method_id" field.
func (_u *TestCaseResultUpdateOne) ClearMethodID() *TestCaseResultUpdateOne {
	_u.mutation.ClearMethodID()
	return _u
}

// SetTestCaseIndex sets the "test_case_index" field.
func (_u *TestCaseResultUpdateOne) SetTestCaseIndex(v int) *TestCaseResultUpdateOne {
	_u.mutation.ResetTestCaseIndex()
	_u.mutation.SetTestCaseIndex(v)
	return _u
}

// SetNillableTestCaseIndex sets the "test_case_index" field if the given value is not nil.
func (_u *TestCaseResultUpdateOne) SetNillableTestCaseIndex(v *int) *TestCaseResultUpdateOne {
	if v != nil {
		_u.SetTestCaseIndex(*v)
	}
	return _u
}

// AddTestCaseIndex adds value to the "test_case_index" field.
func (_u *TestCaseResultUpdateOne) AddTestCaseIndex(v int) *TestCaseResultUpdateOne {
	_u.mutation.AddTestCaseIndex(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *TestCaseResultUpdateOne) SetPassed(v bool) *TestCaseResultUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *TestCaseResultUpdateOne) SetNillablePassed(v *bool) *TestCaseResultUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TestCaseResultUpdateOne) SetErrorMessage(v string) *TestCaseResultUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TestCaseResultUpdateOne) SetNillableErrorMessage(v *string) *TestCaseResultUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TestCaseResultUpdateOne) ClearErrorMessage() *TestCaseResultUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the TestCaseResultMutation object of the builder.
func (_u *TestCaseResultUpdateOne) Mutation() *TestCaseResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestCaseResultUpdate builder.
func (_u *TestCaseResultUpdateOne) Where(ps ...predicate.TestCaseResult) *TestCaseResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestCaseResultUpdateOne) Select(field string, fields ...string) *TestCaseResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestCaseResult entity.
func (_u *TestCaseResultUpdateOne) Save(ctx context.Context) (*TestCaseResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestCaseResultUpdateOne) SaveX(ctx context.Context) *TestCaseResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestCaseResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestCaseResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TestCaseResultUpdateOne) sqlSave(ctx context.Context) (_node *TestCaseResult, err error) {
	_spec := sqlgraph.NewUpdateSpec(testcaseresult.Table, testcaseresult.Columns, sqlgraph.NewFieldSpec(testcaseresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestCaseResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testcaseresult.FieldID)
		for _, f := range fields {
			if !testcaseresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testcaseresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskIndex(); ok {
		_spec.SetField(testcaseresult.FieldTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskIndex(); ok {
		_spec.AddField(testcaseresult.FieldTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MethodID(); ok {
		_spec.SetField(testcaseresult.FieldMethodID, field.TypeString, value)
	}
	if _u.mutation.MethodIDCleared() {
		_spec.ClearField(testcaseresult.FieldMethodID, field.TypeString)
	}
	if value, ok := _u.mutation.TestCaseIndex(); ok {
		_spec.SetField(testcaseresult.FieldTestCaseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTestCaseIndex(); ok {
		_spec.AddField(testcaseresult.FieldTestCaseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(testcaseresult.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(testcaseresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(testcaseresult.FieldErrorMessage, field.TypeString)
	}
	_node = &TestCaseResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testcaseresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
