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
	"github.com/abhisek/replayz/ent/taskprogressevent"
)

// TaskProgressEventUpdate is the builder for updating TaskProgressEvent entities.
type TaskProgressEventUpdate struct {
	config
	hooks    []Hook
	mutation *TaskProgressEventMutation
}

// Where appends a list predicates to the TaskProgressEventUpdate builder.
func (_u *TaskProgressEventUpdate) Where(ps ...predicate.TaskProgressEvent) *TaskProgressEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskIndex sets the "task_index" field.
func (_u *TaskProgressEventUpdate) SetTaskIndex(v int) *TaskProgressEventUpdate {
	_u.mutation.ResetTaskIndex()
	_u.mutation.SetTaskIndex(v)
	return _u
}

// SetNillableTaskIndex sets the "task_index" field if the given value is not nil.
func (_u *TaskProgressEventUpdate) SetNillableTaskIndex(v *int) *TaskProgressEventUpdate {
	if v != nil {
		_u.SetTaskIndex(*v)
	}
	return _u
}

// AddTaskIndex adds value to the "task_index" field.
func (_u *TaskProgressEventUpdate) AddTaskIndex(v int) *TaskProgressEventUpdate {
	_u.mutation.AddTaskIndex(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *TaskProgressEventUpdate) SetCompleted(v bool) *TaskProgressEventUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *TaskProgressEventUpdate) SetNillableCompleted(v *bool) *TaskProgressEventUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TaskProgressEventUpdate) SetAttempts(v int) *TaskProgressEventUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TaskProgressEventUpdate) SetNillableAttempts(v *int) *TaskProgressEventUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TaskProgressEventUpdate) AddAttempts(v int) *TaskProgressEventUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetTestCasesPassed sets the "test_cases_passed" field.
func (_u *TaskProgressEventUpdate) SetTestCasesPassed(v int) *TaskProgressEventUpdate {
	_u.mutation.ResetTestCasesPassed()
	_u.mutation.SetTestCasesPassed(v)
	return _u
}

// SetNillableTestCasesPassed sets the "test_cases_passed" field if the given value is not nil.
func (_u *TaskProgressEventUpdate) SetNillableTestCasesPassed(v *int) *TaskProgressEventUpdate {
	if v != nil {
		_u.SetTestCasesPassed(*v)
	}
	return _u
}

// AddTestCasesPassed adds value to the "test_cases_passed" field.
func (_u *TaskProgressEventUpdate) AddTestCasesPassed(v int) *TaskProgressEventUpdate {
	_u.mutation.AddTestCasesPassed(v)
	return _u
}

// SetTotalTestCases sets the "total_test_cases" field.
func (_u *TaskProgressEventUpdate) SetTotalTestCases(v int) *TaskProgressEventUpdate {
	_u.mutation.ResetTotalTestCases()
	_u.mutation.SetTotalTestCases(v)
	return _u
}

// SetNillableTotalTestCases sets the "total_test_cases" field if the given value is not nil.
func (_u *TaskProgressEventUpdate) SetNillableTotalTestCases(v *int) *TaskProgressEventUpdate {
	if v != nil {
		_u.SetTotalTestCases(*v)
	}
	return _u
}

// AddTotalTestCases adds value to the "total_test_cases" field.
func (_u *TaskProgressEventUpdate) AddTotalTestCases(v int) *TaskProgressEventUpdate {
	_u.mutation.AddTotalTestCases(v)
	return _u
}

// Mutation returns the TaskProgressEventMutation object of the builder.
func (_u *TaskProgressEventUpdate) Mutation() *TaskProgressEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskProgressEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskProgressEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskProgressEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskProgressEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaskProgressEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(taskprogressevent.Table, taskprogressevent.Columns, sqlgraph.NewFieldSpec(taskprogressevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskIndex(); ok {
		_spec.SetField(taskprogressevent.FieldTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskIndex(); ok {
		_spec.AddField(taskprogressevent.FieldTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(taskprogressevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(taskprogressevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(taskprogressevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TestCasesPassed(); ok {
		_spec.SetField(taskprogressevent.FieldTestCasesPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTestCasesPassed(); ok {
		_spec.AddField(taskprogressevent.FieldTestCasesPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTestCases(); ok {
		_spec.SetField(taskprogressevent.FieldTotalTestCases, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTestCases(); ok {
		_spec.AddField(taskprogressevent.FieldTotalTestCases, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskprogressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskProgressEventUpdateOne is the builder for updating a single TaskProgressEvent entity.
type TaskProgressEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskProgressEventMutation
}

// SetTaskIndex sets the "task_index" field.
func (_u *TaskProgressEventUpdateOne) SetTaskIndex(v int) *TaskProgressEventUpdateOne {
	_u.mutation.ResetTaskIndex()
	_u.mutation.SetTaskIndex(v)
	return _u
}

// SetNillableTaskIndex sets the "task_index" field if the given value is not nil.
func (_u *TaskProgressEventUpdateOne) SetNillableTaskIndex(v *int) *TaskProgressEventUpdateOne {
	if v != nil {
		_u.SetTaskIndex(*v)
	}
	return _u
}

// AddTaskIndex adds value to the "task_index" field.
func (_u *TaskProgressEventUpdateOne) AddTaskIndex(v int) *TaskProgressEventUpdateOne {
	_u.mutation.AddTaskIndex(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *TaskProgressEventUpdateOne) SetCompleted(v bool) *TaskProgressEventUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *TaskProgressEventUpdateOne) SetNillableCompleted(v *bool) *TaskProgressEventUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TaskProgressEventUpdateOne) SetAttempts(v int) *TaskProgressEventUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TaskProgressEventUpdateOne) SetNillableAttempts(v *int) *TaskProgressEventUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TaskProgressEventUpdateOne) AddAttempts(v int) *TaskProgressEventUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetTestCasesPassed sets the "test_cases_passed" field.
func (_u *TaskProgressEventUpdateOne) SetTestCasesPassed(v int) *TaskProgressEventUpdateOne {
	_u.mutation.ResetTestCasesPassed()
	_u.mutation.SetTestCasesPassed(v)
	return _u
}

// SetNillableTestCasesPassed sets the "test_cases_passed" field if the given value is not nil.
func (_u *TaskProgressEventUpdateOne) SetNillableTestCasesPassed(v *int) *TaskProgressEventUpdateOne {
	if v != nil {
		_u.SetTestCasesPassed(*v)
	}
	return _u
}

// AddTestCasesPassed adds value to the "test_cases_passed" field.
func (_u *TaskProgressEventUpdateOne) AddTestCasesPassed(v int) *TaskProgressEventUpdateOne {
	_u.mutation.AddTestCasesPassed(v)
	return _u
}

// SetTotalTestCases sets the "total_test_cases" field.
func (_u *TaskProgressEventUpdateOne) SetTotalTestCases(v int) *TaskProgressEventUpdateOne {
	_u.mutation.ResetTotalTestCases()
	_u.mutation.SetTotalTestCases(v)
	return _u
}

// SetNillableTotalTestCases sets the "total_test_cases" field if the given value is not nil.
func (_u *TaskProgressEventUpdateOne) SetNillableTotalTestCases(v *int) *TaskProgressEventUpdateOne {
	if v != nil {
		_u.SetTotalTestCases(*v)
	}
	return _u
}

// AddTotalTestCases adds value to the "total_test_cases" field.
func (_u *TaskProgressEventUpdateOne) AddTotalTestCases(v int) *TaskProgressEventUpdateOne {
	_u.mutation.AddTotalTestCases(v)
	return _u
}

// Mutation returns the TaskProgressEventMutation object of the builder.
func (_u *TaskProgressEventUpdateOne) Mutation() *TaskProgressEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskProgressEventUpdate builder.
func (_u *TaskProgressEventUpdateOne) Where(ps ...predicate.TaskProgressEvent) *TaskProgressEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskProgressEventUpdateOne) Select(field string, fields ...string) *TaskProgressEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskProgressEvent entity.
func (_u *TaskProgressEventUpdateOne) Save(ctx context.Context) (*TaskProgressEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskProgressEventUpdateOne) SaveX(ctx context.Context) *TaskProgressEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskProgressEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskProgressEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaskProgressEventUpdateOne) sqlSave(ctx context.Context) (_node *TaskProgressEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(taskprogressevent.Table, taskprogressevent.Columns, sqlgraph.NewFieldSpec(taskprogressevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskProgressEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskprogressevent.FieldID)
		for _, f := range fields {
			if !taskprogressevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskprogressevent.FieldID {
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
		_spec.SetField(taskprogressevent.FieldTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskIndex(); ok {
		_spec.AddField(taskprogressevent.FieldTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(taskprogressevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(taskprogressevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(taskprogressevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TestCasesPassed(); ok {
		_spec.SetField(taskprogressevent.FieldTestCasesPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTestCasesPassed(); ok {
		_spec.AddField(taskprogressevent.FieldTestCasesPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTestCases(); ok {
		_spec.SetField(taskprogressevent.FieldTotalTestCases, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTestCases(); ok {
		_spec.AddField(taskprogressevent.FieldTotalTestCases, field.TypeInt, value)
	}
	_node = &TaskProgressEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskprogressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
