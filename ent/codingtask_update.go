// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/codingtask"
	"github.com/abhisek/replayz/ent/predicate"
	"github.com/abhisek/replayz/ent/schema"
)

// CodingTaskUpdate is the builder for updating CodingTask entities.
type CodingTaskUpdate struct {
	config
	hooks    []Hook
	mutation *CodingTaskMutation
}

// Where appends a list predicates to the CodingTaskUpdate builder.
func (_u *CodingTaskUpdate) Where(ps ...predicate.CodingTask) *CodingTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *CodingTaskUpdate) SetLessonID(v string) *CodingTaskUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *CodingTaskUpdate) SetNillableLessonID(v *string) *CodingTaskUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetTaskOrder sets the "task_order" field.
func (_u *CodingTaskUpdate) SetTaskOrder(v int) *CodingTaskUpdate {
	_u.mutation.ResetTaskOrder()
	_u.mutation.SetTaskOrder(v)
	return _u
}

// SetNillableTaskOrder sets the "task_order" field if the given value is not nil.
func (_u *CodingTaskUpdate) SetNillableTaskOrder(v *int) *CodingTaskUpdate {
	if v != nil {
		_u.SetTaskOrder(*v)
	}
	return _u
}

// AddTaskOrder adds value to the "task_order" field.
func (_u *CodingTaskUpdate) AddTaskOrder(v int) *CodingTaskUpdate {
	_u.mutation.AddTaskOrder(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CodingTaskUpdate) SetTitle(v string) *CodingTaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CodingTaskUpdate) SetNillableTitle(v *string) *CodingTaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CodingTaskUpdate) SetDifficulty(v string) *CodingTaskUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CodingTaskUpdate) SetNillableDifficulty(v *string) *CodingTaskUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *CodingTaskUpdate) ClearDifficulty() *CodingTaskUpdate {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetDescription sets the "description" field.
func (_u *CodingTaskUpdate) SetDescription(v string) *CodingTaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CodingTaskUpdate) SetNillableDescription(v *string) *CodingTaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CodingTaskUpdate) ClearDescription() *CodingTaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetMethodName sets the "method_name" field.
func (_u *CodingTaskUpdate) SetMethodName(v string) *CodingTaskUpdate {
	_u.mutation.SetMethodName(v)
	return _u
}

// SetNillableMethodName sets the "method_name" field if the given value is not nil.
func (_u *CodingTaskUpdate) SetNillableMethodName(v *string) *CodingTaskUpdate {
	if v != nil {
		_u.SetMethodName(*v)
	}
	return _u
}

// ClearMethodName clears the value of the "method_name" field.
func (_u *CodingTaskUpdate) ClearMethodName() *CodingTaskUpdate {
	_u.mutation.ClearMethodName()
	return _u
}

// SetStarterCode sets the "starter_code" field.
func (_u *CodingTaskUpdate) SetStarterCode(v string) *CodingTaskUpdate {
	_u.mutation.SetStarterCode(v)
	return _u
}

// SetNillableStarterCode sets the "starter_code" field if the given value is not nil.
func (_u *CodingTaskUpdate) SetNillableStarterCode(v *string) *CodingTaskUpdate {
	if v != nil {
		_u.SetStarterCode(*v)
	}
	return _u
}

// ClearStarterCode clears the value of the "starter_code" field.
func (_u *CodingTaskUpdate) ClearStarterCode() *CodingTaskUpdate {
	_u.mutation.ClearStarterCode()
	return _u
}

// SetExamples sets the "examples" field.
func (_u *CodingTaskUpdate) SetExamples(v []schema.TaskExample) *CodingTaskUpdate {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *CodingTaskUpdate) AppendExamples(v []schema.TaskExample) *CodingTaskUpdate {
	_u.mutation.AppendExamples(v)
	return _u
}

// ClearExamples clears the value of the "examples" field.
func (_u *CodingTaskUpdate) ClearExamples() *CodingTaskUpdate {
	_u.mutation.ClearExamples()
	return _u
}

// Mutation returns the CodingTaskMutation object of the builder.
func (_u *CodingTaskUpdate) Mutation() *CodingTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CodingTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodingTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CodingTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodingTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CodingTaskUpdate) check() error {
	if v, ok := _u.mutation.LessonID(); ok {
		if err := codingtask.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "CodingTask.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := codingtask.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CodingTask.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CodingTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(codingtask.Table, codingtask.Columns, sqlgraph.NewFieldSpec(codingtask.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(codingtask.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskOrder(); ok {
		_spec.SetField(codingtask.FieldTaskOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskOrder(); ok {
		_spec.AddField(codingtask.FieldTaskOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(codingtask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(codingtask.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(codingtask.FieldDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(codingtask.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(codingtask.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.MethodName(); ok {
		_spec.SetField(codingtask.FieldMethodName, field.TypeString, value)
	}
	if _u.mutation.MethodNameCleared() {
		_spec.ClearField(codingtask.FieldMethodName, field.TypeString)
	}
	if value, ok := _u.mutation.StarterCode(); ok {
		_spec.SetField(codingtask.FieldStarterCode, field.TypeString, value)
	}
	if _u.mutation.StarterCodeCleared() {
		_spec.ClearField(codingtask.FieldStarterCode, field.TypeString)
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(codingtask.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, codingtask.FieldExamples, value)
		})
	}
	if _u.mutation.ExamplesCleared() {
		_spec.ClearField(codingtask.FieldExamples, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codingtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CodingTaskUpdateOne is the builder for updating a single CodingTask entity.
type CodingTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CodingTaskMutation
}

// SetLessonID sets the "lesson_id" field.
func (_u *CodingTaskUpdateOne) SetLessonID(v string) *CodingTaskUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *CodingTaskUpdateOne) SetNillableLessonID(v *string) *CodingTaskUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetTaskOrder sets the "task_order" field.
func (_u *CodingTaskUpdateOne) SetTaskOrder(v int) *CodingTaskUpdateOne {
	_u.mutation.ResetTaskOrder()
	_u.mutation.SetTaskOrder(v)
	return _u
}

// SetNillableTaskOrder sets the "task_order" field if the given value is not nil.
func (_u *CodingTaskUpdateOne) SetNillableTaskOrder(v *int) *CodingTaskUpdateOne {
	if v != nil {
		_u.SetTaskOrder(*v)
	}
	return _u
}

// AddTaskOrder adds value to the "task_order" field.
func (_u *CodingTaskUpdateOne) AddTaskOrder(v int) *CodingTaskUpdateOne {
	_u.mutation.AddTaskOrder(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CodingTaskUpdateOne) SetTitle(v string) *CodingTaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CodingTaskUpdateOne) SetNillableTitle(v *string) *CodingTaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CodingTaskUpdateOne) SetDifficulty(v string) *CodingTaskUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CodingTaskUpdateOne) SetNillableDifficulty(v *string) *CodingTaskUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *CodingTaskUpdateOne) ClearDifficulty() *CodingTaskUpdateOne {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetDescription sets the "description" field.
func (_u *CodingTaskUpdateOne) SetDescription(v string) *CodingTaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CodingTaskUpdateOne) SetNillableDescription(v *string) *CodingTaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CodingTaskUpdateOne) ClearDescription() *CodingTaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetMethodName sets the "method_name" field.
func (_u *CodingTaskUpdateOne) SetMethodName(v string) *CodingTaskUpdateOne {
	_u.mutation.SetMethodName(v)
	return _u
}

// SetNillableMethodName sets the "method_name" field if the given value is not nil.
func (_u *CodingTaskUpdateOne) SetNillableMethodName(v *string) *CodingTaskUpdateOne {
	if v != nil {
		_u.SetMethodName(*v)
	}
	return _u
}

// ClearMethodName clears the value of the "method_name" field.
func (_u *CodingTaskUpdateOne) ClearMethodName() *CodingTaskUpdateOne {
	_u.mutation.ClearMethodName()
	return _u
}

// SetStarterCode sets the "starter_code" field.
func (_u *CodingTaskUpdateOne) SetStarterCode(v string) *CodingTaskUpdateOne {
	_u.mutation.SetStarterCode(v)
	return _u
}

// SetNillableStarterCode sets the "starter_code" field if the given value is not nil.
func (_u *CodingTaskUpdateOne) SetNillableStarterCode(v *string) *CodingTaskUpdateOne {
	if v != nil {
		_u.SetStarterCode(*v)
	}
	return _u
}

// ClearStarterCode clears the value of the "starter_code" field.
func (_u *CodingTaskUpdateOne) ClearStarterCode() *CodingTaskUpdateOne {
	_u.mutation.ClearStarterCode()
	return _u
}

// SetExamples sets the "examples" field.
func (_u *CodingTaskUpdateOne) SetExamples(v []schema.TaskExample) *CodingTaskUpdateOne {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *CodingTaskUpdateOne) AppendExamples(v []schema.TaskExample) *CodingTaskUpdateOne {
	_u.mutation.AppendExamples(v)
	return _u
}

// ClearExamples clears the value of the "examples" field.
func (_u *CodingTaskUpdateOne) ClearExamples() *CodingTaskUpdateOne {
	_u.mutation.ClearExamples()
	return _u
}

// Mutation returns the CodingTaskMutation object of the builder.
func (_u *CodingTaskUpdateOne) Mutation() *CodingTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the CodingTaskUpdate builder.
func (_u *CodingTaskUpdateOne) Where(ps ...predicate.CodingTask) *CodingTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CodingTaskUpdateOne) Select(field string, fields ...string) *CodingTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CodingTask entity.
func (_u *CodingTaskUpdateOne) Save(ctx context.Context) (*CodingTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodingTaskUpdateOne) SaveX(ctx context.Context) *CodingTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CodingTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodingTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CodingTaskUpdateOne) check() error {
	if v, ok := _u.mutation.LessonID(); ok {
		if err := codingtask.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "CodingTask.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := codingtask.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CodingTask.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CodingTaskUpdateOne) sqlSave(ctx context.Context) (_node *CodingTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(codingtask.Table, codingtask.Columns, sqlgraph.NewFieldSpec(codingtask.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CodingTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, codingtask.FieldID)
		for _, f := range fields {
			if !codingtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != codingtask.FieldID {
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
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(codingtask.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskOrder(); ok {
		_spec.SetField(codingtask.FieldTaskOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskOrder(); ok {
		_spec.AddField(codingtask.FieldTaskOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(codingtask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(codingtask.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(codingtask.FieldDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(codingtask.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(codingtask.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.MethodName(); ok {
		_spec.SetField(codingtask.FieldMethodName, field.TypeString, value)
	}
	if _u.mutation.MethodNameCleared() {
		_spec.ClearField(codingtask.FieldMethodName, field.TypeString)
	}
	if value, ok := _u.mutation.StarterCode(); ok {
		_spec.SetField(codingtask.FieldStarterCode, field.TypeString, value)
	}
	if _u.mutation.StarterCodeCleared() {
		_spec.ClearField(codingtask.FieldStarterCode, field.TypeString)
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(codingtask.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, codingtask.FieldExamples, value)
		})
	}
	if _u.mutation.ExamplesCleared() {
		_spec.ClearField(codingtask.FieldExamples, field.TypeJSON)
	}
	_node = &CodingTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codingtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
