// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/codesnapshot"
	"github.com/abhisek/replayz/ent/predicate"
)

// CodeSnapshotUpdate is the builder for updating CodeSnapshot entities.
type CodeSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *CodeSnapshotMutation
}

// Where appends a list predicates to the CodeSnapshotUpdate builder.
func (_u *CodeSnapshotUpdate) Where(ps ...predicate.CodeSnapshot) *CodeSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskIndex sets the "task_index" field.
func (_u *CodeSnapshotUpdate) SetTaskIndex(v int) *CodeSnapshotUpdate {
	_u.mutation.ResetTaskIndex()
	_u.mutation.SetTaskIndex(v)
	return _u
}

// SetNillableTaskIndex sets the "task_index" field if the given value is not nil.
func (_u *CodeSnapshotUpdate) SetNillableTaskIndex(v *int) *CodeSnapshotUpdate {
	if v != nil {
		_u.SetTaskIndex(*v)
	}
	return _u
}

// AddTaskIndex adds value to the "task_index" field.
func (_u *CodeSnapshotUpdate) AddTaskIndex(v int) *CodeSnapshotUpdate {
	_u.mutation.AddTaskIndex(v)
	return _u
}

// SetMethodID sets the "method_id" field.
func (_u *CodeSnapshotUpdate) SetMethodID(v string) *CodeSnapshotUpdate {
	_u.mutation.SetMethodID(v)
	return _u
}

// SetNillableMethodID sets the "method_id" field if the given value is not nil.
func (_u *CodeSnapshotUpdate) SetNillableMethodID(v *string) *CodeSnapshotUpdate {
	if v != nil {
		_u.SetMethodID(*v)
	}
	return _u
}

// ClearMethodID clears the value of the "method_id" field.
func (_u *CodeSnapshotUpdate) ClearMethodID() *CodeSnapshotUpdate {
	_u.mutation.ClearMethodID()
	return _u
}

// SetCodeContent sets the "code_content" field.
func (_u *CodeSnapshotUpdate) SetCodeContent(v string) *CodeSnapshotUpdate {
	_u.mutation.SetCodeContent(v)
	return _u
}

// SetNillableCodeContent sets the "code_content" field if the given value is not nil.
func (_u *CodeSnapshotUpdate) SetNillableCodeContent(v *string) *CodeSnapshotUpdate {
	if v != nil {
		_u.SetCodeContent(*v)
	}
	return _u
}

// Mutation returns the CodeSnapshotMutation object of the builder.
func (_u *CodeSnapshotUpdate) Mutation() *CodeSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CodeSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodeSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CodeSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodeSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CodeSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(codesnapshot.Table, codesnapshot.Columns, sqlgraph.NewFieldSpec(codesnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskIndex(); ok {
		_spec.SetField(codesnapshot.FieldTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskIndex(); ok {
		_spec.AddField(codesnapshot.FieldTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MethodID(); ok {
		_spec.SetField(codesnapshot.FieldMethodID, field.TypeString, value)
	}
	if _u.mutation.MethodIDCleared() {
		_spec.ClearField(codesnapshot.FieldMethodID, field.TypeString)
	}
	if value, ok := _u.mutation.CodeContent(); ok {
		_spec.SetField(codesnapshot.FieldCodeContent, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CodeSnapshotUpdateOne is the builder for updating a single CodeSnapshot entity.
type CodeSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CodeSnapshotMutation
}

// SetTaskIndex sets the "task_index" field.
func (_u *CodeSnapshotUpdateOne) SetTaskIndex(v int) *CodeSnapshotUpdateOne {
	_u.mutation.ResetTaskIndex()
	_u.mutation.SetTaskIndex(v)
	return _u
}

// SetNillableTaskIndex sets the "task_index" field if the given value is not nil.
func (_u *CodeSnapshotUpdateOne) SetNillableTaskIndex(v *int) *CodeSnapshotUpdateOne {
	if v != nil {
		_u.SetTaskIndex(*v)
	}
	return _u
}

// AddTaskIndex adds value to the "task_index" field.
func (_u *CodeSnapshotUpdateOne) AddTaskIndex(v int) *CodeSnapshotUpdateOne {
	_u.mutation.AddTaskIndex(v)
	return _u
}

// SetMethodID sets the "method_id" field.
func (_u *CodeSnapshotUpdateOne) SetMethodID(v string) *CodeSnapshotUpdateOne {
	_u.mutation.SetMethodID(v)
	return _u
}

// SetNillableMethodID sets the "method_id" field if the given value is not nil.
func (_u *CodeSnapshotUpdateOne) SetNillableMethodID(v *string) *CodeSnapshotUpdateOne {
	if v != nil {
		_u.SetMethodID(*v)
	}
	return _u
}

// ClearMethodID clears the value of the "method_id" field.
func (_u *CodeSnapshotUpdateOne) ClearMethodID() *CodeSnapshotUpdateOne {
	_u.mutation.ClearMethodID()
	return _u
}

// SetCodeContent sets the "code_content" field.
func (_u *CodeSnapshotUpdateOne) SetCodeContent(v string) *CodeSnapshotUpdateOne {
	_u.mutation.SetCodeContent(v)
	return _u
}

// SetNillableCodeContent sets the "code_content" field if the given value is not nil.
func (_u *CodeSnapshotUpdateOne) SetNillableCodeContent(v *string) *CodeSnapshotUpdateOne {
	if v != nil {
		_u.SetCodeContent(*v)
	}
	return _u
}

// Mutation returns the CodeSnapshotMutation object of the builder.
func (_u *CodeSnapshotUpdateOne) Mutation() *CodeSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the CodeSnapshotUpdate builder.
func (_u *CodeSnapshotUpdateOne) Where(ps ...predicate.CodeSnapshot) *CodeSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CodeSnapshotUpdateOne) Select(field string, fields ...string) *CodeSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CodeSnapshot entity.
func (_u *CodeSnapshotUpdateOne) Save(ctx context.Context) (*CodeSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodeSnapshotUpdateOne) SaveX(ctx context.Context) *CodeSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CodeSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodeSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CodeSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *CodeSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(codesnapshot.Table, codesnapshot.Columns, sqlgraph.NewFieldSpec(codesnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CodeSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, codesnapshot.FieldID)
		for _, f := range fields {
			if !codesnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != codesnapshot.FieldID {
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
		_spec.SetField(codesnapshot.FieldTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskIndex(); ok {
		_spec.AddField(codesnapshot.FieldTaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MethodID(); ok {
		_spec.SetField(codesnapshot.FieldMethodID, field.TypeString, value)
	}
	if _u.mutation.MethodIDCleared() {
		_spec.ClearField(codesnapshot.FieldMethodID, field.TypeString)
	}
	if value, ok := _u.mutation.CodeContent(); ok {
		_spec.SetField(codesnapshot.FieldCodeContent, field.TypeString, value)
	}
	_node = &CodeSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
