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
	"github.com/abhisek/replayz/ent/tutorconversation"
)

// TutorConversationUpdate is the builder for updating TutorConversation entities.
type TutorConversationUpdate struct {
	config
	hooks    []Hook
	mutation *TutorConversationMutation
}

// Where appends a list predicates to the TutorConversationUpdate builder.
func (_u *TutorConversationUpdate) Where(ps ...predicate.TutorConversation) *TutorConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *TutorConversationUpdate) SetConversationID(v string) *TutorConversationUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *TutorConversationUpdate) SetNillableConversationID(v *string) *TutorConversationUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TutorConversationUpdate) SetStartTime(v string) *TutorConversationUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TutorConversationUpdate) SetNillableStartTime(v *string) *TutorConversationUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TutorConversationUpdate) SetEndTime(v string) *TutorConversationUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TutorConversationUpdate) SetNillableEndTime(v *string) *TutorConversationUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *TutorConversationUpdate) ClearEndTime() *TutorConversationUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// Mutation returns the TutorConversationMutation object of the builder.
func (_u *TutorConversationUpdate) Mutation() *TutorConversationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TutorConversationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TutorConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorConversationUpdate) check() error {
	if v, ok := _u.mutation.ConversationID(); ok {
		if err := tutorconversation.ConversationIDValidator(v); err != nil {
			return &ValidationError{Name: "conversation_id", err: fmt.Errorf(`ent: validator failed for field "TutorConversation.conversation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := tutorconversation.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`ent: validator failed for field "TutorConversation.start_time": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutorconversation.Table, tutorconversation.Columns, sqlgraph.NewFieldSpec(tutorconversation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(tutorconversation.FieldConversationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(tutorconversation.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(tutorconversation.FieldEndTime, field.TypeString, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(tutorconversation.FieldEndTime, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorconversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TutorConversationUpdateOne is the builder for updating a single TutorConversation entity.
type TutorConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TutorConversationMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *TutorConversationUpdateOne) SetConversationID(v string) *TutorConversationUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *TutorConversationUpdateOne) SetNillableConversationID(v *string) *TutorConversationUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TutorConversationUpdateOne) SetStartTime(v string) *TutorConversationUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TutorConversationUpdateOne) SetNillableStartTime(v *string) *TutorConversationUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TutorConversationUpdateOne) SetEndTime(v string) *TutorConversationUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TutorConversationUpdateOne) SetNillableEndTime(v *string) *TutorConversationUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *TutorConversationUpdateOne) ClearEndTime() *TutorConversationUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// Mutation returns the TutorConversationMutation object of the builder.
func (_u *TutorConversationUpdateOne) Mutation() *TutorConversationMutation {
	return _u.mutation
}

// Where appends a list predicates to the TutorConversationUpdate builder.
func (_u *TutorConversationUpdateOne) Where(ps ...predicate.TutorConversation) *TutorConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TutorConversationUpdateOne) Select(field string, fields ...string) *TutorConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TutorConversation entity.
func (_u *TutorConversationUpdateOne) Save(ctx context.Context) (*TutorConversation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorConversationUpdateOne) SaveX(ctx context.Context) *TutorConversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TutorConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorConversationUpdateOne) check() error {
	if v, ok := _u.mutation.ConversationID(); ok {
		if err := tutorconversation.ConversationIDValidator(v); err != nil {
			return &ValidationError{Name: "conversation_id", err: fmt.Errorf(`ent: validator failed for field "TutorConversation.conversation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := tutorconversation.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`ent: validator failed for field "TutorConversation.start_time": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorConversationUpdateOne) sqlSave(ctx context.Context) (_node *TutorConversation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutorconversation.Table, tutorconversation.Columns, sqlgraph.NewFieldSpec(tutorconversation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TutorConversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tutorconversation.FieldID)
		for _, f := range fields {
			if !tutorconversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tutorconversation.FieldID {
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
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(tutorconversation.FieldConversationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(tutorconversation.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(tutorconversation.FieldEndTime, field.TypeString, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(tutorconversation.FieldEndTime, field.TypeString)
	}
	_node = &TutorConversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorconversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
