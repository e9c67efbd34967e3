// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/learningsession"
	"github.com/abhisek/replayz/ent/predicate"
)

// LearningSessionUpdate is the builder for updating LearningSession entities.
type LearningSessionUpdate struct {
	config
	hooks    []Hook
	mutation *LearningSessionMutation
}

// Where appends a list predicates to the LearningSessionUpdate builder.
func (_u *LearningSessionUpdate) Where(ps ...predicate.LearningSession) *LearningSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *LearningSessionUpdate) SetLessonID(v string) *LearningSessionUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableLessonID(v *string) *LearningSessionUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LearningSessionUpdate) SetStatus(v string) *LearningSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableStatus(v *string) *LearningSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *LearningSessionUpdate) SetStartedAt(v string) *LearningSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableStartedAt(v *string) *LearningSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LearningSessionUpdate) SetCompletedAt(v string) *LearningSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableCompletedAt(v *string) *LearningSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LearningSessionUpdate) ClearCompletedAt() *LearningSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LearningSessionUpdate) SetDurationMs(v int64) *LearningSessionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableDurationMs(v *int64) *LearningSessionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LearningSessionUpdate) AddDurationMs(v int64) *LearningSessionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the LearningSessionMutation object of the builder.
func (_u *LearningSessionUpdate) Mutation() *LearningSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningSessionUpdate) check() error {
	if v, ok := _u.mutation.LessonID(); ok {
		if err := learningsession.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartedAt(); ok {
		if err := learningsession.StartedAtValidator(v); err != nil {
			return &ValidationError{Name: "started_at", err: fmt.Errorf(`ent: validator failed for field "LearningSession.started_at": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningsession.Table, learningsession.Columns, sqlgraph.NewFieldSpec(learningsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(learningsession.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(learningsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(learningsession.FieldStartedAt, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(learningsession.FieldCompletedAt, field.TypeString, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(learningsession.FieldCompletedAt, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(learningsession.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(learningsession.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningSessionUpdateOne is the builder for updating a single LearningSession entity.
type LearningSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningSessionMutation
}

// SetLessonID sets the "lesson_id" field.
func (_u *LearningSessionUpdateOne) SetLessonID(v string) *LearningSessionUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableLessonID(v *string) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LearningSessionUpdateOne) SetStatus(v string) *LearningSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableStatus(v *string) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *LearningSessionUpdateOne) SetStartedAt(v string) *LearningSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableStartedAt(v *string) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LearningSessionUpdateOne) SetCompletedAt(v string) *LearningSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableCompletedAt(v *string) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LearningSessionUpdateOne) ClearCompletedAt() *LearningSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LearningSessionUpdateOne) SetDurationMs(v int64) *LearningSessionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableDurationMs(v *int64) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LearningSessionUpdateOne) AddDurationMs(v int64) *LearningSessionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the LearningSessionMutation object of the builder.
func (_u *LearningSessionUpdateOne) Mutation() *LearningSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningSessionUpdate builder.
func (_u *LearningSessionUpdateOne) Where(ps ...predicate.LearningSession) *LearningSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningSessionUpdateOne) Select(field string, fields ...string) *LearningSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningSession entity.
func (_u *LearningSessionUpdateOne) Save(ctx context.Context) (*LearningSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningSessionUpdateOne) SaveX(ctx context.Context) *LearningSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningSessionUpdateOne) check() error {
	if v, ok := _u.mutation.LessonID(); ok {
		if err := learningsession.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartedAt(); ok {
		if err := learningsession.StartedAtValidator(v); err != nil {
			return &ValidationError{Name: "started_at", err: fmt.Errorf(`ent: validator failed for field "LearningSession.started_at": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningSessionUpdateOne) sqlSave(ctx context.Context) (_node *LearningSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningsession.Table, learningsession.Columns, sqlgraph.NewFieldSpec(learningsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningsession.FieldID)
		for _, f := range fields {
			if !learningsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningsession.FieldID {
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
		_spec.SetField(learningsession.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(learningsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(learningsession.FieldStartedAt, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(learningsession.FieldCompletedAt, field.TypeString, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(learningsession.FieldCompletedAt, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(learningsession.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(learningsession.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &LearningSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
