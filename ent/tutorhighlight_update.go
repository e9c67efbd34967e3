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
	"github.com/abhisek/replayz/ent/tutorhighlight"
)

// TutorHighlightUpdate is the builder for updating TutorHighlight entities.
type TutorHighlightUpdate struct {
	config
	hooks    []Hook
	mutation *TutorHighlightMutation
}

// Where appends a list predicates to the TutorHighlightUpdate builder.
func (_u *TutorHighlightUpdate) Where(ps ...predicate.TutorHighlight) *TutorHighlightUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLineNumber sets the "line_number" field.
func (_u *TutorHighlightUpdate) SetLineNumber(v int) *TutorHighlightUpdate {
	_u.mutation.ResetLineNumber()
	_u.mutation.SetLineNumber(v)
	return _u
}

// SetNillableLineNumber sets the "line_number" field if the given value is not nil.
func (_u *TutorHighlightUpdate) SetNillableLineNumber(v *int) *TutorHighlightUpdate {
	if v != nil {
		_u.SetLineNumber(*v)
	}
	return _u
}

// AddLineNumber adds value to the "line_number" field.
func (_u *TutorHighlightUpdate) AddLineNumber(v int) *TutorHighlightUpdate {
	_u.mutation.AddLineNumber(v)
	return _u
}

// Mutation returns the TutorHighlightMutation object of the builder.
func (_u *TutorHighlightUpdate) Mutation() *TutorHighlightMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TutorHighlightUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorHighlightUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TutorHighlightUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorHighlightUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TutorHighlightUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tutorhighlight.Table, tutorhighlight.Columns, sqlgraph.NewFieldSpec(tutorhighlight.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LineNumber(); ok {
		_spec.SetField(tutorhighlight.FieldLineNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineNumber(); ok {
		_spec.AddField(tutorhighlight.FieldLineNumber, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorhighlight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TutorHighlightUpdateOne is the builder for updating a single TutorHighlight entity.
type TutorHighlightUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TutorHighlightMutation
}

// SetLineNumber sets the "line_number" field.
func (_u *TutorHighlightUpdateOne) SetLineNumber(v int) *TutorHighlightUpdateOne {
	_u.mutation.ResetLineNumber()
	_u.mutation.SetLineNumber(v)
	return _u
}

// SetNillableLineNumber sets the "line_number" field if the given value is not nil.
func (_u *TutorHighlightUpdateOne) SetNillableLineNumber(v *int) *TutorHighlightUpdateOne {
	if v != nil {
		_u.SetLineNumber(*v)
	}
	return _u
}

// AddLineNumber adds value to the "line_number" field.
func (_u *TutorHighlightUpdateOne) AddLineNumber(v int) *TutorHighlightUpdateOne {
	_u.mutation.AddLineNumber(v)
	return _u
}

// Mutation returns the TutorHighlightMutation object of the builder.
func (_u *TutorHighlightUpdateOne) Mutation() *TutorHighlightMutation {
	return _u.mutation
}

// Where appends a list predicates to the TutorHighlightUpdate builder.
func (_u *TutorHighlightUpdateOne) Where(ps ...predicate.TutorHighlight) *TutorHighlightUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TutorHighlightUpdateOne) Select(field string, fields ...string) *TutorHighlightUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TutorHighlight entity.
func (_u *TutorHighlightUpdateOne) Save(ctx context.Context) (*TutorHighlight, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorHighlightUpdateOne) SaveX(ctx context.Context) *TutorHighlight {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TutorHighlightUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorHighlightUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TutorHighlightUpdateOne) sqlSave(ctx context.Context) (_node *TutorHighlight, err error) {
	_spec := sqlgraph.NewUpdateSpec(tutorhighlight.Table, tutorhighlight.Columns, sqlgraph.NewFieldSpec(tutorhighlight.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TutorHighlight.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tutorhighlight.FieldID)
		for _, f := range fields {
			if !tutorhighlight.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tutorhighlight.FieldID {
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
	if value, ok := _u.mutation.LineNumber(); ok {
		_spec.SetField(tutorhighlight.FieldLineNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLineNumber(); ok {
		_spec.AddField(tutorhighlight.FieldLineNumber, field.TypeInt, value)
	}
	_node = &TutorHighlight{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorhighlight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
