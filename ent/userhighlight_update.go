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
	"github.com/abhisek/replayz/ent/userhighlight"
)

// UserHighlightUpdate is the builder for updating UserHighlight entities.
type UserHighlightUpdate struct {
	config
	hooks    []Hook
	mutation *UserHighlightMutation
}

// Where appends a list predicates to the UserHighlightUpdate builder.
func (_u *UserHighlightUpdate) Where(ps ...predicate.UserHighlight) *UserHighlightUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHighlightedText sets the "highlighted_text" field.
func (_u *UserHighlightUpdate) SetHighlightedText(v string) *UserHighlightUpdate {
	_u.mutation.SetHighlightedText(v)
	return _u
}

// SetNillableHighlightedText sets the "highlighted_text" field if the given value is not nil.
func (_u *UserHighlightUpdate) SetNillableHighlightedText(v *string) *UserHighlightUpdate {
	if v != nil {
		_u.SetHighlightedText(*v)
	}
	return _u
}

// Mutation returns the UserHighlightMutation object of the builder.
func (_u *UserHighlightUpdate) Mutation() *UserHighlightMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserHighlightUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserHighlightUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserHighlightUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserHighlightUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserHighlightUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userhighlight.Table, userhighlight.Columns, sqlgraph.NewFieldSpec(userhighlight.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.HighlightedText(); ok {
		_spec.SetField(userhighlight.FieldHighlightedText, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userhighlight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserHighlightUpdateOne is the builder for updating a single UserHighlight entity.
type UserHighlightUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserHighlightMutation
}

// SetHighlightedText sets the "highlighted_text" field.
func (_u *UserHighlightUpdateOne) SetHighlightedText(v string) *UserHighlightUpdateOne {
	_u.mutation.SetHighlightedText(v)
	return _u
}

// SetNillableHighlightedText sets the "highlighted_text" field if the given value is not nil.
func (_u *UserHighlightUpdateOne) SetNillableHighlightedText(v *string) *UserHighlightUpdateOne {
	if v != nil {
		_u.SetHighlightedText(*v)
	}
	return _u
}

// Mutation returns the UserHighlightMutation object of the builder.
func (_u *UserHighlightUpdateOne) Mutation() *UserHighlightMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserHighlightUpdate builder.
func (_u *UserHighlightUpdateOne) Where(ps ...predicate.UserHighlight) *UserHighlightUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserHighlightUpdateOne) Select(field string, fields ...string) *UserHighlightUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserHighlight entity.
func (_u *UserHighlightUpdateOne) Save(ctx context.Context) (*UserHighlight, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserHighlightUpdateOne) SaveX(ctx context.Context) *UserHighlight {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserHighlightUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserHighlightUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserHighlightUpdateOne) sqlSave(ctx context.Context) (_node *UserHighlight, err error) {
	_spec := sqlgraph.NewUpdateSpec(userhighlight.Table, userhighlight.Columns, sqlgraph.NewFieldSpec(userhighlight.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserHighlight.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userhighlight.FieldID)
		for _, f := range fields {
			if !userhighlight.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userhighlight.FieldID {
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
	if value, ok := _u.mutation.HighlightedText(); ok {
		_spec.SetField(userhighlight.FieldHighlightedText, field.TypeString, value)
	}
	_node = &UserHighlight{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userhighlight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
