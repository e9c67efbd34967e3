// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/replayz/ent/codingtask"
	"github.com/abhisek/replayz/ent/schema"
)

// CodingTaskCreate is the builder for creating a CodingTask entity.
type CodingTaskCreate struct {
	config
	mutation *CodingTaskMutation
	hooks    []Hook
}

// SetLessonID sets the "lesson_id" field.
func (_c *CodingTaskCreate) SetLessonID(v string) *CodingTaskCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetTaskOrder sets the "task_order" field.
func (_c *CodingTaskCreate) SetTaskOrder(v int) *CodingTaskCreate {
	_c.mutation.SetTaskOrder(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CodingTaskCreate) SetTitle(v string) *CodingTaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *CodingTaskCreate) SetDifficulty(v string) *CodingTaskCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *CodingTaskCreate) SetNillableDifficulty(v *string) *CodingTaskCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *CodingTaskCreate) SetDescription(v string) *CodingTaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CodingTaskCreate) SetNillableDescription(v *string) *CodingTaskCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetMethodName sets the "method_name" field.
func (_c *CodingTaskCreate) SetMethodName(v string) *CodingTaskCreate {
	_c.mutation.SetMethodName(v)
	return _c
}

// SetNillableMethodName sets the "method_name" field if the given value is not nil.
func (_c *CodingTaskCreate) SetNillableMethodName(v *string) *CodingTaskCreate {
	if v != nil {
		_c.SetMethodName(*v)
	}
	return _c
}

// SetStarterCode sets the "starter_code" field.
func (_c *CodingTaskCreate) SetStarterCode(v string) *CodingTaskCreate {
	_c.mutation.SetStarterCode(v)
	return _c
}

// SetNillableStarterCode sets the "starter_code" field if the given value is not nil.
func (_c *CodingTaskCreate) SetNillableStarterCode(v *string) *CodingTaskCreate {
	if v != nil {
		_c.SetStarterCode(*v)
	}
	return _c
}

// SetExamples sets the "examples" field.
func (_c *CodingTaskCreate) SetExamples(v []schema.TaskExample) *CodingTaskCreate {
	_c.mutation.SetExamples(v)
	return _c
}

// Mutation returns the CodingTaskMutation object of the builder.
func (_c *CodingTaskCreate) Mutation() *CodingTaskMutation {
	return _c.mutation
}

// Save creates the CodingTask in the database.
func (_c *CodingTaskCreate) Save(ctx context.Context) (*CodingTask, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CodingTaskCreate) SaveX(ctx context.Context) *CodingTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodingTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodingTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CodingTaskCreate) check() error {
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "CodingTask.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := codingtask.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "CodingTask.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskOrder(); !ok {
		return &ValidationError{Name: "task_order", err: errors.New(`ent: missing required field "CodingTask.task_order"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CodingTask.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := codingtask.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CodingTask.title": %w`, err)}
		}
	}
	return nil
}

func (_c *CodingTaskCreate) sqlSave(ctx context.Context) (*CodingTask, error) {
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

func (_c *CodingTaskCreate) createSpec() (*CodingTask, *sqlgraph.CreateSpec) {
	var (
		_node = &CodingTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(codingtask.Table, sqlgraph.NewFieldSpec(codingtask.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(codingtask.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.TaskOrder(); ok {
		_spec.SetField(codingtask.FieldTaskOrder, field.TypeInt, value)
		_node.TaskOrder = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(codingtask.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(codingtask.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(codingtask.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.MethodName(); ok {
		_spec.SetField(codingtask.FieldMethodName, field.TypeString, value)
		_node.MethodName = value
	}
	if value, ok := _c.mutation.StarterCode(); ok {
		_spec.SetField(codingtask.FieldStarterCode, field.TypeString, value)
		_node.StarterCode = value
	}
	if value, ok := _c.mutation.Examples(); ok {
		_spec.SetField(codingtask.FieldExamples, field.TypeJSON, value)
		_node.Examples = value
	}
	return _node, _spec
}

// CodingTaskCreateBulk is the builder for creating many CodingTask entities in bulk.
type CodingTaskCreateBulk struct {
	config
	err      error
	builders []*CodingTaskCreate
}

// Save creates the CodingTask entities in the database.
func (_c *CodingTaskCreateBulk) Save(ctx context.Context) ([]*CodingTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CodingTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CodingTaskMutation)
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
func (_c *CodingTaskCreateBulk) SaveX(ctx context.Context) []*CodingTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodingTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodingTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
