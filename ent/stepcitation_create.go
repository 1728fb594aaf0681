// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dhiyaancnirmal/mintaborate/ent/stepcitation"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskstep"
)

// StepCitationCreate is the builder for creating a StepCitation entity.
type StepCitationCreate struct {
	config
	mutation *StepCitationMutation
	hooks    []Hook
}

// SetStepID sets the "step_id" field.
func (_c *StepCitationCreate) SetStepID(v int) *StepCitationCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *StepCitationCreate) SetSource(v string) *StepCitationCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetSnippetHash sets the "snippet_hash" field.
func (_c *StepCitationCreate) SetSnippetHash(v string) *StepCitationCreate {
	_c.mutation.SetSnippetHash(v)
	return _c
}

// SetNillableSnippetHash sets the "snippet_hash" field if the given value is not nil.
func (_c *StepCitationCreate) SetNillableSnippetHash(v *string) *StepCitationCreate {
	if v != nil {
		_c.SetSnippetHash(*v)
	}
	return _c
}

// SetExcerpt sets the "excerpt" field.
func (_c *StepCitationCreate) SetExcerpt(v string) *StepCitationCreate {
	_c.mutation.SetExcerpt(v)
	return _c
}

// SetStartOffset sets the "start_offset" field.
func (_c *StepCitationCreate) SetStartOffset(v int) *StepCitationCreate {
	_c.mutation.SetStartOffset(v)
	return _c
}

// SetNillableStartOffset sets the "start_offset" field if the given value is not nil.
func (_c *StepCitationCreate) SetNillableStartOffset(v *int) *StepCitationCreate {
	if v != nil {
		_c.SetStartOffset(*v)
	}
	return _c
}

// SetEndOffset sets the "end_offset" field.
func (_c *StepCitationCreate) SetEndOffset(v int) *StepCitationCreate {
	_c.mutation.SetEndOffset(v)
	return _c
}

// SetNillableEndOffset sets the "end_offset" field if the given value is not nil.
func (_c *StepCitationCreate) SetNillableEndOffset(v *int) *StepCitationCreate {
	if v != nil {
		_c.SetEndOffset(*v)
	}
	return _c
}

// SetStep sets the "step" edge to the TaskStep entity.
func (_c *StepCitationCreate) SetStep(v *TaskStep) *StepCitationCreate {
	return _c.SetStepID(v.ID)
}

// Mutation returns the StepCitationMutation object of the builder.
func (_c *StepCitationCreate) Mutation() *StepCitationMutation {
	return _c.mutation
}

// Save creates the StepCitation in the database.
func (_c *StepCitationCreate) Save(ctx context.Context) (*StepCitation, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepCitationCreate) SaveX(ctx context.Context) *StepCitation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCitationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCitationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepCitationCreate) check() error {
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "StepCitation.step_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "StepCitation.source"`)}
	}
	if _, ok := _c.mutation.Excerpt(); !ok {
		return &ValidationError{Name: "excerpt", err: errors.New(`ent: missing required field "StepCitation.excerpt"`)}
	}
	if len(_c.mutation.StepIDs()) == 0 {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required edge "StepCitation.step"`)}
	}
	return nil
}

func (_c *StepCitationCreate) sqlSave(ctx context.Context) (*StepCitation, error) {
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

func (_c *StepCitationCreate) createSpec() (*StepCitation, *sqlgraph.CreateSpec) {
	var (
		_node = &StepCitation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stepcitation.Table, sqlgraph.NewFieldSpec(stepcitation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(stepcitation.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.SnippetHash(); ok {
		_spec.SetField(stepcitation.FieldSnippetHash, field.TypeString, value)
		_node.SnippetHash = value
	}
	if value, ok := _c.mutation.Excerpt(); ok {
		_spec.SetField(stepcitation.FieldExcerpt, field.TypeString, value)
		_node.Excerpt = value
	}
	if value, ok := _c.mutation.StartOffset(); ok {
		_spec.SetField(stepcitation.FieldStartOffset, field.TypeInt, value)
		_node.StartOffset = &value
	}
	if value, ok := _c.mutation.EndOffset(); ok {
		_spec.SetField(stepcitation.FieldEndOffset, field.TypeInt, value)
		_node.EndOffset = &value
	}
	if nodes := _c.mutation.StepIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stepcitation.StepTable,
			Columns: []string{stepcitation.StepColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskstep.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StepID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StepCitationCreateBulk is the builder for creating many StepCitation entities in bulk.
type StepCitationCreateBulk struct {
	config
	err      error
	builders []*StepCitationCreate
}

// Save creates the StepCitation entities in the database.
func (_c *StepCitationCreateBulk) Save(ctx context.Context) ([]*StepCitation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepCitation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepCitationMutation)
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
func (_c *StepCitationCreateBulk) SaveX(ctx context.Context) []*StepCitation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCitationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCitationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
