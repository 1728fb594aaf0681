// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dhiyaancnirmal/mintaborate/ent/deterministiccheck"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskexecution"
)

// DeterministicCheckCreate is the builder for creating a DeterministicCheck entity.
type DeterministicCheckCreate struct {
	config
	mutation *DeterministicCheckMutation
	hooks    []Hook
}

// SetTaskExecutionID sets the "task_execution_id" field.
func (_c *DeterministicCheckCreate) SetTaskExecutionID(v string) *DeterministicCheckCreate {
	_c.mutation.SetTaskExecutionID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DeterministicCheckCreate) SetName(v string) *DeterministicCheckCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *DeterministicCheckCreate) SetPassed(v bool) *DeterministicCheckCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetScoreDelta sets the "score_delta" field.
func (_c *DeterministicCheckCreate) SetScoreDelta(v float64) *DeterministicCheckCreate {
	_c.mutation.SetScoreDelta(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *DeterministicCheckCreate) SetDetails(v string) *DeterministicCheckCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_c *DeterministicCheckCreate) SetNillableDetails(v *string) *DeterministicCheckCreate {
	if v != nil {
		_c.SetDetails(*v)
	}
	return _c
}

// SetExecutionID sets the "execution" edge to the TaskExecution entity by ID.
func (_c *DeterministicCheckCreate) SetExecutionID(id string) *DeterministicCheckCreate {
	_c.mutation.SetExecutionID(id)
	return _c
}

// SetExecution sets the "execution" edge to the TaskExecution entity.
func (_c *DeterministicCheckCreate) SetExecution(v *TaskExecution) *DeterministicCheckCreate {
	return _c.SetExecutionID(v.ID)
}

// Mutation returns the DeterministicCheckMutation object of the builder.
func (_c *DeterministicCheckCreate) Mutation() *DeterministicCheckMutation {
	return _c.mutation
}

// Save creates the DeterministicCheck in the database.
func (_c *DeterministicCheckCreate) Save(ctx context.Context) (*DeterministicCheck, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeterministicCheckCreate) SaveX(ctx context.Context) *DeterministicCheck {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeterministicCheckCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeterministicCheckCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeterministicCheckCreate) check() error {
	if _, ok := _c.mutation.TaskExecutionID(); !ok {
		return &ValidationError{Name: "task_execution_id", err: errors.New(`ent: missing required field "DeterministicCheck.task_execution_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DeterministicCheck.name"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "DeterministicCheck.passed"`)}
	}
	if _, ok := _c.mutation.ScoreDelta(); !ok {
		return &ValidationError{Name: "score_delta", err: errors.New(`ent: missing required field "DeterministicCheck.score_delta"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "DeterministicCheck.execution"`)}
	}
	return nil
}

func (_c *DeterministicCheckCreate) sqlSave(ctx context.Context) (*DeterministicCheck, error) {
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

func (_c *DeterministicCheckCreate) createSpec() (*DeterministicCheck, *sqlgraph.CreateSpec) {
	var (
		_node = &DeterministicCheck{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deterministiccheck.Table, sqlgraph.NewFieldSpec(deterministiccheck.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(deterministiccheck.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(deterministiccheck.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.ScoreDelta(); ok {
		_spec.SetField(deterministiccheck.FieldScoreDelta, field.TypeFloat64, value)
		_node.ScoreDelta = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(deterministiccheck.FieldDetails, field.TypeString, value)
		_node.Details = value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deterministiccheck.ExecutionTable,
			Columns: []string{deterministiccheck.ExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskExecutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DeterministicCheckCreateBulk is the builder for creating many DeterministicCheck entities in bulk.
type DeterministicCheckCreateBulk struct {
	config
	err      error
	builders []*DeterministicCheckCreate
}

// Save creates the DeterministicCheck entities in the database.
func (_c *DeterministicCheckCreateBulk) Save(ctx context.Context) ([]*DeterministicCheck, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeterministicCheck, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeterministicCheckMutation)
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
func (_c *DeterministicCheckCreateBulk) SaveX(ctx context.Context) []*DeterministicCheck {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeterministicCheckCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeterministicCheckCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
