// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dhiyaancnirmal/mintaborate/ent/run"
	"github.com/dhiyaancnirmal/mintaborate/ent/runworker"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// RunWorkerCreate is the builder for creating a RunWorker entity.
type RunWorkerCreate struct {
	config
	mutation *RunWorkerMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *RunWorkerCreate) SetRunID(v string) *RunWorkerCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetWorkerLabel sets the "worker_label" field.
func (_c *RunWorkerCreate) SetWorkerLabel(v string) *RunWorkerCreate {
	_c.mutation.SetWorkerLabel(v)
	return _c
}

// SetModelProvider sets the "model_provider" field.
func (_c *RunWorkerCreate) SetModelProvider(v string) *RunWorkerCreate {
	_c.mutation.SetModelProvider(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *RunWorkerCreate) SetModelName(v string) *RunWorkerCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetModelConfig sets the "model_config" field.
func (_c *RunWorkerCreate) SetModelConfig(v models.ModelConfig) *RunWorkerCreate {
	_c.mutation.SetModelConfig(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunWorkerCreate) SetStatus(v runworker.Status) *RunWorkerCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunWorkerCreate) SetNillableStatus(v *runworker.Status) *RunWorkerCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunWorkerCreate) SetID(v string) *RunWorkerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *RunWorkerCreate) SetRun(v *Run) *RunWorkerCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the RunWorkerMutation object of the builder.
func (_c *RunWorkerCreate) Mutation() *RunWorkerMutation {
	return _c.mutation
}

// Save creates the RunWorker in the database.
func (_c *RunWorkerCreate) Save(ctx context.Context) (*RunWorker, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunWorkerCreate) SaveX(ctx context.Context) *RunWorker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunWorkerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunWorkerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunWorkerCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := runworker.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunWorkerCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunWorker.run_id"`)}
	}
	if _, ok := _c.mutation.WorkerLabel(); !ok {
		return &ValidationError{Name: "worker_label", err: errors.New(`ent: missing required field "RunWorker.worker_label"`)}
	}
	if _, ok := _c.mutation.ModelProvider(); !ok {
		return &ValidationError{Name: "model_provider", err: errors.New(`ent: missing required field "RunWorker.model_provider"`)}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "RunWorker.model_name"`)}
	}
	if _, ok := _c.mutation.ModelConfig(); !ok {
		return &ValidationError{Name: "model_config", err: errors.New(`ent: missing required field "RunWorker.model_config"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RunWorker.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := runworker.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RunWorker.status": %w`, err)}
		}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "RunWorker.run"`)}
	}
	return nil
}

func (_c *RunWorkerCreate) sqlSave(ctx context.Context) (*RunWorker, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected RunWorker.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunWorkerCreate) createSpec() (*RunWorker, *sqlgraph.CreateSpec) {
	var (
		_node = &RunWorker{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runworker.Table, sqlgraph.NewFieldSpec(runworker.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkerLabel(); ok {
		_spec.SetField(runworker.FieldWorkerLabel, field.TypeString, value)
		_node.WorkerLabel = value
	}
	if value, ok := _c.mutation.ModelProvider(); ok {
		_spec.SetField(runworker.FieldModelProvider, field.TypeString, value)
		_node.ModelProvider = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(runworker.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.ModelConfig(); ok {
		_spec.SetField(runworker.FieldModelConfig, field.TypeJSON, value)
		_node.ModelConfig = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(runworker.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runworker.RunTable,
			Columns: []string{runworker.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RunWorkerCreateBulk is the builder for creating many RunWorker entities in bulk.
type RunWorkerCreateBulk struct {
	config
	err      error
	builders []*RunWorkerCreate
}

// Save creates the RunWorker entities in the database.
func (_c *RunWorkerCreateBulk) Save(ctx context.Context) ([]*RunWorker, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunWorker, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunWorkerMutation)
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
func (_c *RunWorkerCreateBulk) SaveX(ctx context.Context) []*RunWorker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunWorkerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunWorkerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
