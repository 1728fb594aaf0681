// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dhiyaancnirmal/mintaborate/ent/stepcitation"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskexecution"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskstep"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// TaskStepCreate is the builder for creating a TaskStep entity.
type TaskStepCreate struct {
	config
	mutation *TaskStepMutation
	hooks    []Hook
}

// SetTaskExecutionID sets the "task_execution_id" field.
func (_c *TaskStepCreate) SetTaskExecutionID(v string) *TaskStepCreate {
	_c.mutation.SetTaskExecutionID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *TaskStepCreate) SetRunID(v string) *TaskStepCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStepIndex sets the "step_index" field.
func (_c *TaskStepCreate) SetStepIndex(v int) *TaskStepCreate {
	_c.mutation.SetStepIndex(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *TaskStepCreate) SetPhase(v taskstep.Phase) *TaskStepCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetInput sets the "input" field.
func (_c *TaskStepCreate) SetInput(v string) *TaskStepCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *TaskStepCreate) SetOutput(v string) *TaskStepCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetRetrieval sets the "retrieval" field.
func (_c *TaskStepCreate) SetRetrieval(v []models.ChunkRef) *TaskStepCreate {
	_c.mutation.SetRetrieval(v)
	return _c
}

// SetUsage sets the "usage" field.
func (_c *TaskStepCreate) SetUsage(v *models.StepUsage) *TaskStepCreate {
	_c.mutation.SetUsage(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *TaskStepCreate) SetDecision(v *models.StepDecision) *TaskStepCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskStepCreate) SetCreatedAt(v time.Time) *TaskStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskStepCreate) SetNillableCreatedAt(v *time.Time) *TaskStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExecutionID sets the "execution" edge to the TaskExecution entity by ID.
func (_c *TaskStepCreate) SetExecutionID(id string) *TaskStepCreate {
	_c.mutation.SetExecutionID(id)
	return _c
}

// SetExecution sets the "execution" edge to the TaskExecution entity.
func (_c *TaskStepCreate) SetExecution(v *TaskExecution) *TaskStepCreate {
	return _c.SetExecutionID(v.ID)
}

// AddCitationIDs adds the "citations" edge to the StepCitation entity by IDs.
func (_c *TaskStepCreate) AddCitationIDs(ids ...int) *TaskStepCreate {
	_c.mutation.AddCitationIDs(ids...)
	return _c
}

// AddCitations adds the "citations" edges to the StepCitation entity.
func (_c *TaskStepCreate) AddCitations(v ...*StepCitation) *TaskStepCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCitationIDs(ids...)
}

// Mutation returns the TaskStepMutation object of the builder.
func (_c *TaskStepCreate) Mutation() *TaskStepMutation {
	return _c.mutation
}

// Save creates the TaskStep in the database.
func (_c *TaskStepCreate) Save(ctx context.Context) (*TaskStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskStepCreate) SaveX(ctx context.Context) *TaskStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskStepCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := taskstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskStepCreate) check() error {
	if _, ok := _c.mutation.TaskExecutionID(); !ok {
		return &ValidationError{Name: "task_execution_id", err: errors.New(`ent: missing required field "TaskStep.task_execution_id"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "TaskStep.run_id"`)}
	}
	if _, ok := _c.mutation.StepIndex(); !ok {
		return &ValidationError{Name: "step_index", err: errors.New(`ent: missing required field "TaskStep.step_index"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "TaskStep.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := taskstep.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "TaskStep.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Input(); !ok {
		return &ValidationError{Name: "input", err: errors.New(`ent: missing required field "TaskStep.input"`)}
	}
	if _, ok := _c.mutation.Output(); !ok {
		return &ValidationError{Name: "output", err: errors.New(`ent: missing required field "TaskStep.output"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskStep.created_at"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "TaskStep.execution"`)}
	}
	return nil
}

func (_c *TaskStepCreate) sqlSave(ctx context.Context) (*TaskStep, error) {
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

func (_c *TaskStepCreate) createSpec() (*TaskStep, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskstep.Table, sqlgraph.NewFieldSpec(taskstep.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(taskstep.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.StepIndex(); ok {
		_spec.SetField(taskstep.FieldStepIndex, field.TypeInt, value)
		_node.StepIndex = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(taskstep.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(taskstep.FieldInput, field.TypeString, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(taskstep.FieldOutput, field.TypeString, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Retrieval(); ok {
		_spec.SetField(taskstep.FieldRetrieval, field.TypeJSON, value)
		_node.Retrieval = value
	}
	if value, ok := _c.mutation.Usage(); ok {
		_spec.SetField(taskstep.FieldUsage, field.TypeJSON, value)
		_node.Usage = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(taskstep.FieldDecision, field.TypeJSON, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(taskstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskstep.ExecutionTable,
			Columns: []string{taskstep.ExecutionColumn},
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
	if nodes := _c.mutation.CitationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taskstep.CitationsTable,
			Columns: []string{taskstep.CitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepcitation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskStepCreateBulk is the builder for creating many TaskStep entities in bulk.
type TaskStepCreateBulk struct {
	config
	err      error
	builders []*TaskStepCreate
}

// Save creates the TaskStep entities in the database.
func (_c *TaskStepCreateBulk) Save(ctx context.Context) ([]*TaskStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskStepMutation)
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
func (_c *TaskStepCreateBulk) SaveX(ctx context.Context) []*TaskStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
