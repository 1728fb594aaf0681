// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dhiyaancnirmal/mintaborate/ent/deterministiccheck"
	"github.com/dhiyaancnirmal/mintaborate/ent/run"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskexecution"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskstep"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// TaskExecutionCreate is the builder for creating a TaskExecution entity.
type TaskExecutionCreate struct {
	config
	mutation *TaskExecutionMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *TaskExecutionCreate) SetRunID(v string) *TaskExecutionCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *TaskExecutionCreate) SetTaskID(v string) *TaskExecutionCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *TaskExecutionCreate) SetWorkerID(v string) *TaskExecutionCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *TaskExecutionCreate) SetPhase(v taskexecution.Phase) *TaskExecutionCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskExecutionCreate) SetStatus(v taskexecution.Status) *TaskExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskExecutionCreate) SetNillableStatus(v *taskexecution.Status) *TaskExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStepCount sets the "step_count" field.
func (_c *TaskExecutionCreate) SetStepCount(v int) *TaskExecutionCreate {
	_c.mutation.SetStepCount(v)
	return _c
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_c *TaskExecutionCreate) SetNillableStepCount(v *int) *TaskExecutionCreate {
	if v != nil {
		_c.SetStepCount(*v)
	}
	return _c
}

// SetTokensIn sets the "tokens_in" field.
func (_c *TaskExecutionCreate) SetTokensIn(v int) *TaskExecutionCreate {
	_c.mutation.SetTokensIn(v)
	return _c
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_c *TaskExecutionCreate) SetNillableTokensIn(v *int) *TaskExecutionCreate {
	if v != nil {
		_c.SetTokensIn(*v)
	}
	return _c
}

// SetTokensOut sets the "tokens_out" field.
func (_c *TaskExecutionCreate) SetTokensOut(v int) *TaskExecutionCreate {
	_c.mutation.SetTokensOut(v)
	return _c
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_c *TaskExecutionCreate) SetNillableTokensOut(v *int) *TaskExecutionCreate {
	if v != nil {
		_c.SetTokensOut(*v)
	}
	return _c
}

// SetCostEstimate sets the "cost_estimate" field.
func (_c *TaskExecutionCreate) SetCostEstimate(v float64) *TaskExecutionCreate {
	_c.mutation.SetCostEstimate(v)
	return _c
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_c *TaskExecutionCreate) SetNillableCostEstimate(v *float64) *TaskExecutionCreate {
	if v != nil {
		_c.SetCostEstimate(*v)
	}
	return _c
}

// SetStopReason sets the "stop_reason" field.
func (_c *TaskExecutionCreate) SetStopReason(v string) *TaskExecutionCreate {
	_c.mutation.SetStopReason(v)
	return _c
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_c *TaskExecutionCreate) SetNillableStopReason(v *string) *TaskExecutionCreate {
	if v != nil {
		_c.SetStopReason(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *TaskExecutionCreate) SetAttempt(v *models.Attempt) *TaskExecutionCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetAgentState sets the "agent_state" field.
func (_c *TaskExecutionCreate) SetAgentState(v *models.AgentMemory) *TaskExecutionCreate {
	_c.mutation.SetAgentState(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskExecutionCreate) SetStartedAt(v time.Time) *TaskExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskExecutionCreate) SetNillableStartedAt(v *time.Time) *TaskExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskExecutionCreate) SetCompletedAt(v time.Time) *TaskExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskExecutionCreate) SetNillableCompletedAt(v *time.Time) *TaskExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskExecutionCreate) SetID(v string) *TaskExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *TaskExecutionCreate) SetRun(v *Run) *TaskExecutionCreate {
	return _c.SetRunID(v.ID)
}

// AddStepIDs adds the "steps" edge to the TaskStep entity by IDs.
func (_c *TaskExecutionCreate) AddStepIDs(ids ...int) *TaskExecutionCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the TaskStep entity.
func (_c *TaskExecutionCreate) AddSteps(v ...*TaskStep) *TaskExecutionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// AddCheckIDs adds the "checks" edge to the DeterministicCheck entity by IDs.
func (_c *TaskExecutionCreate) AddCheckIDs(ids ...int) *TaskExecutionCreate {
	_c.mutation.AddCheckIDs(ids...)
	return _c
}

// AddChecks adds the "checks" edges to the DeterministicCheck entity.
func (_c *TaskExecutionCreate) AddChecks(v ...*DeterministicCheck) *TaskExecutionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckIDs(ids...)
}

// Mutation returns the TaskExecutionMutation object of the builder.
func (_c *TaskExecutionCreate) Mutation() *TaskExecutionMutation {
	return _c.mutation
}

// Save creates the TaskExecution in the database.
func (_c *TaskExecutionCreate) Save(ctx context.Context) (*TaskExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskExecutionCreate) SaveX(ctx context.Context) *TaskExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := taskexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StepCount(); !ok {
		v := taskexecution.DefaultStepCount
		_c.mutation.SetStepCount(v)
	}
	if _, ok := _c.mutation.TokensIn(); !ok {
		v := taskexecution.DefaultTokensIn
		_c.mutation.SetTokensIn(v)
	}
	if _, ok := _c.mutation.TokensOut(); !ok {
		v := taskexecution.DefaultTokensOut
		_c.mutation.SetTokensOut(v)
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		v := taskexecution.DefaultCostEstimate
		_c.mutation.SetCostEstimate(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := taskexecution.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskExecutionCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "TaskExecution.run_id"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskExecution.task_id"`)}
	}
	if _, ok := _c.mutation.WorkerID(); !ok {
		return &ValidationError{Name: "worker_id", err: errors.New(`ent: missing required field "TaskExecution.worker_id"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "TaskExecution.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := taskexecution.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "TaskExecution.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TaskExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := taskexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepCount(); !ok {
		return &ValidationError{Name: "step_count", err: errors.New(`ent: missing required field "TaskExecution.step_count"`)}
	}
	if _, ok := _c.mutation.TokensIn(); !ok {
		return &ValidationError{Name: "tokens_in", err: errors.New(`ent: missing required field "TaskExecution.tokens_in"`)}
	}
	if _, ok := _c.mutation.TokensOut(); !ok {
		return &ValidationError{Name: "tokens_out", err: errors.New(`ent: missing required field "TaskExecution.tokens_out"`)}
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		return &ValidationError{Name: "cost_estimate", err: errors.New(`ent: missing required field "TaskExecution.cost_estimate"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "TaskExecution.started_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "TaskExecution.run"`)}
	}
	return nil
}

func (_c *TaskExecutionCreate) sqlSave(ctx context.Context) (*TaskExecution, error) {
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
			return nil, fmt.Errorf("unexpected TaskExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskExecutionCreate) createSpec() (*TaskExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskexecution.Table, sqlgraph.NewFieldSpec(taskexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(taskexecution.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(taskexecution.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(taskexecution.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(taskexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StepCount(); ok {
		_spec.SetField(taskexecution.FieldStepCount, field.TypeInt, value)
		_node.StepCount = value
	}
	if value, ok := _c.mutation.TokensIn(); ok {
		_spec.SetField(taskexecution.FieldTokensIn, field.TypeInt, value)
		_node.TokensIn = value
	}
	if value, ok := _c.mutation.TokensOut(); ok {
		_spec.SetField(taskexecution.FieldTokensOut, field.TypeInt, value)
		_node.TokensOut = value
	}
	if value, ok := _c.mutation.CostEstimate(); ok {
		_spec.SetField(taskexecution.FieldCostEstimate, field.TypeFloat64, value)
		_node.CostEstimate = value
	}
	if value, ok := _c.mutation.StopReason(); ok {
		_spec.SetField(taskexecution.FieldStopReason, field.TypeString, value)
		_node.StopReason = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(taskexecution.FieldAttempt, field.TypeJSON, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.AgentState(); ok {
		_spec.SetField(taskexecution.FieldAgentState, field.TypeJSON, value)
		_node.AgentState = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(taskexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(taskexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskexecution.RunTable,
			Columns: []string{taskexecution.RunColumn},
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
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taskexecution.StepsTable,
			Columns: []string{taskexecution.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskstep.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChecksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taskexecution.ChecksTable,
			Columns: []string{taskexecution.ChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deterministiccheck.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskExecutionCreateBulk is the builder for creating many TaskExecution entities in bulk.
type TaskExecutionCreateBulk struct {
	config
	err      error
	builders []*TaskExecutionCreate
}

// Save creates the TaskExecution entities in the database.
func (_c *TaskExecutionCreateBulk) Save(ctx context.Context) ([]*TaskExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskExecutionMutation)
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
func (_c *TaskExecutionCreateBulk) SaveX(ctx context.Context) []*TaskExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
