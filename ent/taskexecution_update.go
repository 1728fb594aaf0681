// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dhiyaancnirmal/mintaborate/ent/deterministiccheck"
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskexecution"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskstep"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// TaskExecutionUpdate is the builder for updating TaskExecution entities.
type TaskExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *TaskExecutionMutation
}

// Where appends a list predicates to the TaskExecutionUpdate builder.
func (_u *TaskExecutionUpdate) Where(ps ...predicate.TaskExecution) *TaskExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskExecutionUpdate) SetStatus(v taskexecution.Status) *TaskExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskExecutionUpdate) SetNillableStatus(v *taskexecution.Status) *TaskExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *TaskExecutionUpdate) SetStepCount(v int) *TaskExecutionUpdate {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *TaskExecutionUpdate) SetNillableStepCount(v *int) *TaskExecutionUpdate {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *TaskExecutionUpdate) AddStepCount(v int) *TaskExecutionUpdate {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *TaskExecutionUpdate) SetTokensIn(v int) *TaskExecutionUpdate {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *TaskExecutionUpdate) SetNillableTokensIn(v *int) *TaskExecutionUpdate {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *TaskExecutionUpdate) AddTokensIn(v int) *TaskExecutionUpdate {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *TaskExecutionUpdate) SetTokensOut(v int) *TaskExecutionUpdate {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *TaskExecutionUpdate) SetNillableTokensOut(v *int) *TaskExecutionUpdate {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *TaskExecutionUpdate) AddTokensOut(v int) *TaskExecutionUpdate {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *TaskExecutionUpdate) SetCostEstimate(v float64) *TaskExecutionUpdate {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *TaskExecutionUpdate) SetNillableCostEstimate(v *float64) *TaskExecutionUpdate {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *TaskExecutionUpdate) AddCostEstimate(v float64) *TaskExecutionUpdate {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetStopReason sets the "stop_reason" field.
func (_u *TaskExecutionUpdate) SetStopReason(v string) *TaskExecutionUpdate {
	_u.mutation.SetStopReason(v)
	return _u
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_u *TaskExecutionUpdate) SetNillableStopReason(v *string) *TaskExecutionUpdate {
	if v != nil {
		_u.SetStopReason(*v)
	}
	return _u
}

// ClearStopReason clears the value of the "stop_reason" field.
func (_u *TaskExecutionUpdate) ClearStopReason() *TaskExecutionUpdate {
	_u.mutation.ClearStopReason()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *TaskExecutionUpdate) SetAttempt(v *models.Attempt) *TaskExecutionUpdate {
	_u.mutation.SetAttempt(v)
	return _u
}

// ClearAttempt clears the value of the "attempt" field.
func (_u *TaskExecutionUpdate) ClearAttempt() *TaskExecutionUpdate {
	_u.mutation.ClearAttempt()
	return _u
}

// SetAgentState sets the "agent_state" field.
func (_u *TaskExecutionUpdate) SetAgentState(v *models.AgentMemory) *TaskExecutionUpdate {
	_u.mutation.SetAgentState(v)
	return _u
}

// ClearAgentState clears the value of the "agent_state" field.
func (_u *TaskExecutionUpdate) ClearAgentState() *TaskExecutionUpdate {
	_u.mutation.ClearAgentState()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskExecutionUpdate) SetCompletedAt(v time.Time) *TaskExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskExecutionUpdate) SetNillableCompletedAt(v *time.Time) *TaskExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskExecutionUpdate) ClearCompletedAt() *TaskExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the TaskStep entity by IDs.
func (_u *TaskExecutionUpdate) AddStepIDs(ids ...int) *TaskExecutionUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the TaskStep entity.
func (_u *TaskExecutionUpdate) AddSteps(v ...*TaskStep) *TaskExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddCheckIDs adds the "checks" edge to the DeterministicCheck entity by IDs.
func (_u *TaskExecutionUpdate) AddCheckIDs(ids ...int) *TaskExecutionUpdate {
	_u.mutation.AddCheckIDs(ids...)
	return _u
}

// AddChecks adds the "checks" edges to the DeterministicCheck entity.
func (_u *TaskExecutionUpdate) AddChecks(v ...*DeterministicCheck) *TaskExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckIDs(ids...)
}

// Mutation returns the TaskExecutionMutation object of the builder.
func (_u *TaskExecutionUpdate) Mutation() *TaskExecutionMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the TaskStep entity.
func (_u *TaskExecutionUpdate) ClearSteps() *TaskExecutionUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to TaskStep entities by IDs.
func (_u *TaskExecutionUpdate) RemoveStepIDs(ids ...int) *TaskExecutionUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to TaskStep entities.
func (_u *TaskExecutionUpdate) RemoveSteps(v ...*TaskStep) *TaskExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearChecks clears all "checks" edges to the DeterministicCheck entity.
func (_u *TaskExecutionUpdate) ClearChecks() *TaskExecutionUpdate {
	_u.mutation.ClearChecks()
	return _u
}

// RemoveCheckIDs removes the "checks" edge to DeterministicCheck entities by IDs.
func (_u *TaskExecutionUpdate) RemoveCheckIDs(ids ...int) *TaskExecutionUpdate {
	_u.mutation.RemoveCheckIDs(ids...)
	return _u
}

// RemoveChecks removes "checks" edges to DeterministicCheck entities.
func (_u *TaskExecutionUpdate) RemoveChecks(v ...*DeterministicCheck) *TaskExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskExecution.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskExecution.run"`)
	}
	return nil
}

func (_u *TaskExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskexecution.Table, taskexecution.Columns, sqlgraph.NewFieldSpec(taskexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(taskexecution.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(taskexecution.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(taskexecution.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(taskexecution.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(taskexecution.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(taskexecution.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(taskexecution.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(taskexecution.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StopReason(); ok {
		_spec.SetField(taskexecution.FieldStopReason, field.TypeString, value)
	}
	if _u.mutation.StopReasonCleared() {
		_spec.ClearField(taskexecution.FieldStopReason, field.TypeString)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(taskexecution.FieldAttempt, field.TypeJSON, value)
	}
	if _u.mutation.AttemptCleared() {
		_spec.ClearField(taskexecution.FieldAttempt, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentState(); ok {
		_spec.SetField(taskexecution.FieldAgentState, field.TypeJSON, value)
	}
	if _u.mutation.AgentStateCleared() {
		_spec.ClearField(taskexecution.FieldAgentState, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(taskexecution.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChecksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChecksIDs(); len(nodes) > 0 && !_u.mutation.ChecksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChecksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskExecutionUpdateOne is the builder for updating a single TaskExecution entity.
type TaskExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskExecutionMutation
}

// SetStatus sets the "status" field.
func (_u *TaskExecutionUpdateOne) SetStatus(v taskexecution.Status) *TaskExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskExecutionUpdateOne) SetNillableStatus(v *taskexecution.Status) *TaskExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *TaskExecutionUpdateOne) SetStepCount(v int) *TaskExecutionUpdateOne {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *TaskExecutionUpdateOne) SetNillableStepCount(v *int) *TaskExecutionUpdateOne {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *TaskExecutionUpdateOne) AddStepCount(v int) *TaskExecutionUpdateOne {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *TaskExecutionUpdateOne) SetTokensIn(v int) *TaskExecutionUpdateOne {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *TaskExecutionUpdateOne) SetNillableTokensIn(v *int) *TaskExecutionUpdateOne {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *TaskExecutionUpdateOne) AddTokensIn(v int) *TaskExecutionUpdateOne {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *TaskExecutionUpdateOne) SetTokensOut(v int) *TaskExecutionUpdateOne {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *TaskExecutionUpdateOne) SetNillableTokensOut(v *int) *TaskExecutionUpdateOne {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *TaskExecutionUpdateOne) AddTokensOut(v int) *TaskExecutionUpdateOne {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *TaskExecutionUpdateOne) SetCostEstimate(v float64) *TaskExecutionUpdateOne {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *TaskExecutionUpdateOne) SetNillableCostEstimate(v *float64) *TaskExecutionUpdateOne {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *TaskExecutionUpdateOne) AddCostEstimate(v float64) *TaskExecutionUpdateOne {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetStopReason sets the "stop_reason" field.
func (_u *TaskExecutionUpdateOne) SetStopReason(v string) *TaskExecutionUpdateOne {
	_u.mutation.SetStopReason(v)
	return _u
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_u *TaskExecutionUpdateOne) SetNillableStopReason(v *string) *TaskExecutionUpdateOne {
	if v != nil {
		_u.SetStopReason(*v)
	}
	return _u
}

// ClearStopReason clears the value of the "stop_reason" field.
func (_u *TaskExecutionUpdateOne) ClearStopReason() *TaskExecutionUpdateOne {
	_u.mutation.ClearStopReason()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *TaskExecutionUpdateOne) SetAttempt(v *models.Attempt) *TaskExecutionUpdateOne {
	_u.mutation.SetAttempt(v)
	return _u
}

// ClearAttempt clears the value of the "attempt" field.
func (_u *TaskExecutionUpdateOne) ClearAttempt() *TaskExecutionUpdateOne {
	_u.mutation.ClearAttempt()
	return _u
}

// SetAgentState sets the "agent_state" field.
func (_u *TaskExecutionUpdateOne) SetAgentState(v *models.AgentMemory) *TaskExecutionUpdateOne {
	_u.mutation.SetAgentState(v)
	return _u
}

// ClearAgentState clears the value of the "agent_state" field.
func (_u *TaskExecutionUpdateOne) ClearAgentState() *TaskExecutionUpdateOne {
	_u.mutation.ClearAgentState()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskExecutionUpdateOne) SetCompletedAt(v time.Time) *TaskExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskExecutionUpdateOne) ClearCompletedAt() *TaskExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the TaskStep entity by IDs.
func (_u *TaskExecutionUpdateOne) AddStepIDs(ids ...int) *TaskExecutionUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the TaskStep entity.
func (_u *TaskExecutionUpdateOne) AddSteps(v ...*TaskStep) *TaskExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddCheckIDs adds the "checks" edge to the DeterministicCheck entity by IDs.
func (_u *TaskExecutionUpdateOne) AddCheckIDs(ids ...int) *TaskExecutionUpdateOne {
	_u.mutation.AddCheckIDs(ids...)
	return _u
}

// AddChecks adds the "checks" edges to the DeterministicCheck entity.
func (_u *TaskExecutionUpdateOne) AddChecks(v ...*DeterministicCheck) *TaskExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckIDs(ids...)
}

// Mutation returns the TaskExecutionMutation object of the builder.
func (_u *TaskExecutionUpdateOne) Mutation() *TaskExecutionMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the TaskStep entity.
func (_u *TaskExecutionUpdateOne) ClearSteps() *TaskExecutionUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to TaskStep entities by IDs.
func (_u *TaskExecutionUpdateOne) RemoveStepIDs(ids ...int) *TaskExecutionUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to TaskStep entities.
func (_u *TaskExecutionUpdateOne) RemoveSteps(v ...*TaskStep) *TaskExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearChecks clears all "checks" edges to the DeterministicCheck entity.
func (_u *TaskExecutionUpdateOne) ClearChecks() *TaskExecutionUpdateOne {
	_u.mutation.ClearChecks()
	return _u
}

// RemoveCheckIDs removes the "checks" edge to DeterministicCheck entities by IDs.
func (_u *TaskExecutionUpdateOne) RemoveCheckIDs(ids ...int) *TaskExecutionUpdateOne {
	_u.mutation.RemoveCheckIDs(ids...)
	return _u
}

// RemoveChecks removes "checks" edges to DeterministicCheck entities.
func (_u *TaskExecutionUpdateOne) RemoveChecks(v ...*DeterministicCheck) *TaskExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckIDs(ids...)
}

// Where appends a list predicates to the TaskExecutionUpdate builder.
func (_u *TaskExecutionUpdateOne) Where(ps ...predicate.TaskExecution) *TaskExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskExecutionUpdateOne) Select(field string, fields ...string) *TaskExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskExecution entity.
func (_u *TaskExecutionUpdateOne) Save(ctx context.Context) (*TaskExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskExecutionUpdateOne) SaveX(ctx context.Context) *TaskExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskExecution.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskExecution.run"`)
	}
	return nil
}

func (_u *TaskExecutionUpdateOne) sqlSave(ctx context.Context) (_node *TaskExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskexecution.Table, taskexecution.Columns, sqlgraph.NewFieldSpec(taskexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskexecution.FieldID)
		for _, f := range fields {
			if !taskexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskexecution.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(taskexecution.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(taskexecution.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(taskexecution.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(taskexecution.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(taskexecution.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(taskexecution.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(taskexecution.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(taskexecution.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StopReason(); ok {
		_spec.SetField(taskexecution.FieldStopReason, field.TypeString, value)
	}
	if _u.mutation.StopReasonCleared() {
		_spec.ClearField(taskexecution.FieldStopReason, field.TypeString)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(taskexecution.FieldAttempt, field.TypeJSON, value)
	}
	if _u.mutation.AttemptCleared() {
		_spec.ClearField(taskexecution.FieldAttempt, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentState(); ok {
		_spec.SetField(taskexecution.FieldAgentState, field.TypeJSON, value)
	}
	if _u.mutation.AgentStateCleared() {
		_spec.ClearField(taskexecution.FieldAgentState, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(taskexecution.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChecksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChecksIDs(); len(nodes) > 0 && !_u.mutation.ChecksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChecksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TaskExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
