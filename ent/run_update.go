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
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
	"github.com/dhiyaancnirmal/mintaborate/ent/run"
	"github.com/dhiyaancnirmal/mintaborate/ent/runartifact"
	"github.com/dhiyaancnirmal/mintaborate/ent/runerror"
	"github.com/dhiyaancnirmal/mintaborate/ent/runevent"
	"github.com/dhiyaancnirmal/mintaborate/ent/runworker"
	"github.com/dhiyaancnirmal/mintaborate/ent/skillsession"
	"github.com/dhiyaancnirmal/mintaborate/ent/task"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskevaluation"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskexecution"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks    []Hook
	mutation *RunMutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdate) SetStatus(v run.Status) *RunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStatus(v *run.Status) *RunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *RunUpdate) SetEndedAt(v time.Time) *RunUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableEndedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *RunUpdate) ClearEndedAt() *RunUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetTotals sets the "totals" field.
func (_u *RunUpdate) SetTotals(v *models.Totals) *RunUpdate {
	_u.mutation.SetTotals(v)
	return _u
}

// ClearTotals clears the value of the "totals" field.
func (_u *RunUpdate) ClearTotals() *RunUpdate {
	_u.mutation.ClearTotals()
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *RunUpdate) SetCostEstimate(v float64) *RunUpdate {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCostEstimate(v *float64) *RunUpdate {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *RunUpdate) AddCostEstimate(v float64) *RunUpdate {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdate) SetErrorMessage(v string) *RunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdate) SetNillableErrorMessage(v *string) *RunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdate) ClearErrorMessage() *RunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddArtifactIDs adds the "artifacts" edge to the RunArtifact entity by IDs.
func (_u *RunUpdate) AddArtifactIDs(ids ...int) *RunUpdate {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the RunArtifact entity.
func (_u *RunUpdate) AddArtifacts(v ...*RunArtifact) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *RunUpdate) AddTaskIDs(ids ...string) *RunUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *RunUpdate) AddTasks(v ...*Task) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddWorkerIDs adds the "workers" edge to the RunWorker entity by IDs.
func (_u *RunUpdate) AddWorkerIDs(ids ...string) *RunUpdate {
	_u.mutation.AddWorkerIDs(ids...)
	return _u
}

// AddWorkers adds the "workers" edges to the RunWorker entity.
func (_u *RunUpdate) AddWorkers(v ...*RunWorker) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkerIDs(ids...)
}

// AddExecutionIDs adds the "executions" edge to the TaskExecution entity by IDs.
func (_u *RunUpdate) AddExecutionIDs(ids ...string) *RunUpdate {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the TaskExecution entity.
func (_u *RunUpdate) AddExecutions(v ...*TaskExecution) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *RunUpdate) AddEventIDs(ids ...int) *RunUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *RunUpdate) AddEvents(v ...*RunEvent) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddErrorIDs adds the "errors" edge to the RunError entity by IDs.
func (_u *RunUpdate) AddErrorIDs(ids ...string) *RunUpdate {
	_u.mutation.AddErrorIDs(ids...)
	return _u
}

// AddErrors adds the "errors" edges to the RunError entity.
func (_u *RunUpdate) AddErrors(v ...*RunError) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddErrorIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the TaskEvaluation entity by IDs.
func (_u *RunUpdate) AddEvaluationIDs(ids ...int) *RunUpdate {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the TaskEvaluation entity.
func (_u *RunUpdate) AddEvaluations(v ...*TaskEvaluation) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// SetSkillSessionID sets the "skill_session" edge to the SkillSession entity by ID.
func (_u *RunUpdate) SetSkillSessionID(id int) *RunUpdate {
	_u.mutation.SetSkillSessionID(id)
	return _u
}

// SetNillableSkillSessionID sets the "skill_session" edge to the SkillSession entity by ID if the given value is not nil.
func (_u *RunUpdate) SetNillableSkillSessionID(id *int) *RunUpdate {
	if id != nil {
		_u = _u.SetSkillSessionID(*id)
	}
	return _u
}

// SetSkillSession sets the "skill_session" edge to the SkillSession entity.
func (_u *RunUpdate) SetSkillSession(v *SkillSession) *RunUpdate {
	return _u.SetSkillSessionID(v.ID)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// ClearArtifacts clears all "artifacts" edges to the RunArtifact entity.
func (_u *RunUpdate) ClearArtifacts() *RunUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to RunArtifact entities by IDs.
func (_u *RunUpdate) RemoveArtifactIDs(ids ...int) *RunUpdate {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to RunArtifact entities.
func (_u *RunUpdate) RemoveArtifacts(v ...*RunArtifact) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *RunUpdate) ClearTasks() *RunUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *RunUpdate) RemoveTaskIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *RunUpdate) RemoveTasks(v ...*Task) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearWorkers clears all "workers" edges to the RunWorker entity.
func (_u *RunUpdate) ClearWorkers() *RunUpdate {
	_u.mutation.ClearWorkers()
	return _u
}

// RemoveWorkerIDs removes the "workers" edge to RunWorker entities by IDs.
func (_u *RunUpdate) RemoveWorkerIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveWorkerIDs(ids...)
	return _u
}

// RemoveWorkers removes "workers" edges to RunWorker entities.
func (_u *RunUpdate) RemoveWorkers(v ...*RunWorker) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkerIDs(ids...)
}

// ClearExecutions clears all "executions" edges to the TaskExecution entity.
func (_u *RunUpdate) ClearExecutions() *RunUpdate {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to TaskExecution entities by IDs.
func (_u *RunUpdate) RemoveExecutionIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to TaskExecution entities.
func (_u *RunUpdate) RemoveExecutions(v ...*TaskExecution) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *RunUpdate) ClearEvents() *RunUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *RunUpdate) RemoveEventIDs(ids ...int) *RunUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *RunUpdate) RemoveEvents(v ...*RunEvent) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearErrors clears all "errors" edges to the RunError entity.
func (_u *RunUpdate) ClearErrors() *RunUpdate {
	_u.mutation.ClearErrors()
	return _u
}

// RemoveErrorIDs removes the "errors" edge to RunError entities by IDs.
func (_u *RunUpdate) RemoveErrorIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveErrorIDs(ids...)
	return _u
}

// RemoveErrors removes "errors" edges to RunError entities.
func (_u *RunUpdate) RemoveErrors(v ...*RunError) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveErrorIDs(ids...)
}

// ClearEvaluations clears all "evaluations" edges to the TaskEvaluation entity.
func (_u *RunUpdate) ClearEvaluations() *RunUpdate {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to TaskEvaluation entities by IDs.
func (_u *RunUpdate) RemoveEvaluationIDs(ids ...int) *RunUpdate {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to TaskEvaluation entities.
func (_u *RunUpdate) RemoveEvaluations(v ...*TaskEvaluation) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// ClearSkillSession clears the "skill_session" edge to the SkillSession entity.
func (_u *RunUpdate) ClearSkillSession() *RunUpdate {
	_u.mutation.ClearSkillSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(run.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(run.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Totals(); ok {
		_spec.SetField(run.FieldTotals, field.TypeJSON, value)
	}
	if _u.mutation.TotalsCleared() {
		_spec.ClearField(run.FieldTotals, field.TypeJSON)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(run.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(run.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.ArtifactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ArtifactsTable,
			Columns: []string{run.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runartifact.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ArtifactsTable,
			Columns: []string{run.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runartifact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ArtifactsTable,
			Columns: []string{run.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runartifact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TasksTable,
			Columns: []string{run.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TasksTable,
			Columns: []string{run.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TasksTable,
			Columns: []string{run.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.WorkersTable,
			Columns: []string{run.WorkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runworker.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkersIDs(); len(nodes) > 0 && !_u.mutation.WorkersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.WorkersTable,
			Columns: []string{run.WorkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runworker.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.WorkersTable,
			Columns: []string{run.WorkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runworker.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ExecutionsTable,
			Columns: []string{run.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ExecutionsTable,
			Columns: []string{run.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ExecutionsTable,
			Columns: []string{run.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ErrorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ErrorsTable,
			Columns: []string{run.ErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runerror.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedErrorsIDs(); len(nodes) > 0 && !_u.mutation.ErrorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ErrorsTable,
			Columns: []string{run.ErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runerror.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ErrorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ErrorsTable,
			Columns: []string{run.ErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runerror.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EvaluationsTable,
			Columns: []string{run.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevaluation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EvaluationsTable,
			Columns: []string{run.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevaluation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EvaluationsTable,
			Columns: []string{run.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevaluation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SkillSessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.SkillSessionTable,
			Columns: []string{run.SkillSessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(skillsession.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SkillSessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.SkillSessionTable,
			Columns: []string{run.SkillSessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(skillsession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunMutation
}

// SetStatus sets the "status" field.
func (_u *RunUpdateOne) SetStatus(v run.Status) *RunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStatus(v *run.Status) *RunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *RunUpdateOne) SetEndedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableEndedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *RunUpdateOne) ClearEndedAt() *RunUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetTotals sets the "totals" field.
func (_u *RunUpdateOne) SetTotals(v *models.Totals) *RunUpdateOne {
	_u.mutation.SetTotals(v)
	return _u
}

// ClearTotals clears the value of the "totals" field.
func (_u *RunUpdateOne) ClearTotals() *RunUpdateOne {
	_u.mutation.ClearTotals()
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *RunUpdateOne) SetCostEstimate(v float64) *RunUpdateOne {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCostEstimate(v *float64) *RunUpdateOne {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *RunUpdateOne) AddCostEstimate(v float64) *RunUpdateOne {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdateOne) SetErrorMessage(v string) *RunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableErrorMessage(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdateOne) ClearErrorMessage() *RunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddArtifactIDs adds the "artifacts" edge to the RunArtifact entity by IDs.
func (_u *RunUpdateOne) AddArtifactIDs(ids ...int) *RunUpdateOne {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the RunArtifact entity.
func (_u *RunUpdateOne) AddArtifacts(v ...*RunArtifact) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *RunUpdateOne) AddTaskIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *RunUpdateOne) AddTasks(v ...*Task) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddWorkerIDs adds the "workers" edge to the RunWorker entity by IDs.
func (_u *RunUpdateOne) AddWorkerIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddWorkerIDs(ids...)
	return _u
}

// AddWorkers adds the "workers" edges to the RunWorker entity.
func (_u *RunUpdateOne) AddWorkers(v ...*RunWorker) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkerIDs(ids...)
}

// AddExecutionIDs adds the "executions" edge to the TaskExecution entity by IDs.
func (_u *RunUpdateOne) AddExecutionIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the TaskExecution entity.
func (_u *RunUpdateOne) AddExecutions(v ...*TaskExecution) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *RunUpdateOne) AddEventIDs(ids ...int) *RunUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *RunUpdateOne) AddEvents(v ...*RunEvent) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddErrorIDs adds the "errors" edge to the RunError entity by IDs.
func (_u *RunUpdateOne) AddErrorIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddErrorIDs(ids...)
	return _u
}

// AddErrors adds the "errors" edges to the RunError entity.
func (_u *RunUpdateOne) AddErrors(v ...*RunError) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddErrorIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the TaskEvaluation entity by IDs.
func (_u *RunUpdateOne) AddEvaluationIDs(ids ...int) *RunUpdateOne {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the TaskEvaluation entity.
func (_u *RunUpdateOne) AddEvaluations(v ...*TaskEvaluation) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// SetSkillSessionID sets the "skill_session" edge to the SkillSession entity by ID.
func (_u *RunUpdateOne) SetSkillSessionID(id int) *RunUpdateOne {
	_u.mutation.SetSkillSessionID(id)
	return _u
}

// SetNillableSkillSessionID sets the "skill_session" edge to the SkillSession entity by ID if the given value is not nil.
func (_u *RunUpdateOne) SetNillableSkillSessionID(id *int) *RunUpdateOne {
	if id != nil {
		_u = _u.SetSkillSessionID(*id)
	}
	return _u
}

// SetSkillSession sets the "skill_session" edge to the SkillSession entity.
func (_u *RunUpdateOne) SetSkillSession(v *SkillSession) *RunUpdateOne {
	return _u.SetSkillSessionID(v.ID)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// ClearArtifacts clears all "artifacts" edges to the RunArtifact entity.
func (_u *RunUpdateOne) ClearArtifacts() *RunUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to RunArtifact entities by IDs.
func (_u *RunUpdateOne) RemoveArtifactIDs(ids ...int) *RunUpdateOne {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to RunArtifact entities.
func (_u *RunUpdateOne) RemoveArtifacts(v ...*RunArtifact) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *RunUpdateOne) ClearTasks() *RunUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *RunUpdateOne) RemoveTaskIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *RunUpdateOne) RemoveTasks(v ...*Task) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearWorkers clears all "workers" edges to the RunWorker entity.
func (_u *RunUpdateOne) ClearWorkers() *RunUpdateOne {
	_u.mutation.ClearWorkers()
	return _u
}

// RemoveWorkerIDs removes the "workers" edge to RunWorker entities by IDs.
func (_u *RunUpdateOne) RemoveWorkerIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveWorkerIDs(ids...)
	return _u
}

// RemoveWorkers removes "workers" edges to RunWorker entities.
func (_u *RunUpdateOne) RemoveWorkers(v ...*RunWorker) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkerIDs(ids...)
}

// ClearExecutions clears all "executions" edges to the TaskExecution entity.
func (_u *RunUpdateOne) ClearExecutions() *RunUpdateOne {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to TaskExecution entities by IDs.
func (_u *RunUpdateOne) RemoveExecutionIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to TaskExecution entities.
func (_u *RunUpdateOne) RemoveExecutions(v ...*TaskExecution) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *RunUpdateOne) ClearEvents() *RunUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *RunUpdateOne) RemoveEventIDs(ids ...int) *RunUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *RunUpdateOne) RemoveEvents(v ...*RunEvent) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearErrors clears all "errors" edges to the RunError entity.
func (_u *RunUpdateOne) ClearErrors() *RunUpdateOne {
	_u.mutation.ClearErrors()
	return _u
}

// RemoveErrorIDs removes the "errors" edge to RunError entities by IDs.
func (_u *RunUpdateOne) RemoveErrorIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveErrorIDs(ids...)
	return _u
}

// RemoveErrors removes "errors" edges to RunError entities.
func (_u *RunUpdateOne) RemoveErrors(v ...*RunError) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveErrorIDs(ids...)
}

// ClearEvaluations clears all "evaluations" edges to the TaskEvaluation entity.
func (_u *RunUpdateOne) ClearEvaluations() *RunUpdateOne {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to TaskEvaluation entities by IDs.
func (_u *RunUpdateOne) RemoveEvaluationIDs(ids ...int) *RunUpdateOne {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to TaskEvaluation entities.
func (_u *RunUpdateOne) RemoveEvaluations(v ...*TaskEvaluation) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// ClearSkillSession clears the "skill_session" edge to the SkillSession entity.
func (_u *RunUpdateOne) ClearSkillSession() *RunUpdateOne {
	_u.mutation.ClearSkillSession()
	return _u
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
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
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(run.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(run.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Totals(); ok {
		_spec.SetField(run.FieldTotals, field.TypeJSON, value)
	}
	if _u.mutation.TotalsCleared() {
		_spec.ClearField(run.FieldTotals, field.TypeJSON)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(run.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(run.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.ArtifactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ArtifactsTable,
			Columns: []string{run.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runartifact.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ArtifactsTable,
			Columns: []string{run.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runartifact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ArtifactsTable,
			Columns: []string{run.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runartifact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TasksTable,
			Columns: []string{run.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TasksTable,
			Columns: []string{run.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TasksTable,
			Columns: []string{run.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.WorkersTable,
			Columns: []string{run.WorkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runworker.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkersIDs(); len(nodes) > 0 && !_u.mutation.WorkersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.WorkersTable,
			Columns: []string{run.WorkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runworker.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.WorkersTable,
			Columns: []string{run.WorkersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runworker.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ExecutionsTable,
			Columns: []string{run.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ExecutionsTable,
			Columns: []string{run.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ExecutionsTable,
			Columns: []string{run.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ErrorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ErrorsTable,
			Columns: []string{run.ErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runerror.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedErrorsIDs(); len(nodes) > 0 && !_u.mutation.ErrorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ErrorsTable,
			Columns: []string{run.ErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runerror.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ErrorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ErrorsTable,
			Columns: []string{run.ErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runerror.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EvaluationsTable,
			Columns: []string{run.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevaluation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EvaluationsTable,
			Columns: []string{run.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevaluation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EvaluationsTable,
			Columns: []string{run.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevaluation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SkillSessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.SkillSessionTable,
			Columns: []string{run.SkillSessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(skillsession.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SkillSessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.SkillSessionTable,
			Columns: []string{run.SkillSessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(skillsession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
