// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
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

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
}

// SetDocsURL sets the "docs_url" field.
func (_c *RunCreate) SetDocsURL(v string) *RunCreate {
	_c.mutation.SetDocsURL(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunCreate) SetStatus(v run.Status) *RunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunCreate) SetNillableStatus(v *run.Status) *RunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunCreate) SetStartedAt(v time.Time) *RunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableStartedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *RunCreate) SetEndedAt(v time.Time) *RunCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableEndedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *RunCreate) SetConfig(v models.RunConfig) *RunCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetTotals sets the "totals" field.
func (_c *RunCreate) SetTotals(v *models.Totals) *RunCreate {
	_c.mutation.SetTotals(v)
	return _c
}

// SetCostEstimate sets the "cost_estimate" field.
func (_c *RunCreate) SetCostEstimate(v float64) *RunCreate {
	_c.mutation.SetCostEstimate(v)
	return _c
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_c *RunCreate) SetNillableCostEstimate(v *float64) *RunCreate {
	if v != nil {
		_c.SetCostEstimate(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RunCreate) SetErrorMessage(v string) *RunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RunCreate) SetNillableErrorMessage(v *string) *RunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v string) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddArtifactIDs adds the "artifacts" edge to the RunArtifact entity by IDs.
func (_c *RunCreate) AddArtifactIDs(ids ...int) *RunCreate {
	_c.mutation.AddArtifactIDs(ids...)
	return _c
}

// AddArtifacts adds the "artifacts" edges to the RunArtifact entity.
func (_c *RunCreate) AddArtifacts(v ...*RunArtifact) *RunCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddArtifactIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *RunCreate) AddTaskIDs(ids ...string) *RunCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *RunCreate) AddTasks(v ...*Task) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// AddWorkerIDs adds the "workers" edge to the RunWorker entity by IDs.
func (_c *RunCreate) AddWorkerIDs(ids ...string) *RunCreate {
	_c.mutation.AddWorkerIDs(ids...)
	return _c
}

// AddWorkers adds the "workers" edges to the RunWorker entity.
func (_c *RunCreate) AddWorkers(v ...*RunWorker) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWorkerIDs(ids...)
}

// AddExecutionIDs adds the "executions" edge to the TaskExecution entity by IDs.
func (_c *RunCreate) AddExecutionIDs(ids ...string) *RunCreate {
	_c.mutation.AddExecutionIDs(ids...)
	return _c
}

// AddExecutions adds the "executions" edges to the TaskExecution entity.
func (_c *RunCreate) AddExecutions(v ...*TaskExecution) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionIDs(ids...)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_c *RunCreate) AddEventIDs(ids ...int) *RunCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_c *RunCreate) AddEvents(v ...*RunEvent) *RunCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddErrorIDs adds the "errors" edge to the RunError entity by IDs.
func (_c *RunCreate) AddErrorIDs(ids ...string) *RunCreate {
	_c.mutation.AddErrorIDs(ids...)
	return _c
}

// AddErrors adds the "errors" edges to the RunError entity.
func (_c *RunCreate) AddErrors(v ...*RunError) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddErrorIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the TaskEvaluation entity by IDs.
func (_c *RunCreate) AddEvaluationIDs(ids ...int) *RunCreate {
	_c.mutation.AddEvaluationIDs(ids...)
	return _c
}

// AddEvaluations adds the "evaluations" edges to the TaskEvaluation entity.
func (_c *RunCreate) AddEvaluations(v ...*TaskEvaluation) *RunCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvaluationIDs(ids...)
}

// SetSkillSessionID sets the "skill_session" edge to the SkillSession entity by ID.
func (_c *RunCreate) SetSkillSessionID(id int) *RunCreate {
	_c.mutation.SetSkillSessionID(id)
	return _c
}

// SetNillableSkillSessionID sets the "skill_session" edge to the SkillSession entity by ID if the given value is not nil.
func (_c *RunCreate) SetNillableSkillSessionID(id *int) *RunCreate {
	if id != nil {
		_c = _c.SetSkillSessionID(*id)
	}
	return _c
}

// SetSkillSession sets the "skill_session" edge to the SkillSession entity.
func (_c *RunCreate) SetSkillSession(v *SkillSession) *RunCreate {
	return _c.SetSkillSessionID(v.ID)
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := run.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := run.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		v := run.DefaultCostEstimate
		_c.mutation.SetCostEstimate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.DocsURL(); !ok {
		return &ValidationError{Name: "docs_url", err: errors.New(`ent: missing required field "Run.docs_url"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Run.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Run.started_at"`)}
	}
	if _, ok := _c.mutation.Config(); !ok {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required field "Run.config"`)}
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		return &ValidationError{Name: "cost_estimate", err: errors.New(`ent: missing required field "Run.cost_estimate"`)}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
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
			return nil, fmt.Errorf("unexpected Run.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DocsURL(); ok {
		_spec.SetField(run.FieldDocsURL, field.TypeString, value)
		_node.DocsURL = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(run.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(run.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Totals(); ok {
		_spec.SetField(run.FieldTotals, field.TypeJSON, value)
		_node.Totals = value
	}
	if value, ok := _c.mutation.CostEstimate(); ok {
		_spec.SetField(run.FieldCostEstimate, field.TypeFloat64, value)
		_node.CostEstimate = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WorkersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ErrorsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvaluationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SkillSessionIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
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
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
