// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
	"github.com/dhiyaancnirmal/mintaborate/ent/stepcitation"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskstep"
)

// TaskStepUpdate is the builder for updating TaskStep entities.
type TaskStepUpdate struct {
	config
	hooks    []Hook
	mutation *TaskStepMutation
}

// Where appends a list predicates to the TaskStepUpdate builder.
func (_u *TaskStepUpdate) Where(ps ...predicate.TaskStep) *TaskStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// AddCitationIDs adds the "citations" edge to the StepCitation entity by IDs.
func (_u *TaskStepUpdate) AddCitationIDs(ids ...int) *TaskStepUpdate {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the StepCitation entity.
func (_u *TaskStepUpdate) AddCitations(v ...*StepCitation) *TaskStepUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// Mutation returns the TaskStepMutation object of the builder.
func (_u *TaskStepUpdate) Mutation() *TaskStepMutation {
	return _u.mutation
}

// ClearCitations clears all "citations" edges to the StepCitation entity.
func (_u *TaskStepUpdate) ClearCitations() *TaskStepUpdate {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to StepCitation entities by IDs.
func (_u *TaskStepUpdate) RemoveCitationIDs(ids ...int) *TaskStepUpdate {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to StepCitation entities.
func (_u *TaskStepUpdate) RemoveCitations(v ...*StepCitation) *TaskStepUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskStepUpdate) check() error {
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskStep.execution"`)
	}
	return nil
}

func (_u *TaskStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskstep.Table, taskstep.Columns, sqlgraph.NewFieldSpec(taskstep.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.RetrievalCleared() {
		_spec.ClearField(taskstep.FieldRetrieval, field.TypeJSON)
	}
	if _u.mutation.UsageCleared() {
		_spec.ClearField(taskstep.FieldUsage, field.TypeJSON)
	}
	if _u.mutation.DecisionCleared() {
		_spec.ClearField(taskstep.FieldDecision, field.TypeJSON)
	}
	if _u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCitationsIDs(); len(nodes) > 0 && !_u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CitationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskStepUpdateOne is the builder for updating a single TaskStep entity.
type TaskStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskStepMutation
}

// AddCitationIDs adds the "citations" edge to the StepCitation entity by IDs.
func (_u *TaskStepUpdateOne) AddCitationIDs(ids ...int) *TaskStepUpdateOne {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the StepCitation entity.
func (_u *TaskStepUpdateOne) AddCitations(v ...*StepCitation) *TaskStepUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// Mutation returns the TaskStepMutation object of the builder.
func (_u *TaskStepUpdateOne) Mutation() *TaskStepMutation {
	return _u.mutation
}

// ClearCitations clears all "citations" edges to the StepCitation entity.
func (_u *TaskStepUpdateOne) ClearCitations() *TaskStepUpdateOne {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to StepCitation entities by IDs.
func (_u *TaskStepUpdateOne) RemoveCitationIDs(ids ...int) *TaskStepUpdateOne {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to StepCitation entities.
func (_u *TaskStepUpdateOne) RemoveCitations(v ...*StepCitation) *TaskStepUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// Where appends a list predicates to the TaskStepUpdate builder.
func (_u *TaskStepUpdateOne) Where(ps ...predicate.TaskStep) *TaskStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskStepUpdateOne) Select(field string, fields ...string) *TaskStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskStep entity.
func (_u *TaskStepUpdateOne) Save(ctx context.Context) (*TaskStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskStepUpdateOne) SaveX(ctx context.Context) *TaskStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskStepUpdateOne) check() error {
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskStep.execution"`)
	}
	return nil
}

func (_u *TaskStepUpdateOne) sqlSave(ctx context.Context) (_node *TaskStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskstep.Table, taskstep.Columns, sqlgraph.NewFieldSpec(taskstep.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskstep.FieldID)
		for _, f := range fields {
			if !taskstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskstep.FieldID {
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
	if _u.mutation.RetrievalCleared() {
		_spec.ClearField(taskstep.FieldRetrieval, field.TypeJSON)
	}
	if _u.mutation.UsageCleared() {
		_spec.ClearField(taskstep.FieldUsage, field.TypeJSON)
	}
	if _u.mutation.DecisionCleared() {
		_spec.ClearField(taskstep.FieldDecision, field.TypeJSON)
	}
	if _u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCitationsIDs(); len(nodes) > 0 && !_u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CitationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TaskStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
