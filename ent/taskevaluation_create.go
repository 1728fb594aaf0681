// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dhiyaancnirmal/mintaborate/ent/run"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskevaluation"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// TaskEvaluationCreate is the builder for creating a TaskEvaluation entity.
type TaskEvaluationCreate struct {
	config
	mutation *TaskEvaluationMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *TaskEvaluationCreate) SetRunID(v string) *TaskEvaluationCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *TaskEvaluationCreate) SetTaskID(v string) *TaskEvaluationCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *TaskEvaluationCreate) SetPhase(v taskevaluation.Phase) *TaskEvaluationCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetCriterionScores sets the "criterion_scores" field.
func (_c *TaskEvaluationCreate) SetCriterionScores(v models.CriterionScores) *TaskEvaluationCreate {
	_c.mutation.SetCriterionScores(v)
	return _c
}

// SetPass sets the "pass" field.
func (_c *TaskEvaluationCreate) SetPass(v bool) *TaskEvaluationCreate {
	_c.mutation.SetPass(v)
	return _c
}

// SetQualityPass sets the "quality_pass" field.
func (_c *TaskEvaluationCreate) SetQualityPass(v bool) *TaskEvaluationCreate {
	_c.mutation.SetQualityPass(v)
	return _c
}

// SetValidityPass sets the "validity_pass" field.
func (_c *TaskEvaluationCreate) SetValidityPass(v bool) *TaskEvaluationCreate {
	_c.mutation.SetValidityPass(v)
	return _c
}

// SetValidityBlockedReasons sets the "validity_blocked_reasons" field.
func (_c *TaskEvaluationCreate) SetValidityBlockedReasons(v []models.ValidityBlockReason) *TaskEvaluationCreate {
	_c.mutation.SetValidityBlockedReasons(v)
	return _c
}

// SetFailureClass sets the "failure_class" field.
func (_c *TaskEvaluationCreate) SetFailureClass(v string) *TaskEvaluationCreate {
	_c.mutation.SetFailureClass(v)
	return _c
}

// SetNillableFailureClass sets the "failure_class" field if the given value is not nil.
func (_c *TaskEvaluationCreate) SetNillableFailureClass(v *string) *TaskEvaluationCreate {
	if v != nil {
		_c.SetFailureClass(*v)
	}
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *TaskEvaluationCreate) SetRationale(v string) *TaskEvaluationCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetJudgeModel sets the "judge_model" field.
func (_c *TaskEvaluationCreate) SetJudgeModel(v string) *TaskEvaluationCreate {
	_c.mutation.SetJudgeModel(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *TaskEvaluationCreate) SetConfidence(v float64) *TaskEvaluationCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *TaskEvaluationCreate) SetRun(v *Run) *TaskEvaluationCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the TaskEvaluationMutation object of the builder.
func (_c *TaskEvaluationCreate) Mutation() *TaskEvaluationMutation {
	return _c.mutation
}

// Save creates the TaskEvaluation in the database.
func (_c *TaskEvaluationCreate) Save(ctx context.Context) (*TaskEvaluation, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskEvaluationCreate) SaveX(ctx context.Context) *TaskEvaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskEvaluationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskEvaluationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskEvaluationCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "TaskEvaluation.run_id"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskEvaluation.task_id"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "TaskEvaluation.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := taskevaluation.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "TaskEvaluation.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CriterionScores(); !ok {
		return &ValidationError{Name: "criterion_scores", err: errors.New(`ent: missing required field "TaskEvaluation.criterion_scores"`)}
	}
	if _, ok := _c.mutation.Pass(); !ok {
		return &ValidationError{Name: "pass", err: errors.New(`ent: missing required field "TaskEvaluation.pass"`)}
	}
	if _, ok := _c.mutation.QualityPass(); !ok {
		return &ValidationError{Name: "quality_pass", err: errors.New(`ent: missing required field "TaskEvaluation.quality_pass"`)}
	}
	if _, ok := _c.mutation.ValidityPass(); !ok {
		return &ValidationError{Name: "validity_pass", err: errors.New(`ent: missing required field "TaskEvaluation.validity_pass"`)}
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		return &ValidationError{Name: "rationale", err: errors.New(`ent: missing required field "TaskEvaluation.rationale"`)}
	}
	if _, ok := _c.mutation.JudgeModel(); !ok {
		return &ValidationError{Name: "judge_model", err: errors.New(`ent: missing required field "TaskEvaluation.judge_model"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "TaskEvaluation.confidence"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "TaskEvaluation.run"`)}
	}
	return nil
}

func (_c *TaskEvaluationCreate) sqlSave(ctx context.Context) (*TaskEvaluation, error) {
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

func (_c *TaskEvaluationCreate) createSpec() (*TaskEvaluation, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskEvaluation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskevaluation.Table, sqlgraph.NewFieldSpec(taskevaluation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(taskevaluation.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(taskevaluation.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.CriterionScores(); ok {
		_spec.SetField(taskevaluation.FieldCriterionScores, field.TypeJSON, value)
		_node.CriterionScores = value
	}
	if value, ok := _c.mutation.Pass(); ok {
		_spec.SetField(taskevaluation.FieldPass, field.TypeBool, value)
		_node.Pass = value
	}
	if value, ok := _c.mutation.QualityPass(); ok {
		_spec.SetField(taskevaluation.FieldQualityPass, field.TypeBool, value)
		_node.QualityPass = value
	}
	if value, ok := _c.mutation.ValidityPass(); ok {
		_spec.SetField(taskevaluation.FieldValidityPass, field.TypeBool, value)
		_node.ValidityPass = value
	}
	if value, ok := _c.mutation.ValidityBlockedReasons(); ok {
		_spec.SetField(taskevaluation.FieldValidityBlockedReasons, field.TypeJSON, value)
		_node.ValidityBlockedReasons = value
	}
	if value, ok := _c.mutation.FailureClass(); ok {
		_spec.SetField(taskevaluation.FieldFailureClass, field.TypeString, value)
		_node.FailureClass = &value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(taskevaluation.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	if value, ok := _c.mutation.JudgeModel(); ok {
		_spec.SetField(taskevaluation.FieldJudgeModel, field.TypeString, value)
		_node.JudgeModel = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(taskevaluation.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskevaluation.RunTable,
			Columns: []string{taskevaluation.RunColumn},
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

// TaskEvaluationCreateBulk is the builder for creating many TaskEvaluation entities in bulk.
type TaskEvaluationCreateBulk struct {
	config
	err      error
	builders []*TaskEvaluationCreate
}

// Save creates the TaskEvaluation entities in the database.
func (_c *TaskEvaluationCreateBulk) Save(ctx context.Context) ([]*TaskEvaluation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskEvaluation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskEvaluationMutation)
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
func (_c *TaskEvaluationCreateBulk) SaveX(ctx context.Context) []*TaskEvaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskEvaluationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskEvaluationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
