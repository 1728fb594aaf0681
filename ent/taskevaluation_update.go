// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskevaluation"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// TaskEvaluationUpdate is the builder for updating TaskEvaluation entities.
type TaskEvaluationUpdate struct {
	config
	hooks    []Hook
	mutation *TaskEvaluationMutation
}

// Where appends a list predicates to the TaskEvaluationUpdate builder.
func (_u *TaskEvaluationUpdate) Where(ps ...predicate.TaskEvaluation) *TaskEvaluationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCriterionScores sets the "criterion_scores" field.
func (_u *TaskEvaluationUpdate) SetCriterionScores(v models.CriterionScores) *TaskEvaluationUpdate {
	_u.mutation.SetCriterionScores(v)
	return _u
}

// SetNillableCriterionScores sets the "criterion_scores" field if the given value is not nil.
func (_u *TaskEvaluationUpdate) SetNillableCriterionScores(v *models.CriterionScores) *TaskEvaluationUpdate {
	if v != nil {
		_u.SetCriterionScores(*v)
	}
	return _u
}

// SetPass sets the "pass" field.
func (_u *TaskEvaluationUpdate) SetPass(v bool) *TaskEvaluationUpdate {
	_u.mutation.SetPass(v)
	return _u
}

// SetNillablePass sets the "pass" field if the given value is not nil.
func (_u *TaskEvaluationUpdate) SetNillablePass(v *bool) *TaskEvaluationUpdate {
	if v != nil {
		_u.SetPass(*v)
	}
	return _u
}

// SetQualityPass sets the "quality_pass" field.
func (_u *TaskEvaluationUpdate) SetQualityPass(v bool) *TaskEvaluationUpdate {
	_u.mutation.SetQualityPass(v)
	return _u
}

// SetNillableQualityPass sets the "quality_pass" field if the given value is not nil.
func (_u *TaskEvaluationUpdate) SetNillableQualityPass(v *bool) *TaskEvaluationUpdate {
	if v != nil {
		_u.SetQualityPass(*v)
	}
	return _u
}

// SetValidityPass sets the "validity_pass" field.
func (_u *TaskEvaluationUpdate) SetValidityPass(v bool) *TaskEvaluationUpdate {
	_u.mutation.SetValidityPass(v)
	return _u
}

// SetNillableValidityPass sets the "validity_pass" field if the given value is not nil.
func (_u *TaskEvaluationUpdate) SetNillableValidityPass(v *bool) *TaskEvaluationUpdate {
	if v != nil {
		_u.SetValidityPass(*v)
	}
	return _u
}

// SetValidityBlockedReasons sets the "validity_blocked_reasons" field.
func (_u *TaskEvaluationUpdate) SetValidityBlockedReasons(v []models.ValidityBlockReason) *TaskEvaluationUpdate {
	_u.mutation.SetValidityBlockedReasons(v)
	return _u
}

// AppendValidityBlockedReasons appends value to the "validity_blocked_reasons" field.
func (_u *TaskEvaluationUpdate) AppendValidityBlockedReasons(v []models.ValidityBlockReason) *TaskEvaluationUpdate {
	_u.mutation.AppendValidityBlockedReasons(v)
	return _u
}

// ClearValidityBlockedReasons clears the value of the "validity_blocked_reasons" field.
func (_u *TaskEvaluationUpdate) ClearValidityBlockedReasons() *TaskEvaluationUpdate {
	_u.mutation.ClearValidityBlockedReasons()
	return _u
}

// SetFailureClass sets the "failure_class" field.
func (_u *TaskEvaluationUpdate) SetFailureClass(v string) *TaskEvaluationUpdate {
	_u.mutation.SetFailureClass(v)
	return _u
}

// SetNillableFailureClass sets the "failure_class" field if the given value is not nil.
func (_u *TaskEvaluationUpdate) SetNillableFailureClass(v *string) *TaskEvaluationUpdate {
	if v != nil {
		_u.SetFailureClass(*v)
	}
	return _u
}

// ClearFailureClass clears the value of the "failure_class" field.
func (_u *TaskEvaluationUpdate) ClearFailureClass() *TaskEvaluationUpdate {
	_u.mutation.ClearFailureClass()
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *TaskEvaluationUpdate) SetRationale(v string) *TaskEvaluationUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *TaskEvaluationUpdate) SetNillableRationale(v *string) *TaskEvaluationUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetJudgeModel sets the "judge_model" field.
func (_u *TaskEvaluationUpdate) SetJudgeModel(v string) *TaskEvaluationUpdate {
	_u.mutation.SetJudgeModel(v)
	return _u
}

// SetNillableJudgeModel sets the "judge_model" field if the given value is not nil.
func (_u *TaskEvaluationUpdate) SetNillableJudgeModel(v *string) *TaskEvaluationUpdate {
	if v != nil {
		_u.SetJudgeModel(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TaskEvaluationUpdate) SetConfidence(v float64) *TaskEvaluationUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TaskEvaluationUpdate) SetNillableConfidence(v *float64) *TaskEvaluationUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TaskEvaluationUpdate) AddConfidence(v float64) *TaskEvaluationUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the TaskEvaluationMutation object of the builder.
func (_u *TaskEvaluationUpdate) Mutation() *TaskEvaluationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskEvaluationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskEvaluationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskEvaluationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskEvaluationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskEvaluationUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskEvaluation.run"`)
	}
	return nil
}

func (_u *TaskEvaluationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskevaluation.Table, taskevaluation.Columns, sqlgraph.NewFieldSpec(taskevaluation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CriterionScores(); ok {
		_spec.SetField(taskevaluation.FieldCriterionScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Pass(); ok {
		_spec.SetField(taskevaluation.FieldPass, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QualityPass(); ok {
		_spec.SetField(taskevaluation.FieldQualityPass, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidityPass(); ok {
		_spec.SetField(taskevaluation.FieldValidityPass, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidityBlockedReasons(); ok {
		_spec.SetField(taskevaluation.FieldValidityBlockedReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidityBlockedReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskevaluation.FieldValidityBlockedReasons, value)
		})
	}
	if _u.mutation.ValidityBlockedReasonsCleared() {
		_spec.ClearField(taskevaluation.FieldValidityBlockedReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureClass(); ok {
		_spec.SetField(taskevaluation.FieldFailureClass, field.TypeString, value)
	}
	if _u.mutation.FailureClassCleared() {
		_spec.ClearField(taskevaluation.FieldFailureClass, field.TypeString)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(taskevaluation.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.JudgeModel(); ok {
		_spec.SetField(taskevaluation.FieldJudgeModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(taskevaluation.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(taskevaluation.FieldConfidence, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskevaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskEvaluationUpdateOne is the builder for updating a single TaskEvaluation entity.
type TaskEvaluationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskEvaluationMutation
}

// SetCriterionScores sets the "criterion_scores" field.
func (_u *TaskEvaluationUpdateOne) SetCriterionScores(v models.CriterionScores) *TaskEvaluationUpdateOne {
	_u.mutation.SetCriterionScores(v)
	return _u
}

// SetNillableCriterionScores sets the "criterion_scores" field if the given value is not nil.
func (_u *TaskEvaluationUpdateOne) SetNillableCriterionScores(v *models.CriterionScores) *TaskEvaluationUpdateOne {
	if v != nil {
		_u.SetCriterionScores(*v)
	}
	return _u
}

// SetPass sets the "pass" field.
func (_u *TaskEvaluationUpdateOne) SetPass(v bool) *TaskEvaluationUpdateOne {
	_u.mutation.SetPass(v)
	return _u
}

// SetNillablePass sets the "pass" field if the given value is not nil.
func (_u *TaskEvaluationUpdateOne) SetNillablePass(v *bool) *TaskEvaluationUpdateOne {
	if v != nil {
		_u.SetPass(*v)
	}
	return _u
}

// SetQualityPass sets the "quality_pass" field.
func (_u *TaskEvaluationUpdateOne) SetQualityPass(v bool) *TaskEvaluationUpdateOne {
	_u.mutation.SetQualityPass(v)
	return _u
}

// SetNillableQualityPass sets the "quality_pass" field if the given value is not nil.
func (_u *TaskEvaluationUpdateOne) SetNillableQualityPass(v *bool) *TaskEvaluationUpdateOne {
	if v != nil {
		_u.SetQualityPass(*v)
	}
	return _u
}

// SetValidityPass sets the "validity_pass" field.
func (_u *TaskEvaluationUpdateOne) SetValidityPass(v bool) *TaskEvaluationUpdateOne {
	_u.mutation.SetValidityPass(v)
	return _u
}

// SetNillableValidityPass sets the "validity_pass" field if the given value is not nil.
func (_u *TaskEvaluationUpdateOne) SetNillableValidityPass(v *bool) *TaskEvaluationUpdateOne {
	if v != nil {
		_u.SetValidityPass(*v)
	}
	return _u
}

// SetValidityBlockedReasons sets the "validity_blocked_reasons" field.
func (_u *TaskEvaluationUpdateOne) SetValidityBlockedReasons(v []models.ValidityBlockReason) *TaskEvaluationUpdateOne {
	_u.mutation.SetValidityBlockedReasons(v)
	return _u
}

// AppendValidityBlockedReasons appends value to the "validity_blocked_reasons" field.
func (_u *TaskEvaluationUpdateOne) AppendValidityBlockedReasons(v []models.ValidityBlockReason) *TaskEvaluationUpdateOne {
	_u.mutation.AppendValidityBlockedReasons(v)
	return _u
}

// ClearValidityBlockedReasons clears the value of the "validity_blocked_reasons" field.
func (_u *TaskEvaluationUpdateOne) ClearValidityBlockedReasons() *TaskEvaluationUpdateOne {
	_u.mutation.ClearValidityBlockedReasons()
	return _u
}

// SetFailureClass sets the "failure_class" field.
func (_u *TaskEvaluationUpdateOne) SetFailureClass(v string) *TaskEvaluationUpdateOne {
	_u.mutation.SetFailureClass(v)
	return _u
}

// SetNillableFailureClass sets the "failure_class" field if the given value is not nil.
func (_u *TaskEvaluationUpdateOne) SetNillableFailureClass(v *string) *TaskEvaluationUpdateOne {
	if v != nil {
		_u.SetFailureClass(*v)
	}
	return _u
}

// ClearFailureClass clears the value of the "failure_class" field.
func (_u *TaskEvaluationUpdateOne) ClearFailureClass() *TaskEvaluationUpdateOne {
	_u.mutation.ClearFailureClass()
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *TaskEvaluationUpdateOne) SetRationale(v string) *TaskEvaluationUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *TaskEvaluationUpdateOne) SetNillableRationale(v *string) *TaskEvaluationUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetJudgeModel sets the "judge_model" field.
func (_u *TaskEvaluationUpdateOne) SetJudgeModel(v string) *TaskEvaluationUpdateOne {
	_u.mutation.SetJudgeModel(v)
	return _u
}

// SetNillableJudgeModel sets the "judge_model" field if the given value is not nil.
func (_u *TaskEvaluationUpdateOne) SetNillableJudgeModel(v *string) *TaskEvaluationUpdateOne {
	if v != nil {
		_u.SetJudgeModel(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TaskEvaluationUpdateOne) SetConfidence(v float64) *TaskEvaluationUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TaskEvaluationUpdateOne) SetNillableConfidence(v *float64) *TaskEvaluationUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TaskEvaluationUpdateOne) AddConfidence(v float64) *TaskEvaluationUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the TaskEvaluationMutation object of the builder.
func (_u *TaskEvaluationUpdateOne) Mutation() *TaskEvaluationMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskEvaluationUpdate builder.
func (_u *TaskEvaluationUpdateOne) Where(ps ...predicate.TaskEvaluation) *TaskEvaluationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskEvaluationUpdateOne) Select(field string, fields ...string) *TaskEvaluationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskEvaluation entity.
func (_u *TaskEvaluationUpdateOne) Save(ctx context.Context) (*TaskEvaluation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskEvaluationUpdateOne) SaveX(ctx context.Context) *TaskEvaluation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskEvaluationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskEvaluationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskEvaluationUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskEvaluation.run"`)
	}
	return nil
}

func (_u *TaskEvaluationUpdateOne) sqlSave(ctx context.Context) (_node *TaskEvaluation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskevaluation.Table, taskevaluation.Columns, sqlgraph.NewFieldSpec(taskevaluation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskEvaluation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskevaluation.FieldID)
		for _, f := range fields {
			if !taskevaluation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskevaluation.FieldID {
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
	if value, ok := _u.mutation.CriterionScores(); ok {
		_spec.SetField(taskevaluation.FieldCriterionScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Pass(); ok {
		_spec.SetField(taskevaluation.FieldPass, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QualityPass(); ok {
		_spec.SetField(taskevaluation.FieldQualityPass, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidityPass(); ok {
		_spec.SetField(taskevaluation.FieldValidityPass, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidityBlockedReasons(); ok {
		_spec.SetField(taskevaluation.FieldValidityBlockedReasons, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidityBlockedReasons(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskevaluation.FieldValidityBlockedReasons, value)
		})
	}
	if _u.mutation.ValidityBlockedReasonsCleared() {
		_spec.ClearField(taskevaluation.FieldValidityBlockedReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureClass(); ok {
		_spec.SetField(taskevaluation.FieldFailureClass, field.TypeString, value)
	}
	if _u.mutation.FailureClassCleared() {
		_spec.ClearField(taskevaluation.FieldFailureClass, field.TypeString)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(taskevaluation.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.JudgeModel(); ok {
		_spec.SetField(taskevaluation.FieldJudgeModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(taskevaluation.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(taskevaluation.FieldConfidence, field.TypeFloat64, value)
	}
	_node = &TaskEvaluation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskevaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
