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
	"github.com/dhiyaancnirmal/mintaborate/ent/skillsession"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// SkillSessionUpdate is the builder for updating SkillSession entities.
type SkillSessionUpdate struct {
	config
	hooks    []Hook
	mutation *SkillSessionMutation
}

// Where appends a list predicates to the SkillSessionUpdate builder.
func (_u *SkillSessionUpdate) Where(ps ...predicate.SkillSession) *SkillSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SkillSessionUpdate) SetStatus(v skillsession.Status) *SkillSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SkillSessionUpdate) SetNillableStatus(v *skillsession.Status) *SkillSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSourceSkillOrigin sets the "source_skill_origin" field.
func (_u *SkillSessionUpdate) SetSourceSkillOrigin(v skillsession.SourceSkillOrigin) *SkillSessionUpdate {
	_u.mutation.SetSourceSkillOrigin(v)
	return _u
}

// SetNillableSourceSkillOrigin sets the "source_skill_origin" field if the given value is not nil.
func (_u *SkillSessionUpdate) SetNillableSourceSkillOrigin(v *skillsession.SourceSkillOrigin) *SkillSessionUpdate {
	if v != nil {
		_u.SetSourceSkillOrigin(*v)
	}
	return _u
}

// SetBaselineTotals sets the "baseline_totals" field.
func (_u *SkillSessionUpdate) SetBaselineTotals(v *models.Totals) *SkillSessionUpdate {
	_u.mutation.SetBaselineTotals(v)
	return _u
}

// ClearBaselineTotals clears the value of the "baseline_totals" field.
func (_u *SkillSessionUpdate) ClearBaselineTotals() *SkillSessionUpdate {
	_u.mutation.ClearBaselineTotals()
	return _u
}

// SetOptimizedTotals sets the "optimized_totals" field.
func (_u *SkillSessionUpdate) SetOptimizedTotals(v *models.Totals) *SkillSessionUpdate {
	_u.mutation.SetOptimizedTotals(v)
	return _u
}

// ClearOptimizedTotals clears the value of the "optimized_totals" field.
func (_u *SkillSessionUpdate) ClearOptimizedTotals() *SkillSessionUpdate {
	_u.mutation.ClearOptimizedTotals()
	return _u
}

// SetDelta sets the "delta" field.
func (_u *SkillSessionUpdate) SetDelta(v *models.Delta) *SkillSessionUpdate {
	_u.mutation.SetDelta(v)
	return _u
}

// ClearDelta clears the value of the "delta" field.
func (_u *SkillSessionUpdate) ClearDelta() *SkillSessionUpdate {
	_u.mutation.ClearDelta()
	return _u
}

// SetOptimizedSkillHash sets the "optimized_skill_hash" field.
func (_u *SkillSessionUpdate) SetOptimizedSkillHash(v string) *SkillSessionUpdate {
	_u.mutation.SetOptimizedSkillHash(v)
	return _u
}

// SetNillableOptimizedSkillHash sets the "optimized_skill_hash" field if the given value is not nil.
func (_u *SkillSessionUpdate) SetNillableOptimizedSkillHash(v *string) *SkillSessionUpdate {
	if v != nil {
		_u.SetOptimizedSkillHash(*v)
	}
	return _u
}

// ClearOptimizedSkillHash clears the value of the "optimized_skill_hash" field.
func (_u *SkillSessionUpdate) ClearOptimizedSkillHash() *SkillSessionUpdate {
	_u.mutation.ClearOptimizedSkillHash()
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *SkillSessionUpdate) SetTokensIn(v int) *SkillSessionUpdate {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *SkillSessionUpdate) SetNillableTokensIn(v *int) *SkillSessionUpdate {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *SkillSessionUpdate) AddTokensIn(v int) *SkillSessionUpdate {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *SkillSessionUpdate) SetTokensOut(v int) *SkillSessionUpdate {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *SkillSessionUpdate) SetNillableTokensOut(v *int) *SkillSessionUpdate {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *SkillSessionUpdate) AddTokensOut(v int) *SkillSessionUpdate {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *SkillSessionUpdate) SetCostEstimate(v float64) *SkillSessionUpdate {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *SkillSessionUpdate) SetNillableCostEstimate(v *float64) *SkillSessionUpdate {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *SkillSessionUpdate) AddCostEstimate(v float64) *SkillSessionUpdate {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SkillSessionUpdate) SetErrorMessage(v string) *SkillSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SkillSessionUpdate) SetNillableErrorMessage(v *string) *SkillSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SkillSessionUpdate) ClearErrorMessage() *SkillSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillSessionUpdate) SetUpdatedAt(v time.Time) *SkillSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SkillSessionMutation object of the builder.
func (_u *SkillSessionUpdate) Mutation() *SkillSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := skillsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SkillSession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceSkillOrigin(); ok {
		if err := skillsession.SourceSkillOriginValidator(v); err != nil {
			return &ValidationError{Name: "source_skill_origin", err: fmt.Errorf(`ent: validator failed for field "SkillSession.source_skill_origin": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SkillSession.run"`)
	}
	return nil
}

func (_u *SkillSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillsession.Table, skillsession.Columns, sqlgraph.NewFieldSpec(skillsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(skillsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceSkillOrigin(); ok {
		_spec.SetField(skillsession.FieldSourceSkillOrigin, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BaselineTotals(); ok {
		_spec.SetField(skillsession.FieldBaselineTotals, field.TypeJSON, value)
	}
	if _u.mutation.BaselineTotalsCleared() {
		_spec.ClearField(skillsession.FieldBaselineTotals, field.TypeJSON)
	}
	if value, ok := _u.mutation.OptimizedTotals(); ok {
		_spec.SetField(skillsession.FieldOptimizedTotals, field.TypeJSON, value)
	}
	if _u.mutation.OptimizedTotalsCleared() {
		_spec.ClearField(skillsession.FieldOptimizedTotals, field.TypeJSON)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(skillsession.FieldDelta, field.TypeJSON, value)
	}
	if _u.mutation.DeltaCleared() {
		_spec.ClearField(skillsession.FieldDelta, field.TypeJSON)
	}
	if value, ok := _u.mutation.OptimizedSkillHash(); ok {
		_spec.SetField(skillsession.FieldOptimizedSkillHash, field.TypeString, value)
	}
	if _u.mutation.OptimizedSkillHashCleared() {
		_spec.ClearField(skillsession.FieldOptimizedSkillHash, field.TypeString)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(skillsession.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(skillsession.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(skillsession.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(skillsession.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(skillsession.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(skillsession.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(skillsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(skillsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skillsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillSessionUpdateOne is the builder for updating a single SkillSession entity.
type SkillSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillSessionMutation
}

// SetStatus sets the "status" field.
func (_u *SkillSessionUpdateOne) SetStatus(v skillsession.Status) *SkillSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SkillSessionUpdateOne) SetNillableStatus(v *skillsession.Status) *SkillSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSourceSkillOrigin sets the "source_skill_origin" field.
func (_u *SkillSessionUpdateOne) SetSourceSkillOrigin(v skillsession.SourceSkillOrigin) *SkillSessionUpdateOne {
	_u.mutation.SetSourceSkillOrigin(v)
	return _u
}

// SetNillableSourceSkillOrigin sets the "source_skill_origin" field if the given value is not nil.
func (_u *SkillSessionUpdateOne) SetNillableSourceSkillOrigin(v *skillsession.SourceSkillOrigin) *SkillSessionUpdateOne {
	if v != nil {
		_u.SetSourceSkillOrigin(*v)
	}
	return _u
}

// SetBaselineTotals sets the "baseline_totals" field.
func (_u *SkillSessionUpdateOne) SetBaselineTotals(v *models.Totals) *SkillSessionUpdateOne {
	_u.mutation.SetBaselineTotals(v)
	return _u
}

// ClearBaselineTotals clears the value of the "baseline_totals" field.
func (_u *SkillSessionUpdateOne) ClearBaselineTotals() *SkillSessionUpdateOne {
	_u.mutation.ClearBaselineTotals()
	return _u
}

// SetOptimizedTotals sets the "optimized_totals" field.
func (_u *SkillSessionUpdateOne) SetOptimizedTotals(v *models.Totals) *SkillSessionUpdateOne {
	_u.mutation.SetOptimizedTotals(v)
	return _u
}

// ClearOptimizedTotals clears the value of the "optimized_totals" field.
func (_u *SkillSessionUpdateOne) ClearOptimizedTotals() *SkillSessionUpdateOne {
	_u.mutation.ClearOptimizedTotals()
	return _u
}

// SetDelta sets the "delta" field.
func (_u *SkillSessionUpdateOne) SetDelta(v *models.Delta) *SkillSessionUpdateOne {
	_u.mutation.SetDelta(v)
	return _u
}

// ClearDelta clears the value of the "delta" field.
func (_u *SkillSessionUpdateOne) ClearDelta() *SkillSessionUpdateOne {
	_u.mutation.ClearDelta()
	return _u
}

// SetOptimizedSkillHash sets the "optimized_skill_hash" field.
func (_u *SkillSessionUpdateOne) SetOptimizedSkillHash(v string) *SkillSessionUpdateOne {
	_u.mutation.SetOptimizedSkillHash(v)
	return _u
}

// SetNillableOptimizedSkillHash sets the "optimized_skill_hash" field if the given value is not nil.
func (_u *SkillSessionUpdateOne) SetNillableOptimizedSkillHash(v *string) *SkillSessionUpdateOne {
	if v != nil {
		_u.SetOptimizedSkillHash(*v)
	}
	return _u
}

// ClearOptimizedSkillHash clears the value of the "optimized_skill_hash" field.
func (_u *SkillSessionUpdateOne) ClearOptimizedSkillHash() *SkillSessionUpdateOne {
	_u.mutation.ClearOptimizedSkillHash()
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *SkillSessionUpdateOne) SetTokensIn(v int) *SkillSessionUpdateOne {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *SkillSessionUpdateOne) SetNillableTokensIn(v *int) *SkillSessionUpdateOne {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *SkillSessionUpdateOne) AddTokensIn(v int) *SkillSessionUpdateOne {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *SkillSessionUpdateOne) SetTokensOut(v int) *SkillSessionUpdateOne {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *SkillSessionUpdateOne) SetNillableTokensOut(v *int) *SkillSessionUpdateOne {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *SkillSessionUpdateOne) AddTokensOut(v int) *SkillSessionUpdateOne {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *SkillSessionUpdateOne) SetCostEstimate(v float64) *SkillSessionUpdateOne {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *SkillSessionUpdateOne) SetNillableCostEstimate(v *float64) *SkillSessionUpdateOne {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *SkillSessionUpdateOne) AddCostEstimate(v float64) *SkillSessionUpdateOne {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SkillSessionUpdateOne) SetErrorMessage(v string) *SkillSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SkillSessionUpdateOne) SetNillableErrorMessage(v *string) *SkillSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SkillSessionUpdateOne) ClearErrorMessage() *SkillSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillSessionUpdateOne) SetUpdatedAt(v time.Time) *SkillSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SkillSessionMutation object of the builder.
func (_u *SkillSessionUpdateOne) Mutation() *SkillSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillSessionUpdate builder.
func (_u *SkillSessionUpdateOne) Where(ps ...predicate.SkillSession) *SkillSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillSessionUpdateOne) Select(field string, fields ...string) *SkillSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SkillSession entity.
func (_u *SkillSessionUpdateOne) Save(ctx context.Context) (*SkillSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillSessionUpdateOne) SaveX(ctx context.Context) *SkillSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := skillsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SkillSession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceSkillOrigin(); ok {
		if err := skillsession.SourceSkillOriginValidator(v); err != nil {
			return &ValidationError{Name: "source_skill_origin", err: fmt.Errorf(`ent: validator failed for field "SkillSession.source_skill_origin": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SkillSession.run"`)
	}
	return nil
}

func (_u *SkillSessionUpdateOne) sqlSave(ctx context.Context) (_node *SkillSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillsession.Table, skillsession.Columns, sqlgraph.NewFieldSpec(skillsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillsession.FieldID)
		for _, f := range fields {
			if !skillsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillsession.FieldID {
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
		_spec.SetField(skillsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceSkillOrigin(); ok {
		_spec.SetField(skillsession.FieldSourceSkillOrigin, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BaselineTotals(); ok {
		_spec.SetField(skillsession.FieldBaselineTotals, field.TypeJSON, value)
	}
	if _u.mutation.BaselineTotalsCleared() {
		_spec.ClearField(skillsession.FieldBaselineTotals, field.TypeJSON)
	}
	if value, ok := _u.mutation.OptimizedTotals(); ok {
		_spec.SetField(skillsession.FieldOptimizedTotals, field.TypeJSON, value)
	}
	if _u.mutation.OptimizedTotalsCleared() {
		_spec.ClearField(skillsession.FieldOptimizedTotals, field.TypeJSON)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(skillsession.FieldDelta, field.TypeJSON, value)
	}
	if _u.mutation.DeltaCleared() {
		_spec.ClearField(skillsession.FieldDelta, field.TypeJSON)
	}
	if value, ok := _u.mutation.OptimizedSkillHash(); ok {
		_spec.SetField(skillsession.FieldOptimizedSkillHash, field.TypeString, value)
	}
	if _u.mutation.OptimizedSkillHashCleared() {
		_spec.ClearField(skillsession.FieldOptimizedSkillHash, field.TypeString)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(skillsession.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(skillsession.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(skillsession.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(skillsession.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(skillsession.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(skillsession.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(skillsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(skillsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skillsession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SkillSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
