// Code generated by ent, DO NOT EDIT.

package skillsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldRunID, v))
}

// OptimizedSkillHash applies equality check predicate on the "optimized_skill_hash" field. It's identical to OptimizedSkillHashEQ.
func OptimizedSkillHash(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldOptimizedSkillHash, v))
}

// TokensIn applies equality check predicate on the "tokens_in" field. It's identical to TokensInEQ.
func TokensIn(v int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldTokensIn, v))
}

// TokensOut applies equality check predicate on the "tokens_out" field. It's identical to TokensOutEQ.
func TokensOut(v int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldTokensOut, v))
}

// CostEstimate applies equality check predicate on the "cost_estimate" field. It's identical to CostEstimateEQ.
func CostEstimate(v float64) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldCostEstimate, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldErrorMessage, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldContainsFold(FieldRunID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNotIn(FieldStatus, vs...))
}

// SourceSkillOriginEQ applies the EQ predicate on the "source_skill_origin" field.
func SourceSkillOriginEQ(v SourceSkillOrigin) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldSourceSkillOrigin, v))
}

// SourceSkillOriginNEQ applies the NEQ predicate on the "source_skill_origin" field.
func SourceSkillOriginNEQ(v SourceSkillOrigin) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNEQ(FieldSourceSkillOrigin, v))
}

// SourceSkillOriginIn applies the In predicate on the "source_skill_origin" field.
func SourceSkillOriginIn(vs ...SourceSkillOrigin) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldIn(FieldSourceSkillOrigin, vs...))
}

// SourceSkillOriginNotIn applies the NotIn predicate on the "source_skill_origin" field.
func SourceSkillOriginNotIn(vs ...SourceSkillOrigin) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNotIn(FieldSourceSkillOrigin, vs...))
}

// BaselineTotalsIsNil applies the IsNil predicate on the "baseline_totals" field.
func BaselineTotalsIsNil() predicate.SkillSession {
	return predicate.SkillSession(sql.FieldIsNull(FieldBaselineTotals))
}

// BaselineTotalsNotNil applies the NotNil predicate on the "baseline_totals" field.
func BaselineTotalsNotNil() predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNotNull(FieldBaselineTotals))
}

// OptimizedTotalsIsNil applies the IsNil predicate on the "optimized_totals" field.
func OptimizedTotalsIsNil() predicate.SkillSession {
	return predicate.SkillSession(sql.FieldIsNull(FieldOptimizedTotals))
}

// OptimizedTotalsNotNil applies the NotNil predicate on the "optimized_totals" field.
func OptimizedTotalsNotNil() predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNotNull(FieldOptimizedTotals))
}

// DeltaIsNil applies the IsNil predicate on the "delta" field.
func DeltaIsNil() predicate.SkillSession {
	return predicate.SkillSession(sql.FieldIsNull(FieldDelta))
}

// DeltaNotNil applies the NotNil predicate on the "delta" field.
func DeltaNotNil() predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNotNull(FieldDelta))
}

// OptimizedSkillHashEQ applies the EQ predicate on the "optimized_skill_hash" field.
func OptimizedSkillHashEQ(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldOptimizedSkillHash, v))
}

// OptimizedSkillHashNEQ applies the NEQ predicate on the "optimized_skill_hash" field.
func OptimizedSkillHashNEQ(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNEQ(FieldOptimizedSkillHash, v))
}

// OptimizedSkillHashIn applies the In predicate on the "optimized_skill_hash" field.
func OptimizedSkillHashIn(vs ...string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldIn(FieldOptimizedSkillHash, vs...))
}

// OptimizedSkillHashNotIn applies the NotIn predicate on the "optimized_skill_hash" field.
func OptimizedSkillHashNotIn(vs ...string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNotIn(FieldOptimizedSkillHash, vs...))
}

// OptimizedSkillHashGT applies the GT predicate on the "optimized_skill_hash" field.
func OptimizedSkillHashGT(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldGT(FieldOptimizedSkillHash, v))
}

// OptimizedSkillHashGTE applies the GTE predicate on the "optimized_skill_hash" field.
func OptimizedSkillHashGTE(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldGTE(FieldOptimizedSkillHash, v))
}

// OptimizedSkillHashLT applies the LT predicate on the "optimized_skill_hash" field.
func OptimizedSkillHashLT(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldLT(FieldOptimizedSkillHash, v))
}

// OptimizedSkillHashLTE applies the LTE predicate on the "optimized_skill_hash" field.
func OptimizedSkillHashLTE(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldLTE(FieldOptimizedSkillHash, v))
}

// OptimizedSkillHashContains applies the Contains predicate on the "optimized_skill_hash" field.
func OptimizedSkillHashContains(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldContains(FieldOptimizedSkillHash, v))
}

// OptimizedSkillHashHasPrefix applies the HasPrefix predicate on the "optimized_skill_hash" field.
func OptimizedSkillHashHasPrefix(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldHasPrefix(FieldOptimizedSkillHash, v))
}

// OptimizedSkillHashHasSuffix applies the HasSuffix predicate on the "optimized_skill_hash" field.
func OptimizedSkillHashHasSuffix(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldHasSuffix(FieldOptimizedSkillHash, v))
}

// OptimizedSkillHashIsNil applies the IsNil predicate on the "optimized_skill_hash" field.
func OptimizedSkillHashIsNil() predicate.SkillSession {
	return predicate.SkillSession(sql.FieldIsNull(FieldOptimizedSkillHash))
}

// OptimizedSkillHashNotNil applies the NotNil predicate on the "optimized_skill_hash" field.
func OptimizedSkillHashNotNil() predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNotNull(FieldOptimizedSkillHash))
}

// OptimizedSkillHashEqualFold applies the EqualFold predicate on the "optimized_skill_hash" field.
func OptimizedSkillHashEqualFold(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEqualFold(FieldOptimizedSkillHash, v))
}

// OptimizedSkillHashContainsFold applies the ContainsFold predicate on the "optimized_skill_hash" field.
func OptimizedSkillHashContainsFold(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldContainsFold(FieldOptimizedSkillHash, v))
}

// TokensInEQ applies the EQ predicate on the "tokens_in" field.
func TokensInEQ(v int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldTokensIn, v))
}

// TokensInNEQ applies the NEQ predicate on the "tokens_in" field.
func TokensInNEQ(v int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNEQ(FieldTokensIn, v))
}

// TokensInIn applies the In predicate on the "tokens_in" field.
func TokensInIn(vs ...int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldIn(FieldTokensIn, vs...))
}

// TokensInNotIn applies the NotIn predicate on the "tokens_in" field.
func TokensInNotIn(vs ...int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNotIn(FieldTokensIn, vs...))
}

// TokensInGT applies the GT predicate on the "tokens_in" field.
func TokensInGT(v int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldGT(FieldTokensIn, v))
}

// TokensInGTE applies the GTE predicate on the "tokens_in" field.
func TokensInGTE(v int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldGTE(FieldTokensIn, v))
}

// TokensInLT applies the LT predicate on the "tokens_in" field.
func TokensInLT(v int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldLT(FieldTokensIn, v))
}

// TokensInLTE applies the LTE predicate on the "tokens_in" field.
func TokensInLTE(v int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldLTE(FieldTokensIn, v))
}

// TokensOutEQ applies the EQ predicate on the "tokens_out" field.
func TokensOutEQ(v int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldTokensOut, v))
}

// TokensOutNEQ applies the NEQ predicate on the "tokens_out" field.
func TokensOutNEQ(v int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNEQ(FieldTokensOut, v))
}

// TokensOutIn applies the In predicate on the "tokens_out" field.
func TokensOutIn(vs ...int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldIn(FieldTokensOut, vs...))
}

// TokensOutNotIn applies the NotIn predicate on the "tokens_out" field.
func TokensOutNotIn(vs ...int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNotIn(FieldTokensOut, vs...))
}

// TokensOutGT applies the GT predicate on the "tokens_out" field.
func TokensOutGT(v int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldGT(FieldTokensOut, v))
}

// TokensOutGTE applies the GTE predicate on the "tokens_out" field.
func TokensOutGTE(v int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldGTE(FieldTokensOut, v))
}

// TokensOutLT applies the LT predicate on the "tokens_out" field.
func TokensOutLT(v int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldLT(FieldTokensOut, v))
}

// TokensOutLTE applies the LTE predicate on the "tokens_out" field.
func TokensOutLTE(v int) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldLTE(FieldTokensOut, v))
}

// CostEstimateEQ applies the EQ predicate on the "cost_estimate" field.
func CostEstimateEQ(v float64) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldCostEstimate, v))
}

// CostEstimateNEQ applies the NEQ predicate on the "cost_estimate" field.
func CostEstimateNEQ(v float64) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNEQ(FieldCostEstimate, v))
}

// CostEstimateIn applies the In predicate on the "cost_estimate" field.
func CostEstimateIn(vs ...float64) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldIn(FieldCostEstimate, vs...))
}

// CostEstimateNotIn applies the NotIn predicate on the "cost_estimate" field.
func CostEstimateNotIn(vs ...float64) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNotIn(FieldCostEstimate, vs...))
}

// CostEstimateGT applies the GT predicate on the "cost_estimate" field.
func CostEstimateGT(v float64) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldGT(FieldCostEstimate, v))
}

// CostEstimateGTE applies the GTE predicate on the "cost_estimate" field.
func CostEstimateGTE(v float64) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldGTE(FieldCostEstimate, v))
}

// CostEstimateLT applies the LT predicate on the "cost_estimate" field.
func CostEstimateLT(v float64) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldLT(FieldCostEstimate, v))
}

// CostEstimateLTE applies the LTE predicate on the "cost_estimate" field.
func CostEstimateLTE(v float64) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldLTE(FieldCostEstimate, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.SkillSession {
	return predicate.SkillSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SkillSession {
	return predicate.SkillSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.SkillSession {
	return predicate.SkillSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.SkillSession {
	return predicate.SkillSession(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SkillSession) predicate.SkillSession {
	return predicate.SkillSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SkillSession) predicate.SkillSession {
	return predicate.SkillSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SkillSession) predicate.SkillSession {
	return predicate.SkillSession(sql.NotPredicates(p))
}
