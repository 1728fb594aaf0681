// Code generated by ent, DO NOT EDIT.

package taskevaluation

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldRunID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldTaskID, v))
}

// Pass applies equality check predicate on the "pass" field. It's identical to PassEQ.
func Pass(v bool) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldPass, v))
}

// QualityPass applies equality check predicate on the "quality_pass" field. It's identical to QualityPassEQ.
func QualityPass(v bool) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldQualityPass, v))
}

// ValidityPass applies equality check predicate on the "validity_pass" field. It's identical to ValidityPassEQ.
func ValidityPass(v bool) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldValidityPass, v))
}

// FailureClass applies equality check predicate on the "failure_class" field. It's identical to FailureClassEQ.
func FailureClass(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldFailureClass, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldRationale, v))
}

// JudgeModel applies equality check predicate on the "judge_model" field. It's identical to JudgeModelEQ.
func JudgeModel(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldJudgeModel, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldConfidence, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldContainsFold(FieldRunID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldContainsFold(FieldTaskID, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v Phase) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v Phase) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...Phase) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...Phase) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNotIn(FieldPhase, vs...))
}

// PassEQ applies the EQ predicate on the "pass" field.
func PassEQ(v bool) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldPass, v))
}

// PassNEQ applies the NEQ predicate on the "pass" field.
func PassNEQ(v bool) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNEQ(FieldPass, v))
}

// QualityPassEQ applies the EQ predicate on the "quality_pass" field.
func QualityPassEQ(v bool) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldQualityPass, v))
}

// QualityPassNEQ applies the NEQ predicate on the "quality_pass" field.
func QualityPassNEQ(v bool) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNEQ(FieldQualityPass, v))
}

// ValidityPassEQ applies the EQ predicate on the "validity_pass" field.
func ValidityPassEQ(v bool) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldValidityPass, v))
}

// ValidityPassNEQ applies the NEQ predicate on the "validity_pass" field.
func ValidityPassNEQ(v bool) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNEQ(FieldValidityPass, v))
}

// ValidityBlockedReasonsIsNil applies the IsNil predicate on the "validity_blocked_reasons" field.
func ValidityBlockedReasonsIsNil() predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldIsNull(FieldValidityBlockedReasons))
}

// ValidityBlockedReasonsNotNil applies the NotNil predicate on the "validity_blocked_reasons" field.
func ValidityBlockedReasonsNotNil() predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNotNull(FieldValidityBlockedReasons))
}

// FailureClassEQ applies the EQ predicate on the "failure_class" field.
func FailureClassEQ(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldFailureClass, v))
}

// FailureClassNEQ applies the NEQ predicate on the "failure_class" field.
func FailureClassNEQ(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNEQ(FieldFailureClass, v))
}

// FailureClassIn applies the In predicate on the "failure_class" field.
func FailureClassIn(vs ...string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldIn(FieldFailureClass, vs...))
}

// FailureClassNotIn applies the NotIn predicate on the "failure_class" field.
func FailureClassNotIn(vs ...string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNotIn(FieldFailureClass, vs...))
}

// FailureClassGT applies the GT predicate on the "failure_class" field.
func FailureClassGT(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldGT(FieldFailureClass, v))
}

// FailureClassGTE applies the GTE predicate on the "failure_class" field.
func FailureClassGTE(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldGTE(FieldFailureClass, v))
}

// FailureClassLT applies the LT predicate on the "failure_class" field.
func FailureClassLT(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldLT(FieldFailureClass, v))
}

// FailureClassLTE applies the LTE predicate on the "failure_class" field.
func FailureClassLTE(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldLTE(FieldFailureClass, v))
}

// FailureClassContains applies the Contains predicate on the "failure_class" field.
func FailureClassContains(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldContains(FieldFailureClass, v))
}

// FailureClassHasPrefix applies the HasPrefix predicate on the "failure_class" field.
func FailureClassHasPrefix(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldHasPrefix(FieldFailureClass, v))
}

// FailureClassHasSuffix applies the HasSuffix predicate on the "failure_class" field.
func FailureClassHasSuffix(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldHasSuffix(FieldFailureClass, v))
}

// FailureClassIsNil applies the IsNil predicate on the "failure_class" field.
func FailureClassIsNil() predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldIsNull(FieldFailureClass))
}

// FailureClassNotNil applies the NotNil predicate on the "failure_class" field.
func FailureClassNotNil() predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNotNull(FieldFailureClass))
}

// FailureClassEqualFold applies the EqualFold predicate on the "failure_class" field.
func FailureClassEqualFold(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEqualFold(FieldFailureClass, v))
}

// FailureClassContainsFold applies the ContainsFold predicate on the "failure_class" field.
func FailureClassContainsFold(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldContainsFold(FieldFailureClass, v))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldContainsFold(FieldRationale, v))
}

// JudgeModelEQ applies the EQ predicate on the "judge_model" field.
func JudgeModelEQ(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldJudgeModel, v))
}

// JudgeModelNEQ applies the NEQ predicate on the "judge_model" field.
func JudgeModelNEQ(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNEQ(FieldJudgeModel, v))
}

// JudgeModelIn applies the In predicate on the "judge_model" field.
func JudgeModelIn(vs ...string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldIn(FieldJudgeModel, vs...))
}

// JudgeModelNotIn applies the NotIn predicate on the "judge_model" field.
func JudgeModelNotIn(vs ...string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNotIn(FieldJudgeModel, vs...))
}

// JudgeModelGT applies the GT predicate on the "judge_model" field.
func JudgeModelGT(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldGT(FieldJudgeModel, v))
}

// JudgeModelGTE applies the GTE predicate on the "judge_model" field.
func JudgeModelGTE(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldGTE(FieldJudgeModel, v))
}

// JudgeModelLT applies the LT predicate on the "judge_model" field.
func JudgeModelLT(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldLT(FieldJudgeModel, v))
}

// JudgeModelLTE applies the LTE predicate on the "judge_model" field.
func JudgeModelLTE(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldLTE(FieldJudgeModel, v))
}

// JudgeModelContains applies the Contains predicate on the "judge_model" field.
func JudgeModelContains(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldContains(FieldJudgeModel, v))
}

// JudgeModelHasPrefix applies the HasPrefix predicate on the "judge_model" field.
func JudgeModelHasPrefix(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldHasPrefix(FieldJudgeModel, v))
}

// JudgeModelHasSuffix applies the HasSuffix predicate on the "judge_model" field.
func JudgeModelHasSuffix(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldHasSuffix(FieldJudgeModel, v))
}

// JudgeModelEqualFold applies the EqualFold predicate on the "judge_model" field.
func JudgeModelEqualFold(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEqualFold(FieldJudgeModel, v))
}

// JudgeModelContainsFold applies the ContainsFold predicate on the "judge_model" field.
func JudgeModelContainsFold(v string) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldContainsFold(FieldJudgeModel, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.FieldLTE(FieldConfidence, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.TaskEvaluation {
	return predicate.TaskEvaluation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskEvaluation) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskEvaluation) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskEvaluation) predicate.TaskEvaluation {
	return predicate.TaskEvaluation(sql.NotPredicates(p))
}
