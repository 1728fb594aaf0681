// Code generated by ent, DO NOT EDIT.

package taskevaluation

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the taskevaluation type in the database.
	Label = "task_evaluation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldCriterionScores holds the string denoting the criterion_scores field in the database.
	FieldCriterionScores = "criterion_scores"
	// FieldPass holds the string denoting the pass field in the database.
	FieldPass = "pass"
	// FieldQualityPass holds the string denoting the quality_pass field in the database.
	FieldQualityPass = "quality_pass"
	// FieldValidityPass holds the string denoting the validity_pass field in the database.
	FieldValidityPass = "validity_pass"
	// FieldValidityBlockedReasons holds the string denoting the validity_blocked_reasons field in the database.
	FieldValidityBlockedReasons = "validity_blocked_reasons"
	// FieldFailureClass holds the string denoting the failure_class field in the database.
	FieldFailureClass = "failure_class"
	// FieldRationale holds the string denoting the rationale field in the database.
	FieldRationale = "rationale"
	// FieldJudgeModel holds the string denoting the judge_model field in the database.
	FieldJudgeModel = "judge_model"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// Table holds the table name of the taskevaluation in the database.
	Table = "task_evaluations"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "task_evaluations"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for taskevaluation fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldTaskID,
	FieldPhase,
	FieldCriterionScores,
	FieldPass,
	FieldQualityPass,
	FieldValidityPass,
	FieldValidityBlockedReasons,
	FieldFailureClass,
	FieldRationale,
	FieldJudgeModel,
	FieldConfidence,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// Phase defines the type for the "phase" enum field.
type Phase string

// Phase values.
const (
	PhaseBaseline  Phase = "baseline"
	PhaseOptimized Phase = "optimized"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseBaseline, PhaseOptimized:
		return nil
	default:
		return fmt.Errorf("taskevaluation: invalid enum value for phase field: %q", ph)
	}
}

// OrderOption defines the ordering options for the TaskEvaluation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByPass orders the results by the pass field.
func ByPass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPass, opts...).ToFunc()
}

// ByQualityPass orders the results by the quality_pass field.
func ByQualityPass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityPass, opts...).ToFunc()
}

// ByValidityPass orders the results by the validity_pass field.
func ByValidityPass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidityPass, opts...).ToFunc()
}

// ByFailureClass orders the results by the failure_class field.
func ByFailureClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureClass, opts...).ToFunc()
}

// ByRationale orders the results by the rationale field.
func ByRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRationale, opts...).ToFunc()
}

// ByJudgeModel orders the results by the judge_model field.
func ByJudgeModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJudgeModel, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
