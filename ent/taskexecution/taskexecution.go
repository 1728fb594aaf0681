// Code generated by ent, DO NOT EDIT.

package taskexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the taskexecution type in the database.
	Label = "task_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldWorkerID holds the string denoting the worker_id field in the database.
	FieldWorkerID = "worker_id"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStepCount holds the string denoting the step_count field in the database.
	FieldStepCount = "step_count"
	// FieldTokensIn holds the string denoting the tokens_in field in the database.
	FieldTokensIn = "tokens_in"
	// FieldTokensOut holds the string denoting the tokens_out field in the database.
	FieldTokensOut = "tokens_out"
	// FieldCostEstimate holds the string denoting the cost_estimate field in the database.
	FieldCostEstimate = "cost_estimate"
	// FieldStopReason holds the string denoting the stop_reason field in the database.
	FieldStopReason = "stop_reason"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// FieldAgentState holds the string denoting the agent_state field in the database.
	FieldAgentState = "agent_state"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// EdgeChecks holds the string denoting the checks edge name in mutations.
	EdgeChecks = "checks"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// TaskStepFieldID holds the string denoting the ID field of the TaskStep.
	TaskStepFieldID = "id"
	// DeterministicCheckFieldID holds the string denoting the ID field of the DeterministicCheck.
	DeterministicCheckFieldID = "id"
	// Table holds the table name of the taskexecution in the database.
	Table = "task_executions"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "task_executions"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "task_steps"
	// StepsInverseTable is the table name for the TaskStep entity.
	// It exists in this package in order to avoid circular dependency with the "taskstep" package.
	StepsInverseTable = "task_steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "task_execution_id"
	// ChecksTable is the table that holds the checks relation/edge.
	ChecksTable = "deterministic_checks"
	// ChecksInverseTable is the table name for the DeterministicCheck entity.
	// It exists in this package in order to avoid circular dependency with the "deterministiccheck" package.
	ChecksInverseTable = "deterministic_checks"
	// ChecksColumn is the table column denoting the checks relation/edge.
	ChecksColumn = "task_execution_id"
)

// Columns holds all SQL columns for taskexecution fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldTaskID,
	FieldWorkerID,
	FieldPhase,
	FieldStatus,
	FieldStepCount,
	FieldTokensIn,
	FieldTokensOut,
	FieldCostEstimate,
	FieldStopReason,
	FieldAttempt,
	FieldAgentState,
	FieldStartedAt,
	FieldCompletedAt,
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

var (
	// DefaultStepCount holds the default value on creation for the "step_count" field.
	DefaultStepCount int
	// DefaultTokensIn holds the default value on creation for the "tokens_in" field.
	DefaultTokensIn int
	// DefaultTokensOut holds the default value on creation for the "tokens_out" field.
	DefaultTokensOut int
	// DefaultCostEstimate holds the default value on creation for the "cost_estimate" field.
	DefaultCostEstimate float64
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

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
		return fmt.Errorf("taskexecution: invalid enum value for phase field: %q", ph)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusError   Status = "error"
	StatusSkipped Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusPassed, StatusFailed, StatusError, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("taskexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the TaskExecution queries.
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

// ByWorkerID orders the results by the worker_id field.
func ByWorkerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkerID, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStepCount orders the results by the step_count field.
func ByStepCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepCount, opts...).ToFunc()
}

// ByTokensIn orders the results by the tokens_in field.
func ByTokensIn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensIn, opts...).ToFunc()
}

// ByTokensOut orders the results by the tokens_out field.
func ByTokensOut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensOut, opts...).ToFunc()
}

// ByCostEstimate orders the results by the cost_estimate field.
func ByCostEstimate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostEstimate, opts...).ToFunc()
}

// ByStopReason orders the results by the stop_reason field.
func ByStopReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStopReason, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByChecksCount orders the results by checks count.
func ByChecksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChecksStep(), opts...)
	}
}

// ByChecks orders the results by checks terms.
func ByChecks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChecksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, TaskStepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
func newChecksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChecksInverseTable, DeterministicCheckFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChecksTable, ChecksColumn),
	)
}
