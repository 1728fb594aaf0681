// Code generated by ent, DO NOT EDIT.

package taskstep

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the taskstep type in the database.
	Label = "task_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTaskExecutionID holds the string denoting the task_execution_id field in the database.
	FieldTaskExecutionID = "task_execution_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldStepIndex holds the string denoting the step_index field in the database.
	FieldStepIndex = "step_index"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldInput holds the string denoting the input field in the database.
	FieldInput = "input"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldRetrieval holds the string denoting the retrieval field in the database.
	FieldRetrieval = "retrieval"
	// FieldUsage holds the string denoting the usage field in the database.
	FieldUsage = "usage"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeExecution holds the string denoting the execution edge name in mutations.
	EdgeExecution = "execution"
	// EdgeCitations holds the string denoting the citations edge name in mutations.
	EdgeCitations = "citations"
	// TaskExecutionFieldID holds the string denoting the ID field of the TaskExecution.
	TaskExecutionFieldID = "execution_id"
	// Table holds the table name of the taskstep in the database.
	Table = "task_steps"
	// ExecutionTable is the table that holds the execution relation/edge.
	ExecutionTable = "task_steps"
	// ExecutionInverseTable is the table name for the TaskExecution entity.
	// It exists in this package in order to avoid circular dependency with the "taskexecution" package.
	ExecutionInverseTable = "task_executions"
	// ExecutionColumn is the table column denoting the execution relation/edge.
	ExecutionColumn = "task_execution_id"
	// CitationsTable is the table that holds the citations relation/edge.
	CitationsTable = "step_citations"
	// CitationsInverseTable is the table name for the StepCitation entity.
	// It exists in this package in order to avoid circular dependency with the "stepcitation" package.
	CitationsInverseTable = "step_citations"
	// CitationsColumn is the table column denoting the citations relation/edge.
	CitationsColumn = "step_id"
)

// Columns holds all SQL columns for taskstep fields.
var Columns = []string{
	FieldID,
	FieldTaskExecutionID,
	FieldRunID,
	FieldStepIndex,
	FieldPhase,
	FieldInput,
	FieldOutput,
	FieldRetrieval,
	FieldUsage,
	FieldDecision,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Phase defines the type for the "phase" enum field.
type Phase string

// Phase values.
const (
	PhaseRetrieve Phase = "retrieve"
	PhasePlan     Phase = "plan"
	PhaseAct      Phase = "act"
	PhaseReflect  Phase = "reflect"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseRetrieve, PhasePlan, PhaseAct, PhaseReflect:
		return nil
	default:
		return fmt.Errorf("taskstep: invalid enum value for phase field: %q", ph)
	}
}

// OrderOption defines the ordering options for the TaskStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskExecutionID orders the results by the task_execution_id field.
func ByTaskExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskExecutionID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByStepIndex orders the results by the step_index field.
func ByStepIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepIndex, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByInput orders the results by the input field.
func ByInput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInput, opts...).ToFunc()
}

// ByOutput orders the results by the output field.
func ByOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutput, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExecutionField orders the results by execution field.
func ByExecutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionStep(), sql.OrderByField(field, opts...))
	}
}

// ByCitationsCount orders the results by citations count.
func ByCitationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCitationsStep(), opts...)
	}
}

// ByCitations orders the results by citations terms.
func ByCitations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCitationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExecutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionInverseTable, TaskExecutionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
	)
}
func newCitationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CitationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CitationsTable, CitationsColumn),
	)
}
