// Code generated by ent, DO NOT EDIT.

package deterministiccheck

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the deterministiccheck type in the database.
	Label = "deterministic_check"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTaskExecutionID holds the string denoting the task_execution_id field in the database.
	FieldTaskExecutionID = "task_execution_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldScoreDelta holds the string denoting the score_delta field in the database.
	FieldScoreDelta = "score_delta"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// EdgeExecution holds the string denoting the execution edge name in mutations.
	EdgeExecution = "execution"
	// TaskExecutionFieldID holds the string denoting the ID field of the TaskExecution.
	TaskExecutionFieldID = "execution_id"
	// Table holds the table name of the deterministiccheck in the database.
	Table = "deterministic_checks"
	// ExecutionTable is the table that holds the execution relation/edge.
	ExecutionTable = "deterministic_checks"
	// ExecutionInverseTable is the table name for the TaskExecution entity.
	// It exists in this package in order to avoid circular dependency with the "taskexecution" package.
	ExecutionInverseTable = "task_executions"
	// ExecutionColumn is the table column denoting the execution relation/edge.
	ExecutionColumn = "task_execution_id"
)

// Columns holds all SQL columns for deterministiccheck fields.
var Columns = []string{
	FieldID,
	FieldTaskExecutionID,
	FieldName,
	FieldPassed,
	FieldScoreDelta,
	FieldDetails,
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

// OrderOption defines the ordering options for the DeterministicCheck queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskExecutionID orders the results by the task_execution_id field.
func ByTaskExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskExecutionID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByScoreDelta orders the results by the score_delta field.
func ByScoreDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreDelta, opts...).ToFunc()
}

// ByDetails orders the results by the details field.
func ByDetails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetails, opts...).ToFunc()
}

// ByExecutionField orders the results by execution field.
func ByExecutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionStep(), sql.OrderByField(field, opts...))
	}
}
func newExecutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionInverseTable, TaskExecutionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
	)
}
