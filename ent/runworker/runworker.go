// Code generated by ent, DO NOT EDIT.

package runworker

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the runworker type in the database.
	Label = "run_worker"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "worker_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldWorkerLabel holds the string denoting the worker_label field in the database.
	FieldWorkerLabel = "worker_label"
	// FieldModelProvider holds the string denoting the model_provider field in the database.
	FieldModelProvider = "model_provider"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldModelConfig holds the string denoting the model_config field in the database.
	FieldModelConfig = "model_config"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// Table holds the table name of the runworker in the database.
	Table = "run_workers"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "run_workers"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for runworker fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldWorkerLabel,
	FieldModelProvider,
	FieldModelName,
	FieldModelConfig,
	FieldStatus,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusIdle is the default value of the Status enum.
const DefaultStatus = StatusIdle

// Status values.
const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusIdle, StatusRunning, StatusDone, StatusError:
		return nil
	default:
		return fmt.Errorf("runworker: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the RunWorker queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByWorkerLabel orders the results by the worker_label field.
func ByWorkerLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkerLabel, opts...).ToFunc()
}

// ByModelProvider orders the results by the model_provider field.
func ByModelProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelProvider, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
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
