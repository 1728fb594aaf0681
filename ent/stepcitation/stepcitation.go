// Code generated by ent, DO NOT EDIT.

package stepcitation

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the stepcitation type in the database.
	Label = "step_citation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStepID holds the string denoting the step_id field in the database.
	FieldStepID = "step_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldSnippetHash holds the string denoting the snippet_hash field in the database.
	FieldSnippetHash = "snippet_hash"
	// FieldExcerpt holds the string denoting the excerpt field in the database.
	FieldExcerpt = "excerpt"
	// FieldStartOffset holds the string denoting the start_offset field in the database.
	FieldStartOffset = "start_offset"
	// FieldEndOffset holds the string denoting the end_offset field in the database.
	FieldEndOffset = "end_offset"
	// EdgeStep holds the string denoting the step edge name in mutations.
	EdgeStep = "step"
	// Table holds the table name of the stepcitation in the database.
	Table = "step_citations"
	// StepTable is the table that holds the step relation/edge.
	StepTable = "step_citations"
	// StepInverseTable is the table name for the TaskStep entity.
	// It exists in this package in order to avoid circular dependency with the "taskstep" package.
	StepInverseTable = "task_steps"
	// StepColumn is the table column denoting the step relation/edge.
	StepColumn = "step_id"
)

// Columns holds all SQL columns for stepcitation fields.
var Columns = []string{
	FieldID,
	FieldStepID,
	FieldSource,
	FieldSnippetHash,
	FieldExcerpt,
	FieldStartOffset,
	FieldEndOffset,
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

// OrderOption defines the ordering options for the StepCitation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStepID orders the results by the step_id field.
func ByStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// BySnippetHash orders the results by the snippet_hash field.
func BySnippetHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnippetHash, opts...).ToFunc()
}

// ByExcerpt orders the results by the excerpt field.
func ByExcerpt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExcerpt, opts...).ToFunc()
}

// ByStartOffset orders the results by the start_offset field.
func ByStartOffset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartOffset, opts...).ToFunc()
}

// ByEndOffset orders the results by the end_offset field.
func ByEndOffset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndOffset, opts...).ToFunc()
}

// ByStepField orders the results by step field.
func ByStepField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepStep(), sql.OrderByField(field, opts...))
	}
}
func newStepStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StepTable, StepColumn),
	)
}
