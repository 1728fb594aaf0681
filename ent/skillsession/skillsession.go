// Code generated by ent, DO NOT EDIT.

package skillsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the skillsession type in the database.
	Label = "skill_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSourceSkillOrigin holds the string denoting the source_skill_origin field in the database.
	FieldSourceSkillOrigin = "source_skill_origin"
	// FieldBaselineTotals holds the string denoting the baseline_totals field in the database.
	FieldBaselineTotals = "baseline_totals"
	// FieldOptimizedTotals holds the string denoting the optimized_totals field in the database.
	FieldOptimizedTotals = "optimized_totals"
	// FieldDelta holds the string denoting the delta field in the database.
	FieldDelta = "delta"
	// FieldOptimizedSkillHash holds the string denoting the optimized_skill_hash field in the database.
	FieldOptimizedSkillHash = "optimized_skill_hash"
	// FieldTokensIn holds the string denoting the tokens_in field in the database.
	FieldTokensIn = "tokens_in"
	// FieldTokensOut holds the string denoting the tokens_out field in the database.
	FieldTokensOut = "tokens_out"
	// FieldCostEstimate holds the string denoting the cost_estimate field in the database.
	FieldCostEstimate = "cost_estimate"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// Table holds the table name of the skillsession in the database.
	Table = "skill_sessions"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "skill_sessions"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for skillsession fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldStatus,
	FieldSourceSkillOrigin,
	FieldBaselineTotals,
	FieldOptimizedTotals,
	FieldDelta,
	FieldOptimizedSkillHash,
	FieldTokensIn,
	FieldTokensOut,
	FieldCostEstimate,
	FieldErrorMessage,
	FieldUpdatedAt,
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
	// DefaultTokensIn holds the default value on creation for the "tokens_in" field.
	DefaultTokensIn int
	// DefaultTokensOut holds the default value on creation for the "tokens_out" field.
	DefaultTokensOut int
	// DefaultCostEstimate holds the default value on creation for the "cost_estimate" field.
	DefaultCostEstimate float64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusGenerating Status = "generating"
	StatusCompleted  Status = "completed"
	StatusSkipped    Status = "skipped"
	StatusError      Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusGenerating, StatusCompleted, StatusSkipped, StatusError:
		return nil
	default:
		return fmt.Errorf("skillsession: invalid enum value for status field: %q", s)
	}
}

// SourceSkillOrigin defines the type for the "source_skill_origin" enum field.
type SourceSkillOrigin string

// SourceSkillOriginNone is the default value of the SourceSkillOrigin enum.
const DefaultSourceSkillOrigin = SourceSkillOriginNone

// SourceSkillOrigin values.
const (
	SourceSkillOriginSiteSkill SourceSkillOrigin = "site_skill"
	SourceSkillOriginNone      SourceSkillOrigin = "none"
)

func (sso SourceSkillOrigin) String() string {
	return string(sso)
}

// SourceSkillOriginValidator is a validator for the "source_skill_origin" field enum values. It is called by the builders before save.
func SourceSkillOriginValidator(sso SourceSkillOrigin) error {
	switch sso {
	case SourceSkillOriginSiteSkill, SourceSkillOriginNone:
		return nil
	default:
		return fmt.Errorf("skillsession: invalid enum value for source_skill_origin field: %q", sso)
	}
}

// OrderOption defines the ordering options for the SkillSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySourceSkillOrigin orders the results by the source_skill_origin field.
func BySourceSkillOrigin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceSkillOrigin, opts...).ToFunc()
}

// ByOptimizedSkillHash orders the results by the optimized_skill_hash field.
func ByOptimizedSkillHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptimizedSkillHash, opts...).ToFunc()
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

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, RunTable, RunColumn),
	)
}
