// Code generated by ent, DO NOT EDIT.

package run

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the run type in the database.
	Label = "run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldDocsURL holds the string denoting the docs_url field in the database.
	FieldDocsURL = "docs_url"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldTotals holds the string denoting the totals field in the database.
	FieldTotals = "totals"
	// FieldCostEstimate holds the string denoting the cost_estimate field in the database.
	FieldCostEstimate = "cost_estimate"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// EdgeArtifacts holds the string denoting the artifacts edge name in mutations.
	EdgeArtifacts = "artifacts"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// EdgeWorkers holds the string denoting the workers edge name in mutations.
	EdgeWorkers = "workers"
	// EdgeExecutions holds the string denoting the executions edge name in mutations.
	EdgeExecutions = "executions"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeErrors holds the string denoting the errors edge name in mutations.
	EdgeErrors = "errors"
	// EdgeEvaluations holds the string denoting the evaluations edge name in mutations.
	EdgeEvaluations = "evaluations"
	// EdgeSkillSession holds the string denoting the skill_session edge name in mutations.
	EdgeSkillSession = "skill_session"
	// RunArtifactFieldID holds the string denoting the ID field of the RunArtifact.
	RunArtifactFieldID = "id"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// RunWorkerFieldID holds the string denoting the ID field of the RunWorker.
	RunWorkerFieldID = "worker_id"
	// TaskExecutionFieldID holds the string denoting the ID field of the TaskExecution.
	TaskExecutionFieldID = "execution_id"
	// RunEventFieldID holds the string denoting the ID field of the RunEvent.
	RunEventFieldID = "id"
	// RunErrorFieldID holds the string denoting the ID field of the RunError.
	RunErrorFieldID = "error_id"
	// TaskEvaluationFieldID holds the string denoting the ID field of the TaskEvaluation.
	TaskEvaluationFieldID = "id"
	// SkillSessionFieldID holds the string denoting the ID field of the SkillSession.
	SkillSessionFieldID = "id"
	// Table holds the table name of the run in the database.
	Table = "runs"
	// ArtifactsTable is the table that holds the artifacts relation/edge.
	ArtifactsTable = "run_artifacts"
	// ArtifactsInverseTable is the table name for the RunArtifact entity.
	// It exists in this package in order to avoid circular dependency with the "runartifact" package.
	ArtifactsInverseTable = "run_artifacts"
	// ArtifactsColumn is the table column denoting the artifacts relation/edge.
	ArtifactsColumn = "run_id"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "tasks"
	// TasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TasksInverseTable = "tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "run_id"
	// WorkersTable is the table that holds the workers relation/edge.
	WorkersTable = "run_workers"
	// WorkersInverseTable is the table name for the RunWorker entity.
	// It exists in this package in order to avoid circular dependency with the "runworker" package.
	WorkersInverseTable = "run_workers"
	// WorkersColumn is the table column denoting the workers relation/edge.
	WorkersColumn = "run_id"
	// ExecutionsTable is the table that holds the executions relation/edge.
	ExecutionsTable = "task_executions"
	// ExecutionsInverseTable is the table name for the TaskExecution entity.
	// It exists in this package in order to avoid circular dependency with the "taskexecution" package.
	ExecutionsInverseTable = "task_executions"
	// ExecutionsColumn is the table column denoting the executions relation/edge.
	ExecutionsColumn = "run_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "run_events"
	// EventsInverseTable is the table name for the RunEvent entity.
	// It exists in this package in order to avoid circular dependency with the "runevent" package.
	EventsInverseTable = "run_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "run_id"
	// ErrorsTable is the table that holds the errors relation/edge.
	ErrorsTable = "run_errors"
	// ErrorsInverseTable is the table name for the RunError entity.
	// It exists in this package in order to avoid circular dependency with the "runerror" package.
	ErrorsInverseTable = "run_errors"
	// ErrorsColumn is the table column denoting the errors relation/edge.
	ErrorsColumn = "run_id"
	// EvaluationsTable is the table that holds the evaluations relation/edge.
	EvaluationsTable = "task_evaluations"
	// EvaluationsInverseTable is the table name for the TaskEvaluation entity.
	// It exists in this package in order to avoid circular dependency with the "taskevaluation" package.
	EvaluationsInverseTable = "task_evaluations"
	// EvaluationsColumn is the table column denoting the evaluations relation/edge.
	EvaluationsColumn = "run_id"
	// SkillSessionTable is the table that holds the skill_session relation/edge.
	SkillSessionTable = "skill_sessions"
	// SkillSessionInverseTable is the table name for the SkillSession entity.
	// It exists in this package in order to avoid circular dependency with the "skillsession" package.
	SkillSessionInverseTable = "skill_sessions"
	// SkillSessionColumn is the table column denoting the skill_session relation/edge.
	SkillSessionColumn = "run_id"
)

// Columns holds all SQL columns for run fields.
var Columns = []string{
	FieldID,
	FieldDocsURL,
	FieldStatus,
	FieldStartedAt,
	FieldEndedAt,
	FieldConfig,
	FieldTotals,
	FieldCostEstimate,
	FieldErrorMessage,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultCostEstimate holds the default value on creation for the "cost_estimate" field.
	DefaultCostEstimate float64
)

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued          Status = "queued"
	StatusIngesting       Status = "ingesting"
	StatusGeneratingTasks Status = "generating_tasks"
	StatusRunning         Status = "running"
	StatusEvaluating      Status = "evaluating"
	StatusCompleted       Status = "completed"
	StatusFailed          Status = "failed"
	StatusCanceled        Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusIngesting, StatusGeneratingTasks, StatusRunning, StatusEvaluating, StatusCompleted, StatusFailed, StatusCanceled:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Run queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocsURL orders the results by the docs_url field.
func ByDocsURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocsURL, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByCostEstimate orders the results by the cost_estimate field.
func ByCostEstimate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostEstimate, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByArtifactsCount orders the results by artifacts count.
func ByArtifactsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newArtifactsStep(), opts...)
	}
}

// ByArtifacts orders the results by artifacts terms.
func ByArtifacts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArtifactsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWorkersCount orders the results by workers count.
func ByWorkersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWorkersStep(), opts...)
	}
}

// ByWorkers orders the results by workers terms.
func ByWorkers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByExecutionsCount orders the results by executions count.
func ByExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionsStep(), opts...)
	}
}

// ByExecutions orders the results by executions terms.
func ByExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByErrorsCount orders the results by errors count.
func ByErrorsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newErrorsStep(), opts...)
	}
}

// ByErrors orders the results by errors terms.
func ByErrors(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newErrorsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEvaluationsCount orders the results by evaluations count.
func ByEvaluationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEvaluationsStep(), opts...)
	}
}

// ByEvaluations orders the results by evaluations terms.
func ByEvaluations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvaluationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySkillSessionField orders the results by skill_session field.
func BySkillSessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSkillSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newArtifactsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArtifactsInverseTable, RunArtifactFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
	)
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
func newWorkersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkersInverseTable, RunWorkerFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WorkersTable, WorkersColumn),
	)
}
func newExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionsInverseTable, TaskExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, RunEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newErrorsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ErrorsInverseTable, RunErrorFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ErrorsTable, ErrorsColumn),
	)
}
func newEvaluationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvaluationsInverseTable, TaskEvaluationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EvaluationsTable, EvaluationsColumn),
	)
}
func newSkillSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SkillSessionInverseTable, SkillSessionFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, SkillSessionTable, SkillSessionColumn),
	)
}
