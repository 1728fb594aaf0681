// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dhiyaancnirmal/mintaborate/ent/run"
	"github.com/dhiyaancnirmal/mintaborate/ent/skillsession"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// Run is the model entity for the Run schema.
type Run struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Normalized documentation root URL
	DocsURL string `json:"docs_url,omitempty"`
	// Status holds the value of the "status" field.
	Status run.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// Normalized run configuration, frozen at creation
	Config models.RunConfig `json:"config,omitempty"`
	// Final aggregate, written by the finalizer
	Totals *models.Totals `json:"totals,omitempty"`
	// Monotone run-level cost total in USD
	CostEstimate float64 `json:"cost_estimate,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunQuery when eager-loading is set.
	Edges        RunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunEdges holds the relations/edges for other nodes in the graph.
type RunEdges struct {
	// Artifacts holds the value of the artifacts edge.
	Artifacts []*RunArtifact `json:"artifacts,omitempty"`
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// Workers holds the value of the workers edge.
	Workers []*RunWorker `json:"workers,omitempty"`
	// Executions holds the value of the executions edge.
	Executions []*TaskExecution `json:"executions,omitempty"`
	// Events holds the value of the events edge.
	Events []*RunEvent `json:"events,omitempty"`
	// Errors holds the value of the errors edge.
	Errors []*RunError `json:"errors,omitempty"`
	// Evaluations holds the value of the evaluations edge.
	Evaluations []*TaskEvaluation `json:"evaluations,omitempty"`
	// SkillSession holds the value of the skill_session edge.
	SkillSession *SkillSession `json:"skill_session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [8]bool
}

// ArtifactsOrErr returns the Artifacts value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) ArtifactsOrErr() ([]*RunArtifact, error) {
	if e.loadedTypes[0] {
		return e.Artifacts, nil
	}
	return nil, &NotLoadedError{edge: "artifacts"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[1] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// WorkersOrErr returns the Workers value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) WorkersOrErr() ([]*RunWorker, error) {
	if e.loadedTypes[2] {
		return e.Workers, nil
	}
	return nil, &NotLoadedError{edge: "workers"}
}

// ExecutionsOrErr returns the Executions value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) ExecutionsOrErr() ([]*TaskExecution, error) {
	if e.loadedTypes[3] {
		return e.Executions, nil
	}
	return nil, &NotLoadedError{edge: "executions"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) EventsOrErr() ([]*RunEvent, error) {
	if e.loadedTypes[4] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// ErrorsOrErr returns the Errors value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) ErrorsOrErr() ([]*RunError, error) {
	if e.loadedTypes[5] {
		return e.Errors, nil
	}
	return nil, &NotLoadedError{edge: "errors"}
}

// EvaluationsOrErr returns the Evaluations value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) EvaluationsOrErr() ([]*TaskEvaluation, error) {
	if e.loadedTypes[6] {
		return e.Evaluations, nil
	}
	return nil, &NotLoadedError{edge: "evaluations"}
}

// SkillSessionOrErr returns the SkillSession value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunEdges) SkillSessionOrErr() (*SkillSession, error) {
	if e.SkillSession != nil {
		return e.SkillSession, nil
	} else if e.loadedTypes[7] {
		return nil, &NotFoundError{label: skillsession.Label}
	}
	return nil, &NotLoadedError{edge: "skill_session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Run) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case run.FieldConfig, run.FieldTotals:
			values[i] = new([]byte)
		case run.FieldCostEstimate:
			values[i] = new(sql.NullFloat64)
		case run.FieldID, run.FieldDocsURL, run.FieldStatus, run.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case run.FieldStartedAt, run.FieldEndedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Run fields.
func (_m *Run) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case run.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case run.FieldDocsURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field docs_url", values[i])
			} else if value.Valid {
				_m.DocsURL = value.String
			}
		case run.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = run.Status(value.String)
			}
		case run.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case run.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case run.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case run.FieldTotals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field totals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Totals); err != nil {
					return fmt.Errorf("unmarshal field totals: %w", err)
				}
			}
		case run.FieldCostEstimate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_estimate", values[i])
			} else if value.Valid {
				_m.CostEstimate = value.Float64
			}
		case run.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Run.
// This includes values selected through modifiers, order, etc.
func (_m *Run) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryArtifacts queries the "artifacts" edge of the Run entity.
func (_m *Run) QueryArtifacts() *RunArtifactQuery {
	return NewRunClient(_m.config).QueryArtifacts(_m)
}

// QueryTasks queries the "tasks" edge of the Run entity.
func (_m *Run) QueryTasks() *TaskQuery {
	return NewRunClient(_m.config).QueryTasks(_m)
}

// QueryWorkers queries the "workers" edge of the Run entity.
func (_m *Run) QueryWorkers() *RunWorkerQuery {
	return NewRunClient(_m.config).QueryWorkers(_m)
}

// QueryExecutions queries the "executions" edge of the Run entity.
func (_m *Run) QueryExecutions() *TaskExecutionQuery {
	return NewRunClient(_m.config).QueryExecutions(_m)
}

// QueryEvents queries the "events" edge of the Run entity.
func (_m *Run) QueryEvents() *RunEventQuery {
	return NewRunClient(_m.config).QueryEvents(_m)
}

// QueryErrors queries the "errors" edge of the Run entity.
func (_m *Run) QueryErrors() *RunErrorQuery {
	return NewRunClient(_m.config).QueryErrors(_m)
}

// QueryEvaluations queries the "evaluations" edge of the Run entity.
func (_m *Run) QueryEvaluations() *TaskEvaluationQuery {
	return NewRunClient(_m.config).QueryEvaluations(_m)
}

// QuerySkillSession queries the "skill_session" edge of the Run entity.
func (_m *Run) QuerySkillSession() *SkillSessionQuery {
	return NewRunClient(_m.config).QuerySkillSession(_m)
}

// Update returns a builder for updating this Run.
// Note that you need to call Run.Unwrap() before calling this method if this Run
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Run) Update() *RunUpdateOne {
	return NewRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Run entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Run) Unwrap() *Run {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Run is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Run) String() string {
	var builder strings.Builder
	builder.WriteString("Run(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("docs_url=")
	builder.WriteString(_m.DocsURL)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("totals=")
	builder.WriteString(fmt.Sprintf("%v", _m.Totals))
	builder.WriteString(", ")
	builder.WriteString("cost_estimate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostEstimate))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Runs is a parsable slice of Run.
type Runs []*Run
