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
	"github.com/dhiyaancnirmal/mintaborate/ent/taskexecution"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// TaskExecution is the model entity for the TaskExecution schema.
type TaskExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// WorkerID holds the value of the "worker_id" field.
	WorkerID string `json:"worker_id,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase taskexecution.Phase `json:"phase,omitempty"`
	// Status holds the value of the "status" field.
	Status taskexecution.Status `json:"status,omitempty"`
	// StepCount holds the value of the "step_count" field.
	StepCount int `json:"step_count,omitempty"`
	// TokensIn holds the value of the "tokens_in" field.
	TokensIn int `json:"tokens_in,omitempty"`
	// TokensOut holds the value of the "tokens_out" field.
	TokensOut int `json:"tokens_out,omitempty"`
	// CostEstimate holds the value of the "cost_estimate" field.
	CostEstimate float64 `json:"cost_estimate,omitempty"`
	// StopReason holds the value of the "stop_reason" field.
	StopReason string `json:"stop_reason,omitempty"`
	// Final answer artifact handed to the evaluator
	Attempt *models.Attempt `json:"attempt,omitempty"`
	// Per-iteration agent memory snapshot
	AgentState *models.AgentMemory `json:"agent_state,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskExecutionQuery when eager-loading is set.
	Edges        TaskExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskExecutionEdges holds the relations/edges for other nodes in the graph.
type TaskExecutionEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// Steps holds the value of the steps edge.
	Steps []*TaskStep `json:"steps,omitempty"`
	// Checks holds the value of the checks edge.
	Checks []*DeterministicCheck `json:"checks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskExecutionEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e TaskExecutionEdges) StepsOrErr() ([]*TaskStep, error) {
	if e.loadedTypes[1] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// ChecksOrErr returns the Checks value or an error if the edge
// was not loaded in eager-loading.
func (e TaskExecutionEdges) ChecksOrErr() ([]*DeterministicCheck, error) {
	if e.loadedTypes[2] {
		return e.Checks, nil
	}
	return nil, &NotLoadedError{edge: "checks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskexecution.FieldAttempt, taskexecution.FieldAgentState:
			values[i] = new([]byte)
		case taskexecution.FieldCostEstimate:
			values[i] = new(sql.NullFloat64)
		case taskexecution.FieldStepCount, taskexecution.FieldTokensIn, taskexecution.FieldTokensOut:
			values[i] = new(sql.NullInt64)
		case taskexecution.FieldID, taskexecution.FieldRunID, taskexecution.FieldTaskID, taskexecution.FieldWorkerID, taskexecution.FieldPhase, taskexecution.FieldStatus, taskexecution.FieldStopReason:
			values[i] = new(sql.NullString)
		case taskexecution.FieldStartedAt, taskexecution.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskExecution fields.
func (_m *TaskExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case taskexecution.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case taskexecution.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case taskexecution.FieldWorkerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field worker_id", values[i])
			} else if value.Valid {
				_m.WorkerID = value.String
			}
		case taskexecution.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = taskexecution.Phase(value.String)
			}
		case taskexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = taskexecution.Status(value.String)
			}
		case taskexecution.FieldStepCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_count", values[i])
			} else if value.Valid {
				_m.StepCount = int(value.Int64)
			}
		case taskexecution.FieldTokensIn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_in", values[i])
			} else if value.Valid {
				_m.TokensIn = int(value.Int64)
			}
		case taskexecution.FieldTokensOut:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_out", values[i])
			} else if value.Valid {
				_m.TokensOut = int(value.Int64)
			}
		case taskexecution.FieldCostEstimate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_estimate", values[i])
			} else if value.Valid {
				_m.CostEstimate = value.Float64
			}
		case taskexecution.FieldStopReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stop_reason", values[i])
			} else if value.Valid {
				_m.StopReason = value.String
			}
		case taskexecution.FieldAttempt:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Attempt); err != nil {
					return fmt.Errorf("unmarshal field attempt: %w", err)
				}
			}
		case taskexecution.FieldAgentState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agent_state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AgentState); err != nil {
					return fmt.Errorf("unmarshal field agent_state: %w", err)
				}
			}
		case taskexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case taskexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskExecution.
// This includes values selected through modifiers, order, etc.
func (_m *TaskExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the TaskExecution entity.
func (_m *TaskExecution) QueryRun() *RunQuery {
	return NewTaskExecutionClient(_m.config).QueryRun(_m)
}

// QuerySteps queries the "steps" edge of the TaskExecution entity.
func (_m *TaskExecution) QuerySteps() *TaskStepQuery {
	return NewTaskExecutionClient(_m.config).QuerySteps(_m)
}

// QueryChecks queries the "checks" edge of the TaskExecution entity.
func (_m *TaskExecution) QueryChecks() *DeterministicCheckQuery {
	return NewTaskExecutionClient(_m.config).QueryChecks(_m)
}

// Update returns a builder for updating this TaskExecution.
// Note that you need to call TaskExecution.Unwrap() before calling this method if this TaskExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskExecution) Update() *TaskExecutionUpdateOne {
	return NewTaskExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskExecution) Unwrap() *TaskExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskExecution) String() string {
	var builder strings.Builder
	builder.WriteString("TaskExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("worker_id=")
	builder.WriteString(_m.WorkerID)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("step_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepCount))
	builder.WriteString(", ")
	builder.WriteString("tokens_in=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensIn))
	builder.WriteString(", ")
	builder.WriteString("tokens_out=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensOut))
	builder.WriteString(", ")
	builder.WriteString("cost_estimate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostEstimate))
	builder.WriteString(", ")
	builder.WriteString("stop_reason=")
	builder.WriteString(_m.StopReason)
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	builder.WriteString("agent_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentState))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// TaskExecutions is a parsable slice of TaskExecution.
type TaskExecutions []*TaskExecution
