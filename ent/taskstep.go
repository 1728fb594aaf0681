// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskexecution"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskstep"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// TaskStep is the model entity for the TaskStep schema.
type TaskStep struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TaskExecutionID holds the value of the "task_execution_id" field.
	TaskExecutionID string `json:"task_execution_id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// StepIndex holds the value of the "step_index" field.
	StepIndex int `json:"step_index,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase taskstep.Phase `json:"phase,omitempty"`
	// Input holds the value of the "input" field.
	Input string `json:"input,omitempty"`
	// Output holds the value of the "output" field.
	Output string `json:"output,omitempty"`
	// Ranked chunks used by a retrieve step
	Retrieval []models.ChunkRef `json:"retrieval,omitempty"`
	// Usage holds the value of the "usage" field.
	Usage *models.StepUsage `json:"usage,omitempty"`
	// Continue/stop decision of a reflect step, override included
	Decision *models.StepDecision `json:"decision,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskStepQuery when eager-loading is set.
	Edges        TaskStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskStepEdges holds the relations/edges for other nodes in the graph.
type TaskStepEdges struct {
	// Execution holds the value of the execution edge.
	Execution *TaskExecution `json:"execution,omitempty"`
	// Citations holds the value of the citations edge.
	Citations []*StepCitation `json:"citations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ExecutionOrErr returns the Execution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskStepEdges) ExecutionOrErr() (*TaskExecution, error) {
	if e.Execution != nil {
		return e.Execution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: taskexecution.Label}
	}
	return nil, &NotLoadedError{edge: "execution"}
}

// CitationsOrErr returns the Citations value or an error if the edge
// was not loaded in eager-loading.
func (e TaskStepEdges) CitationsOrErr() ([]*StepCitation, error) {
	if e.loadedTypes[1] {
		return e.Citations, nil
	}
	return nil, &NotLoadedError{edge: "citations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskstep.FieldRetrieval, taskstep.FieldUsage, taskstep.FieldDecision:
			values[i] = new([]byte)
		case taskstep.FieldID, taskstep.FieldStepIndex:
			values[i] = new(sql.NullInt64)
		case taskstep.FieldTaskExecutionID, taskstep.FieldRunID, taskstep.FieldPhase, taskstep.FieldInput, taskstep.FieldOutput:
			values[i] = new(sql.NullString)
		case taskstep.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskStep fields.
func (_m *TaskStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskstep.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case taskstep.FieldTaskExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_execution_id", values[i])
			} else if value.Valid {
				_m.TaskExecutionID = value.String
			}
		case taskstep.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case taskstep.FieldStepIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_index", values[i])
			} else if value.Valid {
				_m.StepIndex = int(value.Int64)
			}
		case taskstep.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = taskstep.Phase(value.String)
			}
		case taskstep.FieldInput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input", values[i])
			} else if value.Valid {
				_m.Input = value.String
			}
		case taskstep.FieldOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value.Valid {
				_m.Output = value.String
			}
		case taskstep.FieldRetrieval:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field retrieval", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Retrieval); err != nil {
					return fmt.Errorf("unmarshal field retrieval: %w", err)
				}
			}
		case taskstep.FieldUsage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field usage", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Usage); err != nil {
					return fmt.Errorf("unmarshal field usage: %w", err)
				}
			}
		case taskstep.FieldDecision:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Decision); err != nil {
					return fmt.Errorf("unmarshal field decision: %w", err)
				}
			}
		case taskstep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskStep.
// This includes values selected through modifiers, order, etc.
func (_m *TaskStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecution queries the "execution" edge of the TaskStep entity.
func (_m *TaskStep) QueryExecution() *TaskExecutionQuery {
	return NewTaskStepClient(_m.config).QueryExecution(_m)
}

// QueryCitations queries the "citations" edge of the TaskStep entity.
func (_m *TaskStep) QueryCitations() *StepCitationQuery {
	return NewTaskStepClient(_m.config).QueryCitations(_m)
}

// Update returns a builder for updating this TaskStep.
// Note that you need to call TaskStep.Unwrap() before calling this method if this TaskStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskStep) Update() *TaskStepUpdateOne {
	return NewTaskStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskStep) Unwrap() *TaskStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskStep) String() string {
	var builder strings.Builder
	builder.WriteString("TaskStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_execution_id=")
	builder.WriteString(_m.TaskExecutionID)
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("step_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepIndex))
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("input=")
	builder.WriteString(_m.Input)
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(_m.Output)
	builder.WriteString(", ")
	builder.WriteString("retrieval=")
	builder.WriteString(fmt.Sprintf("%v", _m.Retrieval))
	builder.WriteString(", ")
	builder.WriteString("usage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Usage))
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Decision))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaskSteps is a parsable slice of TaskStep.
type TaskSteps []*TaskStep
