// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dhiyaancnirmal/mintaborate/ent/run"
	"github.com/dhiyaancnirmal/mintaborate/ent/runworker"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// RunWorker is the model entity for the RunWorker schema.
type RunWorker struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Stable label, e.g. worker-1
	WorkerLabel string `json:"worker_label,omitempty"`
	// ModelProvider holds the value of the "model_provider" field.
	ModelProvider string `json:"model_provider,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName string `json:"model_name,omitempty"`
	// ModelConfig holds the value of the "model_config" field.
	ModelConfig models.ModelConfig `json:"model_config,omitempty"`
	// Status holds the value of the "status" field.
	Status runworker.Status `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunWorkerQuery when eager-loading is set.
	Edges        RunWorkerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunWorkerEdges holds the relations/edges for other nodes in the graph.
type RunWorkerEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunWorkerEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RunWorker) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case runworker.FieldModelConfig:
			values[i] = new([]byte)
		case runworker.FieldID, runworker.FieldRunID, runworker.FieldWorkerLabel, runworker.FieldModelProvider, runworker.FieldModelName, runworker.FieldStatus:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RunWorker fields.
func (_m *RunWorker) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case runworker.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case runworker.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case runworker.FieldWorkerLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field worker_label", values[i])
			} else if value.Valid {
				_m.WorkerLabel = value.String
			}
		case runworker.FieldModelProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_provider", values[i])
			} else if value.Valid {
				_m.ModelProvider = value.String
			}
		case runworker.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case runworker.FieldModelConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field model_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ModelConfig); err != nil {
					return fmt.Errorf("unmarshal field model_config: %w", err)
				}
			}
		case runworker.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = runworker.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RunWorker.
// This includes values selected through modifiers, order, etc.
func (_m *RunWorker) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the RunWorker entity.
func (_m *RunWorker) QueryRun() *RunQuery {
	return NewRunWorkerClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this RunWorker.
// Note that you need to call RunWorker.Unwrap() before calling this method if this RunWorker
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RunWorker) Update() *RunWorkerUpdateOne {
	return NewRunWorkerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RunWorker entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RunWorker) Unwrap() *RunWorker {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RunWorker is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RunWorker) String() string {
	var builder strings.Builder
	builder.WriteString("RunWorker(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("worker_label=")
	builder.WriteString(_m.WorkerLabel)
	builder.WriteString(", ")
	builder.WriteString("model_provider=")
	builder.WriteString(_m.ModelProvider)
	builder.WriteString(", ")
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
	builder.WriteString(", ")
	builder.WriteString("model_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModelConfig))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// RunWorkers is a parsable slice of RunWorker.
type RunWorkers []*RunWorker
