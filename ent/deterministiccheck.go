// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dhiyaancnirmal/mintaborate/ent/deterministiccheck"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskexecution"
)

// DeterministicCheck is the model entity for the DeterministicCheck schema.
type DeterministicCheck struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TaskExecutionID holds the value of the "task_execution_id" field.
	TaskExecutionID string `json:"task_execution_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// Score cap applied when the check fails, zero otherwise
	ScoreDelta float64 `json:"score_delta,omitempty"`
	// Details holds the value of the "details" field.
	Details string `json:"details,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DeterministicCheckQuery when eager-loading is set.
	Edges        DeterministicCheckEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DeterministicCheckEdges holds the relations/edges for other nodes in the graph.
type DeterministicCheckEdges struct {
	// Execution holds the value of the execution edge.
	Execution *TaskExecution `json:"execution,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExecutionOrErr returns the Execution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeterministicCheckEdges) ExecutionOrErr() (*TaskExecution, error) {
	if e.Execution != nil {
		return e.Execution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: taskexecution.Label}
	}
	return nil, &NotLoadedError{edge: "execution"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeterministicCheck) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deterministiccheck.FieldPassed:
			values[i] = new(sql.NullBool)
		case deterministiccheck.FieldScoreDelta:
			values[i] = new(sql.NullFloat64)
		case deterministiccheck.FieldID:
			values[i] = new(sql.NullInt64)
		case deterministiccheck.FieldTaskExecutionID, deterministiccheck.FieldName, deterministiccheck.FieldDetails:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeterministicCheck fields.
func (_m *DeterministicCheck) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deterministiccheck.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case deterministiccheck.FieldTaskExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_execution_id", values[i])
			} else if value.Valid {
				_m.TaskExecutionID = value.String
			}
		case deterministiccheck.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case deterministiccheck.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case deterministiccheck.FieldScoreDelta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score_delta", values[i])
			} else if value.Valid {
				_m.ScoreDelta = value.Float64
			}
		case deterministiccheck.FieldDetails:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value.Valid {
				_m.Details = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeterministicCheck.
// This includes values selected through modifiers, order, etc.
func (_m *DeterministicCheck) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecution queries the "execution" edge of the DeterministicCheck entity.
func (_m *DeterministicCheck) QueryExecution() *TaskExecutionQuery {
	return NewDeterministicCheckClient(_m.config).QueryExecution(_m)
}

// Update returns a builder for updating this DeterministicCheck.
// Note that you need to call DeterministicCheck.Unwrap() before calling this method if this DeterministicCheck
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeterministicCheck) Update() *DeterministicCheckUpdateOne {
	return NewDeterministicCheckClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeterministicCheck entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeterministicCheck) Unwrap() *DeterministicCheck {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeterministicCheck is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeterministicCheck) String() string {
	var builder strings.Builder
	builder.WriteString("DeterministicCheck(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_execution_id=")
	builder.WriteString(_m.TaskExecutionID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("score_delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScoreDelta))
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(_m.Details)
	builder.WriteByte(')')
	return builder.String()
}

// DeterministicChecks is a parsable slice of DeterministicCheck.
type DeterministicChecks []*DeterministicCheck
