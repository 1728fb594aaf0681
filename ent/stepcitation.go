// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dhiyaancnirmal/mintaborate/ent/stepcitation"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskstep"
)

// StepCitation is the model entity for the StepCitation schema.
type StepCitation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StepID holds the value of the "step_id" field.
	StepID int `json:"step_id,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// SnippetHash holds the value of the "snippet_hash" field.
	SnippetHash string `json:"snippet_hash,omitempty"`
	// Excerpt holds the value of the "excerpt" field.
	Excerpt string `json:"excerpt,omitempty"`
	// StartOffset holds the value of the "start_offset" field.
	StartOffset *int `json:"start_offset,omitempty"`
	// EndOffset holds the value of the "end_offset" field.
	EndOffset *int `json:"end_offset,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StepCitationQuery when eager-loading is set.
	Edges        StepCitationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StepCitationEdges holds the relations/edges for other nodes in the graph.
type StepCitationEdges struct {
	// Step holds the value of the step edge.
	Step *TaskStep `json:"step,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StepOrErr returns the Step value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StepCitationEdges) StepOrErr() (*TaskStep, error) {
	if e.Step != nil {
		return e.Step, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: taskstep.Label}
	}
	return nil, &NotLoadedError{edge: "step"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StepCitation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stepcitation.FieldID, stepcitation.FieldStepID, stepcitation.FieldStartOffset, stepcitation.FieldEndOffset:
			values[i] = new(sql.NullInt64)
		case stepcitation.FieldSource, stepcitation.FieldSnippetHash, stepcitation.FieldExcerpt:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StepCitation fields.
func (_m *StepCitation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stepcitation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stepcitation.FieldStepID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = int(value.Int64)
			}
		case stepcitation.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case stepcitation.FieldSnippetHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snippet_hash", values[i])
			} else if value.Valid {
				_m.SnippetHash = value.String
			}
		case stepcitation.FieldExcerpt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field excerpt", values[i])
			} else if value.Valid {
				_m.Excerpt = value.String
			}
		case stepcitation.FieldStartOffset:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_offset", values[i])
			} else if value.Valid {
				_m.StartOffset = new(int)
				*_m.StartOffset = int(value.Int64)
			}
		case stepcitation.FieldEndOffset:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_offset", values[i])
			} else if value.Valid {
				_m.EndOffset = new(int)
				*_m.EndOffset = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StepCitation.
// This includes values selected through modifiers, order, etc.
func (_m *StepCitation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStep queries the "step" edge of the StepCitation entity.
func (_m *StepCitation) QueryStep() *TaskStepQuery {
	return NewStepCitationClient(_m.config).QueryStep(_m)
}

// Update returns a builder for updating this StepCitation.
// Note that you need to call StepCitation.Unwrap() before calling this method if this StepCitation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StepCitation) Update() *StepCitationUpdateOne {
	return NewStepCitationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StepCitation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StepCitation) Unwrap() *StepCitation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StepCitation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StepCitation) String() string {
	var builder strings.Builder
	builder.WriteString("StepCitation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("step_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepID))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("snippet_hash=")
	builder.WriteString(_m.SnippetHash)
	builder.WriteString(", ")
	builder.WriteString("excerpt=")
	builder.WriteString(_m.Excerpt)
	builder.WriteString(", ")
	if v := _m.StartOffset; v != nil {
		builder.WriteString("start_offset=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.EndOffset; v != nil {
		builder.WriteString("end_offset=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// StepCitations is a parsable slice of StepCitation.
type StepCitations []*StepCitation
