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

// SkillSession is the model entity for the SkillSession schema.
type SkillSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Status holds the value of the "status" field.
	Status skillsession.Status `json:"status,omitempty"`
	// SourceSkillOrigin holds the value of the "source_skill_origin" field.
	SourceSkillOrigin skillsession.SourceSkillOrigin `json:"source_skill_origin,omitempty"`
	// BaselineTotals holds the value of the "baseline_totals" field.
	BaselineTotals *models.Totals `json:"baseline_totals,omitempty"`
	// OptimizedTotals holds the value of the "optimized_totals" field.
	OptimizedTotals *models.Totals `json:"optimized_totals,omitempty"`
	// Optimized minus baseline, rounded to 4 decimals
	Delta *models.Delta `json:"delta,omitempty"`
	// OptimizedSkillHash holds the value of the "optimized_skill_hash" field.
	OptimizedSkillHash string `json:"optimized_skill_hash,omitempty"`
	// TokensIn holds the value of the "tokens_in" field.
	TokensIn int `json:"tokens_in,omitempty"`
	// TokensOut holds the value of the "tokens_out" field.
	TokensOut int `json:"tokens_out,omitempty"`
	// Skill-generation spend; kept off the run cost total
	CostEstimate float64 `json:"cost_estimate,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SkillSessionQuery when eager-loading is set.
	Edges        SkillSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SkillSessionEdges holds the relations/edges for other nodes in the graph.
type SkillSessionEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SkillSessionEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SkillSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case skillsession.FieldBaselineTotals, skillsession.FieldOptimizedTotals, skillsession.FieldDelta:
			values[i] = new([]byte)
		case skillsession.FieldCostEstimate:
			values[i] = new(sql.NullFloat64)
		case skillsession.FieldID, skillsession.FieldTokensIn, skillsession.FieldTokensOut:
			values[i] = new(sql.NullInt64)
		case skillsession.FieldRunID, skillsession.FieldStatus, skillsession.FieldSourceSkillOrigin, skillsession.FieldOptimizedSkillHash, skillsession.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case skillsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SkillSession fields.
func (_m *SkillSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case skillsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case skillsession.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case skillsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = skillsession.Status(value.String)
			}
		case skillsession.FieldSourceSkillOrigin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_skill_origin", values[i])
			} else if value.Valid {
				_m.SourceSkillOrigin = skillsession.SourceSkillOrigin(value.String)
			}
		case skillsession.FieldBaselineTotals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_totals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BaselineTotals); err != nil {
					return fmt.Errorf("unmarshal field baseline_totals: %w", err)
				}
			}
		case skillsession.FieldOptimizedTotals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field optimized_totals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OptimizedTotals); err != nil {
					return fmt.Errorf("unmarshal field optimized_totals: %w", err)
				}
			}
		case skillsession.FieldDelta:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field delta", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Delta); err != nil {
					return fmt.Errorf("unmarshal field delta: %w", err)
				}
			}
		case skillsession.FieldOptimizedSkillHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field optimized_skill_hash", values[i])
			} else if value.Valid {
				_m.OptimizedSkillHash = value.String
			}
		case skillsession.FieldTokensIn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_in", values[i])
			} else if value.Valid {
				_m.TokensIn = int(value.Int64)
			}
		case skillsession.FieldTokensOut:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_out", values[i])
			} else if value.Valid {
				_m.TokensOut = int(value.Int64)
			}
		case skillsession.FieldCostEstimate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_estimate", values[i])
			} else if value.Valid {
				_m.CostEstimate = value.Float64
			}
		case skillsession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case skillsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SkillSession.
// This includes values selected through modifiers, order, etc.
func (_m *SkillSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the SkillSession entity.
func (_m *SkillSession) QueryRun() *RunQuery {
	return NewSkillSessionClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this SkillSession.
// Note that you need to call SkillSession.Unwrap() before calling this method if this SkillSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SkillSession) Update() *SkillSessionUpdateOne {
	return NewSkillSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SkillSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SkillSession) Unwrap() *SkillSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SkillSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SkillSession) String() string {
	var builder strings.Builder
	builder.WriteString("SkillSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("source_skill_origin=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceSkillOrigin))
	builder.WriteString(", ")
	builder.WriteString("baseline_totals=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaselineTotals))
	builder.WriteString(", ")
	builder.WriteString("optimized_totals=")
	builder.WriteString(fmt.Sprintf("%v", _m.OptimizedTotals))
	builder.WriteString(", ")
	builder.WriteString("delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Delta))
	builder.WriteString(", ")
	builder.WriteString("optimized_skill_hash=")
	builder.WriteString(_m.OptimizedSkillHash)
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
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SkillSessions is a parsable slice of SkillSession.
type SkillSessions []*SkillSession
