// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dhiyaancnirmal/mintaborate/ent/run"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskevaluation"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// TaskEvaluation is the model entity for the TaskEvaluation schema.
type TaskEvaluation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase taskevaluation.Phase `json:"phase,omitempty"`
	// CriterionScores holds the value of the "criterion_scores" field.
	CriterionScores models.CriterionScores `json:"criterion_scores,omitempty"`
	// Pass holds the value of the "pass" field.
	Pass bool `json:"pass,omitempty"`
	// QualityPass holds the value of the "quality_pass" field.
	QualityPass bool `json:"quality_pass,omitempty"`
	// ValidityPass holds the value of the "validity_pass" field.
	ValidityPass bool `json:"validity_pass,omitempty"`
	// ValidityBlockedReasons holds the value of the "validity_blocked_reasons" field.
	ValidityBlockedReasons []models.ValidityBlockReason `json:"validity_blocked_reasons,omitempty"`
	// FailureClass holds the value of the "failure_class" field.
	FailureClass *string `json:"failure_class,omitempty"`
	// Rationale holds the value of the "rationale" field.
	Rationale string `json:"rationale,omitempty"`
	// JudgeModel holds the value of the "judge_model" field.
	JudgeModel string `json:"judge_model,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskEvaluationQuery when eager-loading is set.
	Edges        TaskEvaluationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEvaluationEdges holds the relations/edges for other nodes in the graph.
type TaskEvaluationEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEvaluationEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskEvaluation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskevaluation.FieldCriterionScores, taskevaluation.FieldValidityBlockedReasons:
			values[i] = new([]byte)
		case taskevaluation.FieldPass, taskevaluation.FieldQualityPass, taskevaluation.FieldValidityPass:
			values[i] = new(sql.NullBool)
		case taskevaluation.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case taskevaluation.FieldID:
			values[i] = new(sql.NullInt64)
		case taskevaluation.FieldRunID, taskevaluation.FieldTaskID, taskevaluation.FieldPhase, taskevaluation.FieldFailureClass, taskevaluation.FieldRationale, taskevaluation.FieldJudgeModel:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskEvaluation fields.
func (_m *TaskEvaluation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskevaluation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case taskevaluation.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case taskevaluation.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case taskevaluation.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = taskevaluation.Phase(value.String)
			}
		case taskevaluation.FieldCriterionScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field criterion_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CriterionScores); err != nil {
					return fmt.Errorf("unmarshal field criterion_scores: %w", err)
				}
			}
		case taskevaluation.FieldPass:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field pass", values[i])
			} else if value.Valid {
				_m.Pass = value.Bool
			}
		case taskevaluation.FieldQualityPass:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field quality_pass", values[i])
			} else if value.Valid {
				_m.QualityPass = value.Bool
			}
		case taskevaluation.FieldValidityPass:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field validity_pass", values[i])
			} else if value.Valid {
				_m.ValidityPass = value.Bool
			}
		case taskevaluation.FieldValidityBlockedReasons:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field validity_blocked_reasons", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValidityBlockedReasons); err != nil {
					return fmt.Errorf("unmarshal field validity_blocked_reasons: %w", err)
				}
			}
		case taskevaluation.FieldFailureClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_class", values[i])
			} else if value.Valid {
				_m.FailureClass = new(string)
				*_m.FailureClass = value.String
			}
		case taskevaluation.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				_m.Rationale = value.String
			}
		case taskevaluation.FieldJudgeModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field judge_model", values[i])
			} else if value.Valid {
				_m.JudgeModel = value.String
			}
		case taskevaluation.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskEvaluation.
// This includes values selected through modifiers, order, etc.
func (_m *TaskEvaluation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the TaskEvaluation entity.
func (_m *TaskEvaluation) QueryRun() *RunQuery {
	return NewTaskEvaluationClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this TaskEvaluation.
// Note that you need to call TaskEvaluation.Unwrap() before calling this method if this TaskEvaluation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskEvaluation) Update() *TaskEvaluationUpdateOne {
	return NewTaskEvaluationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskEvaluation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskEvaluation) Unwrap() *TaskEvaluation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskEvaluation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskEvaluation) String() string {
	var builder strings.Builder
	builder.WriteString("TaskEvaluation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("criterion_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.CriterionScores))
	builder.WriteString(", ")
	builder.WriteString("pass=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pass))
	builder.WriteString(", ")
	builder.WriteString("quality_pass=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityPass))
	builder.WriteString(", ")
	builder.WriteString("validity_pass=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidityPass))
	builder.WriteString(", ")
	builder.WriteString("validity_blocked_reasons=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidityBlockedReasons))
	builder.WriteString(", ")
	if v := _m.FailureClass; v != nil {
		builder.WriteString("failure_class=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(_m.Rationale)
	builder.WriteString(", ")
	builder.WriteString("judge_model=")
	builder.WriteString(_m.JudgeModel)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteByte(')')
	return builder.String()
}

// TaskEvaluations is a parsable slice of TaskEvaluation.
type TaskEvaluations []*TaskEvaluation
