// Code generated by ent, DO NOT EDIT.

package taskstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLTE(FieldID, id))
}

// TaskExecutionID applies equality check predicate on the "task_execution_id" field. It's identical to TaskExecutionIDEQ.
func TaskExecutionID(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldTaskExecutionID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldRunID, v))
}

// StepIndex applies equality check predicate on the "step_index" field. It's identical to StepIndexEQ.
func StepIndex(v int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldStepIndex, v))
}

// Input applies equality check predicate on the "input" field. It's identical to InputEQ.
func Input(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldInput, v))
}

// Output applies equality check predicate on the "output" field. It's identical to OutputEQ.
func Output(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldOutput, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskExecutionIDEQ applies the EQ predicate on the "task_execution_id" field.
func TaskExecutionIDEQ(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldTaskExecutionID, v))
}

// TaskExecutionIDNEQ applies the NEQ predicate on the "task_execution_id" field.
func TaskExecutionIDNEQ(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldTaskExecutionID, v))
}

// TaskExecutionIDIn applies the In predicate on the "task_execution_id" field.
func TaskExecutionIDIn(vs ...string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldTaskExecutionID, vs...))
}

// TaskExecutionIDNotIn applies the NotIn predicate on the "task_execution_id" field.
func TaskExecutionIDNotIn(vs ...string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldTaskExecutionID, vs...))
}

// TaskExecutionIDGT applies the GT predicate on the "task_execution_id" field.
func TaskExecutionIDGT(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGT(FieldTaskExecutionID, v))
}

// TaskExecutionIDGTE applies the GTE predicate on the "task_execution_id" field.
func TaskExecutionIDGTE(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGTE(FieldTaskExecutionID, v))
}

// TaskExecutionIDLT applies the LT predicate on the "task_execution_id" field.
func TaskExecutionIDLT(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLT(FieldTaskExecutionID, v))
}

// TaskExecutionIDLTE applies the LTE predicate on the "task_execution_id" field.
func TaskExecutionIDLTE(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLTE(FieldTaskExecutionID, v))
}

// TaskExecutionIDContains applies the Contains predicate on the "task_execution_id" field.
func TaskExecutionIDContains(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldContains(FieldTaskExecutionID, v))
}

// TaskExecutionIDHasPrefix applies the HasPrefix predicate on the "task_execution_id" field.
func TaskExecutionIDHasPrefix(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldHasPrefix(FieldTaskExecutionID, v))
}

// TaskExecutionIDHasSuffix applies the HasSuffix predicate on the "task_execution_id" field.
func TaskExecutionIDHasSuffix(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldHasSuffix(FieldTaskExecutionID, v))
}

// TaskExecutionIDEqualFold applies the EqualFold predicate on the "task_execution_id" field.
func TaskExecutionIDEqualFold(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEqualFold(FieldTaskExecutionID, v))
}

// TaskExecutionIDContainsFold applies the ContainsFold predicate on the "task_execution_id" field.
func TaskExecutionIDContainsFold(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldContainsFold(FieldTaskExecutionID, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldContainsFold(FieldRunID, v))
}

// StepIndexEQ applies the EQ predicate on the "step_index" field.
func StepIndexEQ(v int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldStepIndex, v))
}

// StepIndexNEQ applies the NEQ predicate on the "step_index" field.
func StepIndexNEQ(v int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldStepIndex, v))
}

// StepIndexIn applies the In predicate on the "step_index" field.
func StepIndexIn(vs ...int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldStepIndex, vs...))
}

// StepIndexNotIn applies the NotIn predicate on the "step_index" field.
func StepIndexNotIn(vs ...int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldStepIndex, vs...))
}

// StepIndexGT applies the GT predicate on the "step_index" field.
func StepIndexGT(v int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGT(FieldStepIndex, v))
}

// StepIndexGTE applies the GTE predicate on the "step_index" field.
func StepIndexGTE(v int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGTE(FieldStepIndex, v))
}

// StepIndexLT applies the LT predicate on the "step_index" field.
func StepIndexLT(v int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLT(FieldStepIndex, v))
}

// StepIndexLTE applies the LTE predicate on the "step_index" field.
func StepIndexLTE(v int) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLTE(FieldStepIndex, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v Phase) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v Phase) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...Phase) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...Phase) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldPhase, vs...))
}

// InputEQ applies the EQ predicate on the "input" field.
func InputEQ(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldInput, v))
}

// InputNEQ applies the NEQ predicate on the "input" field.
func InputNEQ(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldInput, v))
}

// InputIn applies the In predicate on the "input" field.
func InputIn(vs ...string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldInput, vs...))
}

// InputNotIn applies the NotIn predicate on the "input" field.
func InputNotIn(vs ...string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldInput, vs...))
}

// InputGT applies the GT predicate on the "input" field.
func InputGT(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGT(FieldInput, v))
}

// InputGTE applies the GTE predicate on the "input" field.
func InputGTE(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGTE(FieldInput, v))
}

// InputLT applies the LT predicate on the "input" field.
func InputLT(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLT(FieldInput, v))
}

// InputLTE applies the LTE predicate on the "input" field.
func InputLTE(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLTE(FieldInput, v))
}

// InputContains applies the Contains predicate on the "input" field.
func InputContains(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldContains(FieldInput, v))
}

// InputHasPrefix applies the HasPrefix predicate on the "input" field.
func InputHasPrefix(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldHasPrefix(FieldInput, v))
}

// InputHasSuffix applies the HasSuffix predicate on the "input" field.
func InputHasSuffix(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldHasSuffix(FieldInput, v))
}

// InputEqualFold applies the EqualFold predicate on the "input" field.
func InputEqualFold(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEqualFold(FieldInput, v))
}

// InputContainsFold applies the ContainsFold predicate on the "input" field.
func InputContainsFold(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldContainsFold(FieldInput, v))
}

// OutputEQ applies the EQ predicate on the "output" field.
func OutputEQ(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldOutput, v))
}

// OutputNEQ applies the NEQ predicate on the "output" field.
func OutputNEQ(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldOutput, v))
}

// OutputIn applies the In predicate on the "output" field.
func OutputIn(vs ...string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldOutput, vs...))
}

// OutputNotIn applies the NotIn predicate on the "output" field.
func OutputNotIn(vs ...string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldOutput, vs...))
}

// OutputGT applies the GT predicate on the "output" field.
func OutputGT(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGT(FieldOutput, v))
}

// OutputGTE applies the GTE predicate on the "output" field.
func OutputGTE(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGTE(FieldOutput, v))
}

// OutputLT applies the LT predicate on the "output" field.
func OutputLT(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLT(FieldOutput, v))
}

// OutputLTE applies the LTE predicate on the "output" field.
func OutputLTE(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLTE(FieldOutput, v))
}

// OutputContains applies the Contains predicate on the "output" field.
func OutputContains(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldContains(FieldOutput, v))
}

// OutputHasPrefix applies the HasPrefix predicate on the "output" field.
func OutputHasPrefix(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldHasPrefix(FieldOutput, v))
}

// OutputHasSuffix applies the HasSuffix predicate on the "output" field.
func OutputHasSuffix(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldHasSuffix(FieldOutput, v))
}

// OutputEqualFold applies the EqualFold predicate on the "output" field.
func OutputEqualFold(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEqualFold(FieldOutput, v))
}

// OutputContainsFold applies the ContainsFold predicate on the "output" field.
func OutputContainsFold(v string) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldContainsFold(FieldOutput, v))
}

// RetrievalIsNil applies the IsNil predicate on the "retrieval" field.
func RetrievalIsNil() predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIsNull(FieldRetrieval))
}

// RetrievalNotNil applies the NotNil predicate on the "retrieval" field.
func RetrievalNotNil() predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotNull(FieldRetrieval))
}

// UsageIsNil applies the IsNil predicate on the "usage" field.
func UsageIsNil() predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIsNull(FieldUsage))
}

// UsageNotNil applies the NotNil predicate on the "usage" field.
func UsageNotNil() predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotNull(FieldUsage))
}

// DecisionIsNil applies the IsNil predicate on the "decision" field.
func DecisionIsNil() predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIsNull(FieldDecision))
}

// DecisionNotNil applies the NotNil predicate on the "decision" field.
func DecisionNotNil() predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotNull(FieldDecision))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TaskStep {
	return predicate.TaskStep(sql.FieldLTE(FieldCreatedAt, v))
}

// HasExecution applies the HasEdge predicate on the "execution" edge.
func HasExecution() predicate.TaskStep {
	return predicate.TaskStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionWith applies the HasEdge predicate on the "execution" edge with a given conditions (other predicates).
func HasExecutionWith(preds ...predicate.TaskExecution) predicate.TaskStep {
	return predicate.TaskStep(func(s *sql.Selector) {
		step := newExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCitations applies the HasEdge predicate on the "citations" edge.
func HasCitations() predicate.TaskStep {
	return predicate.TaskStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CitationsTable, CitationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCitationsWith applies the HasEdge predicate on the "citations" edge with a given conditions (other predicates).
func HasCitationsWith(preds ...predicate.StepCitation) predicate.TaskStep {
	return predicate.TaskStep(func(s *sql.Selector) {
		step := newCitationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskStep) predicate.TaskStep {
	return predicate.TaskStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskStep) predicate.TaskStep {
	return predicate.TaskStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskStep) predicate.TaskStep {
	return predicate.TaskStep(sql.NotPredicates(p))
}
