// Code generated by ent, DO NOT EDIT.

package deterministiccheck

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldLTE(FieldID, id))
}

// TaskExecutionID applies equality check predicate on the "task_execution_id" field. It's identical to TaskExecutionIDEQ.
func TaskExecutionID(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldEQ(FieldTaskExecutionID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldEQ(FieldName, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldEQ(FieldPassed, v))
}

// ScoreDelta applies equality check predicate on the "score_delta" field. It's identical to ScoreDeltaEQ.
func ScoreDelta(v float64) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldEQ(FieldScoreDelta, v))
}

// Details applies equality check predicate on the "details" field. It's identical to DetailsEQ.
func Details(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldEQ(FieldDetails, v))
}

// TaskExecutionIDEQ applies the EQ predicate on the "task_execution_id" field.
func TaskExecutionIDEQ(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldEQ(FieldTaskExecutionID, v))
}

// TaskExecutionIDNEQ applies the NEQ predicate on the "task_execution_id" field.
func TaskExecutionIDNEQ(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldNEQ(FieldTaskExecutionID, v))
}

// TaskExecutionIDIn applies the In predicate on the "task_execution_id" field.
func TaskExecutionIDIn(vs ...string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldIn(FieldTaskExecutionID, vs...))
}

// TaskExecutionIDNotIn applies the NotIn predicate on the "task_execution_id" field.
func TaskExecutionIDNotIn(vs ...string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldNotIn(FieldTaskExecutionID, vs...))
}

// TaskExecutionIDGT applies the GT predicate on the "task_execution_id" field.
func TaskExecutionIDGT(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldGT(FieldTaskExecutionID, v))
}

// TaskExecutionIDGTE applies the GTE predicate on the "task_execution_id" field.
func TaskExecutionIDGTE(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldGTE(FieldTaskExecutionID, v))
}

// TaskExecutionIDLT applies the LT predicate on the "task_execution_id" field.
func TaskExecutionIDLT(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldLT(FieldTaskExecutionID, v))
}

// TaskExecutionIDLTE applies the LTE predicate on the "task_execution_id" field.
func TaskExecutionIDLTE(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldLTE(FieldTaskExecutionID, v))
}

// TaskExecutionIDContains applies the Contains predicate on the "task_execution_id" field.
func TaskExecutionIDContains(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldContains(FieldTaskExecutionID, v))
}

// TaskExecutionIDHasPrefix applies the HasPrefix predicate on the "task_execution_id" field.
func TaskExecutionIDHasPrefix(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldHasPrefix(FieldTaskExecutionID, v))
}

// TaskExecutionIDHasSuffix applies the HasSuffix predicate on the "task_execution_id" field.
func TaskExecutionIDHasSuffix(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldHasSuffix(FieldTaskExecutionID, v))
}

// TaskExecutionIDEqualFold applies the EqualFold predicate on the "task_execution_id" field.
func TaskExecutionIDEqualFold(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldEqualFold(FieldTaskExecutionID, v))
}

// TaskExecutionIDContainsFold applies the ContainsFold predicate on the "task_execution_id" field.
func TaskExecutionIDContainsFold(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldContainsFold(FieldTaskExecutionID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldContainsFold(FieldName, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldNEQ(FieldPassed, v))
}

// ScoreDeltaEQ applies the EQ predicate on the "score_delta" field.
func ScoreDeltaEQ(v float64) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldEQ(FieldScoreDelta, v))
}

// ScoreDeltaNEQ applies the NEQ predicate on the "score_delta" field.
func ScoreDeltaNEQ(v float64) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldNEQ(FieldScoreDelta, v))
}

// ScoreDeltaIn applies the In predicate on the "score_delta" field.
func ScoreDeltaIn(vs ...float64) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldIn(FieldScoreDelta, vs...))
}

// ScoreDeltaNotIn applies the NotIn predicate on the "score_delta" field.
func ScoreDeltaNotIn(vs ...float64) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldNotIn(FieldScoreDelta, vs...))
}

// ScoreDeltaGT applies the GT predicate on the "score_delta" field.
func ScoreDeltaGT(v float64) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldGT(FieldScoreDelta, v))
}

// ScoreDeltaGTE applies the GTE predicate on the "score_delta" field.
func ScoreDeltaGTE(v float64) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldGTE(FieldScoreDelta, v))
}

// ScoreDeltaLT applies the LT predicate on the "score_delta" field.
func ScoreDeltaLT(v float64) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldLT(FieldScoreDelta, v))
}

// ScoreDeltaLTE applies the LTE predicate on the "score_delta" field.
func ScoreDeltaLTE(v float64) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldLTE(FieldScoreDelta, v))
}

// DetailsEQ applies the EQ predicate on the "details" field.
func DetailsEQ(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldEQ(FieldDetails, v))
}

// DetailsNEQ applies the NEQ predicate on the "details" field.
func DetailsNEQ(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldNEQ(FieldDetails, v))
}

// DetailsIn applies the In predicate on the "details" field.
func DetailsIn(vs ...string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldIn(FieldDetails, vs...))
}

// DetailsNotIn applies the NotIn predicate on the "details" field.
func DetailsNotIn(vs ...string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldNotIn(FieldDetails, vs...))
}

// DetailsGT applies the GT predicate on the "details" field.
func DetailsGT(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldGT(FieldDetails, v))
}

// DetailsGTE applies the GTE predicate on the "details" field.
func DetailsGTE(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldGTE(FieldDetails, v))
}

// DetailsLT applies the LT predicate on the "details" field.
func DetailsLT(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldLT(FieldDetails, v))
}

// DetailsLTE applies the LTE predicate on the "details" field.
func DetailsLTE(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldLTE(FieldDetails, v))
}

// DetailsContains applies the Contains predicate on the "details" field.
func DetailsContains(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldContains(FieldDetails, v))
}

// DetailsHasPrefix applies the HasPrefix predicate on the "details" field.
func DetailsHasPrefix(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldHasPrefix(FieldDetails, v))
}

// DetailsHasSuffix applies the HasSuffix predicate on the "details" field.
func DetailsHasSuffix(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldHasSuffix(FieldDetails, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldNotNull(FieldDetails))
}

// DetailsEqualFold applies the EqualFold predicate on the "details" field.
func DetailsEqualFold(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldEqualFold(FieldDetails, v))
}

// DetailsContainsFold applies the ContainsFold predicate on the "details" field.
func DetailsContainsFold(v string) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.FieldContainsFold(FieldDetails, v))
}

// HasExecution applies the HasEdge predicate on the "execution" edge.
func HasExecution() predicate.DeterministicCheck {
	return predicate.DeterministicCheck(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionWith applies the HasEdge predicate on the "execution" edge with a given conditions (other predicates).
func HasExecutionWith(preds ...predicate.TaskExecution) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(func(s *sql.Selector) {
		step := newExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeterministicCheck) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeterministicCheck) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeterministicCheck) predicate.DeterministicCheck {
	return predicate.DeterministicCheck(sql.NotPredicates(p))
}
