// Code generated by ent, DO NOT EDIT.

package runworker

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldEQ(FieldRunID, v))
}

// WorkerLabel applies equality check predicate on the "worker_label" field. It's identical to WorkerLabelEQ.
func WorkerLabel(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldEQ(FieldWorkerLabel, v))
}

// ModelProvider applies equality check predicate on the "model_provider" field. It's identical to ModelProviderEQ.
func ModelProvider(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldEQ(FieldModelProvider, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldEQ(FieldModelName, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldContainsFold(FieldRunID, v))
}

// WorkerLabelEQ applies the EQ predicate on the "worker_label" field.
func WorkerLabelEQ(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldEQ(FieldWorkerLabel, v))
}

// WorkerLabelNEQ applies the NEQ predicate on the "worker_label" field.
func WorkerLabelNEQ(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldNEQ(FieldWorkerLabel, v))
}

// WorkerLabelIn applies the In predicate on the "worker_label" field.
func WorkerLabelIn(vs ...string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldIn(FieldWorkerLabel, vs...))
}

// WorkerLabelNotIn applies the NotIn predicate on the "worker_label" field.
func WorkerLabelNotIn(vs ...string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldNotIn(FieldWorkerLabel, vs...))
}

// WorkerLabelGT applies the GT predicate on the "worker_label" field.
func WorkerLabelGT(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldGT(FieldWorkerLabel, v))
}

// WorkerLabelGTE applies the GTE predicate on the "worker_label" field.
func WorkerLabelGTE(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldGTE(FieldWorkerLabel, v))
}

// WorkerLabelLT applies the LT predicate on the "worker_label" field.
func WorkerLabelLT(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldLT(FieldWorkerLabel, v))
}

// WorkerLabelLTE applies the LTE predicate on the "worker_label" field.
func WorkerLabelLTE(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldLTE(FieldWorkerLabel, v))
}

// WorkerLabelContains applies the Contains predicate on the "worker_label" field.
func WorkerLabelContains(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldContains(FieldWorkerLabel, v))
}

// WorkerLabelHasPrefix applies the HasPrefix predicate on the "worker_label" field.
func WorkerLabelHasPrefix(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldHasPrefix(FieldWorkerLabel, v))
}

// WorkerLabelHasSuffix applies the HasSuffix predicate on the "worker_label" field.
func WorkerLabelHasSuffix(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldHasSuffix(FieldWorkerLabel, v))
}

// WorkerLabelEqualFold applies the EqualFold predicate on the "worker_label" field.
func WorkerLabelEqualFold(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldEqualFold(FieldWorkerLabel, v))
}

// WorkerLabelContainsFold applies the ContainsFold predicate on the "worker_label" field.
func WorkerLabelContainsFold(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldContainsFold(FieldWorkerLabel, v))
}

// ModelProviderEQ applies the EQ predicate on the "model_provider" field.
func ModelProviderEQ(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldEQ(FieldModelProvider, v))
}

// ModelProviderNEQ applies the NEQ predicate on the "model_provider" field.
func ModelProviderNEQ(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldNEQ(FieldModelProvider, v))
}

// ModelProviderIn applies the In predicate on the "model_provider" field.
func ModelProviderIn(vs ...string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldIn(FieldModelProvider, vs...))
}

// ModelProviderNotIn applies the NotIn predicate on the "model_provider" field.
func ModelProviderNotIn(vs ...string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldNotIn(FieldModelProvider, vs...))
}

// ModelProviderGT applies the GT predicate on the "model_provider" field.
func ModelProviderGT(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldGT(FieldModelProvider, v))
}

// ModelProviderGTE applies the GTE predicate on the "model_provider" field.
func ModelProviderGTE(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldGTE(FieldModelProvider, v))
}

// ModelProviderLT applies the LT predicate on the "model_provider" field.
func ModelProviderLT(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldLT(FieldModelProvider, v))
}

// ModelProviderLTE applies the LTE predicate on the "model_provider" field.
func ModelProviderLTE(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldLTE(FieldModelProvider, v))
}

// ModelProviderContains applies the Contains predicate on the "model_provider" field.
func ModelProviderContains(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldContains(FieldModelProvider, v))
}

// ModelProviderHasPrefix applies the HasPrefix predicate on the "model_provider" field.
func ModelProviderHasPrefix(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldHasPrefix(FieldModelProvider, v))
}

// ModelProviderHasSuffix applies the HasSuffix predicate on the "model_provider" field.
func ModelProviderHasSuffix(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldHasSuffix(FieldModelProvider, v))
}

// ModelProviderEqualFold applies the EqualFold predicate on the "model_provider" field.
func ModelProviderEqualFold(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldEqualFold(FieldModelProvider, v))
}

// ModelProviderContainsFold applies the ContainsFold predicate on the "model_provider" field.
func ModelProviderContainsFold(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldContainsFold(FieldModelProvider, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldContainsFold(FieldModelName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RunWorker {
	return predicate.RunWorker(sql.FieldNotIn(FieldStatus, vs...))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.RunWorker {
	return predicate.RunWorker(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.RunWorker {
	return predicate.RunWorker(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RunWorker) predicate.RunWorker {
	return predicate.RunWorker(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RunWorker) predicate.RunWorker {
	return predicate.RunWorker(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RunWorker) predicate.RunWorker {
	return predicate.RunWorker(sql.NotPredicates(p))
}
