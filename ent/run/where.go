// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldID, id))
}

// DocsURL applies equality check predicate on the "docs_url" field. It's identical to DocsURLEQ.
func DocsURL(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldDocsURL, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldEndedAt, v))
}

// CostEstimate applies equality check predicate on the "cost_estimate" field. It's identical to CostEstimateEQ.
func CostEstimate(v float64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCostEstimate, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorMessage, v))
}

// DocsURLEQ applies the EQ predicate on the "docs_url" field.
func DocsURLEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldDocsURL, v))
}

// DocsURLNEQ applies the NEQ predicate on the "docs_url" field.
func DocsURLNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldDocsURL, v))
}

// DocsURLIn applies the In predicate on the "docs_url" field.
func DocsURLIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldDocsURL, vs...))
}

// DocsURLNotIn applies the NotIn predicate on the "docs_url" field.
func DocsURLNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldDocsURL, vs...))
}

// DocsURLGT applies the GT predicate on the "docs_url" field.
func DocsURLGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldDocsURL, v))
}

// DocsURLGTE applies the GTE predicate on the "docs_url" field.
func DocsURLGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldDocsURL, v))
}

// DocsURLLT applies the LT predicate on the "docs_url" field.
func DocsURLLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldDocsURL, v))
}

// DocsURLLTE applies the LTE predicate on the "docs_url" field.
func DocsURLLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldDocsURL, v))
}

// DocsURLContains applies the Contains predicate on the "docs_url" field.
func DocsURLContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldDocsURL, v))
}

// DocsURLHasPrefix applies the HasPrefix predicate on the "docs_url" field.
func DocsURLHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldDocsURL, v))
}

// DocsURLHasSuffix applies the HasSuffix predicate on the "docs_url" field.
func DocsURLHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldDocsURL, v))
}

// DocsURLEqualFold applies the EqualFold predicate on the "docs_url" field.
func DocsURLEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldDocsURL, v))
}

// DocsURLContainsFold applies the ContainsFold predicate on the "docs_url" field.
func DocsURLContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldDocsURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldEndedAt))
}

// TotalsIsNil applies the IsNil predicate on the "totals" field.
func TotalsIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldTotals))
}

// TotalsNotNil applies the NotNil predicate on the "totals" field.
func TotalsNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldTotals))
}

// CostEstimateEQ applies the EQ predicate on the "cost_estimate" field.
func CostEstimateEQ(v float64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCostEstimate, v))
}

// CostEstimateNEQ applies the NEQ predicate on the "cost_estimate" field.
func CostEstimateNEQ(v float64) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCostEstimate, v))
}

// CostEstimateIn applies the In predicate on the "cost_estimate" field.
func CostEstimateIn(vs ...float64) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCostEstimate, vs...))
}

// CostEstimateNotIn applies the NotIn predicate on the "cost_estimate" field.
func CostEstimateNotIn(vs ...float64) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCostEstimate, vs...))
}

// CostEstimateGT applies the GT predicate on the "cost_estimate" field.
func CostEstimateGT(v float64) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCostEstimate, v))
}

// CostEstimateGTE applies the GTE predicate on the "cost_estimate" field.
func CostEstimateGTE(v float64) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCostEstimate, v))
}

// CostEstimateLT applies the LT predicate on the "cost_estimate" field.
func CostEstimateLT(v float64) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCostEstimate, v))
}

// CostEstimateLTE applies the LTE predicate on the "cost_estimate" field.
func CostEstimateLTE(v float64) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCostEstimate, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasArtifacts applies the HasEdge predicate on the "artifacts" edge.
func HasArtifacts() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArtifactsWith applies the HasEdge predicate on the "artifacts" edge with a given conditions (other predicates).
func HasArtifactsWith(preds ...predicate.RunArtifact) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newArtifactsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWorkers applies the HasEdge predicate on the "workers" edge.
func HasWorkers() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WorkersTable, WorkersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkersWith applies the HasEdge predicate on the "workers" edge with a given conditions (other predicates).
func HasWorkersWith(preds ...predicate.RunWorker) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newWorkersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExecutions applies the HasEdge predicate on the "executions" edge.
func HasExecutions() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionsWith applies the HasEdge predicate on the "executions" edge with a given conditions (other predicates).
func HasExecutionsWith(preds ...predicate.TaskExecution) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.RunEvent) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasErrors applies the HasEdge predicate on the "errors" edge.
func HasErrors() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ErrorsTable, ErrorsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasErrorsWith applies the HasEdge predicate on the "errors" edge with a given conditions (other predicates).
func HasErrorsWith(preds ...predicate.RunError) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newErrorsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvaluations applies the HasEdge predicate on the "evaluations" edge.
func HasEvaluations() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvaluationsTable, EvaluationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvaluationsWith applies the HasEdge predicate on the "evaluations" edge with a given conditions (other predicates).
func HasEvaluationsWith(preds ...predicate.TaskEvaluation) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newEvaluationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSkillSession applies the HasEdge predicate on the "skill_session" edge.
func HasSkillSession() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, SkillSessionTable, SkillSessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSkillSessionWith applies the HasEdge predicate on the "skill_session" edge with a given conditions (other predicates).
func HasSkillSessionWith(preds ...predicate.SkillSession) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newSkillSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Run) predicate.Run {
	return predicate.Run(sql.NotPredicates(p))
}
