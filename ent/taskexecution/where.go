// Code generated by ent, DO NOT EDIT.

package taskexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldRunID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldTaskID, v))
}

// WorkerID applies equality check predicate on the "worker_id" field. It's identical to WorkerIDEQ.
func WorkerID(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldWorkerID, v))
}

// StepCount applies equality check predicate on the "step_count" field. It's identical to StepCountEQ.
func StepCount(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldStepCount, v))
}

// TokensIn applies equality check predicate on the "tokens_in" field. It's identical to TokensInEQ.
func TokensIn(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldTokensIn, v))
}

// TokensOut applies equality check predicate on the "tokens_out" field. It's identical to TokensOutEQ.
func TokensOut(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldTokensOut, v))
}

// CostEstimate applies equality check predicate on the "cost_estimate" field. It's identical to CostEstimateEQ.
func CostEstimate(v float64) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldCostEstimate, v))
}

// StopReason applies equality check predicate on the "stop_reason" field. It's identical to StopReasonEQ.
func StopReason(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldStopReason, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldContainsFold(FieldRunID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldContainsFold(FieldTaskID, v))
}

// WorkerIDEQ applies the EQ predicate on the "worker_id" field.
func WorkerIDEQ(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldWorkerID, v))
}

// WorkerIDNEQ applies the NEQ predicate on the "worker_id" field.
func WorkerIDNEQ(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNEQ(FieldWorkerID, v))
}

// WorkerIDIn applies the In predicate on the "worker_id" field.
func WorkerIDIn(vs ...string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldIn(FieldWorkerID, vs...))
}

// WorkerIDNotIn applies the NotIn predicate on the "worker_id" field.
func WorkerIDNotIn(vs ...string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNotIn(FieldWorkerID, vs...))
}

// WorkerIDGT applies the GT predicate on the "worker_id" field.
func WorkerIDGT(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGT(FieldWorkerID, v))
}

// WorkerIDGTE applies the GTE predicate on the "worker_id" field.
func WorkerIDGTE(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGTE(FieldWorkerID, v))
}

// WorkerIDLT applies the LT predicate on the "worker_id" field.
func WorkerIDLT(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLT(FieldWorkerID, v))
}

// WorkerIDLTE applies the LTE predicate on the "worker_id" field.
func WorkerIDLTE(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLTE(FieldWorkerID, v))
}

// WorkerIDContains applies the Contains predicate on the "worker_id" field.
func WorkerIDContains(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldContains(FieldWorkerID, v))
}

// WorkerIDHasPrefix applies the HasPrefix predicate on the "worker_id" field.
func WorkerIDHasPrefix(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldHasPrefix(FieldWorkerID, v))
}

// WorkerIDHasSuffix applies the HasSuffix predicate on the "worker_id" field.
func WorkerIDHasSuffix(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldHasSuffix(FieldWorkerID, v))
}

// WorkerIDEqualFold applies the EqualFold predicate on the "worker_id" field.
func WorkerIDEqualFold(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEqualFold(FieldWorkerID, v))
}

// WorkerIDContainsFold applies the ContainsFold predicate on the "worker_id" field.
func WorkerIDContainsFold(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldContainsFold(FieldWorkerID, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v Phase) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v Phase) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...Phase) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...Phase) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNotIn(FieldPhase, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// StepCountEQ applies the EQ predicate on the "step_count" field.
func StepCountEQ(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldStepCount, v))
}

// StepCountNEQ applies the NEQ predicate on the "step_count" field.
func StepCountNEQ(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNEQ(FieldStepCount, v))
}

// StepCountIn applies the In predicate on the "step_count" field.
func StepCountIn(vs ...int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldIn(FieldStepCount, vs...))
}

// StepCountNotIn applies the NotIn predicate on the "step_count" field.
func StepCountNotIn(vs ...int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNotIn(FieldStepCount, vs...))
}

// StepCountGT applies the GT predicate on the "step_count" field.
func StepCountGT(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGT(FieldStepCount, v))
}

// StepCountGTE applies the GTE predicate on the "step_count" field.
func StepCountGTE(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGTE(FieldStepCount, v))
}

// StepCountLT applies the LT predicate on the "step_count" field.
func StepCountLT(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLT(FieldStepCount, v))
}

// StepCountLTE applies the LTE predicate on the "step_count" field.
func StepCountLTE(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLTE(FieldStepCount, v))
}

// TokensInEQ applies the EQ predicate on the "tokens_in" field.
func TokensInEQ(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldTokensIn, v))
}

// TokensInNEQ applies the NEQ predicate on the "tokens_in" field.
func TokensInNEQ(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNEQ(FieldTokensIn, v))
}

// TokensInIn applies the In predicate on the "tokens_in" field.
func TokensInIn(vs ...int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldIn(FieldTokensIn, vs...))
}

// TokensInNotIn applies the NotIn predicate on the "tokens_in" field.
func TokensInNotIn(vs ...int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNotIn(FieldTokensIn, vs...))
}

// TokensInGT applies the GT predicate on the "tokens_in" field.
func TokensInGT(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGT(FieldTokensIn, v))
}

// TokensInGTE applies the GTE predicate on the "tokens_in" field.
func TokensInGTE(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGTE(FieldTokensIn, v))
}

// TokensInLT applies the LT predicate on the "tokens_in" field.
func TokensInLT(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLT(FieldTokensIn, v))
}

// TokensInLTE applies the LTE predicate on the "tokens_in" field.
func TokensInLTE(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLTE(FieldTokensIn, v))
}

// TokensOutEQ applies the EQ predicate on the "tokens_out" field.
func TokensOutEQ(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldTokensOut, v))
}

// TokensOutNEQ applies the NEQ predicate on the "tokens_out" field.
func TokensOutNEQ(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNEQ(FieldTokensOut, v))
}

// TokensOutIn applies the In predicate on the "tokens_out" field.
func TokensOutIn(vs ...int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldIn(FieldTokensOut, vs...))
}

// TokensOutNotIn applies the NotIn predicate on the "tokens_out" field.
func TokensOutNotIn(vs ...int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNotIn(FieldTokensOut, vs...))
}

// TokensOutGT applies the GT predicate on the "tokens_out" field.
func TokensOutGT(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGT(FieldTokensOut, v))
}

// TokensOutGTE applies the GTE predicate on the "tokens_out" field.
func TokensOutGTE(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGTE(FieldTokensOut, v))
}

// TokensOutLT applies the LT predicate on the "tokens_out" field.
func TokensOutLT(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLT(FieldTokensOut, v))
}

// TokensOutLTE applies the LTE predicate on the "tokens_out" field.
func TokensOutLTE(v int) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLTE(FieldTokensOut, v))
}

// CostEstimateEQ applies the EQ predicate on the "cost_estimate" field.
func CostEstimateEQ(v float64) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldCostEstimate, v))
}

// CostEstimateNEQ applies the NEQ predicate on the "cost_estimate" field.
func CostEstimateNEQ(v float64) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNEQ(FieldCostEstimate, v))
}

// CostEstimateIn applies the In predicate on the "cost_estimate" field.
func CostEstimateIn(vs ...float64) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldIn(FieldCostEstimate, vs...))
}

// CostEstimateNotIn applies the NotIn predicate on the "cost_estimate" field.
func CostEstimateNotIn(vs ...float64) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNotIn(FieldCostEstimate, vs...))
}

// CostEstimateGT applies the GT predicate on the "cost_estimate" field.
func CostEstimateGT(v float64) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGT(FieldCostEstimate, v))
}

// CostEstimateGTE applies the GTE predicate on the "cost_estimate" field.
func CostEstimateGTE(v float64) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGTE(FieldCostEstimate, v))
}

// CostEstimateLT applies the LT predicate on the "cost_estimate" field.
func CostEstimateLT(v float64) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLT(FieldCostEstimate, v))
}

// CostEstimateLTE applies the LTE predicate on the "cost_estimate" field.
func CostEstimateLTE(v float64) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLTE(FieldCostEstimate, v))
}

// StopReasonEQ applies the EQ predicate on the "stop_reason" field.
func StopReasonEQ(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldStopReason, v))
}

// StopReasonNEQ applies the NEQ predicate on the "stop_reason" field.
func StopReasonNEQ(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNEQ(FieldStopReason, v))
}

// StopReasonIn applies the In predicate on the "stop_reason" field.
func StopReasonIn(vs ...string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldIn(FieldStopReason, vs...))
}

// StopReasonNotIn applies the NotIn predicate on the "stop_reason" field.
func StopReasonNotIn(vs ...string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNotIn(FieldStopReason, vs...))
}

// StopReasonGT applies the GT predicate on the "stop_reason" field.
func StopReasonGT(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGT(FieldStopReason, v))
}

// StopReasonGTE applies the GTE predicate on the "stop_reason" field.
func StopReasonGTE(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGTE(FieldStopReason, v))
}

// StopReasonLT applies the LT predicate on the "stop_reason" field.
func StopReasonLT(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLT(FieldStopReason, v))
}

// StopReasonLTE applies the LTE predicate on the "stop_reason" field.
func StopReasonLTE(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLTE(FieldStopReason, v))
}

// StopReasonContains applies the Contains predicate on the "stop_reason" field.
func StopReasonContains(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldContains(FieldStopReason, v))
}

// StopReasonHasPrefix applies the HasPrefix predicate on the "stop_reason" field.
func StopReasonHasPrefix(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldHasPrefix(FieldStopReason, v))
}

// StopReasonHasSuffix applies the HasSuffix predicate on the "stop_reason" field.
func StopReasonHasSuffix(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldHasSuffix(FieldStopReason, v))
}

// StopReasonIsNil applies the IsNil predicate on the "stop_reason" field.
func StopReasonIsNil() predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldIsNull(FieldStopReason))
}

// StopReasonNotNil applies the NotNil predicate on the "stop_reason" field.
func StopReasonNotNil() predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNotNull(FieldStopReason))
}

// StopReasonEqualFold applies the EqualFold predicate on the "stop_reason" field.
func StopReasonEqualFold(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEqualFold(FieldStopReason, v))
}

// StopReasonContainsFold applies the ContainsFold predicate on the "stop_reason" field.
func StopReasonContainsFold(v string) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldContainsFold(FieldStopReason, v))
}

// AttemptIsNil applies the IsNil predicate on the "attempt" field.
func AttemptIsNil() predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldIsNull(FieldAttempt))
}

// AttemptNotNil applies the NotNil predicate on the "attempt" field.
func AttemptNotNil() predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNotNull(FieldAttempt))
}

// AgentStateIsNil applies the IsNil predicate on the "agent_state" field.
func AgentStateIsNil() predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldIsNull(FieldAgentState))
}

// AgentStateNotNil applies the NotNil predicate on the "agent_state" field.
func AgentStateNotNil() predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNotNull(FieldAgentState))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.TaskExecution {
	return predicate.TaskExecution(sql.FieldNotNull(FieldCompletedAt))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.TaskExecution {
	return predicate.TaskExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.TaskExecution {
	return predicate.TaskExecution(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.TaskExecution {
	return predicate.TaskExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.TaskStep) predicate.TaskExecution {
	return predicate.TaskExecution(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChecks applies the HasEdge predicate on the "checks" edge.
func HasChecks() predicate.TaskExecution {
	return predicate.TaskExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChecksTable, ChecksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChecksWith applies the HasEdge predicate on the "checks" edge with a given conditions (other predicates).
func HasChecksWith(preds ...predicate.DeterministicCheck) predicate.TaskExecution {
	return predicate.TaskExecution(func(s *sql.Selector) {
		step := newChecksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskExecution) predicate.TaskExecution {
	return predicate.TaskExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskExecution) predicate.TaskExecution {
	return predicate.TaskExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskExecution) predicate.TaskExecution {
	return predicate.TaskExecution(sql.NotPredicates(p))
}
