package models

import "time"

// Phase distinguishes the baseline pass from the optimized re-run.
type Phase string

// Run phases.
const (
	PhaseBaseline  Phase = "baseline"
	PhaseOptimized Phase = "optimized"
)

// StopReason records why an execution's loop terminated.
type StopReason string

// Stop reasons, in termination precedence order.
const (
	StopReasonTokenLimit StopReason = "token_limit"
	StopReasonCancelled  StopReason = "cancelled"
	StopReasonCostLimit  StopReason = "cost_limit"
	StopReasonCompleted  StopReason = "completed"
	StopReasonStepLimit  StopReason = "step_limit"
	StopReasonError      StopReason = "error"
)

// TaskExecution is one attempt of a task by a worker within a phase.
type TaskExecution struct {
	ID           string      `json:"id"`
	RunID        string      `json:"runId"`
	TaskID       string      `json:"taskId"`
	WorkerID     string      `json:"workerId"`
	Phase        Phase       `json:"phase"`
	Status       TaskStatus  `json:"status"`
	StepCount    int         `json:"stepCount"`
	TokensIn     int         `json:"tokensIn"`
	TokensOut    int         `json:"tokensOut"`
	CostEstimate float64     `json:"costEstimate"`
	StopReason   StopReason  `json:"stopReason,omitempty"`
	StartedAt    time.Time   `json:"startedAt"`
	CompletedAt  *time.Time  `json:"completedAt,omitempty"`
}

// ExecutionProgress is the counter delta applied after each model call.
type ExecutionProgress struct {
	StepCount    int     `json:"stepCount"`
	TokensIn     int     `json:"tokensIn"`
	TokensOut    int     `json:"tokensOut"`
	CostEstimate float64 `json:"costEstimate"`
}

// RemainingBudget is recomputed by the budget accountant after every
// applied usage delta.
type RemainingBudget struct {
	Steps   int     `json:"steps"`
	Tokens  int     `json:"tokens"`
	CostUSD float64 `json:"costUsd"`
}

// AgentMemory is the per-execution agent state, upserted once per iteration.
// List fields are deduplicated on update; Facts keeps the newest 20 and
// StepSummaries the newest 12 entries.
type AgentMemory struct {
	CurrentStep     int             `json:"currentStep"`
	Goal            string          `json:"goal"`
	Plan            []PlanItem      `json:"plan"`
	VisitedSources  []string        `json:"visitedSources"`
	Facts           []string        `json:"facts"`
	StepSummaries   []string        `json:"stepSummaries"`
	RemainingBudget RemainingBudget `json:"remainingBudget"`
}

// PlanItem is one plan entry; Done is cleared when the plan is rebuilt.
type PlanItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Citation grounds a claim in a retrieval chunk.
type Citation struct {
	Source      string `json:"source"`
	SnippetHash string `json:"snippetHash,omitempty"`
	Excerpt     string `json:"excerpt"`
	StartOffset *int   `json:"startOffset,omitempty"`
	EndOffset   *int   `json:"endOffset,omitempty"`
}

// Attempt is the final artifact of an execution, handed to the evaluator.
type Attempt struct {
	Answer     string     `json:"answer"`
	Steps      []string   `json:"steps"`
	Citations  []Citation `json:"citations"`
	StepCount  int        `json:"stepCount"`
	StopReason StopReason `json:"stopReason"`
}
