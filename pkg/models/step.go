package models

import "time"

// StepPhase is one of the four phases of an agent-loop iteration.
type StepPhase string

// Step phases, in iteration order.
const (
	StepPhaseRetrieve StepPhase = "retrieve"
	StepPhasePlan     StepPhase = "plan"
	StepPhaseAct      StepPhase = "act"
	StepPhaseReflect  StepPhase = "reflect"
)

// StepTrace is one phase of one iteration. StepIndex is shared by the four
// phases of an iteration; rows are ordered by (taskExecutionId, id).
type StepTrace struct {
	ID              int64          `json:"id"`
	TaskExecutionID string         `json:"taskExecutionId"`
	RunID           string         `json:"runId"`
	StepIndex       int            `json:"stepIndex"`
	Phase           StepPhase      `json:"phase"`
	Input           string         `json:"input"`
	Output          string         `json:"output"`
	Retrieval       []ChunkRef     `json:"retrieval,omitempty"`
	Usage           *StepUsage     `json:"usage,omitempty"`
	Decision        *StepDecision  `json:"decision,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// ChunkRef references a ranked retrieval chunk used by a step.
type ChunkRef struct {
	Source      string  `json:"source"`
	SnippetHash string  `json:"snippetHash"`
	Score       float64 `json:"score"`
}

// StepUsage is the token/cost/latency accounting for one model call.
type StepUsage struct {
	InputTokens  int     `json:"inputTokens"`
	OutputTokens int     `json:"outputTokens"`
	CostEstimate float64 `json:"costEstimate"`
	LatencyMs    int64   `json:"latencyMs"`
}

// StepDecision is the (possibly overridden) continue/stop decision persisted
// with a reflect step.
type StepDecision struct {
	ShouldContinue bool    `json:"shouldContinue"`
	Overridden     bool    `json:"overridden"`
	StopReason     string  `json:"stopReason,omitempty"`
	Confidence     float64 `json:"confidence"`
}

// StepCitation is a citation row attached to an act step.
type StepCitation struct {
	StepID int64 `json:"stepId"`
	Citation
}
