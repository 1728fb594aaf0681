// Package models defines the typed domain values exchanged between the
// orchestrator and the store. Raw JSON exists only at the store boundary.
package models

import "time"

// RunStatus is the lifecycle state of a run.
type RunStatus string

// Run lifecycle statuses. Transitions form a DAG; see orchestrator.StateMachine.
const (
	RunStatusQueued          RunStatus = "queued"
	RunStatusIngesting       RunStatus = "ingesting"
	RunStatusGeneratingTasks RunStatus = "generating_tasks"
	RunStatusRunning         RunStatus = "running"
	RunStatusEvaluating      RunStatus = "evaluating"
	RunStatusCompleted       RunStatus = "completed"
	RunStatusFailed          RunStatus = "failed"
	RunStatusCanceled        RunStatus = "canceled"
)

// IsTerminal reports whether the status is in the terminal set.
// Terminal statuses are sticky: only the finalizer may write another
// terminal status over them.
func (s RunStatus) IsTerminal() bool {
	switch s {
	case RunStatusCompleted, RunStatusFailed, RunStatusCanceled:
		return true
	}
	return false
}

// Run owns every other entity. CostEstimate is monotonically non-decreasing
// and equals the sum of its executions' cost estimates at quiescence.
type Run struct {
	ID           string     `json:"runId"`
	DocsURL      string     `json:"docsUrl"`
	Status       RunStatus  `json:"status"`
	StartedAt    time.Time  `json:"startedAt"`
	EndedAt      *time.Time `json:"endedAt,omitempty"`
	Config       RunConfig  `json:"config"`
	Totals       *Totals    `json:"totals,omitempty"`
	CostEstimate float64    `json:"costEstimate"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
}

// Totals is the per-phase aggregate produced by the aggregator.
type Totals struct {
	TotalTasks          int                   `json:"totalTasks"`
	PassedTasks         int                   `json:"passedTasks"`
	FailedTasks         int                   `json:"failedTasks"`
	PassRate            float64               `json:"passRate"`
	QualityPassedTasks  int                   `json:"qualityPassedTasks"`
	QualityPassRate     float64               `json:"qualityPassRate"`
	ValidityPassedTasks int                   `json:"validityPassedTasks"`
	ValidityPassRate    float64               `json:"validityPassRate"`
	AverageScore        float64               `json:"averageScore"`
	FailureBreakdown    map[FailureClass]int  `json:"failureBreakdown"`
}

// Delta is the component-wise optimized − baseline comparison,
// rounded to 4 decimals.
type Delta struct {
	PassRateDelta     float64 `json:"passRateDelta"`
	AverageScoreDelta float64 `json:"averageScoreDelta"`
	PassedTasksDelta  float64 `json:"passedTasksDelta"`
	FailedTasksDelta  float64 `json:"failedTasksDelta"`
}
