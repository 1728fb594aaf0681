package models

import (
	"encoding/json"
	"time"
)

// Event type strings use dot notation. Terminal run events signal stream
// completion to observers.
const (
	EventRunQueued          = "run.queued"
	EventRunIngesting       = "run.ingesting"
	EventRunGeneratingTasks = "run.generating_tasks"
	EventRunRunning         = "run.running"
	EventRunEvaluating      = "run.evaluating"
	EventRunCompleted       = "run.completed"
	EventRunFailed          = "run.failed"
	EventRunCanceled        = "run.canceled"

	EventPhaseStarted   = "phase.started"
	EventPhaseCompleted = "phase.completed"

	EventTaskGenerated           = "task.generated"
	EventTaskStepCreated         = "task.step.created"
	EventTaskExecutionStarted    = "task.execution.started"
	EventTaskExecutionCompleted  = "task.execution.completed"
	EventTaskEvaluationCompleted = "task.evaluation.completed"
	EventTaskError               = "task.error"

	EventWorkerStarted = "worker.started"
	EventWorkerStopped = "worker.stopped"

	EventSkillGenerationStarted   = "skill.generation.started"
	EventSkillGenerationCompleted = "skill.generation.completed"
	EventSkillGenerationFailed    = "skill.generation.failed"
)

// IsTerminalEvent reports whether the event type ends an event stream.
func IsTerminalEvent(eventType string) bool {
	switch eventType {
	case EventRunCompleted, EventRunFailed, EventRunCanceled:
		return true
	}
	return false
}

// EventPayload is the uniform payload shape of every run event.
type EventPayload struct {
	RunID   string          `json:"runId"`
	Phase   Phase           `json:"phase,omitempty"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// RunEvent is one appended event. ID is dense and globally ordered across
// the store; Seq is dense and unique per run. Consumers cursor by ID.
type RunEvent struct {
	ID        int64        `json:"id"`
	RunID     string       `json:"runId"`
	Seq       int          `json:"seq"`
	EventType string       `json:"eventType"`
	Payload   EventPayload `json:"payload"`
	CreatedAt time.Time    `json:"createdAt"`
}

// RunError codes recorded by the error sink.
const (
	RunErrorFatal             = "RUN_FATAL"
	RunErrorTaskExecution     = "TASK_EXECUTION_ERROR"
	RunErrorSkillOptimization = "SKILL_OPTIMIZATION_ERROR"
)

// RunError is a persisted run-scoped error record.
type RunError struct {
	ID        string    `json:"id"`
	RunID     string    `json:"runId"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
