// Package store defines the persistence contract for every run entity and
// provides two implementations: an ent/PostgreSQL store for production and
// an in-memory store for unit tests and local runs.
package store

import (
	"context"
	"errors"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// Sentinel errors shared by all implementations.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a uniqueness violation on create.
	ErrAlreadyExists = errors.New("already exists")

	// ErrRunTerminal indicates a write was rejected because the owning run
	// already reached a terminal status.
	ErrRunTerminal = errors.New("run is terminal")
)

// Store is the persistence boundary. The orchestrator manipulates typed
// values only; JSON encode/decode happens inside implementations.
//
// Write-path invariants every implementation guarantees:
//   - run_events (runId, seq) is dense and unique under concurrent appenders;
//   - IncrementRunCost is atomic and the run total is monotone;
//   - progress writes for a terminal run (creating executions, step traces,
//     token/cost counters, agent state, attempts, evaluations) fail with
//     ErrRunTerminal; settlement writes (FinalizeTaskExecution,
//     UpdateTaskStatus) stay open so a canceled run's in-flight executions
//     can be closed out as skipped/cancelled;
//   - at most one evaluation exists per (runId, taskId, phase); a duplicate
//     write returns ErrAlreadyExists;
//   - UpdateRunStatus to a non-terminal status is a no-op once the run is
//     terminal (only FinalizeRun writes terminal statuses).
type Store interface {
	// Runs
	CreateRun(ctx context.Context, run *models.Run) error
	GetRun(ctx context.Context, runID string) (*models.Run, error)
	ListRuns(ctx context.Context, limit, offset int) ([]*models.Run, error)
	UpdateRunStatus(ctx context.Context, runID string, status models.RunStatus) error
	FinalizeRun(ctx context.Context, runID string, status models.RunStatus, totals *models.Totals, errorMessage string) error
	IncrementRunCost(ctx context.Context, runID string, delta float64) (float64, error)
	IsRunCanceled(ctx context.Context, runID string) (bool, error)

	// Ingestion artifacts
	PersistIngestionArtifacts(ctx context.Context, runID string, artifacts []models.Artifact) error
	GetRunArtifacts(ctx context.Context, runID string) ([]models.Artifact, error)

	// Tasks
	PersistTasks(ctx context.Context, runID string, tasks []models.Task) error
	GetRunTasks(ctx context.Context, runID string) ([]models.Task, error)
	UpdateTaskStatus(ctx context.Context, runID, taskID string, status models.TaskStatus) error

	// Workers
	EnsureRunWorkers(ctx context.Context, runID string, workers []models.Worker) ([]models.Worker, error)
	GetRunWorkers(ctx context.Context, runID string) ([]models.Worker, error)
	UpdateWorkerStatus(ctx context.Context, runID, workerID string, status models.WorkerStatus) error

	// Task executions
	CreateTaskExecution(ctx context.Context, exec *models.TaskExecution) error
	UpdateTaskExecutionProgress(ctx context.Context, executionID string, delta models.ExecutionProgress) error
	FinalizeTaskExecution(ctx context.Context, executionID string, status models.TaskStatus, stopReason models.StopReason) error
	GetTaskExecutions(ctx context.Context, runID string) ([]models.TaskExecution, error)

	// Agent state and step traces
	UpsertTaskAgentState(ctx context.Context, executionID string, memory models.AgentMemory) error
	GetTaskAgentState(ctx context.Context, executionID string) (*models.AgentMemory, error)
	PersistTaskStep(ctx context.Context, step *models.StepTrace) (int64, error)
	PersistTaskStepCitations(ctx context.Context, stepID int64, citations []models.Citation) error
	GetTaskSteps(ctx context.Context, executionID string) ([]models.StepTrace, error)

	// Evaluation
	PersistDeterministicChecks(ctx context.Context, checks []models.DeterministicCheck) error
	PersistTaskAttempt(ctx context.Context, executionID string, attempt models.Attempt) error
	PersistTaskEvaluation(ctx context.Context, eval *models.TaskEvaluation) error
	ListTaskEvaluations(ctx context.Context, runID string, phase models.Phase) ([]models.TaskEvaluation, error)

	// Event log
	AppendRunEvent(ctx context.Context, runID, eventType string, payload models.EventPayload) (int64, error)
	GetRunEventsAfter(ctx context.Context, runID string, afterID int64, limit int) ([]models.RunEvent, error)

	// Run errors
	PersistRunError(ctx context.Context, runID, code, message string) error
	ListRunErrors(ctx context.Context, runID string) ([]models.RunError, error)

	// Skill optimization session
	UpsertSkillSession(ctx context.Context, session *models.SkillSession) error
	GetSkillSession(ctx context.Context, runID string) (*models.SkillSession, error)
}
