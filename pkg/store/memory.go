package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// MemoryStore is a complete in-process Store backed by maps and one mutex.
// It satisfies the same write-path invariants as the ent store (dense per-run
// event seq, atomic cost increments, terminal-run write rejection) and is
// used by unit tests and Postgres-free local runs.
type MemoryStore struct {
	mu sync.Mutex

	runs       map[string]*models.Run
	artifacts  map[string][]models.Artifact
	tasks      map[string][]models.Task
	workers    map[string][]models.Worker
	executions map[string]*models.TaskExecution // by execution ID
	agentState map[string]*models.AgentMemory   // by execution ID
	steps      map[string][]models.StepTrace    // by execution ID
	citations  map[int64][]models.Citation      // by step ID
	checks     map[string][]models.DeterministicCheck
	attempts   map[string]models.Attempt
	evals      map[string][]models.TaskEvaluation // by run ID
	events     map[string][]models.RunEvent       // by run ID
	runErrors  map[string][]models.RunError
	sessions   map[string]*models.SkillSession

	nextEventID int64
	nextErrorID int64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs:       make(map[string]*models.Run),
		artifacts:  make(map[string][]models.Artifact),
		tasks:      make(map[string][]models.Task),
		workers:    make(map[string][]models.Worker),
		executions: make(map[string]*models.TaskExecution),
		agentState: make(map[string]*models.AgentMemory),
		steps:      make(map[string][]models.StepTrace),
		citations:  make(map[int64][]models.Citation),
		checks:     make(map[string][]models.DeterministicCheck),
		attempts:   make(map[string]models.Attempt),
		evals:      make(map[string][]models.TaskEvaluation),
		events:     make(map[string][]models.RunEvent),
		runErrors:  make(map[string][]models.RunError),
		sessions:   make(map[string]*models.SkillSession),
	}
}

var _ Store = (*MemoryStore)(nil)

// CreateRun implements Store.
func (s *MemoryStore) CreateRun(_ context.Context, run *models.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[run.ID]; ok {
		return ErrAlreadyExists
	}
	copied := *run
	s.runs[run.ID] = &copied
	return nil
}

// GetRun implements Store.
func (s *MemoryStore) GetRun(_ context.Context, runID string) (*models.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[runID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *run
	return &copied, nil
}

// ListRuns implements Store.
func (s *MemoryStore) ListRuns(_ context.Context, limit, offset int) ([]*models.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]*models.Run, 0, len(s.runs))
	for _, r := range s.runs {
		copied := *r
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].StartedAt.After(all[j].StartedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// UpdateRunStatus implements Store. Writes to an already-terminal run are
// silently dropped; the finalizer is the only terminal writer.
func (s *MemoryStore) UpdateRunStatus(_ context.Context, runID string, status models.RunStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[runID]
	if !ok {
		return ErrNotFound
	}
	if run.Status.IsTerminal() {
		return nil
	}
	run.Status = status
	return nil
}

// FinalizeRun implements Store.
func (s *MemoryStore) FinalizeRun(_ context.Context, runID string, status models.RunStatus, totals *models.Totals, errorMessage string) error {
	if !status.IsTerminal() {
		return fmt.Errorf("finalize with non-terminal status %q", status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[runID]
	if !ok {
		return ErrNotFound
	}
	run.Status = status
	now := time.Now()
	run.EndedAt = &now
	if totals != nil {
		copied := *totals
		run.Totals = &copied
	}
	if errorMessage != "" {
		run.ErrorMessage = errorMessage
	}
	for i := range s.workers[runID] {
		w := &s.workers[runID][i]
		if w.Status != models.WorkerStatusDone && w.Status != models.WorkerStatusError {
			w.Status = models.WorkerStatusDone
		}
	}
	return nil
}

// IncrementRunCost implements Store.
func (s *MemoryStore) IncrementRunCost(_ context.Context, runID string, delta float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[runID]
	if !ok {
		return 0, ErrNotFound
	}
	run.CostEstimate += delta
	return run.CostEstimate, nil
}

// IsRunCanceled implements Store.
func (s *MemoryStore) IsRunCanceled(_ context.Context, runID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[runID]
	if !ok {
		return false, ErrNotFound
	}
	return run.Status == models.RunStatusCanceled, nil
}

// PersistIngestionArtifacts implements Store.
func (s *MemoryStore) PersistIngestionArtifacts(_ context.Context, runID string, artifacts []models.Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artifacts[runID] = append([]models.Artifact(nil), artifacts...)
	return nil
}

// GetRunArtifacts implements Store.
func (s *MemoryStore) GetRunArtifacts(_ context.Context, runID string) ([]models.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Artifact(nil), s.artifacts[runID]...), nil
}

// PersistTasks implements Store.
func (s *MemoryStore) PersistTasks(_ context.Context, runID string, tasks []models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[runID] = append([]models.Task(nil), tasks...)
	return nil
}

// GetRunTasks implements Store.
func (s *MemoryStore) GetRunTasks(_ context.Context, runID string) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Task(nil), s.tasks[runID]...), nil
}

// UpdateTaskStatus implements Store.
func (s *MemoryStore) UpdateTaskStatus(_ context.Context, runID, taskID string, status models.TaskStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks[runID] {
		if s.tasks[runID][i].TaskID == taskID {
			s.tasks[runID][i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// EnsureRunWorkers implements Store: a second call with the same run ID
// returns the already-provisioned workers.
func (s *MemoryStore) EnsureRunWorkers(_ context.Context, runID string, workers []models.Worker) ([]models.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.workers[runID]; ok && len(existing) > 0 {
		return append([]models.Worker(nil), existing...), nil
	}
	s.workers[runID] = append([]models.Worker(nil), workers...)
	return append([]models.Worker(nil), workers...), nil
}

// GetRunWorkers implements Store.
func (s *MemoryStore) GetRunWorkers(_ context.Context, runID string) ([]models.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Worker(nil), s.workers[runID]...), nil
}

// UpdateWorkerStatus implements Store.
func (s *MemoryStore) UpdateWorkerStatus(_ context.Context, runID, workerID string, status models.WorkerStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workers[runID] {
		if s.workers[runID][i].ID == workerID {
			s.workers[runID][i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// CreateTaskExecution implements Store.
func (s *MemoryStore) CreateTaskExecution(_ context.Context, exec *models.TaskExecution) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.rejectTerminalLocked(exec.RunID); err != nil {
		return err
	}
	if _, ok := s.executions[exec.ID]; ok {
		return ErrAlreadyExists
	}
	copied := *exec
	s.executions[exec.ID] = &copied
	return nil
}

// UpdateTaskExecutionProgress implements Store; counters are additive.
func (s *MemoryStore) UpdateTaskExecutionProgress(_ context.Context, executionID string, delta models.ExecutionProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exec, ok := s.executions[executionID]
	if !ok {
		return ErrNotFound
	}
	if err := s.rejectTerminalLocked(exec.RunID); err != nil {
		return err
	}
	exec.StepCount += delta.StepCount
	exec.TokensIn += delta.TokensIn
	exec.TokensOut += delta.TokensOut
	exec.CostEstimate += delta.CostEstimate
	return nil
}

// FinalizeTaskExecution implements Store. This is a settlement write: it is
// allowed on a terminal run so a canceled run's in-flight executions can be
// closed out as skipped/cancelled instead of stranding half-applied.
func (s *MemoryStore) FinalizeTaskExecution(_ context.Context, executionID string, status models.TaskStatus, stopReason models.StopReason) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exec, ok := s.executions[executionID]
	if !ok {
		return ErrNotFound
	}
	exec.Status = status
	exec.StopReason = stopReason
	now := time.Now()
	exec.CompletedAt = &now
	return nil
}

// GetTaskExecutions implements Store.
func (s *MemoryStore) GetTaskExecutions(_ context.Context, runID string) ([]models.TaskExecution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.TaskExecution
	for _, exec := range s.executions {
		if exec.RunID == runID {
			out = append(out, *exec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpsertTaskAgentState implements Store; last writer wins per execution.
func (s *MemoryStore) UpsertTaskAgentState(_ context.Context, executionID string, memory models.AgentMemory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exec, ok := s.executions[executionID]
	if !ok {
		return ErrNotFound
	}
	if err := s.rejectTerminalLocked(exec.RunID); err != nil {
		return err
	}
	copied := memory
	s.agentState[executionID] = &copied
	return nil
}

// GetTaskAgentState implements Store.
func (s *MemoryStore) GetTaskAgentState(_ context.Context, executionID string) (*models.AgentMemory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.agentState[executionID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *state
	return &copied, nil
}

// PersistTaskStep implements Store.
func (s *MemoryStore) PersistTaskStep(_ context.Context, step *models.StepTrace) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.rejectTerminalLocked(step.RunID); err != nil {
		return 0, err
	}
	s.nextEventID++ // step IDs share the global counter; only ordering matters
	step.ID = s.nextEventID
	step.CreatedAt = time.Now()
	s.steps[step.TaskExecutionID] = append(s.steps[step.TaskExecutionID], *step)
	return step.ID, nil
}

// PersistTaskStepCitations implements Store.
func (s *MemoryStore) PersistTaskStepCitations(_ context.Context, stepID int64, citations []models.Citation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.citations[stepID] = append(s.citations[stepID], citations...)
	return nil
}

// GetTaskSteps implements Store; rows are ordered by insertion id.
func (s *MemoryStore) GetTaskSteps(_ context.Context, executionID string) ([]models.StepTrace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.StepTrace(nil), s.steps[executionID]...), nil
}

// PersistDeterministicChecks implements Store.
func (s *MemoryStore) PersistDeterministicChecks(_ context.Context, checks []models.DeterministicCheck) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range checks {
		s.checks[c.TaskExecutionID] = append(s.checks[c.TaskExecutionID], c)
	}
	return nil
}

// PersistTaskAttempt implements Store.
func (s *MemoryStore) PersistTaskAttempt(_ context.Context, executionID string, attempt models.Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exec, ok := s.executions[executionID]
	if !ok {
		return ErrNotFound
	}
	if err := s.rejectTerminalLocked(exec.RunID); err != nil {
		return err
	}
	s.attempts[executionID] = attempt
	return nil
}

// PersistTaskEvaluation implements Store. At most one evaluation exists per
// (runId, taskId, phase); a duplicate returns ErrAlreadyExists like the ent
// store's unique index does.
func (s *MemoryStore) PersistTaskEvaluation(_ context.Context, eval *models.TaskEvaluation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.rejectTerminalLocked(eval.RunID); err != nil {
		return err
	}
	for _, existing := range s.evals[eval.RunID] {
		if existing.TaskID == eval.TaskID && existing.Phase == eval.Phase {
			return ErrAlreadyExists
		}
	}
	s.evals[eval.RunID] = append(s.evals[eval.RunID], *eval)
	return nil
}

// ListTaskEvaluations implements Store.
func (s *MemoryStore) ListTaskEvaluations(_ context.Context, runID string, phase models.Phase) ([]models.TaskEvaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.TaskEvaluation
	for _, e := range s.evals[runID] {
		if phase == "" || e.Phase == phase {
			out = append(out, e)
		}
	}
	return out, nil
}

// AppendRunEvent implements Store. Under the single store mutex, per-run seq
// is trivially dense; the ent store reproduces this with an optimistic
// insert-retry loop against the (runId, seq) unique index.
func (s *MemoryStore) AppendRunEvent(_ context.Context, runID, eventType string, payload models.EventPayload) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextEventID++
	event := models.RunEvent{
		ID:        s.nextEventID,
		RunID:     runID,
		Seq:       len(s.events[runID]) + 1,
		EventType: eventType,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
	s.events[runID] = append(s.events[runID], event)
	return event.ID, nil
}

// GetRunEventsAfter implements Store.
func (s *MemoryStore) GetRunEventsAfter(_ context.Context, runID string, afterID int64, limit int) ([]models.RunEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.RunEvent
	for _, e := range s.events[runID] {
		if e.ID > afterID {
			out = append(out, e)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

// PersistRunError implements Store.
func (s *MemoryStore) PersistRunError(_ context.Context, runID, code, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextErrorID++
	s.runErrors[runID] = append(s.runErrors[runID], models.RunError{
		ID:        fmt.Sprintf("err-%d", s.nextErrorID),
		RunID:     runID,
		Code:      code,
		Message:   message,
		CreatedAt: time.Now(),
	})
	return nil
}

// ListRunErrors implements Store.
func (s *MemoryStore) ListRunErrors(_ context.Context, runID string) ([]models.RunError, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.RunError(nil), s.runErrors[runID]...), nil
}

// UpsertSkillSession implements Store.
func (s *MemoryStore) UpsertSkillSession(_ context.Context, session *models.SkillSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	copied.UpdatedAt = time.Now()
	s.sessions[session.RunID] = &copied
	return nil
}

// GetSkillSession implements Store.
func (s *MemoryStore) GetSkillSession(_ context.Context, runID string) (*models.SkillSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[runID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *session
	return &copied, nil
}

// rejectTerminalLocked enforces the terminal-run write barrier.
func (s *MemoryStore) rejectTerminalLocked(runID string) error {
	run, ok := s.runs[runID]
	if !ok {
		return ErrNotFound
	}
	if run.Status.IsTerminal() {
		return ErrRunTerminal
	}
	return nil
}
