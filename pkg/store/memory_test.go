package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

func newTestRun(id string) *models.Run {
	return &models.Run{
		ID:        id,
		DocsURL:   "https://docs.example.com",
		Status:    models.RunStatusQueued,
		StartedAt: time.Now(),
	}
}

func TestMemoryStore_RunLifecycle(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.CreateRun(ctx, newTestRun("run-1")))
	assert.ErrorIs(t, s.CreateRun(ctx, newTestRun("run-1")), ErrAlreadyExists)

	_, err := s.GetRun(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.UpdateRunStatus(ctx, "run-1", models.RunStatusRunning))
	run, err := s.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusRunning, run.Status)

	totals := &models.Totals{TotalTasks: 3, PassedTasks: 2, FailedTasks: 1, PassRate: 0.67}
	require.NoError(t, s.FinalizeRun(ctx, "run-1", models.RunStatusCompleted, totals, ""))

	// Terminal statuses are sticky against plain status writes.
	require.NoError(t, s.UpdateRunStatus(ctx, "run-1", models.RunStatusRunning))
	run, err = s.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, run.Status)
	assert.NotNil(t, run.EndedAt)
	require.NotNil(t, run.Totals)
	assert.Equal(t, 3, run.Totals.TotalTasks)
}

func TestMemoryStore_FinalizeRejectsNonTerminal(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.CreateRun(ctx, newTestRun("run-1")))

	err := s.FinalizeRun(ctx, "run-1", models.RunStatusRunning, nil, "")
	assert.Error(t, err)
}

func TestMemoryStore_IncrementRunCost(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.CreateRun(ctx, newTestRun("run-1")))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.IncrementRunCost(ctx, "run-1", 0.05)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	run, err := s.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, run.CostEstimate, 1e-9)
}

func TestMemoryStore_TerminalRunRejectsExecutionWrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.CreateRun(ctx, newTestRun("run-1")))

	exec := &models.TaskExecution{
		ID:        "exec-1",
		RunID:     "run-1",
		TaskID:    "task-1",
		WorkerID:  "worker-1",
		Phase:     models.PhaseBaseline,
		Status:    models.TaskStatusRunning,
		StartedAt: time.Now(),
	}
	require.NoError(t, s.CreateTaskExecution(ctx, exec))

	require.NoError(t, s.FinalizeRun(ctx, "run-1", models.RunStatusCanceled, nil, ""))

	err := s.UpdateTaskExecutionProgress(ctx, "exec-1", models.ExecutionProgress{StepCount: 1})
	assert.ErrorIs(t, err, ErrRunTerminal)

	_, err = s.PersistTaskStep(ctx, &models.StepTrace{
		TaskExecutionID: "exec-1",
		RunID:           "run-1",
		StepIndex:       1,
		Phase:           models.StepPhaseRetrieve,
	})
	assert.ErrorIs(t, err, ErrRunTerminal)

	err = s.CreateTaskExecution(ctx, &models.TaskExecution{ID: "exec-2", RunID: "run-1"})
	assert.ErrorIs(t, err, ErrRunTerminal)

	err = s.PersistTaskAttempt(ctx, "exec-1", models.Attempt{Answer: "late"})
	assert.ErrorIs(t, err, ErrRunTerminal)

	err = s.UpsertTaskAgentState(ctx, "exec-1", models.AgentMemory{CurrentStep: 1})
	assert.ErrorIs(t, err, ErrRunTerminal)

	err = s.PersistTaskEvaluation(ctx, &models.TaskEvaluation{
		RunID: "run-1", TaskID: "task-1", Phase: models.PhaseBaseline,
	})
	assert.ErrorIs(t, err, ErrRunTerminal)
}

func TestMemoryStore_TerminalRunAllowsSettlementWrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.CreateRun(ctx, newTestRun("run-1")))
	require.NoError(t, s.PersistTasks(ctx, "run-1", []models.Task{
		{TaskID: "task-1", RunID: "run-1", Status: models.TaskStatusRunning},
	}))
	require.NoError(t, s.CreateTaskExecution(ctx, &models.TaskExecution{
		ID: "exec-1", RunID: "run-1", TaskID: "task-1", WorkerID: "w-1",
		Phase: models.PhaseBaseline, Status: models.TaskStatusRunning,
	}))

	require.NoError(t, s.FinalizeRun(ctx, "run-1", models.RunStatusCanceled, nil, ""))

	// In-flight work settles after cancellation instead of stranding as
	// running with no stop reason.
	require.NoError(t, s.FinalizeTaskExecution(ctx, "exec-1", models.TaskStatusSkipped, models.StopReasonCancelled))
	require.NoError(t, s.UpdateTaskStatus(ctx, "run-1", "task-1", models.TaskStatusSkipped))

	execs, err := s.GetTaskExecutions(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, execs, 1)
	assert.Equal(t, models.TaskStatusSkipped, execs[0].Status)
	assert.Equal(t, models.StopReasonCancelled, execs[0].StopReason)
	assert.NotNil(t, execs[0].CompletedAt)

	tasks, err := s.GetRunTasks(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusSkipped, tasks[0].Status)
}

func TestMemoryStore_AppendRunEvent_DenseSeqUnderConcurrency(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.CreateRun(ctx, newTestRun("run-1")))
	require.NoError(t, s.CreateRun(ctx, newTestRun("run-2")))

	const goroutines = 50
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			runID := "run-1"
			if i%3 == 0 {
				runID = "run-2"
			}
			_, err := s.AppendRunEvent(ctx, runID, models.EventTaskStepCreated, models.EventPayload{
				RunID:   runID,
				Message: fmt.Sprintf("step %d", i),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for _, runID := range []string{"run-1", "run-2"} {
		events, err := s.GetRunEventsAfter(ctx, runID, 0, 0)
		require.NoError(t, err)
		require.NotEmpty(t, events)

		// Per-run seq must be dense starting at 1, ids strictly increasing.
		for i, e := range events {
			assert.Equal(t, i+1, e.Seq, "run %s event %d", runID, i)
			if i > 0 {
				assert.Greater(t, e.ID, events[i-1].ID)
			}
		}
	}
}

func TestMemoryStore_GetRunEventsAfter_Cursor(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.CreateRun(ctx, newTestRun("run-1")))

	var ids []int64
	for i := 0; i < 5; i++ {
		id, err := s.AppendRunEvent(ctx, "run-1", models.EventRunRunning, models.EventPayload{RunID: "run-1"})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	events, err := s.GetRunEventsAfter(ctx, "run-1", ids[2], 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, ids[3], events[0].ID)
	assert.Equal(t, ids[4], events[1].ID)

	limited, err := s.GetRunEventsAfter(ctx, "run-1", 0, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestMemoryStore_EnsureRunWorkersIdempotent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.CreateRun(ctx, newTestRun("run-1")))

	workers := []models.Worker{
		{ID: "w-1", RunID: "run-1", WorkerLabel: "worker-1", ModelProvider: "openai", ModelName: "gpt-4o"},
		{ID: "w-2", RunID: "run-1", WorkerLabel: "worker-2", ModelProvider: "openai", ModelName: "gpt-4o"},
	}
	first, err := s.EnsureRunWorkers(ctx, "run-1", workers)
	require.NoError(t, err)
	require.Len(t, first, 2)

	// A second provisioning call returns the original rows untouched.
	second, err := s.EnsureRunWorkers(ctx, "run-1", []models.Worker{
		{ID: "w-9", RunID: "run-1", WorkerLabel: "worker-9"},
	})
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "w-1", second[0].ID)
}

func TestMemoryStore_AgentStateAndSteps(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.CreateRun(ctx, newTestRun("run-1")))
	require.NoError(t, s.CreateTaskExecution(ctx, &models.TaskExecution{
		ID: "exec-1", RunID: "run-1", TaskID: "task-1", WorkerID: "w-1",
		Phase: models.PhaseBaseline, Status: models.TaskStatusRunning,
	}))

	_, err := s.GetTaskAgentState(ctx, "exec-1")
	assert.ErrorIs(t, err, ErrNotFound)

	memory := models.AgentMemory{
		CurrentStep: 2,
		Goal:        "install the SDK",
		Facts:       []string{"npm install works"},
	}
	require.NoError(t, s.UpsertTaskAgentState(ctx, "exec-1", memory))

	got, err := s.GetTaskAgentState(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentStep)

	stepID, err := s.PersistTaskStep(ctx, &models.StepTrace{
		TaskExecutionID: "exec-1",
		RunID:           "run-1",
		StepIndex:       1,
		Phase:           models.StepPhaseAct,
		Output:          "answer draft",
	})
	require.NoError(t, err)
	assert.Greater(t, stepID, int64(0))

	require.NoError(t, s.PersistTaskStepCitations(ctx, stepID, []models.Citation{
		{Source: "https://docs.example.com/install", SnippetHash: "abc123", Excerpt: "npm install"},
	}))

	steps, err := s.GetTaskSteps(ctx, "exec-1")
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, models.StepPhaseAct, steps[0].Phase)
}

func TestMemoryStore_Evaluations(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.CreateRun(ctx, newTestRun("run-1")))

	fc := models.FailureMissingContent
	require.NoError(t, s.PersistTaskEvaluation(ctx, &models.TaskEvaluation{
		RunID: "run-1", TaskID: "task-1", Phase: models.PhaseBaseline,
		Pass: false, FailureClass: &fc,
	}))
	require.NoError(t, s.PersistTaskEvaluation(ctx, &models.TaskEvaluation{
		RunID: "run-1", TaskID: "task-1", Phase: models.PhaseOptimized,
		Pass: true,
	}))

	baseline, err := s.ListTaskEvaluations(ctx, "run-1", models.PhaseBaseline)
	require.NoError(t, err)
	require.Len(t, baseline, 1)
	assert.False(t, baseline[0].Pass)

	all, err := s.ListTaskEvaluations(ctx, "run-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// One evaluation per (run, task, phase).
	err = s.PersistTaskEvaluation(ctx, &models.TaskEvaluation{
		RunID: "run-1", TaskID: "task-1", Phase: models.PhaseBaseline,
		Pass: true,
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	all, err = s.ListTaskEvaluations(ctx, "run-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
