package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/dhiyaancnirmal/mintaborate/pkg/evaluate"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/retrieval"
	"github.com/dhiyaancnirmal/mintaborate/pkg/store"
)

// taskQueue hands each task to exactly one worker.
type taskQueue struct {
	mu    sync.Mutex
	tasks []models.Task
}

func newTaskQueue(tasks []models.Task) *taskQueue {
	return &taskQueue{tasks: append([]models.Task(nil), tasks...)}
}

// pop removes and returns the next task; ok is false when drained.
func (q *taskQueue) pop() (models.Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.tasks) == 0 {
		return models.Task{}, false
	}
	task := q.tasks[0]
	q.tasks = q.tasks[1:]
	return task, true
}

// poolParams carries one phase's pool run.
type poolParams struct {
	run      *models.Run
	phase    models.Phase
	tasks    []models.Task
	workers  []models.Worker
	index    *retrieval.Index
	judge    *evaluate.Judge
	judgeSem *semaphore.Weighted
}

// runPool drives min(executionConcurrency, len(workers)) worker activities
// over a shared FIFO task queue and blocks until the queue drains or every
// activity has observed cancellation. Judge calls go through the shared
// judge semaphore so evaluation never consumes execution concurrency.
func (o *Orchestrator) runPool(ctx context.Context, p poolParams) error {
	queue := newTaskQueue(p.tasks)
	concurrency := min(p.run.Config.ExecutionConcurrency, len(p.workers))
	if concurrency < 1 {
		return fmt.Errorf("no workers available for phase %s", p.phase)
	}

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		worker := p.workers[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			o.workerActivity(ctx, p, worker, queue)
		}()
	}
	wg.Wait()
	return nil
}

// workerActivity is one worker's consume loop.
func (o *Orchestrator) workerActivity(ctx context.Context, p poolParams, worker models.Worker, queue *taskQueue) {
	logger := slog.With("run_id", p.run.ID, "phase", p.phase, "worker", worker.WorkerLabel)
	runID := p.run.ID

	o.setWorkerStatus(ctx, runID, worker, models.WorkerStatusIdle)
	o.publishWorkerEvent(ctx, runID, p.phase, models.EventWorkerStarted, worker)
	defer func() {
		o.setWorkerStatus(ctx, runID, worker, models.WorkerStatusDone)
		o.publishWorkerEvent(ctx, runID, p.phase, models.EventWorkerStopped, worker)
	}()

	for {
		task, ok := queue.pop()
		if !ok {
			return
		}
		canceled, err := o.store.IsRunCanceled(ctx, runID)
		if err != nil {
			logger.Error("Failed to check cancellation, stopping worker", "error", err)
			return
		}
		if canceled {
			logger.Info("Cancellation observed, worker exiting")
			return
		}

		o.setWorkerStatus(ctx, runID, worker, models.WorkerStatusRunning)
		o.metrics.ActiveWorkers.Inc()
		err = o.executeTask(ctx, p, worker, task)
		o.metrics.ActiveWorkers.Dec()
		o.setWorkerStatus(ctx, runID, worker, models.WorkerStatusIdle)

		if err != nil {
			o.recordTaskError(ctx, p, task, err)
		}
	}
}

// executeTask runs the agent loop for one task and evaluates the attempt.
// Returned errors are task-level; the caller records them without failing
// the run.
func (o *Orchestrator) executeTask(ctx context.Context, p poolParams, worker models.Worker, task models.Task) error {
	runID := p.run.ID
	execution := &models.TaskExecution{
		ID:       uuid.NewString(),
		RunID:    runID,
		TaskID:   task.TaskID,
		WorkerID: worker.ID,
		Phase:    p.phase,
		Status:   models.TaskStatusRunning,
	}
	if err := o.store.CreateTaskExecution(ctx, execution); err != nil {
		if errors.Is(err, store.ErrRunTerminal) {
			return nil
		}
		return fmt.Errorf("failed to create execution: %w", err)
	}
	if err := o.store.UpdateTaskStatus(ctx, runID, task.TaskID, models.TaskStatusRunning); err != nil && !errors.Is(err, store.ErrRunTerminal) {
		return err
	}
	o.publishTaskEvent(ctx, p, models.EventTaskExecutionStarted, task, execution.ID, nil)

	// A run already at its cost cap skips the task outright, with no
	// evaluation row.
	run, err := o.store.GetRun(ctx, runID)
	if err != nil {
		return err
	}
	if run.CostEstimate >= run.Config.HardCostCapUSD {
		return o.skipExecution(ctx, p, task, execution, models.StopReasonCostLimit)
	}

	result, err := o.loop.Run(ctx, p.run.Config, task, worker, execution, p.index)
	if err != nil {
		return err
	}

	if !result.Evaluate {
		return o.skipExecution(ctx, p, task, execution, result.StopReason)
	}

	// Guard, then judge under the shared judge semaphore.
	guard := evaluate.RunGuard(task, result.Attempt, execution.ID, p.index)
	if err := o.store.PersistDeterministicChecks(ctx, guard.Checks); err != nil && !errors.Is(err, store.ErrRunTerminal) {
		return fmt.Errorf("failed to persist checks: %w", err)
	}

	if err := p.judgeSem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("failed to acquire judge slot: %w", err)
	}
	eval, judgeUsage, judgeErr := p.judge.Evaluate(ctx, task, result.Attempt, p.index.TopK(task.Name+" "+task.Description, 12), guard)
	p.judgeSem.Release(1)
	if judgeErr != nil {
		return fmt.Errorf("judge failed: %w", judgeErr)
	}

	// Judge spend lands on the execution first, then on the run total, so
	// the run cost stays the sum of its executions' costs.
	judgeCost := o.pricer.Cost(p.run.Config.JudgeModel.Model, judgeUsage.InputTokens, judgeUsage.OutputTokens)
	err = o.store.UpdateTaskExecutionProgress(ctx, execution.ID, models.ExecutionProgress{
		TokensIn:     judgeUsage.InputTokens,
		TokensOut:    judgeUsage.OutputTokens,
		CostEstimate: judgeCost,
	})
	switch {
	case errors.Is(err, store.ErrRunTerminal):
		// Run canceled under us; the charge is dropped on both sides.
	case err != nil:
		return fmt.Errorf("failed to record judge usage: %w", err)
	default:
		if _, err := o.store.IncrementRunCost(ctx, runID, judgeCost); err != nil && !errors.Is(err, store.ErrRunTerminal) {
			return err
		}
	}

	eval.Phase = p.phase
	return o.finishEvaluated(ctx, p, task, execution, result.StopReason, eval)
}

// finishEvaluated persists the evaluation and settles task and execution
// statuses from the pass verdict.
func (o *Orchestrator) finishEvaluated(ctx context.Context, p poolParams, task models.Task, execution *models.TaskExecution, stopReason models.StopReason, eval *models.TaskEvaluation) error {
	if err := o.store.PersistTaskEvaluation(ctx, eval); err != nil &&
		!errors.Is(err, store.ErrAlreadyExists) && !errors.Is(err, store.ErrRunTerminal) {
		return fmt.Errorf("failed to persist evaluation: %w", err)
	}

	status := models.TaskStatusFailed
	result := "failed"
	if eval.Pass {
		status = models.TaskStatusPassed
		result = "passed"
	}
	o.metrics.TasksEvaluated.WithLabelValues(string(p.phase), result).Inc()

	if err := o.store.FinalizeTaskExecution(ctx, execution.ID, status, stopReason); err != nil && !errors.Is(err, store.ErrRunTerminal) {
		return err
	}
	if err := o.store.UpdateTaskStatus(ctx, p.run.ID, task.TaskID, status); err != nil && !errors.Is(err, store.ErrRunTerminal) {
		return err
	}

	o.publishTaskEvent(ctx, p, models.EventTaskExecutionCompleted, task, execution.ID, map[string]any{
		"pass":       eval.Pass,
		"stopReason": stopReason,
	})
	o.publishTaskEvent(ctx, p, models.EventTaskEvaluationCompleted, task, execution.ID, map[string]any{
		"pass":    eval.Pass,
		"average": eval.CriterionScores.Average,
	})
	return nil
}

// skipExecution settles a task that must not be evaluated (cost cap or
// cancellation).
func (o *Orchestrator) skipExecution(ctx context.Context, p poolParams, task models.Task, execution *models.TaskExecution, reason models.StopReason) error {
	if err := o.store.FinalizeTaskExecution(ctx, execution.ID, models.TaskStatusSkipped, reason); err != nil && !errors.Is(err, store.ErrRunTerminal) {
		return err
	}
	if err := o.store.UpdateTaskStatus(ctx, p.run.ID, task.TaskID, models.TaskStatusSkipped); err != nil && !errors.Is(err, store.ErrRunTerminal) {
		return err
	}
	o.publishTaskEvent(ctx, p, models.EventTaskExecutionCompleted, task, execution.ID, map[string]any{
		"skipped":    true,
		"stopReason": reason,
	})
	return nil
}

// recordTaskError applies the task-level error policy: fallback evaluation,
// TASK_EXECUTION_ERROR run error, task.error event, and an error-status
// execution. The run continues.
func (o *Orchestrator) recordTaskError(ctx context.Context, p poolParams, task models.Task, taskErr error) {
	runID := p.run.ID
	slog.Error("Task execution failed", "run_id", runID, "task_id", task.TaskID, "phase", p.phase, "error", taskErr)

	fallback := evaluate.FallbackEvaluation(runID, task.TaskID, p.phase, p.run.Config.JudgeModel.Model)
	if err := o.store.PersistTaskEvaluation(ctx, fallback); err != nil &&
		!errors.Is(err, store.ErrAlreadyExists) && !errors.Is(err, store.ErrRunTerminal) {
		slog.Error("Failed to persist fallback evaluation", "run_id", runID, "task_id", task.TaskID, "error", err)
	}
	if err := o.store.PersistRunError(ctx, runID, models.RunErrorTaskExecution, taskErr.Error()); err != nil {
		slog.Error("Failed to persist task run error", "run_id", runID, "error", err)
	}
	if err := o.store.UpdateTaskStatus(ctx, runID, task.TaskID, models.TaskStatusError); err != nil && !errors.Is(err, store.ErrRunTerminal) {
		slog.Error("Failed to mark task errored", "run_id", runID, "task_id", task.TaskID, "error", err)
	}
	o.publishTaskEvent(ctx, p, models.EventTaskError, task, "", map[string]any{"error": taskErr.Error()})
	o.metrics.TasksEvaluated.WithLabelValues(string(p.phase), "error").Inc()
}

func (o *Orchestrator) setWorkerStatus(ctx context.Context, runID string, worker models.Worker, status models.WorkerStatus) {
	if err := o.store.UpdateWorkerStatus(ctx, runID, worker.ID, status); err != nil {
		slog.Warn("Failed to update worker status", "run_id", runID, "worker", worker.WorkerLabel, "status", status, "error", err)
	}
}

func (o *Orchestrator) publishWorkerEvent(ctx context.Context, runID string, phase models.Phase, eventType string, worker models.Worker) {
	data, _ := json.Marshal(map[string]string{"workerLabel": worker.WorkerLabel, "model": worker.ModelName})
	if _, err := o.publisher.Publish(ctx, runID, eventType, models.EventPayload{
		Phase:   phase,
		Message: worker.WorkerLabel,
		Data:    data,
	}); err != nil {
		slog.Warn("Failed to publish worker event", "run_id", runID, "type", eventType, "error", err)
	}
}

func (o *Orchestrator) publishTaskEvent(ctx context.Context, p poolParams, eventType string, task models.Task, executionID string, extra map[string]any) {
	payload := map[string]any{"taskId": task.TaskID, "taskName": task.Name}
	if executionID != "" {
		payload["taskExecutionId"] = executionID
	}
	for k, v := range extra {
		payload[k] = v
	}
	data, _ := json.Marshal(payload)
	if _, err := o.publisher.Publish(ctx, p.run.ID, eventType, models.EventPayload{
		Phase:   p.phase,
		Message: task.Name,
		Data:    data,
	}); err != nil {
		slog.Warn("Failed to publish task event", "run_id", p.run.ID, "type", eventType, "error", err)
	}
}
