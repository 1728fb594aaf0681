package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dhiyaancnirmal/mintaborate/pkg/agent"
	"github.com/dhiyaancnirmal/mintaborate/pkg/config"
	"github.com/dhiyaancnirmal/mintaborate/pkg/costing"
	"github.com/dhiyaancnirmal/mintaborate/pkg/events"
	"github.com/dhiyaancnirmal/mintaborate/pkg/ingest"
	"github.com/dhiyaancnirmal/mintaborate/pkg/llm"
	"github.com/dhiyaancnirmal/mintaborate/pkg/metrics"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/store"
	"github.com/dhiyaancnirmal/mintaborate/pkg/tasks"
)

// Orchestrator creates runs and drives each one through ingestion, task
// synthesis, worker provisioning, the phase executor, and finalization.
type Orchestrator struct {
	store     store.Store
	publisher *events.Publisher
	client    llm.Client
	ingestor  ingest.Ingestor
	pricer    costing.Pricer
	metrics   *metrics.Metrics
	sm        *StateMachine
	loop      *agent.Loop

	mu       sync.Mutex
	inFlight map[string]struct{}
	wg       sync.WaitGroup
}

// New wires an Orchestrator. A nil metrics registry is replaced with a
// private one by metrics.New, so callers may pass metrics.New(nil) in tests.
func New(st store.Store, publisher *events.Publisher, client llm.Client, ingestor ingest.Ingestor, pricer costing.Pricer, m *metrics.Metrics) *Orchestrator {
	if m == nil {
		m = metrics.New(nil)
	}
	return &Orchestrator{
		store:     st,
		publisher: publisher,
		client:    client,
		ingestor:  ingestor,
		pricer:    pricer,
		metrics:   m,
		sm:        NewStateMachine(st, publisher),
		loop:      agent.NewLoop(st, client, publisher, pricer),
		inFlight:  make(map[string]struct{}),
	}
}

// CreateRun normalizes the request, persists a queued run, and emits
// run.queued. The run does not execute until StartRunInBackground.
func (o *Orchestrator) CreateRun(ctx context.Context, req config.CreateRunRequest) (*models.Run, error) {
	cfg, err := config.NormalizeRunConfig(req)
	if err != nil {
		return nil, err
	}
	run := &models.Run{
		ID:        uuid.NewString(),
		DocsURL:   req.DocsURL,
		Status:    models.RunStatusQueued,
		StartedAt: time.Now().UTC(),
		Config:    cfg,
	}
	if err := o.store.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	if _, err := o.publisher.PublishStatus(ctx, run.ID, models.RunStatusQueued, "run queued"); err != nil {
		return nil, err
	}
	slog.Info("Run created", "run_id", run.ID, "docs_url", run.DocsURL, "max_tasks", cfg.MaxTasks)
	return run, nil
}

// StartRunInBackground launches the driver goroutine for runID. It is
// idempotent per process: a run already being driven is not started twice.
func (o *Orchestrator) StartRunInBackground(runID string) bool {
	o.mu.Lock()
	if _, ok := o.inFlight[runID]; ok {
		o.mu.Unlock()
		return false
	}
	o.inFlight[runID] = struct{}{}
	o.mu.Unlock()

	o.metrics.RunsStarted.Inc()
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		defer func() {
			o.mu.Lock()
			delete(o.inFlight, runID)
			o.mu.Unlock()
		}()
		o.drive(context.Background(), runID)
	}()
	return true
}

// CancelRun requests cancellation. In-flight work stops at its next write
// boundary; the driver attaches partial totals afterwards.
func (o *Orchestrator) CancelRun(ctx context.Context, runID string) error {
	return o.sm.Cancel(ctx, runID)
}

// Wait blocks until every background driver has returned. Used on shutdown.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

// drive runs one run end to end and routes any fatal error through the
// error sink.
func (o *Orchestrator) drive(ctx context.Context, runID string) {
	if err := o.execute(ctx, runID); err != nil {
		slog.Error("Run failed", "run_id", runID, "error", err)
		if perr := o.store.PersistRunError(ctx, runID, models.RunErrorFatal, err.Error()); perr != nil {
			slog.Error("Failed to persist fatal run error", "run_id", runID, "error", perr)
		}
		o.metrics.RunsFinalized.WithLabelValues(string(models.RunStatusFailed)).Inc()
		if ferr := o.sm.Finalize(ctx, runID, models.RunStatusFailed, nil, err.Error()); ferr != nil {
			slog.Error("Failed to finalize failed run", "run_id", runID, "error", ferr)
		}
	}
}

func (o *Orchestrator) execute(ctx context.Context, runID string) error {
	run, err := o.store.GetRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}
	if run.Status != models.RunStatusQueued {
		slog.Warn("Run is not queued, refusing to drive", "run_id", runID, "status", run.Status)
		return nil
	}

	// Ingestion.
	if err := o.sm.Advance(ctx, runID, models.RunStatusIngesting); err != nil {
		return err
	}
	ingestResult, err := o.ingestor.Ingest(ctx, run.DocsURL, ingest.Options{})
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}
	if err := o.store.PersistIngestionArtifacts(ctx, runID, ingestResult.Artifacts); err != nil {
		return fmt.Errorf("failed to persist artifacts: %w", err)
	}
	slog.Info("Ingestion complete", "run_id", runID, "artifacts", len(ingestResult.Artifacts))

	// Task synthesis.
	if err := o.sm.Advance(ctx, runID, models.RunStatusGeneratingTasks); err != nil {
		return err
	}
	taskList := tasks.Synthesize(runID, run.Config, ingestResult.Artifacts)
	if len(taskList) == 0 {
		return fmt.Errorf("no tasks could be synthesized for %s", run.DocsURL)
	}
	if err := o.store.PersistTasks(ctx, runID, taskList); err != nil {
		return fmt.Errorf("failed to persist tasks: %w", err)
	}
	for _, t := range taskList {
		if _, err := o.publisher.Publish(ctx, runID, models.EventTaskGenerated, models.EventPayload{
			Message: t.Name,
		}); err != nil {
			slog.Warn("Failed to publish task.generated", "run_id", runID, "task_id", t.TaskID, "error", err)
		}
	}

	// Worker provisioning.
	workers, err := o.store.EnsureRunWorkers(ctx, runID, provisionWorkers(runID, run.Config))
	if err != nil {
		return fmt.Errorf("failed to provision workers: %w", err)
	}
	slog.Info("Workers provisioned", "run_id", runID, "count", len(workers))

	// Execution phases.
	if err := o.sm.Advance(ctx, runID, models.RunStatusRunning); err != nil {
		return err
	}
	return o.executePhases(ctx, run)
}

// provisionWorkers expands the config's assignments into concrete workers.
// Labels are worker-1..worker-N across all assignments, in order.
func provisionWorkers(runID string, cfg models.RunConfig) []models.Worker {
	workers := make([]models.Worker, 0, cfg.WorkerCount)
	n := 0
	for _, a := range cfg.Assignments {
		model := cfg.RunModel
		model.Provider = a.Provider
		model.Model = a.Model
		if a.Overrides != nil {
			model = *a.Overrides
		}
		for i := 0; i < a.Quantity; i++ {
			n++
			workers = append(workers, models.Worker{
				ID:            uuid.NewString(),
				RunID:         runID,
				WorkerLabel:   fmt.Sprintf("worker-%d", n),
				ModelProvider: model.Provider,
				ModelName:     model.Model,
				ModelConfig:   model,
				Status:        models.WorkerStatusIdle,
			})
		}
	}
	return workers
}

// RunDetail is the full read-side snapshot of one run.
type RunDetail struct {
	Run         *models.Run             `json:"run"`
	Tasks       []models.Task           `json:"tasks"`
	Workers     []models.Worker         `json:"workers"`
	Executions  []models.TaskExecution  `json:"executions"`
	Evaluations []models.TaskEvaluation `json:"evaluations"`
	Errors      []models.RunError       `json:"errors"`
	Skill       *models.SkillSession    `json:"skillSession,omitempty"`
}

// GetRunDetail assembles the run snapshot served by the API.
func (o *Orchestrator) GetRunDetail(ctx context.Context, runID string) (*RunDetail, error) {
	run, err := o.store.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	taskList, err := o.store.GetRunTasks(ctx, runID)
	if err != nil {
		return nil, err
	}
	workers, err := o.store.GetRunWorkers(ctx, runID)
	if err != nil {
		return nil, err
	}
	executions, err := o.store.GetTaskExecutions(ctx, runID)
	if err != nil {
		return nil, err
	}
	baseline, err := o.store.ListTaskEvaluations(ctx, runID, models.PhaseBaseline)
	if err != nil {
		return nil, err
	}
	optimized, err := o.store.ListTaskEvaluations(ctx, runID, models.PhaseOptimized)
	if err != nil {
		return nil, err
	}
	runErrors, err := o.store.ListRunErrors(ctx, runID)
	if err != nil {
		return nil, err
	}
	detail := &RunDetail{
		Run:         run,
		Tasks:       taskList,
		Workers:     workers,
		Executions:  executions,
		Evaluations: append(baseline, optimized...),
		Errors:      runErrors,
	}
	session, err := o.store.GetSkillSession(ctx, runID)
	switch {
	case err == nil:
		detail.Skill = session
	case errors.Is(err, store.ErrNotFound):
	default:
		return nil, err
	}
	return detail, nil
}

// GetRun returns the bare run row.
func (o *Orchestrator) GetRun(ctx context.Context, runID string) (*models.Run, error) {
	return o.store.GetRun(ctx, runID)
}

// ListRuns pages over runs, newest first.
func (o *Orchestrator) ListRuns(ctx context.Context, limit, offset int) ([]*models.Run, error) {
	return o.store.ListRuns(ctx, limit, offset)
}
