package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/semaphore"

	"github.com/dhiyaancnirmal/mintaborate/pkg/evaluate"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/retrieval"
	"github.com/dhiyaancnirmal/mintaborate/pkg/store"
)

// executePhases runs the baseline phase and, when enabled and warranted,
// the optimized phase, then finalizes the run.
func (o *Orchestrator) executePhases(ctx context.Context, run *models.Run) error {
	runID := run.ID

	artifacts, err := o.store.GetRunArtifacts(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to load artifacts: %w", err)
	}
	taskList, err := o.store.GetRunTasks(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	workers, err := o.store.GetRunWorkers(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to load workers: %w", err)
	}

	judge := evaluate.NewJudge(o.client, run.Config.JudgeModel, run.Config.TieBreakEnabled)
	judgeSem := semaphore.NewWeighted(int64(max(1, run.Config.JudgeConcurrency)))

	// Baseline phase.
	baselineTotals, err := o.runPhase(ctx, poolParams{
		run:      run,
		phase:    models.PhaseBaseline,
		tasks:    taskList,
		workers:  workers,
		index:    retrieval.BuildIndex(artifacts),
		judge:    judge,
		judgeSem: judgeSem,
	})
	if err != nil {
		return err
	}

	if err := o.sm.Advance(ctx, runID, models.RunStatusEvaluating); err != nil {
		return err
	}
	if canceled, err := o.store.IsRunCanceled(ctx, runID); err != nil {
		return err
	} else if canceled {
		return o.finalizeOutcome(ctx, runID, totalsOrNil(baselineTotals))
	}

	if !run.Config.EnableSkillOptimization {
		return o.finalizeOutcome(ctx, runID, &baselineTotals)
	}
	return o.runOptimization(ctx, run, artifacts, taskList, workers, judge, judgeSem, baselineTotals)
}

// runPhase drives one worker-pool pass and aggregates its evaluations.
func (o *Orchestrator) runPhase(ctx context.Context, p poolParams) (models.Totals, error) {
	o.publishPhaseEvent(ctx, p.run.ID, p.phase, models.EventPhaseStarted)
	if err := o.runPool(ctx, p); err != nil {
		return models.Totals{}, err
	}
	evals, err := o.store.ListTaskEvaluations(ctx, p.run.ID, p.phase)
	if err != nil {
		return models.Totals{}, fmt.Errorf("failed to list %s evaluations: %w", p.phase, err)
	}
	totals := evaluate.Aggregate(evals)
	o.publishPhaseEvent(ctx, p.run.ID, p.phase, models.EventPhaseCompleted)
	slog.Info("Phase complete",
		"run_id", p.run.ID, "phase", p.phase,
		"passed", totals.PassedTasks, "failed", totals.FailedTasks, "average", totals.AverageScore)
	return totals, nil
}

// runOptimization executes the skill-optimization branch after baseline.
func (o *Orchestrator) runOptimization(ctx context.Context, run *models.Run, artifacts []models.Artifact, taskList []models.Task, workers []models.Worker, judge *evaluate.Judge, judgeSem *semaphore.Weighted, baselineTotals models.Totals) error {
	runID := run.ID

	session := &models.SkillSession{
		RunID:             runID,
		SourceSkillOrigin: skillOrigin(artifacts),
		BaselineTotals:    &baselineTotals,
	}

	if baselineTotals.FailedTasks == 0 {
		session.Status = models.SkillSessionSkipped
		if err := o.store.UpsertSkillSession(ctx, session); err != nil {
			return err
		}
		return o.finalizeOutcome(ctx, runID, &baselineTotals)
	}

	session.Status = models.SkillSessionGenerating
	if err := o.store.UpsertSkillSession(ctx, session); err != nil {
		return err
	}
	o.publishSkillEvent(ctx, runID, models.EventSkillGenerationStarted, nil)

	baselineEvals, err := o.store.ListTaskEvaluations(ctx, runID, models.PhaseBaseline)
	if err != nil {
		return err
	}
	var failures []models.TaskEvaluation
	for _, e := range baselineEvals {
		if !e.Pass {
			failures = append(failures, e)
		}
	}
	taskNames := make(map[string]string, len(taskList))
	for _, t := range taskList {
		taskNames[t.TaskID] = t.Name
	}

	skillText, notes, skillUsage, err := o.generateSkill(ctx, run, siteSkillText(artifacts), failures, taskNames)
	session.TokensIn = skillUsage.InputTokens
	session.TokensOut = skillUsage.OutputTokens
	session.CostEstimate = o.pricer.Cost(run.Config.JudgeModel.Model, skillUsage.InputTokens, skillUsage.OutputTokens)
	if err != nil {
		// Skill failure does not fail the run: baseline totals stand.
		slog.Error("Skill generation failed", "run_id", runID, "error", err)
		session.Status = models.SkillSessionError
		session.ErrorMessage = err.Error()
		if uerr := o.store.UpsertSkillSession(ctx, session); uerr != nil {
			slog.Error("Failed to record skill session error", "run_id", runID, "error", uerr)
		}
		if perr := o.store.PersistRunError(ctx, runID, models.RunErrorSkillOptimization, err.Error()); perr != nil {
			slog.Error("Failed to persist skill run error", "run_id", runID, "error", perr)
		}
		o.publishSkillEvent(ctx, runID, models.EventSkillGenerationFailed, map[string]any{"error": err.Error()})
		return o.finalizeOutcome(ctx, runID, &baselineTotals)
	}

	optimizedArtifacts, skillHash := replaceSkillArtifact(artifacts, run.DocsURL, skillText)
	if err := o.store.PersistIngestionArtifacts(ctx, runID, optimizedArtifacts); err != nil {
		return fmt.Errorf("failed to persist optimized artifacts: %w", err)
	}
	session.OptimizedSkillHash = skillHash
	o.publishSkillEvent(ctx, runID, models.EventSkillGenerationCompleted, map[string]any{
		"skillHash": skillHash,
		"notes":     notes,
	})

	// All tasks run again in the optimized phase.
	for _, t := range taskList {
		if err := o.store.UpdateTaskStatus(ctx, runID, t.TaskID, models.TaskStatusPending); err != nil && !errors.Is(err, store.ErrRunTerminal) {
			return err
		}
	}

	optimizedTotals, err := o.runPhase(ctx, poolParams{
		run:      run,
		phase:    models.PhaseOptimized,
		tasks:    taskList,
		workers:  workers,
		index:    retrieval.BuildIndex(optimizedArtifacts),
		judge:    judge,
		judgeSem: judgeSem,
	})
	if err != nil {
		return err
	}

	if canceled, err := o.store.IsRunCanceled(ctx, runID); err != nil {
		return err
	} else if canceled {
		return o.finalizeOutcome(ctx, runID, totalsOrNil(optimizedTotals))
	}

	delta := evaluate.Delta(baselineTotals, optimizedTotals)
	session.Status = models.SkillSessionCompleted
	session.OptimizedTotals = &optimizedTotals
	session.Delta = &delta
	if err := o.store.UpsertSkillSession(ctx, session); err != nil {
		return err
	}
	return o.finalizeOutcome(ctx, runID, &optimizedTotals)
}

// finalizeOutcome writes the run's terminal record. A run canceled while
// phases were in flight stays canceled; its partial totals are attached
// without a second terminal event.
func (o *Orchestrator) finalizeOutcome(ctx context.Context, runID string, totals *models.Totals) error {
	canceled, err := o.store.IsRunCanceled(ctx, runID)
	if err != nil {
		return err
	}
	if canceled {
		o.metrics.RunsFinalized.WithLabelValues(string(models.RunStatusCanceled)).Inc()
		return o.store.FinalizeRun(ctx, runID, models.RunStatusCanceled, totals, "")
	}
	o.metrics.RunsFinalized.WithLabelValues(string(models.RunStatusCompleted)).Inc()
	return o.sm.Finalize(ctx, runID, models.RunStatusCompleted, totals, "")
}

func totalsOrNil(totals models.Totals) *models.Totals {
	if totals.TotalTasks == 0 {
		return nil
	}
	return &totals
}

func skillOrigin(artifacts []models.Artifact) models.SkillSourceOrigin {
	if siteSkillText(artifacts) != "" {
		return models.SkillOriginSiteSkill
	}
	return models.SkillOriginNone
}

func siteSkillText(artifacts []models.Artifact) string {
	for _, a := range artifacts {
		if a.ArtifactType == models.ArtifactTypeSkill {
			return a.Content
		}
	}
	return ""
}

func (o *Orchestrator) publishPhaseEvent(ctx context.Context, runID string, phase models.Phase, eventType string) {
	if _, err := o.publisher.Publish(ctx, runID, eventType, models.EventPayload{
		Phase:   phase,
		Message: string(phase) + " phase",
	}); err != nil {
		slog.Warn("Failed to publish phase event", "run_id", runID, "type", eventType, "error", err)
	}
}

func (o *Orchestrator) publishSkillEvent(ctx context.Context, runID string, eventType string, extra map[string]any) {
	var data json.RawMessage
	if extra != nil {
		data, _ = json.Marshal(extra)
	}
	if _, err := o.publisher.Publish(ctx, runID, eventType, models.EventPayload{
		Phase:   models.PhaseOptimized,
		Message: eventType,
		Data:    data,
	}); err != nil {
		slog.Warn("Failed to publish skill event", "run_id", runID, "type", eventType, "error", err)
	}
}
