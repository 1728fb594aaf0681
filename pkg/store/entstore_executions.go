package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dhiyaancnirmal/mintaborate/ent"
	"github.com/dhiyaancnirmal/mintaborate/ent/stepcitation"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskexecution"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskstep"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// CreateTaskExecution implements Store.
func (s *EntStore) CreateTaskExecution(ctx context.Context, exec *models.TaskExecution) error {
	if err := s.requireRunWritable(ctx, exec.RunID); err != nil {
		return err
	}
	_, err := s.client.TaskExecution.Create().
		SetID(exec.ID).
		SetRunID(exec.RunID).
		SetTaskID(exec.TaskID).
		SetWorkerID(exec.WorkerID).
		SetPhase(taskexecution.Phase(exec.Phase)).
		SetStatus(taskexecution.Status(exec.Status)).
		SetStartedAt(exec.StartedAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create task execution: %w", err)
	}
	return nil
}

// UpdateTaskExecutionProgress implements Store. The Add setters keep
// counters additive under concurrent progress writers.
func (s *EntStore) UpdateTaskExecutionProgress(ctx context.Context, executionID string, delta models.ExecutionProgress) error {
	exec, err := s.client.TaskExecution.Query().
		Where(taskexecution.IDEQ(executionID)).
		Select(taskexecution.FieldRunID).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to look up execution: %w", err)
	}
	if err := s.requireRunWritable(ctx, exec.RunID); err != nil {
		return err
	}
	_, err = s.client.TaskExecution.UpdateOneID(executionID).
		AddStepCount(delta.StepCount).
		AddTokensIn(delta.TokensIn).
		AddTokensOut(delta.TokensOut).
		AddCostEstimate(delta.CostEstimate).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update execution progress: %w", err)
	}
	return nil
}

// FinalizeTaskExecution implements Store. Settlement write: allowed on a
// terminal run so canceled runs can close out in-flight executions as
// skipped/cancelled instead of stranding them half-applied.
func (s *EntStore) FinalizeTaskExecution(ctx context.Context, executionID string, status models.TaskStatus, stopReason models.StopReason) error {
	_, err := s.client.TaskExecution.UpdateOneID(executionID).
		SetStatus(taskexecution.Status(status)).
		SetStopReason(string(stopReason)).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finalize execution: %w", err)
	}
	return nil
}

// GetTaskExecutions implements Store.
func (s *EntStore) GetTaskExecutions(ctx context.Context, runID string) ([]models.TaskExecution, error) {
	rows, err := s.client.TaskExecution.Query().
		Where(taskexecution.RunIDEQ(runID)).
		Order(ent.Asc(taskexecution.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get executions: %w", err)
	}
	out := make([]models.TaskExecution, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.TaskExecution{
			ID:           row.ID,
			RunID:        row.RunID,
			TaskID:       row.TaskID,
			WorkerID:     row.WorkerID,
			Phase:        models.Phase(row.Phase),
			Status:       models.TaskStatus(row.Status),
			StepCount:    row.StepCount,
			TokensIn:     row.TokensIn,
			TokensOut:    row.TokensOut,
			CostEstimate: row.CostEstimate,
			StopReason:   models.StopReason(row.StopReason),
			StartedAt:    row.StartedAt,
			CompletedAt:  row.CompletedAt,
		})
	}
	return out, nil
}

// UpsertTaskAgentState implements Store; the snapshot lives on the
// execution row and the last writer wins.
func (s *EntStore) UpsertTaskAgentState(ctx context.Context, executionID string, memory models.AgentMemory) error {
	exec, err := s.client.TaskExecution.Query().
		Where(taskexecution.IDEQ(executionID)).
		Select(taskexecution.FieldRunID).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to look up execution: %w", err)
	}
	if err := s.requireRunWritable(ctx, exec.RunID); err != nil {
		return err
	}
	_, err = s.client.TaskExecution.UpdateOneID(executionID).
		SetAgentState(&memory).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to upsert agent state: %w", err)
	}
	return nil
}

// GetTaskAgentState implements Store.
func (s *EntStore) GetTaskAgentState(ctx context.Context, executionID string) (*models.AgentMemory, error) {
	row, err := s.client.TaskExecution.Get(ctx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent state: %w", err)
	}
	if row.AgentState == nil {
		return nil, ErrNotFound
	}
	return row.AgentState, nil
}

// PersistTaskStep implements Store; returns the generated trace id.
func (s *EntStore) PersistTaskStep(ctx context.Context, step *models.StepTrace) (int64, error) {
	if err := s.requireRunWritable(ctx, step.RunID); err != nil {
		return 0, err
	}
	b := s.client.TaskStep.Create().
		SetTaskExecutionID(step.TaskExecutionID).
		SetRunID(step.RunID).
		SetStepIndex(step.StepIndex).
		SetPhase(taskstep.Phase(step.Phase)).
		SetInput(step.Input).
		SetOutput(step.Output)
	if len(step.Retrieval) > 0 {
		b = b.SetRetrieval(step.Retrieval)
	}
	if step.Usage != nil {
		b = b.SetUsage(step.Usage)
	}
	if step.Decision != nil {
		b = b.SetDecision(step.Decision)
	}
	row, err := b.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to persist step: %w", err)
	}
	return int64(row.ID), nil
}

// PersistTaskStepCitations implements Store.
func (s *EntStore) PersistTaskStepCitations(ctx context.Context, stepID int64, citations []models.Citation) error {
	builders := make([]*ent.StepCitationCreate, 0, len(citations))
	for _, c := range citations {
		b := s.client.StepCitation.Create().
			SetStepID(int(stepID)).
			SetSource(c.Source).
			SetExcerpt(c.Excerpt)
		if c.SnippetHash != "" {
			b = b.SetSnippetHash(c.SnippetHash)
		}
		b = b.SetNillableStartOffset(c.StartOffset).
			SetNillableEndOffset(c.EndOffset)
		builders = append(builders, b)
	}
	if _, err := s.client.StepCitation.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to persist step citations: %w", err)
	}
	return nil
}

// GetTaskSteps implements Store; trace order is the insertion id.
func (s *EntStore) GetTaskSteps(ctx context.Context, executionID string) ([]models.StepTrace, error) {
	rows, err := s.client.TaskStep.Query().
		Where(taskstep.TaskExecutionIDEQ(executionID)).
		Order(ent.Asc(taskstep.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get steps: %w", err)
	}
	out := make([]models.StepTrace, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.StepTrace{
			ID:              int64(row.ID),
			TaskExecutionID: row.TaskExecutionID,
			RunID:           row.RunID,
			StepIndex:       row.StepIndex,
			Phase:           models.StepPhase(row.Phase),
			Input:           row.Input,
			Output:          row.Output,
			Retrieval:       row.Retrieval,
			Usage:           row.Usage,
			Decision:        row.Decision,
			CreatedAt:       row.CreatedAt,
		})
	}
	return out, nil
}

// GetStepCitations returns the citations attached to a step.
func (s *EntStore) GetStepCitations(ctx context.Context, stepID int64) ([]models.Citation, error) {
	rows, err := s.client.StepCitation.Query().
		Where(stepcitation.StepIDEQ(int(stepID))).
		Order(ent.Asc(stepcitation.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get step citations: %w", err)
	}
	out := make([]models.Citation, 0, len(rows))
	for _, row := range rows {
		c := models.Citation{
			Source:      row.Source,
			SnippetHash: row.SnippetHash,
			Excerpt:     row.Excerpt,
			StartOffset: row.StartOffset,
			EndOffset:   row.EndOffset,
		}
		out = append(out, c)
	}
	return out, nil
}
