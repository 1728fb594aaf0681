package store

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/dhiyaancnirmal/mintaborate/ent"
	"github.com/dhiyaancnirmal/mintaborate/ent/deterministiccheck"
	"github.com/dhiyaancnirmal/mintaborate/ent/runerror"
	"github.com/dhiyaancnirmal/mintaborate/ent/runevent"
	"github.com/dhiyaancnirmal/mintaborate/ent/skillsession"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskevaluation"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskexecution"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// appendMaxAttempts bounds the optimistic seq-claim loop. Each attempt reads
// the current max seq and inserts max+1; the (run_id, seq) unique index turns
// a lost race into a constraint error and a retry.
const appendMaxAttempts = 24

// AppendRunEvent implements Store.
func (s *EntStore) AppendRunEvent(ctx context.Context, runID, eventType string, payload models.EventPayload) (int64, error) {
	for attempt := 0; attempt < appendMaxAttempts; attempt++ {
		last, err := s.client.RunEvent.Query().
			Where(runevent.RunIDEQ(runID)).
			Order(ent.Desc(runevent.FieldSeq)).
			First(ctx)
		seq := 1
		if err == nil {
			seq = last.Seq + 1
		} else if !ent.IsNotFound(err) {
			return 0, fmt.Errorf("failed to read event seq: %w", err)
		}

		row, err := s.client.RunEvent.Create().
			SetRunID(runID).
			SetSeq(seq).
			SetEventType(eventType).
			SetPayload(payload).
			Save(ctx)
		if err == nil {
			return int64(row.ID), nil
		}
		if !ent.IsConstraintError(err) {
			return 0, fmt.Errorf("failed to append run event: %w", err)
		}

		// Randomized backoff so colliding appenders spread out.
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(time.Duration(rand.Intn(5)+1) * time.Millisecond):
		}
	}
	return 0, fmt.Errorf("failed to append run event after %d attempts", appendMaxAttempts)
}

// GetRunEventsAfter implements Store; the id cursor is the global insertion order.
func (s *EntStore) GetRunEventsAfter(ctx context.Context, runID string, afterID int64, limit int) ([]models.RunEvent, error) {
	q := s.client.RunEvent.Query().
		Where(runevent.RunIDEQ(runID), runevent.IDGT(int(afterID))).
		Order(ent.Asc(runevent.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get run events: %w", err)
	}
	out := make([]models.RunEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.RunEvent{
			ID:        int64(row.ID),
			RunID:     row.RunID,
			Seq:       row.Seq,
			EventType: row.EventType,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

// PersistDeterministicChecks implements Store.
func (s *EntStore) PersistDeterministicChecks(ctx context.Context, checks []models.DeterministicCheck) error {
	builders := make([]*ent.DeterministicCheckCreate, 0, len(checks))
	for _, c := range checks {
		b := s.client.DeterministicCheck.Create().
			SetTaskExecutionID(c.TaskExecutionID).
			SetName(c.Name).
			SetPassed(c.Passed).
			SetScoreDelta(c.ScoreDelta)
		if c.Details != "" {
			b = b.SetDetails(c.Details)
		}
		builders = append(builders, b)
	}
	if _, err := s.client.DeterministicCheck.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to persist deterministic checks: %w", err)
	}
	return nil
}

// GetDeterministicChecks returns the persisted gate results for an execution.
func (s *EntStore) GetDeterministicChecks(ctx context.Context, executionID string) ([]models.DeterministicCheck, error) {
	rows, err := s.client.DeterministicCheck.Query().
		Where(deterministiccheck.TaskExecutionIDEQ(executionID)).
		Order(ent.Asc(deterministiccheck.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get deterministic checks: %w", err)
	}
	out := make([]models.DeterministicCheck, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.DeterministicCheck{
			TaskExecutionID: row.TaskExecutionID,
			Name:            row.Name,
			Passed:          row.Passed,
			ScoreDelta:      row.ScoreDelta,
			Details:         row.Details,
		})
	}
	return out, nil
}

// PersistTaskAttempt implements Store; the attempt lives on the execution row.
func (s *EntStore) PersistTaskAttempt(ctx context.Context, executionID string, attempt models.Attempt) error {
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
		SetAttempt(&attempt).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to persist attempt: %w", err)
	}
	return nil
}

// PersistTaskEvaluation implements Store. The (runId, taskId, phase) unique
// index turns a duplicate into ErrAlreadyExists.
func (s *EntStore) PersistTaskEvaluation(ctx context.Context, eval *models.TaskEvaluation) error {
	if err := s.requireRunWritable(ctx, eval.RunID); err != nil {
		return err
	}
	b := s.client.TaskEvaluation.Create().
		SetRunID(eval.RunID).
		SetTaskID(eval.TaskID).
		SetPhase(taskevaluation.Phase(eval.Phase)).
		SetCriterionScores(eval.CriterionScores).
		SetPass(eval.Pass).
		SetQualityPass(eval.QualityPass).
		SetValidityPass(eval.ValidityPass).
		SetRationale(eval.Rationale).
		SetJudgeModel(eval.JudgeModel).
		SetConfidence(eval.Confidence)
	if len(eval.ValidityBlockedReasons) > 0 {
		b = b.SetValidityBlockedReasons(eval.ValidityBlockedReasons)
	}
	if eval.FailureClass != nil {
		b = b.SetFailureClass(string(*eval.FailureClass))
	}
	if _, err := b.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to persist evaluation: %w", err)
	}
	return nil
}

// ListTaskEvaluations implements Store; an empty phase selects both.
func (s *EntStore) ListTaskEvaluations(ctx context.Context, runID string, phase models.Phase) ([]models.TaskEvaluation, error) {
	q := s.client.TaskEvaluation.Query().
		Where(taskevaluation.RunIDEQ(runID)).
		Order(ent.Asc(taskevaluation.FieldID))
	if phase != "" {
		q = q.Where(taskevaluation.PhaseEQ(taskevaluation.Phase(phase)))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	out := make([]models.TaskEvaluation, 0, len(rows))
	for _, row := range rows {
		eval := models.TaskEvaluation{
			RunID:                  row.RunID,
			TaskID:                 row.TaskID,
			Phase:                  models.Phase(row.Phase),
			CriterionScores:        row.CriterionScores,
			Pass:                   row.Pass,
			QualityPass:            row.QualityPass,
			ValidityPass:           row.ValidityPass,
			ValidityBlockedReasons: row.ValidityBlockedReasons,
			Rationale:              row.Rationale,
			JudgeModel:             row.JudgeModel,
			Confidence:             row.Confidence,
		}
		if row.FailureClass != nil {
			fc := models.FailureClass(*row.FailureClass)
			eval.FailureClass = &fc
		}
		out = append(out, eval)
	}
	return out, nil
}

// PersistRunError implements Store.
func (s *EntStore) PersistRunError(ctx context.Context, runID, code, message string) error {
	_, err := s.client.RunError.Create().
		SetID(uuid.NewString()).
		SetRunID(runID).
		SetCode(code).
		SetMessage(message).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to persist run error: %w", err)
	}
	return nil
}

// ListRunErrors implements Store.
func (s *EntStore) ListRunErrors(ctx context.Context, runID string) ([]models.RunError, error) {
	rows, err := s.client.RunError.Query().
		Where(runerror.RunIDEQ(runID)).
		Order(ent.Asc(runerror.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list run errors: %w", err)
	}
	out := make([]models.RunError, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.RunError{
			ID:        row.ID,
			RunID:     row.RunID,
			Code:      row.Code,
			Message:   row.Message,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

// UpsertSkillSession implements Store.
func (s *EntStore) UpsertSkillSession(ctx context.Context, session *models.SkillSession) error {
	existing, err := s.client.SkillSession.Query().
		Where(skillsession.RunIDEQ(session.RunID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to look up skill session: %w", err)
	}

	if ent.IsNotFound(err) {
		b := s.client.SkillSession.Create().
			SetRunID(session.RunID).
			SetStatus(skillsession.Status(session.Status)).
			SetSourceSkillOrigin(skillsession.SourceSkillOrigin(session.SourceSkillOrigin))
		b = applySkillSessionFields(b, session)
		if _, err := b.Save(ctx); err != nil {
			return fmt.Errorf("failed to create skill session: %w", err)
		}
		return nil
	}

	upd := existing.Update().
		SetStatus(skillsession.Status(session.Status)).
		SetSourceSkillOrigin(skillsession.SourceSkillOrigin(session.SourceSkillOrigin)).
		SetTokensIn(session.TokensIn).
		SetTokensOut(session.TokensOut).
		SetCostEstimate(session.CostEstimate)
	if session.BaselineTotals != nil {
		upd = upd.SetBaselineTotals(session.BaselineTotals)
	}
	if session.OptimizedTotals != nil {
		upd = upd.SetOptimizedTotals(session.OptimizedTotals)
	}
	if session.Delta != nil {
		upd = upd.SetDelta(session.Delta)
	}
	if session.OptimizedSkillHash != "" {
		upd = upd.SetOptimizedSkillHash(session.OptimizedSkillHash)
	}
	if session.ErrorMessage != "" {
		upd = upd.SetErrorMessage(session.ErrorMessage)
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("failed to update skill session: %w", err)
	}
	return nil
}

func applySkillSessionFields(b *ent.SkillSessionCreate, session *models.SkillSession) *ent.SkillSessionCreate {
	b = b.SetTokensIn(session.TokensIn).
		SetTokensOut(session.TokensOut).
		SetCostEstimate(session.CostEstimate)
	if session.BaselineTotals != nil {
		b = b.SetBaselineTotals(session.BaselineTotals)
	}
	if session.OptimizedTotals != nil {
		b = b.SetOptimizedTotals(session.OptimizedTotals)
	}
	if session.Delta != nil {
		b = b.SetDelta(session.Delta)
	}
	if session.OptimizedSkillHash != "" {
		b = b.SetOptimizedSkillHash(session.OptimizedSkillHash)
	}
	if session.ErrorMessage != "" {
		b = b.SetErrorMessage(session.ErrorMessage)
	}
	return b
}

// GetSkillSession implements Store.
func (s *EntStore) GetSkillSession(ctx context.Context, runID string) (*models.SkillSession, error) {
	row, err := s.client.SkillSession.Query().
		Where(skillsession.RunIDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get skill session: %w", err)
	}
	out := &models.SkillSession{
		RunID:              row.RunID,
		Status:             models.SkillSessionStatus(row.Status),
		SourceSkillOrigin:  models.SkillSourceOrigin(row.SourceSkillOrigin),
		BaselineTotals:     row.BaselineTotals,
		OptimizedTotals:    row.OptimizedTotals,
		Delta:              row.Delta,
		OptimizedSkillHash: row.OptimizedSkillHash,
		TokensIn:           row.TokensIn,
		TokensOut:          row.TokensOut,
		CostEstimate:       row.CostEstimate,
		UpdatedAt:          row.UpdatedAt,
	}
	if row.ErrorMessage != nil {
		out.ErrorMessage = *row.ErrorMessage
	}
	return out, nil
}
