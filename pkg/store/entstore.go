package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dhiyaancnirmal/mintaborate/ent"
	"github.com/dhiyaancnirmal/mintaborate/ent/run"
	"github.com/dhiyaancnirmal/mintaborate/ent/runworker"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// EntStore is the PostgreSQL-backed Store built on the generated Ent client.
type EntStore struct {
	client *ent.Client
}

// NewEntStore creates an EntStore around an Ent client.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

var _ Store = (*EntStore)(nil)

var terminalStatuses = []run.Status{run.StatusCompleted, run.StatusFailed, run.StatusCanceled}

// CreateRun implements Store.
func (s *EntStore) CreateRun(ctx context.Context, r *models.Run) error {
	_, err := s.client.Run.Create().
		SetID(r.ID).
		SetDocsURL(r.DocsURL).
		SetStatus(run.Status(r.Status)).
		SetStartedAt(r.StartedAt).
		SetConfig(r.Config).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

// GetRun implements Store.
func (s *EntStore) GetRun(ctx context.Context, runID string) (*models.Run, error) {
	row, err := s.client.Run.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return runFromEnt(row), nil
}

// ListRuns implements Store; newest first.
func (s *EntStore) ListRuns(ctx context.Context, limit, offset int) ([]*models.Run, error) {
	q := s.client.Run.Query().
		Order(ent.Desc(run.FieldStartedAt)).
		Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	out := make([]*models.Run, 0, len(rows))
	for _, row := range rows {
		out = append(out, runFromEnt(row))
	}
	return out, nil
}

// UpdateRunStatus implements Store. The predicate excludes terminal rows, so
// a late writer racing the finalizer silently loses.
func (s *EntStore) UpdateRunStatus(ctx context.Context, runID string, status models.RunStatus) error {
	if status.IsTerminal() {
		return fmt.Errorf("terminal status %q must go through FinalizeRun", status)
	}
	_, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusNotIn(terminalStatuses...)).
		SetStatus(run.Status(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update run status: %w", err)
	}
	return nil
}

// FinalizeRun implements Store; the single writer of terminal statuses.
func (s *EntStore) FinalizeRun(ctx context.Context, runID string, status models.RunStatus, totals *models.Totals, errorMessage string) error {
	if !status.IsTerminal() {
		return fmt.Errorf("finalize with non-terminal status %q", status)
	}
	upd := s.client.Run.UpdateOneID(runID).
		SetStatus(run.Status(status)).
		SetEndedAt(time.Now())
	if totals != nil {
		upd = upd.SetTotals(totals)
	}
	if errorMessage != "" {
		upd = upd.SetErrorMessage(errorMessage)
	}
	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finalize run: %w", err)
	}

	// Finalization also retires the run's workers.
	_, err := s.client.RunWorker.Update().
		Where(
			runworker.RunIDEQ(runID),
			runworker.StatusNotIn(runworker.StatusDone, runworker.StatusError),
		).
		SetStatus(runworker.StatusDone).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to retire run workers: %w", err)
	}
	return nil
}

// IncrementRunCost implements Store. AddCostEstimate compiles to
// SET cost_estimate = cost_estimate + $1, so concurrent workers never lose
// an increment.
func (s *EntStore) IncrementRunCost(ctx context.Context, runID string, delta float64) (float64, error) {
	row, err := s.client.Run.UpdateOneID(runID).
		AddCostEstimate(delta).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to increment run cost: %w", err)
	}
	return row.CostEstimate, nil
}

// IsRunCanceled implements Store; the cooperative cancellation poll.
func (s *EntStore) IsRunCanceled(ctx context.Context, runID string) (bool, error) {
	status, err := s.client.Run.Query().
		Where(run.IDEQ(runID)).
		Select(run.FieldStatus).
		String(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to query run status: %w", err)
	}
	return models.RunStatus(status) == models.RunStatusCanceled, nil
}

// requireRunWritable returns ErrRunTerminal when the run already finished.
func (s *EntStore) requireRunWritable(ctx context.Context, runID string) error {
	status, err := s.client.Run.Query().
		Where(run.IDEQ(runID)).
		Select(run.FieldStatus).
		String(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to query run status: %w", err)
	}
	if models.RunStatus(status).IsTerminal() {
		return ErrRunTerminal
	}
	return nil
}

func runFromEnt(row *ent.Run) *models.Run {
	out := &models.Run{
		ID:           row.ID,
		DocsURL:      row.DocsURL,
		Status:       models.RunStatus(row.Status),
		StartedAt:    row.StartedAt,
		EndedAt:      row.EndedAt,
		Config:       row.Config,
		Totals:       row.Totals,
		CostEstimate: row.CostEstimate,
	}
	if row.ErrorMessage != nil {
		out.ErrorMessage = *row.ErrorMessage
	}
	return out
}
