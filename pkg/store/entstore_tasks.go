package store

import (
	"context"
	"fmt"

	"github.com/dhiyaancnirmal/mintaborate/ent"
	"github.com/dhiyaancnirmal/mintaborate/ent/runartifact"
	"github.com/dhiyaancnirmal/mintaborate/ent/runworker"
	"github.com/dhiyaancnirmal/mintaborate/ent/task"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// PersistIngestionArtifacts implements Store. Re-ingestion replaces the
// run's artifact set wholesale.
func (s *EntStore) PersistIngestionArtifacts(ctx context.Context, runID string, artifacts []models.Artifact) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to open transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.RunArtifact.Delete().Where(runartifact.RunIDEQ(runID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear artifacts: %w", err)
	}

	builders := make([]*ent.RunArtifactCreate, 0, len(artifacts))
	for _, a := range artifacts {
		b := tx.RunArtifact.Create().
			SetRunID(runID).
			SetArtifactType(a.ArtifactType).
			SetSourceURL(a.SourceURL).
			SetContent(a.Content).
			SetContentHash(a.ContentHash)
		if len(a.Metadata) > 0 {
			b = b.SetMetadata(a.Metadata)
		}
		builders = append(builders, b)
	}
	if _, err := tx.RunArtifact.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to persist artifacts: %w", err)
	}
	return tx.Commit()
}

// GetRunArtifacts implements Store.
func (s *EntStore) GetRunArtifacts(ctx context.Context, runID string) ([]models.Artifact, error) {
	rows, err := s.client.RunArtifact.Query().
		Where(runartifact.RunIDEQ(runID)).
		Order(ent.Asc(runartifact.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get artifacts: %w", err)
	}
	out := make([]models.Artifact, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.Artifact{
			ArtifactType: row.ArtifactType,
			SourceURL:    row.SourceURL,
			Content:      row.Content,
			ContentHash:  row.ContentHash,
			Metadata:     row.Metadata,
		})
	}
	return out, nil
}

// PersistTasks implements Store.
func (s *EntStore) PersistTasks(ctx context.Context, runID string, tasks []models.Task) error {
	builders := make([]*ent.TaskCreate, 0, len(tasks))
	for _, t := range tasks {
		builders = append(builders, s.client.Task.Create().
			SetID(t.TaskID).
			SetRunID(runID).
			SetName(t.Name).
			SetDescription(t.Description).
			SetCategory(t.Category).
			SetDifficulty(t.Difficulty).
			SetExpectedSignals(t.ExpectedSignals).
			SetStatus(task.Status(t.Status)))
	}
	if _, err := s.client.Task.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to persist tasks: %w", err)
	}
	return nil
}

// GetRunTasks implements Store; insertion order by task id.
func (s *EntStore) GetRunTasks(ctx context.Context, runID string) ([]models.Task, error) {
	rows, err := s.client.Task.Query().
		Where(task.RunIDEQ(runID)).
		Order(ent.Asc(task.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	out := make([]models.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.Task{
			TaskID:          row.ID,
			RunID:           row.RunID,
			Name:            row.Name,
			Description:     row.Description,
			Category:        row.Category,
			Difficulty:      row.Difficulty,
			ExpectedSignals: row.ExpectedSignals,
			Status:          models.TaskStatus(row.Status),
		})
	}
	return out, nil
}

// UpdateTaskStatus implements Store.
func (s *EntStore) UpdateTaskStatus(ctx context.Context, runID, taskID string, status models.TaskStatus) error {
	n, err := s.client.Task.Update().
		Where(task.IDEQ(taskID), task.RunIDEQ(runID)).
		SetStatus(task.Status(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureRunWorkers implements Store. The (run_id, worker_label) unique index
// makes double provisioning collapse into a read.
func (s *EntStore) EnsureRunWorkers(ctx context.Context, runID string, workers []models.Worker) ([]models.Worker, error) {
	existing, err := s.GetRunWorkers(ctx, runID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	builders := make([]*ent.RunWorkerCreate, 0, len(workers))
	for _, w := range workers {
		builders = append(builders, s.client.RunWorker.Create().
			SetID(w.ID).
			SetRunID(runID).
			SetWorkerLabel(w.WorkerLabel).
			SetModelProvider(w.ModelProvider).
			SetModelName(w.ModelName).
			SetModelConfig(w.ModelConfig).
			SetStatus(runworker.Status(w.Status)))
	}
	if _, err := s.client.RunWorker.CreateBulk(builders...).Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Lost the provisioning race; the winner's rows are authoritative.
			return s.GetRunWorkers(ctx, runID)
		}
		return nil, fmt.Errorf("failed to provision workers: %w", err)
	}
	return s.GetRunWorkers(ctx, runID)
}

// GetRunWorkers implements Store.
func (s *EntStore) GetRunWorkers(ctx context.Context, runID string) ([]models.Worker, error) {
	rows, err := s.client.RunWorker.Query().
		Where(runworker.RunIDEQ(runID)).
		Order(ent.Asc(runworker.FieldWorkerLabel)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get workers: %w", err)
	}
	out := make([]models.Worker, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.Worker{
			ID:            row.ID,
			RunID:         row.RunID,
			WorkerLabel:   row.WorkerLabel,
			ModelProvider: row.ModelProvider,
			ModelName:     row.ModelName,
			ModelConfig:   row.ModelConfig,
			Status:        models.WorkerStatus(row.Status),
		})
	}
	return out, nil
}

// UpdateWorkerStatus implements Store.
func (s *EntStore) UpdateWorkerStatus(ctx context.Context, runID, workerID string, status models.WorkerStatus) error {
	n, err := s.client.RunWorker.Update().
		Where(runworker.IDEQ(workerID), runworker.RunIDEQ(runID)).
		SetStatus(runworker.Status(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update worker status: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
