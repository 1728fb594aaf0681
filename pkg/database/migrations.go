package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable content search over ingested artifacts and final answers,
// which Ent schema definitions cannot express.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_run_artifacts_content_gin
		ON run_artifacts USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create artifact content GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_task_evaluations_rationale_gin
		ON task_evaluations USING gin(to_tsvector('english', rationale))`)
	if err != nil {
		return fmt.Errorf("failed to create evaluation rationale GIN index: %w", err)
	}

	return nil
}
