// Package ingest fetches documentation artifacts for a run. The HTTP
// implementation honors the llms.txt / llms-full.txt / skill.md conventions
// and discovers a bounded set of same-host pages.
package ingest

import (
	"context"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// Options bound one ingestion.
type Options struct {
	// MaxPages caps discovered-page fetches beyond the base URL and the
	// convention files. Zero means DefaultMaxPages.
	MaxPages int
}

// DefaultMaxPages bounds link discovery.
const DefaultMaxPages = 12

// Ingestor fetches the artifact set for a docs URL.
type Ingestor interface {
	Ingest(ctx context.Context, docsURL string, opts Options) (*models.IngestResult, error)
}
