package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/store"
)

// RunChannel derives the NOTIFY channel name for a run.
func RunChannel(runID string) string {
	return "run_" + runID
}

// notifyEnvelope is the compact cross-replica NOTIFY payload. It carries
// only routing fields; receivers fetch the full event from the store by id
// cursor, so the 8000-byte NOTIFY limit never bites.
type notifyEnvelope struct {
	RunID     string `json:"runId"`
	EventID   int64  `json:"eventId"`
	Seq       int    `json:"seq"`
	EventType string `json:"eventType"`
}

// Publisher appends run events to the store and broadcasts them. Persistence
// is authoritative; the in-process Hub fan-out and the optional cross-replica
// NOTIFY are both best-effort.
type Publisher struct {
	store    store.Store
	hub      *Hub
	db       *sql.DB // nil when running without Postgres
	onAppend func()
}

// NewPublisher creates a Publisher. db may be nil, in which case events are
// distributed in-process only.
func NewPublisher(st store.Store, hub *Hub, db *sql.DB) *Publisher {
	return &Publisher{store: st, hub: hub, db: db}
}

// OnAppend registers a hook invoked after every successful append. Used to
// feed the event counter metric without coupling this package to it.
func (p *Publisher) OnAppend(fn func()) {
	p.onAppend = fn
}

// Publish appends one event and fans it out. The returned id is the global
// stream cursor.
func (p *Publisher) Publish(ctx context.Context, runID, eventType string, payload models.EventPayload) (int64, error) {
	payload.RunID = runID

	id, err := p.store.AppendRunEvent(ctx, runID, eventType, payload)
	if err != nil {
		return 0, fmt.Errorf("failed to append run event: %w", err)
	}
	if p.onAppend != nil {
		p.onAppend()
	}

	event := models.RunEvent{
		ID:        id,
		RunID:     runID,
		EventType: eventType,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
	p.hub.Broadcast(event)

	if p.db != nil {
		if err := p.notify(ctx, runID, id, eventType); err != nil {
			slog.Warn("Failed to NOTIFY run event",
				"run_id", runID, "event_id", id, "error", err)
		}
	}
	return id, nil
}

// PublishStatus is the common status-transition publish: the event type is
// "run.<status>" and the message mirrors it.
func (p *Publisher) PublishStatus(ctx context.Context, runID string, status models.RunStatus, message string) (int64, error) {
	return p.Publish(ctx, runID, "run."+string(status), models.EventPayload{
		RunID:   runID,
		Message: message,
	})
}

func (p *Publisher) notify(ctx context.Context, runID string, eventID int64, eventType string) error {
	envelope, err := json.Marshal(notifyEnvelope{
		RunID:     runID,
		EventID:   eventID,
		EventType: eventType,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notify envelope: %w", err)
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", RunChannel(runID), string(envelope)); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}
