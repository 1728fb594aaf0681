// Package events distributes run events to stream consumers. Events are
// persisted through the store (which owns the dense per-run seq), fanned out
// in-process through the Hub, and bridged across replicas with PostgreSQL
// LISTEN/NOTIFY.
package events

import (
	"log/slog"
	"sync"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// subscriberBuffer is the per-subscriber channel depth. A subscriber that
// falls this far behind is dropped; it can reconnect and catch up by cursor.
const subscriberBuffer = 64

// Hub fans persisted run events out to in-process subscribers.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan models.RunEvent]struct{} // runID -> subscribers
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan models.RunEvent]struct{})}
}

// Subscribe registers a subscriber for a run's events. The returned cancel
// function unregisters and closes the channel.
func (h *Hub) Subscribe(runID string) (<-chan models.RunEvent, func()) {
	ch := make(chan models.RunEvent, subscriberBuffer)

	h.mu.Lock()
	if h.subs[runID] == nil {
		h.subs[runID] = make(map[chan models.RunEvent]struct{})
	}
	h.subs[runID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[runID], ch)
			if len(h.subs[runID]) == 0 {
				delete(h.subs, runID)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Broadcast delivers an event to every subscriber of its run. Slow
// subscribers are skipped rather than blocking the publisher.
func (h *Hub) Broadcast(event models.RunEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[event.RunID] {
		select {
		case ch <- event:
		default:
			slog.Warn("Dropping event for slow subscriber",
				"run_id", event.RunID, "event_id", event.ID)
		}
	}
}

// SubscriberCount reports the current number of subscribers for a run.
func (h *Hub) SubscriberCount(runID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[runID])
}
