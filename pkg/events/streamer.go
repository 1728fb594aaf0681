package events

import (
	"context"
	"fmt"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/store"
)

// catchupBatch is the page size for cursor replay.
const catchupBatch = 200

// Streamer replays a run's persisted events from a cursor and then follows
// live Hub traffic. Duplicate and out-of-order deliveries are filtered by the
// monotone id cursor, so replay and live fan-out can overlap safely.
type Streamer struct {
	store store.Store
	hub   *Hub
}

// NewStreamer creates a Streamer.
func NewStreamer(st store.Store, hub *Hub) *Streamer {
	return &Streamer{store: st, hub: hub}
}

// position is the delivery cursor: id keys the store reads, seq is the
// run's dense sequence and detects dropped events.
type position struct {
	id  int64
	seq int
}

// Stream invokes send for every event with id > afterID, in id order, until
// a terminal run event is delivered, the context ends, or send fails.
func (s *Streamer) Stream(ctx context.Context, runID string, afterID int64, send func(models.RunEvent) error) error {
	// Subscribe before replay so nothing published mid-catchup is missed.
	live, cancel := s.hub.Subscribe(runID)
	defer cancel()

	pos := position{id: afterID}
	terminal, err := s.replay(ctx, runID, &pos, send)
	if err != nil || terminal {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-live:
			if !ok {
				return nil
			}
			if event.ID <= pos.id {
				continue
			}
			// Seq is dense per run, so a skipped seq means the Hub dropped
			// something; refill from the store. The id sequence is global
			// across runs and says nothing about per-run gaps.
			if pos.seq == 0 || event.Seq > pos.seq+1 {
				terminal, err := s.replay(ctx, runID, &pos, send)
				if err != nil || terminal {
					return err
				}
				continue
			}
			pos = position{id: event.ID, seq: event.Seq}
			if err := send(event); err != nil {
				return err
			}
			if models.IsTerminalEvent(event.EventType) {
				return nil
			}
		}
	}
}

// replay pages persisted events after pos.id through send, advancing the
// position. Returns true when a terminal event was sent.
func (s *Streamer) replay(ctx context.Context, runID string, pos *position, send func(models.RunEvent) error) (bool, error) {
	for {
		batch, err := s.store.GetRunEventsAfter(ctx, runID, pos.id, catchupBatch)
		if err != nil {
			return false, fmt.Errorf("failed to replay events: %w", err)
		}
		for _, event := range batch {
			pos.id = event.ID
			pos.seq = event.Seq
			if err := send(event); err != nil {
				return false, err
			}
			if models.IsTerminalEvent(event.EventType) {
				return true, nil
			}
		}
		if len(batch) < catchupBatch {
			return false, nil
		}
	}
}
