package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/store"
)

func newPublisherFixture(t *testing.T, runID string) (*Publisher, *Hub, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, st.CreateRun(context.Background(), &models.Run{
		ID:        runID,
		DocsURL:   "https://docs.example.com",
		Status:    models.RunStatusQueued,
		StartedAt: time.Now(),
	}))
	hub := NewHub()
	return NewPublisher(st, hub, nil), hub, st
}

func TestPublisher_PersistsAndBroadcasts(t *testing.T) {
	pub, hub, st := newPublisherFixture(t, "run-1")
	ctx := context.Background()

	live, cancel := hub.Subscribe("run-1")
	defer cancel()

	id, err := pub.Publish(ctx, "run-1", models.EventRunIngesting, models.EventPayload{Message: "ingesting"})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	// Persisted with the run id stamped into the payload.
	persisted, err := st.GetRunEventsAfter(ctx, "run-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, models.EventRunIngesting, persisted[0].EventType)
	assert.Equal(t, "run-1", persisted[0].Payload.RunID)
	assert.Equal(t, 1, persisted[0].Seq)

	// Broadcast to the hub.
	select {
	case event := <-live:
		assert.Equal(t, id, event.ID)
		assert.Equal(t, models.EventRunIngesting, event.EventType)
	case <-time.After(time.Second):
		t.Fatal("no event broadcast")
	}
}

func TestPublisher_PublishStatus(t *testing.T) {
	pub, _, st := newPublisherFixture(t, "run-1")
	ctx := context.Background()

	_, err := pub.PublishStatus(ctx, "run-1", models.RunStatusCompleted, "run finished")
	require.NoError(t, err)

	persisted, err := st.GetRunEventsAfter(ctx, "run-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, models.EventRunCompleted, persisted[0].EventType)
	assert.True(t, models.IsTerminalEvent(persisted[0].EventType))
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub()
	_, cancel := hub.Subscribe("run-1")
	defer cancel()

	// Overflow the buffer; Broadcast must never block the publisher.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*2; i++ {
			hub.Broadcast(models.RunEvent{ID: int64(i + 1), RunID: "run-1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on slow subscriber")
	}
}

func TestHub_CancelIsIdempotent(t *testing.T) {
	hub := NewHub()
	_, cancel := hub.Subscribe("run-1")
	assert.Equal(t, 1, hub.SubscriberCount("run-1"))

	cancel()
	cancel()
	assert.Equal(t, 0, hub.SubscriberCount("run-1"))
}
