package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhiyaancnirmal/mintaborate/pkg/events"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/store"
)

func newStateMachine(t *testing.T, status models.RunStatus) (*StateMachine, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, st.CreateRun(context.Background(), &models.Run{
		ID:     "run-1",
		Status: status,
	}))
	return NewStateMachine(st, events.NewPublisher(st, events.NewHub(), nil)), st
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(models.RunStatusQueued, models.RunStatusIngesting))
	assert.True(t, CanTransition(models.RunStatusIngesting, models.RunStatusGeneratingTasks))
	assert.True(t, CanTransition(models.RunStatusGeneratingTasks, models.RunStatusRunning))
	assert.True(t, CanTransition(models.RunStatusRunning, models.RunStatusEvaluating))

	assert.False(t, CanTransition(models.RunStatusQueued, models.RunStatusRunning))
	assert.False(t, CanTransition(models.RunStatusEvaluating, models.RunStatusRunning))
	assert.False(t, CanTransition(models.RunStatusRunning, models.RunStatusCompleted))
}

func TestStateMachine_AdvancePublishesStatusEvent(t *testing.T) {
	ctx := context.Background()
	sm, st := newStateMachine(t, models.RunStatusQueued)

	require.NoError(t, sm.Advance(ctx, "run-1", models.RunStatusIngesting))

	run, err := st.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusIngesting, run.Status)

	evts, err := st.GetRunEventsAfter(ctx, "run-1", 0, 10)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, models.EventRunIngesting, evts[0].EventType)
}

func TestStateMachine_AdvanceRejectsIllegalEdge(t *testing.T) {
	sm, _ := newStateMachine(t, models.RunStatusQueued)
	err := sm.Advance(context.Background(), "run-1", models.RunStatusEvaluating)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "illegal run transition")
}

func TestStateMachine_AdvanceIsNoOpWhenTerminal(t *testing.T) {
	ctx := context.Background()
	sm, st := newStateMachine(t, models.RunStatusRunning)
	require.NoError(t, st.FinalizeRun(ctx, "run-1", models.RunStatusCanceled, nil, ""))

	require.NoError(t, sm.Advance(ctx, "run-1", models.RunStatusEvaluating))

	run, err := st.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCanceled, run.Status)
}

func TestStateMachine_CancelTerminalRunFails(t *testing.T) {
	ctx := context.Background()
	sm, st := newStateMachine(t, models.RunStatusRunning)
	require.NoError(t, st.FinalizeRun(ctx, "run-1", models.RunStatusCompleted, nil, ""))

	err := sm.Cancel(ctx, "run-1")
	assert.ErrorIs(t, err, store.ErrRunTerminal)
}

func TestStateMachine_CancelEmitsTerminalEvent(t *testing.T) {
	ctx := context.Background()
	sm, st := newStateMachine(t, models.RunStatusRunning)

	require.NoError(t, sm.Cancel(ctx, "run-1"))

	run, err := st.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCanceled, run.Status)
	require.NotNil(t, run.EndedAt)

	evts, err := st.GetRunEventsAfter(ctx, "run-1", 0, 10)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, models.EventRunCanceled, evts[0].EventType)
	assert.True(t, models.IsTerminalEvent(evts[0].EventType))
}
