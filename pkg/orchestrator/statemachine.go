// Package orchestrator owns a run's lifecycle: the status state machine,
// the worker pool, the baseline/optimized phase executor, and the
// single-run background driver.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/dhiyaancnirmal/mintaborate/pkg/events"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/store"
)

// transitions is the allowed non-terminal status graph. Terminal statuses
// are written only by Finalize.
var transitions = map[models.RunStatus]map[models.RunStatus]bool{
	models.RunStatusQueued:          {models.RunStatusIngesting: true},
	models.RunStatusIngesting:       {models.RunStatusGeneratingTasks: true},
	models.RunStatusGeneratingTasks: {models.RunStatusRunning: true},
	models.RunStatusRunning:         {models.RunStatusEvaluating: true},
}

// CanTransition reports whether from → to is an allowed non-terminal edge.
func CanTransition(from, to models.RunStatus) bool {
	return transitions[from][to]
}

// StateMachine serializes run status writes and their companion events.
type StateMachine struct {
	store     store.Store
	publisher *events.Publisher
}

// NewStateMachine creates a StateMachine.
func NewStateMachine(st store.Store, publisher *events.Publisher) *StateMachine {
	return &StateMachine{store: st, publisher: publisher}
}

// Advance moves the run to the next non-terminal status and emits the
// matching run.<status> event. Once the run is terminal this is a no-op so
// an in-flight driver racing the finalizer cannot resurrect the run.
func (sm *StateMachine) Advance(ctx context.Context, runID string, to models.RunStatus) error {
	run, err := sm.store.GetRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to load run for transition: %w", err)
	}
	if run.Status.IsTerminal() {
		return nil
	}
	if !CanTransition(run.Status, to) {
		return fmt.Errorf("illegal run transition %s -> %s", run.Status, to)
	}
	if err := sm.store.UpdateRunStatus(ctx, runID, to); err != nil {
		return fmt.Errorf("failed to set run status %s: %w", to, err)
	}
	if _, err := sm.publisher.PublishStatus(ctx, runID, to, "run entered "+string(to)); err != nil {
		return err
	}
	return nil
}

// Finalize writes a terminal status with totals and emits the terminal
// event that ends the run's event stream.
func (sm *StateMachine) Finalize(ctx context.Context, runID string, status models.RunStatus, totals *models.Totals, errorMessage string) error {
	if err := sm.store.FinalizeRun(ctx, runID, status, totals, errorMessage); err != nil {
		return fmt.Errorf("failed to finalize run as %s: %w", status, err)
	}
	message := "run " + string(status)
	if errorMessage != "" {
		message = errorMessage
	}
	if _, err := sm.publisher.PublishStatus(ctx, runID, status, message); err != nil {
		return err
	}
	return nil
}

// Cancel flips a non-terminal run to canceled and emits run.canceled.
// Totals, if any evaluations exist, are attached by the driver when it
// observes the cancellation and re-finalizes.
func (sm *StateMachine) Cancel(ctx context.Context, runID string) error {
	run, err := sm.store.GetRun(ctx, runID)
	if err != nil {
		return err
	}
	if run.Status.IsTerminal() {
		return store.ErrRunTerminal
	}
	if err := sm.store.FinalizeRun(ctx, runID, models.RunStatusCanceled, nil, ""); err != nil {
		return fmt.Errorf("failed to cancel run: %w", err)
	}
	if _, err := sm.publisher.PublishStatus(ctx, runID, models.RunStatusCanceled, "run canceled by request"); err != nil {
		return err
	}
	return nil
}
