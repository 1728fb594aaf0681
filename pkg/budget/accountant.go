// Package budget enforces the per-task and per-run spend limits during an
// agent loop. One Accountant tracks one task execution.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhiyaancnirmal/mintaborate/pkg/costing"
	"github.com/dhiyaancnirmal/mintaborate/pkg/llm"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/store"
)

// Accountant applies model-call usage to the execution and run counters and
// decides when the loop must stop. Token and step budgets are per task; the
// hard cost cap is shared by the whole run.
//
// Stop precedence after a model call is token_limit, then cancelled, then
// cost_limit. The step limit is only checked at the top of an iteration.
type Accountant struct {
	store       store.Store
	pricer      costing.Pricer
	runID       string
	executionID string

	maxSteps  int
	maxTokens int
	costCap   float64

	steps       int
	tokensUsed  int
	runCostSeen float64
}

// NewAccountant creates an Accountant for one execution.
func NewAccountant(st store.Store, pricer costing.Pricer, cfg models.RunConfig, runID, executionID string) *Accountant {
	return &Accountant{
		store:       st,
		pricer:      pricer,
		runID:       runID,
		executionID: executionID,
		maxSteps:    cfg.MaxStepsPerTask,
		maxTokens:   cfg.MaxTokensPerTask,
		costCap:     cfg.HardCostCapUSD,
	}
}

// BeginIteration claims the next loop iteration. It returns step_limit when
// the step budget is exhausted; otherwise it increments the step counters and
// returns the one-based step index.
func (a *Accountant) BeginIteration(ctx context.Context) (int, *models.StopReason, error) {
	if a.steps >= a.maxSteps {
		reason := models.StopReasonStepLimit
		return a.steps, &reason, nil
	}
	a.steps++
	if err := a.store.UpdateTaskExecutionProgress(ctx, a.executionID, models.ExecutionProgress{StepCount: 1}); err != nil {
		return 0, nil, fmt.Errorf("failed to record step: %w", err)
	}
	return a.steps, nil, nil
}

// ApplyUsage charges one model call against the budgets. It persists the
// execution delta, bumps the atomic run cost total and returns the stop
// reason the loop must honor, if any.
//
// The in-memory token tally is charged before any store write so the
// token_limit check stays decidable even when the run was just canceled:
// the terminal-run barrier on the progress write then reads as a
// cancellation signal, not a failure, and token_limit still wins over it.
func (a *Accountant) ApplyUsage(ctx context.Context, model string, usage llm.Usage) (float64, *models.StopReason, error) {
	cost := a.pricer.Cost(model, usage.InputTokens, usage.OutputTokens)
	a.tokensUsed += usage.InputTokens + usage.OutputTokens

	terminal := false
	err := a.store.UpdateTaskExecutionProgress(ctx, a.executionID, models.ExecutionProgress{
		TokensIn:     usage.InputTokens,
		TokensOut:    usage.OutputTokens,
		CostEstimate: cost,
	})
	switch {
	case errors.Is(err, store.ErrRunTerminal):
		terminal = true
	case err != nil:
		return cost, nil, fmt.Errorf("failed to apply usage: %w", err)
	default:
		runTotal, err := a.store.IncrementRunCost(ctx, a.runID, cost)
		if err != nil {
			return cost, nil, fmt.Errorf("failed to increment run cost: %w", err)
		}
		a.runCostSeen = runTotal
	}

	if a.tokensUsed >= a.maxTokens {
		reason := models.StopReasonTokenLimit
		return cost, &reason, nil
	}
	if terminal {
		reason := models.StopReasonCancelled
		return cost, &reason, nil
	}
	canceled, err := a.store.IsRunCanceled(ctx, a.runID)
	if err != nil {
		return cost, nil, fmt.Errorf("failed to check cancellation: %w", err)
	}
	if canceled {
		reason := models.StopReasonCancelled
		return cost, &reason, nil
	}
	if a.runCostSeen >= a.costCap {
		reason := models.StopReasonCostLimit
		return cost, &reason, nil
	}
	return cost, nil, nil
}

// Remaining reports the budget left for the agent's memory snapshot. Values
// never go negative.
func (a *Accountant) Remaining() models.RemainingBudget {
	return models.RemainingBudget{
		Steps:   max(0, a.maxSteps-a.steps),
		Tokens:  max(0, a.maxTokens-a.tokensUsed),
		CostUSD: max(0, a.costCap-a.runCostSeen),
	}
}

// Steps returns the number of iterations claimed so far.
func (a *Accountant) Steps() int {
	return a.steps
}
