// Package agent drives the bounded retrieve/plan/act/reflect loop for one
// task execution. The loop is the sole writer of its execution's memory row
// and step traces.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dhiyaancnirmal/mintaborate/pkg/agent/prompt"
	"github.com/dhiyaancnirmal/mintaborate/pkg/budget"
	"github.com/dhiyaancnirmal/mintaborate/pkg/costing"
	"github.com/dhiyaancnirmal/mintaborate/pkg/events"
	"github.com/dhiyaancnirmal/mintaborate/pkg/llm"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/retrieval"
	"github.com/dhiyaancnirmal/mintaborate/pkg/store"
)

// retrieveTopK chunks feed each iteration.
const retrieveTopK = 8

// Loop executes tasks for workers. One Loop is shared by all workers of a
// run; per-execution state lives in Run locals.
type Loop struct {
	store     store.Store
	client    llm.Client
	publisher *events.Publisher
	pricer    costing.Pricer
}

// NewLoop creates a Loop.
func NewLoop(st store.Store, client llm.Client, publisher *events.Publisher, pricer costing.Pricer) *Loop {
	return &Loop{store: st, client: client, publisher: publisher, pricer: pricer}
}

// Result is the outcome of one execution's loop.
type Result struct {
	Attempt    models.Attempt
	StopReason models.StopReason

	// Evaluate is false when the execution must be skipped without a
	// judge pass (cost cap or cancellation).
	Evaluate bool
}

// loopState carries the attempt-in-progress across iterations.
type loopState struct {
	memory      models.AgentMemory
	lastAct     prompt.ActResult
	stepOutputs []string
}

// Run drives the loop for one (task, worker) pair until a budget, the model,
// or cancellation stops it. A run canceled mid-iteration surfaces through
// the store's terminal-run write barrier and is mapped to a cancelled stop.
// Model-call failures surface as errors; the caller records the fallback
// evaluation.
func (l *Loop) Run(ctx context.Context, cfg models.RunConfig, task models.Task, worker models.Worker, execution *models.TaskExecution, index *retrieval.Index) (*Result, error) {
	acct := budget.NewAccountant(l.store, l.pricer, cfg, task.RunID, execution.ID)
	state := &loopState{memory: models.AgentMemory{Goal: task.Name + ": " + task.Description}}

	reason, err := l.iterate(ctx, cfg, task, worker, execution, index, acct, state)
	if err != nil {
		if !errors.Is(err, store.ErrRunTerminal) {
			return nil, err
		}
		reason = models.StopReasonCancelled
	}

	attempt := models.Attempt{
		Answer:     state.lastAct.Answer,
		Steps:      state.stepOutputs,
		Citations:  toCitations(state.lastAct.Citations),
		StepCount:  acct.Steps(),
		StopReason: reason,
	}
	if err := l.store.PersistTaskAttempt(ctx, execution.ID, attempt); err != nil && !errors.Is(err, store.ErrRunTerminal) {
		return nil, fmt.Errorf("failed to persist attempt: %w", err)
	}

	evaluate := reason != models.StopReasonCostLimit && reason != models.StopReasonCancelled
	slog.Info("Agent loop finished",
		"run_id", task.RunID, "task_id", task.TaskID, "execution_id", execution.ID,
		"worker", worker.WorkerLabel, "stop_reason", reason, "steps", acct.Steps(), "evaluate", evaluate)
	return &Result{Attempt: attempt, StopReason: reason, Evaluate: evaluate}, nil
}

func (l *Loop) iterate(ctx context.Context, cfg models.RunConfig, task models.Task, worker models.Worker, execution *models.TaskExecution, index *retrieval.Index, acct *budget.Accountant, state *loopState) (models.StopReason, error) {
	for {
		canceled, err := l.store.IsRunCanceled(ctx, task.RunID)
		if err != nil {
			return "", fmt.Errorf("failed to check cancellation: %w", err)
		}
		if canceled {
			return models.StopReasonCancelled, nil
		}

		stepIndex, stop, err := acct.BeginIteration(ctx)
		if err != nil {
			return "", err
		}
		if stop != nil {
			return *stop, nil
		}

		// retrieve
		query := prompt.Query(task, state.memory)
		chunks := index.TopK(query, retrieveTopK)
		if _, err := l.persistStep(ctx, execution, stepIndex, models.StepPhaseRetrieve, query, "", chunks, nil, nil); err != nil {
			return "", err
		}

		// plan
		var planRes prompt.PlanResult
		planJSON, err := l.client.CompleteJSON(ctx, worker.ModelConfig, prompt.Plan(task, state.memory, chunks), prompt.PlanSchema, &planRes)
		if err != nil {
			return "", fmt.Errorf("plan call failed at step %d: %w", stepIndex, err)
		}
		planCost, stop, err := acct.ApplyUsage(ctx, worker.ModelConfig.Model, planJSON.Usage)
		if err != nil {
			return "", err
		}
		if _, err := l.persistStep(ctx, execution, stepIndex, models.StepPhasePlan, "", planJSON.Text, nil, stepUsage(planJSON, planCost), nil); err != nil {
			// The accountant's stop outranks the terminal barrier so a
			// token_limit crossed on a just-canceled run is not misreported.
			if stop != nil && errors.Is(err, store.ErrRunTerminal) {
				return *stop, nil
			}
			return "", err
		}
		if stop != nil {
			return *stop, nil
		}

		// act
		var actRes prompt.ActResult
		actJSON, err := l.client.CompleteJSON(ctx, worker.ModelConfig, prompt.Act(task, state.memory, planRes, chunks), prompt.ActSchema, &actRes)
		if err != nil {
			return "", fmt.Errorf("act call failed at step %d: %w", stepIndex, err)
		}
		actCost, stop, err := acct.ApplyUsage(ctx, worker.ModelConfig.Model, actJSON.Usage)
		if err != nil {
			return "", err
		}
		state.lastAct = actRes
		if out := strings.TrimSpace(actRes.StepOutput); out != "" {
			state.stepOutputs = append(state.stepOutputs, out)
		}
		actStepID, err := l.persistStep(ctx, execution, stepIndex, models.StepPhaseAct, "", actJSON.Text, chunks, stepUsage(actJSON, actCost), nil)
		if err != nil {
			if stop != nil && errors.Is(err, store.ErrRunTerminal) {
				return *stop, nil
			}
			return "", err
		}
		if len(actRes.Citations) > 0 {
			if err := l.store.PersistTaskStepCitations(ctx, actStepID, toCitations(actRes.Citations)); err != nil {
				return "", fmt.Errorf("failed to persist citations: %w", err)
			}
		}
		if stop != nil {
			return *stop, nil
		}

		// reflect
		var reflectRes prompt.ReflectResult
		reflectJSON, err := l.client.CompleteJSON(ctx, worker.ModelConfig, prompt.Reflect(task, state.memory, actRes), prompt.ReflectSchema, &reflectRes)
		if err != nil {
			return "", fmt.Errorf("reflect call failed at step %d: %w", stepIndex, err)
		}
		reflectCost, stop, err := acct.ApplyUsage(ctx, worker.ModelConfig.Model, reflectJSON.Usage)
		if err != nil {
			return "", err
		}

		overridden := false
		if !reflectRes.ShouldContinue && shouldOverrideContinue(task, actRes, stepIndex) {
			reflectRes.ShouldContinue = true
			overridden = true
		}
		decision := &models.StepDecision{
			ShouldContinue: reflectRes.ShouldContinue,
			Overridden:     overridden,
			StopReason:     reflectRes.StopReason,
			Confidence:     reflectRes.Confidence,
		}
		if _, err := l.persistStep(ctx, execution, stepIndex, models.StepPhaseReflect, "", reflectJSON.Text, nil, stepUsage(reflectJSON, reflectCost), decision); err != nil {
			if stop != nil && errors.Is(err, store.ErrRunTerminal) {
				return *stop, nil
			}
			return "", err
		}

		state.memory = updateMemory(state.memory, planRes, actRes, reflectRes, chunks, stepIndex, acct.Remaining())
		if err := l.store.UpsertTaskAgentState(ctx, execution.ID, state.memory); err != nil {
			if stop != nil && errors.Is(err, store.ErrRunTerminal) {
				return *stop, nil
			}
			return "", fmt.Errorf("failed to upsert agent state: %w", err)
		}

		// Termination precedence: budget stop, then act.done, then the
		// model's own stop decision. Loop exhaustion surfaces as step_limit
		// from the next BeginIteration.
		if stop != nil {
			return *stop, nil
		}
		if actRes.Done {
			return models.StopReasonCompleted, nil
		}
		if !reflectRes.ShouldContinue {
			return classifyStop(reflectRes.StopReason), nil
		}
	}
}

// persistStep writes one step trace and emits task.step.created.
func (l *Loop) persistStep(ctx context.Context, execution *models.TaskExecution, stepIndex int, phase models.StepPhase, input, output string, chunks []retrieval.Scored, usage *models.StepUsage, decision *models.StepDecision) (int64, error) {
	step := &models.StepTrace{
		TaskExecutionID: execution.ID,
		RunID:           execution.RunID,
		StepIndex:       stepIndex,
		Phase:           phase,
		Input:           input,
		Output:          output,
		Usage:           usage,
		Decision:        decision,
	}
	for _, c := range chunks {
		step.Retrieval = append(step.Retrieval, models.ChunkRef{
			Source:      c.Chunk.SourceURL,
			SnippetHash: c.Chunk.SnippetHash,
			Score:       c.Score,
		})
	}

	id, err := l.store.PersistTaskStep(ctx, step)
	if err != nil {
		return 0, fmt.Errorf("failed to persist %s step %d: %w", phase, stepIndex, err)
	}

	data, _ := json.Marshal(map[string]any{
		"taskExecutionId": execution.ID,
		"stepIndex":       stepIndex,
		"stepPhase":       phase,
	})
	if _, err := l.publisher.Publish(ctx, execution.RunID, models.EventTaskStepCreated, models.EventPayload{
		Phase:   execution.Phase,
		Message: fmt.Sprintf("step %d %s", stepIndex, phase),
		Data:    data,
	}); err != nil {
		return 0, fmt.Errorf("failed to publish step event: %w", err)
	}
	return id, nil
}

// classifyStop maps the model's free-form stop reason onto the closed set.
func classifyStop(reason string) models.StopReason {
	if strings.Contains(strings.ToLower(reason), "error") {
		return models.StopReasonError
	}
	return models.StopReasonCompleted
}

func stepUsage(res *llm.JSONResult, cost float64) *models.StepUsage {
	return &models.StepUsage{
		InputTokens:  res.Usage.InputTokens,
		OutputTokens: res.Usage.OutputTokens,
		CostEstimate: cost,
		LatencyMs:    res.LatencyMs,
	}
}

func toCitations(in []prompt.ActCitation) []models.Citation {
	out := make([]models.Citation, 0, len(in))
	for _, c := range in {
		out = append(out, models.Citation{
			Source:      c.Source,
			SnippetHash: c.SnippetHash,
			Excerpt:     c.Excerpt,
		})
	}
	return out
}
