package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhiyaancnirmal/mintaborate/pkg/costing"
	"github.com/dhiyaancnirmal/mintaborate/pkg/events"
	"github.com/dhiyaancnirmal/mintaborate/pkg/llm/llmtest"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/retrieval"
	"github.com/dhiyaancnirmal/mintaborate/pkg/store"
)

const loopDocText = "Authenticate by creating an API key in the dashboard.\n\nSend the key in the Authorization header on every request."

type loopFixture struct {
	store     *store.MemoryStore
	client    *llmtest.Client
	loop      *Loop
	cfg       models.RunConfig
	task      models.Task
	worker    models.Worker
	execution *models.TaskExecution
	index     *retrieval.Index
	citation  string // JSON fragment citing the first indexed chunk
}

func newLoopFixture(t *testing.T) *loopFixture {
	t.Helper()
	ctx := context.Background()

	st := store.NewMemoryStore()
	cfg := models.RunConfig{
		MaxStepsPerTask:  8,
		MaxTokensPerTask: 100000,
		HardCostCapUSD:   10,
	}
	require.NoError(t, st.CreateRun(ctx, &models.Run{
		ID:     "run-1",
		Status: models.RunStatusRunning,
		Config: cfg,
	}))

	execution := &models.TaskExecution{
		ID:     "exec-1",
		RunID:  "run-1",
		TaskID: "task-1",
		Phase:  models.PhaseBaseline,
		Status: models.TaskStatusRunning,
	}
	require.NoError(t, st.CreateTaskExecution(ctx, execution))

	artifact := models.Artifact{
		ArtifactType: models.ArtifactTypePage,
		SourceURL:    "https://docs.acme.dev/auth",
		Content:      loopDocText,
	}
	index := retrieval.BuildIndex([]models.Artifact{artifact})
	// Both paragraphs fit in one chunk, so the citable snippet is the full
	// document text.
	hash := retrieval.SnippetHash(loopDocText)

	client := llmtest.NewClient()
	return &loopFixture{
		store:  st,
		client: client,
		loop:   NewLoop(st, client, events.NewPublisher(st, events.NewHub(), nil), costing.FlatPricer{Pricing: costing.ModelPricing{InputPer1M: 0.5, OutputPer1M: 2.0}}),
		cfg:    cfg,
		task: models.Task{
			TaskID:          "task-1",
			RunID:           "run-1",
			Name:            "Authenticate",
			Description:     "Authenticate an API request.",
			ExpectedSignals: []string{"api key", "authorization header"},
		},
		worker: models.Worker{
			ID:          "worker-1",
			RunID:       "run-1",
			WorkerLabel: "worker-1",
			ModelConfig: models.ModelConfig{Provider: "openai", Model: "gpt-5"},
		},
		execution: execution,
		index:     index,
		citation:  `{"source": "https://docs.acme.dev/auth", "snippetHash": "` + hash + `", "excerpt": "creating an API key"}`,
	}
}

func (f *loopFixture) scriptIteration(answer string, done bool, shouldContinue bool) {
	f.client.AddRouted("agent_plan", llmtest.Entry{Text: `{"planItems": ["find the auth docs", "write the answer"]}`})
	f.client.AddRouted("agent_act", llmtest.Entry{Text: `{
		"answer": "` + answer + `",
		"stepOutput": "Read the auth page.",
		"citations": [` + f.citation + `],
		"done": ` + boolJSON(done) + `,
		"discoveredFacts": ["keys are created in the dashboard"]
	}`})
	f.client.AddRouted("agent_reflect", llmtest.Entry{Text: `{
		"shouldContinue": ` + boolJSON(shouldContinue) + `,
		"summary": "covered authentication",
		"confidence": 0.8
	}`})
}

func boolJSON(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

const coveringAnswer = "Create an API key and send it in the Authorization header."

func TestLoop_CompletesWhenActDone(t *testing.T) {
	f := newLoopFixture(t)
	f.scriptIteration(coveringAnswer, true, false)

	result, err := f.loop.Run(context.Background(), f.cfg, f.task, f.worker, f.execution, f.index)
	require.NoError(t, err)

	assert.Equal(t, models.StopReasonCompleted, result.StopReason)
	assert.True(t, result.Evaluate)
	assert.Equal(t, coveringAnswer, result.Attempt.Answer)
	assert.Equal(t, 1, result.Attempt.StepCount)
	require.Len(t, result.Attempt.Citations, 1)
	assert.Equal(t, "https://docs.acme.dev/auth", result.Attempt.Citations[0].Source)

	// Four step traces per iteration, with citations under the act step.
	steps, err := f.store.GetTaskSteps(context.Background(), "exec-1")
	require.NoError(t, err)
	require.Len(t, steps, 4)
	assert.Equal(t, models.StepPhaseRetrieve, steps[0].Phase)
	assert.Equal(t, models.StepPhaseReflect, steps[3].Phase)
	assert.NotEmpty(t, steps[0].Retrieval)

	memory, err := f.store.GetTaskAgentState(context.Background(), "exec-1")
	require.NoError(t, err)
	assert.Contains(t, memory.Facts, "keys are created in the dashboard")
	assert.Contains(t, memory.VisitedSources[0], "https://docs.acme.dev/auth#")
}

func TestLoop_OverridesEarlyStop(t *testing.T) {
	f := newLoopFixture(t)
	// First iteration wants to stop at stepIndex 1 without being done;
	// the override forces a second iteration.
	f.scriptIteration(coveringAnswer, false, false)
	f.scriptIteration(coveringAnswer, true, false)

	result, err := f.loop.Run(context.Background(), f.cfg, f.task, f.worker, f.execution, f.index)
	require.NoError(t, err)

	assert.Equal(t, models.StopReasonCompleted, result.StopReason)
	assert.Equal(t, 2, result.Attempt.StepCount)

	steps, err := f.store.GetTaskSteps(context.Background(), "exec-1")
	require.NoError(t, err)
	require.Len(t, steps, 8)
	require.NotNil(t, steps[3].Decision)
	assert.True(t, steps[3].Decision.Overridden)
	assert.True(t, steps[3].Decision.ShouldContinue)
}

func TestLoop_StopsWhenModelDeclinesToContinue(t *testing.T) {
	f := newLoopFixture(t)
	f.scriptIteration(coveringAnswer, false, false)
	// Second iteration: not done, model stops, coverage and citations are
	// fine and stepIndex is 2, so the override does not fire.
	f.scriptIteration(coveringAnswer, false, false)

	result, err := f.loop.Run(context.Background(), f.cfg, f.task, f.worker, f.execution, f.index)
	require.NoError(t, err)

	assert.Equal(t, models.StopReasonCompleted, result.StopReason)
	assert.Equal(t, 2, result.Attempt.StepCount)
}

func TestLoop_TokenLimitStopsMidIteration(t *testing.T) {
	f := newLoopFixture(t)
	// Each scripted call costs 15 tokens, so the budget is gone after plan.
	f.cfg.MaxTokensPerTask = 15
	f.scriptIteration(coveringAnswer, false, true)

	result, err := f.loop.Run(context.Background(), f.cfg, f.task, f.worker, f.execution, f.index)
	require.NoError(t, err)

	// The plan call alone exhausts the token budget.
	assert.Equal(t, models.StopReasonTokenLimit, result.StopReason)
	assert.True(t, result.Evaluate)
	assert.Empty(t, result.Attempt.Answer)

	steps, err := f.store.GetTaskSteps(context.Background(), "exec-1")
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, models.StepPhasePlan, steps[1].Phase)
}

func TestLoop_StepLimit(t *testing.T) {
	f := newLoopFixture(t)
	f.cfg.MaxStepsPerTask = 1
	f.scriptIteration(coveringAnswer, false, true)

	result, err := f.loop.Run(context.Background(), f.cfg, f.task, f.worker, f.execution, f.index)
	require.NoError(t, err)

	assert.Equal(t, models.StopReasonStepLimit, result.StopReason)
	assert.True(t, result.Evaluate)
	assert.Equal(t, 1, result.Attempt.StepCount)
	assert.Equal(t, coveringAnswer, result.Attempt.Answer)
}

func TestLoop_ObservesCancellationAtIterationTop(t *testing.T) {
	f := newLoopFixture(t)
	require.NoError(t, f.store.FinalizeRun(context.Background(), "run-1", models.RunStatusCanceled, nil, ""))

	result, err := f.loop.Run(context.Background(), f.cfg, f.task, f.worker, f.execution, f.index)
	require.NoError(t, err)

	assert.Equal(t, models.StopReasonCancelled, result.StopReason)
	assert.False(t, result.Evaluate)
	assert.Zero(t, result.Attempt.StepCount)
}

func TestLoop_PlanErrorSurfaces(t *testing.T) {
	f := newLoopFixture(t)
	f.client.AddRouted("agent_plan", llmtest.Entry{Error: assert.AnError})

	_, err := f.loop.Run(context.Background(), f.cfg, f.task, f.worker, f.execution, f.index)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan call failed")
}
