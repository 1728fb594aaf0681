package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhiyaancnirmal/mintaborate/pkg/config"
	"github.com/dhiyaancnirmal/mintaborate/pkg/costing"
	"github.com/dhiyaancnirmal/mintaborate/pkg/events"
	"github.com/dhiyaancnirmal/mintaborate/pkg/ingest"
	"github.com/dhiyaancnirmal/mintaborate/pkg/llm"
	"github.com/dhiyaancnirmal/mintaborate/pkg/llm/llmtest"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/retrieval"
	"github.com/dhiyaancnirmal/mintaborate/pkg/store"
)

const orchDocText = "Authenticate by creating an API key in the dashboard.\n\n" +
	"Install the CLI and follow the quickstart to make your first call."

type stubIngestor struct {
	result *models.IngestResult
	err    error
}

func (s stubIngestor) Ingest(_ context.Context, _ string, _ ingest.Options) (*models.IngestResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type orchFixture struct {
	store    *store.MemoryStore
	client   *llmtest.Client
	orch     *Orchestrator
	citation string
}

func newOrchFixture(t *testing.T, ingestErr error) *orchFixture {
	t.Helper()
	st := store.NewMemoryStore()
	client := llmtest.NewClient()

	artifacts := []models.Artifact{{
		ArtifactType: models.ArtifactTypePage,
		SourceURL:    "https://docs.acme.dev/",
		Content:      orchDocText,
	}}
	ingestor := stubIngestor{
		result: &models.IngestResult{
			NormalizedDocsURL: "https://docs.acme.dev/",
			Artifacts:         artifacts,
		},
		err: ingestErr,
	}

	// Both paragraphs land in one chunk, so the citable snippet is the full
	// document text.
	hash := retrieval.SnippetHash(orchDocText)
	return &orchFixture{
		store:  st,
		client: client,
		orch: New(
			st,
			events.NewPublisher(st, events.NewHub(), nil),
			client,
			ingestor,
			costing.FlatPricer{Pricing: costing.ModelPricing{InputPer1M: 0.5, OutputPer1M: 2.0}},
			nil,
		),
		citation: `{"source": "https://docs.acme.dev/", "snippetHash": "` + hash + `", "excerpt": "creating an API key"}`,
	}
}

// scriptTask scripts one full single-iteration task: plan, act (done), reflect,
// then a passing or failing judge pass.
func (f *orchFixture) scriptTask(answer string, rubricJSON string) {
	f.client.AddRouted("agent_plan", llmtest.Entry{Text: `{"planItems": ["find the docs", "answer"]}`})
	f.client.AddRouted("agent_act", llmtest.Entry{Text: `{
		"answer": "` + answer + `",
		"stepOutput": "Read the docs page.",
		"citations": [` + f.citation + `],
		"done": true
	}`})
	f.client.AddRouted("agent_reflect", llmtest.Entry{Text: `{"shouldContinue": false, "summary": "done", "confidence": 0.9}`})
	f.client.AddRouted("judge_alignment", llmtest.Entry{Text: `{"isSupportedByEvidence": true, "unsupportedClaims": []}`})
	f.client.AddRouted("judge_rubric", llmtest.Entry{Text: rubricJSON})
}

const passingRubric = `{
	"scores": {"completeness": 9, "correctness": 9, "groundedness": 9, "actionability": 9},
	"rationale": "clear and grounded",
	"confidence": 0.9
}`

const failingRubric = `{
	"scores": {"completeness": 4, "correctness": 4, "groundedness": 4, "actionability": 4},
	"rationale": "thin answer",
	"confidence": 0.8,
	"suggestedFailureClass": "missing_examples"
}`

const authAnswer = "Create an API key and send it in the Authorization header."
const quickstartAnswer = "Install the CLI, then follow the quickstart to make the first call."

func TestOrchestrator_HappyPathCompletesRun(t *testing.T) {
	ctx := context.Background()
	f := newOrchFixture(t, nil)
	f.scriptTask(authAnswer, passingRubric)
	f.scriptTask(quickstartAnswer, passingRubric)

	run, err := f.orch.CreateRun(ctx, config.CreateRunRequest{
		DocsURL:   "https://docs.acme.dev",
		TaskCount: 2,
		Workers:   &config.WorkersRequest{WorkerCount: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusQueued, run.Status)

	f.orch.drive(ctx, run.ID)

	final, err := f.store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, final.Status)
	require.NotNil(t, final.EndedAt)
	require.NotNil(t, final.Totals)
	assert.Equal(t, 2, final.Totals.TotalTasks)
	assert.Equal(t, 2, final.Totals.PassedTasks)
	assert.Equal(t, 0, final.Totals.FailedTasks)
	assert.InDelta(t, 1.0, final.Totals.PassRate, 1e-9)
	assert.Greater(t, final.CostEstimate, 0.0)

	tasks, err := f.store.GetRunTasks(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, models.TaskStatusPassed, task.Status)
	}

	workers, err := f.store.GetRunWorkers(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, workers, 1)
	assert.Equal(t, "worker-1", workers[0].WorkerLabel)
	assert.Equal(t, models.WorkerStatusDone, workers[0].Status)

	executions, err := f.store.GetTaskExecutions(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, executions, 2)
	var execCost float64
	var execTokens int
	for _, exec := range executions {
		assert.Equal(t, models.TaskStatusPassed, exec.Status)
		assert.Equal(t, models.StopReasonCompleted, exec.StopReason)
		execCost += exec.CostEstimate
		execTokens += exec.TokensIn + exec.TokensOut
	}
	// Judge spend is attributed to the execution it evaluated, so the run
	// total is exactly the sum of execution costs.
	assert.InDelta(t, execCost, final.CostEstimate, 1e-12)
	assert.Greater(t, execTokens, 0)

	// Event stream: dense per-run seq, run.queued first, one terminal event
	// last.
	evts, err := f.store.GetRunEventsAfter(ctx, run.ID, 0, 1000)
	require.NoError(t, err)
	require.NotEmpty(t, evts)
	for i, e := range evts {
		assert.Equal(t, i+1, e.Seq)
	}
	assert.Equal(t, models.EventRunQueued, evts[0].EventType)
	assert.Equal(t, models.EventRunCompleted, evts[len(evts)-1].EventType)
	terminal := 0
	for _, e := range evts {
		if models.IsTerminalEvent(e.EventType) {
			terminal++
		}
	}
	assert.Equal(t, 1, terminal)

	// No skill session when optimization is disabled.
	_, err = f.store.GetSkillSession(ctx, run.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestOrchestrator_OptimizationUplift(t *testing.T) {
	ctx := context.Background()
	f := newOrchFixture(t, nil)
	enabled := true

	// Baseline fails on rubric scores, optimized passes after the skill
	// rewrite.
	f.scriptTask(authAnswer, failingRubric)
	f.client.AddRouted("skill_generation", llmtest.Entry{Text: `{
		"optimizedSkillMarkdown": "# Purpose\nx\n# Retrieval Strategy\nx\n# Critical Workflows\nx\n# Failure Prevention\nx\n# Verification Checklist\nx",
		"optimizationNotes": ["added auth walkthrough"]
	}`})
	f.scriptTask(authAnswer, passingRubric)

	run, err := f.orch.CreateRun(ctx, config.CreateRunRequest{
		DocsURL:                 "https://docs.acme.dev",
		TaskCount:               1,
		Workers:                 &config.WorkersRequest{WorkerCount: 1},
		EnableSkillOptimization: &enabled,
	})
	require.NoError(t, err)

	f.orch.drive(ctx, run.ID)

	final, err := f.store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, final.Status)
	require.NotNil(t, final.Totals)
	assert.Equal(t, 1, final.Totals.PassedTasks)

	session, err := f.store.GetSkillSession(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SkillSessionCompleted, session.Status)
	assert.Equal(t, models.SkillOriginNone, session.SourceSkillOrigin)
	assert.NotEmpty(t, session.OptimizedSkillHash)
	require.NotNil(t, session.BaselineTotals)
	assert.Equal(t, 1, session.BaselineTotals.FailedTasks)
	require.NotNil(t, session.OptimizedTotals)
	assert.Equal(t, 1, session.OptimizedTotals.PassedTasks)
	require.NotNil(t, session.Delta)
	assert.InDelta(t, 1.0, session.Delta.PassRateDelta, 1e-9)

	// Skill-generation spend lands on the session; the run total stays the
	// sum of execution costs.
	assert.Equal(t, 10, session.TokensIn)
	assert.Equal(t, 5, session.TokensOut)
	assert.Greater(t, session.CostEstimate, 0.0)
	executions, err := f.store.GetTaskExecutions(ctx, run.ID)
	require.NoError(t, err)
	var execCost float64
	for _, exec := range executions {
		execCost += exec.CostEstimate
	}
	assert.InDelta(t, execCost, final.CostEstimate, 1e-12)

	// The optimized artifact set carries the generated skill.
	artifacts, err := f.store.GetRunArtifacts(ctx, run.ID)
	require.NoError(t, err)
	var skillCount int
	for _, a := range artifacts {
		if a.ArtifactType == models.ArtifactTypeSkill {
			skillCount++
			assert.Equal(t, session.OptimizedSkillHash, a.ContentHash)
		}
	}
	assert.Equal(t, 1, skillCount)

	baseline, err := f.store.ListTaskEvaluations(ctx, run.ID, models.PhaseBaseline)
	require.NoError(t, err)
	require.Len(t, baseline, 1)
	require.NotNil(t, baseline[0].FailureClass)
	assert.Equal(t, models.FailureMissingExamples, *baseline[0].FailureClass)
}

func TestOrchestrator_AllPassedSkipsSkillGeneration(t *testing.T) {
	ctx := context.Background()
	f := newOrchFixture(t, nil)
	enabled := true
	f.scriptTask(authAnswer, passingRubric)

	run, err := f.orch.CreateRun(ctx, config.CreateRunRequest{
		DocsURL:                 "https://docs.acme.dev",
		TaskCount:               1,
		Workers:                 &config.WorkersRequest{WorkerCount: 1},
		EnableSkillOptimization: &enabled,
	})
	require.NoError(t, err)

	f.orch.drive(ctx, run.ID)

	final, err := f.store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, final.Status)

	session, err := f.store.GetSkillSession(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SkillSessionSkipped, session.Status)
	assert.Empty(t, session.OptimizedSkillHash)

	optimized, err := f.store.ListTaskEvaluations(ctx, run.ID, models.PhaseOptimized)
	require.NoError(t, err)
	assert.Empty(t, optimized)
}

func TestOrchestrator_SkillGenerationFailureKeepsBaseline(t *testing.T) {
	ctx := context.Background()
	f := newOrchFixture(t, nil)
	enabled := true
	f.scriptTask(authAnswer, failingRubric)
	f.client.AddRouted("skill_generation", llmtest.Entry{Error: assert.AnError})

	run, err := f.orch.CreateRun(ctx, config.CreateRunRequest{
		DocsURL:                 "https://docs.acme.dev",
		TaskCount:               1,
		Workers:                 &config.WorkersRequest{WorkerCount: 1},
		EnableSkillOptimization: &enabled,
	})
	require.NoError(t, err)

	f.orch.drive(ctx, run.ID)

	final, err := f.store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, final.Status)
	require.NotNil(t, final.Totals)
	assert.Equal(t, 1, final.Totals.FailedTasks)

	session, err := f.store.GetSkillSession(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SkillSessionError, session.Status)
	assert.NotEmpty(t, session.ErrorMessage)

	runErrors, err := f.store.ListRunErrors(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, runErrors, 1)
	assert.Equal(t, models.RunErrorSkillOptimization, runErrors[0].Code)
}

func TestOrchestrator_CostCapSkipsTasksWithoutEvaluation(t *testing.T) {
	ctx := context.Background()
	f := newOrchFixture(t, nil)

	// The first plan call alone crosses the cap; the second task is skipped
	// before any model call.
	f.client.AddRouted("agent_plan", llmtest.Entry{Text: `{"planItems": ["look around"]}`})

	run, err := f.orch.CreateRun(ctx, config.CreateRunRequest{
		DocsURL:        "https://docs.acme.dev",
		TaskCount:      2,
		HardCostCapUSD: 0.00001,
		Workers:        &config.WorkersRequest{WorkerCount: 1},
	})
	require.NoError(t, err)

	f.orch.drive(ctx, run.ID)

	final, err := f.store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, final.Status)
	require.NotNil(t, final.Totals)
	assert.Equal(t, 0, final.Totals.TotalTasks)

	executions, err := f.store.GetTaskExecutions(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, executions, 2)
	for _, exec := range executions {
		assert.Equal(t, models.TaskStatusSkipped, exec.Status)
		assert.Equal(t, models.StopReasonCostLimit, exec.StopReason)
	}

	evals, err := f.store.ListTaskEvaluations(ctx, run.ID, models.PhaseBaseline)
	require.NoError(t, err)
	assert.Empty(t, evals)
}

func TestOrchestrator_TaskErrorRecordsFallbackAndContinues(t *testing.T) {
	ctx := context.Background()
	f := newOrchFixture(t, nil)

	// Task 1 errors in its plan call; task 2 completes normally.
	f.client.AddRouted("agent_plan", llmtest.Entry{Error: assert.AnError})
	f.scriptTask(quickstartAnswer, passingRubric)

	run, err := f.orch.CreateRun(ctx, config.CreateRunRequest{
		DocsURL:   "https://docs.acme.dev",
		TaskCount: 2,
		Workers:   &config.WorkersRequest{WorkerCount: 1},
	})
	require.NoError(t, err)

	f.orch.drive(ctx, run.ID)

	final, err := f.store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, final.Status)
	require.NotNil(t, final.Totals)
	assert.Equal(t, 2, final.Totals.TotalTasks)
	assert.Equal(t, 1, final.Totals.PassedTasks)
	assert.Equal(t, 1, final.Totals.FailedTasks)

	runErrors, err := f.store.ListRunErrors(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, runErrors, 1)
	assert.Equal(t, models.RunErrorTaskExecution, runErrors[0].Code)

	evals, err := f.store.ListTaskEvaluations(ctx, run.ID, models.PhaseBaseline)
	require.NoError(t, err)
	require.Len(t, evals, 2)
}

func TestOrchestrator_CancellationStopsPhases(t *testing.T) {
	ctx := context.Background()
	f := newOrchFixture(t, nil)

	run, err := f.orch.CreateRun(ctx, config.CreateRunRequest{
		DocsURL:   "https://docs.acme.dev",
		TaskCount: 1,
		Workers:   &config.WorkersRequest{WorkerCount: 1},
	})
	require.NoError(t, err)

	// Move the run to the execution stage by hand, then cancel before the
	// pool picks up any task.
	require.NoError(t, f.store.PersistIngestionArtifacts(ctx, run.ID, []models.Artifact{{
		ArtifactType: models.ArtifactTypePage,
		SourceURL:    "https://docs.acme.dev/",
		Content:      orchDocText,
	}}))
	require.NoError(t, f.store.PersistTasks(ctx, run.ID, []models.Task{{
		TaskID: "task-1", RunID: run.ID, Name: "Authenticate", Status: models.TaskStatusPending,
	}}))
	_, err = f.store.EnsureRunWorkers(ctx, run.ID, provisionWorkers(run.ID, run.Config))
	require.NoError(t, err)
	require.NoError(t, f.store.UpdateRunStatus(ctx, run.ID, models.RunStatusIngesting))
	require.NoError(t, f.store.UpdateRunStatus(ctx, run.ID, models.RunStatusGeneratingTasks))
	require.NoError(t, f.store.UpdateRunStatus(ctx, run.ID, models.RunStatusRunning))
	run.Status = models.RunStatusRunning

	require.NoError(t, f.orch.CancelRun(ctx, run.ID))
	require.NoError(t, f.orch.executePhases(ctx, run))

	final, err := f.store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCanceled, final.Status)
	assert.Nil(t, final.Totals)
	require.NotNil(t, final.EndedAt)

	// No execution started, no evaluation written, one terminal event.
	executions, err := f.store.GetTaskExecutions(ctx, run.ID)
	require.NoError(t, err)
	assert.Empty(t, executions)

	evts, err := f.store.GetRunEventsAfter(ctx, run.ID, 0, 1000)
	require.NoError(t, err)
	terminal := 0
	for _, e := range evts {
		if models.IsTerminalEvent(e.EventType) {
			terminal++
		}
	}
	assert.Equal(t, 1, terminal)
}

// cancelAfterClient cancels the run after its n-th structured call returns,
// simulating a cancel request that lands while a task is mid-loop.
type cancelAfterClient struct {
	inner  llm.Client
	after  int
	calls  int
	cancel func()
}

func (c *cancelAfterClient) CompleteText(ctx context.Context, cfg models.ModelConfig, messages []llm.Message) (*llm.TextResult, error) {
	return c.inner.CompleteText(ctx, cfg, messages)
}

func (c *cancelAfterClient) CompleteJSON(ctx context.Context, cfg models.ModelConfig, messages []llm.Message, schema *llm.Schema, out any) (*llm.JSONResult, error) {
	res, err := c.inner.CompleteJSON(ctx, cfg, messages, schema, out)
	c.calls++
	if c.calls == c.after && c.cancel != nil {
		c.cancel()
	}
	return res, err
}

func TestOrchestrator_CancelMidTaskSettlesExecution(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	// Only the plan call is scripted: after cancellation the loop must stop
	// before act, and an unexpected call would fail the scripted client.
	scripted := llmtest.NewClient()
	scripted.AddRouted("agent_plan", llmtest.Entry{Text: `{"planItems": ["find the docs"]}`})
	wrapped := &cancelAfterClient{inner: scripted, after: 1}

	ingestor := stubIngestor{result: &models.IngestResult{
		NormalizedDocsURL: "https://docs.acme.dev/",
		Artifacts: []models.Artifact{{
			ArtifactType: models.ArtifactTypePage,
			SourceURL:    "https://docs.acme.dev/",
			Content:      orchDocText,
		}},
	}}
	orch := New(
		st,
		events.NewPublisher(st, events.NewHub(), nil),
		wrapped,
		ingestor,
		costing.FlatPricer{Pricing: costing.ModelPricing{InputPer1M: 0.5, OutputPer1M: 2.0}},
		nil,
	)

	run, err := orch.CreateRun(ctx, config.CreateRunRequest{
		DocsURL:   "https://docs.acme.dev",
		TaskCount: 1,
		Workers:   &config.WorkersRequest{WorkerCount: 1},
	})
	require.NoError(t, err)
	wrapped.cancel = func() { require.NoError(t, orch.CancelRun(ctx, run.ID)) }

	orch.drive(ctx, run.ID)

	final, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCanceled, final.Status)

	// The in-flight execution settles instead of stranding in running.
	executions, err := st.GetTaskExecutions(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, executions, 1)
	assert.Equal(t, models.TaskStatusSkipped, executions[0].Status)
	assert.Equal(t, models.StopReasonCancelled, executions[0].StopReason)
	require.NotNil(t, executions[0].CompletedAt)

	tasks, err := st.GetRunTasks(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, models.TaskStatusSkipped, tasks[0].Status)

	evals, err := st.ListTaskEvaluations(ctx, run.ID, "")
	require.NoError(t, err)
	assert.Empty(t, evals)

	evts, err := st.GetRunEventsAfter(ctx, run.ID, 0, 1000)
	require.NoError(t, err)
	terminal := 0
	for _, e := range evts {
		if models.IsTerminalEvent(e.EventType) {
			terminal++
		}
	}
	assert.Equal(t, 1, terminal)
}

func TestOrchestrator_IngestFailureFailsRun(t *testing.T) {
	ctx := context.Background()
	f := newOrchFixture(t, assert.AnError)

	run, err := f.orch.CreateRun(ctx, config.CreateRunRequest{
		DocsURL: "https://docs.acme.dev",
		Workers: &config.WorkersRequest{WorkerCount: 1},
	})
	require.NoError(t, err)

	f.orch.drive(ctx, run.ID)

	final, err := f.store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusFailed, final.Status)
	assert.Contains(t, final.ErrorMessage, "ingestion failed")

	runErrors, err := f.store.ListRunErrors(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, runErrors, 1)
	assert.Equal(t, models.RunErrorFatal, runErrors[0].Code)

	evts, err := f.store.GetRunEventsAfter(ctx, run.ID, 0, 100)
	require.NoError(t, err)
	require.NotEmpty(t, evts)
	assert.Equal(t, models.EventRunFailed, evts[len(evts)-1].EventType)
}

func TestOrchestrator_StartRunInBackgroundIsIdempotent(t *testing.T) {
	f := newOrchFixture(t, nil)
	f.scriptTask(authAnswer, passingRubric)

	run, err := f.orch.CreateRun(context.Background(), config.CreateRunRequest{
		DocsURL:   "https://docs.acme.dev",
		TaskCount: 1,
		Workers:   &config.WorkersRequest{WorkerCount: 1},
	})
	require.NoError(t, err)

	first := f.orch.StartRunInBackground(run.ID)
	second := f.orch.StartRunInBackground(run.ID)
	f.orch.Wait()

	assert.True(t, first)
	assert.False(t, second)

	final, err := f.store.GetRun(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, final.Status)
}

func TestProvisionWorkers(t *testing.T) {
	cfg := models.RunConfig{
		WorkerCount: 3,
		RunModel:    models.ModelConfig{Provider: "openai", Model: "gpt-4o-mini", TimeoutMs: 120000},
		Assignments: []models.WorkerAssignment{
			{Provider: "openai", Model: "gpt-4o", Quantity: 2},
			{Provider: "anthropic", Model: "claude-3-5-haiku-20241022", Quantity: 1,
				Overrides: &models.ModelConfig{Provider: "anthropic", Model: "claude-3-5-haiku-20241022", Temperature: 0.2, TimeoutMs: 60000}},
		},
	}

	workers := provisionWorkers("run-1", cfg)
	require.Len(t, workers, 3)
	assert.Equal(t, "worker-1", workers[0].WorkerLabel)
	assert.Equal(t, "worker-3", workers[2].WorkerLabel)
	assert.Equal(t, "gpt-4o", workers[0].ModelName)
	assert.Equal(t, 120000, workers[0].ModelConfig.TimeoutMs)
	assert.Equal(t, "anthropic", workers[2].ModelProvider)
	assert.InDelta(t, 0.2, workers[2].ModelConfig.Temperature, 1e-9)
	assert.Equal(t, 60000, workers[2].ModelConfig.TimeoutMs)
	for _, w := range workers {
		assert.Equal(t, models.WorkerStatusIdle, w.Status)
		assert.NotEmpty(t, w.ID)
	}
}

func TestOrchestrator_GetRunDetail(t *testing.T) {
	ctx := context.Background()
	f := newOrchFixture(t, nil)
	f.scriptTask(authAnswer, passingRubric)

	run, err := f.orch.CreateRun(ctx, config.CreateRunRequest{
		DocsURL:   "https://docs.acme.dev",
		TaskCount: 1,
		Workers:   &config.WorkersRequest{WorkerCount: 1},
	})
	require.NoError(t, err)
	f.orch.drive(ctx, run.ID)

	detail, err := f.orch.GetRunDetail(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, detail.Run.Status)
	assert.Len(t, detail.Tasks, 1)
	assert.Len(t, detail.Workers, 1)
	assert.Len(t, detail.Executions, 1)
	assert.Len(t, detail.Evaluations, 1)
	assert.Empty(t, detail.Errors)
	assert.Nil(t, detail.Skill)
}
