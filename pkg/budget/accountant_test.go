package budget

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhiyaancnirmal/mintaborate/pkg/costing"
	"github.com/dhiyaancnirmal/mintaborate/pkg/llm"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/store"
)

func fixture(t *testing.T, cfg models.RunConfig) (*Accountant, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, st.CreateRun(ctx, &models.Run{
		ID: "run-1", Status: models.RunStatusRunning, StartedAt: time.Now(), Config: cfg,
	}))
	require.NoError(t, st.CreateTaskExecution(ctx, &models.TaskExecution{
		ID: "exec-1", RunID: "run-1", TaskID: "task-1", WorkerID: "w-1",
		Phase: models.PhaseBaseline, Status: models.TaskStatusRunning,
	}))
	pricer := costing.FlatPricer{Pricing: costing.ModelPricing{InputPer1M: 1, OutputPer1M: 1}}
	return NewAccountant(st, pricer, cfg, "run-1", "exec-1"), st
}

func baseConfig() models.RunConfig {
	return models.RunConfig{
		MaxStepsPerTask:  3,
		MaxTokensPerTask: 1000,
		HardCostCapUSD:   5,
	}
}

func TestAccountant_StepLimitAtIterationTop(t *testing.T) {
	acct, st := fixture(t, baseConfig())
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		step, stop, err := acct.BeginIteration(ctx)
		require.NoError(t, err)
		assert.Nil(t, stop)
		assert.Equal(t, i, step)
	}

	_, stop, err := acct.BeginIteration(ctx)
	require.NoError(t, err)
	require.NotNil(t, stop)
	assert.Equal(t, models.StopReasonStepLimit, *stop)

	execs, err := st.GetTaskExecutions(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, execs, 1)
	assert.Equal(t, 3, execs[0].StepCount)
}

func TestAccountant_TokenLimitBeatsCancellation(t *testing.T) {
	acct, st := fixture(t, baseConfig())
	ctx := context.Background()

	// Run is canceled AND tokens are exhausted by the same call: the token
	// limit wins the precedence check.
	require.NoError(t, st.UpdateRunStatus(ctx, "run-1", models.RunStatusCanceled))

	_, stop, err := acct.ApplyUsage(ctx, "gpt-4o", llm.Usage{InputTokens: 800, OutputTokens: 300})
	require.NoError(t, err)
	require.NotNil(t, stop)
	assert.Equal(t, models.StopReasonTokenLimit, *stop)
}

func TestAccountant_CancellationBeatsCostCap(t *testing.T) {
	cfg := baseConfig()
	cfg.HardCostCapUSD = 0.000001
	acct, st := fixture(t, cfg)
	ctx := context.Background()

	require.NoError(t, st.UpdateRunStatus(ctx, "run-1", models.RunStatusCanceled))

	_, stop, err := acct.ApplyUsage(ctx, "gpt-4o", llm.Usage{InputTokens: 10, OutputTokens: 10})
	require.NoError(t, err)
	require.NotNil(t, stop)
	assert.Equal(t, models.StopReasonCancelled, *stop)
}

func TestAccountant_CostCapSharedAcrossRun(t *testing.T) {
	cfg := baseConfig()
	cfg.HardCostCapUSD = 0.001
	acct, st := fixture(t, cfg)
	ctx := context.Background()

	// Another execution already spent most of the run budget.
	_, err := st.IncrementRunCost(ctx, "run-1", 0.00099)
	require.NoError(t, err)

	_, stop, err := acct.ApplyUsage(ctx, "gpt-4o", llm.Usage{InputTokens: 100, OutputTokens: 100})
	require.NoError(t, err)
	require.NotNil(t, stop)
	assert.Equal(t, models.StopReasonCostLimit, *stop)
}

func TestAccountant_NoStopWithinBudget(t *testing.T) {
	acct, st := fixture(t, baseConfig())
	ctx := context.Background()

	cost, stop, err := acct.ApplyUsage(ctx, "gpt-4o", llm.Usage{InputTokens: 100, OutputTokens: 50})
	require.NoError(t, err)
	assert.Nil(t, stop)
	assert.InDelta(t, 150.0/1e6, cost, 1e-12)

	execs, err := st.GetTaskExecutions(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 100, execs[0].TokensIn)
	assert.Equal(t, 50, execs[0].TokensOut)

	run, err := st.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.InDelta(t, cost, run.CostEstimate, 1e-12)
}

func TestAccountant_Remaining(t *testing.T) {
	acct, _ := fixture(t, baseConfig())
	ctx := context.Background()

	_, _, err := acct.BeginIteration(ctx)
	require.NoError(t, err)
	_, _, err = acct.ApplyUsage(ctx, "gpt-4o", llm.Usage{InputTokens: 300, OutputTokens: 100})
	require.NoError(t, err)

	remaining := acct.Remaining()
	assert.Equal(t, 2, remaining.Steps)
	assert.Equal(t, 600, remaining.Tokens)
	assert.Greater(t, remaining.CostUSD, 0.0)

	// Overshoot clamps to zero.
	_, _, err = acct.ApplyUsage(ctx, "gpt-4o", llm.Usage{InputTokens: 900, OutputTokens: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, acct.Remaining().Tokens)
}
