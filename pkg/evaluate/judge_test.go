package evaluate

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhiyaancnirmal/mintaborate/pkg/llm/llmtest"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

func judgeModelConfig() models.ModelConfig {
	return models.ModelConfig{Provider: "openai", Model: "gpt-5"}
}

func alignmentJSON(supported bool, claims ...string) string {
	out := `{"isSupportedByEvidence": `
	if supported {
		out += "true"
	} else {
		out += "false"
	}
	out += `, "unsupportedClaims": [`
	for i, c := range claims {
		if i > 0 {
			out += ", "
		}
		out += `"` + c + `"`
	}
	return out + `]}`
}

func rubricJSON(completeness, correctness, groundedness, actionability float64, rationale string) string {
	score := func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
	return `{
		"scores": {
			"completeness": ` + score(completeness) + `,
			"correctness": ` + score(correctness) + `,
			"groundedness": ` + score(groundedness) + `,
			"actionability": ` + score(actionability) + `
		},
		"rationale": "` + rationale + `",
		"confidence": 0.9
	}`
}

func TestJudge_PassingEvaluation(t *testing.T) {
	client := llmtest.NewClient()
	client.AddRouted("judge_alignment", llmtest.Entry{Text: alignmentJSON(true)})
	client.AddRouted("judge_rubric", llmtest.Entry{Text: rubricJSON(9, 9, 9, 9, "solid answer")})

	judge := NewJudge(client, judgeModelConfig(), false)
	idx, citation := newGuardIndex(t)
	task := models.Task{RunID: "run-1", TaskID: "task-1", Name: "Install"}
	attempt := goodAttempt(citation)
	guard := RunGuard(task, attempt, "exec-1", idx)

	eval, usage, err := judge.Evaluate(context.Background(), task, attempt, nil, guard)
	require.NoError(t, err)

	assert.True(t, eval.Pass)
	assert.True(t, eval.QualityPass)
	assert.True(t, eval.ValidityPass)
	assert.Empty(t, eval.ValidityBlockedReasons)
	assert.Nil(t, eval.FailureClass)
	assert.Equal(t, 9.0, eval.CriterionScores.Average)
	assert.Equal(t, "gpt-5", eval.JudgeModel)
	assert.Equal(t, 0.9, eval.Confidence)
	assert.Equal(t, 20, usage.InputTokens)
	assert.Equal(t, []string{"judge_alignment", "judge_rubric"}, client.JSONCalls())
}

func TestJudge_UnsupportedAnswerBlocksPass(t *testing.T) {
	client := llmtest.NewClient()
	client.AddRouted("judge_alignment", llmtest.Entry{Text: alignmentJSON(false, "invented a --force flag")})
	client.AddRouted("judge_rubric", llmtest.Entry{Text: rubricJSON(9, 9, 9, 9, "plausible but unsupported")})

	judge := NewJudge(client, judgeModelConfig(), false)
	idx, citation := newGuardIndex(t)
	task := models.Task{RunID: "run-1", TaskID: "task-1"}
	attempt := goodAttempt(citation)
	guard := RunGuard(task, attempt, "exec-1", idx)

	eval, _, err := judge.Evaluate(context.Background(), task, attempt, nil, guard)
	require.NoError(t, err)

	assert.False(t, eval.Pass)
	assert.False(t, eval.ValidityPass)
	assert.Contains(t, eval.ValidityBlockedReasons, models.BlockUnsupportedAnswer)
	// Guardrails clamp correctness to 6 and groundedness to 5.
	assert.Equal(t, 6.0, eval.CriterionScores.Correctness)
	assert.Equal(t, 5.0, eval.CriterionScores.Groundedness)
	require.NotNil(t, eval.FailureClass)
}

func TestJudge_GuardCapsClampScores(t *testing.T) {
	client := llmtest.NewClient()
	client.AddRouted("judge_alignment", llmtest.Entry{Text: alignmentJSON(true)})
	client.AddRouted("judge_rubric", llmtest.Entry{Text: rubricJSON(9, 9, 9, 9, "generous judge")})

	judge := NewJudge(client, judgeModelConfig(), false)
	idx, citation := newGuardIndex(t)
	task := models.Task{RunID: "run-1", TaskID: "task-1"}
	attempt := goodAttempt(citation)
	attempt.StopReason = models.StopReasonStepLimit
	guard := RunGuard(task, attempt, "exec-1", idx)

	eval, _, err := judge.Evaluate(context.Background(), task, attempt, nil, guard)
	require.NoError(t, err)

	assert.Equal(t, 8.0, eval.CriterionScores.Correctness)
	assert.InDelta(t, 8.75, eval.CriterionScores.Average, 0.001)
	assert.True(t, eval.Pass)
}

func TestJudge_NoCitationsGuardrail(t *testing.T) {
	client := llmtest.NewClient()
	client.AddRouted("judge_alignment", llmtest.Entry{Text: alignmentJSON(true)})
	client.AddRouted("judge_rubric", llmtest.Entry{Text: rubricJSON(8, 8, 9, 8, "no evidence cited")})

	judge := NewJudge(client, judgeModelConfig(), false)
	idx, _ := newGuardIndex(t)
	task := models.Task{RunID: "run-1", TaskID: "task-1"}
	attempt := models.Attempt{
		Answer:     "Just install it.",
		Steps:      []string{"install", "login"},
		StepCount:  2,
		StopReason: models.StopReasonCompleted,
	}
	guard := RunGuard(task, attempt, "exec-1", idx)

	eval, _, err := judge.Evaluate(context.Background(), task, attempt, nil, guard)
	require.NoError(t, err)

	// Guardrail caps groundedness at 4, then the guard cap tightens it to 3.
	assert.Equal(t, 3.0, eval.CriterionScores.Groundedness)
	assert.False(t, eval.Pass)
	assert.Contains(t, eval.ValidityBlockedReasons, models.BlockMissingCitations)
}

func TestJudge_TieBreakAveragesSecondPass(t *testing.T) {
	client := llmtest.NewClient()
	client.AddRouted("judge_alignment", llmtest.Entry{Text: alignmentJSON(true)})
	client.AddRouted("judge_rubric", llmtest.Entry{Text: rubricJSON(7, 7, 7, 7, "borderline")})
	client.AddRouted("judge_rubric", llmtest.Entry{Text: rubricJSON(8, 8, 8, 8, "second opinion")})

	judge := NewJudge(client, judgeModelConfig(), true)
	idx, citation := newGuardIndex(t)
	task := models.Task{RunID: "run-1", TaskID: "task-1"}
	attempt := goodAttempt(citation)
	guard := RunGuard(task, attempt, "exec-1", idx)

	eval, usage, err := judge.Evaluate(context.Background(), task, attempt, nil, guard)
	require.NoError(t, err)

	assert.Equal(t, []string{"judge_alignment", "judge_rubric", "judge_rubric"}, client.JSONCalls())
	assert.Equal(t, 7.5, eval.CriterionScores.Completeness)
	assert.Equal(t, 7.5, eval.CriterionScores.Average)
	assert.True(t, eval.Pass)
	assert.Equal(t, 30, usage.InputTokens)
}

func TestJudge_NoTieBreakOutsideBand(t *testing.T) {
	client := llmtest.NewClient()
	client.AddRouted("judge_alignment", llmtest.Entry{Text: alignmentJSON(true)})
	client.AddRouted("judge_rubric", llmtest.Entry{Text: rubricJSON(9, 9, 9, 9, "clear pass")})

	judge := NewJudge(client, judgeModelConfig(), true)
	idx, citation := newGuardIndex(t)
	task := models.Task{RunID: "run-1", TaskID: "task-1"}
	attempt := goodAttempt(citation)
	guard := RunGuard(task, attempt, "exec-1", idx)

	_, _, err := judge.Evaluate(context.Background(), task, attempt, nil, guard)
	require.NoError(t, err)

	assert.Equal(t, []string{"judge_alignment", "judge_rubric"}, client.JSONCalls())
}
