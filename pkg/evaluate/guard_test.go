package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/retrieval"
)

const guardDocText = "Install the CLI with npm install -g acme. Then run acme login to authenticate."

func newGuardIndex(t *testing.T) (*retrieval.Index, models.Citation) {
	t.Helper()
	idx := retrieval.BuildIndex([]models.Artifact{{
		ArtifactType: models.ArtifactTypePage,
		SourceURL:    "https://docs.acme.dev/install",
		Content:      guardDocText,
	}})
	require.Equal(t, 1, idx.Size())
	return idx, models.Citation{
		Source:      "https://docs.acme.dev/install",
		SnippetHash: retrieval.SnippetHash(guardDocText),
		Excerpt:     "npm install -g acme",
	}
}

func goodAttempt(citation models.Citation) models.Attempt {
	return models.Attempt{
		Answer:     "Install the CLI with npm install -g acme, then run acme login.",
		Steps:      []string{"Run npm install -g acme", "Run acme login"},
		Citations:  []models.Citation{citation},
		StepCount:  3,
		StopReason: models.StopReasonCompleted,
	}
}

func TestRunGuard_AllPass(t *testing.T) {
	idx, citation := newGuardIndex(t)
	task := models.Task{
		TaskID:          "task-1",
		Name:            "Install the CLI",
		ExpectedSignals: []string{"npm install", "acme login"},
	}

	result := RunGuard(task, goodAttempt(citation), "exec-1", idx)

	assert.Empty(t, result.Blocked)
	assert.Equal(t, noCaps(), result.Caps)
	require.Len(t, result.Checks, 5)
	for _, check := range result.Checks {
		assert.True(t, check.Passed, check.Name)
		assert.Zero(t, check.ScoreDelta, check.Name)
		assert.Equal(t, "exec-1", check.TaskExecutionID)
	}
}

func TestRunGuard_NoCitationsBlocksAndCaps(t *testing.T) {
	idx, citation := newGuardIndex(t)
	attempt := goodAttempt(citation)
	attempt.Citations = nil

	result := RunGuard(models.Task{TaskID: "task-1"}, attempt, "exec-1", idx)

	assert.Contains(t, result.Blocked, models.BlockMissingCitations)
	assert.NotContains(t, result.Blocked, models.BlockInvalidCitations)
	assert.Equal(t, 3.0, result.Caps.Groundedness)

	// Integrity is vacuously true with nothing to verify.
	for _, check := range result.Checks {
		if check.Name == CheckCitationIntegrity {
			assert.True(t, check.Passed)
		}
		if check.Name == CheckCitationPresence {
			assert.False(t, check.Passed)
			assert.Equal(t, 3.0, check.ScoreDelta)
		}
	}
}

func TestRunGuard_UnknownCitationBlocks(t *testing.T) {
	idx, citation := newGuardIndex(t)
	citation.SnippetHash = "deadbeefdeadbeef"

	result := RunGuard(models.Task{TaskID: "task-1"}, goodAttempt(citation), "exec-1", idx)

	assert.Contains(t, result.Blocked, models.BlockInvalidCitations)
	assert.Equal(t, 3.0, result.Caps.Groundedness)
}

func TestRunGuard_LowSignalCoverageCapsCompleteness(t *testing.T) {
	idx, citation := newGuardIndex(t)
	task := models.Task{
		TaskID:          "task-1",
		ExpectedSignals: []string{"npm install", "webhook secret", "rate limits", "oauth scopes"},
	}

	result := RunGuard(task, goodAttempt(citation), "exec-1", idx)

	// 1 of 4 matched, below the 0.45 threshold.
	assert.Empty(t, result.Blocked)
	assert.Equal(t, 6.0, result.Caps.Completeness)
}

func TestRunGuard_ShallowAttemptCapsActionability(t *testing.T) {
	idx, citation := newGuardIndex(t)

	attempt := goodAttempt(citation)
	attempt.Steps = []string{"Run npm install -g acme"}
	result := RunGuard(models.Task{TaskID: "task-1"}, attempt, "exec-1", idx)
	assert.Equal(t, 6.0, result.Caps.Actionability)

	// Two answer steps but a single loop iteration still fails depth.
	attempt = goodAttempt(citation)
	attempt.StepCount = 1
	result = RunGuard(models.Task{TaskID: "task-1"}, attempt, "exec-1", idx)
	assert.Equal(t, 6.0, result.Caps.Actionability)
}

func TestRunGuard_AbnormalStopCapsCorrectness(t *testing.T) {
	idx, citation := newGuardIndex(t)
	attempt := goodAttempt(citation)
	attempt.StopReason = models.StopReasonStepLimit

	result := RunGuard(models.Task{TaskID: "task-1"}, attempt, "exec-1", idx)

	assert.Empty(t, result.Blocked)
	assert.Equal(t, 8.0, result.Caps.Correctness)
}

func TestCriterionCaps_Apply(t *testing.T) {
	scores := models.CriterionScores{Completeness: 9, Correctness: 9, Groundedness: 9, Actionability: 9}
	caps := noCaps()
	caps.Groundedness = 3
	caps.Completeness = 6

	caps.Apply(&scores)

	assert.Equal(t, 6.0, scores.Completeness)
	assert.Equal(t, 9.0, scores.Correctness)
	assert.Equal(t, 3.0, scores.Groundedness)
	assert.Equal(t, 9.0, scores.Actionability)
}
