package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		suggested string
		rationale string
		scores    models.CriterionScores
		want      models.FailureClass
	}{
		{
			name:      "allowed suggestion wins",
			suggested: "broken_links",
			rationale: "the docs are outdated",
			want:      models.FailureBrokenLinks,
		},
		{
			name:      "unknown suggestion falls through to rationale",
			suggested: "bad_vibes",
			rationale: "several commands are deprecated in v2",
			want:      models.FailureOutdatedContent,
		},
		{
			name:      "rationale 404",
			rationale: "the setup link returns a 404",
			want:      models.FailureBrokenLinks,
		},
		{
			name:      "rationale missing example",
			rationale: "there is no example for the webhook flow",
			want:      models.FailureMissingExamples,
		},
		{
			name:      "rationale ambiguity",
			rationale: "the auth section is unclear about scopes",
			want:      models.FailureAmbiguousInstructions,
		},
		{
			name:      "low groundedness",
			rationale: "weak answer",
			scores:    models.CriterionScores{Groundedness: 4, Actionability: 8, Completeness: 8},
			want:      models.FailureMissingContent,
		},
		{
			name:      "shallow and incomplete",
			rationale: "weak answer",
			scores:    models.CriterionScores{Groundedness: 6, Actionability: 5, Completeness: 5},
			want:      models.FailureInsufficientDetail,
		},
		{
			name:      "default",
			rationale: "weak answer",
			scores:    models.CriterionScores{Groundedness: 6, Actionability: 7, Completeness: 7},
			want:      models.FailurePoorStructure,
		},
		{
			name:      "not_applicable suggestion is rejected",
			suggested: "not_applicable",
			rationale: "weak answer",
			scores:    models.CriterionScores{Groundedness: 6, Actionability: 7, Completeness: 7},
			want:      models.FailurePoorStructure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.suggested, tt.rationale, tt.scores))
		})
	}
}

func TestFallbackEvaluation(t *testing.T) {
	eval := FallbackEvaluation("run-1", "task-1", models.PhaseBaseline, "gpt-5")

	assert.False(t, eval.Pass)
	assert.False(t, eval.QualityPass)
	assert.False(t, eval.ValidityPass)
	assert.Equal(t, models.CriterionScores{}, eval.CriterionScores)
	if assert.NotNil(t, eval.FailureClass) {
		assert.Equal(t, models.FailurePoorStructure, *eval.FailureClass)
	}
}
