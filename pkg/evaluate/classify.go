package evaluate

import (
	"regexp"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// Rationale heuristics, tried in order when the judge's suggestion is not in
// the allowed set.
var rationalePatterns = []struct {
	re    *regexp.Regexp
	class models.FailureClass
}{
	{regexp.MustCompile(`(?i)outdated|deprecated`), models.FailureOutdatedContent},
	{regexp.MustCompile(`(?i)broken link|404`), models.FailureBrokenLinks},
	{regexp.MustCompile(`(?i)no example|missing example`), models.FailureMissingExamples},
	{regexp.MustCompile(`(?i)ambiguous|unclear`), models.FailureAmbiguousInstructions},
}

// Classify picks the failure class for a non-passing evaluation: the judge's
// suggestion when allowed, else rationale heuristics, else score shape.
func Classify(suggested, rationale string, scores models.CriterionScores) models.FailureClass {
	if fc := models.FailureClass(suggested); models.AllowedFailureClasses[fc] && fc != models.FailureNotApplicable {
		return fc
	}
	for _, p := range rationalePatterns {
		if p.re.MatchString(rationale) {
			return p.class
		}
	}
	if scores.Groundedness < 5 {
		return models.FailureMissingContent
	}
	if scores.Actionability < 6 && scores.Completeness < 6 {
		return models.FailureInsufficientDetail
	}
	return models.FailurePoorStructure
}

// FallbackEvaluation is the evaluation recorded for a task whose execution
// errored before it could be judged.
func FallbackEvaluation(runID, taskID string, phase models.Phase, judgeModel string) *models.TaskEvaluation {
	fc := models.FailurePoorStructure
	return &models.TaskEvaluation{
		RunID:           runID,
		TaskID:          taskID,
		Phase:           phase,
		CriterionScores: models.CriterionScores{},
		Pass:            false,
		QualityPass:     false,
		ValidityPass:    false,
		FailureClass:    &fc,
		Rationale:       "task execution failed before evaluation",
		JudgeModel:      judgeModel,
	}
}
