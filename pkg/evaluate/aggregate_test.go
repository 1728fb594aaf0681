package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

func evalWith(pass, quality, validity bool, avg float64, fc *models.FailureClass) models.TaskEvaluation {
	return models.TaskEvaluation{
		Pass:            pass,
		QualityPass:     quality,
		ValidityPass:    validity,
		CriterionScores: models.CriterionScores{Average: avg},
		FailureClass:    fc,
	}
}

func TestAggregate_Empty(t *testing.T) {
	totals := Aggregate(nil)

	assert.Equal(t, 0, totals.TotalTasks)
	assert.Equal(t, 0.0, totals.PassRate)
	assert.Equal(t, 0.0, totals.AverageScore)
	assert.Empty(t, totals.FailureBreakdown)
}

func TestAggregate(t *testing.T) {
	missing := models.FailureMissingContent
	structure := models.FailurePoorStructure

	totals := Aggregate([]models.TaskEvaluation{
		evalWith(true, true, true, 8.5, nil),
		evalWith(false, true, false, 7.25, &missing),
		evalWith(false, false, true, 5.0, &missing),
		evalWith(false, false, false, 4.0, &structure),
	})

	assert.Equal(t, 4, totals.TotalTasks)
	assert.Equal(t, 1, totals.PassedTasks)
	assert.Equal(t, 3, totals.FailedTasks)
	assert.Equal(t, 0.25, totals.PassRate)
	assert.Equal(t, 2, totals.QualityPassedTasks)
	assert.Equal(t, 0.5, totals.QualityPassRate)
	assert.Equal(t, 2, totals.ValidityPassedTasks)
	assert.Equal(t, 0.5, totals.ValidityPassRate)
	assert.InDelta(t, 6.19, totals.AverageScore, 0.001)
	assert.Equal(t, map[models.FailureClass]int{
		models.FailureMissingContent: 2,
		models.FailurePoorStructure:  1,
	}, totals.FailureBreakdown)
}

func TestAggregate_FailedWithoutClassExcludedFromBreakdown(t *testing.T) {
	totals := Aggregate([]models.TaskEvaluation{
		evalWith(false, false, true, 3.0, nil),
	})

	assert.Equal(t, 1, totals.FailedTasks)
	assert.Empty(t, totals.FailureBreakdown)
}

func TestDelta(t *testing.T) {
	baseline := models.Totals{PassRate: 0.25, AverageScore: 5.5, PassedTasks: 1, FailedTasks: 3}
	optimized := models.Totals{PassRate: 0.75, AverageScore: 7.33, PassedTasks: 3, FailedTasks: 1}

	delta := Delta(baseline, optimized)

	assert.Equal(t, 0.5, delta.PassRateDelta)
	assert.InDelta(t, 1.83, delta.AverageScoreDelta, 0.00001)
	assert.Equal(t, 2.0, delta.PassedTasksDelta)
	assert.Equal(t, -2.0, delta.FailedTasksDelta)
}

func TestDelta_RoundsToFourDecimals(t *testing.T) {
	baseline := models.Totals{PassRate: 1.0 / 3.0}
	optimized := models.Totals{PassRate: 2.0 / 3.0}

	assert.Equal(t, 0.3333, Delta(baseline, optimized).PassRateDelta)
}
