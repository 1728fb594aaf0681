package evaluate

import (
	"math"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// Aggregate folds one phase's evaluations into run totals. Empty input
// yields all zeros; the failure breakdown counts only classified failures.
func Aggregate(evals []models.TaskEvaluation) models.Totals {
	totals := models.Totals{
		TotalTasks:       len(evals),
		FailureBreakdown: make(map[models.FailureClass]int),
	}
	if len(evals) == 0 {
		return totals
	}

	var scoreSum float64
	for _, e := range evals {
		if e.Pass {
			totals.PassedTasks++
		} else {
			totals.FailedTasks++
		}
		if e.QualityPass {
			totals.QualityPassedTasks++
		}
		if e.ValidityPass {
			totals.ValidityPassedTasks++
		}
		scoreSum += e.CriterionScores.Average
		if e.FailureClass != nil {
			totals.FailureBreakdown[*e.FailureClass]++
		}
	}

	n := float64(len(evals))
	totals.PassRate = float64(totals.PassedTasks) / n
	totals.QualityPassRate = float64(totals.QualityPassedTasks) / n
	totals.ValidityPassRate = float64(totals.ValidityPassedTasks) / n
	totals.AverageScore = round2(scoreSum / n)
	return totals
}

// Delta is the component-wise optimized minus baseline comparison, rounded
// to 4 decimals.
func Delta(baseline, optimized models.Totals) models.Delta {
	return models.Delta{
		PassRateDelta:     round4(optimized.PassRate - baseline.PassRate),
		AverageScoreDelta: round4(optimized.AverageScore - baseline.AverageScore),
		PassedTasksDelta:  round4(float64(optimized.PassedTasks - baseline.PassedTasks)),
		FailedTasksDelta:  round4(float64(optimized.FailedTasks - baseline.FailedTasks)),
	}
}

// round4 rounds half away from zero to 4 decimals.
func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
