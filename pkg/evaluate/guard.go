package evaluate

import (
	"fmt"
	"strings"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/retrieval"
)

// Check names and thresholds.
const (
	CheckCitationPresence  = "citation_presence"
	CheckCitationIntegrity = "citation_integrity"
	CheckSignalCoverage    = "expected_signal_coverage"
	CheckStepDepth         = "actionable_step_depth"
	CheckBoundedStop       = "bounded_termination"

	signalCoverageThreshold = 0.45
)

// CriterionCaps are per-criterion score ceilings imposed by failed checks.
// A cap of 10 is no constraint.
type CriterionCaps struct {
	Completeness  float64
	Correctness   float64
	Groundedness  float64
	Actionability float64
}

// noCaps returns the identity caps.
func noCaps() CriterionCaps {
	return CriterionCaps{Completeness: 10, Correctness: 10, Groundedness: 10, Actionability: 10}
}

// Apply clamps scores to the caps in place.
func (c CriterionCaps) Apply(s *models.CriterionScores) {
	s.Completeness = min(s.Completeness, c.Completeness)
	s.Correctness = min(s.Correctness, c.Correctness)
	s.Groundedness = min(s.Groundedness, c.Groundedness)
	s.Actionability = min(s.Actionability, c.Actionability)
}

// GuardResult is the deterministic guard's verdict on one attempt.
type GuardResult struct {
	Caps    CriterionCaps
	Blocked []models.ValidityBlockReason
	Checks  []models.DeterministicCheck
}

// RunGuard evaluates the five non-LLM gates against an attempt. Results
// persist for post-hoc inspection; failed gates cap criterion scores and may
// block validity outright.
func RunGuard(task models.Task, attempt models.Attempt, executionID string, index *retrieval.Index) GuardResult {
	result := GuardResult{Caps: noCaps()}

	record := func(name string, passed bool, cap float64, details string) {
		delta := 0.0
		if !passed {
			delta = cap
		}
		result.Checks = append(result.Checks, models.DeterministicCheck{
			TaskExecutionID: executionID,
			Name:            name,
			Passed:          passed,
			ScoreDelta:      delta,
			Details:         details,
		})
	}

	// citation_presence
	hasCitations := len(attempt.Citations) >= 1
	record(CheckCitationPresence, hasCitations, 3, fmt.Sprintf("%d citations", len(attempt.Citations)))
	if !hasCitations {
		result.Caps.Groundedness = min(result.Caps.Groundedness, 3)
		result.Blocked = append(result.Blocked, models.BlockMissingCitations)
	}

	// citation_integrity: vacuously true with zero citations; presence
	// already blocks that case.
	integrityOK := true
	var badCitation string
	for _, c := range attempt.Citations {
		switch {
		case strings.TrimSpace(c.Source) == "" || c.Source == "unknown":
			integrityOK, badCitation = false, "empty or unknown source"
		case c.SnippetHash == "":
			integrityOK, badCitation = false, "missing snippet hash"
		case strings.TrimSpace(c.Excerpt) == "":
			integrityOK, badCitation = false, "empty excerpt"
		case !index.Contains(c.Source, c.SnippetHash):
			integrityOK, badCitation = false, fmt.Sprintf("citation %s#%s not in index", c.Source, c.SnippetHash)
		}
		if !integrityOK {
			break
		}
	}
	record(CheckCitationIntegrity, integrityOK, 3, badCitation)
	if !integrityOK {
		result.Caps.Groundedness = min(result.Caps.Groundedness, 3)
		result.Blocked = append(result.Blocked, models.BlockInvalidCitations)
	}

	// expected_signal_coverage
	coverage := SignalCoverage(attempt.Answer, task.ExpectedSignals)
	coverageOK := coverage >= signalCoverageThreshold
	record(CheckSignalCoverage, coverageOK, 6, fmt.Sprintf("coverage %.2f of %d signals", coverage, len(task.ExpectedSignals)))
	if !coverageOK {
		result.Caps.Completeness = min(result.Caps.Completeness, 6)
	}

	// actionable_step_depth
	depthOK := len(attempt.Steps) >= 2 && attempt.StepCount >= 2
	record(CheckStepDepth, depthOK, 6, fmt.Sprintf("%d answer steps, %d iterations", len(attempt.Steps), attempt.StepCount))
	if !depthOK {
		result.Caps.Actionability = min(result.Caps.Actionability, 6)
	}

	// bounded_termination
	stoppedClean := attempt.StopReason == models.StopReasonCompleted
	record(CheckBoundedStop, stoppedClean, 8, "stop reason "+string(attempt.StopReason))
	if !stoppedClean {
		result.Caps.Correctness = min(result.Caps.Correctness, 8)
	}

	return result
}
