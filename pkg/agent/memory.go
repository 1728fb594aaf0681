package agent

import (
	"regexp"

	"github.com/dhiyaancnirmal/mintaborate/pkg/agent/prompt"
	"github.com/dhiyaancnirmal/mintaborate/pkg/evaluate"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/retrieval"
)

const (
	maxFacts         = 20
	maxStepSummaries = 12

	// Coverage below this keeps the loop going even when the model wants to
	// stop early.
	continueCoverageThreshold = 0.75
)

// Phrases that signal the model gave up without exhausting the evidence.
var giveUpPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)no\s+(\w+\s+){0,4}(found|available|documented)`),
	regexp.MustCompile(`(?i)unable to (find|locate|access|retrieve|determine)`),
}

// shouldOverrideContinue forces another iteration when the act phase is not
// done and the attempt still looks weak: too few iterations, low expected
// signal coverage, no citations, or give-up language in the text.
func shouldOverrideContinue(task models.Task, act prompt.ActResult, stepIndex int) bool {
	if act.Done {
		return false
	}
	if stepIndex < 2 {
		return true
	}
	text := act.Answer + " " + act.StepOutput
	if evaluate.SignalCoverage(text, task.ExpectedSignals) < continueCoverageThreshold {
		return true
	}
	if len(act.Citations) == 0 {
		return true
	}
	for _, p := range giveUpPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// updateMemory folds one iteration into the agent's memory. Every list field
// is deduplicated; facts keep the newest 20 entries and summaries the
// newest 12.
func updateMemory(memory models.AgentMemory, plan prompt.PlanResult, act prompt.ActResult, reflect prompt.ReflectResult, chunks []retrieval.Scored, stepIndex int, remaining models.RemainingBudget) models.AgentMemory {
	memory.CurrentStep = stepIndex
	memory.RemainingBudget = remaining

	planTexts := uniqueStrings(append(append([]string{}, plan.PlanItems...), reflect.PlanUpdates...))
	memory.Plan = make([]models.PlanItem, 0, len(planTexts))
	for _, text := range planTexts {
		memory.Plan = append(memory.Plan, models.PlanItem{Text: text})
	}

	visited := memory.VisitedSources
	for _, c := range chunks {
		visited = append(visited, c.Chunk.SourceURL+"#"+c.Chunk.SnippetHash)
	}
	memory.VisitedSources = uniqueStrings(visited)

	memory.Facts = tail(uniqueStrings(append(memory.Facts, act.DiscoveredFacts...)), maxFacts)

	if reflect.Summary != "" {
		memory.StepSummaries = append(memory.StepSummaries, reflect.Summary)
	}
	memory.StepSummaries = tail(uniqueStrings(memory.StepSummaries), maxStepSummaries)

	return memory
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func tail(in []string, n int) []string {
	if len(in) <= n {
		return in
	}
	return in[len(in)-n:]
}
