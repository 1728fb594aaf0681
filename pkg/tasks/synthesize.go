// Package tasks synthesizes the task set for a run from a template battery,
// headings found in markdown artifacts, and user-defined task specs.
package tasks

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// Task categories.
const (
	CategoryTemplate = "template"
	CategoryDocs     = "docs"
	CategoryUser     = "user"
)

// template is one entry of the standing task battery applied to every site.
type template struct {
	name        string
	description string
	signals     []string
	difficulty  string
}

var templates = []template{
	{
		name:        "Authenticate an API request",
		description: "Using only the documentation, describe how a developer obtains credentials and authenticates a request against the API.",
		signals:     []string{"api key", "authorization"},
		difficulty:  "easy",
	},
	{
		name:        "Complete the quickstart",
		description: "Walk through the site's quickstart: install the tooling, configure it, and make the first successful call or build.",
		signals:     []string{"install", "quickstart"},
		difficulty:  "easy",
	},
	{
		name:        "Make a typical API call",
		description: "Pick a core endpoint or function documented on the site and show a complete, correct usage example including required parameters.",
		signals:     []string{"request", "response"},
		difficulty:  "medium",
	},
	{
		name:        "Handle a documented error",
		description: "Identify a documented error condition and describe how a client should detect and recover from it.",
		signals:     []string{"error", "retry"},
		difficulty:  "medium",
	},
	{
		name:        "Configure the system",
		description: "Enumerate the configuration options a new deployment must set and where each one is documented.",
		signals:     []string{"configuration", "environment"},
		difficulty:  "medium",
	},
}

// Synthesize builds the run's task list: the template battery, then
// user-defined specs, then tasks derived from markdown headings, capped at
// cfg.MaxTasks. User tasks are never displaced by heading-derived ones.
func Synthesize(runID string, cfg models.RunConfig, artifacts []models.Artifact) []models.Task {
	out := make([]models.Task, 0, cfg.MaxTasks)

	add := func(name, description, category, difficulty string, signals []string) bool {
		if len(out) >= cfg.MaxTasks {
			return false
		}
		out = append(out, models.Task{
			TaskID:          uuid.NewString(),
			RunID:           runID,
			Name:            name,
			Description:     description,
			Category:        category,
			Difficulty:      difficulty,
			ExpectedSignals: signals,
			Status:          models.TaskStatusPending,
		})
		return true
	}

	for _, t := range templates {
		add(t.name, t.description, CategoryTemplate, t.difficulty, t.signals)
	}
	for _, spec := range cfg.UserTasks {
		category := spec.Category
		if category == "" {
			category = CategoryUser
		}
		difficulty := spec.Difficulty
		if difficulty == "" {
			difficulty = "medium"
		}
		add(spec.Name, spec.Description, category, difficulty, spec.ExpectedSignals)
	}
	for _, heading := range headings(artifacts) {
		if !add(
			"Apply the docs section: "+heading,
			"Using the documentation section titled \""+heading+"\", explain what it enables and give the concrete steps a developer follows.",
			CategoryDocs, "medium", headingSignals(heading),
		) {
			break
		}
	}
	return out
}

// headings extracts unique level-2 and level-3 markdown headings from text
// artifacts, in document order.
func headings(artifacts []models.Artifact) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, a := range artifacts {
		if a.ArtifactType == models.ArtifactTypeSkill {
			continue
		}
		for _, line := range strings.Split(a.Content, "\n") {
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "## ") && !strings.HasPrefix(line, "### ") {
				continue
			}
			heading := strings.TrimSpace(strings.TrimLeft(line, "# "))
			if heading == "" || len(heading) > 80 {
				continue
			}
			key := strings.ToLower(heading)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, heading)
		}
	}
	return out
}

// headingSignals turns a heading into expected signals: the heading itself
// plus its words of 4+ characters.
func headingSignals(heading string) []string {
	signals := []string{strings.ToLower(heading)}
	for _, word := range strings.Fields(strings.ToLower(heading)) {
		word = strings.Trim(word, `.,:;"'()`)
		if len(word) >= 4 && word != signals[0] {
			signals = append(signals, word)
		}
	}
	return signals
}
