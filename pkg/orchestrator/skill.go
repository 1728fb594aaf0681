package orchestrator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dhiyaancnirmal/mintaborate/pkg/llm"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// SkillSchema validates the optimized-skill generation response.
var SkillSchema = llm.MustSchema("skill_generation", `{
	"type": "object",
	"properties": {
		"optimizedSkillMarkdown": {"type": "string", "minLength": 1},
		"optimizationNotes": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["optimizedSkillMarkdown"],
	"additionalProperties": true
}`)

// requiredSkillSections must all appear in a generated skill document.
var requiredSkillSections = []string{
	"# Purpose",
	"# Retrieval Strategy",
	"# Critical Workflows",
	"# Failure Prevention",
	"# Verification Checklist",
}

type skillResult struct {
	OptimizedSkillMarkdown string   `json:"optimizedSkillMarkdown"`
	OptimizationNotes      []string `json:"optimizationNotes"`
}

// generateSkill asks the judge model for an optimized skill document built
// from the baseline failures. The document must carry every required
// section. Usage is returned even on a validation failure so the spend is
// recorded on the skill session either way.
func (o *Orchestrator) generateSkill(ctx context.Context, run *models.Run, siteSkill string, failures []models.TaskEvaluation, taskNames map[string]string) (string, []string, llm.Usage, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Documentation site: %s\n\n", run.DocsURL)
	if siteSkill != "" {
		fmt.Fprintf(&b, "Existing site skill document:\n%s\n\n", siteSkill)
	} else {
		b.WriteString("The site has no skill document yet.\n\n")
	}
	b.WriteString("Baseline failures to address:\n")
	for _, f := range failures {
		name := taskNames[f.TaskID]
		fmt.Fprintf(&b, "- %s (average %.2f", name, f.CriterionScores.Average)
		if f.FailureClass != nil {
			fmt.Fprintf(&b, ", %s", *f.FailureClass)
		}
		fmt.Fprintf(&b, "): %s\n", f.Rationale)
	}
	fmt.Fprintf(&b, "\nWrite a complete replacement skill document in markdown. It must contain exactly these top-level sections, in order: %s. Make the guidance specific to the failures above.",
		strings.Join(requiredSkillSections, ", "))

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: "You write agent skill documents that teach autonomous coding agents how to use a documentation site effectively."},
		{Role: llm.RoleUser, Content: b.String()},
	}

	var result skillResult
	res, err := o.client.CompleteJSON(ctx, run.Config.JudgeModel, messages, SkillSchema, &result)
	if err != nil {
		return "", nil, llm.Usage{}, fmt.Errorf("skill generation call failed: %w", err)
	}
	for _, section := range requiredSkillSections {
		if !strings.Contains(result.OptimizedSkillMarkdown, section) {
			return "", nil, res.Usage, fmt.Errorf("generated skill is missing the %q section", section)
		}
	}
	return result.OptimizedSkillMarkdown, result.OptimizationNotes, res.Usage, nil
}

// replaceSkillArtifact re-derives the artifact set for the optimized phase:
// any skill-typed artifact is removed and one synthetic skill artifact with
// the optimized text is appended, keyed by the SHA-256 of its content.
func replaceSkillArtifact(artifacts []models.Artifact, docsURL, optimizedSkill string) ([]models.Artifact, string) {
	out := make([]models.Artifact, 0, len(artifacts)+1)
	for _, a := range artifacts {
		if a.ArtifactType == models.ArtifactTypeSkill {
			continue
		}
		out = append(out, a)
	}
	sum := sha256.Sum256([]byte(optimizedSkill))
	hash := hex.EncodeToString(sum[:])
	out = append(out, models.Artifact{
		ArtifactType: models.ArtifactTypeSkill,
		SourceURL:    strings.TrimRight(docsURL, "/") + "/optimized-skill#" + hash[:16],
		Content:      optimizedSkill,
		ContentHash:  hash,
	})
	return out, hash
}
