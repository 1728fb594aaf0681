package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

func TestSynthesize_TemplatesThenUserThenHeadings(t *testing.T) {
	cfg := models.RunConfig{
		MaxTasks: 20,
		UserTasks: []models.TaskSpec{
			{Name: "Rotate a webhook secret", Description: "Rotate it safely.", ExpectedSignals: []string{"webhook secret"}},
		},
	}
	artifacts := []models.Artifact{
		{
			ArtifactType: models.ArtifactTypePage,
			SourceURL:    "https://docs.acme.dev/guide",
			Content:      "# Guide\n\n## Rate Limits\n\nSome text.\n\n### Pagination\n\nMore text.\n\n## Rate Limits\n",
		},
		{
			ArtifactType: models.ArtifactTypeSkill,
			SourceURL:    "https://docs.acme.dev/skill.md",
			Content:      "## Never Derived\n",
		},
	}

	tasks := Synthesize("run-1", cfg, artifacts)

	require.Len(t, tasks, 8)
	assert.Equal(t, CategoryTemplate, tasks[0].Category)
	assert.Equal(t, "Rotate a webhook secret", tasks[5].Name)
	assert.Equal(t, CategoryUser, tasks[5].Category)
	assert.Equal(t, "Apply the docs section: Rate Limits", tasks[6].Name)
	assert.Equal(t, "Apply the docs section: Pagination", tasks[7].Name)

	for _, task := range tasks {
		assert.Equal(t, "run-1", task.RunID)
		assert.Equal(t, models.TaskStatusPending, task.Status)
		assert.NotEmpty(t, task.TaskID)
	}

	// Duplicate headings collapse; skill artifacts contribute none.
	names := make(map[string]int)
	for _, task := range tasks {
		names[task.Name]++
	}
	assert.Equal(t, 1, names["Apply the docs section: Rate Limits"])
	assert.Zero(t, names["Apply the docs section: Never Derived"])
}

func TestSynthesize_CapsAtMaxTasks(t *testing.T) {
	cfg := models.RunConfig{MaxTasks: 3}

	tasks := Synthesize("run-1", cfg, nil)

	require.Len(t, tasks, 3)
	for _, task := range tasks {
		assert.Equal(t, CategoryTemplate, task.Category)
	}
}

func TestHeadingSignals(t *testing.T) {
	signals := headingSignals("Webhook Delivery Retries")

	assert.Equal(t, "webhook delivery retries", signals[0])
	assert.Contains(t, signals, "webhook")
	assert.Contains(t, signals, "delivery")
	assert.Contains(t, signals, "retries")
}
