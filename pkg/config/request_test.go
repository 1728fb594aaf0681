package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

func boolPtr(b bool) *bool { return &b }

func TestNormalizeRunConfig_Defaults(t *testing.T) {
	cfg, err := NormalizeRunConfig(CreateRunRequest{DocsURL: "https://docs.acme.dev"})
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxTasks, cfg.MaxTasks)
	assert.Equal(t, DefaultMaxStepsPerTask, cfg.MaxStepsPerTask)
	assert.Equal(t, DefaultMaxTokensPerTask, cfg.MaxTokensPerTask)
	assert.Equal(t, DefaultHardCostCapUSD, cfg.HardCostCapUSD)
	assert.Equal(t, DefaultExecutionConcurrency, cfg.ExecutionConcurrency)
	assert.Equal(t, DefaultJudgeConcurrency, cfg.JudgeConcurrency)
	assert.False(t, cfg.TieBreakEnabled)
	assert.False(t, cfg.EnableSkillOptimization)
	assert.Equal(t, DefaultRunModel, cfg.RunModel.Model)
	assert.Equal(t, DefaultJudgeModel, cfg.JudgeModel.Model)
	assert.Equal(t, DefaultModelTimeoutMs, cfg.RunModel.TimeoutMs)
	assert.Equal(t, DefaultWorkerCount, cfg.WorkerCount)
	require.Len(t, cfg.Assignments, 1)
	assert.Equal(t, DefaultWorkerCount, cfg.Assignments[0].Quantity)
	assert.Equal(t, DefaultRunModel, cfg.Assignments[0].Model)
}

func TestNormalizeRunConfig_Overrides(t *testing.T) {
	cfg, err := NormalizeRunConfig(CreateRunRequest{
		DocsURL:                 "https://docs.acme.dev",
		TaskCount:               5,
		MaxStepsPerTask:         4,
		MaxTokensPerTask:        1000,
		HardCostCapUSD:          0.25,
		TieBreakEnabled:         boolPtr(true),
		EnableSkillOptimization: boolPtr(true),
		RunModel:                &models.ModelConfig{Provider: "anthropic", Model: "claude-sonnet-4"},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MaxTasks)
	assert.Equal(t, 4, cfg.MaxStepsPerTask)
	assert.Equal(t, 1000, cfg.MaxTokensPerTask)
	assert.Equal(t, 0.25, cfg.HardCostCapUSD)
	assert.True(t, cfg.TieBreakEnabled)
	assert.True(t, cfg.EnableSkillOptimization)
	assert.Equal(t, "anthropic", cfg.RunModel.Provider)
	// Unset knobs on an override model still take defaults.
	assert.Equal(t, DefaultModelTimeoutMs, cfg.RunModel.TimeoutMs)
}

func TestNormalizeRunConfig_CeilingsApply(t *testing.T) {
	cfg, err := NormalizeRunConfig(CreateRunRequest{
		DocsURL:              "https://docs.acme.dev",
		TaskCount:            500,
		MaxStepsPerTask:      100,
		ExecutionConcurrency: 64,
	})
	require.NoError(t, err)

	assert.Equal(t, MaxTasksCeiling, cfg.MaxTasks)
	assert.Equal(t, MaxStepsCeiling, cfg.MaxStepsPerTask)
	assert.Equal(t, MaxExecutionConcurrency, cfg.ExecutionConcurrency)
}

func TestNormalizeRunConfig_RescalesAssignments(t *testing.T) {
	cfg, err := NormalizeRunConfig(CreateRunRequest{
		DocsURL: "https://docs.acme.dev",
		Workers: &WorkersRequest{
			WorkerCount: 3,
			Assignments: []models.WorkerAssignment{
				{Provider: "openai", Model: "gpt-4o-mini", Quantity: 2},
				{Provider: "anthropic", Model: "claude-sonnet-4", Quantity: 2},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.WorkerCount)
	total := 0
	for _, a := range cfg.Assignments {
		total += a.Quantity
	}
	assert.Equal(t, 3, total)
	// Rounding remainder goes to the first assignment.
	assert.Equal(t, 2, cfg.Assignments[0].Quantity)
	assert.Equal(t, 1, cfg.Assignments[1].Quantity)
}

func TestNormalizeRunConfig_ExactAssignmentsKept(t *testing.T) {
	assignments := []models.WorkerAssignment{
		{Provider: "openai", Model: "gpt-4o-mini", Quantity: 1},
		{Provider: "anthropic", Model: "claude-sonnet-4", Quantity: 1},
	}
	cfg, err := NormalizeRunConfig(CreateRunRequest{
		DocsURL: "https://docs.acme.dev",
		Workers: &WorkersRequest{WorkerCount: 2, Assignments: assignments},
	})
	require.NoError(t, err)
	assert.Equal(t, assignments, cfg.Assignments)
}

func TestNormalizeRunConfig_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   CreateRunRequest
		field string
	}{
		{"missing docs url", CreateRunRequest{}, "docsUrl"},
		{"negative tokens", CreateRunRequest{DocsURL: "x.dev", MaxTokensPerTask: -1}, "maxTokensPerTask"},
		{"negative cost cap", CreateRunRequest{DocsURL: "x.dev", HardCostCapUSD: -1}, "hardCostCapUsd"},
		{"unnamed user task", CreateRunRequest{DocsURL: "x.dev", Tasks: []models.TaskSpec{{}}}, "tasks"},
		{"oversized worker count", CreateRunRequest{DocsURL: "x.dev", Workers: &WorkersRequest{WorkerCount: 99}}, "workers.workerCount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeRunConfig(tt.req)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}
