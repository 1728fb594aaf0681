package config

import (
	"strconv"
	"strings"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// CreateRunRequest is the caller-facing run creation payload. Zero-valued
// optional fields take defaults; assignments are rescaled so their
// quantities sum to the worker count.
type CreateRunRequest struct {
	DocsURL                 string                    `json:"docsUrl"`
	TaskCount               int                       `json:"taskCount,omitempty"`
	ExecutionConcurrency    int                       `json:"executionConcurrency,omitempty"`
	JudgeConcurrency        int                       `json:"judgeConcurrency,omitempty"`
	MaxStepsPerTask         int                       `json:"maxStepsPerTask,omitempty"`
	MaxTokensPerTask        int                       `json:"maxTokensPerTask,omitempty"`
	HardCostCapUSD          float64                   `json:"hardCostCapUsd,omitempty"`
	TieBreakEnabled         *bool                     `json:"tieBreakEnabled,omitempty"`
	EnableSkillOptimization *bool                     `json:"enableSkillOptimization,omitempty"`
	RunModel                *models.ModelConfig       `json:"runModel,omitempty"`
	JudgeModel              *models.ModelConfig       `json:"judgeModel,omitempty"`
	Workers                 *WorkersRequest           `json:"workers,omitempty"`
	Tasks                   []models.TaskSpec         `json:"tasks,omitempty"`
}

// WorkersRequest selects the worker population.
type WorkersRequest struct {
	WorkerCount int                       `json:"workerCount,omitempty"`
	Assignments []models.WorkerAssignment `json:"assignments,omitempty"`
}

// NormalizeRunConfig validates a create-run request and produces the
// immutable RunConfig the run is persisted with.
func NormalizeRunConfig(req CreateRunRequest) (models.RunConfig, error) {
	if strings.TrimSpace(req.DocsURL) == "" {
		return models.RunConfig{}, &ValidationError{Field: "docsUrl", Message: "required"}
	}

	cfg := models.RunConfig{
		MaxTasks:             clampDefault(req.TaskCount, DefaultMaxTasks, MaxTasksCeiling),
		MaxStepsPerTask:      clampDefault(req.MaxStepsPerTask, DefaultMaxStepsPerTask, MaxStepsCeiling),
		MaxTokensPerTask:     defaultInt(req.MaxTokensPerTask, DefaultMaxTokensPerTask),
		HardCostCapUSD:       defaultFloat(req.HardCostCapUSD, DefaultHardCostCapUSD),
		ExecutionConcurrency: clampDefault(req.ExecutionConcurrency, DefaultExecutionConcurrency, MaxExecutionConcurrency),
		JudgeConcurrency:     clampDefault(req.JudgeConcurrency, DefaultJudgeConcurrency, MaxJudgeConcurrencyCeiling),
		RunModel:             normalizeModel(req.RunModel, DefaultRunProvider, DefaultRunModel),
		JudgeModel:           normalizeModel(req.JudgeModel, DefaultJudgeProvider, DefaultJudgeModel),
		UserTasks:            req.Tasks,
	}
	if req.TieBreakEnabled != nil {
		cfg.TieBreakEnabled = *req.TieBreakEnabled
	}
	if req.EnableSkillOptimization != nil {
		cfg.EnableSkillOptimization = *req.EnableSkillOptimization
	}

	if req.MaxTokensPerTask < 0 {
		return models.RunConfig{}, &ValidationError{Field: "maxTokensPerTask", Message: "must be positive"}
	}
	if req.HardCostCapUSD < 0 {
		return models.RunConfig{}, &ValidationError{Field: "hardCostCapUsd", Message: "must be positive"}
	}
	for i, spec := range req.Tasks {
		if strings.TrimSpace(spec.Name) == "" {
			return models.RunConfig{}, &ValidationError{Field: "tasks", Message: "task name required at index " + itoa(i)}
		}
	}

	workerCount := DefaultWorkerCount
	var assignments []models.WorkerAssignment
	if req.Workers != nil {
		if req.Workers.WorkerCount < 0 || req.Workers.WorkerCount > MaxWorkerCount {
			return models.RunConfig{}, &ValidationError{Field: "workers.workerCount", Message: "must be between 1 and " + itoa(MaxWorkerCount)}
		}
		if req.Workers.WorkerCount > 0 {
			workerCount = req.Workers.WorkerCount
		}
		assignments = req.Workers.Assignments
		for i, a := range assignments {
			if a.Quantity < 0 {
				return models.RunConfig{}, &ValidationError{Field: "workers.assignments", Message: "negative quantity at index " + itoa(i)}
			}
		}
	}
	cfg.WorkerCount = workerCount
	cfg.Assignments = rescaleAssignments(assignments, workerCount, cfg.RunModel)
	return cfg, nil
}

// rescaleAssignments scales assignment quantities proportionally so they sum
// to workerCount, distributing the rounding remainder to the earliest
// entries. Without assignments every worker runs the default run model.
func rescaleAssignments(assignments []models.WorkerAssignment, workerCount int, runModel models.ModelConfig) []models.WorkerAssignment {
	total := 0
	for _, a := range assignments {
		total += a.Quantity
	}
	if total == 0 {
		return []models.WorkerAssignment{{
			Provider: runModel.Provider,
			Model:    runModel.Model,
			Quantity: workerCount,
		}}
	}
	if total == workerCount {
		return assignments
	}

	out := make([]models.WorkerAssignment, len(assignments))
	copy(out, assignments)
	assigned := 0
	for i := range out {
		out[i].Quantity = out[i].Quantity * workerCount / total
		assigned += out[i].Quantity
	}
	for i := 0; assigned < workerCount; i = (i + 1) % len(out) {
		out[i].Quantity++
		assigned++
	}
	// Drop entries rescaled to zero.
	kept := out[:0]
	for _, a := range out {
		if a.Quantity > 0 {
			kept = append(kept, a)
		}
	}
	return kept
}

func normalizeModel(m *models.ModelConfig, defaultProvider, defaultModel string) models.ModelConfig {
	cfg := models.ModelConfig{
		Provider:  defaultProvider,
		Model:     defaultModel,
		TimeoutMs: DefaultModelTimeoutMs,
		Retries:   DefaultModelRetries,
	}
	if m == nil {
		return cfg
	}
	if m.Provider != "" {
		cfg.Provider = m.Provider
	}
	if m.Model != "" {
		cfg.Model = m.Model
	}
	if m.Temperature != 0 {
		cfg.Temperature = m.Temperature
	}
	if m.MaxTokens != 0 {
		cfg.MaxTokens = m.MaxTokens
	}
	if m.TimeoutMs != 0 {
		cfg.TimeoutMs = m.TimeoutMs
	}
	if m.Retries != 0 {
		cfg.Retries = m.Retries
	}
	return cfg
}

func clampDefault(v, def, ceiling int) int {
	if v <= 0 {
		return def
	}
	if v > ceiling {
		return ceiling
	}
	return v
}

func defaultInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func defaultFloat(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func itoa(n int) string { return strconv.Itoa(n) }
