package models

// RunConfig is immutable after run creation. All fields are normalized by
// pkg/config before the run is persisted.
type RunConfig struct {
	MaxTasks              int                `json:"maxTasks"`
	MaxStepsPerTask       int                `json:"maxStepsPerTask"`
	MaxTokensPerTask      int                `json:"maxTokensPerTask"`
	HardCostCapUSD        float64            `json:"hardCostCapUsd"`
	ExecutionConcurrency  int                `json:"executionConcurrency"`
	JudgeConcurrency      int                `json:"judgeConcurrency"`
	TieBreakEnabled       bool               `json:"tieBreakEnabled"`
	EnableSkillOptimization bool             `json:"enableSkillOptimization"`
	RunModel              ModelConfig        `json:"runModel"`
	JudgeModel            ModelConfig        `json:"judgeModel"`
	WorkerCount           int                `json:"workerCount"`
	Assignments           []WorkerAssignment `json:"assignments"`
	UserTasks             []TaskSpec         `json:"userTasks,omitempty"`
}

// ModelConfig identifies a provider/model pair plus per-call knobs.
type ModelConfig struct {
	Provider    string  `json:"provider"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"maxTokens"`
	TimeoutMs   int     `json:"timeoutMs"`
	Retries     int     `json:"retries"`
}

// WorkerAssignment provisions Quantity workers with the given model.
// Overrides (nil = none) replace per-worker model knobs.
type WorkerAssignment struct {
	Provider  string       `json:"provider"`
	Model     string       `json:"model"`
	Quantity  int          `json:"quantity"`
	Overrides *ModelConfig `json:"overrides,omitempty"`
}
