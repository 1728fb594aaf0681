package models

// TaskStatus is scoped within a run phase.
type TaskStatus string

// Task statuses.
const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusRunning TaskStatus = "running"
	TaskStatusPassed  TaskStatus = "passed"
	TaskStatusFailed  TaskStatus = "failed"
	TaskStatusError   TaskStatus = "error"
	TaskStatusSkipped TaskStatus = "skipped"
)

// Task is a documented workflow the agent must accomplish using only
// retrieved context.
type Task struct {
	TaskID          string     `json:"taskId"`
	RunID           string     `json:"runId"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Difficulty      string     `json:"difficulty"`
	ExpectedSignals []string   `json:"expectedSignals"`
	Status          TaskStatus `json:"status"`
}

// TaskSpec is a user-supplied task definition from the create-run request.
type TaskSpec struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category,omitempty"`
	Difficulty      string   `json:"difficulty,omitempty"`
	ExpectedSignals []string `json:"expectedSignals,omitempty"`
}

// WorkerStatus is the lifecycle state of a provisioned worker.
type WorkerStatus string

// Worker statuses.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusRunning WorkerStatus = "running"
	WorkerStatusDone    WorkerStatus = "done"
	WorkerStatusError   WorkerStatus = "error"
)

// Worker is one provisioned model-backed worker. Labels are unique per run.
type Worker struct {
	ID            string       `json:"id"`
	RunID         string       `json:"runId"`
	WorkerLabel   string       `json:"workerLabel"`
	ModelProvider string       `json:"modelProvider"`
	ModelName     string       `json:"modelName"`
	ModelConfig   ModelConfig  `json:"modelConfig"`
	Status        WorkerStatus `json:"status"`
}
