// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DeterministicChecksColumns holds the columns for the "deterministic_checks" table.
	DeterministicChecksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "passed", Type: field.TypeBool},
		{Name: "score_delta", Type: field.TypeFloat64},
		{Name: "details", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "task_execution_id", Type: field.TypeString},
	}
	// DeterministicChecksTable holds the schema information for the "deterministic_checks" table.
	DeterministicChecksTable = &schema.Table{
		Name:       "deterministic_checks",
		Columns:    DeterministicChecksColumns,
		PrimaryKey: []*schema.Column{DeterministicChecksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "deterministic_checks_task_executions_checks",
				Columns:    []*schema.Column{DeterministicChecksColumns[5]},
				RefColumns: []*schema.Column{TaskExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deterministiccheck_task_execution_id",
				Unique:  false,
				Columns: []*schema.Column{DeterministicChecksColumns[5]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "docs_url", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "ingesting", "generating_tasks", "running", "evaluating", "completed", "failed", "canceled"}, Default: "queued"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "config", Type: field.TypeJSON},
		{Name: "totals", Type: field.TypeJSON, Nullable: true},
		{Name: "cost_estimate", Type: field.TypeFloat64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "run_status",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[2]},
			},
			{
				Name:    "run_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[2], RunsColumns[3]},
			},
		},
	}
	// RunArtifactsColumns holds the columns for the "run_artifacts" table.
	RunArtifactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "artifact_type", Type: field.TypeString},
		{Name: "source_url", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunArtifactsTable holds the schema information for the "run_artifacts" table.
	RunArtifactsTable = &schema.Table{
		Name:       "run_artifacts",
		Columns:    RunArtifactsColumns,
		PrimaryKey: []*schema.Column{RunArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_artifacts_runs_artifacts",
				Columns:    []*schema.Column{RunArtifactsColumns[6]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runartifact_run_id_artifact_type_source_url",
				Unique:  true,
				Columns: []*schema.Column{RunArtifactsColumns[6], RunArtifactsColumns[1], RunArtifactsColumns[2]},
			},
		},
	}
	// RunErrorsColumns holds the columns for the "run_errors" table.
	RunErrorsColumns = []*schema.Column{
		{Name: "error_id", Type: field.TypeString, Unique: true},
		{Name: "code", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunErrorsTable holds the schema information for the "run_errors" table.
	RunErrorsTable = &schema.Table{
		Name:       "run_errors",
		Columns:    RunErrorsColumns,
		PrimaryKey: []*schema.Column{RunErrorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_errors_runs_errors",
				Columns:    []*schema.Column{RunErrorsColumns[4]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runerror_run_id",
				Unique:  false,
				Columns: []*schema.Column{RunErrorsColumns[4]},
			},
		},
	}
	// RunEventsColumns holds the columns for the "run_events" table.
	RunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunEventsTable holds the schema information for the "run_events" table.
	RunEventsTable = &schema.Table{
		Name:       "run_events",
		Columns:    RunEventsColumns,
		PrimaryKey: []*schema.Column{RunEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_events_runs_events",
				Columns:    []*schema.Column{RunEventsColumns[5]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runevent_run_id_seq",
				Unique:  true,
				Columns: []*schema.Column{RunEventsColumns[5], RunEventsColumns[1]},
			},
			{
				Name:    "runevent_run_id_id",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[5], RunEventsColumns[0]},
			},
		},
	}
	// RunWorkersColumns holds the columns for the "run_workers" table.
	RunWorkersColumns = []*schema.Column{
		{Name: "worker_id", Type: field.TypeString, Unique: true},
		{Name: "worker_label", Type: field.TypeString},
		{Name: "model_provider", Type: field.TypeString},
		{Name: "model_name", Type: field.TypeString},
		{Name: "model_config", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "running", "done", "error"}, Default: "idle"},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunWorkersTable holds the schema information for the "run_workers" table.
	RunWorkersTable = &schema.Table{
		Name:       "run_workers",
		Columns:    RunWorkersColumns,
		PrimaryKey: []*schema.Column{RunWorkersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_workers_runs_workers",
				Columns:    []*schema.Column{RunWorkersColumns[6]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runworker_run_id_worker_label",
				Unique:  true,
				Columns: []*schema.Column{RunWorkersColumns[6], RunWorkersColumns[1]},
			},
		},
	}
	// SkillSessionsColumns holds the columns for the "skill_sessions" table.
	SkillSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "generating", "completed", "skipped", "error"}, Default: "pending"},
		{Name: "source_skill_origin", Type: field.TypeEnum, Enums: []string{"site_skill", "none"}, Default: "none"},
		{Name: "baseline_totals", Type: field.TypeJSON, Nullable: true},
		{Name: "optimized_totals", Type: field.TypeJSON, Nullable: true},
		{Name: "delta", Type: field.TypeJSON, Nullable: true},
		{Name: "optimized_skill_hash", Type: field.TypeString, Nullable: true},
		{Name: "tokens_in", Type: field.TypeInt, Default: 0},
		{Name: "tokens_out", Type: field.TypeInt, Default: 0},
		{Name: "cost_estimate", Type: field.TypeFloat64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Unique: true},
	}
	// SkillSessionsTable holds the schema information for the "skill_sessions" table.
	SkillSessionsTable = &schema.Table{
		Name:       "skill_sessions",
		Columns:    SkillSessionsColumns,
		PrimaryKey: []*schema.Column{SkillSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "skill_sessions_runs_skill_session",
				Columns:    []*schema.Column{SkillSessionsColumns[12]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// StepCitationsColumns holds the columns for the "step_citations" table.
	StepCitationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source", Type: field.TypeString},
		{Name: "snippet_hash", Type: field.TypeString, Nullable: true},
		{Name: "excerpt", Type: field.TypeString, Size: 2147483647},
		{Name: "start_offset", Type: field.TypeInt, Nullable: true},
		{Name: "end_offset", Type: field.TypeInt, Nullable: true},
		{Name: "step_id", Type: field.TypeInt},
	}
	// StepCitationsTable holds the schema information for the "step_citations" table.
	StepCitationsTable = &schema.Table{
		Name:       "step_citations",
		Columns:    StepCitationsColumns,
		PrimaryKey: []*schema.Column{StepCitationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "step_citations_task_steps_citations",
				Columns:    []*schema.Column{StepCitationsColumns[6]},
				RefColumns: []*schema.Column{TaskStepsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stepcitation_step_id",
				Unique:  false,
				Columns: []*schema.Column{StepCitationsColumns[6]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "expected_signals", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "passed", "failed", "error", "skipped"}, Default: "pending"},
		{Name: "run_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_runs_tasks",
				Columns:    []*schema.Column{TasksColumns[7]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_run_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7]},
			},
			{
				Name:    "task_run_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7], TasksColumns[6]},
			},
		},
	}
	// TaskEvaluationsColumns holds the columns for the "task_evaluations" table.
	TaskEvaluationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"baseline", "optimized"}},
		{Name: "criterion_scores", Type: field.TypeJSON},
		{Name: "pass", Type: field.TypeBool},
		{Name: "quality_pass", Type: field.TypeBool},
		{Name: "validity_pass", Type: field.TypeBool},
		{Name: "validity_blocked_reasons", Type: field.TypeJSON, Nullable: true},
		{Name: "failure_class", Type: field.TypeString, Nullable: true},
		{Name: "rationale", Type: field.TypeString, Size: 2147483647},
		{Name: "judge_model", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "run_id", Type: field.TypeString},
	}
	// TaskEvaluationsTable holds the schema information for the "task_evaluations" table.
	TaskEvaluationsTable = &schema.Table{
		Name:       "task_evaluations",
		Columns:    TaskEvaluationsColumns,
		PrimaryKey: []*schema.Column{TaskEvaluationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_evaluations_runs_evaluations",
				Columns:    []*schema.Column{TaskEvaluationsColumns[12]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskevaluation_run_id_phase",
				Unique:  false,
				Columns: []*schema.Column{TaskEvaluationsColumns[12], TaskEvaluationsColumns[2]},
			},
			{
				Name:    "taskevaluation_run_id_task_id_phase",
				Unique:  true,
				Columns: []*schema.Column{TaskEvaluationsColumns[12], TaskEvaluationsColumns[1], TaskEvaluationsColumns[2]},
			},
		},
	}
	// TaskExecutionsColumns holds the columns for the "task_executions" table.
	TaskExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "worker_id", Type: field.TypeString},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"baseline", "optimized"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "passed", "failed", "error", "skipped"}, Default: "running"},
		{Name: "step_count", Type: field.TypeInt, Default: 0},
		{Name: "tokens_in", Type: field.TypeInt, Default: 0},
		{Name: "tokens_out", Type: field.TypeInt, Default: 0},
		{Name: "cost_estimate", Type: field.TypeFloat64, Default: 0},
		{Name: "stop_reason", Type: field.TypeString, Nullable: true},
		{Name: "attempt", Type: field.TypeJSON, Nullable: true},
		{Name: "agent_state", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "run_id", Type: field.TypeString},
	}
	// TaskExecutionsTable holds the schema information for the "task_executions" table.
	TaskExecutionsTable = &schema.Table{
		Name:       "task_executions",
		Columns:    TaskExecutionsColumns,
		PrimaryKey: []*schema.Column{TaskExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_executions_runs_executions",
				Columns:    []*schema.Column{TaskExecutionsColumns[14]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskexecution_run_id",
				Unique:  false,
				Columns: []*schema.Column{TaskExecutionsColumns[14]},
			},
			{
				Name:    "taskexecution_run_id_phase",
				Unique:  false,
				Columns: []*schema.Column{TaskExecutionsColumns[14], TaskExecutionsColumns[3]},
			},
			{
				Name:    "taskexecution_run_id_task_id_phase",
				Unique:  false,
				Columns: []*schema.Column{TaskExecutionsColumns[14], TaskExecutionsColumns[1], TaskExecutionsColumns[3]},
			},
		},
	}
	// TaskStepsColumns holds the columns for the "task_steps" table.
	TaskStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"retrieve", "plan", "act", "reflect"}},
		{Name: "input", Type: field.TypeString, Size: 2147483647},
		{Name: "output", Type: field.TypeString, Size: 2147483647},
		{Name: "retrieval", Type: field.TypeJSON, Nullable: true},
		{Name: "usage", Type: field.TypeJSON, Nullable: true},
		{Name: "decision", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_execution_id", Type: field.TypeString},
	}
	// TaskStepsTable holds the schema information for the "task_steps" table.
	TaskStepsTable = &schema.Table{
		Name:       "task_steps",
		Columns:    TaskStepsColumns,
		PrimaryKey: []*schema.Column{TaskStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_steps_task_executions_steps",
				Columns:    []*schema.Column{TaskStepsColumns[10]},
				RefColumns: []*schema.Column{TaskExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskstep_task_execution_id",
				Unique:  false,
				Columns: []*schema.Column{TaskStepsColumns[10]},
			},
			{
				Name:    "taskstep_run_id",
				Unique:  false,
				Columns: []*schema.Column{TaskStepsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DeterministicChecksTable,
		RunsTable,
		RunArtifactsTable,
		RunErrorsTable,
		RunEventsTable,
		RunWorkersTable,
		SkillSessionsTable,
		StepCitationsTable,
		TasksTable,
		TaskEvaluationsTable,
		TaskExecutionsTable,
		TaskStepsTable,
	}
)

func init() {
	DeterministicChecksTable.ForeignKeys[0].RefTable = TaskExecutionsTable
	RunArtifactsTable.ForeignKeys[0].RefTable = RunsTable
	RunErrorsTable.ForeignKeys[0].RefTable = RunsTable
	RunEventsTable.ForeignKeys[0].RefTable = RunsTable
	RunWorkersTable.ForeignKeys[0].RefTable = RunsTable
	SkillSessionsTable.ForeignKeys[0].RefTable = RunsTable
	StepCitationsTable.ForeignKeys[0].RefTable = TaskStepsTable
	TasksTable.ForeignKeys[0].RefTable = RunsTable
	TaskEvaluationsTable.ForeignKeys[0].RefTable = RunsTable
	TaskExecutionsTable.ForeignKeys[0].RefTable = RunsTable
	TaskStepsTable.ForeignKeys[0].RefTable = TaskExecutionsTable
}
