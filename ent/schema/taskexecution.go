package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// TaskExecution holds the schema definition for one attempt of a task by a
// worker within a phase. Progress counters are additive and updated after
// every model call.
type TaskExecution struct {
	ent.Schema
}

// Fields of the TaskExecution.
func (TaskExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("worker_id").
			Immutable(),
		field.Enum("phase").
			Values("baseline", "optimized").
			Immutable(),
		field.Enum("status").
			Values("pending", "running", "passed", "failed", "error", "skipped").
			Default("running"),
		field.Int("step_count").
			Default(0),
		field.Int("tokens_in").
			Default(0),
		field.Int("tokens_out").
			Default(0),
		field.Float("cost_estimate").
			Default(0),
		field.String("stop_reason").
			Optional(),
		field.JSON("attempt", &models.Attempt{}).
			Optional().
			Comment("Final answer artifact handed to the evaluator"),
		field.JSON("agent_state", &models.AgentMemory{}).
			Optional().
			Comment("Per-iteration agent memory snapshot"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the TaskExecution.
func (TaskExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("executions").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.To("steps", TaskStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checks", DeterministicCheck.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the TaskExecution.
func (TaskExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("run_id", "phase"),
		index.Fields("run_id", "task_id", "phase"),
	}
}
