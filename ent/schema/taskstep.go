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

// TaskStep holds the schema definition for one phase of one agent-loop
// iteration. The integer primary key doubles as the trace ordering; the four
// phases of an iteration share a step_index.
type TaskStep struct {
	ent.Schema
}

// Fields of the TaskStep.
func (TaskStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_execution_id").
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("step_index").
			Immutable(),
		field.Enum("phase").
			Values("retrieve", "plan", "act", "reflect").
			Immutable(),
		field.Text("input").
			Immutable(),
		field.Text("output").
			Immutable(),
		field.JSON("retrieval", []models.ChunkRef{}).
			Optional().
			Immutable().
			Comment("Ranked chunks used by a retrieve step"),
		field.JSON("usage", &models.StepUsage{}).
			Optional().
			Immutable(),
		field.JSON("decision", &models.StepDecision{}).
			Optional().
			Immutable().
			Comment("Continue/stop decision of a reflect step, override included"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskStep.
func (TaskStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", TaskExecution.Type).
			Ref("steps").
			Field("task_execution_id").
			Unique().
			Required().
			Immutable(),
		edge.To("citations", StepCitation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the TaskStep.
func (TaskStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_execution_id"),
		index.Fields("run_id"),
	}
}
