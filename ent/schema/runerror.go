package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunError holds the schema definition for a run-scoped error record written
// by the orchestrator's error sink.
type RunError struct {
	ent.Schema
}

// Fields of the RunError.
func (RunError) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("error_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("code").
			Immutable().
			Comment("RUN_FATAL, TASK_EXECUTION_ERROR or SKILL_OPTIMIZATION_ERROR"),
		field.Text("message").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RunError.
func (RunError) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("errors").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunError.
func (RunError) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
	}
}
