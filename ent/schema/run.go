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

// Run holds the schema definition for the Run entity, the root of every
// other row. Deleting a run cascades to everything it owns.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("docs_url").
			Immutable().
			Comment("Normalized documentation root URL"),
		field.Enum("status").
			Values("queued", "ingesting", "generating_tasks", "running", "evaluating", "completed", "failed", "canceled").
			Default("queued"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.JSON("config", models.RunConfig{}).
			Immutable().
			Comment("Normalized run configuration, frozen at creation"),
		field.JSON("totals", &models.Totals{}).
			Optional().
			Comment("Final aggregate, written by the finalizer"),
		field.Float("cost_estimate").
			Default(0).
			Comment("Monotone run-level cost total in USD"),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("artifacts", RunArtifact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("workers", RunWorker.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("executions", TaskExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", RunEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("errors", RunError.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("evaluations", TaskEvaluation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("skill_session", SkillSession.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "started_at"),
	}
}
