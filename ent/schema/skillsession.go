package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// SkillSession holds the schema definition for the optional baseline vs
// optimized comparison. At most one row exists per run.
type SkillSession struct {
	ent.Schema
}

// Fields of the SkillSession.
func (SkillSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Unique().
			Immutable(),
		field.Enum("status").
			Values("pending", "generating", "completed", "skipped", "error").
			Default("pending"),
		field.Enum("source_skill_origin").
			Values("site_skill", "none").
			Default("none"),
		field.JSON("baseline_totals", &models.Totals{}).
			Optional(),
		field.JSON("optimized_totals", &models.Totals{}).
			Optional(),
		field.JSON("delta", &models.Delta{}).
			Optional().
			Comment("Optimized minus baseline, rounded to 4 decimals"),
		field.String("optimized_skill_hash").
			Optional(),
		field.Int("tokens_in").
			Default(0),
		field.Int("tokens_out").
			Default(0),
		field.Float("cost_estimate").
			Default(0).
			Comment("Skill-generation spend; kept off the run cost total"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the SkillSession.
func (SkillSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("skill_session").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}
