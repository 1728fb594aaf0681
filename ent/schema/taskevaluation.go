package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// TaskEvaluation holds the schema definition for the judge's verdict on one
// attempt. One row per (run, task, phase).
type TaskEvaluation struct {
	ent.Schema
}

// Fields of the TaskEvaluation.
func (TaskEvaluation) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Enum("phase").
			Values("baseline", "optimized").
			Immutable(),
		field.JSON("criterion_scores", models.CriterionScores{}),
		field.Bool("pass"),
		field.Bool("quality_pass"),
		field.Bool("validity_pass"),
		field.JSON("validity_blocked_reasons", []models.ValidityBlockReason{}).
			Optional(),
		field.String("failure_class").
			Optional().
			Nillable(),
		field.Text("rationale"),
		field.String("judge_model"),
		field.Float("confidence"),
	}
}

// Edges of the TaskEvaluation.
func (TaskEvaluation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("evaluations").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TaskEvaluation.
func (TaskEvaluation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "phase"),
		index.Fields("run_id", "task_id", "phase").
			Unique(),
	}
}
