package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StepCitation holds the schema definition for one citation attached to an
// act step.
type StepCitation struct {
	ent.Schema
}

// Fields of the StepCitation.
func (StepCitation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("step_id").
			Immutable(),
		field.String("source").
			Immutable(),
		field.String("snippet_hash").
			Optional().
			Immutable(),
		field.Text("excerpt").
			Immutable(),
		field.Int("start_offset").
			Optional().
			Nillable().
			Immutable(),
		field.Int("end_offset").
			Optional().
			Nillable().
			Immutable(),
	}
}

// Edges of the StepCitation.
func (StepCitation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("step", TaskStep.Type).
			Ref("citations").
			Field("step_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StepCitation.
func (StepCitation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("step_id"),
	}
}
