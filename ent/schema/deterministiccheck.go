package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeterministicCheck holds the schema definition for one non-LLM evaluation
// gate result, persisted per execution for inspection.
type DeterministicCheck struct {
	ent.Schema
}

// Fields of the DeterministicCheck.
func (DeterministicCheck) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_execution_id").
			Immutable(),
		field.String("name").
			Immutable(),
		field.Bool("passed").
			Immutable(),
		field.Float("score_delta").
			Immutable().
			Comment("Score cap applied when the check fails, zero otherwise"),
		field.Text("details").
			Optional().
			Immutable(),
	}
}

// Edges of the DeterministicCheck.
func (DeterministicCheck) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", TaskExecution.Type).
			Ref("checks").
			Field("task_execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DeterministicCheck.
func (DeterministicCheck) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_execution_id"),
	}
}
