package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for a synthesized or user-supplied task.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("name"),
		field.Text("description"),
		field.String("category"),
		field.String("difficulty"),
		field.JSON("expected_signals", []string{}).
			Optional().
			Comment("Strings the deterministic guard looks for in answers"),
		field.Enum("status").
			Values("pending", "running", "passed", "failed", "error", "skipped").
			Default("pending"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("tasks").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("run_id", "status"),
	}
}
