package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// RunWorker holds the schema definition for one provisioned model-backed
// worker. Labels are unique per run so provisioning stays idempotent.
type RunWorker struct {
	ent.Schema
}

// Fields of the RunWorker.
func (RunWorker) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("worker_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("worker_label").
			Comment("Stable label, e.g. worker-1"),
		field.String("model_provider"),
		field.String("model_name"),
		field.JSON("model_config", models.ModelConfig{}),
		field.Enum("status").
			Values("idle", "running", "done", "error").
			Default("idle"),
	}
}

// Edges of the RunWorker.
func (RunWorker) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("workers").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunWorker.
func (RunWorker) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "worker_label").
			Unique(),
	}
}
