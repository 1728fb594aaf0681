package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// RunEvent holds the schema definition for one append-only run event. The
// integer primary key is the global stream cursor; seq is dense per run and
// guarded by a unique index, which is what the optimistic append loop in the
// store retries against.
type RunEvent struct {
	ent.Schema
}

// Fields of the RunEvent.
func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Immutable(),
		field.Int("seq").
			Immutable().
			Comment("Dense per-run sequence starting at 1"),
		field.String("event_type").
			Immutable(),
		field.JSON("payload", models.EventPayload{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RunEvent.
func (RunEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("events").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunEvent.
func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "seq").
			Unique(),
		index.Fields("run_id", "id"),
	}
}
