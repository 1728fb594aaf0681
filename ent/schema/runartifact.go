package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunArtifact holds the schema definition for one ingested document.
// Uniqueness is (run_id, artifact_type, source_url): re-ingestion overwrites.
type RunArtifact struct {
	ent.Schema
}

// Fields of the RunArtifact.
func (RunArtifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Immutable(),
		field.String("artifact_type").
			Comment("page, llms_txt, llms_full or skill"),
		field.String("source_url"),
		field.Text("content"),
		field.String("content_hash").
			Comment("sha256 hex of content"),
		field.JSON("metadata", map[string]string{}).
			Optional(),
	}
}

// Edges of the RunArtifact.
func (RunArtifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("artifacts").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunArtifact.
func (RunArtifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "artifact_type", "source_url").
			Unique(),
	}
}
