// Code generated by ent, DO NOT EDIT.

package runartifact

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldEQ(FieldRunID, v))
}

// ArtifactType applies equality check predicate on the "artifact_type" field. It's identical to ArtifactTypeEQ.
func ArtifactType(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldEQ(FieldArtifactType, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldEQ(FieldSourceURL, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldEQ(FieldContent, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldEQ(FieldContentHash, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldContainsFold(FieldRunID, v))
}

// ArtifactTypeEQ applies the EQ predicate on the "artifact_type" field.
func ArtifactTypeEQ(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldEQ(FieldArtifactType, v))
}

// ArtifactTypeNEQ applies the NEQ predicate on the "artifact_type" field.
func ArtifactTypeNEQ(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldNEQ(FieldArtifactType, v))
}

// ArtifactTypeIn applies the In predicate on the "artifact_type" field.
func ArtifactTypeIn(vs ...string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldIn(FieldArtifactType, vs...))
}

// ArtifactTypeNotIn applies the NotIn predicate on the "artifact_type" field.
func ArtifactTypeNotIn(vs ...string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldNotIn(FieldArtifactType, vs...))
}

// ArtifactTypeGT applies the GT predicate on the "artifact_type" field.
func ArtifactTypeGT(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldGT(FieldArtifactType, v))
}

// ArtifactTypeGTE applies the GTE predicate on the "artifact_type" field.
func ArtifactTypeGTE(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldGTE(FieldArtifactType, v))
}

// ArtifactTypeLT applies the LT predicate on the "artifact_type" field.
func ArtifactTypeLT(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldLT(FieldArtifactType, v))
}

// ArtifactTypeLTE applies the LTE predicate on the "artifact_type" field.
func ArtifactTypeLTE(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldLTE(FieldArtifactType, v))
}

// ArtifactTypeContains applies the Contains predicate on the "artifact_type" field.
func ArtifactTypeContains(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldContains(FieldArtifactType, v))
}

// ArtifactTypeHasPrefix applies the HasPrefix predicate on the "artifact_type" field.
func ArtifactTypeHasPrefix(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldHasPrefix(FieldArtifactType, v))
}

// ArtifactTypeHasSuffix applies the HasSuffix predicate on the "artifact_type" field.
func ArtifactTypeHasSuffix(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldHasSuffix(FieldArtifactType, v))
}

// ArtifactTypeEqualFold applies the EqualFold predicate on the "artifact_type" field.
func ArtifactTypeEqualFold(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldEqualFold(FieldArtifactType, v))
}

// ArtifactTypeContainsFold applies the ContainsFold predicate on the "artifact_type" field.
func ArtifactTypeContainsFold(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldContainsFold(FieldArtifactType, v))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldContainsFold(FieldSourceURL, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldContainsFold(FieldContent, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldContainsFold(FieldContentHash, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.RunArtifact {
	return predicate.RunArtifact(sql.FieldNotNull(FieldMetadata))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.RunArtifact {
	return predicate.RunArtifact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.RunArtifact {
	return predicate.RunArtifact(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RunArtifact) predicate.RunArtifact {
	return predicate.RunArtifact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RunArtifact) predicate.RunArtifact {
	return predicate.RunArtifact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RunArtifact) predicate.RunArtifact {
	return predicate.RunArtifact(sql.NotPredicates(p))
}
