// Code generated by ent, DO NOT EDIT.

package stepcitation

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldLTE(FieldID, id))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldEQ(FieldStepID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldEQ(FieldSource, v))
}

// SnippetHash applies equality check predicate on the "snippet_hash" field. It's identical to SnippetHashEQ.
func SnippetHash(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldEQ(FieldSnippetHash, v))
}

// Excerpt applies equality check predicate on the "excerpt" field. It's identical to ExcerptEQ.
func Excerpt(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldEQ(FieldExcerpt, v))
}

// StartOffset applies equality check predicate on the "start_offset" field. It's identical to StartOffsetEQ.
func StartOffset(v int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldEQ(FieldStartOffset, v))
}

// EndOffset applies equality check predicate on the "end_offset" field. It's identical to EndOffsetEQ.
func EndOffset(v int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldEQ(FieldEndOffset, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldNotIn(FieldStepID, vs...))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldContainsFold(FieldSource, v))
}

// SnippetHashEQ applies the EQ predicate on the "snippet_hash" field.
func SnippetHashEQ(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldEQ(FieldSnippetHash, v))
}

// SnippetHashNEQ applies the NEQ predicate on the "snippet_hash" field.
func SnippetHashNEQ(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldNEQ(FieldSnippetHash, v))
}

// SnippetHashIn applies the In predicate on the "snippet_hash" field.
func SnippetHashIn(vs ...string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldIn(FieldSnippetHash, vs...))
}

// SnippetHashNotIn applies the NotIn predicate on the "snippet_hash" field.
func SnippetHashNotIn(vs ...string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldNotIn(FieldSnippetHash, vs...))
}

// SnippetHashGT applies the GT predicate on the "snippet_hash" field.
func SnippetHashGT(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldGT(FieldSnippetHash, v))
}

// SnippetHashGTE applies the GTE predicate on the "snippet_hash" field.
func SnippetHashGTE(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldGTE(FieldSnippetHash, v))
}

// SnippetHashLT applies the LT predicate on the "snippet_hash" field.
func SnippetHashLT(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldLT(FieldSnippetHash, v))
}

// SnippetHashLTE applies the LTE predicate on the "snippet_hash" field.
func SnippetHashLTE(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldLTE(FieldSnippetHash, v))
}

// SnippetHashContains applies the Contains predicate on the "snippet_hash" field.
func SnippetHashContains(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldContains(FieldSnippetHash, v))
}

// SnippetHashHasPrefix applies the HasPrefix predicate on the "snippet_hash" field.
func SnippetHashHasPrefix(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldHasPrefix(FieldSnippetHash, v))
}

// SnippetHashHasSuffix applies the HasSuffix predicate on the "snippet_hash" field.
func SnippetHashHasSuffix(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldHasSuffix(FieldSnippetHash, v))
}

// SnippetHashIsNil applies the IsNil predicate on the "snippet_hash" field.
func SnippetHashIsNil() predicate.StepCitation {
	return predicate.StepCitation(sql.FieldIsNull(FieldSnippetHash))
}

// SnippetHashNotNil applies the NotNil predicate on the "snippet_hash" field.
func SnippetHashNotNil() predicate.StepCitation {
	return predicate.StepCitation(sql.FieldNotNull(FieldSnippetHash))
}

// SnippetHashEqualFold applies the EqualFold predicate on the "snippet_hash" field.
func SnippetHashEqualFold(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldEqualFold(FieldSnippetHash, v))
}

// SnippetHashContainsFold applies the ContainsFold predicate on the "snippet_hash" field.
func SnippetHashContainsFold(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldContainsFold(FieldSnippetHash, v))
}

// ExcerptEQ applies the EQ predicate on the "excerpt" field.
func ExcerptEQ(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldEQ(FieldExcerpt, v))
}

// ExcerptNEQ applies the NEQ predicate on the "excerpt" field.
func ExcerptNEQ(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldNEQ(FieldExcerpt, v))
}

// ExcerptIn applies the In predicate on the "excerpt" field.
func ExcerptIn(vs ...string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldIn(FieldExcerpt, vs...))
}

// ExcerptNotIn applies the NotIn predicate on the "excerpt" field.
func ExcerptNotIn(vs ...string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldNotIn(FieldExcerpt, vs...))
}

// ExcerptGT applies the GT predicate on the "excerpt" field.
func ExcerptGT(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldGT(FieldExcerpt, v))
}

// ExcerptGTE applies the GTE predicate on the "excerpt" field.
func ExcerptGTE(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldGTE(FieldExcerpt, v))
}

// ExcerptLT applies the LT predicate on the "excerpt" field.
func ExcerptLT(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldLT(FieldExcerpt, v))
}

// ExcerptLTE applies the LTE predicate on the "excerpt" field.
func ExcerptLTE(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldLTE(FieldExcerpt, v))
}

// ExcerptContains applies the Contains predicate on the "excerpt" field.
func ExcerptContains(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldContains(FieldExcerpt, v))
}

// ExcerptHasPrefix applies the HasPrefix predicate on the "excerpt" field.
func ExcerptHasPrefix(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldHasPrefix(FieldExcerpt, v))
}

// ExcerptHasSuffix applies the HasSuffix predicate on the "excerpt" field.
func ExcerptHasSuffix(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldHasSuffix(FieldExcerpt, v))
}

// ExcerptEqualFold applies the EqualFold predicate on the "excerpt" field.
func ExcerptEqualFold(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldEqualFold(FieldExcerpt, v))
}

// ExcerptContainsFold applies the ContainsFold predicate on the "excerpt" field.
func ExcerptContainsFold(v string) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldContainsFold(FieldExcerpt, v))
}

// StartOffsetEQ applies the EQ predicate on the "start_offset" field.
func StartOffsetEQ(v int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldEQ(FieldStartOffset, v))
}

// StartOffsetNEQ applies the NEQ predicate on the "start_offset" field.
func StartOffsetNEQ(v int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldNEQ(FieldStartOffset, v))
}

// StartOffsetIn applies the In predicate on the "start_offset" field.
func StartOffsetIn(vs ...int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldIn(FieldStartOffset, vs...))
}

// StartOffsetNotIn applies the NotIn predicate on the "start_offset" field.
func StartOffsetNotIn(vs ...int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldNotIn(FieldStartOffset, vs...))
}

// StartOffsetGT applies the GT predicate on the "start_offset" field.
func StartOffsetGT(v int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldGT(FieldStartOffset, v))
}

// StartOffsetGTE applies the GTE predicate on the "start_offset" field.
func StartOffsetGTE(v int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldGTE(FieldStartOffset, v))
}

// StartOffsetLT applies the LT predicate on the "start_offset" field.
func StartOffsetLT(v int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldLT(FieldStartOffset, v))
}

// StartOffsetLTE applies the LTE predicate on the "start_offset" field.
func StartOffsetLTE(v int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldLTE(FieldStartOffset, v))
}

// StartOffsetIsNil applies the IsNil predicate on the "start_offset" field.
func StartOffsetIsNil() predicate.StepCitation {
	return predicate.StepCitation(sql.FieldIsNull(FieldStartOffset))
}

// StartOffsetNotNil applies the NotNil predicate on the "start_offset" field.
func StartOffsetNotNil() predicate.StepCitation {
	return predicate.StepCitation(sql.FieldNotNull(FieldStartOffset))
}

// EndOffsetEQ applies the EQ predicate on the "end_offset" field.
func EndOffsetEQ(v int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldEQ(FieldEndOffset, v))
}

// EndOffsetNEQ applies the NEQ predicate on the "end_offset" field.
func EndOffsetNEQ(v int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldNEQ(FieldEndOffset, v))
}

// EndOffsetIn applies the In predicate on the "end_offset" field.
func EndOffsetIn(vs ...int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldIn(FieldEndOffset, vs...))
}

// EndOffsetNotIn applies the NotIn predicate on the "end_offset" field.
func EndOffsetNotIn(vs ...int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldNotIn(FieldEndOffset, vs...))
}

// EndOffsetGT applies the GT predicate on the "end_offset" field.
func EndOffsetGT(v int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldGT(FieldEndOffset, v))
}

// EndOffsetGTE applies the GTE predicate on the "end_offset" field.
func EndOffsetGTE(v int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldGTE(FieldEndOffset, v))
}

// EndOffsetLT applies the LT predicate on the "end_offset" field.
func EndOffsetLT(v int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldLT(FieldEndOffset, v))
}

// EndOffsetLTE applies the LTE predicate on the "end_offset" field.
func EndOffsetLTE(v int) predicate.StepCitation {
	return predicate.StepCitation(sql.FieldLTE(FieldEndOffset, v))
}

// EndOffsetIsNil applies the IsNil predicate on the "end_offset" field.
func EndOffsetIsNil() predicate.StepCitation {
	return predicate.StepCitation(sql.FieldIsNull(FieldEndOffset))
}

// EndOffsetNotNil applies the NotNil predicate on the "end_offset" field.
func EndOffsetNotNil() predicate.StepCitation {
	return predicate.StepCitation(sql.FieldNotNull(FieldEndOffset))
}

// HasStep applies the HasEdge predicate on the "step" edge.
func HasStep() predicate.StepCitation {
	return predicate.StepCitation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StepTable, StepColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepWith applies the HasEdge predicate on the "step" edge with a given conditions (other predicates).
func HasStepWith(preds ...predicate.TaskStep) predicate.StepCitation {
	return predicate.StepCitation(func(s *sql.Selector) {
		step := newStepStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StepCitation) predicate.StepCitation {
	return predicate.StepCitation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StepCitation) predicate.StepCitation {
	return predicate.StepCitation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StepCitation) predicate.StepCitation {
	return predicate.StepCitation(sql.NotPredicates(p))
}
