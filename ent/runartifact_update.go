// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
	"github.com/dhiyaancnirmal/mintaborate/ent/runartifact"
)

// RunArtifactUpdate is the builder for updating RunArtifact entities.
type RunArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *RunArtifactMutation
}

// Where appends a list predicates to the RunArtifactUpdate builder.
func (_u *RunArtifactUpdate) Where(ps ...predicate.RunArtifact) *RunArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArtifactType sets the "artifact_type" field.
func (_u *RunArtifactUpdate) SetArtifactType(v string) *RunArtifactUpdate {
	_u.mutation.SetArtifactType(v)
	return _u
}

// SetNillableArtifactType sets the "artifact_type" field if the given value is not nil.
func (_u *RunArtifactUpdate) SetNillableArtifactType(v *string) *RunArtifactUpdate {
	if v != nil {
		_u.SetArtifactType(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *RunArtifactUpdate) SetSourceURL(v string) *RunArtifactUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *RunArtifactUpdate) SetNillableSourceURL(v *string) *RunArtifactUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *RunArtifactUpdate) SetContent(v string) *RunArtifactUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *RunArtifactUpdate) SetNillableContent(v *string) *RunArtifactUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *RunArtifactUpdate) SetContentHash(v string) *RunArtifactUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *RunArtifactUpdate) SetNillableContentHash(v *string) *RunArtifactUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *RunArtifactUpdate) SetMetadata(v map[string]string) *RunArtifactUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *RunArtifactUpdate) ClearMetadata() *RunArtifactUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the RunArtifactMutation object of the builder.
func (_u *RunArtifactUpdate) Mutation() *RunArtifactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunArtifactUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunArtifactUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunArtifact.run"`)
	}
	return nil
}

func (_u *RunArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runartifact.Table, runartifact.Columns, sqlgraph.NewFieldSpec(runartifact.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ArtifactType(); ok {
		_spec.SetField(runartifact.FieldArtifactType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(runartifact.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(runartifact.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(runartifact.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(runartifact.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(runartifact.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunArtifactUpdateOne is the builder for updating a single RunArtifact entity.
type RunArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunArtifactMutation
}

// SetArtifactType sets the "artifact_type" field.
func (_u *RunArtifactUpdateOne) SetArtifactType(v string) *RunArtifactUpdateOne {
	_u.mutation.SetArtifactType(v)
	return _u
}

// SetNillableArtifactType sets the "artifact_type" field if the given value is not nil.
func (_u *RunArtifactUpdateOne) SetNillableArtifactType(v *string) *RunArtifactUpdateOne {
	if v != nil {
		_u.SetArtifactType(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *RunArtifactUpdateOne) SetSourceURL(v string) *RunArtifactUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *RunArtifactUpdateOne) SetNillableSourceURL(v *string) *RunArtifactUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *RunArtifactUpdateOne) SetContent(v string) *RunArtifactUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *RunArtifactUpdateOne) SetNillableContent(v *string) *RunArtifactUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *RunArtifactUpdateOne) SetContentHash(v string) *RunArtifactUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *RunArtifactUpdateOne) SetNillableContentHash(v *string) *RunArtifactUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *RunArtifactUpdateOne) SetMetadata(v map[string]string) *RunArtifactUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *RunArtifactUpdateOne) ClearMetadata() *RunArtifactUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the RunArtifactMutation object of the builder.
func (_u *RunArtifactUpdateOne) Mutation() *RunArtifactMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunArtifactUpdate builder.
func (_u *RunArtifactUpdateOne) Where(ps ...predicate.RunArtifact) *RunArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunArtifactUpdateOne) Select(field string, fields ...string) *RunArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunArtifact entity.
func (_u *RunArtifactUpdateOne) Save(ctx context.Context) (*RunArtifact, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunArtifactUpdateOne) SaveX(ctx context.Context) *RunArtifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunArtifactUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunArtifact.run"`)
	}
	return nil
}

func (_u *RunArtifactUpdateOne) sqlSave(ctx context.Context) (_node *RunArtifact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runartifact.Table, runartifact.Columns, sqlgraph.NewFieldSpec(runartifact.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunArtifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runartifact.FieldID)
		for _, f := range fields {
			if !runartifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runartifact.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ArtifactType(); ok {
		_spec.SetField(runartifact.FieldArtifactType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(runartifact.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(runartifact.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(runartifact.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(runartifact.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(runartifact.FieldMetadata, field.TypeJSON)
	}
	_node = &RunArtifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
