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
	"github.com/dhiyaancnirmal/mintaborate/ent/stepcitation"
)

// StepCitationUpdate is the builder for updating StepCitation entities.
type StepCitationUpdate struct {
	config
	hooks    []Hook
	mutation *StepCitationMutation
}

// Where appends a list predicates to the StepCitationUpdate builder.
func (_u *StepCitationUpdate) Where(ps ...predicate.StepCitation) *StepCitationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the StepCitationMutation object of the builder.
func (_u *StepCitationUpdate) Mutation() *StepCitationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepCitationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepCitationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepCitationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepCitationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepCitationUpdate) check() error {
	if _u.mutation.StepCleared() && len(_u.mutation.StepIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepCitation.step"`)
	}
	return nil
}

func (_u *StepCitationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepcitation.Table, stepcitation.Columns, sqlgraph.NewFieldSpec(stepcitation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SnippetHashCleared() {
		_spec.ClearField(stepcitation.FieldSnippetHash, field.TypeString)
	}
	if _u.mutation.StartOffsetCleared() {
		_spec.ClearField(stepcitation.FieldStartOffset, field.TypeInt)
	}
	if _u.mutation.EndOffsetCleared() {
		_spec.ClearField(stepcitation.FieldEndOffset, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepcitation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepCitationUpdateOne is the builder for updating a single StepCitation entity.
type StepCitationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepCitationMutation
}

// Mutation returns the StepCitationMutation object of the builder.
func (_u *StepCitationUpdateOne) Mutation() *StepCitationMutation {
	return _u.mutation
}

// Where appends a list predicates to the StepCitationUpdate builder.
func (_u *StepCitationUpdateOne) Where(ps ...predicate.StepCitation) *StepCitationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepCitationUpdateOne) Select(field string, fields ...string) *StepCitationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StepCitation entity.
func (_u *StepCitationUpdateOne) Save(ctx context.Context) (*StepCitation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepCitationUpdateOne) SaveX(ctx context.Context) *StepCitation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepCitationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepCitationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepCitationUpdateOne) check() error {
	if _u.mutation.StepCleared() && len(_u.mutation.StepIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepCitation.step"`)
	}
	return nil
}

func (_u *StepCitationUpdateOne) sqlSave(ctx context.Context) (_node *StepCitation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepcitation.Table, stepcitation.Columns, sqlgraph.NewFieldSpec(stepcitation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StepCitation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stepcitation.FieldID)
		for _, f := range fields {
			if !stepcitation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stepcitation.FieldID {
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
	if _u.mutation.SnippetHashCleared() {
		_spec.ClearField(stepcitation.FieldSnippetHash, field.TypeString)
	}
	if _u.mutation.StartOffsetCleared() {
		_spec.ClearField(stepcitation.FieldStartOffset, field.TypeInt)
	}
	if _u.mutation.EndOffsetCleared() {
		_spec.ClearField(stepcitation.FieldEndOffset, field.TypeInt)
	}
	_node = &StepCitation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepcitation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
