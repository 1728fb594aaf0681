// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dhiyaancnirmal/mintaborate/ent/deterministiccheck"
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
)

// DeterministicCheckUpdate is the builder for updating DeterministicCheck entities.
type DeterministicCheckUpdate struct {
	config
	hooks    []Hook
	mutation *DeterministicCheckMutation
}

// Where appends a list predicates to the DeterministicCheckUpdate builder.
func (_u *DeterministicCheckUpdate) Where(ps ...predicate.DeterministicCheck) *DeterministicCheckUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the DeterministicCheckMutation object of the builder.
func (_u *DeterministicCheckUpdate) Mutation() *DeterministicCheckMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeterministicCheckUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeterministicCheckUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeterministicCheckUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeterministicCheckUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeterministicCheckUpdate) check() error {
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DeterministicCheck.execution"`)
	}
	return nil
}

func (_u *DeterministicCheckUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deterministiccheck.Table, deterministiccheck.Columns, sqlgraph.NewFieldSpec(deterministiccheck.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(deterministiccheck.FieldDetails, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deterministiccheck.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeterministicCheckUpdateOne is the builder for updating a single DeterministicCheck entity.
type DeterministicCheckUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeterministicCheckMutation
}

// Mutation returns the DeterministicCheckMutation object of the builder.
func (_u *DeterministicCheckUpdateOne) Mutation() *DeterministicCheckMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeterministicCheckUpdate builder.
func (_u *DeterministicCheckUpdateOne) Where(ps ...predicate.DeterministicCheck) *DeterministicCheckUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeterministicCheckUpdateOne) Select(field string, fields ...string) *DeterministicCheckUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeterministicCheck entity.
func (_u *DeterministicCheckUpdateOne) Save(ctx context.Context) (*DeterministicCheck, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeterministicCheckUpdateOne) SaveX(ctx context.Context) *DeterministicCheck {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeterministicCheckUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeterministicCheckUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeterministicCheckUpdateOne) check() error {
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DeterministicCheck.execution"`)
	}
	return nil
}

func (_u *DeterministicCheckUpdateOne) sqlSave(ctx context.Context) (_node *DeterministicCheck, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deterministiccheck.Table, deterministiccheck.Columns, sqlgraph.NewFieldSpec(deterministiccheck.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeterministicCheck.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deterministiccheck.FieldID)
		for _, f := range fields {
			if !deterministiccheck.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deterministiccheck.FieldID {
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
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(deterministiccheck.FieldDetails, field.TypeString)
	}
	_node = &DeterministicCheck{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deterministiccheck.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
