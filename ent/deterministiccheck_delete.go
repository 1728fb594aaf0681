// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dhiyaancnirmal/mintaborate/ent/deterministiccheck"
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
)

// DeterministicCheckDelete is the builder for deleting a DeterministicCheck entity.
type DeterministicCheckDelete struct {
	config
	hooks    []Hook
	mutation *DeterministicCheckMutation
}

// Where appends a list predicates to the DeterministicCheckDelete builder.
func (_d *DeterministicCheckDelete) Where(ps ...predicate.DeterministicCheck) *DeterministicCheckDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DeterministicCheckDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeterministicCheckDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DeterministicCheckDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(deterministiccheck.Table, sqlgraph.NewFieldSpec(deterministiccheck.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DeterministicCheckDeleteOne is the builder for deleting a single DeterministicCheck entity.
type DeterministicCheckDeleteOne struct {
	_d *DeterministicCheckDelete
}

// Where appends a list predicates to the DeterministicCheckDelete builder.
func (_d *DeterministicCheckDeleteOne) Where(ps ...predicate.DeterministicCheck) *DeterministicCheckDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DeterministicCheckDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{deterministiccheck.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeterministicCheckDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
