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
	"github.com/dhiyaancnirmal/mintaborate/ent/runworker"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// RunWorkerUpdate is the builder for updating RunWorker entities.
type RunWorkerUpdate struct {
	config
	hooks    []Hook
	mutation *RunWorkerMutation
}

// Where appends a list predicates to the RunWorkerUpdate builder.
func (_u *RunWorkerUpdate) Where(ps ...predicate.RunWorker) *RunWorkerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkerLabel sets the "worker_label" field.
func (_u *RunWorkerUpdate) SetWorkerLabel(v string) *RunWorkerUpdate {
	_u.mutation.SetWorkerLabel(v)
	return _u
}

// SetNillableWorkerLabel sets the "worker_label" field if the given value is not nil.
func (_u *RunWorkerUpdate) SetNillableWorkerLabel(v *string) *RunWorkerUpdate {
	if v != nil {
		_u.SetWorkerLabel(*v)
	}
	return _u
}

// SetModelProvider sets the "model_provider" field.
func (_u *RunWorkerUpdate) SetModelProvider(v string) *RunWorkerUpdate {
	_u.mutation.SetModelProvider(v)
	return _u
}

// SetNillableModelProvider sets the "model_provider" field if the given value is not nil.
func (_u *RunWorkerUpdate) SetNillableModelProvider(v *string) *RunWorkerUpdate {
	if v != nil {
		_u.SetModelProvider(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *RunWorkerUpdate) SetModelName(v string) *RunWorkerUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *RunWorkerUpdate) SetNillableModelName(v *string) *RunWorkerUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetModelConfig sets the "model_config" field.
func (_u *RunWorkerUpdate) SetModelConfig(v models.ModelConfig) *RunWorkerUpdate {
	_u.mutation.SetModelConfig(v)
	return _u
}

// SetNillableModelConfig sets the "model_config" field if the given value is not nil.
func (_u *RunWorkerUpdate) SetNillableModelConfig(v *models.ModelConfig) *RunWorkerUpdate {
	if v != nil {
		_u.SetModelConfig(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunWorkerUpdate) SetStatus(v runworker.Status) *RunWorkerUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunWorkerUpdate) SetNillableStatus(v *runworker.Status) *RunWorkerUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the RunWorkerMutation object of the builder.
func (_u *RunWorkerUpdate) Mutation() *RunWorkerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunWorkerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunWorkerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunWorkerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunWorkerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunWorkerUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := runworker.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RunWorker.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunWorker.run"`)
	}
	return nil
}

func (_u *RunWorkerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runworker.Table, runworker.Columns, sqlgraph.NewFieldSpec(runworker.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkerLabel(); ok {
		_spec.SetField(runworker.FieldWorkerLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelProvider(); ok {
		_spec.SetField(runworker.FieldModelProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(runworker.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelConfig(); ok {
		_spec.SetField(runworker.FieldModelConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runworker.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runworker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunWorkerUpdateOne is the builder for updating a single RunWorker entity.
type RunWorkerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunWorkerMutation
}

// SetWorkerLabel sets the "worker_label" field.
func (_u *RunWorkerUpdateOne) SetWorkerLabel(v string) *RunWorkerUpdateOne {
	_u.mutation.SetWorkerLabel(v)
	return _u
}

// SetNillableWorkerLabel sets the "worker_label" field if the given value is not nil.
func (_u *RunWorkerUpdateOne) SetNillableWorkerLabel(v *string) *RunWorkerUpdateOne {
	if v != nil {
		_u.SetWorkerLabel(*v)
	}
	return _u
}

// SetModelProvider sets the "model_provider" field.
func (_u *RunWorkerUpdateOne) SetModelProvider(v string) *RunWorkerUpdateOne {
	_u.mutation.SetModelProvider(v)
	return _u
}

// SetNillableModelProvider sets the "model_provider" field if the given value is not nil.
func (_u *RunWorkerUpdateOne) SetNillableModelProvider(v *string) *RunWorkerUpdateOne {
	if v != nil {
		_u.SetModelProvider(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *RunWorkerUpdateOne) SetModelName(v string) *RunWorkerUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *RunWorkerUpdateOne) SetNillableModelName(v *string) *RunWorkerUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetModelConfig sets the "model_config" field.
func (_u *RunWorkerUpdateOne) SetModelConfig(v models.ModelConfig) *RunWorkerUpdateOne {
	_u.mutation.SetModelConfig(v)
	return _u
}

// SetNillableModelConfig sets the "model_config" field if the given value is not nil.
func (_u *RunWorkerUpdateOne) SetNillableModelConfig(v *models.ModelConfig) *RunWorkerUpdateOne {
	if v != nil {
		_u.SetModelConfig(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunWorkerUpdateOne) SetStatus(v runworker.Status) *RunWorkerUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunWorkerUpdateOne) SetNillableStatus(v *runworker.Status) *RunWorkerUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the RunWorkerMutation object of the builder.
func (_u *RunWorkerUpdateOne) Mutation() *RunWorkerMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunWorkerUpdate builder.
func (_u *RunWorkerUpdateOne) Where(ps ...predicate.RunWorker) *RunWorkerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunWorkerUpdateOne) Select(field string, fields ...string) *RunWorkerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunWorker entity.
func (_u *RunWorkerUpdateOne) Save(ctx context.Context) (*RunWorker, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunWorkerUpdateOne) SaveX(ctx context.Context) *RunWorker {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunWorkerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunWorkerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunWorkerUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := runworker.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RunWorker.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunWorker.run"`)
	}
	return nil
}

func (_u *RunWorkerUpdateOne) sqlSave(ctx context.Context) (_node *RunWorker, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runworker.Table, runworker.Columns, sqlgraph.NewFieldSpec(runworker.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunWorker.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runworker.FieldID)
		for _, f := range fields {
			if !runworker.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runworker.FieldID {
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
	if value, ok := _u.mutation.WorkerLabel(); ok {
		_spec.SetField(runworker.FieldWorkerLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelProvider(); ok {
		_spec.SetField(runworker.FieldModelProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(runworker.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelConfig(); ok {
		_spec.SetField(runworker.FieldModelConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runworker.FieldStatus, field.TypeEnum, value)
	}
	_node = &RunWorker{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runworker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
