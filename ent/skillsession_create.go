// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dhiyaancnirmal/mintaborate/ent/run"
	"github.com/dhiyaancnirmal/mintaborate/ent/skillsession"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// SkillSessionCreate is the builder for creating a SkillSession entity.
type SkillSessionCreate struct {
	config
	mutation *SkillSessionMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *SkillSessionCreate) SetRunID(v string) *SkillSessionCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SkillSessionCreate) SetStatus(v skillsession.Status) *SkillSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SkillSessionCreate) SetNillableStatus(v *skillsession.Status) *SkillSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSourceSkillOrigin sets the "source_skill_origin" field.
func (_c *SkillSessionCreate) SetSourceSkillOrigin(v skillsession.SourceSkillOrigin) *SkillSessionCreate {
	_c.mutation.SetSourceSkillOrigin(v)
	return _c
}

// SetNillableSourceSkillOrigin sets the "source_skill_origin" field if the given value is not nil.
func (_c *SkillSessionCreate) SetNillableSourceSkillOrigin(v *skillsession.SourceSkillOrigin) *SkillSessionCreate {
	if v != nil {
		_c.SetSourceSkillOrigin(*v)
	}
	return _c
}

// SetBaselineTotals sets the "baseline_totals" field.
func (_c *SkillSessionCreate) SetBaselineTotals(v *models.Totals) *SkillSessionCreate {
	_c.mutation.SetBaselineTotals(v)
	return _c
}

// SetOptimizedTotals sets the "optimized_totals" field.
func (_c *SkillSessionCreate) SetOptimizedTotals(v *models.Totals) *SkillSessionCreate {
	_c.mutation.SetOptimizedTotals(v)
	return _c
}

// SetDelta sets the "delta" field.
func (_c *SkillSessionCreate) SetDelta(v *models.Delta) *SkillSessionCreate {
	_c.mutation.SetDelta(v)
	return _c
}

// SetOptimizedSkillHash sets the "optimized_skill_hash" field.
func (_c *SkillSessionCreate) SetOptimizedSkillHash(v string) *SkillSessionCreate {
	_c.mutation.SetOptimizedSkillHash(v)
	return _c
}

// SetNillableOptimizedSkillHash sets the "optimized_skill_hash" field if the given value is not nil.
func (_c *SkillSessionCreate) SetNillableOptimizedSkillHash(v *string) *SkillSessionCreate {
	if v != nil {
		_c.SetOptimizedSkillHash(*v)
	}
	return _c
}

// SetTokensIn sets the "tokens_in" field.
func (_c *SkillSessionCreate) SetTokensIn(v int) *SkillSessionCreate {
	_c.mutation.SetTokensIn(v)
	return _c
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_c *SkillSessionCreate) SetNillableTokensIn(v *int) *SkillSessionCreate {
	if v != nil {
		_c.SetTokensIn(*v)
	}
	return _c
}

// SetTokensOut sets the "tokens_out" field.
func (_c *SkillSessionCreate) SetTokensOut(v int) *SkillSessionCreate {
	_c.mutation.SetTokensOut(v)
	return _c
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_c *SkillSessionCreate) SetNillableTokensOut(v *int) *SkillSessionCreate {
	if v != nil {
		_c.SetTokensOut(*v)
	}
	return _c
}

// SetCostEstimate sets the "cost_estimate" field.
func (_c *SkillSessionCreate) SetCostEstimate(v float64) *SkillSessionCreate {
	_c.mutation.SetCostEstimate(v)
	return _c
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_c *SkillSessionCreate) SetNillableCostEstimate(v *float64) *SkillSessionCreate {
	if v != nil {
		_c.SetCostEstimate(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SkillSessionCreate) SetErrorMessage(v string) *SkillSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SkillSessionCreate) SetNillableErrorMessage(v *string) *SkillSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SkillSessionCreate) SetUpdatedAt(v time.Time) *SkillSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SkillSessionCreate) SetNillableUpdatedAt(v *time.Time) *SkillSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *SkillSessionCreate) SetRun(v *Run) *SkillSessionCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the SkillSessionMutation object of the builder.
func (_c *SkillSessionCreate) Mutation() *SkillSessionMutation {
	return _c.mutation
}

// Save creates the SkillSession in the database.
func (_c *SkillSessionCreate) Save(ctx context.Context) (*SkillSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillSessionCreate) SaveX(ctx context.Context) *SkillSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := skillsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SourceSkillOrigin(); !ok {
		v := skillsession.DefaultSourceSkillOrigin
		_c.mutation.SetSourceSkillOrigin(v)
	}
	if _, ok := _c.mutation.TokensIn(); !ok {
		v := skillsession.DefaultTokensIn
		_c.mutation.SetTokensIn(v)
	}
	if _, ok := _c.mutation.TokensOut(); !ok {
		v := skillsession.DefaultTokensOut
		_c.mutation.SetTokensOut(v)
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		v := skillsession.DefaultCostEstimate
		_c.mutation.SetCostEstimate(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := skillsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillSessionCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "SkillSession.run_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SkillSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := skillsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SkillSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceSkillOrigin(); !ok {
		return &ValidationError{Name: "source_skill_origin", err: errors.New(`ent: missing required field "SkillSession.source_skill_origin"`)}
	}
	if v, ok := _c.mutation.SourceSkillOrigin(); ok {
		if err := skillsession.SourceSkillOriginValidator(v); err != nil {
			return &ValidationError{Name: "source_skill_origin", err: fmt.Errorf(`ent: validator failed for field "SkillSession.source_skill_origin": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokensIn(); !ok {
		return &ValidationError{Name: "tokens_in", err: errors.New(`ent: missing required field "SkillSession.tokens_in"`)}
	}
	if _, ok := _c.mutation.TokensOut(); !ok {
		return &ValidationError{Name: "tokens_out", err: errors.New(`ent: missing required field "SkillSession.tokens_out"`)}
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		return &ValidationError{Name: "cost_estimate", err: errors.New(`ent: missing required field "SkillSession.cost_estimate"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SkillSession.updated_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "SkillSession.run"`)}
	}
	return nil
}

func (_c *SkillSessionCreate) sqlSave(ctx context.Context) (*SkillSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SkillSessionCreate) createSpec() (*SkillSession, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skillsession.Table, sqlgraph.NewFieldSpec(skillsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(skillsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SourceSkillOrigin(); ok {
		_spec.SetField(skillsession.FieldSourceSkillOrigin, field.TypeEnum, value)
		_node.SourceSkillOrigin = value
	}
	if value, ok := _c.mutation.BaselineTotals(); ok {
		_spec.SetField(skillsession.FieldBaselineTotals, field.TypeJSON, value)
		_node.BaselineTotals = value
	}
	if value, ok := _c.mutation.OptimizedTotals(); ok {
		_spec.SetField(skillsession.FieldOptimizedTotals, field.TypeJSON, value)
		_node.OptimizedTotals = value
	}
	if value, ok := _c.mutation.Delta(); ok {
		_spec.SetField(skillsession.FieldDelta, field.TypeJSON, value)
		_node.Delta = value
	}
	if value, ok := _c.mutation.OptimizedSkillHash(); ok {
		_spec.SetField(skillsession.FieldOptimizedSkillHash, field.TypeString, value)
		_node.OptimizedSkillHash = value
	}
	if value, ok := _c.mutation.TokensIn(); ok {
		_spec.SetField(skillsession.FieldTokensIn, field.TypeInt, value)
		_node.TokensIn = value
	}
	if value, ok := _c.mutation.TokensOut(); ok {
		_spec.SetField(skillsession.FieldTokensOut, field.TypeInt, value)
		_node.TokensOut = value
	}
	if value, ok := _c.mutation.CostEstimate(); ok {
		_spec.SetField(skillsession.FieldCostEstimate, field.TypeFloat64, value)
		_node.CostEstimate = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(skillsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(skillsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   skillsession.RunTable,
			Columns: []string{skillsession.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SkillSessionCreateBulk is the builder for creating many SkillSession entities in bulk.
type SkillSessionCreateBulk struct {
	config
	err      error
	builders []*SkillSessionCreate
}

// Save creates the SkillSession entities in the database.
func (_c *SkillSessionCreateBulk) Save(ctx context.Context) ([]*SkillSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SkillSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SkillSessionCreateBulk) SaveX(ctx context.Context) []*SkillSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
