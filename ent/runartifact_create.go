// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dhiyaancnirmal/mintaborate/ent/run"
	"github.com/dhiyaancnirmal/mintaborate/ent/runartifact"
)

// RunArtifactCreate is the builder for creating a RunArtifact entity.
type RunArtifactCreate struct {
	config
	mutation *RunArtifactMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *RunArtifactCreate) SetRunID(v string) *RunArtifactCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetArtifactType sets the "artifact_type" field.
func (_c *RunArtifactCreate) SetArtifactType(v string) *RunArtifactCreate {
	_c.mutation.SetArtifactType(v)
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *RunArtifactCreate) SetSourceURL(v string) *RunArtifactCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *RunArtifactCreate) SetContent(v string) *RunArtifactCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *RunArtifactCreate) SetContentHash(v string) *RunArtifactCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *RunArtifactCreate) SetMetadata(v map[string]string) *RunArtifactCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *RunArtifactCreate) SetRun(v *Run) *RunArtifactCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the RunArtifactMutation object of the builder.
func (_c *RunArtifactCreate) Mutation() *RunArtifactMutation {
	return _c.mutation
}

// Save creates the RunArtifact in the database.
func (_c *RunArtifactCreate) Save(ctx context.Context) (*RunArtifact, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunArtifactCreate) SaveX(ctx context.Context) *RunArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunArtifactCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunArtifact.run_id"`)}
	}
	if _, ok := _c.mutation.ArtifactType(); !ok {
		return &ValidationError{Name: "artifact_type", err: errors.New(`ent: missing required field "RunArtifact.artifact_type"`)}
	}
	if _, ok := _c.mutation.SourceURL(); !ok {
		return &ValidationError{Name: "source_url", err: errors.New(`ent: missing required field "RunArtifact.source_url"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "RunArtifact.content"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "RunArtifact.content_hash"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "RunArtifact.run"`)}
	}
	return nil
}

func (_c *RunArtifactCreate) sqlSave(ctx context.Context) (*RunArtifact, error) {
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

func (_c *RunArtifactCreate) createSpec() (*RunArtifact, *sqlgraph.CreateSpec) {
	var (
		_node = &RunArtifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runartifact.Table, sqlgraph.NewFieldSpec(runartifact.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ArtifactType(); ok {
		_spec.SetField(runartifact.FieldArtifactType, field.TypeString, value)
		_node.ArtifactType = value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(runartifact.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(runartifact.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(runartifact.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(runartifact.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runartifact.RunTable,
			Columns: []string{runartifact.RunColumn},
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

// RunArtifactCreateBulk is the builder for creating many RunArtifact entities in bulk.
type RunArtifactCreateBulk struct {
	config
	err      error
	builders []*RunArtifactCreate
}

// Save creates the RunArtifact entities in the database.
func (_c *RunArtifactCreateBulk) Save(ctx context.Context) ([]*RunArtifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunArtifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunArtifactMutation)
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
func (_c *RunArtifactCreateBulk) SaveX(ctx context.Context) []*RunArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
