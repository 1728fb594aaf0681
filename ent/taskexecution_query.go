// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dhiyaancnirmal/mintaborate/ent/deterministiccheck"
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
	"github.com/dhiyaancnirmal/mintaborate/ent/run"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskexecution"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskstep"
)

// TaskExecutionQuery is the builder for querying TaskExecution entities.
type TaskExecutionQuery struct {
	config
	ctx        *QueryContext
	order      []taskexecution.OrderOption
	inters     []Interceptor
	predicates []predicate.TaskExecution
	withRun    *RunQuery
	withSteps  *TaskStepQuery
	withChecks *DeterministicCheckQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TaskExecutionQuery builder.
func (_q *TaskExecutionQuery) Where(ps ...predicate.TaskExecution) *TaskExecutionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TaskExecutionQuery) Limit(limit int) *TaskExecutionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TaskExecutionQuery) Offset(offset int) *TaskExecutionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TaskExecutionQuery) Unique(unique bool) *TaskExecutionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TaskExecutionQuery) Order(o ...taskexecution.OrderOption) *TaskExecutionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRun chains the current query on the "run" edge.
func (_q *TaskExecutionQuery) QueryRun() *RunQuery {
	query := (&RunClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(taskexecution.Table, taskexecution.FieldID, selector),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskexecution.RunTable, taskexecution.RunColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySteps chains the current query on the "steps" edge.
func (_q *TaskExecutionQuery) QuerySteps() *TaskStepQuery {
	query := (&TaskStepClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(taskexecution.Table, taskexecution.FieldID, selector),
			sqlgraph.To(taskstep.Table, taskstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taskexecution.StepsTable, taskexecution.StepsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryChecks chains the current query on the "checks" edge.
func (_q *TaskExecutionQuery) QueryChecks() *DeterministicCheckQuery {
	query := (&DeterministicCheckClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(taskexecution.Table, taskexecution.FieldID, selector),
			sqlgraph.To(deterministiccheck.Table, deterministiccheck.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taskexecution.ChecksTable, taskexecution.ChecksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TaskExecution entity from the query.
// Returns a *NotFoundError when no TaskExecution was found.
func (_q *TaskExecutionQuery) First(ctx context.Context) (*TaskExecution, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{taskexecution.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TaskExecutionQuery) FirstX(ctx context.Context) *TaskExecution {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TaskExecution ID from the query.
// Returns a *NotFoundError when no TaskExecution ID was found.
func (_q *TaskExecutionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{taskexecution.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TaskExecutionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TaskExecution entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TaskExecution entity is found.
// Returns a *NotFoundError when no TaskExecution entities are found.
func (_q *TaskExecutionQuery) Only(ctx context.Context) (*TaskExecution, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{taskexecution.Label}
	default:
		return nil, &NotSingularError{taskexecution.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TaskExecutionQuery) OnlyX(ctx context.Context) *TaskExecution {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TaskExecution ID in the query.
// Returns a *NotSingularError when more than one TaskExecution ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TaskExecutionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{taskexecution.Label}
	default:
		err = &NotSingularError{taskexecution.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TaskExecutionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TaskExecutions.
func (_q *TaskExecutionQuery) All(ctx context.Context) ([]*TaskExecution, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TaskExecution, *TaskExecutionQuery]()
	return withInterceptors[[]*TaskExecution](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TaskExecutionQuery) AllX(ctx context.Context) []*TaskExecution {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TaskExecution IDs.
func (_q *TaskExecutionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(taskexecution.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TaskExecutionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TaskExecutionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TaskExecutionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TaskExecutionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TaskExecutionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *TaskExecutionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TaskExecutionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TaskExecutionQuery) Clone() *TaskExecutionQuery {
	if _q == nil {
		return nil
	}
	return &TaskExecutionQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]taskexecution.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.TaskExecution{}, _q.predicates...),
		withRun:    _q.withRun.Clone(),
		withSteps:  _q.withSteps.Clone(),
		withChecks: _q.withChecks.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRun tells the query-builder to eager-load the nodes that are connected to
// the "run" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TaskExecutionQuery) WithRun(opts ...func(*RunQuery)) *TaskExecutionQuery {
	query := (&RunClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRun = query
	return _q
}

// WithSteps tells the query-builder to eager-load the nodes that are connected to
// the "steps" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TaskExecutionQuery) WithSteps(opts ...func(*TaskStepQuery)) *TaskExecutionQuery {
	query := (&TaskStepClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSteps = query
	return _q
}

// WithChecks tells the query-builder to eager-load the nodes that are connected to
// the "checks" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TaskExecutionQuery) WithChecks(opts ...func(*DeterministicCheckQuery)) *TaskExecutionQuery {
	query := (&DeterministicCheckClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChecks = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		RunID string `json:"run_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TaskExecution.Query().
//		GroupBy(taskexecution.FieldRunID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TaskExecutionQuery) GroupBy(field string, fields ...string) *TaskExecutionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TaskExecutionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = taskexecution.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		RunID string `json:"run_id,omitempty"`
//	}
//
//	client.TaskExecution.Query().
//		Select(taskexecution.FieldRunID).
//		Scan(ctx, &v)
func (_q *TaskExecutionQuery) Select(fields ...string) *TaskExecutionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TaskExecutionSelect{TaskExecutionQuery: _q}
	sbuild.label = taskexecution.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TaskExecutionSelect configured with the given aggregations.
func (_q *TaskExecutionQuery) Aggregate(fns ...AggregateFunc) *TaskExecutionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TaskExecutionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !taskexecution.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *TaskExecutionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TaskExecution, error) {
	var (
		nodes       = []*TaskExecution{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withRun != nil,
			_q.withSteps != nil,
			_q.withChecks != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TaskExecution).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TaskExecution{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withRun; query != nil {
		if err := _q.loadRun(ctx, query, nodes, nil,
			func(n *TaskExecution, e *Run) { n.Edges.Run = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSteps; query != nil {
		if err := _q.loadSteps(ctx, query, nodes,
			func(n *TaskExecution) { n.Edges.Steps = []*TaskStep{} },
			func(n *TaskExecution, e *TaskStep) { n.Edges.Steps = append(n.Edges.Steps, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withChecks; query != nil {
		if err := _q.loadChecks(ctx, query, nodes,
			func(n *TaskExecution) { n.Edges.Checks = []*DeterministicCheck{} },
			func(n *TaskExecution, e *DeterministicCheck) { n.Edges.Checks = append(n.Edges.Checks, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TaskExecutionQuery) loadRun(ctx context.Context, query *RunQuery, nodes []*TaskExecution, init func(*TaskExecution), assign func(*TaskExecution, *Run)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*TaskExecution)
	for i := range nodes {
		fk := nodes[i].RunID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(run.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "run_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TaskExecutionQuery) loadSteps(ctx context.Context, query *TaskStepQuery, nodes []*TaskExecution, init func(*TaskExecution), assign func(*TaskExecution, *TaskStep)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*TaskExecution)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(taskstep.FieldTaskExecutionID)
	}
	query.Where(predicate.TaskStep(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(taskexecution.StepsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TaskExecutionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "task_execution_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TaskExecutionQuery) loadChecks(ctx context.Context, query *DeterministicCheckQuery, nodes []*TaskExecution, init func(*TaskExecution), assign func(*TaskExecution, *DeterministicCheck)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*TaskExecution)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(deterministiccheck.FieldTaskExecutionID)
	}
	query.Where(predicate.DeterministicCheck(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(taskexecution.ChecksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TaskExecutionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "task_execution_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *TaskExecutionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TaskExecutionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(taskexecution.Table, taskexecution.Columns, sqlgraph.NewFieldSpec(taskexecution.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskexecution.FieldID)
		for i := range fields {
			if fields[i] != taskexecution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRun != nil {
			_spec.Node.AddColumnOnce(taskexecution.FieldRunID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *TaskExecutionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(taskexecution.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = taskexecution.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TaskExecutionGroupBy is the group-by builder for TaskExecution entities.
type TaskExecutionGroupBy struct {
	selector
	build *TaskExecutionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TaskExecutionGroupBy) Aggregate(fns ...AggregateFunc) *TaskExecutionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TaskExecutionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaskExecutionQuery, *TaskExecutionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TaskExecutionGroupBy) sqlScan(ctx context.Context, root *TaskExecutionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TaskExecutionSelect is the builder for selecting fields of TaskExecution entities.
type TaskExecutionSelect struct {
	*TaskExecutionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TaskExecutionSelect) Aggregate(fns ...AggregateFunc) *TaskExecutionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TaskExecutionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaskExecutionQuery, *TaskExecutionSelect](ctx, _s.TaskExecutionQuery, _s, _s.inters, v)
}

func (_s *TaskExecutionSelect) sqlScan(ctx context.Context, root *TaskExecutionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
