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
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
	"github.com/dhiyaancnirmal/mintaborate/ent/stepcitation"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskexecution"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskstep"
)

// TaskStepQuery is the builder for querying TaskStep entities.
type TaskStepQuery struct {
	config
	ctx           *QueryContext
	order         []taskstep.OrderOption
	inters        []Interceptor
	predicates    []predicate.TaskStep
	withExecution *TaskExecutionQuery
	withCitations *StepCitationQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TaskStepQuery builder.
func (_q *TaskStepQuery) Where(ps ...predicate.TaskStep) *TaskStepQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TaskStepQuery) Limit(limit int) *TaskStepQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TaskStepQuery) Offset(offset int) *TaskStepQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TaskStepQuery) Unique(unique bool) *TaskStepQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TaskStepQuery) Order(o ...taskstep.OrderOption) *TaskStepQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryExecution chains the current query on the "execution" edge.
func (_q *TaskStepQuery) QueryExecution() *TaskExecutionQuery {
	query := (&TaskExecutionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(taskstep.Table, taskstep.FieldID, selector),
			sqlgraph.To(taskexecution.Table, taskexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskstep.ExecutionTable, taskstep.ExecutionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCitations chains the current query on the "citations" edge.
func (_q *TaskStepQuery) QueryCitations() *StepCitationQuery {
	query := (&StepCitationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(taskstep.Table, taskstep.FieldID, selector),
			sqlgraph.To(stepcitation.Table, stepcitation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taskstep.CitationsTable, taskstep.CitationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TaskStep entity from the query.
// Returns a *NotFoundError when no TaskStep was found.
func (_q *TaskStepQuery) First(ctx context.Context) (*TaskStep, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{taskstep.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TaskStepQuery) FirstX(ctx context.Context) *TaskStep {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TaskStep ID from the query.
// Returns a *NotFoundError when no TaskStep ID was found.
func (_q *TaskStepQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{taskstep.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TaskStepQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TaskStep entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TaskStep entity is found.
// Returns a *NotFoundError when no TaskStep entities are found.
func (_q *TaskStepQuery) Only(ctx context.Context) (*TaskStep, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{taskstep.Label}
	default:
		return nil, &NotSingularError{taskstep.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TaskStepQuery) OnlyX(ctx context.Context) *TaskStep {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TaskStep ID in the query.
// Returns a *NotSingularError when more than one TaskStep ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TaskStepQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{taskstep.Label}
	default:
		err = &NotSingularError{taskstep.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TaskStepQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TaskSteps.
func (_q *TaskStepQuery) All(ctx context.Context) ([]*TaskStep, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TaskStep, *TaskStepQuery]()
	return withInterceptors[[]*TaskStep](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TaskStepQuery) AllX(ctx context.Context) []*TaskStep {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TaskStep IDs.
func (_q *TaskStepQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(taskstep.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TaskStepQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TaskStepQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TaskStepQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TaskStepQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TaskStepQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *TaskStepQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TaskStepQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TaskStepQuery) Clone() *TaskStepQuery {
	if _q == nil {
		return nil
	}
	return &TaskStepQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]taskstep.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.TaskStep{}, _q.predicates...),
		withExecution: _q.withExecution.Clone(),
		withCitations: _q.withCitations.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithExecution tells the query-builder to eager-load the nodes that are connected to
// the "execution" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TaskStepQuery) WithExecution(opts ...func(*TaskExecutionQuery)) *TaskStepQuery {
	query := (&TaskExecutionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExecution = query
	return _q
}

// WithCitations tells the query-builder to eager-load the nodes that are connected to
// the "citations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TaskStepQuery) WithCitations(opts ...func(*StepCitationQuery)) *TaskStepQuery {
	query := (&StepCitationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCitations = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TaskExecutionID string `json:"task_execution_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TaskStep.Query().
//		GroupBy(taskstep.FieldTaskExecutionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TaskStepQuery) GroupBy(field string, fields ...string) *TaskStepGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TaskStepGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = taskstep.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TaskExecutionID string `json:"task_execution_id,omitempty"`
//	}
//
//	client.TaskStep.Query().
//		Select(taskstep.FieldTaskExecutionID).
//		Scan(ctx, &v)
func (_q *TaskStepQuery) Select(fields ...string) *TaskStepSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TaskStepSelect{TaskStepQuery: _q}
	sbuild.label = taskstep.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TaskStepSelect configured with the given aggregations.
func (_q *TaskStepQuery) Aggregate(fns ...AggregateFunc) *TaskStepSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TaskStepQuery) prepareQuery(ctx context.Context) error {
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
		if !taskstep.ValidColumn(f) {
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

func (_q *TaskStepQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TaskStep, error) {
	var (
		nodes       = []*TaskStep{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withExecution != nil,
			_q.withCitations != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TaskStep).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TaskStep{config: _q.config}
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
	if query := _q.withExecution; query != nil {
		if err := _q.loadExecution(ctx, query, nodes, nil,
			func(n *TaskStep, e *TaskExecution) { n.Edges.Execution = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCitations; query != nil {
		if err := _q.loadCitations(ctx, query, nodes,
			func(n *TaskStep) { n.Edges.Citations = []*StepCitation{} },
			func(n *TaskStep, e *StepCitation) { n.Edges.Citations = append(n.Edges.Citations, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TaskStepQuery) loadExecution(ctx context.Context, query *TaskExecutionQuery, nodes []*TaskStep, init func(*TaskStep), assign func(*TaskStep, *TaskExecution)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*TaskStep)
	for i := range nodes {
		fk := nodes[i].TaskExecutionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(taskexecution.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "task_execution_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TaskStepQuery) loadCitations(ctx context.Context, query *StepCitationQuery, nodes []*TaskStep, init func(*TaskStep), assign func(*TaskStep, *StepCitation)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*TaskStep)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(stepcitation.FieldStepID)
	}
	query.Where(predicate.StepCitation(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(taskstep.CitationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.StepID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "step_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *TaskStepQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TaskStepQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(taskstep.Table, taskstep.Columns, sqlgraph.NewFieldSpec(taskstep.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskstep.FieldID)
		for i := range fields {
			if fields[i] != taskstep.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withExecution != nil {
			_spec.Node.AddColumnOnce(taskstep.FieldTaskExecutionID)
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

func (_q *TaskStepQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(taskstep.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = taskstep.Columns
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

// TaskStepGroupBy is the group-by builder for TaskStep entities.
type TaskStepGroupBy struct {
	selector
	build *TaskStepQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TaskStepGroupBy) Aggregate(fns ...AggregateFunc) *TaskStepGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TaskStepGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaskStepQuery, *TaskStepGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TaskStepGroupBy) sqlScan(ctx context.Context, root *TaskStepQuery, v any) error {
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

// TaskStepSelect is the builder for selecting fields of TaskStep entities.
type TaskStepSelect struct {
	*TaskStepQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TaskStepSelect) Aggregate(fns ...AggregateFunc) *TaskStepSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TaskStepSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaskStepQuery, *TaskStepSelect](ctx, _s.TaskStepQuery, _s, _s.inters, v)
}

func (_s *TaskStepSelect) sqlScan(ctx context.Context, root *TaskStepQuery, v any) error {
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
