// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/dhiyaancnirmal/mintaborate/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dhiyaancnirmal/mintaborate/ent/deterministiccheck"
	"github.com/dhiyaancnirmal/mintaborate/ent/run"
	"github.com/dhiyaancnirmal/mintaborate/ent/runartifact"
	"github.com/dhiyaancnirmal/mintaborate/ent/runerror"
	"github.com/dhiyaancnirmal/mintaborate/ent/runevent"
	"github.com/dhiyaancnirmal/mintaborate/ent/runworker"
	"github.com/dhiyaancnirmal/mintaborate/ent/skillsession"
	"github.com/dhiyaancnirmal/mintaborate/ent/stepcitation"
	"github.com/dhiyaancnirmal/mintaborate/ent/task"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskevaluation"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskexecution"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskstep"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DeterministicCheck is the client for interacting with the DeterministicCheck builders.
	DeterministicCheck *DeterministicCheckClient
	// Run is the client for interacting with the Run builders.
	Run *RunClient
	// RunArtifact is the client for interacting with the RunArtifact builders.
	RunArtifact *RunArtifactClient
	// RunError is the client for interacting with the RunError builders.
	RunError *RunErrorClient
	// RunEvent is the client for interacting with the RunEvent builders.
	RunEvent *RunEventClient
	// RunWorker is the client for interacting with the RunWorker builders.
	RunWorker *RunWorkerClient
	// SkillSession is the client for interacting with the SkillSession builders.
	SkillSession *SkillSessionClient
	// StepCitation is the client for interacting with the StepCitation builders.
	StepCitation *StepCitationClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskEvaluation is the client for interacting with the TaskEvaluation builders.
	TaskEvaluation *TaskEvaluationClient
	// TaskExecution is the client for interacting with the TaskExecution builders.
	TaskExecution *TaskExecutionClient
	// TaskStep is the client for interacting with the TaskStep builders.
	TaskStep *TaskStepClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DeterministicCheck = NewDeterministicCheckClient(c.config)
	c.Run = NewRunClient(c.config)
	c.RunArtifact = NewRunArtifactClient(c.config)
	c.RunError = NewRunErrorClient(c.config)
	c.RunEvent = NewRunEventClient(c.config)
	c.RunWorker = NewRunWorkerClient(c.config)
	c.SkillSession = NewSkillSessionClient(c.config)
	c.StepCitation = NewStepCitationClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskEvaluation = NewTaskEvaluationClient(c.config)
	c.TaskExecution = NewTaskExecutionClient(c.config)
	c.TaskStep = NewTaskStepClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		DeterministicCheck: NewDeterministicCheckClient(cfg),
		Run:                NewRunClient(cfg),
		RunArtifact:        NewRunArtifactClient(cfg),
		RunError:           NewRunErrorClient(cfg),
		RunEvent:           NewRunEventClient(cfg),
		RunWorker:          NewRunWorkerClient(cfg),
		SkillSession:       NewSkillSessionClient(cfg),
		StepCitation:       NewStepCitationClient(cfg),
		Task:               NewTaskClient(cfg),
		TaskEvaluation:     NewTaskEvaluationClient(cfg),
		TaskExecution:      NewTaskExecutionClient(cfg),
		TaskStep:           NewTaskStepClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		DeterministicCheck: NewDeterministicCheckClient(cfg),
		Run:                NewRunClient(cfg),
		RunArtifact:        NewRunArtifactClient(cfg),
		RunError:           NewRunErrorClient(cfg),
		RunEvent:           NewRunEventClient(cfg),
		RunWorker:          NewRunWorkerClient(cfg),
		SkillSession:       NewSkillSessionClient(cfg),
		StepCitation:       NewStepCitationClient(cfg),
		Task:               NewTaskClient(cfg),
		TaskEvaluation:     NewTaskEvaluationClient(cfg),
		TaskExecution:      NewTaskExecutionClient(cfg),
		TaskStep:           NewTaskStepClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DeterministicCheck.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.DeterministicCheck, c.Run, c.RunArtifact, c.RunError, c.RunEvent, c.RunWorker,
		c.SkillSession, c.StepCitation, c.Task, c.TaskEvaluation, c.TaskExecution,
		c.TaskStep,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.DeterministicCheck, c.Run, c.RunArtifact, c.RunError, c.RunEvent, c.RunWorker,
		c.SkillSession, c.StepCitation, c.Task, c.TaskEvaluation, c.TaskExecution,
		c.TaskStep,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DeterministicCheckMutation:
		return c.DeterministicCheck.mutate(ctx, m)
	case *RunMutation:
		return c.Run.mutate(ctx, m)
	case *RunArtifactMutation:
		return c.RunArtifact.mutate(ctx, m)
	case *RunErrorMutation:
		return c.RunError.mutate(ctx, m)
	case *RunEventMutation:
		return c.RunEvent.mutate(ctx, m)
	case *RunWorkerMutation:
		return c.RunWorker.mutate(ctx, m)
	case *SkillSessionMutation:
		return c.SkillSession.mutate(ctx, m)
	case *StepCitationMutation:
		return c.StepCitation.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskEvaluationMutation:
		return c.TaskEvaluation.mutate(ctx, m)
	case *TaskExecutionMutation:
		return c.TaskExecution.mutate(ctx, m)
	case *TaskStepMutation:
		return c.TaskStep.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DeterministicCheckClient is a client for the DeterministicCheck schema.
type DeterministicCheckClient struct {
	config
}

// NewDeterministicCheckClient returns a client for the DeterministicCheck from the given config.
func NewDeterministicCheckClient(c config) *DeterministicCheckClient {
	return &DeterministicCheckClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deterministiccheck.Hooks(f(g(h())))`.
func (c *DeterministicCheckClient) Use(hooks ...Hook) {
	c.hooks.DeterministicCheck = append(c.hooks.DeterministicCheck, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deterministiccheck.Intercept(f(g(h())))`.
func (c *DeterministicCheckClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeterministicCheck = append(c.inters.DeterministicCheck, interceptors...)
}

// Create returns a builder for creating a DeterministicCheck entity.
func (c *DeterministicCheckClient) Create() *DeterministicCheckCreate {
	mutation := newDeterministicCheckMutation(c.config, OpCreate)
	return &DeterministicCheckCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeterministicCheck entities.
func (c *DeterministicCheckClient) CreateBulk(builders ...*DeterministicCheckCreate) *DeterministicCheckCreateBulk {
	return &DeterministicCheckCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeterministicCheckClient) MapCreateBulk(slice any, setFunc func(*DeterministicCheckCreate, int)) *DeterministicCheckCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeterministicCheckCreateBulk{err: fmt.Errorf("calling to DeterministicCheckClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeterministicCheckCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeterministicCheckCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeterministicCheck.
func (c *DeterministicCheckClient) Update() *DeterministicCheckUpdate {
	mutation := newDeterministicCheckMutation(c.config, OpUpdate)
	return &DeterministicCheckUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeterministicCheckClient) UpdateOne(_m *DeterministicCheck) *DeterministicCheckUpdateOne {
	mutation := newDeterministicCheckMutation(c.config, OpUpdateOne, withDeterministicCheck(_m))
	return &DeterministicCheckUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeterministicCheckClient) UpdateOneID(id int) *DeterministicCheckUpdateOne {
	mutation := newDeterministicCheckMutation(c.config, OpUpdateOne, withDeterministicCheckID(id))
	return &DeterministicCheckUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeterministicCheck.
func (c *DeterministicCheckClient) Delete() *DeterministicCheckDelete {
	mutation := newDeterministicCheckMutation(c.config, OpDelete)
	return &DeterministicCheckDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeterministicCheckClient) DeleteOne(_m *DeterministicCheck) *DeterministicCheckDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeterministicCheckClient) DeleteOneID(id int) *DeterministicCheckDeleteOne {
	builder := c.Delete().Where(deterministiccheck.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeterministicCheckDeleteOne{builder}
}

// Query returns a query builder for DeterministicCheck.
func (c *DeterministicCheckClient) Query() *DeterministicCheckQuery {
	return &DeterministicCheckQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeterministicCheck},
		inters: c.Interceptors(),
	}
}

// Get returns a DeterministicCheck entity by its id.
func (c *DeterministicCheckClient) Get(ctx context.Context, id int) (*DeterministicCheck, error) {
	return c.Query().Where(deterministiccheck.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeterministicCheckClient) GetX(ctx context.Context, id int) *DeterministicCheck {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a DeterministicCheck.
func (c *DeterministicCheckClient) QueryExecution(_m *DeterministicCheck) *TaskExecutionQuery {
	query := (&TaskExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(deterministiccheck.Table, deterministiccheck.FieldID, id),
			sqlgraph.To(taskexecution.Table, taskexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deterministiccheck.ExecutionTable, deterministiccheck.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DeterministicCheckClient) Hooks() []Hook {
	return c.hooks.DeterministicCheck
}

// Interceptors returns the client interceptors.
func (c *DeterministicCheckClient) Interceptors() []Interceptor {
	return c.inters.DeterministicCheck
}

func (c *DeterministicCheckClient) mutate(ctx context.Context, m *DeterministicCheckMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeterministicCheckCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeterministicCheckUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeterministicCheckUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeterministicCheckDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeterministicCheck mutation op: %q", m.Op())
	}
}

// RunClient is a client for the Run schema.
type RunClient struct {
	config
}

// NewRunClient returns a client for the Run from the given config.
func NewRunClient(c config) *RunClient {
	return &RunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `run.Hooks(f(g(h())))`.
func (c *RunClient) Use(hooks ...Hook) {
	c.hooks.Run = append(c.hooks.Run, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `run.Intercept(f(g(h())))`.
func (c *RunClient) Intercept(interceptors ...Interceptor) {
	c.inters.Run = append(c.inters.Run, interceptors...)
}

// Create returns a builder for creating a Run entity.
func (c *RunClient) Create() *RunCreate {
	mutation := newRunMutation(c.config, OpCreate)
	return &RunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Run entities.
func (c *RunClient) CreateBulk(builders ...*RunCreate) *RunCreateBulk {
	return &RunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunClient) MapCreateBulk(slice any, setFunc func(*RunCreate, int)) *RunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunCreateBulk{err: fmt.Errorf("calling to RunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Run.
func (c *RunClient) Update() *RunUpdate {
	mutation := newRunMutation(c.config, OpUpdate)
	return &RunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunClient) UpdateOne(_m *Run) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRun(_m))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunClient) UpdateOneID(id string) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRunID(id))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Run.
func (c *RunClient) Delete() *RunDelete {
	mutation := newRunMutation(c.config, OpDelete)
	return &RunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunClient) DeleteOne(_m *Run) *RunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunClient) DeleteOneID(id string) *RunDeleteOne {
	builder := c.Delete().Where(run.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunDeleteOne{builder}
}

// Query returns a query builder for Run.
func (c *RunClient) Query() *RunQuery {
	return &RunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRun},
		inters: c.Interceptors(),
	}
}

// Get returns a Run entity by its id.
func (c *RunClient) Get(ctx context.Context, id string) (*Run, error) {
	return c.Query().Where(run.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunClient) GetX(ctx context.Context, id string) *Run {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryArtifacts queries the artifacts edge of a Run.
func (c *RunClient) QueryArtifacts(_m *Run) *RunArtifactQuery {
	query := (&RunArtifactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(runartifact.Table, runartifact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.ArtifactsTable, run.ArtifactsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTasks queries the tasks edge of a Run.
func (c *RunClient) QueryTasks(_m *Run) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.TasksTable, run.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWorkers queries the workers edge of a Run.
func (c *RunClient) QueryWorkers(_m *Run) *RunWorkerQuery {
	query := (&RunWorkerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(runworker.Table, runworker.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.WorkersTable, run.WorkersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutions queries the executions edge of a Run.
func (c *RunClient) QueryExecutions(_m *Run) *TaskExecutionQuery {
	query := (&TaskExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(taskexecution.Table, taskexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.ExecutionsTable, run.ExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Run.
func (c *RunClient) QueryEvents(_m *Run) *RunEventQuery {
	query := (&RunEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(runevent.Table, runevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.EventsTable, run.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryErrors queries the errors edge of a Run.
func (c *RunClient) QueryErrors(_m *Run) *RunErrorQuery {
	query := (&RunErrorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(runerror.Table, runerror.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.ErrorsTable, run.ErrorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvaluations queries the evaluations edge of a Run.
func (c *RunClient) QueryEvaluations(_m *Run) *TaskEvaluationQuery {
	query := (&TaskEvaluationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(taskevaluation.Table, taskevaluation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.EvaluationsTable, run.EvaluationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySkillSession queries the skill_session edge of a Run.
func (c *RunClient) QuerySkillSession(_m *Run) *SkillSessionQuery {
	query := (&SkillSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(skillsession.Table, skillsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, run.SkillSessionTable, run.SkillSessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunClient) Hooks() []Hook {
	return c.hooks.Run
}

// Interceptors returns the client interceptors.
func (c *RunClient) Interceptors() []Interceptor {
	return c.inters.Run
}

func (c *RunClient) mutate(ctx context.Context, m *RunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Run mutation op: %q", m.Op())
	}
}

// RunArtifactClient is a client for the RunArtifact schema.
type RunArtifactClient struct {
	config
}

// NewRunArtifactClient returns a client for the RunArtifact from the given config.
func NewRunArtifactClient(c config) *RunArtifactClient {
	return &RunArtifactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runartifact.Hooks(f(g(h())))`.
func (c *RunArtifactClient) Use(hooks ...Hook) {
	c.hooks.RunArtifact = append(c.hooks.RunArtifact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runartifact.Intercept(f(g(h())))`.
func (c *RunArtifactClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunArtifact = append(c.inters.RunArtifact, interceptors...)
}

// Create returns a builder for creating a RunArtifact entity.
func (c *RunArtifactClient) Create() *RunArtifactCreate {
	mutation := newRunArtifactMutation(c.config, OpCreate)
	return &RunArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunArtifact entities.
func (c *RunArtifactClient) CreateBulk(builders ...*RunArtifactCreate) *RunArtifactCreateBulk {
	return &RunArtifactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunArtifactClient) MapCreateBulk(slice any, setFunc func(*RunArtifactCreate, int)) *RunArtifactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunArtifactCreateBulk{err: fmt.Errorf("calling to RunArtifactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunArtifactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunArtifactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunArtifact.
func (c *RunArtifactClient) Update() *RunArtifactUpdate {
	mutation := newRunArtifactMutation(c.config, OpUpdate)
	return &RunArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunArtifactClient) UpdateOne(_m *RunArtifact) *RunArtifactUpdateOne {
	mutation := newRunArtifactMutation(c.config, OpUpdateOne, withRunArtifact(_m))
	return &RunArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunArtifactClient) UpdateOneID(id int) *RunArtifactUpdateOne {
	mutation := newRunArtifactMutation(c.config, OpUpdateOne, withRunArtifactID(id))
	return &RunArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunArtifact.
func (c *RunArtifactClient) Delete() *RunArtifactDelete {
	mutation := newRunArtifactMutation(c.config, OpDelete)
	return &RunArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunArtifactClient) DeleteOne(_m *RunArtifact) *RunArtifactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunArtifactClient) DeleteOneID(id int) *RunArtifactDeleteOne {
	builder := c.Delete().Where(runartifact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunArtifactDeleteOne{builder}
}

// Query returns a query builder for RunArtifact.
func (c *RunArtifactClient) Query() *RunArtifactQuery {
	return &RunArtifactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunArtifact},
		inters: c.Interceptors(),
	}
}

// Get returns a RunArtifact entity by its id.
func (c *RunArtifactClient) Get(ctx context.Context, id int) (*RunArtifact, error) {
	return c.Query().Where(runartifact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunArtifactClient) GetX(ctx context.Context, id int) *RunArtifact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunArtifact.
func (c *RunArtifactClient) QueryRun(_m *RunArtifact) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runartifact.Table, runartifact.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runartifact.RunTable, runartifact.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunArtifactClient) Hooks() []Hook {
	return c.hooks.RunArtifact
}

// Interceptors returns the client interceptors.
func (c *RunArtifactClient) Interceptors() []Interceptor {
	return c.inters.RunArtifact
}

func (c *RunArtifactClient) mutate(ctx context.Context, m *RunArtifactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunArtifact mutation op: %q", m.Op())
	}
}

// RunErrorClient is a client for the RunError schema.
type RunErrorClient struct {
	config
}

// NewRunErrorClient returns a client for the RunError from the given config.
func NewRunErrorClient(c config) *RunErrorClient {
	return &RunErrorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runerror.Hooks(f(g(h())))`.
func (c *RunErrorClient) Use(hooks ...Hook) {
	c.hooks.RunError = append(c.hooks.RunError, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runerror.Intercept(f(g(h())))`.
func (c *RunErrorClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunError = append(c.inters.RunError, interceptors...)
}

// Create returns a builder for creating a RunError entity.
func (c *RunErrorClient) Create() *RunErrorCreate {
	mutation := newRunErrorMutation(c.config, OpCreate)
	return &RunErrorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunError entities.
func (c *RunErrorClient) CreateBulk(builders ...*RunErrorCreate) *RunErrorCreateBulk {
	return &RunErrorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunErrorClient) MapCreateBulk(slice any, setFunc func(*RunErrorCreate, int)) *RunErrorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunErrorCreateBulk{err: fmt.Errorf("calling to RunErrorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunErrorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunErrorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunError.
func (c *RunErrorClient) Update() *RunErrorUpdate {
	mutation := newRunErrorMutation(c.config, OpUpdate)
	return &RunErrorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunErrorClient) UpdateOne(_m *RunError) *RunErrorUpdateOne {
	mutation := newRunErrorMutation(c.config, OpUpdateOne, withRunError(_m))
	return &RunErrorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunErrorClient) UpdateOneID(id string) *RunErrorUpdateOne {
	mutation := newRunErrorMutation(c.config, OpUpdateOne, withRunErrorID(id))
	return &RunErrorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunError.
func (c *RunErrorClient) Delete() *RunErrorDelete {
	mutation := newRunErrorMutation(c.config, OpDelete)
	return &RunErrorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunErrorClient) DeleteOne(_m *RunError) *RunErrorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunErrorClient) DeleteOneID(id string) *RunErrorDeleteOne {
	builder := c.Delete().Where(runerror.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunErrorDeleteOne{builder}
}

// Query returns a query builder for RunError.
func (c *RunErrorClient) Query() *RunErrorQuery {
	return &RunErrorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunError},
		inters: c.Interceptors(),
	}
}

// Get returns a RunError entity by its id.
func (c *RunErrorClient) Get(ctx context.Context, id string) (*RunError, error) {
	return c.Query().Where(runerror.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunErrorClient) GetX(ctx context.Context, id string) *RunError {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunError.
func (c *RunErrorClient) QueryRun(_m *RunError) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runerror.Table, runerror.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runerror.RunTable, runerror.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunErrorClient) Hooks() []Hook {
	return c.hooks.RunError
}

// Interceptors returns the client interceptors.
func (c *RunErrorClient) Interceptors() []Interceptor {
	return c.inters.RunError
}

func (c *RunErrorClient) mutate(ctx context.Context, m *RunErrorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunErrorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunErrorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunErrorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunErrorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunError mutation op: %q", m.Op())
	}
}

// RunEventClient is a client for the RunEvent schema.
type RunEventClient struct {
	config
}

// NewRunEventClient returns a client for the RunEvent from the given config.
func NewRunEventClient(c config) *RunEventClient {
	return &RunEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runevent.Hooks(f(g(h())))`.
func (c *RunEventClient) Use(hooks ...Hook) {
	c.hooks.RunEvent = append(c.hooks.RunEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runevent.Intercept(f(g(h())))`.
func (c *RunEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunEvent = append(c.inters.RunEvent, interceptors...)
}

// Create returns a builder for creating a RunEvent entity.
func (c *RunEventClient) Create() *RunEventCreate {
	mutation := newRunEventMutation(c.config, OpCreate)
	return &RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunEvent entities.
func (c *RunEventClient) CreateBulk(builders ...*RunEventCreate) *RunEventCreateBulk {
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunEventClient) MapCreateBulk(slice any, setFunc func(*RunEventCreate, int)) *RunEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunEventCreateBulk{err: fmt.Errorf("calling to RunEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunEvent.
func (c *RunEventClient) Update() *RunEventUpdate {
	mutation := newRunEventMutation(c.config, OpUpdate)
	return &RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunEventClient) UpdateOne(_m *RunEvent) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEvent(_m))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunEventClient) UpdateOneID(id int) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEventID(id))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunEvent.
func (c *RunEventClient) Delete() *RunEventDelete {
	mutation := newRunEventMutation(c.config, OpDelete)
	return &RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunEventClient) DeleteOne(_m *RunEvent) *RunEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunEventClient) DeleteOneID(id int) *RunEventDeleteOne {
	builder := c.Delete().Where(runevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunEventDeleteOne{builder}
}

// Query returns a query builder for RunEvent.
func (c *RunEventClient) Query() *RunEventQuery {
	return &RunEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RunEvent entity by its id.
func (c *RunEventClient) Get(ctx context.Context, id int) (*RunEvent, error) {
	return c.Query().Where(runevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunEventClient) GetX(ctx context.Context, id int) *RunEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunEvent.
func (c *RunEventClient) QueryRun(_m *RunEvent) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runevent.Table, runevent.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runevent.RunTable, runevent.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunEventClient) Hooks() []Hook {
	return c.hooks.RunEvent
}

// Interceptors returns the client interceptors.
func (c *RunEventClient) Interceptors() []Interceptor {
	return c.inters.RunEvent
}

func (c *RunEventClient) mutate(ctx context.Context, m *RunEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunEvent mutation op: %q", m.Op())
	}
}

// RunWorkerClient is a client for the RunWorker schema.
type RunWorkerClient struct {
	config
}

// NewRunWorkerClient returns a client for the RunWorker from the given config.
func NewRunWorkerClient(c config) *RunWorkerClient {
	return &RunWorkerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runworker.Hooks(f(g(h())))`.
func (c *RunWorkerClient) Use(hooks ...Hook) {
	c.hooks.RunWorker = append(c.hooks.RunWorker, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runworker.Intercept(f(g(h())))`.
func (c *RunWorkerClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunWorker = append(c.inters.RunWorker, interceptors...)
}

// Create returns a builder for creating a RunWorker entity.
func (c *RunWorkerClient) Create() *RunWorkerCreate {
	mutation := newRunWorkerMutation(c.config, OpCreate)
	return &RunWorkerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunWorker entities.
func (c *RunWorkerClient) CreateBulk(builders ...*RunWorkerCreate) *RunWorkerCreateBulk {
	return &RunWorkerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunWorkerClient) MapCreateBulk(slice any, setFunc func(*RunWorkerCreate, int)) *RunWorkerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunWorkerCreateBulk{err: fmt.Errorf("calling to RunWorkerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunWorkerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunWorkerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunWorker.
func (c *RunWorkerClient) Update() *RunWorkerUpdate {
	mutation := newRunWorkerMutation(c.config, OpUpdate)
	return &RunWorkerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunWorkerClient) UpdateOne(_m *RunWorker) *RunWorkerUpdateOne {
	mutation := newRunWorkerMutation(c.config, OpUpdateOne, withRunWorker(_m))
	return &RunWorkerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunWorkerClient) UpdateOneID(id string) *RunWorkerUpdateOne {
	mutation := newRunWorkerMutation(c.config, OpUpdateOne, withRunWorkerID(id))
	return &RunWorkerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunWorker.
func (c *RunWorkerClient) Delete() *RunWorkerDelete {
	mutation := newRunWorkerMutation(c.config, OpDelete)
	return &RunWorkerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunWorkerClient) DeleteOne(_m *RunWorker) *RunWorkerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunWorkerClient) DeleteOneID(id string) *RunWorkerDeleteOne {
	builder := c.Delete().Where(runworker.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunWorkerDeleteOne{builder}
}

// Query returns a query builder for RunWorker.
func (c *RunWorkerClient) Query() *RunWorkerQuery {
	return &RunWorkerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunWorker},
		inters: c.Interceptors(),
	}
}

// Get returns a RunWorker entity by its id.
func (c *RunWorkerClient) Get(ctx context.Context, id string) (*RunWorker, error) {
	return c.Query().Where(runworker.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunWorkerClient) GetX(ctx context.Context, id string) *RunWorker {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunWorker.
func (c *RunWorkerClient) QueryRun(_m *RunWorker) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runworker.Table, runworker.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runworker.RunTable, runworker.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunWorkerClient) Hooks() []Hook {
	return c.hooks.RunWorker
}

// Interceptors returns the client interceptors.
func (c *RunWorkerClient) Interceptors() []Interceptor {
	return c.inters.RunWorker
}

func (c *RunWorkerClient) mutate(ctx context.Context, m *RunWorkerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunWorkerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunWorkerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunWorkerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunWorkerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunWorker mutation op: %q", m.Op())
	}
}

// SkillSessionClient is a client for the SkillSession schema.
type SkillSessionClient struct {
	config
}

// NewSkillSessionClient returns a client for the SkillSession from the given config.
func NewSkillSessionClient(c config) *SkillSessionClient {
	return &SkillSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skillsession.Hooks(f(g(h())))`.
func (c *SkillSessionClient) Use(hooks ...Hook) {
	c.hooks.SkillSession = append(c.hooks.SkillSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skillsession.Intercept(f(g(h())))`.
func (c *SkillSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SkillSession = append(c.inters.SkillSession, interceptors...)
}

// Create returns a builder for creating a SkillSession entity.
func (c *SkillSessionClient) Create() *SkillSessionCreate {
	mutation := newSkillSessionMutation(c.config, OpCreate)
	return &SkillSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SkillSession entities.
func (c *SkillSessionClient) CreateBulk(builders ...*SkillSessionCreate) *SkillSessionCreateBulk {
	return &SkillSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillSessionClient) MapCreateBulk(slice any, setFunc func(*SkillSessionCreate, int)) *SkillSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillSessionCreateBulk{err: fmt.Errorf("calling to SkillSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SkillSession.
func (c *SkillSessionClient) Update() *SkillSessionUpdate {
	mutation := newSkillSessionMutation(c.config, OpUpdate)
	return &SkillSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillSessionClient) UpdateOne(_m *SkillSession) *SkillSessionUpdateOne {
	mutation := newSkillSessionMutation(c.config, OpUpdateOne, withSkillSession(_m))
	return &SkillSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillSessionClient) UpdateOneID(id int) *SkillSessionUpdateOne {
	mutation := newSkillSessionMutation(c.config, OpUpdateOne, withSkillSessionID(id))
	return &SkillSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SkillSession.
func (c *SkillSessionClient) Delete() *SkillSessionDelete {
	mutation := newSkillSessionMutation(c.config, OpDelete)
	return &SkillSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillSessionClient) DeleteOne(_m *SkillSession) *SkillSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillSessionClient) DeleteOneID(id int) *SkillSessionDeleteOne {
	builder := c.Delete().Where(skillsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillSessionDeleteOne{builder}
}

// Query returns a query builder for SkillSession.
func (c *SkillSessionClient) Query() *SkillSessionQuery {
	return &SkillSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkillSession},
		inters: c.Interceptors(),
	}
}

// Get returns a SkillSession entity by its id.
func (c *SkillSessionClient) Get(ctx context.Context, id int) (*SkillSession, error) {
	return c.Query().Where(skillsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillSessionClient) GetX(ctx context.Context, id int) *SkillSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a SkillSession.
func (c *SkillSessionClient) QueryRun(_m *SkillSession) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(skillsession.Table, skillsession.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, skillsession.RunTable, skillsession.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SkillSessionClient) Hooks() []Hook {
	return c.hooks.SkillSession
}

// Interceptors returns the client interceptors.
func (c *SkillSessionClient) Interceptors() []Interceptor {
	return c.inters.SkillSession
}

func (c *SkillSessionClient) mutate(ctx context.Context, m *SkillSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SkillSession mutation op: %q", m.Op())
	}
}

// StepCitationClient is a client for the StepCitation schema.
type StepCitationClient struct {
	config
}

// NewStepCitationClient returns a client for the StepCitation from the given config.
func NewStepCitationClient(c config) *StepCitationClient {
	return &StepCitationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stepcitation.Hooks(f(g(h())))`.
func (c *StepCitationClient) Use(hooks ...Hook) {
	c.hooks.StepCitation = append(c.hooks.StepCitation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stepcitation.Intercept(f(g(h())))`.
func (c *StepCitationClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepCitation = append(c.inters.StepCitation, interceptors...)
}

// Create returns a builder for creating a StepCitation entity.
func (c *StepCitationClient) Create() *StepCitationCreate {
	mutation := newStepCitationMutation(c.config, OpCreate)
	return &StepCitationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepCitation entities.
func (c *StepCitationClient) CreateBulk(builders ...*StepCitationCreate) *StepCitationCreateBulk {
	return &StepCitationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepCitationClient) MapCreateBulk(slice any, setFunc func(*StepCitationCreate, int)) *StepCitationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepCitationCreateBulk{err: fmt.Errorf("calling to StepCitationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepCitationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepCitationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepCitation.
func (c *StepCitationClient) Update() *StepCitationUpdate {
	mutation := newStepCitationMutation(c.config, OpUpdate)
	return &StepCitationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepCitationClient) UpdateOne(_m *StepCitation) *StepCitationUpdateOne {
	mutation := newStepCitationMutation(c.config, OpUpdateOne, withStepCitation(_m))
	return &StepCitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepCitationClient) UpdateOneID(id int) *StepCitationUpdateOne {
	mutation := newStepCitationMutation(c.config, OpUpdateOne, withStepCitationID(id))
	return &StepCitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepCitation.
func (c *StepCitationClient) Delete() *StepCitationDelete {
	mutation := newStepCitationMutation(c.config, OpDelete)
	return &StepCitationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepCitationClient) DeleteOne(_m *StepCitation) *StepCitationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepCitationClient) DeleteOneID(id int) *StepCitationDeleteOne {
	builder := c.Delete().Where(stepcitation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepCitationDeleteOne{builder}
}

// Query returns a query builder for StepCitation.
func (c *StepCitationClient) Query() *StepCitationQuery {
	return &StepCitationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepCitation},
		inters: c.Interceptors(),
	}
}

// Get returns a StepCitation entity by its id.
func (c *StepCitationClient) Get(ctx context.Context, id int) (*StepCitation, error) {
	return c.Query().Where(stepcitation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepCitationClient) GetX(ctx context.Context, id int) *StepCitation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStep queries the step edge of a StepCitation.
func (c *StepCitationClient) QueryStep(_m *StepCitation) *TaskStepQuery {
	query := (&TaskStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stepcitation.Table, stepcitation.FieldID, id),
			sqlgraph.To(taskstep.Table, taskstep.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stepcitation.StepTable, stepcitation.StepColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StepCitationClient) Hooks() []Hook {
	return c.hooks.StepCitation
}

// Interceptors returns the client interceptors.
func (c *StepCitationClient) Interceptors() []Interceptor {
	return c.inters.StepCitation
}

func (c *StepCitationClient) mutate(ctx context.Context, m *StepCitationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepCitationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepCitationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepCitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepCitationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepCitation mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a Task.
func (c *TaskClient) QueryRun(_m *Task) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.RunTable, task.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TaskEvaluationClient is a client for the TaskEvaluation schema.
type TaskEvaluationClient struct {
	config
}

// NewTaskEvaluationClient returns a client for the TaskEvaluation from the given config.
func NewTaskEvaluationClient(c config) *TaskEvaluationClient {
	return &TaskEvaluationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskevaluation.Hooks(f(g(h())))`.
func (c *TaskEvaluationClient) Use(hooks ...Hook) {
	c.hooks.TaskEvaluation = append(c.hooks.TaskEvaluation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskevaluation.Intercept(f(g(h())))`.
func (c *TaskEvaluationClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskEvaluation = append(c.inters.TaskEvaluation, interceptors...)
}

// Create returns a builder for creating a TaskEvaluation entity.
func (c *TaskEvaluationClient) Create() *TaskEvaluationCreate {
	mutation := newTaskEvaluationMutation(c.config, OpCreate)
	return &TaskEvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskEvaluation entities.
func (c *TaskEvaluationClient) CreateBulk(builders ...*TaskEvaluationCreate) *TaskEvaluationCreateBulk {
	return &TaskEvaluationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskEvaluationClient) MapCreateBulk(slice any, setFunc func(*TaskEvaluationCreate, int)) *TaskEvaluationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskEvaluationCreateBulk{err: fmt.Errorf("calling to TaskEvaluationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskEvaluationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskEvaluationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskEvaluation.
func (c *TaskEvaluationClient) Update() *TaskEvaluationUpdate {
	mutation := newTaskEvaluationMutation(c.config, OpUpdate)
	return &TaskEvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskEvaluationClient) UpdateOne(_m *TaskEvaluation) *TaskEvaluationUpdateOne {
	mutation := newTaskEvaluationMutation(c.config, OpUpdateOne, withTaskEvaluation(_m))
	return &TaskEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskEvaluationClient) UpdateOneID(id int) *TaskEvaluationUpdateOne {
	mutation := newTaskEvaluationMutation(c.config, OpUpdateOne, withTaskEvaluationID(id))
	return &TaskEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskEvaluation.
func (c *TaskEvaluationClient) Delete() *TaskEvaluationDelete {
	mutation := newTaskEvaluationMutation(c.config, OpDelete)
	return &TaskEvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskEvaluationClient) DeleteOne(_m *TaskEvaluation) *TaskEvaluationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskEvaluationClient) DeleteOneID(id int) *TaskEvaluationDeleteOne {
	builder := c.Delete().Where(taskevaluation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskEvaluationDeleteOne{builder}
}

// Query returns a query builder for TaskEvaluation.
func (c *TaskEvaluationClient) Query() *TaskEvaluationQuery {
	return &TaskEvaluationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskEvaluation},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskEvaluation entity by its id.
func (c *TaskEvaluationClient) Get(ctx context.Context, id int) (*TaskEvaluation, error) {
	return c.Query().Where(taskevaluation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskEvaluationClient) GetX(ctx context.Context, id int) *TaskEvaluation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a TaskEvaluation.
func (c *TaskEvaluationClient) QueryRun(_m *TaskEvaluation) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskevaluation.Table, taskevaluation.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskevaluation.RunTable, taskevaluation.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskEvaluationClient) Hooks() []Hook {
	return c.hooks.TaskEvaluation
}

// Interceptors returns the client interceptors.
func (c *TaskEvaluationClient) Interceptors() []Interceptor {
	return c.inters.TaskEvaluation
}

func (c *TaskEvaluationClient) mutate(ctx context.Context, m *TaskEvaluationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskEvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskEvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskEvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskEvaluation mutation op: %q", m.Op())
	}
}

// TaskExecutionClient is a client for the TaskExecution schema.
type TaskExecutionClient struct {
	config
}

// NewTaskExecutionClient returns a client for the TaskExecution from the given config.
func NewTaskExecutionClient(c config) *TaskExecutionClient {
	return &TaskExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskexecution.Hooks(f(g(h())))`.
func (c *TaskExecutionClient) Use(hooks ...Hook) {
	c.hooks.TaskExecution = append(c.hooks.TaskExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskexecution.Intercept(f(g(h())))`.
func (c *TaskExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskExecution = append(c.inters.TaskExecution, interceptors...)
}

// Create returns a builder for creating a TaskExecution entity.
func (c *TaskExecutionClient) Create() *TaskExecutionCreate {
	mutation := newTaskExecutionMutation(c.config, OpCreate)
	return &TaskExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskExecution entities.
func (c *TaskExecutionClient) CreateBulk(builders ...*TaskExecutionCreate) *TaskExecutionCreateBulk {
	return &TaskExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskExecutionClient) MapCreateBulk(slice any, setFunc func(*TaskExecutionCreate, int)) *TaskExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskExecutionCreateBulk{err: fmt.Errorf("calling to TaskExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskExecution.
func (c *TaskExecutionClient) Update() *TaskExecutionUpdate {
	mutation := newTaskExecutionMutation(c.config, OpUpdate)
	return &TaskExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskExecutionClient) UpdateOne(_m *TaskExecution) *TaskExecutionUpdateOne {
	mutation := newTaskExecutionMutation(c.config, OpUpdateOne, withTaskExecution(_m))
	return &TaskExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskExecutionClient) UpdateOneID(id string) *TaskExecutionUpdateOne {
	mutation := newTaskExecutionMutation(c.config, OpUpdateOne, withTaskExecutionID(id))
	return &TaskExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskExecution.
func (c *TaskExecutionClient) Delete() *TaskExecutionDelete {
	mutation := newTaskExecutionMutation(c.config, OpDelete)
	return &TaskExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskExecutionClient) DeleteOne(_m *TaskExecution) *TaskExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskExecutionClient) DeleteOneID(id string) *TaskExecutionDeleteOne {
	builder := c.Delete().Where(taskexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskExecutionDeleteOne{builder}
}

// Query returns a query builder for TaskExecution.
func (c *TaskExecutionClient) Query() *TaskExecutionQuery {
	return &TaskExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskExecution entity by its id.
func (c *TaskExecutionClient) Get(ctx context.Context, id string) (*TaskExecution, error) {
	return c.Query().Where(taskexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskExecutionClient) GetX(ctx context.Context, id string) *TaskExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a TaskExecution.
func (c *TaskExecutionClient) QueryRun(_m *TaskExecution) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskexecution.Table, taskexecution.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskexecution.RunTable, taskexecution.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySteps queries the steps edge of a TaskExecution.
func (c *TaskExecutionClient) QuerySteps(_m *TaskExecution) *TaskStepQuery {
	query := (&TaskStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskexecution.Table, taskexecution.FieldID, id),
			sqlgraph.To(taskstep.Table, taskstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taskexecution.StepsTable, taskexecution.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChecks queries the checks edge of a TaskExecution.
func (c *TaskExecutionClient) QueryChecks(_m *TaskExecution) *DeterministicCheckQuery {
	query := (&DeterministicCheckClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskexecution.Table, taskexecution.FieldID, id),
			sqlgraph.To(deterministiccheck.Table, deterministiccheck.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taskexecution.ChecksTable, taskexecution.ChecksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskExecutionClient) Hooks() []Hook {
	return c.hooks.TaskExecution
}

// Interceptors returns the client interceptors.
func (c *TaskExecutionClient) Interceptors() []Interceptor {
	return c.inters.TaskExecution
}

func (c *TaskExecutionClient) mutate(ctx context.Context, m *TaskExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskExecution mutation op: %q", m.Op())
	}
}

// TaskStepClient is a client for the TaskStep schema.
type TaskStepClient struct {
	config
}

// NewTaskStepClient returns a client for the TaskStep from the given config.
func NewTaskStepClient(c config) *TaskStepClient {
	return &TaskStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskstep.Hooks(f(g(h())))`.
func (c *TaskStepClient) Use(hooks ...Hook) {
	c.hooks.TaskStep = append(c.hooks.TaskStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskstep.Intercept(f(g(h())))`.
func (c *TaskStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskStep = append(c.inters.TaskStep, interceptors...)
}

// Create returns a builder for creating a TaskStep entity.
func (c *TaskStepClient) Create() *TaskStepCreate {
	mutation := newTaskStepMutation(c.config, OpCreate)
	return &TaskStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskStep entities.
func (c *TaskStepClient) CreateBulk(builders ...*TaskStepCreate) *TaskStepCreateBulk {
	return &TaskStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskStepClient) MapCreateBulk(slice any, setFunc func(*TaskStepCreate, int)) *TaskStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskStepCreateBulk{err: fmt.Errorf("calling to TaskStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskStep.
func (c *TaskStepClient) Update() *TaskStepUpdate {
	mutation := newTaskStepMutation(c.config, OpUpdate)
	return &TaskStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskStepClient) UpdateOne(_m *TaskStep) *TaskStepUpdateOne {
	mutation := newTaskStepMutation(c.config, OpUpdateOne, withTaskStep(_m))
	return &TaskStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskStepClient) UpdateOneID(id int) *TaskStepUpdateOne {
	mutation := newTaskStepMutation(c.config, OpUpdateOne, withTaskStepID(id))
	return &TaskStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskStep.
func (c *TaskStepClient) Delete() *TaskStepDelete {
	mutation := newTaskStepMutation(c.config, OpDelete)
	return &TaskStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskStepClient) DeleteOne(_m *TaskStep) *TaskStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskStepClient) DeleteOneID(id int) *TaskStepDeleteOne {
	builder := c.Delete().Where(taskstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskStepDeleteOne{builder}
}

// Query returns a query builder for TaskStep.
func (c *TaskStepClient) Query() *TaskStepQuery {
	return &TaskStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskStep},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskStep entity by its id.
func (c *TaskStepClient) Get(ctx context.Context, id int) (*TaskStep, error) {
	return c.Query().Where(taskstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskStepClient) GetX(ctx context.Context, id int) *TaskStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a TaskStep.
func (c *TaskStepClient) QueryExecution(_m *TaskStep) *TaskExecutionQuery {
	query := (&TaskExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskstep.Table, taskstep.FieldID, id),
			sqlgraph.To(taskexecution.Table, taskexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskstep.ExecutionTable, taskstep.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCitations queries the citations edge of a TaskStep.
func (c *TaskStepClient) QueryCitations(_m *TaskStep) *StepCitationQuery {
	query := (&StepCitationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskstep.Table, taskstep.FieldID, id),
			sqlgraph.To(stepcitation.Table, stepcitation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taskstep.CitationsTable, taskstep.CitationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskStepClient) Hooks() []Hook {
	return c.hooks.TaskStep
}

// Interceptors returns the client interceptors.
func (c *TaskStepClient) Interceptors() []Interceptor {
	return c.inters.TaskStep
}

func (c *TaskStepClient) mutate(ctx context.Context, m *TaskStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskStep mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DeterministicCheck, Run, RunArtifact, RunError, RunEvent, RunWorker,
		SkillSession, StepCitation, Task, TaskEvaluation, TaskExecution,
		TaskStep []ent.Hook
	}
	inters struct {
		DeterministicCheck, Run, RunArtifact, RunError, RunEvent, RunWorker,
		SkillSession, StepCitation, Task, TaskEvaluation, TaskExecution,
		TaskStep []ent.Interceptor
	}
)
