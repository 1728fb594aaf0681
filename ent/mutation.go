// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dhiyaancnirmal/mintaborate/ent/deterministiccheck"
	"github.com/dhiyaancnirmal/mintaborate/ent/predicate"
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
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDeterministicCheck = "DeterministicCheck"
	TypeRun                = "Run"
	TypeRunArtifact        = "RunArtifact"
	TypeRunError           = "RunError"
	TypeRunEvent           = "RunEvent"
	TypeRunWorker          = "RunWorker"
	TypeSkillSession       = "SkillSession"
	TypeStepCitation       = "StepCitation"
	TypeTask               = "Task"
	TypeTaskEvaluation     = "TaskEvaluation"
	TypeTaskExecution      = "TaskExecution"
	TypeTaskStep           = "TaskStep"
)

// DeterministicCheckMutation represents an operation that mutates the DeterministicCheck nodes in the graph.
type DeterministicCheckMutation struct {
	config
	op               Op
	typ              string
	id               *int
	name             *string
	passed           *bool
	score_delta      *float64
	addscore_delta   *float64
	details          *string
	clearedFields    map[string]struct{}
	execution        *string
	clearedexecution bool
	done             bool
	oldValue         func(context.Context) (*DeterministicCheck, error)
	predicates       []predicate.DeterministicCheck
}

var _ ent.Mutation = (*DeterministicCheckMutation)(nil)

// deterministiccheckOption allows management of the mutation configuration using functional options.
type deterministiccheckOption func(*DeterministicCheckMutation)

// newDeterministicCheckMutation creates new mutation for the DeterministicCheck entity.
func newDeterministicCheckMutation(c config, op Op, opts ...deterministiccheckOption) *DeterministicCheckMutation {
	m := &DeterministicCheckMutation{
		config:        c,
		op:            op,
		typ:           TypeDeterministicCheck,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeterministicCheckID sets the ID field of the mutation.
func withDeterministicCheckID(id int) deterministiccheckOption {
	return func(m *DeterministicCheckMutation) {
		var (
			err   error
			once  sync.Once
			value *DeterministicCheck
		)
		m.oldValue = func(ctx context.Context) (*DeterministicCheck, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeterministicCheck.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeterministicCheck sets the old DeterministicCheck of the mutation.
func withDeterministicCheck(node *DeterministicCheck) deterministiccheckOption {
	return func(m *DeterministicCheckMutation) {
		m.oldValue = func(context.Context) (*DeterministicCheck, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeterministicCheckMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeterministicCheckMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeterministicCheckMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeterministicCheckMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeterministicCheck.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskExecutionID sets the "task_execution_id" field.
func (m *DeterministicCheckMutation) SetTaskExecutionID(s string) {
	m.execution = &s
}

// TaskExecutionID returns the value of the "task_execution_id" field in the mutation.
func (m *DeterministicCheckMutation) TaskExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskExecutionID returns the old "task_execution_id" field's value of the DeterministicCheck entity.
// If the DeterministicCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeterministicCheckMutation) OldTaskExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskExecutionID: %w", err)
	}
	return oldValue.TaskExecutionID, nil
}

// ResetTaskExecutionID resets all changes to the "task_execution_id" field.
func (m *DeterministicCheckMutation) ResetTaskExecutionID() {
	m.execution = nil
}

// SetName sets the "name" field.
func (m *DeterministicCheckMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DeterministicCheckMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DeterministicCheck entity.
// If the DeterministicCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeterministicCheckMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DeterministicCheckMutation) ResetName() {
	m.name = nil
}

// SetPassed sets the "passed" field.
func (m *DeterministicCheckMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *DeterministicCheckMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the DeterministicCheck entity.
// If the DeterministicCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeterministicCheckMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *DeterministicCheckMutation) ResetPassed() {
	m.passed = nil
}

// SetScoreDelta sets the "score_delta" field.
func (m *DeterministicCheckMutation) SetScoreDelta(f float64) {
	m.score_delta = &f
	m.addscore_delta = nil
}

// ScoreDelta returns the value of the "score_delta" field in the mutation.
func (m *DeterministicCheckMutation) ScoreDelta() (r float64, exists bool) {
	v := m.score_delta
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreDelta returns the old "score_delta" field's value of the DeterministicCheck entity.
// If the DeterministicCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeterministicCheckMutation) OldScoreDelta(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreDelta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreDelta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreDelta: %w", err)
	}
	return oldValue.ScoreDelta, nil
}

// AddScoreDelta adds f to the "score_delta" field.
func (m *DeterministicCheckMutation) AddScoreDelta(f float64) {
	if m.addscore_delta != nil {
		*m.addscore_delta += f
	} else {
		m.addscore_delta = &f
	}
}

// AddedScoreDelta returns the value that was added to the "score_delta" field in this mutation.
func (m *DeterministicCheckMutation) AddedScoreDelta() (r float64, exists bool) {
	v := m.addscore_delta
	if v == nil {
		return
	}
	return *v, true
}

// ResetScoreDelta resets all changes to the "score_delta" field.
func (m *DeterministicCheckMutation) ResetScoreDelta() {
	m.score_delta = nil
	m.addscore_delta = nil
}

// SetDetails sets the "details" field.
func (m *DeterministicCheckMutation) SetDetails(s string) {
	m.details = &s
}

// Details returns the value of the "details" field in the mutation.
func (m *DeterministicCheckMutation) Details() (r string, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the DeterministicCheck entity.
// If the DeterministicCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeterministicCheckMutation) OldDetails(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *DeterministicCheckMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[deterministiccheck.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *DeterministicCheckMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[deterministiccheck.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *DeterministicCheckMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, deterministiccheck.FieldDetails)
}

// SetExecutionID sets the "execution" edge to the TaskExecution entity by id.
func (m *DeterministicCheckMutation) SetExecutionID(id string) {
	m.execution = &id
}

// ClearExecution clears the "execution" edge to the TaskExecution entity.
func (m *DeterministicCheckMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[deterministiccheck.FieldTaskExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the TaskExecution entity was cleared.
func (m *DeterministicCheckMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionID returns the "execution" edge ID in the mutation.
func (m *DeterministicCheckMutation) ExecutionID() (id string, exists bool) {
	if m.execution != nil {
		return *m.execution, true
	}
	return
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *DeterministicCheckMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *DeterministicCheckMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// Where appends a list predicates to the DeterministicCheckMutation builder.
func (m *DeterministicCheckMutation) Where(ps ...predicate.DeterministicCheck) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeterministicCheckMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeterministicCheckMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeterministicCheck, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeterministicCheckMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeterministicCheckMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeterministicCheck).
func (m *DeterministicCheckMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeterministicCheckMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.execution != nil {
		fields = append(fields, deterministiccheck.FieldTaskExecutionID)
	}
	if m.name != nil {
		fields = append(fields, deterministiccheck.FieldName)
	}
	if m.passed != nil {
		fields = append(fields, deterministiccheck.FieldPassed)
	}
	if m.score_delta != nil {
		fields = append(fields, deterministiccheck.FieldScoreDelta)
	}
	if m.details != nil {
		fields = append(fields, deterministiccheck.FieldDetails)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeterministicCheckMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deterministiccheck.FieldTaskExecutionID:
		return m.TaskExecutionID()
	case deterministiccheck.FieldName:
		return m.Name()
	case deterministiccheck.FieldPassed:
		return m.Passed()
	case deterministiccheck.FieldScoreDelta:
		return m.ScoreDelta()
	case deterministiccheck.FieldDetails:
		return m.Details()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeterministicCheckMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deterministiccheck.FieldTaskExecutionID:
		return m.OldTaskExecutionID(ctx)
	case deterministiccheck.FieldName:
		return m.OldName(ctx)
	case deterministiccheck.FieldPassed:
		return m.OldPassed(ctx)
	case deterministiccheck.FieldScoreDelta:
		return m.OldScoreDelta(ctx)
	case deterministiccheck.FieldDetails:
		return m.OldDetails(ctx)
	}
	return nil, fmt.Errorf("unknown DeterministicCheck field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeterministicCheckMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deterministiccheck.FieldTaskExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskExecutionID(v)
		return nil
	case deterministiccheck.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case deterministiccheck.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case deterministiccheck.FieldScoreDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreDelta(v)
		return nil
	case deterministiccheck.FieldDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	}
	return fmt.Errorf("unknown DeterministicCheck field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeterministicCheckMutation) AddedFields() []string {
	var fields []string
	if m.addscore_delta != nil {
		fields = append(fields, deterministiccheck.FieldScoreDelta)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeterministicCheckMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deterministiccheck.FieldScoreDelta:
		return m.AddedScoreDelta()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeterministicCheckMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deterministiccheck.FieldScoreDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScoreDelta(v)
		return nil
	}
	return fmt.Errorf("unknown DeterministicCheck numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeterministicCheckMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deterministiccheck.FieldDetails) {
		fields = append(fields, deterministiccheck.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeterministicCheckMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeterministicCheckMutation) ClearField(name string) error {
	switch name {
	case deterministiccheck.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown DeterministicCheck nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeterministicCheckMutation) ResetField(name string) error {
	switch name {
	case deterministiccheck.FieldTaskExecutionID:
		m.ResetTaskExecutionID()
		return nil
	case deterministiccheck.FieldName:
		m.ResetName()
		return nil
	case deterministiccheck.FieldPassed:
		m.ResetPassed()
		return nil
	case deterministiccheck.FieldScoreDelta:
		m.ResetScoreDelta()
		return nil
	case deterministiccheck.FieldDetails:
		m.ResetDetails()
		return nil
	}
	return fmt.Errorf("unknown DeterministicCheck field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeterministicCheckMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution != nil {
		edges = append(edges, deterministiccheck.EdgeExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeterministicCheckMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case deterministiccheck.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeterministicCheckMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeterministicCheckMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeterministicCheckMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution {
		edges = append(edges, deterministiccheck.EdgeExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeterministicCheckMutation) EdgeCleared(name string) bool {
	switch name {
	case deterministiccheck.EdgeExecution:
		return m.clearedexecution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeterministicCheckMutation) ClearEdge(name string) error {
	switch name {
	case deterministiccheck.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown DeterministicCheck unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeterministicCheckMutation) ResetEdge(name string) error {
	switch name {
	case deterministiccheck.EdgeExecution:
		m.ResetExecution()
		return nil
	}
	return fmt.Errorf("unknown DeterministicCheck edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	docs_url             *string
	status               *run.Status
	started_at           *time.Time
	ended_at             *time.Time
	_config              *models.RunConfig
	totals               **models.Totals
	cost_estimate        *float64
	addcost_estimate     *float64
	error_message        *string
	clearedFields        map[string]struct{}
	artifacts            map[int]struct{}
	removedartifacts     map[int]struct{}
	clearedartifacts     bool
	tasks                map[string]struct{}
	removedtasks         map[string]struct{}
	clearedtasks         bool
	workers              map[string]struct{}
	removedworkers       map[string]struct{}
	clearedworkers       bool
	executions           map[string]struct{}
	removedexecutions    map[string]struct{}
	clearedexecutions    bool
	events               map[int]struct{}
	removedevents        map[int]struct{}
	clearedevents        bool
	errors               map[string]struct{}
	removederrors        map[string]struct{}
	clearederrors        bool
	evaluations          map[int]struct{}
	removedevaluations   map[int]struct{}
	clearedevaluations   bool
	skill_session        *int
	clearedskill_session bool
	done                 bool
	oldValue             func(context.Context) (*Run, error)
	predicates           []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id string) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocsURL sets the "docs_url" field.
func (m *RunMutation) SetDocsURL(s string) {
	m.docs_url = &s
}

// DocsURL returns the value of the "docs_url" field in the mutation.
func (m *RunMutation) DocsURL() (r string, exists bool) {
	v := m.docs_url
	if v == nil {
		return
	}
	return *v, true
}

// OldDocsURL returns the old "docs_url" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldDocsURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocsURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocsURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocsURL: %w", err)
	}
	return oldValue.DocsURL, nil
}

// ResetDocsURL resets all changes to the "docs_url" field.
func (m *RunMutation) ResetDocsURL() {
	m.docs_url = nil
}

// SetStatus sets the "status" field.
func (m *RunMutation) SetStatus(r run.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunMutation) Status() (r run.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatus(ctx context.Context) (v run.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *RunMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *RunMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *RunMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[run.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *RunMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *RunMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, run.FieldEndedAt)
}

// SetConfig sets the "config" field.
func (m *RunMutation) SetConfig(mc models.RunConfig) {
	m._config = &mc
}

// Config returns the value of the "config" field in the mutation.
func (m *RunMutation) Config() (r models.RunConfig, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldConfig(ctx context.Context) (v models.RunConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ResetConfig resets all changes to the "config" field.
func (m *RunMutation) ResetConfig() {
	m._config = nil
}

// SetTotals sets the "totals" field.
func (m *RunMutation) SetTotals(value *models.Totals) {
	m.totals = &value
}

// Totals returns the value of the "totals" field in the mutation.
func (m *RunMutation) Totals() (r *models.Totals, exists bool) {
	v := m.totals
	if v == nil {
		return
	}
	return *v, true
}

// OldTotals returns the old "totals" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTotals(ctx context.Context) (v *models.Totals, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotals: %w", err)
	}
	return oldValue.Totals, nil
}

// ClearTotals clears the value of the "totals" field.
func (m *RunMutation) ClearTotals() {
	m.totals = nil
	m.clearedFields[run.FieldTotals] = struct{}{}
}

// TotalsCleared returns if the "totals" field was cleared in this mutation.
func (m *RunMutation) TotalsCleared() bool {
	_, ok := m.clearedFields[run.FieldTotals]
	return ok
}

// ResetTotals resets all changes to the "totals" field.
func (m *RunMutation) ResetTotals() {
	m.totals = nil
	delete(m.clearedFields, run.FieldTotals)
}

// SetCostEstimate sets the "cost_estimate" field.
func (m *RunMutation) SetCostEstimate(f float64) {
	m.cost_estimate = &f
	m.addcost_estimate = nil
}

// CostEstimate returns the value of the "cost_estimate" field in the mutation.
func (m *RunMutation) CostEstimate() (r float64, exists bool) {
	v := m.cost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldCostEstimate returns the old "cost_estimate" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCostEstimate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostEstimate: %w", err)
	}
	return oldValue.CostEstimate, nil
}

// AddCostEstimate adds f to the "cost_estimate" field.
func (m *RunMutation) AddCostEstimate(f float64) {
	if m.addcost_estimate != nil {
		*m.addcost_estimate += f
	} else {
		m.addcost_estimate = &f
	}
}

// AddedCostEstimate returns the value that was added to the "cost_estimate" field in this mutation.
func (m *RunMutation) AddedCostEstimate() (r float64, exists bool) {
	v := m.addcost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostEstimate resets all changes to the "cost_estimate" field.
func (m *RunMutation) ResetCostEstimate() {
	m.cost_estimate = nil
	m.addcost_estimate = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *RunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[run.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[run.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, run.FieldErrorMessage)
}

// AddArtifactIDs adds the "artifacts" edge to the RunArtifact entity by ids.
func (m *RunMutation) AddArtifactIDs(ids ...int) {
	if m.artifacts == nil {
		m.artifacts = make(map[int]struct{})
	}
	for i := range ids {
		m.artifacts[ids[i]] = struct{}{}
	}
}

// ClearArtifacts clears the "artifacts" edge to the RunArtifact entity.
func (m *RunMutation) ClearArtifacts() {
	m.clearedartifacts = true
}

// ArtifactsCleared reports if the "artifacts" edge to the RunArtifact entity was cleared.
func (m *RunMutation) ArtifactsCleared() bool {
	return m.clearedartifacts
}

// RemoveArtifactIDs removes the "artifacts" edge to the RunArtifact entity by IDs.
func (m *RunMutation) RemoveArtifactIDs(ids ...int) {
	if m.removedartifacts == nil {
		m.removedartifacts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.artifacts, ids[i])
		m.removedartifacts[ids[i]] = struct{}{}
	}
}

// RemovedArtifacts returns the removed IDs of the "artifacts" edge to the RunArtifact entity.
func (m *RunMutation) RemovedArtifactsIDs() (ids []int) {
	for id := range m.removedartifacts {
		ids = append(ids, id)
	}
	return
}

// ArtifactsIDs returns the "artifacts" edge IDs in the mutation.
func (m *RunMutation) ArtifactsIDs() (ids []int) {
	for id := range m.artifacts {
		ids = append(ids, id)
	}
	return
}

// ResetArtifacts resets all changes to the "artifacts" edge.
func (m *RunMutation) ResetArtifacts() {
	m.artifacts = nil
	m.clearedartifacts = false
	m.removedartifacts = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *RunMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *RunMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *RunMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *RunMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *RunMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *RunMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *RunMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddWorkerIDs adds the "workers" edge to the RunWorker entity by ids.
func (m *RunMutation) AddWorkerIDs(ids ...string) {
	if m.workers == nil {
		m.workers = make(map[string]struct{})
	}
	for i := range ids {
		m.workers[ids[i]] = struct{}{}
	}
}

// ClearWorkers clears the "workers" edge to the RunWorker entity.
func (m *RunMutation) ClearWorkers() {
	m.clearedworkers = true
}

// WorkersCleared reports if the "workers" edge to the RunWorker entity was cleared.
func (m *RunMutation) WorkersCleared() bool {
	return m.clearedworkers
}

// RemoveWorkerIDs removes the "workers" edge to the RunWorker entity by IDs.
func (m *RunMutation) RemoveWorkerIDs(ids ...string) {
	if m.removedworkers == nil {
		m.removedworkers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.workers, ids[i])
		m.removedworkers[ids[i]] = struct{}{}
	}
}

// RemovedWorkers returns the removed IDs of the "workers" edge to the RunWorker entity.
func (m *RunMutation) RemovedWorkersIDs() (ids []string) {
	for id := range m.removedworkers {
		ids = append(ids, id)
	}
	return
}

// WorkersIDs returns the "workers" edge IDs in the mutation.
func (m *RunMutation) WorkersIDs() (ids []string) {
	for id := range m.workers {
		ids = append(ids, id)
	}
	return
}

// ResetWorkers resets all changes to the "workers" edge.
func (m *RunMutation) ResetWorkers() {
	m.workers = nil
	m.clearedworkers = false
	m.removedworkers = nil
}

// AddExecutionIDs adds the "executions" edge to the TaskExecution entity by ids.
func (m *RunMutation) AddExecutionIDs(ids ...string) {
	if m.executions == nil {
		m.executions = make(map[string]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the TaskExecution entity.
func (m *RunMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the TaskExecution entity was cleared.
func (m *RunMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the TaskExecution entity by IDs.
func (m *RunMutation) RemoveExecutionIDs(ids ...string) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the TaskExecution entity.
func (m *RunMutation) RemovedExecutionsIDs() (ids []string) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *RunMutation) ExecutionsIDs() (ids []string) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *RunMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// AddEventIDs adds the "events" edge to the RunEvent entity by ids.
func (m *RunMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the RunEvent entity.
func (m *RunMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the RunEvent entity was cleared.
func (m *RunMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the RunEvent entity by IDs.
func (m *RunMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the RunEvent entity.
func (m *RunMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *RunMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *RunMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddErrorIDs adds the "errors" edge to the RunError entity by ids.
func (m *RunMutation) AddErrorIDs(ids ...string) {
	if m.errors == nil {
		m.errors = make(map[string]struct{})
	}
	for i := range ids {
		m.errors[ids[i]] = struct{}{}
	}
}

// ClearErrors clears the "errors" edge to the RunError entity.
func (m *RunMutation) ClearErrors() {
	m.clearederrors = true
}

// ErrorsCleared reports if the "errors" edge to the RunError entity was cleared.
func (m *RunMutation) ErrorsCleared() bool {
	return m.clearederrors
}

// RemoveErrorIDs removes the "errors" edge to the RunError entity by IDs.
func (m *RunMutation) RemoveErrorIDs(ids ...string) {
	if m.removederrors == nil {
		m.removederrors = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.errors, ids[i])
		m.removederrors[ids[i]] = struct{}{}
	}
}

// RemovedErrors returns the removed IDs of the "errors" edge to the RunError entity.
func (m *RunMutation) RemovedErrorsIDs() (ids []string) {
	for id := range m.removederrors {
		ids = append(ids, id)
	}
	return
}

// ErrorsIDs returns the "errors" edge IDs in the mutation.
func (m *RunMutation) ErrorsIDs() (ids []string) {
	for id := range m.errors {
		ids = append(ids, id)
	}
	return
}

// ResetErrors resets all changes to the "errors" edge.
func (m *RunMutation) ResetErrors() {
	m.errors = nil
	m.clearederrors = false
	m.removederrors = nil
}

// AddEvaluationIDs adds the "evaluations" edge to the TaskEvaluation entity by ids.
func (m *RunMutation) AddEvaluationIDs(ids ...int) {
	if m.evaluations == nil {
		m.evaluations = make(map[int]struct{})
	}
	for i := range ids {
		m.evaluations[ids[i]] = struct{}{}
	}
}

// ClearEvaluations clears the "evaluations" edge to the TaskEvaluation entity.
func (m *RunMutation) ClearEvaluations() {
	m.clearedevaluations = true
}

// EvaluationsCleared reports if the "evaluations" edge to the TaskEvaluation entity was cleared.
func (m *RunMutation) EvaluationsCleared() bool {
	return m.clearedevaluations
}

// RemoveEvaluationIDs removes the "evaluations" edge to the TaskEvaluation entity by IDs.
func (m *RunMutation) RemoveEvaluationIDs(ids ...int) {
	if m.removedevaluations == nil {
		m.removedevaluations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.evaluations, ids[i])
		m.removedevaluations[ids[i]] = struct{}{}
	}
}

// RemovedEvaluations returns the removed IDs of the "evaluations" edge to the TaskEvaluation entity.
func (m *RunMutation) RemovedEvaluationsIDs() (ids []int) {
	for id := range m.removedevaluations {
		ids = append(ids, id)
	}
	return
}

// EvaluationsIDs returns the "evaluations" edge IDs in the mutation.
func (m *RunMutation) EvaluationsIDs() (ids []int) {
	for id := range m.evaluations {
		ids = append(ids, id)
	}
	return
}

// ResetEvaluations resets all changes to the "evaluations" edge.
func (m *RunMutation) ResetEvaluations() {
	m.evaluations = nil
	m.clearedevaluations = false
	m.removedevaluations = nil
}

// SetSkillSessionID sets the "skill_session" edge to the SkillSession entity by id.
func (m *RunMutation) SetSkillSessionID(id int) {
	m.skill_session = &id
}

// ClearSkillSession clears the "skill_session" edge to the SkillSession entity.
func (m *RunMutation) ClearSkillSession() {
	m.clearedskill_session = true
}

// SkillSessionCleared reports if the "skill_session" edge to the SkillSession entity was cleared.
func (m *RunMutation) SkillSessionCleared() bool {
	return m.clearedskill_session
}

// SkillSessionID returns the "skill_session" edge ID in the mutation.
func (m *RunMutation) SkillSessionID() (id int, exists bool) {
	if m.skill_session != nil {
		return *m.skill_session, true
	}
	return
}

// SkillSessionIDs returns the "skill_session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SkillSessionID instead. It exists only for internal usage by the builders.
func (m *RunMutation) SkillSessionIDs() (ids []int) {
	if id := m.skill_session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSkillSession resets all changes to the "skill_session" edge.
func (m *RunMutation) ResetSkillSession() {
	m.skill_session = nil
	m.clearedskill_session = false
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.docs_url != nil {
		fields = append(fields, run.FieldDocsURL)
	}
	if m.status != nil {
		fields = append(fields, run.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, run.FieldEndedAt)
	}
	if m._config != nil {
		fields = append(fields, run.FieldConfig)
	}
	if m.totals != nil {
		fields = append(fields, run.FieldTotals)
	}
	if m.cost_estimate != nil {
		fields = append(fields, run.FieldCostEstimate)
	}
	if m.error_message != nil {
		fields = append(fields, run.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldDocsURL:
		return m.DocsURL()
	case run.FieldStatus:
		return m.Status()
	case run.FieldStartedAt:
		return m.StartedAt()
	case run.FieldEndedAt:
		return m.EndedAt()
	case run.FieldConfig:
		return m.Config()
	case run.FieldTotals:
		return m.Totals()
	case run.FieldCostEstimate:
		return m.CostEstimate()
	case run.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldDocsURL:
		return m.OldDocsURL(ctx)
	case run.FieldStatus:
		return m.OldStatus(ctx)
	case run.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case run.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case run.FieldConfig:
		return m.OldConfig(ctx)
	case run.FieldTotals:
		return m.OldTotals(ctx)
	case run.FieldCostEstimate:
		return m.OldCostEstimate(ctx)
	case run.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldDocsURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocsURL(v)
		return nil
	case run.FieldStatus:
		v, ok := value.(run.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case run.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case run.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case run.FieldConfig:
		v, ok := value.(models.RunConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case run.FieldTotals:
		v, ok := value.(*models.Totals)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotals(v)
		return nil
	case run.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostEstimate(v)
		return nil
	case run.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	var fields []string
	if m.addcost_estimate != nil {
		fields = append(fields, run.FieldCostEstimate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case run.FieldCostEstimate:
		return m.AddedCostEstimate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case run.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostEstimate(v)
		return nil
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldEndedAt) {
		fields = append(fields, run.FieldEndedAt)
	}
	if m.FieldCleared(run.FieldTotals) {
		fields = append(fields, run.FieldTotals)
	}
	if m.FieldCleared(run.FieldErrorMessage) {
		fields = append(fields, run.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case run.FieldTotals:
		m.ClearTotals()
		return nil
	case run.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldDocsURL:
		m.ResetDocsURL()
		return nil
	case run.FieldStatus:
		m.ResetStatus()
		return nil
	case run.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case run.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case run.FieldConfig:
		m.ResetConfig()
		return nil
	case run.FieldTotals:
		m.ResetTotals()
		return nil
	case run.FieldCostEstimate:
		m.ResetCostEstimate()
		return nil
	case run.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 8)
	if m.artifacts != nil {
		edges = append(edges, run.EdgeArtifacts)
	}
	if m.tasks != nil {
		edges = append(edges, run.EdgeTasks)
	}
	if m.workers != nil {
		edges = append(edges, run.EdgeWorkers)
	}
	if m.executions != nil {
		edges = append(edges, run.EdgeExecutions)
	}
	if m.events != nil {
		edges = append(edges, run.EdgeEvents)
	}
	if m.errors != nil {
		edges = append(edges, run.EdgeErrors)
	}
	if m.evaluations != nil {
		edges = append(edges, run.EdgeEvaluations)
	}
	if m.skill_session != nil {
		edges = append(edges, run.EdgeSkillSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.artifacts))
		for id := range m.artifacts {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeWorkers:
		ids := make([]ent.Value, 0, len(m.workers))
		for id := range m.workers {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeErrors:
		ids := make([]ent.Value, 0, len(m.errors))
		for id := range m.errors {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.evaluations))
		for id := range m.evaluations {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeSkillSession:
		if id := m.skill_session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 8)
	if m.removedartifacts != nil {
		edges = append(edges, run.EdgeArtifacts)
	}
	if m.removedtasks != nil {
		edges = append(edges, run.EdgeTasks)
	}
	if m.removedworkers != nil {
		edges = append(edges, run.EdgeWorkers)
	}
	if m.removedexecutions != nil {
		edges = append(edges, run.EdgeExecutions)
	}
	if m.removedevents != nil {
		edges = append(edges, run.EdgeEvents)
	}
	if m.removederrors != nil {
		edges = append(edges, run.EdgeErrors)
	}
	if m.removedevaluations != nil {
		edges = append(edges, run.EdgeEvaluations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.removedartifacts))
		for id := range m.removedartifacts {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeWorkers:
		ids := make([]ent.Value, 0, len(m.removedworkers))
		for id := range m.removedworkers {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeErrors:
		ids := make([]ent.Value, 0, len(m.removederrors))
		for id := range m.removederrors {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.removedevaluations))
		for id := range m.removedevaluations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 8)
	if m.clearedartifacts {
		edges = append(edges, run.EdgeArtifacts)
	}
	if m.clearedtasks {
		edges = append(edges, run.EdgeTasks)
	}
	if m.clearedworkers {
		edges = append(edges, run.EdgeWorkers)
	}
	if m.clearedexecutions {
		edges = append(edges, run.EdgeExecutions)
	}
	if m.clearedevents {
		edges = append(edges, run.EdgeEvents)
	}
	if m.clearederrors {
		edges = append(edges, run.EdgeErrors)
	}
	if m.clearedevaluations {
		edges = append(edges, run.EdgeEvaluations)
	}
	if m.clearedskill_session {
		edges = append(edges, run.EdgeSkillSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	switch name {
	case run.EdgeArtifacts:
		return m.clearedartifacts
	case run.EdgeTasks:
		return m.clearedtasks
	case run.EdgeWorkers:
		return m.clearedworkers
	case run.EdgeExecutions:
		return m.clearedexecutions
	case run.EdgeEvents:
		return m.clearedevents
	case run.EdgeErrors:
		return m.clearederrors
	case run.EdgeEvaluations:
		return m.clearedevaluations
	case run.EdgeSkillSession:
		return m.clearedskill_session
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	switch name {
	case run.EdgeSkillSession:
		m.ClearSkillSession()
		return nil
	}
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	switch name {
	case run.EdgeArtifacts:
		m.ResetArtifacts()
		return nil
	case run.EdgeTasks:
		m.ResetTasks()
		return nil
	case run.EdgeWorkers:
		m.ResetWorkers()
		return nil
	case run.EdgeExecutions:
		m.ResetExecutions()
		return nil
	case run.EdgeEvents:
		m.ResetEvents()
		return nil
	case run.EdgeErrors:
		m.ResetErrors()
		return nil
	case run.EdgeEvaluations:
		m.ResetEvaluations()
		return nil
	case run.EdgeSkillSession:
		m.ResetSkillSession()
		return nil
	}
	return fmt.Errorf("unknown Run edge %s", name)
}

// RunArtifactMutation represents an operation that mutates the RunArtifact nodes in the graph.
type RunArtifactMutation struct {
	config
	op            Op
	typ           string
	id            *int
	artifact_type *string
	source_url    *string
	content       *string
	content_hash  *string
	metadata      *map[string]string
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*RunArtifact, error)
	predicates    []predicate.RunArtifact
}

var _ ent.Mutation = (*RunArtifactMutation)(nil)

// runartifactOption allows management of the mutation configuration using functional options.
type runartifactOption func(*RunArtifactMutation)

// newRunArtifactMutation creates new mutation for the RunArtifact entity.
func newRunArtifactMutation(c config, op Op, opts ...runartifactOption) *RunArtifactMutation {
	m := &RunArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeRunArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunArtifactID sets the ID field of the mutation.
func withRunArtifactID(id int) runartifactOption {
	return func(m *RunArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *RunArtifact
		)
		m.oldValue = func(ctx context.Context) (*RunArtifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunArtifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunArtifact sets the old RunArtifact of the mutation.
func withRunArtifact(node *RunArtifact) runartifactOption {
	return func(m *RunArtifactMutation) {
		m.oldValue = func(context.Context) (*RunArtifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunArtifactMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunArtifactMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunArtifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunArtifactMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunArtifactMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunArtifact entity.
// If the RunArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunArtifactMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunArtifactMutation) ResetRunID() {
	m.run = nil
}

// SetArtifactType sets the "artifact_type" field.
func (m *RunArtifactMutation) SetArtifactType(s string) {
	m.artifact_type = &s
}

// ArtifactType returns the value of the "artifact_type" field in the mutation.
func (m *RunArtifactMutation) ArtifactType() (r string, exists bool) {
	v := m.artifact_type
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactType returns the old "artifact_type" field's value of the RunArtifact entity.
// If the RunArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunArtifactMutation) OldArtifactType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactType: %w", err)
	}
	return oldValue.ArtifactType, nil
}

// ResetArtifactType resets all changes to the "artifact_type" field.
func (m *RunArtifactMutation) ResetArtifactType() {
	m.artifact_type = nil
}

// SetSourceURL sets the "source_url" field.
func (m *RunArtifactMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *RunArtifactMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the RunArtifact entity.
// If the RunArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunArtifactMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *RunArtifactMutation) ResetSourceURL() {
	m.source_url = nil
}

// SetContent sets the "content" field.
func (m *RunArtifactMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *RunArtifactMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the RunArtifact entity.
// If the RunArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunArtifactMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *RunArtifactMutation) ResetContent() {
	m.content = nil
}

// SetContentHash sets the "content_hash" field.
func (m *RunArtifactMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *RunArtifactMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the RunArtifact entity.
// If the RunArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunArtifactMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *RunArtifactMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetMetadata sets the "metadata" field.
func (m *RunArtifactMutation) SetMetadata(value map[string]string) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *RunArtifactMutation) Metadata() (r map[string]string, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the RunArtifact entity.
// If the RunArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunArtifactMutation) OldMetadata(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *RunArtifactMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[runartifact.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *RunArtifactMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[runartifact.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *RunArtifactMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, runartifact.FieldMetadata)
}

// ClearRun clears the "run" edge to the Run entity.
func (m *RunArtifactMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runartifact.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *RunArtifactMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunArtifactMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunArtifactMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunArtifactMutation builder.
func (m *RunArtifactMutation) Where(ps ...predicate.RunArtifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunArtifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunArtifact).
func (m *RunArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunArtifactMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run != nil {
		fields = append(fields, runartifact.FieldRunID)
	}
	if m.artifact_type != nil {
		fields = append(fields, runartifact.FieldArtifactType)
	}
	if m.source_url != nil {
		fields = append(fields, runartifact.FieldSourceURL)
	}
	if m.content != nil {
		fields = append(fields, runartifact.FieldContent)
	}
	if m.content_hash != nil {
		fields = append(fields, runartifact.FieldContentHash)
	}
	if m.metadata != nil {
		fields = append(fields, runartifact.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runartifact.FieldRunID:
		return m.RunID()
	case runartifact.FieldArtifactType:
		return m.ArtifactType()
	case runartifact.FieldSourceURL:
		return m.SourceURL()
	case runartifact.FieldContent:
		return m.Content()
	case runartifact.FieldContentHash:
		return m.ContentHash()
	case runartifact.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runartifact.FieldRunID:
		return m.OldRunID(ctx)
	case runartifact.FieldArtifactType:
		return m.OldArtifactType(ctx)
	case runartifact.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case runartifact.FieldContent:
		return m.OldContent(ctx)
	case runartifact.FieldContentHash:
		return m.OldContentHash(ctx)
	case runartifact.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown RunArtifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runartifact.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runartifact.FieldArtifactType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactType(v)
		return nil
	case runartifact.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case runartifact.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case runartifact.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case runartifact.FieldMetadata:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown RunArtifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunArtifactMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunArtifactMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RunArtifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunArtifactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runartifact.FieldMetadata) {
		fields = append(fields, runartifact.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunArtifactMutation) ClearField(name string) error {
	switch name {
	case runartifact.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown RunArtifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunArtifactMutation) ResetField(name string) error {
	switch name {
	case runartifact.FieldRunID:
		m.ResetRunID()
		return nil
	case runartifact.FieldArtifactType:
		m.ResetArtifactType()
		return nil
	case runartifact.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case runartifact.FieldContent:
		m.ResetContent()
		return nil
	case runartifact.FieldContentHash:
		m.ResetContentHash()
		return nil
	case runartifact.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown RunArtifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runartifact.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunArtifactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runartifact.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runartifact.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunArtifactMutation) EdgeCleared(name string) bool {
	switch name {
	case runartifact.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunArtifactMutation) ClearEdge(name string) error {
	switch name {
	case runartifact.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunArtifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunArtifactMutation) ResetEdge(name string) error {
	switch name {
	case runartifact.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunArtifact edge %s", name)
}

// RunErrorMutation represents an operation that mutates the RunError nodes in the graph.
type RunErrorMutation struct {
	config
	op            Op
	typ           string
	id            *string
	code          *string
	message       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*RunError, error)
	predicates    []predicate.RunError
}

var _ ent.Mutation = (*RunErrorMutation)(nil)

// runerrorOption allows management of the mutation configuration using functional options.
type runerrorOption func(*RunErrorMutation)

// newRunErrorMutation creates new mutation for the RunError entity.
func newRunErrorMutation(c config, op Op, opts ...runerrorOption) *RunErrorMutation {
	m := &RunErrorMutation{
		config:        c,
		op:            op,
		typ:           TypeRunError,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunErrorID sets the ID field of the mutation.
func withRunErrorID(id string) runerrorOption {
	return func(m *RunErrorMutation) {
		var (
			err   error
			once  sync.Once
			value *RunError
		)
		m.oldValue = func(ctx context.Context) (*RunError, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunError.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunError sets the old RunError of the mutation.
func withRunError(node *RunError) runerrorOption {
	return func(m *RunErrorMutation) {
		m.oldValue = func(context.Context) (*RunError, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunErrorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunErrorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunError entities.
func (m *RunErrorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunErrorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunErrorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunError.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunErrorMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunErrorMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunError entity.
// If the RunError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunErrorMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunErrorMutation) ResetRunID() {
	m.run = nil
}

// SetCode sets the "code" field.
func (m *RunErrorMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *RunErrorMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the RunError entity.
// If the RunError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunErrorMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *RunErrorMutation) ResetCode() {
	m.code = nil
}

// SetMessage sets the "message" field.
func (m *RunErrorMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *RunErrorMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the RunError entity.
// If the RunError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunErrorMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *RunErrorMutation) ResetMessage() {
	m.message = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RunErrorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunErrorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunError entity.
// If the RunError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunErrorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunErrorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *RunErrorMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runerror.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *RunErrorMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunErrorMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunErrorMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunErrorMutation builder.
func (m *RunErrorMutation) Where(ps ...predicate.RunError) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunErrorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunErrorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunError, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunErrorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunErrorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunError).
func (m *RunErrorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunErrorMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.run != nil {
		fields = append(fields, runerror.FieldRunID)
	}
	if m.code != nil {
		fields = append(fields, runerror.FieldCode)
	}
	if m.message != nil {
		fields = append(fields, runerror.FieldMessage)
	}
	if m.created_at != nil {
		fields = append(fields, runerror.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunErrorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runerror.FieldRunID:
		return m.RunID()
	case runerror.FieldCode:
		return m.Code()
	case runerror.FieldMessage:
		return m.Message()
	case runerror.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunErrorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runerror.FieldRunID:
		return m.OldRunID(ctx)
	case runerror.FieldCode:
		return m.OldCode(ctx)
	case runerror.FieldMessage:
		return m.OldMessage(ctx)
	case runerror.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunError field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunErrorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runerror.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runerror.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case runerror.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case runerror.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunError field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunErrorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunErrorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunErrorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RunError numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunErrorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunErrorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunErrorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RunError nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunErrorMutation) ResetField(name string) error {
	switch name {
	case runerror.FieldRunID:
		m.ResetRunID()
		return nil
	case runerror.FieldCode:
		m.ResetCode()
		return nil
	case runerror.FieldMessage:
		m.ResetMessage()
		return nil
	case runerror.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RunError field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunErrorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runerror.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunErrorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runerror.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunErrorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunErrorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunErrorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runerror.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunErrorMutation) EdgeCleared(name string) bool {
	switch name {
	case runerror.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunErrorMutation) ClearEdge(name string) error {
	switch name {
	case runerror.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunError unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunErrorMutation) ResetEdge(name string) error {
	switch name {
	case runerror.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunError edge %s", name)
}

// RunEventMutation represents an operation that mutates the RunEvent nodes in the graph.
type RunEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	seq           *int
	addseq        *int
	event_type    *string
	payload       *models.EventPayload
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*RunEvent, error)
	predicates    []predicate.RunEvent
}

var _ ent.Mutation = (*RunEventMutation)(nil)

// runeventOption allows management of the mutation configuration using functional options.
type runeventOption func(*RunEventMutation)

// newRunEventMutation creates new mutation for the RunEvent entity.
func newRunEventMutation(c config, op Op, opts ...runeventOption) *RunEventMutation {
	m := &RunEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRunEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunEventID sets the ID field of the mutation.
func withRunEventID(id int) runeventOption {
	return func(m *RunEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RunEvent
		)
		m.oldValue = func(ctx context.Context) (*RunEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunEvent sets the old RunEvent of the mutation.
func withRunEvent(node *RunEvent) runeventOption {
	return func(m *RunEventMutation) {
		m.oldValue = func(context.Context) (*RunEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunEventMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunEventMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunEventMutation) ResetRunID() {
	m.run = nil
}

// SetSeq sets the "seq" field.
func (m *RunEventMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *RunEventMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *RunEventMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *RunEventMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *RunEventMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetEventType sets the "event_type" field.
func (m *RunEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *RunEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *RunEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *RunEventMutation) SetPayload(mp models.EventPayload) {
	m.payload = &mp
}

// Payload returns the value of the "payload" field in the mutation.
func (m *RunEventMutation) Payload() (r models.EventPayload, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldPayload(ctx context.Context) (v models.EventPayload, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *RunEventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RunEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *RunEventMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runevent.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *RunEventMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunEventMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunEventMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunEventMutation builder.
func (m *RunEventMutation) Where(ps ...predicate.RunEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunEvent).
func (m *RunEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.run != nil {
		fields = append(fields, runevent.FieldRunID)
	}
	if m.seq != nil {
		fields = append(fields, runevent.FieldSeq)
	}
	if m.event_type != nil {
		fields = append(fields, runevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, runevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, runevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldRunID:
		return m.RunID()
	case runevent.FieldSeq:
		return m.Seq()
	case runevent.FieldEventType:
		return m.EventType()
	case runevent.FieldPayload:
		return m.Payload()
	case runevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runevent.FieldRunID:
		return m.OldRunID(ctx)
	case runevent.FieldSeq:
		return m.OldSeq(ctx)
	case runevent.FieldEventType:
		return m.OldEventType(ctx)
	case runevent.FieldPayload:
		return m.OldPayload(ctx)
	case runevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runevent.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case runevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case runevent.FieldPayload:
		v, ok := value.(models.EventPayload)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case runevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunEventMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, runevent.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RunEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunEventMutation) ResetField(name string) error {
	switch name {
	case runevent.FieldRunID:
		m.ResetRunID()
		return nil
	case runevent.FieldSeq:
		m.ResetSeq()
		return nil
	case runevent.FieldEventType:
		m.ResetEventType()
		return nil
	case runevent.FieldPayload:
		m.ResetPayload()
		return nil
	case runevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runevent.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunEventMutation) EdgeCleared(name string) bool {
	switch name {
	case runevent.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunEventMutation) ClearEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunEventMutation) ResetEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent edge %s", name)
}

// RunWorkerMutation represents an operation that mutates the RunWorker nodes in the graph.
type RunWorkerMutation struct {
	config
	op             Op
	typ            string
	id             *string
	worker_label   *string
	model_provider *string
	model_name     *string
	model_config   *models.ModelConfig
	status         *runworker.Status
	clearedFields  map[string]struct{}
	run            *string
	clearedrun     bool
	done           bool
	oldValue       func(context.Context) (*RunWorker, error)
	predicates     []predicate.RunWorker
}

var _ ent.Mutation = (*RunWorkerMutation)(nil)

// runworkerOption allows management of the mutation configuration using functional options.
type runworkerOption func(*RunWorkerMutation)

// newRunWorkerMutation creates new mutation for the RunWorker entity.
func newRunWorkerMutation(c config, op Op, opts ...runworkerOption) *RunWorkerMutation {
	m := &RunWorkerMutation{
		config:        c,
		op:            op,
		typ:           TypeRunWorker,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunWorkerID sets the ID field of the mutation.
func withRunWorkerID(id string) runworkerOption {
	return func(m *RunWorkerMutation) {
		var (
			err   error
			once  sync.Once
			value *RunWorker
		)
		m.oldValue = func(ctx context.Context) (*RunWorker, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunWorker.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunWorker sets the old RunWorker of the mutation.
func withRunWorker(node *RunWorker) runworkerOption {
	return func(m *RunWorkerMutation) {
		m.oldValue = func(context.Context) (*RunWorker, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunWorkerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunWorkerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunWorker entities.
func (m *RunWorkerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunWorkerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunWorkerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunWorker.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunWorkerMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunWorkerMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunWorker entity.
// If the RunWorker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunWorkerMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunWorkerMutation) ResetRunID() {
	m.run = nil
}

// SetWorkerLabel sets the "worker_label" field.
func (m *RunWorkerMutation) SetWorkerLabel(s string) {
	m.worker_label = &s
}

// WorkerLabel returns the value of the "worker_label" field in the mutation.
func (m *RunWorkerMutation) WorkerLabel() (r string, exists bool) {
	v := m.worker_label
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerLabel returns the old "worker_label" field's value of the RunWorker entity.
// If the RunWorker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunWorkerMutation) OldWorkerLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerLabel: %w", err)
	}
	return oldValue.WorkerLabel, nil
}

// ResetWorkerLabel resets all changes to the "worker_label" field.
func (m *RunWorkerMutation) ResetWorkerLabel() {
	m.worker_label = nil
}

// SetModelProvider sets the "model_provider" field.
func (m *RunWorkerMutation) SetModelProvider(s string) {
	m.model_provider = &s
}

// ModelProvider returns the value of the "model_provider" field in the mutation.
func (m *RunWorkerMutation) ModelProvider() (r string, exists bool) {
	v := m.model_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldModelProvider returns the old "model_provider" field's value of the RunWorker entity.
// If the RunWorker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunWorkerMutation) OldModelProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelProvider: %w", err)
	}
	return oldValue.ModelProvider, nil
}

// ResetModelProvider resets all changes to the "model_provider" field.
func (m *RunWorkerMutation) ResetModelProvider() {
	m.model_provider = nil
}

// SetModelName sets the "model_name" field.
func (m *RunWorkerMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *RunWorkerMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the RunWorker entity.
// If the RunWorker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunWorkerMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *RunWorkerMutation) ResetModelName() {
	m.model_name = nil
}

// SetModelConfig sets the "model_config" field.
func (m *RunWorkerMutation) SetModelConfig(mc models.ModelConfig) {
	m.model_config = &mc
}

// ModelConfig returns the value of the "model_config" field in the mutation.
func (m *RunWorkerMutation) ModelConfig() (r models.ModelConfig, exists bool) {
	v := m.model_config
	if v == nil {
		return
	}
	return *v, true
}

// OldModelConfig returns the old "model_config" field's value of the RunWorker entity.
// If the RunWorker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunWorkerMutation) OldModelConfig(ctx context.Context) (v models.ModelConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelConfig: %w", err)
	}
	return oldValue.ModelConfig, nil
}

// ResetModelConfig resets all changes to the "model_config" field.
func (m *RunWorkerMutation) ResetModelConfig() {
	m.model_config = nil
}

// SetStatus sets the "status" field.
func (m *RunWorkerMutation) SetStatus(r runworker.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunWorkerMutation) Status() (r runworker.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RunWorker entity.
// If the RunWorker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunWorkerMutation) OldStatus(ctx context.Context) (v runworker.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunWorkerMutation) ResetStatus() {
	m.status = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *RunWorkerMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runworker.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *RunWorkerMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunWorkerMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunWorkerMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunWorkerMutation builder.
func (m *RunWorkerMutation) Where(ps ...predicate.RunWorker) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunWorkerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunWorkerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunWorker, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunWorkerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunWorkerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunWorker).
func (m *RunWorkerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunWorkerMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run != nil {
		fields = append(fields, runworker.FieldRunID)
	}
	if m.worker_label != nil {
		fields = append(fields, runworker.FieldWorkerLabel)
	}
	if m.model_provider != nil {
		fields = append(fields, runworker.FieldModelProvider)
	}
	if m.model_name != nil {
		fields = append(fields, runworker.FieldModelName)
	}
	if m.model_config != nil {
		fields = append(fields, runworker.FieldModelConfig)
	}
	if m.status != nil {
		fields = append(fields, runworker.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunWorkerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runworker.FieldRunID:
		return m.RunID()
	case runworker.FieldWorkerLabel:
		return m.WorkerLabel()
	case runworker.FieldModelProvider:
		return m.ModelProvider()
	case runworker.FieldModelName:
		return m.ModelName()
	case runworker.FieldModelConfig:
		return m.ModelConfig()
	case runworker.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunWorkerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runworker.FieldRunID:
		return m.OldRunID(ctx)
	case runworker.FieldWorkerLabel:
		return m.OldWorkerLabel(ctx)
	case runworker.FieldModelProvider:
		return m.OldModelProvider(ctx)
	case runworker.FieldModelName:
		return m.OldModelName(ctx)
	case runworker.FieldModelConfig:
		return m.OldModelConfig(ctx)
	case runworker.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown RunWorker field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunWorkerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runworker.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runworker.FieldWorkerLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerLabel(v)
		return nil
	case runworker.FieldModelProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelProvider(v)
		return nil
	case runworker.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case runworker.FieldModelConfig:
		v, ok := value.(models.ModelConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelConfig(v)
		return nil
	case runworker.FieldStatus:
		v, ok := value.(runworker.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown RunWorker field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunWorkerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunWorkerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunWorkerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RunWorker numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunWorkerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunWorkerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunWorkerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RunWorker nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunWorkerMutation) ResetField(name string) error {
	switch name {
	case runworker.FieldRunID:
		m.ResetRunID()
		return nil
	case runworker.FieldWorkerLabel:
		m.ResetWorkerLabel()
		return nil
	case runworker.FieldModelProvider:
		m.ResetModelProvider()
		return nil
	case runworker.FieldModelName:
		m.ResetModelName()
		return nil
	case runworker.FieldModelConfig:
		m.ResetModelConfig()
		return nil
	case runworker.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown RunWorker field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunWorkerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runworker.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunWorkerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runworker.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunWorkerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunWorkerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunWorkerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runworker.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunWorkerMutation) EdgeCleared(name string) bool {
	switch name {
	case runworker.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunWorkerMutation) ClearEdge(name string) error {
	switch name {
	case runworker.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunWorker unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunWorkerMutation) ResetEdge(name string) error {
	switch name {
	case runworker.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunWorker edge %s", name)
}

// SkillSessionMutation represents an operation that mutates the SkillSession nodes in the graph.
type SkillSessionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	status               *skillsession.Status
	source_skill_origin  *skillsession.SourceSkillOrigin
	baseline_totals      **models.Totals
	optimized_totals     **models.Totals
	delta                **models.Delta
	optimized_skill_hash *string
	tokens_in            *int
	addtokens_in         *int
	tokens_out           *int
	addtokens_out        *int
	cost_estimate        *float64
	addcost_estimate     *float64
	error_message        *string
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	run                  *string
	clearedrun           bool
	done                 bool
	oldValue             func(context.Context) (*SkillSession, error)
	predicates           []predicate.SkillSession
}

var _ ent.Mutation = (*SkillSessionMutation)(nil)

// skillsessionOption allows management of the mutation configuration using functional options.
type skillsessionOption func(*SkillSessionMutation)

// newSkillSessionMutation creates new mutation for the SkillSession entity.
func newSkillSessionMutation(c config, op Op, opts ...skillsessionOption) *SkillSessionMutation {
	m := &SkillSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSkillSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSkillSessionID sets the ID field of the mutation.
func withSkillSessionID(id int) skillsessionOption {
	return func(m *SkillSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *SkillSession
		)
		m.oldValue = func(ctx context.Context) (*SkillSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SkillSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSkillSession sets the old SkillSession of the mutation.
func withSkillSession(node *SkillSession) skillsessionOption {
	return func(m *SkillSessionMutation) {
		m.oldValue = func(context.Context) (*SkillSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SkillSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SkillSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SkillSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SkillSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SkillSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *SkillSessionMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *SkillSessionMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the SkillSession entity.
// If the SkillSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillSessionMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *SkillSessionMutation) ResetRunID() {
	m.run = nil
}

// SetStatus sets the "status" field.
func (m *SkillSessionMutation) SetStatus(s skillsession.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SkillSessionMutation) Status() (r skillsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SkillSession entity.
// If the SkillSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillSessionMutation) OldStatus(ctx context.Context) (v skillsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SkillSessionMutation) ResetStatus() {
	m.status = nil
}

// SetSourceSkillOrigin sets the "source_skill_origin" field.
func (m *SkillSessionMutation) SetSourceSkillOrigin(sso skillsession.SourceSkillOrigin) {
	m.source_skill_origin = &sso
}

// SourceSkillOrigin returns the value of the "source_skill_origin" field in the mutation.
func (m *SkillSessionMutation) SourceSkillOrigin() (r skillsession.SourceSkillOrigin, exists bool) {
	v := m.source_skill_origin
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceSkillOrigin returns the old "source_skill_origin" field's value of the SkillSession entity.
// If the SkillSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillSessionMutation) OldSourceSkillOrigin(ctx context.Context) (v skillsession.SourceSkillOrigin, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceSkillOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceSkillOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceSkillOrigin: %w", err)
	}
	return oldValue.SourceSkillOrigin, nil
}

// ResetSourceSkillOrigin resets all changes to the "source_skill_origin" field.
func (m *SkillSessionMutation) ResetSourceSkillOrigin() {
	m.source_skill_origin = nil
}

// SetBaselineTotals sets the "baseline_totals" field.
func (m *SkillSessionMutation) SetBaselineTotals(value *models.Totals) {
	m.baseline_totals = &value
}

// BaselineTotals returns the value of the "baseline_totals" field in the mutation.
func (m *SkillSessionMutation) BaselineTotals() (r *models.Totals, exists bool) {
	v := m.baseline_totals
	if v == nil {
		return
	}
	return *v, true
}

// OldBaselineTotals returns the old "baseline_totals" field's value of the SkillSession entity.
// If the SkillSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillSessionMutation) OldBaselineTotals(ctx context.Context) (v *models.Totals, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaselineTotals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaselineTotals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaselineTotals: %w", err)
	}
	return oldValue.BaselineTotals, nil
}

// ClearBaselineTotals clears the value of the "baseline_totals" field.
func (m *SkillSessionMutation) ClearBaselineTotals() {
	m.baseline_totals = nil
	m.clearedFields[skillsession.FieldBaselineTotals] = struct{}{}
}

// BaselineTotalsCleared returns if the "baseline_totals" field was cleared in this mutation.
func (m *SkillSessionMutation) BaselineTotalsCleared() bool {
	_, ok := m.clearedFields[skillsession.FieldBaselineTotals]
	return ok
}

// ResetBaselineTotals resets all changes to the "baseline_totals" field.
func (m *SkillSessionMutation) ResetBaselineTotals() {
	m.baseline_totals = nil
	delete(m.clearedFields, skillsession.FieldBaselineTotals)
}

// SetOptimizedTotals sets the "optimized_totals" field.
func (m *SkillSessionMutation) SetOptimizedTotals(value *models.Totals) {
	m.optimized_totals = &value
}

// OptimizedTotals returns the value of the "optimized_totals" field in the mutation.
func (m *SkillSessionMutation) OptimizedTotals() (r *models.Totals, exists bool) {
	v := m.optimized_totals
	if v == nil {
		return
	}
	return *v, true
}

// OldOptimizedTotals returns the old "optimized_totals" field's value of the SkillSession entity.
// If the SkillSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillSessionMutation) OldOptimizedTotals(ctx context.Context) (v *models.Totals, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptimizedTotals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptimizedTotals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptimizedTotals: %w", err)
	}
	return oldValue.OptimizedTotals, nil
}

// ClearOptimizedTotals clears the value of the "optimized_totals" field.
func (m *SkillSessionMutation) ClearOptimizedTotals() {
	m.optimized_totals = nil
	m.clearedFields[skillsession.FieldOptimizedTotals] = struct{}{}
}

// OptimizedTotalsCleared returns if the "optimized_totals" field was cleared in this mutation.
func (m *SkillSessionMutation) OptimizedTotalsCleared() bool {
	_, ok := m.clearedFields[skillsession.FieldOptimizedTotals]
	return ok
}

// ResetOptimizedTotals resets all changes to the "optimized_totals" field.
func (m *SkillSessionMutation) ResetOptimizedTotals() {
	m.optimized_totals = nil
	delete(m.clearedFields, skillsession.FieldOptimizedTotals)
}

// SetDelta sets the "delta" field.
func (m *SkillSessionMutation) SetDelta(value *models.Delta) {
	m.delta = &value
}

// Delta returns the value of the "delta" field in the mutation.
func (m *SkillSessionMutation) Delta() (r *models.Delta, exists bool) {
	v := m.delta
	if v == nil {
		return
	}
	return *v, true
}

// OldDelta returns the old "delta" field's value of the SkillSession entity.
// If the SkillSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillSessionMutation) OldDelta(ctx context.Context) (v *models.Delta, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelta: %w", err)
	}
	return oldValue.Delta, nil
}

// ClearDelta clears the value of the "delta" field.
func (m *SkillSessionMutation) ClearDelta() {
	m.delta = nil
	m.clearedFields[skillsession.FieldDelta] = struct{}{}
}

// DeltaCleared returns if the "delta" field was cleared in this mutation.
func (m *SkillSessionMutation) DeltaCleared() bool {
	_, ok := m.clearedFields[skillsession.FieldDelta]
	return ok
}

// ResetDelta resets all changes to the "delta" field.
func (m *SkillSessionMutation) ResetDelta() {
	m.delta = nil
	delete(m.clearedFields, skillsession.FieldDelta)
}

// SetOptimizedSkillHash sets the "optimized_skill_hash" field.
func (m *SkillSessionMutation) SetOptimizedSkillHash(s string) {
	m.optimized_skill_hash = &s
}

// OptimizedSkillHash returns the value of the "optimized_skill_hash" field in the mutation.
func (m *SkillSessionMutation) OptimizedSkillHash() (r string, exists bool) {
	v := m.optimized_skill_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldOptimizedSkillHash returns the old "optimized_skill_hash" field's value of the SkillSession entity.
// If the SkillSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillSessionMutation) OldOptimizedSkillHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptimizedSkillHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptimizedSkillHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptimizedSkillHash: %w", err)
	}
	return oldValue.OptimizedSkillHash, nil
}

// ClearOptimizedSkillHash clears the value of the "optimized_skill_hash" field.
func (m *SkillSessionMutation) ClearOptimizedSkillHash() {
	m.optimized_skill_hash = nil
	m.clearedFields[skillsession.FieldOptimizedSkillHash] = struct{}{}
}

// OptimizedSkillHashCleared returns if the "optimized_skill_hash" field was cleared in this mutation.
func (m *SkillSessionMutation) OptimizedSkillHashCleared() bool {
	_, ok := m.clearedFields[skillsession.FieldOptimizedSkillHash]
	return ok
}

// ResetOptimizedSkillHash resets all changes to the "optimized_skill_hash" field.
func (m *SkillSessionMutation) ResetOptimizedSkillHash() {
	m.optimized_skill_hash = nil
	delete(m.clearedFields, skillsession.FieldOptimizedSkillHash)
}

// SetTokensIn sets the "tokens_in" field.
func (m *SkillSessionMutation) SetTokensIn(i int) {
	m.tokens_in = &i
	m.addtokens_in = nil
}

// TokensIn returns the value of the "tokens_in" field in the mutation.
func (m *SkillSessionMutation) TokensIn() (r int, exists bool) {
	v := m.tokens_in
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensIn returns the old "tokens_in" field's value of the SkillSession entity.
// If the SkillSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillSessionMutation) OldTokensIn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensIn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensIn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensIn: %w", err)
	}
	return oldValue.TokensIn, nil
}

// AddTokensIn adds i to the "tokens_in" field.
func (m *SkillSessionMutation) AddTokensIn(i int) {
	if m.addtokens_in != nil {
		*m.addtokens_in += i
	} else {
		m.addtokens_in = &i
	}
}

// AddedTokensIn returns the value that was added to the "tokens_in" field in this mutation.
func (m *SkillSessionMutation) AddedTokensIn() (r int, exists bool) {
	v := m.addtokens_in
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensIn resets all changes to the "tokens_in" field.
func (m *SkillSessionMutation) ResetTokensIn() {
	m.tokens_in = nil
	m.addtokens_in = nil
}

// SetTokensOut sets the "tokens_out" field.
func (m *SkillSessionMutation) SetTokensOut(i int) {
	m.tokens_out = &i
	m.addtokens_out = nil
}

// TokensOut returns the value of the "tokens_out" field in the mutation.
func (m *SkillSessionMutation) TokensOut() (r int, exists bool) {
	v := m.tokens_out
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensOut returns the old "tokens_out" field's value of the SkillSession entity.
// If the SkillSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillSessionMutation) OldTokensOut(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensOut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensOut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensOut: %w", err)
	}
	return oldValue.TokensOut, nil
}

// AddTokensOut adds i to the "tokens_out" field.
func (m *SkillSessionMutation) AddTokensOut(i int) {
	if m.addtokens_out != nil {
		*m.addtokens_out += i
	} else {
		m.addtokens_out = &i
	}
}

// AddedTokensOut returns the value that was added to the "tokens_out" field in this mutation.
func (m *SkillSessionMutation) AddedTokensOut() (r int, exists bool) {
	v := m.addtokens_out
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensOut resets all changes to the "tokens_out" field.
func (m *SkillSessionMutation) ResetTokensOut() {
	m.tokens_out = nil
	m.addtokens_out = nil
}

// SetCostEstimate sets the "cost_estimate" field.
func (m *SkillSessionMutation) SetCostEstimate(f float64) {
	m.cost_estimate = &f
	m.addcost_estimate = nil
}

// CostEstimate returns the value of the "cost_estimate" field in the mutation.
func (m *SkillSessionMutation) CostEstimate() (r float64, exists bool) {
	v := m.cost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldCostEstimate returns the old "cost_estimate" field's value of the SkillSession entity.
// If the SkillSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillSessionMutation) OldCostEstimate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostEstimate: %w", err)
	}
	return oldValue.CostEstimate, nil
}

// AddCostEstimate adds f to the "cost_estimate" field.
func (m *SkillSessionMutation) AddCostEstimate(f float64) {
	if m.addcost_estimate != nil {
		*m.addcost_estimate += f
	} else {
		m.addcost_estimate = &f
	}
}

// AddedCostEstimate returns the value that was added to the "cost_estimate" field in this mutation.
func (m *SkillSessionMutation) AddedCostEstimate() (r float64, exists bool) {
	v := m.addcost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostEstimate resets all changes to the "cost_estimate" field.
func (m *SkillSessionMutation) ResetCostEstimate() {
	m.cost_estimate = nil
	m.addcost_estimate = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *SkillSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SkillSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SkillSession entity.
// If the SkillSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SkillSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[skillsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SkillSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[skillsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SkillSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, skillsession.FieldErrorMessage)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SkillSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SkillSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SkillSession entity.
// If the SkillSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SkillSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *SkillSessionMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[skillsession.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *SkillSessionMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *SkillSessionMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *SkillSessionMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the SkillSessionMutation builder.
func (m *SkillSessionMutation) Where(ps ...predicate.SkillSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SkillSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SkillSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SkillSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SkillSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SkillSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SkillSession).
func (m *SkillSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SkillSessionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.run != nil {
		fields = append(fields, skillsession.FieldRunID)
	}
	if m.status != nil {
		fields = append(fields, skillsession.FieldStatus)
	}
	if m.source_skill_origin != nil {
		fields = append(fields, skillsession.FieldSourceSkillOrigin)
	}
	if m.baseline_totals != nil {
		fields = append(fields, skillsession.FieldBaselineTotals)
	}
	if m.optimized_totals != nil {
		fields = append(fields, skillsession.FieldOptimizedTotals)
	}
	if m.delta != nil {
		fields = append(fields, skillsession.FieldDelta)
	}
	if m.optimized_skill_hash != nil {
		fields = append(fields, skillsession.FieldOptimizedSkillHash)
	}
	if m.tokens_in != nil {
		fields = append(fields, skillsession.FieldTokensIn)
	}
	if m.tokens_out != nil {
		fields = append(fields, skillsession.FieldTokensOut)
	}
	if m.cost_estimate != nil {
		fields = append(fields, skillsession.FieldCostEstimate)
	}
	if m.error_message != nil {
		fields = append(fields, skillsession.FieldErrorMessage)
	}
	if m.updated_at != nil {
		fields = append(fields, skillsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SkillSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case skillsession.FieldRunID:
		return m.RunID()
	case skillsession.FieldStatus:
		return m.Status()
	case skillsession.FieldSourceSkillOrigin:
		return m.SourceSkillOrigin()
	case skillsession.FieldBaselineTotals:
		return m.BaselineTotals()
	case skillsession.FieldOptimizedTotals:
		return m.OptimizedTotals()
	case skillsession.FieldDelta:
		return m.Delta()
	case skillsession.FieldOptimizedSkillHash:
		return m.OptimizedSkillHash()
	case skillsession.FieldTokensIn:
		return m.TokensIn()
	case skillsession.FieldTokensOut:
		return m.TokensOut()
	case skillsession.FieldCostEstimate:
		return m.CostEstimate()
	case skillsession.FieldErrorMessage:
		return m.ErrorMessage()
	case skillsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SkillSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case skillsession.FieldRunID:
		return m.OldRunID(ctx)
	case skillsession.FieldStatus:
		return m.OldStatus(ctx)
	case skillsession.FieldSourceSkillOrigin:
		return m.OldSourceSkillOrigin(ctx)
	case skillsession.FieldBaselineTotals:
		return m.OldBaselineTotals(ctx)
	case skillsession.FieldOptimizedTotals:
		return m.OldOptimizedTotals(ctx)
	case skillsession.FieldDelta:
		return m.OldDelta(ctx)
	case skillsession.FieldOptimizedSkillHash:
		return m.OldOptimizedSkillHash(ctx)
	case skillsession.FieldTokensIn:
		return m.OldTokensIn(ctx)
	case skillsession.FieldTokensOut:
		return m.OldTokensOut(ctx)
	case skillsession.FieldCostEstimate:
		return m.OldCostEstimate(ctx)
	case skillsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case skillsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SkillSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case skillsession.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case skillsession.FieldStatus:
		v, ok := value.(skillsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case skillsession.FieldSourceSkillOrigin:
		v, ok := value.(skillsession.SourceSkillOrigin)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceSkillOrigin(v)
		return nil
	case skillsession.FieldBaselineTotals:
		v, ok := value.(*models.Totals)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaselineTotals(v)
		return nil
	case skillsession.FieldOptimizedTotals:
		v, ok := value.(*models.Totals)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptimizedTotals(v)
		return nil
	case skillsession.FieldDelta:
		v, ok := value.(*models.Delta)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelta(v)
		return nil
	case skillsession.FieldOptimizedSkillHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptimizedSkillHash(v)
		return nil
	case skillsession.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensIn(v)
		return nil
	case skillsession.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensOut(v)
		return nil
	case skillsession.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostEstimate(v)
		return nil
	case skillsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case skillsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SkillSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SkillSessionMutation) AddedFields() []string {
	var fields []string
	if m.addtokens_in != nil {
		fields = append(fields, skillsession.FieldTokensIn)
	}
	if m.addtokens_out != nil {
		fields = append(fields, skillsession.FieldTokensOut)
	}
	if m.addcost_estimate != nil {
		fields = append(fields, skillsession.FieldCostEstimate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SkillSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case skillsession.FieldTokensIn:
		return m.AddedTokensIn()
	case skillsession.FieldTokensOut:
		return m.AddedTokensOut()
	case skillsession.FieldCostEstimate:
		return m.AddedCostEstimate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case skillsession.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensIn(v)
		return nil
	case skillsession.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensOut(v)
		return nil
	case skillsession.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostEstimate(v)
		return nil
	}
	return fmt.Errorf("unknown SkillSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SkillSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(skillsession.FieldBaselineTotals) {
		fields = append(fields, skillsession.FieldBaselineTotals)
	}
	if m.FieldCleared(skillsession.FieldOptimizedTotals) {
		fields = append(fields, skillsession.FieldOptimizedTotals)
	}
	if m.FieldCleared(skillsession.FieldDelta) {
		fields = append(fields, skillsession.FieldDelta)
	}
	if m.FieldCleared(skillsession.FieldOptimizedSkillHash) {
		fields = append(fields, skillsession.FieldOptimizedSkillHash)
	}
	if m.FieldCleared(skillsession.FieldErrorMessage) {
		fields = append(fields, skillsession.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SkillSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SkillSessionMutation) ClearField(name string) error {
	switch name {
	case skillsession.FieldBaselineTotals:
		m.ClearBaselineTotals()
		return nil
	case skillsession.FieldOptimizedTotals:
		m.ClearOptimizedTotals()
		return nil
	case skillsession.FieldDelta:
		m.ClearDelta()
		return nil
	case skillsession.FieldOptimizedSkillHash:
		m.ClearOptimizedSkillHash()
		return nil
	case skillsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown SkillSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SkillSessionMutation) ResetField(name string) error {
	switch name {
	case skillsession.FieldRunID:
		m.ResetRunID()
		return nil
	case skillsession.FieldStatus:
		m.ResetStatus()
		return nil
	case skillsession.FieldSourceSkillOrigin:
		m.ResetSourceSkillOrigin()
		return nil
	case skillsession.FieldBaselineTotals:
		m.ResetBaselineTotals()
		return nil
	case skillsession.FieldOptimizedTotals:
		m.ResetOptimizedTotals()
		return nil
	case skillsession.FieldDelta:
		m.ResetDelta()
		return nil
	case skillsession.FieldOptimizedSkillHash:
		m.ResetOptimizedSkillHash()
		return nil
	case skillsession.FieldTokensIn:
		m.ResetTokensIn()
		return nil
	case skillsession.FieldTokensOut:
		m.ResetTokensOut()
		return nil
	case skillsession.FieldCostEstimate:
		m.ResetCostEstimate()
		return nil
	case skillsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case skillsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SkillSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SkillSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, skillsession.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SkillSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case skillsession.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SkillSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SkillSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SkillSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, skillsession.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SkillSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case skillsession.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SkillSessionMutation) ClearEdge(name string) error {
	switch name {
	case skillsession.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown SkillSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SkillSessionMutation) ResetEdge(name string) error {
	switch name {
	case skillsession.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown SkillSession edge %s", name)
}

// StepCitationMutation represents an operation that mutates the StepCitation nodes in the graph.
type StepCitationMutation struct {
	config
	op              Op
	typ             string
	id              *int
	source          *string
	snippet_hash    *string
	excerpt         *string
	start_offset    *int
	addstart_offset *int
	end_offset      *int
	addend_offset   *int
	clearedFields   map[string]struct{}
	step            *int
	clearedstep     bool
	done            bool
	oldValue        func(context.Context) (*StepCitation, error)
	predicates      []predicate.StepCitation
}

var _ ent.Mutation = (*StepCitationMutation)(nil)

// stepcitationOption allows management of the mutation configuration using functional options.
type stepcitationOption func(*StepCitationMutation)

// newStepCitationMutation creates new mutation for the StepCitation entity.
func newStepCitationMutation(c config, op Op, opts ...stepcitationOption) *StepCitationMutation {
	m := &StepCitationMutation{
		config:        c,
		op:            op,
		typ:           TypeStepCitation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepCitationID sets the ID field of the mutation.
func withStepCitationID(id int) stepcitationOption {
	return func(m *StepCitationMutation) {
		var (
			err   error
			once  sync.Once
			value *StepCitation
		)
		m.oldValue = func(ctx context.Context) (*StepCitation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StepCitation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStepCitation sets the old StepCitation of the mutation.
func withStepCitation(node *StepCitation) stepcitationOption {
	return func(m *StepCitationMutation) {
		m.oldValue = func(context.Context) (*StepCitation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepCitationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepCitationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepCitationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepCitationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StepCitation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStepID sets the "step_id" field.
func (m *StepCitationMutation) SetStepID(i int) {
	m.step = &i
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *StepCitationMutation) StepID() (r int, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the StepCitation entity.
// If the StepCitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepCitationMutation) OldStepID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *StepCitationMutation) ResetStepID() {
	m.step = nil
}

// SetSource sets the "source" field.
func (m *StepCitationMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *StepCitationMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the StepCitation entity.
// If the StepCitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepCitationMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *StepCitationMutation) ResetSource() {
	m.source = nil
}

// SetSnippetHash sets the "snippet_hash" field.
func (m *StepCitationMutation) SetSnippetHash(s string) {
	m.snippet_hash = &s
}

// SnippetHash returns the value of the "snippet_hash" field in the mutation.
func (m *StepCitationMutation) SnippetHash() (r string, exists bool) {
	v := m.snippet_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldSnippetHash returns the old "snippet_hash" field's value of the StepCitation entity.
// If the StepCitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepCitationMutation) OldSnippetHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnippetHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnippetHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnippetHash: %w", err)
	}
	return oldValue.SnippetHash, nil
}

// ClearSnippetHash clears the value of the "snippet_hash" field.
func (m *StepCitationMutation) ClearSnippetHash() {
	m.snippet_hash = nil
	m.clearedFields[stepcitation.FieldSnippetHash] = struct{}{}
}

// SnippetHashCleared returns if the "snippet_hash" field was cleared in this mutation.
func (m *StepCitationMutation) SnippetHashCleared() bool {
	_, ok := m.clearedFields[stepcitation.FieldSnippetHash]
	return ok
}

// ResetSnippetHash resets all changes to the "snippet_hash" field.
func (m *StepCitationMutation) ResetSnippetHash() {
	m.snippet_hash = nil
	delete(m.clearedFields, stepcitation.FieldSnippetHash)
}

// SetExcerpt sets the "excerpt" field.
func (m *StepCitationMutation) SetExcerpt(s string) {
	m.excerpt = &s
}

// Excerpt returns the value of the "excerpt" field in the mutation.
func (m *StepCitationMutation) Excerpt() (r string, exists bool) {
	v := m.excerpt
	if v == nil {
		return
	}
	return *v, true
}

// OldExcerpt returns the old "excerpt" field's value of the StepCitation entity.
// If the StepCitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepCitationMutation) OldExcerpt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExcerpt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExcerpt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExcerpt: %w", err)
	}
	return oldValue.Excerpt, nil
}

// ResetExcerpt resets all changes to the "excerpt" field.
func (m *StepCitationMutation) ResetExcerpt() {
	m.excerpt = nil
}

// SetStartOffset sets the "start_offset" field.
func (m *StepCitationMutation) SetStartOffset(i int) {
	m.start_offset = &i
	m.addstart_offset = nil
}

// StartOffset returns the value of the "start_offset" field in the mutation.
func (m *StepCitationMutation) StartOffset() (r int, exists bool) {
	v := m.start_offset
	if v == nil {
		return
	}
	return *v, true
}

// OldStartOffset returns the old "start_offset" field's value of the StepCitation entity.
// If the StepCitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepCitationMutation) OldStartOffset(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartOffset is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartOffset requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartOffset: %w", err)
	}
	return oldValue.StartOffset, nil
}

// AddStartOffset adds i to the "start_offset" field.
func (m *StepCitationMutation) AddStartOffset(i int) {
	if m.addstart_offset != nil {
		*m.addstart_offset += i
	} else {
		m.addstart_offset = &i
	}
}

// AddedStartOffset returns the value that was added to the "start_offset" field in this mutation.
func (m *StepCitationMutation) AddedStartOffset() (r int, exists bool) {
	v := m.addstart_offset
	if v == nil {
		return
	}
	return *v, true
}

// ClearStartOffset clears the value of the "start_offset" field.
func (m *StepCitationMutation) ClearStartOffset() {
	m.start_offset = nil
	m.addstart_offset = nil
	m.clearedFields[stepcitation.FieldStartOffset] = struct{}{}
}

// StartOffsetCleared returns if the "start_offset" field was cleared in this mutation.
func (m *StepCitationMutation) StartOffsetCleared() bool {
	_, ok := m.clearedFields[stepcitation.FieldStartOffset]
	return ok
}

// ResetStartOffset resets all changes to the "start_offset" field.
func (m *StepCitationMutation) ResetStartOffset() {
	m.start_offset = nil
	m.addstart_offset = nil
	delete(m.clearedFields, stepcitation.FieldStartOffset)
}

// SetEndOffset sets the "end_offset" field.
func (m *StepCitationMutation) SetEndOffset(i int) {
	m.end_offset = &i
	m.addend_offset = nil
}

// EndOffset returns the value of the "end_offset" field in the mutation.
func (m *StepCitationMutation) EndOffset() (r int, exists bool) {
	v := m.end_offset
	if v == nil {
		return
	}
	return *v, true
}

// OldEndOffset returns the old "end_offset" field's value of the StepCitation entity.
// If the StepCitation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepCitationMutation) OldEndOffset(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndOffset is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndOffset requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndOffset: %w", err)
	}
	return oldValue.EndOffset, nil
}

// AddEndOffset adds i to the "end_offset" field.
func (m *StepCitationMutation) AddEndOffset(i int) {
	if m.addend_offset != nil {
		*m.addend_offset += i
	} else {
		m.addend_offset = &i
	}
}

// AddedEndOffset returns the value that was added to the "end_offset" field in this mutation.
func (m *StepCitationMutation) AddedEndOffset() (r int, exists bool) {
	v := m.addend_offset
	if v == nil {
		return
	}
	return *v, true
}

// ClearEndOffset clears the value of the "end_offset" field.
func (m *StepCitationMutation) ClearEndOffset() {
	m.end_offset = nil
	m.addend_offset = nil
	m.clearedFields[stepcitation.FieldEndOffset] = struct{}{}
}

// EndOffsetCleared returns if the "end_offset" field was cleared in this mutation.
func (m *StepCitationMutation) EndOffsetCleared() bool {
	_, ok := m.clearedFields[stepcitation.FieldEndOffset]
	return ok
}

// ResetEndOffset resets all changes to the "end_offset" field.
func (m *StepCitationMutation) ResetEndOffset() {
	m.end_offset = nil
	m.addend_offset = nil
	delete(m.clearedFields, stepcitation.FieldEndOffset)
}

// ClearStep clears the "step" edge to the TaskStep entity.
func (m *StepCitationMutation) ClearStep() {
	m.clearedstep = true
	m.clearedFields[stepcitation.FieldStepID] = struct{}{}
}

// StepCleared reports if the "step" edge to the TaskStep entity was cleared.
func (m *StepCitationMutation) StepCleared() bool {
	return m.clearedstep
}

// StepIDs returns the "step" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StepID instead. It exists only for internal usage by the builders.
func (m *StepCitationMutation) StepIDs() (ids []int) {
	if id := m.step; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStep resets all changes to the "step" edge.
func (m *StepCitationMutation) ResetStep() {
	m.step = nil
	m.clearedstep = false
}

// Where appends a list predicates to the StepCitationMutation builder.
func (m *StepCitationMutation) Where(ps ...predicate.StepCitation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepCitationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepCitationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StepCitation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepCitationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepCitationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StepCitation).
func (m *StepCitationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepCitationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.step != nil {
		fields = append(fields, stepcitation.FieldStepID)
	}
	if m.source != nil {
		fields = append(fields, stepcitation.FieldSource)
	}
	if m.snippet_hash != nil {
		fields = append(fields, stepcitation.FieldSnippetHash)
	}
	if m.excerpt != nil {
		fields = append(fields, stepcitation.FieldExcerpt)
	}
	if m.start_offset != nil {
		fields = append(fields, stepcitation.FieldStartOffset)
	}
	if m.end_offset != nil {
		fields = append(fields, stepcitation.FieldEndOffset)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepCitationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stepcitation.FieldStepID:
		return m.StepID()
	case stepcitation.FieldSource:
		return m.Source()
	case stepcitation.FieldSnippetHash:
		return m.SnippetHash()
	case stepcitation.FieldExcerpt:
		return m.Excerpt()
	case stepcitation.FieldStartOffset:
		return m.StartOffset()
	case stepcitation.FieldEndOffset:
		return m.EndOffset()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepCitationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stepcitation.FieldStepID:
		return m.OldStepID(ctx)
	case stepcitation.FieldSource:
		return m.OldSource(ctx)
	case stepcitation.FieldSnippetHash:
		return m.OldSnippetHash(ctx)
	case stepcitation.FieldExcerpt:
		return m.OldExcerpt(ctx)
	case stepcitation.FieldStartOffset:
		return m.OldStartOffset(ctx)
	case stepcitation.FieldEndOffset:
		return m.OldEndOffset(ctx)
	}
	return nil, fmt.Errorf("unknown StepCitation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepCitationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stepcitation.FieldStepID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case stepcitation.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case stepcitation.FieldSnippetHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnippetHash(v)
		return nil
	case stepcitation.FieldExcerpt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExcerpt(v)
		return nil
	case stepcitation.FieldStartOffset:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartOffset(v)
		return nil
	case stepcitation.FieldEndOffset:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndOffset(v)
		return nil
	}
	return fmt.Errorf("unknown StepCitation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepCitationMutation) AddedFields() []string {
	var fields []string
	if m.addstart_offset != nil {
		fields = append(fields, stepcitation.FieldStartOffset)
	}
	if m.addend_offset != nil {
		fields = append(fields, stepcitation.FieldEndOffset)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepCitationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stepcitation.FieldStartOffset:
		return m.AddedStartOffset()
	case stepcitation.FieldEndOffset:
		return m.AddedEndOffset()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepCitationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stepcitation.FieldStartOffset:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartOffset(v)
		return nil
	case stepcitation.FieldEndOffset:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndOffset(v)
		return nil
	}
	return fmt.Errorf("unknown StepCitation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepCitationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stepcitation.FieldSnippetHash) {
		fields = append(fields, stepcitation.FieldSnippetHash)
	}
	if m.FieldCleared(stepcitation.FieldStartOffset) {
		fields = append(fields, stepcitation.FieldStartOffset)
	}
	if m.FieldCleared(stepcitation.FieldEndOffset) {
		fields = append(fields, stepcitation.FieldEndOffset)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepCitationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepCitationMutation) ClearField(name string) error {
	switch name {
	case stepcitation.FieldSnippetHash:
		m.ClearSnippetHash()
		return nil
	case stepcitation.FieldStartOffset:
		m.ClearStartOffset()
		return nil
	case stepcitation.FieldEndOffset:
		m.ClearEndOffset()
		return nil
	}
	return fmt.Errorf("unknown StepCitation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepCitationMutation) ResetField(name string) error {
	switch name {
	case stepcitation.FieldStepID:
		m.ResetStepID()
		return nil
	case stepcitation.FieldSource:
		m.ResetSource()
		return nil
	case stepcitation.FieldSnippetHash:
		m.ResetSnippetHash()
		return nil
	case stepcitation.FieldExcerpt:
		m.ResetExcerpt()
		return nil
	case stepcitation.FieldStartOffset:
		m.ResetStartOffset()
		return nil
	case stepcitation.FieldEndOffset:
		m.ResetEndOffset()
		return nil
	}
	return fmt.Errorf("unknown StepCitation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepCitationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.step != nil {
		edges = append(edges, stepcitation.EdgeStep)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepCitationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stepcitation.EdgeStep:
		if id := m.step; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepCitationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepCitationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepCitationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstep {
		edges = append(edges, stepcitation.EdgeStep)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepCitationMutation) EdgeCleared(name string) bool {
	switch name {
	case stepcitation.EdgeStep:
		return m.clearedstep
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepCitationMutation) ClearEdge(name string) error {
	switch name {
	case stepcitation.EdgeStep:
		m.ClearStep()
		return nil
	}
	return fmt.Errorf("unknown StepCitation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepCitationMutation) ResetEdge(name string) error {
	switch name {
	case stepcitation.EdgeStep:
		m.ResetStep()
		return nil
	}
	return fmt.Errorf("unknown StepCitation edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	name                   *string
	description            *string
	category               *string
	difficulty             *string
	expected_signals       *[]string
	appendexpected_signals []string
	status                 *task.Status
	clearedFields          map[string]struct{}
	run                    *string
	clearedrun             bool
	done                   bool
	oldValue               func(context.Context) (*Task, error)
	predicates             []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *TaskMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *TaskMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *TaskMutation) ResetRunID() {
	m.run = nil
}

// SetName sets the "name" field.
func (m *TaskMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TaskMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TaskMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
}

// SetCategory sets the "category" field.
func (m *TaskMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *TaskMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *TaskMutation) ResetCategory() {
	m.category = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *TaskMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *TaskMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *TaskMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetExpectedSignals sets the "expected_signals" field.
func (m *TaskMutation) SetExpectedSignals(s []string) {
	m.expected_signals = &s
	m.appendexpected_signals = nil
}

// ExpectedSignals returns the value of the "expected_signals" field in the mutation.
func (m *TaskMutation) ExpectedSignals() (r []string, exists bool) {
	v := m.expected_signals
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedSignals returns the old "expected_signals" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldExpectedSignals(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedSignals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedSignals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedSignals: %w", err)
	}
	return oldValue.ExpectedSignals, nil
}

// AppendExpectedSignals adds s to the "expected_signals" field.
func (m *TaskMutation) AppendExpectedSignals(s []string) {
	m.appendexpected_signals = append(m.appendexpected_signals, s...)
}

// AppendedExpectedSignals returns the list of values that were appended to the "expected_signals" field in this mutation.
func (m *TaskMutation) AppendedExpectedSignals() ([]string, bool) {
	if len(m.appendexpected_signals) == 0 {
		return nil, false
	}
	return m.appendexpected_signals, true
}

// ClearExpectedSignals clears the value of the "expected_signals" field.
func (m *TaskMutation) ClearExpectedSignals() {
	m.expected_signals = nil
	m.appendexpected_signals = nil
	m.clearedFields[task.FieldExpectedSignals] = struct{}{}
}

// ExpectedSignalsCleared returns if the "expected_signals" field was cleared in this mutation.
func (m *TaskMutation) ExpectedSignalsCleared() bool {
	_, ok := m.clearedFields[task.FieldExpectedSignals]
	return ok
}

// ResetExpectedSignals resets all changes to the "expected_signals" field.
func (m *TaskMutation) ResetExpectedSignals() {
	m.expected_signals = nil
	m.appendexpected_signals = nil
	delete(m.clearedFields, task.FieldExpectedSignals)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *TaskMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[task.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *TaskMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *TaskMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run != nil {
		fields = append(fields, task.FieldRunID)
	}
	if m.name != nil {
		fields = append(fields, task.FieldName)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.category != nil {
		fields = append(fields, task.FieldCategory)
	}
	if m.difficulty != nil {
		fields = append(fields, task.FieldDifficulty)
	}
	if m.expected_signals != nil {
		fields = append(fields, task.FieldExpectedSignals)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldRunID:
		return m.RunID()
	case task.FieldName:
		return m.Name()
	case task.FieldDescription:
		return m.Description()
	case task.FieldCategory:
		return m.Category()
	case task.FieldDifficulty:
		return m.Difficulty()
	case task.FieldExpectedSignals:
		return m.ExpectedSignals()
	case task.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldRunID:
		return m.OldRunID(ctx)
	case task.FieldName:
		return m.OldName(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldCategory:
		return m.OldCategory(ctx)
	case task.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case task.FieldExpectedSignals:
		return m.OldExpectedSignals(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case task.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case task.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case task.FieldExpectedSignals:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedSignals(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldExpectedSignals) {
		fields = append(fields, task.FieldExpectedSignals)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldExpectedSignals:
		m.ClearExpectedSignals()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldRunID:
		m.ResetRunID()
		return nil
	case task.FieldName:
		m.ResetName()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldCategory:
		m.ResetCategory()
		return nil
	case task.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case task.FieldExpectedSignals:
		m.ResetExpectedSignals()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, task.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, task.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskEvaluationMutation represents an operation that mutates the TaskEvaluation nodes in the graph.
type TaskEvaluationMutation struct {
	config
	op                             Op
	typ                            string
	id                             *int
	task_id                        *string
	phase                          *taskevaluation.Phase
	criterion_scores               *models.CriterionScores
	pass                           *bool
	quality_pass                   *bool
	validity_pass                  *bool
	validity_blocked_reasons       *[]models.ValidityBlockReason
	appendvalidity_blocked_reasons []models.ValidityBlockReason
	failure_class                  *string
	rationale                      *string
	judge_model                    *string
	confidence                     *float64
	addconfidence                  *float64
	clearedFields                  map[string]struct{}
	run                            *string
	clearedrun                     bool
	done                           bool
	oldValue                       func(context.Context) (*TaskEvaluation, error)
	predicates                     []predicate.TaskEvaluation
}

var _ ent.Mutation = (*TaskEvaluationMutation)(nil)

// taskevaluationOption allows management of the mutation configuration using functional options.
type taskevaluationOption func(*TaskEvaluationMutation)

// newTaskEvaluationMutation creates new mutation for the TaskEvaluation entity.
func newTaskEvaluationMutation(c config, op Op, opts ...taskevaluationOption) *TaskEvaluationMutation {
	m := &TaskEvaluationMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskEvaluation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskEvaluationID sets the ID field of the mutation.
func withTaskEvaluationID(id int) taskevaluationOption {
	return func(m *TaskEvaluationMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskEvaluation
		)
		m.oldValue = func(ctx context.Context) (*TaskEvaluation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskEvaluation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskEvaluation sets the old TaskEvaluation of the mutation.
func withTaskEvaluation(node *TaskEvaluation) taskevaluationOption {
	return func(m *TaskEvaluationMutation) {
		m.oldValue = func(context.Context) (*TaskEvaluation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskEvaluationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskEvaluationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskEvaluationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskEvaluationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskEvaluation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *TaskEvaluationMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *TaskEvaluationMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the TaskEvaluation entity.
// If the TaskEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEvaluationMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *TaskEvaluationMutation) ResetRunID() {
	m.run = nil
}

// SetTaskID sets the "task_id" field.
func (m *TaskEvaluationMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskEvaluationMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskEvaluation entity.
// If the TaskEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEvaluationMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskEvaluationMutation) ResetTaskID() {
	m.task_id = nil
}

// SetPhase sets the "phase" field.
func (m *TaskEvaluationMutation) SetPhase(t taskevaluation.Phase) {
	m.phase = &t
}

// Phase returns the value of the "phase" field in the mutation.
func (m *TaskEvaluationMutation) Phase() (r taskevaluation.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the TaskEvaluation entity.
// If the TaskEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEvaluationMutation) OldPhase(ctx context.Context) (v taskevaluation.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *TaskEvaluationMutation) ResetPhase() {
	m.phase = nil
}

// SetCriterionScores sets the "criterion_scores" field.
func (m *TaskEvaluationMutation) SetCriterionScores(ms models.CriterionScores) {
	m.criterion_scores = &ms
}

// CriterionScores returns the value of the "criterion_scores" field in the mutation.
func (m *TaskEvaluationMutation) CriterionScores() (r models.CriterionScores, exists bool) {
	v := m.criterion_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldCriterionScores returns the old "criterion_scores" field's value of the TaskEvaluation entity.
// If the TaskEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEvaluationMutation) OldCriterionScores(ctx context.Context) (v models.CriterionScores, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriterionScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriterionScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriterionScores: %w", err)
	}
	return oldValue.CriterionScores, nil
}

// ResetCriterionScores resets all changes to the "criterion_scores" field.
func (m *TaskEvaluationMutation) ResetCriterionScores() {
	m.criterion_scores = nil
}

// SetPass sets the "pass" field.
func (m *TaskEvaluationMutation) SetPass(b bool) {
	m.pass = &b
}

// Pass returns the value of the "pass" field in the mutation.
func (m *TaskEvaluationMutation) Pass() (r bool, exists bool) {
	v := m.pass
	if v == nil {
		return
	}
	return *v, true
}

// OldPass returns the old "pass" field's value of the TaskEvaluation entity.
// If the TaskEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEvaluationMutation) OldPass(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPass: %w", err)
	}
	return oldValue.Pass, nil
}

// ResetPass resets all changes to the "pass" field.
func (m *TaskEvaluationMutation) ResetPass() {
	m.pass = nil
}

// SetQualityPass sets the "quality_pass" field.
func (m *TaskEvaluationMutation) SetQualityPass(b bool) {
	m.quality_pass = &b
}

// QualityPass returns the value of the "quality_pass" field in the mutation.
func (m *TaskEvaluationMutation) QualityPass() (r bool, exists bool) {
	v := m.quality_pass
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityPass returns the old "quality_pass" field's value of the TaskEvaluation entity.
// If the TaskEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEvaluationMutation) OldQualityPass(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityPass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityPass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityPass: %w", err)
	}
	return oldValue.QualityPass, nil
}

// ResetQualityPass resets all changes to the "quality_pass" field.
func (m *TaskEvaluationMutation) ResetQualityPass() {
	m.quality_pass = nil
}

// SetValidityPass sets the "validity_pass" field.
func (m *TaskEvaluationMutation) SetValidityPass(b bool) {
	m.validity_pass = &b
}

// ValidityPass returns the value of the "validity_pass" field in the mutation.
func (m *TaskEvaluationMutation) ValidityPass() (r bool, exists bool) {
	v := m.validity_pass
	if v == nil {
		return
	}
	return *v, true
}

// OldValidityPass returns the old "validity_pass" field's value of the TaskEvaluation entity.
// If the TaskEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEvaluationMutation) OldValidityPass(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidityPass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidityPass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidityPass: %w", err)
	}
	return oldValue.ValidityPass, nil
}

// ResetValidityPass resets all changes to the "validity_pass" field.
func (m *TaskEvaluationMutation) ResetValidityPass() {
	m.validity_pass = nil
}

// SetValidityBlockedReasons sets the "validity_blocked_reasons" field.
func (m *TaskEvaluationMutation) SetValidityBlockedReasons(mbr []models.ValidityBlockReason) {
	m.validity_blocked_reasons = &mbr
	m.appendvalidity_blocked_reasons = nil
}

// ValidityBlockedReasons returns the value of the "validity_blocked_reasons" field in the mutation.
func (m *TaskEvaluationMutation) ValidityBlockedReasons() (r []models.ValidityBlockReason, exists bool) {
	v := m.validity_blocked_reasons
	if v == nil {
		return
	}
	return *v, true
}

// OldValidityBlockedReasons returns the old "validity_blocked_reasons" field's value of the TaskEvaluation entity.
// If the TaskEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEvaluationMutation) OldValidityBlockedReasons(ctx context.Context) (v []models.ValidityBlockReason, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidityBlockedReasons is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidityBlockedReasons requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidityBlockedReasons: %w", err)
	}
	return oldValue.ValidityBlockedReasons, nil
}

// AppendValidityBlockedReasons adds mbr to the "validity_blocked_reasons" field.
func (m *TaskEvaluationMutation) AppendValidityBlockedReasons(mbr []models.ValidityBlockReason) {
	m.appendvalidity_blocked_reasons = append(m.appendvalidity_blocked_reasons, mbr...)
}

// AppendedValidityBlockedReasons returns the list of values that were appended to the "validity_blocked_reasons" field in this mutation.
func (m *TaskEvaluationMutation) AppendedValidityBlockedReasons() ([]models.ValidityBlockReason, bool) {
	if len(m.appendvalidity_blocked_reasons) == 0 {
		return nil, false
	}
	return m.appendvalidity_blocked_reasons, true
}

// ClearValidityBlockedReasons clears the value of the "validity_blocked_reasons" field.
func (m *TaskEvaluationMutation) ClearValidityBlockedReasons() {
	m.validity_blocked_reasons = nil
	m.appendvalidity_blocked_reasons = nil
	m.clearedFields[taskevaluation.FieldValidityBlockedReasons] = struct{}{}
}

// ValidityBlockedReasonsCleared returns if the "validity_blocked_reasons" field was cleared in this mutation.
func (m *TaskEvaluationMutation) ValidityBlockedReasonsCleared() bool {
	_, ok := m.clearedFields[taskevaluation.FieldValidityBlockedReasons]
	return ok
}

// ResetValidityBlockedReasons resets all changes to the "validity_blocked_reasons" field.
func (m *TaskEvaluationMutation) ResetValidityBlockedReasons() {
	m.validity_blocked_reasons = nil
	m.appendvalidity_blocked_reasons = nil
	delete(m.clearedFields, taskevaluation.FieldValidityBlockedReasons)
}

// SetFailureClass sets the "failure_class" field.
func (m *TaskEvaluationMutation) SetFailureClass(s string) {
	m.failure_class = &s
}

// FailureClass returns the value of the "failure_class" field in the mutation.
func (m *TaskEvaluationMutation) FailureClass() (r string, exists bool) {
	v := m.failure_class
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureClass returns the old "failure_class" field's value of the TaskEvaluation entity.
// If the TaskEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEvaluationMutation) OldFailureClass(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureClass: %w", err)
	}
	return oldValue.FailureClass, nil
}

// ClearFailureClass clears the value of the "failure_class" field.
func (m *TaskEvaluationMutation) ClearFailureClass() {
	m.failure_class = nil
	m.clearedFields[taskevaluation.FieldFailureClass] = struct{}{}
}

// FailureClassCleared returns if the "failure_class" field was cleared in this mutation.
func (m *TaskEvaluationMutation) FailureClassCleared() bool {
	_, ok := m.clearedFields[taskevaluation.FieldFailureClass]
	return ok
}

// ResetFailureClass resets all changes to the "failure_class" field.
func (m *TaskEvaluationMutation) ResetFailureClass() {
	m.failure_class = nil
	delete(m.clearedFields, taskevaluation.FieldFailureClass)
}

// SetRationale sets the "rationale" field.
func (m *TaskEvaluationMutation) SetRationale(s string) {
	m.rationale = &s
}

// Rationale returns the value of the "rationale" field in the mutation.
func (m *TaskEvaluationMutation) Rationale() (r string, exists bool) {
	v := m.rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldRationale returns the old "rationale" field's value of the TaskEvaluation entity.
// If the TaskEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEvaluationMutation) OldRationale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRationale: %w", err)
	}
	return oldValue.Rationale, nil
}

// ResetRationale resets all changes to the "rationale" field.
func (m *TaskEvaluationMutation) ResetRationale() {
	m.rationale = nil
}

// SetJudgeModel sets the "judge_model" field.
func (m *TaskEvaluationMutation) SetJudgeModel(s string) {
	m.judge_model = &s
}

// JudgeModel returns the value of the "judge_model" field in the mutation.
func (m *TaskEvaluationMutation) JudgeModel() (r string, exists bool) {
	v := m.judge_model
	if v == nil {
		return
	}
	return *v, true
}

// OldJudgeModel returns the old "judge_model" field's value of the TaskEvaluation entity.
// If the TaskEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEvaluationMutation) OldJudgeModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJudgeModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJudgeModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJudgeModel: %w", err)
	}
	return oldValue.JudgeModel, nil
}

// ResetJudgeModel resets all changes to the "judge_model" field.
func (m *TaskEvaluationMutation) ResetJudgeModel() {
	m.judge_model = nil
}

// SetConfidence sets the "confidence" field.
func (m *TaskEvaluationMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *TaskEvaluationMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the TaskEvaluation entity.
// If the TaskEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEvaluationMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *TaskEvaluationMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *TaskEvaluationMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *TaskEvaluationMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *TaskEvaluationMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[taskevaluation.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *TaskEvaluationMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *TaskEvaluationMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *TaskEvaluationMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the TaskEvaluationMutation builder.
func (m *TaskEvaluationMutation) Where(ps ...predicate.TaskEvaluation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskEvaluationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskEvaluationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskEvaluation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskEvaluationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskEvaluationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskEvaluation).
func (m *TaskEvaluationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskEvaluationMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.run != nil {
		fields = append(fields, taskevaluation.FieldRunID)
	}
	if m.task_id != nil {
		fields = append(fields, taskevaluation.FieldTaskID)
	}
	if m.phase != nil {
		fields = append(fields, taskevaluation.FieldPhase)
	}
	if m.criterion_scores != nil {
		fields = append(fields, taskevaluation.FieldCriterionScores)
	}
	if m.pass != nil {
		fields = append(fields, taskevaluation.FieldPass)
	}
	if m.quality_pass != nil {
		fields = append(fields, taskevaluation.FieldQualityPass)
	}
	if m.validity_pass != nil {
		fields = append(fields, taskevaluation.FieldValidityPass)
	}
	if m.validity_blocked_reasons != nil {
		fields = append(fields, taskevaluation.FieldValidityBlockedReasons)
	}
	if m.failure_class != nil {
		fields = append(fields, taskevaluation.FieldFailureClass)
	}
	if m.rationale != nil {
		fields = append(fields, taskevaluation.FieldRationale)
	}
	if m.judge_model != nil {
		fields = append(fields, taskevaluation.FieldJudgeModel)
	}
	if m.confidence != nil {
		fields = append(fields, taskevaluation.FieldConfidence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskEvaluationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskevaluation.FieldRunID:
		return m.RunID()
	case taskevaluation.FieldTaskID:
		return m.TaskID()
	case taskevaluation.FieldPhase:
		return m.Phase()
	case taskevaluation.FieldCriterionScores:
		return m.CriterionScores()
	case taskevaluation.FieldPass:
		return m.Pass()
	case taskevaluation.FieldQualityPass:
		return m.QualityPass()
	case taskevaluation.FieldValidityPass:
		return m.ValidityPass()
	case taskevaluation.FieldValidityBlockedReasons:
		return m.ValidityBlockedReasons()
	case taskevaluation.FieldFailureClass:
		return m.FailureClass()
	case taskevaluation.FieldRationale:
		return m.Rationale()
	case taskevaluation.FieldJudgeModel:
		return m.JudgeModel()
	case taskevaluation.FieldConfidence:
		return m.Confidence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskEvaluationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskevaluation.FieldRunID:
		return m.OldRunID(ctx)
	case taskevaluation.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskevaluation.FieldPhase:
		return m.OldPhase(ctx)
	case taskevaluation.FieldCriterionScores:
		return m.OldCriterionScores(ctx)
	case taskevaluation.FieldPass:
		return m.OldPass(ctx)
	case taskevaluation.FieldQualityPass:
		return m.OldQualityPass(ctx)
	case taskevaluation.FieldValidityPass:
		return m.OldValidityPass(ctx)
	case taskevaluation.FieldValidityBlockedReasons:
		return m.OldValidityBlockedReasons(ctx)
	case taskevaluation.FieldFailureClass:
		return m.OldFailureClass(ctx)
	case taskevaluation.FieldRationale:
		return m.OldRationale(ctx)
	case taskevaluation.FieldJudgeModel:
		return m.OldJudgeModel(ctx)
	case taskevaluation.FieldConfidence:
		return m.OldConfidence(ctx)
	}
	return nil, fmt.Errorf("unknown TaskEvaluation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEvaluationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskevaluation.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case taskevaluation.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskevaluation.FieldPhase:
		v, ok := value.(taskevaluation.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case taskevaluation.FieldCriterionScores:
		v, ok := value.(models.CriterionScores)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriterionScores(v)
		return nil
	case taskevaluation.FieldPass:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPass(v)
		return nil
	case taskevaluation.FieldQualityPass:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityPass(v)
		return nil
	case taskevaluation.FieldValidityPass:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidityPass(v)
		return nil
	case taskevaluation.FieldValidityBlockedReasons:
		v, ok := value.([]models.ValidityBlockReason)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidityBlockedReasons(v)
		return nil
	case taskevaluation.FieldFailureClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureClass(v)
		return nil
	case taskevaluation.FieldRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRationale(v)
		return nil
	case taskevaluation.FieldJudgeModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJudgeModel(v)
		return nil
	case taskevaluation.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown TaskEvaluation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskEvaluationMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, taskevaluation.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskEvaluationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskevaluation.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEvaluationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskevaluation.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown TaskEvaluation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskEvaluationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskevaluation.FieldValidityBlockedReasons) {
		fields = append(fields, taskevaluation.FieldValidityBlockedReasons)
	}
	if m.FieldCleared(taskevaluation.FieldFailureClass) {
		fields = append(fields, taskevaluation.FieldFailureClass)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskEvaluationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskEvaluationMutation) ClearField(name string) error {
	switch name {
	case taskevaluation.FieldValidityBlockedReasons:
		m.ClearValidityBlockedReasons()
		return nil
	case taskevaluation.FieldFailureClass:
		m.ClearFailureClass()
		return nil
	}
	return fmt.Errorf("unknown TaskEvaluation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskEvaluationMutation) ResetField(name string) error {
	switch name {
	case taskevaluation.FieldRunID:
		m.ResetRunID()
		return nil
	case taskevaluation.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskevaluation.FieldPhase:
		m.ResetPhase()
		return nil
	case taskevaluation.FieldCriterionScores:
		m.ResetCriterionScores()
		return nil
	case taskevaluation.FieldPass:
		m.ResetPass()
		return nil
	case taskevaluation.FieldQualityPass:
		m.ResetQualityPass()
		return nil
	case taskevaluation.FieldValidityPass:
		m.ResetValidityPass()
		return nil
	case taskevaluation.FieldValidityBlockedReasons:
		m.ResetValidityBlockedReasons()
		return nil
	case taskevaluation.FieldFailureClass:
		m.ResetFailureClass()
		return nil
	case taskevaluation.FieldRationale:
		m.ResetRationale()
		return nil
	case taskevaluation.FieldJudgeModel:
		m.ResetJudgeModel()
		return nil
	case taskevaluation.FieldConfidence:
		m.ResetConfidence()
		return nil
	}
	return fmt.Errorf("unknown TaskEvaluation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskEvaluationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, taskevaluation.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskEvaluationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskevaluation.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskEvaluationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskEvaluationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskEvaluationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, taskevaluation.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskEvaluationMutation) EdgeCleared(name string) bool {
	switch name {
	case taskevaluation.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskEvaluationMutation) ClearEdge(name string) error {
	switch name {
	case taskevaluation.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown TaskEvaluation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskEvaluationMutation) ResetEdge(name string) error {
	switch name {
	case taskevaluation.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown TaskEvaluation edge %s", name)
}

// TaskExecutionMutation represents an operation that mutates the TaskExecution nodes in the graph.
type TaskExecutionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	task_id          *string
	worker_id        *string
	phase            *taskexecution.Phase
	status           *taskexecution.Status
	step_count       *int
	addstep_count    *int
	tokens_in        *int
	addtokens_in     *int
	tokens_out       *int
	addtokens_out    *int
	cost_estimate    *float64
	addcost_estimate *float64
	stop_reason      *string
	attempt          **models.Attempt
	agent_state      **models.AgentMemory
	started_at       *time.Time
	completed_at     *time.Time
	clearedFields    map[string]struct{}
	run              *string
	clearedrun       bool
	steps            map[int]struct{}
	removedsteps     map[int]struct{}
	clearedsteps     bool
	checks           map[int]struct{}
	removedchecks    map[int]struct{}
	clearedchecks    bool
	done             bool
	oldValue         func(context.Context) (*TaskExecution, error)
	predicates       []predicate.TaskExecution
}

var _ ent.Mutation = (*TaskExecutionMutation)(nil)

// taskexecutionOption allows management of the mutation configuration using functional options.
type taskexecutionOption func(*TaskExecutionMutation)

// newTaskExecutionMutation creates new mutation for the TaskExecution entity.
func newTaskExecutionMutation(c config, op Op, opts ...taskexecutionOption) *TaskExecutionMutation {
	m := &TaskExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskExecutionID sets the ID field of the mutation.
func withTaskExecutionID(id string) taskexecutionOption {
	return func(m *TaskExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskExecution
		)
		m.oldValue = func(ctx context.Context) (*TaskExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskExecution sets the old TaskExecution of the mutation.
func withTaskExecution(node *TaskExecution) taskexecutionOption {
	return func(m *TaskExecutionMutation) {
		m.oldValue = func(context.Context) (*TaskExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskExecution entities.
func (m *TaskExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *TaskExecutionMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *TaskExecutionMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *TaskExecutionMutation) ResetRunID() {
	m.run = nil
}

// SetTaskID sets the "task_id" field.
func (m *TaskExecutionMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskExecutionMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskExecutionMutation) ResetTaskID() {
	m.task_id = nil
}

// SetWorkerID sets the "worker_id" field.
func (m *TaskExecutionMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *TaskExecutionMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldWorkerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *TaskExecutionMutation) ResetWorkerID() {
	m.worker_id = nil
}

// SetPhase sets the "phase" field.
func (m *TaskExecutionMutation) SetPhase(t taskexecution.Phase) {
	m.phase = &t
}

// Phase returns the value of the "phase" field in the mutation.
func (m *TaskExecutionMutation) Phase() (r taskexecution.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldPhase(ctx context.Context) (v taskexecution.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *TaskExecutionMutation) ResetPhase() {
	m.phase = nil
}

// SetStatus sets the "status" field.
func (m *TaskExecutionMutation) SetStatus(t taskexecution.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskExecutionMutation) Status() (r taskexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldStatus(ctx context.Context) (v taskexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetStepCount sets the "step_count" field.
func (m *TaskExecutionMutation) SetStepCount(i int) {
	m.step_count = &i
	m.addstep_count = nil
}

// StepCount returns the value of the "step_count" field in the mutation.
func (m *TaskExecutionMutation) StepCount() (r int, exists bool) {
	v := m.step_count
	if v == nil {
		return
	}
	return *v, true
}

// OldStepCount returns the old "step_count" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldStepCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepCount: %w", err)
	}
	return oldValue.StepCount, nil
}

// AddStepCount adds i to the "step_count" field.
func (m *TaskExecutionMutation) AddStepCount(i int) {
	if m.addstep_count != nil {
		*m.addstep_count += i
	} else {
		m.addstep_count = &i
	}
}

// AddedStepCount returns the value that was added to the "step_count" field in this mutation.
func (m *TaskExecutionMutation) AddedStepCount() (r int, exists bool) {
	v := m.addstep_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepCount resets all changes to the "step_count" field.
func (m *TaskExecutionMutation) ResetStepCount() {
	m.step_count = nil
	m.addstep_count = nil
}

// SetTokensIn sets the "tokens_in" field.
func (m *TaskExecutionMutation) SetTokensIn(i int) {
	m.tokens_in = &i
	m.addtokens_in = nil
}

// TokensIn returns the value of the "tokens_in" field in the mutation.
func (m *TaskExecutionMutation) TokensIn() (r int, exists bool) {
	v := m.tokens_in
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensIn returns the old "tokens_in" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldTokensIn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensIn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensIn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensIn: %w", err)
	}
	return oldValue.TokensIn, nil
}

// AddTokensIn adds i to the "tokens_in" field.
func (m *TaskExecutionMutation) AddTokensIn(i int) {
	if m.addtokens_in != nil {
		*m.addtokens_in += i
	} else {
		m.addtokens_in = &i
	}
}

// AddedTokensIn returns the value that was added to the "tokens_in" field in this mutation.
func (m *TaskExecutionMutation) AddedTokensIn() (r int, exists bool) {
	v := m.addtokens_in
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensIn resets all changes to the "tokens_in" field.
func (m *TaskExecutionMutation) ResetTokensIn() {
	m.tokens_in = nil
	m.addtokens_in = nil
}

// SetTokensOut sets the "tokens_out" field.
func (m *TaskExecutionMutation) SetTokensOut(i int) {
	m.tokens_out = &i
	m.addtokens_out = nil
}

// TokensOut returns the value of the "tokens_out" field in the mutation.
func (m *TaskExecutionMutation) TokensOut() (r int, exists bool) {
	v := m.tokens_out
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensOut returns the old "tokens_out" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldTokensOut(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensOut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensOut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensOut: %w", err)
	}
	return oldValue.TokensOut, nil
}

// AddTokensOut adds i to the "tokens_out" field.
func (m *TaskExecutionMutation) AddTokensOut(i int) {
	if m.addtokens_out != nil {
		*m.addtokens_out += i
	} else {
		m.addtokens_out = &i
	}
}

// AddedTokensOut returns the value that was added to the "tokens_out" field in this mutation.
func (m *TaskExecutionMutation) AddedTokensOut() (r int, exists bool) {
	v := m.addtokens_out
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensOut resets all changes to the "tokens_out" field.
func (m *TaskExecutionMutation) ResetTokensOut() {
	m.tokens_out = nil
	m.addtokens_out = nil
}

// SetCostEstimate sets the "cost_estimate" field.
func (m *TaskExecutionMutation) SetCostEstimate(f float64) {
	m.cost_estimate = &f
	m.addcost_estimate = nil
}

// CostEstimate returns the value of the "cost_estimate" field in the mutation.
func (m *TaskExecutionMutation) CostEstimate() (r float64, exists bool) {
	v := m.cost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldCostEstimate returns the old "cost_estimate" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldCostEstimate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostEstimate: %w", err)
	}
	return oldValue.CostEstimate, nil
}

// AddCostEstimate adds f to the "cost_estimate" field.
func (m *TaskExecutionMutation) AddCostEstimate(f float64) {
	if m.addcost_estimate != nil {
		*m.addcost_estimate += f
	} else {
		m.addcost_estimate = &f
	}
}

// AddedCostEstimate returns the value that was added to the "cost_estimate" field in this mutation.
func (m *TaskExecutionMutation) AddedCostEstimate() (r float64, exists bool) {
	v := m.addcost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostEstimate resets all changes to the "cost_estimate" field.
func (m *TaskExecutionMutation) ResetCostEstimate() {
	m.cost_estimate = nil
	m.addcost_estimate = nil
}

// SetStopReason sets the "stop_reason" field.
func (m *TaskExecutionMutation) SetStopReason(s string) {
	m.stop_reason = &s
}

// StopReason returns the value of the "stop_reason" field in the mutation.
func (m *TaskExecutionMutation) StopReason() (r string, exists bool) {
	v := m.stop_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldStopReason returns the old "stop_reason" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldStopReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStopReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStopReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStopReason: %w", err)
	}
	return oldValue.StopReason, nil
}

// ClearStopReason clears the value of the "stop_reason" field.
func (m *TaskExecutionMutation) ClearStopReason() {
	m.stop_reason = nil
	m.clearedFields[taskexecution.FieldStopReason] = struct{}{}
}

// StopReasonCleared returns if the "stop_reason" field was cleared in this mutation.
func (m *TaskExecutionMutation) StopReasonCleared() bool {
	_, ok := m.clearedFields[taskexecution.FieldStopReason]
	return ok
}

// ResetStopReason resets all changes to the "stop_reason" field.
func (m *TaskExecutionMutation) ResetStopReason() {
	m.stop_reason = nil
	delete(m.clearedFields, taskexecution.FieldStopReason)
}

// SetAttempt sets the "attempt" field.
func (m *TaskExecutionMutation) SetAttempt(value *models.Attempt) {
	m.attempt = &value
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *TaskExecutionMutation) Attempt() (r *models.Attempt, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldAttempt(ctx context.Context) (v *models.Attempt, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// ClearAttempt clears the value of the "attempt" field.
func (m *TaskExecutionMutation) ClearAttempt() {
	m.attempt = nil
	m.clearedFields[taskexecution.FieldAttempt] = struct{}{}
}

// AttemptCleared returns if the "attempt" field was cleared in this mutation.
func (m *TaskExecutionMutation) AttemptCleared() bool {
	_, ok := m.clearedFields[taskexecution.FieldAttempt]
	return ok
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *TaskExecutionMutation) ResetAttempt() {
	m.attempt = nil
	delete(m.clearedFields, taskexecution.FieldAttempt)
}

// SetAgentState sets the "agent_state" field.
func (m *TaskExecutionMutation) SetAgentState(mm *models.AgentMemory) {
	m.agent_state = &mm
}

// AgentState returns the value of the "agent_state" field in the mutation.
func (m *TaskExecutionMutation) AgentState() (r *models.AgentMemory, exists bool) {
	v := m.agent_state
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentState returns the old "agent_state" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldAgentState(ctx context.Context) (v *models.AgentMemory, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentState: %w", err)
	}
	return oldValue.AgentState, nil
}

// ClearAgentState clears the value of the "agent_state" field.
func (m *TaskExecutionMutation) ClearAgentState() {
	m.agent_state = nil
	m.clearedFields[taskexecution.FieldAgentState] = struct{}{}
}

// AgentStateCleared returns if the "agent_state" field was cleared in this mutation.
func (m *TaskExecutionMutation) AgentStateCleared() bool {
	_, ok := m.clearedFields[taskexecution.FieldAgentState]
	return ok
}

// ResetAgentState resets all changes to the "agent_state" field.
func (m *TaskExecutionMutation) ResetAgentState() {
	m.agent_state = nil
	delete(m.clearedFields, taskexecution.FieldAgentState)
}

// SetStartedAt sets the "started_at" field.
func (m *TaskExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[taskexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[taskexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, taskexecution.FieldCompletedAt)
}

// ClearRun clears the "run" edge to the Run entity.
func (m *TaskExecutionMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[taskexecution.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *TaskExecutionMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *TaskExecutionMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *TaskExecutionMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// AddStepIDs adds the "steps" edge to the TaskStep entity by ids.
func (m *TaskExecutionMutation) AddStepIDs(ids ...int) {
	if m.steps == nil {
		m.steps = make(map[int]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the TaskStep entity.
func (m *TaskExecutionMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the TaskStep entity was cleared.
func (m *TaskExecutionMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the TaskStep entity by IDs.
func (m *TaskExecutionMutation) RemoveStepIDs(ids ...int) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the TaskStep entity.
func (m *TaskExecutionMutation) RemovedStepsIDs() (ids []int) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *TaskExecutionMutation) StepsIDs() (ids []int) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *TaskExecutionMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddCheckIDs adds the "checks" edge to the DeterministicCheck entity by ids.
func (m *TaskExecutionMutation) AddCheckIDs(ids ...int) {
	if m.checks == nil {
		m.checks = make(map[int]struct{})
	}
	for i := range ids {
		m.checks[ids[i]] = struct{}{}
	}
}

// ClearChecks clears the "checks" edge to the DeterministicCheck entity.
func (m *TaskExecutionMutation) ClearChecks() {
	m.clearedchecks = true
}

// ChecksCleared reports if the "checks" edge to the DeterministicCheck entity was cleared.
func (m *TaskExecutionMutation) ChecksCleared() bool {
	return m.clearedchecks
}

// RemoveCheckIDs removes the "checks" edge to the DeterministicCheck entity by IDs.
func (m *TaskExecutionMutation) RemoveCheckIDs(ids ...int) {
	if m.removedchecks == nil {
		m.removedchecks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.checks, ids[i])
		m.removedchecks[ids[i]] = struct{}{}
	}
}

// RemovedChecks returns the removed IDs of the "checks" edge to the DeterministicCheck entity.
func (m *TaskExecutionMutation) RemovedChecksIDs() (ids []int) {
	for id := range m.removedchecks {
		ids = append(ids, id)
	}
	return
}

// ChecksIDs returns the "checks" edge IDs in the mutation.
func (m *TaskExecutionMutation) ChecksIDs() (ids []int) {
	for id := range m.checks {
		ids = append(ids, id)
	}
	return
}

// ResetChecks resets all changes to the "checks" edge.
func (m *TaskExecutionMutation) ResetChecks() {
	m.checks = nil
	m.clearedchecks = false
	m.removedchecks = nil
}

// Where appends a list predicates to the TaskExecutionMutation builder.
func (m *TaskExecutionMutation) Where(ps ...predicate.TaskExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskExecution).
func (m *TaskExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskExecutionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.run != nil {
		fields = append(fields, taskexecution.FieldRunID)
	}
	if m.task_id != nil {
		fields = append(fields, taskexecution.FieldTaskID)
	}
	if m.worker_id != nil {
		fields = append(fields, taskexecution.FieldWorkerID)
	}
	if m.phase != nil {
		fields = append(fields, taskexecution.FieldPhase)
	}
	if m.status != nil {
		fields = append(fields, taskexecution.FieldStatus)
	}
	if m.step_count != nil {
		fields = append(fields, taskexecution.FieldStepCount)
	}
	if m.tokens_in != nil {
		fields = append(fields, taskexecution.FieldTokensIn)
	}
	if m.tokens_out != nil {
		fields = append(fields, taskexecution.FieldTokensOut)
	}
	if m.cost_estimate != nil {
		fields = append(fields, taskexecution.FieldCostEstimate)
	}
	if m.stop_reason != nil {
		fields = append(fields, taskexecution.FieldStopReason)
	}
	if m.attempt != nil {
		fields = append(fields, taskexecution.FieldAttempt)
	}
	if m.agent_state != nil {
		fields = append(fields, taskexecution.FieldAgentState)
	}
	if m.started_at != nil {
		fields = append(fields, taskexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, taskexecution.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskexecution.FieldRunID:
		return m.RunID()
	case taskexecution.FieldTaskID:
		return m.TaskID()
	case taskexecution.FieldWorkerID:
		return m.WorkerID()
	case taskexecution.FieldPhase:
		return m.Phase()
	case taskexecution.FieldStatus:
		return m.Status()
	case taskexecution.FieldStepCount:
		return m.StepCount()
	case taskexecution.FieldTokensIn:
		return m.TokensIn()
	case taskexecution.FieldTokensOut:
		return m.TokensOut()
	case taskexecution.FieldCostEstimate:
		return m.CostEstimate()
	case taskexecution.FieldStopReason:
		return m.StopReason()
	case taskexecution.FieldAttempt:
		return m.Attempt()
	case taskexecution.FieldAgentState:
		return m.AgentState()
	case taskexecution.FieldStartedAt:
		return m.StartedAt()
	case taskexecution.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskexecution.FieldRunID:
		return m.OldRunID(ctx)
	case taskexecution.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskexecution.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case taskexecution.FieldPhase:
		return m.OldPhase(ctx)
	case taskexecution.FieldStatus:
		return m.OldStatus(ctx)
	case taskexecution.FieldStepCount:
		return m.OldStepCount(ctx)
	case taskexecution.FieldTokensIn:
		return m.OldTokensIn(ctx)
	case taskexecution.FieldTokensOut:
		return m.OldTokensOut(ctx)
	case taskexecution.FieldCostEstimate:
		return m.OldCostEstimate(ctx)
	case taskexecution.FieldStopReason:
		return m.OldStopReason(ctx)
	case taskexecution.FieldAttempt:
		return m.OldAttempt(ctx)
	case taskexecution.FieldAgentState:
		return m.OldAgentState(ctx)
	case taskexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case taskexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskexecution.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case taskexecution.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskexecution.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case taskexecution.FieldPhase:
		v, ok := value.(taskexecution.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case taskexecution.FieldStatus:
		v, ok := value.(taskexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case taskexecution.FieldStepCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepCount(v)
		return nil
	case taskexecution.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensIn(v)
		return nil
	case taskexecution.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensOut(v)
		return nil
	case taskexecution.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostEstimate(v)
		return nil
	case taskexecution.FieldStopReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStopReason(v)
		return nil
	case taskexecution.FieldAttempt:
		v, ok := value.(*models.Attempt)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case taskexecution.FieldAgentState:
		v, ok := value.(*models.AgentMemory)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentState(v)
		return nil
	case taskexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case taskexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addstep_count != nil {
		fields = append(fields, taskexecution.FieldStepCount)
	}
	if m.addtokens_in != nil {
		fields = append(fields, taskexecution.FieldTokensIn)
	}
	if m.addtokens_out != nil {
		fields = append(fields, taskexecution.FieldTokensOut)
	}
	if m.addcost_estimate != nil {
		fields = append(fields, taskexecution.FieldCostEstimate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskexecution.FieldStepCount:
		return m.AddedStepCount()
	case taskexecution.FieldTokensIn:
		return m.AddedTokensIn()
	case taskexecution.FieldTokensOut:
		return m.AddedTokensOut()
	case taskexecution.FieldCostEstimate:
		return m.AddedCostEstimate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskexecution.FieldStepCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepCount(v)
		return nil
	case taskexecution.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensIn(v)
		return nil
	case taskexecution.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensOut(v)
		return nil
	case taskexecution.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostEstimate(v)
		return nil
	}
	return fmt.Errorf("unknown TaskExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskexecution.FieldStopReason) {
		fields = append(fields, taskexecution.FieldStopReason)
	}
	if m.FieldCleared(taskexecution.FieldAttempt) {
		fields = append(fields, taskexecution.FieldAttempt)
	}
	if m.FieldCleared(taskexecution.FieldAgentState) {
		fields = append(fields, taskexecution.FieldAgentState)
	}
	if m.FieldCleared(taskexecution.FieldCompletedAt) {
		fields = append(fields, taskexecution.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskExecutionMutation) ClearField(name string) error {
	switch name {
	case taskexecution.FieldStopReason:
		m.ClearStopReason()
		return nil
	case taskexecution.FieldAttempt:
		m.ClearAttempt()
		return nil
	case taskexecution.FieldAgentState:
		m.ClearAgentState()
		return nil
	case taskexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskExecutionMutation) ResetField(name string) error {
	switch name {
	case taskexecution.FieldRunID:
		m.ResetRunID()
		return nil
	case taskexecution.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskexecution.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case taskexecution.FieldPhase:
		m.ResetPhase()
		return nil
	case taskexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case taskexecution.FieldStepCount:
		m.ResetStepCount()
		return nil
	case taskexecution.FieldTokensIn:
		m.ResetTokensIn()
		return nil
	case taskexecution.FieldTokensOut:
		m.ResetTokensOut()
		return nil
	case taskexecution.FieldCostEstimate:
		m.ResetCostEstimate()
		return nil
	case taskexecution.FieldStopReason:
		m.ResetStopReason()
		return nil
	case taskexecution.FieldAttempt:
		m.ResetAttempt()
		return nil
	case taskexecution.FieldAgentState:
		m.ResetAgentState()
		return nil
	case taskexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case taskexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.run != nil {
		edges = append(edges, taskexecution.EdgeRun)
	}
	if m.steps != nil {
		edges = append(edges, taskexecution.EdgeSteps)
	}
	if m.checks != nil {
		edges = append(edges, taskexecution.EdgeChecks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskexecution.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case taskexecution.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case taskexecution.EdgeChecks:
		ids := make([]ent.Value, 0, len(m.checks))
		for id := range m.checks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsteps != nil {
		edges = append(edges, taskexecution.EdgeSteps)
	}
	if m.removedchecks != nil {
		edges = append(edges, taskexecution.EdgeChecks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case taskexecution.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case taskexecution.EdgeChecks:
		ids := make([]ent.Value, 0, len(m.removedchecks))
		for id := range m.removedchecks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedrun {
		edges = append(edges, taskexecution.EdgeRun)
	}
	if m.clearedsteps {
		edges = append(edges, taskexecution.EdgeSteps)
	}
	if m.clearedchecks {
		edges = append(edges, taskexecution.EdgeChecks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case taskexecution.EdgeRun:
		return m.clearedrun
	case taskexecution.EdgeSteps:
		return m.clearedsteps
	case taskexecution.EdgeChecks:
		return m.clearedchecks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskExecutionMutation) ClearEdge(name string) error {
	switch name {
	case taskexecution.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown TaskExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskExecutionMutation) ResetEdge(name string) error {
	switch name {
	case taskexecution.EdgeRun:
		m.ResetRun()
		return nil
	case taskexecution.EdgeSteps:
		m.ResetSteps()
		return nil
	case taskexecution.EdgeChecks:
		m.ResetChecks()
		return nil
	}
	return fmt.Errorf("unknown TaskExecution edge %s", name)
}

// TaskStepMutation represents an operation that mutates the TaskStep nodes in the graph.
type TaskStepMutation struct {
	config
	op               Op
	typ              string
	id               *int
	run_id           *string
	step_index       *int
	addstep_index    *int
	phase            *taskstep.Phase
	input            *string
	output           *string
	retrieval        *[]models.ChunkRef
	appendretrieval  []models.ChunkRef
	usage            **models.StepUsage
	decision         **models.StepDecision
	created_at       *time.Time
	clearedFields    map[string]struct{}
	execution        *string
	clearedexecution bool
	citations        map[int]struct{}
	removedcitations map[int]struct{}
	clearedcitations bool
	done             bool
	oldValue         func(context.Context) (*TaskStep, error)
	predicates       []predicate.TaskStep
}

var _ ent.Mutation = (*TaskStepMutation)(nil)

// taskstepOption allows management of the mutation configuration using functional options.
type taskstepOption func(*TaskStepMutation)

// newTaskStepMutation creates new mutation for the TaskStep entity.
func newTaskStepMutation(c config, op Op, opts ...taskstepOption) *TaskStepMutation {
	m := &TaskStepMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskStepID sets the ID field of the mutation.
func withTaskStepID(id int) taskstepOption {
	return func(m *TaskStepMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskStep
		)
		m.oldValue = func(ctx context.Context) (*TaskStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskStep sets the old TaskStep of the mutation.
func withTaskStep(node *TaskStep) taskstepOption {
	return func(m *TaskStepMutation) {
		m.oldValue = func(context.Context) (*TaskStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskStepMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskStepMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskExecutionID sets the "task_execution_id" field.
func (m *TaskStepMutation) SetTaskExecutionID(s string) {
	m.execution = &s
}

// TaskExecutionID returns the value of the "task_execution_id" field in the mutation.
func (m *TaskStepMutation) TaskExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskExecutionID returns the old "task_execution_id" field's value of the TaskStep entity.
// If the TaskStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStepMutation) OldTaskExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskExecutionID: %w", err)
	}
	return oldValue.TaskExecutionID, nil
}

// ResetTaskExecutionID resets all changes to the "task_execution_id" field.
func (m *TaskStepMutation) ResetTaskExecutionID() {
	m.execution = nil
}

// SetRunID sets the "run_id" field.
func (m *TaskStepMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *TaskStepMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the TaskStep entity.
// If the TaskStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStepMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *TaskStepMutation) ResetRunID() {
	m.run_id = nil
}

// SetStepIndex sets the "step_index" field.
func (m *TaskStepMutation) SetStepIndex(i int) {
	m.step_index = &i
	m.addstep_index = nil
}

// StepIndex returns the value of the "step_index" field in the mutation.
func (m *TaskStepMutation) StepIndex() (r int, exists bool) {
	v := m.step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStepIndex returns the old "step_index" field's value of the TaskStep entity.
// If the TaskStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStepMutation) OldStepIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepIndex: %w", err)
	}
	return oldValue.StepIndex, nil
}

// AddStepIndex adds i to the "step_index" field.
func (m *TaskStepMutation) AddStepIndex(i int) {
	if m.addstep_index != nil {
		*m.addstep_index += i
	} else {
		m.addstep_index = &i
	}
}

// AddedStepIndex returns the value that was added to the "step_index" field in this mutation.
func (m *TaskStepMutation) AddedStepIndex() (r int, exists bool) {
	v := m.addstep_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepIndex resets all changes to the "step_index" field.
func (m *TaskStepMutation) ResetStepIndex() {
	m.step_index = nil
	m.addstep_index = nil
}

// SetPhase sets the "phase" field.
func (m *TaskStepMutation) SetPhase(t taskstep.Phase) {
	m.phase = &t
}

// Phase returns the value of the "phase" field in the mutation.
func (m *TaskStepMutation) Phase() (r taskstep.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the TaskStep entity.
// If the TaskStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStepMutation) OldPhase(ctx context.Context) (v taskstep.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *TaskStepMutation) ResetPhase() {
	m.phase = nil
}

// SetInput sets the "input" field.
func (m *TaskStepMutation) SetInput(s string) {
	m.input = &s
}

// Input returns the value of the "input" field in the mutation.
func (m *TaskStepMutation) Input() (r string, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the TaskStep entity.
// If the TaskStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStepMutation) OldInput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ResetInput resets all changes to the "input" field.
func (m *TaskStepMutation) ResetInput() {
	m.input = nil
}

// SetOutput sets the "output" field.
func (m *TaskStepMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *TaskStepMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the TaskStep entity.
// If the TaskStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStepMutation) OldOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ResetOutput resets all changes to the "output" field.
func (m *TaskStepMutation) ResetOutput() {
	m.output = nil
}

// SetRetrieval sets the "retrieval" field.
func (m *TaskStepMutation) SetRetrieval(mr []models.ChunkRef) {
	m.retrieval = &mr
	m.appendretrieval = nil
}

// Retrieval returns the value of the "retrieval" field in the mutation.
func (m *TaskStepMutation) Retrieval() (r []models.ChunkRef, exists bool) {
	v := m.retrieval
	if v == nil {
		return
	}
	return *v, true
}

// OldRetrieval returns the old "retrieval" field's value of the TaskStep entity.
// If the TaskStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStepMutation) OldRetrieval(ctx context.Context) (v []models.ChunkRef, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetrieval is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetrieval requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetrieval: %w", err)
	}
	return oldValue.Retrieval, nil
}

// AppendRetrieval adds mr to the "retrieval" field.
func (m *TaskStepMutation) AppendRetrieval(mr []models.ChunkRef) {
	m.appendretrieval = append(m.appendretrieval, mr...)
}

// AppendedRetrieval returns the list of values that were appended to the "retrieval" field in this mutation.
func (m *TaskStepMutation) AppendedRetrieval() ([]models.ChunkRef, bool) {
	if len(m.appendretrieval) == 0 {
		return nil, false
	}
	return m.appendretrieval, true
}

// ClearRetrieval clears the value of the "retrieval" field.
func (m *TaskStepMutation) ClearRetrieval() {
	m.retrieval = nil
	m.appendretrieval = nil
	m.clearedFields[taskstep.FieldRetrieval] = struct{}{}
}

// RetrievalCleared returns if the "retrieval" field was cleared in this mutation.
func (m *TaskStepMutation) RetrievalCleared() bool {
	_, ok := m.clearedFields[taskstep.FieldRetrieval]
	return ok
}

// ResetRetrieval resets all changes to the "retrieval" field.
func (m *TaskStepMutation) ResetRetrieval() {
	m.retrieval = nil
	m.appendretrieval = nil
	delete(m.clearedFields, taskstep.FieldRetrieval)
}

// SetUsage sets the "usage" field.
func (m *TaskStepMutation) SetUsage(mu *models.StepUsage) {
	m.usage = &mu
}

// Usage returns the value of the "usage" field in the mutation.
func (m *TaskStepMutation) Usage() (r *models.StepUsage, exists bool) {
	v := m.usage
	if v == nil {
		return
	}
	return *v, true
}

// OldUsage returns the old "usage" field's value of the TaskStep entity.
// If the TaskStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStepMutation) OldUsage(ctx context.Context) (v *models.StepUsage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsage: %w", err)
	}
	return oldValue.Usage, nil
}

// ClearUsage clears the value of the "usage" field.
func (m *TaskStepMutation) ClearUsage() {
	m.usage = nil
	m.clearedFields[taskstep.FieldUsage] = struct{}{}
}

// UsageCleared returns if the "usage" field was cleared in this mutation.
func (m *TaskStepMutation) UsageCleared() bool {
	_, ok := m.clearedFields[taskstep.FieldUsage]
	return ok
}

// ResetUsage resets all changes to the "usage" field.
func (m *TaskStepMutation) ResetUsage() {
	m.usage = nil
	delete(m.clearedFields, taskstep.FieldUsage)
}

// SetDecision sets the "decision" field.
func (m *TaskStepMutation) SetDecision(md *models.StepDecision) {
	m.decision = &md
}

// Decision returns the value of the "decision" field in the mutation.
func (m *TaskStepMutation) Decision() (r *models.StepDecision, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the TaskStep entity.
// If the TaskStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStepMutation) OldDecision(ctx context.Context) (v *models.StepDecision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ClearDecision clears the value of the "decision" field.
func (m *TaskStepMutation) ClearDecision() {
	m.decision = nil
	m.clearedFields[taskstep.FieldDecision] = struct{}{}
}

// DecisionCleared returns if the "decision" field was cleared in this mutation.
func (m *TaskStepMutation) DecisionCleared() bool {
	_, ok := m.clearedFields[taskstep.FieldDecision]
	return ok
}

// ResetDecision resets all changes to the "decision" field.
func (m *TaskStepMutation) ResetDecision() {
	m.decision = nil
	delete(m.clearedFields, taskstep.FieldDecision)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskStep entity.
// If the TaskStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExecutionID sets the "execution" edge to the TaskExecution entity by id.
func (m *TaskStepMutation) SetExecutionID(id string) {
	m.execution = &id
}

// ClearExecution clears the "execution" edge to the TaskExecution entity.
func (m *TaskStepMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[taskstep.FieldTaskExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the TaskExecution entity was cleared.
func (m *TaskStepMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionID returns the "execution" edge ID in the mutation.
func (m *TaskStepMutation) ExecutionID() (id string, exists bool) {
	if m.execution != nil {
		return *m.execution, true
	}
	return
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *TaskStepMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *TaskStepMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// AddCitationIDs adds the "citations" edge to the StepCitation entity by ids.
func (m *TaskStepMutation) AddCitationIDs(ids ...int) {
	if m.citations == nil {
		m.citations = make(map[int]struct{})
	}
	for i := range ids {
		m.citations[ids[i]] = struct{}{}
	}
}

// ClearCitations clears the "citations" edge to the StepCitation entity.
func (m *TaskStepMutation) ClearCitations() {
	m.clearedcitations = true
}

// CitationsCleared reports if the "citations" edge to the StepCitation entity was cleared.
func (m *TaskStepMutation) CitationsCleared() bool {
	return m.clearedcitations
}

// RemoveCitationIDs removes the "citations" edge to the StepCitation entity by IDs.
func (m *TaskStepMutation) RemoveCitationIDs(ids ...int) {
	if m.removedcitations == nil {
		m.removedcitations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.citations, ids[i])
		m.removedcitations[ids[i]] = struct{}{}
	}
}

// RemovedCitations returns the removed IDs of the "citations" edge to the StepCitation entity.
func (m *TaskStepMutation) RemovedCitationsIDs() (ids []int) {
	for id := range m.removedcitations {
		ids = append(ids, id)
	}
	return
}

// CitationsIDs returns the "citations" edge IDs in the mutation.
func (m *TaskStepMutation) CitationsIDs() (ids []int) {
	for id := range m.citations {
		ids = append(ids, id)
	}
	return
}

// ResetCitations resets all changes to the "citations" edge.
func (m *TaskStepMutation) ResetCitations() {
	m.citations = nil
	m.clearedcitations = false
	m.removedcitations = nil
}

// Where appends a list predicates to the TaskStepMutation builder.
func (m *TaskStepMutation) Where(ps ...predicate.TaskStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskStep).
func (m *TaskStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskStepMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.execution != nil {
		fields = append(fields, taskstep.FieldTaskExecutionID)
	}
	if m.run_id != nil {
		fields = append(fields, taskstep.FieldRunID)
	}
	if m.step_index != nil {
		fields = append(fields, taskstep.FieldStepIndex)
	}
	if m.phase != nil {
		fields = append(fields, taskstep.FieldPhase)
	}
	if m.input != nil {
		fields = append(fields, taskstep.FieldInput)
	}
	if m.output != nil {
		fields = append(fields, taskstep.FieldOutput)
	}
	if m.retrieval != nil {
		fields = append(fields, taskstep.FieldRetrieval)
	}
	if m.usage != nil {
		fields = append(fields, taskstep.FieldUsage)
	}
	if m.decision != nil {
		fields = append(fields, taskstep.FieldDecision)
	}
	if m.created_at != nil {
		fields = append(fields, taskstep.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskstep.FieldTaskExecutionID:
		return m.TaskExecutionID()
	case taskstep.FieldRunID:
		return m.RunID()
	case taskstep.FieldStepIndex:
		return m.StepIndex()
	case taskstep.FieldPhase:
		return m.Phase()
	case taskstep.FieldInput:
		return m.Input()
	case taskstep.FieldOutput:
		return m.Output()
	case taskstep.FieldRetrieval:
		return m.Retrieval()
	case taskstep.FieldUsage:
		return m.Usage()
	case taskstep.FieldDecision:
		return m.Decision()
	case taskstep.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskstep.FieldTaskExecutionID:
		return m.OldTaskExecutionID(ctx)
	case taskstep.FieldRunID:
		return m.OldRunID(ctx)
	case taskstep.FieldStepIndex:
		return m.OldStepIndex(ctx)
	case taskstep.FieldPhase:
		return m.OldPhase(ctx)
	case taskstep.FieldInput:
		return m.OldInput(ctx)
	case taskstep.FieldOutput:
		return m.OldOutput(ctx)
	case taskstep.FieldRetrieval:
		return m.OldRetrieval(ctx)
	case taskstep.FieldUsage:
		return m.OldUsage(ctx)
	case taskstep.FieldDecision:
		return m.OldDecision(ctx)
	case taskstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskstep.FieldTaskExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskExecutionID(v)
		return nil
	case taskstep.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case taskstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepIndex(v)
		return nil
	case taskstep.FieldPhase:
		v, ok := value.(taskstep.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case taskstep.FieldInput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case taskstep.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case taskstep.FieldRetrieval:
		v, ok := value.([]models.ChunkRef)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetrieval(v)
		return nil
	case taskstep.FieldUsage:
		v, ok := value.(*models.StepUsage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsage(v)
		return nil
	case taskstep.FieldDecision:
		v, ok := value.(*models.StepDecision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case taskstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_index != nil {
		fields = append(fields, taskstep.FieldStepIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskstep.FieldStepIndex:
		return m.AddedStepIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepIndex(v)
		return nil
	}
	return fmt.Errorf("unknown TaskStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskstep.FieldRetrieval) {
		fields = append(fields, taskstep.FieldRetrieval)
	}
	if m.FieldCleared(taskstep.FieldUsage) {
		fields = append(fields, taskstep.FieldUsage)
	}
	if m.FieldCleared(taskstep.FieldDecision) {
		fields = append(fields, taskstep.FieldDecision)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskStepMutation) ClearField(name string) error {
	switch name {
	case taskstep.FieldRetrieval:
		m.ClearRetrieval()
		return nil
	case taskstep.FieldUsage:
		m.ClearUsage()
		return nil
	case taskstep.FieldDecision:
		m.ClearDecision()
		return nil
	}
	return fmt.Errorf("unknown TaskStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskStepMutation) ResetField(name string) error {
	switch name {
	case taskstep.FieldTaskExecutionID:
		m.ResetTaskExecutionID()
		return nil
	case taskstep.FieldRunID:
		m.ResetRunID()
		return nil
	case taskstep.FieldStepIndex:
		m.ResetStepIndex()
		return nil
	case taskstep.FieldPhase:
		m.ResetPhase()
		return nil
	case taskstep.FieldInput:
		m.ResetInput()
		return nil
	case taskstep.FieldOutput:
		m.ResetOutput()
		return nil
	case taskstep.FieldRetrieval:
		m.ResetRetrieval()
		return nil
	case taskstep.FieldUsage:
		m.ResetUsage()
		return nil
	case taskstep.FieldDecision:
		m.ResetDecision()
		return nil
	case taskstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.execution != nil {
		edges = append(edges, taskstep.EdgeExecution)
	}
	if m.citations != nil {
		edges = append(edges, taskstep.EdgeCitations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskstep.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	case taskstep.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.citations))
		for id := range m.citations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcitations != nil {
		edges = append(edges, taskstep.EdgeCitations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskStepMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case taskstep.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.removedcitations))
		for id := range m.removedcitations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedexecution {
		edges = append(edges, taskstep.EdgeExecution)
	}
	if m.clearedcitations {
		edges = append(edges, taskstep.EdgeCitations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskStepMutation) EdgeCleared(name string) bool {
	switch name {
	case taskstep.EdgeExecution:
		return m.clearedexecution
	case taskstep.EdgeCitations:
		return m.clearedcitations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskStepMutation) ClearEdge(name string) error {
	switch name {
	case taskstep.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown TaskStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskStepMutation) ResetEdge(name string) error {
	switch name {
	case taskstep.EdgeExecution:
		m.ResetExecution()
		return nil
	case taskstep.EdgeCitations:
		m.ResetCitations()
		return nil
	}
	return fmt.Errorf("unknown TaskStep edge %s", name)
}
