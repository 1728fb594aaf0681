// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dhiyaancnirmal/mintaborate/ent/run"
	"github.com/dhiyaancnirmal/mintaborate/ent/runerror"
	"github.com/dhiyaancnirmal/mintaborate/ent/runevent"
	"github.com/dhiyaancnirmal/mintaborate/ent/schema"
	"github.com/dhiyaancnirmal/mintaborate/ent/skillsession"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskexecution"
	"github.com/dhiyaancnirmal/mintaborate/ent/taskstep"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescStartedAt is the schema descriptor for started_at field.
	runDescStartedAt := runFields[3].Descriptor()
	// run.DefaultStartedAt holds the default value on creation for the started_at field.
	run.DefaultStartedAt = runDescStartedAt.Default.(func() time.Time)
	// runDescCostEstimate is the schema descriptor for cost_estimate field.
	runDescCostEstimate := runFields[7].Descriptor()
	// run.DefaultCostEstimate holds the default value on creation for the cost_estimate field.
	run.DefaultCostEstimate = runDescCostEstimate.Default.(float64)
	runerrorFields := schema.RunError{}.Fields()
	_ = runerrorFields
	// runerrorDescCreatedAt is the schema descriptor for created_at field.
	runerrorDescCreatedAt := runerrorFields[4].Descriptor()
	// runerror.DefaultCreatedAt holds the default value on creation for the created_at field.
	runerror.DefaultCreatedAt = runerrorDescCreatedAt.Default.(func() time.Time)
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescCreatedAt is the schema descriptor for created_at field.
	runeventDescCreatedAt := runeventFields[4].Descriptor()
	// runevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	runevent.DefaultCreatedAt = runeventDescCreatedAt.Default.(func() time.Time)
	runworkerFields := schema.RunWorker{}.Fields()
	_ = runworkerFields
	skillsessionFields := schema.SkillSession{}.Fields()
	_ = skillsessionFields
	// skillsessionDescTokensIn is the schema descriptor for tokens_in field.
	skillsessionDescTokensIn := skillsessionFields[7].Descriptor()
	// skillsession.DefaultTokensIn holds the default value on creation for the tokens_in field.
	skillsession.DefaultTokensIn = skillsessionDescTokensIn.Default.(int)
	// skillsessionDescTokensOut is the schema descriptor for tokens_out field.
	skillsessionDescTokensOut := skillsessionFields[8].Descriptor()
	// skillsession.DefaultTokensOut holds the default value on creation for the tokens_out field.
	skillsession.DefaultTokensOut = skillsessionDescTokensOut.Default.(int)
	// skillsessionDescCostEstimate is the schema descriptor for cost_estimate field.
	skillsessionDescCostEstimate := skillsessionFields[9].Descriptor()
	// skillsession.DefaultCostEstimate holds the default value on creation for the cost_estimate field.
	skillsession.DefaultCostEstimate = skillsessionDescCostEstimate.Default.(float64)
	// skillsessionDescUpdatedAt is the schema descriptor for updated_at field.
	skillsessionDescUpdatedAt := skillsessionFields[11].Descriptor()
	// skillsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	skillsession.DefaultUpdatedAt = skillsessionDescUpdatedAt.Default.(func() time.Time)
	// skillsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	skillsession.UpdateDefaultUpdatedAt = skillsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	taskexecutionFields := schema.TaskExecution{}.Fields()
	_ = taskexecutionFields
	// taskexecutionDescStepCount is the schema descriptor for step_count field.
	taskexecutionDescStepCount := taskexecutionFields[6].Descriptor()
	// taskexecution.DefaultStepCount holds the default value on creation for the step_count field.
	taskexecution.DefaultStepCount = taskexecutionDescStepCount.Default.(int)
	// taskexecutionDescTokensIn is the schema descriptor for tokens_in field.
	taskexecutionDescTokensIn := taskexecutionFields[7].Descriptor()
	// taskexecution.DefaultTokensIn holds the default value on creation for the tokens_in field.
	taskexecution.DefaultTokensIn = taskexecutionDescTokensIn.Default.(int)
	// taskexecutionDescTokensOut is the schema descriptor for tokens_out field.
	taskexecutionDescTokensOut := taskexecutionFields[8].Descriptor()
	// taskexecution.DefaultTokensOut holds the default value on creation for the tokens_out field.
	taskexecution.DefaultTokensOut = taskexecutionDescTokensOut.Default.(int)
	// taskexecutionDescCostEstimate is the schema descriptor for cost_estimate field.
	taskexecutionDescCostEstimate := taskexecutionFields[9].Descriptor()
	// taskexecution.DefaultCostEstimate holds the default value on creation for the cost_estimate field.
	taskexecution.DefaultCostEstimate = taskexecutionDescCostEstimate.Default.(float64)
	// taskexecutionDescStartedAt is the schema descriptor for started_at field.
	taskexecutionDescStartedAt := taskexecutionFields[13].Descriptor()
	// taskexecution.DefaultStartedAt holds the default value on creation for the started_at field.
	taskexecution.DefaultStartedAt = taskexecutionDescStartedAt.Default.(func() time.Time)
	taskstepFields := schema.TaskStep{}.Fields()
	_ = taskstepFields
	// taskstepDescCreatedAt is the schema descriptor for created_at field.
	taskstepDescCreatedAt := taskstepFields[9].Descriptor()
	// taskstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskstep.DefaultCreatedAt = taskstepDescCreatedAt.Default.(func() time.Time)
}
