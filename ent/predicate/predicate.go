// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DeterministicCheck is the predicate function for deterministiccheck builders.
type DeterministicCheck func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// RunArtifact is the predicate function for runartifact builders.
type RunArtifact func(*sql.Selector)

// RunError is the predicate function for runerror builders.
type RunError func(*sql.Selector)

// RunEvent is the predicate function for runevent builders.
type RunEvent func(*sql.Selector)

// RunWorker is the predicate function for runworker builders.
type RunWorker func(*sql.Selector)

// SkillSession is the predicate function for skillsession builders.
type SkillSession func(*sql.Selector)

// StepCitation is the predicate function for stepcitation builders.
type StepCitation func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskEvaluation is the predicate function for taskevaluation builders.
type TaskEvaluation func(*sql.Selector)

// TaskExecution is the predicate function for taskexecution builders.
type TaskExecution func(*sql.Selector)

// TaskStep is the predicate function for taskstep builders.
type TaskStep func(*sql.Selector)
