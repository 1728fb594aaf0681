package models

// FailureClass is the categorical diagnosis of a failed task.
type FailureClass string

// The closed set of failure classes.
const (
	FailureOutdatedContent       FailureClass = "outdated_content"
	FailureBrokenLinks           FailureClass = "broken_links"
	FailureMissingExamples       FailureClass = "missing_examples"
	FailureAmbiguousInstructions FailureClass = "ambiguous_instructions"
	FailureMissingContent        FailureClass = "missing_content"
	FailureInsufficientDetail    FailureClass = "insufficient_detail"
	FailurePoorStructure         FailureClass = "poor_structure"
	FailureNotApplicable         FailureClass = "not_applicable"
)

// AllowedFailureClasses is the accepted value set for judge suggestions.
var AllowedFailureClasses = map[FailureClass]bool{
	FailureOutdatedContent:       true,
	FailureBrokenLinks:           true,
	FailureMissingExamples:       true,
	FailureAmbiguousInstructions: true,
	FailureMissingContent:        true,
	FailureInsufficientDetail:    true,
	FailurePoorStructure:         true,
	FailureNotApplicable:         true,
}

// CriterionScores are the four rubric axes, each in [0,10].
type CriterionScores struct {
	Completeness  float64 `json:"completeness"`
	Correctness   float64 `json:"correctness"`
	Groundedness  float64 `json:"groundedness"`
	Actionability float64 `json:"actionability"`
	Average       float64 `json:"average"`
}

// ValidityBlockReason names the deterministic gate that blocked a pass.
type ValidityBlockReason string

// Validity block reasons produced by the deterministic guard.
const (
	BlockMissingCitations ValidityBlockReason = "missing_citations"
	BlockInvalidCitations ValidityBlockReason = "invalid_citations"
	BlockUnsupportedAnswer ValidityBlockReason = "unsupported_answer"
)

// DeterministicCheck is one non-LLM gate result, persisted for inspection.
type DeterministicCheck struct {
	TaskExecutionID string  `json:"taskExecutionId"`
	Name            string  `json:"name"`
	Passed          bool    `json:"passed"`
	ScoreDelta      float64 `json:"scoreDelta"`
	Details         string  `json:"details,omitempty"`
}

// TaskEvaluation is the two-stage evaluator's verdict on one attempt.
// Pass = QualityPass AND ValidityPass; a non-empty ValidityBlockedReasons
// forces Pass=false regardless of scores.
type TaskEvaluation struct {
	RunID                  string                `json:"runId"`
	TaskID                 string                `json:"taskId"`
	Phase                  Phase                 `json:"phase"`
	CriterionScores        CriterionScores       `json:"criterionScores"`
	Pass                   bool                  `json:"pass"`
	QualityPass            bool                  `json:"qualityPass"`
	ValidityPass           bool                  `json:"validityPass"`
	ValidityBlockedReasons []ValidityBlockReason `json:"validityBlockedReasons"`
	FailureClass           *FailureClass         `json:"failureClass,omitempty"`
	Rationale              string                `json:"rationale"`
	JudgeModel             string                `json:"judgeModel"`
	Confidence             float64               `json:"confidence"`
}
