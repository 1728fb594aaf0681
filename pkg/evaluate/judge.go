package evaluate

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/dhiyaancnirmal/mintaborate/pkg/llm"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/retrieval"
)

// evidenceLimit bounds the evidence block supplied to the alignment call.
const evidenceLimit = 12

// qualityThreshold is the rubric average required for a quality pass.
const qualityThreshold = 7.0

// Tie-break band: a rubric average inside it triggers a second scoring pass.
const (
	tieBreakLow  = 6.5
	tieBreakHigh = 7.5
)

// AlignmentSchema validates the evidence-alignment verdict.
var AlignmentSchema = llm.MustSchema("judge_alignment", `{
	"type": "object",
	"properties": {
		"isSupportedByEvidence": {"type": "boolean"},
		"unsupportedClaims": {"type": "array", "items": {"type": "string"}},
		"notes": {"type": "string"}
	},
	"required": ["isSupportedByEvidence", "unsupportedClaims"],
	"additionalProperties": true
}`)

// RubricSchema validates the four-axis rubric scoring.
var RubricSchema = llm.MustSchema("judge_rubric", `{
	"type": "object",
	"properties": {
		"scores": {
			"type": "object",
			"properties": {
				"completeness": {"type": "number", "minimum": 0, "maximum": 10},
				"correctness": {"type": "number", "minimum": 0, "maximum": 10},
				"groundedness": {"type": "number", "minimum": 0, "maximum": 10},
				"actionability": {"type": "number", "minimum": 0, "maximum": 10}
			},
			"required": ["completeness", "correctness", "groundedness", "actionability"]
		},
		"rationale": {"type": "string"},
		"confidence": {"type": "number", "minimum": 0, "maximum": 1},
		"suggestedFailureClass": {"type": "string"}
	},
	"required": ["scores", "rationale", "confidence"],
	"additionalProperties": true
}`)

type alignmentResult struct {
	IsSupportedByEvidence bool     `json:"isSupportedByEvidence"`
	UnsupportedClaims     []string `json:"unsupportedClaims"`
	Notes                 string   `json:"notes"`
}

type rubricResult struct {
	Scores struct {
		Completeness  float64 `json:"completeness"`
		Correctness   float64 `json:"correctness"`
		Groundedness  float64 `json:"groundedness"`
		Actionability float64 `json:"actionability"`
	} `json:"scores"`
	Rationale             string  `json:"rationale"`
	Confidence            float64 `json:"confidence"`
	SuggestedFailureClass string  `json:"suggestedFailureClass"`
}

// Judge runs the two-pass LLM evaluation with the judge model.
type Judge struct {
	client   llm.Client
	cfg      models.ModelConfig
	tieBreak bool
}

// NewJudge creates a Judge.
func NewJudge(client llm.Client, cfg models.ModelConfig, tieBreakEnabled bool) *Judge {
	return &Judge{client: client, cfg: cfg, tieBreak: tieBreakEnabled}
}

// Evaluate scores one attempt. Guard caps and guardrails clamp the model's
// raw scores; a non-empty blocked-reason list forces pass=false regardless.
// The returned usage covers every judge call made, tie-break included.
func (j *Judge) Evaluate(ctx context.Context, task models.Task, attempt models.Attempt, evidence []retrieval.Scored, guard GuardResult) (*models.TaskEvaluation, llm.Usage, error) {
	usage := llm.Usage{}

	alignment, alignUsage, err := j.align(ctx, task, attempt, evidence)
	if err != nil {
		return nil, usage, err
	}
	usage.Add(alignUsage)

	rubric, rubricUsage, err := j.score(ctx, task, attempt, alignment)
	if err != nil {
		return nil, usage, err
	}
	usage.Add(rubricUsage)

	scores := j.postProcess(rubric, attempt, alignment, guard)

	if j.tieBreak && scores.Average >= tieBreakLow && scores.Average <= tieBreakHigh {
		second, secondUsage, err := j.score(ctx, task, attempt, alignment)
		if err != nil {
			return nil, usage, err
		}
		usage.Add(secondUsage)
		secondScores := j.postProcess(second, attempt, alignment, guard)

		scores.Completeness = round2((scores.Completeness + secondScores.Completeness) / 2)
		scores.Correctness = round2((scores.Correctness + secondScores.Correctness) / 2)
		scores.Groundedness = round2((scores.Groundedness + secondScores.Groundedness) / 2)
		scores.Actionability = round2((scores.Actionability + secondScores.Actionability) / 2)
		scores.Average = round2((scores.Completeness + scores.Correctness + scores.Groundedness + scores.Actionability) / 4)
	}

	blocked := append([]models.ValidityBlockReason(nil), guard.Blocked...)
	if !alignment.IsSupportedByEvidence {
		blocked = append(blocked, models.BlockUnsupportedAnswer)
	}

	qualityPass := scores.Average >= qualityThreshold
	validityPass := alignment.IsSupportedByEvidence && len(guard.Blocked) == 0
	pass := qualityPass && validityPass

	eval := &models.TaskEvaluation{
		RunID:                  task.RunID,
		TaskID:                 task.TaskID,
		CriterionScores:        scores,
		Pass:                   pass,
		QualityPass:            qualityPass,
		ValidityPass:           validityPass,
		ValidityBlockedReasons: blocked,
		Rationale:              rubric.Rationale,
		JudgeModel:             j.cfg.Model,
		Confidence:             rubric.Confidence,
	}
	if !pass {
		fc := Classify(rubric.SuggestedFailureClass, rubric.Rationale, scores)
		eval.FailureClass = &fc
	}
	return eval, usage, nil
}

func (j *Judge) align(ctx context.Context, task models.Task, attempt models.Attempt, evidence []retrieval.Scored) (alignmentResult, llm.Usage, error) {
	if len(evidence) > evidenceLimit {
		evidence = evidence[:evidenceLimit]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Task: %s\n%s\n\nCandidate answer:\n%s\n\nSteps taken:\n", task.Name, task.Description, attempt.Answer)
	for i, step := range attempt.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	b.WriteString("\nCitations:\n")
	for _, c := range attempt.Citations {
		fmt.Fprintf(&b, "- %s#%s: %s\n", c.Source, c.SnippetHash, c.Excerpt)
	}
	b.WriteString("\nEvidence:\n")
	for _, e := range evidence {
		fmt.Fprintf(&b, "[%s#%s]\n%s\n\n", e.Chunk.SourceURL, e.Chunk.SnippetHash, e.Chunk.Text)
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: "You verify whether a candidate answer is supported by the supplied documentation evidence. List every claim that the evidence does not support."},
		{Role: llm.RoleUser, Content: b.String()},
	}

	var result alignmentResult
	res, err := j.client.CompleteJSON(ctx, j.cfg, messages, AlignmentSchema, &result)
	if err != nil {
		return alignmentResult{}, llm.Usage{}, fmt.Errorf("alignment call failed: %w", err)
	}
	return result, res.Usage, nil
}

func (j *Judge) score(ctx context.Context, task models.Task, attempt models.Attempt, alignment alignmentResult) (rubricResult, llm.Usage, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Task: %s\n%s\n\nCandidate answer:\n%s\n\nSteps taken: %d\nCitations: %d\nStop reason: %s\n",
		task.Name, task.Description, attempt.Answer, len(attempt.Steps), len(attempt.Citations), attempt.StopReason)
	fmt.Fprintf(&b, "\nEvidence alignment: supported=%t\n", alignment.IsSupportedByEvidence)
	for _, claim := range alignment.UnsupportedClaims {
		fmt.Fprintf(&b, "- unsupported: %s\n", claim)
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: "You score documentation task attempts on completeness, correctness, groundedness and actionability, each 0-10. Be strict: reserve 8+ for answers a newcomer could follow without guessing."},
		{Role: llm.RoleUser, Content: b.String()},
	}

	var result rubricResult
	res, err := j.client.CompleteJSON(ctx, j.cfg, messages, RubricSchema, &result)
	if err != nil {
		return rubricResult{}, llm.Usage{}, fmt.Errorf("rubric call failed: %w", err)
	}
	return result, res.Usage, nil
}

// postProcess applies guardrails, then the deterministic caps, then
// recomputes the average.
func (j *Judge) postProcess(rubric rubricResult, attempt models.Attempt, alignment alignmentResult, guard GuardResult) models.CriterionScores {
	scores := models.CriterionScores{
		Completeness:  rubric.Scores.Completeness,
		Correctness:   rubric.Scores.Correctness,
		Groundedness:  rubric.Scores.Groundedness,
		Actionability: rubric.Scores.Actionability,
	}

	if len(attempt.Citations) == 0 {
		scores.Groundedness = min(scores.Groundedness, 4)
	}
	if len(attempt.Steps) < 2 {
		scores.Actionability = min(scores.Actionability, 6)
	}
	if len(alignment.UnsupportedClaims) > 0 {
		scores.Correctness = min(scores.Correctness, 6)
		scores.Groundedness = min(scores.Groundedness, 5)
	}

	guard.Caps.Apply(&scores)
	scores.Average = round2((scores.Completeness + scores.Correctness + scores.Groundedness + scores.Actionability) / 4)
	return scores
}

// round2 rounds half away from zero to 2 decimals.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
