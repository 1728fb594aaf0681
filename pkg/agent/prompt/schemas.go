// Package prompt builds the plan/act/reflect conversations for the agent
// loop and owns their JSON response schemas.
package prompt

import "github.com/dhiyaancnirmal/mintaborate/pkg/llm"

// PlanSchema validates the plan-phase response.
var PlanSchema = llm.MustSchema("agent_plan", `{
	"type": "object",
	"properties": {
		"planItems": {"type": "array", "items": {"type": "string"}},
		"rationale": {"type": "string"}
	},
	"required": ["planItems"],
	"additionalProperties": true
}`)

// ActSchema validates the act-phase response.
var ActSchema = llm.MustSchema("agent_act", `{
	"type": "object",
	"properties": {
		"answer": {"type": "string"},
		"stepOutput": {"type": "string"},
		"citations": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"source": {"type": "string"},
					"snippetHash": {"type": "string"},
					"excerpt": {"type": "string"}
				},
				"required": ["source", "excerpt"]
			}
		},
		"done": {"type": "boolean"},
		"doneReason": {"type": "string"},
		"discoveredFacts": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["answer", "citations", "done"],
	"additionalProperties": true
}`)

// ReflectSchema validates the reflect-phase response.
var ReflectSchema = llm.MustSchema("agent_reflect", `{
	"type": "object",
	"properties": {
		"shouldContinue": {"type": "boolean"},
		"summary": {"type": "string"},
		"planUpdates": {"type": "array", "items": {"type": "string"}},
		"confidence": {"type": "number", "minimum": 0, "maximum": 1},
		"stopReason": {"type": "string"}
	},
	"required": ["shouldContinue", "summary"],
	"additionalProperties": true
}`)

// PlanResult is the parsed plan-phase response.
type PlanResult struct {
	PlanItems []string `json:"planItems"`
	Rationale string   `json:"rationale"`
}

// ActCitation is one citation emitted by the act phase.
type ActCitation struct {
	Source      string `json:"source"`
	SnippetHash string `json:"snippetHash"`
	Excerpt     string `json:"excerpt"`
}

// ActResult is the parsed act-phase response.
type ActResult struct {
	Answer          string        `json:"answer"`
	StepOutput      string        `json:"stepOutput"`
	Citations       []ActCitation `json:"citations"`
	Done            bool          `json:"done"`
	DoneReason      string        `json:"doneReason"`
	DiscoveredFacts []string      `json:"discoveredFacts"`
}

// ReflectResult is the parsed reflect-phase response.
type ReflectResult struct {
	ShouldContinue bool     `json:"shouldContinue"`
	Summary        string   `json:"summary"`
	PlanUpdates    []string `json:"planUpdates"`
	Confidence     float64  `json:"confidence"`
	StopReason     string   `json:"stopReason"`
}
