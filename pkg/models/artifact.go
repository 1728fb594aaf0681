package models

import "time"

// Artifact types produced by the ingestor.
const (
	ArtifactTypePage     = "page"
	ArtifactTypeLlmsTxt  = "llms_txt"
	ArtifactTypeLlmsFull = "llms_full"
	ArtifactTypeSkill    = "skill"
)

// Artifact is one fetched document, keyed by (artifactType, sourceUrl).
type Artifact struct {
	ArtifactType string            `json:"artifactType"`
	SourceURL    string            `json:"sourceUrl"`
	Content      string            `json:"content"`
	ContentHash  string            `json:"contentHash"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// IngestResult is the ingestor's output for one docs URL.
type IngestResult struct {
	NormalizedDocsURL string     `json:"normalizedDocsUrl"`
	Artifacts         []Artifact `json:"artifacts"`
	LlmsText          string     `json:"llmsText,omitempty"`
	LlmsFullText      string     `json:"llmsFullText,omitempty"`
	SkillText         string     `json:"skillText,omitempty"`
	DiscoveredPages   []string   `json:"discoveredPages,omitempty"`
}

// SkillSessionStatus is the lifecycle state of a skill optimization session.
type SkillSessionStatus string

// Skill session statuses.
const (
	SkillSessionPending   SkillSessionStatus = "pending"
	SkillSessionGenerating SkillSessionStatus = "generating"
	SkillSessionCompleted SkillSessionStatus = "completed"
	SkillSessionSkipped   SkillSessionStatus = "skipped"
	SkillSessionError     SkillSessionStatus = "error"
)

// SkillSourceOrigin records where the baseline skill document came from.
type SkillSourceOrigin string

// Skill source origins.
const (
	SkillOriginSiteSkill SkillSourceOrigin = "site_skill"
	SkillOriginNone      SkillSourceOrigin = "none"
)

// SkillSession tracks the optional baseline/optimized comparison.
// Exactly one exists per run when optimization is enabled.
type SkillSession struct {
	RunID              string             `json:"runId"`
	Status             SkillSessionStatus `json:"status"`
	SourceSkillOrigin  SkillSourceOrigin  `json:"sourceSkillOrigin"`
	BaselineTotals     *Totals            `json:"baselineTotals,omitempty"`
	OptimizedTotals    *Totals            `json:"optimizedTotals,omitempty"`
	Delta              *Delta             `json:"delta,omitempty"`
	OptimizedSkillHash string             `json:"optimizedSkillHash,omitempty"`

	// Generation spend. Recorded on the session, not on the run cost
	// total, which stays the sum of execution costs.
	TokensIn     int     `json:"tokensIn,omitempty"`
	TokensOut    int     `json:"tokensOut,omitempty"`
	CostEstimate float64 `json:"costEstimate,omitempty"`

	ErrorMessage string    `json:"errorMessage,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
