// Package analysis implements the text signal analyzer: AI-assisted scoring
// of free-text answers against fixed rubrics, plus narrative generation.
package analysis

import (
	"context"

	"github.com/jonathan/candidate-assessor/internal/types"
)

// ScoreResult is a single bounded sub-score with a short rationale.
type ScoreResult struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// SkillAnalysis is the four-dimension skill rubric result over a full
// response set.
type SkillAnalysis struct {
	Breakdown types.SkillBreakdown
	Rationale string
}

// NarrativeInput carries the full scoring context for narrative generation.
type NarrativeInput struct {
	WillPercent     int
	SkillPercent    int
	Quadrant        string
	Verticals       []string
	LeadershipStyle string
	Roles           []string
}

// Analyzer scores free text against fixed rubrics and synthesizes the
// candidate-facing narrative. Implementations may call an external model;
// tests inject a deterministic stub.
type Analyzer interface {
	// AnalyzeCommitment scores the Saturday-scenario answer 0-25.
	AnalyzeCommitment(ctx context.Context, text string) (*ScoreResult, error)
	// AnalyzeSkills scores all five responses on the four-dimension rubric.
	AnalyzeSkills(ctx context.Context, responses types.ResponseSet) (*SkillAnalysis, error)
	// GenerateNarrative produces the two-paragraph candidate explanation.
	GenerateNarrative(ctx context.Context, input NarrativeInput) (string, error)
}
