package types

import (
	"time"

	"github.com/google/uuid"
)

// Quadrant names. Boundary values (exactly 70%) count as high on both axes.
const (
	QuadrantStar      = "Q1 - STAR"
	QuadrantWilling   = "Q2 - WILLING"
	QuadrantNotReady  = "Q3 - NOT READY"
	QuadrantReluctant = "Q4 - RELUCTANT"
)

// Maximum attainable raw totals for each composite score
const (
	WillMax  = 90
	SkillMax = 100
)

// WillBreakdown holds the four WILL sub-scores.
// q2 in [0,25], q3 in [0,25], q4 in [0,30], q5 in [0,20].
type WillBreakdown struct {
	Q2Commitment  int `json:"q2_commitment"`
	Q3Achievement int `json:"q3_achievement"`
	Q4Constraints int `json:"q4_constraints"`
	Q5Leadership  int `json:"q5_leadership"`
}

// Total returns the sum of the four sub-scores, in [0,90] by construction.
func (b WillBreakdown) Total() int {
	return b.Q2Commitment + b.Q3Achievement + b.Q4Constraints + b.Q5Leadership
}

// SkillBreakdown holds the four SKILL rubric dimensions, each in [0,25].
type SkillBreakdown struct {
	Sophistication     int `json:"sophistication"`
	StrategicThinking  int `json:"strategic_thinking"`
	OutcomeOrientation int `json:"outcome_orientation"`
	LeadershipSignals  int `json:"leadership_signals"`
}

// Total returns the sum of the four dimensions, in [0,100] by construction.
func (b SkillBreakdown) Total() int {
	return b.Sophistication + b.StrategicThinking + b.OutcomeOrientation + b.LeadershipSignals
}

// Recommendation is one role suggestion. The first entry of a recommendation
// list is surfaced as the recommended role.
type Recommendation struct {
	Role       string `json:"role"`
	Confidence int    `json:"confidence"`
	Reason     string `json:"reason"`
}

// KeyInsights summarizes coarse signals derived from the score breakdowns.
type KeyInsights struct {
	CommitmentLevel  string   `json:"commitment_level"`
	SkillReadiness   string   `json:"skill_readiness"`
	GrowthPotential  string   `json:"growth_potential"`
	Strengths        []string `json:"strengths"`
	DevelopmentAreas []string `json:"development_areas"`
}

// WillSection is the WILL half of a scoring breakdown.
type WillSection struct {
	Total     int           `json:"total"`
	Max       int           `json:"max"`
	Percent   int           `json:"percent"`
	Breakdown WillBreakdown `json:"breakdown"`
}

// SkillSection is the SKILL half of a scoring breakdown, including the
// analyzer's rationale text.
type SkillSection struct {
	Total     int            `json:"total"`
	Max       int            `json:"max"`
	Percent   int            `json:"percent"`
	Breakdown SkillBreakdown `json:"breakdown"`
	Rationale string         `json:"rationale"`
}

// ScoringBreakdown is the full per-sub-score detail persisted with a result.
type ScoringBreakdown struct {
	Will  WillSection  `json:"will"`
	Skill SkillSection `json:"skill"`
}

// AssessmentResult is the single write-once record produced by analyzing a
// completed assessment. Re-analysis creates a new record rather than
// mutating this one.
type AssessmentResult struct {
	ID               uuid.UUID        `json:"id"`
	AssessmentID     uuid.UUID        `json:"assessment_id"`
	WillScore        int              `json:"will_score"`
	SkillScore       int              `json:"skill_score"`
	Quadrant         string           `json:"quadrant"`
	RecommendedRole  string           `json:"recommended_role"`
	RoleExplanation  string           `json:"role_explanation"`
	VerticalMatches  []string         `json:"vertical_matches"`
	LeadershipStyle  string           `json:"leadership_style"`
	Recommendations  []Recommendation `json:"recommendations"`
	Reasoning        string           `json:"reasoning"`
	ScoringBreakdown ScoringBreakdown `json:"scoring_breakdown"`
	KeyInsights      KeyInsights      `json:"key_insights"`
	CreatedAt        time.Time        `json:"created_at"`
}
