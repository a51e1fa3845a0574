package scoring

import (
	"github.com/jonathan/candidate-assessor/internal/types"
)

// Insight thresholds
const (
	levelHighPercent   = 70
	levelMediumPercent = 50
	growthHighTotal    = 75
	growthMediumTotal  = 50
	strengthThreshold  = 20
	weaknessThreshold  = 15
)

// level buckets a percentage into high/medium/low.
func level(percent, high, medium int) string {
	switch {
	case percent >= high:
		return "high"
	case percent >= medium:
		return "medium"
	default:
		return "low"
	}
}

// DeriveInsights derives the coarse key-insight summary from the score
// breakdowns: commitment/readiness levels, growth potential, and the fixed
// per-sub-score strength and development-area strings.
func DeriveInsights(will types.WillBreakdown, skill types.SkillBreakdown, willPercent, skillPercent int) types.KeyInsights {
	insights := types.KeyInsights{
		CommitmentLevel:  level(willPercent, levelHighPercent, levelMediumPercent),
		SkillReadiness:   level(skillPercent, levelHighPercent, levelMediumPercent),
		GrowthPotential:  level(skill.Total(), growthHighTotal, growthMediumTotal),
		Strengths:        []string{},
		DevelopmentAreas: []string{},
	}

	if will.Q2Commitment >= strengthThreshold {
		insights.Strengths = append(insights.Strengths, "Strong commitment to urgent needs")
	}
	if will.Q3Achievement >= strengthThreshold {
		insights.Strengths = append(insights.Strengths, "Clear goal-oriented mindset")
	}
	if skill.StrategicThinking >= strengthThreshold {
		insights.Strengths = append(insights.Strengths, "Strategic thinker")
	}
	if skill.LeadershipSignals >= strengthThreshold {
		insights.Strengths = append(insights.Strengths, "Natural leadership qualities")
	}

	if will.Q2Commitment < weaknessThreshold {
		insights.DevelopmentAreas = append(insights.DevelopmentAreas, "Build stronger commitment signals")
	}
	if skill.Sophistication < weaknessThreshold {
		insights.DevelopmentAreas = append(insights.DevelopmentAreas, "Enhance communication clarity")
	}
	if skill.OutcomeOrientation < weaknessThreshold {
		insights.DevelopmentAreas = append(insights.DevelopmentAreas, "Focus on measurable outcomes")
	}

	return insights
}
