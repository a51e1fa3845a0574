// Package scoring implements the WILL/SKILL scoring engine: rule-based
// sub-scores, percentage normalization, quadrant classification, the role
// recommendation table, and key-insight derivation.
package scoring

import (
	"context"
	"math"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/candidate-assessor/internal/analysis"
	"github.com/jonathan/candidate-assessor/internal/types"
)

// Sub-score caps
const (
	commitmentMax  = 25
	achievementMax = 25
	constraintsMax = 30
	leadershipMax  = 20
)

// Text-feature patterns for the achievement rule
var (
	numberPattern  = regexp.MustCompile(`\d+`)
	actionPattern  = regexp.MustCompile(`(?i)\b(built|launched|created|trained|achieved|completed|delivered)\b`)
	hedgingPattern = regexp.MustCompile(`(?i)\b(try|hopefully|maybe|might|should)\b`)
)

// WillResult pairs the WILL breakdown with the commitment rationale, which
// is logged but not persisted separately.
type WillResult struct {
	Breakdown           types.WillBreakdown
	CommitmentReasoning string
}

// ScoreWill computes the four WILL sub-scores over a response set.
// A missing response yields 0 for its sub-score rather than failing the
// computation. Only the commitment sub-score calls the analyzer; its
// failure is absorbed by the keyword fallback.
func ScoreWill(ctx context.Context, responses types.ResponseSet, analyzer analysis.Analyzer, logger *zap.Logger) WillResult {
	var result WillResult

	if r := responses.ByQuestion(types.QuestionCommitment); r != nil {
		if p, ok := r.Payload.(types.CommitmentText); ok {
			score := scoreCommitment(ctx, p.Text, analyzer, logger)
			result.Breakdown.Q2Commitment = score.Score
			result.CommitmentReasoning = score.Reasoning
		}
	}

	if r := responses.ByQuestion(types.QuestionAchievement); r != nil {
		if p, ok := r.Payload.(types.AchievementText); ok {
			result.Breakdown.Q3Achievement = scoreAchievement(p.Text)
		}
	}

	if r := responses.ByQuestion(types.QuestionConstraints); r != nil {
		if p, ok := r.Payload.(types.ConstraintChoice); ok {
			result.Breakdown.Q4Constraints = scoreConstraints(p)
		}
	}

	if r := responses.ByQuestion(types.QuestionLeadership); r != nil {
		if p, ok := r.Payload.(types.LeadershipChoice); ok {
			result.Breakdown.Q5Leadership = scoreLeadership(p.LeadershipStyle)
		}
	}

	return result
}

// scoreCommitment scores Q2 via the analyzer, falling back to keyword
// matching when the analyzer is unavailable or returns garbage.
func scoreCommitment(ctx context.Context, text string, analyzer analysis.Analyzer, logger *zap.Logger) *analysis.ScoreResult {
	if analyzer != nil {
		result, err := analyzer.AnalyzeCommitment(ctx, text)
		if err == nil {
			return result
		}
		if logger != nil {
			logger.Warn("commitment analysis failed, using keyword fallback", zap.Error(err))
		}
	}
	return analysis.ScoreCommitmentKeywords(text)
}

// scoreAchievement applies the deterministic text-feature rule to the
// "by December I will have..." answer: number AND action verb AND no
// hedging scores full marks.
func scoreAchievement(text string) int {
	hasNumber := numberPattern.MatchString(text)
	hasAction := actionPattern.MatchString(text)
	hasHedging := hedgingPattern.MatchString(text)

	switch {
	case hasNumber && hasAction && !hasHedging:
		return 25
	case hasNumber || hasAction:
		return 15
	default:
		return 5
	}
}

// scoreConstraints scores Q4 from the selected constraint category plus a
// +10 bonus for a substantive handling plan. Clamped at 30.
func scoreConstraints(p types.ConstraintChoice) int {
	var base int
	switch p.Constraint {
	case types.ConstraintNone:
		base = 20
	case types.ConstraintTime:
		base = 15
	case types.ConstraintExpectations:
		base = 10
	default:
		base = 5
	}

	if len(strings.TrimSpace(p.Handling)) > 10 {
		base += 10
	}
	if base > constraintsMax {
		base = constraintsMax
	}
	return base
}

// scoreLeadership scores Q5 from the selected leadership style.
// Unrecognized styles score 0.
func scoreLeadership(style string) int {
	switch style {
	case types.StyleLeader, types.StyleStrategic:
		return 20
	case types.StyleDoer:
		return 15
	case types.StyleLearning:
		return 10
	default:
		return 0
	}
}

// Percent normalizes a raw total against its maximum to a rounded
// percentage in [0,100].
func Percent(total, max int) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(max) * 100))
}
