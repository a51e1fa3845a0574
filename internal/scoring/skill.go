package scoring

import (
	"context"
	"fmt"

	"github.com/jonathan/candidate-assessor/internal/analysis"
	"github.com/jonathan/candidate-assessor/internal/types"
)

// ScoreSkill runs the four-dimension skill rubric over the full response
// set in one analyzer call. Unlike the commitment sub-score there is no
// numeric fallback here: analyzer failure or malformed output aborts the
// whole analysis (fail-closed).
func ScoreSkill(ctx context.Context, responses types.ResponseSet, analyzer analysis.Analyzer) (*analysis.SkillAnalysis, error) {
	if analyzer == nil {
		return nil, fmt.Errorf("skill scoring requires an analyzer")
	}
	result, err := analyzer.AnalyzeSkills(ctx, responses)
	if err != nil {
		return nil, fmt.Errorf("skill scoring failed: %w", err)
	}
	return result, nil
}
