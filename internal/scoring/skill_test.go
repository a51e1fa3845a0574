package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-assessor/internal/analysis"
	"github.com/jonathan/candidate-assessor/internal/types"
)

func TestScoreSkill(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the analyzer result", func(t *testing.T) {
		analyzer := &stubAnalyzer{skills: &analysis.SkillAnalysis{
			Breakdown: types.SkillBreakdown{Sophistication: 20, StrategicThinking: 22, OutcomeOrientation: 25, LeadershipSignals: 18},
			Rationale: "well articulated",
		}}

		result, err := ScoreSkill(ctx, fullResponses(), analyzer)
		require.NoError(t, err)
		assert.Equal(t, 85, result.Breakdown.Total())
		assert.Equal(t, "well articulated", result.Rationale)
	})

	t.Run("analyzer error is fatal", func(t *testing.T) {
		analyzer := &stubAnalyzer{skillsErr: errors.New("model unavailable")}

		_, err := ScoreSkill(ctx, fullResponses(), analyzer)
		assert.ErrorContains(t, err, "model unavailable")
	})

	t.Run("nil analyzer is rejected", func(t *testing.T) {
		_, err := ScoreSkill(ctx, fullResponses(), nil)
		assert.Error(t, err)
	})
}
