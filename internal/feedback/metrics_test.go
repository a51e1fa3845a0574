package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/candidate-assessor/internal/db"
	"github.com/jonathan/candidate-assessor/internal/types"
)

func entry(accuracy, recommended, actual string) db.FeedbackContext {
	return db.FeedbackContext{
		Feedback: types.CandidateFeedback{
			AIAccuracy:         accuracy,
			RecommendedRoleWas: recommended,
			ActualRoleAssigned: actual,
		},
	}
}

func TestComputeMetrics(t *testing.T) {
	entries := []db.FeedbackContext{
		entry(types.AccuracyAccurate, "Co-Chair", "Co-Chair"),
		entry(types.AccuracyAccurate, "Team Lead", "Team Lead"),
		entry(types.AccuracyInaccurate, "Co-Chair", "Active Volunteer"),
		entry(types.AccuracyPartial, "Mentor", ""),
	}

	m := ComputeMetrics(entries)
	assert.Equal(t, 4, m.TotalFeedback)
	assert.Equal(t, 50, m.AccuracyRate, "2 of 4 accurate")
	assert.Equal(t, 25, m.OverrideRate, "1 of 4 assigned a different role")
	assert.False(t, m.AnalyzedAt.IsZero())
}

func TestComputeMetricsEmpty(t *testing.T) {
	m := ComputeMetrics(nil)
	assert.Equal(t, 0, m.TotalFeedback)
	assert.Equal(t, 0, m.AccuracyRate)
	assert.Equal(t, 0, m.OverrideRate)
}

func TestComputeMetricsUnassignedRoleIsNotOverride(t *testing.T) {
	entries := []db.FeedbackContext{
		entry(types.AccuracyPartial, "Co-Chair", ""),
	}
	m := ComputeMetrics(entries)
	assert.Equal(t, 0, m.OverrideRate, "no actual role assigned means no override")
}

func TestComputeMetricsRounding(t *testing.T) {
	entries := []db.FeedbackContext{
		entry(types.AccuracyAccurate, "a", "a"),
		entry(types.AccuracyInaccurate, "a", "a"),
		entry(types.AccuracyInaccurate, "a", "a"),
	}
	m := ComputeMetrics(entries)
	assert.Equal(t, 33, m.AccuracyRate, "1/3 rounds to 33")
}
