package feedback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-assessor/internal/db"
	"github.com/jonathan/candidate-assessor/internal/llm"
	"github.com/jonathan/candidate-assessor/internal/types"
)

type stubClient struct {
	response string
	err      error

	lastPrompt string
	lastTier   llm.ModelTier
}

func (s *stubClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	s.lastPrompt = prompt
	s.lastTier = tier
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	s.lastPrompt = prompt
	s.lastTier = tier
	return s.response, s.err
}

func (s *stubClient) GetModel(llm.ModelTier) string { return "stub-model" }
func (s *stubClient) Close() error                  { return nil }

func sampleEntries() []db.FeedbackContext {
	return []db.FeedbackContext{
		{
			Feedback: types.CandidateFeedback{
				ReviewerEmail:      "reviewer@example.org",
				AIAccuracy:         types.AccuracyAccurate,
				RecommendedRoleWas: "Co-Chair",
				ActualRoleAssigned: "Co-Chair",
			},
			UserEmail:  "candidate@example.org",
			WillScore:  90,
			SkillScore: 85,
			Quadrant:   types.QuadrantStar,
		},
	}
}

func TestGenerateInsights(t *testing.T) {
	client := &stubClient{response: `{"recommended_actions": ["tighten the commitment rubric"]}`}

	report, err := GenerateInsights(context.Background(), sampleEntries(), client)
	require.NoError(t, err)

	assert.Equal(t, 1, report.FeedbackCount)
	assert.Equal(t, 100, report.Metrics.AccuracyRate)
	assert.Equal(t, llm.TierAdvanced, client.lastTier)
	assert.Contains(t, client.lastPrompt, "candidate@example.org", "feedback data appears in the prompt")

	actions, ok := report.Insights["recommended_actions"].([]any)
	require.True(t, ok)
	assert.Equal(t, "tighten the commitment rubric", actions[0])
}

func TestGenerateInsightsNonJSONOutput(t *testing.T) {
	client := &stubClient{response: "The model rambled instead of returning JSON."}

	report, err := GenerateInsights(context.Background(), sampleEntries(), client)
	require.NoError(t, err, "non-JSON output is preserved, not fatal")

	assert.Equal(t, "The model rambled instead of returning JSON.", report.Insights["raw_analysis"])
	assert.NotEmpty(t, report.Insights["parsing_note"])
}

func TestGenerateInsightsClientError(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}

	_, err := GenerateInsights(context.Background(), sampleEntries(), client)
	assert.ErrorContains(t, err, "quota exceeded")
}
