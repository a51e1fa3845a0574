package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-assessor/internal/analysis"
	"github.com/jonathan/candidate-assessor/internal/db"
	"github.com/jonathan/candidate-assessor/internal/types"
)

// fakeStore is an in-memory Store for pipeline tests.
type fakeStore struct {
	assessment    *types.Assessment
	assessmentErr error
	responses     types.ResponseSet
	verticalNames map[string]string

	saved     *types.AssessmentResult
	savedWith bool
	saveErr   error
}

func (f *fakeStore) GetAssessment(_ context.Context, _ uuid.UUID) (*types.Assessment, error) {
	return f.assessment, f.assessmentErr
}

func (f *fakeStore) GetResponses(_ context.Context, _ uuid.UUID) (types.ResponseSet, error) {
	return f.responses, nil
}

func (f *fakeStore) GetVerticalNames(_ context.Context, ids []string) ([]string, error) {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := f.verticalNames[id]; ok {
			names = append(names, name)
		}
	}
	return names, nil
}

func (f *fakeStore) SaveResult(_ context.Context, result *types.AssessmentResult, force bool) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = result
	f.savedWith = force
	return nil
}

// stubAnalyzer returns canned analyzer results.
type stubAnalyzer struct {
	commitment    *analysis.ScoreResult
	commitmentErr error
	skills        *analysis.SkillAnalysis
	skillsErr     error
	narrative     string
	narrativeErr  error

	narrativeInput analysis.NarrativeInput
}

func (s *stubAnalyzer) AnalyzeCommitment(context.Context, string) (*analysis.ScoreResult, error) {
	return s.commitment, s.commitmentErr
}

func (s *stubAnalyzer) AnalyzeSkills(context.Context, types.ResponseSet) (*analysis.SkillAnalysis, error) {
	return s.skills, s.skillsErr
}

func (s *stubAnalyzer) GenerateNarrative(_ context.Context, input analysis.NarrativeInput) (string, error) {
	s.narrativeInput = input
	return s.narrative, s.narrativeErr
}

func completedAssessment() *types.Assessment {
	return &types.Assessment{
		ID:        uuid.New(),
		UserEmail: "candidate@example.org",
		Status:    types.StatusCompleted,
	}
}

func fullResponses() types.ResponseSet {
	return types.ResponseSet{
		{QuestionNumber: types.QuestionVerticals, Payload: types.VerticalPriorities{Priority1: "v-climate", Priority2: "v-health"}},
		{QuestionNumber: types.QuestionCommitment, Payload: types.CommitmentText{Text: "Absolutely, I'm there!"}},
		{QuestionNumber: types.QuestionAchievement, Payload: types.AchievementText{Text: "trained 50 volunteers and launched 3 workshops"}},
		{QuestionNumber: types.QuestionConstraints, Payload: types.ConstraintChoice{Constraint: types.ConstraintNone}},
		{QuestionNumber: types.QuestionLeadership, Payload: types.LeadershipChoice{LeadershipStyle: types.StyleStrategic}},
	}
}

func happyAnalyzer() *stubAnalyzer {
	return &stubAnalyzer{
		commitment: &analysis.ScoreResult{Score: 25, Reasoning: "Immediate unconditional yes"},
		skills: &analysis.SkillAnalysis{
			Breakdown: types.SkillBreakdown{Sophistication: 20, StrategicThinking: 22, OutcomeOrientation: 25, LeadershipSignals: 18},
			Rationale: "Concrete and strategic answers",
		},
		narrative: "A strong candidate ready for leadership.",
	}
}

func TestAnalyzeHappyPath(t *testing.T) {
	store := &fakeStore{
		assessment: completedAssessment(),
		responses:  fullResponses(),
		verticalNames: map[string]string{
			"v-climate": "Climate Change",
			"v-health":  "Health",
		},
	}
	analyzer := happyAnalyzer()
	runner := NewRunner(store, analyzer, nil)

	result, err := runner.Analyze(context.Background(), store.assessment.ID, false)
	require.NoError(t, err)

	assert.Equal(t, 100, result.WillScore, "90/90 rounds to 100%")
	assert.Equal(t, 85, result.SkillScore)
	assert.Equal(t, types.QuadrantStar, result.Quadrant)
	assert.Equal(t, "Co-Chair", result.RecommendedRole, "STAR/strategic leads with Co-Chair")
	assert.Equal(t, types.StyleStrategic, result.LeadershipStyle)
	assert.Equal(t, []string{"v-climate", "v-health"}, result.VerticalMatches, "raw IDs are persisted, not display names")
	assert.Equal(t, "A strong candidate ready for leadership.", result.Reasoning)

	assert.Equal(t, 90, result.ScoringBreakdown.Will.Total)
	assert.Equal(t, types.WillMax, result.ScoringBreakdown.Will.Max)
	assert.Equal(t, 85, result.ScoringBreakdown.Skill.Total)
	assert.Equal(t, "Concrete and strategic answers", result.ScoringBreakdown.Skill.Rationale)

	assert.Equal(t, "high", result.KeyInsights.CommitmentLevel)
	assert.Contains(t, result.KeyInsights.Strengths, "Strong commitment to urgent needs")

	require.NotNil(t, store.saved, "result must be persisted")
	assert.False(t, store.savedWith)

	assert.Equal(t, []string{"Climate Change", "Health"}, analyzer.narrativeInput.Verticals,
		"narrative sees display names")
	assert.Equal(t, types.QuadrantStar, analyzer.narrativeInput.Quadrant)
}

func TestAnalyzeNotFound(t *testing.T) {
	store := &fakeStore{}
	runner := NewRunner(store, happyAnalyzer(), nil)

	_, err := runner.Analyze(context.Background(), uuid.New(), false)
	assert.ErrorIs(t, err, ErrAssessmentNotFound)
	assert.Nil(t, store.saved)
}

func TestAnalyzeIncomplete(t *testing.T) {
	store := &fakeStore{
		assessment: completedAssessment(),
		responses:  fullResponses()[:4],
	}
	runner := NewRunner(store, happyAnalyzer(), nil)

	_, err := runner.Analyze(context.Background(), store.assessment.ID, false)
	assert.ErrorIs(t, err, ErrIncompleteAssessment)
	assert.Nil(t, store.saved, "nothing is persisted for an incomplete assessment")
}

func TestAnalyzeSkillFailureAborts(t *testing.T) {
	store := &fakeStore{
		assessment: completedAssessment(),
		responses:  fullResponses(),
	}
	analyzer := happyAnalyzer()
	analyzer.skillsErr = errors.New("model unavailable")
	runner := NewRunner(store, analyzer, nil)

	_, err := runner.Analyze(context.Background(), store.assessment.ID, false)
	assert.ErrorContains(t, err, "model unavailable")
	assert.Nil(t, store.saved, "a failed skill analysis must not persist a result")
}

func TestAnalyzeCommitmentFailureFallsBack(t *testing.T) {
	store := &fakeStore{
		assessment: completedAssessment(),
		responses:  fullResponses(),
	}
	analyzer := happyAnalyzer()
	analyzer.commitment = nil
	analyzer.commitmentErr = errors.New("model unavailable")
	runner := NewRunner(store, analyzer, nil)

	result, err := runner.Analyze(context.Background(), store.assessment.ID, false)
	require.NoError(t, err, "commitment failure is absorbed by the keyword fallback")
	assert.Equal(t, 25, result.ScoringBreakdown.Will.Breakdown.Q2Commitment)
}

func TestAnalyzeNarrativeFailureAborts(t *testing.T) {
	store := &fakeStore{
		assessment: completedAssessment(),
		responses:  fullResponses(),
	}
	analyzer := happyAnalyzer()
	analyzer.narrativeErr = errors.New("timeout")
	runner := NewRunner(store, analyzer, nil)

	_, err := runner.Analyze(context.Background(), store.assessment.ID, false)
	assert.ErrorContains(t, err, "timeout")
	assert.Nil(t, store.saved)
}

func TestAnalyzeAlreadyAnalyzed(t *testing.T) {
	store := &fakeStore{
		assessment: completedAssessment(),
		responses:  fullResponses(),
		saveErr:    db.ErrAlreadyAnalyzed,
	}
	runner := NewRunner(store, happyAnalyzer(), nil)

	_, err := runner.Analyze(context.Background(), store.assessment.ID, false)
	assert.ErrorIs(t, err, ErrAlreadyAnalyzed)
}

func TestAnalyzeForceIsPassedToStore(t *testing.T) {
	store := &fakeStore{
		assessment:    completedAssessment(),
		responses:     fullResponses(),
		verticalNames: map[string]string{"v-climate": "Climate Change"},
	}
	runner := NewRunner(store, happyAnalyzer(), nil)

	_, err := runner.Analyze(context.Background(), store.assessment.ID, true)
	require.NoError(t, err)
	assert.True(t, store.savedWith)
}

func TestAnalyzeUnresolvedVerticalsUseGenericRole(t *testing.T) {
	store := &fakeStore{
		assessment: completedAssessment(),
		responses:  fullResponses(),
	}
	analyzer := happyAnalyzer()
	runner := NewRunner(store, analyzer, nil)

	result, err := runner.Analyze(context.Background(), store.assessment.ID, false)
	require.NoError(t, err)
	for _, rec := range result.Recommendations {
		assert.NotContains(t, rec.Role, "{{vertical}}")
	}
	assert.Contains(t, result.Recommendations[1].Role, "General",
		"unresolvable vertical IDs fall back to the generic label")
}
