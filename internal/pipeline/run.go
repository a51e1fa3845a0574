// Package pipeline orchestrates the analysis of a completed assessment:
// scoring, classification, recommendation, narrative, and persistence.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/candidate-assessor/internal/analysis"
	"github.com/jonathan/candidate-assessor/internal/db"
	"github.com/jonathan/candidate-assessor/internal/scoring"
	"github.com/jonathan/candidate-assessor/internal/types"
)

// Pipeline errors
var (
	// ErrIncompleteAssessment indicates fewer than five responses exist.
	// The caller may retry once all responses are present.
	ErrIncompleteAssessment = errors.New("incomplete assessment - need all 5 responses")

	// Store errors re-exported for callers that only import this package.
	ErrAssessmentNotFound = db.ErrAssessmentNotFound
	ErrAlreadyAnalyzed    = db.ErrAlreadyAnalyzed
)

// Store is the persistence surface the pipeline needs. *db.DB satisfies it;
// tests inject a fake.
type Store interface {
	GetAssessment(ctx context.Context, id uuid.UUID) (*types.Assessment, error)
	GetResponses(ctx context.Context, assessmentID uuid.UUID) (types.ResponseSet, error)
	GetVerticalNames(ctx context.Context, ids []string) ([]string, error)
	SaveResult(ctx context.Context, result *types.AssessmentResult, force bool) error
}

// Runner executes the analysis pipeline for one assessment at a time.
// Analyses of different assessments are independent and need no locking.
type Runner struct {
	store    Store
	analyzer analysis.Analyzer
	logger   *zap.Logger
}

// NewRunner creates a pipeline runner
func NewRunner(store Store, analyzer analysis.Analyzer, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{store: store, analyzer: analyzer, logger: logger}
}

// Analyze runs the full pipeline for an assessment and persists one result
// record. The pipeline is linear: any stage's failure aborts the analysis
// and nothing is persisted, leaving the assessment retryable. When force is
// set, a prior result is replaced; otherwise ErrAlreadyAnalyzed is returned
// for an already-analyzed assessment.
func (r *Runner) Analyze(ctx context.Context, assessmentID uuid.UUID, force bool) (*types.AssessmentResult, error) {
	logger := r.logger.With(zap.String("assessment_id", assessmentID.String()))

	assessment, err := r.store.GetAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}

	responses, err := r.store.GetResponses(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if !responses.Complete() {
		logger.Warn("incomplete assessment", zap.Int("responses", len(responses)))
		return nil, ErrIncompleteAssessment
	}

	// The WILL commitment call and the SKILL rubric call hit the analyzer
	// independently, so they run concurrently. A skill failure cancels the
	// group and aborts the analysis; WILL scoring itself cannot fail.
	var (
		willResult    scoring.WillResult
		skillAnalysis *analysis.SkillAnalysis
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		willResult = scoring.ScoreWill(gctx, responses, r.analyzer, logger)
		return nil
	})
	g.Go(func() error {
		var err error
		skillAnalysis, err = scoring.ScoreSkill(gctx, responses, r.analyzer)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	willTotal := willResult.Breakdown.Total()
	skillTotal := skillAnalysis.Breakdown.Total()
	willPercent := scoring.Percent(willTotal, types.WillMax)
	skillPercent := scoring.Percent(skillTotal, types.SkillMax)
	quadrant := scoring.Classify(willPercent, skillPercent)

	logger.Info("scores computed",
		zap.Int("will_total", willTotal),
		zap.Int("will_percent", willPercent),
		zap.Int("skill_total", skillTotal),
		zap.Int("skill_percent", skillPercent),
		zap.String("quadrant", quadrant),
	)

	verticalIDs := responses.Verticals()
	verticalNames, err := r.store.GetVerticalNames(ctx, verticalIDs)
	if err != nil {
		return nil, err
	}
	leadershipStyle := responses.LeadershipStyle()

	recommendations := scoring.Recommend(quadrant, verticalNames, leadershipStyle)
	if len(recommendations) == 0 {
		return nil, fmt.Errorf("recommendation table produced no roles for quadrant %q", quadrant)
	}
	roles := make([]string, len(recommendations))
	for i, rec := range recommendations {
		roles[i] = rec.Role
	}

	reasoning, err := r.analyzer.GenerateNarrative(ctx, analysis.NarrativeInput{
		WillPercent:     willPercent,
		SkillPercent:    skillPercent,
		Quadrant:        quadrant,
		Verticals:       verticalNames,
		LeadershipStyle: leadershipStyle,
		Roles:           roles,
	})
	if err != nil {
		return nil, err
	}

	result := &types.AssessmentResult{
		AssessmentID:    assessmentID,
		WillScore:       willPercent,
		SkillScore:      skillPercent,
		Quadrant:        quadrant,
		RecommendedRole: recommendations[0].Role,
		RoleExplanation: recommendations[0].Reason,
		VerticalMatches: verticalIDs,
		LeadershipStyle: leadershipStyle,
		Recommendations: recommendations,
		Reasoning:       reasoning,
		ScoringBreakdown: types.ScoringBreakdown{
			Will: types.WillSection{
				Total:     willTotal,
				Max:       types.WillMax,
				Percent:   willPercent,
				Breakdown: willResult.Breakdown,
			},
			Skill: types.SkillSection{
				Total:     skillTotal,
				Max:       types.SkillMax,
				Percent:   skillPercent,
				Breakdown: skillAnalysis.Breakdown,
				Rationale: skillAnalysis.Rationale,
			},
		},
		KeyInsights: scoring.DeriveInsights(
			willResult.Breakdown, skillAnalysis.Breakdown, willPercent, skillPercent),
	}

	if err := r.store.SaveResult(ctx, result, force); err != nil {
		return nil, err
	}

	logger.Info("analysis complete",
		zap.String("quadrant", quadrant),
		zap.String("recommended_role", result.RecommendedRole),
	)
	return result, nil
}
