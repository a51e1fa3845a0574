package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/candidate-assessor/internal/types"
)

// SaveResult persists one result record and marks the parent assessment
// analyzed, in a single transaction. When force is set, any prior result is
// deleted first (re-analysis); otherwise a prior result causes
// ErrAlreadyAnalyzed and nothing is written.
func (db *DB) SaveResult(ctx context.Context, result *types.AssessmentResult, force bool) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if force {
		if _, err := tx.Exec(ctx,
			`DELETE FROM assessment_results WHERE assessment_id = $1`,
			result.AssessmentID,
		); err != nil {
			return fmt.Errorf("failed to delete prior result: %w", err)
		}
	}

	verticalMatches, err := json.Marshal(result.VerticalMatches)
	if err != nil {
		return fmt.Errorf("failed to marshal vertical matches: %w", err)
	}
	recommendations, err := json.Marshal(result.Recommendations)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	breakdown, err := json.Marshal(result.ScoringBreakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal scoring breakdown: %w", err)
	}
	insights, err := json.Marshal(result.KeyInsights)
	if err != nil {
		return fmt.Errorf("failed to marshal key insights: %w", err)
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO assessment_results
		   (assessment_id, will_score, skill_score, quadrant, recommended_role,
		    role_explanation, vertical_matches, leadership_style, recommendations,
		    reasoning, scoring_breakdown, key_insights)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at`,
		result.AssessmentID, result.WillScore, result.SkillScore, result.Quadrant,
		result.RecommendedRole, result.RoleExplanation, verticalMatches,
		result.LeadershipStyle, recommendations, result.Reasoning, breakdown, insights,
	).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyAnalyzed
		}
		return fmt.Errorf("failed to insert result: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE assessments SET status = $1, completed_at = COALESCE(completed_at, NOW())
		 WHERE id = $2`,
		types.StatusAnalyzed, result.AssessmentID,
	); err != nil {
		return fmt.Errorf("failed to mark assessment analyzed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit result: %w", err)
	}
	return nil
}

// GetResultByAssessment retrieves the result for an assessment.
// Returns nil when the assessment has not been analyzed.
func (db *DB) GetResultByAssessment(ctx context.Context, assessmentID uuid.UUID) (*types.AssessmentResult, error) {
	var r types.AssessmentResult
	var verticalMatches, recommendations, breakdown, insights []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, assessment_id, will_score, skill_score, quadrant, recommended_role,
		        role_explanation, vertical_matches, leadership_style, recommendations,
		        reasoning, scoring_breakdown, key_insights, created_at
		 FROM assessment_results WHERE assessment_id = $1`,
		assessmentID,
	).Scan(&r.ID, &r.AssessmentID, &r.WillScore, &r.SkillScore, &r.Quadrant,
		&r.RecommendedRole, &r.RoleExplanation, &verticalMatches, &r.LeadershipStyle,
		&recommendations, &r.Reasoning, &breakdown, &insights, &r.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	if err := json.Unmarshal(verticalMatches, &r.VerticalMatches); err != nil {
		return nil, fmt.Errorf("failed to parse vertical matches: %w", err)
	}
	if err := json.Unmarshal(recommendations, &r.Recommendations); err != nil {
		return nil, fmt.Errorf("failed to parse recommendations: %w", err)
	}
	if err := json.Unmarshal(breakdown, &r.ScoringBreakdown); err != nil {
		return nil, fmt.Errorf("failed to parse scoring breakdown: %w", err)
	}
	if err := json.Unmarshal(insights, &r.KeyInsights); err != nil {
		return nil, fmt.Errorf("failed to parse key insights: %w", err)
	}

	return &r, nil
}

// DeleteResult removes the result for an assessment and reverts its status
// to completed. Returns false when no result existed.
func (db *DB) DeleteResult(ctx context.Context, assessmentID uuid.UUID) (bool, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	result, err := tx.Exec(ctx,
		`DELETE FROM assessment_results WHERE assessment_id = $1`, assessmentID)
	if err != nil {
		return false, fmt.Errorf("failed to delete result: %w", err)
	}
	if result.RowsAffected() == 0 {
		return false, nil
	}

	if _, err := tx.Exec(ctx,
		`UPDATE assessments SET status = $1 WHERE id = $2 AND status = $3`,
		types.StatusCompleted, assessmentID, types.StatusAnalyzed,
	); err != nil {
		return false, fmt.Errorf("failed to revert assessment status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit: %w", err)
	}
	return true, nil
}
