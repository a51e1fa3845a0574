package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/candidate-assessor/internal/types"
)

// CreateFeedback stores a reviewer's annotation on an analyzed assessment
func (db *DB) CreateFeedback(ctx context.Context, f *types.CandidateFeedback) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidate_feedback
		   (assessment_id, reviewer_email, ai_accuracy, recommended_role_was,
		    actual_role_assigned, performance_rating, hired, hire_date, notes)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at`,
		f.AssessmentID, f.ReviewerEmail, f.AIAccuracy, f.RecommendedRoleWas,
		f.ActualRoleAssigned, f.PerformanceRating, f.Hired, f.HireDate, f.Notes,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// ListFeedback retrieves feedback records, optionally for one assessment
func (db *DB) ListFeedback(ctx context.Context, assessmentID uuid.UUID) ([]types.CandidateFeedback, error) {
	query := `SELECT id, assessment_id, reviewer_email, COALESCE(ai_accuracy, ''),
	                 recommended_role_was, actual_role_assigned, performance_rating,
	                 hired, hire_date, notes, created_at
	          FROM candidate_feedback`
	args := []any{}
	if assessmentID != uuid.Nil {
		query += ` WHERE assessment_id = $1`
		args = append(args, assessmentID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	var feedback []types.CandidateFeedback
	for rows.Next() {
		var f types.CandidateFeedback
		if err := rows.Scan(&f.ID, &f.AssessmentID, &f.ReviewerEmail, &f.AIAccuracy,
			&f.RecommendedRoleWas, &f.ActualRoleAssigned, &f.PerformanceRating,
			&f.Hired, &f.HireDate, &f.Notes, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		feedback = append(feedback, f)
	}
	return feedback, nil
}

// FeedbackContext is one feedback record joined with the scores it judged,
// used by the feedback insight analysis.
type FeedbackContext struct {
	Feedback   types.CandidateFeedback `json:"feedback"`
	UserEmail  string                  `json:"user_email"`
	WillScore  int                     `json:"will_score"`
	SkillScore int                     `json:"skill_score"`
	Quadrant   string                  `json:"quadrant"`
}

// ListFeedbackWithResults joins feedback with the result each record judged.
// Feedback on assessments whose result was since removed is excluded.
func (db *DB) ListFeedbackWithResults(ctx context.Context) ([]FeedbackContext, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT f.id, f.assessment_id, f.reviewer_email, COALESCE(f.ai_accuracy, ''),
		        f.recommended_role_was, f.actual_role_assigned, f.performance_rating,
		        f.hired, f.hire_date, f.notes, f.created_at,
		        a.user_email, r.will_score, r.skill_score, r.quadrant
		 FROM candidate_feedback f
		 JOIN assessments a ON a.id = f.assessment_id
		 JOIN assessment_results r ON r.assessment_id = f.assessment_id
		 ORDER BY f.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback with results: %w", err)
	}
	defer rows.Close()

	var out []FeedbackContext
	for rows.Next() {
		var fc FeedbackContext
		if err := rows.Scan(&fc.Feedback.ID, &fc.Feedback.AssessmentID,
			&fc.Feedback.ReviewerEmail, &fc.Feedback.AIAccuracy,
			&fc.Feedback.RecommendedRoleWas, &fc.Feedback.ActualRoleAssigned,
			&fc.Feedback.PerformanceRating, &fc.Feedback.Hired, &fc.Feedback.HireDate,
			&fc.Feedback.Notes, &fc.Feedback.CreatedAt,
			&fc.UserEmail, &fc.WillScore, &fc.SkillScore, &fc.Quadrant); err != nil {
			return nil, fmt.Errorf("failed to scan feedback context: %w", err)
		}
		out = append(out, fc)
	}
	return out, nil
}
