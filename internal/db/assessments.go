package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/candidate-assessor/internal/types"
)

// CreateAssessment creates a new in-progress assessment for a candidate email
func (db *DB) CreateAssessment(ctx context.Context, userEmail string) (*types.Assessment, error) {
	var a types.Assessment
	err := db.pool.QueryRow(ctx,
		`INSERT INTO assessments (user_email)
		 VALUES ($1)
		 RETURNING id, user_email, status, current_question, created_at, completed_at`,
		userEmail,
	).Scan(&a.ID, &a.UserEmail, &a.Status, &a.CurrentQuestion, &a.CreatedAt, &a.CompletedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}
	return &a, nil
}

// GetAssessment retrieves an assessment by ID. Returns nil when not found.
func (db *DB) GetAssessment(ctx context.Context, id uuid.UUID) (*types.Assessment, error) {
	var a types.Assessment
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_email, status, current_question, created_at, completed_at
		 FROM assessments WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.UserEmail, &a.Status, &a.CurrentQuestion, &a.CreatedAt, &a.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	return &a, nil
}

// CompleteAssessment transitions an in-progress assessment to completed,
// freezing its responses. Returns false when the assessment was not in
// progress (already completed or analyzed).
func (db *DB) CompleteAssessment(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE assessments SET status = $1, completed_at = NOW()
		 WHERE id = $2 AND status = $3`,
		types.StatusCompleted, id, types.StatusInProgress,
	)
	if err != nil {
		return false, fmt.Errorf("failed to complete assessment: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// SetCurrentQuestion records the candidate's progress through the form
func (db *DB) SetCurrentQuestion(ctx context.Context, id uuid.UUID, question int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE assessments SET current_question = $1 WHERE id = $2`,
		question, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update current question: %w", err)
	}
	return nil
}

// Candidate is one row of the reviewer-facing candidate listing: the
// assessment joined with its result summary when analyzed.
type Candidate struct {
	Assessment      types.Assessment `json:"assessment"`
	WillScore       *int             `json:"will_score,omitempty"`
	SkillScore      *int             `json:"skill_score,omitempty"`
	Quadrant        *string          `json:"quadrant,omitempty"`
	RecommendedRole *string          `json:"recommended_role,omitempty"`
}

// CandidateFilters holds optional filters for the candidate listing
type CandidateFilters struct {
	Status   string
	Quadrant string
	Search   string // matched against user_email, case-insensitive
	Limit    int
	Offset   int
}

// ListCandidates retrieves assessments with result summaries, newest first
func (db *DB) ListCandidates(ctx context.Context, filters CandidateFilters) ([]Candidate, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT a.id, a.user_email, a.status, a.current_question, a.created_at, a.completed_at,
	                 r.will_score, r.skill_score, r.quadrant, r.recommended_role
	          FROM assessments a
	          LEFT JOIN assessment_results r ON r.assessment_id = a.id
	          WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Status != "" {
		query += fmt.Sprintf(" AND a.status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}
	if filters.Quadrant != "" {
		query += fmt.Sprintf(" AND r.quadrant = $%d", argNum)
		args = append(args, filters.Quadrant)
		argNum++
	}
	if filters.Search != "" {
		query += fmt.Sprintf(" AND a.user_email ILIKE $%d", argNum)
		args = append(args, "%"+filters.Search+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filters.Limit, filters.Offset)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(
			&c.Assessment.ID, &c.Assessment.UserEmail, &c.Assessment.Status,
			&c.Assessment.CurrentQuestion, &c.Assessment.CreatedAt, &c.Assessment.CompletedAt,
			&c.WillScore, &c.SkillScore, &c.Quadrant, &c.RecommendedRole,
		); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}
