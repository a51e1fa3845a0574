package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/candidate-assessor/internal/types"
)

// SaveResponse upserts the response for one question of an in-progress
// assessment. The payload must already be validated by the caller.
// Responses become immutable once the assessment leaves in_progress.
func (db *DB) SaveResponse(ctx context.Context, assessmentID uuid.UUID, questionNumber int, payload types.Payload) error {
	a, err := db.GetAssessment(ctx, assessmentID)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrAssessmentNotFound
	}
	if a.Status != types.StatusInProgress {
		return ErrResponsesLocked
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal response payload: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO assessment_responses (assessment_id, question_number, response_data)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (assessment_id, question_number)
		 DO UPDATE SET response_data = $3, created_at = NOW()`,
		assessmentID, questionNumber, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save response: %w", err)
	}
	return nil
}

// GetResponses retrieves and parses all responses for an assessment, in
// question order. Rows whose payload no longer parses are rejected rather
// than silently skipped.
func (db *DB) GetResponses(ctx context.Context, assessmentID uuid.UUID) (types.ResponseSet, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT question_number, response_data
		 FROM assessment_responses
		 WHERE assessment_id = $1
		 ORDER BY question_number`,
		assessmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	var responses types.ResponseSet
	for rows.Next() {
		var questionNumber int
		var raw json.RawMessage
		if err := rows.Scan(&questionNumber, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		payload, err := types.ParsePayload(questionNumber, raw)
		if err != nil {
			return nil, fmt.Errorf("stored response is invalid: %w", err)
		}
		responses = append(responses, types.Response{
			QuestionNumber: questionNumber,
			Payload:        payload,
		})
	}
	return responses, nil
}
