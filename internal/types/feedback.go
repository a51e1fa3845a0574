package types

import (
	"time"

	"github.com/google/uuid"
)

// AI accuracy verdicts a reviewer can record against a result
const (
	AccuracyAccurate   = "accurate"
	AccuracyPartial    = "partially_accurate"
	AccuracyInaccurate = "inaccurate"
)

// CandidateFeedback is a reviewer's annotation on an analyzed assessment:
// whether the recommendation held up, what role was actually assigned, and
// later hiring/performance outcomes.
type CandidateFeedback struct {
	ID                 uuid.UUID  `json:"id"`
	AssessmentID       uuid.UUID  `json:"assessment_id"`
	ReviewerEmail      string     `json:"reviewer_email"`
	AIAccuracy         string     `json:"ai_accuracy" validate:"omitempty,oneof=accurate partially_accurate inaccurate"`
	RecommendedRoleWas string     `json:"recommended_role_was"`
	ActualRoleAssigned string     `json:"actual_role_assigned"`
	PerformanceRating  *int       `json:"performance_rating,omitempty" validate:"omitempty,min=1,max=5"`
	Hired              *bool      `json:"hired,omitempty"`
	HireDate           *time.Time `json:"hire_date,omitempty"`
	Notes              string     `json:"notes"`
	CreatedAt          time.Time  `json:"created_at"`
}

// ValidateFeedback checks enum and range constraints on a feedback record.
func ValidateFeedback(f *CandidateFeedback) error {
	return validate.Struct(f)
}
