package types

import (
	"time"

	"github.com/google/uuid"
)

// Assessment statuses
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusAnalyzed   = "analyzed"
)

// Assessment is one candidate's assessment session.
type Assessment struct {
	ID              uuid.UUID  `json:"id"`
	UserEmail       string     `json:"user_email"`
	Status          string     `json:"status"`
	CurrentQuestion int        `json:"current_question"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// Vertical is one entry in the externally-managed catalog of program areas
// a candidate can express interest in.
type Vertical struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}
