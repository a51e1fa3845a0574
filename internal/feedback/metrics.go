// Package feedback computes validation metrics over reviewer feedback and
// runs the AI aggregation pass that suggests scoring improvements.
package feedback

import (
	"math"
	"time"

	"github.com/jonathan/candidate-assessor/internal/db"
	"github.com/jonathan/candidate-assessor/internal/types"
)

// Metrics summarizes how well the scoring engine's recommendations held up
// against reviewer verdicts and actual role assignments.
type Metrics struct {
	TotalFeedback int       `json:"total_feedback"`
	AccuracyRate  int       `json:"accuracy_rate"`
	OverrideRate  int       `json:"override_rate"`
	AnalyzedAt    time.Time `json:"analyzed_at"`
}

// ComputeMetrics derives accuracy and override rates from feedback entries.
// An override is an actual role assignment that differs from the role the
// engine recommended.
func ComputeMetrics(entries []db.FeedbackContext) Metrics {
	m := Metrics{
		TotalFeedback: len(entries),
		AnalyzedAt:    time.Now().UTC(),
	}
	if len(entries) == 0 {
		return m
	}

	accurate := 0
	overrides := 0
	for _, e := range entries {
		if e.Feedback.AIAccuracy == types.AccuracyAccurate {
			accurate++
		}
		if e.Feedback.ActualRoleAssigned != "" &&
			e.Feedback.ActualRoleAssigned != e.Feedback.RecommendedRoleWas {
			overrides++
		}
	}

	m.AccuracyRate = roundRate(accurate, len(entries))
	m.OverrideRate = roundRate(overrides, len(entries))
	return m
}

func roundRate(count, total int) int {
	return int(math.Round(float64(count) / float64(total) * 100))
}
