package db

import (
	"context"
	"fmt"
)

// DashboardStats aggregates the reviewer dashboard's headline numbers.
type DashboardStats struct {
	TotalAssessments int            `json:"total_assessments"`
	Analyzed         int            `json:"analyzed"`
	InProgress       int            `json:"in_progress"`
	ByQuadrant       map[string]int `json:"by_quadrant"`
	AvgWillScore     float64        `json:"avg_will_score"`
	AvgSkillScore    float64        `json:"avg_skill_score"`
}

// GetDashboardStats computes assessment counts, quadrant distribution, and
// average scores over all analyzed assessments.
func (db *DB) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{ByQuadrant: make(map[string]int)}

	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'analyzed'),
		        COUNT(*) FILTER (WHERE status = 'in_progress')
		 FROM assessments`,
	).Scan(&stats.TotalAssessments, &stats.Analyzed, &stats.InProgress)
	if err != nil {
		return nil, fmt.Errorf("failed to count assessments: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT quadrant, COUNT(*) FROM assessment_results GROUP BY quadrant`)
	if err != nil {
		return nil, fmt.Errorf("failed to count quadrants: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var quadrant string
		var count int
		if err := rows.Scan(&quadrant, &count); err != nil {
			return nil, fmt.Errorf("failed to scan quadrant count: %w", err)
		}
		stats.ByQuadrant[quadrant] = count
	}

	err = db.pool.QueryRow(ctx,
		`SELECT COALESCE(AVG(will_score), 0), COALESCE(AVG(skill_score), 0)
		 FROM assessment_results`,
	).Scan(&stats.AvgWillScore, &stats.AvgSkillScore)
	if err != nil {
		return nil, fmt.Errorf("failed to average scores: %w", err)
	}

	return stats, nil
}
