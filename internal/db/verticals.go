package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/candidate-assessor/internal/types"
)

// CreateVertical adds a program area to the catalog
func (db *DB) CreateVertical(ctx context.Context, name, description string) (*types.Vertical, error) {
	var v types.Vertical
	err := db.pool.QueryRow(ctx,
		`INSERT INTO verticals (name, description)
		 VALUES ($1, $2)
		 RETURNING id, name, description, active, created_at`,
		name, description,
	).Scan(&v.ID, &v.Name, &v.Description, &v.Active, &v.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("vertical %q already exists", name)
		}
		return nil, fmt.Errorf("failed to create vertical: %w", err)
	}
	return &v, nil
}

// ListVerticals retrieves the catalog, optionally restricted to active entries
func (db *DB) ListVerticals(ctx context.Context, activeOnly bool) ([]types.Vertical, error) {
	query := `SELECT id, name, description, active, created_at FROM verticals`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list verticals: %w", err)
	}
	defer rows.Close()

	var verticals []types.Vertical
	for rows.Next() {
		var v types.Vertical
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.Active, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vertical: %w", err)
		}
		verticals = append(verticals, v)
	}
	return verticals, nil
}

// UpdateVertical updates a catalog entry's name, description, and active flag
func (db *DB) UpdateVertical(ctx context.Context, id uuid.UUID, name, description string, active bool) (*types.Vertical, error) {
	var v types.Vertical
	err := db.pool.QueryRow(ctx,
		`UPDATE verticals SET name = $1, description = $2, active = $3
		 WHERE id = $4
		 RETURNING id, name, description, active, created_at`,
		name, description, active, id,
	).Scan(&v.ID, &v.Name, &v.Description, &v.Active, &v.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update vertical: %w", err)
	}
	return &v, nil
}

// GetVerticalNames resolves vertical IDs to display names, preserving the
// input order. IDs that do not resolve (unknown or malformed) are skipped;
// the recommendation generator substitutes a generic label when nothing
// resolves.
func (db *DB) GetVerticalNames(ctx context.Context, ids []string) ([]string, error) {
	names := make([]string, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		var name string
		err = db.pool.QueryRow(ctx,
			`SELECT name FROM verticals WHERE id = $1`, id,
		).Scan(&name)
		if err != nil {
			if err == pgx.ErrNoRows {
				continue
			}
			return nil, fmt.Errorf("failed to resolve vertical %s: %w", id, err)
		}
		names = append(names, name)
	}
	return names, nil
}

// DefaultVerticals is the seed catalog of program areas.
var DefaultVerticals = map[string]string{
	"Masoom":         "Child welfare and education programs",
	"Road Safety":    "Community road safety awareness and enforcement",
	"Climate Change": "Environmental sustainability and green initiatives",
	"Thalir":         "Youth empowerment and skill development",
	"Yuva":           "Young professional networking and leadership",
	"Health":         "Public health awareness and medical camps",
	"Innovation":     "Technology and entrepreneurship initiatives",
	"Sports":         "Sports events and fitness programs",
	"Membership":     "Member engagement and community building",
}

// SeedVerticals inserts the default catalog, skipping names that already exist
func (db *DB) SeedVerticals(ctx context.Context) (int, error) {
	inserted := 0
	for name, description := range DefaultVerticals {
		result, err := db.pool.Exec(ctx,
			`INSERT INTO verticals (name, description)
			 VALUES ($1, $2)
			 ON CONFLICT (name) DO NOTHING`,
			name, description,
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to seed vertical %q: %w", name, err)
		}
		inserted += int(result.RowsAffected())
	}
	return inserted, nil
}
