package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/claude/planforge/internal/plan"
)

// PlanRecord is a stored generation result: the input profile and the
// plan it produced, both kept as JSON documents.
type PlanRecord struct {
	ID        uuid.UUID                 `json:"id"`
	CreatedAt time.Time                 `json:"createdAt"`
	Profile   plan.UserProfile          `json:"profile"`
	Plan      plan.GeneratedWorkoutPlan `json:"plan"`
}

// InsertPlan stores a generated plan and returns its new ID.
func (db *DB) InsertPlan(ctx context.Context, profile plan.UserProfile, generated *plan.GeneratedWorkoutPlan) (uuid.UUID, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding profile: %w", err)
	}
	planJSON, err := json.Marshal(generated)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding plan: %w", err)
	}

	id := uuid.New()
	_, err = db.Pool.Exec(ctx,
		`INSERT INTO plans (id, created_at, profile, plan) VALUES ($1, $2, $3, $4)`,
		id, time.Now().UTC(), profileJSON, planJSON)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting plan: %w", err)
	}
	return id, nil
}

// GetPlan retrieves a stored plan by ID.
func (db *DB) GetPlan(ctx context.Context, id uuid.UUID) (*PlanRecord, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, created_at, profile, plan FROM plans WHERE id = $1`, id)

	rec, err := scanPlanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListPlans retrieves stored plans, newest first.
func (db *DB) ListPlans(ctx context.Context, limit int) ([]PlanRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT id, created_at, profile, plan FROM plans ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	var result []PlanRecord
	for rows.Next() {
		rec, err := scanPlanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *rec)
	}
	return result, rows.Err()
}

func scanPlanRecord(row pgx.Row) (*PlanRecord, error) {
	var rec PlanRecord
	var profileJSON, planJSON []byte
	if err := row.Scan(&rec.ID, &rec.CreatedAt, &profileJSON, &planJSON); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	if err := json.Unmarshal(profileJSON, &rec.Profile); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	if err := json.Unmarshal(planJSON, &rec.Plan); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	return &rec, nil
}
