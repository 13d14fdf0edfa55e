package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/claude/planforge/internal/catalog"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// UpsertExercises batch-inserts catalog entries. Existing IDs are
// updated in place so re-running an import refreshes the catalog.
// Returns the number of rows written.
func (db *DB) UpsertExercises(ctx context.Context, entries []catalog.Exercise) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	query := `INSERT INTO exercises (id, name, body_part, target, equipment, secondary_muscles, gif_url) VALUES `
	args := make([]any, 0, len(entries)*7)
	valueStrings := make([]string, 0, len(entries))

	for i, e := range entries {
		base := i * 7
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7,
		))
		args = append(args, e.ID, e.Name, e.BodyPart, e.Target, e.Equipment, e.SecondaryMuscles, e.GIFURL)
	}

	query += strings.Join(valueStrings, ",") + ` ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		body_part = EXCLUDED.body_part,
		target = EXCLUDED.target,
		equipment = EXCLUDED.equipment,
		secondary_muscles = EXCLUDED.secondary_muscles,
		gif_url = EXCLUDED.gif_url`

	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("upserting exercises: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountExercises returns the catalog size.
func (db *DB) CountExercises(ctx context.Context) (int, error) {
	var n int
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM exercises`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting exercises: %w", err)
	}
	return n, nil
}

// AllExercises returns the full catalog ordered by ID. The plan
// generator resolves template names against this list, so the order
// must be stable across calls.
func (db *DB) AllExercises(ctx context.Context) ([]catalog.Exercise, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, body_part, target, equipment, secondary_muscles, gif_url
		 FROM exercises ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	return scanExerciseRows(rows)
}

// SearchExercises filters the catalog by a case-insensitive name
// substring and/or body part. Empty filters match everything.
func (db *DB) SearchExercises(ctx context.Context, nameQuery, bodyPart string, limit int) ([]catalog.Exercise, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, body_part, target, equipment, secondary_muscles, gif_url
		 FROM exercises
		 WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR body_part = $2)
		 ORDER BY name
		 LIMIT $3`,
		nameQuery, bodyPart, limit)
	if err != nil {
		return nil, fmt.Errorf("searching exercises: %w", err)
	}
	defer rows.Close()

	return scanExerciseRows(rows)
}

// GetExercise retrieves a single catalog entry by ID.
func (db *DB) GetExercise(ctx context.Context, id string) (*catalog.Exercise, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, name, body_part, target, equipment, secondary_muscles, gif_url
		 FROM exercises WHERE id = $1`, id)

	var e catalog.Exercise
	err := row.Scan(&e.ID, &e.Name, &e.BodyPart, &e.Target, &e.Equipment, &e.SecondaryMuscles, &e.GIFURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying exercise: %w", err)
	}
	return &e, nil
}

func scanExerciseRows(rows pgx.Rows) ([]catalog.Exercise, error) {
	var result []catalog.Exercise
	for rows.Next() {
		var e catalog.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.BodyPart, &e.Target, &e.Equipment, &e.SecondaryMuscles, &e.GIFURL); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}
