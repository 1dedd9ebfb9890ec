package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/db"
)

var _ db.Database = (*DB)(nil)

// GetRosters retrieves the days of every stored roster by key
func (d *DB) GetRosters(ctx context.Context) (map[string][]model.CalendarDay, error) {
	rows, err := d.pool.Query(ctx, `SELECT key, days FROM roster`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rosters: %w", err)
	}
	defer rows.Close()

	rosters := make(map[string][]model.CalendarDay)
	for rows.Next() {
		var key string
		var raw []byte
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan roster: %w", err)
		}

		var days []model.CalendarDay
		if err := json.Unmarshal(raw, &days); err != nil {
			return nil, fmt.Errorf("failed to decode roster %s: %w", key, err)
		}
		rosters[key] = days
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rosters: %w", err)
	}

	return rosters, nil
}

// GetRoster retrieves the roster stored under key
func (d *DB) GetRoster(ctx context.Context, key string) (*model.Roster, error) {
	var r model.Roster
	var raw []byte
	err := d.pool.QueryRow(ctx, `
		SELECT year, month, COALESCE(run_id::text, ''), generated_at, days
		FROM roster
		WHERE key = $1
	`, key).Scan(&r.Year, &r.Month, &r.RunID, &r.GeneratedAt, &raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", db.ErrRosterNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query roster %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, &r.Days); err != nil {
		return nil, fmt.Errorf("failed to decode roster %s: %w", key, err)
	}

	return &r, nil
}

// SaveRoster stores the roster under its key, replacing any previous roster.
// The upsert takes a row lock so concurrent saves of one key are serialised.
func (d *DB) SaveRoster(ctx context.Context, roster *model.Roster) error {
	days, err := json.Marshal(roster.Days)
	if err != nil {
		return fmt.Errorf("failed to encode roster days: %w", err)
	}

	_, err = d.pool.Exec(ctx, `
		INSERT INTO roster (key, year, month, run_id, generated_at, days)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6)
		ON CONFLICT (key) DO UPDATE SET
			year = EXCLUDED.year,
			month = EXCLUDED.month,
			run_id = EXCLUDED.run_id,
			generated_at = EXCLUDED.generated_at,
			days = EXCLUDED.days
	`, roster.Key(), roster.Year, roster.Month, roster.RunID, roster.GeneratedAt.UTC(), days)
	if err != nil {
		return fmt.Errorf("failed to save roster %s: %w", roster.Key(), err)
	}

	return nil
}
