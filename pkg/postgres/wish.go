package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

// GetWishes retrieves all wish records in submission order
func (d *DB) GetWishes(ctx context.Context) ([]model.Wish, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT staff_id, wish_date, shift
		FROM wish
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query wishes: %w", err)
	}
	defer rows.Close()

	wishes := []model.Wish{}
	for rows.Next() {
		var w model.Wish
		var date time.Time
		var shift string
		if err := rows.Scan(&w.StaffID, &date, &shift); err != nil {
			return nil, fmt.Errorf("failed to scan wish: %w", err)
		}
		w.Date = date.Format(model.DateLayout)
		w.Shift = shifts.ID(shift)
		wishes = append(wishes, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wishes: %w", err)
	}

	return wishes, nil
}

// ReplaceWishes overwrites the wish records, bulk loading them with COPY
func (d *DB) ReplaceWishes(ctx context.Context, wishes []model.Wish) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM wish`); err != nil {
		return fmt.Errorf("failed to clear wishes: %w", err)
	}

	rows := make([][]any, 0, len(wishes))
	for i, w := range wishes {
		date, err := time.Parse(model.DateLayout, w.Date)
		if err != nil {
			return fmt.Errorf("invalid date for wish %d: %w", i, err)
		}
		rows = append(rows, []any{i, w.StaffID, date, string(w.Shift)})
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"wish"},
		[]string{"position", "staff_id", "wish_date", "shift"},
		pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to copy wishes: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
