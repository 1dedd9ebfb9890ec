package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/ward-roster/pkg/core/model"
)

// GetAbsences retrieves all absence records in stored order
func (d *DB) GetAbsences(ctx context.Context) ([]model.Absence, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT staff_id, start_date, end_date, type, status
		FROM absence
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query absences: %w", err)
	}
	defer rows.Close()

	absences := []model.Absence{}
	for rows.Next() {
		var a model.Absence
		var start, end time.Time
		var absenceType string
		if err := rows.Scan(&a.StaffID, &start, &end, &absenceType, &a.Status); err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		a.StartDate = start.Format(model.DateLayout)
		a.EndDate = end.Format(model.DateLayout)
		a.Type = model.AbsenceType(absenceType)
		absences = append(absences, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating absences: %w", err)
	}

	return absences, nil
}

// ReplaceAbsences overwrites the absence records in one transaction
func (d *DB) ReplaceAbsences(ctx context.Context, absences []model.Absence) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM absence`); err != nil {
		return fmt.Errorf("failed to clear absences: %w", err)
	}

	for i, a := range absences {
		start, err := time.Parse(model.DateLayout, a.StartDate)
		if err != nil {
			return fmt.Errorf("invalid start_date for absence %d: %w", i, err)
		}
		end, err := time.Parse(model.DateLayout, a.EndDate)
		if err != nil {
			return fmt.Errorf("invalid end_date for absence %d: %w", i, err)
		}

		absenceType := a.Type
		if absenceType == "" {
			absenceType = model.AbsenceOther
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO absence (position, staff_id, start_date, end_date, type, status)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, i, a.StaffID, start, end, string(absenceType), a.Status)
		if err != nil {
			return fmt.Errorf("failed to insert absence %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
