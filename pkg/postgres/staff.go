package postgres

import (
	"context"
	"fmt"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

// GetStaff retrieves the staff list in stored order
func (d *DB) GetStaff(ctx context.Context) ([]model.StaffMember, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, capabilities, required_shifts
		FROM staff
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	staff := []model.StaffMember{}
	for rows.Next() {
		var s model.StaffMember
		var capabilities []string
		if err := rows.Scan(&s.ID, &s.Name, &capabilities, &s.RequiredShifts); err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		for _, c := range capabilities {
			s.Capabilities = append(s.Capabilities, shifts.ID(c))
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff: %w", err)
	}

	return staff, nil
}

// ReplaceStaff overwrites the staff list in one transaction
func (d *DB) ReplaceStaff(ctx context.Context, staff []model.StaffMember) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM staff`); err != nil {
		return fmt.Errorf("failed to clear staff: %w", err)
	}

	for i, s := range staff {
		capabilities := make([]string, len(s.Capabilities))
		for j, c := range s.Capabilities {
			capabilities[j] = string(c)
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO staff (id, position, name, capabilities, required_shifts)
			VALUES ($1, $2, $3, $4, $5)
		`, s.ID, i, s.Name, capabilities, s.RequiredShifts)
		if err != nil {
			return fmt.Errorf("failed to insert staff member %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
