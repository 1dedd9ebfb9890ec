package services

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/internal/config"
	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
	"github.com/jakechorley/ward-roster/pkg/importer"
)

// StaffImportStore defines the database operations needed to import staff
type StaffImportStore interface {
	ReplaceStaff(ctx context.Context, staff []model.StaffMember) error
}

// RecordImportStore defines the database operations needed to import absences and wishes
type RecordImportStore interface {
	GetStaff(ctx context.Context) ([]model.StaffMember, error)
	ReplaceAbsences(ctx context.Context, absences []model.Absence) error
	ReplaceWishes(ctx context.Context, wishes []model.Wish) error
}

// ImportWishesResult summarises a wish import
type ImportWishesResult struct {
	Imported     int
	UnknownStaff int
	Skipped      []importer.RowError
}

// ImportStaff replaces the staff list with the records read from r (YAML or JSON).
// Duplicate ids and capabilities naming unknown shifts reject the whole import.
func ImportStaff(ctx context.Context, store StaffImportStore, catalog *shifts.Catalog, logger *zap.Logger, r io.Reader) (int, error) {
	staff, err := importer.DecodeStaff(r)
	if err != nil {
		return 0, fmt.Errorf("failed to decode staff: %w", err)
	}

	seen := make(map[string]bool, len(staff))
	for _, member := range staff {
		if seen[member.ID] {
			return 0, fmt.Errorf("duplicate staff id %q", member.ID)
		}
		seen[member.ID] = true

		if err := catalog.Check("staff "+member.ID, member.Capabilities...); err != nil {
			return 0, err
		}
	}

	if err := store.ReplaceStaff(ctx, staff); err != nil {
		return 0, fmt.Errorf("failed to save staff: %w", err)
	}

	logger.Info("Staff imported", zap.Int("count", len(staff)))
	return len(staff), nil
}

// ImportAbsences replaces the absence records with those read from r (YAML or JSON)
func ImportAbsences(ctx context.Context, store RecordImportStore, logger *zap.Logger, r io.Reader) (int, error) {
	absences, err := importer.DecodeAbsences(r)
	if err != nil {
		return 0, fmt.Errorf("failed to decode absences: %w", err)
	}

	known, err := staffIDs(ctx, store)
	if err != nil {
		return 0, err
	}
	for i, a := range absences {
		if !known[a.StaffID] {
			logger.Warn("Absence for unknown staff id", zap.Int("index", i), zap.String("staff_id", a.StaffID))
		}
	}

	if err := store.ReplaceAbsences(ctx, absences); err != nil {
		return 0, fmt.Errorf("failed to save absences: %w", err)
	}

	logger.Info("Absences imported", zap.Int("count", len(absences)))
	return len(absences), nil
}

// ImportWishes maps header-first spreadsheet rows to wishes using the configured
// column names and replaces the stored wishes. Rows come from an .xlsx sheet or a
// Google Sheets tab. A wish naming an unknown shift type rejects the import.
func ImportWishes(
	ctx context.Context,
	store RecordImportStore,
	catalog *shifts.Catalog,
	cfg *config.Config,
	logger *zap.Logger,
	rows [][]string,
) (*ImportWishesResult, error) {
	wishes, rowErrs, err := importer.WishesFromRows(rows, importer.Columns{
		StaffID:   cfg.WishColumns.StaffID,
		Date:      cfg.WishColumns.Date,
		Shift:     cfg.WishColumns.Shift,
		DateOrder: cfg.WishColumns.DateOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read wishes: %w", err)
	}

	for _, rowErr := range rowErrs {
		logger.Warn("Skipped wish row", zap.Int("row", rowErr.Row), zap.String("reason", rowErr.Reason))
	}

	known, err := staffIDs(ctx, store)
	if err != nil {
		return nil, err
	}

	result := &ImportWishesResult{Imported: len(wishes), Skipped: rowErrs}
	for i, w := range wishes {
		if err := catalog.Check(fmt.Sprintf("wish %d (staff %s)", i, w.StaffID), w.Shift); err != nil {
			return nil, err
		}
		if !known[w.StaffID] {
			result.UnknownStaff++
			logger.Warn("Wish for unknown staff id", zap.String("staff_id", w.StaffID), zap.String("date", w.Date))
		}
	}

	if err := store.ReplaceWishes(ctx, wishes); err != nil {
		return nil, fmt.Errorf("failed to save wishes: %w", err)
	}

	logger.Info("Wishes imported", zap.Int("count", len(wishes)), zap.Int("skipped_rows", len(rowErrs)))
	return result, nil
}

func staffIDs(ctx context.Context, store RecordImportStore) (map[string]bool, error) {
	staff, err := store.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	ids := make(map[string]bool, len(staff))
	for _, s := range staff {
		ids[s.ID] = true
	}
	return ids, nil
}
