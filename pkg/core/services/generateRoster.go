package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/internal/config"
	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/roster"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

// GenerateRosterStore defines the database operations needed to generate a roster
type GenerateRosterStore interface {
	GetStaff(ctx context.Context) ([]model.StaffMember, error)
	GetAbsences(ctx context.Context) ([]model.Absence, error)
	GetWishes(ctx context.Context) ([]model.Wish, error)
	SaveRoster(ctx context.Context, roster *model.Roster) error
}

// GenerateRoster builds the roster for one month from the stored staff, absences
// and wishes plus the configured recurring absences, then saves it under its key.
// With dryRun the roster is returned but not saved.
func GenerateRoster(
	ctx context.Context,
	store GenerateRosterStore,
	catalog *shifts.Catalog,
	cfg *config.Config,
	logger *zap.Logger,
	year, month int,
	dryRun bool,
) (*roster.Result, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}

	logger.Debug("Generating roster", zap.Int("year", year), zap.Int("month", month), zap.Bool("dry_run", dryRun))

	staff, err := store.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	if len(staff) == 0 {
		logger.Warn("Staff list is empty, every slot will be unfilled")
	}

	absences, err := store.GetAbsences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch absences: %w", err)
	}

	recurring, err := roster.ExpandRecurringAbsences(cfg.RecurringAbsences, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to expand recurring absences: %w", err)
	}
	if len(recurring) > 0 {
		logger.Debug("Expanded recurring absences", zap.Int("count", len(recurring)))
		absences = append(absences, recurring...)
	}

	wishes, err := store.GetWishes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wishes: %w", err)
	}

	engine := roster.NewEngine(catalog, cfg.Rules(), logger)
	result, err := engine.Generate(roster.Request{
		Year:     year,
		Month:    month,
		Staff:    staff,
		Absences: absences,
		Wishes:   filterWishesForMonth(wishes, year, month),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate roster: %w", err)
	}

	result.Roster.RunID = uuid.NewString()
	result.Roster.GeneratedAt = time.Now().UTC()

	if dryRun {
		logger.Info("Dry run, roster not saved", zap.String("key", result.Roster.Key()))
		return result, nil
	}

	if err := store.SaveRoster(ctx, result.Roster); err != nil {
		return nil, fmt.Errorf("failed to save roster: %w", err)
	}

	logger.Info("Roster saved",
		zap.String("key", result.Roster.Key()),
		zap.String("run_id", result.Roster.RunID),
		zap.Int("unfilled", len(result.Unfilled)))

	return result, nil
}

// filterWishesForMonth keeps wishes dated inside the month, preserving submission order.
// Undated or malformed wishes are passed through so the engine reports them.
func filterWishesForMonth(wishes []model.Wish, year, month int) []model.Wish {
	prefix := model.RosterKey(year, month) + "-"
	filtered := make([]model.Wish, 0, len(wishes))
	for _, w := range wishes {
		if _, err := time.Parse(model.DateLayout, w.Date); err != nil || strings.HasPrefix(w.Date, prefix) {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
