package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
	"github.com/jakechorley/ward-roster/pkg/core/statistics"
)

// ReportStore defines the database operations needed for reporting views
type ReportStore interface {
	GetStaff(ctx context.Context) ([]model.StaffMember, error)
	GetAbsences(ctx context.Context) ([]model.Absence, error)
	GetRosters(ctx context.Context) (map[string][]model.CalendarDay, error)
}

// StatisticsResult pairs the period statistics with the per-staff forecast
type StatisticsResult struct {
	Statistics *statistics.Statistics
	Forecast   map[string]statistics.StaffForecast
}

// ViewStatistics aggregates the stored rosters of a year or month
func ViewStatistics(
	ctx context.Context,
	store ReportStore,
	catalog *shifts.Catalog,
	logger *zap.Logger,
	period statistics.Period,
) (*StatisticsResult, error) {
	logger.Debug("Computing statistics", zap.Int("year", period.Year), zap.Int("month", period.Month))

	staff, absences, rosters, err := loadReportInputs(ctx, store)
	if err != nil {
		return nil, err
	}

	stats, err := statistics.Compute(rosters, staff, absences, period, catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to compute statistics: %w", err)
	}

	for _, w := range stats.Warnings {
		logger.Warn("Statistics input skipped", zap.String("reason", w))
	}
	logger.Debug("Statistics computed", zap.Strings("rosters", stats.Rosters), zap.Int("unfilled", stats.Unfilled))

	return &StatisticsResult{
		Statistics: stats,
		Forecast:   statistics.GenerateForecast(stats, staff),
	}, nil
}

// ViewStaffCalendar lists one staff member's shifts and absences for a period
func ViewStaffCalendar(
	ctx context.Context,
	store ReportStore,
	catalog *shifts.Catalog,
	logger *zap.Logger,
	staffID string,
	period statistics.Period,
) (*statistics.StaffCalendar, error) {
	if staffID == "" {
		return nil, fmt.Errorf("staff id is required")
	}

	staff, absences, rosters, err := loadReportInputs(ctx, store)
	if err != nil {
		return nil, err
	}

	if !hasStaff(staff, staffID) {
		logger.Warn("Staff id not in current staff list", zap.String("staff_id", staffID))
	}

	cal, err := statistics.BuildStaffCalendar(staffID, rosters, absences, period, catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to build staff calendar: %w", err)
	}

	logger.Debug("Staff calendar built",
		zap.String("staff_id", staffID),
		zap.Int("days", len(cal.Shifts)),
		zap.Int("absences", len(cal.Absences)))

	return cal, nil
}

func loadReportInputs(ctx context.Context, store ReportStore) ([]model.StaffMember, []model.Absence, map[string][]model.CalendarDay, error) {
	staff, err := store.GetStaff(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	absences, err := store.GetAbsences(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch absences: %w", err)
	}
	rosters, err := store.GetRosters(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch rosters: %w", err)
	}
	return staff, absences, rosters, nil
}

func hasStaff(staff []model.StaffMember, id string) bool {
	for _, s := range staff {
		if s.ID == id {
			return true
		}
	}
	return false
}
