package services

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/internal/config"
	"github.com/jakechorley/ward-roster/pkg/clients/sheetsclient"
	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
	"github.com/jakechorley/ward-roster/pkg/export"
)

// RosterViewStore defines the database operations needed to publish or export a roster
type RosterViewStore interface {
	GetStaff(ctx context.Context) ([]model.StaffMember, error)
	GetRoster(ctx context.Context, key string) (*model.Roster, error)
}

// RosterPublisher defines the sheets client operations needed for publishing
type RosterPublisher interface {
	PublishRoster(spreadsheetID string, roster *sheetsclient.PublishedRoster) error
}

// PublishRoster writes the stored roster for key ("YYYY-MM") to the configured
// roster spreadsheet, one tab per month
func PublishRoster(
	ctx context.Context,
	store RosterViewStore,
	publisher RosterPublisher,
	catalog *shifts.Catalog,
	cfg *config.Config,
	logger *zap.Logger,
	key string,
) (*sheetsclient.PublishedRoster, error) {
	if cfg.RosterSheetID == "" {
		return nil, fmt.Errorf("rosterSheetID is not configured")
	}

	r, names, err := loadRosterView(ctx, store, key)
	if err != nil {
		return nil, err
	}

	header, rows := export.RosterGrid(r, catalog, names)
	published := &sheetsclient.PublishedRoster{
		Title:  export.MonthTitle(r.Year, r.Month),
		Header: header,
		Rows:   rows,
	}

	logger.Debug("Publishing roster", zap.String("key", key), zap.String("tab", published.Title))

	if err := publisher.PublishRoster(cfg.RosterSheetID, published); err != nil {
		return nil, fmt.Errorf("failed to publish roster: %w", err)
	}

	logger.Info("Roster published", zap.String("key", key), zap.String("tab", published.Title))
	return published, nil
}

// ExportRoster writes the stored roster for key to w as an .xlsx workbook
func ExportRoster(
	ctx context.Context,
	store RosterViewStore,
	catalog *shifts.Catalog,
	logger *zap.Logger,
	key string,
	w io.Writer,
) error {
	r, names, err := loadRosterView(ctx, store, key)
	if err != nil {
		return err
	}

	if err := export.WriteRosterXLSX(w, r, catalog, names); err != nil {
		return fmt.Errorf("failed to export roster: %w", err)
	}

	logger.Info("Roster exported", zap.String("key", key))
	return nil
}

func loadRosterView(ctx context.Context, store RosterViewStore, key string) (*model.Roster, map[string]string, error) {
	year, month, err := model.ParseRosterKey(key)
	if err != nil {
		return nil, nil, err
	}

	r, err := store.GetRoster(ctx, model.RosterKey(year, month))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch roster: %w", err)
	}

	staff, err := store.GetStaff(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	return r, export.StaffNames(staff), nil
}
