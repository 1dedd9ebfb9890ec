package commands

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/internal/config"
	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
	"github.com/jakechorley/ward-roster/pkg/core/statistics"
	"github.com/jakechorley/ward-roster/pkg/db"
)

func testApp(t *testing.T) *AppContext {
	t.Helper()
	store, err := db.NewFileDB(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	return &AppContext{
		Env:      "test",
		Cfg:      &config.Config{Storage: config.StorageFile, DataDir: "data"},
		Catalog:  shifts.DefaultCatalog(),
		Database: store,
		Logger:   zap.NewNop(),
		Ctx:      context.Background(),
	}
}

func TestParseYearMonth(t *testing.T) {
	year, month, err := parseYearMonth("2025", "3")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 3, month)

	_, _, err = parseYearMonth("2025", "13")
	assert.ErrorIs(t, err, model.ErrInvalidRosterKey)

	_, _, err = parseYearMonth("twenty", "3")
	assert.Error(t, err)
}

func TestParsePeriod(t *testing.T) {
	p, err := parsePeriod([]string{"2025"})
	require.NoError(t, err)
	assert.Equal(t, statistics.Period{Year: 2025}, p)
	assert.Equal(t, "2025", periodLabel(p))

	p, err = parsePeriod([]string{"2025", "4"})
	require.NoError(t, err)
	assert.Equal(t, "2025-04", periodLabel(p))

	_, err = parsePeriod([]string{"2025", "0"})
	assert.Error(t, err)
}

func TestGenerateRosterCmd_DryRunLeavesStoreEmpty(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Database.ReplaceStaff(app.Ctx, []model.StaffMember{
		{ID: "s1", Name: "Anna", Capabilities: []shifts.ID{shifts.HD}, RequiredShifts: 4},
	}))

	cmd := GenerateRosterCmd(app)
	require.NoError(t, runInteractive(cmd, []string{"--dry-run", "2025", "3"}))

	rosters, err := app.Database.GetRosters(app.Ctx)
	require.NoError(t, err)
	assert.Empty(t, rosters)

	require.NoError(t, runInteractive(cmd, []string{"2025", "3"}))

	saved, err := app.Database.GetRoster(app.Ctx, "2025-03")
	require.NoError(t, err)
	assert.Len(t, saved.Days, 31)
}

func TestRunInteractive_ValidatesArgs(t *testing.T) {
	app := testApp(t)

	err := runInteractive(PublishRosterCmd(app), nil)
	assert.Error(t, err)

	assert.NoError(t, runInteractive(ListShiftsCmd(app), nil))
}
