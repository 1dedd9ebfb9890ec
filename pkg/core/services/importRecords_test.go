package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/internal/config"
	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

func TestImportStaff(t *testing.T) {
	store := &mockStore{staff: []model.StaffMember{{ID: "old", Name: "Old"}}}

	count, err := ImportStaff(context.Background(), store, shifts.DefaultCatalog(), zap.NewNop(), strings.NewReader(`
- id: s1
  name: Anna
  capabilities: [HD, OA, Rufdienst]
  required_shifts: 8
- id: s2
  name: Ben
  capabilities: [ICU_night]
  required_shifts: 6
`))
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	require.Len(t, store.staff, 2)
	assert.Equal(t, "s1", store.staff[0].ID)
}

func TestImportStaff_DuplicateID(t *testing.T) {
	store := &mockStore{}

	_, err := ImportStaff(context.Background(), store, shifts.DefaultCatalog(), zap.NewNop(), strings.NewReader(
		`[{"id": "s1", "name": "Anna"}, {"id": "s1", "name": "Anna B"}]`))
	assert.ErrorContains(t, err, "duplicate staff id")
	assert.Nil(t, store.staff)
}

func TestImportStaff_UnknownCapability(t *testing.T) {
	_, err := ImportStaff(context.Background(), &mockStore{}, shifts.DefaultCatalog(), zap.NewNop(), strings.NewReader(
		`[{"id": "s1", "name": "Anna", "capabilities": ["Dialysis"]}]`))

	var cfgErr *shifts.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, shifts.ID("Dialysis"), cfgErr.ShiftID)
}

func TestImportAbsences(t *testing.T) {
	store := &mockStore{staff: hdStaff()}

	count, err := ImportAbsences(context.Background(), store, zap.NewNop(), strings.NewReader(`
- staff_id: s1
  start_date: "2025-03-10"
  end_date: "2025-03-14"
  type: vacation
- staff_id: s9
  start_date: "2025-03-01"
  end_date: "2025-03-01"
  type: sick
`))
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.Len(t, store.absences, 2)
}

func TestImportAbsences_Invalid(t *testing.T) {
	store := &mockStore{staff: hdStaff()}

	_, err := ImportAbsences(context.Background(), store, zap.NewNop(), strings.NewReader(
		`[{"staff_id": "s1", "start_date": "2025-03-14", "end_date": "2025-03-10"}]`))
	assert.Error(t, err)
	assert.Nil(t, store.absences)
}

func TestImportWishes(t *testing.T) {
	store := &mockStore{staff: hdStaff()}
	cfg := fileConfig()
	cfg.WishColumns = config.WishColumns{StaffID: "Mitarbeiter", Date: "Datum", Shift: "Dienst"}

	rows := [][]string{
		{"Mitarbeiter", "Datum", "Dienst"},
		{"s1", "2025-03-03", "HD"},
		{"s7", "04.03.2025", "OA"},
		{"s2", "", "HD"},
	}

	result, err := ImportWishes(context.Background(), store, shifts.DefaultCatalog(), cfg, zap.NewNop(), rows)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.UnknownStaff)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 4, result.Skipped[0].Row)

	assert.Equal(t, []model.Wish{
		{StaffID: "s1", Date: "2025-03-03", Shift: shifts.HD},
		{StaffID: "s7", Date: "2025-03-04", Shift: shifts.OA},
	}, store.wishes)
}

func TestImportWishes_MonthFirstDates(t *testing.T) {
	store := &mockStore{staff: hdStaff()}
	cfg := fileConfig()
	cfg.WishColumns = config.WishColumns{StaffID: "staff_id", Date: "date", Shift: "shift", DateOrder: "mdy"}

	result, err := ImportWishes(context.Background(), store, shifts.DefaultCatalog(), cfg, zap.NewNop(), [][]string{
		{"staff_id", "date", "shift"},
		{"s1", "03/04/2025", "HD"},
		{"s1", "04.03.2025", "HD"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 3, result.Skipped[0].Row)
	assert.Equal(t, []model.Wish{{StaffID: "s1", Date: "2025-03-04", Shift: shifts.HD}}, store.wishes)
}

func TestImportWishes_UnknownShift(t *testing.T) {
	store := &mockStore{staff: hdStaff()}
	cfg := fileConfig()
	cfg.WishColumns = config.WishColumns{StaffID: "staff_id", Date: "date", Shift: "shift"}

	_, err := ImportWishes(context.Background(), store, shifts.DefaultCatalog(), cfg, zap.NewNop(), [][]string{
		{"staff_id", "date", "shift"},
		{"s1", "2025-03-03", "Night"},
	})

	var cfgErr *shifts.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Nil(t, store.wishes)
}
