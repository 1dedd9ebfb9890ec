package statistics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/roster"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

func march2025(t *testing.T) []model.CalendarDay {
	t.Helper()

	days, err := roster.NewCalendar(2025, 3, shifts.DefaultCatalog())
	require.NoError(t, err)

	set := func(day int, id shifts.ID, staffID, note string) {
		days[day-1].Shifts[id] = model.Assignment{StaffID: staffID, Notes: note}
	}
	set(3, shifts.ICUMorning, "E", roster.NoteWeeklyAssignment)
	set(4, shifts.ICUMorning, "E", roster.NoteWeeklyAssignment)
	set(5, shifts.ICUMorning, "E", roster.NoteWeeklyAssignment)
	set(7, shifts.HD, "E", roster.NoteAssignedByWish)
	set(1, shifts.OA, "G", "Weekend pair (1/2)")
	set(2, shifts.OA, "G", "Weekend pair (2/2)")
	set(4, shifts.HD, "unknown", roster.NoteAssignedAvailable)

	return days
}

func testStaff() []model.StaffMember {
	return []model.StaffMember{
		{ID: "E", Name: "Erin", Capabilities: []shifts.ID{shifts.ICUMorning, shifts.HD}, RequiredShifts: 10},
		{ID: "G", Name: "Gil", Capabilities: []shifts.ID{shifts.OA}, RequiredShifts: 1},
	}
}

func TestCompute_TotalsAndRemaining(t *testing.T) {
	stats, err := Compute(
		map[string][]model.CalendarDay{"2025-03": march2025(t)},
		testStaff(), nil, Period{Year: 2025, Month: 3}, shifts.DefaultCatalog())
	require.NoError(t, err)

	e := stats.Staff["E"]
	require.NotNil(t, e)
	assert.Equal(t, 4, e.TotalShifts)
	assert.Equal(t, 6, e.RemainingShifts)
	assert.Equal(t, 3, e.ShiftsByType[shifts.ICUMorning])
	assert.Equal(t, 1, e.ShiftsByType[shifts.HD])
	assert.Equal(t, 0, e.ShiftsByType[shifts.OA])
	assert.Equal(t, 1, e.WishesGranted)
	assert.Equal(t, 0, e.WeekendsWorked)

	g := stats.Staff["G"]
	assert.Equal(t, 2, g.TotalShifts)
	assert.Equal(t, 0, g.RemainingShifts)
	assert.Equal(t, 2, g.WeekendsWorked)

	assert.Equal(t, []string{"E", "G"}, stats.StaffOrder)
	assert.Equal(t, 2, stats.ShiftTotals[shifts.HD])
	assert.Equal(t, 3, stats.ShiftTotals[shifts.ICUMorning])

	// 31 days x 9 shifts, minus 10 weekend midday slots, minus 7 assignments
	assert.Equal(t, 31*9-10-7, stats.Unfilled)
	assert.Equal(t, []string{"2025-03"}, stats.Rosters)
}

func TestCompute_AbsencesByStartDate(t *testing.T) {
	absences := []model.Absence{
		{StaffID: "E", StartDate: "2025-03-10", EndDate: "2025-03-12", Type: model.AbsenceSick},
		{StaffID: "E", StartDate: "2025-02-27", EndDate: "2025-03-02", Type: model.AbsenceVacation},
		{StaffID: "E", StartDate: "2025-03-20", EndDate: "2025-03-20", Type: model.AbsenceOther},
		{StaffID: "nobody", StartDate: "2025-03-20", EndDate: "2025-03-20", Type: model.AbsenceSick},
		{StaffID: "G", StartDate: "bad", EndDate: "2025-03-20", Type: model.AbsenceSick},
	}
	rosters := map[string][]model.CalendarDay{"2025-03": march2025(t)}

	month, err := Compute(rosters, testStaff(), absences, Period{Year: 2025, Month: 3}, shifts.DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, 4, month.Staff["E"].Absences)
	assert.Equal(t, 3, month.Staff["E"].SickDays)
	assert.Equal(t, 0, month.Staff["E"].VacationDays)
	assert.Len(t, month.Warnings, 1)

	year, err := Compute(rosters, testStaff(), absences, Period{Year: 2025}, shifts.DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, 8, year.Staff["E"].Absences)
	assert.Equal(t, 4, year.Staff["E"].VacationDays)
}

func TestCompute_PeriodFilter(t *testing.T) {
	rosters := map[string][]model.CalendarDay{
		"2025-03": march2025(t),
		"2024-03": march2025(t),
		"2025-4":  march2025(t),
	}

	stats, err := Compute(rosters, testStaff(), nil, Period{Year: 2025, Month: 3}, shifts.DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Staff["E"].TotalShifts)

	stats, err = Compute(rosters, testStaff(), nil, Period{Year: 2025}, shifts.DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, 8, stats.Staff["E"].TotalShifts)
	assert.Equal(t, 2, stats.Staff["E"].RemainingShifts)
	assert.Equal(t, []string{"2025-03", "2025-4"}, stats.Rosters)
}

func TestCompute_InvalidRosterKey(t *testing.T) {
	_, err := Compute(map[string][]model.CalendarDay{
		"2025-03": march2025(t),
		"march":   nil,
	}, testStaff(), nil, Period{Year: 2025}, shifts.DefaultCatalog())

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidRosterKey))
}
