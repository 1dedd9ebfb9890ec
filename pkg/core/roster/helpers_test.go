package roster

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

func staffWith(id string, caps ...shifts.ID) model.StaffMember {
	return model.StaffMember{ID: id, Name: "Staff " + id, Capabilities: caps, RequiredShifts: 10}
}

func newTestState(t *testing.T, year, month int, staff []model.StaffMember, absences []model.Absence, wishes []model.Wish) *runState {
	t.Helper()

	catalog := shifts.DefaultCatalog()

	days, err := NewCalendar(year, month, catalog)
	require.NoError(t, err)

	caps, err := CapabilityLookup(staff, catalog)
	require.NoError(t, err)

	absenceIndex, warnings := BuildAbsenceIndex(absences)
	require.Empty(t, warnings)

	wishIndex, _, err := BuildWishIndex(wishes, catalog)
	require.NoError(t, err)

	return &runState{
		days:     days,
		staff:    staff,
		caps:     caps,
		absences: absenceIndex,
		wishes:   wishIndex,
		tracker:  NewTracker(),
		catalog:  catalog,
		rules:    shifts.DefaultRules(),
	}
}

// assignedDays returns the day-of-month numbers on which staffID holds the shift
func assignedDays(days []model.CalendarDay, id shifts.ID, staffID string) []int {
	var out []int
	for _, day := range days {
		if day.Shifts[id].StaffID == staffID {
			out = append(out, day.Day)
		}
	}
	return out
}

func dayRange(from, to int) []int {
	var out []int
	for d := from; d <= to; d++ {
		out = append(out, d)
	}
	return out
}

func concat(parts ...[]int) []int {
	var out []int
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func totalAssignments(days []model.CalendarDay, staffID string) int {
	count := 0
	for _, day := range days {
		for _, a := range day.Shifts {
			if a.StaffID == staffID {
				count++
			}
		}
	}
	return count
}
