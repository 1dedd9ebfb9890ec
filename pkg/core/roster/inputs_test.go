package roster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

func TestBuildAbsenceIndex_InclusiveRange(t *testing.T) {
	index, warnings := BuildAbsenceIndex([]model.Absence{
		{StaffID: "a", StartDate: "2025-03-30", EndDate: "2025-04-02", Type: model.AbsenceVacation},
	})

	assert.Empty(t, warnings)
	for _, date := range []string{"2025-03-30", "2025-03-31", "2025-04-01", "2025-04-02"} {
		assert.True(t, index.IsAbsent(date, "a"), date)
	}
	assert.False(t, index.IsAbsent("2025-04-03", "a"))
	assert.False(t, index.IsAbsent("2025-03-31", "b"))
}

func TestBuildAbsenceIndex_SkipsMalformed(t *testing.T) {
	index, warnings := BuildAbsenceIndex([]model.Absence{
		{StaffID: "a", StartDate: "2025-13-01", EndDate: "2025-13-02"},
		{StaffID: "b", StartDate: "2025-03-05", EndDate: "2025-03-01"},
		{StaffID: "", StartDate: "2025-03-01", EndDate: "2025-03-01"},
		{StaffID: "c", StartDate: "2025-03-01", EndDate: "2025-03-01"},
	})

	require.Len(t, warnings, 3)
	assert.Equal(t, 0, warnings[0].Index)
	assert.Equal(t, 1, warnings[1].Index)
	assert.Equal(t, 2, warnings[2].Index)
	assert.Equal(t, "absence", warnings[0].Kind)

	assert.True(t, index.IsAbsent("2025-03-01", "c"))
}

func TestBuildWishIndex_PreservesOrder(t *testing.T) {
	index, warnings, err := BuildWishIndex([]model.Wish{
		{StaffID: "b", Date: "2025-03-01", Shift: shifts.HD},
		{StaffID: "a", Date: "2025-03-01", Shift: shifts.HD},
		{StaffID: "c", Date: "2025-03-01", Shift: shifts.OA},
		{StaffID: "d", Date: "not-a-date", Shift: shifts.HD},
	}, shifts.DefaultCatalog())

	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, 3, warnings[0].Index)

	assert.Equal(t, []string{"b", "a"}, index.Requesters("2025-03-01", shifts.HD))
	assert.Equal(t, []string{"c"}, index.Requesters("2025-03-01", shifts.OA))
	assert.Empty(t, index.Requesters("2025-03-02", shifts.HD))
}

func TestBuildWishIndex_UnknownShift(t *testing.T) {
	_, _, err := BuildWishIndex([]model.Wish{
		{StaffID: "a", Date: "2025-03-01", Shift: "Bogus"},
	}, shifts.DefaultCatalog())

	var cfgErr *shifts.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, shifts.ID("Bogus"), cfgErr.ShiftID)
}

func TestCapabilityLookup(t *testing.T) {
	lookup, err := CapabilityLookup([]model.StaffMember{
		staffWith("a", shifts.HD, shifts.OA),
		staffWith("b"),
	}, shifts.DefaultCatalog())

	require.NoError(t, err)
	assert.True(t, lookup["a"].Can(shifts.HD))
	assert.True(t, lookup["a"].Can(shifts.OA))
	assert.False(t, lookup["a"].Can(shifts.ICUNight))
	assert.False(t, lookup["b"].Can(shifts.HD))
	assert.False(t, lookup["missing"].Can(shifts.HD))
}

func TestCapabilityLookup_UnknownShift(t *testing.T) {
	_, err := CapabilityLookup([]model.StaffMember{
		staffWith("a", shifts.HD, "Bogus"),
	}, shifts.DefaultCatalog())

	var cfgErr *shifts.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "staff a")
}
