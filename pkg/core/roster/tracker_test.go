package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

func TestTracker_StreaksResetOnOtherShift(t *testing.T) {
	tracker := NewTracker()

	tracker.Record("a", "2025-03-03", shifts.ICUNight, false)
	tracker.Record("a", "2025-03-04", shifts.ICUNight, false)
	assert.Equal(t, 2, tracker.Streak("a", shifts.ICUNight))

	tracker.Record("a", "2025-03-07", shifts.HD, false)
	assert.Equal(t, 0, tracker.Streak("a", shifts.ICUNight))
	assert.Equal(t, 1, tracker.Streak("a", shifts.HD))

	// Counts survive the streak reset
	assert.Equal(t, 2, tracker.ShiftCount("a", shifts.ICUNight))
	assert.Equal(t, 1, tracker.ShiftCount("a", shifts.HD))
}

func TestTracker_LastShiftAndHistory(t *testing.T) {
	tracker := NewTracker()
	assert.Nil(t, tracker.LastShift("a"))
	assert.Nil(t, tracker.History("a"))

	tracker.Record("a", "2025-03-01", shifts.OA, true)
	tracker.Record("a", "2025-03-02", shifts.OA, false)

	last := tracker.LastShift("a")
	require.NotNil(t, last)
	assert.Equal(t, AssignmentRecord{Date: "2025-03-02", Shift: shifts.OA}, *last)

	history := tracker.History("a")
	assert.Equal(t, []AssignmentRecord{
		{Date: "2025-03-01", Shift: shifts.OA},
		{Date: "2025-03-02", Shift: shifts.OA},
	}, history)

	history[0].Shift = shifts.HD
	assert.Equal(t, shifts.OA, tracker.History("a")[0].Shift)
}

func TestTracker_WeekendCount(t *testing.T) {
	tracker := NewTracker()

	tracker.Record("a", "2025-03-01", shifts.OA, true)
	tracker.Record("a", "2025-03-02", shifts.OA, false)
	tracker.Record("b", "2025-03-01", shifts.HD, true)
	tracker.Record("b", "2025-03-03", shifts.HD, false)

	assert.Equal(t, 1, tracker.WeekendCount("a"))
	assert.Equal(t, 1, tracker.WeekendCount("b"))
	assert.Equal(t, 0, tracker.WeekendCount("nobody"))
}
