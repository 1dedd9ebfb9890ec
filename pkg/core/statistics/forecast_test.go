package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

func statsWithTotals(totals map[string]int) *Statistics {
	stats := &Statistics{Staff: make(map[string]*StaffStatistics)}
	for id, total := range totals {
		stats.Staff[id] = &StaffStatistics{TotalShifts: total}
	}
	return stats
}

func TestGenerateForecast_EvenSplit(t *testing.T) {
	staff := []model.StaffMember{
		{ID: "E", Name: "Erin", Capabilities: []shifts.ID{shifts.ICUMorning, shifts.HD}, RequiredShifts: 10},
	}

	forecast := GenerateForecast(statsWithTotals(map[string]int{"E": 4}), staff)

	assert.Equal(t, StaffForecast{
		Name:              "Erin",
		RemainingShifts:   6,
		RecommendedShifts: map[shifts.ID]int{shifts.ICUMorning: 3, shifts.HD: 3},
	}, forecast["E"])
}

func TestGenerateForecast_RoundsHalfToEven(t *testing.T) {
	two := []shifts.ID{shifts.ICUMorning, shifts.HD}
	staff := []model.StaffMember{
		{ID: "a", Capabilities: two, RequiredShifts: 5},
		{ID: "b", Capabilities: two, RequiredShifts: 7},
		{ID: "c", Capabilities: two, RequiredShifts: 1},
		{ID: "d", Capabilities: []shifts.ID{shifts.HD, shifts.OA, shifts.ICUNight}, RequiredShifts: 5},
	}

	forecast := GenerateForecast(statsWithTotals(map[string]int{"a": 0, "b": 0, "c": 0, "d": 0}), staff)

	assert.Equal(t, 2, forecast["a"].RecommendedShifts[shifts.HD])
	assert.Equal(t, 4, forecast["b"].RecommendedShifts[shifts.HD])
	assert.Equal(t, 0, forecast["c"].RecommendedShifts[shifts.HD])
	// 5/3 = 1.67
	assert.Equal(t, 2, forecast["d"].RecommendedShifts[shifts.OA])
}

func TestGenerateForecast_NothingRemaining(t *testing.T) {
	staff := []model.StaffMember{
		{ID: "done", Capabilities: []shifts.ID{shifts.HD}, RequiredShifts: 3},
		{ID: "nocaps", RequiredShifts: 3},
		{ID: "missing", Capabilities: []shifts.ID{shifts.HD}, RequiredShifts: 3},
	}

	forecast := GenerateForecast(statsWithTotals(map[string]int{"done": 5, "nocaps": 0}), staff)

	assert.Equal(t, 0, forecast["done"].RemainingShifts)
	assert.Empty(t, forecast["done"].RecommendedShifts)
	assert.Equal(t, 3, forecast["nocaps"].RemainingShifts)
	assert.Empty(t, forecast["nocaps"].RecommendedShifts)

	_, ok := forecast["missing"]
	assert.False(t, ok)
}
