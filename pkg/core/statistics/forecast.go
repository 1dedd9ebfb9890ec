package statistics

import (
	"github.com/shopspring/decimal"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

// StaffForecast is the recommended split of a staff member's remaining quota
type StaffForecast struct {
	Name              string            `json:"name"`
	RemainingShifts   int               `json:"remaining_shifts"`
	RecommendedShifts map[shifts.ID]int `json:"recommended_shifts"`
}

// GenerateForecast spreads each staff member's remaining quota evenly across
// their capabilities. Halves round to even.
func GenerateForecast(stats *Statistics, staff []model.StaffMember) map[string]StaffForecast {
	forecast := make(map[string]StaffForecast, len(staff))

	for _, member := range staff {
		s, ok := stats.Staff[member.ID]
		if !ok {
			continue
		}

		remaining := max(0, member.RequiredShifts-s.TotalShifts)
		f := StaffForecast{
			Name:              member.Name,
			RemainingShifts:   remaining,
			RecommendedShifts: make(map[shifts.ID]int),
		}

		if remaining > 0 && len(member.Capabilities) > 0 {
			perShift := decimal.NewFromInt(int64(remaining)).
				Div(decimal.NewFromInt(int64(len(member.Capabilities)))).
				RoundBank(0).
				IntPart()
			for _, id := range member.Capabilities {
				f.RecommendedShifts[id] = int(perShift)
			}
		}

		forecast[member.ID] = f
	}

	return forecast
}
