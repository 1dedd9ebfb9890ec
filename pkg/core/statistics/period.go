package statistics

import (
	"fmt"
	"sort"
	"time"

	"github.com/jakechorley/ward-roster/pkg/core/model"
)

// Period selects a whole year (Month == 0) or one month of it
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"`
}

// Includes reports whether the given year and month fall in the period
func (p Period) Includes(year, month int) bool {
	return p.Year == year && (p.Month == 0 || p.Month == month)
}

// includesAbsence applies the reporting rule for absences: an absence belongs
// to the period its start date falls in
func (p Period) includesAbsence(a model.Absence) (bool, error) {
	start, err := time.Parse(model.DateLayout, a.StartDate)
	if err != nil {
		return false, fmt.Errorf("invalid start_date %q: %w", a.StartDate, err)
	}
	return p.Includes(start.Year(), int(start.Month())), nil
}

// selectRosters returns the keys of stored rosters inside the period, in key order.
// A key that does not parse is an error.
func selectRosters(rosters map[string][]model.CalendarDay, period Period) ([]string, error) {
	keys := make([]string, 0, len(rosters))
	for key := range rosters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	selected := make([]string, 0, len(keys))
	for _, key := range keys {
		year, month, err := model.ParseRosterKey(key)
		if err != nil {
			return nil, err
		}
		if period.Includes(year, month) {
			selected = append(selected, key)
		}
	}
	return selected, nil
}
