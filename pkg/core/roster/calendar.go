package roster

import (
	"fmt"
	"time"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

// DaysInMonth returns the number of days in the month, accounting for leap years
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NewCalendar builds the empty calendar for a month. Every day gets a slot for
// each catalog shift; shifts not staffed on weekends are pre-marked on Saturday and Sunday.
func NewCalendar(year, month int, catalog *shifts.Catalog) ([]model.CalendarDay, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month %d", month)
	}

	n := DaysInMonth(year, month)
	days := make([]model.CalendarDay, n)

	for i := range days {
		date := time.Date(year, time.Month(month), i+1, 0, 0, 0, 0, time.UTC)
		day := model.CalendarDay{
			Date:    date.Format(model.DateLayout),
			Day:     i + 1,
			Weekday: date.Weekday().String(),
			Shifts:  make(map[shifts.ID]model.Assignment, len(catalog.IDs())),
		}

		for _, st := range catalog.All() {
			var a model.Assignment
			if !st.WeekendAvailable && day.IsWeekend() {
				a.Notes = NoteNotOnWeekends
			}
			day.Shifts[st.ID] = a
		}

		days[i] = day
	}

	return days, nil
}
