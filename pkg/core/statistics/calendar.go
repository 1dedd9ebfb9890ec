package statistics

import (
	"slices"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

// CalendarShift is one shift in a staff member's calendar
type CalendarShift struct {
	Shift         shifts.ID `json:"shift"`
	Start         string    `json:"start"`
	End           string    `json:"end"`
	DurationHours float64   `json:"duration"`
	Notes         string    `json:"notes"`
}

// CalendarEntry groups a staff member's shifts on one date
type CalendarEntry struct {
	Date    string          `json:"date"`
	Weekday string          `json:"weekday"`
	Shifts  []CalendarShift `json:"shifts"`
}

// StaffCalendar is the personal view of a staff member's rostered shifts and absences
type StaffCalendar struct {
	StaffID  string          `json:"staff_id"`
	Shifts   []CalendarEntry `json:"shifts"`
	Absences []model.Absence `json:"absences"`
}

// BuildStaffCalendar lists the staff member's shifts from the rosters of the period
// along with absences starting in it
func BuildStaffCalendar(
	staffID string,
	rosters map[string][]model.CalendarDay,
	absences []model.Absence,
	period Period,
	catalog *shifts.Catalog,
) (*StaffCalendar, error) {
	keys, err := selectRosters(rosters, period)
	if err != nil {
		return nil, err
	}

	cal := &StaffCalendar{
		StaffID:  staffID,
		Shifts:   []CalendarEntry{},
		Absences: []model.Absence{},
	}

	for _, key := range keys {
		for _, day := range rosters[key] {
			var held []CalendarShift
			for _, id := range orderedShiftIDs(day, catalog) {
				a := day.Shifts[id]
				if a.StaffID != staffID {
					continue
				}
				cs := CalendarShift{Shift: id, Notes: a.Notes}
				if st, err := catalog.Get(id); err == nil {
					cs.Start = st.Start
					cs.End = st.End
					cs.DurationHours = st.DurationHours
				}
				held = append(held, cs)
			}

			if len(held) > 0 {
				cal.Shifts = append(cal.Shifts, CalendarEntry{
					Date:    day.Date,
					Weekday: day.Weekday,
					Shifts:  held,
				})
			}
		}
	}

	for _, absence := range absences {
		if absence.StaffID != staffID {
			continue
		}
		if included, err := period.includesAbsence(absence); err == nil && included {
			cal.Absences = append(cal.Absences, absence)
		}
	}

	return cal, nil
}

// orderedShiftIDs returns the day's shift ids in catalog order followed by any
// ids the catalog does not know, sorted
func orderedShiftIDs(day model.CalendarDay, catalog *shifts.Catalog) []shifts.ID {
	ids := make([]shifts.ID, 0, len(day.Shifts))
	for _, id := range catalog.IDs() {
		if _, ok := day.Shifts[id]; ok {
			ids = append(ids, id)
		}
	}

	var unknown []shifts.ID
	for id := range day.Shifts {
		if !catalog.Has(id) {
			unknown = append(unknown, id)
		}
	}
	slices.Sort(unknown)

	return append(ids, unknown...)
}
