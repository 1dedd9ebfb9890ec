package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
	"github.com/jakechorley/ward-roster/pkg/core/statistics"
)

const productID = "-//ward-roster//staff calendar//EN"

// CalendarICS renders a staff calendar as iCalendar text. Shifts become timed events
// starting at the shift's start time in loc and lasting its duration; absences become
// all-day events.
func CalendarICS(cal *statistics.StaffCalendar, catalog *shifts.Catalog, loc *time.Location, stamp time.Time) (string, error) {
	if loc == nil {
		loc = time.Local
	}

	out := ics.NewCalendar()
	out.SetMethod(ics.MethodPublish)
	out.SetProductId(productID)

	for _, entry := range cal.Shifts {
		for _, s := range entry.Shifts {
			start, err := time.ParseInLocation(model.DateLayout+" 15:04", entry.Date+" "+s.Start, loc)
			if err != nil {
				return "", fmt.Errorf("invalid start for %s on %s: %w", s.Shift, entry.Date, err)
			}
			end := start.Add(time.Duration(s.DurationHours * float64(time.Hour)))

			event := out.AddEvent(fmt.Sprintf("%s-%s-%s@ward-roster", cal.StaffID, entry.Date, s.Shift))
			event.SetDtStampTime(stamp)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(shiftTitle(s.Shift, catalog))
			if s.Notes != "" {
				event.SetDescription(s.Notes)
			}
		}
	}

	for i, absence := range cal.Absences {
		start, err := time.ParseInLocation(model.DateLayout, absence.StartDate, loc)
		if err != nil {
			return "", fmt.Errorf("invalid absence start %q: %w", absence.StartDate, err)
		}
		end, err := time.ParseInLocation(model.DateLayout, absence.EndDate, loc)
		if err != nil {
			return "", fmt.Errorf("invalid absence end %q: %w", absence.EndDate, err)
		}

		event := out.AddEvent(fmt.Sprintf("%s-absence-%d-%s@ward-roster", cal.StaffID, i, absence.StartDate))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(end.AddDate(0, 0, 1))
		event.SetSummary(absenceTitle(absence.Type))
	}

	return out.Serialize(), nil
}

func shiftTitle(id shifts.ID, catalog *shifts.Catalog) string {
	if st, err := catalog.Get(id); err == nil && st.Name != "" {
		return st.Name
	}
	return string(id)
}

func absenceTitle(t model.AbsenceType) string {
	switch t {
	case model.AbsenceSick:
		return "Sick leave"
	case model.AbsenceVacation:
		return "Vacation"
	default:
		return "Absent"
	}
}
