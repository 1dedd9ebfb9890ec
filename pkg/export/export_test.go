package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
	"github.com/jakechorley/ward-roster/pkg/core/statistics"
)

// twoDayRoster covers Friday 2025-03-07 and Saturday 2025-03-08
func twoDayRoster(catalog *shifts.Catalog) *model.Roster {
	friday := model.CalendarDay{Date: "2025-03-07", Day: 7, Weekday: "Friday", Shifts: map[shifts.ID]model.Assignment{}}
	saturday := model.CalendarDay{Date: "2025-03-08", Day: 8, Weekday: "Saturday", Shifts: map[shifts.ID]model.Assignment{}}
	for _, id := range catalog.IDs() {
		friday.Shifts[id] = model.Assignment{Notes: "No eligible staff"}
		saturday.Shifts[id] = model.Assignment{Notes: "No eligible staff"}
	}
	friday.Shifts[shifts.HD] = model.Assignment{StaffID: "s1", Notes: "Assigned based on wish"}
	saturday.Shifts[shifts.OA] = model.Assignment{StaffID: "s9", Notes: "Weekend pair (1/2)"}
	saturday.Shifts[shifts.ICUMidday] = model.Assignment{Notes: "Not available on weekends"}

	return &model.Roster{Year: 2025, Month: 3, Days: []model.CalendarDay{friday, saturday}}
}

func TestMonthTitle(t *testing.T) {
	assert.Equal(t, "March 2025", MonthTitle(2025, 3))
	assert.Equal(t, "December 2024", MonthTitle(2024, 12))
}

func TestRosterGrid(t *testing.T) {
	catalog := shifts.DefaultCatalog()
	names := StaffNames([]model.StaffMember{{ID: "s1", Name: "Anna"}})

	header, rows := RosterGrid(twoDayRoster(catalog), catalog, names)

	require.Len(t, header, len(catalog.IDs())+2)
	assert.Equal(t, []string{"Date", "Weekday", "HD Shift"}, header[:3])

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2025-03-07", "Friday", "Anna"}, rows[0][:3])

	oaCol := -1
	for i, h := range header {
		if h == catalog.MustGet(shifts.OA).Name {
			oaCol = i
		}
	}
	require.NotEqual(t, -1, oaCol)
	assert.Equal(t, "s9", rows[1][oaCol], "unknown staff fall back to their id")
	assert.Equal(t, "", rows[0][oaCol])
}

func TestWriteRosterXLSX(t *testing.T) {
	catalog := shifts.DefaultCatalog()
	var buf bytes.Buffer

	err := WriteRosterXLSX(&buf, twoDayRoster(catalog), catalog, map[string]string{"s1": "Anna", "s9": "Ben"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"March 2025"}, f.GetSheetList())

	rows, err := f.GetRows("March 2025")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, []string{"2025-03-07", "Friday", "Anna"}, rows[1][:3])

	comments, err := f.GetComments("March 2025")
	require.NoError(t, err)
	assert.NotEmpty(t, comments)
	for _, c := range comments {
		assert.NotEqual(t, "Not available on weekends", c.Text)
	}
}

func TestCalendarICS(t *testing.T) {
	cal := &statistics.StaffCalendar{
		StaffID: "s1",
		Shifts: []statistics.CalendarEntry{{
			Date:    "2025-03-07",
			Weekday: "Friday",
			Shifts: []statistics.CalendarShift{{
				Shift: shifts.ICUNight, Start: "21:30", End: "08:00", DurationHours: 10.5, Notes: "Block assignment (1/4)",
			}},
		}},
		Absences: []model.Absence{{StaffID: "s1", StartDate: "2025-03-10", EndDate: "2025-03-12", Type: model.AbsenceVacation}},
	}

	out, err := CalendarICS(cal, shifts.DefaultCatalog(), time.UTC, time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "SUMMARY:ICU Night")
	assert.Contains(t, out, "DTSTART:20250307T213000Z")
	assert.Contains(t, out, "DTEND:20250308T080000Z")
	assert.Contains(t, out, "SUMMARY:Vacation")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20250310")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20250313")
}

func TestCalendarICS_BadStart(t *testing.T) {
	cal := &statistics.StaffCalendar{
		StaffID: "s1",
		Shifts: []statistics.CalendarEntry{{
			Date:   "2025-03-07",
			Shifts: []statistics.CalendarShift{{Shift: "custom", Start: "", DurationHours: 8}},
		}},
	}

	_, err := CalendarICS(cal, shifts.DefaultCatalog(), time.UTC, time.Now())
	assert.Error(t, err)
}
