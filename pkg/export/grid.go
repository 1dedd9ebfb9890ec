package export

import (
	"fmt"
	"time"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

// MonthTitle names a roster month the way tabs and sheets are titled, e.g. "March 2025"
func MonthTitle(year, month int) string {
	return fmt.Sprintf("%s %d", time.Month(month), year)
}

// RosterGrid lays out a roster as one row per day and one column per shift type.
// Cells hold the assigned staff member's name (their id if the name is unknown)
// and are empty for unassigned slots.
func RosterGrid(roster *model.Roster, catalog *shifts.Catalog, names map[string]string) (header []string, rows [][]string) {
	all := catalog.All()

	header = make([]string, 0, len(all)+2)
	header = append(header, "Date", "Weekday")
	for _, st := range all {
		header = append(header, st.Name)
	}

	rows = make([][]string, 0, len(roster.Days))
	for _, day := range roster.Days {
		row := make([]string, 0, len(header))
		row = append(row, day.Date, day.Weekday)
		for _, st := range all {
			row = append(row, displayName(day.Shifts[st.ID].StaffID, names))
		}
		rows = append(rows, row)
	}

	return header, rows
}

// StaffNames indexes staff names by id
func StaffNames(staff []model.StaffMember) map[string]string {
	names := make(map[string]string, len(staff))
	for _, s := range staff {
		names[s.ID] = s.Name
	}
	return names
}

func displayName(staffID string, names map[string]string) string {
	if staffID == "" {
		return ""
	}
	if name, ok := names[staffID]; ok && name != "" {
		return name
	}
	return staffID
}
