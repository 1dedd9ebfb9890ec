package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

// ErrInvalidRosterKey is returned when a roster store key is not "YYYY-MM"
var ErrInvalidRosterKey = errors.New("invalid roster key")

// Assignment is the occupant of one shift slot on one day.
// An empty StaffID means the slot is unassigned.
type Assignment struct {
	StaffID string `json:"assigned"`
	Notes   string `json:"notes"`
}

// IsAssigned reports whether a staff member holds the slot
func (a Assignment) IsAssigned() bool {
	return a.StaffID != ""
}

// CalendarDay is one day of a roster with a slot per shift type
type CalendarDay struct {
	Date    string                   `json:"date"`
	Day     int                      `json:"day"`
	Weekday string                   `json:"weekday"`
	Shifts  map[shifts.ID]Assignment `json:"shifts"`
}

// IsWeekend reports whether the day is a Saturday or Sunday
func (d *CalendarDay) IsWeekend() bool {
	return d.Weekday == time.Saturday.String() || d.Weekday == time.Sunday.String()
}

// Holds reports whether the staff member is assigned any shift on this day
func (d *CalendarDay) Holds(staffID string) bool {
	for _, a := range d.Shifts {
		if a.StaffID == staffID {
			return true
		}
	}
	return false
}

// ShiftsFor returns the shifts held by the staff member on this day, ordered by the catalog
func (d *CalendarDay) ShiftsFor(staffID string, catalog *shifts.Catalog) []shifts.ID {
	var held []shifts.ID
	for _, id := range catalog.IDs() {
		if a, ok := d.Shifts[id]; ok && a.StaffID == staffID {
			held = append(held, id)
		}
	}
	return held
}

// Roster is a generated month of calendar days
type Roster struct {
	Year        int           `json:"year"`
	Month       int           `json:"month"`
	RunID       string        `json:"run_id,omitempty"`
	GeneratedAt time.Time     `json:"generated_at"`
	Days        []CalendarDay `json:"days"`
}

// Key returns the roster store key for this roster
func (r *Roster) Key() string {
	return RosterKey(r.Year, r.Month)
}

// RosterKey builds the roster store key "YYYY-MM"
func RosterKey(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

// ParseRosterKey parses "YYYY-MM" (a single-digit month is accepted)
func ParseRosterKey(key string) (year, month int, err error) {
	parts := strings.Split(key, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRosterKey, key)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 4 {
		return 0, 0, fmt.Errorf("%w: %q has a bad year", ErrInvalidRosterKey, key)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) > 2 || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: %q has a bad month", ErrInvalidRosterKey, key)
	}

	return year, month, nil
}
