package model

import (
	"fmt"
	"time"

	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

// DateLayout is the ISO date format used for every stored date
const DateLayout = "2006-01-02"

type AbsenceType string

const (
	AbsenceSick     AbsenceType = "sick"
	AbsenceVacation AbsenceType = "vacation"
	AbsenceOther    AbsenceType = "other"
)

// StaffMember represents a member of the ward staff
type StaffMember struct {
	ID             string      `json:"id" yaml:"id" validate:"required"`
	Name           string      `json:"name" yaml:"name" validate:"required"`
	Capabilities   []shifts.ID `json:"capabilities" yaml:"capabilities"`
	RequiredShifts int         `json:"required_shifts" yaml:"required_shifts" validate:"min=0"`
}

// Absence is an inclusive date range during which a staff member cannot work
type Absence struct {
	StaffID   string      `json:"staff_id" yaml:"staff_id" validate:"required"`
	StartDate string      `json:"start_date" yaml:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string      `json:"end_date" yaml:"end_date" validate:"required,datetime=2006-01-02"`
	Type      AbsenceType `json:"type" yaml:"type" validate:"omitempty,oneof=sick vacation other"`
	Status    string      `json:"status" yaml:"status"`
}

// Dates returns every date covered by the absence, in order
func (a Absence) Dates() ([]string, error) {
	start, err := time.Parse(DateLayout, a.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date %q: %w", a.StartDate, err)
	}
	end, err := time.Parse(DateLayout, a.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end_date %q: %w", a.EndDate, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end_date %s is before start_date %s", a.EndDate, a.StartDate)
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates, nil
}

// DayCount returns the number of days in the absence (inclusive)
func (a Absence) DayCount() (int, error) {
	dates, err := a.Dates()
	if err != nil {
		return 0, err
	}
	return len(dates), nil
}

// Wish is a staff member's request to work a particular shift on a date
type Wish struct {
	StaffID string    `json:"staff_id" yaml:"staff_id" validate:"required"`
	Date    string    `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	Shift   shifts.ID `json:"shift" yaml:"shift" validate:"required"`
}

// RecurringAbsence is an absence that repeats according to an RFC 5545 RRULE,
// e.g. "FREQ=WEEKLY;BYDAY=WE" for every Wednesday
type RecurringAbsence struct {
	StaffID string      `yaml:"staffID" validate:"required"`
	RRule   string      `yaml:"rrule" validate:"required"`
	Type    AbsenceType `yaml:"type,omitempty" validate:"omitempty,oneof=sick vacation other"`
}
