package statistics

import (
	"fmt"
	"strings"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

// StaffStatistics summarises one staff member's rostered work and absences
type StaffStatistics struct {
	Name            string            `json:"name"`
	TotalShifts     int               `json:"total_shifts"`
	ShiftsByType    map[shifts.ID]int `json:"shifts_by_type"`
	Absences        int               `json:"absences"`
	SickDays        int               `json:"sick_days"`
	VacationDays    int               `json:"vacation_days"`
	WeekendsWorked  int               `json:"weekends_worked"`
	WishesGranted   int               `json:"wishes_granted"`
	RequiredShifts  int               `json:"required_shifts"`
	RemainingShifts int               `json:"remaining_shifts"`
}

// Statistics is the reporting view over the rosters of a period
type Statistics struct {
	Period Period `json:"period"`

	// Staff is keyed by staff id; StaffOrder keeps the staff list order
	Staff      map[string]*StaffStatistics `json:"staff"`
	StaffOrder []string                    `json:"-"`

	// ShiftTotals counts assignments per shift across all staff
	ShiftTotals map[shifts.ID]int `json:"shift_totals"`

	// Unfilled counts open slots, excluding shifts not scheduled on weekends
	Unfilled int `json:"unfilled"`

	Rosters  []string `json:"rosters"`
	Warnings []string `json:"warnings,omitempty"`
}

// Compute aggregates the stored rosters of the period against the staff list
// and absence records. It fails only on a roster key that is not "YYYY-MM".
func Compute(
	rosters map[string][]model.CalendarDay,
	staff []model.StaffMember,
	absences []model.Absence,
	period Period,
	catalog *shifts.Catalog,
) (*Statistics, error) {
	keys, err := selectRosters(rosters, period)
	if err != nil {
		return nil, err
	}

	stats := &Statistics{
		Period:      period,
		Staff:       make(map[string]*StaffStatistics, len(staff)),
		StaffOrder:  make([]string, 0, len(staff)),
		ShiftTotals: make(map[shifts.ID]int),
		Rosters:     keys,
	}

	for _, member := range staff {
		if _, dup := stats.Staff[member.ID]; dup {
			continue
		}
		byType := make(map[shifts.ID]int)
		for _, id := range catalog.IDs() {
			byType[id] = 0
		}
		stats.Staff[member.ID] = &StaffStatistics{
			Name:            member.Name,
			ShiftsByType:    byType,
			RequiredShifts:  member.RequiredShifts,
			RemainingShifts: member.RequiredShifts,
		}
		stats.StaffOrder = append(stats.StaffOrder, member.ID)
	}

	for _, key := range keys {
		for _, day := range rosters[key] {
			stats.addDay(day, catalog)
		}
	}

	for i, absence := range absences {
		s, ok := stats.Staff[absence.StaffID]
		if !ok {
			continue
		}

		included, err := period.includesAbsence(absence)
		if err != nil {
			stats.Warnings = append(stats.Warnings, fmt.Sprintf("absence %d: %v", i, err))
			continue
		}
		if !included {
			continue
		}

		days, err := absence.DayCount()
		if err != nil {
			stats.Warnings = append(stats.Warnings, fmt.Sprintf("absence %d: %v", i, err))
			continue
		}

		s.Absences += days
		switch absence.Type {
		case model.AbsenceSick:
			s.SickDays += days
		case model.AbsenceVacation:
			s.VacationDays += days
		}
	}

	for _, s := range stats.Staff {
		s.RemainingShifts = max(0, s.RequiredShifts-s.TotalShifts)
	}

	return stats, nil
}

func (stats *Statistics) addDay(day model.CalendarDay, catalog *shifts.Catalog) {
	weekend := day.IsWeekend()

	for id, a := range day.Shifts {
		if !a.IsAssigned() {
			st, err := catalog.Get(id)
			if err == nil && (st.WeekendAvailable || !weekend) {
				stats.Unfilled++
			}
			continue
		}

		stats.ShiftTotals[id]++

		s, ok := stats.Staff[a.StaffID]
		if !ok {
			continue
		}

		s.TotalShifts++
		s.ShiftsByType[id]++
		if weekend {
			s.WeekendsWorked++
		}
		if strings.Contains(strings.ToLower(a.Notes), "wish") {
			s.WishesGranted++
		}
	}
}
