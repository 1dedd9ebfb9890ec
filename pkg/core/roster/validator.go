package roster

import (
	"fmt"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

// Rule names reported in violations
const (
	RuleOneShiftPerDay = "one_shift_per_day"
	RuleAbsent         = "absent"
	RuleWeekendShift   = "weekend_unavailable_shift"
	RuleNextDayOff     = "next_day_off"
	RuleMonthlyLimit   = "monthly_limit"
)

// Violation describes a roster assignment that breaks a scheduling rule
type Violation struct {
	Date        string
	StaffID     string
	Shift       shifts.ID
	Rule        string
	Description string
}

// ValidateRoster checks a finished roster against the hard scheduling rules.
// An empty slice indicates the roster is valid.
func ValidateRoster(days []model.CalendarDay, catalog *shifts.Catalog, absences AbsenceIndex) []Violation {
	var violations []Violation
	counts := make(map[string]map[shifts.ID]int)

	for i := range days {
		day := &days[i]
		heldToday := make(map[string]shifts.ID)

		for _, id := range catalog.IDs() {
			a, ok := day.Shifts[id]
			if !ok || !a.IsAssigned() {
				continue
			}
			st := catalog.MustGet(id)

			if first, dup := heldToday[a.StaffID]; dup {
				violations = append(violations, Violation{
					Date: day.Date, StaffID: a.StaffID, Shift: id, Rule: RuleOneShiftPerDay,
					Description: fmt.Sprintf("also assigned %s on the same day", first),
				})
			} else {
				heldToday[a.StaffID] = id
			}

			if absences.IsAbsent(day.Date, a.StaffID) {
				violations = append(violations, Violation{
					Date: day.Date, StaffID: a.StaffID, Shift: id, Rule: RuleAbsent,
					Description: "assigned on a day of recorded absence",
				})
			}

			if !st.WeekendAvailable && day.IsWeekend() {
				violations = append(violations, Violation{
					Date: day.Date, StaffID: a.StaffID, Shift: id, Rule: RuleWeekendShift,
					Description: fmt.Sprintf("%s is not scheduled on %s", id, day.Weekday),
				})
			}

			// Consecutive days of a block shift are a run, not a breach of the day off
			if i > 0 {
				for _, prevID := range days[i-1].ShiftsFor(a.StaffID, catalog) {
					if catalog.MustGet(prevID).ForcesNextDayOff && !(prevID == id && assignedInBlocks(st)) {
						violations = append(violations, Violation{
							Date: day.Date, StaffID: a.StaffID, Shift: id, Rule: RuleNextDayOff,
							Description: fmt.Sprintf("previous day's %s requires a day off", prevID),
						})
					}
				}
			}

			if counts[a.StaffID] == nil {
				counts[a.StaffID] = make(map[shifts.ID]int)
			}
			counts[a.StaffID][id]++
			if st.MonthlyLimit != nil && counts[a.StaffID][id] == *st.MonthlyLimit+1 {
				violations = append(violations, Violation{
					Date: day.Date, StaffID: a.StaffID, Shift: id, Rule: RuleMonthlyLimit,
					Description: fmt.Sprintf("exceeds monthly limit of %d", *st.MonthlyLimit),
				})
			}
		}
	}

	return violations
}

// assignedInBlocks reports whether the shift is handed out as multi-day runs
func assignedInBlocks(st shifts.ShiftType) bool {
	return st.ConsecutiveRun != nil || st.WeekendBlockRequired
}
