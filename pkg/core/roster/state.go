package roster

import (
	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

// runState is the calendar and lookup state shared by every phase of one run
type runState struct {
	days     []model.CalendarDay
	staff    []model.StaffMember
	caps     map[string]CapabilitySet
	absences AbsenceIndex
	wishes   WishIndex
	tracker  *Tracker
	catalog  *shifts.Catalog
	rules    shifts.Rules
}

func (s *runState) capable(staffID string, id shifts.ID) bool {
	caps, ok := s.caps[staffID]
	return ok && caps.Can(id)
}

// heldOn returns the shift the staff member holds on day i, if any
func (s *runState) heldOn(i int, staffID string) (shifts.ID, bool) {
	if i < 0 || i >= len(s.days) {
		return "", false
	}
	for _, id := range s.catalog.IDs() {
		if a, ok := s.days[i].Shifts[id]; ok && a.StaffID == staffID {
			return id, true
		}
	}
	return "", false
}

// forcedOff reports whether a next-day-off shift on day i-1 rules the staff member out of day i
func (s *runState) forcedOff(i int, staffID string) bool {
	id, ok := s.heldOn(i-1, staffID)
	return ok && s.catalog.MustGet(id).ForcesNextDayOff
}

// slotOpen reports whether the shift slot on day i can still be filled
func (s *runState) slotOpen(i int, st shifts.ShiftType) bool {
	day := &s.days[i]
	if !st.WeekendAvailable && day.IsWeekend() {
		return false
	}
	a, ok := day.Shifts[st.ID]
	return ok && !a.IsAssigned()
}

// canTakeRun reports whether the staff member can hold the shift on every day of
// [start, start+length) as one unit. Inside the run the next-day-off rule is not
// applied between the run's own days.
func (s *runState) canTakeRun(staffID string, st shifts.ShiftType, start, length int) bool {
	if start < 0 || start+length > len(s.days) {
		return false
	}

	if st.MonthlyLimit != nil && s.tracker.ShiftCount(staffID, st.ID)+length > *st.MonthlyLimit {
		return false
	}

	if s.forcedOff(start, staffID) {
		return false
	}

	for i := start; i < start+length; i++ {
		if !s.slotOpen(i, st) {
			return false
		}
		if s.absences.IsAbsent(s.days[i].Date, staffID) {
			return false
		}
		if s.days[i].Holds(staffID) {
			return false
		}
	}

	// The day after a next-day-off run must be empty for this staff member
	if st.ForcesNextDayOff {
		if _, held := s.heldOn(start+length, staffID); held {
			return false
		}
	}

	return true
}

func (s *runState) canTake(staffID string, st shifts.ShiftType, i int) bool {
	return s.canTakeRun(staffID, st, i, 1)
}

func (s *runState) assign(i int, id shifts.ID, staffID, note string, countWeekend bool) {
	s.days[i].Shifts[id] = model.Assignment{StaffID: staffID, Notes: note}
	s.tracker.Record(staffID, s.days[i].Date, id, countWeekend)
}

func (s *runState) assignmentCount() int {
	count := 0
	for i := range s.days {
		for _, a := range s.days[i].Shifts {
			if a.IsAssigned() {
				count++
			}
		}
	}
	return count
}
