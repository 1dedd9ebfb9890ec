package roster

import "github.com/jakechorley/ward-roster/pkg/core/shifts"

// greedyFillPhase fills every remaining slot day by day, preferring staff who
// wished for the slot and falling back to anyone eligible in staff-list order
type greedyFillPhase struct{}

func (greedyFillPhase) Name() string { return "greedy_fill" }

func (greedyFillPhase) Apply(s *runState) {
	for i := range s.days {
		day := &s.days[i]
		weekend := day.IsWeekend()

		for _, st := range s.catalog.All() {
			if !s.slotOpen(i, st) {
				continue
			}

			staffID, note := "", ""
			for _, requester := range s.wishes.Requesters(day.Date, st.ID) {
				if s.eligible(requester, st, i) {
					staffID, note = requester, NoteAssignedByWish
					break
				}
			}

			if staffID == "" {
				for _, member := range s.staff {
					if s.eligible(member.ID, st, i) {
						staffID, note = member.ID, NoteAssignedAvailable
						break
					}
				}
			}

			if staffID == "" {
				a := day.Shifts[st.ID]
				a.Notes = NoteNoEligibleStaff
				day.Shifts[st.ID] = a
				continue
			}

			s.assign(i, st.ID, staffID, note, weekend)
		}
	}
}

// eligible applies capability, availability, monthly limit and weekend cap checks
func (s *runState) eligible(staffID string, st shifts.ShiftType, i int) bool {
	if !s.capable(staffID, st.ID) {
		return false
	}
	if s.days[i].IsWeekend() && s.tracker.WeekendCount(staffID) >= s.rules.MaxWeekendsPerMonth {
		return false
	}
	return s.canTake(staffID, st, i)
}
