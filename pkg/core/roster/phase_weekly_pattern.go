package roster

import "github.com/jakechorley/ward-roster/pkg/core/shifts"

// weeklyTarget is a shift assigned a week at a time and the minimum number of
// available days a staff member needs in the window to take it
type weeklyTarget struct {
	Shift   shifts.ID
	MinDays int
}

// weeklyPatternPhase hands each 7-day window of a shift to a single staff member
type weeklyPatternPhase struct {
	targets []weeklyTarget
}

func (weeklyPatternPhase) Name() string { return "weekly_pattern" }

func (p weeklyPatternPhase) Apply(s *runState) {
	for start := 0; start < len(s.days); start += 7 {
		end := min(start+7, len(s.days))

		for _, target := range p.targets {
			st, err := s.catalog.Get(target.Shift)
			if err != nil {
				continue
			}

			for _, member := range s.staff {
				if !s.capable(member.ID, st.ID) {
					continue
				}

				available := 0
				for i := start; i < end; i++ {
					if s.canTake(member.ID, st, i) {
						available++
					}
				}
				if available < target.MinDays {
					continue
				}

				for i := start; i < end; i++ {
					if s.canTake(member.ID, st, i) {
						s.assign(i, st.ID, member.ID, NoteWeeklyAssignment, s.days[i].IsWeekend())
					}
				}
				break
			}
		}
	}
}
