package roster

import "time"

// weekendBlockPhase gives each Friday-Sunday span of a block shift to one staff member
type weekendBlockPhase struct{}

func (weekendBlockPhase) Name() string { return "weekend_block" }

func (weekendBlockPhase) Apply(s *runState) {
	for i := 0; i+2 < len(s.days); i++ {
		if s.days[i].Weekday != time.Friday.String() {
			continue
		}

		for _, st := range s.catalog.All() {
			if !st.WeekendBlockRequired {
				continue
			}

			for _, member := range s.staff {
				if !s.capable(member.ID, st.ID) || !s.canTakeRun(member.ID, st, i, 3) {
					continue
				}

				for k := 0; k < 3; k++ {
					// The block counts as one weekend, recorded on the Saturday
					s.assign(i+k, st.ID, member.ID, weekendBlockNote(k+1), k == 1)
				}
				break
			}
		}
	}
}
