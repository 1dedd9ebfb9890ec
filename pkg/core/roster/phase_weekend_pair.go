package roster

import (
	"time"

	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

// weekendPairPhase gives Saturday and Sunday of each pair shift to the same person.
// Shifts are processed in the given order across the whole month.
type weekendPairPhase struct {
	shifts []shifts.ID
}

func (weekendPairPhase) Name() string { return "weekend_pair" }

func (p weekendPairPhase) Apply(s *runState) {
	for _, id := range p.shifts {
		st, err := s.catalog.Get(id)
		if err != nil || !st.WeekendPairRequired {
			continue
		}

		for i := 0; i+1 < len(s.days); i++ {
			if s.days[i].Weekday != time.Saturday.String() || s.days[i+1].Weekday != time.Sunday.String() {
				continue
			}

			for _, member := range s.staff {
				// canTakeRun skips anyone already holding a shift on either day, for OA as well as Rufdienst
				if !s.capable(member.ID, st.ID) || !s.canTakeRun(member.ID, st, i, 2) {
					continue
				}
				s.assign(i, st.ID, member.ID, weekendPairNote(1), true)
				s.assign(i+1, st.ID, member.ID, weekendPairNote(2), false)
				break
			}
		}
	}
}
