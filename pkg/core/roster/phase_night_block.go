package roster

import "github.com/jakechorley/ward-roster/pkg/core/shifts"

// nightBlockPhase scans the month left to right assigning consecutive runs of a
// shift, preferring the longest run length the shift allows
type nightBlockPhase struct {
	shift shifts.ID
}

func (nightBlockPhase) Name() string { return "night_block" }

func (p nightBlockPhase) Apply(s *runState) {
	st, err := s.catalog.Get(p.shift)
	if err != nil || st.ConsecutiveRun == nil {
		return
	}
	run := *st.ConsecutiveRun

	i := 0
	for i < len(s.days) {
		if !s.slotOpen(i, st) {
			i++
			continue
		}

		assigned := 0
		for size := run.Max; size >= run.Min && assigned == 0; size-- {
			for _, member := range s.staff {
				if !s.capable(member.ID, st.ID) || !s.canTakeRun(member.ID, st, i, size) {
					continue
				}
				for k := 0; k < size; k++ {
					s.assign(i+k, st.ID, member.ID, nightBlockNote(k+1, size), s.days[i+k].IsWeekend())
				}
				assigned = size
				break
			}
		}

		if assigned == 0 {
			i++
			continue
		}
		i += assigned
	}
}
