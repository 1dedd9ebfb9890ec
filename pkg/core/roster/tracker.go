package roster

import "github.com/jakechorley/ward-roster/pkg/core/shifts"

// AssignmentRecord is a single assignment in a staff member's run history
type AssignmentRecord struct {
	Date  string
	Shift shifts.ID
}

// TrackerEntry holds the per-staff allocation state for one run
type TrackerEntry struct {
	WeekendCount int
	ShiftStreaks map[shifts.ID]int
	LastShift    *AssignmentRecord
	History      []AssignmentRecord

	shiftCounts map[shifts.ID]int
}

// Tracker records every assignment made during a run.
// It is owned by a single run and is not safe for concurrent use.
type Tracker struct {
	entries map[string]*TrackerEntry
}

func NewTracker() *Tracker {
	return &Tracker{entries: make(map[string]*TrackerEntry)}
}

func (t *Tracker) entry(staffID string) *TrackerEntry {
	e, ok := t.entries[staffID]
	if !ok {
		e = &TrackerEntry{
			ShiftStreaks: make(map[shifts.ID]int),
			shiftCounts:  make(map[shifts.ID]int),
		}
		t.entries[staffID] = e
	}
	return e
}

// Record notes an assignment. countWeekend adds one to the staff member's
// weekend counter; block phases pass it once per weekend unit.
func (t *Tracker) Record(staffID, date string, shiftID shifts.ID, countWeekend bool) {
	e := t.entry(staffID)

	if countWeekend {
		e.WeekendCount++
	}

	for id := range e.ShiftStreaks {
		if id != shiftID {
			e.ShiftStreaks[id] = 0
		}
	}
	e.ShiftStreaks[shiftID]++
	e.shiftCounts[shiftID]++

	rec := AssignmentRecord{Date: date, Shift: shiftID}
	e.LastShift = &rec
	e.History = append(e.History, rec)
}

// WeekendCount returns the number of weekend units the staff member has worked this run
func (t *Tracker) WeekendCount(staffID string) int {
	if e, ok := t.entries[staffID]; ok {
		return e.WeekendCount
	}
	return 0
}

// LastShift returns the most recent assignment, or nil if none
func (t *Tracker) LastShift(staffID string) *AssignmentRecord {
	if e, ok := t.entries[staffID]; ok {
		return e.LastShift
	}
	return nil
}

// Streak returns the current consecutive-run length for the shift
func (t *Tracker) Streak(staffID string, shiftID shifts.ID) int {
	if e, ok := t.entries[staffID]; ok {
		return e.ShiftStreaks[shiftID]
	}
	return 0
}

// ShiftCount returns how many times the staff member holds the shift this run
func (t *Tracker) ShiftCount(staffID string, shiftID shifts.ID) int {
	if e, ok := t.entries[staffID]; ok {
		return e.shiftCounts[shiftID]
	}
	return 0
}

// History returns a copy of the staff member's assignments in the order they were made
func (t *Tracker) History(staffID string) []AssignmentRecord {
	e, ok := t.entries[staffID]
	if !ok {
		return nil
	}
	out := make([]AssignmentRecord, len(e.History))
	copy(out, e.History)
	return out
}
