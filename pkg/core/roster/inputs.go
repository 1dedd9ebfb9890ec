package roster

import (
	"fmt"
	"time"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

// ValidationError describes an input record that was skipped during normalisation
type ValidationError struct {
	Kind   string
	Index  int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("skipped %s record %d: %s", e.Kind, e.Index, e.Reason)
}

// AbsenceIndex maps a date to the set of staff ids absent on it
type AbsenceIndex map[string]map[string]struct{}

// IsAbsent reports whether the staff member is absent on the date
func (ai AbsenceIndex) IsAbsent(date, staffID string) bool {
	_, ok := ai[date][staffID]
	return ok
}

// WishIndex maps date -> shift id -> staff ids in submission order
type WishIndex map[string]map[shifts.ID][]string

// Requesters returns the staff ids who wished for the shift on the date
func (wi WishIndex) Requesters(date string, shiftID shifts.ID) []string {
	return wi[date][shiftID]
}

// CapabilitySet is the set of shift ids a staff member may be assigned
type CapabilitySet map[shifts.ID]struct{}

// Can reports whether the set contains the shift
func (cs CapabilitySet) Can(id shifts.ID) bool {
	_, ok := cs[id]
	return ok
}

// BuildAbsenceIndex expands each absence into every date of its inclusive range.
// Malformed records are skipped and reported.
func BuildAbsenceIndex(absences []model.Absence) (AbsenceIndex, []*ValidationError) {
	index := make(AbsenceIndex)
	var warnings []*ValidationError

	for i, absence := range absences {
		if absence.StaffID == "" {
			warnings = append(warnings, &ValidationError{Kind: "absence", Index: i, Reason: "missing staff_id"})
			continue
		}

		dates, err := absence.Dates()
		if err != nil {
			warnings = append(warnings, &ValidationError{Kind: "absence", Index: i, Reason: err.Error()})
			continue
		}

		for _, date := range dates {
			if index[date] == nil {
				index[date] = make(map[string]struct{})
			}
			index[date][absence.StaffID] = struct{}{}
		}
	}

	return index, warnings
}

// BuildWishIndex groups wishes by date and shift, preserving input order within each bucket.
// Malformed records are skipped and reported; an unknown shift id is a ConfigurationError.
func BuildWishIndex(wishes []model.Wish, catalog *shifts.Catalog) (WishIndex, []*ValidationError, error) {
	index := make(WishIndex)
	var warnings []*ValidationError

	for i, wish := range wishes {
		if wish.StaffID == "" || wish.Shift == "" {
			warnings = append(warnings, &ValidationError{Kind: "wish", Index: i, Reason: "missing staff_id or shift"})
			continue
		}
		if _, err := time.Parse(model.DateLayout, wish.Date); err != nil {
			warnings = append(warnings, &ValidationError{Kind: "wish", Index: i, Reason: fmt.Sprintf("invalid date %q", wish.Date)})
			continue
		}
		if err := catalog.Check(fmt.Sprintf("wish %d (staff %s)", i, wish.StaffID), wish.Shift); err != nil {
			return nil, warnings, err
		}

		if index[wish.Date] == nil {
			index[wish.Date] = make(map[shifts.ID][]string)
		}
		index[wish.Date][wish.Shift] = append(index[wish.Date][wish.Shift], wish.StaffID)
	}

	return index, warnings, nil
}

// CapabilityLookup maps staff id to capability set. An unknown shift id is a ConfigurationError.
func CapabilityLookup(staff []model.StaffMember, catalog *shifts.Catalog) (map[string]CapabilitySet, error) {
	lookup := make(map[string]CapabilitySet, len(staff))

	for _, member := range staff {
		if err := catalog.Check("staff "+member.ID, member.Capabilities...); err != nil {
			return nil, err
		}

		set := make(CapabilitySet, len(member.Capabilities))
		for _, id := range member.Capabilities {
			set[id] = struct{}{}
		}
		lookup[member.ID] = set
	}

	return lookup, nil
}
