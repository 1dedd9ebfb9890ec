package roster

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jakechorley/ward-roster/pkg/core/model"
)

// RecurringStatus marks absences generated from a recurring rule
const RecurringStatus = "recurring"

// ExpandRecurringAbsences turns each recurring rule into single-day absences
// for every occurrence inside the given month
func ExpandRecurringAbsences(recurring []model.RecurringAbsence, year, month int) ([]model.Absence, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(year, time.Month(month), DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)

	var absences []model.Absence
	for i, r := range recurring {
		rule, err := rrule.StrToRRule(r.RRule)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rrule for recurring absence %d: %w", i, err)
		}

		// Occurrences are anchored at the start of the month
		rule.DTStart(monthStart)

		absenceType := r.Type
		if absenceType == "" {
			absenceType = model.AbsenceOther
		}

		for _, occurrence := range rule.Between(monthStart, monthEnd, true) {
			date := occurrence.Format(model.DateLayout)
			absences = append(absences, model.Absence{
				StaffID:   r.StaffID,
				StartDate: date,
				EndDate:   date,
				Type:      absenceType,
				Status:    RecurringStatus,
			})
		}
	}

	return absences, nil
}
