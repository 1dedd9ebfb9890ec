package shifts

// Rules holds the month-level scheduling limits
type Rules struct {
	// MaxWeekendsPerMonth caps weekend shifts per staff member during the greedy fill
	MaxWeekendsPerMonth int

	// MinRestHours between two shifts; recorded for reporting, not enforced
	MinRestHours int
}

// DefaultRules returns the ward's standard limits
func DefaultRules() Rules {
	return Rules{
		MaxWeekendsPerMonth: 2,
		MinRestHours:        11,
	}
}

func intPtr(v int) *int { return &v }

// defaultShiftTypes is the versioned shift table shipped with the engine.
// Order matters: the greedy fill walks shifts in this order.
var defaultShiftTypes = []ShiftType{
	{
		ID:               HD,
		Name:             "HD Shift",
		Description:      "HD shift from 9:00 to 9:00 the next day",
		Start:            "09:00",
		End:              "09:00",
		DurationHours:    24,
		ForcesNextDayOff: true,
		MonthlyLimit:     intPtr(4),
		WeekendAvailable: true,
	},
	{
		ID:               ICUMorning,
		Name:             "ICU Morning",
		Description:      "ICU morning shift from 7:00 to 17:00",
		Start:            "07:00",
		End:              "17:00",
		DurationHours:    10,
		WeekendAvailable: true,
		ConsecutiveRun:   &RunTarget{Min: 5, Max: 7},
		DisplayOrder:     1,
	},
	{
		ID:               ICUMidday,
		Name:             "ICU Midday",
		Description:      "ICU midday shift from 12:00 to 22:00",
		Start:            "12:00",
		End:              "22:00",
		DurationHours:    10,
		WeekendAvailable: false,
		ConsecutiveRun:   &RunTarget{Min: 5, Max: 5},
		DisplayOrder:     2,
	},
	{
		ID:               ICUNight,
		Name:             "ICU Night",
		Description:      "ICU night shift from 21:30 to 8:00 the next day (that day is free)",
		Start:            "21:30",
		End:              "08:00",
		DurationHours:    10.5,
		ForcesNextDayOff: true,
		WeekendAvailable: true,
		ConsecutiveRun:   &RunTarget{Min: 3, Max: 4},
		DisplayOrder:     3,
	},
	{
		ID:                  Rufdienst,
		Name:                "Rufdienst",
		Description:         "On-call shift from 11:00 to 20:00 on-site, then on-call until 7:00 next day",
		Start:               "11:00",
		End:                 "08:00",
		DurationHours:       21,
		WeekendAvailable:    true,
		WeekendPairRequired: true,
		OnCall:              true,
	},
	{
		ID:                  OA,
		Name:                "OA Shift",
		Description:         "OA shift from 12:00 to 20:00 on-site, then on-call",
		Start:               "12:00",
		End:                 "20:00",
		DurationHours:       8,
		WeekendAvailable:    true,
		WeekendPairRequired: true,
		OnCall:              true,
	},
	{
		ID:                   TransplantImplant,
		Name:                 "Transplant Implant",
		Description:          "Transplant implant shift from 7:00 to 7:00 next day, on-call at night",
		Start:                "07:00",
		End:                  "07:00",
		DurationHours:        24,
		ForcesNextDayOff:     true,
		WeekendAvailable:     true,
		WeekendBlockRequired: true,
		OnCall:               true,
	},
	{
		ID:                   TransplantExplant1,
		Name:                 "Transplant Explant 1",
		Description:          "First transplant explant shift from 7:00 to 7:00 next day, on-call at night",
		Start:                "07:00",
		End:                  "07:00",
		DurationHours:        24,
		ForcesNextDayOff:     true,
		WeekendAvailable:     true,
		WeekendBlockRequired: true,
		OnCall:               true,
	},
	{
		ID:                   TransplantExplant2,
		Name:                 "Transplant Explant 2",
		Description:          "Second transplant explant shift from 7:00 to 7:00 next day, on-call at night",
		Start:                "07:00",
		End:                  "07:00",
		DurationHours:        24,
		ForcesNextDayOff:     true,
		WeekendAvailable:     true,
		WeekendBlockRequired: true,
		OnCall:               true,
	},
}

// DefaultCatalog returns the standard ward catalog
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultShiftTypes)
	if err != nil {
		// The built-in table is static; a failure here is a programming error
		panic(err)
	}
	return c
}
