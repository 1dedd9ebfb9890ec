package shifts

import "fmt"

// ID identifies a shift type
type ID string

// Shift type identifiers. The string values are the ones stored in rosters,
// staff capability lists and wish records.
const (
	HD                 ID = "HD"
	ICUMorning         ID = "ICU_morning"
	ICUMidday          ID = "ICU_midday"
	ICUNight           ID = "ICU_night"
	Rufdienst          ID = "Rufdienst"
	OA                 ID = "OA"
	TransplantImplant  ID = "Transplant_implant"
	TransplantExplant1 ID = "Transplant_explant_1"
	TransplantExplant2 ID = "Transplant_explant_2"
)

// RunTarget is the desired length of a consecutive run of one shift type
type RunTarget struct {
	Min int
	Max int
}

// ShiftType describes the timing and behaviour of a recurring shift
type ShiftType struct {
	ID          ID
	Name        string
	Description string

	// Start and End are times of day ("HH:MM"); End may be on the following day
	Start         string
	End           string
	DurationHours float64

	// ForcesNextDayOff makes the assigned staff member unavailable the following day
	ForcesNextDayOff bool

	// MonthlyLimit caps how many of this shift one staff member may hold per month (nil = no cap)
	MonthlyLimit *int

	// WeekendAvailable is false for shifts that are never staffed on Saturday or Sunday
	WeekendAvailable bool

	// ConsecutiveRun is the desired run length when the shift is assigned in blocks
	ConsecutiveRun *RunTarget

	// WeekendPairRequired means Saturday and Sunday go to the same person
	WeekendPairRequired bool

	// WeekendBlockRequired means Friday to Sunday go to the same person
	WeekendBlockRequired bool

	OnCall       bool
	DisplayOrder int
}

// ConfigurationError is returned when an unknown shift id is referenced
type ConfigurationError struct {
	ShiftID ID
	Context string
}

func (e *ConfigurationError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("unknown shift type %q referenced by %s", e.ShiftID, e.Context)
	}
	return fmt.Sprintf("unknown shift type %q", e.ShiftID)
}

// Catalog is an immutable, ordered table of shift types
type Catalog struct {
	ordered []ShiftType
	byID    map[ID]ShiftType
}

// NewCatalog builds a catalog from the given shift types, keeping their order.
// Duplicate ids are rejected.
func NewCatalog(types []ShiftType) (*Catalog, error) {
	c := &Catalog{
		ordered: make([]ShiftType, 0, len(types)),
		byID:    make(map[ID]ShiftType, len(types)),
	}
	for _, st := range types {
		if st.ID == "" {
			return nil, fmt.Errorf("shift type with empty id")
		}
		if _, exists := c.byID[st.ID]; exists {
			return nil, fmt.Errorf("duplicate shift type %q", st.ID)
		}
		c.ordered = append(c.ordered, st)
		c.byID[st.ID] = st
	}
	return c, nil
}

// Get returns the shift type with the given id
func (c *Catalog) Get(id ID) (ShiftType, error) {
	st, ok := c.byID[id]
	if !ok {
		return ShiftType{}, &ConfigurationError{ShiftID: id}
	}
	return st, nil
}

// MustGet is Get for ids known to be in the catalog
func (c *Catalog) MustGet(id ID) ShiftType {
	st, err := c.Get(id)
	if err != nil {
		panic(err)
	}
	return st
}

// Has reports whether the catalog contains the id
func (c *Catalog) Has(id ID) bool {
	_, ok := c.byID[id]
	return ok
}

// All returns the shift types in catalog order
func (c *Catalog) All() []ShiftType {
	out := make([]ShiftType, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// IDs returns the shift ids in catalog order
func (c *Catalog) IDs() []ID {
	ids := make([]ID, len(c.ordered))
	for i, st := range c.ordered {
		ids[i] = st.ID
	}
	return ids
}

// Check returns a ConfigurationError for the first id not in the catalog
func (c *Catalog) Check(context string, ids ...ID) error {
	for _, id := range ids {
		if !c.Has(id) {
			return &ConfigurationError{ShiftID: id, Context: context}
		}
	}
	return nil
}
