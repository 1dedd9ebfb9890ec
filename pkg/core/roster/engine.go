package roster

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

// phase is one step of the allocation pipeline. Phases run in a fixed order and
// each one claims dates and staff before the next sees them.
type phase interface {
	Name() string
	Apply(s *runState)
}

// Request contains the inputs for generating one month
type Request struct {
	Year  int
	Month int

	// Staff in priority order; ties in every phase go to the earlier member
	Staff []model.StaffMember

	Absences []model.Absence

	// Wishes in submission order; the first requester of a slot wins
	Wishes []model.Wish
}

// UnfilledSlot is a shift slot no staff member could be assigned to
type UnfilledSlot struct {
	Date  string
	Shift shifts.ID
}

// Result represents the outcome of a generation run
type Result struct {
	Roster *model.Roster

	// Warnings lists every input record that was skipped
	Warnings []*ValidationError

	// Unfilled lists open slots; an under-staffed month is a normal outcome
	Unfilled []UnfilledSlot

	// Violations contains any rule violations found in the final roster
	Violations []Violation

	// Tracker is the per-staff state at the end of the run
	Tracker *Tracker
}

// Engine generates monthly rosters from a shift catalog and ward rules
type Engine struct {
	catalog *shifts.Catalog
	rules   shifts.Rules
	logger  *zap.Logger
	phases  []phase
}

// NewEngine creates an engine with the standard phase order
func NewEngine(catalog *shifts.Catalog, rules shifts.Rules, logger *zap.Logger) *Engine {
	return &Engine{
		catalog: catalog,
		rules:   rules,
		logger:  logger,
		phases: []phase{
			weekendBlockPhase{},
			weeklyPatternPhase{targets: []weeklyTarget{
				{Shift: shifts.ICUMorning, MinDays: 4},
				{Shift: shifts.ICUMidday, MinDays: 3},
			}},
			nightBlockPhase{shift: shifts.ICUNight},
			weekendPairPhase{shifts: []shifts.ID{shifts.OA, shifts.Rufdienst}},
			greedyFillPhase{},
		},
	}
}

// Generate runs every phase over an empty calendar for the requested month.
// A ConfigurationError aborts the run before any assignment is made.
func (e *Engine) Generate(req Request) (*Result, error) {
	days, err := NewCalendar(req.Year, req.Month, e.catalog)
	if err != nil {
		return nil, err
	}

	staff, warnings := normaliseStaff(req.Staff)

	caps, err := CapabilityLookup(staff, e.catalog)
	if err != nil {
		return nil, err
	}

	absences, absenceWarnings := BuildAbsenceIndex(req.Absences)
	warnings = append(warnings, absenceWarnings...)

	wishes, wishWarnings, err := BuildWishIndex(req.Wishes, e.catalog)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, wishWarnings...)

	reported := make(map[int]bool, len(wishWarnings))
	for _, w := range wishWarnings {
		reported[w.Index] = true
	}
	for i, wish := range req.Wishes {
		if reported[i] {
			continue
		}
		if _, known := caps[wish.StaffID]; !known && wish.StaffID != "" {
			warnings = append(warnings, &ValidationError{
				Kind:   "wish",
				Index:  i,
				Reason: fmt.Sprintf("unknown staff id %q", wish.StaffID),
			})
		}
	}

	for _, w := range warnings {
		e.logger.Warn("Skipped input record", zap.String("kind", w.Kind), zap.Int("index", w.Index), zap.String("reason", w.Reason))
	}

	state := &runState{
		days:     days,
		staff:    staff,
		caps:     caps,
		absences: absences,
		wishes:   wishes,
		tracker:  NewTracker(),
		catalog:  e.catalog,
		rules:    e.rules,
	}

	e.logger.Debug("Generating roster",
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.Int("days", len(days)),
		zap.Int("staff_count", len(staff)))

	for _, p := range e.phases {
		before := state.assignmentCount()
		p.Apply(state)
		e.logger.Debug("Phase complete",
			zap.String("phase", p.Name()),
			zap.Int("assigned", state.assignmentCount()-before))
	}

	var unfilled []UnfilledSlot
	for i := range days {
		for _, st := range e.catalog.All() {
			if state.slotOpen(i, st) {
				unfilled = append(unfilled, UnfilledSlot{Date: days[i].Date, Shift: st.ID})
			}
		}
	}

	violations := ValidateRoster(days, e.catalog, absences)
	for _, v := range violations {
		e.logger.Warn("Roster rule violation",
			zap.String("rule", v.Rule),
			zap.String("date", v.Date),
			zap.String("staff_id", v.StaffID),
			zap.String("shift", string(v.Shift)))
	}

	e.logger.Info("Roster generated",
		zap.String("key", model.RosterKey(req.Year, req.Month)),
		zap.Int("assignments", state.assignmentCount()),
		zap.Int("unfilled", len(unfilled)),
		zap.Int("warnings", len(warnings)))

	return &Result{
		Roster: &model.Roster{
			Year:  req.Year,
			Month: req.Month,
			Days:  days,
		},
		Warnings:   warnings,
		Unfilled:   unfilled,
		Violations: violations,
		Tracker:    state.tracker,
	}, nil
}

// normaliseStaff drops invalid and duplicate staff records, keeping list order
func normaliseStaff(staff []model.StaffMember) ([]model.StaffMember, []*ValidationError) {
	var warnings []*ValidationError
	seen := make(map[string]bool, len(staff))
	out := make([]model.StaffMember, 0, len(staff))

	for i, member := range staff {
		if err := model.ValidateRecord(member); err != nil {
			warnings = append(warnings, &ValidationError{Kind: "staff", Index: i, Reason: err.Error()})
			continue
		}
		if seen[member.ID] {
			warnings = append(warnings, &ValidationError{Kind: "staff", Index: i, Reason: fmt.Sprintf("duplicate staff id %q", member.ID)})
			continue
		}
		seen[member.ID] = true
		out = append(out, member)
	}

	return out, warnings
}
