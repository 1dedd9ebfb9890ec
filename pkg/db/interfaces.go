package db

import (
	"context"
	"errors"

	"github.com/jakechorley/ward-roster/pkg/core/model"
)

// ErrRosterNotFound is returned when no roster is stored under a key
var ErrRosterNotFound = errors.New("roster not found")

// StaffStore defines the interface for staff list operations.
// The list is always read and written whole.
type StaffStore interface {
	GetStaff(ctx context.Context) ([]model.StaffMember, error)
	ReplaceStaff(ctx context.Context, staff []model.StaffMember) error
}

// AbsenceStore defines the interface for absence record operations
type AbsenceStore interface {
	GetAbsences(ctx context.Context) ([]model.Absence, error)
	ReplaceAbsences(ctx context.Context, absences []model.Absence) error
}

// WishStore defines the interface for wish record operations
type WishStore interface {
	GetWishes(ctx context.Context) ([]model.Wish, error)
	ReplaceWishes(ctx context.Context, wishes []model.Wish) error
}

// RosterStore defines the interface for generated rosters, keyed by "YYYY-MM".
// SaveRoster overwrites any roster stored under the same key.
type RosterStore interface {
	GetRosters(ctx context.Context) (map[string][]model.CalendarDay, error)
	GetRoster(ctx context.Context, key string) (*model.Roster, error)
	SaveRoster(ctx context.Context, roster *model.Roster) error
}

// Database defines the interface for all storage operations.
// Both the JSON file store and postgres.DB implement this interface.
type Database interface {
	StaffStore
	AbsenceStore
	WishStore
	RosterStore
}
