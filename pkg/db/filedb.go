package db

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jakechorley/ward-roster/pkg/core/model"
)

const (
	staffFile     = "staff.json"
	absencesFile  = "absences.json"
	wishesFile    = "wishes.json"
	schedulesFile = "schedules.json"
)

// FileDB stores every collection as a JSON document in a data directory.
// Writes are serialised so concurrent saves of the same roster key cannot interleave.
type FileDB struct {
	dir string
	mu  sync.Mutex
}

var _ Database = (*FileDB)(nil)

// NewFileDB creates a file store rooted at dir, creating the directory if needed
func NewFileDB(dir string) (*FileDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileDB{dir: dir}, nil
}

// readJSON decodes the named file into v. A missing file leaves v untouched.
func (f *FileDB) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// writeJSON replaces the named file via a temp file and rename
func (f *FileDB) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(f.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(f.dir, name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

// GetStaff retrieves the staff list in stored order
func (f *FileDB) GetStaff(ctx context.Context) ([]model.StaffMember, error) {
	staff := []model.StaffMember{}
	if err := f.readJSON(staffFile, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// ReplaceStaff overwrites the staff list
func (f *FileDB) ReplaceStaff(ctx context.Context, staff []model.StaffMember) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writeJSON(staffFile, staff)
}

// GetAbsences retrieves all absence records
func (f *FileDB) GetAbsences(ctx context.Context) ([]model.Absence, error) {
	absences := []model.Absence{}
	if err := f.readJSON(absencesFile, &absences); err != nil {
		return nil, err
	}
	return absences, nil
}

// ReplaceAbsences overwrites the absence records
func (f *FileDB) ReplaceAbsences(ctx context.Context, absences []model.Absence) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writeJSON(absencesFile, absences)
}

// GetWishes retrieves all wish records in submission order
func (f *FileDB) GetWishes(ctx context.Context) ([]model.Wish, error) {
	wishes := []model.Wish{}
	if err := f.readJSON(wishesFile, &wishes); err != nil {
		return nil, err
	}
	return wishes, nil
}

// ReplaceWishes overwrites the wish records
func (f *FileDB) ReplaceWishes(ctx context.Context, wishes []model.Wish) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writeJSON(wishesFile, wishes)
}

// loadRosters reads schedules.json. Each key holds either a roster object or, in
// files written by the earlier scheduler, a bare array of days under a "YYYY-M" key.
func (f *FileDB) loadRosters() (map[string]*model.Roster, error) {
	raw := make(map[string]json.RawMessage)
	if err := f.readJSON(schedulesFile, &raw); err != nil {
		return nil, err
	}

	rosters := make(map[string]*model.Roster, len(raw))
	for key, entry := range raw {
		entry = bytes.TrimSpace(entry)
		if len(entry) == 0 || bytes.Equal(entry, []byte("null")) {
			continue
		}

		roster := &model.Roster{}
		if entry[0] == '[' {
			if err := json.Unmarshal(entry, &roster.Days); err != nil {
				return nil, fmt.Errorf("failed to decode %s key %s: %w", schedulesFile, key, err)
			}
		} else if err := json.Unmarshal(entry, roster); err != nil {
			return nil, fmt.Errorf("failed to decode %s key %s: %w", schedulesFile, key, err)
		}

		// Unparseable keys are kept as-is so statistics can reject them
		if year, month, err := model.ParseRosterKey(key); err == nil {
			if roster.Year == 0 {
				roster.Year, roster.Month = year, month
			}
			key = model.RosterKey(year, month)
		}
		rosters[key] = roster
	}
	return rosters, nil
}

// GetRosters retrieves the days of every stored roster by key
func (f *FileDB) GetRosters(ctx context.Context) (map[string][]model.CalendarDay, error) {
	rosters, err := f.loadRosters()
	if err != nil {
		return nil, err
	}

	out := make(map[string][]model.CalendarDay, len(rosters))
	for key, r := range rosters {
		out[key] = r.Days
	}
	return out, nil
}

// GetRoster retrieves the roster stored under key
func (f *FileDB) GetRoster(ctx context.Context, key string) (*model.Roster, error) {
	rosters, err := f.loadRosters()
	if err != nil {
		return nil, err
	}

	r, ok := rosters[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRosterNotFound, key)
	}
	return r, nil
}

// SaveRoster stores the roster under its key, replacing any previous roster
func (f *FileDB) SaveRoster(ctx context.Context, roster *model.Roster) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	rosters, err := f.loadRosters()
	if err != nil {
		return err
	}
	rosters[roster.Key()] = roster

	return f.writeJSON(schedulesFile, rosters)
}
