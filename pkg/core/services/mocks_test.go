package services

import (
	"context"
	"fmt"

	"github.com/jakechorley/ward-roster/pkg/clients/sheetsclient"
	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/db"
)

// mockStore is an in-memory store satisfying every service store interface
type mockStore struct {
	staff    []model.StaffMember
	absences []model.Absence
	wishes   []model.Wish
	rosters  map[string]*model.Roster

	saved   []*model.Roster
	failGet error
}

func (m *mockStore) GetStaff(ctx context.Context) ([]model.StaffMember, error) {
	if m.failGet != nil {
		return nil, m.failGet
	}
	return m.staff, nil
}

func (m *mockStore) ReplaceStaff(ctx context.Context, staff []model.StaffMember) error {
	m.staff = staff
	return nil
}

func (m *mockStore) GetAbsences(ctx context.Context) ([]model.Absence, error) {
	return m.absences, nil
}

func (m *mockStore) ReplaceAbsences(ctx context.Context, absences []model.Absence) error {
	m.absences = absences
	return nil
}

func (m *mockStore) GetWishes(ctx context.Context) ([]model.Wish, error) {
	return m.wishes, nil
}

func (m *mockStore) ReplaceWishes(ctx context.Context, wishes []model.Wish) error {
	m.wishes = wishes
	return nil
}

func (m *mockStore) GetRosters(ctx context.Context) (map[string][]model.CalendarDay, error) {
	out := make(map[string][]model.CalendarDay, len(m.rosters))
	for key, r := range m.rosters {
		out[key] = r.Days
	}
	return out, nil
}

func (m *mockStore) GetRoster(ctx context.Context, key string) (*model.Roster, error) {
	r, ok := m.rosters[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", db.ErrRosterNotFound, key)
	}
	return r, nil
}

func (m *mockStore) SaveRoster(ctx context.Context, roster *model.Roster) error {
	if m.rosters == nil {
		m.rosters = make(map[string]*model.Roster)
	}
	m.rosters[roster.Key()] = roster
	m.saved = append(m.saved, roster)
	return nil
}

var _ db.Database = (*mockStore)(nil)

type mockPublisher struct {
	spreadsheetID string
	published     *sheetsclient.PublishedRoster
	err           error
}

func (m *mockPublisher) PublishRoster(spreadsheetID string, roster *sheetsclient.PublishedRoster) error {
	m.spreadsheetID = spreadsheetID
	m.published = roster
	return m.err
}
