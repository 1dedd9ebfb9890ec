package importer

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jakechorley/ward-roster/pkg/core/model"
)

// DecodeStaff reads a YAML or JSON list of staff members and validates each record
func DecodeStaff(r io.Reader) ([]model.StaffMember, error) {
	var staff []model.StaffMember
	if err := decodeList(r, &staff); err != nil {
		return nil, err
	}

	for i := range staff {
		if err := model.ValidateRecord(&staff[i]); err != nil {
			return nil, fmt.Errorf("staff[%d]: %w", i, err)
		}
	}
	return staff, nil
}

// DecodeAbsences reads a YAML or JSON list of absences and validates each record,
// including that the end date is not before the start date
func DecodeAbsences(r io.Reader) ([]model.Absence, error) {
	var absences []model.Absence
	if err := decodeList(r, &absences); err != nil {
		return nil, err
	}

	for i := range absences {
		if err := model.ValidateRecord(&absences[i]); err != nil {
			return nil, fmt.Errorf("absences[%d]: %w", i, err)
		}
		if _, err := absences[i].Dates(); err != nil {
			return nil, fmt.Errorf("absences[%d]: %w", i, err)
		}
	}
	return absences, nil
}

// decodeList parses YAML, which also accepts JSON documents
func decodeList(r io.Reader, out any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}
	return nil
}
