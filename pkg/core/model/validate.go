package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateRecord runs struct validation on an input record
// (StaffMember, Absence, Wish or RecurringAbsence)
func ValidateRecord(record any) error {
	if err := validate.Struct(record); err != nil {
		return fmt.Errorf("record validation failed: %w", err)
	}
	return nil
}
