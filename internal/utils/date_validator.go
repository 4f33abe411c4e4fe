package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ValidateDate parses an ISO date string. Visit and birth dates are stored
// as text, so this is the single gate for their format.
func ValidateDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return parsed, nil
}

// ValidateVisitDate rejects visit dates in the future.
func ValidateVisitDate(value string) error {
	parsed, err := ValidateDate(value)
	if err != nil {
		return err
	}
	if parsed.After(time.Now()) {
		return fmt.Errorf("visit date %q is in the future", value)
	}
	return nil
}
