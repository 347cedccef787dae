package validators

import (
	"fmt"
	"time"

	pkgerrors "github.com/residensync/residensync-backend/pkg/errors"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format for 24-hour clock times.
	TimeLayout = "15:04"
)

// ParseDate validates a YYYY-MM-DD string and returns it at midnight UTC.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be formatted YYYY-MM-DD", field)).
			WithDetails(map[string]any{"field": field, "value": value})
	}
	return t.UTC(), nil
}

// ParseTimeOfDay validates a HH:MM 24-hour string.
func ParseTimeOfDay(field, value string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be formatted HH:MM (24-hour)", field)).
			WithDetails(map[string]any{"field": field, "value": value})
	}
	return t, nil
}

// CombineDateTime merges a parsed date and clock time into one UTC instant.
func CombineDateTime(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
}
