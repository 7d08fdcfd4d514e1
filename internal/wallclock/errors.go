package wallclock

import (
	"errors"
	"fmt"
)

// These are the forms in which the time and date must be given
const (
	TimeFormat = "HH:MM"
	DateFormat = "YYYY-MM-DD"
)

var (
	// ErrMalformed is wrapped by every error reporting a value which
	// could not be split into its parts or whose parts are not numbers
	ErrMalformed = errors.New("malformed value")
	// ErrOutOfRange is wrapped by every error reporting a well-formed
	// value which does not give a real time or date
	ErrOutOfRange = errors.New("value out of range")
	// ErrDateWithoutTime is returned if a date is given but no time
	ErrDateWithoutTime = errors.New(
		"a date has been given without a time: give a time as well")
)

// FormatError records a value which is not in the expected format
type FormatError struct {
	What     string
	Value    string
	Expected string
}

// Error returns a message naming the value and the expected format
func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot parse the %s %q: it must be in the form %s",
		e.What, e.Value, e.Expected)
}

// Unwrap returns ErrMalformed
func (e *FormatError) Unwrap() error { return ErrMalformed }

// RangeError records a field whose value lies outside the allowed range
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

// Error returns a message naming the field and the allowed range
func (e *RangeError) Error() string {
	return fmt.Sprintf("the %s (%d) must be between %d and %d",
		e.Field, e.Value, e.Min, e.Max)
}

// Unwrap returns ErrOutOfRange
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// NonexistentTimeError records a wall-clock time which is skipped in the
// given timezone, typically at the start of daylight-saving time
type NonexistentTimeError struct {
	Date YearMonthDay
	Time HourMinute
	Zone string
}

// Error returns a message naming the missing time and the timezone
func (e *NonexistentTimeError) Error() string {
	return fmt.Sprintf("the time %s on %s does not exist in timezone %q",
		e.Time, e.Date, e.Zone)
}

// Unwrap returns ErrOutOfRange
func (e *NonexistentTimeError) Unwrap() error { return ErrOutOfRange }
