package wallclock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	timeSep = ":"
	dateSep = "-"

	maxHour   = 23
	maxMinute = 59
	maxDay    = 31

	// MinYear and MaxYear bound the years that can be given. Years far
	// outside this range overflow the time package's representation.
	MinYear = -262143
	MaxYear = 262142
)

// HourMinute is a time of day to the minute
type HourMinute struct {
	Hour   int
	Minute int
}

// String formats the time as HH:MM
func (hm HourMinute) String() string {
	return fmt.Sprintf("%02d:%02d", hm.Hour, hm.Minute)
}

// YearMonthDay is a calendar date
type YearMonthDay struct {
	Year  int
	Month time.Month
	Day   int
}

// String formats the date as YYYY-MM-DD
func (ymd YearMonthDay) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", ymd.Year, int(ymd.Month), ymd.Day)
}

// atoi converts a single part of a time or date. Only digits are allowed,
// there may be no sign or surrounding space.
func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return i, true
}

// checkRange returns a RangeError if the value is not in [low, high]
func checkRange(field string, val, low, high int) error {
	if val < low || val > high {
		return &RangeError{Field: field, Value: val, Min: low, Max: high}
	}

	return nil
}

// ParseHourMinute parses a time in the form HH:MM. The hour must be in
// the range 0-23 and the minute in the range 0-59.
func ParseHourMinute(s string) (HourMinute, error) {
	badFormat := &FormatError{What: "time", Value: s, Expected: TimeFormat}

	parts := strings.Split(s, timeSep)
	if len(parts) != 2 {
		return HourMinute{}, badFormat
	}

	h, ok := atoi(parts[0])
	if !ok {
		return HourMinute{}, badFormat
	}

	m, ok := atoi(parts[1])
	if !ok {
		return HourMinute{}, badFormat
	}

	if err := checkRange("hour", h, 0, maxHour); err != nil {
		return HourMinute{}, err
	}

	if err := checkRange("minute", m, 0, maxMinute); err != nil {
		return HourMinute{}, err
	}

	return HourMinute{Hour: h, Minute: m}, nil
}

// ParseYearMonthDay parses a date in the form YYYY-MM-DD. A leading '-'
// gives a year before year zero. The year must be between MinYear and
// MaxYear, the month in the range 1-12 and the day in the range 1-31;
// whether the day exists in that month is only checked when the date is
// combined with a time.
func ParseYearMonthDay(s string) (YearMonthDay, error) {
	badFormat := &FormatError{What: "date", Value: s, Expected: DateFormat}

	yearSign := 1
	val := s

	if strings.HasPrefix(val, dateSep) {
		yearSign = -1
		val = strings.TrimPrefix(val, dateSep)
	}

	parts := strings.Split(val, dateSep)
	if len(parts) != 3 {
		return YearMonthDay{}, badFormat
	}

	y, ok := atoi(parts[0])
	if !ok {
		return YearMonthDay{}, badFormat
	}

	m, ok := atoi(parts[1])
	if !ok {
		return YearMonthDay{}, badFormat
	}

	d, ok := atoi(parts[2])
	if !ok {
		return YearMonthDay{}, badFormat
	}

	if err := checkRange("year", yearSign*y, MinYear, MaxYear); err != nil {
		return YearMonthDay{}, err
	}

	if err := checkRange("month", m, int(time.January), int(time.December)); err != nil {
		return YearMonthDay{}, err
	}

	if err := checkRange("day", d, 1, maxDay); err != nil {
		return YearMonthDay{}, err
	}

	return YearMonthDay{Year: yearSign * y, Month: time.Month(m), Day: d}, nil
}
