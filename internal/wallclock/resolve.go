package wallclock

import (
	"time"
)

// Resolver combines a partial time and date with the current time to give
// a single instant
type Resolver struct {
	// Clock supplies the current time; if nil time.Now is used
	Clock Clock
	// Local is the timezone used when the time is not given in UTC; if
	// nil time.Local is used
	Local *time.Location
}

// NewResolver returns a Resolver using the system clock and the local
// timezone
func NewResolver() *Resolver {
	return &Resolver{
		Clock: System(),
		Local: time.Local,
	}
}

// now returns the current time from the Clock
func (r Resolver) now() time.Time {
	if r.Clock == nil {
		return time.Now()
	}

	return r.Clock.Now()
}

// Frame returns the reference frame in which a given time and date are
// interpreted
func (r Resolver) Frame(useUTC bool) *time.Location {
	if useUTC {
		return time.UTC
	}

	if r.Local == nil {
		return time.Local
	}

	return r.Local
}

// Today returns the current date in the given timezone
func (r Resolver) Today(loc *time.Location) YearMonthDay {
	n := r.now().In(loc)

	return YearMonthDay{Year: n.Year(), Month: n.Month(), Day: n.Day()}
}

// Resolve returns the instant, in UTC, given by the time and date strings.
// An empty string means that the value was not given.
//
// With no time the current time is returned. With a time but no date, the
// time is taken to be on the current date in the reference frame. With
// both, the time is taken to be on that date in the reference frame. The
// reference frame is UTC if useUTC is true and the local timezone
// otherwise. The seconds are always zero if a time is given.
//
// A date without a time is rejected.
func (r Resolver) Resolve(timeStr, dateStr string, useUTC bool) (time.Time, error) {
	if timeStr == "" {
		if dateStr != "" {
			return time.Time{}, ErrDateWithoutTime
		}

		return r.now().UTC(), nil
	}

	hm, err := ParseHourMinute(timeStr)
	if err != nil {
		return time.Time{}, err
	}

	loc := r.Frame(useUTC)

	var ymd YearMonthDay

	if dateStr == "" {
		ymd = r.Today(loc)
	} else {
		ymd, err = ParseYearMonthDay(dateStr)
		if err != nil {
			return time.Time{}, err
		}
	}

	t, err := At(ymd, hm, loc)
	if err != nil {
		return time.Time{}, err
	}

	return t.UTC(), nil
}

// daysIn returns the number of days in the month
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// At returns the instant at the given date and time in the timezone. It
// returns an error if the year is out of range, if the day does not exist
// in the month or if the time does not exist on that date in the timezone. Where the time occurs twice
// on that date the instant chosen is the one time.Date gives.
func At(ymd YearMonthDay, hm HourMinute, loc *time.Location) (time.Time, error) {
	if err := checkRange("year", ymd.Year, MinYear, MaxYear); err != nil {
		return time.Time{}, err
	}

	if err := checkRange("day", ymd.Day, 1, daysIn(ymd.Year, ymd.Month)); err != nil {
		return time.Time{}, err
	}

	t := time.Date(ymd.Year, ymd.Month, ymd.Day, hm.Hour, hm.Minute, 0, 0, loc)

	if t.Year() != ymd.Year || t.Month() != ymd.Month || t.Day() != ymd.Day ||
		t.Hour() != hm.Hour || t.Minute() != hm.Minute {
		return time.Time{},
			&NonexistentTimeError{Date: ymd, Time: hm, Zone: loc.String()}
	}

	return t, nil
}
