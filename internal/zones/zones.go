package zones

import (
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"
	"time"
	_ "time/tzdata" // the zone rules must not depend on the host
)

const labelSep = "="

// Entry is a timezone name and the label to show alongside the time
type Entry struct {
	Name  string
	Label string
}

// Default is the standard list of timezones, in the order in which they
// are shown
var Default = []Entry{
	{Name: "Canada/Eastern", Label: "Eastern time"},
	{Name: "UTC", Label: "UTC"},
	{Name: "Europe/London", Label: "London"},
	{Name: "Europe/Prague", Label: "Brno"},
	{Name: "Asia/Jerusalem", Label: "Israel"},
	{Name: "Indian/Mauritius", Label: "Mauritius"},
	{Name: "Asia/Calcutta", Label: "Pune"},
	{Name: "Asia/Shanghai", Label: "Beijing"},
}

// DefaultEntries returns a copy of the Default list
func DefaultEntries() []Entry {
	return slices.Clone(Default)
}

// String returns the entry in the form accepted by ParseEntry
func (e Entry) String() string {
	return e.Name + labelSep + e.Label
}

// dfltLabel derives a label from the last part of the timezone name
func dfltLabel(name string) string {
	return strings.ReplaceAll(path.Base(name), "_", " ")
}

// ParseEntry parses a string of the form 'name=label'. If there is no
// label the last part of the name is used, so 'America/New_York' is
// labelled 'New York'.
func ParseEntry(s string) (Entry, error) {
	name, label, hasLabel := strings.Cut(s, labelSep)

	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, fmt.Errorf("bad timezone entry %q: the name is missing", s)
	}

	if !hasLabel {
		return Entry{Name: name, Label: dfltLabel(name)}, nil
	}

	label = strings.TrimSpace(label)
	if label == "" {
		return Entry{}, fmt.Errorf("bad timezone entry %q: the label is empty", s)
	}

	return Entry{Name: name, Label: label}, nil
}

// Zone is an Entry together with its loaded location
type Zone struct {
	Entry
	Loc *time.Location
}

// LoadZone finds the location for the entry
func LoadZone(e Entry) (Zone, error) {
	loc, err := time.LoadLocation(e.Name)
	if err != nil {
		return Zone{}, fmt.Errorf("unknown timezone %q (for %q): %w",
			e.Name, e.Label, err)
	}

	return Zone{Entry: e, Loc: loc}, nil
}

// Load finds the locations for all the entries. All the entries are
// checked and every problem is reported in the returned error.
func Load(entries []Entry) ([]Zone, error) {
	zs := make([]Zone, 0, len(entries))

	var errs []error

	for _, e := range entries {
		z, err := LoadZone(e)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		zs = append(zs, z)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return zs, nil
}
