package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/tempus.mod/tempus"
	"github.com/worldclock/utilities/internal/wallclock"
	"github.com/worldclock/utilities/internal/zones"
)

// maxArgs is the number of trailing arguments allowed: a time and a date
const maxArgs = 2

var errTooManyArgs = errors.New("too many arguments")

// prog holds program parameters and status
type prog struct {
	timeStr string
	dateStr string
	useUTC  bool

	zoneStr  string
	entries  []zones.Entry
	zonesSet bool

	showTable   bool
	showDetails bool // set from the verbose params

	tzNames     []string
	listTZNames bool

	resolver *wallclock.Resolver
}

// newProg returns a new prog instance with the default values set
func newProg() *prog {
	return &prog{
		entries:  zones.DefaultEntries(),
		tzNames:  tempus.TimezoneNames(),
		resolver: wallclock.NewResolver(),
	}
}

// listTimezoneNames displays the Timezone names
func (prog *prog) listTimezoneNames(w io.Writer) {
	for _, n := range prog.tzNames {
		fmt.Fprintln(w, n)
	}
}

// addZone adds the zone entry most recently given. The first entry given
// replaces the default list of zones.
func (prog *prog) addZone() error {
	e, err := zones.ParseEntry(prog.zoneStr)
	if err != nil {
		return err
	}

	if !prog.zonesSet {
		prog.entries = nil
		prog.zonesSet = true
	}

	prog.entries = append(prog.entries, e)

	return nil
}

// setArgs sets the time and date from the trailing arguments. The first
// is the time and the second the date. It is an error to give more than
// two or to give a value already set through a parameter.
func (prog *prog) setArgs(args []string) error {
	if len(args) > maxArgs {
		extra := make([]string, 0, len(args)-maxArgs)
		for _, a := range args[maxArgs:] {
			extra = append(extra, fmt.Sprintf("%q", a))
		}

		return fmt.Errorf("%w: at most %d are allowed (a time and a date)"+
			" but %d %s were given; unexpected: %s",
			errTooManyArgs, maxArgs,
			len(args), english.Plural("argument", len(args)),
			english.Join(extra, ", ", " and "))
	}

	targets := []struct {
		name      string
		paramName string
		expected  string
		val       *string
	}{
		{"time", paramNameTime, wallclock.TimeFormat, &prog.timeStr},
		{"date", paramNameDate, wallclock.DateFormat, &prog.dateStr},
	}

	for i, a := range args {
		tgt := targets[i]

		if *tgt.val != "" {
			return fmt.Errorf("the %s has been given both as an argument"+
				" (%q) and through the %q parameter (%q)",
				tgt.name, a, tgt.paramName, *tgt.val)
		}

		if strings.TrimSpace(a) == "" {
			return &wallclock.FormatError{
				What:     tgt.name,
				Value:    a,
				Expected: tgt.expected,
			}
		}

		*tgt.val = a
	}

	return nil
}

// reportInstant writes the inputs and the resolved instant to w
func (prog *prog) reportInstant(w io.Writer, t time.Time) {
	frame := prog.resolver.Frame(prog.useUTC)

	fmt.Fprintln(w, "           time:", valOrNow(prog.timeStr))
	fmt.Fprintln(w, "           date:", valOrNow(prog.dateStr))
	fmt.Fprintln(w, "reference frame:", frame.String())
	fmt.Fprintln(w, "        instant:", t.Format(time.RFC3339))
	fmt.Fprintln(w, "      timezones:", strconv.Itoa(len(prog.entries)))

	for _, e := range prog.entries {
		fmt.Fprintln(w, "                ", e.String())
	}
}

// valOrNow returns the value or, if it is empty, a note that the current
// value is used
func valOrNow(s string) string {
	if s == "" {
		return "(current)"
	}

	return s
}

// run finds the instant and writes it, in each zone, to w. Nothing is
// written if any error is found.
func (prog *prog) run(w io.Writer) error {
	zs, err := zones.Load(prog.entries)
	if err != nil {
		return err
	}

	t, err := prog.resolver.Resolve(prog.timeStr, prog.dateStr, prog.useUTC)
	if err != nil {
		return err
	}

	if prog.showDetails {
		prog.reportInstant(w, t)
	}

	if prog.showTable {
		return zones.WriteTable(w, t, zs)
	}

	return zones.Write(w, t, zs)
}
