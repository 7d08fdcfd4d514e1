package main

import (
	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/location.mod/location"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
	"github.com/worldclock/utilities/internal/wallclock"
	"github.com/worldclock/utilities/internal/zones"
)

const (
	paramNameTime              = "time"
	paramNameDate              = "date"
	paramNameUTC               = "utc"
	paramNameZone              = "zone"
	paramNameTable             = "table"
	paramNameListTimezoneNames = "list-timezone-names"

	groupNameSetting = param.DfltGroupName + "-setting"
	groupNameDisplay = param.DfltGroupName + "-display"
)

// checkTime checks that the value is a valid time
func checkTime(s string) error {
	_, err := wallclock.ParseHourMinute(s)
	return err
}

// checkDate checks that the value is a valid date
func checkDate(s string) error {
	_, err := wallclock.ParseYearMonthDay(s)
	return err
}

// checkZone checks that the value is a valid zone entry for a known
// timezone
func checkZone(s string) error {
	e, err := zones.ParseEntry(s)
	if err != nil {
		return err
	}

	_, err = zones.LoadZone(e)

	return err
}

// addZoneAction returns an action func which will add the zone just given
func addZoneAction(prog *prog) param.ActionFunc {
	return func(_ location.L, _ *param.ByName, _ []string) error {
		return prog.addZone()
	}
}

// addParams adds the parameters for this program
func addParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(groupNameSetting, "time-setting parameters\n\n"+
			"These allow you to set the time to be shown."+
			" The default is to use the current time")

		ps.Add(paramNameTime,
			psetter.String[string]{
				Value:  &prog.timeStr,
				Checks: []check.String{checkTime},
			},
			"the time to be shown."+
				"\n\n"+
				"The time must be given in 24-hour form"+
				" as hours and minutes with a colon (':') between them,"+
				" for instance: '15:10'."+
				"\n\n"+
				"If no date is given the date used is the"+
				" current date in the local timezone (or in UTC if the "+
				paramNameUTC+" parameter is given) which could be"+
				" a day before or after the current date elsewhere."+
				"\n\n"+
				"The time can also be given as the first argument"+
				" after the parameters, following '"+
				param.DfltTerminalParam+"'.",
			param.AltNames("t"),
			param.Attrs(param.CommandLineOnly),
			param.GroupName(groupNameSetting),
		)

		ps.Add(paramNameDate,
			psetter.String[string]{
				Value:  &prog.dateStr,
				Checks: []check.String{checkDate},
			},
			"the date of the time to be shown."+
				"\n\n"+
				"The date must be given as the year (including the"+
				" century), the month number and the day of the month"+
				" separated by dashes ('-'), for instance: '2019-03-21'."+
				"\n\n"+
				"A date may only be given together with a time."+
				" The date can also be given as the second argument"+
				" after the parameters, following '"+
				param.DfltTerminalParam+"'.",
			param.AltNames("d"),
			param.Attrs(param.CommandLineOnly),
			param.GroupName(groupNameSetting),
		)

		ps.Add(paramNameUTC, psetter.Bool{Value: &prog.useUTC},
			"take the time (and date) given to be in UTC rather than"+
				" in the local timezone."+
				" This has no effect if no time is given."+
				" The times shown are always those in each timezone",
			param.GroupName(groupNameSetting),
		)

		ps.AddGroup(groupNameDisplay, "display parameters\n\n"+
			"These control which timezones are shown and how")

		ps.Add(paramNameZone,
			psetter.String[string]{
				Value:  &prog.zoneStr,
				Checks: []check.String{checkZone},
			},
			"a timezone in which to show the time, given as the"+
				" timezone name and the label to show, separated by '='."+
				" For instance: 'Europe/Prague=Brno'."+
				" If no label is given the last part of the name is used."+
				"\n\n"+
				"This may be given several times and the timezones are"+
				" shown in the order given. The first use replaces"+
				" the standard list of timezones. Timezones given in"+
				" a configuration file count as uses, so any given"+
				" on the command line are added after them.",
			param.AltNames("tz", "timezone"),
			param.PostAction(addZoneAction(prog)),
			param.GroupName(groupNameDisplay),
			param.SeeAlso(paramNameListTimezoneNames),
		)

		ps.Add(paramNameTable, psetter.Bool{Value: &prog.showTable},
			"show the times in a table, together with the date,"+
				" the offset from UTC and the timezone name",
			param.GroupName(groupNameDisplay),
		)

		ps.Add(paramNameListTimezoneNames,
			psetter.Bool{Value: &prog.listTZNames},
			`list all the available timezones`,
			param.Attrs(param.CommandLineOnly|param.DontShowInStdUsage),
			param.AltNames("list-tz-names", "list-timezones"),
			param.GroupName(groupNameDisplay),
		)

		err := ps.SetNamedRemHandler(param.NullRemHandler{}, "time [date]")
		if err != nil {
			return err
		}

		return nil
	}
}
