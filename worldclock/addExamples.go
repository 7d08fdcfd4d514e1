package main

import "github.com/nickwells/param.mod/v6/param"

// addExamples adds examples to the usage message
func addExamples(ps *param.PSet) error {
	ps.AddExample(`worldclock`,
		"This will show the current time in each of the standard"+
			" timezones.")
	ps.AddExample(`worldclock -utc -- 09:30`,
		"This will show 09:30 UTC today in each of the standard"+
			" timezones. On the 1st of June this would show 05:30 for"+
			" Eastern time and 17:30 for Beijing.")
	ps.AddExample(`worldclock -- 14:00 2023-12-25`,
		"This will show 2pm local time on Christmas Day 2023 in each"+
			" of the standard timezones. The time and date follow the '"+
			param.DfltTerminalParam+"' which ends the parameters.")
	ps.AddExample(`worldclock -time 14:00 -date 2023-12-25`,
		"This is the same as the example above but with the time and"+
			" date given through parameters.")
	ps.AddExample(
		`worldclock -zone America/New_York -zone Asia/Kolkata=IST -table`,
		"This will show the current time in New York and India, in a"+
			" table together with the date and the offset from UTC.")

	return nil
}
