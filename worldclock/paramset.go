package main

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/nickwells/versionparams.mod/versionparams"
)

// makeParamSet generates the param set ready for parsing
func makeParamSet(prog *prog) *param.PSet {
	return paramset.NewOrPanic(
		verbose.AddParams,
		versionparams.AddParams,

		addParams(prog),

		addExamples,

		SetGlobalConfigFile,
		SetConfigFile,

		param.SetProgramDescription(
			"This will show a time in each of a list of timezones."+
				" If no time is given the current time is used."+
				"\n\n"+
				"A time and a date can be given, as parameters or as"+
				" arguments after the parameters (the time first)."+
				" Arguments must follow '"+param.DfltTerminalParam+"',"+
				" for instance: 'worldclock -utc "+param.DfltTerminalParam+
				" 09:30'."+
				" They are taken to be in the local timezone unless the "+
				paramNameUTC+" parameter is given. A date may only be"+
				" given with a time; if only a time is given the current"+
				" date is used."),
	)
}
