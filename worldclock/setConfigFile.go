package main

import (
	"path/filepath"

	"github.com/nickwells/filecheck.mod/filecheck"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/xdg.mod/xdg"
)

/*
SetConfigFile adds a config file to the set which the param parser will
process before checking the command line parameters.

This function is one of a pair which add the global and personal config
files. The global config file is added first so that personal choices
override any system-wide defaults.
*/
func SetConfigFile(ps *param.PSet) error {
	baseDir := xdg.ConfigHome()

	ps.AddConfigFileStrict(
		filepath.Join(baseDir,
			"github.com",
			"worldclock",
			"utilities",
			"worldclock",
			"common.cfg"),
		filecheck.Optional)

	return nil
}

/*
SetGlobalConfigFile adds a config file to the set which the param parser
will process before checking the command line parameters.

This function is one of a pair which add the global and personal config
files. The global config file is added first so that personal choices
override any system-wide defaults.
*/
func SetGlobalConfigFile(ps *param.PSet) error {
	dirs := xdg.ConfigDirs()
	if len(dirs) == 0 {
		return nil
	}

	baseDir := dirs[0]

	ps.AddConfigFileStrict(
		filepath.Join(baseDir,
			"github.com",
			"worldclock",
			"utilities",
			"worldclock",
			"common.cfg"),
		filecheck.Optional)

	return nil
}
