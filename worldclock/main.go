package main

import (
	"fmt"
	"os"

	"github.com/nickwells/twrap.mod/twrap"
	"github.com/nickwells/verbose.mod/verbose"
)

// Created: Sat Oct 17 10:12:31 2026

// reportErrAndExit writes the error to standard error and exits
func reportErrAndExit(err error) {
	twc := twrap.NewTWConfOrPanic(twrap.SetWriter(os.Stderr))
	twc.Wrap(fmt.Sprintf("Error: %s", err), 0)
	os.Exit(1)
}

func main() {
	prog := newProg()
	ps := makeParamSet(prog)
	ps.Parse()

	prog.showDetails = verbose.IsOn()

	if prog.listTZNames {
		prog.listTimezoneNames(os.Stdout)
		return
	}

	if err := prog.setArgs(ps.Remainder()); err != nil {
		reportErrAndExit(err)
	}

	if err := prog.run(os.Stdout); err != nil {
		reportErrAndExit(err)
	}
}
