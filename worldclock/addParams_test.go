package main

import (
	"errors"
	"testing"

	"github.com/nickwells/errutil.mod/errutil"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/param.mod/v6/paramtest"
	"github.com/nickwells/testhelper.mod/v2/testhelper"
	"github.com/worldclock/utilities/internal/zones"
)

// cmpProgStruct compares the value with the expected value and returns
// an error if they differ
func cmpProgStruct(iVal, iExpVal any) error {
	val, ok := iVal.(*prog)
	if !ok {
		return errors.New("Bad value: not a pointer to a prog struct")
	}

	expVal, ok := iExpVal.(*prog)
	if !ok {
		return errors.New("Bad expected value: not a pointer to a prog struct")
	}

	return testhelper.DiffVals(val, expVal)
}

// mkTestParser populates and returns a paramtest.Parser ready to be added to
// the testcases.
func mkTestParser(
	errs errutil.ErrMap, id testhelper.ID,
	progSetter func(prog *prog),
	args ...string,
) paramtest.Parser {
	actVal := newProg()
	ps := paramset.NewNoHelpNoExitNoErrRptOrPanic(
		addParams(actVal),
	)

	expVal := newProg()
	if progSetter != nil {
		progSetter(expVal)
	}

	return paramtest.Parser{
		ID:             id,
		ExpParseErrors: errs,
		Val:            actVal,
		Ps:             ps,
		ExpVal:         expVal,
		Args:           args,
		CheckFunc:      cmpProgStruct,
	}
}

// TestParseParams will use the paramtest.Parser to make sure the
// behaviour of the parameter setting is as expected.
func TestParseParams(t *testing.T) {
	testCases := []paramtest.Parser{}

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: no params, no change"),
			nil))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: utc"),
			func(prog *prog) { prog.useUTC = true },
			"-"+paramNameUTC))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: table"),
			func(prog *prog) { prog.showTable = true },
			"-"+paramNameTable))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: list-timezone-names"),
			func(prog *prog) { prog.listTZNames = true },
			"-"+paramNameListTimezoneNames))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: time"),
			func(prog *prog) { prog.timeStr = "09:30" },
			"-"+paramNameTime, "09:30"))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: time and date"),
			func(prog *prog) {
				prog.timeStr = "14:00"
				prog.dateStr = "2023-12-25"
			},
			"-"+paramNameTime, "14:00",
			"-"+paramNameDate, "2023-12-25"))

	{
		parseErrs := errutil.ErrMap{}
		parseErrs.AddError(
			paramNameTime,
			errors.New("the hour (25) must be between 0 and 23"+"\n"+
				"At: [command line]:"+
				` Supplied Parameter:2: "-time" "25:00"`))

		testCases = append(testCases,
			mkTestParser(parseErrs, testhelper.MkID("bad: time out of range"),
				nil,
				"-"+paramNameTime, "25:00"))
	}
	{
		parseErrs := errutil.ErrMap{}
		parseErrs.AddError(
			paramNameTime,
			errors.New(`cannot parse the time "12-30":`+
				" it must be in the form HH:MM"+"\n"+
				"At: [command line]:"+
				` Supplied Parameter:2: "-time" "12-30"`))

		testCases = append(testCases,
			mkTestParser(parseErrs, testhelper.MkID("bad: time format"),
				nil,
				"-"+paramNameTime, "12-30"))
	}
	{
		parseErrs := errutil.ErrMap{}
		parseErrs.AddError(
			paramNameDate,
			errors.New("the month (13) must be between 1 and 12"+"\n"+
				"At: [command line]:"+
				` Supplied Parameter:2: "-date" "2024-13-01"`))

		testCases = append(testCases,
			mkTestParser(parseErrs, testhelper.MkID("bad: date out of range"),
				nil,
				"-"+paramNameDate, "2024-13-01"))
	}
	{
		testCases = append(testCases,
			mkTestParser(nil, testhelper.MkID("good: one zone"),
				func(prog *prog) {
					prog.zoneStr = "Asia/Kolkata=IST"
					prog.zonesSet = true
					prog.entries = []zones.Entry{
						{Name: "Asia/Kolkata", Label: "IST"},
					}
				},
				"-"+paramNameZone, "Asia/Kolkata=IST"))
	}
	{
		testCases = append(testCases,
			mkTestParser(nil, testhelper.MkID("good: two zones"),
				func(prog *prog) {
					prog.zoneStr = "America/New_York"
					prog.zonesSet = true
					prog.entries = []zones.Entry{
						{Name: "Asia/Kolkata", Label: "IST"},
						{Name: "America/New_York", Label: "New York"},
					}
				},
				"-"+paramNameZone, "Asia/Kolkata=IST",
				"-"+paramNameZone, "America/New_York"))
	}
	{
		parseErrs := errutil.ErrMap{}
		parseErrs.AddError(
			paramNameZone,
			errors.New(`unknown timezone "Nowhere/Special" (for "Special"):`+
				" unknown time zone Nowhere/Special"+"\n"+
				"At: [command line]:"+
				` Supplied Parameter:2: "-zone" "Nowhere/Special"`))

		testCases = append(testCases,
			mkTestParser(parseErrs, testhelper.MkID("bad: zone"),
				nil,
				"-"+paramNameZone, "Nowhere/Special"))
	}

	for _, tc := range testCases {
		_ = tc.Test(t)
	}
}

func TestParseTrailingArgs(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		testhelper.ExpErr
		args         []string
		expParseErrs bool
		expTimeStr   string
		expDateStr   string
		expUTC       bool
		expRemainder int
	}{
		{
			ID:           testhelper.MkID("good: time after terminator"),
			args:         []string{"-" + paramNameUTC, "--", "09:30"},
			expTimeStr:   "09:30",
			expUTC:       true,
			expRemainder: 1,
		},
		{
			ID:           testhelper.MkID("good: time and date after terminator"),
			args:         []string{"--", "09:30", "2024-06-01"},
			expTimeStr:   "09:30",
			expDateStr:   "2024-06-01",
			expRemainder: 2,
		},
		{
			ID:     testhelper.MkID("good: no arguments"),
			args:   []string{"-" + paramNameUTC},
			expUTC: true,
		},
		{
			ID:           testhelper.MkID("bad: too many arguments"),
			args:         []string{"--", "14:00", "2023-12-25", "extra"},
			expRemainder: 3,
			ExpErr: testhelper.MkExpErr("too many arguments",
				`unexpected: "extra"`),
		},
		{
			ID:           testhelper.MkID("bad: time without terminator"),
			args:         []string{"-" + paramNameUTC, "09:30"},
			expParseErrs: true,
		},
	}

	for _, tc := range testCases {
		prog := newProg()
		ps := paramset.NewNoHelpNoExitNoErrRptOrPanic(addParams(prog))

		errs := ps.Parse(tc.args)
		if parseFailed := len(errs) != 0; parseFailed != tc.expParseErrs {
			t.Log(tc.IDStr())
			t.Errorf("\t: parse errors expected: %t, got: %v\n",
				tc.expParseErrs, errs)

			continue
		}

		if tc.expParseErrs {
			continue
		}

		testhelper.DiffInt(t, tc.IDStr(), "remainder length",
			len(ps.Remainder()), tc.expRemainder)

		err := prog.setArgs(ps.Remainder())
		if testhelper.CheckExpErr(t, err, tc) && err == nil {
			testhelper.DiffString(t, tc.IDStr(), "time",
				prog.timeStr, tc.expTimeStr)
			testhelper.DiffString(t, tc.IDStr(), "date",
				prog.dateStr, tc.expDateStr)

			if prog.useUTC != tc.expUTC {
				t.Log(tc.IDStr())
				t.Errorf("\t: utc: expected: %t, got: %t\n",
					tc.expUTC, prog.useUTC)
			}
		}
	}
}
