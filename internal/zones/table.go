package zones

import (
	"fmt"
	"io"
	"time"

	"github.com/nickwells/col.mod/v6/col"
	"github.com/nickwells/col.mod/v6/colfmt"
)

const (
	tableDateFormat   = "2006-01-02 Mon"
	tableOffsetFormat = "-07:00"
)

// widths returns the widths of the longest label and zone name
func widths(zs []Zone) (labelW, nameW int) {
	for _, z := range zs {
		labelW = max(labelW, len(z.Label))
		nameW = max(nameW, len(z.Name))
	}

	return labelW, nameW
}

// WriteTable writes a report to w showing, for each zone, the time and
// date in that zone, its offset from UTC and the zone name
func WriteTable(w io.Writer, t time.Time, zs []Zone) error {
	h, err := col.NewHeader()
	if err != nil {
		return fmt.Errorf("couldn't create the table header: %w", err)
	}

	labelW, nameW := widths(zs)

	rpt, err := col.NewReport(h, w,
		col.New(&colfmt.String{W: labelW}, "Place"),
		col.New(&colfmt.String{W: len(TimeFormat)}, "Time"),
		col.New(&colfmt.String{W: len(tableDateFormat)}, "Date"),
		col.New(&colfmt.String{W: len(tableOffsetFormat)}, "UTC", "offset"),
		col.New(&colfmt.String{W: nameW}, "Timezone"),
	)
	if err != nil {
		return fmt.Errorf("couldn't create the report: %w", err)
	}

	for _, z := range zs {
		lt := t.In(z.Loc)

		err := rpt.PrintRow(
			z.Label,
			lt.Format(TimeFormat),
			lt.Format(tableDateFormat),
			lt.Format(tableOffsetFormat),
			z.Name)
		if err != nil {
			return fmt.Errorf("couldn't print the row for %q: %w", z.Label, err)
		}
	}

	return nil
}
