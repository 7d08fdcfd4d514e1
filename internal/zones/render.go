package zones

import (
	"fmt"
	"io"
	"time"
)

const (
	// TimeFormat is the format of the time on each line
	TimeFormat = "15:04"

	lineIndent = "    "
)

// Line returns the time in the zone followed by the zone label
func Line(t time.Time, z Zone) string {
	return lineIndent + t.In(z.Loc).Format(TimeFormat) + " " + z.Label
}

// Render returns one line for each zone, in order
func Render(t time.Time, zs []Zone) []string {
	lines := make([]string, 0, len(zs))
	for _, z := range zs {
		lines = append(lines, Line(t, z))
	}

	return lines
}

// Write writes the rendered lines to w, each followed by a newline
func Write(w io.Writer, t time.Time, zs []Zone) error {
	for _, l := range Render(t, zs) {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	return nil
}
