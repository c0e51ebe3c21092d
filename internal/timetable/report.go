package timetable

import (
	"fmt"
	"strings"
)

// SheetReport counts what happened to the rows of one weekday.
type SheetReport struct {
	Day             string
	Rows            int
	Duplicates      int
	Rooms           int
	Slots           int
	Placed          int
	Occupied        int // non-empty room/slot cells
	SkippedRoom     int
	SkippedTime     int
	SkippedInterval int
	Runs            int
	Missing         []string // optional roles that did not resolve
	Skipped         bool
	Reason          string
}

func (r *SheetReport) skip(reason string) {
	r.Skipped = true
	r.Reason = reason
}

// String renders one status line.
func (r *SheetReport) String() string {
	if r.Skipped {
		return fmt.Sprintf("[SKIP]: %s: %s", r.Day, r.Reason)
	}
	line := fmt.Sprintf("[  OK]: %s: %d rooms, %d/%d rows placed, %d cells",
		r.Day, r.Rooms, r.Placed, r.Rows-r.Duplicates, r.Runs)
	if skipped := r.SkippedRoom + r.SkippedTime + r.SkippedInterval; skipped > 0 {
		line += fmt.Sprintf(" (%d without room, %d unparsable time, %d empty interval)",
			r.SkippedRoom, r.SkippedTime, r.SkippedInterval)
	}
	return line
}

// Summarize joins the report lines of all days and tells whether at least
// one timetable was produced.
func Summarize(reports []*SheetReport) (bool, string) {
	var b strings.Builder
	rendered := 0
	for _, r := range reports {
		if !r.Skipped {
			rendered++
		}
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	if rendered == 0 {
		b.WriteString("[FAIL]: no timetable sheet produced\n")
	}
	return rendered > 0, b.String()
}
