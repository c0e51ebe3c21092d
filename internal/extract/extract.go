// Package extract turns a raw registrar export into per-weekday sheets.
package extract

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/rhyrak/go-timetable/pkg/model"
)

// ErrTooFewColumns is returned when the export is narrower than the fixed
// column layout requires.
var ErrTooFewColumns = errors.New("input has too few columns")

// Result is the output of the extraction stage.
type Result struct {
	Sheets  []*model.DaySheet // canonical weekday order, Unrecognized last
	Records []*model.NormalizedRecord
}

// Sheet returns the sheet with the given name, or nil.
func (r *Result) Sheet(name string) *model.DaySheet {
	for _, s := range r.Sheets {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Days lists the sheet names in output order.
func (r *Result) Days() []string {
	names := make([]string, 0, len(r.Sheets))
	for _, s := range r.Sheets {
		names = append(names, s.Name)
	}
	return names
}

// Extract selects the fixed columns of table, fills missing day/time fields
// from the calendar text, normalizes everything and partitions rows by day.
func Extract(table *model.RawTable, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if w := table.Width(); w < model.MinColumns {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrTooFewColumns, w, model.MinColumns)
	}

	records := make([]*model.NormalizedRecord, 0, len(table.Rows))
	filled := 0
	for i, row := range table.Rows {
		if blank(row) {
			continue
		}
		raw := rawRecord(table, i)
		before := raw
		FillFromCalendar(&raw)
		if raw != before {
			filled++
			logger.Debug("filled day/time from calendar", "row", i+2, "day", raw.Day, "start", raw.Start, "end", raw.End)
		}
		records = append(records, Normalize(&raw))
	}
	logger.Info("extracted records", "rows", len(records), "calendar_filled", filled)

	return Partition(records), nil
}

// Normalize canonicalizes the text of every field and the weekday.
func Normalize(r *model.RawRecord) *model.NormalizedRecord {
	return &model.NormalizedRecord{
		Course:        NormalizeText(r.Course),
		Code:          NormalizeText(r.Code),
		TheoryUnits:   NormalizeText(r.TheoryUnits),
		PracticeUnits: NormalizeText(r.PracticeUnits),
		Room:          NormalizeText(r.Room),
		Department:    NormalizeText(r.Department),
		Degree:        NormalizeText(r.Degree),
		Enrollment:    NormalizeText(r.Enrollment),
		Term:          NormalizeText(r.Term),
		Teacher:       NormalizeText(r.Teacher),
		Major:         NormalizeText(r.Major),
		Day:           CanonicalDay(r.Day),
		Start:         NormalizeText(r.Start),
		End:           NormalizeText(r.End),
	}
}

// Partition buckets records by weekday. Weekday sheets are sorted by start
// time (unparsable first); the Unrecognized sheet keeps input order.
func Partition(records []*model.NormalizedRecord) *Result {
	buckets := make(map[string][]*model.NormalizedRecord, len(weekdays)+1)
	for _, r := range records {
		if IsWeekday(r.Day) {
			buckets[r.Day] = append(buckets[r.Day], r)
		} else {
			buckets[Unrecognized] = append(buckets[Unrecognized], r)
		}
	}

	result := &Result{Records: records}
	for _, day := range weekdays {
		rows := buckets[day]
		if len(rows) == 0 {
			continue
		}
		slices.SortStableFunc(rows, func(a, b *model.NormalizedRecord) int {
			return sortMinutes(a.Start) - sortMinutes(b.Start)
		})
		result.Sheets = append(result.Sheets, model.NewDaySheet(day, rows))
	}
	if rows := buckets[Unrecognized]; len(rows) > 0 {
		result.Sheets = append(result.Sheets, model.NewDaySheet(Unrecognized, rows))
	}
	return result
}

func sortMinutes(s string) int {
	m, ok := ParseMinutes(s)
	if !ok {
		return 0
	}
	return m
}

func rawRecord(t *model.RawTable, i int) model.RawRecord {
	return model.RawRecord{
		Course:        t.Cell(i, model.ColCourse),
		Code:          t.Cell(i, model.ColCode),
		TheoryUnits:   t.Cell(i, model.ColTheoryUnits),
		PracticeUnits: t.Cell(i, model.ColPracticeUnit),
		Room:          t.Cell(i, model.ColRoom),
		Department:    t.Cell(i, model.ColDepartment),
		Degree:        t.Cell(i, model.ColDegree),
		Enrollment:    t.Cell(i, model.ColEnrollment),
		Term:          t.Cell(i, model.ColTerm),
		Teacher:       t.Cell(i, model.ColTeacher),
		Major:         t.Cell(i, model.ColMajor),
		Day:           t.Cell(i, model.ColDay),
		Start:         t.Cell(i, model.ColStart),
		End:           t.Cell(i, model.ColEnd),
		Calendar:      t.Cell(i, model.ColCalendar),
	}
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
