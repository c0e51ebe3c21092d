package model

import "strings"

// RawTable is a source table with positional cell access.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// Width returns the widest row, header included.
func (t *RawTable) Width() int {
	w := len(t.Header)
	for _, r := range t.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// Cell returns the value at row/col, or "" when the row is short.
func (t *RawTable) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// DaySheet holds the rows of one weekday (or the unrecognized bucket).
// Stage two only addresses its columns by header name.
type DaySheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// NewDaySheet builds a sheet from normalized records using RecordHeader.
func NewDaySheet(name string, records []*NormalizedRecord) *DaySheet {
	sheet := &DaySheet{Name: name, Header: append([]string(nil), RecordHeader...)}
	sheet.Rows = make([][]string, 0, len(records))
	for _, r := range records {
		sheet.Rows = append(sheet.Rows, r.Values())
	}
	return sheet
}

// Value returns the trimmed cell at row/col, or "" for a missing column.
func (s *DaySheet) Value(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
