package timetable

import "strings"

// Dedup drops rows whose values in cols repeat an earlier row.
// The first occurrence wins. With no cols, rows is returned unchanged.
func Dedup(rows [][]string, cols []int) [][]string {
	if len(cols) == 0 {
		return rows
	}
	seen := make(map[string]struct{}, len(rows))
	out := make([][]string, 0, len(rows))
	var b strings.Builder
	for _, row := range rows {
		b.Reset()
		for _, c := range cols {
			if c < len(row) {
				b.WriteString(row[c])
			}
			b.WriteByte(0)
		}
		key := b.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}
	return out
}
