package timetable

import (
	"strings"
	"unicode/utf8"

	"github.com/rhyrak/go-timetable/internal/extract"
)

// minFuzzyLen keeps short codes such as "M" or "N" out of substring matching.
const minFuzzyLen = 3

// Roles holds the resolved column index of each logical field, or -1.
type Roles struct {
	Room       int
	Course     int
	Teacher    int
	Code       int
	Theory     int
	Practice   int
	Group      int
	Degree     int
	Enrollment int
	Start      int
	End        int
}

// ResolveColumn returns the index of the first candidate found in header, or
// -1. Exact matches are tried for every candidate before falling back to
// substring containment. Both sides are compared after text normalization.
func ResolveColumn(header []string, candidates []string) int {
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = extract.NormalizeText(h)
	}
	for _, c := range candidates {
		c = extract.NormalizeText(c)
		for i, name := range names {
			if name == c {
				return i
			}
		}
	}
	for _, c := range candidates {
		c = extract.NormalizeText(c)
		if utf8.RuneCountInString(c) < minFuzzyLen {
			continue
		}
		for i, name := range names {
			if strings.Contains(name, c) {
				return i
			}
		}
	}
	return -1
}

// ResolveRoles maps every logical field to a column of header.
func ResolveRoles(header []string, cols ColumnCandidates) Roles {
	return Roles{
		Room:       ResolveColumn(header, cols.Room),
		Course:     ResolveColumn(header, cols.Course),
		Teacher:    ResolveColumn(header, cols.Teacher),
		Code:       ResolveColumn(header, cols.Code),
		Theory:     ResolveColumn(header, cols.Theory),
		Practice:   ResolveColumn(header, cols.Practice),
		Group:      ResolveColumn(header, cols.Group),
		Degree:     ResolveColumn(header, cols.Degree),
		Enrollment: ResolveColumn(header, cols.Enrollment),
		Start:      ResolveColumn(header, cols.Start),
		End:        ResolveColumn(header, cols.End),
	}
}

// Missing names the optional roles that could not be resolved.
func (r Roles) Missing() []string {
	var missing []string
	for _, f := range []struct {
		name string
		idx  int
	}{
		{"course", r.Course}, {"teacher", r.Teacher}, {"code", r.Code},
		{"theory_units", r.Theory}, {"practice_units", r.Practice},
		{"group", r.Group}, {"degree", r.Degree}, {"enrollment", r.Enrollment},
		{"start", r.Start}, {"end", r.End},
	} {
		if f.idx < 0 {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// dedupColumns are the columns whose values identify a duplicate row.
func (r Roles) dedupColumns() []int {
	var cols []int
	for _, i := range []int{r.Code, r.Course, r.Teacher, r.Room, r.Start, r.End} {
		if i >= 0 {
			cols = append(cols, i)
		}
	}
	return cols
}
