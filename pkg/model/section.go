package model

// SectionEntry is one occupant of a grid cell.
type SectionEntry struct {
	Course        string
	Teacher       string
	Code          string
	TheoryUnits   string
	PracticeUnits string
	Group         string
	Degree        string
	Enrollment    string
	Start         string
	End           string
}

// Key is the identity used to deduplicate occupants: course, teacher, code.
func (e *SectionEntry) Key() string {
	return e.Course + "|" + e.Teacher + "|" + e.Code
}
