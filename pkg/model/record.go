package model

// Zero-based column positions inside the registrar export.
const (
	ColCode         = 0
	ColCourse       = 2
	ColTheoryUnits  = 11
	ColPracticeUnit = 12
	ColRoom         = 22
	ColDepartment   = 43
	ColDegree       = 53
	ColEnrollment   = 57
	ColTerm         = 59
	ColTeacher      = 68
	ColMajor        = 70
	ColCalendar     = 71
	ColDay          = 72
	ColStart        = 73
	ColEnd          = 74

	// MinColumns is the narrowest export that still carries every ordinal above.
	MinColumns = ColEnd + 1
)

// RawRecord is one export row reduced to the columns the timetable needs.
type RawRecord struct {
	Course        string
	Code          string
	TheoryUnits   string
	PracticeUnits string
	Room          string
	Department    string
	Degree        string
	Enrollment    string
	Term          string
	Teacher       string
	Major         string
	Day           string
	Start         string
	End           string
	Calendar      string
}

// NormalizedRecord is a RawRecord after text and weekday canonicalization.
// The csv tags double as the header of the per-day sheets.
type NormalizedRecord struct {
	Course        string `csv:"نام درس"`
	Code          string `csv:"کد ارائه درس"`
	TheoryUnits   string `csv:"واحد نظری"`
	PracticeUnits string `csv:"واحد عملی"`
	Room          string `csv:"مکان"`
	Department    string `csv:"گروه آموزشی"`
	Degree        string `csv:"مقطع"`
	Enrollment    string `csv:"تعداد ثبت نامی"`
	Term          string `csv:"نیم\u200cسال"`
	Teacher       string `csv:"نام استاد"`
	Major         string `csv:"رشته"`
	Day           string `csv:"روز"`
	Start         string `csv:"ساعت شروع"`
	End           string `csv:"ساعت پایان"`
}

// RecordHeader lists the per-day sheet columns in write order.
var RecordHeader = []string{
	"نام درس",
	"کد ارائه درس",
	"واحد نظری",
	"واحد عملی",
	"مکان",
	"گروه آموزشی",
	"مقطع",
	"تعداد ثبت نامی",
	"نیم\u200cسال",
	"نام استاد",
	"رشته",
	"روز",
	"ساعت شروع",
	"ساعت پایان",
}

// Values returns the record fields in RecordHeader order.
func (r *NormalizedRecord) Values() []string {
	return []string{
		r.Course,
		r.Code,
		r.TheoryUnits,
		r.PracticeUnits,
		r.Room,
		r.Department,
		r.Degree,
		r.Enrollment,
		r.Term,
		r.Teacher,
		r.Major,
		r.Day,
		r.Start,
		r.End,
	}
}
