package extract

import "strings"

// Canonical weekday labels, Saturday first.
const (
	Saturday  = "شنبه"
	Sunday    = "یکشنبه"
	Monday    = "دوشنبه"
	Tuesday   = "سه\u200cشنبه"
	Wednesday = "چهارشنبه"
	Thursday  = "پنج\u200cشنبه"
	Friday    = "جمعه"

	// Unrecognized names the bucket for rows whose day maps to no weekday.
	Unrecognized = "نامشخص"
)

var weekdays = []string{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}

// Weekdays returns the canonical weekday labels in week order.
func Weekdays() []string {
	return append([]string(nil), weekdays...)
}

// IsWeekday reports whether s is exactly one of the canonical labels.
func IsWeekday(s string) bool {
	for _, d := range weekdays {
		if s == d {
			return true
		}
	}
	return false
}

var textFolder = strings.NewReplacer(
	"\u200c", "", // zero-width non-joiner
	"\u200d", "", // zero-width joiner
	"\u200e", "",
	"\u200f", "",
	"\ufeff", "",
	"ي", "ی",
	"ك", "ک",
)

// NormalizeText strips invisible joiners, folds Arabic yeh/kaf to their
// Persian forms and trims surrounding whitespace.
func NormalizeText(s string) string {
	return strings.TrimSpace(textFolder.Replace(s))
}

// dayVariants maps known spellings, after NormalizeText, to canonical labels.
// Lookups are exact: "شنبه" inside a longer field must not match.
var dayVariants = map[string]string{
	"شنبه":      Saturday,
	"یکشنبه":    Sunday,
	"یک شنبه":   Sunday,
	"یک_شنبه":   Sunday,
	"دوشنبه":    Monday,
	"دو شنبه":   Monday,
	"دو_شنبه":   Monday,
	"سهشنبه":    Tuesday,
	"سه شنبه":   Tuesday,
	"سه_شنبه":   Tuesday,
	"چهارشنبه":  Wednesday,
	"چهار شنبه": Wednesday,
	"چهار_شنبه": Wednesday,
	"پنجشنبه":   Thursday,
	"پنج شنبه":  Thursday,
	"پنج_شنبه":  Thursday,
	"پنچشنبه":   Thursday, // common typo
	"پنچ شنبه":  Thursday,
	"جمعه":      Friday,
}

// CanonicalDay maps a day-name candidate to its canonical label.
// Unknown values are returned normalized but otherwise unchanged.
func CanonicalDay(s string) string {
	n := NormalizeText(s)
	if day, ok := dayVariants[n]; ok {
		return day
	}
	return n
}
