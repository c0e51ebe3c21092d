package extract

import (
	"regexp"
	"strings"

	"github.com/rhyrak/go-timetable/pkg/model"
)

type dayPattern struct {
	re  *regexp.Regexp
	day string
}

// Compound names come first so that "سه شنبه" is never read as "شنبه".
var calendarDays = []dayPattern{
	{regexp.MustCompile(`^سه[\x{200c}_\s]*شنبه`), Tuesday},
	{regexp.MustCompile(`^چهار[\x{200c}_\s]*شنبه`), Wednesday},
	{regexp.MustCompile(`^پن[جچ][\x{200c}_\s]*شنبه`), Thursday},
	{regexp.MustCompile(`^یک[\x{200c}_\s]*شنبه`), Sunday},
	{regexp.MustCompile(`^دو[\x{200c}_\s]*شنبه`), Monday},
	{regexp.MustCompile(`^شنبه`), Saturday},
	{regexp.MustCompile(`^جمعه`), Friday},
}

var calendarTimes = regexp.MustCompile(`(\d{1,2}[:.]\d{2})\s*تا\s*(\d{1,2}[:.]\d{2})`)

// ExtractCalendarInfo pulls a weekday and a "HH:MM تا HH:MM" range out of the
// free-text class calendar field. Missing parts come back as "".
func ExtractCalendarInfo(text string) (day, start, end string) {
	text = FoldDigits(NormalizeText(text))
	if text == "" {
		return "", "", ""
	}

	for _, p := range calendarDays {
		if p.re.MatchString(text) {
			day = p.day
			break
		}
	}

	if m := calendarTimes.FindStringSubmatch(text); m != nil {
		start = strings.ReplaceAll(m[1], ".", ":")
		end = strings.ReplaceAll(m[2], ".", ":")
	}
	return day, start, end
}

// FillFromCalendar completes an empty day, start or end on r from its
// calendar text. Present values are never overwritten.
func FillFromCalendar(r *model.RawRecord) {
	if strings.TrimSpace(r.Day) != "" && strings.TrimSpace(r.Start) != "" && strings.TrimSpace(r.End) != "" {
		return
	}
	day, start, end := ExtractCalendarInfo(r.Calendar)
	if strings.TrimSpace(r.Day) == "" && day != "" {
		r.Day = day
	}
	if strings.TrimSpace(r.Start) == "" && start != "" {
		r.Start = start
	}
	if strings.TrimSpace(r.End) == "" && end != "" {
		r.End = end
	}
}
