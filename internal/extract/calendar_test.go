package extract

import (
	"testing"

	"github.com/rhyrak/go-timetable/pkg/model"
)

func TestExtractCalendarInfo(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantDay   string
		wantStart string
		wantEnd   string
	}{
		{"tuesday with joiner", "سه\u200cشنبه 10:00 تا 11:30 کلاس 12", Tuesday, "10:00", "11:30"},
		{"tuesday with space", "سه شنبه 10:00 تا 11:30", Tuesday, "10:00", "11:30"},
		{"tuesday with underscore", "سه_شنبه 8:00 تا 9:30", Tuesday, "8:00", "9:30"},
		{"dot separators", "دوشنبه 13.30 تا 15.00", Monday, "13:30", "15:00"},
		{"mixed separators", "یکشنبه 13.30 تا 15:00", Sunday, "13:30", "15:00"},
		{"saturday", "شنبه 08:00 تا 10:00 (ف)", Saturday, "08:00", "10:00"},
		{"thursday typo", "پنچشنبه 09:00 تا 10:00", Thursday, "09:00", "10:00"},
		{"wednesday arabic kaf/yeh", "چهارشنبه 14:00تا16:00", Wednesday, "14:00", "16:00"},
		{"friday persian digits", "جمعه ۱۰:۰۰ تا ۱۲:۰۰", Friday, "10:00", "12:00"},
		{"day only", "دوشنبه هفته فرد", Monday, "", ""},
		{"time only", "درس 10:00 تا 12:00", "", "10:00", "12:00"},
		{"day not at start", "کلاس شنبه 10:00 تا 12:00", "", "10:00", "12:00"},
		{"empty", "   ", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, start, end := ExtractCalendarInfo(tt.text)
			if day != tt.wantDay || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("ExtractCalendarInfo(%q) = (%q, %q, %q), want (%q, %q, %q)",
					tt.text, day, start, end, tt.wantDay, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestExtractCalendarInfoSeparatorIndependent(t *testing.T) {
	for h := 7; h < 20; h++ {
		for _, m := range []int{0, 15, 30, 45} {
			start := FormatMinutes(h*60 + m)
			end := FormatMinutes((h+1)*60 + m)
			for _, sep := range []string{":", "."} {
				s := start[:2] + sep + start[3:]
				e := end[:2] + sep + end[3:]
				_, gotStart, gotEnd := ExtractCalendarInfo("دوشنبه " + s + " تا " + e)
				if gotStart != start || gotEnd != end {
					t.Fatalf("separator %q: got (%q, %q), want (%q, %q)", sep, gotStart, gotEnd, start, end)
				}
			}
		}
	}
}

func TestFillFromCalendar(t *testing.T) {
	t.Run("fills only empty fields", func(t *testing.T) {
		r := model.RawRecord{Start: "09:00", Calendar: "سه شنبه 10:00 تا 11:30"}
		FillFromCalendar(&r)
		if r.Day != Tuesday || r.Start != "09:00" || r.End != "11:30" {
			t.Errorf("got day=%q start=%q end=%q", r.Day, r.Start, r.End)
		}
	})

	t.Run("complete row untouched", func(t *testing.T) {
		r := model.RawRecord{Day: "شنبه", Start: "08:00", End: "10:00", Calendar: "دوشنبه 13:00 تا 15:00"}
		want := r
		FillFromCalendar(&r)
		if r != want {
			t.Errorf("complete row changed: %+v", r)
		}
	})

	t.Run("whitespace counts as empty", func(t *testing.T) {
		r := model.RawRecord{Day: "  ", Start: "08:00", End: "10:00", Calendar: "جمعه 08:00 تا 10:00"}
		FillFromCalendar(&r)
		if r.Day != Friday {
			t.Errorf("day = %q, want %q", r.Day, Friday)
		}
	})
}
