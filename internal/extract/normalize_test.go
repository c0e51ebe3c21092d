package extract

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"arabic yeh and kaf", "يكشنبه", "یکشنبه"},
		{"zero-width non-joiner", "سه\u200cشنبه", "سهشنبه"},
		{"zero-width joiner", "پنج\u200dشنبه", "پنجشنبه"},
		{"bom and spaces", "\ufeff  کلاس 12  ", "کلاس 12"},
		{"plain ascii", " Room 101 ", "Room 101"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.in); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCanonicalDayVariants(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"شنبه", Saturday},
		{"یکشنبه", Sunday},
		{"يکشنبه", Sunday},
		{"يكشنبه", Sunday},
		{"یكشنبه", Sunday},
		{"یک شنبه", Sunday},
		{"دوشنبه", Monday},
		{"سه شنبه", Tuesday},
		{"سه\u200cشنبه", Tuesday},
		{"سهشنبه", Tuesday},
		{"سه_شنبه", Tuesday},
		{"چهارشنبه", Wednesday},
		{"چهار شنبه", Wednesday},
		{"چهار_شنبه", Wednesday},
		{"پنجشنبه", Thursday},
		{"پنج شنبه", Thursday},
		{"پنج\u200cشنبه", Thursday},
		{"پنج_شنبه", Thursday},
		{"پنچشنبه", Thursday},
		{"پنچ شنبه", Thursday},
		{"جمعه", Friday},
		{"  جمعه ", Friday},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := CanonicalDay(tt.in)
			if got != tt.want {
				t.Errorf("CanonicalDay(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if !IsWeekday(got) {
				t.Errorf("CanonicalDay(%q) = %q is not a canonical weekday", tt.in, got)
			}
		})
	}
}

func TestCanonicalDayPassThrough(t *testing.T) {
	for _, in := range []string{"Monday", "شنبه و دوشنبه", "کلاس شنبه", "N/A", ""} {
		got := CanonicalDay(in)
		if got != in {
			t.Errorf("CanonicalDay(%q) = %q, want unchanged", in, got)
		}
		if IsWeekday(got) {
			t.Errorf("CanonicalDay(%q) unexpectedly produced a weekday", in)
		}
	}
}

func TestWeekdaysOrder(t *testing.T) {
	days := Weekdays()
	if len(days) != 7 {
		t.Fatalf("Weekdays() returned %d days, want 7", len(days))
	}
	if days[0] != Saturday || days[6] != Friday {
		t.Errorf("Weekdays() = %v, want Saturday first and Friday last", days)
	}
	days[0] = "x"
	if Weekdays()[0] != Saturday {
		t.Error("Weekdays() exposes internal slice")
	}
}
