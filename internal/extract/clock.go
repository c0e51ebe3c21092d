package extract

import (
	"fmt"
	"strconv"
	"strings"
)

var digitFolder = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
)

// FoldDigits translates Persian and Arabic-Indic digits to ASCII.
func FoldDigits(s string) string {
	return digitFolder.Replace(s)
}

// ParseMinutes converts a time-of-day token to minutes since midnight.
// It accepts "H", "HH", "H:MM", "HH:MM" (with "." or "：" as separator and an
// optional ":SS" tail) and bare "HMM"/"HHMM". ok is false for anything else.
func ParseMinutes(s string) (minutes int, ok bool) {
	s = strings.TrimSpace(FoldDigits(s))
	if s == "" {
		return 0, false
	}
	s = strings.NewReplacer(".", ":", "：", ":").Replace(s)

	var hh, mm string
	switch {
	case strings.Contains(s, ":"):
		parts := strings.Split(s, ":")
		if len(parts) > 3 {
			return 0, false
		}
		hh, mm = parts[0], parts[1]
		if len(mm) != 2 && len(mm) != 1 {
			return 0, false
		}
		if len(parts) == 3 && !isDigits(parts[2]) {
			return 0, false
		}
	case len(s) <= 2:
		hh, mm = s, "0"
	case len(s) <= 4:
		hh, mm = s[:len(s)-2], s[len(s)-2:]
	default:
		return 0, false
	}
	if len(hh) == 0 || len(hh) > 2 || !isDigits(hh) || !isDigits(mm) {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, false
	}
	if h > 24 || m > 59 || (h == 24 && m > 0) {
		return 0, false
	}
	return h*60 + m, true
}

// FormatMinutes renders minutes since midnight as HH:MM.
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
