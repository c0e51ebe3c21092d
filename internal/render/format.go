package render

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/rhyrak/go-timetable/pkg/model"
)

// pastels holds one light fill per hue bucket: red, orange, yellow, green,
// cyan, blue, magenta.
var pastels = [...]string{"FFE6E6", "FFE8CC", "FFF9C4", "E6F7E6", "E6F7F7", "E6E6FF", "F7E6F7"}

const noColor = "FFFFFF"

// CourseColor maps a course name to one of seven pastel fills. The mapping
// only depends on the name; distinct names may share a color.
func CourseColor(course string) string {
	if course == "" {
		return noColor
	}
	sum := md5.Sum([]byte(course))
	return pastels[binary.BigEndian.Uint32(sum[:4])%uint32(len(pastels))]
}

// DisplayText returns one "course — teacher" line per distinct pair, in
// first-seen order.
func DisplayText(entries []*model.SectionEntry) string {
	lines := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		line := e.Course + " — " + e.Teacher
		if seen[line] {
			continue
		}
		seen[line] = true
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

var detailRule = "\n" + strings.Repeat("─", 30) + "\n"

// DetailText describes every occupant for the cell note.
func DetailText(entries []*model.SectionEntry) string {
	blocks := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Key()] {
			continue
		}
		seen[e.Key()] = true
		blocks = append(blocks, fmt.Sprintf(
			"درس: %s\nاستاد: %s\nکد: %s\nواحد: %s(ن) + %s(ع)\nثبت\u200cنام: %s\nساعت: %s - %s",
			e.Course, e.Teacher, e.Code, e.TheoryUnits, e.PracticeUnits, e.Enrollment, e.Start, e.End))
	}
	return strings.Join(blocks, detailRule)
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
