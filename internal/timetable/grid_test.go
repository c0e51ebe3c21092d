package timetable

import (
	"context"
	"slices"
	"testing"

	"github.com/rhyrak/go-timetable/internal/extract"
	"github.com/rhyrak/go-timetable/pkg/model"
)

func sheet(day string, records ...*model.NormalizedRecord) *model.DaySheet {
	for _, r := range records {
		r.Day = day
	}
	return model.NewDaySheet(day, records)
}

func rec(room, course, teacher, code, start, end string) *model.NormalizedRecord {
	return &model.NormalizedRecord{
		Room: room, Course: course, Teacher: teacher, Code: code,
		Start: start, End: end, Enrollment: "30", TheoryUnits: "3",
	}
}

// occupied lists the slot labels where room holds at least one entry.
func occupied(g *model.OccupancyGrid, room string) []string {
	var labels []string
	for i, c := range g.Cells[room] {
		if !c.Empty() {
			labels = append(labels, extract.FormatMinutes(g.Slots[i]))
		}
	}
	return labels
}

func TestBuildSlots(t *testing.T) {
	cfg := NewDefaultConfiguration()
	tests := []struct {
		name    string
		maxEnd  int
		haveEnd bool
		want    int
		last    int
	}{
		{"aligned end", 600, true, 4, 570},
		{"rounds up", 610, true, 5, 600},
		{"no end times", 0, false, 20, 1050},
		{"end before day start", 420, true, 20, 1050},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := BuildSlots(tt.maxEnd, tt.haveEnd, cfg)
			if len(slots) != tt.want || slots[0] != 480 || slots[len(slots)-1] != tt.last {
				t.Errorf("BuildSlots(%d) = %v, want %d slots from 480 to %d", tt.maxEnd, slots, tt.want, tt.last)
			}
		})
	}
}

func TestStartAndEndIndex(t *testing.T) {
	slots := []int{480, 510, 540, 570, 600}
	tests := []struct {
		name             string
		start, end       int
		wantFrom, wantTo int
	}{
		{"aligned", 540, 600, 2, 3},
		{"start inside slot", 555, 630, 2, 4},
		{"start before day", 420, 540, 0, 1},
		{"start after last slot", 700, 800, 4, 4},
		{"end cuts a slot", 540, 615, 2, 3},
		{"end before first slot closes", 480, 500, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := StartIndex(slots, 30, tt.start)
			to := EndIndex(slots, 30, tt.end)
			if from != tt.wantFrom || to != tt.wantTo {
				t.Errorf("indexes = (%d, %d), want (%d, %d)", from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}
}

func TestBuildGridSingleSection(t *testing.T) {
	s := sheet(extract.Monday, rec("Room 101", "Algebra", "Smith", "11", "09:00", "10:00"))
	grid, report := BuildGrid(s, NewDefaultConfiguration(), nil)
	if grid == nil {
		t.Fatalf("BuildGrid() skipped: %s", report.Reason)
	}
	if got := occupied(grid, "Room 101"); !slices.Equal(got, []string{"09:00", "09:30"}) {
		t.Errorf("occupied = %v, want [09:00 09:30]", got)
	}
	runs := Runs(grid, "Room 101")
	if len(runs) != 1 || runs[0].Len() != 2 || runs[0].Entries[0].Course != "Algebra" {
		t.Errorf("runs = %+v, want one run of two slots for Algebra", runs)
	}
	if report.Placed != 1 || report.Runs != 1 || report.Occupied != 2 {
		t.Errorf("report = %+v", report)
	}
}

func TestBuildGridFullyContainedSlots(t *testing.T) {
	s := sheet(extract.Monday,
		rec("کلاس 1", "آمار", "رضایی", "1", "09:00", "10:30"),
		rec("کلاس 2", "جبر", "احمدی", "2", "09:15", "10:00"),
	)
	grid, _ := BuildGrid(s, NewDefaultConfiguration(), nil)
	if got := occupied(grid, "کلاس 1"); !slices.Equal(got, []string{"09:00", "09:30", "10:00"}) {
		t.Errorf("[09:00,10:30) occupies %v", got)
	}
	if got := occupied(grid, "کلاس 2"); !slices.Equal(got, []string{"09:00", "09:30"}) {
		t.Errorf("[09:15,10:00) occupies %v", got)
	}
	if got := grid.Occupied(); got != 5 {
		t.Errorf("Occupied() = %d, want 5", got)
	}
}

func TestBuildGridSkipsRowsLocally(t *testing.T) {
	s := sheet(extract.Saturday,
		rec("کلاس 5", "ادبیات", "امینی", "1", "N/A", "10:00"),
		rec("", "فیزیک", "نوری", "2", "08:00", "10:00"),
		rec("کلاس 6", "شیمی", "صادقی", "3", "08:00", "08:15"),
		rec("کلاس 7", "زیست", "کریمی", "4", "08:00", "09:00"),
	)
	grid, report := BuildGrid(s, NewDefaultConfiguration(), nil)
	if grid == nil {
		t.Fatal("BuildGrid() skipped the day")
	}
	if report.SkippedTime != 1 || report.SkippedRoom != 1 || report.SkippedInterval != 1 || report.Placed != 1 {
		t.Errorf("report = %+v", report)
	}
	if got := occupied(grid, "کلاس 5"); len(got) != 0 {
		t.Errorf("unparsable row occupies %v", got)
	}
	if !slices.Equal(grid.Rooms, []string{"کلاس 5", "کلاس 6", "کلاس 7"}) {
		t.Errorf("rooms = %v", grid.Rooms)
	}
}

func TestBuildGridDeduplicatesOccupants(t *testing.T) {
	a := rec("کلاس 3", "جبر", "احمدی", "1", "08:00", "09:00")
	b := rec("کلاس 3", "جبر", "احمدی", "1", "08:00", "09:00")
	b.Enrollment = "45"
	c := rec("کلاس 3", "جبر", "احمدی", "1", "8:00", "9:00") // same key, different time text
	grid, report := BuildGrid(sheet(extract.Sunday, a, b, c), NewDefaultConfiguration(), nil)
	if report.Duplicates != 1 {
		t.Errorf("Duplicates = %d, want 1 (rows differing only in enrollment)", report.Duplicates)
	}
	for i, cell := range grid.Cells["کلاس 3"][:2] {
		if len(cell.Entries) != 1 || cell.Entries[0].Enrollment != "30" {
			t.Errorf("slot %d = %+v, want the first row's entry only", i, cell.Entries)
		}
	}
}

func TestBuildGridRoomOrder(t *testing.T) {
	s := sheet(extract.Sunday,
		rec("کلاس 210", "a", "x", "1", "08:00", "09:00"),
		rec("آمفی تئاتر", "b", "x", "2", "08:00", "09:00"),
		rec("کلاس 12", "c", "x", "3", "08:00", "09:00"),
	)
	grid, _ := BuildGrid(s, NewDefaultConfiguration(), nil)
	want := []string{"آمفی تئاتر", "کلاس 12", "کلاس 210"}
	if !slices.Equal(grid.Rooms, want) {
		t.Errorf("rooms = %v, want %v", grid.Rooms, want)
	}
}

func TestBuildGridWithoutRoomColumn(t *testing.T) {
	s := &model.DaySheet{Name: extract.Monday, Header: []string{"نام درس", "ساعت شروع"}, Rows: [][]string{{"جبر", "08:00"}}}
	grid, report := BuildGrid(s, NewDefaultConfiguration(), nil)
	if grid != nil || !report.Skipped {
		t.Errorf("BuildGrid() = %v, %+v; want a skipped day", grid, report)
	}
}

func TestBuildAllKeepsOrder(t *testing.T) {
	sheets := []*model.DaySheet{
		sheet(extract.Saturday, rec("کلاس 1", "a", "x", "1", "08:00", "09:00")),
		sheet(extract.Monday, rec("کلاس 2", "b", "y", "2", "08:00", "09:00")),
		{Name: extract.Tuesday, Header: []string{"x"}, Rows: [][]string{{"y"}}},
		sheet(extract.Unrecognized, rec("کلاس 3", "c", "z", "3", "08:00", "09:00")),
	}
	for _, parallel := range []bool{false, true} {
		cfg := NewDefaultConfiguration()
		cfg.Parallel = parallel
		tables, err := BuildAll(context.Background(), sheets, cfg, nil)
		if err != nil {
			t.Fatalf("BuildAll(parallel=%v) error = %v", parallel, err)
		}
		var days []string
		for _, tb := range tables {
			days = append(days, tb.Day)
		}
		if !slices.Equal(days, []string{extract.Saturday, extract.Monday, extract.Tuesday}) {
			t.Errorf("parallel=%v: days = %v", parallel, days)
		}
		if tables[2].Grid != nil || !tables[2].Report.Skipped {
			t.Errorf("parallel=%v: Tuesday should be skipped", parallel)
		}
	}
}

func TestBuildAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sheets := []*model.DaySheet{sheet(extract.Saturday, rec("کلاس 1", "a", "x", "1", "08:00", "09:00"))}
	if _, err := BuildAll(ctx, sheets, NewDefaultConfiguration(), nil); err == nil {
		t.Error("BuildAll() with cancelled context returned nil error")
	}
}
