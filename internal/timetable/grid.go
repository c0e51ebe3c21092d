package timetable

import (
	"context"
	"log/slog"

	"github.com/rhyrak/go-timetable/internal/extract"
	"github.com/rhyrak/go-timetable/pkg/model"
	"golang.org/x/sync/errgroup"
)

// DayTable is one weekday's grid together with its build report.
// Grid is nil when the day was skipped.
type DayTable struct {
	Day    string
	Grid   *model.OccupancyGrid
	Report *SheetReport
}

// BuildSlots returns the slot start minutes for a day. The slots begin at
// cfg.DayStart and stop at the first slot boundary at or after maxEnd.
// Without a usable end time the day spans cfg.FallbackSpan.
func BuildSlots(maxEnd int, haveEnd bool, cfg *Configuration) []int {
	start := int(cfg.DayStart)
	end := start + cfg.FallbackSpan
	if haveEnd && maxEnd > start {
		n := (maxEnd - start + cfg.SlotMinutes - 1) / cfg.SlotMinutes
		end = start + n*cfg.SlotMinutes
	}
	slots := make([]int, 0, (end-start)/cfg.SlotMinutes)
	for s := start; s < end; s += cfg.SlotMinutes {
		slots = append(slots, s)
	}
	return slots
}

// StartIndex finds the slot whose window contains minute. When none does,
// the slot with the closest start wins, earliest first on ties.
func StartIndex(slots []int, width, minute int) int {
	for i, s := range slots {
		if s <= minute && minute < s+width {
			return i
		}
	}
	best, bestDist := -1, 0
	for i, s := range slots {
		d := s - minute
		if d < 0 {
			d = -d
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// EndIndex returns the last slot that ends at or before minute, or -1.
func EndIndex(slots []int, width, minute int) int {
	for i := len(slots) - 1; i >= 0; i-- {
		if slots[i]+width <= minute {
			return i
		}
	}
	return -1
}

// SlotLabels formats the slot starts of g as HH:MM.
func SlotLabels(g *model.OccupancyGrid) []string {
	labels := make([]string, len(g.Slots))
	for i, s := range g.Slots {
		labels[i] = extract.FormatMinutes(s)
	}
	return labels
}

// BuildGrid resolves the columns of sheet, removes duplicate rows and places
// every row with a room and a usable interval into the day's grid.
// A sheet without a room column, or without any room value, yields a nil grid.
func BuildGrid(sheet *model.DaySheet, cfg *Configuration, logger *slog.Logger) (*model.OccupancyGrid, *SheetReport) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("day", sheet.Name)
	report := &SheetReport{Day: sheet.Name, Rows: len(sheet.Rows)}

	roles := ResolveRoles(sheet.Header, cfg.Columns)
	if roles.Room < 0 {
		report.skip("room column not found")
		logger.Warn("skipping day", "reason", report.Reason)
		return nil, report
	}
	report.Missing = roles.Missing()
	if len(report.Missing) > 0 {
		logger.Debug("unresolved columns", "roles", report.Missing)
	}

	rows := Dedup(sheet.Rows, roles.dedupColumns())
	report.Duplicates = len(sheet.Rows) - len(rows)

	var rooms []string
	seen := make(map[string]bool)
	maxEnd, haveEnd := 0, false
	for _, row := range rows {
		if room := sheet.Value(row, roles.Room); room != "" && !seen[room] {
			seen[room] = true
			rooms = append(rooms, room)
		}
		if end, ok := extract.ParseMinutes(sheet.Value(row, roles.End)); ok {
			if !haveEnd || end > maxEnd {
				maxEnd = end
			}
			haveEnd = true
		}
	}
	if len(rooms) == 0 {
		report.skip("no room values")
		logger.Warn("skipping day", "reason", report.Reason)
		return nil, report
	}
	model.SortRooms(rooms)
	report.Rooms = len(rooms)

	slots := BuildSlots(maxEnd, haveEnd, cfg)
	report.Slots = len(slots)
	grid := model.NewOccupancyGrid(sheet.Name, rooms, slots, cfg.SlotMinutes)

	for i, row := range rows {
		room := sheet.Value(row, roles.Room)
		if room == "" {
			report.SkippedRoom++
			continue
		}
		startText, endText := sheet.Value(row, roles.Start), sheet.Value(row, roles.End)
		start, okStart := extract.ParseMinutes(startText)
		end, okEnd := extract.ParseMinutes(endText)
		if !okStart || !okEnd {
			report.SkippedTime++
			logger.Debug("unparsable time", "row", i, "start", startText, "end", endText)
			continue
		}
		from := StartIndex(slots, cfg.SlotMinutes, start)
		to := EndIndex(slots, cfg.SlotMinutes, end)
		if to < 0 || to < from {
			report.SkippedInterval++
			continue
		}
		grid.Place(room, from, to, entry(sheet, row, roles))
		report.Placed++
	}

	for _, room := range rooms {
		report.Runs += len(Runs(grid, room))
	}
	report.Occupied = grid.Occupied()
	logger.Info("built grid", "rooms", report.Rooms, "slots", report.Slots, "placed", report.Placed, "occupied", report.Occupied, "runs", report.Runs)
	return grid, report
}

// BuildAll builds a grid for every weekday sheet and returns them in the order
// given. Sheets that are not canonical weekdays are ignored. With
// cfg.Parallel the days are built concurrently.
func BuildAll(ctx context.Context, sheets []*model.DaySheet, cfg *Configuration, logger *slog.Logger) ([]*DayTable, error) {
	var days []*model.DaySheet
	for _, s := range sheets {
		if extract.IsWeekday(s.Name) {
			days = append(days, s)
		}
	}
	tables := make([]*DayTable, len(days))

	if !cfg.Parallel {
		for i, s := range days {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			grid, report := BuildGrid(s, cfg, logger)
			tables[i] = &DayTable{Day: s.Name, Grid: grid, Report: report}
		}
		return tables, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, s := range days {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			grid, report := BuildGrid(s, cfg, logger)
			tables[i] = &DayTable{Day: s.Name, Grid: grid, Report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

func entry(sheet *model.DaySheet, row []string, r Roles) *model.SectionEntry {
	return &model.SectionEntry{
		Course:        sheet.Value(row, r.Course),
		Teacher:       sheet.Value(row, r.Teacher),
		Code:          sheet.Value(row, r.Code),
		TheoryUnits:   sheet.Value(row, r.Theory),
		PracticeUnits: sheet.Value(row, r.Practice),
		Group:         sheet.Value(row, r.Group),
		Degree:        sheet.Value(row, r.Degree),
		Enrollment:    sheet.Value(row, r.Enrollment),
		Start:         sheet.Value(row, r.Start),
		End:           sheet.Value(row, r.End),
	}
}
