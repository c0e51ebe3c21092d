package timetable

import "github.com/rhyrak/go-timetable/pkg/model"

// Runs scans the slots of room left to right and returns every maximal
// stretch of consecutive slots holding the same set of occupants.
// Empty slots never form a run.
func Runs(g *model.OccupancyGrid, room string) []model.Run {
	row := g.Cells[room]
	var runs []model.Run
	var cur *model.Run
	var curContent *model.SlotContent

	flush := func() {
		if cur != nil {
			runs = append(runs, *cur)
			cur, curContent = nil, nil
		}
	}

	for i, c := range row {
		if c.Empty() {
			flush()
			continue
		}
		if cur != nil && curContent.SameOccupants(c) {
			cur.End = i
			continue
		}
		flush()
		cur = &model.Run{Room: room, Start: i, End: i, Entries: c.Entries}
		curContent = c
	}
	flush()
	return runs
}
