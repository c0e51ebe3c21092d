package model

// SlotContent is the set of occupants of one room during one slot.
type SlotContent struct {
	Entries []*SectionEntry
}

// Add appends e unless an entry with the same key is already present.
// Returns false for a duplicate.
func (s *SlotContent) Add(e *SectionEntry) bool {
	key := e.Key()
	for _, existing := range s.Entries {
		if existing.Key() == key {
			return false
		}
	}
	s.Entries = append(s.Entries, e)
	return true
}

// Empty reports whether nothing occupies the slot.
func (s *SlotContent) Empty() bool {
	return s == nil || len(s.Entries) == 0
}

// SameOccupants compares two slots as sets of identity keys.
func (s *SlotContent) SameOccupants(o *SlotContent) bool {
	if s.Empty() || o.Empty() {
		return s.Empty() == o.Empty()
	}
	if len(s.Entries) != len(o.Entries) {
		return false
	}
	keys := make(map[string]bool, len(s.Entries))
	for _, e := range s.Entries {
		keys[e.Key()] = true
	}
	for _, e := range o.Entries {
		if !keys[e.Key()] {
			return false
		}
	}
	return true
}

// OccupancyGrid maps each room to its row of slots for one weekday.
type OccupancyGrid struct {
	Day         string
	Slots       []int // slot start, minutes since midnight
	SlotMinutes int
	Rooms       []string
	Cells       map[string][]*SlotContent
}

/* NewOccupancyGrid creates an empty grid for the given rooms and slots. */
func NewOccupancyGrid(day string, rooms []string, slots []int, slotMinutes int) *OccupancyGrid {
	grid := OccupancyGrid{
		Day:         day,
		Slots:       slots,
		SlotMinutes: slotMinutes,
		Rooms:       rooms,
		Cells:       make(map[string][]*SlotContent, len(rooms)),
	}
	for _, room := range rooms {
		grid.Cells[room] = make([]*SlotContent, len(slots))
	}
	return &grid
}

// Place records e in room for every slot in [from, to].
func (g *OccupancyGrid) Place(room string, from, to int, e *SectionEntry) {
	row, ok := g.Cells[room]
	if !ok {
		return
	}
	for i := from; i <= to && i < len(row); i++ {
		if row[i] == nil {
			row[i] = new(SlotContent)
		}
		row[i].Add(e)
	}
}

// Occupied counts non-empty cells across all rooms.
func (g *OccupancyGrid) Occupied() int {
	n := 0
	for _, row := range g.Cells {
		for _, c := range row {
			if !c.Empty() {
				n++
			}
		}
	}
	return n
}

// Run is a maximal stretch of slots in one room with the same occupants.
type Run struct {
	Room    string
	Start   int // first slot index
	End     int // last slot index, inclusive
	Entries []*SectionEntry
}

// Len is the number of slots the run covers.
func (r Run) Len() int {
	return r.End - r.Start + 1
}
