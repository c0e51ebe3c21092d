package main

import (
	"slices"
	"time"

	"github.com/maypok86/otter/v2"
)

// timetableEntry is one finished upload.
type timetableEntry struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	OK      bool      `json:"ok"`
	Status  string    `json:"status"`
	Days    []string  `json:"days"`
	Created time.Time `json:"created"`
	Output  []byte    `json:"-"`
}

// store keeps finished workbooks in memory until they expire.
type store struct {
	cache *otter.Cache[string, *timetableEntry]
}

func newStore(maxEntries int, ttl time.Duration) *store {
	return &store{
		cache: otter.Must(&otter.Options[string, *timetableEntry]{
			MaximumSize:      maxEntries,
			ExpiryCalculator: otter.ExpiryWriting[string, *timetableEntry](ttl),
		}),
	}
}

func (s *store) put(e *timetableEntry) {
	s.cache.Set(e.ID, e)
}

func (s *store) get(id string) (*timetableEntry, bool) {
	return s.cache.GetIfPresent(id)
}

func (s *store) remove(id string) bool {
	_, ok := s.cache.Invalidate(id)
	return ok
}

// list returns the live entries, newest first.
func (s *store) list() []*timetableEntry {
	var entries []*timetableEntry
	for _, e := range s.cache.All() {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b *timetableEntry) int {
		return b.Created.Compare(a.Created)
	})
	return entries
}
