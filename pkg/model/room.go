package model

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
)

var roomNumber = regexp.MustCompile(`\d+`)

// RoomNumber returns the first run of digits in a room label, or 0.
func RoomNumber(room string) int {
	m := roomNumber.FindString(room)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// SortRooms orders rooms by their embedded number. Ties keep input order.
func SortRooms(rooms []string) {
	slices.SortStableFunc(rooms, func(a, b string) int {
		return cmp.Compare(RoomNumber(a), RoomNumber(b))
	})
}
