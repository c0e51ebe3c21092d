package model

import (
	"math"
	"slices"
	"strconv"
	"testing"
)

func TestRoomNumber(t *testing.T) {
	tests := []struct {
		room string
		want int
	}{
		{"Room 101", 101},
		{"کلاس 12 طبقه 3", 12},
		{"آمفی تئاتر", 0},
		{"Lab 007", 7},
		{"Hall 99999999999999999999999", 0},
	}
	for _, tt := range tests {
		if got := RoomNumber(tt.room); got != tt.want {
			t.Errorf("RoomNumber(%q) = %d, want %d", tt.room, got, tt.want)
		}
	}
}

func TestSortRooms(t *testing.T) {
	rooms := []string{"Room 12", "Lab", "Room 3", "Annex", "Room 101"}
	SortRooms(rooms)
	want := []string{"Lab", "Annex", "Room 3", "Room 12", "Room 101"}
	if !slices.Equal(rooms, want) {
		t.Errorf("SortRooms() = %q, want %q", rooms, want)
	}
}

func TestSortRoomsExtremeNumbers(t *testing.T) {
	big := "Hall " + strconv.Itoa(math.MaxInt)
	small := "Hall " + strconv.Itoa(math.MaxInt-1)
	rooms := []string{big, "Room 1", small}
	SortRooms(rooms)
	want := []string{"Room 1", small, big}
	if !slices.Equal(rooms, want) {
		t.Errorf("SortRooms() = %q, want %q", rooms, want)
	}
}
