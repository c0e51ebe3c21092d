package timetable

import (
	"reflect"
	"testing"
)

func TestDedup(t *testing.T) {
	rows := [][]string{
		{"1", "جبر", "30"},
		{"2", "آمار", "20"},
		{"1", "جبر", "45"},
		{"1", "جبر"},
		{"2", "آمار", "20"},
	}
	got := Dedup(rows, []int{0, 1})
	want := [][]string{{"1", "جبر", "30"}, {"2", "آمار", "20"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dedup() = %v, want %v", got, want)
	}
	if again := Dedup(got, []int{0, 1}); !reflect.DeepEqual(again, got) {
		t.Errorf("Dedup() not idempotent: %v", again)
	}
	if all := Dedup(rows, nil); len(all) != len(rows) {
		t.Errorf("Dedup() without columns dropped rows")
	}
}

func TestDedupKeyIsUnambiguous(t *testing.T) {
	rows := [][]string{{"ab", "c"}, {"a", "bc"}}
	if got := Dedup(rows, []int{0, 1}); len(got) != 2 {
		t.Errorf("Dedup() merged distinct rows: %v", got)
	}
}
