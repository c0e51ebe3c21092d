package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rhyrak/go-timetable/internal/pipeline"
)

func TestDefaultOutput(t *testing.T) {
	tests := []struct{ in, want string }{
		{"export.csv", "export_timetable.xlsx"},
		{"dir/term 4031.xlsx", "dir/term 4031_timetable.xlsx"},
		{"noext", "noext_timetable.xlsx"},
	}
	for _, tt := range tests {
		if got := defaultOutput(tt.in); got != tt.want {
			t.Errorf("defaultOutput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	if err := os.WriteFile(path, []byte("a;b\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	in, err := readInput(path, ";", false, true)
	if err != nil {
		t.Fatalf("readInput() error = %v", err)
	}
	if in.Name != "export.csv" || in.Delim != ';' || in.Mode != pipeline.ModeRerender || string(in.Data) != "a;b\n" {
		t.Errorf("readInput() = %+v", in)
	}

	for _, tc := range []struct {
		name                 string
		delim                string
		normalized, rerender bool
		path                 string
	}{
		{"both modes", ",", true, true, path},
		{"long delimiter", ";;", false, false, path},
		{"missing file", ",", false, false, path + ".missing"},
	} {
		if _, err := readInput(tc.path, tc.delim, tc.normalized, tc.rerender); err == nil {
			t.Errorf("%s: readInput() succeeded", tc.name)
		}
	}
}
