// Package pipeline runs both stages: registrar export to day sheets, and day
// sheets to rendered timetables.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/rhyrak/go-timetable/internal/csvio"
	"github.com/rhyrak/go-timetable/internal/extract"
	"github.com/rhyrak/go-timetable/internal/render"
	"github.com/rhyrak/go-timetable/internal/timetable"
	"github.com/rhyrak/go-timetable/pkg/model"
)

// Mode selects what Input.Data holds.
type Mode int

const (
	// ModeExport is a raw registrar export (CSV, XLSX or XLS).
	ModeExport Mode = iota
	// ModeRecords is a normalized record CSV written by csvio.ExportRecords.
	ModeRecords
	// ModeRerender is a workbook from an earlier run whose day sheets are
	// rendered again.
	ModeRerender
)

const intermediateName = "days.xlsx"

type Input struct {
	Name  string // file name, used to detect the format
	Data  []byte
	Delim rune // CSV delimiter, ',' when zero
	Mode  Mode
}

type Options struct {
	Config     *timetable.Configuration
	Logger     *slog.Logger
	ScratchDir string // parent of the per-run workspace, system temp dir when empty
}

type Result struct {
	Output     []byte // the finished workbook
	OK         bool   // at least one timetable was rendered
	Status     string
	Reports    []*timetable.SheetReport
	Records    []*model.NormalizedRecord // nil in ModeRerender
	Days       []string                  // day sheets in the workbook
	NoteErrors int
}

// ErrNoDaySheets is returned when a workbook to re-render has no weekday sheet.
var ErrNoDaySheets = errors.New("workbook has no weekday sheets")

// Process turns in into a workbook holding the per-day sheets followed by
// one timetable sheet per weekday. Only input and output failures are
// returned as errors; skipped rows and days are reported in Result.
func Process(ctx context.Context, in Input, opts Options) (*Result, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = timetable.NewDefaultConfiguration()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("input", in.Name)

	ws, err := NewWorkspace(opts.ScratchDir, logger)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := ws.Close(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("workspace cleanup failed", "error", err)
		}
	}()

	result := &Result{}
	var wb *render.Workbook
	if in.Mode == ModeRerender {
		wb, err = render.Open(bytes.NewReader(in.Data), cfg, logger)
		if err != nil {
			return nil, err
		}
	} else {
		days, err := partition(in, logger)
		if err != nil {
			return nil, err
		}
		result.Records = days.Records
		wb, err = stageDays(ws, days.Sheets, cfg, logger)
		if err != nil {
			return nil, err
		}
	}
	defer wb.Close()

	sheets, err := wb.DaySheets()
	if err != nil {
		return nil, err
	}
	if in.Mode == ModeRerender && len(sheets) == 0 {
		return nil, ErrNoDaySheets
	}
	for _, s := range sheets {
		result.Days = append(result.Days, s.Name)
	}

	tables, err := timetable.BuildAll(ctx, sheets, cfg, logger)
	if err != nil {
		return nil, err
	}
	for _, t := range tables {
		if err := wb.AddTimetable(t); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", t.Day, err)
		}
		result.Reports = append(result.Reports, t.Report)
	}
	result.NoteErrors = wb.NoteErrors()
	result.OK, result.Status = timetable.Summarize(result.Reports)

	result.Output, err = wb.Bytes()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	logger.Info("processed", "days", len(result.Days), "timetables", countRendered(result.Reports), "bytes", len(result.Output))
	return result, nil
}

// partition runs stage one on the input, or regroups records exported earlier.
func partition(in Input, logger *slog.Logger) (*extract.Result, error) {
	if in.Mode == ModeRecords {
		recs, err := csvio.ReadRecords(in.Data)
		if err != nil {
			return nil, err
		}
		return extract.Partition(recs), nil
	}
	delim := in.Delim
	if delim == 0 {
		delim = ','
	}
	table, err := csvio.ReadTable(in.Data, in.Name, delim)
	if err != nil {
		return nil, err
	}
	return extract.Extract(table, logger)
}

// stageDays writes the day sheets to the workspace and opens the saved file
// as the workbook stage two renders into.
func stageDays(ws *Workspace, sheets []*model.DaySheet, cfg *timetable.Configuration, logger *slog.Logger) (*render.Workbook, error) {
	days, err := render.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	defer days.Close()

	for _, s := range sheets {
		if err := days.AddDaySheet(s); err != nil {
			return nil, fmt.Errorf("writing day sheet %s: %w", s.Name, err)
		}
	}
	path := ws.Path(intermediateName)
	if err := days.SaveAs(path); err != nil {
		return nil, fmt.Errorf("writing day sheets: %w", err)
	}
	if err := days.Close(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reopening day sheets: %w", err)
	}
	defer f.Close()
	return render.Open(f, cfg, logger)
}

func countRendered(reports []*timetable.SheetReport) int {
	n := 0
	for _, r := range reports {
		if !r.Skipped {
			n++
		}
	}
	return n
}
