// Package render writes day sheets and timetable grids into an XLSX workbook.
package render

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/rhyrak/go-timetable/internal/extract"
	"github.com/rhyrak/go-timetable/internal/timetable"
	"github.com/rhyrak/go-timetable/pkg/model"
	"github.com/xuri/excelize/v2"
)

const (
	daySheetNameLimit   = 30
	tableSheetNameLimit = 31
	noteWidth           = 350
	noteHeight          = 200
)

// Workbook accumulates sheets until it is written out. It must be closed
// exactly once; Close is safe to call again.
type Workbook struct {
	file        *excelize.File
	cfg         *timetable.Configuration
	logger      *slog.Logger
	placeholder string // default sheet of a new file, dropped once real sheets exist
	fills       map[string]int
	title       int
	axis        int
	slotLabel   int
	room        int
	noteErrors  int
	activeSet   bool // a timetable sheet was made active
	closed      bool
}

// New creates an empty workbook.
func New(cfg *timetable.Configuration, logger *slog.Logger) (*Workbook, error) {
	f := excelize.NewFile()
	w, err := newWorkbook(f, cfg, logger)
	if err != nil {
		f.Close()
		return nil, err
	}
	w.placeholder = f.GetSheetName(0)
	return w, nil
}

// Open loads an existing workbook for re-rendering. Timetable sheets left by a
// previous run are removed.
func Open(r io.Reader, cfg *timetable.Configuration, logger *slog.Logger) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	w, err := newWorkbook(f, cfg, logger)
	if err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range f.GetSheetList() {
		if strings.HasPrefix(name, strings.TrimSpace(cfg.SheetPrefix)) {
			if err := f.DeleteSheet(name); err != nil {
				w.Close()
				return nil, fmt.Errorf("failed to remove sheet %s: %w", name, err)
			}
			w.logger.Debug("removed previous timetable", "sheet", name)
		}
	}
	return w, nil
}

func newWorkbook(f *excelize.File, cfg *timetable.Configuration, logger *slog.Logger) (*Workbook, error) {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Workbook{file: f, cfg: cfg, logger: logger, fills: make(map[string]int)}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	var err error
	if w.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}, Alignment: center}); err != nil {
		return nil, err
	}
	if w.axis, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, Alignment: center}); err != nil {
		return nil, err
	}
	if w.slotLabel, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 9}, Alignment: center}); err != nil {
		return nil, err
	}
	if w.room, err = f.NewStyle(&excelize.Style{Alignment: center}); err != nil {
		return nil, err
	}
	return w, nil
}

// SheetNames lists the sheets in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// NoteErrors counts cell notes that could not be attached.
func (w *Workbook) NoteErrors() int {
	return w.noteErrors
}

func (w *Workbook) newSheet(name string) (int, error) {
	if _, err := w.file.NewSheet(name); err != nil {
		return 0, fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	if w.placeholder != "" && w.placeholder != name {
		if err := w.file.DeleteSheet(w.placeholder); err != nil {
			return 0, err
		}
		w.placeholder = ""
	}
	return w.file.GetSheetIndex(name)
}

// AddDaySheet writes s as a flat table named after its day.
func (w *Workbook) AddDaySheet(s *model.DaySheet) error {
	name := truncate(s.Name, daySheetNameLimit)
	idx, err := w.newSheet(name)
	if err != nil {
		return err
	}
	if len(w.file.GetSheetList()) == 1 {
		w.file.SetActiveSheet(idx)
	}
	if err := w.file.SetSheetRow(name, "A1", &s.Header); err != nil {
		return err
	}
	for i := range s.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := w.file.SetSheetRow(name, cell, &s.Rows[i]); err != nil {
			return err
		}
	}
	return nil
}

// DaySheets reads back every sheet whose name is a weekday, in canonical
// weekday order. Other sheets are ignored.
func (w *Workbook) DaySheets() ([]*model.DaySheet, error) {
	var sheets []*model.DaySheet
	for _, name := range w.file.GetSheetList() {
		day := extract.CanonicalDay(name)
		if !extract.IsWeekday(day) {
			continue
		}
		rows, err := w.file.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
		}
		sheet := &model.DaySheet{Name: day}
		if len(rows) > 0 {
			sheet.Header, sheet.Rows = rows[0], rows[1:]
		}
		sheets = append(sheets, sheet)
	}
	order := extract.Weekdays()
	slices.SortStableFunc(sheets, func(a, b *model.DaySheet) int {
		return slices.Index(order, a.Name) - slices.Index(order, b.Name)
	})
	return sheets, nil
}

// AddTimetable renders the grid of t on a new sheet. Days without a grid are
// left out. A note that cannot be attached is logged and skipped.
func (w *Workbook) AddTimetable(t *timetable.DayTable) error {
	if t.Grid == nil {
		return nil
	}
	g := t.Grid
	title := w.cfg.SheetPrefix + t.Day
	name := truncate(title, tableSheetNameLimit)
	idx, err := w.newSheet(name)
	if err != nil {
		return err
	}
	f := w.file
	if !w.activeSet {
		f.SetActiveSheet(idx)
		w.activeSet = true
	}

	lastCol, err := excelize.ColumnNumberToName(1 + len(g.Slots))
	if err != nil {
		return err
	}
	if err := f.MergeCell(name, "A1", lastCol+"1"); err != nil {
		return err
	}
	if err := f.SetCellValue(name, "A1", title); err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", "A1", w.title); err != nil {
		return err
	}

	header := make([]interface{}, 0, len(g.Slots)+1)
	header = append(header, w.cfg.RoomAxisLabel)
	for _, label := range timetable.SlotLabels(g) {
		header = append(header, label)
	}
	if err := f.SetSheetRow(name, "A2", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A2", "A2", w.axis); err != nil {
		return err
	}
	if len(g.Slots) > 0 {
		if err := f.SetCellStyle(name, "B2", lastCol+"2", w.slotLabel); err != nil {
			return err
		}
	}

	for i, room := range g.Rooms {
		row := 3 + i
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(name, cell, room); err != nil {
			return err
		}
		if err := f.SetCellStyle(name, cell, cell, w.room); err != nil {
			return err
		}
		if err := f.SetRowHeight(name, row, w.cfg.RowHeight); err != nil {
			return err
		}
		for _, run := range timetable.Runs(g, room) {
			if err := w.writeRun(name, row, run); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(name, "A", "A", w.cfg.RoomColumnWidth); err != nil {
		return err
	}
	if len(g.Slots) > 0 {
		if err := f.SetColWidth(name, "B", lastCol, w.cfg.SlotColumnWidth); err != nil {
			return err
		}
	}
	rtl := w.cfg.RightToLeft
	return f.SetSheetView(name, 0, &excelize.ViewOptions{RightToLeft: &rtl})
}

func (w *Workbook) writeRun(sheet string, row int, run model.Run) error {
	f := w.file
	anchor, err := excelize.CoordinatesToCellName(2+run.Start, row)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(2+run.End, row)
	if err != nil {
		return err
	}
	if run.Len() > 1 {
		if err := f.MergeCell(sheet, anchor, end); err != nil {
			return err
		}
	}
	if err := f.SetCellValue(sheet, anchor, DisplayText(run.Entries)); err != nil {
		return err
	}
	style, err := w.fill(CourseColor(run.Entries[0].Course))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, anchor, end, style); err != nil {
		return err
	}

	note := excelize.Comment{
		Cell:   anchor,
		Author: w.cfg.CommentAuthor,
		Text:   DetailText(run.Entries),
		Width:  noteWidth,
		Height: noteHeight,
	}
	if err := f.AddComment(sheet, note); err != nil {
		w.noteErrors++
		w.logger.Warn("failed to attach note", "sheet", sheet, "cell", anchor, "error", err)
	}
	return nil
}

// fill returns the cached style for a run cell with the given background.
func (w *Workbook) fill(color string) (int, error) {
	if id, ok := w.fills[color]; ok {
		return id, nil
	}
	id, err := w.file.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#" + color}},
	})
	if err != nil {
		return 0, err
	}
	w.fills[color] = id
	return id, nil
}

// WriteTo writes the workbook as XLSX.
func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	return w.file.WriteTo(out)
}

// Bytes returns the workbook as XLSX.
func (w *Workbook) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveAs writes the workbook to path.
func (w *Workbook) SaveAs(path string) error {
	return w.file.SaveAs(path)
}

// Close releases the workbook's temporary resources.
func (w *Workbook) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}
