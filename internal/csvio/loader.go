// Package csvio reads registrar exports and normalized record files, and
// writes the CSV side outputs.
package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/extrame/xls"
	"github.com/gocarina/gocsv"
	"github.com/rhyrak/go-timetable/pkg/model"
	"github.com/thedatashed/xlsxreader"
	"github.com/xuri/excelize/v2"
)

// Format is the container type of an input table.
type Format int

const (
	FormatCSV Format = iota
	FormatXLSX
	FormatXLS
)

func (f Format) String() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	case FormatXLS:
		return "xls"
	default:
		return "csv"
	}
}

var (
	// ErrEmptyInput is returned for an input without a header row.
	ErrEmptyInput = errors.New("input contains no rows")
	// ErrUnsupportedFormat is returned for a binary input that is neither XLSX nor XLS.
	ErrUnsupportedFormat = errors.New("unsupported input format")
)

var (
	utf8BOM  = []byte{0xEF, 0xBB, 0xBF}
	zipMagic = []byte("PK\x03\x04")
	cfbMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// newCSVReader is the reader used for every CSV input: the delimiter is
// configurable, quotes are lenient and rows may be ragged.
func newCSVReader(in io.Reader, delim rune) gocsv.CSVReader {
	r := csv.NewReader(in)
	r.Comma = delim
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	return r
}

// DetectFormat picks the format from the file extension, falling back to the
// leading bytes of data when the name says nothing.
func DetectFormat(name string, data []byte) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	case ".csv", ".txt", ".tsv":
		return FormatCSV, nil
	}
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return FormatXLSX, nil
	case bytes.HasPrefix(data, cfbMagic):
		return FormatXLS, nil
	case bytes.IndexByte(data, 0) >= 0:
		return FormatCSV, ErrUnsupportedFormat
	}
	return FormatCSV, nil
}

// LoadTable reads the file at path. See ReadTable.
func LoadTable(path string, delim rune) (*model.RawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return ReadTable(data, filepath.Base(path), delim)
}

// ReadTable parses data as CSV, XLSX or XLS. The first row becomes the
// header; only the first worksheet of a workbook is read.
func ReadTable(data []byte, name string, delim rune) (*model.RawTable, error) {
	format, err := DetectFormat(name, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var rows [][]string
	switch format {
	case FormatXLSX:
		rows, err = readXLSX(data)
	case FormatXLS:
		rows, err = readXLS(data)
	default:
		rows, err = readCSV(data, delim)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s as %s: %w", name, format, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyInput)
	}
	return &model.RawTable{Header: rows[0], Rows: rows[1:]}, nil
}

func readCSV(data []byte, delim rune) ([][]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	return newCSVReader(bytes.NewReader(data), delim).ReadAll()
}

// readXLSX streams the first sheet. Empty cells are absent from the stream,
// so each value is placed by its column letter.
func readXLSX(data []byte) ([][]string, error) {
	book, err := xlsxreader.NewReader(data)
	if err != nil {
		return nil, err
	}
	if len(book.Sheets) == 0 {
		return nil, nil
	}

	var rows [][]string
	for row := range book.ReadRows(book.Sheets[0]) {
		if row.Error != nil {
			return nil, row.Error
		}
		var values []string
		for _, c := range row.Cells {
			col, err := excelize.ColumnNameToNumber(c.Column)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", row.Index, err)
			}
			for len(values) < col {
				values = append(values, "")
			}
			v := c.Value
			if c.Type == xlsxreader.TypeDateTime {
				v = spreadsheetTime(v)
			}
			values[col-1] = v
		}
		rows = append(rows, values)
	}
	return rows, nil
}

func readXLS(data []byte) ([][]string, error) {
	book, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, errors.New("no workbook stream")
	}
	if book.NumSheets() == 0 {
		return nil, nil
	}
	sheet := book.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}

	var rows [][]string
	for r := 0; r <= int(sheet.MaxRow); r++ {
		row := sheet.Row(r)
		if row == nil {
			continue
		}
		values := make([]string, 0, row.LastCol())
		for c := 0; c < row.LastCol(); c++ {
			values = append(values, spreadsheetTime(row.Col(c)))
		}
		rows = append(rows, values)
	}
	return rows, nil
}

// spreadsheetTime rewrites the RFC3339 text both workbook readers produce for
// date-styled numeric cells. Values on the 1900 or 1904 serial epoch are
// times of day and become "HH:MM"; later values keep their date. Serials are truncated by the
// readers, so the result is rounded to the minute. Anything else is returned
// unchanged.
func spreadsheetTime(v string) string {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return v
	}
	t = t.Round(time.Minute)
	if t.Year() == 1899 || t.Year() == 1904 && t.YearDay() == 1 {
		return t.Format("15:04")
	}
	return t.Format("2006-01-02 15:04")
}

// LoadRecords reads a normalized record CSV previously written by
// ExportRecords.
func LoadRecords(path string) ([]*model.NormalizedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return ReadRecords(data)
}

// ReadRecords decodes normalized records from CSV bytes.
func ReadRecords(data []byte) ([]*model.NormalizedRecord, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	records := []*model.NormalizedRecord{}
	if err := gocsv.UnmarshalCSV(newCSVReader(bytes.NewReader(data), ','), &records); err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}
	return records, nil
}
