package csvio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gocarina/gocsv"
	"github.com/rhyrak/go-timetable/internal/timetable"
	"github.com/rhyrak/go-timetable/pkg/model"
)

// ExportRecords writes the normalized records to path as CSV with a UTF-8
// signature so spreadsheet programs pick the right encoding.
func ExportRecords(records []*model.NormalizedRecord, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	if err := WriteRecords(records, out); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return out.Close()
}

// WriteRecords writes the records as CSV to w.
func WriteRecords(records []*model.NormalizedRecord, w io.Writer) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	return gocsv.Marshal(&records, w)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	skipStyle   = cellStyle.Foreground(lipgloss.Color("9"))
)

// PrintSummary writes one table row per weekday report.
func PrintSummary(w io.Writer, reports []*timetable.SheetReport) {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		status := "ok"
		if r.Skipped {
			status = r.Reason
		}
		rows = append(rows, []string{
			r.Day,
			strconv.Itoa(r.Rooms),
			strconv.Itoa(r.Rows),
			strconv.Itoa(r.Duplicates),
			strconv.Itoa(r.Placed),
			strconv.Itoa(r.Occupied),
			strconv.Itoa(r.SkippedRoom + r.SkippedTime + r.SkippedInterval),
			strconv.Itoa(r.Runs),
			status,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Day", "Rooms", "Rows", "Dup", "Placed", "Slots used", "Skipped", "Cells", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case reports[row].Skipped:
				return skipStyle
			default:
				return cellStyle
			}
		})
	fmt.Fprintln(w, t.Render())
}

// SummaryString renders the summary table to a string.
func SummaryString(reports []*timetable.SheetReport) string {
	var b bytes.Buffer
	PrintSummary(&b, reports)
	return b.String()
}
