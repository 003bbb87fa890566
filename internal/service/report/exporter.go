package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wekara-hr/attendance-engine/internal/domain/report"
)

// Export column order is fixed for compatibility with downstream
// spreadsheet consumers. Do not reorder.
var exportHeader = []string{
	"Employee Name",
	"Employee Code",
	"Designation",
	"Date",
	"Check In",
	"Check Out",
	"Working Hours",
	"Status",
}

// WriteCSV streams export rows as CSV, dates as yyyy-MM-dd and times
// as hh:mm a.
func WriteCSV(w io.Writer, rows []report.ExportRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.EmployeeName,
			row.EmployeeCode,
			row.Designation,
			row.Date.Format("2006-01-02"),
			formatClock(row.CheckInAt),
			formatClock(row.CheckOutAt),
			formatHours(row.WorkedMinutes),
			row.Status,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("03:04 PM")
}

func formatHours(minutes *int) string {
	if minutes == nil {
		return ""
	}
	return decimal.NewFromInt(int64(*minutes)).DivRound(decimal.NewFromInt(60), 2).StringFixed(2)
}
