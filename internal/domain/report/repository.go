package report

import (
	"context"
	"time"
)

type ReportRepository interface {
	// GetExportRows loads classified records joined with employee
	// master data, ordered by employee code then date. A nil
	// employeeID selects the whole cohort.
	GetExportRows(ctx context.Context, employeeID *string, from, to time.Time) ([]ExportRow, error)
}
