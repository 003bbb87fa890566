package report

import (
	"context"
	"io"
)

// ReportService reduces classified records into summary statistics and
// exports.
type ReportService interface {
	GetStatistics(ctx context.Context, req StatisticsRequest) (StatisticsResponse, error)

	// ExportAttendanceCSV streams the attendance export for the
	// requested range. Column order is fixed for compatibility with
	// downstream consumers.
	ExportAttendanceCSV(ctx context.Context, req ExportRequest, w io.Writer) error
}
