package attendance

import "context"

// AttendanceService classifies raw punches into attendance records.
type AttendanceService interface {
	// RunClassification recomputes records for every employee-day in
	// the requested range, using a configuration snapshot taken at the
	// start of the run. Per-record anomalies never abort the run.
	RunClassification(ctx context.Context, req RunClassificationRequest) (RunClassificationResponse, error)

	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)
}
