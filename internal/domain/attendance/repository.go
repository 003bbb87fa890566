package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// GetPunchesByDateRange loads raw punches for all employees in the
	// inclusive [from, to] range.
	GetPunchesByDateRange(ctx context.Context, from, to time.Time) ([]Punch, error)

	// GetLeaveDaysByDateRange loads externally approved leave flags in
	// the inclusive [from, to] range.
	GetLeaveDaysByDateRange(ctx context.Context, from, to time.Time) ([]LeaveDay, error)

	// UpsertRecords writes classified records, replacing any existing
	// record for the same employee-day whole.
	UpsertRecords(ctx context.Context, records []Record) error

	List(ctx context.Context, filter RecordFilter) ([]Record, int64, error)

	GetByEmployeeAndDateRange(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)

	GetByDateRange(ctx context.Context, from, to time.Time) ([]Record, error)
}
