package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/wekara-hr/attendance-engine/internal/domain/attendance"
	"github.com/wekara-hr/attendance-engine/internal/domain/report"
	"github.com/wekara-hr/attendance-engine/internal/domain/shift"
	"github.com/wekara-hr/attendance-engine/internal/service/schedule"
)

type ReportServiceImpl struct {
	reportRepo     report.ReportRepository
	attendanceRepo attendance.AttendanceRepository
	snapshots      schedule.SnapshotLoader
	opts           AggregateOptions
}

func NewReportService(
	reportRepo report.ReportRepository,
	attendanceRepo attendance.AttendanceRepository,
	snapshots schedule.SnapshotLoader,
	opts AggregateOptions,
) report.ReportService {
	return &ReportServiceImpl{
		reportRepo:     reportRepo,
		attendanceRepo: attendanceRepo,
		snapshots:      snapshots,
		opts:           opts,
	}
}

// GetStatistics implements report.ReportService.
func (s *ReportServiceImpl) GetStatistics(ctx context.Context, req report.StatisticsRequest) (report.StatisticsResponse, error) {
	if err := req.Validate(); err != nil {
		return report.StatisticsResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.FromDate)
	to, _ := time.Parse("2006-01-02", req.ToDate)
	period, err := report.NewPeriod(from, to)
	if err != nil {
		return report.StatisticsResponse{}, err
	}

	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return report.StatisticsResponse{}, err
	}

	var stats report.Statistics
	if req.EmployeeID != nil {
		stats, err = s.employeeStatistics(ctx, snapshot, *req.EmployeeID, period)
	} else {
		stats, err = s.cohortStatistics(ctx, snapshot, period)
	}
	if err != nil {
		return report.StatisticsResponse{}, err
	}

	return report.StatisticsResponse{
		EmployeeID:            req.EmployeeID,
		FromDate:              req.FromDate,
		ToDate:                req.ToDate,
		WorkingDays:           stats.WorkingDays,
		Present:               stats.Present,
		Absent:                stats.Absent,
		Late:                  stats.Late,
		OnLeave:               stats.OnLeave,
		Unscheduled:           stats.Unscheduled,
		OffDayOvertimeDays:    stats.OffDayOvertimeDays,
		AnomalousRecords:      stats.AnomalousRecords,
		AttendanceRatePercent: stats.AttendanceRatePercent,
		TotalWorkingHours:     stats.TotalWorkingHours.StringFixed(2),
	}, nil
}

func (s *ReportServiceImpl) employeeStatistics(ctx context.Context, snapshot *schedule.Snapshot, employeeID string, period report.Period) (report.Statistics, error) {
	records, err := s.attendanceRepo.GetByEmployeeAndDateRange(ctx, employeeID, period.From, period.To)
	if err != nil {
		return report.Statistics{}, fmt.Errorf("failed to load attendance records: %w", err)
	}

	return Aggregate(records, func(date time.Time) shift.ResolvedDaySchedule {
		return snapshot.ResolveEmployeeDay(employeeID, date)
	}, period, s.opts)
}

// cohortStatistics aggregates each employee independently and merges.
// Per-employee aggregation is order-independent, so the merge order
// doesn't matter either; this is what makes cohort-wide parallel
// aggregation safe.
func (s *ReportServiceImpl) cohortStatistics(ctx context.Context, snapshot *schedule.Snapshot, period report.Period) (report.Statistics, error) {
	records, err := s.attendanceRepo.GetByDateRange(ctx, period.From, period.To)
	if err != nil {
		return report.Statistics{}, fmt.Errorf("failed to load attendance records: %w", err)
	}

	byEmployee := make(map[string][]attendance.Record)
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = append(byEmployee[rec.EmployeeID], rec)
	}

	perEmployee := make([]report.Statistics, 0, len(snapshot.Employees()))
	for _, emp := range snapshot.Employees() {
		employeeID := emp.ID
		stats, err := Aggregate(byEmployee[employeeID], func(date time.Time) shift.ResolvedDaySchedule {
			return snapshot.ResolveEmployeeDay(employeeID, date)
		}, period, s.opts)
		if err != nil {
			return report.Statistics{}, err
		}
		perEmployee = append(perEmployee, stats)
	}

	return Combine(perEmployee...), nil
}

// ExportAttendanceCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendanceCSV(ctx context.Context, req report.ExportRequest, w io.Writer) error {
	if err := req.Validate(); err != nil {
		return err
	}

	from, _ := time.Parse("2006-01-02", req.FromDate)
	to, _ := time.Parse("2006-01-02", req.ToDate)
	period, err := report.NewPeriod(from, to)
	if err != nil {
		return err
	}

	rows, err := s.reportRepo.GetExportRows(ctx, req.EmployeeID, period.From, period.To)
	if err != nil {
		return fmt.Errorf("failed to load export rows: %w", err)
	}

	return WriteCSV(w, rows)
}
