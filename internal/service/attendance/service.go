package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wekara-hr/attendance-engine/internal/domain/attendance"
	"github.com/wekara-hr/attendance-engine/internal/domain/employee"
	"github.com/wekara-hr/attendance-engine/internal/domain/report"
	"github.com/wekara-hr/attendance-engine/internal/pkg/database"
	"github.com/wekara-hr/attendance-engine/internal/service/schedule"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	snapshots schedule.SnapshotLoader
	workers   int
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	snapshots schedule.SnapshotLoader,
	workers int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		snapshots:            snapshots,
		workers:              workers,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// RunClassification implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RunClassification(ctx context.Context, req attendance.RunClassificationRequest) (attendance.RunClassificationResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RunClassificationResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.FromDate)
	to, _ := time.Parse("2006-01-02", req.ToDate)
	period, err := report.NewPeriod(from, to)
	if err != nil {
		return attendance.RunClassificationResponse{}, err
	}

	// A single consistent snapshot backs the whole run; concurrent
	// configuration changes do not leak in mid-batch.
	snapshot, err := a.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return attendance.RunClassificationResponse{}, err
	}

	employees := snapshot.Employees()
	if req.EmployeeID != nil {
		employees = filterEmployee(employees, *req.EmployeeID)
		if len(employees) == 0 {
			return attendance.RunClassificationResponse{}, employee.ErrEmployeeNotFound
		}
	}

	punches, err := a.AttendanceRepository.GetPunchesByDateRange(ctx, period.From, period.To)
	if err != nil {
		return attendance.RunClassificationResponse{}, fmt.Errorf("failed to load punches: %w", err)
	}
	leaves, err := a.AttendanceRepository.GetLeaveDaysByDateRange(ctx, period.From, period.To)
	if err != nil {
		return attendance.RunClassificationResponse{}, fmt.Errorf("failed to load leave days: %w", err)
	}

	batch := NewBatch(snapshot, punches, leaves, a.workers)
	result := batch.Run(ctx, employees, period)

	for i := range result.Records {
		id, err := uuid.NewV7()
		if err != nil {
			return attendance.RunClassificationResponse{}, fmt.Errorf("failed to generate record id: %w", err)
		}
		result.Records[i].ID = id.String()
	}

	if err := a.AttendanceRepository.UpsertRecords(ctx, result.Records); err != nil {
		return attendance.RunClassificationResponse{}, fmt.Errorf("failed to write attendance records: %w", err)
	}

	return attendance.RunClassificationResponse{
		FromDate:        req.FromDate,
		ToDate:          req.ToDate,
		EmployeesRun:    len(employees),
		RecordsWritten:  len(result.Records),
		AnomalousCount:  len(result.Anomalies),
		UnscheduledDays: result.UnscheduledDays,
		Anomalies:       result.Anomalies,
	}, nil
}

// ListRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	return attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    responses,
	}, nil
}

func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	var workingHours *string
	if h := rec.WorkingHours(); h != nil {
		v := h.StringFixed(2)
		workingHours = &v
	}

	return attendance.RecordResponse{
		ID:                    rec.ID,
		EmployeeID:            rec.EmployeeID,
		Date:                  rec.Date.Format("2006-01-02"),
		CheckInAt:             timePtrToString(rec.CheckInAt),
		CheckOutAt:            timePtrToString(rec.CheckOutAt),
		Status:                string(rec.Status),
		WorkingHours:          workingHours,
		LateMinutes:           rec.LateMinutes,
		EarlyDepartureMinutes: rec.EarlyDepartureMinutes,
		OffDayOvertime:        rec.OffDayOvertime,
		Anomaly:               rec.Anomaly,
	}
}

func filterEmployee(employees []employee.ScheduledEmployee, id string) []employee.ScheduledEmployee {
	for _, emp := range employees {
		if emp.ID == id {
			return []employee.ScheduledEmployee{emp}
		}
	}
	return nil
}
