package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wekara-hr/attendance-engine/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceSvc attendance.AttendanceService
}

func NewAttendanceJobs(attendanceSvc attendance.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{attendanceSvc: attendanceSvc}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("classify_yesterday", 1*time.Hour, j.ClassifyYesterday)
}

// ClassifyYesterday reruns classification for the previous calendar
// day, picking up punches and leave flags that arrived after midnight.
// Records are recomputed whole, so rerunning is safe.
func (j *AttendanceJobs) ClassifyYesterday(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting classify yesterday job")

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	resp, err := j.attendanceSvc.RunClassification(ctx, attendance.RunClassificationRequest{
		FromDate: yesterday,
		ToDate:   yesterday,
	})
	if err != nil {
		return fmt.Errorf("failed to classify yesterday: %w", err)
	}

	slog.Info("Cron: Classified yesterday",
		"date", yesterday,
		"employees", resp.EmployeesRun,
		"records", resp.RecordsWritten,
		"anomalies", resp.AnomalousCount,
		"unscheduled_days", resp.UnscheduledDays)
	return nil
}
