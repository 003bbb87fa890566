package main

import (
	"fmt"
	"net/http"

	"github.com/wekara-hr/attendance-engine/internal/config"
	appHTTP "github.com/wekara-hr/attendance-engine/internal/handler/http"
	"github.com/wekara-hr/attendance-engine/internal/pkg/cron"
	"github.com/wekara-hr/attendance-engine/internal/pkg/database"
	"github.com/wekara-hr/attendance-engine/internal/repository/postgresql"
	attendanceService "github.com/wekara-hr/attendance-engine/internal/service/attendance"
	reportService "github.com/wekara-hr/attendance-engine/internal/service/report"
	scheduleService "github.com/wekara-hr/attendance-engine/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	shiftRepo := postgresql.NewShiftRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	scheduleSvc := scheduleService.NewScheduleService(db, shiftRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, scheduleSvc, cfg.Engine.Workers)
	reportSvc := reportService.NewReportService(reportRepo, attendanceRepo, scheduleSvc, reportService.AggregateOptions{
		CountOffDayOvertime: cfg.Engine.CountOffDayOvertime,
	})

	shiftHandler := appHTTP.NewShiftHandler(scheduleSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(shiftHandler, attendanceHandler, reportHandler)

	if cfg.Cron.Enabled {
		scheduler := cron.NewScheduler()
		cron.NewAttendanceJobs(attendanceSvc).RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
