package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/wekara-hr/attendance-engine/internal/domain/report"
	"github.com/wekara-hr/attendance-engine/internal/handler/http/response"
)

type ReportHandler interface {
	GetStatistics(w http.ResponseWriter, r *http.Request)
	ExportAttendanceCSV(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetStatistics handles GET /reports/statistics
func (h *reportHandlerImpl) GetStatistics(w http.ResponseWriter, r *http.Request) {
	req := report.StatisticsRequest{
		EmployeeID: queryStringPtr(r, "employee_id"),
		FromDate:   r.URL.Query().Get("from_date"),
		ToDate:     r.URL.Query().Get("to_date"),
	}

	result, err := h.reportService.GetStatistics(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportAttendanceCSV handles GET /reports/attendance/export. The CSV
// is streamed directly into the response body.
func (h *reportHandlerImpl) ExportAttendanceCSV(w http.ResponseWriter, r *http.Request) {
	req := report.ExportRequest{
		EmployeeID: queryStringPtr(r, "employee_id"),
		FromDate:   r.URL.Query().Get("from_date"),
		ToDate:     r.URL.Query().Get("to_date"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance_%s_%s.csv", req.FromDate, req.ToDate)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))

	if err := h.reportService.ExportAttendanceCSV(r.Context(), req, w); err != nil {
		// Headers may already be written, so a JSON error envelope is
		// not an option anymore.
		slog.Error("Failed to stream attendance export", "error", err)
	}
}
