package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/wekara-hr/attendance-engine/internal/domain/attendance"
	"github.com/wekara-hr/attendance-engine/internal/handler/http/response"
)

type AttendanceHandler interface {
	RunClassification(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// RunClassification implements AttendanceHandler.
func (h *attendanceHandlerImpl) RunClassification(w http.ResponseWriter, r *http.Request) {
	var req attendance.RunClassificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode classification request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RunClassification(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Classification run completed", result)
}

// ListRecords implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	filter := attendance.RecordFilter{
		EmployeeID: queryStringPtr(r, "employee_id"),
		Status:     queryStringPtr(r, "status"),
		FromDate:   queryStringPtr(r, "from_date"),
		ToDate:     queryStringPtr(r, "to_date"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	result, err := h.attendanceService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages(result.TotalCount, result.Limit),
	})
}
