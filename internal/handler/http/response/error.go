package response

import (
	"errors"
	"net/http"

	"github.com/wekara-hr/attendance-engine/internal/domain/attendance"
	"github.com/wekara-hr/attendance-engine/internal/domain/employee"
	"github.com/wekara-hr/attendance-engine/internal/domain/report"
	"github.com/wekara-hr/attendance-engine/internal/domain/shift"
	"github.com/wekara-hr/attendance-engine/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "Shift name already exists")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Shift is still assigned to employees or departments")
	case errors.Is(err, shift.ErrDuplicateDayOfWeek),
		errors.Is(err, shift.ErrOffAndHalfDay),
		errors.Is(err, shift.ErrZeroLengthDay),
		errors.Is(err, shift.ErrDayOfWeekOutOfRange),
		errors.Is(err, shift.ErrNegativeTolerance),
		errors.Is(err, shift.ErrTooManySchedules):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrPunchNotFound):
		NotFound(w, "Punch not found")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidRange):
		BadRequest(w, "to date must not be before from date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
