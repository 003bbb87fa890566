package attendance

import (
	"strings"

	"github.com/wekara-hr/attendance-engine/internal/pkg/validator"
)

type RunClassificationRequest struct {
	FromDate string `json:"from_date"` // "2006-01-02"
	ToDate   string `json:"to_date"`
	// EmployeeID narrows the run to one employee; nil means the whole
	// cohort.
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (r *RunClassificationRequest) Validate() error {
	var errs validator.ValidationErrors

	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be a valid YYYY-MM-DD date",
		})
	}
	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be a valid YYYY-MM-DD date",
		})
	}
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must not be before from_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RunClassificationResponse struct {
	FromDate        string          `json:"from_date"`
	ToDate          string          `json:"to_date"`
	EmployeesRun    int             `json:"employees_run"`
	RecordsWritten  int             `json:"records_written"`
	AnomalousCount  int             `json:"anomalous_count"`
	UnscheduledDays int             `json:"unscheduled_days"`
	Anomalies       []AnomalyDetail `json:"anomalies,omitempty"`
}

type AnomalyDetail struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Note       string `json:"note"`
}

type RecordFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	FromDate   *string `json:"from_date,omitempty"`
	ToDate     *string `json:"to_date,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}
	if f.FromDate != nil {
		if _, ok := validator.IsValidDate(*f.FromDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from_date",
				Message: "from_date must be a valid YYYY-MM-DD date",
			})
		}
	}
	if f.ToDate != nil {
		if _, ok := validator.IsValidDate(*f.ToDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to_date",
				Message: "to_date must be a valid YYYY-MM-DD date",
			})
		}
	}
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID                    string  `json:"id"`
	EmployeeID            string  `json:"employee_id"`
	Date                  string  `json:"date"`
	CheckInAt             *string `json:"check_in_at,omitempty"`
	CheckOutAt            *string `json:"check_out_at,omitempty"`
	Status                string  `json:"status"`
	WorkingHours          *string `json:"working_hours,omitempty"`
	LateMinutes           int     `json:"late_minutes"`
	EarlyDepartureMinutes int     `json:"early_departure_minutes"`
	OffDayOvertime        bool    `json:"off_day_overtime"`
	Anomaly               *string `json:"anomaly,omitempty"`
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Records    []RecordResponse `json:"records"`
}
