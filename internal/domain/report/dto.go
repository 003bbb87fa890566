package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wekara-hr/attendance-engine/internal/pkg/validator"
)

// Period is an inclusive calendar-date range.
type Period struct {
	From time.Time
	To   time.Time
}

// NewPeriod builds a period, failing fast on an inverted range.
func NewPeriod(from, to time.Time) (Period, error) {
	if to.Before(from) {
		return Period{}, ErrInvalidRange
	}
	return Period{From: from, To: to}, nil
}

// Days calls fn for each calendar date in the period, in order.
func (p Period) Days(fn func(date time.Time)) {
	for d := p.From; !d.After(p.To); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

// Statistics summarizes classified records over a period for one
// employee or a cohort.
type Statistics struct {
	WorkingDays           int
	Present               int
	Absent                int
	Late                  int
	OnLeave               int
	Unscheduled           int
	OffDayOvertimeDays    int
	AnomalousRecords      int
	AttendanceRatePercent int
	TotalWorkingHours     decimal.Decimal
}

type StatisticsRequest struct {
	// EmployeeID narrows the statistics to one employee; nil means the
	// whole cohort.
	EmployeeID *string `json:"employee_id,omitempty"`
	FromDate   string  `json:"from_date"`
	ToDate     string  `json:"to_date"`
}

func (r *StatisticsRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.FromDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be a valid YYYY-MM-DD date",
		})
	}
	if _, ok := validator.IsValidDate(r.ToDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be a valid YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StatisticsResponse struct {
	EmployeeID            *string `json:"employee_id,omitempty"`
	FromDate              string  `json:"from_date"`
	ToDate                string  `json:"to_date"`
	WorkingDays           int     `json:"working_days"`
	Present               int     `json:"present"`
	Absent                int     `json:"absent"`
	Late                  int     `json:"late"`
	OnLeave               int     `json:"on_leave"`
	Unscheduled           int     `json:"unscheduled"`
	OffDayOvertimeDays    int     `json:"off_day_overtime_days"`
	AnomalousRecords      int     `json:"anomalous_records"`
	AttendanceRatePercent int     `json:"attendance_rate_percent"`
	TotalWorkingHours     string  `json:"total_working_hours"`
}

type ExportRequest struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	FromDate   string  `json:"from_date"`
	ToDate     string  `json:"to_date"`
}

func (r *ExportRequest) Validate() error {
	req := StatisticsRequest{EmployeeID: r.EmployeeID, FromDate: r.FromDate, ToDate: r.ToDate}
	return req.Validate()
}

// ExportRow is one line of the attendance CSV export, with employee
// master data already joined in.
type ExportRow struct {
	EmployeeName  string
	EmployeeCode  string
	Designation   string
	Date          time.Time
	CheckInAt     *time.Time
	CheckOutAt    *time.Time
	WorkedMinutes *int
	Status        string
}
