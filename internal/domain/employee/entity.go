package employee

import "time"

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusInactive EmploymentStatus = "inactive"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Designation  string
	DepartmentID *string
	// ShiftID is the employee's own shift. When nil the department
	// default applies; when that is also nil the employee is
	// unscheduled.
	ShiftID          *string
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

type Department struct {
	ID             string
	Name           string
	DefaultShiftID *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ScheduledEmployee is an employee with the shift binding already
// resolved (own shift, else department default). EffectiveShiftID is
// nil for unscheduled employees; that is a valid classification state,
// not an error.
type ScheduledEmployee struct {
	Employee
	EffectiveShiftID *string
}
