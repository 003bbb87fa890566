package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusLate    Status = "LATE"
	StatusAbsent  Status = "ABSENT"
	StatusOnLeave Status = "ON_LEAVE"
	// StatusUnscheduled marks an employee-day with no resolvable shift.
	// Deliberately distinct from ABSENT: it never counts against the
	// attendance rate.
	StatusUnscheduled Status = "UNSCHEDULED"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusLate),
	string(StatusAbsent),
	string(StatusOnLeave),
	string(StatusUnscheduled),
}

// Punch is the raw check-in/check-out pair for one employee-day,
// supplied by the punch-capture collaborator.
type Punch struct {
	EmployeeID string
	Date       time.Time // calendar day, time component zero
	CheckInAt  *time.Time
	CheckOutAt *time.Time
}

// LeaveDay is an externally approved leave flag for one employee-day.
type LeaveDay struct {
	EmployeeID string
	Date       time.Time
}

// Record is the classified outcome for one employee-day. It is always
// recomputed whole from the resolved schedule and the day's punches;
// it is never partially mutated.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckInAt  *time.Time
	CheckOutAt *time.Time
	Status     Status

	// WorkedMinutes is nil for days without a closed punch pair.
	WorkedMinutes         *int
	LateMinutes           int
	EarlyDepartureMinutes int

	// OffDayOvertime marks punches recorded on a resolved off day.
	OffDayOvertime bool

	// Anomaly carries a note for records needing manual review, e.g.
	// an inverted punch pair. Anomalous records are still classified.
	Anomaly *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkingHours reports worked time in hours at two-decimal precision,
// or nil when no closed punch pair exists.
func (r Record) WorkingHours() *decimal.Decimal {
	if r.WorkedMinutes == nil {
		return nil
	}
	h := decimal.NewFromInt(int64(*r.WorkedMinutes)).DivRound(decimal.NewFromInt(60), 2)
	return &h
}
