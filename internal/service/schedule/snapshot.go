package schedule

import (
	"time"

	"github.com/wekara-hr/attendance-engine/internal/domain/employee"
	"github.com/wekara-hr/attendance-engine/internal/domain/shift"
)

// Snapshot is an immutable view of shift configuration and employee
// shift bindings, taken once at the start of a batch run. All seven
// weekday resolutions are precomputed per shift, so concurrent readers
// share it without locking and repeated (shift, date) lookups cost a
// map access.
type Snapshot struct {
	shifts    map[string]shift.Shift
	weekdays  map[string][7]shift.ResolvedDaySchedule
	employees []employee.ScheduledEmployee
	bindings  map[string]string // employee ID -> effective shift ID
}

// NewSnapshot builds a snapshot from already-loaded configuration.
// Every shift must have passed ValidateConfig before it gets here.
func NewSnapshot(shifts []shift.Shift, employees []employee.ScheduledEmployee) *Snapshot {
	s := &Snapshot{
		shifts:    make(map[string]shift.Shift, len(shifts)),
		weekdays:  make(map[string][7]shift.ResolvedDaySchedule, len(shifts)),
		employees: employees,
		bindings:  make(map[string]string, len(employees)),
	}
	for _, sh := range shifts {
		s.shifts[sh.ID] = sh
		var days [7]shift.ResolvedDaySchedule
		for wd := 0; wd < 7; wd++ {
			days[wd] = resolveWeekday(sh, wd)
		}
		s.weekdays[sh.ID] = days
	}
	for _, emp := range employees {
		if emp.EffectiveShiftID != nil {
			s.bindings[emp.ID] = *emp.EffectiveShiftID
		}
	}
	return s
}

// Employees returns the cohort captured at snapshot time.
func (s *Snapshot) Employees() []employee.ScheduledEmployee {
	return s.employees
}

// Shift returns the configuration for a shift ID.
func (s *Snapshot) Shift(id string) (shift.Shift, bool) {
	sh, ok := s.shifts[id]
	return sh, ok
}

// ResolveShiftDay resolves a (shift, date) pair from the memo. An
// unknown shift ID resolves to the unscheduled sentinel.
func (s *Snapshot) ResolveShiftDay(shiftID string, date time.Time) shift.ResolvedDaySchedule {
	days, ok := s.weekdays[shiftID]
	if !ok {
		return shift.Unscheduled()
	}
	return days[int(date.Weekday())]
}

// ResolveEmployeeDay resolves the expectation for an employee on a
// date. Employees with no effective shift resolve to the unscheduled
// sentinel, an explicit outcome the classifier handles, not an error.
func (s *Snapshot) ResolveEmployeeDay(employeeID string, date time.Time) shift.ResolvedDaySchedule {
	shiftID, ok := s.bindings[employeeID]
	if !ok {
		return shift.Unscheduled()
	}
	return s.ResolveShiftDay(shiftID, date)
}
