package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActiveScheduled returns every active employee with the shift
	// binding resolved against the department default. Employees whose
	// binding resolves to nothing are still returned, with a nil
	// EffectiveShiftID.
	ListActiveScheduled(ctx context.Context) ([]ScheduledEmployee, error)

	// GetScheduled resolves a single employee's shift binding.
	GetScheduled(ctx context.Context, id string) (ScheduledEmployee, error)
}
