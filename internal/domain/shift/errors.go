package shift

import "errors"

var (
	// Configuration errors, rejected at load time
	ErrDuplicateDayOfWeek  = errors.New("shift has more than one schedule for the same weekday")
	ErrOffAndHalfDay       = errors.New("schedule cannot be both an off day and a half day")
	ErrZeroLengthDay       = errors.New("shift default end must differ from default start")
	ErrDayOfWeekOutOfRange = errors.New("day of week must be between 0 (Sunday) and 6 (Saturday)")
	ErrNegativeTolerance   = errors.New("tolerance minutes must not be negative")
	ErrTooManySchedules    = errors.New("shift cannot have more than 7 schedules")

	// Repository errors
	ErrShiftNotFound   = errors.New("shift not found")
	ErrShiftNameExists = errors.New("shift with this name already exists")
	ErrShiftInUse      = errors.New("shift is assigned to employees or departments")
)
