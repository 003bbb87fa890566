package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrPunchNotFound  = errors.New("no punches found for this employee-day")
)
