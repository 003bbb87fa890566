package shift

import (
	"github.com/wekara-hr/attendance-engine/internal/pkg/validator"
)

type ShiftScheduleRequest struct {
	DayOfWeek int     `json:"day_of_week"`
	IsOffDay  bool    `json:"is_off_day"`
	IsHalfDay bool    `json:"is_half_day"`
	StartTime *string `json:"start_time,omitempty"` // "15:04"
	EndTime   *string `json:"end_time,omitempty"`
}

type CreateShiftRequest struct {
	Name                           string                 `json:"name"`
	DefaultStart                   string                 `json:"default_start"` // "15:04"
	DefaultEnd                     string                 `json:"default_end"`
	LateToleranceMinutes           *int                   `json:"late_tolerance_minutes"`
	EarlyDepartureToleranceMinutes *int                   `json:"early_departure_tolerance_minutes"`
	Schedules                      []ShiftScheduleRequest `json:"schedules,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidClockTime(r.DefaultStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_start",
			Message: "default_start must be a valid HH:MM time",
		})
	}
	if !validator.IsValidClockTime(r.DefaultEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_end",
			Message: "default_end must be a valid HH:MM time",
		})
	}
	if r.DefaultStart != "" && r.DefaultStart == r.DefaultEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "default_end",
			Message: "default_end must differ from default_start",
		})
	}
	if r.LateToleranceMinutes == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "late_tolerance_minutes",
			Message: "late_tolerance_minutes is required",
		})
	} else if *r.LateToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_tolerance_minutes",
			Message: "late_tolerance_minutes must be a non-negative number",
		})
	}
	if r.EarlyDepartureToleranceMinutes == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "early_departure_tolerance_minutes",
			Message: "early_departure_tolerance_minutes is required",
		})
	} else if *r.EarlyDepartureToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "early_departure_tolerance_minutes",
			Message: "early_departure_tolerance_minutes must be a non-negative number",
		})
	}

	if len(r.Schedules) > 7 {
		errs = append(errs, validator.ValidationError{
			Field:   "schedules",
			Message: "at most 7 schedules are allowed, one per weekday",
		})
	}
	seen := make(map[int]bool, len(r.Schedules))
	for i, sched := range r.Schedules {
		field := "schedules[" + validator.Itoa(i) + "]"
		if sched.DayOfWeek < 0 || sched.DayOfWeek > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".day_of_week",
				Message: "day_of_week must be between 0 (Sunday) and 6 (Saturday)",
			})
		} else if seen[sched.DayOfWeek] {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".day_of_week",
				Message: "duplicate day_of_week",
			})
		} else {
			seen[sched.DayOfWeek] = true
		}
		if sched.IsOffDay && sched.IsHalfDay {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "is_off_day and is_half_day are mutually exclusive",
			})
		}
		if sched.StartTime != nil && !validator.IsValidClockTime(*sched.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".start_time",
				Message: "start_time must be a valid HH:MM time",
			})
		}
		if sched.EndTime != nil && !validator.IsValidClockTime(*sched.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".end_time",
				Message: "end_time must be a valid HH:MM time",
			})
		}
		if sched.IsOffDay && (sched.StartTime != nil || sched.EndTime != nil) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "an off day cannot carry start_time or end_time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToShift converts a validated request into the domain entity.
// Validate must have been called first; parse errors cannot occur after
// a successful validation.
func (r *CreateShiftRequest) ToShift() (Shift, error) {
	start, err := ParseTimeOfDay(r.DefaultStart)
	if err != nil {
		return Shift{}, err
	}
	end, err := ParseTimeOfDay(r.DefaultEnd)
	if err != nil {
		return Shift{}, err
	}

	s := Shift{
		Name:                           r.Name,
		DefaultStart:                   start,
		DefaultEnd:                     end,
		LateToleranceMinutes:           *r.LateToleranceMinutes,
		EarlyDepartureToleranceMinutes: *r.EarlyDepartureToleranceMinutes,
	}
	for _, sched := range r.Schedules {
		row := ShiftSchedule{
			DayOfWeek: sched.DayOfWeek,
			IsOffDay:  sched.IsOffDay,
			IsHalfDay: sched.IsHalfDay,
		}
		if sched.StartTime != nil {
			t, err := ParseTimeOfDay(*sched.StartTime)
			if err != nil {
				return Shift{}, err
			}
			row.StartTime = &t
		}
		if sched.EndTime != nil {
			t, err := ParseTimeOfDay(*sched.EndTime)
			if err != nil {
				return Shift{}, err
			}
			row.EndTime = &t
		}
		s.Schedules = append(s.Schedules, row)
	}
	return s, nil
}

type ShiftScheduleResponse struct {
	ID        string  `json:"id"`
	DayOfWeek int     `json:"day_of_week"`
	IsOffDay  bool    `json:"is_off_day"`
	IsHalfDay bool    `json:"is_half_day"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

type ShiftResponse struct {
	ID                             string                  `json:"id"`
	Name                           string                  `json:"name"`
	DefaultStart                   string                  `json:"default_start"`
	DefaultEnd                     string                  `json:"default_end"`
	LateToleranceMinutes           int                     `json:"late_tolerance_minutes"`
	EarlyDepartureToleranceMinutes int                     `json:"early_departure_tolerance_minutes"`
	Schedules                      []ShiftScheduleResponse `json:"schedules"`
	CreatedAt                      string                  `json:"created_at"`
	UpdatedAt                      string                  `json:"updated_at"`
}

type ListShiftResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Shifts     []ShiftResponse `json:"shifts"`
}

type ShiftFilter struct {
	Name *string `json:"name,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ShiftFilter) Validate() error {
	var errs validator.ValidationErrors

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
