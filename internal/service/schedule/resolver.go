package schedule

import (
	"time"

	"github.com/wekara-hr/attendance-engine/internal/domain/shift"
)

// Resolve computes the effective expectation for one (shift, date)
// pair. Pure function of its inputs; the same pair always resolves to
// the same result, which is what makes the per-weekday memoization in
// Snapshot valid.
func Resolve(s shift.Shift, date time.Time) shift.ResolvedDaySchedule {
	return resolveWeekday(s, int(date.Weekday()))
}

func resolveWeekday(s shift.Shift, weekday int) shift.ResolvedDaySchedule {
	resolved := shift.ResolvedDaySchedule{
		Kind:                           shift.DayWorking,
		ExpectedStart:                  s.DefaultStart,
		ExpectedEnd:                    s.DefaultEnd,
		LateToleranceMinutes:           s.LateToleranceMinutes,
		EarlyDepartureToleranceMinutes: s.EarlyDepartureToleranceMinutes,
	}

	// A shift with no schedule rows has no off days by construction:
	// every day is a working day on the defaults.
	sched := s.ScheduleFor(weekday)
	if sched == nil {
		return normalize(resolved)
	}

	switch {
	case sched.IsOffDay:
		resolved.Kind = shift.DayOff
		resolved.ExpectedStart = 0
		resolved.ExpectedEnd = 0
		return resolved

	case sched.IsHalfDay:
		start := s.DefaultStart
		if sched.StartTime != nil {
			start = *sched.StartTime
		}
		span := s.DefaultEnd.Minutes() - s.DefaultStart.Minutes()
		if span <= 0 {
			// Overnight defaults: the span crosses midnight.
			span += 24 * 60
		}
		resolved.Kind = shift.DayHalf
		resolved.ExpectedStart = start
		// Integer-minute division truncates toward the start time.
		resolved.ExpectedEnd = start.AddMinutes(span / 2)

	default:
		if sched.StartTime != nil {
			resolved.ExpectedStart = *sched.StartTime
		}
		if sched.EndTime != nil {
			resolved.ExpectedEnd = *sched.EndTime
		}
	}

	return normalize(resolved)
}

// normalize applies the overnight rule: an end at or before the start
// belongs to the following calendar day.
func normalize(r shift.ResolvedDaySchedule) shift.ResolvedDaySchedule {
	if end := r.ExpectedEnd.Minutes(); end >= 24*60 {
		r.ExpectedEnd = shift.TimeOfDay(end % (24 * 60))
	}
	if r.ExpectedEnd <= r.ExpectedStart {
		r.SpansMidnight = true
	}
	return r
}
