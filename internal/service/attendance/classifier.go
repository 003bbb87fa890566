package attendance

import (
	"time"

	"github.com/wekara-hr/attendance-engine/internal/domain/attendance"
	"github.com/wekara-hr/attendance-engine/internal/domain/shift"
)

// ClassifyInput is everything classification needs for one
// employee-day. Punches and the leave flag are materialized before the
// engine runs; classification itself does no I/O.
type ClassifyInput struct {
	EmployeeID      string
	Date            time.Time // calendar day
	Resolved        shift.ResolvedDaySchedule
	CheckInAt       *time.Time
	CheckOutAt      *time.Time
	OnApprovedLeave bool
}

// Classify derives the attendance record for one employee-day. It is a
// pure function: identical inputs always produce identical records.
// The second return value is false when the day produces no record at
// all (an off day without punches), which keeps such days out of
// working-day counts entirely.
//
// Precedence, first match wins: unscheduled, approved leave, off day,
// missing check-in, punch arithmetic.
func Classify(in ClassifyInput) (attendance.Record, bool) {
	rec := attendance.Record{
		EmployeeID: in.EmployeeID,
		Date:       in.Date,
		CheckInAt:  in.CheckInAt,
		CheckOutAt: in.CheckOutAt,
	}
	resolved := in.Resolved

	if resolved.Kind == shift.DayUnscheduled {
		// Not ABSENT: there was no expectation to miss.
		rec.Status = attendance.StatusUnscheduled
		return rec, true
	}

	if in.OnApprovedLeave {
		rec.Status = attendance.StatusOnLeave
		return rec, true
	}

	if resolved.Kind == shift.DayOff {
		if in.CheckInAt == nil {
			return attendance.Record{}, false
		}
		// Punches despite the off day: overtime. Hours are computed
		// normally but there is no start/end expectation, so lateness
		// and early departure do not apply.
		rec.Status = attendance.StatusPresent
		rec.OffDayOvertime = true
		rec.WorkedMinutes, rec.Anomaly = punchMinutes(*in.CheckInAt, in.CheckOutAt, resolved)
		return rec, true
	}

	if in.CheckInAt == nil {
		rec.Status = attendance.StatusAbsent
		return rec, true
	}

	checkIn := *in.CheckInAt
	expectedStart := resolved.ExpectedStart.At(in.Date.In(checkIn.Location()))

	rec.Status = attendance.StatusPresent
	if checkIn.After(expectedStart) {
		diff := wholeMinutes(checkIn.Sub(expectedStart))
		if late := diff - resolved.LateToleranceMinutes; late > 0 {
			rec.LateMinutes = late
			rec.Status = attendance.StatusLate
		}
	}

	rec.WorkedMinutes, rec.Anomaly = punchMinutes(checkIn, in.CheckOutAt, resolved)

	if in.CheckOutAt != nil && rec.Anomaly == nil {
		checkOut := wrapCheckOut(checkIn, *in.CheckOutAt, resolved)
		expectedEnd := resolved.ExpectedEnd.At(in.Date.In(checkIn.Location()))
		if resolved.SpansMidnight {
			expectedEnd = expectedEnd.Add(24 * time.Hour)
		}
		if checkOut.Before(expectedEnd) {
			gap := wholeMinutes(expectedEnd.Sub(checkOut))
			if early := gap - resolved.EarlyDepartureToleranceMinutes; early > 0 {
				rec.EarlyDepartureMinutes = early
			}
		}
	}

	return rec, true
}

// punchMinutes computes whole worked minutes from a punch pair, or nil
// for an open punch. Inverted pairs outside the overnight case clamp
// to zero and flag the record for manual review.
func punchMinutes(checkIn time.Time, checkOutAt *time.Time, resolved shift.ResolvedDaySchedule) (*int, *string) {
	if checkOutAt == nil {
		return nil, nil
	}
	checkOut := wrapCheckOut(checkIn, *checkOutAt, resolved)
	if checkOut.Before(checkIn) {
		zero := 0
		note := "check-out earlier than check-in"
		return &zero, &note
	}
	mins := wholeMinutes(checkOut.Sub(checkIn))
	return &mins, nil
}

// wrapCheckOut applies the overnight rule to a checkout recorded as a
// same-day wall-clock instant: when the expected end rolled to the
// next day and the checkout sits before the check-in, it belongs to
// the following calendar day.
func wrapCheckOut(checkIn, checkOut time.Time, resolved shift.ResolvedDaySchedule) time.Time {
	if resolved.SpansMidnight && checkOut.Before(checkIn) {
		return checkOut.Add(24 * time.Hour)
	}
	return checkOut
}

// wholeMinutes floor-truncates a positive duration to whole minutes.
func wholeMinutes(d time.Duration) int {
	return int(d / time.Minute)
}
