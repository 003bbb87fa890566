package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekara-hr/attendance-engine/internal/domain/attendance"
	"github.com/wekara-hr/attendance-engine/internal/domain/shift"
)

var testDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday

func workingDay(startHour, startMin, endHour, endMin, lateTol, earlyTol int) shift.ResolvedDaySchedule {
	return shift.ResolvedDaySchedule{
		Kind:                           shift.DayWorking,
		ExpectedStart:                  shift.TimeOfDay(startHour*60 + startMin),
		ExpectedEnd:                    shift.TimeOfDay(endHour*60 + endMin),
		LateToleranceMinutes:           lateTol,
		EarlyDepartureToleranceMinutes: earlyTol,
	}
}

func at(hour, min int) *time.Time {
	t := time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
	return &t
}

func TestClassifyOnTimePresent(t *testing.T) {
	rec, ok := Classify(ClassifyInput{
		EmployeeID: "emp-1",
		Date:       testDay,
		Resolved:   workingDay(9, 0, 17, 0, 15, 0),
		CheckInAt:  at(8, 58),
		CheckOutAt: at(17, 2),
	})

	require.True(t, ok)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, 0, rec.LateMinutes)
	assert.Equal(t, 0, rec.EarlyDepartureMinutes)
	require.NotNil(t, rec.WorkedMinutes)
	assert.Equal(t, 8*60+4, *rec.WorkedMinutes)
	assert.Nil(t, rec.Anomaly)
}

func TestClassifyLateBeyondTolerance(t *testing.T) {
	// 09:00 start, 15 minute tolerance, check-in 09:20, check-out
	// 17:05: 5 late minutes and 7.75 worked hours.
	rec, ok := Classify(ClassifyInput{
		EmployeeID: "emp-1",
		Date:       testDay,
		Resolved:   workingDay(9, 0, 17, 0, 15, 0),
		CheckInAt:  at(9, 20),
		CheckOutAt: at(17, 5),
	})

	require.True(t, ok)
	assert.Equal(t, attendance.StatusLate, rec.Status)
	assert.Equal(t, 5, rec.LateMinutes)
	require.NotNil(t, rec.WorkedMinutes)
	assert.Equal(t, 465, *rec.WorkedMinutes)
	assert.Equal(t, "7.75", rec.WorkingHours().StringFixed(2))
}

func TestClassifyToleranceBoundary(t *testing.T) {
	resolved := workingDay(9, 0, 17, 0, 15, 0)

	// Exactly at start + tolerance is still on time.
	onTime, ok := Classify(ClassifyInput{
		EmployeeID: "emp-1", Date: testDay, Resolved: resolved,
		CheckInAt: at(9, 15), CheckOutAt: at(17, 0),
	})
	require.True(t, ok)
	assert.Equal(t, attendance.StatusPresent, onTime.Status)
	assert.Equal(t, 0, onTime.LateMinutes)

	// One minute past the tolerance counts one late minute.
	late, ok := Classify(ClassifyInput{
		EmployeeID: "emp-1", Date: testDay, Resolved: resolved,
		CheckInAt: at(9, 16), CheckOutAt: at(17, 0),
	})
	require.True(t, ok)
	assert.Equal(t, attendance.StatusLate, late.Status)
	assert.Equal(t, 1, late.LateMinutes)
}

func TestClassifyEarlyDeparture(t *testing.T) {
	// 10-minute early-departure tolerance; leaving 30 minutes early
	// records 20 metric minutes without changing the status.
	rec, ok := Classify(ClassifyInput{
		EmployeeID: "emp-1",
		Date:       testDay,
		Resolved:   workingDay(9, 0, 17, 0, 15, 10),
		CheckInAt:  at(9, 0),
		CheckOutAt: at(16, 30),
	})

	require.True(t, ok)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, 20, rec.EarlyDepartureMinutes)
}

func TestClassifyEarlyDepartureWithinTolerance(t *testing.T) {
	rec, ok := Classify(ClassifyInput{
		EmployeeID: "emp-1",
		Date:       testDay,
		Resolved:   workingDay(9, 0, 17, 0, 15, 10),
		CheckInAt:  at(9, 0),
		CheckOutAt: at(16, 50),
	})

	require.True(t, ok)
	assert.Equal(t, 0, rec.EarlyDepartureMinutes)
}

func TestClassifyMissingCheckInAbsent(t *testing.T) {
	rec, ok := Classify(ClassifyInput{
		EmployeeID: "emp-1",
		Date:       testDay,
		Resolved:   workingDay(9, 0, 17, 0, 15, 0),
	})

	require.True(t, ok)
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	assert.Nil(t, rec.WorkedMinutes)
}

func TestClassifyOpenPunch(t *testing.T) {
	// Check-in without check-out: present, but no worked hours.
	rec, ok := Classify(ClassifyInput{
		EmployeeID: "emp-1",
		Date:       testDay,
		Resolved:   workingDay(9, 0, 17, 0, 15, 0),
		CheckInAt:  at(9, 0),
	})

	require.True(t, ok)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Nil(t, rec.WorkedMinutes)
	assert.Nil(t, rec.WorkingHours())
	assert.Equal(t, 0, rec.EarlyDepartureMinutes)
}

func TestClassifyInvertedPunchClampsAndFlags(t *testing.T) {
	rec, ok := Classify(ClassifyInput{
		EmployeeID: "emp-1",
		Date:       testDay,
		Resolved:   workingDay(9, 0, 17, 0, 15, 0),
		CheckInAt:  at(17, 0),
		CheckOutAt: at(9, 0),
	})

	require.True(t, ok)
	require.NotNil(t, rec.WorkedMinutes)
	assert.Equal(t, 0, *rec.WorkedMinutes)
	require.NotNil(t, rec.Anomaly)
	assert.Equal(t, "check-out earlier than check-in", *rec.Anomaly)
	// Flagged, not rejected: the record is still classified, and a
	// 17:00 check-in against a 09:00 start is also late.
	assert.Equal(t, attendance.StatusLate, rec.Status)
}

func TestClassifyOnLeave(t *testing.T) {
	rec, ok := Classify(ClassifyInput{
		EmployeeID:      "emp-1",
		Date:            testDay,
		Resolved:        workingDay(9, 0, 17, 0, 15, 0),
		CheckInAt:       at(9, 0),
		CheckOutAt:      at(17, 0),
		OnApprovedLeave: true,
	})

	require.True(t, ok)
	// Leave takes precedence over any punches.
	assert.Equal(t, attendance.StatusOnLeave, rec.Status)
	assert.Nil(t, rec.WorkedMinutes)
	assert.Equal(t, 0, rec.LateMinutes)
}

func TestClassifyUnscheduled(t *testing.T) {
	rec, ok := Classify(ClassifyInput{
		EmployeeID: "emp-1",
		Date:       testDay,
		Resolved:   shift.Unscheduled(),
		CheckInAt:  at(9, 0),
		CheckOutAt: at(17, 0),
	})

	require.True(t, ok)
	assert.Equal(t, attendance.StatusUnscheduled, rec.Status)
}

func TestClassifyOffDayWithoutPunchesEmitsNothing(t *testing.T) {
	_, ok := Classify(ClassifyInput{
		EmployeeID: "emp-1",
		Date:       testDay,
		Resolved:   shift.ResolvedDaySchedule{Kind: shift.DayOff},
	})

	assert.False(t, ok)
}

func TestClassifyOffDayWithPunchesIsOvertime(t *testing.T) {
	rec, ok := Classify(ClassifyInput{
		EmployeeID: "emp-1",
		Date:       testDay,
		Resolved:   shift.ResolvedDaySchedule{Kind: shift.DayOff},
		CheckInAt:  at(10, 0),
		CheckOutAt: at(14, 0),
	})

	require.True(t, ok)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.True(t, rec.OffDayOvertime)
	require.NotNil(t, rec.WorkedMinutes)
	assert.Equal(t, 240, *rec.WorkedMinutes)
	// No expectation on an off day, so no lateness.
	assert.Equal(t, 0, rec.LateMinutes)
}

func TestClassifyOvernightShift(t *testing.T) {
	resolved := shift.ResolvedDaySchedule{
		Kind:                 shift.DayWorking,
		ExpectedStart:        shift.TimeOfDay(22 * 60),
		ExpectedEnd:          shift.TimeOfDay(6 * 60),
		SpansMidnight:        true,
		LateToleranceMinutes: 15,
	}

	// Checkout at 06:00 wall clock, before the 22:00 check-in: the
	// overnight rule places it on the next day, 8 worked hours.
	rec, ok := Classify(ClassifyInput{
		EmployeeID: "emp-1",
		Date:       testDay,
		Resolved:   resolved,
		CheckInAt:  at(22, 0),
		CheckOutAt: at(6, 0),
	})

	require.True(t, ok)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	require.NotNil(t, rec.WorkedMinutes)
	assert.Equal(t, 480, *rec.WorkedMinutes)
	assert.Nil(t, rec.Anomaly)
	assert.Equal(t, 0, rec.EarlyDepartureMinutes)
}

func TestClassifyOvernightEarlyDeparture(t *testing.T) {
	resolved := shift.ResolvedDaySchedule{
		Kind:          shift.DayWorking,
		ExpectedStart: shift.TimeOfDay(22 * 60),
		ExpectedEnd:   shift.TimeOfDay(6 * 60),
		SpansMidnight: true,
	}

	rec, ok := Classify(ClassifyInput{
		EmployeeID: "emp-1",
		Date:       testDay,
		Resolved:   resolved,
		CheckInAt:  at(22, 0),
		CheckOutAt: at(5, 0),
	})

	require.True(t, ok)
	assert.Equal(t, 60, rec.EarlyDepartureMinutes)
}

func TestClassifyIsIdempotent(t *testing.T) {
	in := ClassifyInput{
		EmployeeID: "emp-1",
		Date:       testDay,
		Resolved:   workingDay(9, 0, 17, 0, 15, 10),
		CheckInAt:  at(9, 20),
		CheckOutAt: at(16, 30),
	}

	first, ok := Classify(in)
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, ok := Classify(in)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}
