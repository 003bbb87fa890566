package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekara-hr/attendance-engine/internal/domain/shift"
)

func mustClock(t *testing.T, value string) shift.TimeOfDay {
	t.Helper()
	tod, err := shift.ParseTimeOfDay(value)
	require.NoError(t, err)
	return tod
}

func clockPtr(t *testing.T, value string) *shift.TimeOfDay {
	t.Helper()
	tod := mustClock(t, value)
	return &tod
}

// date returns a UTC calendar day on the requested weekday within one
// known week (2026-03-01 was a Sunday).
func dateOnWeekday(weekday time.Weekday) time.Time {
	return time.Date(2026, 3, 1+int(weekday), 0, 0, 0, 0, time.UTC)
}

func testShift(t *testing.T) shift.Shift {
	return shift.Shift{
		ID:                             "shift-1",
		Name:                           "Regular",
		DefaultStart:                   mustClock(t, "09:00"),
		DefaultEnd:                     mustClock(t, "18:00"),
		LateToleranceMinutes:           15,
		EarlyDepartureToleranceMinutes: 10,
	}
}

func TestResolveNoSchedulesUsesDefaults(t *testing.T) {
	s := testShift(t)

	// Without schedule rows every weekday is a working day.
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		resolved := Resolve(s, dateOnWeekday(wd))
		assert.Equal(t, shift.DayWorking, resolved.Kind, "weekday %s", wd)
		assert.Equal(t, s.DefaultStart, resolved.ExpectedStart)
		assert.Equal(t, s.DefaultEnd, resolved.ExpectedEnd)
		assert.False(t, resolved.SpansMidnight)
		assert.Equal(t, 15, resolved.LateToleranceMinutes)
		assert.Equal(t, 10, resolved.EarlyDepartureToleranceMinutes)
	}
}

func TestResolveWorkingDayOverrides(t *testing.T) {
	s := testShift(t)
	s.Schedules = []shift.ShiftSchedule{
		{
			ShiftID:   s.ID,
			DayOfWeek: int(time.Monday),
			StartTime: clockPtr(t, "10:00"),
			EndTime:   clockPtr(t, "19:00"),
		},
	}

	resolved := Resolve(s, dateOnWeekday(time.Monday))
	assert.Equal(t, shift.DayWorking, resolved.Kind)
	assert.Equal(t, mustClock(t, "10:00"), resolved.ExpectedStart)
	assert.Equal(t, mustClock(t, "19:00"), resolved.ExpectedEnd)

	// Other weekdays still fall back to the defaults.
	tuesday := Resolve(s, dateOnWeekday(time.Tuesday))
	assert.Equal(t, s.DefaultStart, tuesday.ExpectedStart)
	assert.Equal(t, s.DefaultEnd, tuesday.ExpectedEnd)
}

func TestResolveOffDay(t *testing.T) {
	s := testShift(t)
	s.Schedules = []shift.ShiftSchedule{
		{ShiftID: s.ID, DayOfWeek: int(time.Sunday), IsOffDay: true},
	}

	resolved := Resolve(s, dateOnWeekday(time.Sunday))
	assert.Equal(t, shift.DayOff, resolved.Kind)
	assert.Equal(t, shift.TimeOfDay(0), resolved.ExpectedStart)
	assert.Equal(t, shift.TimeOfDay(0), resolved.ExpectedEnd)
	assert.False(t, resolved.SpansMidnight)
}

func TestResolveHalfDay(t *testing.T) {
	s := testShift(t)
	s.Schedules = []shift.ShiftSchedule{
		{ShiftID: s.ID, DayOfWeek: int(time.Saturday), IsHalfDay: true},
	}

	// Half of 09:00-18:00 is 4h30m: expect 09:00-13:30.
	resolved := Resolve(s, dateOnWeekday(time.Saturday))
	assert.Equal(t, shift.DayHalf, resolved.Kind)
	assert.Equal(t, mustClock(t, "09:00"), resolved.ExpectedStart)
	assert.Equal(t, mustClock(t, "13:30"), resolved.ExpectedEnd)
}

func TestResolveHalfDayWithStartOverride(t *testing.T) {
	s := testShift(t)
	s.Schedules = []shift.ShiftSchedule{
		{ShiftID: s.ID, DayOfWeek: int(time.Saturday), IsHalfDay: true, StartTime: clockPtr(t, "10:00")},
	}

	resolved := Resolve(s, dateOnWeekday(time.Saturday))
	assert.Equal(t, mustClock(t, "10:00"), resolved.ExpectedStart)
	assert.Equal(t, mustClock(t, "14:30"), resolved.ExpectedEnd)
}

func TestResolveHalfDayTruncatesOddSpan(t *testing.T) {
	s := testShift(t)
	s.DefaultStart = mustClock(t, "09:00")
	s.DefaultEnd = mustClock(t, "16:01")
	s.Schedules = []shift.ShiftSchedule{
		{ShiftID: s.ID, DayOfWeek: int(time.Friday), IsHalfDay: true},
	}

	// 421 minutes halve to 210, truncated toward the start.
	resolved := Resolve(s, dateOnWeekday(time.Friday))
	assert.Equal(t, mustClock(t, "12:30"), resolved.ExpectedEnd)
}

func TestResolveOvernightShift(t *testing.T) {
	s := testShift(t)
	s.DefaultStart = mustClock(t, "22:00")
	s.DefaultEnd = mustClock(t, "06:00")

	resolved := Resolve(s, dateOnWeekday(time.Wednesday))
	assert.Equal(t, shift.DayWorking, resolved.Kind)
	assert.True(t, resolved.SpansMidnight)
	assert.Equal(t, mustClock(t, "22:00"), resolved.ExpectedStart)
	assert.Equal(t, mustClock(t, "06:00"), resolved.ExpectedEnd)
}

func TestResolveOvernightHalfDay(t *testing.T) {
	s := testShift(t)
	s.DefaultStart = mustClock(t, "22:00")
	s.DefaultEnd = mustClock(t, "06:00")
	s.Schedules = []shift.ShiftSchedule{
		{ShiftID: s.ID, DayOfWeek: int(time.Thursday), IsHalfDay: true},
	}

	// The 8-hour overnight span halves to 4 hours: 22:00-02:00, still
	// crossing midnight.
	resolved := Resolve(s, dateOnWeekday(time.Thursday))
	assert.Equal(t, shift.DayHalf, resolved.Kind)
	assert.Equal(t, mustClock(t, "22:00"), resolved.ExpectedStart)
	assert.Equal(t, mustClock(t, "02:00"), resolved.ExpectedEnd)
	assert.True(t, resolved.SpansMidnight)
}

func TestResolveEndEqualToStartSpansMidnight(t *testing.T) {
	s := testShift(t)
	s.DefaultStart = mustClock(t, "08:00")
	s.DefaultEnd = mustClock(t, "08:00")

	// A 24-hour day: end at the start belongs to the next day.
	resolved := Resolve(s, dateOnWeekday(time.Monday))
	assert.True(t, resolved.SpansMidnight)
}

func TestResolveIsDeterministic(t *testing.T) {
	s := testShift(t)
	s.Schedules = []shift.ShiftSchedule{
		{ShiftID: s.ID, DayOfWeek: int(time.Sunday), IsOffDay: true},
		{ShiftID: s.ID, DayOfWeek: int(time.Saturday), IsHalfDay: true},
	}

	date := dateOnWeekday(time.Saturday)
	first := Resolve(s, date)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Resolve(s, date))
	}
}
