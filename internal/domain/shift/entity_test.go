package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{input: "00:00", want: 0},
		{input: "09:30", want: 9*60 + 30},
		{input: "23:59", want: 23*60 + 59},
		{input: "24:00", wantErr: true},
		{input: "09:30:00", wantErr: true},
		{input: "", wantErr: true},
		{input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestTimeOfDayFormatting(t *testing.T) {
	tod, err := ParseTimeOfDay("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", tod.String())
	assert.Equal(t, "09:05 AM", tod.Clock12())

	evening, err := ParseTimeOfDay("17:30")
	require.NoError(t, err)
	assert.Equal(t, "17:30", evening.String())
	assert.Equal(t, "05:30 PM", evening.Clock12())

	midnight, err := ParseTimeOfDay("00:00")
	require.NoError(t, err)
	assert.Equal(t, "12:00 AM", midnight.Clock12())
}

func TestTimeOfDayAt(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	anchored := tod.At(date)
	assert.Equal(t, 2026, anchored.Year())
	assert.Equal(t, 9, anchored.Hour())
	assert.Equal(t, 30, anchored.Minute())
	assert.Equal(t, loc, anchored.Location())
}

func validShift() Shift {
	return Shift{
		Name:         "Regular",
		DefaultStart: TimeOfDay(9 * 60),
		DefaultEnd:   TimeOfDay(18 * 60),
		Schedules: []ShiftSchedule{
			{DayOfWeek: 0, IsOffDay: true},
			{DayOfWeek: 6, IsHalfDay: true},
		},
	}
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, validShift().ValidateConfig())
}

func TestValidateConfigZeroLengthDay(t *testing.T) {
	s := validShift()
	s.DefaultEnd = s.DefaultStart
	assert.ErrorIs(t, s.ValidateConfig(), ErrZeroLengthDay)
}

func TestValidateConfigOvernightDefaultsAreValid(t *testing.T) {
	s := validShift()
	s.DefaultStart = TimeOfDay(22 * 60)
	s.DefaultEnd = TimeOfDay(6 * 60)
	assert.NoError(t, s.ValidateConfig())
}

func TestValidateConfigNegativeTolerance(t *testing.T) {
	s := validShift()
	s.LateToleranceMinutes = -1
	assert.ErrorIs(t, s.ValidateConfig(), ErrNegativeTolerance)

	s = validShift()
	s.EarlyDepartureToleranceMinutes = -5
	assert.ErrorIs(t, s.ValidateConfig(), ErrNegativeTolerance)
}

func TestValidateConfigDuplicateDayOfWeek(t *testing.T) {
	s := validShift()
	s.Schedules = append(s.Schedules, ShiftSchedule{DayOfWeek: 0})
	assert.ErrorIs(t, s.ValidateConfig(), ErrDuplicateDayOfWeek)
}

func TestValidateConfigDayOfWeekOutOfRange(t *testing.T) {
	s := validShift()
	s.Schedules = []ShiftSchedule{{DayOfWeek: 7}}
	assert.ErrorIs(t, s.ValidateConfig(), ErrDayOfWeekOutOfRange)

	s.Schedules = []ShiftSchedule{{DayOfWeek: -1}}
	assert.ErrorIs(t, s.ValidateConfig(), ErrDayOfWeekOutOfRange)
}

func TestValidateConfigOffAndHalfDayConflict(t *testing.T) {
	s := validShift()
	s.Schedules = []ShiftSchedule{{DayOfWeek: 3, IsOffDay: true, IsHalfDay: true}}
	assert.ErrorIs(t, s.ValidateConfig(), ErrOffAndHalfDay)
}

func TestValidateConfigTooManySchedules(t *testing.T) {
	s := validShift()
	s.Schedules = make([]ShiftSchedule, 8)
	assert.ErrorIs(t, s.ValidateConfig(), ErrTooManySchedules)
}

func TestScheduleFor(t *testing.T) {
	s := validShift()

	sunday := s.ScheduleFor(0)
	require.NotNil(t, sunday)
	assert.True(t, sunday.IsOffDay)

	assert.Nil(t, s.ScheduleFor(2))
}

func TestExpectedMinutes(t *testing.T) {
	working := ResolvedDaySchedule{
		Kind:          DayWorking,
		ExpectedStart: TimeOfDay(9 * 60),
		ExpectedEnd:   TimeOfDay(17 * 60),
	}
	assert.Equal(t, 480, working.ExpectedMinutes())

	overnight := ResolvedDaySchedule{
		Kind:          DayWorking,
		ExpectedStart: TimeOfDay(22 * 60),
		ExpectedEnd:   TimeOfDay(6 * 60),
		SpansMidnight: true,
	}
	assert.Equal(t, 480, overnight.ExpectedMinutes())

	assert.Equal(t, 0, ResolvedDaySchedule{Kind: DayOff}.ExpectedMinutes())
	assert.Equal(t, 0, Unscheduled().ExpectedMinutes())
}
