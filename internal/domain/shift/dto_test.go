package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekara-hr/attendance-engine/internal/pkg/validator"
)

func intPtr(v int) *int {
	return &v
}

func stringPtr(v string) *string {
	return &v
}

func validCreateRequest() CreateShiftRequest {
	return CreateShiftRequest{
		Name:                           "Regular",
		DefaultStart:                   "09:00",
		DefaultEnd:                     "18:00",
		LateToleranceMinutes:           intPtr(15),
		EarlyDepartureToleranceMinutes: intPtr(10),
		Schedules: []ShiftScheduleRequest{
			{DayOfWeek: 0, IsOffDay: true},
			{DayOfWeek: 6, IsHalfDay: true},
		},
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func TestCreateShiftRequestValidate(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateShiftRequestValidateRequiredFields(t *testing.T) {
	req := CreateShiftRequest{}
	fields := fieldErrors(t, req.Validate())

	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "default_start")
	assert.Contains(t, fields, "default_end")
	assert.Contains(t, fields, "late_tolerance_minutes")
	assert.Contains(t, fields, "early_departure_tolerance_minutes")
}

func TestCreateShiftRequestValidateClockTimes(t *testing.T) {
	req := validCreateRequest()
	req.DefaultStart = "25:00"
	fields := fieldErrors(t, req.Validate())
	assert.Contains(t, fields, "default_start")

	req = validCreateRequest()
	req.DefaultEnd = req.DefaultStart
	fields = fieldErrors(t, req.Validate())
	assert.Contains(t, fields, "default_end")
}

func TestCreateShiftRequestValidateNegativeTolerances(t *testing.T) {
	req := validCreateRequest()
	req.LateToleranceMinutes = intPtr(-1)
	fields := fieldErrors(t, req.Validate())
	assert.Contains(t, fields, "late_tolerance_minutes")
}

func TestCreateShiftRequestValidateScheduleRows(t *testing.T) {
	req := validCreateRequest()
	req.Schedules = []ShiftScheduleRequest{
		{DayOfWeek: 7},
		{DayOfWeek: 1, IsOffDay: true, IsHalfDay: true},
		{DayOfWeek: 2, IsOffDay: true, StartTime: stringPtr("09:00")},
		{DayOfWeek: 3, StartTime: stringPtr("bad")},
	}
	fields := fieldErrors(t, req.Validate())

	assert.Contains(t, fields, "schedules[0].day_of_week")
	assert.Contains(t, fields, "schedules[1]")
	assert.Contains(t, fields, "schedules[2]")
	assert.Contains(t, fields, "schedules[3].start_time")
}

func TestCreateShiftRequestValidateDuplicateWeekday(t *testing.T) {
	req := validCreateRequest()
	req.Schedules = []ShiftScheduleRequest{
		{DayOfWeek: 1},
		{DayOfWeek: 1},
	}
	fields := fieldErrors(t, req.Validate())
	assert.Contains(t, fields, "schedules[1].day_of_week")
}

func TestToShift(t *testing.T) {
	req := validCreateRequest()
	req.Schedules = append(req.Schedules, ShiftScheduleRequest{
		DayOfWeek: 1,
		StartTime: stringPtr("10:00"),
		EndTime:   stringPtr("19:00"),
	})
	require.NoError(t, req.Validate())

	s, err := req.ToShift()
	require.NoError(t, err)

	assert.Equal(t, "Regular", s.Name)
	assert.Equal(t, TimeOfDay(9*60), s.DefaultStart)
	assert.Equal(t, TimeOfDay(18*60), s.DefaultEnd)
	assert.Equal(t, 15, s.LateToleranceMinutes)
	assert.Equal(t, 10, s.EarlyDepartureToleranceMinutes)
	require.Len(t, s.Schedules, 3)

	monday := s.ScheduleFor(1)
	require.NotNil(t, monday)
	require.NotNil(t, monday.StartTime)
	assert.Equal(t, TimeOfDay(10*60), *monday.StartTime)
	require.NotNil(t, monday.EndTime)
	assert.Equal(t, TimeOfDay(19*60), *monday.EndTime)

	require.NoError(t, s.ValidateConfig())
}

func TestShiftFilterValidateDefaults(t *testing.T) {
	f := ShiftFilter{}
	require.NoError(t, f.Validate())
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.Limit)
}

func TestShiftFilterValidateLimitCap(t *testing.T) {
	f := ShiftFilter{Limit: 101}
	fields := fieldErrors(t, f.Validate())
	assert.Contains(t, fields, "limit")
}
