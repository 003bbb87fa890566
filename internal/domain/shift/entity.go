package shift

import (
	"fmt"
	"time"
)

// TimeOfDay is a timezone-naive wall-clock time with minute precision,
// stored as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses a "15:04" clock string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int { return int(t) }

// AddMinutes returns the time of day m minutes later. The result may
// exceed 24h; callers treat that as spilling into the next day.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay { return t + TimeOfDay(m) }

// String renders the 24h clock form, e.g. "09:30".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour()%24, t.Minute())
}

// Clock12 renders the 12h clock form, e.g. "09:30 AM".
func (t TimeOfDay) Clock12() string {
	ref := time.Date(2000, 1, 1, t.Hour()%24, t.Minute(), 0, 0, time.UTC)
	return ref.Format("03:04 PM")
}

// At anchors the time of day onto a calendar date, in the date's location.
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

type Shift struct {
	ID                             string
	Name                           string
	DefaultStart                   TimeOfDay
	DefaultEnd                     TimeOfDay
	LateToleranceMinutes           int
	EarlyDepartureToleranceMinutes int
	CreatedAt                      time.Time
	UpdatedAt                      time.Time

	// At most one entry per weekday; days without an entry use the
	// shift defaults.
	Schedules []ShiftSchedule
}

type ShiftSchedule struct {
	ID        string
	ShiftID   string
	DayOfWeek int // 0=Sunday .. 6=Saturday
	IsOffDay  bool
	IsHalfDay bool
	StartTime *TimeOfDay
	EndTime   *TimeOfDay
}

// ScheduleFor returns the override row for a weekday, or nil when the
// shift has no customization for that day.
func (s Shift) ScheduleFor(weekday int) *ShiftSchedule {
	for i := range s.Schedules {
		if s.Schedules[i].DayOfWeek == weekday {
			return &s.Schedules[i]
		}
	}
	return nil
}

// ValidateConfig rejects malformed shift configuration before it can
// reach classification.
func (s Shift) ValidateConfig() error {
	if s.DefaultEnd == s.DefaultStart {
		return fmt.Errorf("shift %q: %w", s.Name, ErrZeroLengthDay)
	}
	if s.LateToleranceMinutes < 0 || s.EarlyDepartureToleranceMinutes < 0 {
		return fmt.Errorf("shift %q: %w", s.Name, ErrNegativeTolerance)
	}
	if len(s.Schedules) > 7 {
		return fmt.Errorf("shift %q: %w", s.Name, ErrTooManySchedules)
	}
	seen := [7]bool{}
	for _, sched := range s.Schedules {
		if sched.DayOfWeek < 0 || sched.DayOfWeek > 6 {
			return fmt.Errorf("shift %q day %d: %w", s.Name, sched.DayOfWeek, ErrDayOfWeekOutOfRange)
		}
		if seen[sched.DayOfWeek] {
			return fmt.Errorf("shift %q day %d: %w", s.Name, sched.DayOfWeek, ErrDuplicateDayOfWeek)
		}
		seen[sched.DayOfWeek] = true
		if sched.IsOffDay && sched.IsHalfDay {
			return fmt.Errorf("shift %q day %d: %w", s.Name, sched.DayOfWeek, ErrOffAndHalfDay)
		}
	}
	return nil
}

// DayKind is the resolved expectation for one (shift, date) pair.
type DayKind int

const (
	DayWorking DayKind = iota
	DayHalf
	DayOff
	DayUnscheduled
)

func (k DayKind) String() string {
	switch k {
	case DayWorking:
		return "working"
	case DayHalf:
		return "half_day"
	case DayOff:
		return "off_day"
	case DayUnscheduled:
		return "unscheduled"
	}
	return "unknown"
}

// ResolvedDaySchedule is the ephemeral result of resolving a shift
// against a calendar date. Start/end are meaningless for off and
// unscheduled days. Tolerances are carried along so classification
// needs no further shift lookup.
type ResolvedDaySchedule struct {
	Kind          DayKind
	ExpectedStart TimeOfDay
	ExpectedEnd   TimeOfDay

	// SpansMidnight marks an overnight day: ExpectedEnd belongs to the
	// following calendar date.
	SpansMidnight bool

	LateToleranceMinutes           int
	EarlyDepartureToleranceMinutes int
}

// Unscheduled is the sentinel for employees with no resolvable shift.
func Unscheduled() ResolvedDaySchedule {
	return ResolvedDaySchedule{Kind: DayUnscheduled}
}

// ExpectedMinutes returns the expected working span in minutes,
// accounting for the midnight wrap. Zero for off/unscheduled days.
func (r ResolvedDaySchedule) ExpectedMinutes() int {
	if r.Kind == DayOff || r.Kind == DayUnscheduled {
		return 0
	}
	end := r.ExpectedEnd.Minutes()
	if r.SpansMidnight {
		end += 24 * 60
	}
	return end - r.ExpectedStart.Minutes()
}
