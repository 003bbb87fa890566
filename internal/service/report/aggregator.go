package report

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wekara-hr/attendance-engine/internal/domain/attendance"
	"github.com/wekara-hr/attendance-engine/internal/domain/report"
	"github.com/wekara-hr/attendance-engine/internal/domain/shift"
)

// AggregateOptions carries the documented implementation choices of
// the reduction.
type AggregateOptions struct {
	// CountOffDayOvertime opts off-day punches into the working-day
	// denominator (and the present numerator). Off by default: an
	// off-day punch is overtime, not a scheduled working day.
	CountOffDayOvertime bool
}

// Aggregate reduces one employee's classified records over a period
// into summary statistics. scheduleByDate resolves the employee's
// expectation per date, typically a snapshot lookup. The reduction is
// order-independent: records are keyed by date before any counting, so
// shuffling the input changes nothing.
func Aggregate(
	records []attendance.Record,
	scheduleByDate func(date time.Time) shift.ResolvedDaySchedule,
	period report.Period,
	opts AggregateOptions,
) (report.Statistics, error) {
	if period.To.Before(period.From) {
		return report.Statistics{}, report.ErrInvalidRange
	}

	byDate := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		byDate[rec.Date.Format("2006-01-02")] = rec
	}

	var stats report.Statistics
	stats.TotalWorkingHours = decimal.Zero

	period.Days(func(date time.Time) {
		rec, hasRecord := byDate[date.Format("2006-01-02")]

		if hasRecord {
			if h := rec.WorkingHours(); h != nil {
				stats.TotalWorkingHours = stats.TotalWorkingHours.Add(*h)
			}
			if rec.Anomaly != nil {
				stats.AnomalousRecords++
			}
		}

		resolved := scheduleByDate(date)
		switch resolved.Kind {
		case shift.DayUnscheduled:
			// Out of both the numerator and the denominator.
			if hasRecord {
				stats.Unscheduled++
			}
			return
		case shift.DayOff:
			if !hasRecord || rec.CheckInAt == nil {
				// An off day with no activity is not a working day.
				return
			}
			stats.OffDayOvertimeDays++
			if opts.CountOffDayOvertime {
				stats.WorkingDays++
				stats.Present++
			}
			return
		}

		if !hasRecord {
			// A working day that never got classified still belongs in
			// the denominator.
			stats.WorkingDays++
			return
		}

		switch rec.Status {
		case attendance.StatusOnLeave:
			stats.OnLeave++
		case attendance.StatusUnscheduled:
			stats.Unscheduled++
		case attendance.StatusLate:
			stats.Late++
			stats.WorkingDays++
		case attendance.StatusAbsent:
			stats.Absent++
			stats.WorkingDays++
		default:
			stats.Present++
			stats.WorkingDays++
		}
	})

	stats.AttendanceRatePercent = ratePercent(stats)
	return stats, nil
}

// Combine merges per-employee statistics into cohort statistics,
// recomputing the rate over the summed counters.
func Combine(all ...report.Statistics) report.Statistics {
	var combined report.Statistics
	combined.TotalWorkingHours = decimal.Zero
	for _, s := range all {
		combined.WorkingDays += s.WorkingDays
		combined.Present += s.Present
		combined.Absent += s.Absent
		combined.Late += s.Late
		combined.OnLeave += s.OnLeave
		combined.Unscheduled += s.Unscheduled
		combined.OffDayOvertimeDays += s.OffDayOvertimeDays
		combined.AnomalousRecords += s.AnomalousRecords
		combined.TotalWorkingHours = combined.TotalWorkingHours.Add(s.TotalWorkingHours)
	}
	combined.AttendanceRatePercent = ratePercent(combined)
	return combined
}

// ratePercent computes round((present+late)/workingDays*100). Late is
// present-family: the employee attended, just not on time. A zero
// denominator yields zero, never a division error.
func ratePercent(s report.Statistics) int {
	if s.WorkingDays == 0 {
		return 0
	}
	attended := s.Present + s.Late
	return int(math.Round(float64(attended) / float64(s.WorkingDays) * 100))
}
