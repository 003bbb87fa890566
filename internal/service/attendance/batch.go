package attendance

import (
	"context"
	"sync"
	"time"

	"github.com/wekara-hr/attendance-engine/internal/domain/attendance"
	"github.com/wekara-hr/attendance-engine/internal/domain/employee"
	"github.com/wekara-hr/attendance-engine/internal/domain/report"
	"github.com/wekara-hr/attendance-engine/internal/service/schedule"
)

const defaultBatchWorkers = 8

// dayKey identifies one employee-day inside a batch.
type dayKey struct {
	employeeID string
	date       string
}

func keyFor(employeeID string, date time.Time) dayKey {
	return dayKey{employeeID: employeeID, date: date.Format("2006-01-02")}
}

// Batch classifies a cohort over a date range. The snapshot, punches
// and leave flags are loaded once and held immutable for the run, so
// every (employee, date) unit is independent and units fan out across
// workers with no ordering requirement between them.
type Batch struct {
	snapshot *schedule.Snapshot
	punches  map[dayKey]attendance.Punch
	leaves   map[dayKey]bool
	workers  int
}

// BatchResult collects classified records and per-record anomalies.
// Anomalies never abort the run; a bad punch pair is flagged and the
// rest of the cohort still classifies.
type BatchResult struct {
	Records         []attendance.Record
	Anomalies       []attendance.AnomalyDetail
	UnscheduledDays int
}

func NewBatch(
	snapshot *schedule.Snapshot,
	punches []attendance.Punch,
	leaves []attendance.LeaveDay,
	workers int,
) *Batch {
	if workers <= 0 {
		workers = defaultBatchWorkers
	}
	b := &Batch{
		snapshot: snapshot,
		punches:  make(map[dayKey]attendance.Punch, len(punches)),
		leaves:   make(map[dayKey]bool, len(leaves)),
		workers:  workers,
	}
	for _, p := range punches {
		b.punches[keyFor(p.EmployeeID, p.Date)] = p
	}
	for _, l := range leaves {
		b.leaves[keyFor(l.EmployeeID, l.Date)] = true
	}
	return b
}

type batchUnit struct {
	employeeID string
	date       time.Time
}

type batchOutcome struct {
	record      attendance.Record
	emitted     bool
	unscheduled bool
}

// Run fans the (employee, date) key space out across the worker pool.
// Cancelling the context stops submission of new units; outcomes from
// already-completed units remain valid since classification is
// idempotent.
func (b *Batch) Run(ctx context.Context, employees []employee.ScheduledEmployee, period report.Period) BatchResult {
	units := make(chan batchUnit)
	outcomes := make(chan batchOutcome)

	var wg sync.WaitGroup
	for i := 0; i < b.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for unit := range units {
				outcomes <- b.classifyUnit(unit)
			}
		}()
	}

	go func() {
		defer close(units)
		for _, emp := range employees {
			period.Days(func(date time.Time) {
				select {
				case <-ctx.Done():
					return
				case units <- batchUnit{employeeID: emp.ID, date: date}:
				}
			})
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	var result BatchResult
	for outcome := range outcomes {
		if !outcome.emitted {
			continue
		}
		if outcome.unscheduled {
			result.UnscheduledDays++
		}
		rec := outcome.record
		result.Records = append(result.Records, rec)
		if rec.Anomaly != nil {
			result.Anomalies = append(result.Anomalies, attendance.AnomalyDetail{
				EmployeeID: rec.EmployeeID,
				Date:       rec.Date.Format("2006-01-02"),
				Note:       *rec.Anomaly,
			})
		}
	}
	return result
}

func (b *Batch) classifyUnit(unit batchUnit) batchOutcome {
	key := keyFor(unit.employeeID, unit.date)

	input := ClassifyInput{
		EmployeeID:      unit.employeeID,
		Date:            unit.date,
		Resolved:        b.snapshot.ResolveEmployeeDay(unit.employeeID, unit.date),
		OnApprovedLeave: b.leaves[key],
	}
	if punch, ok := b.punches[key]; ok {
		input.CheckInAt = punch.CheckInAt
		input.CheckOutAt = punch.CheckOutAt
	}

	rec, emitted := Classify(input)
	return batchOutcome{
		record:      rec,
		emitted:     emitted,
		unscheduled: emitted && rec.Status == attendance.StatusUnscheduled,
	}
}
