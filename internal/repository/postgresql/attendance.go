package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/wekara-hr/attendance-engine/internal/domain/attendance"
	"github.com/wekara-hr/attendance-engine/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// GetPunchesByDateRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetPunchesByDateRange(ctx context.Context, from, to time.Time) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, punch_date, check_in_at, check_out_at
		FROM attendance_punches
		WHERE punch_date >= $1 AND punch_date <= $2
		ORDER BY employee_id, punch_date ASC
	`
	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query punches: %w", err)
	}
	defer rows.Close()

	var punches []attendance.Punch
	for rows.Next() {
		var p attendance.Punch
		if err := rows.Scan(&p.EmployeeID, &p.Date, &p.CheckInAt, &p.CheckOutAt); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating punch rows: %w", err)
	}
	return punches, nil
}

// GetLeaveDaysByDateRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetLeaveDaysByDateRange(ctx context.Context, from, to time.Time) ([]attendance.LeaveDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, leave_date
		FROM leave_days
		WHERE leave_date >= $1 AND leave_date <= $2
		ORDER BY employee_id, leave_date ASC
	`
	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave days: %w", err)
	}
	defer rows.Close()

	var leaves []attendance.LeaveDay
	for rows.Next() {
		var l attendance.LeaveDay
		if err := rows.Scan(&l.EmployeeID, &l.Date); err != nil {
			return nil, fmt.Errorf("failed to scan leave day: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave day rows: %w", err)
	}
	return leaves, nil
}

// UpsertRecords implements attendance.AttendanceRepository. Each record
// replaces any existing record for the same employee-day whole.
func (r *attendanceRepositoryImpl) UpsertRecords(ctx context.Context, records []attendance.Record) error {
	if len(records) == 0 {
		return nil
	}
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO attendance_records (
				id, employee_id, record_date, check_in_at, check_out_at,
				status, worked_minutes, late_minutes, early_departure_minutes,
				off_day_overtime, anomaly, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW()
			)
			ON CONFLICT (employee_id, record_date) DO UPDATE SET
				check_in_at             = EXCLUDED.check_in_at,
				check_out_at            = EXCLUDED.check_out_at,
				status                  = EXCLUDED.status,
				worked_minutes          = EXCLUDED.worked_minutes,
				late_minutes            = EXCLUDED.late_minutes,
				early_departure_minutes = EXCLUDED.early_departure_minutes,
				off_day_overtime        = EXCLUDED.off_day_overtime,
				anomaly                 = EXCLUDED.anomaly,
				updated_at              = NOW()
		`
		batch := &pgx.Batch{}
		for _, rec := range records {
			batch.Queue(query,
				rec.ID, rec.EmployeeID, rec.Date, rec.CheckInAt, rec.CheckOutAt,
				rec.Status, rec.WorkedMinutes, rec.LateMinutes, rec.EarlyDepartureMinutes,
				rec.OffDayOvertime, rec.Anomaly,
			)
		}
		results := tx.SendBatch(ctx, batch)
		defer results.Close()
		for range records {
			if _, err := results.Exec(); err != nil {
				return fmt.Errorf("failed to upsert attendance record: %w", err)
			}
		}
		return nil
	})
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "TRUE"
	args := []interface{}{}
	argIdx := 1
	addCond := func(cond string, value interface{}) {
		where += fmt.Sprintf(" AND %s $%d", cond, argIdx)
		args = append(args, value)
		argIdx++
	}
	if filter.EmployeeID != nil {
		addCond("employee_id =", *filter.EmployeeID)
	}
	if filter.Status != nil {
		addCond("status =", *filter.Status)
	}
	if filter.FromDate != nil {
		addCond("record_date >=", *filter.FromDate)
	}
	if filter.ToDate != nil {
		addCond("record_date <=", *filter.ToDate)
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM attendance_records WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_records
		WHERE %s
		ORDER BY record_date DESC, employee_id ASC
		LIMIT $%d OFFSET $%d
	`, recordColumns, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// GetByEmployeeAndDateRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDateRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_records
		WHERE employee_id = $1 AND record_date >= $2 AND record_date <= $3
		ORDER BY record_date ASC
	`, recordColumns)

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// GetByDateRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByDateRange(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_records
		WHERE record_date >= $1 AND record_date <= $2
		ORDER BY employee_id, record_date ASC
	`, recordColumns)

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

const recordColumns = `
	id, employee_id, record_date, check_in_at, check_out_at,
	status, worked_minutes, late_minutes, early_departure_minutes,
	off_day_overtime, anomaly, created_at, updated_at
`

func scanRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckInAt, &rec.CheckOutAt,
			&rec.Status, &rec.WorkedMinutes, &rec.LateMinutes, &rec.EarlyDepartureMinutes,
			&rec.OffDayOvertime, &rec.Anomaly, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance record rows: %w", err)
	}
	return records, nil
}
