package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wekara-hr/attendance-engine/internal/domain/shift"
	"github.com/wekara-hr/attendance-engine/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// timeOfDay converts a scanned TIME column to the domain type.
func timeOfDay(t time.Time) shift.TimeOfDay {
	return shift.TimeOfDay(t.Hour()*60 + t.Minute())
}

func timeOfDayPtr(t *time.Time) *shift.TimeOfDay {
	if t == nil {
		return nil
	}
	v := timeOfDay(*t)
	return &v
}

func clockParam(t shift.TimeOfDay) string {
	return t.String()
}

func clockParamPtr(t *shift.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	v := t.String()
	return &v
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO shifts (
				id, name, default_start, default_end,
				late_tolerance_minutes, early_departure_tolerance_minutes,
				created_at, updated_at
			) VALUES (
				uuidv7(), $1, $2::time, $3::time, $4, $5, NOW(), NOW()
			) RETURNING id, created_at, updated_at
		`
		err := tx.QueryRow(ctx, query,
			s.Name, clockParam(s.DefaultStart), clockParam(s.DefaultEnd),
			s.LateToleranceMinutes, s.EarlyDepartureToleranceMinutes,
		).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return shift.ErrShiftNameExists
			}
			return fmt.Errorf("failed to insert shift: %w", err)
		}

		for i := range s.Schedules {
			sched := &s.Schedules[i]
			sched.ShiftID = s.ID
			scheduleQuery := `
				INSERT INTO shift_schedules (
					id, shift_id, day_of_week, is_off_day, is_half_day,
					start_time, end_time, created_at, updated_at
				) VALUES (
					uuidv7(), $1, $2, $3, $4, $5::time, $6::time, NOW(), NOW()
				) RETURNING id
			`
			err := tx.QueryRow(ctx, scheduleQuery,
				s.ID, sched.DayOfWeek, sched.IsOffDay, sched.IsHalfDay,
				clockParamPtr(sched.StartTime), clockParamPtr(sched.EndTime),
			).Scan(&sched.ID)
			if err != nil {
				return fmt.Errorf("failed to insert shift schedule: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return shift.Shift{}, err
	}
	return s, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, default_start, default_end,
		       late_tolerance_minutes, early_departure_tolerance_minutes,
		       created_at, updated_at
		FROM shifts
		WHERE id = $1
	`
	var s shift.Shift
	var start, end time.Time
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &start, &end,
		&s.LateToleranceMinutes, &s.EarlyDepartureToleranceMinutes,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}
	s.DefaultStart = timeOfDay(start)
	s.DefaultEnd = timeOfDay(end)

	schedules, err := r.schedulesForShifts(ctx, []string{s.ID})
	if err != nil {
		return shift.Shift{}, err
	}
	s.Schedules = schedules[s.ID]
	return s, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.Shift, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "TRUE"
	args := []interface{}{}
	argIdx := 1
	if filter.Name != nil && *filter.Name != "" {
		where = fmt.Sprintf("name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM shifts WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shifts: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit

	query := fmt.Sprintf(`
		SELECT id, name, default_start, default_end,
		       late_tolerance_minutes, early_departure_tolerance_minutes,
		       created_at, updated_at
		FROM shifts
		WHERE %s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	shifts, err := scanShifts(rows)
	if err != nil {
		return nil, 0, err
	}

	if err := r.attachSchedules(ctx, shifts); err != nil {
		return nil, 0, err
	}
	return shifts, total, nil
}

// GetAll implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetAll(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, default_start, default_end,
		       late_tolerance_minutes, early_departure_tolerance_minutes,
		       created_at, updated_at
		FROM shifts
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	shifts, err := scanShifts(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachSchedules(ctx, shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return shift.ErrShiftInUse
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return shift.ErrShiftNotFound
	}
	return nil
}

func scanShifts(rows pgx.Rows) ([]shift.Shift, error) {
	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		var start, end time.Time
		err := rows.Scan(
			&s.ID, &s.Name, &start, &end,
			&s.LateToleranceMinutes, &s.EarlyDepartureToleranceMinutes,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		s.DefaultStart = timeOfDay(start)
		s.DefaultEnd = timeOfDay(end)
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift rows: %w", err)
	}
	return shifts, nil
}

func (r *shiftRepositoryImpl) attachSchedules(ctx context.Context, shifts []shift.Shift) error {
	if len(shifts) == 0 {
		return nil
	}
	ids := make([]string, 0, len(shifts))
	for _, s := range shifts {
		ids = append(ids, s.ID)
	}
	schedules, err := r.schedulesForShifts(ctx, ids)
	if err != nil {
		return err
	}
	for i := range shifts {
		shifts[i].Schedules = schedules[shifts[i].ID]
	}
	return nil
}

func (r *shiftRepositoryImpl) schedulesForShifts(ctx context.Context, shiftIDs []string) (map[string][]shift.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, shift_id, day_of_week, is_off_day, is_half_day, start_time, end_time
		FROM shift_schedules
		WHERE shift_id = ANY($1)
		ORDER BY shift_id, day_of_week ASC
	`, shiftIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift schedules: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]shift.ShiftSchedule, len(shiftIDs))
	for rows.Next() {
		var sched shift.ShiftSchedule
		var start, end *time.Time
		err := rows.Scan(
			&sched.ID, &sched.ShiftID, &sched.DayOfWeek,
			&sched.IsOffDay, &sched.IsHalfDay, &start, &end,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift schedule: %w", err)
		}
		sched.StartTime = timeOfDayPtr(start)
		sched.EndTime = timeOfDayPtr(end)
		result[sched.ShiftID] = append(result[sched.ShiftID], sched)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift schedule rows: %w", err)
	}
	return result, nil
}
