package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/wekara-hr/attendance-engine/internal/domain/employee"
	"github.com/wekara-hr/attendance-engine/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const scheduledEmployeeColumns = `
	e.id, e.employee_code, e.full_name, e.designation,
	e.department_id, e.shift_id, e.employment_status,
	e.created_at, e.updated_at, e.deleted_at,
	COALESCE(e.shift_id, d.default_shift_id) AS effective_shift_id
`

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, full_name, designation,
		       department_id, shift_id, employment_status,
		       created_at, updated_at, deleted_at
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL
	`
	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.EmployeeCode, &e.FullName, &e.Designation,
		&e.DepartmentID, &e.ShiftID, &e.EmploymentStatus,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// ListActiveScheduled implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActiveScheduled(ctx context.Context) ([]employee.ScheduledEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.employment_status = $1 AND e.deleted_at IS NULL
		ORDER BY e.employee_code ASC
	`, scheduledEmployeeColumns)

	rows, err := q.Query(ctx, query, employee.EmploymentStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.ScheduledEmployee
	for rows.Next() {
		e, err := scanScheduledEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}
	return employees, nil
}

// GetScheduled implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetScheduled(ctx context.Context, id string) (employee.ScheduledEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`, scheduledEmployeeColumns)

	row := q.QueryRow(ctx, query, id)
	e, err := scanScheduledEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ScheduledEmployee{}, employee.ErrEmployeeNotFound
		}
		return employee.ScheduledEmployee{}, err
	}
	return e, nil
}

func scanScheduledEmployee(row pgx.Row) (employee.ScheduledEmployee, error) {
	var e employee.ScheduledEmployee
	err := row.Scan(
		&e.ID, &e.EmployeeCode, &e.FullName, &e.Designation,
		&e.DepartmentID, &e.ShiftID, &e.EmploymentStatus,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
		&e.EffectiveShiftID,
	)
	if err != nil {
		return employee.ScheduledEmployee{}, fmt.Errorf("failed to scan employee: %w", err)
	}
	return e, nil
}
