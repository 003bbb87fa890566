package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/wekara-hr/attendance-engine/internal/domain/report"
	"github.com/wekara-hr/attendance-engine/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// GetExportRows implements report.ReportRepository.
func (r *reportRepositoryImpl) GetExportRows(ctx context.Context, employeeID *string, from, to time.Time) ([]report.ExportRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.full_name, e.employee_code, e.designation,
		       ar.record_date, ar.check_in_at, ar.check_out_at,
		       ar.worked_minutes, ar.status
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE ar.record_date >= $1 AND ar.record_date <= $2
		  AND ($3::uuid IS NULL OR ar.employee_id = $3)
		ORDER BY e.employee_code, ar.record_date ASC
	`
	rows, err := q.Query(ctx, query, from, to, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query export rows: %w", err)
	}
	defer rows.Close()

	var exportRows []report.ExportRow
	for rows.Next() {
		var row report.ExportRow
		err := rows.Scan(
			&row.EmployeeName, &row.EmployeeCode, &row.Designation,
			&row.Date, &row.CheckInAt, &row.CheckOutAt,
			&row.WorkedMinutes, &row.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan export row: %w", err)
		}
		exportRows = append(exportRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating export rows: %w", err)
	}
	return exportRows, nil
}
