package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/wekara-hr/attendance-engine/internal/domain/employee"
	"github.com/wekara-hr/attendance-engine/internal/domain/shift"
	"github.com/wekara-hr/attendance-engine/internal/pkg/database"
)

// Service manages shift configuration and hands out immutable
// configuration snapshots for batch runs.
type Service interface {
	shift.ShiftService
	SnapshotLoader
}

// SnapshotLoader is the slice of the schedule service the
// classification batch depends on.
type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
}

type ScheduleServiceImpl struct {
	db *database.DB
	shift.ShiftRepository
	employee.EmployeeRepository
}

func NewScheduleService(
	db *database.DB,
	shiftRepo shift.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
) Service {
	return &ScheduleServiceImpl{
		db:                 db,
		ShiftRepository:    shiftRepo,
		EmployeeRepository: employeeRepo,
	}
}

// CreateShift implements shift.ShiftService.
func (s *ScheduleServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	newShift, err := req.ToShift()
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to convert shift request: %w", err)
	}

	// Configuration errors are rejected here, before anything can
	// reach the classifier.
	if err := newShift.ValidateConfig(); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.ShiftRepository.Create(ctx, newShift)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNameExists) {
			return shift.ShiftResponse{}, shift.ErrShiftNameExists
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return mapShiftToResponse(created), nil
}

// GetShift implements shift.ShiftService.
func (s *ScheduleServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	found, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return mapShiftToResponse(found), nil
}

// ListShifts implements shift.ShiftService.
func (s *ScheduleServiceImpl) ListShifts(ctx context.Context, filter shift.ShiftFilter) (shift.ListShiftResponse, error) {
	if err := filter.Validate(); err != nil {
		return shift.ListShiftResponse{}, err
	}

	shifts, total, err := s.ShiftRepository.List(ctx, filter)
	if err != nil {
		return shift.ListShiftResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, mapShiftToResponse(sh))
	}

	return shift.ListShiftResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Shifts:     responses,
	}, nil
}

// DeleteShift implements shift.ShiftService.
func (s *ScheduleServiceImpl) DeleteShift(ctx context.Context, id string) error {
	if err := s.ShiftRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ErrShiftNotFound
		}
		if errors.Is(err, shift.ErrShiftInUse) {
			return shift.ErrShiftInUse
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

// LoadSnapshot takes a consistent snapshot of shift configuration and
// employee bindings. Configuration is re-validated on the way in; a
// malformed shift aborts the batch before any classification runs.
func (s *ScheduleServiceImpl) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	shifts, err := s.ShiftRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift configuration: %w", err)
	}
	for _, sh := range shifts {
		if err := sh.ValidateConfig(); err != nil {
			return nil, fmt.Errorf("invalid shift configuration: %w", err)
		}
	}

	employees, err := s.EmployeeRepository.ListActiveScheduled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	return NewSnapshot(shifts, employees), nil
}

func mapShiftToResponse(sh shift.Shift) shift.ShiftResponse {
	schedules := make([]shift.ShiftScheduleResponse, 0, len(sh.Schedules))
	for _, sched := range sh.Schedules {
		row := shift.ShiftScheduleResponse{
			ID:        sched.ID,
			DayOfWeek: sched.DayOfWeek,
			IsOffDay:  sched.IsOffDay,
			IsHalfDay: sched.IsHalfDay,
		}
		if sched.StartTime != nil {
			v := sched.StartTime.String()
			row.StartTime = &v
		}
		if sched.EndTime != nil {
			v := sched.EndTime.String()
			row.EndTime = &v
		}
		schedules = append(schedules, row)
	}

	return shift.ShiftResponse{
		ID:                             sh.ID,
		Name:                           sh.Name,
		DefaultStart:                   sh.DefaultStart.String(),
		DefaultEnd:                     sh.DefaultEnd.String(),
		LateToleranceMinutes:           sh.LateToleranceMinutes,
		EarlyDepartureToleranceMinutes: sh.EarlyDepartureToleranceMinutes,
		Schedules:                      schedules,
		CreatedAt:                      sh.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:                      sh.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
