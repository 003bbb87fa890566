package shift

import "context"

// ShiftService manages shift configuration. Malformed configuration is
// rejected here so the classification engine only ever sees valid
// shifts.
type ShiftService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)

	GetShift(ctx context.Context, id string) (ShiftResponse, error)

	ListShifts(ctx context.Context, filter ShiftFilter) (ListShiftResponse, error)

	DeleteShift(ctx context.Context, id string) error
}
