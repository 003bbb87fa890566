package shift

import "context"

type ShiftRepository interface {
	// Create persists a shift together with its schedule rows.
	Create(ctx context.Context, s Shift) (Shift, error)

	GetByID(ctx context.Context, id string) (Shift, error)

	List(ctx context.Context, filter ShiftFilter) ([]Shift, int64, error)

	// GetAll loads every shift with its schedules. Used to take the
	// immutable configuration snapshot at the start of a batch run.
	GetAll(ctx context.Context) ([]Shift, error)

	Delete(ctx context.Context, id string) error
}
