package challenge

import "context"

// Repository describes challenge persistence needs from use cases.
// Mutations on a missing id report false instead of an error.
type Repository interface {
	List(ctx context.Context) ([]Challenge, error)
	GetByID(ctx context.Context, id string) (Challenge, bool, error)
	Create(ctx context.Context, item Challenge) (Challenge, error)
	Update(ctx context.Context, item Challenge) (Challenge, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	// SetCurrent marks id as the current challenge and clears the flag everywhere else.
	SetCurrent(ctx context.Context, id string) (Challenge, bool, error)
	AddVictorName(ctx context.Context, id, name string) (Challenge, bool, error)
}
