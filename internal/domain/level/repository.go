package level

import "context"

// Repository describes level persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Level, error)
	GetByID(ctx context.Context, id string) (Level, bool, error)
	Create(ctx context.Context, item Level) (Level, error)
}
