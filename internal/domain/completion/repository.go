package completion

import "context"

// Repository describes completion persistence needs from use cases.
type Repository interface {
	// ListAll returns every completion in recording order.
	ListAll(ctx context.Context) ([]Completion, error)
	ListByLevel(ctx context.Context, levelID string) ([]Completion, error)
	ListByPlayer(ctx context.Context, playerID int64) ([]Completion, error)
	Exists(ctx context.Context, levelID string, playerID int64) (bool, error)
	Create(ctx context.Context, item Completion) (Completion, error)
}
