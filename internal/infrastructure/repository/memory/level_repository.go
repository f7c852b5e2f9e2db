package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/solblist-api/internal/domain/level"
)

type LevelRepository struct {
	mu   sync.RWMutex
	byID map[string]level.Level
}

func NewLevelRepository(levels []level.Level) *LevelRepository {
	byID := make(map[string]level.Level, len(levels))
	for _, l := range levels {
		byID[l.ID] = l
	}

	return &LevelRepository{byID: byID}
}

func (r *LevelRepository) List(_ context.Context) ([]level.Level, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]level.Level, 0, len(r.byID))
	for _, l := range r.byID {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (r *LevelRepository) GetByID(_ context.Context, id string) (level.Level, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	return l, ok, nil
}

func (r *LevelRepository) Create(_ context.Context, item level.Level) (level.Level, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[item.ID]; exists {
		return level.Level{}, fmt.Errorf("%w: %s", level.ErrDuplicateID, item.ID)
	}

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.byID[item.ID] = item

	return item, nil
}
