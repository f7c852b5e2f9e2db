package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/solblist-api/internal/domain/completion"
)

// CompletionRepository joins player and level names at read time, mirroring
// the SQL join of the postgres implementation.
type CompletionRepository struct {
	mu      sync.RWMutex
	nextID  int64
	items   []completion.Completion
	levels  *LevelRepository
	players *PlayerRepository
}

func NewCompletionRepository(levels *LevelRepository, players *PlayerRepository, items []completion.Completion) *CompletionRepository {
	r := &CompletionRepository{
		nextID:  1,
		items:   make([]completion.Completion, 0, len(items)),
		levels:  levels,
		players: players,
	}
	for _, c := range items {
		if c.ID == 0 {
			c.ID = r.nextID
		}
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
		r.items = append(r.items, c)
	}
	sort.SliceStable(r.items, func(i, j int) bool { return r.items[i].ID < r.items[j].ID })

	return r
}

func (r *CompletionRepository) ListAll(ctx context.Context) ([]completion.Completion, error) {
	return r.filter(ctx, func(completion.Completion) bool { return true }), nil
}

func (r *CompletionRepository) ListByLevel(ctx context.Context, levelID string) ([]completion.Completion, error) {
	out := r.filter(ctx, func(c completion.Completion) bool { return c.LevelID == levelID })
	sort.SliceStable(out, func(i, j int) bool {
		if less, decided := compareDates(out[i].CompletionDate, out[j].CompletionDate); decided {
			return less
		}
		return out[i].PlayerName < out[j].PlayerName
	})

	return out, nil
}

func (r *CompletionRepository) ListByPlayer(ctx context.Context, playerID int64) ([]completion.Completion, error) {
	out := r.filter(ctx, func(c completion.Completion) bool { return c.PlayerID == playerID })
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LevelRank != out[j].LevelRank {
			return out[i].LevelRank < out[j].LevelRank
		}
		less, _ := compareDates(out[i].CompletionDate, out[j].CompletionDate)
		return less
	})

	return out, nil
}

func (r *CompletionRepository) Exists(_ context.Context, levelID string, playerID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.items {
		if c.LevelID == levelID && c.PlayerID == playerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *CompletionRepository) Create(ctx context.Context, item completion.Completion) (completion.Completion, error) {
	if _, ok, _ := r.levels.GetByID(ctx, item.LevelID); !ok {
		return completion.Completion{}, fmt.Errorf("create completion: unknown level %s", item.LevelID)
	}
	if _, ok, _ := r.players.GetByID(ctx, item.PlayerID); !ok {
		return completion.Completion{}, fmt.Errorf("create completion: unknown player %d", item.PlayerID)
	}

	r.mu.Lock()
	for _, c := range r.items {
		if c.LevelID == item.LevelID && c.PlayerID == item.PlayerID {
			r.mu.Unlock()
			return completion.Completion{}, fmt.Errorf("%w: level=%s player=%d", completion.ErrDuplicate, item.LevelID, item.PlayerID)
		}
	}
	item.ID = r.nextID
	item.CreatedAt = time.Now().UTC()
	r.nextID++
	r.items = append(r.items, item)
	r.mu.Unlock()

	return r.join(ctx, item), nil
}

func (r *CompletionRepository) filter(ctx context.Context, keep func(completion.Completion) bool) []completion.Completion {
	r.mu.RLock()
	matched := make([]completion.Completion, 0, len(r.items))
	for _, c := range r.items {
		if keep(c) {
			matched = append(matched, c)
		}
	}
	r.mu.RUnlock()

	for i := range matched {
		matched[i] = r.join(ctx, matched[i])
	}
	return matched
}

func (r *CompletionRepository) join(ctx context.Context, c completion.Completion) completion.Completion {
	if p, ok, _ := r.players.GetByID(ctx, c.PlayerID); ok {
		c.PlayerName = p.Name
	}
	if l, ok, _ := r.levels.GetByID(ctx, c.LevelID); ok {
		c.LevelName = l.Name
		c.LevelRank = l.Rank
	}
	return c
}

// compareDates orders YYYY-MM-DD strings ascending with blanks last.
func compareDates(a, b string) (less bool, decided bool) {
	switch {
	case a == b:
		return false, false
	case a == "":
		return false, true
	case b == "":
		return true, true
	default:
		return a < b, true
	}
}
