package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/solblist-api/internal/domain/completion"
	"github.com/riskibarqy/solblist-api/internal/domain/level"
	"github.com/riskibarqy/solblist-api/internal/domain/player"
	basecache "github.com/riskibarqy/solblist-api/internal/platform/cache"
)

const (
	playerKeyPrefix     = "player:"
	levelKeyPrefix      = "level:"
	completionKeyPrefix = "completion:"
)

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, playerKeyPrefix+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	key := playerKeyPrefix + "id:" + strconv.FormatInt(id, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedPlayer{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayer)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) GetByName(ctx context.Context, name string) (player.Player, bool, error) {
	key := playerKeyPrefix + "name:" + name
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		return cachedPlayer{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayer)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return player.Player{}, err
	}

	r.cache.DeletePrefix(ctx, playerKeyPrefix)
	return created, nil
}

type cachedPlayer struct {
	value  player.Player
	exists bool
}

type LevelRepository struct {
	next  level.Repository
	cache *basecache.Store
}

func NewLevelRepository(next level.Repository, cache *basecache.Store) *LevelRepository {
	return &LevelRepository{next: next, cache: cache}
}

func (r *LevelRepository) List(ctx context.Context) ([]level.Level, error) {
	v, err := r.cache.GetOrLoad(ctx, levelKeyPrefix+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]level.Level(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]level.Level)
	return append([]level.Level(nil), items...), nil
}

func (r *LevelRepository) GetByID(ctx context.Context, id string) (level.Level, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, levelKeyPrefix+"id:"+id, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedLevel{value: item, exists: exists}, nil
	})
	if err != nil {
		return level.Level{}, false, err
	}

	cached, _ := v.(cachedLevel)
	return cached.value, cached.exists, nil
}

func (r *LevelRepository) Create(ctx context.Context, item level.Level) (level.Level, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return level.Level{}, err
	}

	r.cache.DeletePrefix(ctx, levelKeyPrefix)
	return created, nil
}

type cachedLevel struct {
	value  level.Level
	exists bool
}

// CompletionRepository caches reads; Exists always goes to the underlying store
// because it guards writes.
type CompletionRepository struct {
	next  completion.Repository
	cache *basecache.Store
}

func NewCompletionRepository(next completion.Repository, cache *basecache.Store) *CompletionRepository {
	return &CompletionRepository{next: next, cache: cache}
}

func (r *CompletionRepository) ListAll(ctx context.Context) ([]completion.Completion, error) {
	return r.list(ctx, completionKeyPrefix+"all", r.next.ListAll)
}

func (r *CompletionRepository) ListByLevel(ctx context.Context, levelID string) ([]completion.Completion, error) {
	return r.list(ctx, completionKeyPrefix+"level:"+levelID, func(ctx context.Context) ([]completion.Completion, error) {
		return r.next.ListByLevel(ctx, levelID)
	})
}

func (r *CompletionRepository) ListByPlayer(ctx context.Context, playerID int64) ([]completion.Completion, error) {
	key := completionKeyPrefix + "player:" + strconv.FormatInt(playerID, 10)
	return r.list(ctx, key, func(ctx context.Context) ([]completion.Completion, error) {
		return r.next.ListByPlayer(ctx, playerID)
	})
}

func (r *CompletionRepository) Exists(ctx context.Context, levelID string, playerID int64) (bool, error) {
	return r.next.Exists(ctx, levelID, playerID)
}

func (r *CompletionRepository) Create(ctx context.Context, item completion.Completion) (completion.Completion, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return completion.Completion{}, err
	}

	r.cache.DeletePrefix(ctx, completionKeyPrefix)
	return created, nil
}

func (r *CompletionRepository) list(ctx context.Context, key string, load func(context.Context) ([]completion.Completion, error)) ([]completion.Completion, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]completion.Completion(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]completion.Completion)
	return append([]completion.Completion(nil), items...), nil
}
