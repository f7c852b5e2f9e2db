package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/solblist-api/internal/domain/completion"
	"github.com/riskibarqy/solblist-api/internal/domain/level"
	"github.com/riskibarqy/solblist-api/internal/domain/player"
	"github.com/riskibarqy/solblist-api/internal/domain/ranking"
)

type LevelService struct {
	levelRepo      level.Repository
	playerRepo     player.Repository
	completionRepo completion.Repository
}

func NewLevelService(levelRepo level.Repository, playerRepo player.Repository, completionRepo completion.Repository) *LevelService {
	return &LevelService{
		levelRepo:      levelRepo,
		playerRepo:     playerRepo,
		completionRepo: completionRepo,
	}
}

type CreateLevelInput struct {
	ID       string
	Rank     int
	Name     string
	VideoURL string
}

// AddVictorInput identifies the player by PlayerID, or by PlayerName when the id is zero.
type AddVictorInput struct {
	PlayerID       int64
	PlayerName     string
	CompletionURL  string
	CompletionDate string
}

func (s *LevelService) List(ctx context.Context) (out []level.Level, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LevelService.List")
	defer func() { finishSpan(span, err) }()

	items, err := s.levelRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}

	return items, nil
}

func (s *LevelService) Get(ctx context.Context, id string) (out level.Level, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LevelService.Get")
	defer func() { finishSpan(span, err) }()

	id = strings.TrimSpace(id)
	if id == "" {
		return level.Level{}, fmt.Errorf("%w: level id is required", ErrInvalidInput)
	}

	item, exists, err := s.levelRepo.GetByID(ctx, id)
	if err != nil {
		return level.Level{}, fmt.Errorf("get level: %w", err)
	}
	if !exists {
		return level.Level{}, fmt.Errorf("%w: level=%s", ErrNotFound, id)
	}

	return item, nil
}

func (s *LevelService) Create(ctx context.Context, input CreateLevelInput) (out level.Level, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LevelService.Create")
	defer func() { finishSpan(span, err) }()

	item := level.Level{
		ID:       strings.TrimSpace(input.ID),
		Rank:     input.Rank,
		Name:     strings.TrimSpace(input.Name),
		VideoURL: strings.TrimSpace(input.VideoURL),
	}
	if err := item.Validate(); err != nil {
		return level.Level{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.levelRepo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, level.ErrDuplicateID) {
			return level.Level{}, fmt.Errorf("%w: level with id %s already exists", ErrConflict, item.ID)
		}
		return level.Level{}, fmt.Errorf("create level: %w", err)
	}

	return created, nil
}

func (s *LevelService) ListVictors(ctx context.Context, levelID string) (out []completion.Completion, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LevelService.ListVictors")
	defer func() { finishSpan(span, err) }()

	if _, err := s.Get(ctx, levelID); err != nil {
		return nil, err
	}

	items, err := s.completionRepo.ListByLevel(ctx, strings.TrimSpace(levelID))
	if err != nil {
		return nil, fmt.Errorf("list victors by level: %w", err)
	}

	return items, nil
}

func (s *LevelService) AddVictor(ctx context.Context, levelID string, input AddVictorInput) (out completion.Completion, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LevelService.AddVictor")
	defer func() { finishSpan(span, err) }()

	input.PlayerName = strings.TrimSpace(input.PlayerName)
	input.CompletionURL = strings.TrimSpace(input.CompletionURL)
	input.CompletionDate = strings.TrimSpace(input.CompletionDate)

	if input.PlayerID <= 0 && input.PlayerName == "" {
		return completion.Completion{}, fmt.Errorf("%w: either player id or player name must be provided", ErrInvalidInput)
	}
	if input.CompletionDate != "" {
		if _, ok := ranking.ParseCompletionDate(input.CompletionDate); !ok {
			return completion.Completion{}, fmt.Errorf("%w: completion date must be YYYY-MM-DD, got %q", ErrInvalidInput, input.CompletionDate)
		}
	}

	lvl, err := s.Get(ctx, levelID)
	if err != nil {
		return completion.Completion{}, err
	}

	p, err := s.resolvePlayer(ctx, input)
	if err != nil {
		return completion.Completion{}, err
	}

	exists, err := s.completionRepo.Exists(ctx, lvl.ID, p.ID)
	if err != nil {
		return completion.Completion{}, fmt.Errorf("check existing completion: %w", err)
	}
	if exists {
		return completion.Completion{}, fmt.Errorf("%w: player %s has already completed level %s", ErrConflict, p.Name, lvl.ID)
	}

	created, err := s.completionRepo.Create(ctx, completion.Completion{
		LevelID:        lvl.ID,
		PlayerID:       p.ID,
		PlayerName:     p.Name,
		LevelName:      lvl.Name,
		LevelRank:      lvl.Rank,
		CompletionURL:  input.CompletionURL,
		CompletionDate: input.CompletionDate,
	})
	if err != nil {
		if errors.Is(err, completion.ErrDuplicate) {
			return completion.Completion{}, fmt.Errorf("%w: player %s has already completed level %s", ErrConflict, p.Name, lvl.ID)
		}
		return completion.Completion{}, fmt.Errorf("create completion: %w", err)
	}

	return created, nil
}

func (s *LevelService) resolvePlayer(ctx context.Context, input AddVictorInput) (player.Player, error) {
	if input.PlayerID > 0 {
		p, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID)
		if err != nil {
			return player.Player{}, fmt.Errorf("get player: %w", err)
		}
		if !exists {
			return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, input.PlayerID)
		}
		return p, nil
	}

	p, exists, err := s.playerRepo.GetByName(ctx, input.PlayerName)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by name: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player name=%s", ErrNotFound, input.PlayerName)
	}
	return p, nil
}
