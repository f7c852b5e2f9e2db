package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/solblist-api/internal/domain/completion"
	"github.com/riskibarqy/solblist-api/internal/domain/player"
)

type PlayerService struct {
	playerRepo     player.Repository
	completionRepo completion.Repository
}

func NewPlayerService(playerRepo player.Repository, completionRepo completion.Repository) *PlayerService {
	return &PlayerService{
		playerRepo:     playerRepo,
		completionRepo: completionRepo,
	}
}

type CreatePlayerInput struct {
	Name string
}

func (s *PlayerService) List(ctx context.Context) (out []player.Player, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer func() { finishSpan(span, err) }()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

func (s *PlayerService) Get(ctx context.Context, id int64) (out player.Player, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer func() { finishSpan(span, err) }()

	if id <= 0 {
		return player.Player{}, fmt.Errorf("%w: invalid player id %d", ErrInvalidInput, id)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	return item, nil
}

func (s *PlayerService) GetByName(ctx context.Context, name string) (out player.Player, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByName")
	defer func() { finishSpan(span, err) }()

	name = strings.TrimSpace(name)
	if name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByName(ctx, name)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by name: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player name=%s", ErrNotFound, name)
	}

	return item, nil
}

func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (out player.Player, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer func() { finishSpan(span, err) }()

	item := player.Player{Name: strings.TrimSpace(input.Name)}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, player.ErrDuplicateName) {
			return player.Player{}, fmt.Errorf("%w: player with name %q already exists", ErrConflict, item.Name)
		}
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return created, nil
}

func (s *PlayerService) ListCompletions(ctx context.Context, id int64) (out []completion.Completion, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListCompletions")
	defer func() { finishSpan(span, err) }()

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	items, err := s.completionRepo.ListByPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list completions by player: %w", err)
	}

	return items, nil
}
