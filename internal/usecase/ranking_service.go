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
	"github.com/sourcegraph/conc/pool"
)

// RankingService derives every ranked view from a fresh snapshot of the list.
type RankingService struct {
	levelRepo      level.Repository
	completionRepo completion.Repository
	playerRepo     player.Repository
}

func NewRankingService(levelRepo level.Repository, completionRepo completion.Repository, playerRepo player.Repository) *RankingService {
	return &RankingService{
		levelRepo:      levelRepo,
		completionRepo: completionRepo,
		playerRepo:     playerRepo,
	}
}

// Snapshot loads levels, completions and players concurrently and joins them.
// Victors keep recording order; completions on unknown levels are dropped.
func (s *RankingService) Snapshot(ctx context.Context) (out []ranking.Level, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Snapshot")
	defer func() { finishSpan(span, err) }()

	var (
		levels      []level.Level
		completions []completion.Completion
		players     []player.Player
	)

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.levelRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list levels: %w", err)
		}
		levels = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.completionRepo.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list completions: %w", err)
		}
		completions = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.playerRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		players = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("%w: load snapshot: %v", ErrDependencyUnavailable, err)
	}

	return buildSnapshot(levels, completions, players), nil
}

func buildSnapshot(levels []level.Level, completions []completion.Completion, players []player.Player) []ranking.Level {
	namesByID := make(map[int64]string, len(players))
	for _, p := range players {
		namesByID[p.ID] = p.Name
	}

	victorsByLevel := make(map[string][]ranking.Victor, len(levels))
	for _, c := range completions {
		name := namesByID[c.PlayerID]
		if name == "" {
			name = c.PlayerName
		}
		victorsByLevel[c.LevelID] = append(victorsByLevel[c.LevelID], ranking.Victor{
			Name:           name,
			CompletionURL:  c.CompletionURL,
			CompletionDate: c.CompletionDate,
		})
	}

	snapshot := make([]ranking.Level, 0, len(levels))
	for _, l := range levels {
		snapshot = append(snapshot, ranking.Level{
			ID:       l.ID,
			Rank:     l.Rank,
			Name:     l.Name,
			VideoURL: l.VideoURL,
			Victors:  victorsByLevel[l.ID],
		})
	}

	return ranking.Normalize(snapshot)
}

func (s *RankingService) List(ctx context.Context) ([]ranking.Level, error) {
	return s.Snapshot(ctx)
}

func (s *RankingService) Leaderboard(ctx context.Context) (out []ranking.LeaderboardEntry, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Leaderboard")
	defer func() { finishSpan(span, err) }()

	levels, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return ranking.BuildLeaderboard(levels), nil
}

func (s *RankingService) Summary(ctx context.Context) (out ranking.ListSummary, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Summary")
	defer func() { finishSpan(span, err) }()

	levels, err := s.Snapshot(ctx)
	if err != nil {
		return ranking.ListSummary{}, err
	}

	return ranking.Summarize(levels, ranking.BuildLeaderboard(levels)), nil
}

func (s *RankingService) Profile(ctx context.Context, name string) (out ranking.PlayerProfile, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Profile")
	defer func() { finishSpan(span, err) }()

	name = strings.TrimSpace(name)
	if name == "" {
		return ranking.PlayerProfile{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	levels, err := s.Snapshot(ctx)
	if err != nil {
		return ranking.PlayerProfile{}, err
	}

	profile := ranking.AggregateForPlayer(levels, name)
	if !profile.Found() {
		return ranking.PlayerProfile{}, fmt.Errorf("%w: no completions for player %s", ErrNotFound, name)
	}

	return profile, nil
}

func (s *RankingService) Timeline(ctx context.Context, name string) (out []ranking.TimelinePoint, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Timeline")
	defer func() { finishSpan(span, err) }()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	levels, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !ranking.AggregateForPlayer(levels, name).Found() {
		return nil, fmt.Errorf("%w: no completions for player %s", ErrNotFound, name)
	}

	return ranking.CompletionTimeline(levels, name), nil
}

func (s *RankingService) Compare(ctx context.Context, playerA, playerB string) (out ranking.Comparison, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Compare")
	defer func() { finishSpan(span, err) }()

	playerA = strings.TrimSpace(playerA)
	playerB = strings.TrimSpace(playerB)
	if playerA == "" || playerB == "" {
		return ranking.Comparison{}, fmt.Errorf("%w: two player names are required", ErrInvalidInput)
	}

	levels, err := s.Snapshot(ctx)
	if err != nil {
		return ranking.Comparison{}, err
	}

	comparison, err := ranking.Compare(levels, playerA, playerB)
	if err != nil {
		if errors.Is(err, ranking.ErrSamePlayer) {
			return ranking.Comparison{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return ranking.Comparison{}, fmt.Errorf("compare players: %w", err)
	}

	return comparison, nil
}

func (s *RankingService) PlayerNames(ctx context.Context) (out []string, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.PlayerNames")
	defer func() { finishSpan(span, err) }()

	levels, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return ranking.PlayerNames(levels), nil
}

func (s *RankingService) Stats(ctx context.Context) (out ranking.Stats, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Stats")
	defer func() { finishSpan(span, err) }()

	levels, err := s.Snapshot(ctx)
	if err != nil {
		return ranking.Stats{}, err
	}

	return ranking.ComputeStats(levels), nil
}
