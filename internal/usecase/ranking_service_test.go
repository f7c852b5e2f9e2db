package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/solblist-api/internal/domain/completion"
	"github.com/riskibarqy/solblist-api/internal/domain/level"
	"github.com/riskibarqy/solblist-api/internal/domain/player"
	"github.com/riskibarqy/solblist-api/internal/domain/ranking"
	"github.com/riskibarqy/solblist-api/internal/infrastructure/repository/memory"
	completionmock "github.com/riskibarqy/solblist-api/internal/mocks/domain/completion"
	levelmock "github.com/riskibarqy/solblist-api/internal/mocks/domain/level"
	playermock "github.com/riskibarqy/solblist-api/internal/mocks/domain/player"
	"github.com/stretchr/testify/mock"
)

func newMemoryRankingService() *RankingService {
	levels := memory.NewLevelRepository(memory.SeedLevels())
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	completions := memory.NewCompletionRepository(levels, players, memory.SeedCompletions())
	return NewRankingService(levels, completions, players)
}

func TestRankingService_Snapshot_VictorsInRecordingOrder(t *testing.T) {
	t.Parallel()

	levels, err := newMemoryRankingService().Snapshot(t.Context())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(levels) != len(memory.SeedLevels()) {
		t.Fatalf("unexpected level count: %d", len(levels))
	}

	var solarFlare ranking.Level
	for _, l := range levels {
		if l.ID == "solar-flare" {
			solarFlare = l
		}
	}
	got := make([]string, 0, len(solarFlare.Victors))
	for _, v := range solarFlare.Victors {
		got = append(got, v.Name)
	}
	if diff := cmp.Diff([]string{"Blitz", "Aurora"}, got); diff != "" {
		t.Fatalf("unexpected victor order (-want +got):\n%s", diff)
	}
}

func TestRankingService_Leaderboard(t *testing.T) {
	t.Parallel()

	board, err := newMemoryRankingService().Leaderboard(t.Context())
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(board) == 0 || board[0].Name != "Aurora" {
		t.Fatalf("unexpected leader: %+v", board)
	}
	want := ranking.Points(1) + ranking.Points(2)
	if diff := board[0].TotalPoints - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("unexpected leader points: got=%v want=%v", board[0].TotalPoints, want)
	}
	last := board[len(board)-1]
	if last.Name != "Drift" || last.TotalPoints != 0 {
		t.Fatalf("legacy-only player should be last with zero points: %+v", last)
	}
}

func TestRankingService_Profile(t *testing.T) {
	t.Parallel()

	svc := newMemoryRankingService()
	profile, err := svc.Profile(t.Context(), "Comet")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.MainListCompletionCount != 2 {
		t.Fatalf("unexpected main list completions: %d", profile.MainListCompletionCount)
	}

	if _, err := svc.Profile(t.Context(), "Nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Profile(t.Context(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRankingService_Compare(t *testing.T) {
	t.Parallel()

	svc := newMemoryRankingService()
	got, err := svc.Compare(t.Context(), "Aurora", "Blitz")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if diff := cmp.Diff([]string{"Solar Flare"}, got.CommonLevelNames); diff != "" {
		t.Fatalf("unexpected common levels (-want +got):\n%s", diff)
	}

	_, err = svc.Compare(t.Context(), "Aurora", "Aurora")
	if !errors.Is(err, ErrInvalidInput) || !errors.Is(err, ranking.ErrSamePlayer) {
		t.Fatalf("expected ErrInvalidInput wrapping ErrSamePlayer, got %v", err)
	}
}

func TestRankingService_Timeline(t *testing.T) {
	t.Parallel()

	points, err := newMemoryRankingService().Timeline(t.Context(), "Aurora")
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(points) != 3 || points[0].LevelName != "First Light" || !points[0].IsLegacy {
		t.Fatalf("unexpected timeline: %+v", points)
	}
}

func TestRankingService_StatsAndSummary(t *testing.T) {
	t.Parallel()

	svc := newMemoryRankingService()
	stats, err := svc.Stats(t.Context())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalCompletions != len(memory.SeedCompletions()) {
		t.Fatalf("unexpected completion total: %d", stats.TotalCompletions)
	}

	summary, err := svc.Summary(t.Context())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.RankedPlayerCount != 3 {
		t.Fatalf("unexpected ranked players: %d", summary.RankedPlayerCount)
	}
	if summary.HardestLevel == nil || summary.HardestLevel.ID != "cosmic-cyclone" {
		t.Fatalf("unexpected hardest level: %+v", summary.HardestLevel)
	}
}

func TestRankingService_Snapshot_DependencyFailure(t *testing.T) {
	t.Parallel()

	levelRepo := levelmock.NewRepository(t)
	completionRepo := completionmock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)

	levelRepo.On("List", mock.Anything).Return(nil, errors.New("db down")).Maybe()
	completionRepo.On("ListAll", mock.Anything).Return([]completion.Completion{}, nil).Maybe()
	playerRepo.On("List", mock.Anything).Return([]player.Player{}, nil).Maybe()

	svc := NewRankingService(levelRepo, completionRepo, playerRepo)
	_, err := svc.Leaderboard(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestBuildSnapshot_UsesPlayerDirectoryAndDropsOrphans(t *testing.T) {
	t.Parallel()

	levels := []level.Level{{ID: "a", Rank: 1, Name: "A"}}
	completions := []completion.Completion{
		{ID: 1, LevelID: "a", PlayerID: 1, PlayerName: "stale"},
		{ID: 2, LevelID: "ghost", PlayerID: 2, PlayerName: "Ghost"},
		{ID: 3, LevelID: "a", PlayerID: 3, PlayerName: " Joined "},
	}
	players := []player.Player{{ID: 1, Name: "Fresh"}}

	got := buildSnapshot(levels, completions, players)
	want := []ranking.Level{{
		ID: "a", Rank: 1, Name: "A",
		Victors: []ranking.Victor{{Name: "Fresh"}, {Name: "Joined"}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected snapshot (-want +got):\n%s", diff)
	}
}
