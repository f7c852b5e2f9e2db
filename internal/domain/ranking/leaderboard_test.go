package ranking

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
)

func TestBuildLeaderboard_TwoLevels(t *testing.T) {
	t.Parallel()

	board := BuildLeaderboard(twoLevelSnapshot())
	if len(board) != 2 {
		t.Fatalf("unexpected leaderboard size: %d", len(board))
	}
	if board[0].Name != "A" || !almostEqual(board[0].TotalPoints, Points(1)+Points(2)) {
		t.Fatalf("unexpected first entry: %+v", board[0])
	}
	if board[1].Name != "B" || !almostEqual(board[1].TotalPoints, Points(2)) {
		t.Fatalf("unexpected second entry: %+v", board[1])
	}
	if board[0].Position != 1 || board[1].Position != 2 {
		t.Fatalf("unexpected positions: %d, %d", board[0].Position, board[1].Position)
	}
	if len(board[0].CompletedLevels) != 2 {
		t.Fatalf("unexpected completed levels for A: %+v", board[0].CompletedLevels)
	}
}

func TestBuildLeaderboard_TiesKeepFirstSeenOrder(t *testing.T) {
	t.Parallel()

	levels := []Level{
		{Rank: 3, Name: "Three", Victors: victors("Zed", "Amy")},
		{Rank: LegacyRank, Name: "Old", Victors: victors("Bob")},
		{Rank: LegacyRank, Name: "Older", Victors: victors("Cat")},
	}

	board := BuildLeaderboard(levels)
	want := []string{"Zed", "Amy", "Bob", "Cat"}
	if len(board) != len(want) {
		t.Fatalf("unexpected leaderboard size: %d", len(board))
	}
	for i, name := range want {
		if board[i].Name != name {
			t.Fatalf("position %d: got=%s want=%s", i+1, board[i].Name, name)
		}
	}
	if board[2].TotalPoints != 0 || len(board[2].CompletedLevels) != 1 {
		t.Fatalf("legacy-only player should be listed with zero points: %+v", board[2])
	}
	if RankedPlayerCount(board) != 2 {
		t.Fatalf("unexpected ranked player count: %d", RankedPlayerCount(board))
	}
}

func TestBuildLeaderboard_FullCompletionMatchesScoringSum(t *testing.T) {
	t.Parallel()

	levels := fullMainList("Completionist")
	levels = append(levels, Level{Rank: LegacyRank, Name: "Legacy", Victors: victors("Completionist")})

	expected := 0.0
	for rank := 1; rank <= MainListSize; rank++ {
		expected += Points(rank)
	}

	board := BuildLeaderboard(levels)
	if len(board) != 1 || !almostEqual(board[0].TotalPoints, expected) {
		t.Fatalf("unexpected full completion total: %+v want=%v", board, expected)
	}

	profile := AggregateForPlayer(levels, "Completionist")
	if !almostEqual(profile.TotalPoints, board[0].TotalPoints) {
		t.Fatalf("aggregate and leaderboard disagree: %v vs %v", profile.TotalPoints, board[0].TotalPoints)
	}
	if !almostEqual(profile.ProgressPercentage, 100) {
		t.Fatalf("expected full progress, got %v", profile.ProgressPercentage)
	}
}

func TestBuildLeaderboard_ConsistentWithAggregate(t *testing.T) {
	t.Parallel()

	faker := gofakeit.New(42)
	players := make([]string, 12)
	for i := range players {
		players[i] = faker.Username()
	}

	levels := make([]Level, 0, 20)
	for rank := 1; rank <= 20; rank++ {
		picked := make([]Victor, 0)
		seen := make(map[string]struct{})
		for _, name := range players {
			if _, dup := seen[name]; dup || !faker.Bool() {
				continue
			}
			seen[name] = struct{}{}
			picked = append(picked, Victor{Name: name})
		}
		levels = append(levels, Level{Rank: rank, Name: faker.Word(), Victors: picked})
	}

	board := BuildLeaderboard(levels)
	for i := 1; i < len(board); i++ {
		if board[i-1].TotalPoints < board[i].TotalPoints {
			t.Fatalf("leaderboard not sorted at %d: %v < %v", i, board[i-1].TotalPoints, board[i].TotalPoints)
		}
	}
	for _, entry := range board {
		profile := AggregateForPlayer(levels, entry.Name)
		if !almostEqual(profile.TotalPoints, entry.TotalPoints) {
			t.Fatalf("player %s: aggregate=%v leaderboard=%v", entry.Name, profile.TotalPoints, entry.TotalPoints)
		}
		if len(profile.Completions) != len(entry.CompletedLevels) {
			t.Fatalf("player %s: aggregate completions=%d leaderboard=%d", entry.Name, len(profile.Completions), len(entry.CompletedLevels))
		}
	}
}

func TestBuildLeaderboard_Empty(t *testing.T) {
	t.Parallel()

	if board := BuildLeaderboard(nil); len(board) != 0 {
		t.Fatalf("expected empty leaderboard, got %+v", board)
	}
}
