package ranking

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAggregateForPlayer_TwoLevels(t *testing.T) {
	t.Parallel()

	levels := twoLevelSnapshot()

	a := AggregateForPlayer(levels, "A")
	if !almostEqual(a.TotalPoints, Points(1)+Points(2)) {
		t.Fatalf("unexpected total for A: got=%v want=%v", a.TotalPoints, Points(1)+Points(2))
	}
	if len(a.Completions) != 2 {
		t.Fatalf("unexpected completion count for A: %d", len(a.Completions))
	}
	if a.Completions[0].Rank != 1 || a.Completions[1].Rank != 2 {
		t.Fatalf("completions not sorted by rank: %+v", a.Completions)
	}
	if !a.Completions[0].IsFirstVictor || !a.Completions[1].IsFirstVictor {
		t.Fatalf("expected A to be first victor on both levels: %+v", a.Completions)
	}

	b := AggregateForPlayer(levels, "B")
	if !almostEqual(b.TotalPoints, Points(2)) {
		t.Fatalf("unexpected total for B: got=%v want=%v", b.TotalPoints, Points(2))
	}
	if b.Completions[0].IsFirstVictor {
		t.Fatalf("B is not the first victor of %s", b.Completions[0].LevelName)
	}
	if hardest := b.HardestCompletion(); hardest == nil || hardest.Rank != 2 {
		t.Fatalf("unexpected hardest completion for B: %+v", hardest)
	}
}

func TestAggregateForPlayer_SortsByRank(t *testing.T) {
	t.Parallel()

	levels := []Level{
		{Rank: 9, Name: "Nine", Victors: victors("A")},
		{Rank: LegacyRank, Name: "Old", Victors: victors("A")},
		{Rank: 3, Name: "Three", Victors: victors("A")},
	}

	profile := AggregateForPlayer(levels, "A")
	got := make([]int, 0, len(profile.Completions))
	for _, c := range profile.Completions {
		got = append(got, c.Rank)
	}
	if diff := cmp.Diff([]int{3, 9, LegacyRank}, got); diff != "" {
		t.Fatalf("unexpected rank order (-want +got):\n%s", diff)
	}
	if hardest := profile.HardestCompletion(); hardest == nil || hardest.LevelName != "Three" {
		t.Fatalf("unexpected hardest completion: %+v", hardest)
	}
}

func TestAggregateForPlayer_LegacyAndProgress(t *testing.T) {
	t.Parallel()

	levels := []Level{
		{Rank: 1, Name: "One", Victors: victors("A")},
		{Rank: 2, Name: "Two", Victors: victors("B")},
		{Rank: 3, Name: "Three", Victors: victors("B")},
		{Rank: 4, Name: "Four", Victors: victors("B")},
		{Rank: LegacyRank, Name: "Legacy", Victors: victors("A")},
	}

	profile := AggregateForPlayer(levels, "A")
	if !almostEqual(profile.TotalPoints, Points(1)) {
		t.Fatalf("legacy completion must not add points: got=%v", profile.TotalPoints)
	}
	if len(profile.Completions) != 2 {
		t.Fatalf("legacy completion must still be listed: %d", len(profile.Completions))
	}
	if profile.Completions[1].Points != 0 {
		t.Fatalf("legacy completion points: %v", profile.Completions[1].Points)
	}
	if profile.MainListCompletionCount != 1 {
		t.Fatalf("unexpected main list count: %d", profile.MainListCompletionCount)
	}
	if profile.TotalMainListLevels != 4 {
		t.Fatalf("unexpected main list size: %d", profile.TotalMainListLevels)
	}
	if !almostEqual(profile.ProgressPercentage, 25) {
		t.Fatalf("unexpected progress: %v", profile.ProgressPercentage)
	}
}

func TestAggregateForPlayer_UnknownPlayer(t *testing.T) {
	t.Parallel()

	profile := AggregateForPlayer(twoLevelSnapshot(), "Nobody")
	if profile.Found() {
		t.Fatalf("expected unknown player to be not found")
	}
	if profile.TotalPoints != 0 || len(profile.Completions) != 0 {
		t.Fatalf("expected empty profile, got %+v", profile)
	}
	if profile.HardestCompletion() != nil {
		t.Fatalf("expected no hardest completion")
	}
	if profile.TotalMainListLevels != 2 {
		t.Fatalf("main list size should not depend on the player: %d", profile.TotalMainListLevels)
	}
}

func TestAggregateForPlayer_CaseSensitiveNames(t *testing.T) {
	t.Parallel()

	if AggregateForPlayer(twoLevelSnapshot(), "a").Found() {
		t.Fatalf("expected lookup to be case-sensitive")
	}
}

func TestAggregateForPlayer_EmptySnapshot(t *testing.T) {
	t.Parallel()

	profile := AggregateForPlayer(nil, "A")
	if profile.ProgressPercentage != 0 || profile.TotalMainListLevels != 0 {
		t.Fatalf("expected zero progress on empty snapshot: %+v", profile)
	}
}

func TestAggregateForPlayer_IdempotentAndPure(t *testing.T) {
	t.Parallel()

	levels := []Level{
		{Rank: 5, Name: "Five", Victors: victors("B", "A")},
		{Rank: 2, Name: "Two", Victors: victors("A")},
	}
	before := []Level{
		{Rank: 5, Name: "Five", Victors: victors("B", "A")},
		{Rank: 2, Name: "Two", Victors: victors("A")},
	}

	first := AggregateForPlayer(levels, "A")
	second := AggregateForPlayer(levels, "A")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("aggregate is not idempotent (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(before, levels); diff != "" {
		t.Fatalf("aggregate mutated its input (-before +after):\n%s", diff)
	}
}

func TestNormalize_TrimsAndDropsBlankVictors(t *testing.T) {
	t.Parallel()

	levels := []Level{{
		ID:   " lvl ",
		Rank: 1,
		Name: " Name ",
		Victors: []Victor{
			{Name: "  A "},
			{Name: "   "},
			{Name: "B", CompletionDate: " 2024-01-02 "},
			{Name: " A", CompletionDate: "2024-05-05"},
		},
	}}

	got := Normalize(levels)
	want := []Level{{
		ID:   "lvl",
		Rank: 1,
		Name: "Name",
		Victors: []Victor{
			{Name: "A"},
			{Name: "B", CompletionDate: "2024-01-02"},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected normalized snapshot (-want +got):\n%s", diff)
	}
	if levels[0].Victors[0].Name != "  A " {
		t.Fatalf("normalize must not mutate the input")
	}
}

func TestNormalize_PaddedDuplicateKeepsLeaderboardAndAggregateInAgreement(t *testing.T) {
	t.Parallel()

	levels := Normalize([]Level{{Rank: 1, Name: "One", Victors: victors("A", " A", "B")}})
	if diff := cmp.Diff([]Victor{{Name: "A"}, {Name: "B"}}, levels[0].Victors); diff != "" {
		t.Fatalf("unexpected victors (-want +got):\n%s", diff)
	}

	board := BuildLeaderboard(levels)
	profile := AggregateForPlayer(levels, "A")
	if len(board) != 2 || board[0].Name != "A" {
		t.Fatalf("unexpected leaderboard: %+v", board)
	}
	if !almostEqual(board[0].TotalPoints, Points(1)) || !almostEqual(profile.TotalPoints, board[0].TotalPoints) {
		t.Fatalf("leaderboard=%v aggregate=%v want=%v", board[0].TotalPoints, profile.TotalPoints, Points(1))
	}
	if len(board[0].CompletedLevels) != 1 {
		t.Fatalf("level counted more than once: %+v", board[0].CompletedLevels)
	}
}
