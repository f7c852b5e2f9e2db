package ranking

import "testing"

func TestSummarize(t *testing.T) {
	t.Parallel()

	levels := []Level{
		{Rank: 1, Name: "One", Victors: victors("A")},
		{Rank: 2, Name: "Two", Victors: victors("A", "B")},
		{Rank: 3, Name: "Three"},
		{Rank: LegacyRank, Name: "Old", Victors: victors("C")},
	}

	summary := Summarize(levels, BuildLeaderboard(levels))
	if summary.TotalLevels != 4 {
		t.Fatalf("unexpected total levels: %d", summary.TotalLevels)
	}
	wantPossible := Points(1) + Points(2) + Points(3)
	if !almostEqual(summary.TotalPossiblePoints, wantPossible) {
		t.Fatalf("unexpected possible points: got=%v want=%v", summary.TotalPossiblePoints, wantPossible)
	}
	if !almostEqual(summary.AveragePointsPerLevel, wantPossible/4) {
		t.Fatalf("unexpected average: %v", summary.AveragePointsPerLevel)
	}
	if summary.RankedPlayerCount != 2 {
		t.Fatalf("legacy-only players are not ranked: %d", summary.RankedPlayerCount)
	}
	if summary.HardestLevel == nil || summary.HardestLevel.Name != "One" {
		t.Fatalf("unexpected hardest level: %+v", summary.HardestLevel)
	}
	if summary.EasiestLevel == nil || summary.EasiestLevel.Name != "Three" {
		t.Fatalf("unexpected easiest level: %+v", summary.EasiestLevel)
	}
}

func TestSummarize_EasiestMatchesLevelCount(t *testing.T) {
	t.Parallel()

	levels := fullMainList()
	summary := Summarize(levels, nil)
	if summary.EasiestLevel == nil || summary.EasiestLevel.Rank != MainListSize {
		t.Fatalf("unexpected easiest level: %+v", summary.EasiestLevel)
	}
}

func TestSummarize_EasiestSkipsLegacyMatch(t *testing.T) {
	t.Parallel()

	levels := append(fullMainList(), Level{Rank: LegacyRank, Name: "Old"})
	summary := Summarize(levels, nil)
	if summary.EasiestLevel == nil || summary.EasiestLevel.Rank != MainListSize {
		t.Fatalf("easiest level must be on the main list, got %+v", summary.EasiestLevel)
	}
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	summary := Summarize(nil, nil)
	if summary.HardestLevel != nil || summary.EasiestLevel != nil || summary.AveragePointsPerLevel != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}

func TestYouTubeID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{url: "https://youtu.be/dQw4w9WgXcQ?t=10", want: "dQw4w9WgXcQ"},
		{url: "https://www.youtube.com/embed/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{url: "https://www.youtube.com/watch?v=short", want: ""},
		{url: "https://vimeo.com/12345", want: ""},
		{url: "", want: ""},
	}

	for _, tt := range tests {
		if got := YouTubeID(tt.url); got != tt.want {
			t.Fatalf("YouTubeID(%q)=%q want=%q", tt.url, got, tt.want)
		}
	}

	if got := ThumbnailURL("https://youtu.be/dQw4w9WgXcQ"); got != "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg" {
		t.Fatalf("unexpected thumbnail url: %s", got)
	}
}
