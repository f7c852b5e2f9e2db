package ranking

import "regexp"

// ListSummary is the quick overview shown next to the leaderboard.
type ListSummary struct {
	TotalLevels           int
	TotalPossiblePoints   float64
	AveragePointsPerLevel float64
	RankedPlayerCount     int
	HardestLevel          *Level
	EasiestLevel          *Level
}

// Summarize computes the list overview from a snapshot and its leaderboard.
func Summarize(levels []Level, leaderboard []LeaderboardEntry) ListSummary {
	summary := ListSummary{
		TotalLevels:       len(levels),
		RankedPlayerCount: RankedPlayerCount(leaderboard),
	}

	var hardest, easiest, lowestMain *Level
	for i := range levels {
		lvl := levels[i]
		summary.TotalPossiblePoints += Points(lvl.Rank)
		if lvl.Rank == 1 && hardest == nil {
			hardest = &lvl
		}
		if lvl.Rank == len(levels) && easiest == nil {
			easiest = &lvl
		}
		if IsScoreable(lvl.Rank) && (lowestMain == nil || lvl.Rank > lowestMain.Rank) {
			lowestMain = &lvl
		}
	}
	if easiest == nil || !IsScoreable(easiest.Rank) {
		easiest = lowestMain
	}

	summary.HardestLevel = hardest
	summary.EasiestLevel = easiest
	if summary.TotalLevels > 0 {
		summary.AveragePointsPerLevel = summary.TotalPossiblePoints / float64(summary.TotalLevels)
	}

	return summary
}

var youTubeIDPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// YouTubeID extracts the 11 character video id from a YouTube link.
func YouTubeID(url string) string {
	match := youTubeIDPattern.FindStringSubmatch(url)
	if len(match) < 3 || len(match[2]) != 11 {
		return ""
	}
	return match[2]
}

// ThumbnailURL returns the high quality thumbnail for a YouTube link, or "" when none applies.
func ThumbnailURL(url string) string {
	id := YouTubeID(url)
	if id == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}
