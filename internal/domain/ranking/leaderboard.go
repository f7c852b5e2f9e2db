package ranking

import "sort"

// LevelPoints is one level counted towards a leaderboard entry.
type LevelPoints struct {
	Rank   int
	Name   string
	Points float64
}

// LeaderboardEntry is a player's position in the points ranking.
type LeaderboardEntry struct {
	Position        int
	Name            string
	TotalPoints     float64
	CompletedLevels []LevelPoints
}

// BuildLeaderboard ranks every victor in the snapshot by total points in a single pass.
// Players with equal points keep the order in which they first appear in levels.
func BuildLeaderboard(levels []Level) []LeaderboardEntry {
	index := make(map[string]int)
	entries := make([]LeaderboardEntry, 0)

	for _, lvl := range levels {
		points := Points(lvl.Rank)
		for _, v := range lvl.Victors {
			i, ok := index[v.Name]
			if !ok {
				i = len(entries)
				index[v.Name] = i
				entries = append(entries, LeaderboardEntry{
					Name:            v.Name,
					CompletedLevels: make([]LevelPoints, 0, 1),
				})
			}
			entries[i].TotalPoints += points
			entries[i].CompletedLevels = append(entries[i].CompletedLevels, LevelPoints{
				Rank:   lvl.Rank,
				Name:   lvl.Name,
				Points: points,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})
	for i := range entries {
		entries[i].Position = i + 1
	}

	return entries
}

// RankedPlayerCount returns how many leaderboard entries hold a positive score.
func RankedPlayerCount(entries []LeaderboardEntry) int {
	total := 0
	for _, e := range entries {
		if e.TotalPoints > 0 {
			total++
		}
	}
	return total
}
