package ranking

import (
	"sort"
	"time"
)

// DateLayout is the calendar format of completion dates.
const DateLayout = "2006-01-02"

// TimelinePoint is a dated completion plotted on a player's history.
type TimelinePoint struct {
	Date      time.Time
	Rank      int
	LevelName string
	IsLegacy  bool
}

// ParseCompletionDate parses a YYYY-MM-DD completion date.
func ParseCompletionDate(raw string) (time.Time, bool) {
	if len(raw) != len(DateLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CompletionTimeline returns the dated completions of name in chronological order.
// Completions without a valid date are left out. Legacy ranks collapse to LegacyRank.
func CompletionTimeline(levels []Level, name string) []TimelinePoint {
	profile := AggregateForPlayer(levels, name)

	out := make([]TimelinePoint, 0, len(profile.Completions))
	for _, c := range profile.Completions {
		date, ok := ParseCompletionDate(c.CompletionDate)
		if !ok {
			continue
		}
		point := TimelinePoint{
			Date:      date,
			Rank:      c.Rank,
			LevelName: c.LevelName,
		}
		if IsLegacy(c.Rank) {
			point.Rank = LegacyRank
			point.IsLegacy = true
		}
		out = append(out, point)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Rank < out[j].Rank
	})
	return out
}
