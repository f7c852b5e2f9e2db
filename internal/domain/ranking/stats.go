package ranking

import "sort"

// TopLimit caps the completions ranking in Stats.
const TopLimit = 10

// PlayerCount pairs a player with a counter value.
type PlayerCount struct {
	Name  string
	Count int
}

// Stats holds list-wide metrics computed over a snapshot.
type Stats struct {
	TotalLevels                int
	TotalCompletions           int
	TotalPointsAwarded         float64
	TotalPointsPossible        float64
	UniqueVictorCount          int
	MostActivePlayers          []string
	MaxCompletionCount         int
	MostFrequentFirstVictors   []string
	MaxFirstVictoryCount       int
	AverageCompletionsPerLevel float64
	TopByCompletions           []PlayerCount
}

type nameCounter struct {
	index map[string]int
	items []PlayerCount
}

func newNameCounter() *nameCounter {
	return &nameCounter{index: make(map[string]int)}
}

func (c *nameCounter) add(name string) {
	i, ok := c.index[name]
	if !ok {
		i = len(c.items)
		c.index[name] = i
		c.items = append(c.items, PlayerCount{Name: name})
	}
	c.items[i].Count++
}

// leaders returns every name tied at the maximum count, in first-seen order.
func (c *nameCounter) leaders() ([]string, int) {
	maxCount := 0
	for _, item := range c.items {
		if item.Count > maxCount {
			maxCount = item.Count
		}
	}

	out := make([]string, 0)
	if maxCount == 0 {
		return out, 0
	}
	for _, item := range c.items {
		if item.Count == maxCount {
			out = append(out, item.Name)
		}
	}
	return out, maxCount
}

// ComputeStats aggregates completions, points and first victories across every level.
func ComputeStats(levels []Level) Stats {
	completions := newNameCounter()
	firstVictories := newNameCounter()

	stats := Stats{TotalLevels: len(levels)}
	for _, lvl := range levels {
		points := Points(lvl.Rank)
		stats.TotalPointsPossible += points
		stats.TotalCompletions += len(lvl.Victors)

		for i, v := range lvl.Victors {
			completions.add(v.Name)
			stats.TotalPointsAwarded += points
			if i == 0 {
				firstVictories.add(v.Name)
			}
		}
	}

	stats.UniqueVictorCount = len(completions.items)
	stats.MostActivePlayers, stats.MaxCompletionCount = completions.leaders()
	stats.MostFrequentFirstVictors, stats.MaxFirstVictoryCount = firstVictories.leaders()
	if stats.TotalLevels > 0 {
		stats.AverageCompletionsPerLevel = float64(stats.TotalCompletions) / float64(stats.TotalLevels)
	}

	top := append([]PlayerCount(nil), completions.items...)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > TopLimit {
		top = top[:TopLimit]
	}
	if top == nil {
		top = make([]PlayerCount, 0)
	}
	stats.TopByCompletions = top

	return stats
}
