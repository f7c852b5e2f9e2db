package ranking

import "strconv"

func victors(names ...string) []Victor {
	out := make([]Victor, 0, len(names))
	for _, name := range names {
		out = append(out, Victor{Name: name})
	}
	return out
}

func twoLevelSnapshot() []Level {
	return []Level{
		{ID: "lvl-1", Rank: 1, Name: "Sonic Wave", Victors: victors("A")},
		{ID: "lvl-2", Rank: 2, Name: "Tartarus", Victors: victors("A", "B")},
	}
}

func fullMainList(victorNames ...string) []Level {
	out := make([]Level, 0, MainListSize)
	for rank := 1; rank <= MainListSize; rank++ {
		out = append(out, Level{
			ID:      "lvl-" + strconv.Itoa(rank),
			Rank:    rank,
			Name:    "Level " + strconv.Itoa(rank),
			Victors: victors(victorNames...),
		})
	}
	return out
}
