package ranking

import "sort"

// Completion is a level completed by a single player.
type Completion struct {
	Rank           int
	LevelID        string
	LevelName      string
	Points         float64
	CompletionURL  string
	CompletionDate string
	IsFirstVictor  bool
}

// PlayerProfile is the per-player view derived from a snapshot.
type PlayerProfile struct {
	Name                    string
	Completions             []Completion
	TotalPoints             float64
	MainListCompletionCount int
	TotalMainListLevels     int
	ProgressPercentage      float64
}

// Found reports whether the player has at least one completion in the snapshot.
func (p PlayerProfile) Found() bool {
	return len(p.Completions) > 0
}

// HardestCompletion returns the lowest ranked completion, or nil when there is none.
func (p PlayerProfile) HardestCompletion() *Completion {
	if len(p.Completions) == 0 {
		return nil
	}
	hardest := p.Completions[0]
	return &hardest
}

// FirstVictoryCount returns how many of the completions were first victories.
func (p PlayerProfile) FirstVictoryCount() int {
	total := 0
	for _, c := range p.Completions {
		if c.IsFirstVictor {
			total++
		}
	}
	return total
}

// AggregateForPlayer collects the completions of name across levels.
// Matching is exact and case-sensitive. An unknown name yields an empty profile.
func AggregateForPlayer(levels []Level, name string) PlayerProfile {
	profile := PlayerProfile{
		Name:        name,
		Completions: make([]Completion, 0),
	}

	for _, lvl := range levels {
		if IsScoreable(lvl.Rank) {
			profile.TotalMainListLevels++
		}

		victor, ok := findVictor(lvl.Victors, name)
		if !ok {
			continue
		}

		first, _ := lvl.FirstVictor()
		completion := Completion{
			Rank:           lvl.Rank,
			LevelID:        lvl.ID,
			LevelName:      lvl.Name,
			Points:         Points(lvl.Rank),
			CompletionURL:  victor.CompletionURL,
			CompletionDate: victor.CompletionDate,
			IsFirstVictor:  first == name,
		}
		profile.Completions = append(profile.Completions, completion)
		profile.TotalPoints += completion.Points
		if IsScoreable(lvl.Rank) {
			profile.MainListCompletionCount++
		}
	}

	sort.SliceStable(profile.Completions, func(i, j int) bool {
		return profile.Completions[i].Rank < profile.Completions[j].Rank
	})

	if profile.TotalMainListLevels > 0 {
		profile.ProgressPercentage = float64(profile.MainListCompletionCount) / float64(profile.TotalMainListLevels) * 100
	}

	return profile
}

func findVictor(victors []Victor, name string) (Victor, bool) {
	for _, v := range victors {
		if v.Name == name {
			return v, true
		}
	}
	return Victor{}, false
}
