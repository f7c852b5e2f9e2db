package ranking

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparison is the side by side view of two players.
// Completion counts include legacy levels, unlike the main list progress of a profile.
type Comparison struct {
	PlayerA          string
	PlayerB          string
	PointsA          float64
	PointsB          float64
	CompletionCountA int
	CompletionCountB int
	PointsDelta      float64
	CompletionDelta  int
	CommonLevelNames []string
	OnlyA            []string
	OnlyB            []string
	CompletionsA     []Completion
	CompletionsB     []Completion
}

// Compare builds the comparison of a and b. Comparing a player with themselves returns ErrSamePlayer.
func Compare(levels []Level, a, b string) (Comparison, error) {
	if a == b {
		return Comparison{}, ErrSamePlayer
	}

	profileA := AggregateForPlayer(levels, a)
	profileB := AggregateForPlayer(levels, b)

	namesA := levelNameSet(profileA.Completions)
	namesB := levelNameSet(profileB.Completions)

	out := Comparison{
		PlayerA:          a,
		PlayerB:          b,
		PointsA:          profileA.TotalPoints,
		PointsB:          profileB.TotalPoints,
		CompletionCountA: len(profileA.Completions),
		CompletionCountB: len(profileB.Completions),
		CommonLevelNames: make([]string, 0),
		OnlyA:            make([]string, 0),
		OnlyB:            make([]string, 0),
		CompletionsA:     profileA.Completions,
		CompletionsB:     profileB.Completions,
	}
	out.PointsDelta = out.PointsA - out.PointsB
	out.CompletionDelta = out.CompletionCountA - out.CompletionCountB

	seen := make(map[string]struct{}, len(profileA.Completions))
	for _, c := range profileA.Completions {
		if _, dup := seen[c.LevelName]; dup {
			continue
		}
		seen[c.LevelName] = struct{}{}
		if _, shared := namesB[c.LevelName]; shared {
			out.CommonLevelNames = append(out.CommonLevelNames, c.LevelName)
			continue
		}
		out.OnlyA = append(out.OnlyA, c.LevelName)
	}
	seen = make(map[string]struct{}, len(profileB.Completions))
	for _, c := range profileB.Completions {
		if _, dup := seen[c.LevelName]; dup {
			continue
		}
		seen[c.LevelName] = struct{}{}
		if _, shared := namesA[c.LevelName]; !shared {
			out.OnlyB = append(out.OnlyB, c.LevelName)
		}
	}

	return out, nil
}

// PlayerNames returns every distinct victor name in locale order, ignoring case.
// Names that collate equal fall back to byte order.
func PlayerNames(levels []Level) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, lvl := range levels {
		for _, v := range lvl.Victors {
			if _, ok := seen[v.Name]; ok {
				continue
			}
			seen[v.Name] = struct{}{}
			out = append(out, v.Name)
		}
	}

	names := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		if c := names.CompareString(out[i], out[j]); c != 0 {
			return c < 0
		}
		return out[i] < out[j]
	})
	return out
}

func levelNameSet(completions []Completion) map[string]struct{} {
	out := make(map[string]struct{}, len(completions))
	for _, c := range completions {
		out[c.LevelName] = struct{}{}
	}
	return out
}
