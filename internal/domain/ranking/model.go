package ranking

import (
	"errors"
	"strings"
)

var ErrSamePlayer = errors.New("cannot compare a player with themselves")

// Level is one entry of the list snapshot together with its victors in completion order.
type Level struct {
	ID       string
	Rank     int
	Name     string
	VideoURL string
	Victors  []Victor
}

// Victor is a single completion recorded on a level.
type Victor struct {
	Name           string
	CompletionURL  string
	CompletionDate string
}

// FirstVictor returns the name of the first player to complete the level.
func (l Level) FirstVictor() (string, bool) {
	if len(l.Victors) == 0 {
		return "", false
	}
	return l.Victors[0].Name, true
}

// Normalize trims names and links across a snapshot and returns a copy.
// Victors with an empty name after trimming are dropped, and a name repeated within a level keeps
// only its first entry.
func Normalize(levels []Level) []Level {
	out := make([]Level, 0, len(levels))
	for _, lvl := range levels {
		normalized := Level{
			ID:       strings.TrimSpace(lvl.ID),
			Rank:     lvl.Rank,
			Name:     strings.TrimSpace(lvl.Name),
			VideoURL: strings.TrimSpace(lvl.VideoURL),
			Victors:  make([]Victor, 0, len(lvl.Victors)),
		}
		seen := make(map[string]struct{}, len(lvl.Victors))
		for _, v := range lvl.Victors {
			name := strings.TrimSpace(v.Name)
			if name == "" {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			normalized.Victors = append(normalized.Victors, Victor{
				Name:           name,
				CompletionURL:  strings.TrimSpace(v.CompletionURL),
				CompletionDate: strings.TrimSpace(v.CompletionDate),
			})
		}
		out = append(out, normalized)
	}

	return out
}

// CountMainList returns how many levels in the snapshot are on the main list.
func CountMainList(levels []Level) int {
	total := 0
	for _, lvl := range levels {
		if IsScoreable(lvl.Rank) {
			total++
		}
	}
	return total
}
