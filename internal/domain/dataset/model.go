// Package dataset describes the static list documents that seed the database:
// the levels file, the challenge file and the changelog file.
package dataset

import (
	"strings"

	"github.com/riskibarqy/solblist-api/internal/domain/ranking"
)

// LevelRecord is one entry of the levels file. Victors are listed in completion order.
type LevelRecord struct {
	LevelID  string         `json:"levelId" yaml:"levelId"`
	Rank     int            `json:"rank" yaml:"rank"`
	Name     string         `json:"name" yaml:"name"`
	VideoURL string         `json:"videoUrl" yaml:"videoUrl"`
	Victors  []VictorRecord `json:"victors" yaml:"victors"`
}

type VictorRecord struct {
	Name           string `json:"name" yaml:"name"`
	CompletionURL  string `json:"completionUrl" yaml:"completionUrl"`
	CompletionDate string `json:"completionDate" yaml:"completionDate"`
}

// Valid reports whether the record carries the fields required to store it.
func (r LevelRecord) Valid() bool {
	return strings.TrimSpace(r.LevelID) != "" && strings.TrimSpace(r.Name) != ""
}

type ChallengeFile struct {
	CurrentChallenge *ChallengeRecord  `json:"currentChallenge" yaml:"currentChallenge"`
	Archive          []ChallengeRecord `json:"archive" yaml:"archive"`
}

type ChallengeRecord struct {
	ID          string   `json:"id" yaml:"id"`
	LevelName   string   `json:"levelName" yaml:"levelName"`
	Month       string   `json:"month" yaml:"month"`
	Description string   `json:"description" yaml:"description"`
	VideoURL    string   `json:"videoUrl" yaml:"videoUrl"`
	Creator     string   `json:"creator" yaml:"creator"`
	Difficulty  string   `json:"difficulty" yaml:"difficulty"`
	Victors     []string `json:"victors" yaml:"victors"`
}

type ChangelogFile struct {
	VersionChanges []VersionChange `json:"versionChanges" yaml:"versionChanges"`
	ListChanges    []ListChange    `json:"listChanges" yaml:"listChanges"`
}

type VersionChange struct {
	Version string   `json:"version" yaml:"version"`
	Date    string   `json:"date" yaml:"date"`
	Changes []string `json:"changes" yaml:"changes"`
}

type ListChange struct {
	Date    string   `json:"date" yaml:"date"`
	Changes []string `json:"changes" yaml:"changes"`
}

// PlayerNames returns the trimmed victor names across records, first occurrence first.
func PlayerNames(records []LevelRecord) []string {
	out := make([]string, 0)
	seen := make(map[string]struct{})
	for _, r := range records {
		for _, v := range r.Victors {
			name := strings.TrimSpace(v.Name)
			if name == "" {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

// Snapshot converts valid records into a normalized ranking snapshot.
func Snapshot(records []LevelRecord) []ranking.Level {
	levels := make([]ranking.Level, 0, len(records))
	for _, r := range records {
		if !r.Valid() {
			continue
		}
		lvl := ranking.Level{
			ID:       r.LevelID,
			Rank:     r.Rank,
			Name:     r.Name,
			VideoURL: r.VideoURL,
			Victors:  make([]ranking.Victor, 0, len(r.Victors)),
		}
		for _, v := range r.Victors {
			lvl.Victors = append(lvl.Victors, ranking.Victor{
				Name:           v.Name,
				CompletionURL:  v.CompletionURL,
				CompletionDate: v.CompletionDate,
			})
		}
		levels = append(levels, lvl)
	}
	return ranking.Normalize(levels)
}
