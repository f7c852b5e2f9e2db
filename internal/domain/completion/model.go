package completion

import (
	"errors"
	"time"
)

var ErrDuplicate = errors.New("completion already recorded")

// Completion records that a player has beaten a level.
// PlayerName, LevelName and LevelRank are read-side joins and are ignored on create.
type Completion struct {
	ID             int64
	LevelID        string
	PlayerID       int64
	PlayerName     string
	LevelName      string
	LevelRank      int
	CompletionURL  string
	CompletionDate string
	CreatedAt      time.Time
}
