package player

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrDuplicateName = errors.New("player name already exists")

// Player is a person who has beaten at least one level, or is about to.
type Player struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
