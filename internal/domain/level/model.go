package level

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrDuplicateID = errors.New("level id already exists")

// Level is a ranked entry on the list.
type Level struct {
	ID        string
	Rank      int
	Name      string
	VideoURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l Level) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("level id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("level name is required")
	}
	if l.Rank < 1 {
		return fmt.Errorf("level rank must be >= 1")
	}

	return nil
}
