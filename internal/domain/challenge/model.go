package challenge

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrDuplicateID = errors.New("challenge id already exists")

type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusArchived
}

// Challenge is a monthly community challenge.
type Challenge struct {
	ID               string
	Name             string
	Month            string
	Description      string
	VideoURL         string
	CreatorName      string
	DifficultyRating string
	IsCurrent        bool
	Status           Status
	VictorNames      []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (c Challenge) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("challenge id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("challenge name is required")
	}
	if strings.TrimSpace(c.Month) == "" {
		return fmt.Errorf("challenge month is required")
	}
	if !c.Status.Valid() {
		return fmt.Errorf("invalid challenge status: %s", c.Status)
	}

	return nil
}

// HasVictor reports whether name already appears in the victor list.
func (c Challenge) HasVictor(name string) bool {
	for _, v := range c.VictorNames {
		if v == name {
			return true
		}
	}
	return false
}

// Patch holds the optional fields of a partial update.
type Patch struct {
	Name             *string
	Month            *string
	Description      *string
	VideoURL         *string
	CreatorName      *string
	DifficultyRating *string
	Status           *Status
	VictorNames      []string
}

// Apply returns a copy of c with the set fields of p applied.
func (p Patch) Apply(c Challenge) Challenge {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Month != nil {
		c.Month = *p.Month
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.VideoURL != nil {
		c.VideoURL = *p.VideoURL
	}
	if p.CreatorName != nil {
		c.CreatorName = *p.CreatorName
	}
	if p.DifficultyRating != nil {
		c.DifficultyRating = *p.DifficultyRating
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.VictorNames != nil {
		c.VictorNames = append([]string(nil), p.VictorNames...)
	}
	return c
}
