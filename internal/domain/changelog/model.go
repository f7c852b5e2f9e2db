package changelog

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrDuplicateVersion = errors.New("changelog version already exists")

// VersionEntry describes the changes shipped with a site version.
type VersionEntry struct {
	ID        int64
	Version   string
	Date      string
	Items     []string
	CreatedAt time.Time
}

func (e VersionEntry) Validate() error {
	if strings.TrimSpace(e.Version) == "" {
		return fmt.Errorf("version is required")
	}
	if err := validateDate(e.Date); err != nil {
		return err
	}
	if len(e.Items) == 0 {
		return fmt.Errorf("description items are required")
	}

	return nil
}

// ListEntry describes a set of placement changes on the list.
type ListEntry struct {
	ID        int64
	Date      string
	Items     []string
	CreatedAt time.Time
}

func (e ListEntry) Validate() error {
	if err := validateDate(e.Date); err != nil {
		return err
	}
	if len(e.Items) == 0 {
		return fmt.Errorf("description items are required")
	}

	return nil
}

func validateDate(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse(time.DateOnly, raw); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD, got %q", raw)
	}
	return nil
}
