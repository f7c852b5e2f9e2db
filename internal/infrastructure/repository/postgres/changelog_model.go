package postgres

import (
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/solblist-api/internal/domain/changelog"
)

type versionChangelogTableModel struct {
	ID        int64          `db:"id,readonly"`
	Version   string         `db:"version"`
	Date      string         `db:"date"`
	Items     pq.StringArray `db:"description_items"`
	CreatedAt time.Time      `db:"created_at,readonly"`
}

func (m versionChangelogTableModel) toDomain() changelog.VersionEntry {
	return changelog.VersionEntry{
		ID:        m.ID,
		Version:   m.Version,
		Date:      m.Date,
		Items:     copyStrings(m.Items),
		CreatedAt: m.CreatedAt,
	}
}

type listChangelogTableModel struct {
	ID        int64          `db:"id,readonly"`
	Date      string         `db:"date"`
	Items     pq.StringArray `db:"description_items"`
	CreatedAt time.Time      `db:"created_at,readonly"`
}

func (m listChangelogTableModel) toDomain() changelog.ListEntry {
	return changelog.ListEntry{
		ID:        m.ID,
		Date:      m.Date,
		Items:     copyStrings(m.Items),
		CreatedAt: m.CreatedAt,
	}
}

const changelogDateColumn = "to_char(date, 'YYYY-MM-DD') AS date"

var (
	versionChangelogColumns = []string{"id", "version", changelogDateColumn, "description_items", "created_at"}
	listChangelogColumns    = []string{"id", changelogDateColumn, "description_items", "created_at"}
)
