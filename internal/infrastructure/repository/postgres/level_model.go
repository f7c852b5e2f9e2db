package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/solblist-api/internal/domain/level"
)

type levelTableModel struct {
	ID        string         `db:"id"`
	Rank      int            `db:"rank"`
	Name      string         `db:"name"`
	VideoURL  sql.NullString `db:"video_url"`
	CreatedAt time.Time      `db:"created_at,readonly"`
	UpdatedAt time.Time      `db:"updated_at,readonly"`
}

func (m levelTableModel) toDomain() level.Level {
	return level.Level{
		ID:        m.ID,
		Rank:      m.Rank,
		Name:      m.Name,
		VideoURL:  nullStringValue(m.VideoURL),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

var levelColumns = []string{"id", "rank", "name", "video_url", "created_at", "updated_at"}
