package postgres

import (
	"time"

	"github.com/riskibarqy/solblist-api/internal/domain/player"
)

type playerTableModel struct {
	ID        int64     `db:"id,readonly"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at,readonly"`
	UpdatedAt time.Time `db:"updated_at,readonly"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

var playerColumns = []string{"id", "name", "created_at", "updated_at"}
