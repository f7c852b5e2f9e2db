package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/solblist-api/internal/domain/completion"
)

type completionInsertModel struct {
	LevelID        string         `db:"level_id"`
	PlayerID       int64          `db:"player_id"`
	CompletionURL  sql.NullString `db:"completion_url"`
	CompletionDate sql.NullString `db:"completion_date"`
}

type completionRowModel struct {
	ID             int64          `db:"id"`
	LevelID        string         `db:"level_id"`
	PlayerID       int64          `db:"player_id"`
	PlayerName     string         `db:"player_name"`
	LevelName      string         `db:"level_name"`
	LevelRank      int            `db:"level_rank"`
	CompletionURL  sql.NullString `db:"completion_url"`
	CompletionDate sql.NullString `db:"completion_date"`
	CreatedAt      time.Time      `db:"created_at"`
}

func (m completionRowModel) toDomain() completion.Completion {
	return completion.Completion{
		ID:             m.ID,
		LevelID:        m.LevelID,
		PlayerID:       m.PlayerID,
		PlayerName:     m.PlayerName,
		LevelName:      m.LevelName,
		LevelRank:      m.LevelRank,
		CompletionURL:  nullStringValue(m.CompletionURL),
		CompletionDate: nullStringValue(m.CompletionDate),
		CreatedAt:      m.CreatedAt,
	}
}

var completionJoinedColumns = []string{
	"c.id",
	"c.level_id",
	"c.player_id",
	"p.name AS player_name",
	"l.name AS level_name",
	"l.rank AS level_rank",
	"c.completion_url",
	"to_char(c.completion_date, 'YYYY-MM-DD') AS completion_date",
	"c.created_at",
}
