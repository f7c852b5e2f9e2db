package postgres

import (
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/solblist-api/internal/domain/challenge"
)

type challengeTableModel struct {
	ID               string         `db:"id"`
	Name             string         `db:"name"`
	Month            string         `db:"month"`
	Description      string         `db:"description"`
	VideoURL         string         `db:"video_url"`
	CreatorName      string         `db:"creator_name"`
	DifficultyRating string         `db:"difficulty_rating"`
	IsCurrent        bool           `db:"is_current"`
	Status           string         `db:"status"`
	VictorNames      pq.StringArray `db:"victor_names"`
	CreatedAt        time.Time      `db:"created_at,readonly"`
	UpdatedAt        time.Time      `db:"updated_at,readonly"`
}

func challengeModelFromDomain(item challenge.Challenge) challengeTableModel {
	return challengeTableModel{
		ID:               item.ID,
		Name:             item.Name,
		Month:            item.Month,
		Description:      item.Description,
		VideoURL:         item.VideoURL,
		CreatorName:      item.CreatorName,
		DifficultyRating: item.DifficultyRating,
		IsCurrent:        item.IsCurrent,
		Status:           string(item.Status),
		VictorNames:      stringArray(item.VictorNames),
	}
}

func (m challengeTableModel) toDomain() challenge.Challenge {
	return challenge.Challenge{
		ID:               m.ID,
		Name:             m.Name,
		Month:            m.Month,
		Description:      m.Description,
		VideoURL:         m.VideoURL,
		CreatorName:      m.CreatorName,
		DifficultyRating: m.DifficultyRating,
		IsCurrent:        m.IsCurrent,
		Status:           challenge.Status(m.Status),
		VictorNames:      copyStrings(m.VictorNames),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

var challengeColumns = []string{
	"id", "name", "month", "description", "video_url", "creator_name",
	"difficulty_rating", "is_current", "status", "victor_names", "created_at", "updated_at",
}
