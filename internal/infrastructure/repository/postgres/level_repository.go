package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/solblist-api/internal/domain/level"
	qb "github.com/riskibarqy/solblist-api/internal/platform/querybuilder"
)

type LevelRepository struct {
	db *sqlx.DB
}

func NewLevelRepository(db *sqlx.DB) *LevelRepository {
	return &LevelRepository{db: db}
}

func (r *LevelRepository) List(ctx context.Context) ([]level.Level, error) {
	query, args, err := qb.Select(levelColumns...).From("levels").
		OrderBy("rank ASC", "name ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select levels query: %w", err)
	}

	var rows []levelTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select levels: %w", err)
	}

	out := make([]level.Level, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *LevelRepository) GetByID(ctx context.Context, id string) (level.Level, bool, error) {
	query, args, err := qb.Select(levelColumns...).From("levels").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return level.Level{}, false, fmt.Errorf("build get level by id query: %w", err)
	}

	var row levelTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return level.Level{}, false, nil
		}
		return level.Level{}, false, fmt.Errorf("get level by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *LevelRepository) Create(ctx context.Context, item level.Level) (level.Level, error) {
	insertModel := levelTableModel{
		ID:       strings.TrimSpace(item.ID),
		Rank:     item.Rank,
		Name:     strings.TrimSpace(item.Name),
		VideoURL: nullString(item.VideoURL),
	}
	query, args, err := qb.InsertModel("levels", insertModel, "RETURNING "+strings.Join(levelColumns, ", "))
	if err != nil {
		return level.Level{}, fmt.Errorf("build create level query: %w", err)
	}

	var row levelTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err) {
			return level.Level{}, fmt.Errorf("%w: %s", level.ErrDuplicateID, insertModel.ID)
		}
		return level.Level{}, fmt.Errorf("create level: %w", err)
	}

	return row.toDomain(), nil
}
