package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/solblist-api/internal/domain/completion"
	qb "github.com/riskibarqy/solblist-api/internal/platform/querybuilder"
)

type CompletionRepository struct {
	db *sqlx.DB
}

func NewCompletionRepository(db *sqlx.DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

func selectCompletions() *qb.SelectBuilder {
	return qb.Select(completionJoinedColumns...).
		From("completions c").
		Join("JOIN players p ON p.id = c.player_id").
		Join("JOIN levels l ON l.id = c.level_id")
}

func (r *CompletionRepository) ListAll(ctx context.Context) ([]completion.Completion, error) {
	return r.list(ctx, "select completions", selectCompletions().OrderBy("c.id ASC"))
}

func (r *CompletionRepository) ListByLevel(ctx context.Context, levelID string) ([]completion.Completion, error) {
	return r.list(ctx, "select completions by level", selectCompletions().
		Where(qb.Eq("c.level_id", levelID)).
		OrderBy("c.completion_date ASC NULLS LAST", "p.name ASC"))
}

func (r *CompletionRepository) ListByPlayer(ctx context.Context, playerID int64) ([]completion.Completion, error) {
	return r.list(ctx, "select completions by player", selectCompletions().
		Where(qb.Eq("c.player_id", playerID)).
		OrderBy("l.rank ASC", "c.completion_date ASC NULLS LAST"))
}

func (r *CompletionRepository) list(ctx context.Context, op string, builder *qb.SelectBuilder) ([]completion.Completion, error) {
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []completionRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]completion.Completion, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *CompletionRepository) Exists(ctx context.Context, levelID string, playerID int64) (bool, error) {
	query, args, err := qb.Select("1").From("completions").
		Where(qb.Eq("level_id", levelID), qb.Eq("player_id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build completion exists query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("completion exists: %w", err)
	}

	return true, nil
}

func (r *CompletionRepository) Create(ctx context.Context, item completion.Completion) (completion.Completion, error) {
	insertModel := completionInsertModel{
		LevelID:        item.LevelID,
		PlayerID:       item.PlayerID,
		CompletionURL:  nullString(item.CompletionURL),
		CompletionDate: nullString(item.CompletionDate),
	}
	query, args, err := qb.InsertModel("completions", insertModel, "RETURNING id, created_at")
	if err != nil {
		return completion.Completion{}, fmt.Errorf("build create completion query: %w", err)
	}

	var created struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		if isUniqueViolation(err) {
			return completion.Completion{}, fmt.Errorf("%w: level=%s player=%d", completion.ErrDuplicate, item.LevelID, item.PlayerID)
		}
		if isForeignKeyViolation(err) {
			return completion.Completion{}, fmt.Errorf("create completion: unknown level or player: %w", err)
		}
		return completion.Completion{}, fmt.Errorf("create completion: %w", err)
	}

	out := item
	out.ID = created.ID
	out.CreatedAt = created.CreatedAt
	out.CompletionURL = nullStringValue(insertModel.CompletionURL)
	out.CompletionDate = nullStringValue(insertModel.CompletionDate)
	return out, nil
}
