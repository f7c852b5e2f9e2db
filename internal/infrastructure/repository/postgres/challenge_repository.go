package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/solblist-api/internal/domain/challenge"
	qb "github.com/riskibarqy/solblist-api/internal/platform/querybuilder"
)

type ChallengeRepository struct {
	db *sqlx.DB
}

func NewChallengeRepository(db *sqlx.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

var challengeReturning = "RETURNING " + strings.Join(challengeColumns, ", ")

func (r *ChallengeRepository) List(ctx context.Context) ([]challenge.Challenge, error) {
	query, args, err := qb.Select(challengeColumns...).From("challenges").
		OrderBy("is_current DESC", "month DESC", "name ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select challenges query: %w", err)
	}

	var rows []challengeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select challenges: %w", err)
	}

	out := make([]challenge.Challenge, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *ChallengeRepository) GetByID(ctx context.Context, id string) (challenge.Challenge, bool, error) {
	query, args, err := qb.Select(challengeColumns...).From("challenges").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return challenge.Challenge{}, false, fmt.Errorf("build get challenge by id query: %w", err)
	}

	var row challengeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return challenge.Challenge{}, false, nil
		}
		return challenge.Challenge{}, false, fmt.Errorf("get challenge by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *ChallengeRepository) Create(ctx context.Context, item challenge.Challenge) (challenge.Challenge, error) {
	query, args, err := qb.InsertModel("challenges", challengeModelFromDomain(item), challengeReturning)
	if err != nil {
		return challenge.Challenge{}, fmt.Errorf("build create challenge query: %w", err)
	}

	var row challengeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err) {
			return challenge.Challenge{}, fmt.Errorf("%w: %s", challenge.ErrDuplicateID, item.ID)
		}
		return challenge.Challenge{}, fmt.Errorf("create challenge: %w", err)
	}

	return row.toDomain(), nil
}

func (r *ChallengeRepository) Update(ctx context.Context, item challenge.Challenge) (challenge.Challenge, bool, error) {
	model := challengeModelFromDomain(item)
	query, args, err := qb.Update("challenges").
		Set("name", model.Name).
		Set("month", model.Month).
		Set("description", model.Description).
		Set("video_url", model.VideoURL).
		Set("creator_name", model.CreatorName).
		Set("difficulty_rating", model.DifficultyRating).
		Set("status", model.Status).
		Set("victor_names", model.VictorNames).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		Suffix(challengeReturning).
		ToSQL()
	if err != nil {
		return challenge.Challenge{}, false, fmt.Errorf("build update challenge query: %w", err)
	}

	return r.getReturning(ctx, r.db, "update challenge", query, args)
}

func (r *ChallengeRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.DeleteFrom("challenges").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete challenge query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete challenge: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete challenge: %w", err)
	}

	return affected > 0, nil
}

func (r *ChallengeRepository) SetCurrent(ctx context.Context, id string) (challenge.Challenge, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return challenge.Challenge{}, false, fmt.Errorf("begin tx set current challenge: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("challenges").
		Set("is_current", false).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("is_current", true), qb.NotEq("id", id)).
		ToSQL()
	if err != nil {
		return challenge.Challenge{}, false, fmt.Errorf("build clear current challenge query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return challenge.Challenge{}, false, fmt.Errorf("clear current challenge: %w", err)
	}

	setQuery, setArgs, err := qb.Update("challenges").
		Set("is_current", true).
		Set("status", string(challenge.StatusActive)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		Suffix(challengeReturning).
		ToSQL()
	if err != nil {
		return challenge.Challenge{}, false, fmt.Errorf("build set current challenge query: %w", err)
	}

	item, exists, err := r.getReturning(ctx, tx, "set current challenge", setQuery, setArgs)
	if err != nil || !exists {
		return challenge.Challenge{}, exists, err
	}
	if err := tx.Commit(); err != nil {
		return challenge.Challenge{}, false, fmt.Errorf("commit set current challenge: %w", err)
	}

	return item, true, nil
}

func (r *ChallengeRepository) AddVictorName(ctx context.Context, id, name string) (challenge.Challenge, bool, error) {
	query, args, err := qb.Update("challenges").
		SetExpr("victor_names", "array_append(victor_names, ?)", name).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id), qb.Expr("NOT (? = ANY(victor_names))", name)).
		Suffix(challengeReturning).
		ToSQL()
	if err != nil {
		return challenge.Challenge{}, false, fmt.Errorf("build add challenge victor query: %w", err)
	}

	item, updated, err := r.getReturning(ctx, r.db, "add challenge victor", query, args)
	if err != nil {
		return challenge.Challenge{}, false, err
	}
	if updated {
		return item, true, nil
	}

	// Nothing changed: either the challenge is missing or the name is already listed.
	return r.GetByID(ctx, id)
}

func (r *ChallengeRepository) getReturning(ctx context.Context, q sqlx.QueryerContext, op, query string, args []any) (challenge.Challenge, bool, error) {
	var row challengeTableModel
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return challenge.Challenge{}, false, nil
		}
		return challenge.Challenge{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return row.toDomain(), true, nil
}
