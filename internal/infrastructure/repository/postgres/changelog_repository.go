package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/solblist-api/internal/domain/changelog"
	qb "github.com/riskibarqy/solblist-api/internal/platform/querybuilder"
)

type ChangelogRepository struct {
	db *sqlx.DB
}

func NewChangelogRepository(db *sqlx.DB) *ChangelogRepository {
	return &ChangelogRepository{db: db}
}

func (r *ChangelogRepository) ListVersions(ctx context.Context) ([]changelog.VersionEntry, error) {
	query, args, err := qb.Select(versionChangelogColumns...).From("version_changelogs").
		OrderBy("version_changelogs.date DESC", "version DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select version changelogs query: %w", err)
	}

	var rows []versionChangelogTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select version changelogs: %w", err)
	}

	out := make([]changelog.VersionEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ChangelogRepository) GetVersion(ctx context.Context, version string) (changelog.VersionEntry, bool, error) {
	query, args, err := qb.Select(versionChangelogColumns...).From("version_changelogs").
		Where(qb.Eq("version", version)).
		ToSQL()
	if err != nil {
		return changelog.VersionEntry{}, false, fmt.Errorf("build get version changelog query: %w", err)
	}

	var row versionChangelogTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return changelog.VersionEntry{}, false, nil
		}
		return changelog.VersionEntry{}, false, fmt.Errorf("get version changelog: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ChangelogRepository) CreateVersion(ctx context.Context, item changelog.VersionEntry) (changelog.VersionEntry, error) {
	insertModel := versionChangelogTableModel{
		Version: strings.TrimSpace(item.Version),
		Date:    strings.TrimSpace(item.Date),
		Items:   stringArray(item.Items),
	}
	query, args, err := qb.InsertModel("version_changelogs", insertModel, "RETURNING "+strings.Join(versionChangelogColumns, ", "))
	if err != nil {
		return changelog.VersionEntry{}, fmt.Errorf("build create version changelog query: %w", err)
	}

	var row versionChangelogTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err) {
			return changelog.VersionEntry{}, fmt.Errorf("%w: %s", changelog.ErrDuplicateVersion, insertModel.Version)
		}
		return changelog.VersionEntry{}, fmt.Errorf("create version changelog: %w", err)
	}
	return row.toDomain(), nil
}

func (r *ChangelogRepository) DeleteVersion(ctx context.Context, version string) (bool, error) {
	return r.delete(ctx, "version changelog", qb.DeleteFrom("version_changelogs").Where(qb.Eq("version", version)))
}

func (r *ChangelogRepository) ListEntries(ctx context.Context) ([]changelog.ListEntry, error) {
	query, args, err := qb.Select(listChangelogColumns...).From("list_changelogs").
		OrderBy("list_changelogs.date DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select list changelogs query: %w", err)
	}

	var rows []listChangelogTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select list changelogs: %w", err)
	}

	out := make([]changelog.ListEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ChangelogRepository) GetEntry(ctx context.Context, id int64) (changelog.ListEntry, bool, error) {
	query, args, err := qb.Select(listChangelogColumns...).From("list_changelogs").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return changelog.ListEntry{}, false, fmt.Errorf("build get list changelog query: %w", err)
	}

	var row listChangelogTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return changelog.ListEntry{}, false, nil
		}
		return changelog.ListEntry{}, false, fmt.Errorf("get list changelog: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ChangelogRepository) CreateEntry(ctx context.Context, item changelog.ListEntry) (changelog.ListEntry, error) {
	insertModel := listChangelogTableModel{
		Date:  strings.TrimSpace(item.Date),
		Items: stringArray(item.Items),
	}
	query, args, err := qb.InsertModel("list_changelogs", insertModel, "RETURNING "+strings.Join(listChangelogColumns, ", "))
	if err != nil {
		return changelog.ListEntry{}, fmt.Errorf("build create list changelog query: %w", err)
	}

	var row listChangelogTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return changelog.ListEntry{}, fmt.Errorf("create list changelog: %w", err)
	}
	return row.toDomain(), nil
}

func (r *ChangelogRepository) DeleteEntry(ctx context.Context, id int64) (bool, error) {
	return r.delete(ctx, "list changelog", qb.DeleteFrom("list_changelogs").Where(qb.Eq("id", id)))
}

func (r *ChangelogRepository) delete(ctx context.Context, what string, builder *qb.DeleteBuilder) (bool, error) {
	query, args, err := builder.ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete %s query: %w", what, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", what, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete %s: %w", what, err)
	}
	return affected > 0, nil
}
