package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/solblist-api/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo list into an empty database. It does nothing
// once any level exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM levels`); err != nil {
		return fmt.Errorf("count levels for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	playerIDs := make(map[int64]int64)
	for _, p := range memory.SeedPlayers() {
		var id int64
		if err := tx.GetContext(ctx, &id, `
INSERT INTO players (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id`, p.Name); err != nil {
			return fmt.Errorf("seed player %s: %w", p.Name, err)
		}
		playerIDs[p.ID] = id
	}

	for _, l := range memory.SeedLevels() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO levels (id, rank, name, video_url)
VALUES (:id, :rank, :name, :video_url)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":        l.ID,
			"rank":      l.Rank,
			"name":      l.Name,
			"video_url": nullString(l.VideoURL),
		})
		if err != nil {
			return fmt.Errorf("bind seed level %s query: %w", l.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed level %s: %w", l.ID, err)
		}
	}

	for _, c := range memory.SeedCompletions() {
		playerID, ok := playerIDs[c.PlayerID]
		if !ok {
			return fmt.Errorf("seed completion %d: unknown seed player %d", c.ID, c.PlayerID)
		}
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO completions (level_id, player_id, completion_url, completion_date)
VALUES (:level_id, :player_id, :completion_url, CAST(:completion_date AS DATE))
ON CONFLICT (level_id, player_id) DO NOTHING`, map[string]any{
			"level_id":        c.LevelID,
			"player_id":       playerID,
			"completion_url":  nullString(c.CompletionURL),
			"completion_date": nullString(c.CompletionDate),
		})
		if err != nil {
			return fmt.Errorf("bind seed completion %d query: %w", c.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed completion %d: %w", c.ID, err)
		}
	}

	for _, c := range memory.SeedChallenges() {
		model := challengeModelFromDomain(c)
		if _, err := tx.NamedExecContext(ctx, `
INSERT INTO challenges (id, name, month, description, video_url, creator_name, difficulty_rating, is_current, status, victor_names)
VALUES (:id, :name, :month, :description, :video_url, :creator_name, :difficulty_rating, :is_current, :status, :victor_names)
ON CONFLICT (id) DO NOTHING`, model); err != nil {
			return fmt.Errorf("seed challenge %s: %w", c.ID, err)
		}
	}

	for _, v := range memory.SeedVersionChangelogs() {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO version_changelogs (version, date, description_items)
VALUES ($1, $2, $3)
ON CONFLICT (version) DO NOTHING`, v.Version, v.Date, stringArray(v.Items)); err != nil {
			return fmt.Errorf("seed version changelog %s: %w", v.Version, err)
		}
	}

	for _, e := range memory.SeedListChangelogs() {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO list_changelogs (date, description_items)
VALUES ($1, $2)`, e.Date, stringArray(e.Items)); err != nil {
			return fmt.Errorf("seed list changelog %s: %w", e.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
