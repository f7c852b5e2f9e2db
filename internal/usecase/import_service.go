package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/solblist-api/internal/domain/challenge"
	"github.com/riskibarqy/solblist-api/internal/domain/changelog"
	"github.com/riskibarqy/solblist-api/internal/domain/completion"
	"github.com/riskibarqy/solblist-api/internal/domain/dataset"
	"github.com/riskibarqy/solblist-api/internal/domain/level"
	"github.com/riskibarqy/solblist-api/internal/domain/player"
	"github.com/riskibarqy/solblist-api/internal/domain/ranking"
	"github.com/riskibarqy/solblist-api/internal/platform/id"
	"github.com/riskibarqy/solblist-api/internal/platform/logging"
)

const defaultImportWorkers = 8

type ImportRepositories struct {
	Players     player.Repository
	Levels      level.Repository
	Completions completion.Repository
	Challenges  challenge.Repository
	Changelogs  changelog.Repository
}

// ImportReport counts what an import created and what was already present.
type ImportReport struct {
	PlayersCreated      int
	PlayersExisting     int
	LevelsCreated       int
	LevelsExisting      int
	LevelsSkipped       int
	CompletionsCreated  int
	CompletionsExisting int
	CompletionsSkipped  int
	InvalidDates        int
	ChallengesCreated   int
	ChallengesExisting  int
	VersionsCreated     int
	VersionsExisting    int
	ListEntriesCreated  int
	ListEntriesExisting int
	Failures            []string
}

type importCounters struct {
	playersCreated      atomic.Int32
	playersExisting     atomic.Int32
	levelsCreated       atomic.Int32
	levelsExisting      atomic.Int32
	levelsSkipped       atomic.Int32
	completionsCreated  atomic.Int32
	completionsExisting atomic.Int32
	completionsSkipped  atomic.Int32
	invalidDates        atomic.Int32

	mu       sync.Mutex
	failures []string
}

func (c *importCounters) fail(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = append(c.failures, fmt.Sprintf(format, args...))
}

func (c *importCounters) report() ImportReport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ImportReport{
		PlayersCreated:      int(c.playersCreated.Load()),
		PlayersExisting:     int(c.playersExisting.Load()),
		LevelsCreated:       int(c.levelsCreated.Load()),
		LevelsExisting:      int(c.levelsExisting.Load()),
		LevelsSkipped:       int(c.levelsSkipped.Load()),
		CompletionsCreated:  int(c.completionsCreated.Load()),
		CompletionsExisting: int(c.completionsExisting.Load()),
		CompletionsSkipped:  int(c.completionsSkipped.Load()),
		InvalidDates:        int(c.invalidDates.Load()),
		Failures:            append([]string(nil), c.failures...),
	}
}

// ImportService loads dataset documents into the repositories. Every step checks
// for existing rows first, so running an import twice is a no-op.
type ImportService struct {
	repos   ImportRepositories
	workers int
	logger  *logging.Logger
}

func NewImportService(repos ImportRepositories, workers int, logger *logging.Logger) *ImportService {
	if workers <= 0 {
		workers = defaultImportWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &ImportService{
		repos:   repos,
		workers: workers,
		logger:  logger,
	}
}

func (s *ImportService) ImportLevels(ctx context.Context, records []dataset.LevelRecord) (report ImportReport, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportLevels")
	defer func() { finishSpan(span, err) }()

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return ImportReport{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	counters := &importCounters{}

	playersByName, err := s.ensurePlayers(ctx, pool, dataset.PlayerNames(records), counters)
	if err != nil {
		return counters.report(), err
	}

	levelIDs, err := s.ensureLevels(ctx, pool, records, counters)
	if err != nil {
		return counters.report(), err
	}

	if err := s.recordCompletions(ctx, pool, records, levelIDs, playersByName, counters); err != nil {
		return counters.report(), err
	}

	report = counters.report()
	s.logger.InfoContext(ctx, "levels import finished",
		"players_created", report.PlayersCreated,
		"levels_created", report.LevelsCreated,
		"completions_created", report.CompletionsCreated,
		"failures", len(report.Failures),
	)
	return report, nil
}

func (s *ImportService) ensurePlayers(ctx context.Context, pool *ants.Pool, names []string, counters *importCounters) (map[string]player.Player, error) {
	var (
		mu  sync.Mutex
		out = make(map[string]player.Player, len(names))
	)

	err := submitAll(pool, len(names), func(i int) {
		name := names[i]
		p, created, err := s.ensurePlayer(ctx, name)
		if err != nil {
			counters.fail("player %q: %v", name, err)
			return
		}
		if created {
			counters.playersCreated.Add(1)
		} else {
			counters.playersExisting.Add(1)
		}

		mu.Lock()
		out[name] = p
		mu.Unlock()
	})
	return out, err
}

func (s *ImportService) ensurePlayer(ctx context.Context, name string) (player.Player, bool, error) {
	existing, exists, err := s.repos.Players.GetByName(ctx, name)
	if err != nil {
		return player.Player{}, false, fmt.Errorf("get player by name: %w", err)
	}
	if exists {
		return existing, false, nil
	}

	created, err := s.repos.Players.Create(ctx, player.Player{Name: name})
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, player.ErrDuplicateName) {
		return player.Player{}, false, fmt.Errorf("create player: %w", err)
	}

	// Lost a race with a concurrent import.
	existing, exists, err = s.repos.Players.GetByName(ctx, name)
	if err != nil || !exists {
		return player.Player{}, false, fmt.Errorf("reload player after conflict: exists=%v err=%v", exists, err)
	}
	return existing, false, nil
}

// ensureLevels returns the set of level ids that exist after the step.
func (s *ImportService) ensureLevels(ctx context.Context, pool *ants.Pool, records []dataset.LevelRecord, counters *importCounters) (map[string]struct{}, error) {
	var (
		mu  sync.Mutex
		out = make(map[string]struct{}, len(records))
	)

	err := submitAll(pool, len(records), func(i int) {
		record := records[i]
		if !record.Valid() || record.Rank < 1 {
			counters.levelsSkipped.Add(1)
			s.logger.WarnContext(ctx, "skip level record", "level_id", record.LevelID, "name", record.Name, "rank", record.Rank)
			return
		}

		levelID := strings.TrimSpace(record.LevelID)
		_, exists, err := s.repos.Levels.GetByID(ctx, levelID)
		if err != nil {
			counters.fail("level %s: %v", levelID, err)
			return
		}
		if exists {
			counters.levelsExisting.Add(1)
		} else {
			_, err := s.repos.Levels.Create(ctx, level.Level{
				ID:       levelID,
				Rank:     record.Rank,
				Name:     strings.TrimSpace(record.Name),
				VideoURL: strings.TrimSpace(record.VideoURL),
			})
			switch {
			case err == nil:
				counters.levelsCreated.Add(1)
			case errors.Is(err, level.ErrDuplicateID):
				counters.levelsExisting.Add(1)
			default:
				counters.fail("level %s: %v", levelID, err)
				return
			}
		}

		mu.Lock()
		out[levelID] = struct{}{}
		mu.Unlock()
	})
	return out, err
}

// recordCompletions runs one task per level so victors keep their file order.
func (s *ImportService) recordCompletions(
	ctx context.Context,
	pool *ants.Pool,
	records []dataset.LevelRecord,
	levelIDs map[string]struct{},
	playersByName map[string]player.Player,
	counters *importCounters,
) error {
	return submitAll(pool, len(records), func(i int) {
		record := records[i]
		levelID := strings.TrimSpace(record.LevelID)
		if _, ok := levelIDs[levelID]; !ok {
			return
		}

		for _, victor := range record.Victors {
			if ctx.Err() != nil {
				return
			}

			name := strings.TrimSpace(victor.Name)
			p, ok := playersByName[name]
			if !ok {
				counters.completionsSkipped.Add(1)
				continue
			}

			exists, err := s.repos.Completions.Exists(ctx, levelID, p.ID)
			if err != nil {
				counters.fail("completion %s/%s: %v", levelID, name, err)
				continue
			}
			if exists {
				counters.completionsExisting.Add(1)
				continue
			}

			date := strings.TrimSpace(victor.CompletionDate)
			if date != "" {
				if _, valid := ranking.ParseCompletionDate(date); !valid {
					counters.invalidDates.Add(1)
					date = ""
				}
			}

			_, err = s.repos.Completions.Create(ctx, completion.Completion{
				LevelID:        levelID,
				PlayerID:       p.ID,
				CompletionURL:  strings.TrimSpace(victor.CompletionURL),
				CompletionDate: date,
			})
			switch {
			case err == nil:
				counters.completionsCreated.Add(1)
			case errors.Is(err, completion.ErrDuplicate):
				counters.completionsExisting.Add(1)
			default:
				counters.fail("completion %s/%s: %v", levelID, name, err)
			}
		}
	})
}

// ImportExtras loads the challenge and changelog documents. Either may be nil.
func (s *ImportService) ImportExtras(ctx context.Context, challenges *dataset.ChallengeFile, changelogs *dataset.ChangelogFile) (report ImportReport, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportExtras")
	defer func() { finishSpan(span, err) }()

	if challenges != nil {
		if err := s.importChallenges(ctx, *challenges, &report); err != nil {
			return report, err
		}
	}
	if changelogs != nil {
		if err := s.importChangelogs(ctx, *changelogs, &report); err != nil {
			return report, err
		}
	}

	s.logger.InfoContext(ctx, "extras import finished",
		"challenges_created", report.ChallengesCreated,
		"versions_created", report.VersionsCreated,
		"list_entries_created", report.ListEntriesCreated,
	)
	return report, nil
}

func (s *ImportService) importChallenges(ctx context.Context, file dataset.ChallengeFile, report *ImportReport) error {
	type pending struct {
		record  dataset.ChallengeRecord
		current bool
	}

	items := make([]pending, 0, len(file.Archive)+1)
	if file.CurrentChallenge != nil {
		items = append(items, pending{record: *file.CurrentChallenge, current: true})
	}
	for _, record := range file.Archive {
		items = append(items, pending{record: record})
	}

	for _, item := range items {
		record := item.record
		challengeID := strings.TrimSpace(record.ID)
		if challengeID == "" {
			challengeID = id.Slug(record.Month, record.LevelName)
		}

		status := challenge.StatusArchived
		if item.current {
			status = challenge.StatusActive
		}
		entity := challenge.Challenge{
			ID:               challengeID,
			Name:             strings.TrimSpace(record.LevelName),
			Month:            strings.TrimSpace(record.Month),
			Description:      strings.TrimSpace(record.Description),
			VideoURL:         strings.TrimSpace(record.VideoURL),
			CreatorName:      strings.TrimSpace(record.Creator),
			DifficultyRating: strings.TrimSpace(record.Difficulty),
			Status:           status,
			VictorNames:      uniqueTrimmed(record.Victors),
		}
		if err := entity.Validate(); err != nil {
			report.Failures = append(report.Failures, fmt.Sprintf("challenge %q: %v", challengeID, err))
			continue
		}

		_, exists, err := s.repos.Challenges.GetByID(ctx, challengeID)
		if err != nil {
			return fmt.Errorf("get challenge %s: %w", challengeID, err)
		}
		if exists {
			report.ChallengesExisting++
			continue
		}

		if _, err := s.repos.Challenges.Create(ctx, entity); err != nil {
			if errors.Is(err, challenge.ErrDuplicateID) {
				report.ChallengesExisting++
				continue
			}
			return fmt.Errorf("create challenge %s: %w", challengeID, err)
		}
		if item.current {
			if _, _, err := s.repos.Challenges.SetCurrent(ctx, challengeID); err != nil {
				return fmt.Errorf("set current challenge %s: %w", challengeID, err)
			}
		}
		report.ChallengesCreated++
	}

	return nil
}

func (s *ImportService) importChangelogs(ctx context.Context, file dataset.ChangelogFile, report *ImportReport) error {
	for _, change := range file.VersionChanges {
		entry := changelog.VersionEntry{
			Version: strings.TrimSpace(change.Version),
			Date:    strings.TrimSpace(change.Date),
			Items:   nonBlank(change.Changes),
		}
		if err := entry.Validate(); err != nil {
			report.Failures = append(report.Failures, fmt.Sprintf("version %q: %v", change.Version, err))
			continue
		}

		_, exists, err := s.repos.Changelogs.GetVersion(ctx, entry.Version)
		if err != nil {
			return fmt.Errorf("get version changelog %s: %w", entry.Version, err)
		}
		if exists {
			report.VersionsExisting++
			continue
		}
		if _, err := s.repos.Changelogs.CreateVersion(ctx, entry); err != nil {
			if errors.Is(err, changelog.ErrDuplicateVersion) {
				report.VersionsExisting++
				continue
			}
			return fmt.Errorf("create version changelog %s: %w", entry.Version, err)
		}
		report.VersionsCreated++
	}

	existing, err := s.repos.Changelogs.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("list list changelogs: %w", err)
	}
	seen := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		seen[listEntryKey(e.Date, e.Items)] = struct{}{}
	}

	for _, change := range file.ListChanges {
		entry := changelog.ListEntry{
			Date:  strings.TrimSpace(change.Date),
			Items: nonBlank(change.Changes),
		}
		if err := entry.Validate(); err != nil {
			report.Failures = append(report.Failures, fmt.Sprintf("list change %q: %v", change.Date, err))
			continue
		}

		key := listEntryKey(entry.Date, entry.Items)
		if _, dup := seen[key]; dup {
			report.ListEntriesExisting++
			continue
		}
		if _, err := s.repos.Changelogs.CreateEntry(ctx, entry); err != nil {
			return fmt.Errorf("create list changelog %s: %w", entry.Date, err)
		}
		seen[key] = struct{}{}
		report.ListEntriesCreated++
	}

	return nil
}

func listEntryKey(date string, items []string) string {
	return date + "\x00" + strings.Join(items, "\x00")
}

// submitAll runs task(i) for i in [0,n) on pool and waits for all of them.
func submitAll(pool *ants.Pool, n int, task func(i int)) error {
	var workers sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			task(i)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	return nil
}
