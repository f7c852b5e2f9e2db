package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/solblist-api/internal/app"
	"github.com/riskibarqy/solblist-api/internal/config"
	"github.com/riskibarqy/solblist-api/internal/domain/dataset"
	"github.com/riskibarqy/solblist-api/internal/domain/ranking"
	"github.com/riskibarqy/solblist-api/internal/infrastructure/datasource"
	"github.com/riskibarqy/solblist-api/internal/platform/logging"
	"github.com/riskibarqy/solblist-api/internal/usecase"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "importer:", err)
		stop()
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "importer",
		Usage:     "load the list documents into storage",
		Writer:    out,
		ErrWriter: os.Stderr,
		Commands: []*cli.Command{
			{
				Name:  "levels",
				Usage: "import levels, players and completions from a levels file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Usage: "path or URL of the levels document", Required: true},
				},
				Action: importLevels,
			},
			{
				Name:  "extras",
				Usage: "import the challenge and changelog documents",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "challenges", Usage: "path or URL of the challenge document"},
					&cli.StringFlag{Name: "changelog", Usage: "path or URL of the changelog document"},
				},
				Action: importExtras,
			},
			{
				Name:  "validate",
				Usage: "decode a levels file and print list statistics without writing",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Usage: "path or URL of the levels document", Required: true},
				},
				Action: validateLevels,
			},
		},
	}
}

type runtime struct {
	cfg     config.Config
	logger  *logging.Logger
	fetcher *datasource.Fetcher
}

func newRuntime() (runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return runtime{}, err
	}
	logger := logging.NewConsole(cfg.LogLevel)

	return runtime{
		cfg:    cfg,
		logger: logger,
		fetcher: datasource.NewFetcher(datasource.Config{
			Timeout:        cfg.DatasetTimeout,
			MaxRetries:     cfg.DatasetMaxRetries,
			Logger:         logger,
			CircuitBreaker: cfg.DatasetCircuit,
		}),
	}, nil
}

func (rt runtime) importService() (*usecase.ImportService, func() error, error) {
	repos, closer, err := app.NewRepositories(rt.cfg, rt.logger)
	if err != nil {
		return nil, nil, err
	}
	svc := usecase.NewImportService(usecase.ImportRepositories{
		Players:     repos.Players,
		Levels:      repos.Levels,
		Completions: repos.Completions,
		Challenges:  repos.Challenges,
		Changelogs:  repos.Changelogs,
	}, rt.cfg.ImportWorkers, rt.logger)

	return svc, closer, nil
}

func importLevels(c *cli.Context) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	records, err := rt.fetcher.Levels(c.Context, c.String("source"))
	if err != nil {
		return fmt.Errorf("fetch levels: %w", err)
	}

	svc, closer, err := rt.importService()
	if err != nil {
		return err
	}
	defer func() { _ = closer() }()

	report, err := svc.ImportLevels(c.Context, records)
	if err != nil {
		return fmt.Errorf("import levels: %w", err)
	}
	printReport(c.App.Writer, report)
	return nil
}

func importExtras(c *cli.Context) error {
	challengeSource := c.String("challenges")
	changelogSource := c.String("changelog")
	if challengeSource == "" && changelogSource == "" {
		return errors.New("extras needs --challenges or --changelog")
	}

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	var (
		challenges *dataset.ChallengeFile
		changelogs *dataset.ChangelogFile
	)
	if challengeSource != "" {
		file, err := rt.fetcher.Challenges(c.Context, challengeSource)
		if err != nil {
			return fmt.Errorf("fetch challenges: %w", err)
		}
		challenges = &file
	}
	if changelogSource != "" {
		file, err := rt.fetcher.Changelogs(c.Context, changelogSource)
		if err != nil {
			return fmt.Errorf("fetch changelog: %w", err)
		}
		changelogs = &file
	}

	svc, closer, err := rt.importService()
	if err != nil {
		return err
	}
	defer func() { _ = closer() }()

	report, err := svc.ImportExtras(c.Context, challenges, changelogs)
	if err != nil {
		return fmt.Errorf("import extras: %w", err)
	}
	printReport(c.App.Writer, report)
	return nil
}

func validateLevels(c *cli.Context) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	records, err := rt.fetcher.Levels(c.Context, c.String("source"))
	if err != nil {
		return fmt.Errorf("fetch levels: %w", err)
	}

	printValidation(c.App.Writer, records)
	return nil
}

func printValidation(w io.Writer, records []dataset.LevelRecord) {
	invalid := 0
	for _, r := range records {
		if !r.Valid() {
			invalid++
		}
	}

	levels := dataset.Snapshot(records)
	board := ranking.BuildLeaderboard(levels)
	stats := ranking.ComputeStats(levels)

	fmt.Fprintf(w, "records:            %d (%d invalid)\n", len(records), invalid)
	fmt.Fprintf(w, "main list levels:   %d\n", ranking.CountMainList(levels))
	fmt.Fprintf(w, "players:            %d (%d ranked)\n", len(board), ranking.RankedPlayerCount(board))
	fmt.Fprintf(w, "completions:        %d\n", stats.TotalCompletions)
	fmt.Fprintf(w, "points awarded:     %.2f of %.2f\n", stats.TotalPointsAwarded, stats.TotalPointsPossible)
	if len(board) > 0 {
		fmt.Fprintf(w, "leader:             %s (%.2f)\n", board[0].Name, board[0].TotalPoints)
	}
}

func printReport(w io.Writer, r usecase.ImportReport) {
	fmt.Fprintf(w, "players:      %d created, %d existing\n", r.PlayersCreated, r.PlayersExisting)
	fmt.Fprintf(w, "levels:       %d created, %d existing, %d skipped\n", r.LevelsCreated, r.LevelsExisting, r.LevelsSkipped)
	fmt.Fprintf(w, "completions:  %d created, %d existing, %d skipped, %d invalid dates\n",
		r.CompletionsCreated, r.CompletionsExisting, r.CompletionsSkipped, r.InvalidDates)
	fmt.Fprintf(w, "challenges:   %d created, %d existing\n", r.ChallengesCreated, r.ChallengesExisting)
	fmt.Fprintf(w, "changelogs:   %d versions created, %d existing; %d list entries created, %d existing\n",
		r.VersionsCreated, r.VersionsExisting, r.ListEntriesCreated, r.ListEntriesExisting)
	for _, failure := range r.Failures {
		fmt.Fprintf(w, "failure:      %s\n", failure)
	}
}
