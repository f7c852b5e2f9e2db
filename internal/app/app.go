package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/solblist-api/internal/config"
	"github.com/riskibarqy/solblist-api/internal/domain/challenge"
	"github.com/riskibarqy/solblist-api/internal/domain/changelog"
	"github.com/riskibarqy/solblist-api/internal/domain/completion"
	"github.com/riskibarqy/solblist-api/internal/domain/level"
	"github.com/riskibarqy/solblist-api/internal/domain/player"
	"github.com/riskibarqy/solblist-api/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/solblist-api/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/solblist-api/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/solblist-api/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/solblist-api/internal/platform/cache"
	idgen "github.com/riskibarqy/solblist-api/internal/platform/id"
	"github.com/riskibarqy/solblist-api/internal/platform/logging"
	"github.com/riskibarqy/solblist-api/internal/usecase"
)

const (
	challengeSlugSuffixSize = 4
	metricsNamespace        = "solblist"
)

// Repositories is the storage the services are built on.
type Repositories struct {
	Players     player.Repository
	Levels      level.Repository
	Completions completion.Repository
	Challenges  challenge.Repository
	Changelogs  changelog.Repository
}

// NewRepositories selects the storage driver. The returned closer releases
// the database pool and is safe to call for the memory driver.
func NewRepositories(cfg config.Config, logger *logging.Logger) (Repositories, func() error, error) {
	var (
		repos  Repositories
		closer = func() error { return nil }
	)

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		repos = NewMemoryRepositories()
		logger.Info("storage driver selected", "driver", cfg.StorageDriver, "seeded", true)
	case config.StorageDriverPostgres, "":
		db, err := OpenDB(cfg)
		if err != nil {
			return Repositories{}, closer, err
		}
		closer = db.Close
		if cfg.DBBootstrapSeed {
			if err := postgres.BootstrapSeed(context.Background(), db); err != nil {
				_ = db.Close()
				return Repositories{}, func() error { return nil }, fmt.Errorf("bootstrap seed: %w", err)
			}
			logger.Info("bootstrap seed checked")
		}
		repos = Repositories{
			Players:     postgres.NewPlayerRepository(db),
			Levels:      postgres.NewLevelRepository(db),
			Completions: postgres.NewCompletionRepository(db),
			Challenges:  postgres.NewChallengeRepository(db),
			Changelogs:  postgres.NewChangelogRepository(db),
		}
		logger.Info("storage driver selected", "driver", config.StorageDriverPostgres, "db_name", dbNameFromURL(cfg.DBURL))
	default:
		return Repositories{}, closer, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.Players = cache.NewPlayerRepository(repos.Players, store)
		repos.Levels = cache.NewLevelRepository(repos.Levels, store)
		repos.Completions = cache.NewCompletionRepository(repos.Completions, store)
		logger.Info("read cache enabled", "ttl", cfg.CacheTTL.String())
	}

	return repos, closer, nil
}

// NewMemoryRepositories returns in-memory repositories loaded with the seed list.
func NewMemoryRepositories() Repositories {
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	levels := memory.NewLevelRepository(memory.SeedLevels())

	return Repositories{
		Players:     players,
		Levels:      levels,
		Completions: memory.NewCompletionRepository(levels, players, memory.SeedCompletions()),
		Challenges:  memory.NewChallengeRepository(memory.SeedChallenges()),
		Changelogs:  memory.NewChangelogRepository(memory.SeedVersionChangelogs(), memory.SeedListChangelogs()),
	}
}

// NewHandler builds the services and the HTTP handler on top of repos.
func NewHandler(repos Repositories, logger *logging.Logger) *httpapi.Handler {
	return httpapi.NewHandler(
		usecase.NewPlayerService(repos.Players, repos.Completions),
		usecase.NewLevelService(repos.Levels, repos.Players, repos.Completions),
		usecase.NewRankingService(repos.Levels, repos.Completions, repos.Players),
		usecase.NewChallengeService(repos.Challenges, idgen.NewRandomGenerator(challengeSlugSuffixSize)),
		usecase.NewChangelogService(repos.Changelogs),
		logger,
	)
}

// NewHTTPServer wires storage, services and the router. The returned closer
// must run after the server has shut down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, closer, err := NewRepositories(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build repositories: %w", err)
	}

	routerCfg := httpapi.RouterConfig{
		SwaggerEnabled:      cfg.SwaggerEnabled,
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
		AdminToken:          cfg.AdminToken,
		AdminRateLimitRPS:   cfg.AdminRateLimitRPS,
		AdminRateLimitBurst: cfg.AdminRateLimitBurst,
	}
	if cfg.MetricsEnabled {
		routerCfg.Metrics = httpapi.NewMetrics(metricsNamespace)
	}

	router := httpapi.NewRouter(NewHandler(repos, logger), routerCfg, logger)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, closer, nil
}
