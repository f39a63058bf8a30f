package cmd

import (
	"log/slog"

	httpin "shipconvenient/internal/adapters/in/http"
	"shipconvenient/internal/adapters/out/mapbox"
	"shipconvenient/internal/adapters/out/postgres"
	"shipconvenient/internal/adapters/out/postgres/configrepo"
	"shipconvenient/internal/adapters/out/rediscache"
	"shipconvenient/internal/core/application/usecases/queries"
	"shipconvenient/internal/core/ports"
	"shipconvenient/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg       Config
	logger    *slog.Logger
	maxCount  *configrepo.MaxSuggestCountCache
	snapshots *postgres.GormSnapshotFactory
	oracle    ports.RoutingOracle
}

// NewCompositionRoot builds the shared adapters. rdb may be nil, in which case the routing
// oracle is called without a cache.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, rdb redis.Cmdable, logger *slog.Logger) (*CompositionRoot, error) {
	client, err := mapbox.NewClient(mapbox.Config{
		AccessToken: cfg.MapboxAccessToken,
		BaseURL:     cfg.MapboxBaseURL,
		Profile:     cfg.MapboxProfile,
		Timeout:     cfg.OracleTimeout,
	})
	if err != nil {
		return nil, err
	}

	var oracle ports.RoutingOracle = client
	if rdb != nil {
		oracle = rediscache.NewCachedRoutingOracle(client, rdb, cfg.OracleCacheTTL, logger)
	}

	maxCount := configrepo.NewMaxSuggestCountCache(
		configrepo.NewGormSettingsRepository(gormDB, cfg.SettingsDefaults))

	return &CompositionRoot{
		cfg:       cfg,
		logger:    logger,
		maxCount:  maxCount,
		snapshots: postgres.NewGormSnapshotFactory(gormDB, cfg.SettingsDefaults, maxCount),
		oracle:    oracle,
	}, nil
}

func (c *CompositionRoot) CreateSuggestParcelsQueryHandler() queries.SuggestParcelsQueryHandler {
	return queries.NewSuggestParcelsQueryHandler(c.snapshots, c.oracle, queries.SuggestParcelsHandlerConfig{
		Tolerances:        c.cfg.Tolerances,
		OracleConcurrency: c.cfg.OracleConcurrency,
		OracleTimeout:     c.cfg.OracleTimeout,
	}, c.logger)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(c.CreateSuggestParcelsQueryHandler(), c.logger)
	return httpin.NewRouter(server, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewSettingsRefreshJob(c.maxCount, c.cfg.SettingsRefreshSchedule, jobs.DefaultSettingsRefreshTimeout, c.logger),
	)
}
