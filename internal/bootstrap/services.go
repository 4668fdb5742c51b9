package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/pyar/jobboard/config"
	"github.com/pyar/jobboard/internal/adapters/mail"
	redisadapter "github.com/pyar/jobboard/internal/adapters/redis"
	"github.com/pyar/jobboard/internal/data"
	"github.com/pyar/jobboard/internal/observability/statsd"
	"github.com/pyar/jobboard/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Jobs      *service.JobService
	Companies *service.CompanyService
	Feed      *service.FeedService
	Sessions  *redisadapter.SessionStore
	Metrics   *statsd.Client
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires repositories, adapters and domain services.
func NewServices(deps ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	metrics := buildMetrics(cfg.Observability, logger)

	jobRepo := data.NewJobRepo(deps.DB)
	companyRepo := data.NewCompanyRepo(deps.DB)
	mailer := mail.NewSender(cfg.Mail)

	jobService := service.NewJobService(service.JobServiceOptions{
		JobRepo:     jobRepo,
		CompanyRepo: companyRepo,
		Mailer:      mailer,
		Metrics:     metrics,
		Listing:     cfg.Listing,
		Logger:      logger,
	})

	companyService := service.NewCompanyService(service.CompanyServiceOptions{
		CompanyRepo: companyRepo,
		Logger:      logger,
	})

	feedService := service.NewFeedService(service.FeedServiceOptions{
		JobRepo: jobRepo,
		Metrics: metrics,
		Listing: cfg.Listing,
		BaseURL: cfg.HTTP.BaseURL,
	})

	return ServiceContainer{
		Jobs:      jobService,
		Companies: companyService,
		Feed:      feedService,
		Sessions:  redisadapter.NewSessionStore(deps.RedisClient),
		Metrics:   metrics,
	}
}

// buildMetrics returns a statsd client, inert when metrics are disabled.
func buildMetrics(cfg config.ObservabilityConfig, logger *slog.Logger) *statsd.Client {
	client, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Metrics.IsEnabled(),
		Address: cfg.Metrics.StatsdAddress,
		Prefix:  statsd.DefaultPrefix,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialise statsd client", "error", err)
		client, _ = statsd.NewClient(statsd.Config{})
	}
	return client
}
