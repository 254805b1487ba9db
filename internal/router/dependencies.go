package router

import (
	"context"

	"github.com/P3chys/studyqa-api/internal/config"
	"github.com/P3chys/studyqa-api/internal/handlers"
	"github.com/P3chys/studyqa-api/internal/logger"
	"github.com/P3chys/studyqa-api/internal/metrics"
	"github.com/P3chys/studyqa-api/internal/middleware"
	"github.com/P3chys/studyqa-api/internal/services"
	"github.com/P3chys/studyqa-api/internal/store"
)

// Dependencies is everything the router wires into handlers. Indexer,
// Searcher, Attachments and RateLimiter are optional and left nil when the
// matching integration is not configured.
type Dependencies struct {
	Store   *store.Store
	Config  *config.Config
	Logger  *logger.Logger
	Metrics *metrics.Metrics

	Indexer     handlers.QuestionIndexer
	Searcher    handlers.QuestionSearcher
	Attachments handlers.AttachmentStore
	RateLimiter *middleware.RateLimiter
}

// NewDependencies connects the optional integrations named in cfg. A failing
// integration is logged and left disabled rather than aborting startup.
func NewDependencies(ctx context.Context, s *store.Store, cfg *config.Config, log *logger.Logger) *Dependencies {
	deps := &Dependencies{
		Store:   s,
		Config:  cfg,
		Logger:  log,
		Metrics: metrics.NewMetrics("api"),
	}

	if cfg.MinIOEndpoint != "" {
		storageService, err := services.NewStorageService(ctx, cfg)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize storage service, attachments disabled")
		} else {
			deps.Attachments = storageService
		}
	}

	if cfg.MeiliURL != "" {
		searchService := services.NewSearchService(cfg, log.Logger)
		deps.Indexer = searchService
		deps.Searcher = searchService

		// Mirror whatever the store starts with.
		go func() {
			if err := searchService.IndexQuestions(s.Questions()); err != nil {
				log.WithError(err).Warn("Initial question indexing failed")
			}
		}()
	}

	if cfg.RedisURL != "" {
		limiter, err := middleware.NewRateLimiter(ctx, cfg.RedisURL)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize rate limiter, rate limiting disabled")
		} else {
			deps.RateLimiter = limiter
		}
	}

	return deps
}

// Close releases connections held by the integrations.
func (d *Dependencies) Close() error {
	if d.RateLimiter != nil {
		return d.RateLimiter.Close()
	}
	return nil
}
