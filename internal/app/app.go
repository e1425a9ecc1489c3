package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/eugene-petrov-me/nhl-commentary-core/external/nhlapi"
	"github.com/eugene-petrov-me/nhl-commentary-core/external/openai"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/config"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/infrastructure/repository/cache"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/interfaces/httpapi"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/observability"
	idgen "github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/id"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/logging"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/resilience"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/usecase"
)

// Container holds the wired services shared by the CLI and the HTTP server.
type Container struct {
	Config  config.Config
	Logger  *logging.Logger
	Metrics *observability.Metrics

	Blobs      blob.Repository
	Schedule   *usecase.ScheduleService
	Feed       *usecase.GameFeedService
	Assembler  *usecase.GameAssembler
	Games      *usecase.GameService
	Stats      *usecase.SummaryService
	AI         *usecase.AISummaryService
	Index      *usecase.DateIndexService
	Commentary *usecase.CommentaryService
	Backfill   *usecase.BackfillService

	closers []func() error
}

// Option overrides a dependency before services are wired. Used by tests.
type Option func(*options)

type options struct {
	blobs     blob.Repository
	feed      nhlFeed
	generator usecase.TextGenerator
}

type nhlFeed interface {
	usecase.ScheduleProvider
	usecase.GameFeedProvider
}

func WithBlobRepository(blobs blob.Repository) Option {
	return func(o *options) { o.blobs = blobs }
}

func WithFeedProvider(feed nhlFeed) Option {
	return func(o *options) { o.feed = feed }
}

func WithTextGenerator(generator usecase.TextGenerator) Option {
	return func(o *options) { o.generator = generator }
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger, opts ...Option) (*Container, error) {
	if logger == nil {
		logger = logging.Default()
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Container{Config: cfg, Logger: logger}
	if cfg.MetricsEnabled {
		c.Metrics = observability.NewMetrics(observability.WithRuntimeCollectors())
	}

	blobs := o.blobs
	if blobs == nil {
		store, closeStore, err := newBlobRepository(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		blobs = store
		if closeStore != nil {
			c.closers = append(c.closers, closeStore)
		}
	}
	if cfg.BlobCacheTTL > 0 {
		blobs = cache.NewBlobRepository(blobs, cfg.BlobCacheTTL)
	}
	c.Blobs = blobs

	feed := o.feed
	if feed == nil {
		feed = nhlapi.NewClient(nhlapi.ClientConfig{
			BaseURL:    cfg.NHLAPIBaseURL,
			Timeout:    cfg.NHLAPITimeout,
			MaxRetries: cfg.NHLAPIMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.NHLAPICircuitEnabled,
				FailureThreshold: cfg.NHLAPICircuitFailureCount,
				OpenTimeout:      cfg.NHLAPICircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.NHLAPICircuitHalfOpenMaxReq,
			},
		})
	}

	generator := o.generator
	if generator == nil && cfg.AIEnabled() {
		generator = openai.NewClient(openai.ClientConfig{
			BaseURL: cfg.OpenAIBaseURL,
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.OpenAITimeout,
			Logger:  logger,
		})
	}

	metrics := c.usecaseMetrics()
	c.Index = usecase.NewDateIndexService(blobs, logger)
	c.Schedule = usecase.NewScheduleService(feed, metrics, logger)
	c.Feed = usecase.NewGameFeedService(feed, blobs, c.Index, metrics, logger)
	c.Assembler = usecase.NewGameAssembler(c.Feed, c.Feed, metrics, logger)
	c.Games = usecase.NewGameService(c.Assembler, blobs, c.Index, logger)
	c.Stats = usecase.NewSummaryService(c.Games, blobs, c.Index, metrics, logger)
	if generator != nil {
		c.AI = usecase.NewAISummaryService(generator, blobs, c.Index, metrics, logger)
	} else {
		logger.Info("ai summaries disabled", "reason", "OPENAI_API_KEY is not set")
	}
	c.Commentary = usecase.NewCommentaryService(c.Assembler, c.Games, c.Stats, c.AI)
	c.Backfill = usecase.NewBackfillService(
		c.Schedule,
		c.Index,
		usecase.NewArtifactRunners(c.Feed, c.Games, c.Stats, c.AI),
		idgen.NewRandomGenerator("bf"),
		cfg.BackfillWorkers,
		metrics,
		logger,
	)

	logger.Info("app wired",
		"blob_backend", cfg.BlobBackend,
		"blob_cache_ttl", cfg.BlobCacheTTL.String(),
		"ai_enabled", c.AI != nil,
		"metrics_enabled", c.Metrics != nil,
	)
	return c, nil
}

// usecaseMetrics keeps a disabled registry out of the interface so services
// fall back to their no-op recorder.
func (c *Container) usecaseMetrics() usecase.Metrics {
	if c.Metrics == nil {
		return nil
	}
	return c.Metrics
}

func (c *Container) HTTPHandler() http.Handler {
	handler := httpapi.NewHandler(c.Schedule, c.Games, c.Commentary, c.Backfill, c.Index, c.Logger)
	opts := httpapi.RouterOptions{
		SwaggerEnabled:     c.Config.SwaggerEnabled,
		CORSAllowedOrigins: c.Config.CORSAllowedOrigins,
	}
	if c.Metrics != nil {
		opts.MetricsHandler = c.Metrics.Handler()
		opts.Observer = c.Metrics
	}
	return httpapi.NewRouter(handler, c.Logger, opts)
}

// Close releases backend connections in reverse order of creation.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

func NewHTTPServer(c *Container) (*http.Server, error) {
	if c == nil {
		return nil, fmt.Errorf("app container is required")
	}
	server := &http.Server{
		Addr:         c.Config.HTTPAddr,
		Handler:      c.HTTPHandler(),
		ReadTimeout:  c.Config.ReadTimeout,
		WriteTimeout: c.Config.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
