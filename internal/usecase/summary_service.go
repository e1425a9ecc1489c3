package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/dateindex"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/gameevent"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/gamesummary"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/logging"
)

const (
	summaryKindStats = "stats"
	summaryKindAI    = "ai"
)

type EventSource interface {
	Events(ctx context.Context, gameID int64) ([]gameevent.Event, error)
}

// SummaryGenerator renders a rule-based summary from an event stream.
type SummaryGenerator func(events []gameevent.Event) string

type SummaryService struct {
	events    EventSource
	blobs     blob.Repository
	notifier  ArtifactNotifier
	generator SummaryGenerator
	metrics   Metrics
	logger    *logging.Logger
}

type SummaryServiceOption func(*SummaryService)

func WithSummaryGenerator(generator SummaryGenerator) SummaryServiceOption {
	return func(s *SummaryService) {
		if generator != nil {
			s.generator = generator
		}
	}
}

func NewSummaryService(events EventSource, blobs blob.Repository, notifier ArtifactNotifier, metrics Metrics, logger *logging.Logger, opts ...SummaryServiceOption) *SummaryService {
	s := &SummaryService{
		events:    events,
		blobs:     blobs,
		notifier:  notifier,
		generator: gamesummary.Summarize,
		metrics:   metricsOrNoop(metrics),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type StatsSummaryInput struct {
	GameID int64
	// Events skips loading the event stream when set.
	Events       []gameevent.Event
	ForceRefresh bool
}

// GetOrBuildStatsSummary returns the cached rule-based summary, or builds
// and caches it. A failed cache write does not fail the call.
func (s *SummaryService) GetOrBuildStatsSummary(ctx context.Context, input StatsSummaryInput) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummaryService.GetOrBuildStatsSummary",
		attribute.Int64("game.id", input.GameID),
		attribute.Bool("summary.force_refresh", input.ForceRefresh),
	)
	defer span.End()

	if input.GameID <= 0 {
		return "", fmt.Errorf("%w: game id must be positive", ErrInvalidInput)
	}

	key := blob.StatsSummaryKey(input.GameID)
	if !input.ForceRefresh {
		if text, ok := s.cachedText(ctx, key); ok {
			s.metrics.ObserveSummary(summaryKindStats, sourceCache)
			return text, nil
		}
	}

	events := input.Events
	if events == nil {
		if s.events == nil {
			return "", fmt.Errorf("%w: event source is not configured", ErrDependencyUnavailable)
		}
		loaded, err := s.events.Events(ctx, input.GameID)
		if err != nil {
			s.metrics.ObserveSummary(summaryKindStats, sourceError)
			recordSpanError(span, err)
			return "", err
		}
		events = loaded
	}

	text := s.generator(events)
	s.metrics.ObserveSummary(summaryKindStats, sourceBuilt)

	if s.blobs != nil {
		if err := s.blobs.Put(ctx, blob.Object{Key: key, ContentType: blob.ContentTypeText, Body: []byte(text)}); err != nil {
			s.logger.WarnContext(ctx, "cache stats summary failed", "key", key, "error", err)
			return text, nil
		}
	}

	away, home := Matchup(events)
	notifyArtifact(ctx, s.notifier, s.logger, dateindex.Mark{
		Date:     GameDateFromContext(ctx),
		GameID:   input.GameID,
		Away:     away,
		Home:     home,
		Artifact: dateindex.ArtifactSummaryStats,
		Exists:   true,
	})
	return text, nil
}

func (s *SummaryService) cachedText(ctx context.Context, key string) (string, bool) {
	return readCachedText(ctx, s.blobs, s.logger, key)
}

func readCachedText(ctx context.Context, blobs blob.Repository, logger *logging.Logger, key string) (string, bool) {
	if blobs == nil {
		return "", false
	}
	object, ok, err := blobs.Get(ctx, key)
	if err != nil {
		logger.WarnContext(ctx, "read cached summary failed", "key", key, "error", err)
		return "", false
	}
	if !ok {
		return "", false
	}
	return string(object.Body), true
}
