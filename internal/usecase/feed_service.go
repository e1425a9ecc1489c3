package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/dateindex"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/nhlgame"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/logging"
)

// GameFeedProvider fetches raw game payloads from the upstream API.
type GameFeedProvider interface {
	FetchPlayByPlay(ctx context.Context, gameID int64) ([]byte, error)
	FetchGameStory(ctx context.Context, gameID int64) ([]byte, error)
}

// GameFeedService serves raw payloads from the blob cache, falling back to
// the provider and caching what it fetched. It implements PlayByPlaySource
// and GameStorySource.
type GameFeedService struct {
	provider GameFeedProvider
	blobs    blob.Repository
	notifier ArtifactNotifier
	metrics  Metrics
	logger   *logging.Logger
}

func NewGameFeedService(provider GameFeedProvider, blobs blob.Repository, notifier ArtifactNotifier, metrics Metrics, logger *logging.Logger) *GameFeedService {
	return &GameFeedService{
		provider: provider,
		blobs:    blobs,
		notifier: notifier,
		metrics:  metricsOrNoop(metrics),
		logger:   logger,
	}
}

type rawFeed struct {
	resource string
	artifact dateindex.Artifact
	key      string
	fetch    func(ctx context.Context, gameID int64) ([]byte, error)
}

func (s *GameFeedService) playByPlayFeed(gameID int64) rawFeed {
	return rawFeed{
		resource: ResourcePlayByPlay,
		artifact: dateindex.ArtifactRawPlayByPlay,
		key:      blob.RawPlayByPlayKey(gameID),
		fetch:    s.provider.FetchPlayByPlay,
	}
}

func (s *GameFeedService) storyFeed(gameID int64) rawFeed {
	return rawFeed{
		resource: ResourceGameStory,
		artifact: dateindex.ArtifactRawStory,
		key:      blob.RawStoryKey(gameID),
		fetch:    s.provider.FetchGameStory,
	}
}

func (s *GameFeedService) PlayByPlay(ctx context.Context, gameID int64) (nhlgame.PlayByPlay, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameFeedService.PlayByPlay", attribute.Int64("game.id", gameID))
	defer span.End()

	if err := s.validate(gameID); err != nil {
		return nhlgame.PlayByPlay{}, err
	}

	feed := s.playByPlayFeed(gameID)
	var out nhlgame.PlayByPlay
	err := s.load(ctx, gameID, feed, func(raw []byte) error {
		decoded, err := nhlgame.DecodePlayByPlay(raw)
		if err != nil {
			return err
		}
		out = decoded
		return nil
	})
	if err != nil {
		recordSpanError(span, err)
		return nhlgame.PlayByPlay{}, err
	}

	s.mark(ctx, gameID, feed.artifact, out.AwayTeam.Abbrev, out.HomeTeam.Abbrev)
	return out, nil
}

func (s *GameFeedService) GameStory(ctx context.Context, gameID int64) (nhlgame.Story, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameFeedService.GameStory", attribute.Int64("game.id", gameID))
	defer span.End()

	if err := s.validate(gameID); err != nil {
		return nhlgame.Story{}, err
	}

	feed := s.storyFeed(gameID)
	var out nhlgame.Story
	err := s.load(ctx, gameID, feed, func(raw []byte) error {
		decoded, err := nhlgame.DecodeStory(raw)
		if err != nil {
			return err
		}
		out = decoded
		return nil
	})
	if err != nil {
		recordSpanError(span, err)
		return nhlgame.Story{}, err
	}

	s.mark(ctx, gameID, feed.artifact, out.AwayTeam.Abbrev, out.HomeTeam.Abbrev)
	return out, nil
}

// Prefetch warms the cache with both raw payloads of a game concurrently.
func (s *GameFeedService) Prefetch(ctx context.Context, gameID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameFeedService.Prefetch", attribute.Int64("game.id", gameID))
	defer span.End()

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		_, err := s.PlayByPlay(ctx, gameID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		_, err := s.GameStory(ctx, gameID)
		return err
	})
	if err := p.Wait(); err != nil {
		recordSpanError(span, err)
		return fmt.Errorf("prefetch game %d: %w", gameID, err)
	}
	return nil
}

func (s *GameFeedService) validate(gameID int64) error {
	if gameID <= 0 {
		return fmt.Errorf("%w: game id must be positive", ErrInvalidInput)
	}
	if s.provider == nil {
		return fmt.Errorf("%w: game feed provider is not configured", ErrDependencyUnavailable)
	}
	return nil
}

// load decodes the cached payload when present and usable, otherwise
// fetches it upstream. A failed cache write is logged and ignored.
func (s *GameFeedService) load(ctx context.Context, gameID int64, feed rawFeed, decode func([]byte) error) error {
	id := strconv.FormatInt(gameID, 10)

	if raw, ok := s.cached(ctx, feed.key); ok {
		err := decode(raw)
		if err == nil {
			s.metrics.ObserveFetch(feed.resource, sourceCache)
			return nil
		}
		s.logger.WarnContext(ctx, "cached payload is unusable, refetching",
			"key", feed.key,
			"error", err,
		)
	}

	raw, err := feed.fetch(ctx, gameID)
	if err != nil {
		s.metrics.ObserveFetch(feed.resource, sourceError)
		return newFetchError(feed.resource, id, err)
	}
	if err := decode(raw); err != nil {
		s.metrics.ObserveFetch(feed.resource, sourceError)
		return newFetchError(feed.resource, id, err)
	}
	s.metrics.ObserveFetch(feed.resource, sourceUpstream)

	if s.blobs != nil {
		object := blob.Object{Key: feed.key, ContentType: blob.ContentTypeJSON, Body: raw}
		if err := s.blobs.Put(ctx, object); err != nil {
			s.logger.WarnContext(ctx, "cache raw payload failed",
				"key", feed.key,
				"error", err,
			)
		}
	}
	return nil
}

func (s *GameFeedService) cached(ctx context.Context, key string) ([]byte, bool) {
	if s.blobs == nil {
		return nil, false
	}
	object, ok, err := s.blobs.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "read cached payload failed",
			"key", key,
			"error", err,
		)
		return nil, false
	}
	if !ok || len(object.Body) == 0 {
		return nil, false
	}
	return object.Body, true
}

func (s *GameFeedService) mark(ctx context.Context, gameID int64, artifact dateindex.Artifact, away, home string) {
	notifyArtifact(ctx, s.notifier, s.logger, dateindex.Mark{
		Date:     GameDateFromContext(ctx),
		GameID:   gameID,
		Away:     away,
		Home:     home,
		Artifact: artifact,
		Exists:   true,
	})
}
