package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/attribute"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/dateindex"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/nhlgame"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/logging"
)

// DateIndexService maintains the per-date progress documents. Updates are
// read-modify-write and serialized within the process.
type DateIndexService struct {
	mu     sync.Mutex
	blobs  blob.Repository
	logger *logging.Logger
}

func NewDateIndexService(blobs blob.Repository, logger *logging.Logger) *DateIndexService {
	return &DateIndexService{blobs: blobs, logger: logger}
}

// Load returns the index for date. A missing or unreadable document is
// returned as a fresh empty one.
func (s *DateIndexService) Load(ctx context.Context, date string) (dateindex.Document, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DateIndexService.Load", attribute.String("game.date", date))
	defer span.End()

	date, err := ParseGameDate(date)
	if err != nil {
		return dateindex.Document{}, err
	}
	if s.blobs == nil {
		return dateindex.Document{}, fmt.Errorf("%w: blob store is not configured", ErrDependencyUnavailable)
	}
	return s.load(ctx, date)
}

func (s *DateIndexService) load(ctx context.Context, date string) (dateindex.Document, error) {
	key := blob.DateIndexKey(date)
	object, ok, err := s.blobs.Get(ctx, key)
	if err != nil {
		return dateindex.Document{}, fmt.Errorf("load date index %s: %w", date, err)
	}
	if !ok {
		return dateindex.NewDocument(date), nil
	}

	var doc dateindex.Document
	if err := sonic.Unmarshal(object.Body, &doc); err != nil {
		s.logger.WarnContext(ctx, "date index is unreadable, starting fresh", "key", key, "error", err)
		return dateindex.NewDocument(date), nil
	}
	if doc.Date == "" {
		doc.Date = date
	}
	if doc.Games == nil {
		doc.Games = []dateindex.Row{}
	}
	return doc, nil
}

func (s *DateIndexService) save(ctx context.Context, doc dateindex.Document) error {
	body, err := sonic.ConfigStd.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode date index %s: %w", doc.Date, err)
	}
	object := blob.Object{Key: blob.DateIndexKey(doc.Date), ContentType: blob.ContentTypeJSON, Body: body}
	if err := s.blobs.Put(ctx, object); err != nil {
		return fmt.Errorf("store date index %s: %w", doc.Date, err)
	}
	return nil
}

// MarkArtifact records whether an artifact exists for a game.
func (s *DateIndexService) MarkArtifact(ctx context.Context, mark dateindex.Mark) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DateIndexService.MarkArtifact",
		attribute.String("game.date", mark.Date),
		attribute.Int64("game.id", mark.GameID),
		attribute.String("artifact", string(mark.Artifact)),
	)
	defer span.End()

	date, err := ParseGameDate(mark.Date)
	if err != nil {
		return err
	}
	if mark.GameID <= 0 {
		return fmt.Errorf("%w: game id must be positive", ErrInvalidInput)
	}
	artifact, err := dateindex.ParseArtifact(string(mark.Artifact))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if s.blobs == nil {
		return fmt.Errorf("%w: blob store is not configured", ErrDependencyUnavailable)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx, date)
	if err != nil {
		recordSpanError(span, err)
		return err
	}
	doc.Upsert(mark.GameID, mark.Away, mark.Home).Set(artifact, mark.Exists)
	if err := s.save(ctx, doc); err != nil {
		recordSpanError(span, err)
		return err
	}
	return nil
}

// ListGamesMissing lists games on date whose artifact is not marked.
func (s *DateIndexService) ListGamesMissing(ctx context.Context, date string, artifact dateindex.Artifact) ([]int64, error) {
	artifact, err := dateindex.ParseArtifact(string(artifact))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	doc, err := s.Load(ctx, date)
	if err != nil {
		return nil, err
	}
	return doc.Missing(artifact), nil
}

// SeedGames adds a row for every scheduled game, keeping existing marks.
func (s *DateIndexService) SeedGames(ctx context.Context, date string, games []nhlgame.ScheduledGame) (dateindex.Document, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DateIndexService.SeedGames",
		attribute.String("game.date", date),
		attribute.Int("games", len(games)),
	)
	defer span.End()

	date, err := ParseGameDate(date)
	if err != nil {
		return dateindex.Document{}, err
	}
	if s.blobs == nil {
		return dateindex.Document{}, fmt.Errorf("%w: blob store is not configured", ErrDependencyUnavailable)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx, date)
	if err != nil {
		recordSpanError(span, err)
		return dateindex.Document{}, err
	}
	for _, game := range games {
		if game.GameID <= 0 {
			continue
		}
		doc.Upsert(game.GameID, game.AwayTeam, game.HomeTeam)
	}
	if err := s.save(ctx, doc); err != nil {
		recordSpanError(span, err)
		return dateindex.Document{}, err
	}
	return doc, nil
}
