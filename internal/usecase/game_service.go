package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/dateindex"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/gameevent"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/logging"
)

type EventAssembler interface {
	Assemble(ctx context.Context, gameID int64) ([]gameevent.Event, error)
}

// GameService persists assembled event streams as JSONL blobs.
type GameService struct {
	assembler EventAssembler
	blobs     blob.Repository
	notifier  ArtifactNotifier
	logger    *logging.Logger
}

func NewGameService(assembler EventAssembler, blobs blob.Repository, notifier ArtifactNotifier, logger *logging.Logger) *GameService {
	return &GameService{
		assembler: assembler,
		blobs:     blobs,
		notifier:  notifier,
		logger:    logger,
	}
}

// ProcessGame assembles the game and stores its events. The events are
// returned only when they were stored.
func (s *GameService) ProcessGame(ctx context.Context, gameID int64) ([]gameevent.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ProcessGame", attribute.Int64("game.id", gameID))
	defer span.End()

	if s.assembler == nil || s.blobs == nil {
		return nil, fmt.Errorf("%w: game service is not configured", ErrDependencyUnavailable)
	}

	events, err := s.assembler.Assemble(ctx, gameID)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	body, err := gameevent.MarshalJSONL(events)
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("encode events for game %d: %w", gameID, err)
	}
	key := blob.EventsKey(gameID)
	if err := s.blobs.Put(ctx, blob.Object{Key: key, ContentType: blob.ContentTypeJSONL, Body: body}); err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("store events for game %d: %w", gameID, err)
	}

	away, home := Matchup(events)
	notifyArtifact(ctx, s.notifier, s.logger, dateindex.Mark{
		Date:     GameDateFromContext(ctx),
		GameID:   gameID,
		Away:     away,
		Home:     home,
		Artifact: dateindex.ArtifactEvents,
		Exists:   true,
	})

	s.logger.InfoContext(ctx, "game processed",
		"game_id", gameID,
		"events", len(events),
		"key", key,
	)
	return events, nil
}

// LoadEvents reads a previously stored event stream.
func (s *GameService) LoadEvents(ctx context.Context, gameID int64) ([]gameevent.Event, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.LoadEvents", attribute.Int64("game.id", gameID))
	defer span.End()

	if gameID <= 0 {
		return nil, false, fmt.Errorf("%w: game id must be positive", ErrInvalidInput)
	}
	if s.blobs == nil {
		return nil, false, fmt.Errorf("%w: blob store is not configured", ErrDependencyUnavailable)
	}

	object, ok, err := s.blobs.Get(ctx, blob.EventsKey(gameID))
	if err != nil {
		recordSpanError(span, err)
		return nil, false, fmt.Errorf("load events for game %d: %w", gameID, err)
	}
	if !ok {
		return nil, false, nil
	}
	events, err := gameevent.UnmarshalJSONL(object.Body)
	if err != nil {
		recordSpanError(span, err)
		return nil, false, fmt.Errorf("decode events for game %d: %w", gameID, err)
	}
	return events, true, nil
}

// Events returns the stored event stream, processing the game first when
// it has not been stored yet.
func (s *GameService) Events(ctx context.Context, gameID int64) ([]gameevent.Event, error) {
	events, ok, err := s.LoadEvents(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if ok {
		return events, nil
	}
	return s.ProcessGame(ctx, gameID)
}

// Matchup returns the away and home abbreviations from the metadata event.
func Matchup(events []gameevent.Event) (string, string) {
	for i := len(events) - 1; i >= 0; i-- {
		meta := events[i].Metadata
		if events[i].Type != gameevent.KindMetadata || meta == nil {
			continue
		}
		return derefString(meta.AwayTeam.Abbrev), derefString(meta.HomeTeam.Abbrev)
	}
	return "", ""
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
