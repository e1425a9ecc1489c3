package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/attribute"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/dateindex"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/gameevent"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/logging"
)

//go:embed prompts/game_summary.txt
var gameSummaryPrompt string

var gameSummaryTemplate = template.Must(template.New("game_summary").Parse(gameSummaryPrompt))

// TextGenerator produces natural-language text for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type AISummaryService struct {
	generator TextGenerator
	blobs     blob.Repository
	notifier  ArtifactNotifier
	metrics   Metrics
	logger    *logging.Logger
}

func NewAISummaryService(generator TextGenerator, blobs blob.Repository, notifier ArtifactNotifier, metrics Metrics, logger *logging.Logger) *AISummaryService {
	return &AISummaryService{
		generator: generator,
		blobs:     blobs,
		notifier:  notifier,
		metrics:   metricsOrNoop(metrics),
		logger:    logger,
	}
}

// BuildPrompt renders the game summary prompt with the events as indented JSON.
func BuildPrompt(events []gameevent.Event) (string, error) {
	if events == nil {
		events = []gameevent.Event{}
	}
	payload, err := sonic.ConfigStd.MarshalIndent(events, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode prompt events: %w", err)
	}

	var out bytes.Buffer
	if err := gameSummaryTemplate.Execute(&out, struct{ Events string }{Events: string(payload)}); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return out.String(), nil
}

// Generate asks the text generator for a summary. Any generator failure
// is returned as *GenerationError.
func (s *AISummaryService) Generate(ctx context.Context, gameID int64, events []gameevent.Event) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AISummaryService.Generate", attribute.Int64("game.id", gameID))
	defer span.End()

	if s.generator == nil {
		return "", fmt.Errorf("%w: text generator is not configured", ErrDependencyUnavailable)
	}

	prompt, err := BuildPrompt(events)
	if err != nil {
		recordSpanError(span, err)
		return "", &GenerationError{GameID: gameID, Err: err}
	}
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.metrics.ObserveSummary(summaryKindAI, sourceError)
		recordSpanError(span, err)
		return "", &GenerationError{GameID: gameID, Err: err}
	}
	s.metrics.ObserveSummary(summaryKindAI, sourceBuilt)
	return strings.TrimSpace(text), nil
}

// SaveAISummary stores a markdown summary and marks it in the date index.
func (s *AISummaryService) SaveAISummary(ctx context.Context, gameID int64, markdown string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AISummaryService.SaveAISummary", attribute.Int64("game.id", gameID))
	defer span.End()

	if gameID <= 0 {
		return fmt.Errorf("%w: game id must be positive", ErrInvalidInput)
	}
	if s.blobs == nil {
		return fmt.Errorf("%w: blob store is not configured", ErrDependencyUnavailable)
	}

	key := blob.AISummaryKey(gameID)
	if err := s.blobs.Put(ctx, blob.Object{Key: key, ContentType: blob.ContentTypeMarkdown, Body: []byte(markdown)}); err != nil {
		recordSpanError(span, err)
		return fmt.Errorf("store ai summary for game %d: %w", gameID, err)
	}
	notifyArtifact(ctx, s.notifier, s.logger, dateindex.Mark{
		Date:     GameDateFromContext(ctx),
		GameID:   gameID,
		Artifact: dateindex.ArtifactSummaryAI,
		Exists:   true,
	})
	s.logger.InfoContext(ctx, "ai summary saved", "game_id", gameID, "key", key)
	return nil
}

// LoadAISummary returns ("", false, nil) when no summary is stored.
func (s *AISummaryService) LoadAISummary(ctx context.Context, gameID int64) (string, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AISummaryService.LoadAISummary", attribute.Int64("game.id", gameID))
	defer span.End()

	if gameID <= 0 {
		return "", false, fmt.Errorf("%w: game id must be positive", ErrInvalidInput)
	}
	if s.blobs == nil {
		return "", false, nil
	}
	object, ok, err := s.blobs.Get(ctx, blob.AISummaryKey(gameID))
	if err != nil {
		recordSpanError(span, err)
		return "", false, fmt.Errorf("load ai summary for game %d: %w", gameID, err)
	}
	if !ok {
		return "", false, nil
	}
	return string(object.Body), true, nil
}

// GetOrGenerate serves the stored summary unless forceRefresh is set, and
// otherwise generates and saves a new one. A failed save is logged.
func (s *AISummaryService) GetOrGenerate(ctx context.Context, gameID int64, events func(context.Context) ([]gameevent.Event, error), forceRefresh bool) (string, error) {
	if gameID <= 0 {
		return "", fmt.Errorf("%w: game id must be positive", ErrInvalidInput)
	}
	if !forceRefresh {
		text, ok, err := s.LoadAISummary(ctx, gameID)
		if err != nil {
			s.logger.WarnContext(ctx, "read cached ai summary failed", "game_id", gameID, "error", err)
		} else if ok {
			s.metrics.ObserveSummary(summaryKindAI, sourceCache)
			return text, nil
		}
	}

	stream, err := events(ctx)
	if err != nil {
		return "", err
	}
	text, err := s.Generate(ctx, gameID, stream)
	if err != nil {
		return "", err
	}
	if err := s.SaveAISummary(ctx, gameID, text); err != nil {
		s.logger.WarnContext(ctx, "cache ai summary failed", "game_id", gameID, "error", err)
	}
	return text, nil
}
