package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/gameevent"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/gamesummary"
)

type SummaryMode string

const (
	SummaryModeStats SummaryMode = "stats"
	SummaryModeAI    SummaryMode = "ai"
)

// ParseSummaryMode defaults to the stats mode when raw is empty.
func ParseSummaryMode(raw string) (SummaryMode, error) {
	switch SummaryMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", SummaryModeStats:
		return SummaryModeStats, nil
	case SummaryModeAI:
		return SummaryModeAI, nil
	default:
		return "", fmt.Errorf("%w: summary mode must be stats or ai, got %q", ErrInvalidInput, raw)
	}
}

type SummaryRequest struct {
	GameID       int64
	Mode         SummaryMode
	ForceRefresh bool
	// Date is the schedule date used to mark the date index; optional.
	Date string
}

type SummaryResult struct {
	GameID int64       `json:"game_id"`
	Mode   SummaryMode `json:"mode"`
	Text   string      `json:"text"`
}

// CommentaryService is the entry point for game summaries.
type CommentaryService struct {
	assembler EventAssembler
	events    EventSource
	stats     *SummaryService
	ai        *AISummaryService
}

func NewCommentaryService(assembler EventAssembler, events EventSource, stats *SummaryService, ai *AISummaryService) *CommentaryService {
	return &CommentaryService{
		assembler: assembler,
		events:    events,
		stats:     stats,
		ai:        ai,
	}
}

// SummarizeGame assembles the game from its sources and summarizes it
// without touching the summary cache.
func (s *CommentaryService) SummarizeGame(ctx context.Context, gameID int64, useAI bool) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CommentaryService.SummarizeGame",
		attribute.Int64("game.id", gameID),
		attribute.Bool("summary.use_ai", useAI),
	)
	defer span.End()

	if s.assembler == nil {
		return "", fmt.Errorf("%w: game assembler is not configured", ErrDependencyUnavailable)
	}
	events, err := s.assembler.Assemble(ctx, gameID)
	if err != nil {
		recordSpanError(span, err)
		return "", err
	}
	if !useAI {
		return gamesummary.Summarize(events), nil
	}
	if s.ai == nil {
		return "", fmt.Errorf("%w: ai summaries are not configured", ErrDependencyUnavailable)
	}
	text, err := s.ai.Generate(ctx, gameID, events)
	if err != nil {
		recordSpanError(span, err)
		return "", err
	}
	return text, nil
}

// Summary serves a cached summary in the requested mode, building it from
// the stored event stream when needed.
func (s *CommentaryService) Summary(ctx context.Context, req SummaryRequest) (SummaryResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CommentaryService.Summary",
		attribute.Int64("game.id", req.GameID),
		attribute.String("summary.mode", string(req.Mode)),
	)
	defer span.End()

	mode, err := ParseSummaryMode(string(req.Mode))
	if err != nil {
		return SummaryResult{}, err
	}
	if req.GameID <= 0 {
		return SummaryResult{}, fmt.Errorf("%w: game id must be positive", ErrInvalidInput)
	}
	if req.Date != "" {
		date, err := ParseGameDate(req.Date)
		if err != nil {
			return SummaryResult{}, err
		}
		ctx = WithGameDate(ctx, date)
	}

	var text string
	switch mode {
	case SummaryModeAI:
		if s.ai == nil {
			return SummaryResult{}, fmt.Errorf("%w: ai summaries are not configured", ErrDependencyUnavailable)
		}
		text, err = s.ai.GetOrGenerate(ctx, req.GameID, s.loadEvents(req.GameID), req.ForceRefresh)
	default:
		if s.stats == nil {
			return SummaryResult{}, fmt.Errorf("%w: stats summaries are not configured", ErrDependencyUnavailable)
		}
		text, err = s.stats.GetOrBuildStatsSummary(ctx, StatsSummaryInput{GameID: req.GameID, ForceRefresh: req.ForceRefresh})
	}
	if err != nil {
		recordSpanError(span, err)
		return SummaryResult{}, err
	}
	return SummaryResult{GameID: req.GameID, Mode: mode, Text: text}, nil
}

func (s *CommentaryService) loadEvents(gameID int64) func(context.Context) ([]gameevent.Event, error) {
	return func(ctx context.Context) ([]gameevent.Event, error) {
		if s.events == nil {
			return nil, fmt.Errorf("%w: event source is not configured", ErrDependencyUnavailable)
		}
		return s.events.Events(ctx, gameID)
	}
}
