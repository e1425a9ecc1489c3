package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/nhlgame"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/logging"
)

const gameDateLayout = "2006-01-02"

type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, date string) ([]byte, error)
}

type ScheduleService struct {
	provider ScheduleProvider
	metrics  Metrics
	logger   *logging.Logger
}

func NewScheduleService(provider ScheduleProvider, metrics Metrics, logger *logging.Logger) *ScheduleService {
	return &ScheduleService{
		provider: provider,
		metrics:  metricsOrNoop(metrics),
		logger:   logger,
	}
}

// ListGames returns the games scheduled on date (YYYY-MM-DD).
func (s *ScheduleService) ListGames(ctx context.Context, date string) ([]nhlgame.ScheduledGame, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.ListGames", attribute.String("game.date", date))
	defer span.End()

	date, err := ParseGameDate(date)
	if err != nil {
		return nil, err
	}
	if s.provider == nil {
		return nil, fmt.Errorf("%w: schedule provider is not configured", ErrDependencyUnavailable)
	}

	raw, err := s.provider.FetchSchedule(ctx, date)
	if err != nil {
		s.metrics.ObserveFetch(ResourceSchedule, sourceError)
		recordSpanError(span, err)
		return nil, newFetchError(ResourceSchedule, date, err)
	}
	games, err := nhlgame.DecodeSchedule(raw, date)
	if err != nil {
		s.metrics.ObserveFetch(ResourceSchedule, sourceError)
		recordSpanError(span, err)
		return nil, newFetchError(ResourceSchedule, date, err)
	}
	s.metrics.ObserveFetch(ResourceSchedule, sourceUpstream)

	s.logger.DebugContext(ctx, "schedule loaded", "date", date, "games", len(games))
	return games, nil
}

// ParseGameDate validates a YYYY-MM-DD date and returns it trimmed.
func ParseGameDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(gameDateLayout, date); err != nil {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidInput, date)
	}
	return date, nil
}
