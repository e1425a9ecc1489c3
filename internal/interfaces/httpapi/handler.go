package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/dateindex"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/gameevent"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/nhlgame"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/logging"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type ScheduleLister interface {
	ListGames(ctx context.Context, date string) ([]nhlgame.ScheduledGame, error)
}

type GameProcessor interface {
	ProcessGame(ctx context.Context, gameID int64) ([]gameevent.Event, error)
	Events(ctx context.Context, gameID int64) ([]gameevent.Event, error)
}

type SummaryProvider interface {
	Summary(ctx context.Context, req usecase.SummaryRequest) (usecase.SummaryResult, error)
}

type BackfillRunner interface {
	Run(ctx context.Context, input usecase.BackfillInput) (usecase.BackfillResult, error)
}

type MissingGamesLister interface {
	ListGamesMissing(ctx context.Context, date string, artifact dateindex.Artifact) ([]int64, error)
}

type Handler struct {
	schedule  ScheduleLister
	games     GameProcessor
	summaries SummaryProvider
	backfill  BackfillRunner
	index     MissingGamesLister
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(
	schedule ScheduleLister,
	games GameProcessor,
	summaries SummaryProvider,
	backfill BackfillRunner,
	index MissingGamesLister,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		schedule:  schedule,
		games:     games,
		summaries: summaries,
		backfill:  backfill,
		index:     index,
		logger:    logger.Named("httpapi"),
		validator: validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSON accepts an empty body as the zero payload.
func decodeJSON(r *http.Request, out any) error {
	decoder := jsoniter.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func parseGameIDParam(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("gameID"))
	gameID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || gameID <= 0 {
		return 0, fmt.Errorf("%w: game id must be a positive integer, got %q", usecase.ErrInvalidInput, raw)
	}
	return gameID, nil
}

func parseBoolQuery(r *http.Request, key string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean, got %q", usecase.ErrInvalidInput, key, raw)
	}
	return value, nil
}

// withOptionalDate validates a YYYY-MM-DD date and carries it on the context
// so artifacts get recorded in that day's index.
func withOptionalDate(ctx context.Context, raw string) (context.Context, error) {
	if strings.TrimSpace(raw) == "" {
		return ctx, nil
	}
	date, err := usecase.ParseGameDate(raw)
	if err != nil {
		return ctx, err
	}
	return usecase.WithGameDate(ctx, date), nil
}
