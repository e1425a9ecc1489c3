package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/dateindex"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/nhlgame"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/usecase"
)

func (h *Handler) ListSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSchedule")
	defer span.End()

	date, err := usecase.ParseGameDate(r.PathValue("date"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	games, err := h.schedule.ListGames(ctx, date)
	if err != nil {
		h.logger.WarnContext(ctx, "list schedule failed", "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}
	if games == nil {
		games = []nhlgame.ScheduledGame{}
	}

	writeSuccess(ctx, w, http.StatusOK, scheduleDTO{Date: date, Games: games})
}

func (h *Handler) GetGameEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameEvents")
	defer span.End()

	gameID, err := parseGameIDParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	ctx, err = withOptionalDate(ctx, r.URL.Query().Get("date"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	events, err := h.games.Events(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get game events failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventsDTO{GameID: gameID, Count: len(events), Events: events})
}

func (h *Handler) GetGameSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameSummary")
	defer span.End()

	gameID, err := parseGameIDParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := r.URL.Query()
	mode, err := usecase.ParseSummaryMode(query.Get("mode"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	forceRefresh, err := parseBoolQuery(r, "force_refresh")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.summaries.Summary(ctx, usecase.SummaryRequest{
		GameID:       gameID,
		Mode:         mode,
		ForceRefresh: forceRefresh,
		Date:         strings.TrimSpace(query.Get("date")),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get game summary failed", "game_id", gameID, "mode", mode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) ProcessGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProcessGame")
	defer span.End()

	gameID, err := parseGameIDParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req processGameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	ctx, err = withOptionalDate(ctx, req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	events, err := h.games.ProcessGame(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "process game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	away, home := usecase.Matchup(events)
	writeSuccess(ctx, w, http.StatusOK, processGameDTO{
		GameID: gameID,
		Away:   away,
		Home:   home,
		Events: len(events),
	})
}

func (h *Handler) RunBackfill(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunBackfill")
	defer span.End()

	var req backfillRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.backfill.Run(ctx, usecase.BackfillInput{
		Date:       req.Date,
		Artifact:   req.Artifact,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "backfill failed", "date", req.Date, "artifact", req.Artifact, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) ListMissingGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMissingGames")
	defer span.End()

	date, err := usecase.ParseGameDate(r.PathValue("date"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	artifact, err := dateindex.ParseArtifact(r.URL.Query().Get("artifact"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	gameIDs, err := h.index.ListGamesMissing(ctx, date, artifact)
	if err != nil {
		h.logger.WarnContext(ctx, "list missing games failed", "date", date, "artifact", artifact, "error", err)
		writeError(ctx, w, err)
		return
	}
	if gameIDs == nil {
		gameIDs = []int64{}
	}

	writeSuccess(ctx, w, http.StatusOK, missingGamesDTO{Date: date, Artifact: string(artifact), GameIDs: gameIDs})
}
