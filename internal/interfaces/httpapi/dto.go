package httpapi

import (
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/gameevent"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/nhlgame"
)

type processGameRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type backfillRequest struct {
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Artifact   string `json:"artifact" validate:"required,oneof=raw_pbp raw_story events summary_stats summary_ai"`
	MaxWorkers int    `json:"max_workers" validate:"omitempty,min=1,max=32"`
}

type scheduleDTO struct {
	Date  string                  `json:"date"`
	Games []nhlgame.ScheduledGame `json:"games"`
}

type eventsDTO struct {
	GameID int64             `json:"game_id"`
	Count  int               `json:"count"`
	Events []gameevent.Event `json:"events"`
}

type processGameDTO struct {
	GameID int64  `json:"game_id"`
	Away   string `json:"away,omitempty"`
	Home   string `json:"home,omitempty"`
	Events int    `json:"events"`
}

type missingGamesDTO struct {
	Date     string  `json:"date"`
	Artifact string  `json:"artifact"`
	GameIDs  []int64 `json:"game_ids"`
}
