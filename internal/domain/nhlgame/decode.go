package nhlgame

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/gameevent"
)

// ErrUnexpectedPayload reports a payload missing the field that identifies its shape.
var ErrUnexpectedPayload = errors.New("unexpected payload shape")

// DecodePlayByPlay requires the "plays" list to be present.
func DecodePlayByPlay(raw []byte) (PlayByPlay, error) {
	var wire struct {
		PlayByPlay
		Plays *[]gameevent.RawEvent `json:"plays"`
	}
	if err := sonic.Unmarshal(raw, &wire); err != nil {
		return PlayByPlay{}, fmt.Errorf("decode play-by-play: %w", err)
	}
	if wire.Plays == nil {
		return PlayByPlay{}, fmt.Errorf("%w: play-by-play has no plays", ErrUnexpectedPayload)
	}

	out := wire.PlayByPlay
	out.Plays = *wire.Plays
	return out, nil
}

// DecodeStory requires the "summary" block to be present.
func DecodeStory(raw []byte) (Story, error) {
	var wire struct {
		Story
		Summary *StorySummary `json:"summary"`
	}
	if err := sonic.Unmarshal(raw, &wire); err != nil {
		return Story{}, fmt.Errorf("decode game story: %w", err)
	}
	if wire.Summary == nil {
		return Story{}, fmt.Errorf("%w: game story has no summary", ErrUnexpectedPayload)
	}

	out := wire.Story
	out.Summary = *wire.Summary
	return out, nil
}

type scheduleWire struct {
	GameWeek *[]scheduleDay `json:"gameWeek"`
}

type scheduleDay struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	ID       int64 `json:"id"`
	Season   int64 `json:"season"`
	GameType int   `json:"gameType"`
	HomeTeam struct {
		Abbrev string `json:"abbrev"`
		Score  *int   `json:"score"`
	} `json:"homeTeam"`
	AwayTeam struct {
		Abbrev string `json:"abbrev"`
		Score  *int   `json:"score"`
	} `json:"awayTeam"`
	WinningGoalScorer *struct {
		PlayerID *int64 `json:"playerId"`
	} `json:"winningGoalScorer"`
}

// DecodeSchedule picks the games of date from a week schedule payload.
// The first day is used when no day matches date exactly.
func DecodeSchedule(raw []byte, date string) ([]ScheduledGame, error) {
	var wire scheduleWire
	if err := sonic.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}
	if wire.GameWeek == nil {
		return nil, fmt.Errorf("%w: schedule has no gameWeek", ErrUnexpectedPayload)
	}
	days := *wire.GameWeek
	if len(days) == 0 {
		return []ScheduledGame{}, nil
	}

	day := days[0]
	for _, candidate := range days {
		if candidate.Date == date {
			day = candidate
			break
		}
	}

	out := make([]ScheduledGame, 0, len(day.Games))
	for _, game := range day.Games {
		item := ScheduledGame{
			GameID:        game.ID,
			SeasonID:      game.Season,
			GameType:      game.GameType,
			HomeTeam:      game.HomeTeam.Abbrev,
			HomeTeamScore: game.HomeTeam.Score,
			AwayTeam:      game.AwayTeam.Abbrev,
			AwayTeamScore: game.AwayTeam.Score,
		}
		if game.WinningGoalScorer != nil {
			item.WinningGoalScorerID = game.WinningGoalScorer.PlayerID
		}
		out = append(out, item)
	}
	return out, nil
}
