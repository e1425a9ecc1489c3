package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/gameevent"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/nhlgame"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/logging"
)

const maxStars = 3

type PlayByPlaySource interface {
	PlayByPlay(ctx context.Context, gameID int64) (nhlgame.PlayByPlay, error)
}

type GameStorySource interface {
	GameStory(ctx context.Context, gameID int64) (nhlgame.Story, error)
}

// GameAssembler turns one game's upstream payloads into the canonical event
// stream: normalized plays followed by star events and one metadata event.
type GameAssembler struct {
	playByPlay PlayByPlaySource
	story      GameStorySource
	metrics    Metrics
	logger     *logging.Logger
}

func NewGameAssembler(playByPlay PlayByPlaySource, story GameStorySource, metrics Metrics, logger *logging.Logger) *GameAssembler {
	return &GameAssembler{
		playByPlay: playByPlay,
		story:      story,
		metrics:    metricsOrNoop(metrics),
		logger:     logger,
	}
}

func (a *GameAssembler) Assemble(ctx context.Context, gameID int64) (events []gameevent.Event, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameAssembler.Assemble", attribute.Int64("game.id", gameID))
	defer span.End()

	start := time.Now()
	defer func() {
		recordSpanError(span, err)
		a.metrics.ObserveAssembly(time.Since(start), len(events), err)
	}()

	if gameID <= 0 {
		return nil, fmt.Errorf("%w: game id must be positive", ErrInvalidInput)
	}
	if a.playByPlay == nil || a.story == nil {
		return nil, fmt.Errorf("%w: game assembler sources are not configured", ErrDependencyUnavailable)
	}

	key := strconv.FormatInt(gameID, 10)
	pbp, err := a.playByPlay.PlayByPlay(ctx, gameID)
	if err != nil {
		return nil, newFetchError(ResourcePlayByPlay, key, err)
	}

	players := NewPlayerDirectory(pbp.RosterSpots)
	teams := NewTeamDirectory(pbp.HomeTeam, pbp.AwayTeam)

	events = gameevent.NormalizeAll(pbp.Plays)
	for i := range events {
		attachTeamName(&events[i], teams)
		if events[i].Type == gameevent.KindGoal {
			attachGoalNames(&events[i], players)
		}
	}

	story, err := a.story.GameStory(ctx, gameID)
	if err != nil {
		return nil, newFetchError(ResourceGameStory, key, err)
	}
	teams.Merge(story.HomeTeam)
	teams.Merge(story.AwayTeam)

	events = append(events, starEvents(story.Summary.ThreeStars, players, teams)...)
	events = append(events, metadataEvent(gameID, pbp, story))

	a.logger.DebugContext(ctx, "game assembled",
		"game_id", gameID,
		"plays", len(pbp.Plays),
		"events", len(events),
	)
	return events, nil
}

func attachTeamName(event *gameevent.Event, teams *TeamDirectory) {
	if event.TeamID == nil {
		return
	}
	if name, ok := teams.Name(*event.TeamID); ok {
		event.TeamName = &name
	}
}

func attachGoalNames(event *gameevent.Event, players PlayerDirectory) {
	event.Players.NamesAttached = true
	event.Players.ScorerName = nil
	if event.Players.ScorerID != nil {
		event.Players.ScorerName = playerName(players, *event.Players.ScorerID)
	}
	event.Players.AssistNames = make([]*string, len(event.Players.AssistIDs))
	for i, assistID := range event.Players.AssistIDs {
		if assistID != nil {
			event.Players.AssistNames[i] = playerName(players, *assistID)
		}
	}
}

func playerName(players PlayerDirectory, playerID int64) *string {
	name, ok := players.Name(playerID)
	if !ok {
		return nil
	}
	return &name
}

// starEvents keeps the boxscore's top stars in rank order. A star without a
// rank takes its position in the list.
func starEvents(stars []nhlgame.ThreeStar, players PlayerDirectory, teams *TeamDirectory) []gameevent.Event {
	ranked := make([]nhlgame.ThreeStar, len(stars))
	copy(ranked, stars)
	for i := range ranked {
		if ranked[i].Star <= 0 {
			ranked[i].Star = i + 1
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Star < ranked[j].Star })
	if len(ranked) > maxStars {
		ranked = ranked[:maxStars]
	}

	out := make([]gameevent.Event, 0, len(ranked))
	for _, star := range ranked {
		out = append(out, starEvent(star, players, teams))
	}
	return out
}

func starEvent(star nhlgame.ThreeStar, players PlayerDirectory, teams *TeamDirectory) gameevent.Event {
	event := gameevent.Event{
		Type: gameevent.KindStar,
		Star: &gameevent.Star{Rank: star.Star},
	}

	if star.PlayerID != 0 {
		playerID := star.PlayerID
		event.Star.PlayerID = &playerID
	}

	if name, ok := players.Name(star.PlayerID); ok {
		event.Star.Name = &name
	} else {
		event.Star.Name = optionalString(star.Name.String())
	}

	position := strings.ToUpper(strings.TrimSpace(star.Position))
	event.Star.Position = optionalString(position)
	goalie := gameevent.StarStats{
		GoalsAgainstAverage: star.GoalsAgainstAverage,
		SavePctg:            star.SavePctg,
	}
	skater := gameevent.StarStats{
		Goals:   star.Goals,
		Assists: star.Assists,
		Points:  star.Points,
	}
	// Position picks the stat group; when that group is empty use the other one.
	useGoalie := position == "G"
	if useGoalie && !goalie.IsGoalie() && skater.IsSkater() {
		useGoalie = false
	}
	if !useGoalie && !skater.IsSkater() && goalie.IsGoalie() {
		useGoalie = true
	}
	if useGoalie {
		event.Star.Stats = goalie
	} else {
		event.Star.Stats = skater
	}

	teamID, ok := players.Team(star.PlayerID)
	if !ok {
		teamID, ok = teams.IDByAbbrev(star.TeamAbbrev.String())
	}
	if ok {
		event.TeamID = &teamID
		if name, found := teams.Name(teamID); found {
			event.TeamName = &name
		}
	}
	return event
}

func metadataEvent(gameID int64, pbp nhlgame.PlayByPlay, story nhlgame.Story) gameevent.Event {
	meta := &gameevent.Metadata{
		GameID:        gameID,
		GameType:      story.GameType,
		Venue:         optionalString(story.Venue.String()),
		VenueLocation: optionalString(story.VenueLocation.String()),
		HomeTeam:      teamInfo(story.HomeTeam, pbp.HomeTeam),
		AwayTeam:      teamInfo(story.AwayTeam, pbp.AwayTeam),
	}
	if story.ID != 0 {
		meta.GameID = story.ID
	}
	if meta.GameType == nil && pbp.GameType != 0 {
		gameType := pbp.GameType
		meta.GameType = &gameType
	}
	return gameevent.Event{Type: gameevent.KindMetadata, Metadata: meta}
}

// teamInfo prefers the story block and falls back to the play-by-play block
// when the story does not identify the team.
func teamInfo(team, fallback nhlgame.Team) gameevent.TeamInfo {
	if team.ID == 0 {
		team = fallback
	}

	info := gameevent.TeamInfo{
		Abbrev:    optionalString(team.Abbrev),
		PlaceName: optionalString(team.PlaceName.String()),
		Score:     team.Score,
		SOG:       team.SOG,
		Logo:      optionalString(team.Logo),
	}
	if team.ID != 0 {
		teamID := team.ID
		info.ID = &teamID
	}
	if name := team.Name.String(); name != "" {
		info.Name = &name
	} else {
		info.Name = optionalString(team.DisplayName())
	}
	return info
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
