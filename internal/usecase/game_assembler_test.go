package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/gameevent"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/nhlgame"
	usecasemock "github.com/eugene-petrov-me/nhl-commentary-core/internal/mocks/usecase"
)

func TestGameAssembler_Assemble(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	events, err := p.assembler.Assemble(context.Background(), testGameID)
	require.NoError(t, err)

	// four plays, three stars, one metadata event
	require.Len(t, events, 8)
	kinds := make([]gameevent.Kind, len(events))
	for i, event := range events {
		kinds[i] = event.Type
	}
	require.Equal(t, []gameevent.Kind{
		gameevent.KindUnknown,
		gameevent.KindGoal,
		gameevent.KindShotOnGoal,
		gameevent.KindPenalty,
		gameevent.KindStar,
		gameevent.KindStar,
		gameevent.KindStar,
		gameevent.KindMetadata,
	}, kinds)

	unknown := events[0]
	require.Equal(t, "period-start", unknown.RawData.TypeKey())

	goal := events[1]
	require.True(t, goal.Players.NamesAttached)
	require.Equal(t, "Travis Konecny", *goal.Players.ScorerName)
	require.Equal(t, []*int64{int64Ptr(8476461), nil}, goal.Players.AssistIDs)
	require.Len(t, goal.Players.AssistNames, 2)
	require.Nil(t, goal.Players.AssistNames[0], "assist outside the roster has no name")
	require.Nil(t, goal.Players.AssistNames[1], "empty assist slot has no name")
	require.Equal(t, "Flyers", *goal.TeamName)
	require.Equal(t, gameevent.Score{Home: 1, Away: 0}, goal.Score)

	shot := events[2]
	require.Equal(t, "Penguins", *shot.TeamName)
	require.False(t, shot.Players.NamesAttached)

	stars := events[4:7]
	for i, star := range stars {
		require.Equal(t, i+1, star.Star.Rank)
	}
	require.Equal(t, "Travis Konecny", *stars[0].Star.Name)
	require.Equal(t, int64(4), *stars[0].TeamID)
	require.True(t, stars[0].Star.Stats.IsSkater())
	require.False(t, stars[0].Star.Stats.IsGoalie())
	require.Equal(t, "G", *stars[1].Star.Position)
	require.True(t, stars[1].Star.Stats.IsGoalie())
	require.Nil(t, stars[1].Star.Stats.Goals)
	require.Equal(t, "Penguins", *stars[2].TeamName)

	meta := events[7].Metadata
	require.NotNil(t, meta)
	require.Equal(t, testGameID, meta.GameID)
	require.Equal(t, gameevent.GameTypeRegular, *meta.GameType)
	require.Equal(t, "Wells Fargo Center", *meta.Venue)
	require.Equal(t, "PHI", *meta.HomeTeam.Abbrev)
	require.Equal(t, "Flyers", *meta.HomeTeam.Name)
	require.Equal(t, 31, *meta.HomeTeam.SOG)
	require.Equal(t, 0, *meta.AwayTeam.Score)

	require.Equal(t, []error{nil}, p.metrics.assemblies)
}

func TestGameAssembler_StarsWithoutRosterEntry(t *testing.T) {
	t.Parallel()

	pbpSource := usecasemock.NewPlayByPlaySource(t)
	storySource := usecasemock.NewGameStorySource(t)

	pbpSource.On("PlayByPlay", mock.Anything, testGameID).Return(nhlgame.PlayByPlay{
		HomeTeam: nhlgame.Team{ID: 4, Abbrev: "PHI"},
		AwayTeam: nhlgame.Team{ID: 5, Abbrev: "PIT"},
		Plays:    []gameevent.RawEvent{},
	}, nil).Once()
	storySource.On("GameStory", mock.Anything, testGameID).Return(nhlgame.Story{
		Summary: nhlgame.StorySummary{ThreeStars: []nhlgame.ThreeStar{
			{PlayerID: 1, Name: nhlgame.LocalizedString{Default: "A. One"}, TeamAbbrev: nhlgame.LocalizedString{Default: "pit"}},
			{PlayerID: 2, Name: nhlgame.LocalizedString{Default: "B. Two"}},
			{PlayerID: 3},
			{PlayerID: 4, Star: 9},
		}},
	}, nil).Once()

	assembler := NewGameAssembler(pbpSource, storySource, nil, nil)
	events, err := assembler.Assemble(context.Background(), testGameID)
	require.NoError(t, err)

	// at most three stars plus metadata
	require.Len(t, events, 4)
	first := events[0]
	require.Equal(t, 1, first.Star.Rank)
	require.Equal(t, "A. One", *first.Star.Name)
	require.Equal(t, int64(5), *first.TeamID, "team falls back to abbreviation lookup")
	require.Nil(t, events[1].TeamID)
	require.Nil(t, events[2].Star.Name)

	meta := events[3].Metadata
	require.Equal(t, testGameID, meta.GameID)
	require.Equal(t, "PHI", *meta.HomeTeam.Abbrev, "play-by-play team fills in a missing story team")
}

func TestStarEvent_StatsFollowAvailableGroup(t *testing.T) {
	t.Parallel()

	players := NewPlayerDirectory(nil)
	teams := NewTeamDirectory()
	gaa, sv := 1.5, 0.94

	noPosition := starEvent(nhlgame.ThreeStar{Star: 1, PlayerID: 1, GoalsAgainstAverage: &gaa, SavePctg: &sv}, players, teams)
	require.True(t, noPosition.Star.Stats.IsGoalie())
	require.Equal(t, &sv, noPosition.Star.Stats.SavePctg)
	require.Nil(t, noPosition.Star.Position)

	oddPosition := starEvent(nhlgame.ThreeStar{Star: 2, PlayerID: 2, Position: "X", SavePctg: &sv}, players, teams)
	require.True(t, oddPosition.Star.Stats.IsGoalie())
	require.False(t, oddPosition.Star.Stats.IsSkater())

	goalieWithSkaterLine := starEvent(nhlgame.ThreeStar{Star: 3, PlayerID: 3, Position: "G", Points: intPtr(1)}, players, teams)
	require.True(t, goalieWithSkaterLine.Star.Stats.IsSkater())

	skater := starEvent(nhlgame.ThreeStar{Star: 1, PlayerID: 4, Position: "C", Goals: intPtr(2), SavePctg: &sv}, players, teams)
	require.True(t, skater.Star.Stats.IsSkater())
	require.False(t, skater.Star.Stats.IsGoalie())
}

func TestGameAssembler_SourceErrorsAreFetchErrors(t *testing.T) {
	t.Parallel()

	pbpSource := usecasemock.NewPlayByPlaySource(t)
	storySource := usecasemock.NewGameStorySource(t)
	pbpSource.On("PlayByPlay", mock.Anything, testGameID).Return(nhlgame.PlayByPlay{}, errors.New("boom")).Once()

	metrics := &recordingMetrics{}
	assembler := NewGameAssembler(pbpSource, storySource, metrics, nil)
	_, err := assembler.Assemble(context.Background(), testGameID)
	require.ErrorIs(t, err, ErrUpstreamFetch)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, ResourcePlayByPlay, fetchErr.Resource)
	require.Len(t, metrics.assemblies, 1)
	require.Error(t, metrics.assemblies[0])
}

func TestGameAssembler_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := NewGameAssembler(nil, nil, nil, nil).Assemble(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewGameAssembler(nil, nil, nil, nil).Assemble(context.Background(), testGameID)
	require.ErrorIs(t, err, ErrDependencyUnavailable)
}
