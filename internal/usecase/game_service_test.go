package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/gameevent"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/infrastructure/repository/memory"
	usecasemock "github.com/eugene-petrov-me/nhl-commentary-core/internal/mocks/usecase"
)

func TestGameService_ProcessGameStoresJSONL(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	ctx := WithGameDate(context.Background(), testDate)

	events, err := p.games.ProcessGame(ctx, testGameID)
	require.NoError(t, err)
	require.Len(t, events, 8)

	object, ok := p.stored(t, blob.EventsKey(testGameID))
	require.True(t, ok)
	require.Equal(t, blob.ContentTypeJSONL, object.ContentType)

	decoded, err := gameevent.UnmarshalJSONL(object.Body)
	require.NoError(t, err)
	require.Len(t, decoded, len(events))
	require.Equal(t, gameevent.KindMetadata, decoded[len(decoded)-1].Type)

	row, ok := p.row(t, testDate, testGameID)
	require.True(t, ok)
	require.True(t, row.Events)
	require.True(t, row.RawPlayByPlay)
	require.Equal(t, "PIT", row.Away)
}

func TestGameService_EventsPrefersStoredStream(t *testing.T) {
	t.Parallel()

	assembler := usecasemock.NewEventAssembler(t)
	blobs := memory.NewBlobRepository()
	stream := []gameevent.Event{
		{Type: gameevent.KindFaceoff, Period: intPtr(1)},
		{Type: gameevent.KindMetadata, Metadata: &gameevent.Metadata{
			GameID:   testGameID,
			AwayTeam: gameevent.TeamInfo{Abbrev: strPtr("PIT")},
			HomeTeam: gameevent.TeamInfo{Abbrev: strPtr("PHI")},
		}},
	}
	assembler.On("Assemble", mock.Anything, testGameID).Return(stream, nil).Once()

	service := NewGameService(assembler, blobs, nil, nil)
	ctx := context.Background()

	first, err := service.Events(ctx, testGameID)
	require.NoError(t, err)
	second, err := service.Events(ctx, testGameID)
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	require.Equal(t, gameevent.KindFaceoff, second[0].Type)
	require.Equal(t, 1, *second[0].Period)

	away, home := Matchup(second)
	require.Equal(t, "PIT", away)
	require.Equal(t, "PHI", home)
}

func TestGameService_ProcessGameDoesNotStoreOnFailure(t *testing.T) {
	t.Parallel()

	assembler := usecasemock.NewEventAssembler(t)
	notifier := usecasemock.NewArtifactNotifier(t)
	blobs := memory.NewBlobRepository()
	assembler.On("Assemble", mock.Anything, testGameID).
		Return(nil, &FetchError{Resource: ResourceGameStory, Key: "2024021180", Err: errors.New("timeout")}).Once()

	service := NewGameService(assembler, blobs, notifier, nil)
	_, err := service.ProcessGame(WithGameDate(context.Background(), testDate), testGameID)
	require.ErrorIs(t, err, ErrUpstreamFetch)

	ok, err := blobs.Exists(context.Background(), blob.EventsKey(testGameID))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGameService_LoadEvents(t *testing.T) {
	t.Parallel()

	blobs := memory.NewBlobRepository(blob.Object{Key: blob.EventsKey(2), Body: []byte("not json\n")})
	service := NewGameService(nil, blobs, nil, nil)

	_, ok, err := service.LoadEvents(context.Background(), 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, _, err = service.LoadEvents(context.Background(), 2)
	require.Error(t, err)

	_, _, err = service.LoadEvents(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.ProcessGame(context.Background(), 1)
	require.ErrorIs(t, err, ErrDependencyUnavailable)
}

func TestMatchup_WithoutMetadata(t *testing.T) {
	t.Parallel()

	away, home := Matchup([]gameevent.Event{{Type: gameevent.KindHit}})
	require.Empty(t, away)
	require.Empty(t, home)
}
