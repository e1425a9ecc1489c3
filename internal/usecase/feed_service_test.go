package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/dateindex"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/infrastructure/repository/memory"
	blobmock "github.com/eugene-petrov-me/nhl-commentary-core/internal/mocks/domain/blob"
	usecasemock "github.com/eugene-petrov-me/nhl-commentary-core/internal/mocks/usecase"
)

func TestGameFeedService_CachesUpstreamPayload(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	ctx := context.Background()

	first, err := p.raw.PlayByPlay(ctx, testGameID)
	require.NoError(t, err)
	second, err := p.raw.PlayByPlay(ctx, testGameID)
	require.NoError(t, err)

	require.Equal(t, first.HomeTeam.Abbrev, second.HomeTeam.Abbrev)
	require.Equal(t, 1, p.feed.count(ResourcePlayByPlay), "second read must come from the cache")

	object, ok := p.stored(t, blob.RawPlayByPlayKey(testGameID))
	require.True(t, ok)
	require.Equal(t, blob.ContentTypeJSON, object.ContentType)
	require.Equal(t, []string{
		ResourcePlayByPlay + "/" + sourceUpstream,
		ResourcePlayByPlay + "/" + sourceCache,
	}, p.metrics.fetches)
}

func TestGameFeedService_RefetchesUnusableCache(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	ctx := context.Background()
	require.NoError(t, p.blobs.Put(ctx, blob.Object{Key: blob.RawStoryKey(testGameID), Body: []byte("{not json")}))

	story, err := p.raw.GameStory(ctx, testGameID)
	require.NoError(t, err)
	require.Len(t, story.Summary.ThreeStars, 3)
	require.Equal(t, 1, p.feed.count(ResourceGameStory))

	object, ok := p.stored(t, blob.RawStoryKey(testGameID))
	require.True(t, ok)
	require.JSONEq(t, sampleStory, string(object.Body))
}

func TestGameFeedService_MarksDateIndex(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	ctx := WithGameDate(context.Background(), testDate)

	require.NoError(t, p.raw.Prefetch(ctx, testGameID))

	row, ok := p.row(t, testDate, testGameID)
	require.True(t, ok)
	require.True(t, row.RawPlayByPlay)
	require.True(t, row.RawStory)
	require.False(t, row.Events)
	require.Equal(t, "PIT", row.Away)
	require.Equal(t, "PHI", row.Home)
}

func TestGameFeedService_UpstreamFailure(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewGameFeedProvider(t)
	notifier := usecasemock.NewArtifactNotifier(t)
	provider.On("FetchPlayByPlay", mock.Anything, testGameID).Return(nil, errors.New("status 503")).Once()

	service := NewGameFeedService(provider, memory.NewBlobRepository(), notifier, nil, nil)
	_, err := service.PlayByPlay(WithGameDate(context.Background(), testDate), testGameID)
	require.ErrorIs(t, err, ErrUpstreamFetch)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, ResourcePlayByPlay, fetchErr.Resource)
	require.Equal(t, "2024021180", fetchErr.Key)
	notifier.AssertNotCalled(t, "MarkArtifact", mock.Anything, mock.Anything)
}

func TestGameFeedService_UndecodablePayloadIsFetchError(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewGameFeedProvider(t)
	provider.On("FetchGameStory", mock.Anything, testGameID).Return([]byte(`{"id": 1}`), nil).Once()

	blobs := memory.NewBlobRepository()
	service := NewGameFeedService(provider, blobs, nil, nil, nil)
	_, err := service.GameStory(context.Background(), testGameID)
	require.ErrorIs(t, err, ErrUpstreamFetch)

	ok, err := blobs.Exists(context.Background(), blob.RawStoryKey(testGameID))
	require.NoError(t, err)
	require.False(t, ok, "undecodable payloads are not cached")
}

func TestGameFeedService_CacheFailuresDoNotFail(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewGameFeedProvider(t)
	blobs := blobmock.NewRepository(t)
	notifier := usecasemock.NewArtifactNotifier(t)

	key := blob.RawPlayByPlayKey(testGameID)
	blobs.On("Get", mock.Anything, key).Return(blob.Object{}, false, errors.New("bucket unreachable")).Once()
	blobs.On("Put", mock.Anything, mock.MatchedBy(func(o blob.Object) bool { return o.Key == key })).Return(errors.New("bucket unreachable")).Once()
	provider.On("FetchPlayByPlay", mock.Anything, testGameID).Return([]byte(samplePlayByPlay), nil).Once()
	notifier.On("MarkArtifact", mock.Anything, dateindex.Mark{
		Date:     testDate,
		GameID:   testGameID,
		Away:     "PIT",
		Home:     "PHI",
		Artifact: dateindex.ArtifactRawPlayByPlay,
		Exists:   true,
	}).Return(errors.New("index unavailable")).Once()

	service := NewGameFeedService(provider, blobs, notifier, nil, nil)
	pbp, err := service.PlayByPlay(WithGameDate(context.Background(), testDate), testGameID)
	require.NoError(t, err)
	require.Len(t, pbp.Plays, 4)
}

func TestGameFeedService_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewGameFeedService(nil, nil, nil, nil, nil).PlayByPlay(context.Background(), -1)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewGameFeedService(nil, nil, nil, nil, nil).GameStory(context.Background(), testGameID)
	require.ErrorIs(t, err, ErrDependencyUnavailable)
}
