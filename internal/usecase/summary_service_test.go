package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/gameevent"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/infrastructure/repository/memory"
	usecasemock "github.com/eugene-petrov-me/nhl-commentary-core/internal/mocks/usecase"
)

func TestSummaryService_BuildsAndCaches(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	ctx := WithGameDate(context.Background(), testDate)

	text, err := p.stats.GetOrBuildStatsSummary(ctx, StatsSummaryInput{GameID: testGameID})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(text, "Game Summary:"))
	require.Contains(t, text, "Matchup: PIT @ PHI")
	require.Contains(t, text, "Final score: PIT 0 - 1 PHI")

	object, ok := p.stored(t, blob.StatsSummaryKey(testGameID))
	require.True(t, ok)
	require.Equal(t, text, string(object.Body))
	require.Equal(t, blob.ContentTypeText, object.ContentType)

	row, ok := p.row(t, testDate, testGameID)
	require.True(t, ok)
	require.True(t, row.SummaryStats)
	require.True(t, row.Events, "building the summary processes the game")

	again, err := p.stats.GetOrBuildStatsSummary(ctx, StatsSummaryInput{GameID: testGameID})
	require.NoError(t, err)
	require.Equal(t, text, again)
	require.Equal(t, []string{"stats/built", "stats/cache"}, p.metrics.summaries)
}

func TestSummaryService_ForceRefreshAndCustomGenerator(t *testing.T) {
	t.Parallel()

	blobs := memory.NewBlobRepository(blob.Object{Key: blob.StatsSummaryKey(testGameID), Body: []byte("stale")})
	events := []gameevent.Event{{Type: gameevent.KindGoal}, {Type: gameevent.KindHit}}

	calls := 0
	service := NewSummaryService(nil, blobs, nil, nil, nil, WithSummaryGenerator(func(in []gameevent.Event) string {
		calls++
		return strings.Repeat("x", len(in))
	}))

	cached, err := service.GetOrBuildStatsSummary(context.Background(), StatsSummaryInput{GameID: testGameID, Events: events})
	require.NoError(t, err)
	require.Equal(t, "stale", cached)
	require.Zero(t, calls)

	fresh, err := service.GetOrBuildStatsSummary(context.Background(), StatsSummaryInput{GameID: testGameID, Events: events, ForceRefresh: true})
	require.NoError(t, err)
	require.Equal(t, "xx", fresh)
	require.Equal(t, 1, calls)

	object, _, err := blobs.Get(context.Background(), blob.StatsSummaryKey(testGameID))
	require.NoError(t, err)
	require.Equal(t, "xx", string(object.Body))
}

func TestSummaryService_EventSourceFailure(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewEventSource(t)
	source.On("Events", mock.Anything, testGameID).Return(nil, errors.New("feed down")).Once()

	metrics := &recordingMetrics{}
	service := NewSummaryService(source, memory.NewBlobRepository(), nil, metrics, nil)
	_, err := service.GetOrBuildStatsSummary(context.Background(), StatsSummaryInput{GameID: testGameID})
	require.EqualError(t, err, "feed down")
	require.Equal(t, []string{"stats/error"}, metrics.summaries)

	_, err = service.GetOrBuildStatsSummary(context.Background(), StatsSummaryInput{})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewSummaryService(nil, nil, nil, nil, nil).GetOrBuildStatsSummary(context.Background(), StatsSummaryInput{GameID: 1})
	require.ErrorIs(t, err, ErrDependencyUnavailable)
}
