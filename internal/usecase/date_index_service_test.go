package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/dateindex"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/nhlgame"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/infrastructure/repository/memory"
)

func TestDateIndexService_LoadMissingDocument(t *testing.T) {
	t.Parallel()

	service := NewDateIndexService(memory.NewBlobRepository(), nil)
	doc, err := service.Load(context.Background(), testDate)
	require.NoError(t, err)
	require.Equal(t, testDate, doc.Date)
	require.NotNil(t, doc.Games)
	require.Empty(t, doc.Games)
}

func TestDateIndexService_UnreadableDocumentStartsFresh(t *testing.T) {
	t.Parallel()

	blobs := memory.NewBlobRepository(blob.Object{Key: blob.DateIndexKey(testDate), Body: []byte("{broken")})
	service := NewDateIndexService(blobs, nil)

	require.NoError(t, service.MarkArtifact(context.Background(), dateindex.Mark{
		Date: testDate, GameID: testGameID, Artifact: dateindex.ArtifactEvents, Exists: true,
	}))

	doc, err := service.Load(context.Background(), testDate)
	require.NoError(t, err)
	require.Len(t, doc.Games, 1)
	require.True(t, doc.Games[0].Events)
}

func TestDateIndexService_SeedKeepsMarks(t *testing.T) {
	t.Parallel()

	service := NewDateIndexService(memory.NewBlobRepository(), nil)
	ctx := context.Background()

	require.NoError(t, service.MarkArtifact(ctx, dateindex.Mark{
		Date: testDate, GameID: 2024021181, Artifact: dateindex.ArtifactRawPlayByPlay, Exists: true,
	}))

	doc, err := service.SeedGames(ctx, testDate, []nhlgame.ScheduledGame{
		{GameID: testGameID, AwayTeam: "PIT", HomeTeam: "PHI"},
		{GameID: 2024021181, AwayTeam: "BOS", HomeTeam: "NYR"},
		{GameID: 0, AwayTeam: "XXX"},
	})
	require.NoError(t, err)
	require.Len(t, doc.Games, 2)
	require.Equal(t, int64(2024021181), doc.Games[0].GameID, "existing rows keep their position")
	require.Equal(t, "BOS", doc.Games[0].Away)
	require.True(t, doc.Games[0].RawPlayByPlay)

	missing, err := service.ListGamesMissing(ctx, testDate, dateindex.ArtifactRawPlayByPlay)
	require.NoError(t, err)
	require.Equal(t, []int64{testGameID}, missing)

	missing, err = service.ListGamesMissing(ctx, testDate, dateindex.ArtifactSummaryAI)
	require.NoError(t, err)
	require.Equal(t, []int64{2024021181, testGameID}, missing)
}

func TestDateIndexService_MarkCanClearArtifact(t *testing.T) {
	t.Parallel()

	service := NewDateIndexService(memory.NewBlobRepository(), nil)
	ctx := context.Background()
	mark := dateindex.Mark{Date: testDate, GameID: testGameID, Away: "PIT", Home: "PHI", Artifact: dateindex.ArtifactSummaryStats, Exists: true}

	require.NoError(t, service.MarkArtifact(ctx, mark))
	mark.Exists = false
	mark.Away, mark.Home = "", ""
	require.NoError(t, service.MarkArtifact(ctx, mark))

	doc, err := service.Load(ctx, testDate)
	require.NoError(t, err)
	require.False(t, doc.Games[0].SummaryStats)
	require.Equal(t, "PIT", doc.Games[0].Away, "empty matchup keeps the stored one")
}

func TestDateIndexService_ConcurrentMarks(t *testing.T) {
	t.Parallel()

	service := NewDateIndexService(memory.NewBlobRepository(), nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := int64(1); i <= 20; i++ {
		wg.Add(1)
		go func(gameID int64) {
			defer wg.Done()
			_ = service.MarkArtifact(ctx, dateindex.Mark{Date: testDate, GameID: gameID, Artifact: dateindex.ArtifactEvents, Exists: true})
		}(i)
	}
	wg.Wait()

	doc, err := service.Load(ctx, testDate)
	require.NoError(t, err)
	require.Len(t, doc.Games, 20)
}

func TestDateIndexService_Validation(t *testing.T) {
	t.Parallel()

	service := NewDateIndexService(memory.NewBlobRepository(), nil)
	ctx := context.Background()

	_, err := service.Load(ctx, "2025-13-01")
	require.ErrorIs(t, err, ErrInvalidInput)

	err = service.MarkArtifact(ctx, dateindex.Mark{Date: testDate, GameID: 0, Artifact: dateindex.ArtifactEvents})
	require.ErrorIs(t, err, ErrInvalidInput)

	err = service.MarkArtifact(ctx, dateindex.Mark{Date: testDate, GameID: 1, Artifact: "thumbnails"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.ListGamesMissing(ctx, testDate, "thumbnails")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewDateIndexService(nil, nil).Load(ctx, testDate)
	require.ErrorIs(t, err, ErrDependencyUnavailable)
}
