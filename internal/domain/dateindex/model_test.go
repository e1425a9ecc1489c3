package dateindex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocument_UpsertAndMissing(t *testing.T) {
	t.Parallel()

	doc := NewDocument("2025-04-01")
	doc.Upsert(2024021180, "PIT", "PHI").Set(ArtifactEvents, true)
	doc.Upsert(2024021181, "", "")
	row := doc.Upsert(2024021180, "", "")

	require.Len(t, doc.Games, 2)
	require.Equal(t, "PIT", row.Away)
	require.Equal(t, "PHI", row.Home)
	require.True(t, row.Has(ArtifactEvents))
	require.Equal(t, []int64{2024021181}, doc.Missing(ArtifactEvents))
	require.Equal(t, []int64{2024021180, 2024021181}, doc.Missing(ArtifactSummaryAI))
}

func TestParseArtifact(t *testing.T) {
	t.Parallel()

	got, err := ParseArtifact(" Summary_Stats ")
	require.NoError(t, err)
	require.Equal(t, ArtifactSummaryStats, got)

	_, err = ParseArtifact("boxscore")
	require.Error(t, err)
}
