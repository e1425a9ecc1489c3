package gameevent

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeObject(t *testing.T, data []byte) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestEvent_MarshalJSONHitLayout(t *testing.T) {
	t.Parallel()

	event := Normalize(RawEvent{
		"typeDescKey": "hit",
		"details":     map[string]any{"hittingPlayerId": 5.0},
	})
	data, err := json.Marshal(event)
	require.NoError(t, err)

	got := decodeObject(t, data)
	require.ElementsMatch(t,
		[]string{"event_type", "players", "team_id", "period", "time", "zone", "location"},
		keys(got))
	require.Equal(t, map[string]any{"hitter_id": 5.0, "hittee_id": nil}, got["players"])
	require.Equal(t, map[string]any{"x": nil, "y": nil}, got["location"])
	require.Nil(t, got["team_id"])
}

func TestEvent_MarshalJSONGoalNamesOnlyWhenAttached(t *testing.T) {
	t.Parallel()

	event := Normalize(RawEvent{"typeDescKey": "goal", "details": map[string]any{"scoringPlayerId": 1.0}})
	got := decodeObject(t, mustMarshal(t, event))
	players := got["players"].(map[string]any)
	require.NotContains(t, players, "scorer_name")
	require.Equal(t, []any{nil, nil}, players["assist_ids"])
	require.Equal(t, map[string]any{"home": 0.0, "away": 0.0}, got["score"])

	name := "Sean Couturier"
	event.Players.NamesAttached = true
	event.Players.ScorerName = &name
	got = decodeObject(t, mustMarshal(t, event))
	players = got["players"].(map[string]any)
	require.Equal(t, "Sean Couturier", players["scorer_name"])
	require.Equal(t, []any{nil, nil}, players["assist_names"])
}

func TestEvent_MarshalJSONUnknownCarriesOnlyRawData(t *testing.T) {
	t.Parallel()

	raw := RawEvent{"typeDescKey": "stoppage", "details": map[string]any{"reason": "icing"}}
	got := decodeObject(t, mustMarshal(t, Normalize(raw)))
	require.ElementsMatch(t, []string{"event_type", "raw_data"}, keys(got))
	require.Equal(t, "unknown", got["event_type"])
}

func TestEvent_JSONRoundTripStarAndMetadata(t *testing.T) {
	t.Parallel()

	teamID := int64(4)
	teamName := "Flyers"
	playerID := int64(8478439)
	name := "Samuel Ersson"
	position := "G"
	gaa, svp := 1.0, 0.95
	star := Event{
		Type:     KindStar,
		TeamID:   &teamID,
		TeamName: &teamName,
		Star: &Star{
			Rank:     2,
			PlayerID: &playerID,
			Name:     &name,
			Position: &position,
			Stats:    StarStats{GoalsAgainstAverage: &gaa, SavePctg: &svp},
		},
	}

	gameType := GameTypeRegular
	venue := "Wells Fargo Center"
	abbrev := "PHI"
	score := 3
	meta := Event{
		Type: KindMetadata,
		Metadata: &Metadata{
			GameID:   2024021180,
			GameType: &gameType,
			Venue:    &venue,
			HomeTeam: TeamInfo{ID: &teamID, Name: &teamName, Abbrev: &abbrev, Score: &score},
		},
	}

	for _, event := range []Event{star, meta} {
		var back Event
		require.NoError(t, json.Unmarshal(mustMarshal(t, event), &back))
		require.Equal(t, event, back)
	}

	players := decodeObject(t, mustMarshal(t, star))["players"].(map[string]any)
	require.Equal(t, map[string]any{"goalsAgainstAverage": 1.0, "savePctg": 0.95}, players["stats"])
	require.Equal(t, 4.0, players["team_id"])
}

func TestJSONL_RoundTripPreservesOrderAndUnknownRawData(t *testing.T) {
	t.Parallel()

	raws := []RawEvent{
		{"typeDescKey": "faceoff", "timeInPeriod": "00:00", "periodDescriptor": map[string]any{"number": 1.0},
			"details": map[string]any{"winningPlayerId": 1.0, "losingPlayerId": 2.0, "eventOwnerTeamId": 4.0}},
		{"typeDescKey": "period-start", "eventId": 51.0, "details": map[string]any{"nested": []any{"a", 1.0}}},
		{"typeDescKey": "goal", "details": map[string]any{"scoringPlayerId": 3.0, "assist1PlayerId": 9.0, "awayScore": 1.0}},
	}
	events := NormalizeAll(raws)

	var buf bytes.Buffer
	require.NoError(t, EncodeJSONL(&buf, events))
	require.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("\n")))

	back, err := DecodeJSONL(&buf)
	require.NoError(t, err)
	require.Len(t, back, len(events))
	for i := range events {
		require.Equal(t, events[i].Type, back[i].Type)
	}
	require.Equal(t, events[0], back[0])
	require.Equal(t, events[2], back[2])

	replayed := Normalize(back[1].RawData)
	if !reflect.DeepEqual(replayed, events[1]) {
		t.Fatalf("unknown wrapper changed after replay: got=%+v want=%+v", replayed, events[1])
	}
}

func TestDecodeJSONL_ReportsLine(t *testing.T) {
	t.Parallel()

	_, err := UnmarshalJSONL([]byte("{\"event_type\":\"hit\"}\n\nnot-json\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 3")
}

func mustMarshal(t *testing.T, event Event) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)
	return data
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
