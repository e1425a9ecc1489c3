package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/dateindex"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/infrastructure/repository/memory"
)

const (
	testGameID = int64(2024021180)
	testDate   = "2025-04-01"
)

const samplePlayByPlay = `{
	"id": 2024021180,
	"gameType": 2,
	"homeTeam": {"id": 4, "abbrev": "PHI", "commonName": {"default": "Flyers"}, "placeName": {"default": "Philadelphia"}},
	"awayTeam": {"id": 5, "abbrev": "PIT", "commonName": {"default": "Penguins"}, "placeName": {"default": "Pittsburgh"}},
	"rosterSpots": [
		{"playerId": 8478402, "teamId": 4, "firstName": {"default": "Travis"}, "lastName": {"default": "Konecny"}, "positionCode": "R"},
		{"playerId": 8478439, "teamId": 4, "firstName": {"default": "Samuel"}, "lastName": {"default": "Ersson"}, "positionCode": "G"},
		{"playerId": 8471675, "teamId": 5, "firstName": {"default": "Sidney"}, "lastName": {"default": "Crosby"}, "positionCode": "C"}
	],
	"plays": [
		{"typeDescKey": "period-start", "periodDescriptor": {"number": 1}},
		{"typeDescKey": "goal", "periodDescriptor": {"number": 1}, "timeInPeriod": "05:12",
		 "details": {"eventOwnerTeamId": 4, "scoringPlayerId": 8478402, "assist1PlayerId": 8476461, "goalieInNetId": 8470000, "homeScore": 1, "awayScore": 0, "xCoord": 80, "yCoord": -5, "zoneCode": "O", "shotType": "wrist"}},
		{"typeDescKey": "shot-on-goal", "periodDescriptor": {"number": 2}, "timeInPeriod": "11:40",
		 "details": {"eventOwnerTeamId": 5, "shootingPlayerId": 8471675, "goalieInNetId": 8478439}},
		{"typeDescKey": "penalty", "periodDescriptor": {"number": 3}, "timeInPeriod": "02:01",
		 "details": {"eventOwnerTeamId": 5, "committedByPlayerId": 8471675, "typeCode": "MIN", "descKey": "tripping", "duration": 2}}
	]
}`

const sampleStory = `{
	"id": 2024021180,
	"gameType": 2,
	"venue": {"default": "Wells Fargo Center"},
	"venueLocation": {"default": "Philadelphia"},
	"homeTeam": {"id": 4, "abbrev": "PHI", "name": {"default": "Flyers"}, "placeName": {"default": "Philadelphia"}, "score": 1, "sog": 31},
	"awayTeam": {"id": 5, "abbrev": "PIT", "name": {"default": "Penguins"}, "placeName": {"default": "Pittsburgh"}, "score": 0, "sog": 30},
	"summary": {"threeStars": [
		{"star": 2, "playerId": 8478439, "teamAbbrev": "PHI", "name": {"default": "S. Ersson"}, "position": "G", "goalsAgainstAverage": 0.0, "savePctg": 1.0},
		{"star": 1, "playerId": 8478402, "teamAbbrev": "PHI", "name": {"default": "T. Konecny"}, "position": "R", "goals": 1, "assists": 0, "points": 1},
		{"star": 3, "playerId": 8471675, "teamAbbrev": "PIT", "name": {"default": "S. Crosby"}, "position": "C", "goals": 0, "assists": 0, "points": 0}
	]}
}`

const sampleSchedule = `{"gameWeek": [
	{"date": "2025-04-01", "games": [
		{"id": 2024021180, "season": 20242025, "gameType": 2,
		 "homeTeam": {"abbrev": "PHI", "score": 1}, "awayTeam": {"abbrev": "PIT", "score": 0}},
		{"id": 2024021181, "season": 20242025, "gameType": 2,
		 "homeTeam": {"abbrev": "NYR"}, "awayTeam": {"abbrev": "BOS"}}
	]}
]}`

// fakeFeed serves canned upstream payloads and counts fetches.
type fakeFeed struct {
	mu       sync.Mutex
	schedule []byte
	pbp      map[int64][]byte
	story    map[int64][]byte
	err      error
	calls    map[string]int
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{
		schedule: []byte(sampleSchedule),
		pbp:      map[int64][]byte{testGameID: []byte(samplePlayByPlay)},
		story:    map[int64][]byte{testGameID: []byte(sampleStory)},
		calls:    map[string]int{},
	}
}

func (f *fakeFeed) record(resource string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[resource]++
}

func (f *fakeFeed) count(resource string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[resource]
}

func (f *fakeFeed) FetchSchedule(_ context.Context, _ string) ([]byte, error) {
	f.record(ResourceSchedule)
	if f.err != nil {
		return nil, f.err
	}
	return f.schedule, nil
}

func (f *fakeFeed) FetchPlayByPlay(_ context.Context, gameID int64) ([]byte, error) {
	f.record(ResourcePlayByPlay)
	if f.err != nil {
		return nil, f.err
	}
	return f.pbp[gameID], nil
}

func (f *fakeFeed) FetchGameStory(_ context.Context, gameID int64) ([]byte, error) {
	f.record(ResourceGameStory)
	if f.err != nil {
		return nil, f.err
	}
	return f.story[gameID], nil
}

// recordingMetrics captures observations for assertions.
type recordingMetrics struct {
	mu         sync.Mutex
	fetches    []string
	summaries  []string
	assemblies []error
	backfills  []string
}

func (m *recordingMetrics) ObserveFetch(resource, source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches = append(m.fetches, resource+"/"+source)
}

func (m *recordingMetrics) ObserveSummary(kind, source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaries = append(m.summaries, kind+"/"+source)
}

func (m *recordingMetrics) ObserveAssembly(_ time.Duration, _ int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assemblies = append(m.assemblies, err)
}

func (m *recordingMetrics) ObserveBackfill(artifact, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.backfills = append(m.backfills, artifact+"/"+status)
}

// pipeline wires the real services over an in-memory blob store.
type pipeline struct {
	feed      *fakeFeed
	blobs     *memory.BlobRepository
	index     *DateIndexService
	metrics   *recordingMetrics
	schedule  *ScheduleService
	raw       *GameFeedService
	assembler *GameAssembler
	games     *GameService
	stats     *SummaryService
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()

	p := &pipeline{
		feed:    newFakeFeed(),
		blobs:   memory.NewBlobRepository(),
		metrics: &recordingMetrics{},
	}
	p.index = NewDateIndexService(p.blobs, nil)
	p.schedule = NewScheduleService(p.feed, p.metrics, nil)
	p.raw = NewGameFeedService(p.feed, p.blobs, p.index, p.metrics, nil)
	p.assembler = NewGameAssembler(p.raw, p.raw, p.metrics, nil)
	p.games = NewGameService(p.assembler, p.blobs, p.index, nil)
	p.stats = NewSummaryService(p.games, p.blobs, p.index, p.metrics, nil)
	return p
}

func (p *pipeline) row(t *testing.T, date string, gameID int64) (dateindex.Row, bool) {
	t.Helper()

	doc, err := p.index.Load(context.Background(), date)
	if err != nil {
		t.Fatalf("load date index: %v", err)
	}
	for _, row := range doc.Games {
		if row.GameID == gameID {
			return row, true
		}
	}
	return dateindex.Row{}, false
}

func (p *pipeline) stored(t *testing.T, key string) (blob.Object, bool) {
	t.Helper()

	object, ok, err := p.blobs.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("get blob %s: %v", key, err)
	}
	return object, ok
}

func int64Ptr(v int64) *int64 { return &v }

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
