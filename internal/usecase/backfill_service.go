package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/dateindex"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/nhlgame"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/logging"
)

const (
	backfillStatusSuccess = "success"
	backfillStatusFailed  = "failed"

	defaultBackfillWorkers = 4
	maxBackfillWorkers     = 32
)

// ArtifactRunner produces one artifact for one game.
type ArtifactRunner func(ctx context.Context, gameID int64) error

type GameLister interface {
	ListGames(ctx context.Context, date string) ([]nhlgame.ScheduledGame, error)
}

type BackfillIndex interface {
	SeedGames(ctx context.Context, date string, games []nhlgame.ScheduledGame) (dateindex.Document, error)
	ListGamesMissing(ctx context.Context, date string, artifact dateindex.Artifact) ([]int64, error)
	MarkArtifact(ctx context.Context, mark dateindex.Mark) error
}

type RunIDGenerator interface {
	NewID() (string, error)
}

type BackfillInput struct {
	Date       string
	Artifact   string
	MaxWorkers int
}

type BackfillResult struct {
	RunID        string               `json:"run_id"`
	Date         string               `json:"date"`
	Artifact     string               `json:"artifact"`
	GameCount    int                  `json:"game_count"`
	SuccessCount int                  `json:"success_count"`
	FailedCount  int                  `json:"failed_count"`
	WorkerCount  int                  `json:"worker_count"`
	Games        []BackfillGameResult `json:"games"`
}

type BackfillGameResult struct {
	GameID     int64  `json:"game_id"`
	Away       string `json:"away,omitempty"`
	Home       string `json:"home,omitempty"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// BackfillService fills one missing artifact for every game of a date.
// Games are processed independently; a failed game does not stop the run.
type BackfillService struct {
	schedule GameLister
	index    BackfillIndex
	runners  map[dateindex.Artifact]ArtifactRunner
	ids      RunIDGenerator
	workers  int
	newPool  func(size int) (taskPool, error)
	metrics  Metrics
	logger   *logging.Logger
}

// taskPool is the part of *ants.Pool the backfill drives.
type taskPool interface {
	Submit(task func()) error
	Release()
}

func newAntsPool(size int) (taskPool, error) {
	return ants.NewPool(size)
}

func NewBackfillService(
	schedule GameLister,
	index BackfillIndex,
	runners map[dateindex.Artifact]ArtifactRunner,
	ids RunIDGenerator,
	workers int,
	metrics Metrics,
	logger *logging.Logger,
) *BackfillService {
	if workers <= 0 {
		workers = defaultBackfillWorkers
	}
	return &BackfillService{
		schedule: schedule,
		index:    index,
		runners:  runners,
		ids:      ids,
		workers:  workers,
		newPool:  newAntsPool,
		metrics:  metricsOrNoop(metrics),
		logger:   logger,
	}
}

// NewArtifactRunners binds each artifact to the service that produces it.
// The AI runner is registered only when ai is configured.
func NewArtifactRunners(feed *GameFeedService, games *GameService, stats *SummaryService, ai *AISummaryService) map[dateindex.Artifact]ArtifactRunner {
	runners := map[dateindex.Artifact]ArtifactRunner{
		dateindex.ArtifactRawPlayByPlay: func(ctx context.Context, gameID int64) error {
			_, err := feed.PlayByPlay(ctx, gameID)
			return err
		},
		dateindex.ArtifactRawStory: func(ctx context.Context, gameID int64) error {
			_, err := feed.GameStory(ctx, gameID)
			return err
		},
		dateindex.ArtifactEvents: func(ctx context.Context, gameID int64) error {
			_, err := games.ProcessGame(ctx, gameID)
			return err
		},
		dateindex.ArtifactSummaryStats: func(ctx context.Context, gameID int64) error {
			_, err := stats.GetOrBuildStatsSummary(ctx, StatsSummaryInput{GameID: gameID})
			return err
		},
	}
	if ai != nil {
		runners[dateindex.ArtifactSummaryAI] = func(ctx context.Context, gameID int64) error {
			_, err := ai.GetOrGenerate(ctx, gameID, games.Events, false)
			return err
		}
	}
	return runners
}

func (s *BackfillService) Run(ctx context.Context, input BackfillInput) (BackfillResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BackfillService.Run",
		attribute.String("game.date", input.Date),
		attribute.String("artifact", input.Artifact),
	)
	defer span.End()

	date, err := ParseGameDate(input.Date)
	if err != nil {
		return BackfillResult{}, err
	}
	artifact, err := dateindex.ParseArtifact(input.Artifact)
	if err != nil {
		return BackfillResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if s.schedule == nil || s.index == nil {
		return BackfillResult{}, fmt.Errorf("%w: backfill is not fully configured", ErrDependencyUnavailable)
	}
	runner, ok := s.runners[artifact]
	if !ok || runner == nil {
		return BackfillResult{}, fmt.Errorf("%w: no runner for artifact %s", ErrDependencyUnavailable, artifact)
	}

	runID, err := s.newRunID()
	if err != nil {
		return BackfillResult{}, err
	}
	logger := s.logger.With("run_id", runID, "date", date, "artifact", string(artifact))

	scheduled, err := s.schedule.ListGames(ctx, date)
	if err != nil {
		recordSpanError(span, err)
		return BackfillResult{}, err
	}
	doc, err := s.index.SeedGames(ctx, date, scheduled)
	if err != nil {
		recordSpanError(span, err)
		return BackfillResult{}, fmt.Errorf("seed date index: %w", err)
	}
	missing, err := s.index.ListGamesMissing(ctx, date, artifact)
	if err != nil {
		recordSpanError(span, err)
		return BackfillResult{}, fmt.Errorf("list games missing %s: %w", artifact, err)
	}

	matchups := make(map[int64]dateindex.Row, len(doc.Games))
	for _, row := range doc.Games {
		matchups[row.GameID] = row
	}

	workerCount := normalizeBackfillWorkerCount(input.MaxWorkers, s.workers, len(missing))
	result := BackfillResult{
		RunID:       runID,
		Date:        date,
		Artifact:    string(artifact),
		GameCount:   len(missing),
		WorkerCount: workerCount,
		Games:       make([]BackfillGameResult, 0, len(missing)),
	}
	if len(missing) == 0 {
		logger.InfoContext(ctx, "backfill has nothing to do")
		return result, nil
	}

	results := make(chan BackfillGameResult, len(missing))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := s.newPool(workerCount)
	if err != nil {
		return BackfillResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	gameCtx := WithGameDate(ctx, date)

	var workers sync.WaitGroup
	for _, gameID := range missing {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := BackfillGameResult{
				GameID: gameID,
				Away:   matchups[gameID].Away,
				Home:   matchups[gameID].Home,
				Status: backfillStatusSuccess,
			}

			if err := runner(gameCtx, gameID); err != nil {
				row.Status = backfillStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
				logger.WarnContext(ctx, "backfill game failed", "game_id", gameID, "error", err)
			} else {
				successCount.Add(1)
				notifyArtifact(gameCtx, s.index, logger, dateindex.Mark{
					Date:     date,
					GameID:   gameID,
					Away:     row.Away,
					Home:     row.Home,
					Artifact: artifact,
					Exists:   true,
				})
			}
			row.DurationMs = time.Since(start).Milliseconds()
			s.metrics.ObserveBackfill(string(artifact), row.Status)

			results <- row
		}); err != nil {
			workers.Done()
			// Submitted games may still be writing marks; let them finish first.
			workers.Wait()
			return BackfillResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Games = append(result.Games, row)
	}
	sort.SliceStable(result.Games, func(i, j int) bool {
		return result.Games[i].GameID < result.Games[j].GameID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	logger.InfoContext(ctx, "backfill finished",
		"games", result.GameCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)
	return result, nil
}

func (s *BackfillService) newRunID() (string, error) {
	if s.ids == nil {
		return time.Now().UTC().Format("20060102T150405.000000000"), nil
	}
	runID, err := s.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("generate backfill run id: %w", err)
	}
	return runID, nil
}

func normalizeBackfillWorkerCount(requested, configured, tasks int) int {
	workers := requested
	if workers <= 0 {
		workers = configured
	}
	workers = min(workers, maxBackfillWorkers, max(tasks, 1))
	return max(workers, 1)
}
