package usecase

import (
	"context"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/dateindex"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/logging"
)

// ArtifactNotifier records pipeline progress in the per-date index.
type ArtifactNotifier interface {
	MarkArtifact(ctx context.Context, mark dateindex.Mark) error
}

// notifyArtifact never fails the caller: index failures are logged and
// dropped, and marks without a date are skipped.
func notifyArtifact(ctx context.Context, notifier ArtifactNotifier, logger *logging.Logger, mark dateindex.Mark) {
	if notifier == nil || mark.Date == "" {
		return
	}
	if err := notifier.MarkArtifact(ctx, mark); err != nil {
		logger.WarnContext(ctx, "mark date index artifact failed",
			"date", mark.Date,
			"game_id", mark.GameID,
			"artifact", string(mark.Artifact),
			"error", err,
		)
	}
}
