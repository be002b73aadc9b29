package sync

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"ytnotion/model"
)

// Report summarizes one sync run.
type Report struct {
	RunID     uuid.UUID
	StartedAt time.Time
	Succeeded []model.VideoID
	Failed    map[model.VideoID]string
}

func (r Report) OK() bool {
	return len(r.Failed) == 0
}

// Run processes every id in input order, one at a time. A failing id is
// recorded in the report and never aborts the rest of the batch. When the
// context is cancelled the remaining ids are recorded as failed.
func (s *Syncer) Run(ctx context.Context, ids []model.VideoID) Report {
	report := Report{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
		Succeeded: []model.VideoID{},
		Failed:    map[model.VideoID]string{},
	}

	logger := s.logger.With(slog.String("runid", report.RunID.String()))
	logger.Info("sync run started", slog.Int("count", len(ids)))

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			report.Failed[id] = err.Error()
			continue
		}
		if _, err := s.EnsureVideo(ctx, id); err != nil {
			logger.Error("failed to sync video", err, slog.String("videoid", string(id)))
			report.Failed[id] = err.Error()
			continue
		}
		report.Succeeded = append(report.Succeeded, id)
	}

	logger.Info("sync run finished",
		slog.Int("succeeded", len(report.Succeeded)), slog.Int("failed", len(report.Failed)))

	return report
}
