package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatsSnapshotJob periodically logs system-wide order and user counts so
// operators can track fleet activity without querying the database.
type StatsSnapshotJob struct {
	handler  queries.GetSystemStatsQueryHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewStatsSnapshotJob creates a job that snapshots system stats on the given
// cron schedule.
func NewStatsSnapshotJob(
	handler queries.GetSystemStatsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *StatsSnapshotJob {
	return &StatsSnapshotJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With("component", "stats_snapshot_job"),
	}
}

// Start schedules the snapshot job.
func (j *StatsSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetSystemStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Stats snapshot job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "System stats snapshot",
			"usersByRole", stats.UsersByRole,
			"ordersByStatus", stats.OrdersByStatus,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats snapshot job started", "schedule", j.schedule)
	return nil
}

// Stop stops the snapshot job.
func (j *StatsSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats snapshot job stopped")
}
