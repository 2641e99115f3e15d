package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// VisitorPurger deletes visitors whose session expired before cutoff.
type VisitorPurger interface {
	DeleteExpiredVisitors(ctx context.Context, cutoff time.Time) (int64, error)
}

// VisitorCleanupJob removes tracked visits once their session has expired
// and the retention period has passed.
type VisitorCleanupJob struct {
	handler   VisitorPurger
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *zap.Logger
	now       func() time.Time
}

// NewVisitorCleanupJob schedules handler on schedule. Visitors are kept for
// retention after their session expires.
func NewVisitorCleanupJob(handler VisitorPurger, schedule string, retention time.Duration, logger *zap.Logger) *VisitorCleanupJob {
	return &VisitorCleanupJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.Named("visitor_cleanup_job"),
		now:       time.Now,
	}
}

// Run deletes the visitors expired before now minus the retention period.
func (j *VisitorCleanupJob) Run(ctx context.Context) {
	cutoff := j.now().Add(-j.retention)
	n, err := j.handler.DeleteExpiredVisitors(ctx, cutoff)
	if err != nil {
		j.logger.Error("deleting expired visitors", zap.Time("cutoff", cutoff), zap.Error(err))
		return
	}
	if n > 0 {
		j.logger.Info("expired visitors deleted", zap.Int64("visitors", n), zap.Time("cutoff", cutoff))
	}
}

// Start registers the schedule and starts the cron runner. An invalid
// schedule is returned as an error.
func (j *VisitorCleanupJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.Info("started", zap.String("schedule", j.schedule), zap.Duration("retention", j.retention))
	return nil
}

// Stop waits for a running cleanup to finish.
func (j *VisitorCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("stopped")
}
