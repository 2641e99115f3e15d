package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ScoreRecalculator refreshes the popularity score of every product.
type ScoreRecalculator interface {
	RecalculateProductScores(ctx context.Context) (int64, error)
}

// ProductScoreJob keeps product popularity scores current so catalogue
// listings can sort by them without aggregating on every request.
type ProductScoreJob struct {
	handler  ScoreRecalculator
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewProductScoreJob schedules handler on schedule. A positive timeout
// bounds each run.
func NewProductScoreJob(handler ScoreRecalculator, schedule string, timeout time.Duration, logger *zap.Logger) *ProductScoreJob {
	return &ProductScoreJob{
		handler:  handler,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.Named("product_score_job"),
	}
}

// Run recalculates the scores once.
func (j *ProductScoreJob) Run(ctx context.Context) {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	started := time.Now()
	n, err := j.handler.RecalculateProductScores(ctx)
	if err != nil {
		j.logger.Error("recalculating product scores", zap.Error(err))
		return
	}
	j.logger.Info("product scores recalculated", zap.Int64("products", n), zap.Duration("took", time.Since(started)))
}

// Start registers the schedule and starts the cron runner. An invalid
// schedule is returned as an error.
func (j *ProductScoreJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.Info("started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running recalculation to finish.
func (j *ProductScoreJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("stopped")
}
