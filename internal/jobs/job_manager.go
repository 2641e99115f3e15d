package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Schedules are standard five-field cron specs, or descriptors such as
// "@hourly".
type Schedules struct {
	ProductScores       string
	ProductScoreTimeout time.Duration
	VisitorCleanup      string
	VisitorRetention    time.Duration
}

// TrackingHandler is the command handler both jobs call.
type TrackingHandler interface {
	ScoreRecalculator
	VisitorPurger
}

// JobManager starts and stops every scheduled job together.
type JobManager struct {
	productScoreJob   *ProductScoreJob
	visitorCleanupJob *VisitorCleanupJob
}

// NewJobManager builds both jobs. Nothing runs until StartAll.
func NewJobManager(tracking TrackingHandler, schedules Schedules, logger *zap.Logger) *JobManager {
	return &JobManager{
		productScoreJob:   NewProductScoreJob(tracking, schedules.ProductScores, schedules.ProductScoreTimeout, logger),
		visitorCleanupJob: NewVisitorCleanupJob(tracking, schedules.VisitorCleanup, schedules.VisitorRetention, logger),
	}
}

// StartAll starts every job. A job that fails to start stops the ones
// already running.
func (jm *JobManager) StartAll() error {
	if err := jm.productScoreJob.Start(); err != nil {
		return fmt.Errorf("failed to start product score job: %w", err)
	}

	if err := jm.visitorCleanupJob.Start(); err != nil {
		jm.productScoreJob.Stop()
		return fmt.Errorf("failed to start visitor cleanup job: %w", err)
	}

	return nil
}

// StopAll stops every job, waiting for runs in progress to finish.
func (jm *JobManager) StopAll() {
	jm.visitorCleanupJob.Stop()
	jm.productScoreJob.Stop()
}
