// Package jobs runs the storefront's periodic maintenance on
// github.com/robfig/cron/v3 schedules.
//
// ProductScoreJob recalculates the popularity score of every product from
// its views, basket additions and purchases. VisitorCleanupJob deletes
// tracked visits (and their page views) once the session has expired and
// the retention period is over.
//
//	jobManager := jobs.NewJobManager(trackingHandler, jobs.Schedules{
//		ProductScores:    "@hourly",
//		VisitorCleanup:   "@daily",
//		VisitorRetention: 30 * 24 * time.Hour,
//	}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// A run that is still going when the next one is due is skipped. Errors are
// logged and the job tries again on the next tick.
package jobs
