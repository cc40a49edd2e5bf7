// Package jobs provides scheduled background tasks for the order tracker.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field in the
// schedule.
//
// # Available Jobs
//
// OrderStatsJob - logs the total number of orders and a count per status.
// Runs on STATS_SCHEDULE, every minute by default.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(countOrdersHandler, "0 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
