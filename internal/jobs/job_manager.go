package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderStatsJob *OrderStatsJob
}

// NewJobManager creates a job manager. An empty statsSchedule disables the
// order stats job.
func NewJobManager(statsHandler OrderStatsHandler, statsSchedule string, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if statsSchedule != "" {
		jm.orderStatsJob = NewOrderStatsJob(statsHandler, statsSchedule, logger)
	}
	return jm
}

// StartAll starts all enabled jobs.
func (jm *JobManager) StartAll() error {
	if jm.orderStatsJob != nil {
		if err := jm.orderStatsJob.Start(); err != nil {
			return fmt.Errorf("failed to start order stats job: %w", err)
		}
	}

	return nil
}

// StopAll stops all enabled jobs.
func (jm *JobManager) StopAll() {
	if jm.orderStatsJob != nil {
		jm.orderStatsJob.Stop()
	}
}
