package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrdersJob *StaleOrdersJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	stalePendingHandler queries.GetStalePendingOrdersQueryHandler,
	stalePendingAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrdersJob: NewStaleOrdersJob(stalePendingHandler, stalePendingAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale orders job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrdersJob.Stop()
}
