package jobs

import (
	"fmt"
	"log/slog"

	"tracking/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	patrolJob *PatrolJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	importHandler commands.ImportMovementReportsCommandHandler,
	patrolCronSpec string,
	logger *slog.Logger,
) (*JobManager, error) {
	patrolJob, err := NewPatrolJob(importHandler, patrolCronSpec, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create patrol job: %w", err)
	}

	return &JobManager{
		patrolJob: patrolJob,
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.patrolJob.Start(); err != nil {
		return fmt.Errorf("failed to start patrol job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.patrolJob.Stop()
}
