package jobs

import (
	"context"
	"errors"
	"log/slog"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// PatrolJob runs movement report imports on a cron schedule. Each run gets
// a generated run ID so log lines of one sweep can be correlated.
type PatrolJob struct {
	handler  commands.ImportMovementReportsCommandHandler
	cronSpec string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPatrolJob creates a patrol job on the given cron spec. The spec uses
// the six-field form with a seconds column, e.g. "*/10 * * * * *".
func NewPatrolJob(
	handler commands.ImportMovementReportsCommandHandler,
	cronSpec string,
	logger *slog.Logger,
) (*PatrolJob, error) {
	if cronSpec == "" {
		return nil, errs.NewValueIsRequiredError("cronSpec")
	}

	return &PatrolJob{
		handler:  handler,
		cronSpec: cronSpec,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "patrol_job"),
	}, nil
}

// Start schedules the patrol job.
func (j *PatrolJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()
		runID := uuid.New()
		cmd := commands.NewImportMovementReportsCommand()

		summary, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			// No queued reports is a quiet sweep, not a failure.
			if errors.Is(err, errs.ErrObjectNotFound) {
				j.logger.DebugContext(ctx, "Patrol sweep found no reports", "run_id", runID)
				return
			}
			j.logger.ErrorContext(ctx, "Patrol sweep failed", "run_id", runID, "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Patrol sweep completed",
			"run_id", runID,
			"registered", summary.Registered,
			"applied", summary.Applied,
			"skipped", summary.Skipped,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Patrol job started", "schedule", j.cronSpec)
	return nil
}

// Stop stops the patrol job.
func (j *PatrolJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Patrol job stopped")
}
