package jobs

import (
	"context"
	"log/slog"

	"trix/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// rebroadcastSchedule fires every 30 seconds.
const rebroadcastSchedule = "*/30 * * * * *"

// PendingRebroadcastJob periodically re-offers pending shipments to the
// drivers currently eligible for them. A shipment created while every
// suitable driver was busy would otherwise sit pending until a customer
// retried manually.
type PendingRebroadcastJob struct {
	handler commands.RebroadcastPendingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingRebroadcastJob creates a new job for rebroadcasting pending
// shipments.
func NewPendingRebroadcastJob(
	handler commands.RebroadcastPendingCommandHandler,
	logger *slog.Logger,
) *PendingRebroadcastJob {
	return &PendingRebroadcastJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_rebroadcast_job"),
	}
}

// Start begins the rebroadcast job on its 30 second schedule.
func (j *PendingRebroadcastJob) Start() error {
	_, err := j.cron.AddFunc(rebroadcastSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewRebroadcastPendingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Pending rebroadcast job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending rebroadcast job started (running every 30 seconds)")
	return nil
}

// Stop stops the rebroadcast job.
func (j *PendingRebroadcastJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending rebroadcast job stopped")
}
