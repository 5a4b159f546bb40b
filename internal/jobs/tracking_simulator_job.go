package jobs

import (
	"context"
	"log/slog"

	"mealtrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TrackingSimulatorJob periodically moves the simulated driver of the
// currently tracked order. Runs every 30 seconds and publishes the resulting
// location update to the notification feed.
type TrackingSimulatorJob struct {
	handler commands.PublishLocationPingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTrackingSimulatorJob creates a new job for simulated driver movement.
// Uses PublishLocationPingCommandHandler to emit a location ping every 30 seconds.
func NewTrackingSimulatorJob(handler commands.PublishLocationPingCommandHandler, logger *slog.Logger) *TrackingSimulatorJob {
	return &TrackingSimulatorJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "tracking_simulator_job"),
	}
}

// Start begins the tracking simulator job to run every 30 seconds.
// Ticks without a tracked order or without a prior location are silent
// no-ops inside the handler, so every returned error is worth logging.
func (j *TrackingSimulatorJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewPublishLocationPingCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Tracking simulator job failed", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Tracking simulator job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking simulator job started (running every 30 seconds)")
	return nil
}

// Stop stops the tracking simulator job.
func (j *TrackingSimulatorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking simulator job stopped")
}
