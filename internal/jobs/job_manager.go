package jobs

import (
	"fmt"
	"log/slog"

	"mealtrack/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	trackingSimulatorJob *TrackingSimulatorJob
	connectionPulseJob   *ConnectionPulseJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the location ping handler as a dependency to wire up the simulator.
func NewJobManager(
	publishLocationPingHandler commands.PublishLocationPingCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		trackingSimulatorJob: NewTrackingSimulatorJob(publishLocationPingHandler, logger),
		connectionPulseJob:   NewConnectionPulseJob(logger),
	}
}

// ConnectionPulse returns the connection pulse job so its state can be read
// by the tracking connection endpoint.
func (jm *JobManager) ConnectionPulse() *ConnectionPulseJob {
	return jm.connectionPulseJob
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.connectionPulseJob.Start(); err != nil {
		return fmt.Errorf("failed to start connection pulse job: %w", err)
	}

	if err := jm.trackingSimulatorJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.connectionPulseJob.Stop()
		return fmt.Errorf("failed to start tracking simulator job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.trackingSimulatorJob.Stop()
	jm.connectionPulseJob.Stop()
}
