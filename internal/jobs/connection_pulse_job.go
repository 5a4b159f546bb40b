package jobs

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/robfig/cron/v3"
)

// ConnectionPulseJob simulates the live-tracking connection indicator.
// Every 2 seconds it toggles the connection state so the tracking screen can
// animate between connected and reconnecting. The state carries no delivery
// semantics.
type ConnectionPulseJob struct {
	connected atomic.Bool
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewConnectionPulseJob creates a new connection pulse job.
// The state starts connected.
func NewConnectionPulseJob(logger *slog.Logger) *ConnectionPulseJob {
	job := &ConnectionPulseJob{
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "connection_pulse_job"),
	}
	job.connected.Store(true)
	return job
}

// Connected reports the current simulated connection state.
func (j *ConnectionPulseJob) Connected() bool {
	return j.connected.Load()
}

// Start begins the connection pulse job to run every 2 seconds.
func (j *ConnectionPulseJob) Start() error {
	_, err := j.cron.AddFunc("*/2 * * * * *", func() {
		next := !j.connected.Load()
		j.connected.Store(next)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Connection pulse job started (running every 2 seconds)")
	return nil
}

// Stop stops the connection pulse job and leaves the state connected so the
// indicator does not freeze on reconnecting.
func (j *ConnectionPulseJob) Stop() {
	j.cron.Stop()
	j.connected.Store(true)
	j.logger.InfoContext(context.Background(), "Connection pulse job stopped")
}
