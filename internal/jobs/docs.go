// Package jobs provides scheduled background tasks for the meal tracking
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to drive the simulated delivery experience.
//
// # Available Jobs
//
// 1. TrackingSimulatorJob - Runs every 30 seconds to move the driver of the currently tracked order and publish the ping
// 2. ConnectionPulseJob - Runs every 2 seconds to toggle the simulated connection indicator
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the required handler
//	jobManager := jobs.NewJobManager(publishLocationPingHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The simulator uses the cron expression "*/30 * * * * *" and the connection
// pulse uses "*/2 * * * * *", both in seconds mode.
//
// # Error Handling
//
// - Simulator ticks without a tracked order are silent no-ops inside the handler
// - Remaining simulator errors indicate system issues and are logged
// - Failed job starts will stop any already running jobs
package jobs
