package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
}

// NewJobManager creates a job manager. A nil relay handler means no broker is
// configured and the relay job is not scheduled.
func NewJobManager(relay relayHandler, outboxSchedule string, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if relay != nil {
		jm.outboxRelayJob = NewOutboxRelayJob(relay, outboxSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.outboxRelayJob == nil {
		return nil
	}
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.outboxRelayJob != nil {
		jm.outboxRelayJob.Stop()
	}
}
