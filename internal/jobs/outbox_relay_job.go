package jobs

import (
	"context"
	"errors"
	"log/slog"

	"packflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxSchedule runs the relay every five seconds.
const DefaultOutboxSchedule = "*/5 * * * * *"

const relayBatchSize = 100

// relayHandler is the part of RelayOutboxCommandHandler the job needs.
type relayHandler interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob periodically publishes stored domain events to the broker.
type OutboxRelayJob struct {
	handler  relayHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOutboxRelayJob creates the relay job. An empty schedule means DefaultOutboxSchedule.
// Overlapping runs are skipped.
func NewOutboxRelayJob(handler relayHandler, schedule string, logger *slog.Logger) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultOutboxSchedule
	}
	logger = logger.With("component", "outbox_relay_job")
	return &OutboxRelayJob{
		handler:  handler,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}
}

// Start registers the relay on its schedule and starts the scheduler.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// Run relays one batch. Exported so the first batch can be flushed at boot.
func (j *OutboxRelayJob) Run() {
	ctx := context.Background()

	cmd, err := commands.NewRelayOutboxCommand(relayBatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return
	}

	n, err := j.handler.Handle(ctx, cmd)
	if n > 0 {
		j.logger.InfoContext(ctx, "Outbox messages relayed", "count", n)
	}
	if err != nil && !errors.Is(err, commands.ErrOutboxIsEmpty) {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
	}
}

// Stop stops scheduling and waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
