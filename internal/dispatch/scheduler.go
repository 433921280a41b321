package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler wraps robfig/cron and drives the dispatcher on a fixed interval.
// Ticks never overlap: the cron job is wrapped in DelayIfStillRunning, so a
// slow cycle delays the next one instead of racing it.
type Scheduler struct {
	cron       *cron.Cron
	dispatcher *Dispatcher
	spec       string // cron spec, e.g. "@every 1m"
	job        cron.Job
}

// NewScheduler creates a Scheduler that fires every intervalMinutes minutes.
func NewScheduler(dispatcher *Dispatcher, intervalMinutes int) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithLogger(cron.DefaultLogger)),
		dispatcher: dispatcher,
		spec:       fmt.Sprintf("@every %dm", intervalMinutes),
	}
}

// Start registers the tick and starts the scheduler. Also runs one tick
// immediately so freshly restarted processes drain the backlog without
// waiting for the first interval; the immediate run goes through the same
// serializing wrapper as the scheduled ones.
func (s *Scheduler) Start(ctx context.Context) error {
	s.job = cron.NewChain(cron.DelayIfStillRunning(cron.DefaultLogger)).
		Then(cron.FuncJob(func() { s.runTick(ctx) }))

	if _, err := s.cron.AddJob(s.spec, s.job); err != nil {
		return fmt.Errorf("cron.AddJob: %w", err)
	}

	s.cron.Start()
	slog.Info("dispatch scheduler started", "spec", s.spec)

	go s.job.Run()

	return nil
}

// Stop shuts down the scheduler. A tick already in flight runs to completion.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	slog.Info("dispatch scheduler stopped")
}

func (s *Scheduler) runTick(ctx context.Context) {
	if err := s.dispatcher.RunTick(ctx); err != nil {
		slog.Error("dispatch tick failed", "err", err)
	}
}
