// Package dispatch implements the recurring job-alert cycle: scan postings
// that have not been announced yet, match each one against seeker niches,
// fan out one email per matched seeker, and mark the posting sent.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"nichenest/board-service/internal/events"
	"nichenest/board-service/internal/mailer"
	"nichenest/board-service/internal/model"
)

// JobSource is the slice of the store the dispatcher drives.
type JobSource interface {
	UnsentJobs(ctx context.Context) ([]model.Job, error)
	MarkJobSent(ctx context.Context, jobID string) error
}

// Resolver maps a posting's niche to the seekers who declared it.
type Resolver interface {
	Resolve(ctx context.Context, niche string) ([]model.Seeker, error)
}

// Dispatcher runs one alert cycle per scheduling tick.
//
// Delivery policy is at-most-once per posting: after the fan-out barrier the
// posting is marked sent even when individual sends failed, so a sender outage
// costs that posting its alerts rather than causing duplicates later.
type Dispatcher struct {
	jobs     JobSource
	resolver Resolver
	sender   mailer.Sender
	events   events.Publisher
	workers  int
}

// NewDispatcher constructs a Dispatcher. workers bounds the parallel sends per
// posting; values below 1 fall back to serial delivery.
func NewDispatcher(jobs JobSource, resolver Resolver, sender mailer.Sender, publisher events.Publisher, workers int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	return &Dispatcher{
		jobs:     jobs,
		resolver: resolver,
		sender:   sender,
		events:   publisher,
		workers:  workers,
	}
}

// RunTick executes one full dispatch cycle synchronously. A failure while
// processing one posting is logged and does not abort the remaining postings;
// only a failed scan of the unsent set fails the whole tick.
func (d *Dispatcher) RunTick(ctx context.Context) error {
	jobs, err := d.jobs.UnsentJobs(ctx)
	if err != nil {
		return fmt.Errorf("scan unsent jobs: %w", err)
	}
	if len(jobs) == 0 {
		return nil
	}

	slog.Info("dispatch tick started", "unsent", len(jobs))

	for i := range jobs {
		if err := d.processJob(ctx, &jobs[i]); err != nil {
			slog.Error("job alert dispatch failed", "jobId", jobs[i].ID, "err", err)
		}
	}
	return nil
}

// processJob resolves the audience for one posting, fans out the sends, and
// flips the posting's sent flag after every send has been attempted. The flag
// write happens regardless of send outcomes; it is skipped only when the
// resolver itself fails, leaving the posting to be retried next tick.
func (d *Dispatcher) processJob(ctx context.Context, job *model.Job) error {
	seekers, err := d.resolver.Resolve(ctx, job.JobNiche)
	if err != nil {
		return fmt.Errorf("resolve audience: %w", err)
	}

	attempted, failed := d.fanOut(ctx, job, seekers)

	if err := d.jobs.MarkJobSent(ctx, job.ID); err != nil {
		return fmt.Errorf("mark sent: %w", err)
	}

	slog.Info("job alerts dispatched",
		"jobId", job.ID, "niche", job.JobNiche,
		"matched", len(seekers), "attempted", attempted, "failed", failed)

	if d.events != nil {
		payload := map[string]any{
			"jobId":   job.ID,
			"niche":   job.JobNiche,
			"matched": len(seekers),
			"failed":  failed,
		}
		if err := d.events.Publish(ctx, events.ChannelJobAlertsSent, payload); err != nil {
			slog.Warn("publish EVENT_JOB_ALERTS_SENT failed", "jobId", job.ID, "err", err)
		}
	}
	return nil
}

// fanOut sends one alert per seeker over a bounded worker pool and waits for
// every attempt to finish before returning (the per-posting barrier). Each
// send has its own failure boundary: a failed delivery is logged and the
// remaining seekers still get their attempt.
func (d *Dispatcher) fanOut(ctx context.Context, job *model.Job, seekers []model.Seeker) (attempted, failed int32) {
	if len(seekers) == 0 {
		return 0, 0
	}

	workers := d.workers
	if workers > len(seekers) {
		workers = len(seekers)
	}

	seekerCh := make(chan model.Seeker)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seeker := range seekerCh {
				atomic.AddInt32(&attempted, 1)
				subject, body := mailer.BuildAlert(seeker, *job)
				if err := d.sender.Send(ctx, seeker.Email, subject, body); err != nil {
					atomic.AddInt32(&failed, 1)
					slog.Warn("job alert delivery failed",
						"jobId", job.ID, "recipient", seeker.Email, "err", err)
				}
			}
		}()
	}

	for _, seeker := range seekers {
		seekerCh <- seeker
	}
	close(seekerCh)
	wg.Wait()

	return attempted, failed
}
