// Package worker provides a bounded background job pool used by the
// import pipeline for quiz generation.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a unit of background work.
type Job interface {
	Run(ctx context.Context) error
	Name() string
}

// Pool runs jobs on a fixed set of goroutines fed from a buffered queue.
type Pool struct {
	jobs    chan Job
	wg      sync.WaitGroup
	workers int
	cancel  context.CancelFunc
	log     *slog.Logger
}

// NewPool creates a stopped pool. Call Start before submitting.
func NewPool(workers, queueSize int, log *slog.Logger) *Pool {
	if workers <= 0 {
		workers = 2
	}
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Pool{
		jobs:    make(chan Job, queueSize),
		workers: workers,
		log:     log.With(slog.String("component", "worker_pool")),
	}
}

// Start launches the worker goroutines. They run until Stop is called or
// the given context is cancelled.
func (p *Pool) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	p.log.Info("starting worker pool", slog.Int("workers", p.workers))

	for i := range p.workers {
		p.wg.Add(1)
		go p.run(ctx, i+1)
	}
}

func (p *Pool) run(ctx context.Context, id int) {
	defer p.wg.Done()
	log := p.log.With(slog.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}

			start := time.Now()
			if err := job.Run(ctx); err != nil {
				log.Error("job failed",
					slog.String("job", job.Name()),
					slog.Duration("elapsed", time.Since(start)),
					slog.Any("error", err))
				continue
			}
			log.Debug("job done",
				slog.String("job", job.Name()),
				slog.Duration("elapsed", time.Since(start)))
		}
	}
}

// Submit queues a job, blocking while the queue is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Stop cancels the workers and waits for in-flight jobs to finish.
// Jobs still queued are dropped.
func (p *Pool) Stop() {
	dropped := p.Backlog()
	if p.cancel != nil {
		p.cancel()
	}
	close(p.jobs)
	p.wg.Wait()
	p.log.Info("worker pool stopped", slog.Int("dropped_jobs", dropped))
}

// Backlog reports the number of queued jobs, for logging.
func (p *Pool) Backlog() int {
	return len(p.jobs)
}
