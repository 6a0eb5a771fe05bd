// Package worker runs background jobs: a fixed-size pool and the periodic
// reward accrual worker that feeds it.
package worker

import (
	"context"
	"sync"

	"github.com/osse101/PotionCraft_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Discarder is implemented by jobs that must hear about it when Stop drops
// them unprocessed
type Discarder interface {
	Discard()
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once

	mu      sync.Mutex
	stopped bool
	senders sync.WaitGroup
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers. Jobs run with ctx, which carries the logger.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			if err := job.Process(ctx); err != nil {
				logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
			}
		case <-p.quit:
			return
		}
	}
}

// Enqueue adds a job to the queue, blocking while it is full. It returns
// false if the pool stopped before the job could be queued.
func (p *Pool) Enqueue(job Job) bool {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return false
	}
	p.senders.Add(1)
	p.mu.Unlock()
	defer p.senders.Done()

	select {
	case p.jobQueue <- job:
		return true
	case <-p.quit:
		return false
	}
}

// Stop stops the workers and waits for them to finish. Queued jobs that
// have not started are dropped; those implementing Discarder are told so.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopped = true
		p.mu.Unlock()
		close(p.quit)
	})
	p.senders.Wait()
	p.wg.Wait()
	p.drain()
}

func (p *Pool) drain() {
	for {
		select {
		case job := <-p.jobQueue:
			if d, ok := job.(Discarder); ok {
				d.Discard()
			}
		default:
			return
		}
	}
}
