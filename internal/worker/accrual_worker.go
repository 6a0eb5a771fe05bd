package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/logger"
	"github.com/osse101/PotionCraft_Go/internal/metrics"
)

// Accruer is the part of the session service the accrual worker drives
type Accruer interface {
	ActiveSessions() []string
	Accrue(ctx context.Context, sessionID string) (int64, error)
}

// AccrualWorker periodically credits earned rewards to every live session
type AccrualWorker struct {
	BaseWorker
	sessions Accruer
	pool     *Pool
	interval time.Duration
	ctx      context.Context
}

// NewAccrualWorker creates an AccrualWorker that runs its jobs on pool
func NewAccrualWorker(sessions Accruer, pool *Pool, interval time.Duration) *AccrualWorker {
	if interval <= 0 {
		interval = DefaultAccrualInterval
	}
	w := &AccrualWorker{
		sessions: sessions,
		pool:     pool,
		interval: interval,
	}
	w.init()
	return w
}

// Start schedules the first run. Runs repeat every interval until Shutdown.
func (w *AccrualWorker) Start(ctx context.Context) {
	w.ctx = ctx
	logger.FromContext(ctx).Info(LogMsgAccrualScheduled, "interval", w.interval)
	w.scheduleNext()
}

func (w *AccrualWorker) scheduleNext() {
	w.schedule(w.interval, func() {
		w.RunOnce(w.ctx)
		w.scheduleNext()
	})
}

type accrueJob struct {
	sessions  Accruer
	sessionID string
	total     *atomic.Int64
	done      func()
}

func (j *accrueJob) Process(ctx context.Context) error {
	defer j.done()
	added, err := j.sessions.Accrue(ctx, j.sessionID)
	if err != nil {
		// reset between listing and processing
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil
		}
		return err
	}
	j.total.Add(added)
	return nil
}

// Discard releases the batch slot of a job the pool dropped on Stop
func (j *accrueJob) Discard() {
	j.done()
}

// RunOnce accrues every live session on the pool and waits for the batch.
// It returns the number of sessions visited and the KAI added.
func (w *AccrualWorker) RunOnce(ctx context.Context) (int, int64) {
	log := logger.FromContext(ctx)
	ids := w.sessions.ActiveSessions()
	metrics.ActiveSessions.Set(float64(len(ids)))

	var (
		batch sync.WaitGroup
		total atomic.Int64
	)
	queued := 0
	for _, id := range ids {
		batch.Add(1)
		job := &accrueJob{sessions: w.sessions, sessionID: id, total: &total, done: batch.Done}
		if !w.pool.Enqueue(job) {
			batch.Done()
			break
		}
		queued++
	}
	batch.Wait()

	log.Debug(LogMsgAccrualCompleted, "sessions", queued, "added", total.Load())
	return queued, total.Load()
}

// Shutdown cancels the pending run and waits for a running one to finish
func (w *AccrualWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, AccrualWorkerName)
}
