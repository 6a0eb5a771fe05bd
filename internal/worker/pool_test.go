package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start(context.Background())

	job := &testJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(job))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == TestExpectedJobCount
	}, time.Second, TestWorkerProcessWaitTime*time.Millisecond/10)

	pool.Stop()
	pool.Stop()
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 0)
	pool.Start(context.Background())
	pool.Stop()

	var executed int32
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}))
}

type discardJob struct {
	testJob
	discarded *int32
}

func (j *discardJob) Discard() {
	atomic.AddInt32(j.discarded, 1)
}

func TestPool_StopDiscardsQueuedJobs(t *testing.T) {
	var executed, discarded int32
	pool := NewPool(1, TestQueueSize)

	// not started, so nothing leaves the queue
	for i := 0; i < 3; i++ {
		assert.True(t, pool.Enqueue(&discardJob{testJob: testJob{executed: &executed}, discarded: &discarded}))
	}
	assert.True(t, pool.Enqueue(&testJob{executed: &executed}))

	pool.Stop()
	assert.Equal(t, int32(3), atomic.LoadInt32(&discarded))
	assert.Zero(t, atomic.LoadInt32(&executed))
}
