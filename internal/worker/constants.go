package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages shared by timer based workers
const (
	LogMsgWorkerShuttingDown     = "Shutting down worker"
	LogMsgWorkerShutdownComplete = "Worker shutdown complete"
	LogMsgWorkerShutdownTimeout  = "Worker shutdown timeout"
	LogMsgTimerCancelled         = "Cancelled pending worker execution"
)

// ============================================================================
// Accrual Worker
// ============================================================================

// AccrualWorkerName identifies the accrual worker in logs
const AccrualWorkerName = "accrual worker"

// DefaultAccrualInterval is used when no interval is configured
const DefaultAccrualInterval = time.Minute

// Log messages for the accrual worker
const (
	LogMsgAccrualScheduled = "Reward accrual scheduled"
	LogMsgAccrualCompleted = "Reward accrual completed"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
