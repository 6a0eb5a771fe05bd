package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept before a new one is opened
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingPotionCraft = "Starting PotionCraft"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Storage
// =============================================================================

// Connection pool lifetimes for the postgres driver
const (
	DBMaxConnIdleTime = 5 * time.Minute
	DBMaxConnLifetime = time.Hour
)

const (
	LogMsgStorageReady      = "Storage ready"
	ErrMsgUnknownDriver     = "unknown storage driver"
	ErrMsgFailedConnectDB   = "failed to connect to database"
	ErrMsgFailedOpenStorage = "failed to open storage"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventStreamSubscribed      = "Event stream subscribed"
	ErrMsgFailedCreateDeadLetterDir  = "failed to create dead-letter directory"
	ErrMsgFailedOpenDeadLetter       = "failed to open dead-letter log"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer      = "Shutting down server..."
	LogMsgShuttingDownEventSystem = "Shutting down event system..."
	LogMsgServerStopped           = "Server stopped"
	LogMsgServerForcedShutdown    = "Server forced to shutdown"
	LogMsgAccrualWorkerFailed     = "Accrual worker shutdown failed"
	LogMsgStorageCloseFailed      = "Storage close failed"
	LogMsgDeadLetterCloseFailed   = "Dead-letter close failed"
	LogMsgServiceShutdownFailed   = " service shutdown failed"
	ServiceNameSession            = "session"
)
