package session

import "time"

// Item id prefixes
const (
	CraftedIDPrefix  = "crafted_"
	ObtainedIDPrefix = "obtained_"
	SampleIDFormat   = "user_%d"
	sampleSeedFormat = "sample_%s_%d"
	defaultCraftTag  = "custom"
)

// Bundle format
const (
	BundleVersion = 1
	// MaxDecodedBundleBytes caps the decompressed size of an imported bundle
	MaxDecodedBundleBytes = 4 << 20
	// MaxImportedDailyEarnings caps the daily earnings of an imported item
	MaxImportedDailyEarnings = 1000
)

// Defaults
const (
	DefaultLatencyMin = 200 * time.Millisecond
	DefaultLatencyMax = 800 * time.Millisecond
)

// Reasons attached to balance events
const (
	ReasonCraftFormat  = "Craft %s"
	ReasonObtainFormat = "Obtain %s"
	ReasonTryFormat    = "Try %s"
)

// Error messages
const (
	ErrMsgNameRequired     = "name is required"
	ErrMsgNameTooShortFmt  = "name must be at least %d characters"
	ErrMsgPersistFailed    = "failed to persist session"
	ErrMsgLoadFailed       = "failed to load session"
	ErrMsgDecodeSnapshot   = "failed to decode snapshot %s: %w"
	ErrMsgEncodeSnapshot   = "failed to encode snapshot %s: %w"
	ErrMsgBundleVersionFmt = "unsupported bundle version %d"
	ErrMsgBundleEmpty      = "bundle has no snapshots"
	ErrMsgSeedSample       = "failed to seed sample inventory"
)

// Log messages
const (
	LogMsgSessionOpened   = "Session opened"
	LogMsgSessionLoaded   = "Session loaded from storage"
	LogMsgSessionReset    = "Session reset"
	LogMsgSessionImported = "Session imported"
	LogMsgPotionCrafted   = "Potion crafted"
	LogMsgPotionObtained  = "Potion obtained"
	LogMsgPotionSold      = "Potion sold"
	LogMsgPotionUsed      = "Potion used"
	LogMsgRefundFailed    = "Failed to refund after inventory error"
	LogMsgPublishFailed   = "Failed to publish event"
	LogMsgAccrueFailed    = "Failed to accrue rewards"
	LogMsgShutdownPersist = "Persisting sessions on shutdown"
	LogMsgRolledBack      = "Save failed, session rolled back"

	LogMsgPoolRestoreFailed = "Failed to restore pool stake"
)
