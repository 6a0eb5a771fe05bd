package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Bundle error messages
	ErrMsgBundleTooLarge = "Bundle exceeds the maximum size"
	ErrMsgReadBodyFailed = "Failed to read request body"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgSessionCreated = "Session created"
	MsgSessionReset   = "Session reset"

	MsgWalletConnected    = "Wallet connected"
	MsgWalletDisconnected = "Wallet disconnected"
	MsgSpentFormat        = "Spent %d KAI"
	MsgEarnedFormat       = "Earned %d KAI"

	MsgCraftedFormat  = "Crafted %s for %d KAI"
	MsgObtainedFormat = "Obtained %s for %d KAI"
	MsgSoldFormat     = "Sold %s for %d KAI"
	MsgTriedFormat    = "Generated a preview for %d KAI"
	MsgUsedFormat     = "Generated with %s"
	MsgBoostedSuffix  = " (boosted)"

	MsgStakedFormat   = "Staked %d KAI"
	MsgUnstakedFormat = "Unstaked and received %d KAI"
	MsgClaimedFormat  = "Claimed %d KAI"

	MsgAppStateSaved   = "App state saved"
	MsgSessionImported = "Session imported"
)

// Log messages
const (
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgRequestDecoded  = "Request decoded"
	LogMsgServiceError    = "Service call failed"
	LogMsgMissingParam    = "Missing query parameter"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgExportWriteFail = "Failed to write export bundle"
)

// Export response headers
const (
	ContentTypeBundle    = "application/zstd"
	ExportFilenameFormat = "attachment; filename=\"potioncraft-%s.json.zst\""
	MaxBundleBytes       = 1 << 20
)
