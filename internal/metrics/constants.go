package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNamePotions           = "potions_total"
	MetricNameBoostedUses       = "potion_boosted_uses_total"
	MetricNameKaiSpent          = "kai_spent_total"
	MetricNameKaiEarned         = "kai_earned_total"
	MetricNameWorldPoolStaked   = "world_pool_staked_kai"
	MetricNameRewardsClaimed    = "rewards_claimed_kai_total"
	MetricNameRewardsAccrued    = "rewards_accrued_kai_total"
	MetricNameWalletTransitions = "wallet_transitions_total"
	MetricNameSessionResets     = "session_resets_total"
	MetricNameSearchesPerformed = "catalog_searches_total"
	MetricNameActiveSessions    = "active_sessions"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextPotions           = "Potion actions by kind and rarity"
	HelpTextBoostedUses       = "Potion uses that hit the popularity boost"
	HelpTextKaiSpent          = "Total KAI debited from wallets"
	HelpTextKaiEarned         = "Total KAI credited to wallets"
	HelpTextWorldPoolStaked   = "KAI currently staked in the world pool"
	HelpTextRewardsClaimed    = "Total KAI paid out by reward claims"
	HelpTextRewardsAccrued    = "Total KAI accrued into unclaimed rewards"
	HelpTextWalletTransitions = "Wallet connects and disconnects"
	HelpTextSessionResets     = "Total number of session resets"
	HelpTextSearchesPerformed = "Total number of catalog searches"
	HelpTextActiveSessions    = "Sessions currently held in memory"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelAction = "action"
	LabelRarity = "rarity"
	LabelKind   = "kind"
)

// Potion action label values
const (
	ActionCrafted  = "crafted"
	ActionObtained = "obtained"
	ActionSold     = "sold"
	ActionUsed     = "used"

	ActionConnected    = "connected"
	ActionDisconnected = "disconnected"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. Operations include a simulated delay of up to a second.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
