package economy

// Error messages
const (
	ErrMsgReadTuning    = "failed to read economy tuning"
	ErrMsgInvalidTuning = "invalid economy tuning"

	ErrMsgPoolStatsFailed  = "failed to read pool stats: %w"
	ErrMsgAdjustPoolFailed = "failed to adjust pool stake: %w"
	ErrMsgRefundFailed     = "failed to refund stake: %w"
)

// Credit and debit reasons shown to observers
const (
	ReasonStake          = "Stake KAI"
	ReasonUnstake        = "Unstake KAI"
	ReasonStakeRefund    = "Stake refund"
	ReasonClaimInventory = "Claim inventory rewards"
	ReasonClaimWorldPool = "Claim world pool share"
)

// Log messages
const (
	LogMsgStaked            = "KAI staked"
	LogMsgUnstaked          = "KAI unstaked"
	LogMsgClaimed           = "Rewards claimed"
	LogMsgStakeReleased     = "Stake released to pool"
	LogMsgPoolRollback      = "Pool adjustment failed, refunding stake"
	LogMsgPoolRestoreFailed = "Failed to restore pool stake"
)

const daysPerYear = 365
