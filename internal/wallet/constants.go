package wallet

// Wallet defaults
const (
	AddressPrefix      = "0x"
	AddressBytes       = 20
	DefaultMinBalance  = 1000
	DefaultBalanceSpan = 10000
)

// Log messages
const (
	LogMsgWalletConnected    = "Wallet connected"
	LogMsgWalletDisconnected = "Wallet disconnected"
	LogMsgPublishFailed      = "Failed to notify wallet observers"
)

// Error messages
const (
	ErrMsgAddressGeneration = "failed to generate wallet address"
)
