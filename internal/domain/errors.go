package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Wallet errors
	ErrMsgNotConnected        = "wallet not connected"
	ErrMsgInsufficientBalance = "insufficient balance"
	ErrMsgInvalidAmount       = "invalid amount"

	// Item and inventory errors
	ErrMsgItemNotFound  = "item not found"
	ErrMsgDuplicateItem = "item already in inventory"

	// Reward and staking errors
	ErrMsgNothingToClaim   = "nothing to claim"
	ErrMsgNothingStaked    = "nothing staked"
	ErrMsgInvalidClaimKind = "invalid claim kind"

	// Session errors
	ErrMsgSessionNotFound = "session not found"
	ErrMsgInvalidBundle   = "invalid session bundle"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotConnected        = errors.New(ErrMsgNotConnected)
	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)
	ErrInvalidAmount       = errors.New(ErrMsgInvalidAmount)

	ErrItemNotFound  = errors.New(ErrMsgItemNotFound)
	ErrDuplicateItem = errors.New(ErrMsgDuplicateItem)

	ErrNothingToClaim   = errors.New(ErrMsgNothingToClaim)
	ErrNothingStaked    = errors.New(ErrMsgNothingStaked)
	ErrInvalidClaimKind = errors.New(ErrMsgInvalidClaimKind)

	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)
	ErrInvalidBundle   = errors.New(ErrMsgInvalidBundle)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
