package fraction

import "errors"

var (
	// ErrInvalidFractions indicates a malformed royalty share map.
	ErrInvalidFractions = errors.New("fraction: invalid royalty fractions")

	// ErrInvalidSplit indicates a malformed split-owners share map.
	ErrInvalidSplit = errors.New("fraction: invalid split owners")

	// ErrPayoutTooLong indicates the payout exceeds the recipient ceiling.
	ErrPayoutTooLong = errors.New("fraction: payout too long")
)
