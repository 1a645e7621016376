// Package storagefee prices the persistent records a mint request would
// create and gates the request on the caller's funded storage. The check
// runs to completion before any registry state is touched, so a failed
// admission never leaves partial state behind.
package storagefee

import "fmt"

// Costs is the process-wide storage pricing model. Read-only after
// initialization.
type Costs struct {
	PricePerByte uint64 // cost per byte of stored metadata
	Common       uint64 // fixed cost per stored record
	PerToken     uint64 // fixed cost per minted token
}

// DefaultCosts returns the standard pricing model.
func DefaultCosts() Costs {
	return NewCosts(10)
}

// NewCosts derives the record and token fees from a per-byte price using
// the 80-byte record and 360-byte token footprints.
func NewCosts(pricePerByte uint64) Costs {
	return Costs{
		PricePerByte: pricePerByte,
		Common:       80 * pricePerByte,
		PerToken:     360 * pricePerByte,
	}
}

// MintEstimate prices a batch mint. The batch pays one fixed fee for its
// shared registry entry, a byte-priced fee for the shared metadata record,
// and one fixed fee per royalty entry; each token then pays its own fixed
// fee plus a fee per split entry attached at mint time. Splits set later
// are funded separately by the set-split-owners deposit.
//
// Pure and monotonically non-decreasing in every argument.
func MintEstimate(c Costs, numTokens, metadataSize uint64, numRoyalties, numSplits uint32) uint64 {
	return c.Common +
		metadataSize*c.PricePerByte +
		uint64(numRoyalties)*c.Common +
		numTokens*(c.PerToken+uint64(numSplits)*c.Common)
}

// SplitEstimate prices attaching a split map of numSplits entries to each
// of numTokens already-minted tokens.
func SplitEstimate(c Costs, numTokens uint64, numSplits uint32) uint64 {
	return c.Common * uint64(numSplits) * numTokens
}

// CheckAdmission fails with ErrInsufficientFunds when the covered funds do
// not reach the estimate. The error carries the required amount so the
// caller can retry with an adequate deposit.
func CheckAdmission(covered, estimate uint64) error {
	if covered < estimate {
		return fmt.Errorf("%w: covered %d, need %d", ErrInsufficientFunds, covered, estimate)
	}
	return nil
}
