// Package fraction implements the validated percentage maps behind royalty
// and split-owner claims, and composes them into exact sale payouts.
//
// Shares are expressed in parts-per-Base (parts-per-10000). Every validated
// map sums exactly to Base, so a payout computed from it can always be made
// to sum exactly to the sale balance.
package fraction

import "fmt"

const (
	// Base is the percentage basis: shares are parts-per-10000.
	Base = 10000

	// MaxLenPayout caps the combined number of royalty and split
	// beneficiaries attached to a single token.
	MaxLenPayout = 50
)

// Royalty is a perpetual fractional claim on every future sale of a token.
// Percentage is the slice of each sale taken off the top as the royalty
// pool; SplitBetween divides that pool and sums exactly to Base. Validated
// at construction and immutable afterwards; one Royalty is shared by every
// token of a minting batch.
type Royalty struct {
	SplitBetween map[string]uint32 // beneficiary → parts-per-Base of the pool
	Percentage   uint32            // parts-per-Base of each sale forming the pool
}

// NewRoyalty validates a raw royalty request. The map must be non-empty,
// hold at most MaxLenPayout entries, and its positive shares must sum
// exactly to Base; percentage must not exceed Base. Fails with
// ErrInvalidFractions otherwise.
func NewRoyalty(raw map[string]uint32, percentage uint32) (*Royalty, error) {
	if percentage > Base {
		return nil, fmt.Errorf("%w: percentage %d exceeds %d", ErrInvalidFractions, percentage, Base)
	}
	if err := checkShares(raw, ErrInvalidFractions); err != nil {
		return nil, err
	}
	return &Royalty{SplitBetween: cloneShares(raw), Percentage: percentage}, nil
}

// Len returns the number of beneficiaries.
func (r *Royalty) Len() int {
	if r == nil {
		return 0
	}
	return len(r.SplitBetween)
}

// checkShares enforces the common share-map invariants, reporting failures
// as wrapped instances of sentinel.
func checkShares(raw map[string]uint32, sentinel error) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: empty share map", sentinel)
	}
	if len(raw) > MaxLenPayout {
		return fmt.Errorf("%w: %d entries exceeds max %d", sentinel, len(raw), MaxLenPayout)
	}
	var sum uint64
	for account, share := range raw {
		if share == 0 {
			return fmt.Errorf("%w: zero share for %q", sentinel, account)
		}
		sum += uint64(share)
	}
	if sum != Base {
		return fmt.Errorf("%w: shares sum to %d, want %d", sentinel, sum, Base)
	}
	return nil
}

// cloneShares copies a share map so callers cannot mutate validated state.
func cloneShares(raw map[string]uint32) map[string]uint32 {
	out := make(map[string]uint32, len(raw))
	for account, share := range raw {
		out[account] = share
	}
	return out
}
