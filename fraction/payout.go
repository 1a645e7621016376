package fraction

import (
	"fmt"
	"math/bits"
)

// Payout maps beneficiary addresses to absolute amounts. It is a transient
// computed value, recomputed per request and never persisted.
type Payout map[string]uint64

// Total returns the sum of all payout amounts.
func (p Payout) Total() uint64 {
	var sum uint64
	for _, amount := range p {
		sum += amount
	}
	return sum
}

// CheckLen fails with ErrPayoutTooLong when the payout holds more entries
// than the caller-supplied ceiling.
func (p Payout) CheckLen(maxLen uint32) error {
	if uint32(len(p)) > maxLen {
		return fmt.Errorf("%w: %d recipients, max %d", ErrPayoutTooLong, len(p), maxLen)
	}
	return nil
}

// ComputePayout partitions balance between royalty beneficiaries, split
// beneficiaries, and the direct owner.
//
// Royalties are taken off the top: each royalty beneficiary receives
// floor(balance·percentage·share/Base²). Splits divide what remains among
// the prior co-owners: floor(remaining·share/Base) each. The owner key
// receives the exact residual, balance − Σ(all other amounts), so the
// payout always totals balance regardless of rounding loss; the owner
// absorbs all rounding error. Amounts for an address appearing more than
// once merge into a single entry, and zero amounts are omitted.
//
// Read-only and deterministic: identical inputs yield identical payouts.
func ComputePayout(ownerKey string, royalty *Royalty, splits *SplitOwners, balance uint64) Payout {
	payout := make(Payout, royalty.Len()+splits.Len()+1)

	var royaltyTotal uint64
	if royalty != nil {
		for account, share := range royalty.SplitBetween {
			// Each beneficiary's effective fraction of the sale is
			// percentage·share/Base².
			amount := mulDiv(balance, uint64(royalty.Percentage)*uint64(share), Base*Base)
			if amount > 0 {
				payout[account] += amount
			}
			royaltyTotal += amount
		}
	}

	remaining := balance - royaltyTotal
	var splitTotal uint64
	if splits != nil {
		for account, share := range splits.SplitBetween {
			amount := mulDiv(remaining, uint64(share), Base)
			if amount > 0 {
				payout[account] += amount
			}
			splitTotal += amount
		}
	}

	if residual := balance - royaltyTotal - splitTotal; residual > 0 {
		payout[ownerKey] += residual
	}
	return payout
}

// mulDiv returns floor(x·num/den) with a 128-bit intermediate, so the
// product cannot overflow for large sale balances. Callers must keep
// num ≤ den; then the quotient fits in a uint64.
func mulDiv(x, num, den uint64) uint64 {
	hi, lo := bits.Mul64(x, num)
	q, _ := bits.Div64(hi, lo, den)
	return q
}
