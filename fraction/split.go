package fraction

import "fmt"

// SplitOwners is a one-time fractional claim on the next sale of a single
// token. It is set post-mint while the field is empty and consumed by the
// token's next sale-with-payout.
type SplitOwners struct {
	SplitBetween map[string]uint32 // beneficiary → parts-per-Base
}

// NewSplitOwners validates a raw split map. On top of the common share
// invariants it requires at least two entries; a split between one party
// is meaningless. Fails with ErrInvalidSplit otherwise.
func NewSplitOwners(raw map[string]uint32) (*SplitOwners, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 entries, got %d", ErrInvalidSplit, len(raw))
	}
	if err := checkShares(raw, ErrInvalidSplit); err != nil {
		return nil, err
	}
	return &SplitOwners{SplitBetween: cloneShares(raw)}, nil
}

// Len returns the number of beneficiaries.
func (s *SplitOwners) Len() int {
	if s == nil {
		return 0
	}
	return len(s.SplitBetween)
}

// Clone returns an independent copy. Split ownership is per-token even
// when a whole batch is minted with the same split map.
func (s *SplitOwners) Clone() *SplitOwners {
	if s == nil {
		return nil
	}
	return &SplitOwners{SplitBetween: cloneShares(s.SplitBetween)}
}
