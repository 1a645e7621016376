package registry

import (
	"fmt"

	"github.com/tokenforge/libtokenforge-go/fraction"
	"github.com/tokenforge/libtokenforge-go/owner"
)

// TokenRoyalty resolves the shared royalty a token references, or nil when
// the token was minted without one.
func (r *Registry) TokenRoyalty(tokenID uint64) (*fraction.Royalty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.Tokens[tokenID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrTokenNotFound, tokenID)
	}
	if t.RoyaltyID == nil {
		return nil, nil
	}
	return r.TokenRoyalties[*t.RoyaltyID].Royalty, nil
}

// Payout computes the distribution of a sale balance across the token's
// royalty beneficiaries, split beneficiaries, and direct owner. Read-only
// and deterministic; the payout always totals balance exactly.
//
// The token's owner must be a direct account: locked ownership fails with
// owner.ErrOwnerLocked, composed ownership with ErrComposedOwnerPayout.
// maxLen is the caller's own recipient ceiling, checked independently of
// fraction.MaxLenPayout.
func (r *Registry) Payout(tokenID uint64, balance uint64, maxLen uint32) (fraction.Payout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.payoutLocked(tokenID, balance, maxLen)
}

func (r *Registry) payoutLocked(tokenID uint64, balance uint64, maxLen uint32) (fraction.Payout, error) {
	t, ok := r.Tokens[tokenID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrTokenNotFound, tokenID)
	}

	switch t.Owner.Kind {
	case owner.KindAccount:
	case owner.KindLocked:
		return nil, fmt.Errorf("%w: token %d", owner.ErrOwnerLocked, tokenID)
	default:
		return nil, fmt.Errorf("%w: token %d", ErrComposedOwnerPayout, tokenID)
	}

	key, err := t.Owner.PayoutKey()
	if err != nil {
		return nil, err
	}

	var royalty *fraction.Royalty
	if t.RoyaltyID != nil {
		royalty = r.TokenRoyalties[*t.RoyaltyID].Royalty
	}

	payout := fraction.ComputePayout(key, royalty, t.SplitOwners, balance)
	if err := payout.CheckLen(maxLen); err != nil {
		return nil, err
	}
	return payout, nil
}

// TransferAndPayout computes the payout for a sale and then transfers the
// token to the receiver, consuming the token's split map. The caller must
// attach exactly the minimal deposit as an anti-griefing marker. Nothing
// is mutated when the payout fails.
func (r *Registry) TransferAndPayout(call Call, receiver string, tokenID, approvalID uint64, balance uint64, maxLen uint32) (fraction.Payout, error) {
	if call.Deposit != MinimalDeposit {
		return nil, ErrExactDepositRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	payout, err := r.payoutLocked(tokenID, balance, maxLen)
	if err != nil {
		return nil, err
	}
	if err := r.transferLocked(call.Caller, receiver, tokenID, approvalID); err != nil {
		return nil, err
	}
	return payout, nil
}
