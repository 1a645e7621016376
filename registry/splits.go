package registry

import (
	"fmt"

	"github.com/tokenforge/libtokenforge-go/event"
	"github.com/tokenforge/libtokenforge-go/fraction"
	"github.com/tokenforge/libtokenforge-go/owner"
	"github.com/tokenforge/libtokenforge-go/storagefee"
)

// SetSplitOwners attaches a one-shot split map to each named token. The
// split divides the proceeds of each token's next sale and is consumed by
// that sale; it may only be set while the token's split field is empty.
//
// The caller must own every named token, none may be locked, the attached
// deposit must cover the storage of every new split entry, and each
// token's combined royalty and split length must fit in a payout. Every
// token is validated before any is written.
func (r *Registry) SetSplitOwners(call Call, tokenIDs []uint64, raw map[string]uint32) error {
	if len(tokenIDs) == 0 {
		return ErrNoTokenIDs
	}
	splits, err := fraction.NewSplitOwners(raw)
	if err != nil {
		return err
	}

	cost := storagefee.SplitEstimate(r.Costs, uint64(len(tokenIDs)), uint32(splits.Len()))
	if err := storagefee.CheckAdmission(call.Deposit, cost); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range tokenIDs {
		t, ok := r.Tokens[id]
		if !ok {
			return fmt.Errorf("%w: %d", ErrTokenNotFound, id)
		}
		if t.Owner.IsLocked() {
			return fmt.Errorf("%w: token %d", owner.ErrOwnerLocked, id)
		}
		account, ok := t.Owner.AccountID()
		if !ok || account != call.Caller {
			return fmt.Errorf("%w: token %d", ErrNotOwner, id)
		}
		if t.SplitOwners != nil {
			return fmt.Errorf("%w: token %d", ErrAlreadySplit, id)
		}
		royLen := 0
		if t.RoyaltyID != nil {
			royLen = r.TokenRoyalties[*t.RoyaltyID].Royalty.Len()
		}
		if royLen+splits.Len() > fraction.MaxLenPayout {
			return fmt.Errorf("%w: token %d: %d recipients, max %d",
				fraction.ErrPayoutTooLong, id, royLen+splits.Len(), fraction.MaxLenPayout)
		}
	}

	// All tokens admitted; write.
	for _, id := range tokenIDs {
		r.Tokens[id].SplitOwners = splits.Clone()
	}
	r.emit(event.SetSplitOwners(tokenIDs, splits.Len()))
	return nil
}
