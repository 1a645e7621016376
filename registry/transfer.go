package registry

import (
	"fmt"

	"github.com/tokenforge/libtokenforge-go/event"
	"github.com/tokenforge/libtokenforge-go/owner"
)

// Approve registers receiver as an operator allowed to transfer the token
// and returns the approval id to quote on the transfer. Owner-only; fails
// on locked or composed ownership.
func (r *Registry) Approve(call Call, tokenID uint64, account string) (uint64, error) {
	if call.Deposit < MinimalDeposit {
		return 0, ErrNoDeposit
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.Tokens[tokenID]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrTokenNotFound, tokenID)
	}
	if t.Owner.IsLocked() {
		return 0, fmt.Errorf("%w: token %d", owner.ErrOwnerLocked, tokenID)
	}
	holder, ok := t.Owner.AccountID()
	if !ok || holder != call.Caller {
		return 0, fmt.Errorf("%w: token %d", ErrNotOwner, tokenID)
	}

	if t.Approvals == nil {
		t.Approvals = make(map[string]uint64)
	}
	id := t.NextApproval
	t.NextApproval++
	t.Approvals[account] = id
	return id, nil
}

// Transfer moves a token to receiver. The caller must be the direct owner
// or hold a matching approval, and must attach exactly the minimal
// deposit. The token's split map is consumed by the transfer; approvals
// are cleared.
func (r *Registry) Transfer(call Call, receiver string, tokenID, approvalID uint64) error {
	if call.Deposit != MinimalDeposit {
		return ErrExactDepositRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transferLocked(call.Caller, receiver, tokenID, approvalID)
}

// transferLocked mutates ownership; callers hold the lock and have already
// enforced deposit rules.
func (r *Registry) transferLocked(caller, receiver string, tokenID, approvalID uint64) error {
	t, ok := r.Tokens[tokenID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrTokenNotFound, tokenID)
	}
	if t.Owner.IsLocked() {
		return fmt.Errorf("%w: token %d", owner.ErrOwnerLocked, tokenID)
	}
	holder, ok := t.Owner.AccountID()
	if !ok {
		return fmt.Errorf("%w: token %d", ErrNotOwner, tokenID)
	}
	if holder != caller {
		id, approved := t.Approvals[caller]
		if !approved || id != approvalID {
			return fmt.Errorf("%w: token %d", ErrNoApproval, tokenID)
		}
	}

	t.Owner = owner.NewAccount(receiver)
	t.SplitOwners = nil // the split claims the next sale only; consumed here
	t.Approvals = nil
	r.reindexOwner(holder, receiver, tokenID)
	r.emit(event.Transfer(tokenID, holder, receiver))
	return nil
}

// reindexOwner moves a token id between owner index entries.
func (r *Registry) reindexOwner(from, to string, tokenID uint64) {
	ids := r.TokensPerOwner[from]
	for i, id := range ids {
		if id == tokenID {
			r.TokensPerOwner[from] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(r.TokensPerOwner[from]) == 0 {
		delete(r.TokensPerOwner, from)
	}
	r.TokensPerOwner[to] = append(r.TokensPerOwner[to], tokenID)
}
