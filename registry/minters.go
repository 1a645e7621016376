package registry

import (
	"fmt"
	"sort"

	"github.com/tokenforge/libtokenforge-go/event"
)

// GrantMinter gives account minting privilege. Only the store owner may
// call this. Granting an existing minter is a no-op and emits nothing.
func (r *Registry) GrantMinter(call Call, account string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if call.Caller != r.OwnerID {
		return fmt.Errorf("%w: %s", ErrNotStoreOwner, call.Caller)
	}
	if r.Minters[account] {
		return nil
	}
	r.Minters[account] = true
	r.emit(event.GrantMinter(account))
	return nil
}

// RevokeMinter removes account's minting privilege. Only the store owner
// may call this, and the store owner can never revoke themselves.
func (r *Registry) RevokeMinter(call Call, account string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if call.Caller != r.OwnerID {
		return fmt.Errorf("%w: %s", ErrNotStoreOwner, call.Caller)
	}
	if account == r.OwnerID {
		return ErrCannotRevokeOwner
	}
	if !r.Minters[account] {
		return fmt.Errorf("%w: %s", ErrNotMinter, account)
	}
	delete(r.Minters, account)
	r.emit(event.RevokeMinter(account))
	return nil
}

// IsMinter reports whether account holds minting privilege.
func (r *Registry) IsMinter(account string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Minters[account]
}

// ListMinters returns all privileged accounts in sorted order.
func (r *Registry) ListMinters() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	minters := make([]string, 0, len(r.Minters))
	for account := range r.Minters {
		minters = append(minters, account)
	}
	sort.Strings(minters)
	return minters
}
