package registry

import "errors"

var (
	// ErrNotMinter indicates the account does not hold minting privilege.
	ErrNotMinter = errors.New("registry: not a minter")

	// ErrNotStoreOwner indicates the caller is not the store owner.
	ErrNotStoreOwner = errors.New("registry: not the store owner")

	// ErrCannotRevokeOwner indicates an attempt to revoke the store
	// owner's own minting privilege.
	ErrCannotRevokeOwner = errors.New("registry: cannot revoke the store owner")

	// ErrNotOwner indicates the caller does not own the token.
	ErrNotOwner = errors.New("registry: caller is not the token owner")

	// ErrNoDeposit indicates a state-changing call without the nominal
	// attached deposit.
	ErrNoDeposit = errors.New("registry: deposit required")

	// ErrExactDepositRequired indicates a transfer call whose deposit is
	// not exactly the minimal marker amount.
	ErrExactDepositRequired = errors.New("registry: exactly the minimal deposit required")

	// ErrBatchLimit indicates a mint count outside [1, BatchLimit].
	ErrBatchLimit = errors.New("registry: mint count out of range")

	// ErrTokenNotFound indicates an unknown token id.
	ErrTokenNotFound = errors.New("registry: token not found")

	// ErrNoTokenIDs indicates a split-set request naming no tokens.
	ErrNoTokenIDs = errors.New("registry: no token ids")

	// ErrAlreadySplit indicates the token already carries an unconsumed
	// split map.
	ErrAlreadySplit = errors.New("registry: split owners already set")

	// ErrComposedOwnerPayout indicates a payout request against a token
	// held by another token; composed ownership has no direct payout.
	ErrComposedOwnerPayout = errors.New("registry: composed owner has no payout")

	// ErrNoApproval indicates a transfer by a caller holding no matching
	// approval on the token.
	ErrNoApproval = errors.New("registry: no matching approval")

	// ErrNoSnapshot indicates the bolt database holds no saved registry
	// snapshot.
	ErrNoSnapshot = errors.New("registry: no snapshot")
)
