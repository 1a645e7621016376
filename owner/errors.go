package owner

import "errors"

var (
	// ErrOwnerLocked indicates the token's ownership is suspended pending
	// a cross-registry callback.
	ErrOwnerLocked = errors.New("owner: token owner is locked")

	// ErrUnknownKind indicates an Owner with an unrecognized variant tag.
	ErrUnknownKind = errors.New("owner: unknown owner kind")
)
