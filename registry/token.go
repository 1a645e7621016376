package registry

import (
	"github.com/tokenforge/libtokenforge-go/fraction"
	"github.com/tokenforge/libtokenforge-go/owner"
)

// Token is a single minted asset. Royalty and metadata are shared across
// the minting batch and referenced through non-owning lookup ids; the
// split map, when present, is per-token.
type Token struct {
	ID          uint64
	Owner       owner.Owner
	MetadataID  uint64                // lookup id of the batch's shared metadata record
	RoyaltyID   *uint64               // lookup id of the batch's shared royalty, if any
	SplitOwners *fraction.SplitOwners // one-shot claim on the next sale, if set
	Minter      string                // provenance: who minted this token

	Approvals    map[string]uint64 // operator account → approval id
	NextApproval uint64
}

// RoyaltyRecord is a shared royalty stored once per minting batch.
type RoyaltyRecord struct {
	SharedBy uint16 // tokens minted in the batch referencing this record
	Royalty  *fraction.Royalty
}

// MetadataRecord is the batch's shared display-data blob. Its contents are
// opaque to the accounting core; only its size is priced.
type MetadataRecord struct {
	SharedBy uint16
	Blob     []byte
}

// clone returns an independent copy of the token for read-only views.
func (t *Token) clone() *Token {
	out := *t
	out.SplitOwners = t.SplitOwners.Clone()
	if t.Approvals != nil {
		out.Approvals = make(map[string]uint64, len(t.Approvals))
		for account, id := range t.Approvals {
			out.Approvals[account] = id
		}
	}
	return &out
}
