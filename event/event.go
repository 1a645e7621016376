// Package event carries the registry's append-only activity feed: mint,
// privilege, split-set, and transfer notifications. Sinks are
// fire-and-forget; the registry never fails an operation on a sink.
package event

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Type names a registry event.
type Type string

const (
	TypeMintBatch      Type = "mint_batch"
	TypeGrantMinter    Type = "grant_minter"
	TypeRevokeMinter   Type = "revoke_minter"
	TypeSetSplitOwners Type = "set_split_owners"
	TypeTransfer       Type = "transfer"
)

// Event is a single registry notification.
type Event struct {
	ID     string
	Type   Type
	At     time.Time
	Fields map[string]string
}

// New stamps an event with a fresh id and the current time.
func New(t Type, fields map[string]string) Event {
	return Event{
		ID:     uuid.NewString(),
		Type:   t,
		At:     time.Now().UTC(),
		Fields: fields,
	}
}

// MintBatch records a freshly minted contiguous id range.
func MintBatch(firstID, lastID uint64, minter, owner string) Event {
	return New(TypeMintBatch, map[string]string{
		"first_id": strconv.FormatUint(firstID, 10),
		"last_id":  strconv.FormatUint(lastID, 10),
		"minter":   minter,
		"owner":    owner,
	})
}

// GrantMinter records a newly granted minting privilege.
func GrantMinter(account string) Event {
	return New(TypeGrantMinter, map[string]string{"account": account})
}

// RevokeMinter records a revoked minting privilege.
func RevokeMinter(account string) Event {
	return New(TypeRevokeMinter, map[string]string{"account": account})
}

// SetSplitOwners records split maps attached to a batch of tokens.
func SetSplitOwners(tokenIDs []uint64, numSplits int) Event {
	ids := make([]string, len(tokenIDs))
	for i, id := range tokenIDs {
		ids[i] = strconv.FormatUint(id, 10)
	}
	return New(TypeSetSplitOwners, map[string]string{
		"token_ids":  strings.Join(ids, ","),
		"num_splits": strconv.Itoa(numSplits),
	})
}

// Transfer records a change of direct ownership.
func Transfer(tokenID uint64, from, to string) Event {
	return New(TypeTransfer, map[string]string{
		"token_id": strconv.FormatUint(tokenID, 10),
		"from":     from,
		"to":       to,
	})
}
