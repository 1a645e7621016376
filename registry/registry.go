// Package registry is the accounting core of a tokenized-asset registry.
// It mints batches of individually-owned tokens, tracks minting
// privileges, shared royalties, per-token split claims, and computes exact
// sale payouts.
//
// Every operation validates fully before mutating anything, so a failed
// request leaves the registry byte-for-byte unchanged. All shared state
// lives on one Registry instance behind a single lock; a batch mint
// reserves its whole contiguous id range up front.
package registry

import (
	"fmt"
	"math"
	"sync"

	"github.com/tokenforge/libtokenforge-go/event"
	"github.com/tokenforge/libtokenforge-go/fraction"
	"github.com/tokenforge/libtokenforge-go/owner"
	"github.com/tokenforge/libtokenforge-go/storagefee"
)

const (
	// BatchLimit caps tokens per mint call. The ceiling comes from the
	// event sink's per-call limits, not from admission control.
	BatchLimit = 125

	// MinimalDeposit is the nominal deposit required on state-changing
	// calls, and the exact deposit required on transfers as an
	// anti-griefing marker.
	MinimalDeposit = 1
)

// Call carries what the host's authentication primitive yields for one
// request: the caller's address and the deposit attached to the call.
type Call struct {
	Caller  string
	Deposit uint64
}

// FundsOracle reports the registry account's balance not yet committed to
// storage. It is consumed during admission control; deriving the figure is
// the host environment's concern.
type FundsOracle interface {
	CoveredFunds() uint64
}

// StaticFunds is a fixed-value FundsOracle.
type StaticFunds uint64

// CoveredFunds implements FundsOracle.
func (f StaticFunds) CoveredFunds() uint64 { return uint64(f) }

// Registry owns all shared accounting state: the token map, the shared
// royalty and metadata stores, the minter set, the running id counter, and
// the owner index. One lock serializes every operation; the contiguous id
// reservation in MintBatch is not decomposable into independent steps.
type Registry struct {
	mu sync.Mutex

	OwnerID string // the store owner; manages minting privileges
	Costs   storagefee.Costs

	TokensMinted   uint64                     // running id counter, next id to assign
	Tokens         map[uint64]*Token          // token id → token
	TokenRoyalties map[uint64]*RoyaltyRecord  // lookup id → shared royalty, append-only
	TokenMetadata  map[uint64]*MetadataRecord // lookup id → shared metadata
	Minters        map[string]bool            // accounts with minting privilege
	TokensPerOwner map[string][]uint64        // owner account → owned token ids

	funds FundsOracle
	sink  event.Sink
}

// Option configures a Registry.
type Option func(*Registry)

// WithFunds wires the balance/storage oracle used by admission control.
func WithFunds(oracle FundsOracle) Option {
	return func(r *Registry) { r.funds = oracle }
}

// WithSink wires the append-only event sink.
func WithSink(sink event.Sink) Option {
	return func(r *Registry) { r.sink = sink }
}

// New creates a registry owned by ownerID. The owner starts with minting
// privilege. Without WithFunds the admission gate is effectively open;
// embedders wire a real oracle.
func New(ownerID string, costs storagefee.Costs, opts ...Option) *Registry {
	r := &Registry{
		OwnerID:        ownerID,
		Costs:          costs,
		Tokens:         make(map[uint64]*Token),
		TokenRoyalties: make(map[uint64]*RoyaltyRecord),
		TokenMetadata:  make(map[uint64]*MetadataRecord),
		Minters:        map[string]bool{ownerID: true},
		TokensPerOwner: make(map[string][]uint64),
		funds:          StaticFunds(math.MaxUint64),
		sink:           event.NopSink{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RoyaltyArgs is the royalty request attached to a mint: the slice of
// every future sale taken as the royalty pool, and how the pool divides
// between beneficiaries.
type RoyaltyArgs struct {
	SplitBetween map[string]uint32 // pool shares, parts-per-fraction.Base
	Percentage   uint32            // pool size, parts-per-fraction.Base of each sale
}

// MintArgs describes one batch mint request.
type MintArgs struct {
	Owner    string            // initial owner of every minted token
	Metadata []byte            // opaque shared display data; only its size is priced
	Count    uint64            // tokens to mint, 1..BatchLimit
	Royalty  *RoyaltyArgs      // optional perpetual royalty shared by the batch
	Split    map[string]uint32 // optional split shares applied to each token
}

// MintBatch mints args.Count tokens sharing one metadata record and, when
// provided, one royalty record. Returns the contiguous id range minted.
//
// Restrictions: the caller must hold minting privilege and attach at least
// a nominal deposit; the combined royalty and split length must fit in a
// payout; and the registry account's covered funds must admit the storage
// cost of every new record. All checks run before the first write.
func (r *Registry) MintBatch(call Call, args MintArgs) (firstID, lastID uint64, err error) {
	if args.Count == 0 || args.Count > BatchLimit {
		return 0, 0, fmt.Errorf("%w: count %d not in [1, %d]", ErrBatchLimit, args.Count, BatchLimit)
	}
	if call.Deposit < MinimalDeposit {
		return 0, 0, ErrNoDeposit
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.Minters[call.Caller] {
		return 0, 0, fmt.Errorf("%w: %s", ErrNotMinter, call.Caller)
	}

	var royLen uint32
	if args.Royalty != nil {
		royLen = uint32(len(args.Royalty.SplitBetween))
	}
	splitLen := uint32(len(args.Split))
	payoutLen := royLen + splitLen
	if splitLen == 0 {
		payoutLen++ // no split map still leaves the owner as a recipient
	}
	if payoutLen > fraction.MaxLenPayout {
		return 0, 0, fmt.Errorf("%w: %d recipients, max %d", fraction.ErrPayoutTooLong, payoutLen, fraction.MaxLenPayout)
	}

	estimate := storagefee.MintEstimate(r.Costs, args.Count, uint64(len(args.Metadata)), royLen, splitLen)
	if err := storagefee.CheckAdmission(r.funds.CoveredFunds(), estimate); err != nil {
		return 0, 0, err
	}

	var royalty *fraction.Royalty
	if args.Royalty != nil {
		if royalty, err = fraction.NewRoyalty(args.Royalty.SplitBetween, args.Royalty.Percentage); err != nil {
			return 0, 0, err
		}
	}
	var splits *fraction.SplitOwners
	if len(args.Split) > 0 {
		if splits, err = fraction.NewSplitOwners(args.Split); err != nil {
			return 0, 0, err
		}
	}

	// Validation complete; reserve the whole id range and write.
	lookupID := r.TokensMinted
	var royaltyID *uint64
	if royalty != nil {
		r.TokenRoyalties[lookupID] = &RoyaltyRecord{SharedBy: uint16(args.Count), Royalty: royalty}
		id := lookupID
		royaltyID = &id
	}
	r.TokenMetadata[lookupID] = &MetadataRecord{
		SharedBy: uint16(args.Count),
		Blob:     append([]byte(nil), args.Metadata...),
	}

	for i := uint64(0); i < args.Count; i++ {
		id := r.TokensMinted + i
		r.Tokens[id] = &Token{
			ID:          id,
			Owner:       owner.NewAccount(args.Owner),
			MetadataID:  lookupID,
			RoyaltyID:   royaltyID,
			SplitOwners: splits.Clone(),
			Minter:      call.Caller,
		}
		r.TokensPerOwner[args.Owner] = append(r.TokensPerOwner[args.Owner], id)
	}
	r.TokensMinted += args.Count

	firstID, lastID = lookupID, r.TokensMinted-1
	r.emit(event.MintBatch(firstID, lastID, call.Caller, args.Owner))
	return firstID, lastID, nil
}

// Token returns a copy of the token, or ErrTokenNotFound.
func (r *Registry) Token(tokenID uint64) (*Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.Tokens[tokenID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrTokenNotFound, tokenID)
	}
	return t.clone(), nil
}

// OwnedTokens returns the ids currently indexed under an owner account.
func (r *Registry) OwnedTokens(account string) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uint64(nil), r.TokensPerOwner[account]...)
}

// emit appends to the event sink. Fire-and-forget: sinks are notification
// only and never affect the outcome of an operation.
func (r *Registry) emit(ev event.Event) {
	r.sink.Append(ev)
}
