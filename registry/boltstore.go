package registry

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/tokenforge/libtokenforge-go/storagefee"
)

var (
	bucketTokens    = []byte("tokens")
	bucketRoyalties = []byte("royalties")
	bucketMetadata  = []byte("metadata")
	bucketMeta      = []byte("meta")
)

var metaKeyState = []byte("state")

// metaState is the gob payload for the meta bucket. The owner index is
// not stored; it is rebuilt from the token records on load.
type metaState struct {
	OwnerID      string
	PricePerByte uint64
	Common       uint64
	PerToken     uint64
	TokensMinted uint64
	Minters      []string
}

// BoltStore persists registry snapshots in a bbolt database.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBoltStore opens or creates the bbolt database at dbPath. The parent
// directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("registry: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("registry: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketTokens, bucketRoyalties, bucketMetadata, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("boltstore: create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("registry: create buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// SaveSnapshot persists the registry's full accounting state in one bolt
// transaction. Embedders call this after successful mutations; the
// registry core itself stays in memory.
func (s *BoltStore) SaveSnapshot(r *Registry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketTokens, bucketRoyalties, bucketMetadata, bucketMeta} {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("boltstore: reset bucket %q: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("boltstore: recreate bucket %q: %w", name, err)
			}
		}

		tokens := tx.Bucket(bucketTokens)
		for id, t := range r.Tokens {
			data, err := encodeGob(t)
			if err != nil {
				return fmt.Errorf("boltstore: encode token %d: %w", id, err)
			}
			if err := tokens.Put(idKey(id), data); err != nil {
				return fmt.Errorf("boltstore: put token %d: %w", id, err)
			}
		}

		royalties := tx.Bucket(bucketRoyalties)
		for id, rec := range r.TokenRoyalties {
			data, err := encodeGob(rec)
			if err != nil {
				return fmt.Errorf("boltstore: encode royalty %d: %w", id, err)
			}
			if err := royalties.Put(idKey(id), data); err != nil {
				return fmt.Errorf("boltstore: put royalty %d: %w", id, err)
			}
		}

		metadata := tx.Bucket(bucketMetadata)
		for id, rec := range r.TokenMetadata {
			data, err := encodeGob(rec)
			if err != nil {
				return fmt.Errorf("boltstore: encode metadata %d: %w", id, err)
			}
			if err := metadata.Put(idKey(id), data); err != nil {
				return fmt.Errorf("boltstore: put metadata %d: %w", id, err)
			}
		}

		minters := make([]string, 0, len(r.Minters))
		for account := range r.Minters {
			minters = append(minters, account)
		}
		meta := metaState{
			OwnerID:      r.OwnerID,
			PricePerByte: r.Costs.PricePerByte,
			Common:       r.Costs.Common,
			PerToken:     r.Costs.PerToken,
			TokensMinted: r.TokensMinted,
			Minters:      minters,
		}
		data, err := encodeGob(&meta)
		if err != nil {
			return fmt.Errorf("boltstore: encode meta: %w", err)
		}
		return tx.Bucket(bucketMeta).Put(metaKeyState, data)
	})
}

// LoadSnapshot restores a registry from the last saved snapshot. The owner
// index is rebuilt from the token records. Options rewire the funds oracle
// and event sink, which are not persisted.
func (s *BoltStore) LoadSnapshot(opts ...Option) (*Registry, error) {
	var meta metaState
	tokens := make(map[uint64]*Token)
	royalties := make(map[uint64]*RoyaltyRecord)
	metadata := make(map[uint64]*MetadataRecord)

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(metaKeyState)
		if data == nil {
			return ErrNoSnapshot
		}
		if err := decodeGob(data, &meta); err != nil {
			return fmt.Errorf("boltstore: decode meta: %w", err)
		}

		err := tx.Bucket(bucketTokens).ForEach(func(k, v []byte) error {
			var t Token
			if err := decodeGob(v, &t); err != nil {
				return fmt.Errorf("boltstore: decode token: %w", err)
			}
			tokens[t.ID] = &t
			return nil
		})
		if err != nil {
			return err
		}

		err = tx.Bucket(bucketRoyalties).ForEach(func(k, v []byte) error {
			var rec RoyaltyRecord
			if err := decodeGob(v, &rec); err != nil {
				return fmt.Errorf("boltstore: decode royalty: %w", err)
			}
			royalties[keyID(k)] = &rec
			return nil
		})
		if err != nil {
			return err
		}

		return tx.Bucket(bucketMetadata).ForEach(func(k, v []byte) error {
			var rec MetadataRecord
			if err := decodeGob(v, &rec); err != nil {
				return fmt.Errorf("boltstore: decode metadata: %w", err)
			}
			metadata[keyID(k)] = &rec
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	costs := storagefee.Costs{
		PricePerByte: meta.PricePerByte,
		Common:       meta.Common,
		PerToken:     meta.PerToken,
	}
	r := New(meta.OwnerID, costs, opts...)
	r.TokensMinted = meta.TokensMinted
	r.Tokens = tokens
	r.TokenRoyalties = royalties
	r.TokenMetadata = metadata
	r.Minters = make(map[string]bool, len(meta.Minters))
	for _, account := range meta.Minters {
		r.Minters[account] = true
	}
	r.TokensPerOwner = make(map[string][]uint64)
	for _, id := range sortedIDs(tokens) {
		if account, ok := tokens[id].Owner.AccountID(); ok {
			r.TokensPerOwner[account] = append(r.TokensPerOwner[account], id)
		}
	}
	return r, nil
}

// idKey encodes a lookup or token id as an 8-byte big-endian key for
// sorted storage.
func idKey(id uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, id)
	return k
}

// keyID decodes an 8-byte big-endian key.
func keyID(k []byte) uint64 {
	return binary.BigEndian.Uint64(k)
}

// sortedIDs returns token ids in ascending order so the rebuilt owner
// index is deterministic.
func sortedIDs(tokens map[uint64]*Token) []uint64 {
	ids := make([]uint64, 0, len(tokens))
	for id := range tokens {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// encodeGob serializes a value using gob encoding.
func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeGob deserializes gob-encoded data into a value.
func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
