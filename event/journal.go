package event

import (
	"encoding/binary"
	"fmt"
	"sync"

	"golang.org/x/crypto/sha3"
)

// Entry is a journaled event together with its chained digest.
type Entry struct {
	Event  Event
	Digest [32]byte // SHA3-256 over the previous digest and this event
}

// Journal is an in-memory append-only sink. Each entry's digest chains
// over its predecessor, so any tampering with recorded history is
// detectable via Verify.
type Journal struct {
	mu      sync.Mutex
	entries []Entry
}

// NewJournal returns an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Append implements Sink.
func (j *Journal) Append(ev Event) {
	j.mu.Lock()
	defer j.mu.Unlock()

	var prev [32]byte
	if n := len(j.entries); n > 0 {
		prev = j.entries[n-1].Digest
	}
	j.entries = append(j.entries, Entry{Event: ev, Digest: chainDigest(prev, ev)})
}

// Entries returns a copy of the journaled entries in append order.
func (j *Journal) Entries() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of journaled entries.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

// Verify recomputes the digest chain and fails with ErrJournalCorrupt on
// the first entry whose digest does not match.
func (j *Journal) Verify() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	var prev [32]byte
	for i, entry := range j.entries {
		want := chainDigest(prev, entry.Event)
		if entry.Digest != want {
			return fmt.Errorf("%w: entry %d", ErrJournalCorrupt, i)
		}
		prev = entry.Digest
	}
	return nil
}

// chainDigest hashes an event onto the previous digest. Fields are folded
// in sorted key order so the digest is independent of map iteration.
func chainDigest(prev [32]byte, ev Event) [32]byte {
	h := sha3.New256()
	h.Write(prev[:])
	h.Write([]byte(ev.ID))
	h.Write([]byte(ev.Type))

	var at [8]byte
	binary.BigEndian.PutUint64(at[:], uint64(ev.At.UnixNano()))
	h.Write(at[:])

	for _, k := range sortedKeys(ev.Fields) {
		h.Write([]byte(k))
		h.Write([]byte{0})
		h.Write([]byte(ev.Fields[k]))
		h.Write([]byte{0})
	}

	var digest [32]byte
	h.Sum(digest[:0])
	return digest
}
