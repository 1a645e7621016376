package event

import (
	"testing"

	log "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventConstructors(t *testing.T) {
	ev := MintBatch(10, 14, "minter.acct", "alice")
	assert.Equal(t, TypeMintBatch, ev.Type)
	assert.NotEmpty(t, ev.ID)
	assert.False(t, ev.At.IsZero())
	assert.Equal(t, "10", ev.Fields["first_id"])
	assert.Equal(t, "14", ev.Fields["last_id"])

	ev = SetSplitOwners([]uint64{1, 2, 3}, 2)
	assert.Equal(t, "1,2,3", ev.Fields["token_ids"])
	assert.Equal(t, "2", ev.Fields["num_splits"])

	ev = Transfer(7, "alice", "bob")
	assert.Equal(t, TypeTransfer, ev.Type)
	assert.Equal(t, "alice", ev.Fields["from"])
	assert.Equal(t, "bob", ev.Fields["to"])
}

func TestJournalChain(t *testing.T) {
	j := NewJournal()
	j.Append(GrantMinter("alice"))
	j.Append(MintBatch(0, 4, "alice", "bob"))
	j.Append(RevokeMinter("alice"))

	require.Equal(t, 3, j.Len())
	require.NoError(t, j.Verify())

	entries := j.Entries()
	assert.Equal(t, TypeGrantMinter, entries[0].Event.Type)
	assert.Equal(t, TypeRevokeMinter, entries[2].Event.Type)

	// Each digest chains over its predecessor.
	assert.NotEqual(t, entries[0].Digest, entries[1].Digest)
}

func TestJournalVerifyDetectsTampering(t *testing.T) {
	j := NewJournal()
	j.Append(GrantMinter("alice"))
	j.Append(GrantMinter("bob"))
	require.NoError(t, j.Verify())

	j.entries[0].Event.Fields["account"] = "mallory"
	assert.ErrorIs(t, j.Verify(), ErrJournalCorrupt)
}

func TestJournalEntriesCopy(t *testing.T) {
	j := NewJournal()
	j.Append(GrantMinter("alice"))

	entries := j.Entries()
	entries[0].Event.ID = "overwritten"
	assert.NotEqual(t, "overwritten", j.Entries()[0].Event.ID)
}

func TestLoggerSink(t *testing.T) {
	logger := log.New()
	logger.SetHandler(log.DiscardHandler())

	// Appending must not panic or block; sinks are fire-and-forget.
	s := NewLoggerSink(logger)
	s.Append(MintBatch(0, 0, "m", "o"))

	assert.NotNil(t, NewLoggerSink(nil).Logger)
}

func TestNopSink(t *testing.T) {
	NopSink{}.Append(GrantMinter("alice"))
}
