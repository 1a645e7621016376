package owner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayoutKey(t *testing.T) {
	tests := []struct {
		name  string
		owner Owner
		want  string
	}{
		{"account", NewAccount("alice"), "alice"},
		{"composed local", NewComposedLocal(42), "42"},
		{"composed foreign", NewComposedForeign("other.registry", 7), "other.registry:7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := tt.owner.PayoutKey()
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestPayoutKeyLocked(t *testing.T) {
	_, err := NewLocked("alice").PayoutKey()
	assert.ErrorIs(t, err, ErrOwnerLocked)
}

func TestPayoutKeyUnknownKind(t *testing.T) {
	_, err := Owner{}.PayoutKey()
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestIsLocked(t *testing.T) {
	assert.True(t, NewLocked("alice").IsLocked())
	assert.False(t, NewAccount("alice").IsLocked())
	assert.False(t, NewComposedLocal(1).IsLocked())
	assert.False(t, NewComposedForeign("r", 1).IsLocked())
}

func TestAccountID(t *testing.T) {
	account, ok := NewAccount("alice").AccountID()
	require.True(t, ok)
	assert.Equal(t, "alice", account)

	_, ok = NewComposedLocal(1).AccountID()
	assert.False(t, ok)

	// A locked owner remembers the account to restore, but it is not the
	// current owner.
	_, ok = NewLocked("alice").AccountID()
	assert.False(t, ok)
}

func TestStringNeverFails(t *testing.T) {
	tests := []struct {
		owner Owner
		want  string
	}{
		{NewAccount("alice"), "alice"},
		{NewComposedLocal(42), "42"},
		{NewComposedForeign("other.registry", 7), "other.registry:7"},
		{NewLocked("alice"), "locked(alice)"},
		{Owner{}, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.owner.String())
	}
}
