package fraction

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Royalty tests ---

func TestNewRoyalty(t *testing.T) {
	roy, err := NewRoyalty(map[string]uint32{"bob": 3000, "carol": 7000}, 2500)
	require.NoError(t, err)
	assert.Equal(t, 2, roy.Len())
	assert.Equal(t, uint32(2500), roy.Percentage)
}

func TestNewRoyaltyCopiesInput(t *testing.T) {
	raw := map[string]uint32{"bob": 3000, "carol": 7000}
	roy, err := NewRoyalty(raw, 1000)
	require.NoError(t, err)

	raw["bob"] = 9999
	assert.Equal(t, uint32(3000), roy.SplitBetween["bob"])
}

func TestNewRoyaltyInvalid(t *testing.T) {
	big := make(map[string]uint32, MaxLenPayout+1)
	for i := 0; i <= MaxLenPayout; i++ {
		big[fmt.Sprintf("account%d", i)] = 1
	}
	// Pad the first entry so the shares still sum to Base.
	big["account0"] = Base - MaxLenPayout

	tests := []struct {
		name       string
		raw        map[string]uint32
		percentage uint32
	}{
		{"empty", map[string]uint32{}, 1000},
		{"sum too low", map[string]uint32{"bob": 4999, "carol": 5000}, 1000},
		{"sum too high", map[string]uint32{"bob": 5001, "carol": 5000}, 1000},
		{"zero share", map[string]uint32{"bob": 0, "carol": 10000}, 1000},
		{"too many entries", big, 1000},
		{"percentage over whole", map[string]uint32{"bob": 10000}, Base + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRoyalty(tt.raw, tt.percentage)
			assert.ErrorIs(t, err, ErrInvalidFractions)
		})
	}
}

// --- SplitOwners tests ---

func TestNewSplitOwners(t *testing.T) {
	splits, err := NewSplitOwners(map[string]uint32{"carol": 5000, "dave": 5000})
	require.NoError(t, err)
	assert.Equal(t, 2, splits.Len())
}

func TestNewSplitOwnersInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]uint32
	}{
		{"empty", map[string]uint32{}},
		{"single party", map[string]uint32{"carol": 10000}},
		{"bad sum", map[string]uint32{"carol": 5000, "dave": 4000}},
		{"zero share", map[string]uint32{"carol": 0, "dave": 10000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSplitOwners(tt.raw)
			assert.ErrorIs(t, err, ErrInvalidSplit)
		})
	}
}

func TestSplitOwnersClone(t *testing.T) {
	splits, err := NewSplitOwners(map[string]uint32{"carol": 5000, "dave": 5000})
	require.NoError(t, err)

	clone := splits.Clone()
	clone.SplitBetween["carol"] = 1
	assert.Equal(t, uint32(5000), splits.SplitBetween["carol"])

	var nilSplits *SplitOwners
	assert.Nil(t, nilSplits.Clone())
}

// --- ComputePayout tests ---

// tenPercentToBob is a royalty taking 10% of each sale, all of it to bob.
func tenPercentToBob(t *testing.T) *Royalty {
	t.Helper()
	roy, err := NewRoyalty(map[string]uint32{"bob": Base}, 1000)
	require.NoError(t, err)
	return roy
}

func TestComputePayoutOwnerOnly(t *testing.T) {
	payout := ComputePayout("alice", nil, nil, 1000)
	assert.Equal(t, Payout{"alice": 1000}, payout)
}

func TestComputePayoutRoyaltyOffTheTop(t *testing.T) {
	payout := ComputePayout("alice", tenPercentToBob(t), nil, 1000)
	assert.Equal(t, Payout{"bob": 100, "alice": 900}, payout)
	assert.Equal(t, uint64(1000), payout.Total())
}

func TestComputePayoutRoyaltyAndSplit(t *testing.T) {
	splits, err := NewSplitOwners(map[string]uint32{"carol": 5000, "dave": 5000})
	require.NoError(t, err)

	payout := ComputePayout("alice", tenPercentToBob(t), splits, 1000)
	// Royalty off the top, splits divide the remainder, the owner's
	// residual share is zero once fully split.
	assert.Equal(t, Payout{"bob": 100, "carol": 450, "dave": 450}, payout)
	assert.Equal(t, uint64(1000), payout.Total())
}

func TestComputePayoutRoyaltyPoolDivided(t *testing.T) {
	roy, err := NewRoyalty(map[string]uint32{"bob": 7500, "carol": 2500}, 2000)
	require.NoError(t, err)

	payout := ComputePayout("alice", roy, nil, 10000)
	// 20% pool of 10000 is 2000: bob 1500, carol 500, owner the rest.
	assert.Equal(t, Payout{"bob": 1500, "carol": 500, "alice": 8000}, payout)
}

func TestComputePayoutRoundingToOwner(t *testing.T) {
	splits, err := NewSplitOwners(map[string]uint32{
		"carol": 3333,
		"dave":  3333,
		"erin":  3334,
	})
	require.NoError(t, err)

	payout := ComputePayout("alice", nil, splits, 1000)
	// floor(1000·3333/10000) = 333 twice, floor(1000·3334/10000) = 333;
	// the leftover unit lands on the owner.
	assert.Equal(t, uint64(1000), payout.Total())
	assert.Equal(t, uint64(1), payout["alice"])
	assert.Equal(t, uint64(333), payout["carol"])
	assert.Equal(t, uint64(333), payout["erin"])
}

func TestComputePayoutZeroBalance(t *testing.T) {
	payout := ComputePayout("alice", tenPercentToBob(t), nil, 0)
	assert.Empty(t, payout)
	assert.Equal(t, uint64(0), payout.Total())
}

func TestComputePayoutMergesOwnerAsBeneficiary(t *testing.T) {
	// The owner also holds the royalty; amounts merge into one entry.
	roy, err := NewRoyalty(map[string]uint32{"alice": Base}, 1000)
	require.NoError(t, err)

	payout := ComputePayout("alice", roy, nil, 1000)
	assert.Equal(t, Payout{"alice": 1000}, payout)
	assert.Len(t, payout, 1)
}

func TestComputePayoutDeterministic(t *testing.T) {
	roy, err := NewRoyalty(map[string]uint32{"bob": 7500, "carol": 2500}, 1500)
	require.NoError(t, err)
	splits, err := NewSplitOwners(map[string]uint32{"dave": 6000, "erin": 4000})
	require.NoError(t, err)

	first := ComputePayout("alice", roy, splits, 999_999)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputePayout("alice", roy, splits, 999_999))
	}
	assert.Equal(t, uint64(999_999), first.Total())
}

func TestComputePayoutLargeBalances(t *testing.T) {
	// Share math must hold a 128-bit intermediate: balances near the
	// uint64 ceiling would otherwise wrap and shortchange beneficiaries.
	payout := ComputePayout("alice", tenPercentToBob(t), nil, 1_000_000_000_000_000_000)
	assert.Equal(t, uint64(100_000_000_000_000_000), payout["bob"])
	assert.Equal(t, uint64(900_000_000_000_000_000), payout["alice"])

	splits, err := NewSplitOwners(map[string]uint32{"carol": 5000, "dave": 5000})
	require.NoError(t, err)
	payout = ComputePayout("alice", nil, splits, 10_000_000_000_000_000_000)
	assert.Equal(t, Payout{
		"carol": 5_000_000_000_000_000_000,
		"dave":  5_000_000_000_000_000_000,
	}, payout)

	payout = ComputePayout("alice", tenPercentToBob(t), splits, 10_000_000_000_000_000_000)
	assert.Equal(t, uint64(1_000_000_000_000_000_000), payout["bob"])
	assert.Equal(t, uint64(4_500_000_000_000_000_000), payout["carol"])
	assert.Equal(t, uint64(4_500_000_000_000_000_000), payout["dave"])
	assert.Equal(t, uint64(10_000_000_000_000_000_000), payout.Total())

	payout = ComputePayout("alice", tenPercentToBob(t), nil, math.MaxUint64)
	assert.Equal(t, uint64(math.MaxUint64/10), payout["bob"])
	assert.Equal(t, uint64(math.MaxUint64), payout.Total())
}

func TestPayoutCheckLen(t *testing.T) {
	payout := Payout{"a": 1, "b": 2, "c": 3}
	require.NoError(t, payout.CheckLen(3))
	assert.ErrorIs(t, payout.CheckLen(2), ErrPayoutTooLong)
}
