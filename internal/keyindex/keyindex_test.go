// SPDX-License-Identifier: MIT

package keyindex_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimgroup/internal/keyindex"
	"github.com/katalvlaran/dimgroup/lookup"
)

func TestIndex_FirstAppearanceOrder(t *testing.T) {
	t.Parallel()

	ix := keyindex.New(4)
	for i, k := range []any{"b", "a", "b", "c", "a"} {
		ix.Add(k, i)
	}
	require.Equal(t, 3, ix.Len())
	if diff := cmp.Diff([]any{"b", "a", "c"}, ix.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{0, 2}, ix.Positions(0))
	assert.Equal(t, []int{1, 4}, ix.Positions(1))
	assert.Equal(t, []int{3}, ix.Positions(2))
	assert.Zero(t, ix.Collisions())
}

func TestIndex_NonComparableKeys(t *testing.T) {
	t.Parallel()

	ix := keyindex.New(0)
	ix.Add(lookup.Tuple{2020, 1}, 0)
	ix.Add(lookup.Tuple{2020, 2}, 1)
	ix.Add(lookup.Tuple{2020, 1}, 2)
	require.Equal(t, 2, ix.Len())
	assert.Equal(t, []int{0, 2}, ix.Positions(0))
}

func TestIndex_InternWithoutPosition(t *testing.T) {
	t.Parallel()

	ix := keyindex.New(0)
	id := ix.Intern("x")
	assert.Equal(t, id, ix.Intern("x"))
	assert.Equal(t, []int{}, ix.Positions(id))
}

func TestHash_NumericKindsCoincide(t *testing.T) {
	t.Parallel()

	assert.Equal(t, keyindex.Hash(1), keyindex.Hash(1.0))
	assert.Equal(t, keyindex.Hash(int64(7)), keyindex.Hash(uint8(7)))
	assert.Equal(t, keyindex.Hash(0.0), keyindex.Hash(math.Copysign(0, -1)))
	assert.NotEqual(t, keyindex.Hash(1), keyindex.Hash("1"))
	assert.NotEqual(t, keyindex.Hash(lookup.Tuple{1, 2}), keyindex.Hash(lookup.Set{1, 2}))

	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, keyindex.Hash(ts), keyindex.Hash(ts.In(time.FixedZone("X", 3600))))

	assert.Equal(t,
		keyindex.Hash(lookup.NewInterval(0, 1)),
		keyindex.Hash(lookup.NewInterval(0.0, 1.0)))
	assert.Equal(t,
		keyindex.Hash(lookup.Residues{Cycle: 12, Values: []int{12, 1, 2}}),
		keyindex.Hash(lookup.Residues{Cycle: 12, Values: []int{12, 1, 2}}))
}

func TestIndex_MixedNumericKindsShareBucket(t *testing.T) {
	t.Parallel()

	ix := keyindex.New(0)
	ix.Add(1, 0)
	ix.Add(1.0, 1)
	ix.Add(int32(1), 2)
	require.Equal(t, 1, ix.Len())
	assert.Equal(t, []int{0, 1, 2}, ix.Positions(0))
}
