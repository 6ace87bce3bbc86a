package hilbert

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// intHeap builds an indexedHeap over the given key slice.
func intHeap(keys []int) *indexedHeap {
	return newIndexedHeap(func(i, j int) bool { return keys[i] < keys[j] })
}

func TestIndexedHeap_PopOrder(t *testing.T) {
	keys := []int{5, 1, 4, 1, 3}
	h := intHeap(keys)
	for i := range keys {
		h.insert(i)
	}

	var got []int
	for !h.empty() {
		got = append(got, keys[h.popMin()])
	}
	require.Equal(t, []int{1, 1, 3, 4, 5}, got)
}

func TestIndexedHeap_ContainsAndReinsert(t *testing.T) {
	keys := []int{2, 7}
	h := intHeap(keys)
	h.insert(0)
	require.True(t, h.contains(0))
	require.False(t, h.contains(1))

	// Duplicate insert is a no-op.
	h.insert(0)
	require.Equal(t, 0, h.popMin())
	require.True(t, h.empty())
	require.False(t, h.contains(0))

	// A popped index may come back.
	h.insert(0)
	h.insert(1)
	require.Equal(t, 0, h.popMin())
	require.Equal(t, 1, h.popMin())
}

func TestIndexedHeap_FindLE(t *testing.T) {
	keys := []int{0, 9, 3, 5, 7, 3}
	h := intHeap(keys)
	for i := range keys {
		h.insert(i)
	}

	// Bound by the key of index 3 (key 5): expect keys {0, 3, 3, 5}.
	var out []int
	h.findLE(3, &out)
	var gotKeys []int
	for _, i := range out {
		gotKeys = append(gotKeys, keys[i])
	}
	sort.Ints(gotKeys)
	require.Equal(t, []int{0, 3, 3, 5}, gotKeys)

	// A bound at the minimum key reports only the indices carrying it.
	out = out[:0]
	h.findLE(0, &out)
	require.Equal(t, []int{0}, out)
}

func TestIndexedHeap_Reset(t *testing.T) {
	keys := []int{1, 2}
	h := intHeap(keys)
	h.insert(0)
	h.insert(1)
	h.reset()
	require.True(t, h.empty())
	require.False(t, h.contains(0))
	require.False(t, h.contains(1))
}
