package hilbert

// indexedHeap is a binary min-heap over dense indices 0..m-1 whose keys
// live outside the heap: less(i, j) compares the keys of indices i and j.
//
// The standard container/heap interface cannot express the two operations
// this engine is built on, so the sift logic is written out concretely:
//
//   - findLE: report every contained index whose key is ≤ a bound, by a
//     root-first traversal that prunes any subtree whose root exceeds the
//     bound.
//   - positional membership: pos maps a dense index to its heap slot, so
//     insertion is rejected for already-present indices and membership is
//     O(1).
//
// Keys of contained indices must not change while they are in the heap.
type indexedHeap struct {
	less func(i, j int) bool
	data []int // heap slots, data[0] is the minimum
	pos  []int // dense index -> slot+1; 0 means absent
}

// newIndexedHeap returns an empty heap ordered by less.
func newIndexedHeap(less func(i, j int) bool) *indexedHeap {
	return &indexedHeap{less: less}
}

// grow ensures the position table covers dense indices < n.
func (h *indexedHeap) grow(n int) {
	for len(h.pos) < n {
		h.pos = append(h.pos, 0)
	}
}

// empty reports whether the heap holds no indices.
func (h *indexedHeap) empty() bool { return len(h.data) == 0 }

// contains reports whether dense index i is in the heap.
func (h *indexedHeap) contains(i int) bool {
	return i < len(h.pos) && h.pos[i] != 0
}

// insert adds dense index i. Inserting a contained index is a no-op.
func (h *indexedHeap) insert(i int) {
	h.grow(i + 1)
	if h.pos[i] != 0 {
		return
	}
	h.data = append(h.data, i)
	h.pos[i] = len(h.data)
	h.up(len(h.data) - 1)
}

// popMin removes and returns the index with the minimal key. The heap must
// be non-empty.
func (h *indexedHeap) popMin() int {
	min := h.data[0]
	last := len(h.data) - 1
	h.swap(0, last)
	h.data = h.data[:last]
	h.pos[min] = 0
	if last > 0 {
		h.down(0)
	}

	return min
}

// findLE appends to out every contained index whose key is ≤ the key of
// dense index bound, in heap order. bound itself is reported if contained.
func (h *indexedHeap) findLE(bound int, out *[]int) {
	h.findLEFrom(0, bound, out)
}

// findLEFrom walks the subtree rooted at slot, pruning where the root key
// already exceeds the bound.
func (h *indexedHeap) findLEFrom(slot, bound int, out *[]int) {
	if slot >= len(h.data) {
		return
	}
	i := h.data[slot]
	if h.less(bound, i) {
		// key(i) > key(bound): the whole subtree is above the bound.
		return
	}
	*out = append(*out, i)
	h.findLEFrom(2*slot+1, bound, out)
	h.findLEFrom(2*slot+2, bound, out)
}

// reset empties the heap, retaining capacity.
func (h *indexedHeap) reset() {
	h.data = h.data[:0]
	for i := range h.pos {
		h.pos[i] = 0
	}
}

func (h *indexedHeap) swap(a, b int) {
	h.data[a], h.data[b] = h.data[b], h.data[a]
	h.pos[h.data[a]] = a + 1
	h.pos[h.data[b]] = b + 1
}

func (h *indexedHeap) up(slot int) {
	for slot > 0 {
		parent := (slot - 1) / 2
		if !h.less(h.data[slot], h.data[parent]) {
			break
		}
		h.swap(slot, parent)
		slot = parent
	}
}

func (h *indexedHeap) down(slot int) {
	n := len(h.data)
	for {
		left := 2*slot + 1
		if left >= n {
			break
		}
		small := left
		if right := left + 1; right < n && h.less(h.data[right], h.data[left]) {
			small = right
		}
		if !h.less(h.data[small], h.data[slot]) {
			break
		}
		h.swap(slot, small)
		slot = small
	}
}
