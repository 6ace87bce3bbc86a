package hilbert

import "github.com/katalvlaran/hilbert/numeric"

// scalarHeap maintains the bijection between scalar keys and dense indices
// together with a min-heap over the non-negative keys.
//
// Keys are interned lazily: the first time a key is seen, the next dense
// index is allocated for it. The hash table chains on true equality keyed
// by Int.Hash, so hash collisions only lengthen a chain.
type scalarHeap struct {
	u2r  []numeric.Int    // dense index -> key
	r2u  map[uint64][]int // key hash -> dense indices with that hash
	heap *indexedHeap
}

func newScalarHeap() *scalarHeap {
	h := &scalarHeap{r2u: make(map[uint64][]int)}
	h.heap = newIndexedHeap(func(i, j int) bool {
		return h.u2r[i].Cmp(h.u2r[j]) < 0
	})

	return h
}

// declared returns the dense index of key k if it was declared before.
func (h *scalarHeap) declared(k numeric.Int) (int, bool) {
	for _, i := range h.r2u[k.Hash()] {
		if h.u2r[i].Equal(k) {
			return i, true
		}
	}

	return 0, false
}

// declare interns k and returns its fresh dense index. k must not be
// declared yet.
func (h *scalarHeap) declare(k numeric.Int) int {
	i := len(h.u2r)
	h.u2r = append(h.u2r, k)
	hash := k.Hash()
	h.r2u[hash] = append(h.r2u[hash], i)
	h.heap.grow(i + 1)

	return i
}

// insert places a declared dense index on the heap.
func (h *scalarHeap) insert(i int) { h.heap.insert(i) }

// findLE appends to out every heap-resident dense index whose key is ≤
// the key of dense index bound.
func (h *scalarHeap) findLE(bound int, out *[]int) { h.heap.findLE(bound, out) }

// key returns the key of dense index i.
func (h *scalarHeap) key(i int) numeric.Int { return h.u2r[i] }

// reset forgets every declared key, retaining capacity where possible.
func (h *scalarHeap) reset() {
	h.u2r = h.u2r[:0]
	clear(h.r2u)
	h.heap.reset()
}

// weightMap indexes row offsets by one integer key each (one coordinate,
// or the evaluation scalar) and answers the two retrieval shapes the
// subsumption index is built from:
//
//   - equality bucket: all offsets whose key equals k;
//   - downward range:  all offsets whose key is ≤ k, via the heap.
//
// Only non-negative keys enter the heap; rows are component-wise
// non-negative, so for coordinate maps that is every key, and for the
// evaluation map negative keys are reachable only through the equality
// path — exactly the strict-equality carve-out dominance demands for
// negative evaluations.
type weightMap struct {
	heap    *scalarHeap
	offsets [][]Offset // dense index -> bucket of offsets carrying that key
	le      []int      // recycled scratch of dense indices below a bound
}

func newWeightMap() *weightMap {
	return &weightMap{heap: newScalarHeap()}
}

// value interns key k, placing it on the heap when non-negative, and
// returns its dense index.
func (m *weightMap) value(k numeric.Int) int {
	i, ok := m.heap.declared(k)
	if !ok {
		i = m.heap.declare(k)
		if k.IsNonneg() {
			m.heap.insert(i)
		}
		m.offsets = append(m.offsets, nil)
	}

	return i
}

// insert records that the row at o carries key k.
func (m *weightMap) insert(o Offset, k numeric.Int) {
	i := m.value(k)
	m.offsets[i] = append(m.offsets[i], o)
}

// remove erases o from the bucket of key k. Buckets stay small, so the
// linear scan-and-erase is cheaper than any bookkeeping that would avoid
// it.
func (m *weightMap) remove(o Offset, k numeric.Int) {
	i := m.value(k)
	bucket := m.offsets[i]
	for j, cur := range bucket {
		if cur == o {
			last := len(bucket) - 1
			bucket[j] = bucket[last]
			m.offsets[i] = bucket[:last]

			return
		}
	}
}

// initFind seeds refs with every offset (other than self) whose key can
// participate in a dominance match against key k:
//
//   - k > 0: all offsets with key ≤ k, skipping the zero-key bucket (the
//     zero row cannot strictly dominate through a positive coordinate);
//   - k ≤ 0: only the equality bucket of k itself.
//
// Each recorded offset gets refs[o] = 0; the last one recorded is returned
// as the tentative match. cost is incremented per offset visited.
func (m *weightMap) initFind(refs map[Offset]int, k numeric.Int, self Offset, cost *uint64) (Offset, bool) {
	m.le = m.le[:0]
	i := m.value(k)
	if k.IsPos() {
		m.heap.findLE(i, &m.le)
	} else {
		m.le = append(m.le, i)
	}
	found := invalidOffset
	ok := false
	for _, di := range m.le {
		if k.IsPos() && m.heap.key(di).IsZero() {
			continue
		}
		for _, o := range m.offsets[di] {
			*cost++
			if o != self {
				refs[o] = 0
				found = o
				ok = true
			}
		}
	}

	return found, ok
}

// updateFind intersects refs with the offsets whose key is ≤ k: every such
// offset already at round is bumped to round+1 and reported. The last
// bumped offset is returned. cost is incremented per offset visited.
func (m *weightMap) updateFind(refs map[Offset]int, round int, k numeric.Int, self Offset, cost *uint64) (Offset, bool) {
	m.le = m.le[:0]
	m.heap.findLE(m.value(k), &m.le)
	found := invalidOffset
	ok := false
	for _, di := range m.le {
		for _, o := range m.offsets[di] {
			*cost++
			if o == self {
				continue
			}
			if r, in := refs[o]; in && r == round {
				refs[o] = round + 1
				found = o
				ok = true
			}
		}
	}

	return found, ok
}

// reset drops every key and bucket, retaining capacity.
func (m *weightMap) reset() {
	m.heap.reset()
	m.offsets = m.offsets[:0]
	m.le = m.le[:0]
}
