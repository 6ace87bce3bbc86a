package hilbert

import "github.com/katalvlaran/hilbert/numeric"

// passiveQueue is the weight-ordered queue of candidate rows awaiting
// resolution. Smaller row weights (coordinate sums) are processed first,
// which keeps resolvents small and lets subsumption bite early.
//
// Offsets occupy slots; a slot freed by pop is tombstoned with
// invalidOffset and queued for reuse, so the slot arrays do not grow with
// queue churn. An indexed heap over slots keyed by the slot's weight
// provides O(log n) insert and pop-min.
type passiveQueue struct {
	st      *store
	rows    []Offset      // slot -> offset, invalidOffset when tombstoned
	weights []numeric.Int // slot -> weight of the row occupying it
	free    []int         // vacated slots
	heap    *indexedHeap
}

func newPassiveQueue(st *store) *passiveQueue {
	q := &passiveQueue{st: st}
	q.heap = newIndexedHeap(func(i, j int) bool {
		return q.weights[i].Cmp(q.weights[j]) < 0
	})

	return q
}

// empty reports whether no rows await processing.
func (q *passiveQueue) empty() bool { return q.heap.empty() }

// insert queues the row at o, keyed by its current weight.
func (q *passiveQueue) insert(o Offset) {
	w := q.st.weight(o)
	var slot int
	if n := len(q.free); n > 0 {
		slot = q.free[n-1]
		q.free = q.free[:n-1]
		q.rows[slot] = o
		q.weights[slot] = w
	} else {
		slot = len(q.rows)
		q.rows = append(q.rows, o)
		q.weights = append(q.weights, w)
		q.heap.grow(slot + 1)
	}
	q.heap.insert(slot)
}

// pop removes and returns the offset with the minimal weight, tombstoning
// its slot. The queue must be non-empty.
func (q *passiveQueue) pop() Offset {
	slot := q.heap.popMin()
	o := q.rows[slot]
	q.rows[slot] = invalidOffset
	q.free = append(q.free, slot)

	return o
}

// iterate visits every queued offset, skipping tombstones, until fn
// returns false. The visit order is the slot order, not the weight order;
// it serves diagnostics only and is not stable across mutation.
func (q *passiveQueue) iterate(fn func(Offset) bool) {
	for _, o := range q.rows {
		if !o.valid() {
			continue
		}
		if !fn(o) {
			return
		}
	}
}

// reset drops all slots and tombstones, retaining capacity.
func (q *passiveQueue) reset() {
	q.rows = q.rows[:0]
	q.weights = q.weights[:0]
	q.free = q.free[:0]
	q.heap.reset()
}
