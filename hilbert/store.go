package hilbert

import "github.com/katalvlaran/hilbert/numeric"

// Offset is an opaque handle identifying one row inside the vector store.
// Offsets are stable across alloc/recycle cycles but may be reused after a
// row is recycled.
type Offset uint32

// invalidOffset is the tombstone sentinel; it never addresses a row.
const invalidOffset Offset = ^Offset(0)

// valid reports whether o addresses a row (is not the tombstone).
func (o Offset) valid() bool { return o != invalidOffset }

// store slab-allocates fixed-width integer rows.
//
// Rows live in one flat row-major backing slice; Offset k addresses the
// half-open window values[k*width : (k+1)*width]. A parallel evals column
// holds the inner product of each row with the inequality currently being
// folded. Recycled offsets queue on a free list and are handed out again
// by alloc; a recycled row's contents are stale until the caller rewrites
// them (setRow and resolve write every cell, so no zeroing pass is needed).
type store struct {
	width  int           // scalars per row, fixed at construction
	values []numeric.Int // row-major slab, len = width * rowCount
	evals  []numeric.Int // one evaluation scalar per row
	free   []Offset      // recycled offsets available for reuse
}

// newStore returns an empty store of the given row width.
func newStore(width int) *store {
	return &store{width: width}
}

// alloc returns an offset for a row, reusing the free list when possible.
// A freshly appended row is all zeros; a reused row holds stale values.
func (s *store) alloc() Offset {
	if n := len(s.free); n > 0 {
		o := s.free[n-1]
		s.free = s.free[:n-1]

		return o
	}
	o := Offset(len(s.evals))
	s.values = append(s.values, make([]numeric.Int, s.width)...)
	s.evals = append(s.evals, numeric.Int{})

	return o
}

// recycle returns o to the free list. The caller must already have removed
// o from every working set and index; a free offset is never read.
func (s *store) recycle(o Offset) {
	s.free = append(s.free, o)
}

// row returns the borrowed width-long view of the row at o.
func (s *store) row(o Offset) []numeric.Int {
	i := int(o) * s.width

	return s.values[i : i+s.width : i+s.width]
}

// setRow copies v into the row at o. len(v) must equal the store width.
func (s *store) setRow(o Offset, v []numeric.Int) {
	copy(s.row(o), v)
}

// eval returns the evaluation scalar of the row at o.
func (s *store) eval(o Offset) numeric.Int { return s.evals[o] }

// setEval records the evaluation scalar of the row at o.
func (s *store) setEval(o Offset, e numeric.Int) { s.evals[o] = e }

// resolve writes row(r) = row(i) + row(j) and eval(r) = eval(i) + eval(j).
// r may equal neither i nor j.
func (s *store) resolve(i, j, r Offset) {
	vi, vj, vr := s.row(i), s.row(j), s.row(r)
	for k := 0; k < s.width; k++ {
		vr[k] = vi[k].Add(vj[k])
	}
	s.evals[r] = s.evals[i].Add(s.evals[j])
}

// weight returns the sum of the coordinates of the row at o.
func (s *store) weight(o Offset) numeric.Int {
	return numeric.Sum(s.row(o))
}

// rows returns the number of allocated row slots, live or free.
func (s *store) rows() int { return len(s.evals) }

// reset discards every row and the free list, retaining capacity.
func (s *store) reset() {
	s.values = s.values[:0]
	s.evals = s.evals[:0]
	s.free = s.free[:0]
}
