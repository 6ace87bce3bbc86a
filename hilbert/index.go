package hilbert

import "github.com/katalvlaran/hilbert/numeric"

// subsumptionIndex answers dominance queries over all rows currently held
// by the engine's working sets.
//
// The row at offset o dominates a query row q with evaluation e when
//
//   - row(o)[i] ≤ q[i] for every coordinate i, and
//   - eval(o) ≤ e, with equality required whenever eval(o) < 0.
//
// Then q - row(o) is itself a non-negative solution that, together with
// row(o), reproduces q, so q is reducible and can be pruned. The index is
// one weightMap per coordinate plus one for the evaluation scalar; a query
// seeds a candidate set from the evaluation map and intersects it through
// the coordinate maps round by round. After round r, refs[o] == r exactly
// when o survived coordinate checks 0..r-1.
type subsumptionIndex struct {
	coords []*weightMap   // one per coordinate
	eval   *weightMap     // keyed on the evaluation scalar
	refs   map[Offset]int // query scratch: offset -> surviving round
	stats  indexStats
}

type indexStats struct {
	numFind        uint64
	numInsert      uint64
	numComparisons uint64
}

// newSubsumptionIndex returns an index over rows of the given width.
func newSubsumptionIndex(width int) *subsumptionIndex {
	ix := &subsumptionIndex{
		coords: make([]*weightMap, width),
		eval:   newWeightMap(),
		refs:   make(map[Offset]int),
	}
	for i := range ix.coords {
		ix.coords[i] = newWeightMap()
	}

	return ix
}

// insert indexes the row at o with coordinates row and evaluation eval.
func (ix *subsumptionIndex) insert(o Offset, row []numeric.Int, eval numeric.Int) {
	ix.stats.numInsert++
	for i, m := range ix.coords {
		m.insert(o, row[i])
	}
	ix.eval.insert(o, eval)
}

// remove erases the row at o from all n+1 maps. The row and eval must be
// the ones it was inserted with.
func (ix *subsumptionIndex) remove(o Offset, row []numeric.Int, eval numeric.Int) {
	for i, m := range ix.coords {
		m.remove(o, row[i])
	}
	ix.eval.remove(o, eval)
}

// find reports an indexed offset whose row dominates the query row, or
// ok=false when none exists. self is excluded from the search.
func (ix *subsumptionIndex) find(row []numeric.Int, eval numeric.Int, self Offset) (Offset, bool) {
	ix.stats.numFind++
	found, ok := ix.eval.initFind(ix.refs, eval, self, &ix.stats.numComparisons)
	for i := 0; ok && i < len(ix.coords); i++ {
		found, ok = ix.coords[i].updateFind(ix.refs, i, row[i], self, &ix.stats.numComparisons)
	}
	clear(ix.refs)

	return found, ok
}

// reset clears all maps and the query scratch, retaining capacity.
func (ix *subsumptionIndex) reset() {
	for _, m := range ix.coords {
		m.reset()
	}
	ix.eval.reset()
	clear(ix.refs)
}
