package hilbert

import (
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hilbert/numeric"
)

// Basis is the Hilbert basis saturation engine.
//
// Push a system of homogeneous linear inequalities with AddGe / AddLe /
// AddEq, then call Saturate to enumerate the Hilbert basis of the solution
// cone: the finite set of irreducible non-negative integer solutions. After
// a Satisfiable run, Size and Row expose the basis.
//
// Saturation is Pottier-style resolution, folded one inequality at a time:
//
//  1. The basis starts as the n unit vectors.
//  2. For each inequality c, every current basis row r is evaluated
//     (eval(r) = c·r) and seeded into the active/passive/zero working
//     sets. If no row evaluates non-negatively, the system is Infeasible.
//  3. Passive rows drain in order of increasing weight. A popped row that
//     is dominated by an indexed row is recycled; otherwise it resolves
//     against every active row of opposite evaluation sign (the resolvent
//     is the sum of the two rows) and joins the active set.
//  4. When passive is empty, zero-evaluated rows and positive active rows
//     survive as the next basis; negative rows are recycled.
//
// Dominated candidates are rejected through a subsumption index that keys
// each row on all n coordinates plus its evaluation, so the quadratic
// pairwise check of the naive algorithm is avoided.
//
// A Basis is not safe for concurrent use. The single exception is
// SetCancel, which a foreign goroutine may call to request cooperative
// early termination; the driver then returns Undefined promptly.
type Basis struct {
	ineqs   [][]numeric.Int
	st      *store
	index   *subsumptionIndex
	passive *passiveQueue

	basis  []Offset // surviving rows between inequality passes
	active []Offset // processed rows retained for future resolutions
	zero   []Offset // rows whose current evaluation is exactly zero

	cancel atomic.Bool

	numSubsumptions uint64
	numResolves     uint64
}

// New returns an empty engine. The first pushed inequality fixes the
// number of variables.
func New() *Basis {
	return &Basis{}
}

// NumVars returns the width fixed by the first pushed inequality, or 0
// when nothing has been pushed yet.
func (b *Basis) NumVars() int {
	if len(b.ineqs) == 0 {
		return 0
	}

	return len(b.ineqs[0])
}

// AddGe pushes the inequality v·x ≥ 0.
//
// The first push fixes the variable count; every later push must match it
// or ErrDimensionMismatch is returned (wrapped with both widths). An empty
// v yields ErrEmptyInequality. The coefficients are copied.
func (b *Basis) AddGe(v []numeric.Int) error {
	if len(v) == 0 {
		return ErrEmptyInequality
	}
	if n := b.NumVars(); n != 0 && len(v) != n {
		return errors.Wrapf(ErrDimensionMismatch, "got width %d, engine width %d", len(v), n)
	}
	if len(b.ineqs) == 0 {
		b.st = newStore(len(v))
		b.index = newSubsumptionIndex(len(v))
		b.passive = newPassiveQueue(b.st)
	}
	ineq := make([]numeric.Int, len(v))
	copy(ineq, v)
	b.ineqs = append(b.ineqs, ineq)

	return nil
}

// AddLe pushes the inequality v·x ≤ 0, i.e. (−v)·x ≥ 0.
func (b *Basis) AddLe(v []numeric.Int) error {
	w := make([]numeric.Int, len(v))
	for i := range v {
		w[i] = v[i].Neg()
	}

	return b.AddGe(w)
}

// AddEq pushes the equality v·x = 0 as the two opposing inequalities.
func (b *Basis) AddEq(v []numeric.Int) error {
	if err := b.AddLe(v); err != nil {
		return err
	}

	return b.AddGe(v)
}

// Saturate folds every pushed inequality into the basis, in insertion
// order, and returns:
//
//   - Satisfiable — the Hilbert basis is available via Size and Row;
//   - Infeasible  — some stage saw no non-negative evaluation;
//   - Undefined   — cancellation was observed.
//
// Each call consumes the current inequality list from scratch; it does not
// resume a previous run.
func (b *Basis) Saturate() Result {
	b.initBasis()
	for _, ineq := range b.ineqs {
		if b.cancelled() {
			return Undefined
		}
		if r := b.saturateIneq(ineq); r != Satisfiable {
			return r
		}
	}
	if b.cancelled() {
		return Undefined
	}

	return Satisfiable
}

// Size returns the number of basis rows produced by the last Satisfiable
// saturation.
func (b *Basis) Size() int { return len(b.basis) }

// Row returns a borrowed view of the i-th basis row. The view is valid
// until the next Saturate or Reset and must not be mutated. Out-of-range
// access is a programmer error and panics.
func (b *Basis) Row(i int) []numeric.Int {
	if i < 0 || i >= len(b.basis) {
		panic("hilbert: basis row index out of range")
	}

	return b.st.row(b.basis[i])
}

// Reset clears every inequality, the basis and all working state. The next
// AddGe fixes a fresh variable count. The subsumption and resolve counters
// survive (use ResetStats); the index counters are dropped with the index
// and restart from zero once the next AddGe builds a fresh one.
func (b *Basis) Reset() {
	b.ineqs = nil
	b.st = nil
	b.index = nil
	b.passive = nil
	b.basis = nil
	b.active = nil
	b.zero = nil
	b.cancel.Store(false)
}

// SetCancel sets or clears the cooperative cancellation bit. Safe to call
// from any goroutine; the saturation loops observe it at their heads and
// return Undefined.
func (b *Basis) SetCancel(v bool) { b.cancel.Store(v) }

// Stats returns a snapshot of the accumulated work counters.
func (b *Basis) Stats() Stats {
	s := Stats{
		Subsumptions: b.numSubsumptions,
		Resolves:     b.numResolves,
	}
	if b.index != nil {
		s.IndexFind = b.index.stats.numFind
		s.IndexInsert = b.index.stats.numInsert
		s.IndexComparisons = b.index.stats.numComparisons
	}

	return s
}

// ResetStats zeroes every counter.
func (b *Basis) ResetStats() {
	b.numSubsumptions = 0
	b.numResolves = 0
	if b.index != nil {
		b.index.stats = indexStats{}
	}
}

func (b *Basis) cancelled() bool { return b.cancel.Load() }

// initBasis discards all row storage and seeds the basis with the n unit
// vectors.
func (b *Basis) initBasis() {
	b.basis = b.basis[:0]
	if len(b.ineqs) == 0 {
		return
	}
	b.st.reset()
	n := b.NumVars()
	for i := 0; i < n; i++ {
		unit := make([]numeric.Int, n)
		unit[i] = numeric.One()
		o := b.st.alloc()
		b.st.setRow(o, unit)
		b.basis = append(b.basis, o)
	}
}

// saturateIneq folds one inequality into the current basis.
//
// Steps:
//  1. Clear the working sets and the subsumption index.
//  2. Evaluate every basis row against c and seed it via addGoal,
//     remembering whether any evaluation is non-negative.
//  3. No non-negative evaluation → Infeasible.
//  4. Drain passive in weight order: a subsumed row is recycled; an
//     unsubsumed row resolves against every opposite-sign active row and
//     then joins active.
//  5. The zero set plus the positive active rows become the new basis;
//     negative rows return to the free list.
func (b *Basis) saturateIneq(c []numeric.Int) Result {
	// 1) Fresh working state; the index only ever holds this pass's rows.
	b.active = b.active[:0]
	b.zero = b.zero[:0]
	b.passive.reset()
	b.index.reset()

	// 2) Seed from the current basis.
	hasNonneg := false
	for _, o := range b.basis {
		e := numeric.Dot(b.st.row(o), c)
		b.st.setEval(o, e)
		b.addGoal(o)
		if e.IsNonneg() {
			hasNonneg = true
		}
	}

	// 3) Everything strictly below the hyperplane: no solution survives.
	if !hasNonneg {
		return Infeasible
	}

	// 4) Resolve passive into active.
	for !b.passive.empty() {
		if b.cancelled() {
			return Undefined
		}
		i := b.passive.pop()
		if b.isSubsumed(i) {
			b.recycle(i)
			continue
		}
		for _, j := range b.active {
			if b.cancelled() {
				return Undefined
			}
			// Only pairs crossing the c·x = 0 hyperplane make progress;
			// same-sign sums are linearly reducible and left to subsumption.
			if b.sign(i) != b.sign(j) {
				r := b.st.alloc()
				b.numResolves++
				b.st.resolve(i, j, r)
				b.addGoal(r)
			}
		}
		b.active = append(b.active, i)
	}

	// 5) Survivors: zeros and strictly positive actives.
	b.basis = b.basis[:0]
	b.basis = append(b.basis, b.zero...)
	for _, o := range b.active {
		if b.st.eval(o).IsPos() {
			b.basis = append(b.basis, o)
		} else {
			// The index is cleared at the next pass; only the slab slot
			// needs reclaiming here.
			b.st.recycle(o)
		}
	}
	b.active = b.active[:0]
	b.zero = b.zero[:0]
	b.passive.reset()

	return Satisfiable
}

// addGoal indexes a freshly evaluated row and routes it: zero evaluations
// go to the zero set unless dominated, everything else queues as passive.
func (b *Basis) addGoal(o Offset) {
	b.index.insert(o, b.st.row(o), b.st.eval(o))
	if b.st.eval(o).IsZero() {
		if b.isSubsumed(o) {
			b.recycle(o)
		} else {
			b.zero = append(b.zero, o)
		}

		return
	}
	b.passive.insert(o)
}

// isSubsumed reports whether some other indexed row dominates the row at o.
func (b *Basis) isSubsumed(o Offset) bool {
	if _, ok := b.index.find(b.st.row(o), b.st.eval(o), o); ok {
		b.numSubsumptions++

		return true
	}

	return false
}

// recycle removes the row at o from the index and frees its slab slot.
func (b *Basis) recycle(o Offset) {
	b.index.remove(o, b.st.row(o), b.st.eval(o))
	b.st.recycle(o)
}

type rowSign int8

const (
	signNeg rowSign = iota - 1
	signZero
	signPos
)

// sign derives the sign of the row at o from its current evaluation.
func (b *Basis) sign(o Offset) rowSign {
	e := b.st.eval(o)
	switch {
	case e.IsPos():
		return signPos
	case e.IsNeg():
		return signNeg
	default:
		return signZero
	}
}
