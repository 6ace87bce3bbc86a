package signed

import (
	"github.com/katalvlaran/hilbert/hilbert"
	"github.com/katalvlaran/hilbert/numeric"
)

// Basis solves systems of bounded inequalities a·x ≤ b over non-negative
// variables by prefixing a distinguished constant-one coordinate and
// delegating to the homogeneous core engine.
//
// With n original variables the underlying engine runs on n+1 coordinates;
// coordinate 0 is the constant.
type Basis struct {
	hb *hilbert.Basis
}

// New returns an empty signed-linear engine.
func New() *Basis {
	return &Basis{hb: hilbert.New()}
}

// AddLe pushes a·x ≤ bound, encoded as the homogeneous constraint
// bound·1 − a·x ≥ 0 over the extended variable vector (1, x).
func (b *Basis) AddLe(a []numeric.Int, bound numeric.Int) error {
	w := make([]numeric.Int, 0, len(a)+1)
	w = append(w, bound.Neg())
	w = append(w, a...)

	return b.hb.AddLe(w)
}

// AddGe pushes a·x ≥ bound, i.e. (−a)·x ≤ −bound.
func (b *Basis) AddGe(a []numeric.Int, bound numeric.Int) error {
	neg := make([]numeric.Int, len(a))
	for i := range a {
		neg[i] = a[i].Neg()
	}

	return b.AddLe(neg, bound.Neg())
}

// AddEq pushes a·x = bound as the two opposing bounded inequalities.
func (b *Basis) AddEq(a []numeric.Int, bound numeric.Int) error {
	if err := b.AddLe(a, bound); err != nil {
		return err
	}

	return b.AddGe(a, bound)
}

// Saturate runs the core engine.
func (b *Basis) Saturate() hilbert.Result { return b.hb.Saturate() }

// Size returns the basis cardinality after a Satisfiable run.
func (b *Basis) Size() int { return b.hb.Size() }

// Row returns the i-th basis row over n+1 coordinates, the constant
// coordinate first.
func (b *Basis) Row(i int) []numeric.Int { return b.hb.Row(i) }

// Reset clears all state.
func (b *Basis) Reset() { b.hb.Reset() }

// SetCancel forwards the cooperative cancellation bit.
func (b *Basis) SetCancel(v bool) { b.hb.SetCancel(v) }

// Stats returns the core engine's counters.
func (b *Basis) Stats() hilbert.Stats { return b.hb.Stats() }

// IntBasis solves systems of bounded inequalities a·x ≤ b over integer
// variables of arbitrary sign. Every variable is split into positive and
// negative parts and the bound becomes a trailing complementary pair, so
// with n original variables the core engine runs on 2n+2 coordinates laid
// out as (x_0⁺, x_0⁻, …, x_{n-1}⁺, x_{n-1}⁻, c⁺, c⁻).
type IntBasis struct {
	hb *hilbert.Basis
}

// NewInt returns an empty integer signed-linear engine.
func NewInt() *IntBasis {
	return &IntBasis{hb: hilbert.New()}
}

// AddLe pushes a·x ≤ bound under the split-variable encoding.
func (b *IntBasis) AddLe(a []numeric.Int, bound numeric.Int) error {
	w := make([]numeric.Int, 0, 2*len(a)+2)
	for i := range a {
		w = append(w, a[i], a[i].Neg())
	}
	w = append(w, bound.Neg(), bound)

	return b.hb.AddLe(w)
}

// AddGe pushes a·x ≥ bound, i.e. (−a)·x ≤ −bound.
func (b *IntBasis) AddGe(a []numeric.Int, bound numeric.Int) error {
	neg := make([]numeric.Int, len(a))
	for i := range a {
		neg[i] = a[i].Neg()
	}

	return b.AddLe(neg, bound.Neg())
}

// AddEq pushes a·x = bound as the two opposing bounded inequalities.
func (b *IntBasis) AddEq(a []numeric.Int, bound numeric.Int) error {
	if err := b.AddLe(a, bound); err != nil {
		return err
	}

	return b.AddGe(a, bound)
}

// Saturate runs the core engine.
func (b *IntBasis) Saturate() hilbert.Result { return b.hb.Saturate() }

// Size returns the basis cardinality after a Satisfiable run.
func (b *IntBasis) Size() int { return b.hb.Size() }

// Row returns the i-th basis row over the 2n+2 split coordinates.
func (b *IntBasis) Row(i int) []numeric.Int { return b.hb.Row(i) }

// Reset clears all state.
func (b *IntBasis) Reset() { b.hb.Reset() }

// SetCancel forwards the cooperative cancellation bit.
func (b *IntBasis) SetCancel(v bool) { b.hb.SetCancel(v) }

// Stats returns the core engine's counters.
func (b *IntBasis) Stats() hilbert.Stats { return b.hb.Stats() }
