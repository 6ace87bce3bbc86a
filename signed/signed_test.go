package signed_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hilbert/hilbert"
	"github.com/katalvlaran/hilbert/numeric"
	"github.com/katalvlaran/hilbert/signed"
)

// rowKey renders a row as a comparable string like "1,0".
func rowKey(row []numeric.Int) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = v.String()
	}

	return strings.Join(parts, ",")
}

// basisRows collects the saturated basis as a sorted slice of row keys.
func basisRows(size int, row func(int) []numeric.Int) []string {
	out := make([]string, 0, size)
	for i := 0; i < size; i++ {
		out = append(out, rowKey(row(i)))
	}
	sort.Strings(out)

	return out
}

// TestBasis_UpperBound: x ≤ 1 over x ≥ 0. The basis over (c, x) holds the
// constant direction [1,0] and the extreme point x = 1 as [1,1].
func TestBasis_UpperBound(t *testing.T) {
	b := signed.New()
	require.NoError(t, b.AddLe(numeric.Vec(1), numeric.One()))
	require.Equal(t, hilbert.Satisfiable, b.Saturate())
	require.Equal(t, []string{"1,0", "1,1"}, basisRows(b.Size(), b.Row))
}

// TestBasis_LowerBound: x ≥ 2 over x ≥ 0 yields the ray direction [0,1]
// and the minimal point x = 2 as [1,2].
func TestBasis_LowerBound(t *testing.T) {
	b := signed.New()
	require.NoError(t, b.AddGe(numeric.Vec(1), numeric.New(2)))
	require.Equal(t, hilbert.Satisfiable, b.Saturate())
	require.Equal(t, []string{"0,1", "1,2"}, basisRows(b.Size(), b.Row))
}

// TestBasis_Equality: x = 3 pins the basis to the single point [1,3].
func TestBasis_Equality(t *testing.T) {
	b := signed.New()
	require.NoError(t, b.AddEq(numeric.Vec(1), numeric.New(3)))
	require.Equal(t, hilbert.Satisfiable, b.Saturate())
	require.Equal(t, []string{"1,3"}, basisRows(b.Size(), b.Row))
}

// TestBasis_WidthMismatch surfaces the core sentinel through the wrapper.
func TestBasis_WidthMismatch(t *testing.T) {
	b := signed.New()
	require.NoError(t, b.AddLe(numeric.Vec(1, 0), numeric.One()))
	require.ErrorIs(t, b.AddLe(numeric.Vec(1), numeric.One()), hilbert.ErrDimensionMismatch)
}

// TestBasis_ResetAndStats covers the forwarded lifecycle surface.
func TestBasis_ResetAndStats(t *testing.T) {
	b := signed.New()
	require.NoError(t, b.AddLe(numeric.Vec(1), numeric.One()))
	require.Equal(t, hilbert.Satisfiable, b.Saturate())
	require.NotZero(t, b.Stats().IndexInsert)

	b.Reset()
	require.Zero(t, b.Size())
	require.NoError(t, b.AddLe(numeric.Vec(1, 1), numeric.One()))
	require.Equal(t, hilbert.Satisfiable, b.Saturate())
}

// TestBasis_Cancel forwards the cooperative cancellation bit.
func TestBasis_Cancel(t *testing.T) {
	b := signed.New()
	require.NoError(t, b.AddLe(numeric.Vec(1), numeric.One()))
	b.SetCancel(true)
	require.Equal(t, hilbert.Undefined, b.Saturate())
}

// TestIntBasis_UpperBound: x ≤ 1 over an unrestricted integer x, under the
// split encoding (x⁺, x⁻, c⁺, c⁻).
func TestIntBasis_UpperBound(t *testing.T) {
	b := signed.NewInt()
	require.NoError(t, b.AddLe(numeric.Vec(1), numeric.One()))
	require.Equal(t, hilbert.Satisfiable, b.Saturate())

	want := []string{
		"0,0,1,0", // c⁺ alone: slack below the bound
		"0,0,1,1", // the complementary constant pair
		"0,1,0,0", // x⁻ alone: x may decrease freely
		"0,1,0,1", // x⁻ with c⁻
		"1,0,1,0", // x⁺ with c⁺: the extreme point x = 1
		"1,1,0,0", // the complementary variable pair
	}
	require.Equal(t, want, basisRows(b.Size(), b.Row))
}

// TestIntBasis_WidthMismatch: the split encoding doubles widths, and the
// second inequality must still agree with the first.
func TestIntBasis_WidthMismatch(t *testing.T) {
	b := signed.NewInt()
	require.NoError(t, b.AddLe(numeric.Vec(1), numeric.One()))
	require.ErrorIs(t, b.AddLe(numeric.Vec(1, 2), numeric.One()), hilbert.ErrDimensionMismatch)
}
