package hilbert

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hilbert/numeric"
)

func TestStore_AllocAndRows(t *testing.T) {
	s := newStore(3)
	a := s.alloc()
	b := s.alloc()
	require.NotEqual(t, a, b)
	require.Equal(t, 2, s.rows())

	// Fresh rows are all zeros.
	for _, v := range s.row(a) {
		require.True(t, v.IsZero())
	}

	s.setRow(a, numeric.Vec(1, 2, 3))
	s.setRow(b, numeric.Vec(10, 20, 30))
	require.Equal(t, "2", s.row(a)[1].String())
	require.Equal(t, "30", s.row(b)[2].String())
}

func TestStore_FreeListReuse(t *testing.T) {
	s := newStore(2)
	a := s.alloc()
	_ = s.alloc()
	s.recycle(a)

	// The recycled offset comes back before the slab grows.
	c := s.alloc()
	require.Equal(t, a, c)
	require.Equal(t, 2, s.rows())
}

func TestStore_Resolve(t *testing.T) {
	s := newStore(2)
	i, j, r := s.alloc(), s.alloc(), s.alloc()
	s.setRow(i, numeric.Vec(1, 0))
	s.setRow(j, numeric.Vec(0, 2))
	s.setEval(i, numeric.New(5))
	s.setEval(j, numeric.New(-3))

	s.resolve(i, j, r)
	require.Equal(t, "1", s.row(r)[0].String())
	require.Equal(t, "2", s.row(r)[1].String())
	require.Equal(t, "2", s.eval(r).String())

	// Operands are untouched.
	require.Equal(t, "5", s.eval(i).String())
	require.Equal(t, "0", s.row(i)[1].String())
}

func TestStore_WeightAndReset(t *testing.T) {
	s := newStore(3)
	o := s.alloc()
	s.setRow(o, numeric.Vec(2, 0, 5))
	require.Equal(t, "7", s.weight(o).String())

	s.reset()
	require.Equal(t, 0, s.rows())
	n := s.alloc()
	for _, v := range s.row(n) {
		require.True(t, v.IsZero())
	}
}
