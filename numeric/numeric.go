package numeric

import (
	"math/big"

	"github.com/cespare/xxhash/v2"
)

// Int is an exact arbitrary-precision signed integer with value semantics.
//
// The zero value represents 0. Operations never mutate their receiver or
// arguments; each result is backed by freshly allocated storage.
type Int struct {
	v *big.Int
}

// zeroBig is the shared read-only backing of the zero value.
// It must never be handed to callers or mutated.
var zeroBig = new(big.Int)

// New returns the Int representing v.
func New(v int64) Int {
	return Int{v: big.NewInt(v)}
}

// Zero returns the Int representing 0.
func Zero() Int { return Int{} }

// One returns the Int representing 1.
func One() Int { return New(1) }

// FromBig returns the Int representing a copy of x. Later mutation of x
// does not affect the result. A nil x is treated as 0.
func FromBig(x *big.Int) Int {
	if x == nil {
		return Int{}
	}

	return Int{v: new(big.Int).Set(x)}
}

// ref returns the internal big.Int for read-only use.
func (a Int) ref() *big.Int {
	if a.v == nil {
		return zeroBig
	}

	return a.v
}

// Big returns a copy of a as *big.Int.
func (a Int) Big() *big.Int { return new(big.Int).Set(a.ref()) }

// Add returns a + b.
func (a Int) Add(b Int) Int { return Int{v: new(big.Int).Add(a.ref(), b.ref())} }

// Sub returns a - b.
func (a Int) Sub(b Int) Int { return Int{v: new(big.Int).Sub(a.ref(), b.ref())} }

// Mul returns a * b.
func (a Int) Mul(b Int) Int { return Int{v: new(big.Int).Mul(a.ref(), b.ref())} }

// Neg returns -a.
func (a Int) Neg() Int { return Int{v: new(big.Int).Neg(a.ref())} }

// Abs returns |a|.
func (a Int) Abs() Int { return Int{v: new(big.Int).Abs(a.ref())} }

// Cmp compares a and b: -1 if a < b, 0 if a == b, +1 if a > b.
func (a Int) Cmp(b Int) int { return a.ref().Cmp(b.ref()) }

// Equal reports whether a == b.
func (a Int) Equal(b Int) bool { return a.Cmp(b) == 0 }

// IsZero reports whether a == 0.
func (a Int) IsZero() bool { return a.ref().Sign() == 0 }

// IsPos reports whether a > 0.
func (a Int) IsPos() bool { return a.ref().Sign() > 0 }

// IsNeg reports whether a < 0.
func (a Int) IsNeg() bool { return a.ref().Sign() < 0 }

// IsNonneg reports whether a >= 0.
func (a Int) IsNonneg() bool { return a.ref().Sign() >= 0 }

// IsOne reports whether a == 1.
func (a Int) IsOne() bool {
	v := a.ref()

	return v.Sign() > 0 && v.BitLen() == 1
}

// IsMinusOne reports whether a == -1.
func (a Int) IsMinusOne() bool {
	v := a.ref()

	return v.Sign() < 0 && v.BitLen() == 1
}

// Hash returns a 64-bit digest of a. Equal values hash equal; the digest
// covers the sign and the absolute value's big-endian bytes, so values that
// differ only in sign never collide trivially.
func (a Int) Hash() uint64 {
	v := a.ref()
	d := xxhash.New()
	// One sign byte keeps +x and -x apart; Bytes() drops the sign.
	_, _ = d.Write([]byte{byte(v.Sign() + 1)})
	_, _ = d.Write(v.Bytes())

	return d.Sum64()
}

// String renders a in decimal.
func (a Int) String() string { return a.ref().String() }

// Vec returns a fresh []Int built from machine integers. It is a
// convenience for constructing inequality rows and expected test vectors.
func Vec(vs ...int64) []Int {
	out := make([]Int, len(vs))
	for i, v := range vs {
		out[i] = New(v)
	}

	return out
}

// Sum returns the sum of vs, the row weight used by the passive queue.
func Sum(vs []Int) Int {
	acc := new(big.Int)
	for i := range vs {
		acc.Add(acc, vs[i].ref())
	}

	return Int{v: acc}
}

// Dot returns the inner product of a and b. Both slices must have equal
// length; mismatched lengths are a programmer error and panic.
func Dot(a, b []Int) Int {
	if len(a) != len(b) {
		panic("numeric: Dot on slices of different length")
	}
	acc := new(big.Int)
	tmp := new(big.Int)
	for i := range a {
		acc.Add(acc, tmp.Mul(a[i].ref(), b[i].ref()))
	}

	return Int{v: acc}
}
